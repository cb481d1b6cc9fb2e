package request

import (
	"bytes"
	"strconv"

	"alufab_quotes/internal/domain/entities"
)

// Num is a tolerant JSON number. Legacy clients send dimensions and rates
// either as numbers or as strings ("1200", ""), and sometimes as junk; any
// unparseable value decodes to zero instead of failing the request, matching
// how the legacy editor treated its inputs.
type Num float64

func (n *Num) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}
	*n = Num(v)
	return nil
}

// QuotationRowRequest carries one row's selections and dimensions. Computed
// fields submitted by the client are dropped, the server reprices.
type QuotationRowRequest struct {
	Series           string `json:"series"`
	Typology         string `json:"typology"`
	InsideInterlock  string `json:"insideInterlock"`
	OutsideInterlock string `json:"outsideInterlock"`
	MeshInterlock    string `json:"meshInterlock"`
	Rail             string `json:"rail"`
	Finish           string `json:"finish"`
	Glass            string `json:"glass"`
	Lock             string `json:"lock"`
	WidthMM          Num    `json:"widthMM"`
	HeightMM         Num    `json:"heightMM"`
	Qty              Num    `json:"qty"`
}

func (r QuotationRowRequest) ToEntity() entities.QuotationRow {
	return entities.QuotationRow{
		Series:           r.Series,
		Typology:         r.Typology,
		InsideInterlock:  r.InsideInterlock,
		OutsideInterlock: r.OutsideInterlock,
		MeshInterlock:    r.MeshInterlock,
		Rail:             r.Rail,
		Finish:           r.Finish,
		Glass:            r.Glass,
		Lock:             r.Lock,
		WidthMM:          float64(r.WidthMM),
		HeightMM:         float64(r.HeightMM),
		Qty:              int(r.Qty),
	}
}

// QuotationHeaderRequest keeps the legacy "alluminum" wire name for the
// aluminium rate.
type QuotationHeaderRequest struct {
	ClientName    string `json:"clientName"`
	ClientCity    string `json:"clientCity"`
	Location      string `json:"location"`
	CGST          Num    `json:"cgst"`
	SGST          Num    `json:"sgst"`
	IGST          Num    `json:"igst"`
	AluminiumRate Num    `json:"alluminum"`
	Fabrication   Num    `json:"fabrication"`
	Installation  Num    `json:"installation"`
	FixedCharge   Num    `json:"fixedCharge"`
	Discount      Num    `json:"discount"`
}

func (h QuotationHeaderRequest) ToEntity() entities.QuotationHeader {
	return entities.QuotationHeader{
		ClientName:    h.ClientName,
		ClientCity:    h.ClientCity,
		Location:      h.Location,
		CGST:          float64(h.CGST),
		SGST:          float64(h.SGST),
		IGST:          float64(h.IGST),
		AluminiumRate: float64(h.AluminiumRate),
		Fabrication:   float64(h.Fabrication),
		Installation:  float64(h.Installation),
		FixedCharge:   float64(h.FixedCharge),
		Discount:      float64(h.Discount),
	}
}

type ComputeRowRequest struct {
	Header QuotationHeaderRequest `json:"header"`
	Row    QuotationRowRequest    `json:"row"`
}

type ComputeTotalsRequest struct {
	Header QuotationHeaderRequest `json:"header"`
	Rows   []QuotationRowRequest  `json:"rows" binding:"required"`
}

// SaveDraftRequest is the body of POST /v1/projects/:project_id/quotations.
type SaveDraftRequest struct {
	Header QuotationHeaderRequest `json:"header"`
	Rows   []QuotationRowRequest  `json:"rows" binding:"required"`
}

func ToRowEntities(rows []QuotationRowRequest) []entities.QuotationRow {
	out := make([]entities.QuotationRow, len(rows))
	for i, r := range rows {
		out[i] = r.ToEntity()
	}
	return out
}
