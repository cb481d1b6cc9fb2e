package response

import (
	"time"

	"alufab_quotes/internal/domain/entities"
)

type QuotationResponse struct {
	ID              string                   `json:"id"`
	Header          entities.QuotationHeader `json:"header"`
	Rows            []entities.QuotationRow  `json:"rows"`
	TotalAmt        float64                  `json:"totalAmt"`
	TaxAmt          float64                  `json:"taxAmt"`
	Grand           float64                  `json:"grand"`
	FabricationAmt  float64                  `json:"fabricationAmt"`
	InstallationAmt float64                  `json:"installationAmt"`
	DiscountAmt     float64                  `json:"discountAmt"`
	CreatedAt       time.Time                `json:"createdAt"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:              q.ID,
		Header:          q.Header,
		Rows:            q.Rows,
		TotalAmt:        q.TotalAmt,
		TaxAmt:          q.TaxAmt,
		Grand:           q.Grand,
		FabricationAmt:  q.FabricationAmt,
		InstallationAmt: q.InstallationAmt,
		DiscountAmt:     q.DiscountAmt,
		CreatedAt:       q.CreatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, len(qs))
	for i, q := range qs {
		out[i] = FromQuotation(q)
	}
	return out
}

// SaveDraftResponse reports the persisted revision. Unchanged means the
// submitted content matched the latest revision and nothing was written.
type SaveDraftResponse struct {
	Quotation QuotationResponse `json:"quotation"`
	Unchanged bool              `json:"unchanged"`
}

// ComputeRowResponse surfaces the unknown-typology flag, which is not part
// of the persisted row shape.
type ComputeRowResponse struct {
	Row             entities.QuotationRow `json:"row"`
	UnknownTypology bool                  `json:"unknownTypology"`
}

func FromComputedRow(row entities.QuotationRow) ComputeRowResponse {
	return ComputeRowResponse{Row: row, UnknownTypology: row.UnknownTypology}
}

type TotalsResponse struct {
	ProductsAmount     float64 `json:"productsAmount"`
	TotalSqm           float64 `json:"totalSqm"`
	FabricationAmount  float64 `json:"fabricationAmount"`
	InstallationAmount float64 `json:"installationAmount"`
	TaxableAmount      float64 `json:"taxableAmount"`
	TaxAmount          float64 `json:"taxAmount"`
	DiscountAmount     float64 `json:"discountAmount"`
	GrandTotal         float64 `json:"grandTotal"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		ProductsAmount:     t.ProductsAmount,
		TotalSqm:           t.TotalSqm,
		FabricationAmount:  t.FabricationAmount,
		InstallationAmount: t.InstallationAmount,
		TaxableAmount:      t.TaxableAmount,
		TaxAmount:          t.TaxAmount,
		DiscountAmount:     t.DiscountAmount,
		GrandTotal:         t.GrandTotal,
	}
}

type DiffResponse struct {
	Older   string               `json:"older"`
	Newer   string               `json:"newer"`
	Changes []entities.DiffEntry `json:"changes"`
}

func FromDiff(older, newer string, changes []entities.DiffEntry) DiffResponse {
	if changes == nil {
		changes = []entities.DiffEntry{}
	}
	return DiffResponse{Older: older, Newer: newer, Changes: changes}
}
