package entities

import "time"

// QuotationHeader carries the pricing context shared by all rows of a
// quotation, plus the revision number of the persisted document.
//
// The "alluminum" wire spelling is kept for compatibility with documents
// produced by the legacy system.
type QuotationHeader struct {
	ClientName    string  `json:"clientName,omitempty" dynamodbav:"client_name"`
	ClientCity    string  `json:"clientCity,omitempty" dynamodbav:"client_city"`
	Location      string  `json:"location" dynamodbav:"location"`
	CGST          float64 `json:"cgst" dynamodbav:"cgst"`
	SGST          float64 `json:"sgst" dynamodbav:"sgst"`
	IGST          float64 `json:"igst" dynamodbav:"igst"`
	AluminiumRate float64 `json:"alluminum" dynamodbav:"alluminum"`
	Fabrication   float64 `json:"fabrication" dynamodbav:"fabrication"`
	Installation  float64 `json:"installation" dynamodbav:"installation"`
	FixedCharge   float64 `json:"fixedCharge" dynamodbav:"fixed_charge"`
	Discount      float64 `json:"discount" dynamodbav:"discount"`
	ProjectID     string  `json:"projectId" dynamodbav:"project_id"`
	Revision      int     `json:"revision" dynamodbav:"revision"`
}

// InState reports whether the quotation is taxed in-jurisdiction
// (CGST+SGST) rather than inter-state (IGST).
func (h QuotationHeader) InState() bool {
	return h.Location == "gujarat"
}

// Defaults the legacy editor applied whenever a header field was absent or
// zero. Applied once on save; the aggregator re-applies the tax fallbacks so
// preview totals match saved totals.
const (
	DefaultCGST          = 9
	DefaultSGST          = 9
	DefaultIGST          = 18
	DefaultAluminiumRate = 300
)

// Normalized returns a copy with the documented fallbacks applied.
func (h QuotationHeader) Normalized() QuotationHeader {
	out := h
	if out.CGST == 0 {
		out.CGST = DefaultCGST
	}
	if out.SGST == 0 {
		out.SGST = DefaultSGST
	}
	if out.IGST == 0 {
		out.IGST = DefaultIGST
	}
	if out.AluminiumRate == 0 {
		out.AluminiumRate = DefaultAluminiumRate
	}
	return out
}

// HardwareSnapshot pins the vendor code and rate a row was priced with, so
// catalog rate edits never change an already-saved row.
type HardwareSnapshot struct {
	VendorCode string  `json:"vendorCode" dynamodbav:"vendor_code"`
	Rate       float64 `json:"rate" dynamodbav:"rate"`
}

// QuotationRow is one window/door opening. Selection fields reference catalog
// items by id (legacy rows may carry names instead; resolution accepts both).
// Sqft/Sqm/Rate*/Amount are computed by the pricing engine and stored as the
// display strings the engine formatted, matching the persisted legacy shape.
type QuotationRow struct {
	Series           string  `json:"series" dynamodbav:"series"`
	Typology         string  `json:"typology" dynamodbav:"typology"`
	InsideInterlock  string  `json:"insideInterlock" dynamodbav:"inside_interlock"`
	OutsideInterlock string  `json:"outsideInterlock" dynamodbav:"outside_interlock"`
	MeshInterlock    string  `json:"meshInterlock,omitempty" dynamodbav:"mesh_interlock"`
	Rail             string  `json:"rail" dynamodbav:"rail"`
	Finish           string  `json:"finish,omitempty" dynamodbav:"finish"`
	Glass            string  `json:"glass" dynamodbav:"glass"`
	Lock             string  `json:"lock" dynamodbav:"lock"`
	WidthMM          float64 `json:"widthMM" dynamodbav:"width_mm"`
	HeightMM         float64 `json:"heightMM" dynamodbav:"height_mm"`
	Qty              int     `json:"qty" dynamodbav:"qty"`

	Sqft     string `json:"sqft" dynamodbav:"sqft"`
	Sqm      string `json:"sqm" dynamodbav:"sqm"`
	RateSqFt string `json:"rateSqFt" dynamodbav:"rate_sqft"`
	RateSqM  string `json:"rateSqM" dynamodbav:"rate_sqm"`
	RateType string `json:"rateType,omitempty" dynamodbav:"rate_type"`
	Amount   string `json:"amount" dynamodbav:"amount"`

	// HardwareDetails is a derived cache, excluded from revision comparison
	// and diffing.
	HardwareDetails map[string]HardwareSnapshot `json:"hardwareDetails,omitempty" dynamodbav:"hardware_details"`

	// UnknownTypology marks a row whose typology had no formula entry; its
	// amount was computed as zero. Not persisted.
	UnknownTypology bool `json:"-" dynamodbav:"-"`
}

// Totals is the aggregate of a priced quotation.
type Totals struct {
	ProductsAmount     float64 `json:"productsAmount"`
	TotalSqm           float64 `json:"totalSqm"`
	FabricationAmount  float64 `json:"fabricationAmount"`
	InstallationAmount float64 `json:"installationAmount"`
	TaxableAmount      float64 `json:"taxableAmount"`
	TaxAmount          float64 `json:"taxAmount"`
	DiscountAmount     float64 `json:"discountAmount"`
	GrandTotal         float64 `json:"grandTotal"`
}

// Quotation is one immutable revision of a project's quotation document.
type Quotation struct {
	ID              string          `json:"id"`
	Header          QuotationHeader `json:"header"`
	Rows            []QuotationRow  `json:"rows"`
	TotalAmt        float64         `json:"totalAmt"`
	TaxAmt          float64         `json:"taxAmt"`
	Grand           float64         `json:"grand"`
	FabricationAmt  float64         `json:"fabricationAmt"`
	InstallationAmt float64         `json:"installationAmt"`
	DiscountAmt     float64         `json:"discountAmt"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// DiffEntry is one changed field between two revisions. Paths use the wire
// field names: "header.discount", "rows[2].qty", "rows[3]" for an added row,
// or "rows" summarizing removed rows by count.
type DiffEntry struct {
	Path   string      `json:"path"`
	Before interface{} `json:"before"`
	After  interface{} `json:"after"`
}

// Project is the slice of the project master the quotation engine touches:
// the pointer to the latest revision.
type Project struct {
	ID          string `json:"id" dynamodbav:"id"`
	Title       string `json:"title" dynamodbav:"title"`
	Location    string `json:"location,omitempty" dynamodbav:"location"`
	UniqueID    string `json:"uniqueId,omitempty" dynamodbav:"unique_id"`
	QuotationID string `json:"quotationId,omitempty" dynamodbav:"quotation_id"`
}
