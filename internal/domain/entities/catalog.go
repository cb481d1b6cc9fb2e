package entities

import "strings"

// Reference catalogs consumed by the pricing engine. Items are read-only from
// the engine's perspective: rows snapshot the rates they used at compute time,
// so later catalog edits never retroactively change a persisted quotation.

// Product is one series/typology pairing from the product master
// (e.g. series "3200 SP", typology "2 Track 2 Shutter").
type Product struct {
	ID       string `json:"id" dynamodbav:"id"`
	Series   string `json:"series" dynamodbav:"series"`
	Typology string `json:"typology" dynamodbav:"typology"`
	Type     string `json:"type,omitempty" dynamodbav:"type"`
}

// AluminiumItem is an extrusion profile. ConversionUnitKgPerMtr converts a
// linear run into weight; Parameter is the linear finishing-length
// coefficient in mm used for coating cost.
type AluminiumItem struct {
	ID                     string  `json:"id" dynamodbav:"id"`
	SrNo                   int     `json:"srNo" dynamodbav:"sr_no"`
	Code                   string  `json:"code" dynamodbav:"code"`
	Make                   string  `json:"make" dynamodbav:"make"`
	Model                  string  `json:"model" dynamodbav:"model"`
	ConversionUnitKgPerMtr float64 `json:"conversionUnitKgPerMtr" dynamodbav:"conversion_unit_kg_per_mtr"`
	Parameter              float64 `json:"parameter" dynamodbav:"parameter"`
	ProductGroup           string  `json:"productGroup" dynamodbav:"product_group"`
}

type GlassItem struct {
	ID    string  `json:"id" dynamodbav:"id"`
	SrNo  int     `json:"srNo" dynamodbav:"sr_no"`
	Title string  `json:"title" dynamodbav:"title"`
	Rate  float64 `json:"rate" dynamodbav:"rate"`
}

type LockItem struct {
	ID          string  `json:"id" dynamodbav:"id"`
	Title       string  `json:"title" dynamodbav:"title"`
	Brand       string  `json:"brand,omitempty" dynamodbav:"brand"`
	Description string  `json:"description,omitempty" dynamodbav:"description"`
	Rate        float64 `json:"rate" dynamodbav:"rate"`
}

type FinishItem struct {
	ID    string  `json:"id" dynamodbav:"id"`
	Title string  `json:"title" dynamodbav:"title"`
	Rate  float64 `json:"rate" dynamodbav:"rate"`
}

// HardwareItem is a bought-out part, looked up by vendor code from the
// typology hardware tables.
type HardwareItem struct {
	ID          string  `json:"id" dynamodbav:"id"`
	SrNo        int     `json:"srNo" dynamodbav:"sr_no"`
	VendorCode  string  `json:"vendorCode" dynamodbav:"vendor_code"`
	Make        string  `json:"make" dynamodbav:"make"`
	ProductName string  `json:"productName" dynamodbav:"product_name"`
	Model       string  `json:"model" dynamodbav:"model"`
	UOM         string  `json:"uom" dynamodbav:"uom"`
	Rate        float64 `json:"rate" dynamodbav:"rate"`
}

// Catalogs is one consistent snapshot of all reference data the engine needs.
type Catalogs struct {
	Products  []Product       `json:"products"`
	Aluminium []AluminiumItem `json:"aluminium"`
	Glass     []GlassItem     `json:"glass"`
	Locks     []LockItem      `json:"locks"`
	Finishes  []FinishItem    `json:"finishes"`
	Hardware  []HardwareItem  `json:"hardware"`
}

// Aluminium profiles carry their function in the model string; the catalog is
// segmented by name-matching on those markers.
const (
	tagInterlock = "INTERLOCK"
	tagRail      = "RAIL"
	tagFrame     = "TRACK"
	tagSash      = "HANDLE"
	tagMiddle    = "CENTRALMIDDEL"
)

func (c Catalogs) aluminiumTagged(tag string) []AluminiumItem {
	var out []AluminiumItem
	for _, a := range c.Aluminium {
		if strings.Contains(strings.ToUpper(a.Model), tag) {
			out = append(out, a)
		}
	}
	return out
}

func (c Catalogs) Interlocks() []AluminiumItem { return c.aluminiumTagged(tagInterlock) }
func (c Catalogs) Rails() []AluminiumItem      { return c.aluminiumTagged(tagRail) }
func (c Catalogs) Frames() []AluminiumItem     { return c.aluminiumTagged(tagFrame) }
func (c Catalogs) Sashes() []AluminiumItem     { return c.aluminiumTagged(tagSash) }
func (c Catalogs) Middles() []AluminiumItem    { return c.aluminiumTagged(tagMiddle) }

// ProductBySeries resolves a series reference, by id or by series name.
func (c Catalogs) ProductBySeries(ref string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == ref || p.Series == ref {
			return p, true
		}
	}
	return Product{}, false
}

// ProductByTypology resolves a typology reference, by id or by typology name.
func (c Catalogs) ProductByTypology(ref string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == ref || p.Typology == ref {
			return p, true
		}
	}
	return Product{}, false
}

// AluminiumByRef resolves an aluminium reference, by id or by model. Persisted
// rows may carry either, depending on when they were saved.
func (c Catalogs) AluminiumByRef(ref string) (AluminiumItem, bool) {
	if ref == "" {
		return AluminiumItem{}, false
	}
	for _, a := range c.Aluminium {
		if a.ID == ref || a.Model == ref {
			return a, true
		}
	}
	return AluminiumItem{}, false
}

// AluminiumByModel returns the first profile among items whose model contains
// the given marker (case-insensitive).
func AluminiumByModel(items []AluminiumItem, marker string) (AluminiumItem, bool) {
	m := strings.ToUpper(marker)
	for _, a := range items {
		if strings.Contains(strings.ToUpper(a.Model), m) {
			return a, true
		}
	}
	return AluminiumItem{}, false
}

func (c Catalogs) GlassByRef(ref string) (GlassItem, bool) {
	if ref == "" {
		return GlassItem{}, false
	}
	for _, g := range c.Glass {
		if g.ID == ref || g.Title == ref {
			return g, true
		}
	}
	return GlassItem{}, false
}

func (c Catalogs) LockByRef(ref string) (LockItem, bool) {
	if ref == "" {
		return LockItem{}, false
	}
	for _, l := range c.Locks {
		if l.ID == ref || l.Title == ref {
			return l, true
		}
	}
	return LockItem{}, false
}

func (c Catalogs) FinishByRef(ref string) (FinishItem, bool) {
	if ref == "" {
		return FinishItem{}, false
	}
	for _, f := range c.Finishes {
		if f.ID == ref || f.Title == ref {
			return f, true
		}
	}
	return FinishItem{}, false
}

func (c Catalogs) HardwareByVendorCode(code string) (HardwareItem, bool) {
	for _, h := range c.Hardware {
		if h.VendorCode == code {
			return h, true
		}
	}
	return HardwareItem{}, false
}
