package usecase

import (
	"fmt"

	"alufab_quotes/internal/domain/entities"
)

// diffQuotations lists the field-level changes between two revisions of the
// same project. Paths use the wire field names so API consumers can relate
// entries back to the documents they already hold.
//
// Rows are compared positionally. Rows appended in the newer revision get one
// entry each ("rows[i]"). Rows removed are summarized by a single "rows"
// entry carrying the before/after counts, positional entries for indexes
// that no longer exist would not be actionable.
func diffQuotations(older, newer entities.Quotation) []entities.DiffEntry {
	var out []entities.DiffEntry
	out = append(out, diffHeaders(older.Header, newer.Header)...)

	common := len(older.Rows)
	if len(newer.Rows) < common {
		common = len(newer.Rows)
	}
	for i := 0; i < common; i++ {
		out = append(out, diffRows(i, older.Rows[i], newer.Rows[i])...)
	}

	for i := common; i < len(newer.Rows); i++ {
		out = append(out, entities.DiffEntry{
			Path:  fmt.Sprintf("rows[%d]", i),
			After: canonicalRow(newer.Rows[i]),
		})
	}
	if len(older.Rows) > len(newer.Rows) {
		out = append(out, entities.DiffEntry{
			Path:   "rows",
			Before: len(older.Rows),
			After:  len(newer.Rows),
		})
	}
	return out
}

func diffHeaders(a, b entities.QuotationHeader) []entities.DiffEntry {
	var out []entities.DiffEntry
	add := func(path string, before, after interface{}) {
		if before != after {
			out = append(out, entities.DiffEntry{Path: "header." + path, Before: before, After: after})
		}
	}
	add("clientName", a.ClientName, b.ClientName)
	add("clientCity", a.ClientCity, b.ClientCity)
	add("location", a.Location, b.Location)
	add("cgst", a.CGST, b.CGST)
	add("sgst", a.SGST, b.SGST)
	add("igst", a.IGST, b.IGST)
	add("alluminum", a.AluminiumRate, b.AluminiumRate)
	add("fabrication", a.Fabrication, b.Fabrication)
	add("installation", a.Installation, b.Installation)
	add("fixedCharge", a.FixedCharge, b.FixedCharge)
	add("discount", a.Discount, b.Discount)
	return out
}

func diffRows(i int, a, b entities.QuotationRow) []entities.DiffEntry {
	var out []entities.DiffEntry
	add := func(path string, before, after interface{}) {
		if before != after {
			out = append(out, entities.DiffEntry{
				Path:   fmt.Sprintf("rows[%d].%s", i, path),
				Before: before,
				After:  after,
			})
		}
	}
	add("series", a.Series, b.Series)
	add("typology", a.Typology, b.Typology)
	add("insideInterlock", a.InsideInterlock, b.InsideInterlock)
	add("outsideInterlock", a.OutsideInterlock, b.OutsideInterlock)
	add("meshInterlock", a.MeshInterlock, b.MeshInterlock)
	add("rail", a.Rail, b.Rail)
	add("finish", a.Finish, b.Finish)
	add("glass", a.Glass, b.Glass)
	add("lock", a.Lock, b.Lock)
	add("widthMM", a.WidthMM, b.WidthMM)
	add("heightMM", a.HeightMM, b.HeightMM)
	add("qty", a.Qty, b.Qty)
	add("sqft", a.Sqft, b.Sqft)
	add("sqm", a.Sqm, b.Sqm)
	add("rateSqFt", a.RateSqFt, b.RateSqFt)
	add("rateSqM", a.RateSqM, b.RateSqM)
	add("rateType", a.RateType, b.RateType)
	add("amount", a.Amount, b.Amount)
	return out
}
