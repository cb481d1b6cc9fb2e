package pricing

import (
	"math"
	"strconv"

	"alufab_quotes/internal/domain/entities"
)

// ComputeTotals aggregates priced rows into the invoice totals: per-area
// fabrication and installation charges on the summed row area, CGST+SGST or
// IGST by jurisdiction, then a percentage discount on the tax-inclusive
// subtotal. Tax percentages fall back to the documented defaults when unset.
func ComputeTotals(rows []entities.QuotationRow, header entities.QuotationHeader) entities.Totals {
	var products, totalSqm float64
	for _, r := range rows {
		products += parseAmount(r.Amount)
		totalSqm += parseAmount(r.Sqm)
	}

	fabrication := totalSqm * nonNegativeOrZero(header.Fabrication)
	installation := totalSqm * nonNegativeOrZero(header.Installation)
	taxable := products + fabrication + installation

	var tax float64
	if header.InState() {
		cgst := percentOrDefault(header.CGST, entities.DefaultCGST)
		sgst := percentOrDefault(header.SGST, entities.DefaultSGST)
		tax = taxable * (cgst + sgst) / 100
	} else {
		igst := percentOrDefault(header.IGST, entities.DefaultIGST)
		tax = taxable * igst / 100
	}

	discount := (taxable + tax) * nonNegativeOrZero(header.Discount) / 100
	grand := round2(taxable + tax - discount)

	return entities.Totals{
		ProductsAmount:     products,
		TotalSqm:           totalSqm,
		FabricationAmount:  fabrication,
		InstallationAmount: installation,
		TaxableAmount:      taxable,
		TaxAmount:          tax,
		DiscountAmount:     discount,
		GrandTotal:         grand,
	}
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func percentOrDefault(v, def float64) float64 {
	if v == 0 || math.IsNaN(v) || v < 0 {
		return def
	}
	return v
}

func nonNegativeOrZero(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
