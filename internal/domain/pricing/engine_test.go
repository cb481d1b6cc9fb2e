package pricing

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"alufab_quotes/internal/domain/entities"
)

func testCatalogs() entities.Catalogs {
	return entities.Catalogs{
		Products: []entities.Product{
			{ID: "p1", Series: "3200 SP", Typology: "2 Track 2 Shutter"},
			{ID: "p2", Series: "3200 SP", Typology: "3 Track 2 Shutter 1 Mash"},
		},
		Aluminium: []entities.AluminiumItem{
			{ID: "al-frame2", Make: "JINDAL", Model: "3200 SP 2 TRACK", ConversionUnitKgPerMtr: 1.0, Parameter: 300},
			{ID: "al-frame3", Make: "JINDAL", Model: "3200 SP 3 TRACK", ConversionUnitKgPerMtr: 1.4, Parameter: 340},
			{ID: "al-sash", Make: "JINDAL", Model: "3200 SP HANDLE SGU", ConversionUnitKgPerMtr: 0.5, Parameter: 200},
			{ID: "al-rail", Make: "JINDAL", Model: "3200 SP RAIL", ConversionUnitKgPerMtr: 0.4, Parameter: 100},
			{ID: "al-in", Make: "JINDAL", Model: "3200 SP INTERLOCK IN", ConversionUnitKgPerMtr: 0.3, Parameter: 150},
			{ID: "al-out", Make: "JINDAL", Model: "3200 SP INTERLOCK OUT", ConversionUnitKgPerMtr: 0.2, Parameter: 120},
			{ID: "al-mesh", Make: "JINDAL", Model: "3200 SP INTERLOCK MESH", ConversionUnitKgPerMtr: 0.25, Parameter: 130},
		},
		Glass:    []entities.GlassItem{{ID: "gl1", Title: "5MM CLEAR", Rate: 500}},
		Locks:    []entities.LockItem{{ID: "lk1", Title: "TOUCH LOCK", Rate: 250}},
		Finishes: []entities.FinishItem{{ID: "fi1", Title: "POWDER COAT", Rate: 40}},
		Hardware: []entities.HardwareItem{
			{ID: "hw1", VendorCode: "PH412", ProductName: "ROLLER", Rate: 50},
			{ID: "hw2", VendorCode: "CSK PH 8X75 [SS-304]", ProductName: "WALL SCREW", Rate: 2},
		},
	}
}

func testRow() entities.QuotationRow {
	return entities.QuotationRow{
		Series:           "p1",
		Typology:         "p1",
		InsideInterlock:  "al-in",
		OutsideInterlock: "al-out",
		Rail:             "al-rail",
		Finish:           "fi1",
		Glass:            "gl1",
		Lock:             "lk1",
		WidthMM:          1000,
		HeightMM:         1000,
		Qty:              1,
	}
}

func testHeader() entities.QuotationHeader {
	return entities.QuotationHeader{
		Location:      "gujarat",
		CGST:          9,
		SGST:          9,
		IGST:          18,
		AluminiumRate: 300,
		ProjectID:     "proj-1",
	}
}

func amountOf(t *testing.T, row entities.QuotationRow) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(row.Amount, 64)
	if err != nil {
		t.Fatalf("amount %q is not numeric: %v", row.Amount, err)
	}
	return v
}

func TestPriceRow_WorkedExample(t *testing.T) {
	cats := testCatalogs()
	table := DefaultFormulaTable()

	priced := PriceRow(testRow(), testHeader(), cats, table)

	if priced.Sqm != "1.000" {
		t.Fatalf("sqm: expected 1.000, got %q", priced.Sqm)
	}
	if priced.Sqft != "10.764" {
		t.Fatalf("sqft: expected 10.764, got %q", priced.Sqft)
	}

	// Hand-computed for a 1m x 1m "2 TRACK 2 SHUTTER":
	//   structural (1.0*4 + 0.5*2 + 0.5*2) * 300            = 1800
	//   finish (1.2+0.4+0.4+0.12+0.15+0.2) * 40             = 98.8
	//   hardware roller 4*50 + wall screws (4000/650)*2     = 212.3077
	//   glass 1*500, lock 250*2, rail 0.4*2*300             = 500+500+240
	//   interlocks (0.3+0.2)*1*300                          = 150
	expected := 1800 + 98.8 + 200 + 8000.0/650 + 500 + 500 + 240 + 150
	if got := amountOf(t, priced); math.Abs(got-expected) > 0.01 {
		t.Fatalf("amount: expected %.4f, got %.4f", expected, got)
	}
	if priced.UnknownTypology {
		t.Fatalf("typology should be recognized")
	}

	// Derived rates divide the per-unit total by area, display only.
	rateSqm, _ := strconv.ParseFloat(priced.RateSqM, 64)
	if math.Abs(rateSqm-expected) > 0.01 {
		t.Fatalf("rateSqM: expected %.2f, got %v", expected, priced.RateSqM)
	}

	// The hardware snapshot pins every vendor code present in the catalog.
	if len(priced.HardwareDetails) != 2 {
		t.Fatalf("expected 2 snapshotted parts, got %d", len(priced.HardwareDetails))
	}
	if s := priced.HardwareDetails["roller"]; s.VendorCode != "PH412" || s.Rate != 50 {
		t.Fatalf("roller snapshot: %+v", s)
	}
}

func TestPriceRow_Deterministic(t *testing.T) {
	cats := testCatalogs()
	table := DefaultFormulaTable()
	row := testRow()
	header := testHeader()

	first := PriceRow(row, header, cats, table)
	for i := 0; i < 50; i++ {
		again := PriceRow(row, header, cats, table)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("iteration %d produced a different row:\n%+v\nvs\n%+v", i, first, again)
		}
	}
}

func TestPriceRow_AreaCorrectness(t *testing.T) {
	row := testRow()
	row.WidthMM = 1500
	row.HeightMM = 1000

	priced := PriceRow(row, testHeader(), testCatalogs(), DefaultFormulaTable())
	if priced.Sqm != "1.500" {
		t.Fatalf("sqm: expected 1.500, got %q", priced.Sqm)
	}
	sqft, _ := strconv.ParseFloat(priced.Sqft, 64)
	if math.Abs(sqft-16.146) > 0.001 {
		t.Fatalf("sqft: expected 16.146, got %q", priced.Sqft)
	}
}

func TestPriceRow_ZeroDimension(t *testing.T) {
	for _, tc := range []struct{ name string; w, h float64 }{
		{"zero width", 0, 1000},
		{"zero height", 1500, 0},
		{"negative width", -10, 1000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			row := testRow()
			row.WidthMM = tc.w
			row.HeightMM = tc.h
			priced := PriceRow(row, testHeader(), testCatalogs(), DefaultFormulaTable())
			if priced.Amount != "0.00" {
				t.Fatalf("expected amount 0.00, got %q", priced.Amount)
			}
			if priced.Sqm != "0.000" {
				t.Fatalf("expected sqm 0.000, got %q", priced.Sqm)
			}
			if priced.RateSqM != "" || priced.RateSqFt != "" {
				t.Fatalf("zero area must not produce unit rates")
			}
		})
	}
}

func TestPriceRow_UnknownTypology(t *testing.T) {
	row := testRow()
	row.Typology = "does-not-exist"

	priced := PriceRow(row, testHeader(), testCatalogs(), DefaultFormulaTable())
	if priced.Amount != "0.00" {
		t.Fatalf("expected amount 0.00, got %q", priced.Amount)
	}
	if !priced.UnknownTypology {
		t.Fatalf("expected the unknown-typology flag")
	}
	if priced.Sqm != "1.000" {
		t.Fatalf("area still computed for an unknown typology, got %q", priced.Sqm)
	}
}

func TestPriceRow_MissingReferenceItemPricesTermAtZero(t *testing.T) {
	cats := testCatalogs()
	table := DefaultFormulaTable()

	base := PriceRow(testRow(), testHeader(), cats, table)

	row := testRow()
	row.Glass = "gone"
	withoutGlass := PriceRow(row, testHeader(), cats, table)

	diff := amountOf(t, base) - amountOf(t, withoutGlass)
	if math.Abs(diff-500) > 0.01 { // 1 sqm x 500 glass rate
		t.Fatalf("expected the glass term (500) to drop, amount moved by %.4f", diff)
	}
}

func TestPriceRow_QtyDefaultsAndScales(t *testing.T) {
	cats := testCatalogs()
	table := DefaultFormulaTable()

	row := testRow()
	row.Qty = 0
	one := PriceRow(row, testHeader(), cats, table)
	if one.Qty != 1 {
		t.Fatalf("expected qty to default to 1, got %d", one.Qty)
	}

	row.Qty = 3
	three := PriceRow(row, testHeader(), cats, table)
	if math.Abs(amountOf(t, three)-3*amountOf(t, one)) > 0.02 {
		t.Fatalf("amount should scale with qty: %q vs %q", three.Amount, one.Amount)
	}
	if three.RateSqM != one.RateSqM {
		t.Fatalf("unit rate must not scale with qty")
	}
}

func TestPriceRow_MeshTypology(t *testing.T) {
	cats := testCatalogs()
	table := DefaultFormulaTable()

	row := testRow()
	row.Series = "p2"
	row.Typology = "p2"
	row.MeshInterlock = "al-mesh"

	priced := PriceRow(row, testHeader(), cats, table)
	if priced.UnknownTypology {
		t.Fatalf("mesh typology should be recognized")
	}

	// Dropping the mesh interlock selection removes exactly its weight term:
	// 0.25 kg/m x 1m x 1 run x 300, plus its finish run 0.13/1000*1*1*40.
	row.MeshInterlock = ""
	withoutMesh := PriceRow(row, testHeader(), cats, table)
	expected := 0.25*300 + 130.0/1000*40
	diff := amountOf(t, priced) - amountOf(t, withoutMesh)
	if math.Abs(diff-expected) > 0.01 {
		t.Fatalf("expected mesh terms %.4f to drop, amount moved by %.4f", expected, diff)
	}
}

func TestPriceRow_SnapshotInsulatesFromCatalogEdits(t *testing.T) {
	cats := testCatalogs()
	table := DefaultFormulaTable()

	priced := PriceRow(testRow(), testHeader(), cats, table)

	// A later catalog rate change must not alter the saved snapshot.
	cats.Hardware[0].Rate = 9999
	if priced.HardwareDetails["roller"].Rate != 50 {
		t.Fatalf("snapshot changed after catalog edit: %+v", priced.HardwareDetails["roller"])
	}
}
