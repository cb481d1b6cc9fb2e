package pricing

import (
	"fmt"
	"sort"

	"alufab_quotes/internal/domain/entities"
)

const sqftPerSqm = 10.7639

// PriceRow computes one quotation row: areas, every cost term the matched
// typology formula defines, the hardware rate snapshot, the row amount and
// the derived unit rates. Pure and deterministic: same row, header, catalogs
// and table always produce identical output.
//
// Degradation policy: a missing reference item prices its term at zero; an
// unknown series/typology prices the whole row at zero and flags the row.
// Neither is an error, so one misconfigured row never stalls the document.
func PriceRow(row entities.QuotationRow, header entities.QuotationHeader, cats entities.Catalogs, table FormulaTable) entities.QuotationRow {
	up := row
	up.HardwareDetails = nil
	up.UnknownTypology = false

	widthMM := nonNegative(row.WidthMM)
	heightMM := nonNegative(row.HeightMM)
	qty := row.Qty
	if qty <= 0 {
		qty = 1
	}
	up.WidthMM = widthMM
	up.HeightMM = heightMM
	up.Qty = qty

	d := Dims{
		WidthM:   widthMM / 1000,
		HeightM:  heightMM / 1000,
		WidthMM:  widthMM,
		HeightMM: heightMM,
	}
	d.PerimeterM = d.WidthM*2 + d.HeightM*2

	areaSqm := (widthMM * heightMM) / 1e6
	areaSqft := areaSqm * sqftPerSqm
	up.Sqm = fmt.Sprintf("%.3f", areaSqm)
	up.Sqft = fmt.Sprintf("%.3f", areaSqft)

	// A zero or missing dimension is incomplete input, not an error: the row
	// stays in the document at zero value until the editor fills it in.
	if areaSqm == 0 {
		up.Amount = "0.00"
		up.RateSqM = ""
		up.RateSqFt = ""
		return up
	}

	seriesName := ""
	if p, ok := cats.ProductBySeries(row.Series); ok {
		seriesName = p.Series
	}
	typologyName := ""
	if p, ok := cats.ProductByTypology(row.Typology); ok {
		typologyName = p.Typology
	}

	spec, ok := table.Lookup(seriesName, typologyName)
	if !ok {
		up.UnknownTypology = true
		up.Amount = "0.00"
		up.RateSqM = ""
		up.RateSqFt = ""
		return up
	}

	aluminiumRate := header.AluminiumRate

	frame, _ := entities.AluminiumByModel(cats.Frames(), spec.FrameModel)
	sash, _ := entities.AluminiumByModel(cats.Sashes(), spec.SashModel)
	middle, _ := entities.AluminiumByModel(cats.Middles(), spec.MiddleModel)
	insideInterlock, _ := cats.AluminiumByRef(row.InsideInterlock)
	outsideInterlock, _ := cats.AluminiumByRef(row.OutsideInterlock)
	meshInterlock, _ := cats.AluminiumByRef(row.MeshInterlock)
	rail, _ := cats.AluminiumByRef(row.Rail)

	// Aluminium structural weight: frame around the perimeter, sash runs per
	// the typology, one central middle when the typology splits.
	structuralKg := frame.ConversionUnitKgPerMtr*d.PerimeterM +
		sash.ConversionUnitKgPerMtr*d.HeightM*spec.SashHeightRuns +
		sash.ConversionUnitKgPerMtr*d.WidthM*spec.SashWidthRuns
	if spec.HasMiddle {
		structuralKg += middle.ConversionUnitKgPerMtr * d.HeightM
	}
	typologyAmount := structuralKg * aluminiumRate

	// Finish runs the same extrusion extents, scaled by each profile's
	// coating parameter (mm of coated girth per metre).
	finishItem, _ := cats.FinishByRef(row.Finish)
	finishLen := frame.Parameter/1000*d.PerimeterM +
		sash.Parameter/1000*d.HeightM*spec.SashHeightRuns +
		sash.Parameter/1000*d.WidthM*spec.SashWidthRuns +
		outsideInterlock.Parameter/1000*d.HeightM*spec.OutsideInterlockRuns +
		insideInterlock.Parameter/1000*d.HeightM*spec.InsideInterlockRuns +
		meshInterlock.Parameter/1000*d.HeightM*spec.MeshInterlockRuns +
		rail.Parameter/1000*d.WidthM*spec.RailTracks
	if spec.HasMiddle {
		finishLen += middle.Parameter / 1000 * d.HeightM
	}
	finishAmount := finishLen * finishItem.Rate

	up.HardwareDetails = snapshotHardware(cats)
	hardwareAmount := hardwareCost(spec.HardwareCounts(d), up.HardwareDetails)

	glassItem, _ := cats.GlassByRef(row.Glass)
	glassAmount := areaSqm * glassItem.Rate

	lockItem, _ := cats.LockByRef(row.Lock)
	lockAmount := lockItem.Rate * spec.LockCount

	railAmount := rail.ConversionUnitKgPerMtr * spec.RailTracks * d.WidthM * aluminiumRate
	insideAmount := insideInterlock.ConversionUnitKgPerMtr * d.HeightM * spec.InsideInterlockRuns * aluminiumRate
	outsideAmount := outsideInterlock.ConversionUnitKgPerMtr * d.HeightM * spec.OutsideInterlockRuns * aluminiumRate
	meshAmount := meshInterlock.ConversionUnitKgPerMtr * d.HeightM * spec.MeshInterlockRuns * aluminiumRate

	perUnit := typologyAmount +
		lockAmount +
		railAmount +
		glassAmount +
		insideAmount +
		meshAmount +
		outsideAmount +
		finishAmount +
		hardwareAmount

	total := (perUnit + header.FixedCharge) * float64(qty)
	up.Amount = fmt.Sprintf("%.2f", total)

	if areaSqm > 0 {
		up.RateSqM = fmt.Sprintf("%.2f", perUnit/areaSqm)
		up.RateSqFt = fmt.Sprintf("%.2f", perUnit/areaSqft)
	} else {
		up.RateSqM = ""
		up.RateSqFt = ""
	}
	return up
}

// snapshotHardware resolves every known vendor code against the current
// hardware catalog. The snapshot travels with the row so catalog edits never
// reprice saved rows, and the MTO can be exploded without re-reading rates.
func snapshotHardware(cats entities.Catalogs) map[string]entities.HardwareSnapshot {
	snap := make(map[string]entities.HardwareSnapshot, len(HardwareVendorCodes))
	for key, code := range HardwareVendorCodes {
		if item, ok := cats.HardwareByVendorCode(code); ok {
			snap[key] = entities.HardwareSnapshot{VendorCode: code, Rate: item.Rate}
		}
	}
	return snap
}

// hardwareCost sums rate×count over the typology's part table. Parts are
// summed in key order so the floating-point total is reproducible.
func hardwareCost(counts map[string]float64, snap map[string]entities.HardwareSnapshot) float64 {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total float64
	for _, k := range keys {
		total += snap[k].Rate * counts[k]
	}
	return total
}

func nonNegative(v float64) float64 {
	if v < 0 || v != v { // negative or NaN
		return 0
	}
	return v
}
