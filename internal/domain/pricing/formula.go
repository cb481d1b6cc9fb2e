// Package pricing implements the quotation rules engine: the per-typology
// formula table, the row pricing function and the totals aggregator. All
// functions are pure; every dependency is passed in explicitly.
package pricing

import "strings"

// Dims carries the geometry of one opening in the units the formulas mix
// freely: metres for runs, millimetres for pitch-driven part counts.
type Dims struct {
	WidthM     float64
	HeightM    float64
	WidthMM    float64
	HeightMM   float64
	PerimeterM float64
}

// FormulaKey identifies a formula table entry. Series is the catalog series
// name, Typology the upper-cased typology name.
type FormulaKey struct {
	Series   string
	Typology string
}

// FormulaSpec is the data record behind one typology: which profile models it
// is built from, the geometric run multipliers for weight and finish, and the
// hardware part-count table. The coefficients are fabrication constants
// carried over verbatim from the shop's costing sheets; they have no derivable
// closed form.
type FormulaSpec struct {
	FrameModel  string
	SashModel   string
	MiddleModel string

	// Sash runs, multiplied by height resp. width, shared by the weight and
	// finish formulas. The frame always runs the full perimeter.
	SashHeightRuns float64
	SashWidthRuns  float64
	HasMiddle      bool

	// Interlock vertical runs (per height), shared by the weight, finish and
	// component-cost formulas.
	InsideInterlockRuns  float64
	OutsideInterlockRuns float64
	MeshInterlockRuns    float64

	// RailTracks is the track count: rail weight and finish run RailTracks
	// times the width.
	RailTracks float64
	LockCount  float64

	HardwareCounts func(Dims) map[string]float64
}

// FormulaTable maps (series, typology) to its formula. Adding a typology is a
// table edit, not a code change.
type FormulaTable map[FormulaKey]FormulaSpec

// Lookup resolves a series/typology pair, normalizing the typology name the
// way the table keys it.
func (t FormulaTable) Lookup(series, typology string) (FormulaSpec, bool) {
	spec, ok := t[FormulaKey{Series: series, Typology: strings.ToUpper(typology)}]
	return spec, ok
}

// HardwareVendorCodes maps the formula part keys to catalog vendor codes.
// One shared map for the whole series; a part missing from the hardware
// catalog simply prices at zero. Codes are verbatim from the costing sheets,
// including the trailing tab in the silicon code.
var HardwareVendorCodes = map[string]string{
	"roller":             "PH412",
	"nonroller":          "PH609/U",
	"skrew19X8":          "CSK PH 8X19 [SS-304]",
	"cleatForFrame":      "CCC1022",
	"cleatForShutter":    "CCC1022",
	"shutterAngle":       "ACC_90ANGLE",
	"ssPatti":            "ARYAN ENTR.",
	"shutterAntiLift":    "PH343/B",
	"skrew19X7":          "CSK PH 7X19 [SS-304]",
	"interLockCover":     "3504",
	"skrew13X7":          "CSK PH 7X13 GI",
	"brush":              "ACC_BRUSH",
	"distancePieces":     "PH139/B",
	"silicon":            "WACKER GN CL 270\t",
	"woolpipe":           "4.8X6 GREY WP",
	"trackEPDM":          "EPDM 4746",
	"interlockEPDM":      "EPDM 8085",
	"glassEPDM":          "OSAKA",
	"reciever":           "ORBITA",
	"skrew8X25":          "CSK PH 8X25 [SS-304]",
	"interLockEndCap101": "PH308/B",
	"interLockEndCap81":  "PH260/B",
	"waterDrainageCover": "PDC101/B",
	"wallSkrew":          "CSK PH 8X75 [SS-304]",
	"rowelPlug":          "32MM WP",
	"pushButton":         "10MM PB",
	"packing":            "PC_2X_3X",
	"glassPacker":        "MANGALUM",
	"pta25x8":            "GBOX-27MM",
}

// perimeterCounts are the pitch-driven part counts every typology shares:
// one water-drainage cover per 550mm of width, wall fixings every 650mm of
// perimeter, packing every 550mm, one silicon cartridge per 9.5m of double
// perimeter run.
func perimeterCounts(d Dims) map[string]float64 {
	return map[string]float64{
		"waterDrainageCover": d.WidthMM / 550,
		"wallSkrew":          d.PerimeterM * 1000 / 650,
		"rowelPlug":          d.PerimeterM * 1000 / 650,
		"pushButton":         d.PerimeterM * 1000 / 650,
		"packing":            d.PerimeterM * 1000 / 550,
		"silicon":            d.PerimeterM * 2 / 9.5,
	}
}

const (
	series3200SP = "3200 SP"

	frame3200SP2Track = "3200 SP 2 TRACK"
	frame3200SP3Track = "3200 SP 3 TRACK"
	sash3200SP        = "3200 SP HANDLE SGU"
	middle3200SP      = "3200 SP CENTRAL MIDDEL"
)

// DefaultFormulaTable returns the formula table for the series currently
// costed. Only "3200 SP" is populated; the legacy "5000" series never had
// formulas and prices at zero like any other unknown typology.
func DefaultFormulaTable() FormulaTable {
	return FormulaTable{
		{series3200SP, "2 TRACK 2 SHUTTER"}: {
			FrameModel:     frame3200SP2Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 2, SashWidthRuns: 2,
			InsideInterlockRuns: 1, OutsideInterlockRuns: 1,
			RailTracks: 2, LockCount: 2,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 4
				c["skrew19X8"] = 10
				c["cleatForFrame"] = 4
				c["cleatForShutter"] = 4
				c["shutterAngle"] = 4
				c["ssPatti"] = 8
				c["shutterAntiLift"] = 2
				c["skrew19X7"] = 2
				c["interLockCover"] = 4
				c["skrew13X7"] = 4
				c["brush"] = 2
				c["distancePieces"] = 16
				c["woolpipe"] = d.WidthM*4 + d.HeightM*4 + d.HeightM*2
				c["trackEPDM"] = d.WidthM*2 + d.HeightM*4
				c["interlockEPDM"] = d.HeightM * 2
				c["glassEPDM"] = d.WidthM*2 + d.HeightM*4
				c["glassPacker"] = (d.WidthMM*2 + d.HeightMM*4) / 650
				return c
			},
		},
		{series3200SP, "2 TRACK 3 SHUTTER"}: {
			FrameModel:     frame3200SP2Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 2, SashWidthRuns: 2,
			InsideInterlockRuns: 2, OutsideInterlockRuns: 2,
			RailTracks: 2, LockCount: 2,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 6
				c["skrew19X8"] = 16
				c["cleatForFrame"] = 4
				c["cleatForShutter"] = 4
				c["shutterAngle"] = 8
				c["ssPatti"] = 8
				c["shutterAntiLift"] = 3
				c["skrew19X7"] = 3
				c["interLockCover"] = 8
				c["skrew13X7"] = 8
				c["brush"] = 4
				c["distancePieces"] = 24
				c["woolpipe"] = d.WidthM*4 + d.HeightM*4 + d.HeightM*4
				c["trackEPDM"] = d.WidthM*2 + d.HeightM*4
				c["interlockEPDM"] = d.HeightM * 4
				c["glassEPDM"] = d.WidthM*2 + d.HeightM*6
				c["glassPacker"] = (d.WidthMM*2 + d.HeightMM*6) / 650
				return c
			},
		},
		{series3200SP, "2 TRACK 4 SHUTTER"}: {
			FrameModel:     frame3200SP2Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 4, SashWidthRuns: 2, HasMiddle: true,
			InsideInterlockRuns: 2, OutsideInterlockRuns: 2,
			RailTracks: 2, LockCount: 3,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 8
				c["skrew19X8"] = 20
				c["cleatForFrame"] = 4
				c["cleatForShutter"] = 8
				c["shutterAngle"] = 8
				c["ssPatti"] = 16
				c["shutterAntiLift"] = 4
				c["skrew19X7"] = 4
				c["interLockCover"] = 8
				c["skrew13X7"] = 8
				c["brush"] = 4
				c["distancePieces"] = 32
				c["woolpipe"] = d.WidthM*4 + d.HeightM*8 + d.HeightM*4
				c["trackEPDM"] = d.WidthM*2 + d.HeightM*4
				c["interlockEPDM"] = d.HeightM * 4
				c["glassEPDM"] = d.WidthM*2 + d.HeightM*8
				c["glassPacker"] = (d.WidthMM*2 + d.HeightMM*8) / 650
				return c
			},
		},
		{series3200SP, "3 TRACK 3 SHUTTER"}: {
			FrameModel:     frame3200SP3Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 2, SashWidthRuns: 2,
			InsideInterlockRuns: 2, OutsideInterlockRuns: 2,
			RailTracks: 3, LockCount: 2,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 6
				c["skrew19X8"] = 16
				c["cleatForFrame"] = 8
				c["cleatForShutter"] = 8
				c["shutterAngle"] = 12
				c["ssPatti"] = 16
				c["shutterAntiLift"] = 6
				c["skrew19X7"] = 6
				c["interLockCover"] = 12
				c["skrew13X7"] = 24
				c["brush"] = 6
				c["distancePieces"] = 48
				c["woolpipe"] = d.WidthM*6 + d.HeightM*12 + d.HeightM*6
				c["trackEPDM"] = d.WidthM*3 + d.HeightM*6
				c["interlockEPDM"] = d.HeightM * 4
				c["glassEPDM"] = d.WidthM*2 + d.HeightM*6
				c["glassPacker"] = (d.WidthMM*2 + d.HeightMM*6) / 650
				return c
			},
		},
		{series3200SP, "3 TRACK 6 SHUTTER"}: {
			FrameModel:     frame3200SP3Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 4, SashWidthRuns: 2, HasMiddle: true,
			InsideInterlockRuns: 4, OutsideInterlockRuns: 4,
			RailTracks: 3, LockCount: 3,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 12
				c["skrew19X8"] = 30
				c["cleatForFrame"] = 8
				c["cleatForShutter"] = 4
				c["shutterAngle"] = 8
				c["ssPatti"] = 8
				c["shutterAntiLift"] = 3
				c["skrew19X7"] = 3
				c["interLockCover"] = 8
				c["skrew13X7"] = 16
				c["brush"] = 4
				c["distancePieces"] = 24
				c["woolpipe"] = d.WidthM*4 + d.HeightM*4 + d.HeightM*4
				c["trackEPDM"] = d.WidthM*3 + d.HeightM*6
				c["interlockEPDM"] = d.HeightM * 6
				c["glassEPDM"] = d.WidthM*3 + d.HeightM*12
				c["glassPacker"] = (d.WidthMM*3 + d.HeightMM*6) / 650
				return c
			},
		},
		{series3200SP, "3 TRACK 2 SHUTTER 1 MASH"}: {
			FrameModel:     frame3200SP3Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 3, SashWidthRuns: 3,
			InsideInterlockRuns: 1, OutsideInterlockRuns: 1, MeshInterlockRuns: 1,
			RailTracks: 3, LockCount: 3,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 4
				c["nonroller"] = 2
				c["pta25x8"] = 4
				c["skrew19X8"] = 12
				c["cleatForFrame"] = 8
				c["cleatForShutter"] = 6
				c["shutterAngle"] = 6
				c["ssPatti"] = 12
				c["shutterAntiLift"] = 3
				c["skrew19X7"] = 3
				c["interLockCover"] = 6
				c["skrew13X7"] = 12
				c["brush"] = 4
				c["distancePieces"] = 24
				c["woolpipe"] = d.WidthM*6 + d.HeightM*6 + d.HeightM*6
				c["trackEPDM"] = d.WidthM*3 + d.HeightM*6
				c["interlockEPDM"] = d.HeightM * 3
				c["glassEPDM"] = d.WidthM*2 + d.HeightM*6
				c["glassPacker"] = (d.WidthMM*3 + d.HeightMM*4) / 650
				return c
			},
		},
		{series3200SP, "3 TRACK 3 SHUTTER 2 MASH (X-2X-X)"}: {
			FrameModel:     frame3200SP3Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 4, SashWidthRuns: 3, HasMiddle: true,
			InsideInterlockRuns: 2, OutsideInterlockRuns: 2, MeshInterlockRuns: 2,
			RailTracks: 3, LockCount: 4,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 6
				c["nonroller"] = 4
				c["pta25x8"] = 8
				c["skrew19X8"] = 18
				c["cleatForFrame"] = 8
				c["cleatForShutter"] = 12
				c["shutterAngle"] = 12
				c["ssPatti"] = 24
				c["shutterAntiLift"] = 6
				c["skrew19X7"] = 6
				c["interLockCover"] = 12
				c["skrew13X7"] = 24
				c["brush"] = 6
				c["distancePieces"] = 40
				c["woolpipe"] = d.WidthM*6 + d.HeightM*6 + d.HeightM*6
				c["trackEPDM"] = d.WidthM*3 + d.HeightM*6
				c["interlockEPDM"] = d.HeightM * 6
				c["glassEPDM"] = d.WidthM*3 + d.HeightM*10
				c["glassPacker"] = (d.WidthMM*3 + d.HeightMM*6) / 650
				return c
			},
		},
		{series3200SP, "3 TRACK 4 SHUTTER 2 MASH"}: {
			FrameModel:     frame3200SP3Track,
			SashModel:      sash3200SP,
			MiddleModel:    middle3200SP,
			SashHeightRuns: 6, SashWidthRuns: 3, HasMiddle: true,
			InsideInterlockRuns: 2, OutsideInterlockRuns: 2, MeshInterlockRuns: 2,
			RailTracks: 3, LockCount: 4,
			HardwareCounts: func(d Dims) map[string]float64 {
				c := perimeterCounts(d)
				c["roller"] = 8
				c["nonroller"] = 4
				c["pta25x8"] = 8
				c["skrew19X8"] = 22
				c["cleatForFrame"] = 8
				c["cleatForShutter"] = 12
				c["shutterAngle"] = 12
				c["ssPatti"] = 24
				c["shutterAntiLift"] = 6
				c["skrew19X7"] = 6
				c["interLockCover"] = 12
				c["skrew13X7"] = 24
				c["brush"] = 6
				c["distancePieces"] = 48
				c["woolpipe"] = d.WidthM*6 + d.HeightM*12 + d.HeightM*6
				c["trackEPDM"] = d.WidthM*3 + d.HeightM*6
				c["interlockEPDM"] = d.HeightM * 6
				c["glassEPDM"] = d.WidthM*3 + d.HeightM*12
				c["glassPacker"] = (d.WidthMM*3 + d.HeightMM*6) / 650
				return c
			},
		},
	}
}
