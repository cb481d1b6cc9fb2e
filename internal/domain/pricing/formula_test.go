package pricing

import (
	"math"
	"testing"
)

func TestDefaultFormulaTable_CoversKnownTypologies(t *testing.T) {
	table := DefaultFormulaTable()

	known := []string{
		"2 TRACK 2 SHUTTER",
		"2 TRACK 3 SHUTTER",
		"2 TRACK 4 SHUTTER",
		"3 TRACK 3 SHUTTER",
		"3 TRACK 6 SHUTTER",
		"3 TRACK 2 SHUTTER 1 MASH",
		"3 TRACK 3 SHUTTER 2 MASH (X-2X-X)",
		"3 TRACK 4 SHUTTER 2 MASH",
	}
	if len(table) != len(known) {
		t.Fatalf("expected %d entries, got %d", len(known), len(table))
	}
	for _, name := range known {
		if _, ok := table.Lookup("3200 SP", name); !ok {
			t.Fatalf("missing formula for %q", name)
		}
	}

	// Lookup normalizes case the way the legacy typology names were stored.
	if _, ok := table.Lookup("3200 SP", "3 Track 3 Shutter 2 Mash (x-2x-x)"); !ok {
		t.Fatalf("expected case-insensitive typology lookup")
	}
	if _, ok := table.Lookup("5000", "2 TRACK 2 SHUTTER"); ok {
		t.Fatalf("series 5000 has no formulas")
	}
}

func TestDefaultFormulaTable_StructuralCoefficients(t *testing.T) {
	table := DefaultFormulaTable()

	cases := []struct {
		typology   string
		frameModel string
		lockCount  float64
		railTracks float64
		meshRuns   float64
		hasMiddle  bool
	}{
		{"2 TRACK 2 SHUTTER", frame3200SP2Track, 2, 2, 0, false},
		{"2 TRACK 3 SHUTTER", frame3200SP2Track, 2, 2, 0, false},
		{"2 TRACK 4 SHUTTER", frame3200SP2Track, 3, 2, 0, true},
		{"3 TRACK 3 SHUTTER", frame3200SP3Track, 2, 3, 0, false},
		{"3 TRACK 6 SHUTTER", frame3200SP3Track, 3, 3, 0, true},
		{"3 TRACK 2 SHUTTER 1 MASH", frame3200SP3Track, 3, 3, 1, false},
		{"3 TRACK 3 SHUTTER 2 MASH (X-2X-X)", frame3200SP3Track, 4, 3, 2, true},
		{"3 TRACK 4 SHUTTER 2 MASH", frame3200SP3Track, 4, 3, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.typology, func(t *testing.T) {
			spec, ok := table.Lookup("3200 SP", tc.typology)
			if !ok {
				t.Fatalf("missing formula")
			}
			if spec.FrameModel != tc.frameModel {
				t.Fatalf("frame model: expected %q, got %q", tc.frameModel, spec.FrameModel)
			}
			if spec.LockCount != tc.lockCount {
				t.Fatalf("lock count: expected %v, got %v", tc.lockCount, spec.LockCount)
			}
			if spec.RailTracks != tc.railTracks {
				t.Fatalf("rail tracks: expected %v, got %v", tc.railTracks, spec.RailTracks)
			}
			if spec.MeshInterlockRuns != tc.meshRuns {
				t.Fatalf("mesh runs: expected %v, got %v", tc.meshRuns, spec.MeshInterlockRuns)
			}
			if spec.HasMiddle != tc.hasMiddle {
				t.Fatalf("middle: expected %v, got %v", tc.hasMiddle, spec.HasMiddle)
			}
			if spec.InsideInterlockRuns != spec.OutsideInterlockRuns {
				t.Fatalf("inside/outside interlock runs diverge: %v vs %v",
					spec.InsideInterlockRuns, spec.OutsideInterlockRuns)
			}
		})
	}
}

func TestDefaultFormulaTable_HardwareCounts(t *testing.T) {
	table := DefaultFormulaTable()
	d := Dims{WidthM: 1.5, HeightM: 1.0, WidthMM: 1500, HeightMM: 1000, PerimeterM: 5}

	t.Run("rollers per typology", func(t *testing.T) {
		rollers := map[string]float64{
			"2 TRACK 2 SHUTTER":                 4,
			"2 TRACK 3 SHUTTER":                 6,
			"2 TRACK 4 SHUTTER":                 8,
			"3 TRACK 3 SHUTTER":                 6,
			"3 TRACK 6 SHUTTER":                 12,
			"3 TRACK 2 SHUTTER 1 MASH":          4,
			"3 TRACK 3 SHUTTER 2 MASH (X-2X-X)": 6,
			"3 TRACK 4 SHUTTER 2 MASH":          8,
		}
		for typology, want := range rollers {
			spec, _ := table.Lookup("3200 SP", typology)
			if got := spec.HardwareCounts(d)["roller"]; got != want {
				t.Fatalf("%s: expected %v rollers, got %v", typology, want, got)
			}
		}
	})

	t.Run("non-rollers only on mesh typologies", func(t *testing.T) {
		for key, spec := range table {
			counts := spec.HardwareCounts(d)
			if spec.MeshInterlockRuns > 0 {
				if counts["nonroller"] == 0 || counts["pta25x8"] == 0 {
					t.Fatalf("%s: mesh typology must carry nonroller and pta25x8 parts", key.Typology)
				}
			} else {
				if counts["nonroller"] != 0 || counts["pta25x8"] != 0 {
					t.Fatalf("%s: non-mesh typology must not carry mesh hardware", key.Typology)
				}
			}
		}
	})

	t.Run("pitch driven counts", func(t *testing.T) {
		spec, _ := table.Lookup("3200 SP", "2 TRACK 2 SHUTTER")
		counts := spec.HardwareCounts(d)

		within := func(got, want float64) bool { return math.Abs(got-want) < 1e-9 }
		if !within(counts["waterDrainageCover"], 1500.0/550) {
			t.Fatalf("waterDrainageCover: got %v", counts["waterDrainageCover"])
		}
		if !within(counts["wallSkrew"], 5000.0/650) {
			t.Fatalf("wallSkrew: got %v", counts["wallSkrew"])
		}
		if !within(counts["packing"], 5000.0/550) {
			t.Fatalf("packing: got %v", counts["packing"])
		}
		if !within(counts["silicon"], 10.0/9.5) {
			t.Fatalf("silicon: got %v", counts["silicon"])
		}
		if !within(counts["woolpipe"], 1.5*4+1.0*4+1.0*2) {
			t.Fatalf("woolpipe: got %v", counts["woolpipe"])
		}
		if !within(counts["glassPacker"], (1500.0*2+1000.0*4)/650) {
			t.Fatalf("glassPacker: got %v", counts["glassPacker"])
		}
	})
}

func TestHardwareVendorCodes_FormulaPartsResolvable(t *testing.T) {
	table := DefaultFormulaTable()
	d := Dims{WidthM: 2, HeightM: 1, WidthMM: 2000, HeightMM: 1000, PerimeterM: 6}

	for key, spec := range table {
		for part := range spec.HardwareCounts(d) {
			if _, ok := HardwareVendorCodes[part]; !ok {
				t.Fatalf("%s: part %q has no vendor code mapping", key.Typology, part)
			}
		}
	}
}
