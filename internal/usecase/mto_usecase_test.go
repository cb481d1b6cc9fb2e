package usecase

import (
	"context"
	"errors"
	"testing"

	"alufab_quotes/internal/domain/entities"
	mock_interfaces "alufab_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newMTOMocks(t *testing.T) (*mock_interfaces.MockIQuotationRepository, *mock_interfaces.MockICatalogRepository, *mock_interfaces.MockIMTORepository, *MTOUseCase) {
	ctrl := gomock.NewController(t)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
	catalogs := mock_interfaces.NewMockICatalogRepository(ctrl)
	mtos := mock_interfaces.NewMockIMTORepository(ctrl)
	return quotations, catalogs, mtos, NewMTOUseCase(quotations, catalogs, mtos)
}

func mtoQuotation() entities.Quotation {
	return entities.Quotation{
		ID: "q-1",
		Header: entities.QuotationHeader{ProjectID: "proj-1"},
		Rows: []entities.QuotationRow{
			{
				Typology:         "p1",
				Glass:            "gl1",
				Lock:             "lk1",
				Finish:           "fi1",
				Rail:             "al-rail",
				InsideInterlock:  "al-in",
				OutsideInterlock: "al-out",
				Qty:              2,
				Sqft:             "10.764",
				Sqm:              "1.000",
				HardwareDetails: map[string]entities.HardwareSnapshot{
					"roller":    {VendorCode: "PH412", Rate: 50},
					"wallSkrew": {VendorCode: "CSK PH 8X75 [SS-304]", Rate: 2},
				},
			},
			{
				Typology: "p1",
				Glass:    "gl1",
				Qty:      1,
				Sqft:     "16.146",
				Sqm:      "1.500",
			},
		},
	}
}

func TestMTOUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("groups components across rows", func(t *testing.T) {
		quotations, catalogs, mtos, uc := newMTOMocks(t)
		quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(mtoQuotation(), nil)
		catalogs.EXPECT().GetCatalogs(gomock.Any()).Return(fixtureCatalogs(), nil)

		var saved entities.MTO
		mtos.EXPECT().ReplaceForQuotation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.MTO) (entities.MTO, error) {
				saved = m
				return m, nil
			})

		got, err := uc.Generate(ctx, "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuotationID != "q-1" || got.ProjectID != "proj-1" {
			t.Fatalf("wrong document identity: %+v", got)
		}
		if got.ID == "" {
			t.Fatalf("expected a generated id")
		}

		byLabel := map[string]entities.MTOItem{}
		for _, item := range saved.Items {
			byLabel[item.Label] = item
		}

		// Both rows share the glass and typology. Quantities accumulate,
		// areas are the rows' own sqft/sqm: 1.000 + 1.500 sqm.
		glass, ok := byLabel["GLASS • 5MM CLEAR"]
		if !ok {
			t.Fatalf("missing glass line: %v", saved.Items)
		}
		if glass.Qty != 3 || glass.Sqm != 2.5 || glass.Sqft != 26.91 {
			t.Fatalf("glass line wrong: %+v", glass)
		}
		alu, ok := byLabel["ALUMINIUM • 2 Track 2 Shutter"]
		if !ok || alu.Qty != 3 || alu.Sqm != 2.5 {
			t.Fatalf("aluminium line wrong: %+v", alu)
		}

		// Lock, finish, rail and interlocks only appear on the first row
		// and carry that row's area.
		if l := byLabel["LOCK • TOUCH LOCK"]; l.Qty != 2 || l.Sqm != 1 {
			t.Fatalf("lock line wrong: %+v", l)
		}
		if f := byLabel["FINISH • POWDER COAT"]; f.Qty != 2 || f.Sqm != 1 {
			t.Fatalf("finish line wrong: %+v", f)
		}
		if r := byLabel["RAIL • 3200 SP RAIL"]; r.Qty != 2 || r.Sqm != 1 {
			t.Fatalf("rail line wrong: %+v", r)
		}
		if in := byLabel["INSIDE INTERLOCK • 3200 SP INTERLOCK IN"]; in.Qty != 2 || in.Sqm != 1 {
			t.Fatalf("inside interlock line wrong: %+v", in)
		}
		if out := byLabel["OUTSIDE INTERLOCK • 3200 SP INTERLOCK OUT"]; out.Qty != 2 || out.Sqm != 1 {
			t.Fatalf("outside interlock line wrong: %+v", out)
		}

		// Hardware lines come from the row snapshot, one count per part kind.
		if h := byLabel["HARDWARE • ROLLER"]; h.Qty != 1 {
			t.Fatalf("roller line wrong: %+v", h)
		}
		if h := byLabel["HARDWARE • WALL SKREW"]; h.Qty != 1 {
			t.Fatalf("wall skrew line wrong: %+v", h)
		}

		// Output ordering is stable.
		for i := 1; i < len(saved.Items); i++ {
			if saved.Items[i-1].Label > saved.Items[i].Label {
				t.Fatalf("items not sorted: %v", saved.Items)
			}
		}
	})

	t.Run("quotation not found", func(t *testing.T) {
		quotations, _, _, uc := newMTOMocks(t)
		quotations.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quotation{}, nil)

		if _, err := uc.Generate(ctx, "q-404"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("empty quotation id", func(t *testing.T) {
		_, _, _, uc := newMTOMocks(t)
		if _, err := uc.Generate(ctx, ""); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})
}

func TestMTOUseCase_GetByQuotation(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		_, _, mtos, uc := newMTOMocks(t)
		mtos.EXPECT().GetByQuotation(gomock.Any(), "q-1").Return(entities.MTO{ID: "m-1"}, nil)

		m, err := uc.GetByQuotation(ctx, "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != "m-1" {
			t.Fatalf("wrong document: %+v", m)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, _, mtos, uc := newMTOMocks(t)
		mtos.EXPECT().GetByQuotation(gomock.Any(), "q-1").Return(entities.MTO{}, nil)

		if _, err := uc.GetByQuotation(ctx, "q-1"); !errors.Is(err, ErrMTONotFound) {
			t.Fatalf("expected ErrMTONotFound, got %v", err)
		}
	})
}

func TestHumanizePartKey(t *testing.T) {
	cases := map[string]string{
		"roller":             "ROLLER",
		"wallSkrew":          "WALL SKREW",
		"waterDrainageCover": "WATER DRAINAGE COVER",
		"skrew19X8":          "SKREW19 X8",
	}
	for in, want := range cases {
		if got := humanizePartKey(in); got != want {
			t.Fatalf("humanizePartKey(%q) = %q, want %q", in, got, want)
		}
	}
}
