package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/usecase/interfaces"
)

var ErrMTONotFound = errors.New("material take-off not found")

// IMTOUseCase builds and serves material take-off documents. Generate is
// idempotent per quotation: a rerun replaces the previous document.

type IMTOUseCase interface {
	Generate(ctx context.Context, quotationID string) (entities.MTO, error)
	GetByQuotation(ctx context.Context, quotationID string) (entities.MTO, error)
}

type MTOUseCase struct {
	quotations interfaces.IQuotationRepository
	catalogs   interfaces.ICatalogRepository
	mtos       interfaces.IMTORepository
}

var _ IMTOUseCase = (*MTOUseCase)(nil)

func NewMTOUseCase(
	quotations interfaces.IQuotationRepository,
	catalogs interfaces.ICatalogRepository,
	mtos interfaces.IMTORepository,
) *MTOUseCase {
	return &MTOUseCase{quotations: quotations, catalogs: catalogs, mtos: mtos}
}

// Generate explodes every quotation row into labelled components (aluminium
// system, glass, lock, finish, rail, interlocks, hardware parts), groups them
// by label across rows and persists the aggregate as the quotation's MTO.
func (u *MTOUseCase) Generate(ctx context.Context, quotationID string) (entities.MTO, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.MTO{}, ErrInvalidQuotationID
	}
	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.MTO{}, err
	}
	if q.ID == "" {
		return entities.MTO{}, ErrQuotationNotFound
	}

	cats, err := u.catalogs.GetCatalogs(ctx)
	if err != nil {
		return entities.MTO{}, err
	}

	acc := map[string]*entities.MTOItem{}
	bump := func(label string, qty, sqft, sqm float64) {
		if label == "" {
			return
		}
		item, ok := acc[label]
		if !ok {
			item = &entities.MTOItem{Label: label}
			acc[label] = item
		}
		item.Qty += qty
		item.Sqft += sqft
		item.Sqm += sqm
	}

	for _, r := range q.Rows {
		qty := float64(r.Qty)
		if qty <= 0 {
			qty = 1
		}
		sqft := parseMeasure(r.Sqft)
		sqm := parseMeasure(r.Sqm)

		if p, ok := cats.ProductByTypology(r.Typology); ok {
			bump("ALUMINIUM • "+p.Typology, qty, sqft, sqm)
		} else if r.Typology != "" {
			bump("ALUMINIUM • "+r.Typology, qty, sqft, sqm)
		}
		if g, ok := cats.GlassByRef(r.Glass); ok {
			bump("GLASS • "+g.Title, qty, sqft, sqm)
		}
		if l, ok := cats.LockByRef(r.Lock); ok {
			bump("LOCK • "+l.Title, qty, sqft, sqm)
		}
		if f, ok := cats.FinishByRef(r.Finish); ok {
			bump("FINISH • "+f.Title, qty, sqft, sqm)
		}
		if a, ok := cats.AluminiumByRef(r.Rail); ok {
			bump(aluminiumLabel("RAIL", a), qty, sqft, sqm)
		}
		if a, ok := cats.AluminiumByRef(r.InsideInterlock); ok {
			bump(aluminiumLabel("INSIDE INTERLOCK", a), qty, sqft, sqm)
		}
		if a, ok := cats.AluminiumByRef(r.OutsideInterlock); ok {
			bump(aluminiumLabel("OUTSIDE INTERLOCK", a), qty, sqft, sqm)
		}
		if a, ok := cats.AluminiumByRef(r.MeshInterlock); ok {
			bump(aluminiumLabel("MESH INTERLOCK", a), qty, sqft, sqm)
		}

		// Hardware snapshots carry one entry per part kind the row used.
		parts := make([]string, 0, len(r.HardwareDetails))
		for key := range r.HardwareDetails {
			parts = append(parts, key)
		}
		sort.Strings(parts)
		for _, key := range parts {
			bump("HARDWARE • "+humanizePartKey(key), 1, 0, 0)
		}
	}

	items := make([]entities.MTOItem, 0, len(acc))
	for _, item := range acc {
		item.Sqft = roundTo2(item.Sqft)
		item.Sqm = roundTo2(item.Sqm)
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })

	mto := entities.MTO{
		ID:          uuid.NewString(),
		QuotationID: q.ID,
		ProjectID:   q.Header.ProjectID,
		Items:       items,
		GeneratedAt: time.Now().UTC(),
	}
	return u.mtos.ReplaceForQuotation(ctx, mto)
}

func (u *MTOUseCase) GetByQuotation(ctx context.Context, quotationID string) (entities.MTO, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.MTO{}, ErrInvalidQuotationID
	}
	m, err := u.mtos.GetByQuotation(ctx, quotationID)
	if err != nil {
		return entities.MTO{}, err
	}
	if m.ID == "" {
		return entities.MTO{}, ErrMTONotFound
	}
	return m, nil
}

func aluminiumLabel(kind string, a entities.AluminiumItem) string {
	if a.Make == "" {
		return fmt.Sprintf("%s • %s", kind, a.Model)
	}
	return fmt.Sprintf("%s • %s (%s)", kind, a.Model, a.Make)
}

// humanizePartKey turns a camelCase part key into the uppercase label used on
// take-off sheets, e.g. "waterDrainageCover" -> "WATER DRAINAGE COVER".
func humanizePartKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func parseMeasure(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
