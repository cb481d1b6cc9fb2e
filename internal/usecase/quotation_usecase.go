package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/domain/pricing"
	"alufab_quotes/internal/usecase/interfaces"
)

var (
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrNoRows             = errors.New("quotation has no rows")
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrRevisionConflict   = errors.New("quotation revision conflict")
	ErrDifferentProjects  = errors.New("quotations belong to different projects")
)

// SaveResult is the outcome of SaveDraft. Unchanged means the submitted
// content matched the latest revision and no new revision was written.
type SaveResult struct {
	Quotation entities.Quotation
	Unchanged bool
}

// IQuotationUseCase exposes the quotation pricing and revision operations.
//
//   - ComputeRow / ComputeTotals serve the editor's live preview
//   - SaveDraft persists a new immutable revision (server-side repriced)
//   - DiffRevisions explains what changed between two saved revisions

type IQuotationUseCase interface {
	ComputeRow(ctx context.Context, row entities.QuotationRow, header entities.QuotationHeader) (entities.QuotationRow, error)
	ComputeTotals(ctx context.Context, rows []entities.QuotationRow, header entities.QuotationHeader) (entities.Totals, error)
	SaveDraft(ctx context.Context, projectID string, header entities.QuotationHeader, rows []entities.QuotationRow) (SaveResult, error)
	ListRevisions(ctx context.Context, projectID string) ([]entities.Quotation, error)
	DiffRevisions(ctx context.Context, olderID, newerID string) ([]entities.DiffEntry, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context) ([]entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	quotations interfaces.IQuotationRepository
	projects   interfaces.IProjectRepository
	catalogs   interfaces.ICatalogRepository
	table      pricing.FormulaTable
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	quotations interfaces.IQuotationRepository,
	projects interfaces.IProjectRepository,
	catalogs interfaces.ICatalogRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		quotations: quotations,
		projects:   projects,
		catalogs:   catalogs,
		table:      pricing.DefaultFormulaTable(),
	}
}

func (u *QuotationUseCase) ComputeRow(ctx context.Context, row entities.QuotationRow, header entities.QuotationHeader) (entities.QuotationRow, error) {
	cats, err := u.catalogs.GetCatalogs(ctx)
	if err != nil {
		return entities.QuotationRow{}, err
	}
	return u.priceRow(row, header.Normalized(), cats), nil
}

// priceRow runs the engine and surfaces a typology the formula table does not
// know as a warning. The row itself stays at zero amount, never an error.
func (u *QuotationUseCase) priceRow(row entities.QuotationRow, header entities.QuotationHeader, cats entities.Catalogs) entities.QuotationRow {
	priced := pricing.PriceRow(row, header, cats, u.table)
	if priced.UnknownTypology {
		log.Printf("[quotation][usecase] unknown typology, row priced at zero series=%q typology=%q", row.Series, row.Typology)
	}
	return priced
}

// ComputeTotals prices the submitted rows and aggregates them. Client-sent
// computed fields are ignored the same way SaveDraft ignores them.
func (u *QuotationUseCase) ComputeTotals(ctx context.Context, rows []entities.QuotationRow, header entities.QuotationHeader) (entities.Totals, error) {
	cats, err := u.catalogs.GetCatalogs(ctx)
	if err != nil {
		return entities.Totals{}, err
	}
	h := header.Normalized()
	priced := make([]entities.QuotationRow, len(rows))
	for i, r := range rows {
		priced[i] = u.priceRow(r, h, cats)
	}
	return pricing.ComputeTotals(priced, h), nil
}

// SaveDraft reprices the submitted document and writes it as the project's
// next revision. The client's computed fields are ignored, only selections,
// dimensions and header pricing context are trusted.
//
// Revisions are claimed with a conditional write, two concurrent saves of
// the same project produce exactly one winner and one ErrRevisionConflict.
func (u *QuotationUseCase) SaveDraft(ctx context.Context, projectID string, header entities.QuotationHeader, rows []entities.QuotationRow) (SaveResult, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return SaveResult{}, ErrInvalidProjectID
	}
	if len(rows) == 0 {
		return SaveResult{}, ErrNoRows
	}

	cats, err := u.catalogs.GetCatalogs(ctx)
	if err != nil {
		return SaveResult{}, err
	}

	h := header.Normalized()
	h.ProjectID = projectID

	priced := make([]entities.QuotationRow, len(rows))
	for i, r := range rows {
		priced[i] = u.priceRow(r, h, cats)
	}
	totals := pricing.ComputeTotals(priced, h)

	latest, err := u.quotations.GetLatestByProject(ctx, projectID)
	if err != nil {
		return SaveResult{}, err
	}

	if latest.ID != "" {
		// Client identity is sticky across revisions unless overridden.
		if h.ClientName == "" {
			h.ClientName = latest.Header.ClientName
		}
		if h.ClientCity == "" {
			h.ClientCity = latest.Header.ClientCity
		}
		h.Revision = latest.Header.Revision + 1

		candidate := buildQuotation(h, priced, totals)
		if sameQuotationContent(candidate, latest) {
			return SaveResult{Quotation: latest, Unchanged: true}, nil
		}
		return u.createRevision(ctx, projectID, candidate)
	}

	h.Revision = 0
	return u.createRevision(ctx, projectID, buildQuotation(h, priced, totals))
}

func (u *QuotationUseCase) createRevision(ctx context.Context, projectID string, q entities.Quotation) (SaveResult, error) {
	created, err := u.quotations.Create(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrRevisionExists) {
			return SaveResult{}, ErrRevisionConflict
		}
		return SaveResult{}, err
	}

	// The project's pointer to its latest quotation is a convenience for
	// listing screens. A failure here leaves the revision intact, so it is
	// logged and not surfaced.
	if err := u.projects.SetQuotationPointer(ctx, projectID, created.ID); err != nil {
		log.Printf("[quotation][usecase] pointer update failed project_id=%s quotation_id=%s err=%v", projectID, created.ID, err)
	}
	return SaveResult{Quotation: created}, nil
}

func buildQuotation(h entities.QuotationHeader, rows []entities.QuotationRow, t entities.Totals) entities.Quotation {
	return entities.Quotation{
		ID:              uuid.NewString(),
		Header:          h,
		Rows:            rows,
		TotalAmt:        t.ProductsAmount,
		TaxAmt:          t.TaxAmount,
		Grand:           t.GrandTotal,
		FabricationAmt:  t.FabricationAmount,
		InstallationAmt: t.InstallationAmount,
		DiscountAmt:     t.DiscountAmount,
		CreatedAt:       time.Now().UTC(),
	}
}

func (u *QuotationUseCase) ListRevisions(ctx context.Context, projectID string) ([]entities.Quotation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	revisions, err := u.quotations.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.Slice(revisions, func(i, j int) bool {
		return revisions[i].Header.Revision < revisions[j].Header.Revision
	})
	return revisions, nil
}

func (u *QuotationUseCase) DiffRevisions(ctx context.Context, olderID, newerID string) ([]entities.DiffEntry, error) {
	older, err := u.getExisting(ctx, olderID)
	if err != nil {
		return nil, err
	}
	newer, err := u.getExisting(ctx, newerID)
	if err != nil {
		return nil, err
	}
	if older.Header.ProjectID != newer.Header.ProjectID {
		return nil, ErrDifferentProjects
	}
	return diffQuotations(older, newer), nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.getExisting(ctx, id)
}

func (u *QuotationUseCase) List(ctx context.Context) ([]entities.Quotation, error) {
	quotations, err := u.quotations.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(quotations, func(i, j int) bool {
		return quotations[i].CreatedAt.After(quotations[j].CreatedAt)
	})
	return quotations, nil
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.getExisting(ctx, id); err != nil {
		return err
	}
	return u.quotations.Delete(ctx, strings.TrimSpace(id))
}

func (u *QuotationUseCase) getExisting(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
