package interfaces

import (
	"context"
	"errors"

	"alufab_quotes/internal/domain/entities"
)

// ErrRevisionExists is returned by Create when the (project, revision) slot
// is already occupied. The store must detect this atomically (conditional
// write), not by read-then-write.
var ErrRevisionExists = errors.New("quotation revision already exists")

// IQuotationRepository abstracts DynamoDB persistence for quotation
// revisions. Revisions are immutable once written; there is no Update.
//
// Lookups that find nothing return a zero-value entity and a nil error, the
// usecase layer decides whether that is a not-found condition.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetLatestByProject(ctx context.Context, projectID string) (entities.Quotation, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Quotation, error)
	List(ctx context.Context) ([]entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}
