package interfaces

import (
	"context"

	"alufab_quotes/internal/domain/entities"
)

// IProjectRepository exposes the slice of the project master the quotation
// engine needs: existence checks and the latest-quotation pointer.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	SetQuotationPointer(ctx context.Context, projectID, quotationID string) error
}
