package interfaces

import (
	"context"

	"alufab_quotes/internal/domain/entities"
)

// IMTORepository abstracts persistence for material take-off documents.
// Regeneration replaces the previous document for the same quotation.

type IMTORepository interface {
	ReplaceForQuotation(ctx context.Context, m entities.MTO) (entities.MTO, error)
	GetByQuotation(ctx context.Context, quotationID string) (entities.MTO, error)
}
