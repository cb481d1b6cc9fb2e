package interfaces

import (
	"context"

	"alufab_quotes/internal/domain/entities"
)

// ICatalogRepository loads the reference catalogs the pricing engine resolves
// selections against. Implementations may cache; the returned snapshot must
// be internally consistent.

type ICatalogRepository interface {
	GetCatalogs(ctx context.Context) (entities.Catalogs, error)
}
