package interfaces

import (
	"context"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for the quote collection.
//
// Conventions shared by all implementations:
//   - create operations assign the id and return the stored record
//   - lookups return a zero-value Quote (ID == 0) and a nil error when the
//     id is absent or belongs to the other variant
//   - Delete reports whether a record was found and removed
//   - List returns the page of matching quotes plus the total match count

type IQuoteRepository interface {
	CreateCatalog(ctx context.Context, q entities.Quote) (entities.Quote, error)
	CreateCustom(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context, f entities.QuoteFilters) ([]entities.Quote, int, error)
	GetByID(ctx context.Context, id int64) (entities.Quote, error)
	UpdateCatalog(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error)
	UpdateCustom(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
