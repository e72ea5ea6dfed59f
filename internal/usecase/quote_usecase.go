package usecase

import (
	"context"
	"errors"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase exposes the quote CRUD operations behind the HTTP surface:
//   - POST /quotes/catalog, /quotes/custom => CreateCatalogQuote/CreateCustomQuote
//   - GET /quotes => GetQuotes (filters + pagination)
//   - GET /quotes/:id => GetQuoteByID
//   - PUT /quotes/catalog/:id, /quotes/custom/:id => variant-specific updates
//   - DELETE /quotes/:id => DeleteQuote

type IQuoteUseCase interface {
	CreateCatalogQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	CreateCustomQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetQuotes(ctx context.Context, f entities.QuoteFilters) ([]entities.Quote, entities.PaginationInfo, error)
	GetQuoteByID(ctx context.Context, id int64) (entities.Quote, error)
	UpdateCatalogQuote(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error)
	UpdateCustomQuote(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) CreateCatalogQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return u.repo.CreateCatalog(ctx, q)
}

func (u *QuoteUseCase) CreateCustomQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return u.repo.CreateCustom(ctx, q)
}

func (u *QuoteUseCase) GetQuotes(ctx context.Context, f entities.QuoteFilters) ([]entities.Quote, entities.PaginationInfo, error) {
	quotes, totalItems, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, entities.PaginationInfo{}, err
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + f.Limit - 1) / f.Limit
	}

	return quotes, entities.PaginationInfo{
		CurrentPage:  f.Page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: f.Limit,
	}, nil
}

func (u *QuoteUseCase) GetQuoteByID(ctx context.Context, id int64) (entities.Quote, error) {
	if id <= 0 {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateCatalogQuote(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error) {
	return u.update(ctx, id, patch, u.repo.UpdateCatalog)
}

func (u *QuoteUseCase) UpdateCustomQuote(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error) {
	return u.update(ctx, id, patch, u.repo.UpdateCustom)
}

func (u *QuoteUseCase) update(
	ctx context.Context,
	id int64,
	patch entities.QuotePatch,
	updater func(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error),
) (entities.Quote, error) {
	if id <= 0 {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := updater(ctx, id, patch)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidQuoteID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	return nil
}
