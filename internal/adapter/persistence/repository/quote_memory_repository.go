package repository

import (
	"context"
	"sync"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"
)

// QuoteMemoryRepository keeps the quote collections in process memory.
//
// It is the canonical store when no database is configured, and the store
// tests run against. Each instance owns its own collections, so tests can
// construct isolated repositories instead of sharing process state.
//
// Go handlers run in parallel, so every operation takes the repository lock;
// read-modify-write sequences (find then replace) happen under one critical
// section.
type QuoteMemoryRepository struct {
	mu            sync.RWMutex
	catalogQuotes []entities.Quote
	customQuotes  []entities.Quote
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{}
}

func (r *QuoteMemoryRepository) CreateCatalog(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q.ID = nextQuoteID()
	q.Type = entities.QuoteTypeCatalog
	q.CreatedAt = time.Now().UTC()
	r.catalogQuotes = append(r.catalogQuotes, q)
	return q, nil
}

func (r *QuoteMemoryRepository) CreateCustom(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q.ID = nextQuoteID()
	q.Type = entities.QuoteTypeCustom
	q.CreatedAt = time.Now().UTC()
	r.customQuotes = append(r.customQuotes, q)
	return q, nil
}

func (r *QuoteMemoryRepository) List(_ context.Context, f entities.QuoteFilters) ([]entities.Quote, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	combined := make([]entities.Quote, 0, len(r.catalogQuotes)+len(r.customQuotes))
	combined = append(combined, r.catalogQuotes...)
	combined = append(combined, r.customQuotes...)
	sortQuotesByID(combined)

	matched := make([]entities.Quote, 0, len(combined))
	for _, q := range combined {
		if matchQuoteFilters(q, f) {
			matched = append(matched, q)
		}
	}

	return paginateQuotes(matched, f.Page, f.Limit), len(matched), nil
}

// GetByID searches the catalog collection first, then the custom one.
func (r *QuoteMemoryRepository) GetByID(_ context.Context, id int64) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if q, ok := findQuote(r.catalogQuotes, id); ok {
		return q, nil
	}
	if q, ok := findQuote(r.customQuotes, id); ok {
		return q, nil
	}
	return entities.Quote{}, nil
}

func (r *QuoteMemoryRepository) UpdateCatalog(_ context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return updateQuoteIn(r.catalogQuotes, id, patch), nil
}

func (r *QuoteMemoryRepository) UpdateCustom(_ context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return updateQuoteIn(r.customQuotes, id, patch), nil
}

func (r *QuoteMemoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quotes, ok := removeQuote(r.catalogQuotes, id); ok {
		r.catalogQuotes = quotes
		return true, nil
	}
	if quotes, ok := removeQuote(r.customQuotes, id); ok {
		r.customQuotes = quotes
		return true, nil
	}
	return false, nil
}

func findQuote(quotes []entities.Quote, id int64) (entities.Quote, bool) {
	for _, q := range quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Quote{}, false
}

func updateQuoteIn(quotes []entities.Quote, id int64, patch entities.QuotePatch) entities.Quote {
	for i, q := range quotes {
		if q.ID == id {
			updated := applyQuotePatch(q, patch)
			updated.UpdatedAt = time.Now().UTC()
			quotes[i] = updated
			return updated
		}
	}
	return entities.Quote{}
}

func removeQuote(quotes []entities.Quote, id int64) ([]entities.Quote, bool) {
	for i, q := range quotes {
		if q.ID == id {
			return append(quotes[:i], quotes[i+1:]...), true
		}
	}
	return quotes, false
}
