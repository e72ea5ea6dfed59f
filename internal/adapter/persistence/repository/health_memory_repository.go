package repository

import (
	"context"
	"sync"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"
)

// HealthMemoryRepository is the probe/sink used when quotes live in memory:
// the store is the process itself, so the probe always succeeds.
type HealthMemoryRepository struct {
	mu      sync.Mutex
	records []entities.HealthRecord
}

var _ interfaces.IHealthRepository = (*HealthMemoryRepository)(nil)

func NewHealthMemoryRepository() *HealthMemoryRepository {
	return &HealthMemoryRepository{}
}

func (r *HealthMemoryRepository) Ping(_ context.Context) error {
	return nil
}

func (r *HealthMemoryRepository) SaveHealthCheck(_ context.Context, rec entities.HealthRecord) (entities.HealthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = nextQuoteID()
	r.records = append(r.records, rec)
	return rec, nil
}
