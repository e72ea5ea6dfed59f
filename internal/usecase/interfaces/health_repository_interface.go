package interfaces

import (
	"context"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

// IHealthRepository exposes the backing-store connectivity probe and the
// best-effort health record sink.

type IHealthRepository interface {
	Ping(ctx context.Context) error
	SaveHealthCheck(ctx context.Context, r entities.HealthRecord) (entities.HealthRecord, error)
}
