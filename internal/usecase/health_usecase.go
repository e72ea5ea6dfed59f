package usecase

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// IHealthUseCase builds health snapshots for the liveness endpoints.

type IHealthUseCase interface {
	Check(ctx context.Context) (entities.HealthRecord, error)
}

type HealthUseCase struct {
	repo        interfaces.IHealthRepository
	environment string
	startedAt   time.Time
	logger      zerolog.Logger
}

var _ IHealthUseCase = (*HealthUseCase)(nil)

func NewHealthUseCase(repo interfaces.IHealthRepository, environment string, logger zerolog.Logger) *HealthUseCase {
	return &HealthUseCase{
		repo:        repo,
		environment: environment,
		startedAt:   time.Now(),
		logger:      logger.With().Str("usecase", "health").Logger(),
	}
}

// Check never fails because the store is down: a probe failure is reported
// as a degraded services.database status on an otherwise successful check.
func (u *HealthUseCase) Check(ctx context.Context) (entities.HealthRecord, error) {
	dbStatus := entities.ServiceStateOK
	if err := u.repo.Ping(ctx); err != nil {
		u.logger.Warn().Err(err).Msg("database connectivity probe failed")
		dbStatus = entities.ServiceStateError
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	record := entities.HealthRecord{
		Status:      "OK",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(u.startedAt).Seconds(),
		Environment: u.environment,
		Memory: entities.MemoryUsage{
			Used:  roundMB(mem.HeapAlloc),
			Total: roundMB(mem.HeapSys),
		},
		Services: entities.ServiceStatuses{
			Database: dbStatus,
			Cache:    entities.ServiceStateOK,
		},
	}

	// Best effort: a failed save must not degrade the health check itself.
	if _, err := u.repo.SaveHealthCheck(ctx, record); err != nil {
		u.logger.Warn().Err(err).Msg("failed to save health check record")
	}

	return record, nil
}

// roundMB converts bytes to megabytes with two decimals.
func roundMB(b uint64) float64 {
	return math.Round(float64(b)/1024/1024*100) / 100
}
