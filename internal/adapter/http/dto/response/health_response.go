package response

import (
	"time"

	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
)

type MemoryResponse struct {
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
}

type ServicesResponse struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type HealthResponse struct {
	Status      string           `json:"status"`
	Timestamp   string           `json:"timestamp"`
	Uptime      float64          `json:"uptime"`
	Environment string           `json:"environment"`
	Version     string           `json:"version"`
	Memory      MemoryResponse   `json:"memory"`
	Services    ServicesResponse `json:"services"`
}

func FromHealthRecord(r entities.HealthRecord, version string) HealthResponse {
	return HealthResponse{
		Status:      r.Status,
		Timestamp:   r.Timestamp.UTC().Format(time.RFC3339),
		Uptime:      r.Uptime,
		Environment: r.Environment,
		Version:     version,
		Memory:      MemoryResponse{Used: r.Memory.Used, Total: r.Memory.Total},
		Services: ServicesResponse{
			Database: string(r.Services.Database),
			Cache:    string(r.Services.Cache),
		},
	}
}
