package entities

import "time"

type ServiceState string

const (
	ServiceStateOK    ServiceState = "OK"
	ServiceStateError ServiceState = "ERROR"
)

type MemoryUsage struct {
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
}

type ServiceStatuses struct {
	Database ServiceState `json:"database"`
	Cache    ServiceState `json:"cache"`
}

// HealthRecord is an ephemeral snapshot taken on every health check. Records
// are written once, never updated or deleted; persisting them is best effort.
type HealthRecord struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Uptime      float64         `json:"uptime"`
	Environment string          `json:"environment"`
	Memory      MemoryUsage     `json:"memoryUsage"`
	Services    ServiceStatuses `json:"services"`
}
