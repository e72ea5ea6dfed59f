package handlers

import (
	"net/http"

	response "github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/dto/response"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthHandler serves the liveness endpoints. A store probe failure is
// reported inside the body (services.database = "ERROR") on a 200, never as
// a 5xx: the process itself is alive.

type HealthHandler struct {
	usecase usecase.IHealthUseCase
	version string
	logger  zerolog.Logger
}

func NewHealthHandler(uc usecase.IHealthUseCase, version string, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		usecase: uc,
		version: version,
		logger:  logger.With().Str("handler", "health").Logger(),
	}
}

// GetHealth godoc
//
//	@Summary  Liveness, uptime, memory and dependency status
//	@Tags     health
//	@Produce  json
//	@Success  200 {object} response.Envelope
//	@Router   /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	record, err := h.usecase.Check(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusInternalServerError, response.Fail("Health check failed"))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromHealthRecord(record, h.version), "Service is healthy"))
}

// Ping godoc
//
//	@Summary  Trivial liveness probe
//	@Tags     health
//	@Produce  json
//	@Success  200 {object} response.Envelope
//	@Router   /health/ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(gin.H{"status": "pong"}, "pong"))
}
