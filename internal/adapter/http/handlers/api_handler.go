package handlers

import (
	"net/http"

	response "github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the API metadata endpoint at the base path.

type APIHandler struct {
	version string
}

func NewAPIHandler(version string) *APIHandler {
	return &APIHandler{version: version}
}

type APIInfoResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// GetAPIInfo godoc
//
//	@Summary  API metadata and endpoint directory
//	@Tags     meta
//	@Produce  json
//	@Success  200 {object} response.Envelope
//	@Router   / [get]
func (h *APIHandler) GetAPIInfo(c *gin.Context) {
	info := APIInfoResponse{
		Message: "Welcome to Yellow Bear Store API",
		Version: h.version,
		Endpoints: map[string]string{
			"health":         "/api/health",
			"health_ping":    "/api/health/ping",
			"quotes":         "/api/quotes",
			"quotes_catalog": "/api/quotes/catalog",
			"quotes_custom":  "/api/quotes/custom",
		},
		Documentation: "/swagger/index.html",
	}
	c.JSON(http.StatusOK, response.OK(info, "API information"))
}
