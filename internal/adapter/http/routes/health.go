package routes

import (
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth = "/health"
)

func addHealthRoutes(rg *gin.RouterGroup, healthHandler *handlers.HealthHandler) {
	health := rg.Group(PathHealth)
	{
		health.GET("", healthHandler.GetHealth)
		health.GET("/ping", healthHandler.Ping)
	}
}
