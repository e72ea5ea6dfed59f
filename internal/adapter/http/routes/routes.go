package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/marianela-miguel3/yellow-bear-store-api/docs" // swagger document
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/handlers"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/middleware"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/persistence/repository"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/infrastructure/database"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiVersion = "1.0.0"

var router = gin.New()

// Run wires the application together and starts the server.
func Run() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := getenvDefault("PORT", "3000")
	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		logger.Info().Str("port", port).Str("environment", environment()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to startup the application")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced server shutdown")
	}
}

func getRoutes(logger zerolog.Logger) {
	quoteRepo, healthRepo := buildRepositories(logger)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	healthUseCase := usecase.NewHealthUseCase(healthRepo, environment(), logger)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, logger)
	healthHandler := handlers.NewHealthHandler(healthUseCase, apiVersion, logger)
	apiHandler := handlers.NewAPIHandler(apiVersion)

	api := router.Group("/api")
	api.GET("", apiHandler.GetAPIInfo)
	addQuoteRoutes(api, quoteHandler)
	addHealthRoutes(api, healthHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})
}

// buildRepositories selects the backing store. The in-memory store is the
// default; QUOTE_STORE=dynamodb switches to the managed table.
func buildRepositories(logger zerolog.Logger) (interfaces.IQuoteRepository, interfaces.IHealthRepository) {
	if getenvDefault("QUOTE_STORE", "memory") == "dynamodb" {
		logger.Info().Msg("using dynamodb quote store")
		ddb := database.ConnectDynamoDB()
		return repository.NewQuoteDynamoRepository(ddb), repository.NewHealthDynamoRepository(ddb)
	}
	logger.Info().Msg("using in-memory quote store")
	return repository.NewQuoteMemoryRepository(), repository.NewHealthMemoryRepository()
}

func setMiddlewares(logger zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}))
	router.Use(cors.New(corsConfig()))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.RateLimit(rateLimitRPS(), rateLimitBurst()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	origins := getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
	cfg.AllowOrigins = strings.Split(origins, ",")
	return cfg
}

func rateLimitRPS() float64 {
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && v > 0 {
		return v
	}
	return 20
}

func rateLimitBurst() int {
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		return v
	}
	return 40
}

func environment() string {
	return getenvDefault("APP_ENV", "development")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
