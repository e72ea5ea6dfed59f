package routes

import (
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/catalog", quoteHandler.CreateCatalogQuote)
		quotes.POST("/custom", quoteHandler.CreateCustomQuote)
		quotes.GET("", quoteHandler.GetQuotes)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
		quotes.PUT("/catalog/:id", quoteHandler.UpdateCatalogQuote)
		quotes.PUT("/custom/:id", quoteHandler.UpdateCustomQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}
}
