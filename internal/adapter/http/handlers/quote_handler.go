package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/dto/request"
	response "github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/dto/response"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/domain/entities"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/usecase"
	"github.com/marianela-miguel3/yellow-bear-store-api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles the /quotes HTTP surface: two typed create endpoints,
// filtered listing, fetch/delete by id and the two variant-specific updates.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  zerolog.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger zerolog.Logger) *QuoteHandler {
	return &QuoteHandler{
		usecase: uc,
		logger:  logger.With().Str("handler", "quote").Logger(),
	}
}

// CreateCatalogQuote godoc
//
//	@Summary  Create a catalog quote
//	@Tags     quotes
//	@Accept   json
//	@Produce  json
//	@Param    quote body request.CatalogQuoteRequest true "Catalog quote"
//	@Success  201 {object} response.Envelope
//	@Failure  400 {object} pkg.HTTPError
//	@Router   /quotes/catalog [post]
func (h *QuoteHandler) CreateCatalogQuote(c *gin.Context) {
	var payload request.CatalogQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	quote, err := h.usecase.CreateCatalogQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, "create catalog quote", err)
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromQuote(quote), "Quote created successfully"))
}

// CreateCustomQuote godoc
//
//	@Summary  Create a custom quote
//	@Tags     quotes
//	@Accept   json
//	@Produce  json
//	@Param    quote body request.CustomQuoteRequest true "Custom quote"
//	@Success  201 {object} response.Envelope
//	@Failure  400 {object} pkg.HTTPError
//	@Router   /quotes/custom [post]
func (h *QuoteHandler) CreateCustomQuote(c *gin.Context) {
	var payload request.CustomQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	quote, err := h.usecase.CreateCustomQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, "create custom quote", err)
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromQuote(quote), "Quote created successfully"))
}

// GetQuotes godoc
//
//	@Summary  List quotes with filters and pagination
//	@Tags     quotes
//	@Produce  json
//	@Param    page query int false "Page (default 1)"
//	@Param    limit query int false "Items per page (default 10, max 100)"
//	@Param    type query string false "catalog or custom"
//	@Success  200 {object} response.Envelope
//	@Router   /quotes [get]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var filters request.QuoteFiltersRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid query parameters"))
		return
	}

	if err := filters.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	quotes, pagination, err := h.usecase.GetQuotes(c.Request.Context(), filters.ToFilters())
	if err != nil {
		h.fail(c, "list quotes", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuotes(quotes, pagination), "Quotes retrieved successfully"))
}

// GetQuoteByID godoc
//
//	@Summary  Fetch a quote by id
//	@Tags     quotes
//	@Produce  json
//	@Param    id path int true "Quote id"
//	@Success  200 {object} response.Envelope
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	id, err := request.ParseQuoteID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	quote, err := h.usecase.GetQuoteByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get quote", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(quote), "Quote retrieved successfully"))
}

// UpdateCatalogQuote godoc
//
//	@Summary  Update a catalog quote
//	@Tags     quotes
//	@Accept   json
//	@Produce  json
//	@Param    id path int true "Quote id"
//	@Param    quote body request.UpdateQuoteRequest true "Fields to update"
//	@Success  200 {object} response.Envelope
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /quotes/catalog/{id} [put]
func (h *QuoteHandler) UpdateCatalogQuote(c *gin.Context) {
	h.updateQuote(c, h.usecase.UpdateCatalogQuote, "Catalog quote not found")
}

// UpdateCustomQuote godoc
//
//	@Summary  Update a custom quote
//	@Tags     quotes
//	@Accept   json
//	@Produce  json
//	@Param    id path int true "Quote id"
//	@Param    quote body request.UpdateQuoteRequest true "Fields to update"
//	@Success  200 {object} response.Envelope
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /quotes/custom/{id} [put]
func (h *QuoteHandler) UpdateCustomQuote(c *gin.Context) {
	h.updateQuote(c, h.usecase.UpdateCustomQuote, "Custom quote not found")
}

func (h *QuoteHandler) updateQuote(
	c *gin.Context,
	updater func(ctx context.Context, id int64, patch entities.QuotePatch) (entities.Quote, error),
	notFoundMessage string,
) {
	id, err := request.ParseQuoteID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	quote, err := updater(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		if errors.Is(err, usecase.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, response.Fail(notFoundMessage))
			return
		}
		h.fail(c, "update quote", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(quote), "Quote updated successfully"))
}

// DeleteQuote godoc
//
//	@Summary  Delete a quote by id
//	@Tags     quotes
//	@Produce  json
//	@Param    id path int true "Quote id"
//	@Success  200 {object} response.Envelope
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, err := request.ParseQuoteID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	if err := h.usecase.DeleteQuote(c.Request.Context(), id); err != nil {
		h.fail(c, "delete quote", err)
		return
	}

	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Quote deleted successfully"})
}

func (h *QuoteHandler) fail(c *gin.Context, action string, err error) {
	h.logger.Error().Err(err).Str("action", action).Msg("quote operation failed")
	appErr := mapQuoteError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
