package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/dto"
	"github.com/invenko/inventory_management_app/internal/middleware"
)

// StockHandler handles stock management requests.
type StockHandler struct {
	stockService portssvc.StockSvcFacade
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(ss portssvc.StockSvcFacade) *StockHandler {
	return &StockHandler{stockService: ss}
}

func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := NewStockHandler(stockService)
	stock := rg.Group("/stock")
	{
		stock.POST("", h.CreateStock)
		stock.GET("", h.ListStocks)
		stock.GET("/:id", h.GetStock)
		stock.PUT("/:id", h.UpdateStock)
		stock.DELETE("/:id", h.DeleteStock)
	}
}

// CreateStock godoc
// @Summary Create a stock entry
// @Tags stock
// @Accept json
// @Produce json
// @Param stock body dto.CreateStockRequest true "Stock entry"
// @Success 201 {object} dto.StockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /stock [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	stock, err := h.stockService.CreateStock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create stock entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create stock entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockResponse(stock))
}

// GetStock godoc
// @Summary Get a stock entry by ID
// @Tags stock
// @Produce json
// @Param id path int true "Stock ID"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	stockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stock, err := h.stockService.GetStockByID(c.Request.Context(), stockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "stock entry not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get stock entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get stock entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

// ListStocks godoc
// @Summary List stock entries
// @Tags stock
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListStocksResponse
// @Security BearerAuth
// @Router /stock [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	stocks, err := h.stockService.ListStocks(c.Request.Context(), limit, offset)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list stock entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list stock entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStocksResponse(stocks))
}

// UpdateStock godoc
// @Summary Update a stock entry
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Stock ID"
// @Param stock body dto.UpdateStockRequest true "Fields to update"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} ErrorResponse "Negative quantity"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	stockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	stock, err := h.stockService.UpdateStock(c.Request.Context(), stockID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "stock entry not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update stock entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update stock entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

// DeleteStock godoc
// @Summary Delete a stock entry
// @Tags stock
// @Param id path int true "Stock ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	stockID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.stockService.DeleteStock(c.Request.Context(), stockID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "stock entry not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete stock entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete stock entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
