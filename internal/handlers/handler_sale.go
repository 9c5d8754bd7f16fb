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

// SaleHandler handles sale recording requests.
type SaleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss portssvc.SaleSvcFacade) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := NewSaleHandler(saleService)
	sales := rg.Group("/sales")
	{
		sales.POST("", h.CreateSale)
		sales.GET("", h.ListSales)
		sales.GET("/:id", h.GetSale)
		sales.DELETE("/:id", h.DeleteSale)
	}
}

// CreateSale godoc
// @Summary Record a sale
// @Description Records a sale with its line items in a single transaction.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
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
		logger.Error("Failed to record sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// GetSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "sale not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get sale"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// ListSales godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListSalesResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), limit, offset)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales))
}

// DeleteSale godoc
// @Summary Delete a sale
// @Description Deletes a sale and its line items.
// @Tags sales
// @Param id path int true "Sale ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), saleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "sale not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete sale"})
		return
	}

	c.Status(http.StatusNoContent)
}
