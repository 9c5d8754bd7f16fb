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

// SupplierHandler handles supplier management requests.
type SupplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(ss portssvc.SupplierSvcFacade) *SupplierHandler {
	return &SupplierHandler{supplierService: ss}
}

func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := NewSupplierHandler(supplierService)
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.PUT("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
	}
}

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create supplier", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// GetSupplier godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "supplier not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get supplier", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// ListSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListSuppliersResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), limit, offset)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list suppliers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// UpdateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "supplier not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update supplier", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// DeleteSupplier godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Param id path int true "Supplier ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "supplier not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete supplier", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete supplier"})
		return
	}

	c.Status(http.StatusNoContent)
}
