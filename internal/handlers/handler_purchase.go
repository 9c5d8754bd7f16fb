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

// PurchaseHandler handles purchase recording requests.
type PurchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(ps portssvc.PurchaseSvcFacade) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: ps}
}

func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := NewPurchaseHandler(purchaseService)
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.CreatePurchase)
		purchases.GET("", h.ListPurchases)
		purchases.GET("/:id", h.GetPurchase)
	}
}

// CreatePurchase godoc
// @Summary Record a purchase
// @Description Records a purchase with its line items in a single transaction.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Supplier or product not found"
// @Security BearerAuth
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
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
		logger.Error("Failed to record purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record purchase"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// GetPurchase godoc
// @Summary Get a purchase by ID
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "purchase not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get purchase"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// ListPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPurchasesResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	limit, offset, ok := parseListParams(c)
	if !ok {
		return
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), limit, offset)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchasesResponse(purchases))
}
