package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// PurchaseSvcFacade defines the purchase recording service.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)
}
