package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// PurchaseRepositoryFacade defines persistence operations for purchases.
// CreatePurchase persists the purchase and its items in one transaction.
type PurchaseRepositoryFacade interface {
	CreatePurchase(ctx context.Context, purchase *domain.Purchase) error
	FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)
	FindPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)
}
