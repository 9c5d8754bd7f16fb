package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// SaleRepositoryFacade defines persistence operations for sales.
// CreateSale persists the sale and its items in one transaction.
type SaleRepositoryFacade interface {
	CreateSale(ctx context.Context, sale *domain.Sale) error
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
	DeleteSale(ctx context.Context, saleID int64) error
}
