package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// StockRepositoryFacade defines persistence operations for stock entries.
// Reads return entries with the product joined in.
type StockRepositoryFacade interface {
	CreateStock(ctx context.Context, stock *domain.Stock) error
	FindStockByID(ctx context.Context, stockID int64) (*domain.Stock, error)
	FindStocks(ctx context.Context, limit int, offset int) ([]domain.Stock, error)
	UpdateStock(ctx context.Context, stock domain.Stock) error
	DeleteStock(ctx context.Context, stockID int64) error
}
