package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// StockSvcFacade defines the stock management service.
type StockSvcFacade interface {
	CreateStock(ctx context.Context, req dto.CreateStockRequest) (*domain.Stock, error)
	GetStockByID(ctx context.Context, stockID int64) (*domain.Stock, error)
	ListStocks(ctx context.Context, limit int, offset int) ([]domain.Stock, error)
	UpdateStock(ctx context.Context, stockID int64, req dto.UpdateStockRequest) (*domain.Stock, error)
	DeleteStock(ctx context.Context, stockID int64) error
}
