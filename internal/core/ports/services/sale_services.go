package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// SaleSvcFacade defines the sale recording service.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
	DeleteSale(ctx context.Context, saleID int64) error
}
