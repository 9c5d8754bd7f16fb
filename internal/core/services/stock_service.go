package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portsrepo "github.com/invenko/inventory_management_app/internal/core/ports/repositories"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/dto"
)

type stockService struct {
	stockRepo   portsrepo.StockRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewStockService creates a new stockService.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) CreateStock(ctx context.Context, req dto.CreateStockRequest) (*domain.Stock, error) {
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}

	stock := domain.Stock{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Location:  req.Location,
	}
	if err := s.stockRepo.CreateStock(ctx, &stock); err != nil {
		return nil, fmt.Errorf("failed to create stock entry: %w", err)
	}
	return s.stockRepo.FindStockByID(ctx, stock.StockID)
}

func (s *stockService) GetStockByID(ctx context.Context, stockID int64) (*domain.Stock, error) {
	return s.stockRepo.FindStockByID(ctx, stockID)
}

func (s *stockService) ListStocks(ctx context.Context, limit int, offset int) ([]domain.Stock, error) {
	return s.stockRepo.FindStocks(ctx, limit, offset)
}

func (s *stockService) UpdateStock(ctx context.Context, stockID int64, req dto.UpdateStockRequest) (*domain.Stock, error) {
	stock, err := s.stockRepo.FindStockByID(ctx, stockID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("quantity must not be negative: %w", apperrors.ErrValidation)
		}
		stock.Quantity = *req.Quantity
	}
	if req.Location != nil {
		stock.Location = *req.Location
	}

	if err := s.stockRepo.UpdateStock(ctx, *stock); err != nil {
		return nil, fmt.Errorf("failed to update stock entry: %w", err)
	}
	return s.stockRepo.FindStockByID(ctx, stockID)
}

func (s *stockService) DeleteStock(ctx context.Context, stockID int64) error {
	return s.stockRepo.DeleteStock(ctx, stockID)
}
