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
	"github.com/shopspring/decimal"
)

type saleService struct {
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewSaleService creates a new saleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	items := make([]domain.SaleItem, len(req.Items))
	computedTotal := decimal.Zero
	for i, item := range req.Items {
		if _, err := s.productRepo.FindProductByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NotFound(fmt.Sprintf("product %d not found", item.ProductID))
			}
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		items[i] = domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		computedTotal = computedTotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	total := req.TotalAmount
	if total.IsZero() {
		total = computedTotal
	}

	sale := domain.Sale{
		Items:       items,
		TotalAmount: total,
	}
	if err := s.saleRepo.CreateSale(ctx, &sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	return s.saleRepo.FindSaleByID(ctx, sale.SaleID)
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *saleService) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	return s.saleRepo.FindSales(ctx, limit, offset)
}

func (s *saleService) DeleteSale(ctx context.Context, saleID int64) error {
	return s.saleRepo.DeleteSale(ctx, saleID)
}
