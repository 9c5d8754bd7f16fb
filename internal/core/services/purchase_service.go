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

type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
}

// NewPurchaseService creates a new purchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("supplier not found")
		}
		return nil, fmt.Errorf("failed to resolve supplier: %w", err)
	}

	items := make([]domain.PurchaseItem, len(req.Items))
	computedTotal := decimal.Zero
	for i, item := range req.Items {
		if _, err := s.productRepo.FindProductByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NotFound(fmt.Sprintf("product %d not found", item.ProductID))
			}
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		items[i] = domain.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		computedTotal = computedTotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// Client-supplied totals are advisory; when absent the items decide.
	total := req.TotalAmount
	if total.IsZero() {
		total = computedTotal
	}

	purchase := domain.Purchase{
		SupplierID:  req.SupplierID,
		Items:       items,
		TotalAmount: total,
	}
	if err := s.purchaseRepo.CreatePurchase(ctx, &purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	return s.purchaseRepo.FindPurchaseByID(ctx, purchase.PurchaseID)
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

func (s *purchaseService) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	return s.purchaseRepo.FindPurchases(ctx, limit, offset)
}
