package services

import (
	"context"
	"fmt"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	portsrepo "github.com/invenko/inventory_management_app/internal/core/ports/repositories"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/dto"
)

type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	supplier := domain.Supplier{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	}
	if err := s.supplierRepo.CreateSupplier(ctx, &supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	return s.supplierRepo.FindSuppliers(ctx, limit, offset)
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactNumber != nil {
		supplier.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID int64) error {
	return s.supplierRepo.DeleteSupplier(ctx, supplierID)
}
