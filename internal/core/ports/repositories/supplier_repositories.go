package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// SupplierRepositoryFacade defines persistence operations for suppliers.
type SupplierRepositoryFacade interface {
	CreateSupplier(ctx context.Context, supplier *domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error)
	FindSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID int64) error
}
