package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// ProductRepositoryFacade defines persistence operations for products.
// Reads return products with the category joined in when one is set.
type ProductRepositoryFacade interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	FindProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
}
