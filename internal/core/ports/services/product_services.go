package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// ProductSvcFacade defines the product management service.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}
