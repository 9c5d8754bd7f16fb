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

type productService struct {
	productRepo  portsrepo.ProductRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewProductService creates a new productService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// resolveCategory verifies the referenced category exists before a product is
// linked to it, so a bad reference fails with a 404 instead of a raw FK error.
func (s *productService) resolveCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("category not found")
		}
		return fmt.Errorf("failed to resolve category: %w", err)
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := s.resolveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := domain.Product{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Price:        req.Price,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		CategoryID:   req.CategoryID,
	}
	if err := s.productRepo.CreateProduct(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return s.productRepo.FindProductByID(ctx, product.ProductID)
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	return s.productRepo.FindProducts(ctx, limit, offset)
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.CategoryID != nil {
		if err := s.resolveCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = req.CategoryID
	}

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}
