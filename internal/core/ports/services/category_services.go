package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// CategorySvcFacade defines the category management service.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}
