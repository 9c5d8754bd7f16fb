package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories.
type CategoryRepositoryFacade interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	FindCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}
