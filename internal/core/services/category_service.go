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

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Conflict("category name already exists")
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error) {
	return s.categoryRepo.FindCategories(ctx, limit, offset)
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Conflict("category name already exists")
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
