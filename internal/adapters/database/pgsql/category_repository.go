package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portsrepo "github.com/invenko/inventory_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	query := `
        INSERT INTO categories (name, description)
        VALUES ($1, $2)
        RETURNING category_id;
    `
	err := r.db.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `SELECT category_id, name, description FROM categories WHERE category_id = $1;`
	var category domain.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(&category.CategoryID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %d: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT category_id, name, description
        FROM categories
        ORDER BY name
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.CategoryID, &category.Name, &category.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, description = $2
        WHERE category_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, category.Name, category.Description, category.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
