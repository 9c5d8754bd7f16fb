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

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// productSelect joins the optional category so reads come back fully shaped.
const productSelect = `
    SELECT p.product_id, p.name, p.description, p.sku, p.price, p.unit,
           p.reorder_level, p.category_id, p.created_at, p.updated_at,
           c.category_id, c.name, c.description
    FROM products p
    LEFT JOIN categories c ON c.category_id = p.category_id
`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	var catID *int64
	var catName, catDescription *string
	err := row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Description,
		&product.SKU,
		&product.Price,
		&product.Unit,
		&product.ReorderLevel,
		&product.CategoryID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&catID,
		&catName,
		&catDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if catID != nil {
		product.Category = &domain.Category{
			CategoryID:  *catID,
			Name:        *catName,
			Description: *catDescription,
		}
	}
	return &product, nil
}

func (r *PgxProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `
        INSERT INTO products (name, description, sku, price, unit, reorder_level, category_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING product_id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.SKU,
		product.Price,
		product.Unit,
		product.ReorderLevel,
		product.CategoryID,
	).Scan(&product.ProductID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := productSelect + ` WHERE p.product_id = $1;`
	product, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product by ID %d: %w", productID, err)
	}
	return product, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := productSelect + ` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products
        SET name = $1, description = $2, sku = $3, price = $4, unit = $5,
            reorder_level = $6, category_id = $7, updated_at = now()
        WHERE product_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		product.Name,
		product.Description,
		product.SKU,
		product.Price,
		product.Unit,
		product.ReorderLevel,
		product.CategoryID,
		product.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
