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

type PgxStockRepository struct {
	db *pgxpool.Pool
}

func newPgxStockRepository(db *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{db: db}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

const stockSelect = `
    SELECT s.stock_id, s.product_id, s.quantity, s.location, s.last_updated,
           p.product_id, p.name, p.description, p.sku, p.price, p.unit,
           p.reorder_level, p.category_id, p.created_at, p.updated_at
    FROM stock s
    JOIN products p ON p.product_id = s.product_id
`

func scanStock(row pgx.Row) (*domain.Stock, error) {
	var stock domain.Stock
	var product domain.Product
	err := row.Scan(
		&stock.StockID,
		&stock.ProductID,
		&stock.Quantity,
		&stock.Location,
		&stock.LastUpdated,
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
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	stock.Product = &product
	return &stock, nil
}

func (r *PgxStockRepository) CreateStock(ctx context.Context, stock *domain.Stock) error {
	query := `
        INSERT INTO stock (product_id, quantity, location)
        VALUES ($1, $2, $3)
        RETURNING stock_id, last_updated;
    `
	err := r.db.QueryRow(ctx, query, stock.ProductID, stock.Quantity, stock.Location).
		Scan(&stock.StockID, &stock.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to create stock entry: %w", err)
	}
	return nil
}

func (r *PgxStockRepository) FindStockByID(ctx context.Context, stockID int64) (*domain.Stock, error) {
	query := stockSelect + ` WHERE s.stock_id = $1;`
	stock, err := scanStock(r.db.QueryRow(ctx, query, stockID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find stock by ID %d: %w", stockID, err)
	}
	return stock, nil
}

func (r *PgxStockRepository) FindStocks(ctx context.Context, limit int, offset int) ([]domain.Stock, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := stockSelect + ` ORDER BY s.last_updated DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock entries: %w", err)
	}
	defer rows.Close()

	stocks := []domain.Stock{}
	for rows.Next() {
		stock, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		stocks = append(stocks, *stock)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock rows: %w", rows.Err())
	}

	return stocks, nil
}

func (r *PgxStockRepository) UpdateStock(ctx context.Context, stock domain.Stock) error {
	query := `
        UPDATE stock
        SET quantity = $1, location = $2, last_updated = now()
        WHERE stock_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, stock.Quantity, stock.Location, stock.StockID)
	if err != nil {
		return fmt.Errorf("failed to update stock entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStockRepository) DeleteStock(ctx context.Context, stockID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM stock WHERE stock_id = $1;`, stockID)
	if err != nil {
		return fmt.Errorf("failed to delete stock entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
