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

type PgxSaleRepository struct {
	db *pgxpool.Pool
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{db: db}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// CreateSale inserts the sale and all of its line items inside a single
// transaction so a failed item insert never leaves an orphan header.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sale transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
        INSERT INTO sales (total_amount)
        VALUES ($1)
        RETURNING sale_id, sold_at;
    `, sale.TotalAmount).Scan(&sale.SaleID, &sale.SoldAt)
	if err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.SaleID
		err = tx.QueryRow(ctx, `
            INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
            VALUES ($1, $2, $3, $4)
            RETURNING sale_item_id;
        `, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.SaleItemID)
		if err != nil {
			return fmt.Errorf("failed to create sale item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sale transaction: %w", err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	query := `SELECT sale_id, total_amount, sold_at FROM sales WHERE sale_id = $1;`
	var sale domain.Sale
	err := r.db.QueryRow(ctx, query, saleID).Scan(&sale.SaleID, &sale.TotalAmount, &sale.SoldAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %d: %w", saleID, err)
	}

	items, err := r.findSaleItems(ctx, sale.SaleID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return &sale, nil
}

func (r *PgxSaleRepository) FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT sale_id, total_amount, sold_at
        FROM sales
        ORDER BY sold_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(&sale.SaleID, &sale.TotalAmount, &sale.SoldAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}

	for i := range sales {
		items, err := r.findSaleItems(ctx, sales[i].SaleID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}

	return sales, nil
}

// DeleteSale relies on ON DELETE CASCADE to drop the sale's items with it.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSaleRepository) findSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItem, error) {
	query := `
        SELECT sale_item_id, sale_id, product_id, quantity, unit_price
        FROM sale_items
        WHERE sale_id = $1
        ORDER BY sale_item_id;
    `
	rows, err := r.db.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	items := []domain.SaleItem{}
	for rows.Next() {
		var item domain.SaleItem
		err := rows.Scan(&item.SaleItemID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", rows.Err())
	}

	return items, nil
}
