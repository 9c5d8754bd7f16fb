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

type PgxPurchaseRepository struct {
	db *pgxpool.Pool
}

func newPgxPurchaseRepository(db *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{db: db}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// CreatePurchase inserts the purchase and all of its line items inside a
// single transaction so a failed item insert never leaves an orphan header.
func (r *PgxPurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin purchase transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
        INSERT INTO purchases (supplier_id, total_amount)
        VALUES ($1, $2)
        RETURNING purchase_id, purchased_at;
    `, purchase.SupplierID, purchase.TotalAmount).Scan(&purchase.PurchaseID, &purchase.PurchasedAt)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	for i := range purchase.Items {
		item := &purchase.Items[i]
		item.PurchaseID = purchase.PurchaseID
		err = tx.QueryRow(ctx, `
            INSERT INTO purchase_items (purchase_id, product_id, quantity, unit_price)
            VALUES ($1, $2, $3, $4)
            RETURNING purchase_item_id;
        `, item.PurchaseID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.PurchaseItemID)
		if err != nil {
			return fmt.Errorf("failed to create purchase item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit purchase transaction: %w", err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	query := `
        SELECT pu.purchase_id, pu.supplier_id, pu.total_amount, pu.purchased_at,
               s.supplier_id, s.name, s.contact_number, s.address
        FROM purchases pu
        JOIN suppliers s ON s.supplier_id = pu.supplier_id
        WHERE pu.purchase_id = $1;
    `
	var purchase domain.Purchase
	var supplier domain.Supplier
	err := r.db.QueryRow(ctx, query, purchaseID).Scan(
		&purchase.PurchaseID,
		&purchase.SupplierID,
		&purchase.TotalAmount,
		&purchase.PurchasedAt,
		&supplier.SupplierID,
		&supplier.Name,
		&supplier.ContactNumber,
		&supplier.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %d: %w", purchaseID, err)
	}
	purchase.Supplier = &supplier

	items, err := r.findPurchaseItems(ctx, purchase.PurchaseID)
	if err != nil {
		return nil, err
	}
	purchase.Items = items

	return &purchase, nil
}

func (r *PgxPurchaseRepository) FindPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT pu.purchase_id, pu.supplier_id, pu.total_amount, pu.purchased_at,
               s.supplier_id, s.name, s.contact_number, s.address
        FROM purchases pu
        JOIN suppliers s ON s.supplier_id = pu.supplier_id
        ORDER BY pu.purchased_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var purchase domain.Purchase
		var supplier domain.Supplier
		err := rows.Scan(
			&purchase.PurchaseID,
			&purchase.SupplierID,
			&purchase.TotalAmount,
			&purchase.PurchasedAt,
			&supplier.SupplierID,
			&supplier.Name,
			&supplier.ContactNumber,
			&supplier.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchase.Supplier = &supplier
		purchases = append(purchases, purchase)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}

	for i := range purchases {
		items, err := r.findPurchaseItems(ctx, purchases[i].PurchaseID)
		if err != nil {
			return nil, err
		}
		purchases[i].Items = items
	}

	return purchases, nil
}

func (r *PgxPurchaseRepository) findPurchaseItems(ctx context.Context, purchaseID int64) ([]domain.PurchaseItem, error) {
	query := `
        SELECT purchase_item_id, purchase_id, product_id, quantity, unit_price
        FROM purchase_items
        WHERE purchase_id = $1
        ORDER BY purchase_item_id;
    `
	rows, err := r.db.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items: %w", err)
	}
	defer rows.Close()

	items := []domain.PurchaseItem{}
	for rows.Next() {
		var item domain.PurchaseItem
		err := rows.Scan(&item.PurchaseItemID, &item.PurchaseID, &item.ProductID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase item rows: %w", rows.Err())
	}

	return items, nil
}
