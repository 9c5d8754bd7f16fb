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

type PgxSupplierRepository struct {
	db *pgxpool.Pool
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{db: db}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func (r *PgxSupplierRepository) CreateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	query := `
        INSERT INTO suppliers (name, contact_number, address)
        VALUES ($1, $2, $3)
        RETURNING supplier_id;
    `
	err := r.db.QueryRow(ctx, query, supplier.Name, supplier.ContactNumber, supplier.Address).
		Scan(&supplier.SupplierID)
	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	query := `SELECT supplier_id, name, contact_number, address FROM suppliers WHERE supplier_id = $1;`
	var supplier domain.Supplier
	err := r.db.QueryRow(ctx, query, supplierID).Scan(
		&supplier.SupplierID,
		&supplier.Name,
		&supplier.ContactNumber,
		&supplier.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %d: %w", supplierID, err)
	}
	return &supplier, nil
}

func (r *PgxSupplierRepository) FindSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT supplier_id, name, contact_number, address
        FROM suppliers
        ORDER BY name
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var supplier domain.Supplier
		err := rows.Scan(&supplier.SupplierID, &supplier.Name, &supplier.ContactNumber, &supplier.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}

	return suppliers, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
        UPDATE suppliers
        SET name = $1, contact_number = $2, address = $3
        WHERE supplier_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, supplier.Name, supplier.ContactNumber, supplier.Address, supplier.SupplierID)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
