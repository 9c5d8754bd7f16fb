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

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	query := `
        INSERT INTO customers (name, email, phone, address)
        VALUES ($1, $2, $3, $4)
        RETURNING customer_id;
    `
	err := r.db.QueryRow(ctx, query, customer.Name, customer.Email, customer.Phone, customer.Address).
		Scan(&customer.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT customer_id, name, email, phone, address FROM customers WHERE customer_id = $1;`
	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&customer.CustomerID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %d: %w", customerID, err)
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT customer_id, name, email, phone, address
        FROM customers
        ORDER BY name
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var customer domain.Customer
		err := rows.Scan(&customer.CustomerID, &customer.Name, &customer.Email, &customer.Phone, &customer.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}

	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
        UPDATE customers
        SET name = $1, email = $2, phone = $3, address = $4
        WHERE customer_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, customer.Name, customer.Email, customer.Phone, customer.Address, customer.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
