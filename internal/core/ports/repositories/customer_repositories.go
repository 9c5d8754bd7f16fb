package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID int64) error
}
