package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// CustomerSvcFacade defines the customer management service.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}
