package dto

import "github.com/invenko/inventory_management_app/internal/core/domain"

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CustomerResponse is the API shape of a customer.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

func ToCustomerResponse(cust *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      cust.CustomerID,
		Name:    cust.Name,
		Email:   cust.Email,
		Phone:   cust.Phone,
		Address: cust.Address,
	}
}

func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	out := make([]CustomerResponse, len(customers))
	for i, cust := range customers {
		out[i] = ToCustomerResponse(&cust)
	}
	return ListCustomersResponse{Customers: out}
}
