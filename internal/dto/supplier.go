package dto

import "github.com/invenko/inventory_management_app/internal/core/domain"

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	Address       string `json:"address" binding:"required"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
}

// SupplierResponse is the API shape of a supplier.
type SupplierResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.SupplierID,
		Name:          s.Name,
		ContactNumber: s.ContactNumber,
		Address:       s.Address,
	}
}

func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		out[i] = ToSupplierResponse(&s)
	}
	return ListSuppliersResponse{Suppliers: out}
}
