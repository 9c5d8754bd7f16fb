package dto

import (
	"time"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price" binding:"required,gte=0"`
	Unit         string          `json:"unit" binding:"required"`
	ReorderLevel int             `json:"reorderLevel"`
	CategoryID   *int64          `json:"categoryId"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	SKU          *string          `json:"sku"`
	Price        *decimal.Decimal `json:"price"`
	Unit         *string          `json:"unit"`
	ReorderLevel *int             `json:"reorderLevel"`
	CategoryID   *int64           `json:"categoryId"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	SKU          string            `json:"sku"`
	Price        decimal.Decimal   `json:"price"`
	Unit         string            `json:"unit"`
	ReorderLevel int               `json:"reorderLevel"`
	Category     *CategoryResponse `json:"category,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:           p.ProductID,
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		Price:        p.Price,
		Unit:         p.Unit,
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Category != nil {
		cat := ToCategoryResponse(p.Category)
		resp.Category = &cat
	}
	return resp
}

func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: out}
}
