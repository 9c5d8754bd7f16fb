package dto

import (
	"time"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is a line item on a sale creation request.
type SaleItemRequest struct {
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required,gte=0"`
}

// CreateSaleRequest defines the data needed to record a sale.
// TotalAmount is optional; when zero it is computed from the items.
type CreateSaleRequest struct {
	Items       []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
}

// SaleItemResponse is the API shape of a sale line item.
type SaleItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// SaleResponse is the API shape of a sale.
type SaleResponse struct {
	ID          int64              `json:"id"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	SoldAt      time.Time          `json:"soldAt"`
}

// ListSalesResponse wraps the list of sales.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:        item.SaleItemID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return SaleResponse{
		ID:          s.SaleID,
		Items:       items,
		TotalAmount: s.TotalAmount,
		SoldAt:      s.SoldAt,
	}
}

func ToListSalesResponse(sales []domain.Sale) ListSalesResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(&s)
	}
	return ListSalesResponse{Sales: out}
}
