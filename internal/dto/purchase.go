package dto

import (
	"time"

	"github.com/invenko/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is a line item on a purchase creation request.
type PurchaseItemRequest struct {
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required,gte=0"`
}

// CreatePurchaseRequest defines the data needed to record a purchase.
// TotalAmount is optional; when zero it is computed from the items.
type CreatePurchaseRequest struct {
	SupplierID  int64                 `json:"supplierId" binding:"required"`
	Items       []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
}

// PurchaseItemResponse is the API shape of a purchase line item.
type PurchaseItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PurchaseResponse is the API shape of a purchase.
type PurchaseResponse struct {
	ID          int64                  `json:"id"`
	Supplier    *SupplierResponse      `json:"supplier,omitempty"`
	Items       []PurchaseItemResponse `json:"items"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	PurchasedAt time.Time              `json:"purchasedAt"`
}

// ListPurchasesResponse wraps the list of purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			ID:        item.PurchaseItemID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	resp := PurchaseResponse{
		ID:          p.PurchaseID,
		Items:       items,
		TotalAmount: p.TotalAmount,
		PurchasedAt: p.PurchasedAt,
	}
	if p.Supplier != nil {
		s := ToSupplierResponse(p.Supplier)
		resp.Supplier = &s
	}
	return resp
}

func ToListPurchasesResponse(purchases []domain.Purchase) ListPurchasesResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		out[i] = ToPurchaseResponse(&p)
	}
	return ListPurchasesResponse{Purchases: out}
}
