package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records goods bought from a supplier, with its line items.
type Purchase struct {
	PurchaseID  int64           `json:"id"`
	SupplierID  int64           `json:"supplierId"`
	Supplier    *Supplier       `json:"supplier,omitempty"`
	Items       []PurchaseItem  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PurchasedAt time.Time       `json:"purchasedAt"`
}

// PurchaseItem is a single product line on a purchase.
type PurchaseItem struct {
	PurchaseItemID int64           `json:"id"`
	PurchaseID     int64           `json:"purchaseId"`
	ProductID      int64           `json:"productId"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
}
