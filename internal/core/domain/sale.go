package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records goods sold, with its line items.
type Sale struct {
	SaleID      int64           `json:"id"`
	Items       []SaleItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SoldAt      time.Time       `json:"soldAt"`
}

// SaleItem is a single product line on a sale.
type SaleItem struct {
	SaleItemID int64           `json:"id"`
	SaleID     int64           `json:"saleId"`
	ProductID  int64           `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}
