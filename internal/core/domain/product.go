package domain

import "github.com/shopspring/decimal"

// Product is a sellable/purchasable item. CategoryID is nullable: deleting a
// category detaches its products rather than cascading.
type Product struct {
	ProductID    int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Unit         string          `json:"unit"` // e.g. pcs, kg, liters
	ReorderLevel int             `json:"reorderLevel"`
	CategoryID   *int64          `json:"categoryId,omitempty"`
	Category     *Category       `json:"category,omitempty"`
	Timestamps
}
