package dto

import (
	"time"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// CreateStockRequest defines the data needed to create a stock entry.
type CreateStockRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0"`
	Location  string `json:"location" binding:"required"`
}

// UpdateStockRequest defines the data allowed for updating a stock entry.
type UpdateStockRequest struct {
	Quantity *int    `json:"quantity"`
	Location *string `json:"location"`
}

// StockResponse is the API shape of a stock entry.
type StockResponse struct {
	ID          int64            `json:"id"`
	Product     *ProductResponse `json:"product,omitempty"`
	Quantity    int              `json:"quantity"`
	Location    string           `json:"location"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// ListStocksResponse wraps the list of stock entries.
type ListStocksResponse struct {
	Stocks []StockResponse `json:"stocks"`
}

func ToStockResponse(s *domain.Stock) StockResponse {
	resp := StockResponse{
		ID:          s.StockID,
		Quantity:    s.Quantity,
		Location:    s.Location,
		LastUpdated: s.LastUpdated,
	}
	if s.Product != nil {
		p := ToProductResponse(s.Product)
		resp.Product = &p
	}
	return resp
}

func ToListStocksResponse(stocks []domain.Stock) ListStocksResponse {
	out := make([]StockResponse, len(stocks))
	for i, s := range stocks {
		out[i] = ToStockResponse(&s)
	}
	return ListStocksResponse{Stocks: out}
}
