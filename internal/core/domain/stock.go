package domain

import "time"

// Stock is the quantity of a product held at a location.
type Stock struct {
	StockID     int64     `json:"id"`
	ProductID   int64     `json:"productId"`
	Product     *Product  `json:"product,omitempty"`
	Quantity    int       `json:"quantity"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"lastUpdated"`
}
