package domain

// Supplier is a party purchases are sourced from.
type Supplier struct {
	SupplierID    int64  `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}
