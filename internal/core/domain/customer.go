package domain

// Customer is a party sales are made to.
type Customer struct {
	CustomerID int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}
