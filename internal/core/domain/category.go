package domain

// Category groups products. Names are unique.
type Category struct {
	CategoryID  int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
