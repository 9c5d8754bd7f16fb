package domain

import "time"

// Timestamps holds the standard creation/update audit columns maintained by
// the repositories.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
