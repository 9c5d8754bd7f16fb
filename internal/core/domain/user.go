package domain

// User represents an application user.
// PasswordHash is only populated by the repository methods that explicitly
// select it; it never leaves the service layer.
type User struct {
	UserID       int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	Timestamps
}

// DefaultRole is assigned to every self-registered account.
const DefaultRole = "user"
