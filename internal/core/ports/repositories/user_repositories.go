package repositories

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// UserReader defines read operations for user data. The returned users never
// carry the password hash.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserCredentialReader defines the reads that explicitly select the password
// hash, role and active flag. Only the auth service uses these.
type UserCredentialReader interface {
	FindUserByEmailWithCredentials(ctx context.Context, email string) (*domain.User, error)
	FindUserByIDWithCredentials(ctx context.Context, userID int64) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// CreateUser persists a new user and fills in its generated ID and timestamps.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateUser updates an existing user's profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePasswordHash overwrites the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error

	// UpdateUserStatus flips the active flag.
	UpdateUserStatus(ctx context.Context, userID int64, active bool) (*domain.User, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserCredentialReader
	UserWriter
}
