package services

import (
	"context"

	"github.com/invenko/inventory_management_app/internal/core/domain"
)

// AuthResult bundles the authenticated user with a freshly issued token pair.
type AuthResult struct {
	User         domain.User
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade is the credential and session manager.
//
// Error contract: Register returns apperrors.ErrDuplicate on an already
// registered email; Login returns apperrors.ErrUnauthorized for unknown
// emails, wrong passwords and inactive accounts (wrapped with the
// user-visible message); RefreshTokens returns apperrors.ErrUnauthorized for
// anything wrong with the token; ChangePassword returns apperrors.ErrNotFound
// for unknown users and apperrors.ErrUnauthorized for a wrong current
// password. All of these pass through to the HTTP boundary unmodified.
type AuthSvcFacade interface {
	// Register creates a new user with a bcrypt-hashed password and issues a
	// token pair for it.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Login verifies credentials and issues a token pair. The inactive-account
	// check runs only after the password has been verified.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// RefreshTokens verifies a refresh token and rotates it, returning a brand
	// new access/refresh pair.
	RefreshTokens(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)

	// ChangePassword verifies the current password and overwrites the stored
	// hash with a hash of the new one. Existing tokens stay valid.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}
