package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portsrepo "github.com/invenko/inventory_management_app/internal/core/ports/repositories"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/platform/config"
	"github.com/invenko/inventory_management_app/internal/utils"
)

// User-visible auth failure messages. Unknown-email and wrong-password login
// failures must share the exact same message so callers cannot enumerate
// registered accounts.
const (
	msgInvalidCredentials     = "invalid email or password"
	msgInactiveAccount        = "user is inactive, please contact administrator to activate your account"
	msgInvalidRefreshToken    = "invalid refresh token"
	msgCurrentPasswordWrong   = "current password is incorrect"
	msgEmailAlreadyRegistered = "email already registered"
)

// authService implements the credential and session manager. Signing secrets
// and expiry durations come from the injected config, never from globals.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// issueTokenPair signs a fresh access/refresh pair for the user. The two
// tokens use distinct secrets and expiries; only the refresh token carries
// the isRefreshToken marker.
func (s *authService) issueTokenPair(user *domain.User) (string, string, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, false, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := utils.GenerateJWT(user.UserID, user.Email, true, s.cfg.JWTRefreshSecret, s.cfg.JWTRefreshExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

// Register creates a new user account and logs it in.
func (s *authService) Register(ctx context.Context, name, email, password string) (*portssvc.AuthResult, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(msgEmailAlreadyRegistered)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.DefaultRole,
		Active:       true,
	}
	if err := s.userRepo.CreateUser(ctx, &user); err != nil {
		// The unique constraint on email is the safety net for the race
		// between concurrent registrations; surface it as the same conflict.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Conflict(msgEmailAlreadyRegistered)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokenPair(&user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &portssvc.AuthResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login authenticates an email/password pair.
func (s *authService) Login(ctx context.Context, email, password string) (*portssvc.AuthResult, error) {
	user, err := s.userRepo.FindUserByEmailWithCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	// Checked only after password verification so unauthenticated callers
	// cannot probe account status.
	if !user.Active {
		return nil, apperrors.Unauthorized(msgInactiveAccount)
	}

	accessToken, refreshToken, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &portssvc.AuthResult{User: *user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshTokens validates a refresh token and rotates it. The old refresh
// token is not invalidated server-side; there is no revocation store, so its
// validity runs out only with its expiry.
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.JWTRefreshSecret)
	if err != nil {
		return "", "", apperrors.Unauthorized(msgInvalidRefreshToken)
	}

	// An access token signed with the refresh secret would still lack this
	// marker; reject it.
	if !claims.IsRefreshToken {
		return "", "", apperrors.Unauthorized(msgInvalidRefreshToken)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", "", apperrors.Unauthorized(msgInvalidRefreshToken)
		}
		return "", "", fmt.Errorf("failed to look up user for token refresh: %w", err)
	}
	if user.Email != claims.Email {
		return "", "", apperrors.Unauthorized(msgInvalidRefreshToken)
	}

	return s.issueTokenPair(user)
}

// ChangePassword verifies the current password and stores a hash of the new
// one. Existing tokens remain valid until their natural expiry.
func (s *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByIDWithCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("user not found")
		}
		return fmt.Errorf("failed to look up user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.Unauthorized(msgCurrentPasswordWrong)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	return nil
}
