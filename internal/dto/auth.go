package dto

import "github.com/invenko/inventory_management_app/internal/core/domain"

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the body for POST /auth/refresh-token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest is the body for POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// AuthUser is the sanitized user summary returned by register/login.
// It never carries the password hash.
type AuthUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// AuthResponse is the envelope for successful register/login calls.
type AuthResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	User         AuthUser `json:"user"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
}

// RefreshTokenResponse carries a freshly rotated token pair.
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordResponse acknowledges a successful password change.
type ChangePasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToAuthUser converts a domain.User to the sanitized auth summary.
func ToAuthUser(user *domain.User) AuthUser {
	return AuthUser{
		ID:     user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Active: user.Active,
	}
}
