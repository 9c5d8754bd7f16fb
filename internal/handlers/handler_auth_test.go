package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/dto"
	"github.com/invenko/inventory_management_app/internal/handlers"
	"github.com/invenko/inventory_management_app/internal/middleware"
	"github.com/invenko/inventory_management_app/internal/platform/config"
	"github.com/invenko/inventory_management_app/internal/utils"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*portssvc.AuthResult, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*portssvc.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthResult), args.Error(1)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockAuthSvc *MockAuthService
	cfg         *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAuthSvc = new(MockAuthService)
	suite.cfg = &config.Config{
		JWTSecret:                "handler-test-secret",
		JWTExpiryDuration:        time.Hour,
		JWTIssuer:                "inventory-management-app",
		JWTRefreshSecret:         "handler-test-refresh-secret",
		JWTRefreshExpiryDuration: 168 * time.Hour,
	}

	suite.router = gin.New()

	h := handlers.NewAuthHandler(suite.mockAuthSvc)
	auth := suite.router.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh-token", h.RefreshToken)

	protected := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.cfg))
	protected.POST("/auth/change-password", h.ChangePassword)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleAuthResult() *portssvc.AuthResult {
	return &portssvc.AuthResult{
		User: domain.User{
			UserID: 42,
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			Role:   domain.DefaultRole,
			Active: true,
		},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

// --- Register ---

func (suite *AuthHandlerTestSuite) TestRegister_Created() {
	suite.mockAuthSvc.On("Register", mock.Anything, "Jane Doe", "jane@example.com", "password123").
		Return(sampleAuthResult(), nil).Once()

	w := suite.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	}, nil)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(int64(42), resp.User.ID)
	suite.Equal("access-token", resp.Token)
	suite.Equal("refresh-token", resp.RefreshToken)
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_MissingFields() {
	w := suite.postJSON("/api/v1/auth/register", map[string]string{"name": "No Email"}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_Conflict() {
	suite.mockAuthSvc.On("Register", mock.Anything, "Jane Doe", "jane@example.com", "password123").
		Return(nil, apperrors.Conflict("email already registered")).Once()

	w := suite.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	}, nil)

	suite.Equal(http.StatusConflict, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("email already registered", resp.Error)
}

// --- Login ---

func (suite *AuthHandlerTestSuite) TestLogin_OK() {
	suite.mockAuthSvc.On("Login", mock.Anything, "jane@example.com", "password123").
		Return(sampleAuthResult(), nil).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	}, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("jane@example.com", resp.User.Email)
	suite.NotEmpty(resp.Token)
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockAuthSvc.On("Login", mock.Anything, "jane@example.com", "wrong").
		Return(nil, apperrors.Unauthorized("invalid email or password")).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	}, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("invalid email or password", resp.Error)
}

// --- RefreshToken ---

func (suite *AuthHandlerTestSuite) TestRefreshToken_OK() {
	suite.mockAuthSvc.On("RefreshTokens", mock.Anything, "old-refresh-token").
		Return("new-access", "new-refresh", nil).Once()

	w := suite.postJSON("/api/v1/auth/refresh-token", dto.RefreshTokenRequest{
		RefreshToken: "old-refresh-token",
	}, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RefreshTokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new-access", resp.Token)
	suite.Equal("new-refresh", resp.RefreshToken)
}

func (suite *AuthHandlerTestSuite) TestRefreshToken_Invalid() {
	suite.mockAuthSvc.On("RefreshTokens", mock.Anything, "bad-token").
		Return("", "", apperrors.Unauthorized("invalid refresh token")).Once()

	w := suite.postJSON("/api/v1/auth/refresh-token", dto.RefreshTokenRequest{
		RefreshToken: "bad-token",
	}, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- ChangePassword ---

func (suite *AuthHandlerTestSuite) bearerFor(userID int64, email string) map[string]string {
	token, err := utils.GenerateJWT(userID, email, false, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (suite *AuthHandlerTestSuite) TestChangePassword_OK() {
	suite.mockAuthSvc.On("ChangePassword", mock.Anything, int64(42), "old-pass", "new-pass").
		Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	}, suite.bearerFor(42, "jane@example.com"))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ChangePasswordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockAuthSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestChangePassword_NoToken() {
	w := suite.postJSON("/api/v1/auth/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	}, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestChangePassword_RefreshTokenRejected() {
	refreshToken, err := utils.GenerateJWT(42, "jane@example.com", true, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	w := suite.postJSON("/api/v1/auth/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	}, map[string]string{"Authorization": "Bearer " + refreshToken})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAuthSvc.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestChangePassword_WrongCurrent() {
	suite.mockAuthSvc.On("ChangePassword", mock.Anything, int64(42), "wrong", "new-pass").
		Return(apperrors.Unauthorized("current password is incorrect")).Once()

	w := suite.postJSON("/api/v1/auth/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	}, suite.bearerFor(42, "jane@example.com"))

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("current password is incorrect", resp.Error)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
