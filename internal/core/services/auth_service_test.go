package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/core/services"
	"github.com/invenko/inventory_management_app/internal/platform/config"
	"github.com/invenko/inventory_management_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmailWithCredentials(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByIDWithCredentials(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserStatus(ctx context.Context, userID int64, active bool) (*domain.User, error) {
	args := m.Called(ctx, userID, active)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "access-secret-for-tests",
		JWTExpiryDuration:        time.Hour,
		JWTIssuer:                "inventory-management-app",
		JWTRefreshSecret:         "refresh-secret-for-tests",
		JWTRefreshExpiryDuration: 168 * time.Hour,
	}
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = testAuthConfig()
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.cfg)
}

// --- Register Tests ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	name := "Jane Doe"
	email := "jane@example.com"
	password := "s3cret-pass"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *domain.User) bool {
		return user.Name == name &&
			user.Email == email &&
			user.Role == domain.DefaultRole &&
			user.Active &&
			user.PasswordHash != password &&
			utils.CheckPasswordHash(password, user.PasswordHash)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).UserID = 42
	}).Return(nil).Once()

	result, err := suite.service.Register(ctx, name, email, password)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(42), result.User.UserID)
	suite.Equal(email, result.User.Email)
	suite.True(result.User.Active)
	suite.Empty(result.User.PasswordHash)
	suite.NotEmpty(result.AccessToken)
	suite.NotEmpty(result.RefreshToken)
	suite.NotEqual(result.AccessToken, result.RefreshToken)

	// Access token verifies with the access secret and carries no refresh marker.
	claims, err := utils.ParseAndValidateJWT(result.AccessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(int64(42), claims.UserID)
	suite.Equal(email, claims.Email)
	suite.False(claims.IsRefreshToken)

	// Refresh token verifies only with the refresh secret and carries the marker.
	refreshClaims, err := utils.ParseAndValidateJWT(result.RefreshToken, suite.cfg.JWTRefreshSecret)
	suite.Require().NoError(err)
	suite.True(refreshClaims.IsRefreshToken)
	_, err = utils.ParseAndValidateJWT(result.RefreshToken, suite.cfg.JWTSecret)
	suite.Error(err)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	email := "taken@example.com"
	existing := &domain.User{UserID: 7, Email: email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(existing, nil).Once()

	result, err := suite.service.Register(ctx, "Someone", email, "password123")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("email already registered", err.Error())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateRaceOnInsert() {
	ctx := context.Background()
	email := "race@example.com"

	// Pre-check misses, but the unique constraint fires on insert.
	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	result, err := suite.service.Register(ctx, "Racer", email, "password123")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("email already registered", err.Error())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) activeUser(email, password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       11,
		Name:         "Active User",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
		Active:       true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	email := "user@example.com"
	password := "correct-horse"
	user := suite.activeUser(email, password)

	suite.mockUserRepo.On("FindUserByEmailWithCredentials", ctx, email).Return(user, nil).Once()

	result, err := suite.service.Login(ctx, email, password)

	suite.Require().NoError(err)
	suite.Equal(int64(11), result.User.UserID)
	suite.Empty(result.User.PasswordHash)
	suite.NotEmpty(result.AccessToken)
	suite.NotEmpty(result.RefreshToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailAndWrongPasswordShareMessage() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmailWithCredentials", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()
	_, unknownErr := suite.service.Login(ctx, "nobody@example.com", "whatever")

	user := suite.activeUser("known@example.com", "right-password")
	suite.mockUserRepo.On("FindUserByEmailWithCredentials", ctx, "known@example.com").Return(user, nil).Once()
	_, wrongPassErr := suite.service.Login(ctx, "known@example.com", "wrong-password")

	suite.Require().Error(unknownErr)
	suite.Require().Error(wrongPassErr)
	suite.ErrorIs(unknownErr, apperrors.ErrUnauthorized)
	suite.ErrorIs(wrongPassErr, apperrors.ErrUnauthorized)
	// Identical messages so responses cannot be used to enumerate accounts.
	suite.Equal(unknownErr.Error(), wrongPassErr.Error())
	suite.Equal("invalid email or password", unknownErr.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveAccount() {
	ctx := context.Background()
	email := "dormant@example.com"
	password := "correct-password"
	user := suite.activeUser(email, password)
	user.Active = false

	suite.mockUserRepo.On("FindUserByEmailWithCredentials", ctx, email).Return(user, nil).Once()

	result, err := suite.service.Login(ctx, email, password)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("user is inactive, please contact administrator to activate your account", err.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveAccountWrongPasswordStaysGeneric() {
	ctx := context.Background()
	email := "dormant@example.com"
	user := suite.activeUser(email, "real-password")
	user.Active = false

	suite.mockUserRepo.On("FindUserByEmailWithCredentials", ctx, email).Return(user, nil).Once()

	// The inactive message must not leak to callers who fail the password check.
	_, err := suite.service.Login(ctx, email, "wrong-password")

	suite.Require().Error(err)
	suite.Equal("invalid email or password", err.Error())
}

// --- RefreshTokens Tests ---

func (suite *AuthServiceTestSuite) issueRefreshToken(user *domain.User) string {
	token, err := utils.GenerateJWT(user.UserID, user.Email, true, suite.cfg.JWTRefreshSecret, suite.cfg.JWTRefreshExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *AuthServiceTestSuite) TestRefreshTokens_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: 11, Email: "user@example.com", Active: true}
	refreshToken := suite.issueRefreshToken(user)

	suite.mockUserRepo.On("FindUserByID", ctx, int64(11)).Return(user, nil).Once()

	accessToken, newRefreshToken, err := suite.service.RefreshTokens(ctx, refreshToken)

	suite.Require().NoError(err)
	suite.NotEmpty(accessToken)
	suite.NotEmpty(newRefreshToken)

	claims, err := utils.ParseAndValidateJWT(accessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(int64(11), claims.UserID)
	suite.False(claims.IsRefreshToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRefreshTokens_RejectsAccessToken() {
	ctx := context.Background()
	// Signed with the access secret, so it fails verification against the
	// refresh secret before the marker is even checked.
	accessToken, err := utils.GenerateJWT(11, "user@example.com", false, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, _, err = suite.service.RefreshTokens(ctx, accessToken)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("invalid refresh token", err.Error())
}

func (suite *AuthServiceTestSuite) TestRefreshTokens_RejectsMissingMarker() {
	ctx := context.Background()
	// Signed with the refresh secret but without the refresh marker.
	token, err := utils.GenerateJWT(11, "user@example.com", false, suite.cfg.JWTRefreshSecret, suite.cfg.JWTRefreshExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, _, err = suite.service.RefreshTokens(ctx, token)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("invalid refresh token", err.Error())
}

func (suite *AuthServiceTestSuite) TestRefreshTokens_RejectsGarbage() {
	_, _, err := suite.service.RefreshTokens(context.Background(), "not-a-jwt")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRefreshTokens_UnknownUser() {
	ctx := context.Background()
	user := &domain.User{UserID: 404, Email: "gone@example.com"}
	refreshToken := suite.issueRefreshToken(user)

	suite.mockUserRepo.On("FindUserByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.RefreshTokens(ctx, refreshToken)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("invalid refresh token", err.Error())
}

// --- ChangePassword Tests ---

func (suite *AuthServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	currentPassword := "old-password"
	newPassword := "new-password"
	user := suite.activeUser("user@example.com", currentPassword)

	suite.mockUserRepo.On("FindUserByIDWithCredentials", ctx, int64(11)).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePasswordHash", ctx, int64(11), mock.MatchedBy(func(hash string) bool {
		return hash != newPassword && utils.CheckPasswordHash(newPassword, hash)
	})).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, 11, currentPassword, newPassword)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	user := suite.activeUser("user@example.com", "real-password")

	suite.mockUserRepo.On("FindUserByIDWithCredentials", ctx, int64(11)).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, 11, "wrong-password", "new-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("current password is incorrect", err.Error())
	// The stored hash is untouched.
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestChangePassword_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByIDWithCredentials", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ChangePassword(ctx, 99, "whatever", "new-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("user not found", err.Error())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
