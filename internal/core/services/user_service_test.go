package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/core/services"
	"github.com/invenko/inventory_management_app/internal/dto"
	"github.com/invenko/inventory_management_app/internal/utils"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *domain.User) bool {
		return user.Email == req.Email &&
			user.Name == req.Name &&
			user.Role == domain.DefaultRole &&
			user.Active &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).UserID = 1
	}).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.Equal(int64(1), createdUser.UserID)
	suite.Equal(req.Name, createdUser.Name)
	suite.Empty(createdUser.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	}
	existing := &domain.User{UserID: 5, Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.Anything).Return(expectedErr).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.Contains(err.Error(), expectedErr.Error())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	expectedUser := &domain.User{UserID: 3, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	expected := []domain.User{
		{UserID: 1, Name: "First"},
		{UserID: 2, Name: "Second"},
	}

	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.User{UserID: 3, Name: "Old Name", Email: "old@example.com"}
	newName := "New Name"
	updated := &domain.User{UserID: 3, Name: newName, Email: "old@example.com"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		// Email stays untouched when the field is omitted.
		return user.Name == newName && user.Email == "old@example.com"
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(3)).Return(updated, nil).Once()

	user, err := suite.service.UpdateUser(ctx, 3, dto.UpdateUserRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.UpdateUser(ctx, 404, dto.UpdateUserRequest{})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateUserStatus Tests ---

func (suite *UserServiceTestSuite) TestUpdateUserStatus_Deactivate() {
	ctx := context.Background()
	deactivated := &domain.User{UserID: 3, Active: false}

	suite.mockUserRepo.On("UpdateUserStatus", ctx, int64(3), false).Return(deactivated, nil).Once()

	user, err := suite.service.UpdateUserStatus(ctx, 3, false)

	suite.Require().NoError(err)
	suite.False(user.Active)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("DeleteUser", ctx, int64(3)).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, 3)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("DeleteUser", ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
