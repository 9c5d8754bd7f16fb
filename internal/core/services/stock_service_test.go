package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invenko/inventory_management_app/internal/apperrors"
	"github.com/invenko/inventory_management_app/internal/core/domain"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/core/services"
	"github.com/invenko/inventory_management_app/internal/dto"
)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) CreateStock(ctx context.Context, stock *domain.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) FindStockByID(ctx context.Context, stockID int64) (*domain.Stock, error) {
	args := m.Called(ctx, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepository) FindStocks(ctx context.Context, limit, offset int) ([]domain.Stock, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stock), args.Error(1)
}

func (m *MockStockRepository) UpdateStock(ctx context.Context, stock domain.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteStock(ctx context.Context, stockID int64) error {
	args := m.Called(ctx, stockID)
	return args.Error(0)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo   *MockStockRepository
	mockProductRepo *MockProductRepository
	service         portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewStockService(suite.mockStockRepo, suite.mockProductRepo)
}

func (suite *StockServiceTestSuite) TestCreateStock_Success() {
	ctx := context.Background()
	req := dto.CreateStockRequest{ProductID: 10, Quantity: 5, Location: "warehouse-a"}
	created := &domain.Stock{StockID: 1, ProductID: 10, Quantity: 5, Location: "warehouse-a"}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()
	suite.mockStockRepo.On("CreateStock", ctx, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.ProductID == 10 && s.Quantity == 5 && s.Location == "warehouse-a"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Stock).StockID = 1
	}).Return(nil).Once()
	suite.mockStockRepo.On("FindStockByID", ctx, int64(1)).Return(created, nil).Once()

	stock, err := suite.service.CreateStock(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), stock.StockID)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestCreateStock_UnknownProduct() {
	ctx := context.Background()
	req := dto.CreateStockRequest{ProductID: 404, Quantity: 5, Location: "warehouse-a"}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	stock, err := suite.service.CreateStock(ctx, req)

	suite.Require().Error(err)
	suite.Nil(stock)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("product not found", err.Error())
	suite.mockStockRepo.AssertNotCalled(suite.T(), "CreateStock", mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestUpdateStock_NegativeQuantity() {
	ctx := context.Background()
	existing := &domain.Stock{StockID: 1, ProductID: 10, Quantity: 5, Location: "warehouse-a"}
	negative := -1

	suite.mockStockRepo.On("FindStockByID", ctx, int64(1)).Return(existing, nil).Once()

	stock, err := suite.service.UpdateStock(ctx, 1, dto.UpdateStockRequest{Quantity: &negative})

	suite.Require().Error(err)
	suite.Nil(stock)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "UpdateStock", mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestUpdateStock_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Stock{StockID: 1, ProductID: 10, Quantity: 5, Location: "warehouse-a"}
	newLocation := "warehouse-b"
	updated := &domain.Stock{StockID: 1, ProductID: 10, Quantity: 5, Location: newLocation}

	suite.mockStockRepo.On("FindStockByID", ctx, int64(1)).Return(existing, nil).Once()
	suite.mockStockRepo.On("UpdateStock", ctx, mock.MatchedBy(func(s domain.Stock) bool {
		// Quantity stays untouched when the field is omitted.
		return s.Quantity == 5 && s.Location == newLocation
	})).Return(nil).Once()
	suite.mockStockRepo.On("FindStockByID", ctx, int64(1)).Return(updated, nil).Once()

	stock, err := suite.service.UpdateStock(ctx, 1, dto.UpdateStockRequest{Location: &newLocation})

	suite.Require().NoError(err)
	suite.Equal(newLocation, stock.Location)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestDeleteStock_NotFound() {
	ctx := context.Background()

	suite.mockStockRepo.On("DeleteStock", ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteStock(ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
