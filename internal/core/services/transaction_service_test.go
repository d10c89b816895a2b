package services_test

import (
	"context"
	"testing"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/core/services"
	"github.com/financeira-app/gf_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
	userID           string
	category         *domain.Category
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
	suite.category = &domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     suite.userID,
		Name:       "Mercado",
	}
}

func (suite *TransactionServiceTestSuite) validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        "2024-03-15",
		Amount:      decimal.RequireFromString("99.90"),
		Type:        "SAIDA",
		Description: "Compras",
		CategoryID:  suite.category.CategoryID,
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, req.CategoryID).Return(suite.category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.CategoryID == suite.category.CategoryID &&
			txn.CategoryName == suite.category.Name &&
			txn.Type == domain.Expense &&
			txn.Amount.Equal(decimal.RequireFromString("99.90"))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Mercado", txn.CategoryName)
	suite.Equal(2024, txn.Date.Year())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RoundsAmountToCents() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Amount = decimal.RequireFromString("10.005")

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, req.CategoryID).Return(suite.category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(decimal.RequireFromString("10.01"))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("10.01")))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Date = "15/03/2024"

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Amount = decimal.Zero

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignCategory() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	foreign := &domain.Category{CategoryID: req.CategoryID, UserID: uuid.NewString(), Name: "Mercado"}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, req.CategoryID).Return(foreign, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestListAllTransactions_DrainsPages() {
	ctx := context.Background()
	pageOne := []domain.Transaction{{TransactionID: "t1"}, {TransactionID: "t2"}}
	pageTwo := []domain.Transaction{{TransactionID: "t3"}}
	token := "next"

	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, suite.userID, 500, (*string)(nil)).Return(pageOne, &token, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, suite.userID, 500, &token).Return(pageTwo, nil, nil).Once()

	all, err := suite.service.ListAllTransactions(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("t3", all[2].TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ForeignTransaction() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	foreign := &domain.Transaction{TransactionID: transactionID, UserID: uuid.NewString()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(foreign, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, transactionID, dto.UpdateTransactionRequest{
		Date:       "2024-03-15",
		Amount:     decimal.RequireFromString("10.00"),
		Type:       "ENTRADA",
		CategoryID: suite.category.CategoryID,
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RefreshesCategoryName() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: transactionID, UserID: suite.userID, CategoryID: "old", CategoryName: "Antiga"}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.category.CategoryID).Return(suite.category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CategoryID == suite.category.CategoryID && txn.CategoryName == "Mercado"
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, transactionID, dto.UpdateTransactionRequest{
		Date:       "2024-03-20",
		Amount:     decimal.RequireFromString("55.00"),
		Type:       "SAIDA",
		CategoryID: suite.category.CategoryID,
	})

	suite.Require().NoError(err)
	suite.Equal("Mercado", txn.CategoryName)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, transactionID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
