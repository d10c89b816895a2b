package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portsrepo "github.com/financeira-app/gf_backend/internal/core/ports/repositories"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exportPageSize is the page size used when draining all of a user's
// transactions for an ad-hoc export.
const exportPageSize = 500

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, categoryRepo: categoryRepo}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateInput checks date format, amount positivity and category ownership,
// returning the parsed date and the resolved category.
func (s *transactionService) validateInput(ctx context.Context, userID, dateStr string, amount decimal.Decimal, categoryID string) (time.Time, *domain.Category, error) {
	date, err := time.ParseInLocation(dto.DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return time.Time{}, nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return time.Time{}, nil, err
	}
	if category.UserID != userID {
		return time.Time{}, nil, fmt.Errorf("%w: category belongs to another user", apperrors.ErrForbidden)
	}
	return date, category, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, category, err := s.validateInput(ctx, userID, req.Date, req.Amount, req.CategoryID)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		CategoryID:    category.CategoryID,
		CategoryName:  category.Name,
		Date:          date,
		Amount:        req.Amount.Round(2),
		Type:          domain.TransactionType(req.Type),
		Description:   req.Description,
		CreatedAt:     time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save new transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction registered", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	txns, newNextToken, err := s.txnRepo.ListTransactionsByUser(ctx, userID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, newNextToken, nil
}

func (s *transactionService) ListAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	all := make([]domain.Transaction, 0)
	var nextToken *string
	for {
		page, token, err := s.txnRepo.ListTransactionsByUser(ctx, userID, exportPageSize, nextToken)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		all = append(all, page...)
		if token == nil {
			return all, nil
		}
		nextToken = token
	}
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("%w: transaction belongs to another user", apperrors.ErrForbidden)
	}

	date, category, err := s.validateInput(ctx, userID, req.Date, req.Amount, req.CategoryID)
	if err != nil {
		return nil, err
	}

	existing.CategoryID = category.CategoryID
	existing.CategoryName = category.Name
	existing.Date = date
	existing.Amount = req.Amount.Round(2)
	existing.Type = domain.TransactionType(req.Type)
	existing.Description = req.Description

	if err := s.txnRepo.SaveTransaction(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return existing, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return fmt.Errorf("%w: transaction belongs to another user", apperrors.ErrForbidden)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
