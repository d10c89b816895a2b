package services

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/financeira-app/gf_backend/internal/dto"
)

// TransactionSvcFacade defines operations for managing a user's transactions.
type TransactionSvcFacade interface {
	// CreateTransaction registers a transaction. The category must exist and
	// belong to the same user; the amount must be strictly positive.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns one page of the user's transactions ordered by
	// (date desc, created_at desc, transaction_id desc).
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactions returns all of the user's transactions ordered by
	// (date desc, created_at desc, transaction_id desc), for ad-hoc exports.
	ListAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// UpdateTransaction updates a transaction the user owns.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction the user owns.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
