package repositories

import (
	"context"
	"time"

	"github.com/financeira-app/gf_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
// Every read returns transactions with the category name already resolved,
// so callers never need a second lookup per row.
type TransactionRepository interface {
	// SaveTransaction inserts or updates a transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID returns the transaction with the given id, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser returns the user's transactions ordered by
	// (date desc, created_at desc, transaction_id desc), paginated with an
	// opaque cursor token.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionsByUserAndDateRange returns all of the user's transactions
	// with date within [startDate, endDate], inclusive on both ends. Result
	// ordering is not part of the contract.
	FindTransactionsByUserAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]domain.Transaction, error)

	// DeleteTransaction removes the transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
