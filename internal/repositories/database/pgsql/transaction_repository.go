package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portsrepo "github.com/financeira-app/gf_backend/internal/core/ports/repositories"
	"github.com/financeira-app/gf_backend/internal/models"
	"github.com/financeira-app/gf_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func NewPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		CategoryID:    d.CategoryID,
		CategoryName:  d.CategoryName,
		Date:          d.Date,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		CategoryID:    m.CategoryID,
		CategoryName:  m.CategoryName,
		Date:          m.Date,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// selectColumns joins categories so every row carries its category name.
const selectColumns = `
	t.transaction_id, t.user_id, t.category_id, c.name AS category_name,
	t.date, t.amount, t.type, t.description, t.created_at
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.CategoryID,
		&m.CategoryName,
		&m.Date,
		&m.Amount,
		&m.Type,
		&m.Description,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, category_id, date, amount, type, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (transaction_id) DO UPDATE SET
            category_id = EXCLUDED.category_id,
            date = EXCLUDED.date,
            amount = EXCLUDED.amount,
            type = EXCLUDED.type,
            description = EXCLUDED.description;
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Date,
		m.Amount,
		m.Type,
		m.Description,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.category_id = t.category_id
		WHERE t.transaction_id = $1;
	`, selectColumns)

	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{userID}
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1
	`, selectColumns)

	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorCreatedAt, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		// The id tiebreak keeps rows sharing (date, created_at) from being
		// skipped or repeated across page boundaries.
		query += ` AND (t.date, t.created_at, t.transaction_id) < ($2, $3, $4)`
		args = append(args, cursorDate, cursorCreatedAt, cursorID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY t.date DESC, t.created_at DESC, t.transaction_id DESC LIMIT %d;`, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt, last.TransactionID)
		newNextToken = &token
	}

	return txns, newNextToken, nil
}

func (r *PgxTransactionRepository) FindTransactionsByUserAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.category_id = t.category_id
		WHERE t.user_id = $1 AND t.date BETWEEN $2 AND $3;
	`, selectColumns)

	rows, err := r.db.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		// Reads feeding the report engine surface a store failure the
		// boundary can map without retrying here.
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
