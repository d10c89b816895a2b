package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the persistence layer.
type TransactionType string

const (
	Income  TransactionType = "ENTRADA"
	Expense TransactionType = "SAIDA"
)

// Transaction is the persistence row for a transaction. CategoryName is not
// a column; reads fill it via a JOIN on categories.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	CategoryID    string          `db:"category_id"`
	CategoryName  string          `db:"category_name"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Type          TransactionType `db:"type"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}
