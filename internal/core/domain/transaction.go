package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "ENTRADA"
	Expense TransactionType = "SAIDA"
)

// Transaction represents a single income or expense entry.
// Amount is always strictly positive; the sign is carried by Type.
// CategoryName is resolved by the store at read time so the reporting core
// never has to look categories up on its own.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID (Not Null)
	CategoryID    string          `json:"categoryID"`    // FK -> Category.categoryID (Not Null)
	CategoryName  string          `json:"categoryName"`  // Denormalized at read time
	Date          time.Time       `json:"date"`          // Calendar day, no time-of-day semantics
	Amount        decimal.Decimal `json:"amount"`        // Positive value, scale 2
	Type          TransactionType `json:"type"`          // ENTRADA or SAIDA (Not Null)
	Description   string          `json:"description"`   // Nullable
	CreatedAt     time.Time       `json:"createdAt"`     // Set once at creation
}
