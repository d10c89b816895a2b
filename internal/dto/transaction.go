package dto

import (
	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest is the payload for registering a transaction.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=ENTRADA SAIDA"`
	Description string          `json:"description" binding:"max=500"`
	CategoryID  string          `json:"categoryID" binding:"required"`
}

// UpdateTransactionRequest is the payload for updating a transaction.
type UpdateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=ENTRADA SAIDA"`
	Description string          `json:"description" binding:"max=500"`
	CategoryID  string          `json:"categoryID" binding:"required"`
}

// TransactionResponse is the public projection of a transaction, with the
// category name denormalized from the record itself.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
}

// ListTransactionsResponse is a page of transactions plus the cursor for the
// next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse projects a domain transaction into its response form.
// The category name comes from the record's own resolved reference; no store
// lookup happens here.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(DateLayout),
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Description:   txn.Description,
		CategoryID:    txn.CategoryID,
		CategoryName:  txn.CategoryName,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
