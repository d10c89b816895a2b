package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategorySummary is the aggregated total for one category+type combination
// within a report period.
type CategorySummary struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Type         TransactionType `json:"type"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlyReport is the complete, immutable result of aggregating one user's
// transactions over one period. It is assembled once per request and is the
// sole input to the document renderers.
type MonthlyReport struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	TotalIncome  decimal.Decimal   `json:"totalIncome"`
	TotalExpense decimal.Decimal   `json:"totalExpense"`
	Balance      decimal.Decimal   `json:"balance"` // TotalIncome - TotalExpense, may be negative
	ByCategory   []CategorySummary `json:"byCategory"`
	Transactions []Transaction     `json:"transactions"` // Ordered by date descending
}

type categoryKey struct {
	categoryID   string
	categoryName string
	txnType      TransactionType
}

// Summarize computes the income and expense totals and per-category summaries
// over a transaction set. It is a pure function: no side effects, input order
// does not influence the totals, and summing never rounds beyond the two
// decimal digits the amounts already carry.
//
// The grouping key includes the category name as observed on each record, so
// two records carrying the same category id but different cached names are
// never merged silently. Summaries are returned sorted by category name, then
// category id, then type, which keeps rendered documents stable across calls.
func Summarize(txns []Transaction) (totalIncome, totalExpense decimal.Decimal, byCategory []CategorySummary) {
	totalIncome = decimal.Zero
	totalExpense = decimal.Zero
	totals := make(map[categoryKey]decimal.Decimal)

	for _, t := range txns {
		switch t.Type {
		case Income:
			totalIncome = totalIncome.Add(t.Amount)
		case Expense:
			totalExpense = totalExpense.Add(t.Amount)
		}
		key := categoryKey{categoryID: t.CategoryID, categoryName: t.CategoryName, txnType: t.Type}
		totals[key] = totals[key].Add(t.Amount)
	}

	byCategory = make([]CategorySummary, 0, len(totals))
	for key, total := range totals {
		byCategory = append(byCategory, CategorySummary{
			CategoryID:   key.categoryID,
			CategoryName: key.categoryName,
			Type:         key.txnType,
			Total:        total,
		})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].CategoryName != byCategory[j].CategoryName {
			return byCategory[i].CategoryName < byCategory[j].CategoryName
		}
		if byCategory[i].CategoryID != byCategory[j].CategoryID {
			return byCategory[i].CategoryID < byCategory[j].CategoryID
		}
		return byCategory[i].Type < byCategory[j].Type
	})

	return totalIncome, totalExpense, byCategory
}
