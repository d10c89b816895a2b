package domain_test

import (
	"testing"
	"time"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(categoryID, categoryName string, txnType domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: categoryID + "-" + amount,
		CategoryID:    categoryID,
		CategoryName:  categoryName,
		Type:          txnType,
		Amount:        decimal.RequireFromString(amount),
		Date:          time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarize_TotalsAndBalanceInputs(t *testing.T) {
	txns := []domain.Transaction{
		txn("c1", "Salário", domain.Income, "1000.00"),
		txn("c2", "Mercado", domain.Expense, "250.00"),
		txn("c2", "Mercado", domain.Expense, "100.00"),
		txn("c3", "Freela", domain.Income, "200.00"),
	}

	totalIncome, totalExpense, byCategory := domain.Summarize(txns)

	assert.True(t, totalIncome.Equal(decimal.RequireFromString("1200.00")), "income: %s", totalIncome)
	assert.True(t, totalExpense.Equal(decimal.RequireFromString("350.00")), "expense: %s", totalExpense)
	require.Len(t, byCategory, 3)
}

func TestSummarize_EmptyInput(t *testing.T) {
	totalIncome, totalExpense, byCategory := domain.Summarize(nil)

	assert.True(t, totalIncome.Equal(decimal.Zero))
	assert.True(t, totalExpense.Equal(decimal.Zero))
	require.NotNil(t, byCategory)
	assert.Empty(t, byCategory)
}

func TestSummarize_MergesSameCategoryAndKind(t *testing.T) {
	txns := []domain.Transaction{
		txn("c1", "Mercado", domain.Expense, "30.00"),
		txn("c1", "Mercado", domain.Expense, "70.00"),
	}

	_, totalExpense, byCategory := domain.Summarize(txns)

	require.Len(t, byCategory, 1)
	assert.Equal(t, "c1", byCategory[0].CategoryID)
	assert.Equal(t, "Mercado", byCategory[0].CategoryName)
	assert.Equal(t, domain.Expense, byCategory[0].Type)
	assert.True(t, byCategory[0].Total.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, totalExpense.Equal(byCategory[0].Total))
}

func TestSummarize_SameCategoryDifferentKindsStaySeparate(t *testing.T) {
	txns := []domain.Transaction{
		txn("c1", "Ajustes", domain.Income, "50.00"),
		txn("c1", "Ajustes", domain.Expense, "20.00"),
	}

	_, _, byCategory := domain.Summarize(txns)

	require.Len(t, byCategory, 2)
	assert.NotEqual(t, byCategory[0].Type, byCategory[1].Type)
}

func TestSummarize_DistinctNamesForSameIDNotMerged(t *testing.T) {
	// Two rows carrying different resolved names for the same id group
	// separately; the grouping key includes the name.
	txns := []domain.Transaction{
		txn("c1", "Mercado", domain.Expense, "10.00"),
		txn("c1", "Supermercado", domain.Expense, "20.00"),
	}

	_, _, byCategory := domain.Summarize(txns)

	require.Len(t, byCategory, 2)
}

func TestSummarize_CategoryTotalsPartitionGrandTotals(t *testing.T) {
	txns := []domain.Transaction{
		txn("c1", "Salário", domain.Income, "1234.56"),
		txn("c2", "Mercado", domain.Expense, "78.90"),
		txn("c3", "Transporte", domain.Expense, "12.34"),
		txn("c1", "Salário", domain.Income, "0.44"),
	}

	totalIncome, totalExpense, byCategory := domain.Summarize(txns)

	sumIncome := decimal.Zero
	sumExpense := decimal.Zero
	for _, summary := range byCategory {
		if summary.Type == domain.Income {
			sumIncome = sumIncome.Add(summary.Total)
		} else {
			sumExpense = sumExpense.Add(summary.Total)
		}
	}
	assert.True(t, sumIncome.Equal(totalIncome))
	assert.True(t, sumExpense.Equal(totalExpense))
}

func TestSummarize_OutputOrderIsStable(t *testing.T) {
	txns := []domain.Transaction{
		txn("c3", "Transporte", domain.Expense, "5.00"),
		txn("c1", "Mercado", domain.Expense, "10.00"),
		txn("c2", "Salário", domain.Income, "100.00"),
	}

	_, _, first := domain.Summarize(txns)
	_, _, second := domain.Summarize([]domain.Transaction{txns[2], txns[0], txns[1]})

	require.Equal(t, first, second)
	assert.Equal(t, "Mercado", first[0].CategoryName)
	assert.Equal(t, "Salário", first[1].CategoryName)
	assert.Equal(t, "Transporte", first[2].CategoryName)
}
