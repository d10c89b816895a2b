package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.MonthlyReport {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{
			TransactionID: "t1",
			Date:          date,
			Amount:        decimal.RequireFromString("1000.00"),
			Type:          domain.Income,
			Description:   "Pagamento mensal",
			CategoryID:    "c1",
			CategoryName:  "Salário",
		},
		{
			TransactionID: "t2",
			Date:          date.AddDate(0, 0, -5),
			Amount:        decimal.RequireFromString("250.50"),
			Type:          domain.Expense,
			Description:   "Compras da semana",
			CategoryID:    "c2",
			CategoryName:  "Mercado",
		},
	}
	totalIncome := decimal.RequireFromString("1000.00")
	totalExpense := decimal.RequireFromString("250.50")
	return &domain.MonthlyReport{
		Year:         2024,
		Month:        3,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		ByCategory: []domain.CategorySummary{
			{CategoryID: "c2", CategoryName: "Mercado", Type: domain.Expense, Total: totalExpense},
			{CategoryID: "c1", CategoryName: "Salário", Type: domain.Income, Total: totalIncome},
		},
		Transactions: txns,
	}
}

func newExportService() portssvc.ExportSvcFacade {
	return services.NewExportService()
}

func TestRenderPDF(t *testing.T) {
	svc := newExportService()

	file, err := svc.RenderPDF(context.Background(), sampleReport())

	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "relatorio_2024_3.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	require.NotEmpty(t, file.Data)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")), "expected a PDF header")
}

func TestRenderPDF_EmptyReport(t *testing.T) {
	svc := newExportService()
	report := &domain.MonthlyReport{
		Year:         2024,
		Month:        2,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		ByCategory:   []domain.CategorySummary{},
	}

	file, err := svc.RenderPDF(context.Background(), report)

	require.NoError(t, err)
	require.NotEmpty(t, file.Data)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestRenderSpreadsheet_Layout(t *testing.T) {
	svc := newExportService()

	file, err := svc.RenderSpreadsheet(context.Background(), sampleReport())

	require.NoError(t, err)
	assert.Equal(t, "relatorio_2024_3.xlsx", file.FileName)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	sheet := "Relatório 3_2024"
	require.Contains(t, wb.GetSheetList(), sheet)

	title, err := wb.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Relatório Financeiro - 3/2024", title)

	// Summary rows keep the currency marker as plain strings.
	for cell, want := range map[string]string{
		"A3": "Total Entradas",
		"B3": "R$ 1000.00",
		"A4": "Total Saídas",
		"B4": "R$ 250.50",
		"A5": "Saldo",
		"B5": "R$ 749.50",
	} {
		got, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}

	// Row 6 separates the summary block from the table.
	blank, err := wb.GetCellValue(sheet, "A6")
	require.NoError(t, err)
	assert.Empty(t, blank)

	headers := []string{"Data", "Tipo", "Categoria", "Descrição", "Valor"}
	for i, want := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 7)
		require.NoError(t, err)
		got, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// First data row, newest transaction first as provided.
	for cell, want := range map[string]string{
		"A8": "15/03/2024",
		"B8": "ENTRADA",
		"C8": "Salário",
		"D8": "Pagamento mensal",
		"E8": "1000",
	} {
		got, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}

	// Value cells are numeric so consumers can compute over them.
	cellType, err := wb.GetCellType(sheet, "E8")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestRenderSpreadsheet_EmptyReport(t *testing.T) {
	svc := newExportService()
	report := &domain.MonthlyReport{
		Year:         2023,
		Month:        11,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		ByCategory:   []domain.CategorySummary{},
	}

	file, err := svc.RenderSpreadsheet(context.Background(), report)

	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	sheet := "Relatório 11_2023"
	require.Contains(t, wb.GetSheetList(), sheet)

	saldo, err := wb.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "R$ 0.00", saldo)

	// No data rows below the header.
	firstData, err := wb.GetCellValue(sheet, "A8")
	require.NoError(t, err)
	assert.Empty(t, firstData)
}

func TestRenderTransactionsSpreadsheet(t *testing.T) {
	svc := newExportService()
	txns := sampleReport().Transactions

	file, err := svc.RenderTransactionsSpreadsheet(context.Background(), txns)

	require.NoError(t, err)
	assert.Equal(t, "transacoes.xlsx", file.FileName)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	sheet := "Transações"
	require.Contains(t, wb.GetSheetList(), sheet)

	// Flat layout: header at row 1, data from row 2, no summary block.
	header, err := wb.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Data", header)

	for cell, want := range map[string]string{
		"A2": "15/03/2024",
		"C2": "Salário",
		"A3": "10/03/2024",
		"C3": "Mercado",
	} {
		got, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestRenderTransactionsSpreadsheet_Empty(t *testing.T) {
	svc := newExportService()

	file, err := svc.RenderTransactionsSpreadsheet(context.Background(), nil)

	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	header, err := wb.GetCellValue("Transações", "E1")
	require.NoError(t, err)
	assert.Equal(t, "Valor", header)
}
