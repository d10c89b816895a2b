package services

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/financeira-app/gf_backend/internal/dto"
)

// ExportSvcFacade defines operations for rendering downloadable documents
// from report values. Renders are deterministic for identical input, except
// for the generation timestamps both container formats embed.
type ExportSvcFacade interface {
	// RenderPDF renders the monthly report as a PDF document.
	RenderPDF(ctx context.Context, report *domain.MonthlyReport) (*dto.ExportFile, error)

	// RenderSpreadsheet renders the monthly report as an XLSX workbook with a
	// summary block followed by the transaction table.
	RenderSpreadsheet(ctx context.Context, report *domain.MonthlyReport) (*dto.ExportFile, error)

	// RenderTransactionsSpreadsheet renders a flat transaction list as an
	// XLSX workbook, without any summary block.
	RenderTransactionsSpreadsheet(ctx context.Context, txns []domain.Transaction) (*dto.ExportFile, error)
}
