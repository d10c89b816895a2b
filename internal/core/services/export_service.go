package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/dto"
	"github.com/financeira-app/gf_backend/internal/utils"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	dateDisplayLayout = "02/01/2006"
)

// tableHeaders is the shared 5-column shape of every transaction table.
var tableHeaders = [5]string{"Data", "Tipo", "Categoria", "Descrição", "Valor"}

// tableWidthRatios are the relative column widths of the PDF table.
var tableWidthRatios = [5]float64{1.5, 2, 2, 3, 2}

// exportService implements the ExportSvcFacade interface. Rendering is pure
// CPU/allocation work over the report value; output is deterministic for the
// same input except for the generation timestamps both the PDF and XLSX
// container formats embed.
type exportService struct {
	BaseService
}

// NewExportService creates a new export service.
func NewExportService() portssvc.ExportSvcFacade {
	return &exportService{}
}

// Ensure exportService implements the ExportSvcFacade interface
var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) RenderPDF(ctx context.Context, report *domain.MonthlyReport) (*dto.ExportFile, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252; translate the accents
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Relatório Financeiro - %d/%d", report.Month, report.Year)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Total Entradas: "+utils.FormatMoney(report.TotalIncome)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Total Saídas: "+utils.FormatMoney(report.TotalExpense)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr("Saldo: "+utils.FormatMoney(report.Balance)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Column widths follow the 1.5:2:2:3:2 ratio over the printable width.
	pageWidth, _ := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	printable := pageWidth - leftMargin - rightMargin
	var ratioSum float64
	for _, r := range tableWidthRatios {
		ratioSum += r
	}
	var colWidths [5]float64
	for i, r := range tableWidthRatios {
		colWidths[i] = printable * r / ratioSum
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range tableHeaders {
		pdf.CellFormat(colWidths[i], 7, tr(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range report.Transactions {
		pdf.CellFormat(colWidths[0], 6, t.Date.Format(dateDisplayLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, tr(string(t.Type)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, tr(t.CategoryName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, tr(t.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, tr(utils.FormatMoney(t.Amount)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		renderErr := &apperrors.RenderError{Format: "pdf", Err: err}
		s.LogError(ctx, renderErr, "PDF rendering failed", slog.Int("year", report.Year), slog.Int("month", report.Month))
		return nil, renderErr
	}

	return &dto.ExportFile{
		FileName:    fmt.Sprintf("relatorio_%d_%d.pdf", report.Year, report.Month),
		ContentType: pdfContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) RenderSpreadsheet(ctx context.Context, report *domain.MonthlyReport) (*dto.ExportFile, error) {
	file, err := s.buildReportWorkbook(report)
	if err != nil {
		renderErr := &apperrors.RenderError{Format: "xlsx", Err: err}
		s.LogError(ctx, renderErr, "Spreadsheet rendering failed", slog.Int("year", report.Year), slog.Int("month", report.Month))
		return nil, renderErr
	}
	file.FileName = fmt.Sprintf("relatorio_%d_%d.xlsx", report.Year, report.Month)
	return file, nil
}

func (s *exportService) RenderTransactionsSpreadsheet(ctx context.Context, txns []domain.Transaction) (*dto.ExportFile, error) {
	file, err := buildTransactionsWorkbook(txns)
	if err != nil {
		renderErr := &apperrors.RenderError{Format: "xlsx", Err: err}
		s.LogError(ctx, renderErr, "Transaction list rendering failed", slog.Int("transaction_count", len(txns)))
		return nil, renderErr
	}
	return file, nil
}

// buildTransactionsWorkbook lays out the flat export: the shared 5-column
// table only, no summary block.
func buildTransactionsWorkbook(txns []domain.Transaction) (*dto.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transações"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := writeTransactionTable(f, sheet, 1, txns); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", boldStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &dto.ExportFile{
		FileName:    "transacoes.xlsx",
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

// buildReportWorkbook lays out the monthly report sheet: bold title, the
// three summary rows as currency strings, a blank separator, then the
// transaction table with numeric value cells so spreadsheet consumers can
// compute over them.
func (s *exportService) buildReportWorkbook(report *domain.MonthlyReport) (*dto.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Relatório %d_%d", report.Month, report.Year)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Relatório Financeiro - %d/%d", report.Month, report.Year)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", boldStyle); err != nil {
		return nil, err
	}

	summaries := []struct {
		label string
		value string
	}{
		{"Total Entradas", utils.FormatMoney(report.TotalIncome)},
		{"Total Saídas", utils.FormatMoney(report.TotalExpense)},
		{"Saldo", utils.FormatMoney(report.Balance)},
	}
	for i, row := range summaries {
		rowNum := 3 + i
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.value); err != nil {
			return nil, err
		}
	}

	// Row 6 stays blank; the table starts at row 7.
	if err := writeTransactionTable(f, sheet, 7, report.Transactions); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A7", "E7", boldStyle); err != nil {
		return nil, err
	}

	// Fixed widths; auto-sizing is cosmetic only.
	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &dto.ExportFile{ContentType: xlsxContentType, Data: buf.Bytes()}, nil
}

// writeTransactionTable writes the shared 5-column header plus one row per
// transaction starting at headerRow. Value cells are numeric.
func writeTransactionTable(f *excelize.File, sheet string, headerRow int, txns []domain.Transaction) error {
	for i, header := range tableHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowOffset, t := range txns {
		rowNum := headerRow + 1 + rowOffset
		values := []interface{}{
			t.Date.Format(dateDisplayLayout),
			string(t.Type),
			t.CategoryName,
			t.Description,
			t.Amount.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
