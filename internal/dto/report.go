package dto

import (
	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategorySummaryResponse represents one category+type total in the monthly
// report response.
type CategorySummaryResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Type         string          `json:"type"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlyReportResponse represents the monthly report response.
type MonthlyReportResponse struct {
	Year         int                       `json:"year"`
	Month        int                       `json:"month"`
	TotalIncome  decimal.Decimal           `json:"totalIncome"`
	TotalExpense decimal.Decimal           `json:"totalExpense"`
	Balance      decimal.Decimal           `json:"balance"`
	ByCategory   []CategorySummaryResponse `json:"byCategory"`
	Transactions []TransactionResponse     `json:"transactions"`
}

// ToMonthlyReportResponse converts a domain monthly report to a DTO response.
func ToMonthlyReportResponse(report *domain.MonthlyReport) MonthlyReportResponse {
	byCategory := make([]CategorySummaryResponse, len(report.ByCategory))
	for i, summary := range report.ByCategory {
		byCategory[i] = CategorySummaryResponse{
			CategoryID:   summary.CategoryID,
			CategoryName: summary.CategoryName,
			Type:         string(summary.Type),
			Total:        summary.Total,
		}
	}

	return MonthlyReportResponse{
		Year:         report.Year,
		Month:        report.Month,
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		Balance:      report.Balance,
		ByCategory:   byCategory,
		Transactions: ToTransactionResponses(report.Transactions),
	}
}

// ExportFile is a rendered downloadable document. The renderer only suggests
// the filename and content type; transport headers are the caller's concern.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
