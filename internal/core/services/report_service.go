package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/financeira-app/gf_backend/internal/core/domain"
	portsrepo "github.com/financeira-app/gf_backend/internal/core/ports/repositories"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
)

// reportService implements the ReportSvcFacade interface.
type reportService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewReportService creates a new report service.
func NewReportService(txnRepo portsrepo.TransactionRepository) portssvc.ReportSvcFacade {
	return &reportService{txnRepo: txnRepo}
}

// Ensure reportService implements the ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// MonthlyReport builds the report for one user and period. The period is
// validated before any store access; the store's row ordering is not assumed,
// the transactions list is sorted here (date desc, then created_at desc, then
// id) so repeated builds over unchanged store contents are structurally equal.
func (s *reportService) MonthlyReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error) {
	period, err := domain.NewPeriod(year, month)
	if err != nil {
		return nil, err
	}
	startDate, endDate := period.Range()

	txns, err := s.txnRepo.FindTransactionsByUserAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for monthly report",
			slog.String("user_id", userID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to fetch transactions for report: %w", err)
	}

	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.After(txns[j].CreatedAt)
		}
		return txns[i].TransactionID < txns[j].TransactionID
	})

	totalIncome, totalExpense, byCategory := domain.Summarize(txns)

	report := &domain.MonthlyReport{
		Year:         period.Year,
		Month:        period.Month,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		ByCategory:   byCategory,
		Transactions: txns,
	}

	s.LogInfo(ctx, "Monthly report generated",
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("transaction_count", len(txns)))
	return report, nil
}
