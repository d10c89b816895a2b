package services

import (
	"context"

	"github.com/financeira-app/gf_backend/internal/core/domain"
)

// ReportSvcFacade defines operations for building monthly reports.
type ReportSvcFacade interface {
	// MonthlyReport builds the immutable report for one user and one
	// (year, month) period. Month outside 1-12 yields
	// apperrors.ErrInvalidPeriod without touching the store; a user with no
	// transactions in the period yields an empty report with zero totals.
	MonthlyReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error)
}
