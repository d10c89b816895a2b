package domain

import (
	"fmt"
	"time"

	"github.com/financeira-app/gf_backend/internal/apperrors"
)

// Period identifies one calendar month for reporting.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod validates the (year, month) pair and returns a Period.
// Month must be within 1-12 and year within 1-9999.
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d is outside 1-12", apperrors.ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d is outside 1-9999", apperrors.ErrInvalidPeriod, year)
	}
	return Period{Year: year, Month: month}, nil
}

// Range resolves the period to its closed date interval
// [first day of month, last day of month]. Dates are pure calendar dates in
// UTC; month length follows the real calendar, including leap years.
func (p Period) Range() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
