package domain_test

import (
	"testing"
	"time"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	"github.com/financeira-app/gf_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod_Valid(t *testing.T) {
	p, err := domain.NewPeriod(2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 2024, p.Year)
	assert.Equal(t, 3, p.Month)
}

func TestNewPeriod_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{name: "month zero", year: 2024, month: 0},
		{name: "month thirteen", year: 2024, month: 13},
		{name: "negative month", year: 2024, month: -1},
		{name: "year zero", year: 0, month: 6},
		{name: "year too large", year: 10000, month: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewPeriod(tt.year, tt.month)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
		})
	}
}

func TestPeriod_Range(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "31 day month",
			year:      2024,
			month:     1,
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "30 day month",
			year:      2024,
			month:     4,
			wantStart: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "february in a common year",
			year:      2023,
			month:     2,
			wantStart: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december stays within the year",
			year:      2024,
			month:     12,
			wantStart: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewPeriod(tt.year, tt.month)
			require.NoError(t, err)

			start, end := p.Range()
			assert.True(t, start.Equal(tt.wantStart), "start: got %v want %v", start, tt.wantStart)
			assert.True(t, end.Equal(tt.wantEnd), "end: got %v want %v", end, tt.wantEnd)
		})
	}
}
