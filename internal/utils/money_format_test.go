package utils_test

import (
	"testing"

	"github.com/financeira-app/gf_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "two decimal places kept", amount: "1234.50", want: "R$ 1234.50"},
		{name: "integer gets padded", amount: "100", want: "R$ 100.00"},
		{name: "zero", amount: "0", want: "R$ 0.00"},
		{name: "negative balance", amount: "-350.10", want: "R$ -350.10"},
		{name: "extra precision rounds", amount: "10.005", want: "R$ 10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatMoney(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}
