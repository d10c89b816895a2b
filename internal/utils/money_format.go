package utils

import "github.com/shopspring/decimal"

// CurrencyMarker is the prefix used on every user-facing money string.
const CurrencyMarker = "R$"

// FormatMoney renders an amount with the currency marker and exactly two
// decimal places, using the dot decimal convention everywhere.
// Example: 1500 -> "R$ 1500.00", -300.5 -> "R$ -300.50"
func FormatMoney(amount decimal.Decimal) string {
	return CurrencyMarker + " " + amount.StringFixed(2)
}
