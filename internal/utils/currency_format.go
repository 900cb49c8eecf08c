package utils

import (
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders an amount the way the storefront shows it.
// Example: 10 EUR returns "€10.00"
// Example: 19.56 BGN returns "19.56 лв."
func FormatMoney(m domain.Money) string {
	amount := FormatWithPrecision(m.Amount, 2)
	switch m.Currency {
	case domain.EUR:
		return "€" + amount
	case domain.BGN:
		return amount + " лв."
	default:
		return amount + " " + m.Currency.String()
	}
}
