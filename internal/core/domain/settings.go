package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultExchangeRate is the fixed BGN/EUR conversion rate (BGN per 1 EUR).
var DefaultExchangeRate = decimal.RequireFromString("1.95583")

// exchangeRatePattern accepts plain decimals with up to five fractional digits.
var exchangeRatePattern = regexp.MustCompile(`^\d+(\.\d{1,5})?$`)

// ExchangeRateConfig is the administrator-managed conversion configuration.
type ExchangeRateConfig struct {
	Rate               decimal.Decimal `json:"rate"`
	DualDisplayEnabled bool            `json:"dualDisplayEnabled"`
}

// StoreSettings is everything the display and migration components read from the settings store.
type StoreSettings struct {
	ExchangeRateConfig
	ActiveCurrency Currency `json:"activeCurrency"`
}

// DisplayConfig is the explicitly injected configuration every formatting call receives.
type DisplayConfig struct {
	Rate               decimal.Decimal
	DualDisplayEnabled bool
	ActiveCurrency     Currency
}

// DisplayConfig derives the per-call display configuration from the stored settings.
func (s StoreSettings) DisplayConfig() DisplayConfig {
	return DisplayConfig{
		Rate:               s.Rate,
		DualDisplayEnabled: s.DualDisplayEnabled,
		ActiveCurrency:     s.ActiveCurrency,
	}
}

// DefaultStoreSettings are used on first start, before an administrator changes anything.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		ExchangeRateConfig: ExchangeRateConfig{
			Rate:               DefaultExchangeRate,
			DualDisplayEnabled: true,
		},
		ActiveCurrency: BGN,
	}
}

// ParseExchangeRate validates an administrator-entered rate: a plain positive decimal with at most five fractional digits.
func ParseExchangeRate(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !exchangeRatePattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: exchange rate '%s' is not a valid number", apperrors.ErrValidation, raw)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: exchange rate '%s' is not a valid number", apperrors.ErrValidation, raw)
	}
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// ValidateRate rejects rates that are zero or negative.
func ValidateRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	return nil
}
