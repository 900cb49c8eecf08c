package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is one of the two currencies the catalog can be priced in.
type Currency string

const (
	BGN Currency = "BGN"
	EUR Currency = "EUR"
)

// pricePlaces is the number of fractional digits every converted price is rounded to.
const pricePlaces = 2

// ParseCurrency accepts a currency code in any case and returns the matching Currency.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(code))) {
	case BGN:
		return BGN, nil
	case EUR:
		return EUR, nil
	default:
		return "", fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, code)
	}
}

// IsValid reports whether c is BGN or EUR.
func (c Currency) IsValid() bool {
	return c == BGN || c == EUR
}

// Counterpart returns the other currency of the pair. Anything that is not BGN or EUR has no counterpart.
func (c Currency) Counterpart() (Currency, bool) {
	switch c {
	case BGN:
		return EUR, true
	case EUR:
		return BGN, true
	default:
		return "", false
	}
}

func (c Currency) String() string {
	return string(c)
}

// Convert converts amount out of the from currency using rate (BGN per 1 EUR).
// BGN amounts are divided by the rate, EUR amounts multiplied, and the result is rounded to
// two places half away from zero. The rate must already be validated as positive.
func Convert(amount decimal.Decimal, from Currency, rate decimal.Decimal) decimal.Decimal {
	switch from {
	case BGN:
		return amount.Div(rate).Round(pricePlaces)
	case EUR:
		return amount.Mul(rate).Round(pricePlaces)
	default:
		return amount
	}
}

// Direction is the source and target of a bulk migration.
type Direction string

const (
	BGNToEUR Direction = "BGN_TO_EUR"
	EURToBGN Direction = "EUR_TO_BGN"
)

// ParseDirection validates a migration direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case BGNToEUR:
		return BGNToEUR, nil
	case EURToBGN:
		return EURToBGN, nil
	default:
		return "", fmt.Errorf("%w: unsupported migration direction '%s'", apperrors.ErrValidation, s)
	}
}

// Source is the currency prices are read in.
func (d Direction) Source() Currency {
	if d == EURToBGN {
		return EUR
	}
	return BGN
}

// Target is the currency prices are written in.
func (d Direction) Target() Currency {
	if d == EURToBGN {
		return BGN
	}
	return EUR
}
