package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OriginalPrice is a row of original_prices, keyed by (ItemID, PriceKind, SourceCurrency).
type OriginalPrice struct {
	ItemID         int64           `json:"itemID"`
	PriceKind      string          `json:"priceKind"`
	SourceCurrency string          `json:"sourceCurrency"`
	Amount         decimal.Decimal `json:"amount"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
