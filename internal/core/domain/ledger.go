package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OriginalPriceRecord is the amount an item had in SourceCurrency before it was last migrated out of it.
// There is at most one record per (ItemID, Kind, SourceCurrency).
type OriginalPriceRecord struct {
	ItemID         int64           `json:"itemID"`
	Kind           PriceKind       `json:"kind"`
	SourceCurrency Currency        `json:"sourceCurrency"`
	Amount         decimal.Decimal `json:"amount"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// BackupRecord is one row of the append-only price backup log.
type BackupRecord struct {
	BackupID  int64           `json:"backupID"`
	BatchID   string          `json:"batchID"`
	ItemID    int64           `json:"itemID"`
	Kind      PriceKind       `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}
