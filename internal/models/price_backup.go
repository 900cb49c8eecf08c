package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBackup is a row of the append-only price_backups log.
type PriceBackup struct {
	BackupID  int64           `json:"backupID"` // Primary Key (BIGSERIAL)
	BatchID   string          `json:"batchID"`
	ItemID    int64           `json:"itemID"`
	PriceKind string          `json:"priceKind"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}
