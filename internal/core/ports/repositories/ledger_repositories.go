package repositories

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
)

// LedgerReader defines read operations for the original-price ledger
type LedgerReader interface {
	// FindOriginal retrieves the record for (itemID, kind, source). Returns apperrors.ErrNotFound when there is none.
	FindOriginal(ctx context.Context, itemID int64, kind domain.PriceKind, source domain.Currency) (*domain.OriginalPriceRecord, error)
}

// LedgerWriter defines write operations for the original-price ledger
type LedgerWriter interface {
	// ReplaceOriginal upserts the record and drops the opposite-currency record for the same item and kind.
	// replaced is true when a record with the same key already existed.
	ReplaceOriginal(ctx context.Context, record domain.OriginalPriceRecord) (replaced bool, err error)

	// DeleteOriginals removes the records for an item and kind in both currencies.
	DeleteOriginals(ctx context.Context, itemID int64, kind domain.PriceKind) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
