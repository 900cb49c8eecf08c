package repositories

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsReader defines read operations for the store settings
type SettingsReader interface {
	// GetSettings loads the exchange rate, the dual display flag and the active currency.
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
}

// SettingsWriter defines write operations for the store settings
type SettingsWriter interface {
	SaveExchangeRate(ctx context.Context, rate decimal.Decimal) error
	SaveDualDisplayEnabled(ctx context.Context, enabled bool) error
	SaveActiveCurrency(ctx context.Context, currency domain.Currency) error

	// EnsureDefaults writes each default that has no stored value yet and leaves the rest alone.
	EnsureDefaults(ctx context.Context, defaults domain.StoreSettings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
