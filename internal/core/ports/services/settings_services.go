package services

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingsReaderSvc defines read operations for the exchange rate store
type SettingsReaderSvc interface {
	// GetSettings returns the current rate, dual display flag and active currency.
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)

	// DisplayConfig returns the configuration the formatter and aggregator are called with.
	DisplayConfig(ctx context.Context) (domain.DisplayConfig, error)
}

// SettingsWriterSvc defines write operations for the exchange rate store
type SettingsWriterSvc interface {
	UpdateExchangeRate(ctx context.Context, rate decimal.Decimal) error
	SetDualDisplayEnabled(ctx context.Context, enabled bool) error
	SetActiveCurrency(ctx context.Context, currency domain.Currency) error

	// EnsureDefaults seeds the default rate, flag and currency on first start.
	EnsureDefaults(ctx context.Context, defaults domain.StoreSettings) error
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
