package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	settingExchangeRate       = "exchange_rate"
	settingDualDisplayEnabled = "dual_display_enabled"
	settingActiveCurrency     = "active_currency"
)

// PgxSettingsRepository stores the store settings as key/value rows.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings fills keys that were never stored from domain.DefaultStoreSettings.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	rows, err := r.Pool.Query(ctx, `SELECT setting_key, setting_value FROM store_settings;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load store settings", err)
	}
	defer rows.Close()

	settings := domain.DefaultStoreSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan store setting", err)
		}
		if err := applySetting(&settings, key, value); err != nil {
			return nil, apperrors.NewAppError(500, "corrupt store setting", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate store settings", err)
	}
	return &settings, nil
}

func applySetting(settings *domain.StoreSettings, key, value string) error {
	switch key {
	case settingExchangeRate:
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		settings.Rate = rate
	case settingDualDisplayEnabled:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		settings.DualDisplayEnabled = enabled
	case settingActiveCurrency:
		currency, err := domain.ParseCurrency(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		settings.ActiveCurrency = currency
	}
	return nil
}

func (r *PgxSettingsRepository) SaveExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	return r.saveSetting(ctx, settingExchangeRate, rate.String())
}

func (r *PgxSettingsRepository) SaveDualDisplayEnabled(ctx context.Context, enabled bool) error {
	return r.saveSetting(ctx, settingDualDisplayEnabled, strconv.FormatBool(enabled))
}

func (r *PgxSettingsRepository) SaveActiveCurrency(ctx context.Context, currency domain.Currency) error {
	return r.saveSetting(ctx, settingActiveCurrency, currency.String())
}

func (r *PgxSettingsRepository) saveSetting(ctx context.Context, key, value string) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO store_settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (setting_key) DO UPDATE
		SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at;`,
		key, value,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save setting "+key, err)
	}
	return nil
}

func (r *PgxSettingsRepository) EnsureDefaults(ctx context.Context, defaults domain.StoreSettings) error {
	values := map[string]string{
		settingExchangeRate:       defaults.Rate.String(),
		settingDualDisplayEnabled: strconv.FormatBool(defaults.DualDisplayEnabled),
		settingActiveCurrency:     defaults.ActiveCurrency.String(),
	}

	batch := &pgx.Batch{}
	for key, value := range values {
		batch.Queue(`
			INSERT INTO store_settings (setting_key, setting_value)
			VALUES ($1, $2)
			ON CONFLICT (setting_key) DO NOTHING;`, key, value)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range values {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to seed store settings", err)
		}
	}
	return nil
}
