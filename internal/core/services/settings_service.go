package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// settingsService implements the exchange rate store on top of the settings repository.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load store settings")
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) DisplayConfig(ctx context.Context) (domain.DisplayConfig, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return domain.DisplayConfig{}, err
	}
	return settings.DisplayConfig(), nil
}

func (s *settingsService) UpdateExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	if err := domain.ValidateRate(rate); err != nil {
		return err
	}
	if err := s.settingsRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("rate", rate.String()))
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}
	s.LogInfo(ctx, "Exchange rate updated", slog.String("rate", rate.String()))
	return nil
}

func (s *settingsService) SetDualDisplayEnabled(ctx context.Context, enabled bool) error {
	if err := s.settingsRepo.SaveDualDisplayEnabled(ctx, enabled); err != nil {
		s.LogError(ctx, err, "Failed to save dual display flag", slog.Bool("enabled", enabled))
		return fmt.Errorf("failed to save dual display flag: %w", err)
	}
	return nil
}

func (s *settingsService) SetActiveCurrency(ctx context.Context, currency domain.Currency) error {
	if !currency.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported currency '%s'", currency))
	}
	if err := s.settingsRepo.SaveActiveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save active currency", slog.String("currency", currency.String()))
		return fmt.Errorf("failed to save active currency: %w", err)
	}
	s.LogInfo(ctx, "Active currency changed", slog.String("currency", currency.String()))
	return nil
}

func (s *settingsService) EnsureDefaults(ctx context.Context, defaults domain.StoreSettings) error {
	if err := domain.ValidateRate(defaults.Rate); err != nil {
		return err
	}
	if !defaults.ActiveCurrency.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported currency '%s'", defaults.ActiveCurrency))
	}
	if err := s.settingsRepo.EnsureDefaults(ctx, defaults); err != nil {
		return fmt.Errorf("failed to seed store settings: %w", err)
	}
	return nil
}
