package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/dto"
	"github.com/shopspring/decimal"
)

// adminService validates administrator input and sequences the settings, backup and migration services.
type adminService struct {
	BaseService
	settings  portssvc.SettingsSvcFacade
	migration portssvc.MigrationSvc
	backup    portssvc.BackupSvcFacade
}

// NewAdminService creates a new admin service.
func NewAdminService(settings portssvc.SettingsSvcFacade, migration portssvc.MigrationSvc, backup portssvc.BackupSvcFacade) portssvc.AdminSvc {
	return &adminService{
		settings:  settings,
		migration: migration,
		backup:    backup,
	}
}

var _ portssvc.AdminSvc = (*adminService)(nil)

func (s *adminService) UpdateRate(ctx context.Context, req dto.UpdateExchangeRateRequest) (*domain.StoreSettings, error) {
	rate, err := domain.ParseExchangeRate(req.Rate)
	if err != nil {
		return nil, err
	}
	if err := s.settings.UpdateExchangeRate(ctx, rate); err != nil {
		return nil, err
	}
	return s.settings.GetSettings(ctx)
}

// RunMigration returns a non-nil result together with any error so the caller can always report a count.
func (s *adminService) RunMigration(ctx context.Context, req dto.RunMigrationRequest) (*domain.AdminRunResult, error) {
	result := &domain.AdminRunResult{}

	migrationReq, err := s.parseMigrationRequest(ctx, req)
	if err != nil {
		result.Migration = domain.MigrationResult{Error: err.Error()}
		return result, err
	}
	logger := s.GetLogger(ctx).With(
		slog.String("direction", string(migrationReq.Direction)),
		slog.String("rate", migrationReq.Rate.String()))

	if migrationReq.Options.BackupFirst {
		backup, err := s.backup.Backup(ctx)
		if err != nil {
			result.Migration = domain.MigrationResult{Error: "Error backing up prices: " + err.Error()}
			return result, fmt.Errorf("backup before migration failed: %w", err)
		}
		if backup.Currency != migrationReq.Direction.Source() {
			logger.Warn("Backup was taken in a currency other than the migration source",
				slog.String("backup_currency", backup.Currency.String()))
		}
		result.Backup = backup
	}

	result.Migration = s.migration.Migrate(ctx, migrationReq.Direction, migrationReq.Rate)
	if result.Migration.Failed() {
		return result, apperrors.NewAppError(500, "migration failed", errors.New(result.Migration.Error))
	}

	if migrationReq.Options.SwitchActiveCurrency {
		if err := s.settings.SetActiveCurrency(ctx, migrationReq.Direction.Target()); err != nil {
			return result, err
		}
	}
	if err := s.settings.SetDualDisplayEnabled(ctx, !migrationReq.Options.DisableDualDisplay); err != nil {
		return result, err
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return result, err
	}
	result.Settings = *settings
	return result, nil
}

func (s *adminService) parseMigrationRequest(ctx context.Context, req dto.RunMigrationRequest) (domain.MigrationRequest, error) {
	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		return domain.MigrationRequest{}, err
	}

	var rate decimal.Decimal
	if raw := strings.TrimSpace(req.Rate); raw != "" {
		rate, err = decimal.NewFromString(raw)
		if err != nil {
			return domain.MigrationRequest{}, apperrors.NewValidationError("Invalid exchange rate")
		}
	} else {
		settings, err := s.settings.GetSettings(ctx)
		if err != nil {
			return domain.MigrationRequest{}, err
		}
		rate = settings.Rate
	}
	if err := domain.ValidateRate(rate); err != nil {
		return domain.MigrationRequest{}, apperrors.NewValidationError("Invalid exchange rate")
	}

	return domain.MigrationRequest{
		Direction: direction,
		Rate:      rate,
		Options: domain.MigrationOptions{
			BackupFirst:          req.BackupFirst,
			SwitchActiveCurrency: req.SwitchActiveCurrency,
			DisableDualDisplay:   req.DisableDualDisplay,
		},
	}, nil
}

func (s *adminService) RunRestore(ctx context.Context, req dto.RestoreRequest) (*domain.RestoreResult, error) {
	target, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return &domain.RestoreResult{Error: err.Error()}, err
	}

	count, err := s.backup.Restore(ctx, target, req.EnableDualDisplay)
	result := &domain.RestoreResult{
		Count:              count,
		Currency:           target,
		DualDisplayEnabled: req.EnableDualDisplay,
	}
	if err != nil {
		s.LogError(ctx, err, "Restore aborted", slog.Int("restored_before_failure", count))
		result.Error = err.Error()
		return result, err
	}
	return result, nil
}

func (s *adminService) ToggleDualDisplay(ctx context.Context, req dto.ToggleDualDisplayRequest) (*domain.StoreSettings, error) {
	if req.Enabled == nil {
		return nil, apperrors.NewValidationError("enabled is required")
	}
	if err := s.settings.SetDualDisplayEnabled(ctx, *req.Enabled); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Dual display toggled", slog.Bool("enabled", *req.Enabled))
	return s.settings.GetSettings(ctx)
}
