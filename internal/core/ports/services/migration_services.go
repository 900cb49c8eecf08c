package services

import (
	"context"
	"io"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/SscSPs/dual_currency_display/internal/dto"
	"github.com/shopspring/decimal"
)

// MigrationSvc converts every catalog price from one currency to the other
type MigrationSvc interface {
	// Migrate walks the catalog. Failures are reported inside the result, never as a Go error.
	Migrate(ctx context.Context, direction domain.Direction, rate decimal.Decimal) domain.MigrationResult
}

// BackupReaderSvc defines read operations on the backup log
type BackupReaderSvc interface {
	BackupCurrencies(ctx context.Context) ([]domain.Currency, error)
	ExportBackup(ctx context.Context, w io.Writer) error
}

// BackupWriterSvc defines backup and restore
type BackupWriterSvc interface {
	// Backup snapshots every catalog price in the active currency.
	Backup(ctx context.Context) (*domain.BackupResult, error)

	// Restore reapplies every backup row of the target currency and clears the ledger for restored prices.
	Restore(ctx context.Context, target domain.Currency, enableDualDisplay bool) (int, error)
}

// BackupSvcFacade combines all backup-related service interfaces
type BackupSvcFacade interface {
	BackupReaderSvc
	BackupWriterSvc
}

// AdminSvc is the administrative surface: each call validates its input and returns a structured result.
type AdminSvc interface {
	UpdateRate(ctx context.Context, req dto.UpdateExchangeRateRequest) (*domain.StoreSettings, error)
	RunMigration(ctx context.Context, req dto.RunMigrationRequest) (*domain.AdminRunResult, error)
	RunRestore(ctx context.Context, req dto.RestoreRequest) (*domain.RestoreResult, error)
	ToggleDualDisplay(ctx context.Context, req dto.ToggleDualDisplayRequest) (*domain.StoreSettings, error)
}
