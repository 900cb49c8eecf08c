package repositories

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
)

// BackupReader defines read operations for the price backup log
type BackupReader interface {
	// ListBackupsByCurrency returns every row of the given currency in insertion order.
	ListBackupsByCurrency(ctx context.Context, currency domain.Currency) ([]domain.BackupRecord, error)

	// ListBackups returns the whole log in insertion order.
	ListBackups(ctx context.Context) ([]domain.BackupRecord, error)

	// ListBackupCurrencies returns the distinct currencies present in the log.
	ListBackupCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// BackupWriter defines write operations for the price backup log. The log is append-only.
type BackupWriter interface {
	AppendBackups(ctx context.Context, records []domain.BackupRecord) (int, error)
}

// BackupRepositoryFacade combines all backup-related repository interfaces
type BackupRepositoryFacade interface {
	BackupReader
	BackupWriter
}
