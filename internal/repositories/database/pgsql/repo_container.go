package pgsql

import (
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CatalogRepo:  newPgxCatalogRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		BackupRepo:   newPgxBackupRepository(dbPool),
	}
}
