package pgsql

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	"github.com/SscSPs/dual_currency_display/internal/models"
	"github.com/SscSPs/dual_currency_display/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const backupColumns = `backup_id, batch_id::text, item_id, price_kind, amount, currency, created_at`

// PgxBackupRepository appends to and reads the price_backups log.
type PgxBackupRepository struct {
	BaseRepository
}

func newPgxBackupRepository(pool *pgxpool.Pool) portsrepo.BackupRepositoryFacade {
	return &PgxBackupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.BackupRepositoryFacade = (*PgxBackupRepository)(nil)
	_ portsrepo.TxRunner               = (*PgxBackupRepository)(nil)
)

// AppendBackups inserts every record in one batch inside a transaction, so a backup run is written whole or not at all.
func (r *PgxBackupRepository) AppendBackups(ctx context.Context, records []domain.BackupRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, record := range records {
		m := mapping.ToModelPriceBackup(record)
		batch.Queue(`
			INSERT INTO price_backups (batch_id, item_id, price_kind, amount, currency, created_at)
			VALUES ($1::uuid, $2, $3, $4, $5, $6);`,
			m.BatchID, m.ItemID, m.PriceKind, m.Amount, m.Currency, m.CreatedAt)
	}

	err := r.InTx(ctx, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for range records {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return apperrors.NewAppError(500, "failed to insert price backup", err)
			}
		}
		if err := results.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert price backup", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (r *PgxBackupRepository) ListBackupsByCurrency(ctx context.Context, currency domain.Currency) ([]domain.BackupRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+backupColumns+`
		FROM price_backups
		WHERE currency = $1
		ORDER BY backup_id;`, currency.String())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list price backups", err)
	}
	return collectBackups(rows)
}

func (r *PgxBackupRepository) ListBackups(ctx context.Context) ([]domain.BackupRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+backupColumns+`
		FROM price_backups
		ORDER BY backup_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list price backups", err)
	}
	return collectBackups(rows)
}

func (r *PgxBackupRepository) ListBackupCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT currency FROM price_backups ORDER BY currency;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list backup currencies", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan backup currency", err)
	}
	currencies := make([]domain.Currency, 0, len(codes))
	for _, code := range codes {
		currencies = append(currencies, domain.Currency(code))
	}
	return currencies, nil
}

func collectBackups(rows pgx.Rows) ([]domain.BackupRecord, error) {
	defer rows.Close()

	var modelBackups []models.PriceBackup
	for rows.Next() {
		var m models.PriceBackup
		if err := rows.Scan(&m.BackupID, &m.BatchID, &m.ItemID, &m.PriceKind, &m.Amount, &m.Currency, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan price backup", err)
		}
		modelBackups = append(modelBackups, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate price backups", err)
	}
	return mapping.ToDomainBackupRecords(modelBackups), nil
}
