package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	"github.com/SscSPs/dual_currency_display/internal/models"
	"github.com/SscSPs/dual_currency_display/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository stores the original-price ledger in original_prices.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)
	_ portsrepo.TxRunner               = (*PgxLedgerRepository)(nil)
)

func (r *PgxLedgerRepository) FindOriginal(ctx context.Context, itemID int64, kind domain.PriceKind, source domain.Currency) (*domain.OriginalPriceRecord, error) {
	query := `
		SELECT item_id, price_kind, source_currency, amount, updated_at
		FROM original_prices
		WHERE item_id = $1 AND price_kind = $2 AND source_currency = $3;
	`
	var m models.OriginalPrice
	err := r.Pool.QueryRow(ctx, query, itemID, string(kind), source.String()).Scan(
		&m.ItemID, &m.PriceKind, &m.SourceCurrency, &m.Amount, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no original %s price for item %d in %s", kind, itemID, source))
		}
		return nil, apperrors.NewAppError(500, "failed to find original price", err)
	}
	record := mapping.ToDomainOriginalPrice(m)
	return &record, nil
}

// ReplaceOriginal upserts the record and removes the opposite-currency record in one transaction.
// xmax is non-zero on the returned row only when ON CONFLICT took the update path.
func (r *PgxLedgerRepository) ReplaceOriginal(ctx context.Context, record domain.OriginalPriceRecord) (bool, error) {
	m := mapping.ToModelOriginalPrice(record)

	var replaced bool
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO original_prices (item_id, price_kind, source_currency, amount, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (item_id, price_kind, source_currency) DO UPDATE
			SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at
			RETURNING (xmax <> 0);`,
			m.ItemID, m.PriceKind, m.SourceCurrency, m.Amount, m.UpdatedAt,
		).Scan(&replaced)
		if err != nil {
			return apperrors.NewAppError(500, "failed to upsert original price", err)
		}

		_, err = tx.Exec(ctx, `
			DELETE FROM original_prices
			WHERE item_id = $1 AND price_kind = $2 AND source_currency <> $3;`,
			m.ItemID, m.PriceKind, m.SourceCurrency,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to drop stale original price", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return replaced, nil
}

func (r *PgxLedgerRepository) DeleteOriginals(ctx context.Context, itemID int64, kind domain.PriceKind) error {
	_, err := r.Pool.Exec(ctx, `
		DELETE FROM original_prices
		WHERE item_id = $1 AND price_kind = $2;`,
		itemID, string(kind),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete original prices", err)
	}
	return nil
}
