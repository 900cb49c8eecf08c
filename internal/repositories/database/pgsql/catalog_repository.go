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
	"github.com/shopspring/decimal"
)

// PgxCatalogRepository implements the catalog port on the catalog_items table.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func (r *PgxCatalogRepository) GetItem(ctx context.Context, itemID int64) (*domain.PriceableItem, error) {
	query := `
		SELECT item_id, parent_id, item_type, regular_price, sale_price, on_sale, published, updated_at
		FROM catalog_items
		WHERE item_id = $1;
	`
	var m models.CatalogItem
	err := r.Pool.QueryRow(ctx, query, itemID).Scan(
		&m.ItemID, &m.ParentID, &m.ItemType, &m.RegularPrice, &m.SalePrice,
		&m.OnSale, &m.Published, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("catalog item %d not found", itemID))
		}
		return nil, apperrors.NewAppError(500, "failed to get catalog item", err)
	}

	item := mapping.ToDomainPriceableItem(m)
	if item.IsVariable() {
		ids, err := r.variationIDs(ctx, itemID)
		if err != nil {
			return nil, err
		}
		item.VariationIDs = ids
	}
	return &item, nil
}

func (r *PgxCatalogRepository) variationIDs(ctx context.Context, parentID int64) ([]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id FROM catalog_items
		WHERE parent_id = $1
		ORDER BY menu_order, item_id;`, parentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list variations", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan variation ids", err)
	}
	return ids, nil
}

func (r *PgxCatalogRepository) ListPublishedItemIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id FROM catalog_items
		WHERE parent_id IS NULL AND published
		ORDER BY item_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list published items", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan published item ids", err)
	}
	return ids, nil
}

// VariationPrices reports the price a shopper pays for each published variation; variations without one are left out.
func (r *PgxCatalogRepository) VariationPrices(ctx context.Context, parentID int64) ([]domain.VariationPrice, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, regular_price, sale_price, on_sale
		FROM catalog_items
		WHERE parent_id = $1 AND published
		ORDER BY menu_order, item_id;`, parentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load variation prices", err)
	}
	defer rows.Close()

	var prices []domain.VariationPrice
	for rows.Next() {
		var (
			id            int64
			regular, sale decimal.NullDecimal
			onSale        bool
		)
		if err := rows.Scan(&id, &regular, &sale, &onSale); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan variation price", err)
		}
		switch {
		case onSale && sale.Valid:
			prices = append(prices, domain.VariationPrice{VariationID: id, Price: sale.Decimal, Kind: domain.Sale})
		case regular.Valid:
			prices = append(prices, domain.VariationPrice{VariationID: id, Price: regular.Decimal, Kind: domain.Regular})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate variation prices", err)
	}
	return prices, nil
}

// SaveItem writes only the two price columns; the rest of the row belongs to the catalog.
func (r *PgxCatalogRepository) SaveItem(ctx context.Context, item domain.PriceableItem) error {
	m := mapping.ToModelCatalogItem(item)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE catalog_items
		SET regular_price = $2, sale_price = $3, updated_at = NOW()
		WHERE item_id = $1;`,
		m.ItemID, m.RegularPrice, m.SalePrice,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save catalog item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("catalog item %d not found", item.ID))
	}
	return nil
}
