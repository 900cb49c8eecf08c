package repositories

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
)

// CatalogReader defines read operations against the e-commerce catalog
type CatalogReader interface {
	// GetItem retrieves a product or variation by ID. Returns apperrors.ErrNotFound when it does not exist.
	GetItem(ctx context.Context, itemID int64) (*domain.PriceableItem, error)

	// ListPublishedItemIDs returns the IDs of every published top-level product.
	ListPublishedItemIDs(ctx context.Context) ([]int64, error)

	// VariationPrices returns the display price of each variation of a variable product.
	VariationPrices(ctx context.Context, parentID int64) ([]domain.VariationPrice, error)
}

// CatalogWriter defines write operations against the e-commerce catalog
type CatalogWriter interface {
	// SaveItem persists the regular and sale price of an item.
	SaveItem(ctx context.Context, item domain.PriceableItem) error
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
