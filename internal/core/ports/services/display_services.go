package services

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
)

// DisplaySvc builds dual-currency display values for catalog items
type DisplaySvc interface {
	// ProductDisplay builds the display for an already loaded item.
	ProductDisplay(ctx context.Context, cfg domain.DisplayConfig, item domain.PriceableItem) (domain.PriceDisplay, error)

	// ProductDisplayByID loads the item from the catalog first.
	ProductDisplayByID(ctx context.Context, cfg domain.DisplayConfig, itemID int64) (domain.PriceDisplay, error)

	// Secondary resolves the secondary amount for one price of one item, preferring the ledger where applicable.
	Secondary(ctx context.Context, cfg domain.DisplayConfig, itemID int64, kind domain.PriceKind, amount domain.Money) (*domain.Money, error)
}

// CartSvc aggregates secondary-currency totals for carts and orders
type CartSvc interface {
	CartDisplay(ctx context.Context, cfg domain.DisplayConfig, cart domain.Cart) (*domain.CartDisplay, error)
	OrderDisplay(ctx context.Context, cfg domain.DisplayConfig, order domain.Order) (*domain.OrderDisplay, error)
}
