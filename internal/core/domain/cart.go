package domain

import (
	"fmt"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CartLine is one line of a shopper's cart, as reported by the storefront. UnitPrice is in the active currency,
// before any cart discount.
type CartLine struct {
	ItemID    int64           `json:"itemID"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	OnSale    bool            `json:"onSale"`
}

// Kind is the ledger kind the line's unit price belongs to.
func (l CartLine) Kind() PriceKind {
	if l.OnSale {
		return Sale
	}
	return Regular
}

// Subtotal is UnitPrice times Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the storefront's cart totals, tax excluded from Subtotal. Subtotal is the sum of the line subtotals;
// coupons are reported separately in DiscountTotal and are already deducted from Total.
type Cart struct {
	Lines         []CartLine      `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	SubtotalTax   decimal.Decimal `json:"subtotalTax"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	ShippingTotal decimal.Decimal `json:"shippingTotal"`
	ShippingTax   decimal.Decimal `json:"shippingTax"`
	Total         decimal.Decimal `json:"total"`
}

// Validate checks that every line has a positive quantity and a non-negative unit price,
// and that Subtotal matches the lines to the cent.
func (c Cart) Validate() error {
	sum := decimal.Zero
	for i, line := range c.Lines {
		if line.Quantity < 1 {
			return fmt.Errorf("%w: cart line %d has quantity %d", apperrors.ErrValidation, i, line.Quantity)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: cart line %d has a negative unit price", apperrors.ErrValidation, i)
		}
		sum = sum.Add(line.Subtotal())
	}
	if !sum.Round(2).Equal(c.Subtotal.Round(2)) {
		return fmt.Errorf("%w: cart subtotal %s does not match its lines (%s)",
			apperrors.ErrValidation, c.Subtotal.StringFixed(2), sum.StringFixed(2))
	}
	if c.DiscountTotal.IsNegative() {
		return fmt.Errorf("%w: cart discount cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// OrderLine is one line of a placed order.
type OrderLine struct {
	ItemID   int64           `json:"itemID"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// Order is a placed order. Its Currency is fixed at checkout and may differ from the store's active currency.
type Order struct {
	Currency Currency        `json:"currency"`
	Lines    []OrderLine     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

// Validate checks that every order line has a positive quantity.
func (o Order) Validate() error {
	for i, line := range o.Lines {
		if line.Quantity < 1 {
			return fmt.Errorf("%w: order line %d has quantity %d", apperrors.ErrValidation, i, line.Quantity)
		}
	}
	return nil
}
