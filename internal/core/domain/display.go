package domain

import "github.com/shopspring/decimal"

// Money is an amount tagged with its currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney is a small convenience constructor.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// PriceDisplay describes what to show for one price slot. It carries no markup; rendering happens separately.
//
// A plain price has only Primary. With dual display on, Secondary holds the other currency.
// Ranges (variable items) set PrimaryMax and SecondaryMax. Items on sale set Was/WasSecondary
// to the struck-through regular price.
type PriceDisplay struct {
	Primary      Money  `json:"primary"`
	PrimaryMax   *Money `json:"primaryMax,omitempty"`
	Secondary    *Money `json:"secondary,omitempty"`
	SecondaryMax *Money `json:"secondaryMax,omitempty"`
	Was          *Money `json:"was,omitempty"`
	WasSecondary *Money `json:"wasSecondary,omitempty"`
}

// HasSecondary reports whether a secondary-currency amount is shown.
func (d PriceDisplay) HasSecondary() bool {
	return d.Secondary != nil
}

// IsRange reports whether the primary price is a min-max range.
func (d PriceDisplay) IsRange() bool {
	return d.PrimaryMax != nil
}

// IsSalePair reports whether a struck-through regular price accompanies the primary one.
func (d PriceDisplay) IsSalePair() bool {
	return d.Was != nil
}

// LineDisplay is the display of one cart or order line.
type LineDisplay struct {
	ItemID   int64         `json:"itemID"`
	Quantity int           `json:"quantity"`
	Price    *PriceDisplay `json:"price,omitempty"` // unit price; orders only show the line subtotal
	Subtotal PriceDisplay  `json:"subtotal"`
}

// CartDisplay holds the display values for a whole cart.
type CartDisplay struct {
	Lines        []LineDisplay `json:"lines"`
	Subtotal     PriceDisplay  `json:"subtotal"`
	Total        PriceDisplay  `json:"total"`
	HideSubtotal bool          `json:"hideSubtotal"`
}

// OrderDisplay holds the display values for a placed order.
type OrderDisplay struct {
	Lines        []LineDisplay `json:"lines"`
	Total        PriceDisplay  `json:"total"`
	HideSubtotal bool          `json:"hideSubtotal"`
}
