package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceKind distinguishes the two price fields a catalog item carries.
type PriceKind string

const (
	Regular PriceKind = "regular"
	Sale    PriceKind = "sale"
)

// PriceKinds lists the kinds in the order they are processed.
var PriceKinds = []PriceKind{Regular, Sale}

// ItemType mirrors the catalog's product types that matter for pricing.
type ItemType string

const (
	SimpleItem    ItemType = "simple"
	VariableItem  ItemType = "variable"
	VariationItem ItemType = "variation"
)

// PriceableItem is a catalog product or variation. Only the two price fields are owned by this service;
// everything else belongs to the catalog.
type PriceableItem struct {
	ID           int64            `json:"id"`
	ParentID     *int64           `json:"parentID,omitempty"`
	Type         ItemType         `json:"type"`
	RegularPrice *decimal.Decimal `json:"regularPrice,omitempty"` // nil when the catalog has no value
	SalePrice    *decimal.Decimal `json:"salePrice,omitempty"`
	OnSale       bool             `json:"onSale"`
	VariationIDs []int64          `json:"variationIDs,omitempty"`
	Published    bool             `json:"published"`
}

// IsVariable reports whether the item's display price comes from its variations.
func (i *PriceableItem) IsVariable() bool {
	return i.Type == VariableItem
}

// Price returns the stored price of the given kind, or nil when it is empty.
func (i *PriceableItem) Price(kind PriceKind) *decimal.Decimal {
	switch kind {
	case Regular:
		return i.RegularPrice
	case Sale:
		return i.SalePrice
	default:
		return nil
	}
}

// SetPrice overwrites the price of the given kind.
func (i *PriceableItem) SetPrice(kind PriceKind, amount decimal.Decimal) error {
	switch kind {
	case Regular:
		i.RegularPrice = &amount
	case Sale:
		i.SalePrice = &amount
	default:
		return fmt.Errorf("unknown price kind '%s'", kind)
	}
	return nil
}

// HasAnyPrice reports whether at least one of the price fields is set.
func (i *PriceableItem) HasAnyPrice() bool {
	return i.RegularPrice != nil || i.SalePrice != nil
}

// ActiveKind is the kind of price a shopper pays: the sale price while the item is on sale, otherwise the regular one.
func (i *PriceableItem) ActiveKind() PriceKind {
	if i.OnSale && i.SalePrice != nil {
		return Sale
	}
	return Regular
}

// ActivePrice returns the price a shopper pays together with its kind. ok is false when the item has no price.
func (i *PriceableItem) ActivePrice() (decimal.Decimal, PriceKind, bool) {
	kind := i.ActiveKind()
	p := i.Price(kind)
	if p == nil {
		return decimal.Zero, kind, false
	}
	return *p, kind, true
}

// VariationPrice is the display price of one variation of a variable item, as reported by the catalog.
type VariationPrice struct {
	VariationID int64           `json:"variationID"`
	Price       decimal.Decimal `json:"price"`
	Kind        PriceKind       `json:"kind"`
}
