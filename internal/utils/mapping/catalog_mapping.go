package mapping

import (
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/SscSPs/dual_currency_display/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCatalogItem converts a domain PriceableItem to a model CatalogItem
func ToModelCatalogItem(d domain.PriceableItem) models.CatalogItem {
	return models.CatalogItem{
		ItemID:       d.ID,
		ParentID:     d.ParentID,
		ItemType:     string(d.Type),
		RegularPrice: toNullDecimal(d.RegularPrice),
		SalePrice:    toNullDecimal(d.SalePrice),
		OnSale:       d.OnSale,
		Published:    d.Published,
	}
}

// ToDomainPriceableItem converts a model CatalogItem to a domain PriceableItem. Variation IDs are loaded separately.
func ToDomainPriceableItem(m models.CatalogItem) domain.PriceableItem {
	return domain.PriceableItem{
		ID:           m.ItemID,
		ParentID:     m.ParentID,
		Type:         domain.ItemType(m.ItemType),
		RegularPrice: fromNullDecimal(m.RegularPrice),
		SalePrice:    fromNullDecimal(m.SalePrice),
		OnSale:       m.OnSale,
		Published:    m.Published,
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
