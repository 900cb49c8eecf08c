package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem is a row of catalog_items. Variations point at their variable product through ParentID.
type CatalogItem struct {
	ItemID       int64               `json:"itemID"`
	ParentID     *int64              `json:"parentID"`
	ItemType     string              `json:"itemType"`
	RegularPrice decimal.NullDecimal `json:"regularPrice"`
	SalePrice    decimal.NullDecimal `json:"salePrice"`
	OnSale       bool                `json:"onSale"`
	Published    bool                `json:"published"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
