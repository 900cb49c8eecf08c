package dto

import "github.com/SscSPs/dual_currency_display/internal/core/domain"

// PriceDisplayResponse returns both the structured display value and its rendered markup.
type PriceDisplayResponse struct {
	Display domain.PriceDisplay `json:"display"`
	HTML    string              `json:"html"`
}

// LineDisplayResponse is the display of one cart or order line.
type LineDisplayResponse struct {
	ItemID       int64  `json:"itemID"`
	Quantity     int    `json:"quantity"`
	PriceHTML    string `json:"priceHTML,omitempty"`
	SubtotalHTML string `json:"subtotalHTML"`
}

// CartDisplayResponse defines the structure for the cart display endpoint.
type CartDisplayResponse struct {
	Display      domain.CartDisplay    `json:"display"`
	Lines        []LineDisplayResponse `json:"lines"`
	SubtotalHTML string                `json:"subtotalHTML"`
	TotalHTML    string                `json:"totalHTML"`
	HideSubtotal bool                  `json:"hideSubtotal"`
}

// OrderDisplayResponse defines the structure for the order display endpoint.
type OrderDisplayResponse struct {
	Display      domain.OrderDisplay   `json:"display"`
	Lines        []LineDisplayResponse `json:"lines"`
	TotalHTML    string                `json:"totalHTML"`
	HideSubtotal bool                  `json:"hideSubtotal"`
}

// CartRequest is posted by the storefront host. Amounts are in the store's active currency.
type CartRequest struct {
	Cart domain.Cart `json:"cart" binding:"required"`
}

// OrderRequest is posted by the storefront host for a placed order.
type OrderRequest struct {
	Order domain.Order `json:"order" binding:"required"`
}
