package services

import (
	"context"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// cartService aggregates per-line secondary amounts into cart and order totals.
type cartService struct {
	BaseService
	display portssvc.DisplaySvc
}

// NewCartService creates a new cart service on top of the display service's per-item rules.
func NewCartService(display portssvc.DisplaySvc) portssvc.CartSvc {
	return &cartService{display: display}
}

var _ portssvc.CartSvc = (*cartService)(nil)

func (s *cartService) CartDisplay(ctx context.Context, cfg domain.DisplayConfig, cart domain.Cart) (*domain.CartDisplay, error) {
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	c := cfg.ActiveCurrency
	subtotal := cart.Subtotal.Add(cart.SubtotalTax)

	out := &domain.CartDisplay{
		Lines:        make([]domain.LineDisplay, 0, len(cart.Lines)),
		Subtotal:     domain.PriceDisplay{Primary: domain.NewMoney(subtotal, c)},
		Total:        domain.PriceDisplay{Primary: domain.NewMoney(cart.Total, c)},
		HideSubtotal: sameCents(cart.Subtotal, cart.Total),
	}
	for _, line := range cart.Lines {
		unit := domain.PriceDisplay{Primary: domain.NewMoney(line.UnitPrice, c)}
		out.Lines = append(out.Lines, domain.LineDisplay{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    &unit,
			Subtotal: domain.PriceDisplay{Primary: domain.NewMoney(line.Subtotal(), c)},
		})
	}

	other, ok := c.Counterpart()
	if !cfg.DualDisplayEnabled || !ok {
		return out, nil
	}

	linesSum := decimal.Zero
	for i, line := range cart.Lines {
		unitSecondary, err := s.display.Secondary(ctx, cfg, line.ItemID, line.Kind(), out.Lines[i].Price.Primary)
		if err != nil {
			return nil, err
		}
		if unitSecondary == nil {
			return out, nil
		}
		lineSecondary := domain.NewMoney(unitSecondary.Amount.Mul(decimal.NewFromInt(int64(line.Quantity))), other)
		out.Lines[i].Price.Secondary = unitSecondary
		out.Lines[i].Subtotal.Secondary = &lineSecondary
		linesSum = linesSum.Add(lineSecondary.Amount)
	}

	// Tax, discount and shipping have no stored originals and are always converted live.
	subtotalSecondary := linesSum.Add(domain.Convert(cart.SubtotalTax, c, cfg.Rate))
	totalSecondary := subtotalSecondary.
		Sub(domain.Convert(cart.DiscountTotal, c, cfg.Rate)).
		Add(domain.Convert(cart.ShippingTotal, c, cfg.Rate)).
		Add(domain.Convert(cart.ShippingTax, c, cfg.Rate))

	subMoney := domain.NewMoney(subtotalSecondary, other)
	totalMoney := domain.NewMoney(totalSecondary, other)
	out.Subtotal.Secondary = &subMoney
	out.Total.Secondary = &totalMoney
	return out, nil
}

func (s *cartService) OrderDisplay(ctx context.Context, cfg domain.DisplayConfig, order domain.Order) (*domain.OrderDisplay, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	c := order.Currency
	out := &domain.OrderDisplay{
		Lines:        make([]domain.LineDisplay, 0, len(order.Lines)),
		Total:        domain.PriceDisplay{Primary: domain.NewMoney(order.Total, c)},
		HideSubtotal: sameCents(order.Subtotal, order.Total),
	}
	for _, line := range order.Lines {
		out.Lines = append(out.Lines, domain.LineDisplay{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Subtotal: domain.PriceDisplay{Primary: domain.NewMoney(line.Total, c)},
		})
	}

	other, ok := c.Counterpart()
	if !cfg.DualDisplayEnabled || !ok {
		return out, nil
	}

	// Orders are historical records: always live, in the order's own currency.
	for i, line := range order.Lines {
		sec := domain.NewMoney(domain.Convert(line.Total, c, cfg.Rate), other)
		out.Lines[i].Subtotal.Secondary = &sec
	}
	total := domain.NewMoney(domain.Convert(order.Total, c, cfg.Rate), other)
	out.Total.Secondary = &total
	return out, nil
}

func sameCents(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}
