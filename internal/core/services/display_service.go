package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// displayService builds dual-currency display values. It only reads; nothing it does touches stored prices.
type displayService struct {
	BaseService
	catalogRepo portsrepo.CatalogReader
	ledgerRepo  portsrepo.LedgerReader
}

// NewDisplayService creates a new display service.
func NewDisplayService(catalogRepo portsrepo.CatalogReader, ledgerRepo portsrepo.LedgerReader) portssvc.DisplaySvc {
	return &displayService{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.DisplaySvc = (*displayService)(nil)

func (s *displayService) ProductDisplayByID(ctx context.Context, cfg domain.DisplayConfig, itemID int64) (domain.PriceDisplay, error) {
	item, err := s.catalogRepo.GetItem(ctx, itemID)
	if err != nil {
		return domain.PriceDisplay{}, fmt.Errorf("failed to load item %d: %w", itemID, err)
	}
	return s.ProductDisplay(ctx, cfg, *item)
}

func (s *displayService) ProductDisplay(ctx context.Context, cfg domain.DisplayConfig, item domain.PriceableItem) (domain.PriceDisplay, error) {
	if item.IsVariable() {
		return s.variableDisplay(ctx, cfg, item)
	}

	price, kind, ok := item.ActivePrice()
	display := domain.PriceDisplay{Primary: domain.NewMoney(price, cfg.ActiveCurrency)}
	if !ok {
		return display, nil
	}
	onSalePair := kind == domain.Sale && item.RegularPrice != nil
	if onSalePair {
		was := domain.NewMoney(*item.RegularPrice, cfg.ActiveCurrency)
		display.Was = &was
	}
	if !cfg.DualDisplayEnabled {
		return display, nil
	}

	secondary, err := s.Secondary(ctx, cfg, item.ID, kind, display.Primary)
	if err != nil {
		return domain.PriceDisplay{}, err
	}
	display.Secondary = secondary

	// The struck-through regular price gets its own secondary, never derived from the sale one.
	if onSalePair && secondary != nil {
		wasSecondary, err := s.Secondary(ctx, cfg, item.ID, domain.Regular, *display.Was)
		if err != nil {
			return domain.PriceDisplay{}, err
		}
		display.WasSecondary = wasSecondary
	}
	return display, nil
}

func (s *displayService) variableDisplay(ctx context.Context, cfg domain.DisplayConfig, item domain.PriceableItem) (domain.PriceDisplay, error) {
	prices, err := s.catalogRepo.VariationPrices(ctx, item.ID)
	if err != nil {
		return domain.PriceDisplay{}, fmt.Errorf("failed to load variation prices for item %d: %w", item.ID, err)
	}
	if len(prices) == 0 {
		return domain.PriceDisplay{Primary: domain.NewMoney(decimal.Zero, cfg.ActiveCurrency)}, nil
	}

	minIdx, maxIdx := 0, 0
	for i, p := range prices {
		if p.Price.LessThan(prices[minIdx].Price) {
			minIdx = i
		}
		if p.Price.GreaterThan(prices[maxIdx].Price) {
			maxIdx = i
		}
	}
	minPrice, maxPrice := prices[minIdx], prices[maxIdx]
	collapsed := minPrice.Price.Equal(maxPrice.Price)

	display := domain.PriceDisplay{Primary: domain.NewMoney(minPrice.Price, cfg.ActiveCurrency)}
	if !collapsed {
		primaryMax := domain.NewMoney(maxPrice.Price, cfg.ActiveCurrency)
		display.PrimaryMax = &primaryMax
	}
	if !cfg.DualDisplayEnabled {
		return display, nil
	}

	// Each bound is resolved through the first variation that reaches it.
	secondaryMin, err := s.Secondary(ctx, cfg, minPrice.VariationID, minPrice.Kind, display.Primary)
	if err != nil {
		return domain.PriceDisplay{}, err
	}
	display.Secondary = secondaryMin
	if collapsed || secondaryMin == nil {
		return display, nil
	}

	secondaryMax, err := s.Secondary(ctx, cfg, maxPrice.VariationID, maxPrice.Kind, *display.PrimaryMax)
	if err != nil {
		return domain.PriceDisplay{}, err
	}
	display.SecondaryMax = secondaryMax
	return display, nil
}

// Secondary returns nil when amount is in neither BGN nor EUR.
func (s *displayService) Secondary(ctx context.Context, cfg domain.DisplayConfig, itemID int64, kind domain.PriceKind, amount domain.Money) (*domain.Money, error) {
	other, ok := amount.Currency.Counterpart()
	if !ok {
		return nil, nil
	}

	switch amount.Currency {
	case domain.BGN:
		live := domain.NewMoney(domain.Convert(amount.Amount, domain.BGN, cfg.Rate), other)
		return &live, nil
	case domain.EUR:
		// A EUR price was usually migrated from BGN; the ledger holds the BGN amount it came from.
		record, err := s.ledgerRepo.FindOriginal(ctx, itemID, kind, domain.BGN)
		if err == nil {
			original := domain.NewMoney(record.Amount, other)
			return &original, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read original price", slog.Int64("item_id", itemID), slog.String("kind", string(kind)))
			return nil, fmt.Errorf("failed to read original price for item %d: %w", itemID, err)
		}
		live := domain.NewMoney(domain.Convert(amount.Amount, domain.EUR, cfg.Rate), other)
		return &live, nil
	default:
		return nil, nil
	}
}
