package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// migrationService rewrites every catalog price from one currency into the other.
type migrationService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
	ledgerRepo  portsrepo.LedgerWriter
	now         func() time.Time
}

// NewMigrationService creates a new migration service.
func NewMigrationService(catalogRepo portsrepo.CatalogRepositoryFacade, ledgerRepo portsrepo.LedgerWriter) portssvc.MigrationSvc {
	return &migrationService{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
		now:         time.Now,
	}
}

var _ portssvc.MigrationSvc = (*migrationService)(nil)

// walkStats accumulates progress across one catalog walk.
type walkStats struct {
	saved       int
	overwritten int
}

func (s *migrationService) Migrate(ctx context.Context, direction domain.Direction, rate decimal.Decimal) domain.MigrationResult {
	logger := s.GetLogger(ctx).With(slog.String("direction", string(direction)), slog.String("rate", rate.String()))

	if _, err := domain.ParseDirection(string(direction)); err != nil {
		return domain.MigrationResult{Error: err.Error()}
	}
	if err := domain.ValidateRate(rate); err != nil {
		return domain.MigrationResult{Error: "Invalid exchange rate"}
	}

	start := s.now()
	logger.Info("Starting catalog migration")

	stats, err := s.walk(ctx, direction, rate)
	if err != nil {
		s.LogError(ctx, err, "Catalog migration aborted",
			slog.String("direction", string(direction)),
			slog.Int("saved_before_failure", stats.saved))
		return domain.MigrationResult{Error: err.Error()}
	}

	if stats.overwritten > 0 {
		logger.Warn("Migration replaced existing original prices; the catalog was already migrated in this direction",
			slog.Int("overwritten", stats.overwritten))
	}

	elapsed := decimal.NewFromFloat(s.now().Sub(start).Seconds()).Round(2).InexactFloat64()
	logger.Info("Catalog migration finished", slog.Int("count", stats.saved), slog.Float64("elapsed_seconds", elapsed))
	return domain.MigrationResult{
		Count:                stats.saved,
		ElapsedSeconds:       elapsed,
		OverwrittenOriginals: stats.overwritten,
	}
}

func (s *migrationService) walk(ctx context.Context, direction domain.Direction, rate decimal.Decimal) (walkStats, error) {
	var stats walkStats

	// The ID list is taken once; products published during the walk are not visited.
	ids, err := s.catalogRepo.ListPublishedItemIDs(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list catalog items: %w", err)
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		item, found, err := s.loadItem(ctx, id)
		if err != nil {
			return stats, err
		}
		if !found {
			continue
		}

		if err := s.migrateItem(ctx, item, direction, rate, &stats); err != nil {
			return stats, err
		}

		if !item.IsVariable() {
			continue
		}
		for _, variationID := range item.VariationIDs {
			variation, found, err := s.loadItem(ctx, variationID)
			if err != nil {
				return stats, err
			}
			if !found {
				continue
			}
			if err := s.migrateItem(ctx, variation, direction, rate, &stats); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

// loadItem treats a missing item as a skip, not a failure.
func (s *migrationService) loadItem(ctx context.Context, id int64) (*domain.PriceableItem, bool, error) {
	item, err := s.catalogRepo.GetItem(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Skipping missing catalog item", slog.Int64("item_id", id))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load item %d: %w", id, err)
	}
	return item, true, nil
}

// migrateItem converts the non-empty prices of one row, saves it, then records the amounts it replaced.
func (s *migrationService) migrateItem(ctx context.Context, item *domain.PriceableItem, direction domain.Direction, rate decimal.Decimal, stats *walkStats) error {
	if !item.HasAnyPrice() {
		return nil
	}

	source := direction.Source()
	originals := make([]domain.OriginalPriceRecord, 0, len(domain.PriceKinds))
	for _, kind := range domain.PriceKinds {
		price := item.Price(kind)
		if price == nil {
			continue
		}
		original := *price
		if err := item.SetPrice(kind, domain.Convert(original, source, rate)); err != nil {
			return err
		}
		originals = append(originals, domain.OriginalPriceRecord{
			ItemID:         item.ID,
			Kind:           kind,
			SourceCurrency: source,
			Amount:         original,
			UpdatedAt:      s.now().UTC(),
		})
	}

	if err := s.catalogRepo.SaveItem(ctx, *item); err != nil {
		return fmt.Errorf("failed to save item %d: %w", item.ID, err)
	}
	stats.saved++

	for _, record := range originals {
		replaced, err := s.ledgerRepo.ReplaceOriginal(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to record original %s price of item %d: %w", record.Kind, item.ID, err)
		}
		if replaced {
			stats.overwritten++
		}
	}
	return nil
}
