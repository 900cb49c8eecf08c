package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const backupSheet = "Backups"

var backupSheetHeader = []any{"Backup ID", "Batch ID", "Item ID", "Price Kind", "Amount", "Currency", "Created At"}

// backupService snapshots catalog prices into the backup log and restores them from it.
type backupService struct {
	BaseService
	catalogRepo  portsrepo.CatalogRepositoryFacade
	ledgerRepo   portsrepo.LedgerWriter
	backupRepo   portsrepo.BackupRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	now          func() time.Time
}

// NewBackupService creates a new backup service.
func NewBackupService(
	catalogRepo portsrepo.CatalogRepositoryFacade,
	ledgerRepo portsrepo.LedgerWriter,
	backupRepo portsrepo.BackupRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
) portssvc.BackupSvcFacade {
	return &backupService{
		catalogRepo:  catalogRepo,
		ledgerRepo:   ledgerRepo,
		backupRepo:   backupRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

func (s *backupService) Backup(ctx context.Context) (*domain.BackupResult, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active currency: %w", err)
	}
	currency := settings.ActiveCurrency
	batchID := uuid.NewString()
	createdAt := s.now().UTC()

	ids, err := s.catalogRepo.ListPublishedItemIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}

	var records []domain.BackupRecord
	collect := func(item *domain.PriceableItem) {
		for _, kind := range domain.PriceKinds {
			price := item.Price(kind)
			if price == nil {
				continue
			}
			records = append(records, domain.BackupRecord{
				BatchID:   batchID,
				ItemID:    item.ID,
				Kind:      kind,
				Amount:    *price,
				Currency:  currency,
				CreatedAt: createdAt,
			})
		}
	}

	for _, id := range ids {
		item, found, err := s.findItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		collect(item)
		if !item.IsVariable() {
			continue
		}
		for _, variationID := range item.VariationIDs {
			variation, found, err := s.findItem(ctx, variationID)
			if err != nil {
				return nil, err
			}
			if found {
				collect(variation)
			}
		}
	}

	result := &domain.BackupResult{BatchID: batchID, Currency: currency}
	if len(records) == 0 {
		s.LogInfo(ctx, "Nothing to back up", slog.String("currency", currency.String()))
		return result, nil
	}

	inserted, err := s.backupRepo.AppendBackups(ctx, records)
	if err != nil {
		s.LogError(ctx, err, "Failed to write price backup", slog.String("batch_id", batchID))
		return nil, fmt.Errorf("failed to write price backup: %w", err)
	}
	result.Rows = inserted
	s.LogInfo(ctx, "Prices backed up",
		slog.String("batch_id", batchID),
		slog.String("currency", currency.String()),
		slog.Int("rows", inserted))
	return result, nil
}

func (s *backupService) Restore(ctx context.Context, target domain.Currency, enableDualDisplay bool) (int, error) {
	if !target.IsValid() {
		return 0, apperrors.NewValidationError(fmt.Sprintf("unsupported currency '%s'", target))
	}

	records, err := s.backupRepo.ListBackupsByCurrency(ctx, target)
	if err != nil {
		return 0, fmt.Errorf("failed to read price backups: %w", err)
	}

	// Every row of the currency is applied in log order, so the newest row per item and kind wins.
	restored := 0
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return restored, err
		}
		item, found, err := s.findItem(ctx, record.ItemID)
		if err != nil {
			return restored, err
		}
		if !found {
			continue
		}
		if err := item.SetPrice(record.Kind, record.Amount); err != nil {
			return restored, fmt.Errorf("backup row %d: %w", record.BackupID, err)
		}
		if err := s.catalogRepo.SaveItem(ctx, *item); err != nil {
			return restored, fmt.Errorf("failed to save item %d: %w", item.ID, err)
		}
		if err := s.ledgerRepo.DeleteOriginals(ctx, item.ID, record.Kind); err != nil {
			return restored, fmt.Errorf("failed to clear original prices of item %d: %w", item.ID, err)
		}
		restored++
	}

	if err := s.settingsRepo.SaveActiveCurrency(ctx, target); err != nil {
		return restored, fmt.Errorf("failed to switch active currency: %w", err)
	}
	if err := s.settingsRepo.SaveDualDisplayEnabled(ctx, enableDualDisplay); err != nil {
		return restored, fmt.Errorf("failed to save dual display flag: %w", err)
	}

	s.LogInfo(ctx, "Prices restored from backup",
		slog.String("currency", target.String()),
		slog.Int("count", restored),
		slog.Bool("dual_display", enableDualDisplay))
	return restored, nil
}

func (s *backupService) BackupCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.backupRepo.ListBackupCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list backup currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ExportBackup writes the whole backup log to w as an XLSX workbook with a single sheet.
func (s *backupService) ExportBackup(ctx context.Context, w io.Writer) error {
	records, err := s.backupRepo.ListBackups(ctx)
	if err != nil {
		return fmt.Errorf("failed to read price backups: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.LogError(ctx, cerr, "Failed to close backup workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", backupSheet); err != nil {
		return fmt.Errorf("failed to prepare backup sheet: %w", err)
	}
	if err := f.SetSheetRow(backupSheet, "A1", &backupSheetHeader); err != nil {
		return fmt.Errorf("failed to write backup header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.BackupID,
			r.BatchID,
			r.ItemID,
			string(r.Kind),
			r.Amount.InexactFloat64(),
			r.Currency.String(),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(backupSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write backup row %d: %w", r.BackupID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write backup workbook: %w", err)
	}
	s.LogInfo(ctx, "Backup log exported", slog.Int("rows", len(records)))
	return nil
}

func (s *backupService) findItem(ctx context.Context, id int64) (*domain.PriceableItem, bool, error) {
	item, err := s.catalogRepo.GetItem(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load item %d: %w", id, err)
	}
	return item, true, nil
}
