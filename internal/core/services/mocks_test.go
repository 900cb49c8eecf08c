package services_test

import (
	"context"
	"io"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CatalogRepository ---

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetItem(ctx context.Context, itemID int64) (*domain.PriceableItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so callers mutating the item do not change the fixture.
	item := *args.Get(0).(*domain.PriceableItem)
	return &item, args.Error(1)
}

func (m *MockCatalogRepository) ListPublishedItemIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogRepository) VariationPrices(ctx context.Context, parentID int64) ([]domain.VariationPrice, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VariationPrice), args.Error(1)
}

func (m *MockCatalogRepository) SaveItem(ctx context.Context, item domain.PriceableItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

var _ portsrepo.CatalogRepositoryFacade = (*MockCatalogRepository)(nil)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindOriginal(ctx context.Context, itemID int64, kind domain.PriceKind, source domain.Currency) (*domain.OriginalPriceRecord, error) {
	args := m.Called(ctx, itemID, kind, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OriginalPriceRecord), args.Error(1)
}

func (m *MockLedgerRepository) ReplaceOriginal(ctx context.Context, record domain.OriginalPriceRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) DeleteOriginals(ctx context.Context, itemID int64, kind domain.PriceKind) error {
	args := m.Called(ctx, itemID, kind)
	return args.Error(0)
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

// --- Mock BackupRepository ---

type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) ListBackupsByCurrency(ctx context.Context, currency domain.Currency) ([]domain.BackupRecord, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BackupRecord), args.Error(1)
}

func (m *MockBackupRepository) ListBackups(ctx context.Context) ([]domain.BackupRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BackupRecord), args.Error(1)
}

func (m *MockBackupRepository) ListBackupCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockBackupRepository) AppendBackups(ctx context.Context, records []domain.BackupRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.BackupRepositoryFacade = (*MockBackupRepository)(nil)

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockSettingsRepository) SaveDualDisplayEnabled(ctx context.Context, enabled bool) error {
	args := m.Called(ctx, enabled)
	return args.Error(0)
}

func (m *MockSettingsRepository) SaveActiveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockSettingsRepository) EnsureDefaults(ctx context.Context, defaults domain.StoreSettings) error {
	args := m.Called(ctx, defaults)
	return args.Error(0)
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

// --- Mock services used by the admin service ---

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreSettings), args.Error(1)
}

func (m *MockSettingsService) DisplayConfig(ctx context.Context) (domain.DisplayConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DisplayConfig), args.Error(1)
}

func (m *MockSettingsService) UpdateExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockSettingsService) SetDualDisplayEnabled(ctx context.Context, enabled bool) error {
	args := m.Called(ctx, enabled)
	return args.Error(0)
}

func (m *MockSettingsService) SetActiveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockSettingsService) EnsureDefaults(ctx context.Context, defaults domain.StoreSettings) error {
	args := m.Called(ctx, defaults)
	return args.Error(0)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

type MockMigrationService struct {
	mock.Mock
}

func (m *MockMigrationService) Migrate(ctx context.Context, direction domain.Direction, rate decimal.Decimal) domain.MigrationResult {
	args := m.Called(ctx, direction, rate)
	return args.Get(0).(domain.MigrationResult)
}

var _ portssvc.MigrationSvc = (*MockMigrationService)(nil)

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) BackupCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockBackupService) ExportBackup(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockBackupService) Backup(ctx context.Context) (*domain.BackupResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackupResult), args.Error(1)
}

func (m *MockBackupService) Restore(ctx context.Context, target domain.Currency, enableDualDisplay bool) (int, error) {
	args := m.Called(ctx, target, enableDualDisplay)
	return args.Int(0), args.Error(1)
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)

// --- Fixtures ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func simpleItem(id int64, regular, sale *decimal.Decimal, onSale bool) *domain.PriceableItem {
	return &domain.PriceableItem{
		ID:           id,
		Type:         domain.SimpleItem,
		RegularPrice: regular,
		SalePrice:    sale,
		OnSale:       onSale,
		Published:    true,
	}
}

// amountEquals matches a *domain.Money by value, since decimal.Decimal has no canonical representation.
func amountEquals(m *domain.Money, amount string, currency domain.Currency) bool {
	return m != nil && m.Currency == currency && m.Amount.Equal(dec(amount))
}
