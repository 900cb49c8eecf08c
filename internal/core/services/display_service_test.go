package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DisplayServiceTestSuite struct {
	suite.Suite
	mockCatalog *MockCatalogRepository
	mockLedger  *MockLedgerRepository
	service     portssvc.DisplaySvc
	ctx         context.Context
}

func (suite *DisplayServiceTestSuite) SetupTest() {
	suite.mockCatalog = new(MockCatalogRepository)
	suite.mockLedger = new(MockLedgerRepository)
	suite.service = services.NewDisplayService(suite.mockCatalog, suite.mockLedger)
	suite.ctx = context.Background()
}

func displayConfig(active domain.Currency, enabled bool) domain.DisplayConfig {
	return domain.DisplayConfig{
		Rate:               domain.DefaultExchangeRate,
		DualDisplayEnabled: enabled,
		ActiveCurrency:     active,
	}
}

// --- Simple items ---

func (suite *DisplayServiceTestSuite) TestSimpleItem_BGNActive_LiveConversion() {
	item := simpleItem(1, decPtr("19.56"), nil, false)

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.BGN, true), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(&display.Primary, "19.56", domain.BGN))
	suite.True(amountEquals(display.Secondary, "10.00", domain.EUR))
	suite.Nil(display.Was)
	suite.Nil(display.PrimaryMax)
	suite.mockLedger.AssertNotCalled(suite.T(), "FindOriginal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DisplayServiceTestSuite) TestSimpleItem_EURActive_LedgerTakesPrecedence() {
	item := simpleItem(7, decPtr("10.00"), nil, false)
	// Live conversion would give 19.56; the stored original must win.
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(7), domain.Regular, domain.BGN).
		Return(&domain.OriginalPriceRecord{ItemID: 7, Kind: domain.Regular, SourceCurrency: domain.BGN, Amount: dec("19.55")}, nil).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, true), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(&display.Primary, "10.00", domain.EUR))
	suite.True(amountEquals(display.Secondary, "19.55", domain.BGN))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DisplayServiceTestSuite) TestSimpleItem_EURActive_NoLedgerEntryFallsBackToLive() {
	item := simpleItem(7, decPtr("10.00"), nil, false)
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(7), domain.Regular, domain.BGN).
		Return(nil, apperrors.ErrNotFound).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, true), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(display.Secondary, "19.56", domain.BGN))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DisplayServiceTestSuite) TestSimpleItem_EURActive_LedgerErrorPropagates() {
	item := simpleItem(7, decPtr("10.00"), nil, false)
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(7), domain.Regular, domain.BGN).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, true), *item)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *DisplayServiceTestSuite) TestSalePair_EachPriceGetsItsOwnSecondary() {
	item := simpleItem(3, decPtr("20.00"), decPtr("15.00"), true)

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.BGN, true), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(&display.Primary, "15.00", domain.BGN))
	suite.True(amountEquals(display.Secondary, "7.67", domain.EUR))
	suite.True(amountEquals(display.Was, "20.00", domain.BGN))
	suite.True(amountEquals(display.WasSecondary, "10.23", domain.EUR))
}

func (suite *DisplayServiceTestSuite) TestSalePair_EURActive_UsesLedgerPerKind() {
	item := simpleItem(3, decPtr("10.23"), decPtr("7.67"), true)
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(3), domain.Sale, domain.BGN).
		Return(&domain.OriginalPriceRecord{Amount: dec("15.00")}, nil).Once()
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(3), domain.Regular, domain.BGN).
		Return(&domain.OriginalPriceRecord{Amount: dec("20.00")}, nil).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, true), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(display.Secondary, "15.00", domain.BGN))
	suite.True(amountEquals(display.WasSecondary, "20.00", domain.BGN))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DisplayServiceTestSuite) TestDisabled_ShowsPrimaryOnlyWithoutLedgerReads() {
	item := simpleItem(3, decPtr("20.00"), decPtr("15.00"), true)

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, false), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(&display.Primary, "15.00", domain.EUR))
	suite.True(amountEquals(display.Was, "20.00", domain.EUR))
	suite.Nil(display.Secondary)
	suite.Nil(display.WasSecondary)
	suite.mockLedger.AssertNotCalled(suite.T(), "FindOriginal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DisplayServiceTestSuite) TestItemWithoutPrice_ShowsZeroPrimaryOnly() {
	item := simpleItem(4, nil, nil, false)

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, true), *item)

	suite.Require().NoError(err)
	suite.True(display.Primary.Amount.IsZero())
	suite.Nil(display.Secondary)
	suite.mockLedger.AssertNotCalled(suite.T(), "FindOriginal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DisplayServiceTestSuite) TestZeroPriceIsStillAPrice() {
	item := simpleItem(5, decPtr("0"), nil, false)

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.BGN, true), *item)

	suite.Require().NoError(err)
	suite.True(amountEquals(display.Secondary, "0", domain.EUR))
}

func (suite *DisplayServiceTestSuite) TestUnknownActiveCurrency_NoSecondary() {
	item := simpleItem(1, decPtr("19.56"), nil, false)

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.Currency("USD"), true), *item)

	suite.Require().NoError(err)
	suite.Nil(display.Secondary)
}

// --- Variable items ---

func (suite *DisplayServiceTestSuite) TestVariableItem_RangeWithSecondaryPerBound() {
	parent := domain.PriceableItem{ID: 10, Type: domain.VariableItem, VariationIDs: []int64{11, 12, 13}}
	suite.mockCatalog.On("VariationPrices", mock.Anything, int64(10)).Return([]domain.VariationPrice{
		{VariationID: 11, Price: dec("20.00"), Kind: domain.Regular},
		{VariationID: 12, Price: dec("10.00"), Kind: domain.Sale},
		{VariationID: 13, Price: dec("30.00"), Kind: domain.Regular},
	}, nil).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.BGN, true), parent)

	suite.Require().NoError(err)
	suite.True(amountEquals(&display.Primary, "10.00", domain.BGN))
	suite.True(amountEquals(display.PrimaryMax, "30.00", domain.BGN))
	suite.True(amountEquals(display.Secondary, "5.11", domain.EUR))
	suite.True(amountEquals(display.SecondaryMax, "15.34", domain.EUR))
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *DisplayServiceTestSuite) TestVariableItem_EURActive_BoundsUseTheirVariationsLedger() {
	parent := domain.PriceableItem{ID: 10, Type: domain.VariableItem}
	suite.mockCatalog.On("VariationPrices", mock.Anything, int64(10)).Return([]domain.VariationPrice{
		{VariationID: 11, Price: dec("5.11"), Kind: domain.Regular},
		{VariationID: 12, Price: dec("15.34"), Kind: domain.Sale},
	}, nil).Once()
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(11), domain.Regular, domain.BGN).
		Return(&domain.OriginalPriceRecord{Amount: dec("10.00")}, nil).Once()
	suite.mockLedger.On("FindOriginal", mock.Anything, int64(12), domain.Sale, domain.BGN).
		Return(nil, apperrors.ErrNotFound).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, true), parent)

	suite.Require().NoError(err)
	suite.True(amountEquals(display.Secondary, "10.00", domain.BGN))
	// 15.34 * 1.95583 = 30.0024...
	suite.True(amountEquals(display.SecondaryMax, "30.00", domain.BGN))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DisplayServiceTestSuite) TestVariableItem_EqualBoundsCollapse() {
	parent := domain.PriceableItem{ID: 10, Type: domain.VariableItem}
	suite.mockCatalog.On("VariationPrices", mock.Anything, int64(10)).Return([]domain.VariationPrice{
		{VariationID: 11, Price: dec("10.00"), Kind: domain.Regular},
		{VariationID: 12, Price: dec("10.00"), Kind: domain.Regular},
	}, nil).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.BGN, true), parent)

	suite.Require().NoError(err)
	suite.Nil(display.PrimaryMax)
	suite.Nil(display.SecondaryMax)
	suite.True(amountEquals(display.Secondary, "5.11", domain.EUR))
}

func (suite *DisplayServiceTestSuite) TestVariableItem_DisabledSkipsLedger() {
	parent := domain.PriceableItem{ID: 10, Type: domain.VariableItem}
	suite.mockCatalog.On("VariationPrices", mock.Anything, int64(10)).Return([]domain.VariationPrice{
		{VariationID: 11, Price: dec("5.00"), Kind: domain.Regular},
		{VariationID: 12, Price: dec("8.00"), Kind: domain.Regular},
	}, nil).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.EUR, false), parent)

	suite.Require().NoError(err)
	suite.True(amountEquals(display.PrimaryMax, "8.00", domain.EUR))
	suite.Nil(display.Secondary)
	suite.mockLedger.AssertNotCalled(suite.T(), "FindOriginal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCatalog.AssertNumberOfCalls(suite.T(), "VariationPrices", 1)
}

func (suite *DisplayServiceTestSuite) TestVariableItem_NoVariations() {
	parent := domain.PriceableItem{ID: 10, Type: domain.VariableItem}
	suite.mockCatalog.On("VariationPrices", mock.Anything, int64(10)).Return([]domain.VariationPrice{}, nil).Once()

	display, err := suite.service.ProductDisplay(suite.ctx, displayConfig(domain.BGN, true), parent)

	suite.Require().NoError(err)
	suite.True(display.Primary.Amount.IsZero())
	suite.Nil(display.Secondary)
}

// --- Loading by ID ---

func (suite *DisplayServiceTestSuite) TestProductDisplayByID_NotFound() {
	suite.mockCatalog.On("GetItem", mock.Anything, int64(99)).Return(nil, apperrors.NewNotFoundError("item 99")).Once()

	_, err := suite.service.ProductDisplayByID(suite.ctx, displayConfig(domain.BGN, true), 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DisplayServiceTestSuite) TestProductDisplayByID_Success() {
	suite.mockCatalog.On("GetItem", mock.Anything, int64(1)).Return(simpleItem(1, decPtr("19.56"), nil, false), nil).Once()

	display, err := suite.service.ProductDisplayByID(suite.ctx, displayConfig(domain.BGN, true), 1)

	suite.Require().NoError(err)
	suite.True(amountEquals(display.Secondary, "10.00", domain.EUR))
}

func TestDisplayService(t *testing.T) {
	suite.Run(t, new(DisplayServiceTestSuite))
}
