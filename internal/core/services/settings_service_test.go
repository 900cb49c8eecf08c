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

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
	ctx      context.Context
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *SettingsServiceTestSuite) TestDisplayConfig() {
	stored := settingsIn(domain.EUR)
	stored.DualDisplayEnabled = false
	suite.mockRepo.On("GetSettings", mock.Anything).Return(stored, nil).Once()

	cfg, err := suite.service.DisplayConfig(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.EUR, cfg.ActiveCurrency)
	suite.False(cfg.DualDisplayEnabled)
	suite.True(cfg.Rate.Equal(domain.DefaultExchangeRate))
}

func (suite *SettingsServiceTestSuite) TestGetSettings_Error() {
	suite.mockRepo.On("GetSettings", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetSettings(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *SettingsServiceTestSuite) TestUpdateExchangeRate() {
	suite.mockRepo.On("SaveExchangeRate", mock.Anything, rateEquals("1.96")).Return(nil).Once()

	suite.Require().NoError(suite.service.UpdateExchangeRate(suite.ctx, dec("1.96")))
	suite.ErrorIs(suite.service.UpdateExchangeRate(suite.ctx, dec("0")), apperrors.ErrValidation)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveExchangeRate", 1)
}

func (suite *SettingsServiceTestSuite) TestSetActiveCurrency() {
	suite.mockRepo.On("SaveActiveCurrency", mock.Anything, domain.EUR).Return(nil).Once()

	suite.Require().NoError(suite.service.SetActiveCurrency(suite.ctx, domain.EUR))
	suite.ErrorIs(suite.service.SetActiveCurrency(suite.ctx, domain.Currency("USD")), apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestEnsureDefaults() {
	defaults := domain.DefaultStoreSettings()
	suite.mockRepo.On("EnsureDefaults", mock.Anything, defaults).Return(nil).Once()

	suite.Require().NoError(suite.service.EnsureDefaults(suite.ctx, defaults))

	bad := defaults
	bad.Rate = dec("0")
	suite.ErrorIs(suite.service.EnsureDefaults(suite.ctx, bad), apperrors.ErrValidation)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "EnsureDefaults", 1)
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
