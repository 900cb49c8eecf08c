package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/dual_currency_display/internal/apperrors"
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/core/services"
	"github.com/SscSPs/dual_currency_display/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockSettings  *MockSettingsService
	mockMigration *MockMigrationService
	mockBackup    *MockBackupService
	service       portssvc.AdminSvc
	ctx           context.Context
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockSettings = new(MockSettingsService)
	suite.mockMigration = new(MockMigrationService)
	suite.mockBackup = new(MockBackupService)
	suite.service = services.NewAdminService(suite.mockSettings, suite.mockMigration, suite.mockBackup)
	suite.ctx = context.Background()
}

func rateEquals(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(want)) })
}

// --- UpdateRate ---

func (suite *AdminServiceTestSuite) TestUpdateRate_Success() {
	suite.mockSettings.On("UpdateExchangeRate", mock.Anything, rateEquals("1.95583")).Return(nil).Once()
	suite.mockSettings.On("GetSettings", mock.Anything).Return(settingsIn(domain.BGN), nil).Once()

	settings, err := suite.service.UpdateRate(suite.ctx, dto.UpdateExchangeRateRequest{Rate: "1.95583"})

	suite.Require().NoError(err)
	suite.NotNil(settings)
	suite.mockSettings.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestUpdateRate_RejectsBadFormat() {
	for _, raw := range []string{"1.955831", "0", "abc", "-2"} {
		_, err := suite.service.UpdateRate(suite.ctx, dto.UpdateExchangeRateRequest{Rate: raw})
		suite.ErrorIs(err, apperrors.ErrValidation, raw)
	}
	suite.mockSettings.AssertNotCalled(suite.T(), "UpdateExchangeRate", mock.Anything, mock.Anything)
}

// --- RunMigration ---

func (suite *AdminServiceTestSuite) TestRunMigration_FullFlow() {
	suite.mockBackup.On("Backup", mock.Anything).Return(&domain.BackupResult{BatchID: "b", Rows: 4, Currency: domain.BGN}, nil).Once()
	suite.mockMigration.On("Migrate", mock.Anything, domain.BGNToEUR, rateEquals("1.95583")).
		Return(domain.MigrationResult{Count: 2, ElapsedSeconds: 0.12}).Once()
	suite.mockSettings.On("SetActiveCurrency", mock.Anything, domain.EUR).Return(nil).Once()
	suite.mockSettings.On("SetDualDisplayEnabled", mock.Anything, true).Return(nil).Once()
	suite.mockSettings.On("GetSettings", mock.Anything).Return(settingsIn(domain.EUR), nil).Once()

	result, err := suite.service.RunMigration(suite.ctx, dto.RunMigrationRequest{
		Direction:            "BGN_TO_EUR",
		Rate:                 "1.95583",
		BackupFirst:          true,
		SwitchActiveCurrency: true,
	})

	suite.Require().NoError(err)
	suite.Equal(2, result.Migration.Count)
	suite.Require().NotNil(result.Backup)
	suite.Equal(4, result.Backup.Rows)
	suite.Equal(domain.EUR, result.Settings.ActiveCurrency)
	suite.mockSettings.AssertExpectations(suite.T())
	suite.mockMigration.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestRunMigration_EmptyRateUsesStoredRate() {
	stored := settingsIn(domain.EUR)
	stored.Rate = dec("1.9")
	suite.mockSettings.On("GetSettings", mock.Anything).Return(stored, nil).Twice()
	suite.mockMigration.On("Migrate", mock.Anything, domain.EURToBGN, rateEquals("1.9")).
		Return(domain.MigrationResult{Count: 1}).Once()
	suite.mockSettings.On("SetDualDisplayEnabled", mock.Anything, false).Return(nil).Once()

	result, err := suite.service.RunMigration(suite.ctx, dto.RunMigrationRequest{
		Direction:          "EUR_TO_BGN",
		DisableDualDisplay: true,
	})

	suite.Require().NoError(err)
	suite.Equal(1, result.Migration.Count)
	suite.mockSettings.AssertNotCalled(suite.T(), "SetActiveCurrency", mock.Anything, mock.Anything)
	suite.mockBackup.AssertNotCalled(suite.T(), "Backup", mock.Anything)
}

func (suite *AdminServiceTestSuite) TestRunMigration_InvalidRate() {
	for _, raw := range []string{"0", "-1", "x"} {
		result, err := suite.service.RunMigration(suite.ctx, dto.RunMigrationRequest{Direction: "BGN_TO_EUR", Rate: raw})

		suite.ErrorIs(err, apperrors.ErrValidation, raw)
		suite.Require().NotNil(result)
		suite.NotEmpty(result.Migration.Error)
		suite.Zero(result.Migration.Count)
	}
	suite.mockMigration.AssertNotCalled(suite.T(), "Migrate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdminServiceTestSuite) TestRunMigration_BackupFailureAborts() {
	suite.mockBackup.On("Backup", mock.Anything).Return(nil, assert.AnError).Once()

	result, err := suite.service.RunMigration(suite.ctx, dto.RunMigrationRequest{
		Direction:   "BGN_TO_EUR",
		Rate:        "1.95583",
		BackupFirst: true,
	})

	suite.Require().Error(err)
	suite.Contains(result.Migration.Error, "Error backing up prices")
	suite.mockMigration.AssertNotCalled(suite.T(), "Migrate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdminServiceTestSuite) TestRunMigration_FailureLeavesSettingsAlone() {
	suite.mockMigration.On("Migrate", mock.Anything, domain.BGNToEUR, mock.Anything).
		Return(domain.MigrationResult{Error: "failed to save item 1"}).Once()

	result, err := suite.service.RunMigration(suite.ctx, dto.RunMigrationRequest{
		Direction:            "BGN_TO_EUR",
		Rate:                 "1.95583",
		SwitchActiveCurrency: true,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.Equal("failed to save item 1", result.Migration.Error)
	suite.mockSettings.AssertNotCalled(suite.T(), "SetActiveCurrency", mock.Anything, mock.Anything)
	suite.mockSettings.AssertNotCalled(suite.T(), "SetDualDisplayEnabled", mock.Anything, mock.Anything)
}

// --- RunRestore ---

func (suite *AdminServiceTestSuite) TestRunRestore_Success() {
	suite.mockBackup.On("Restore", mock.Anything, domain.BGN, true).Return(5, nil).Once()

	result, err := suite.service.RunRestore(suite.ctx, dto.RestoreRequest{Currency: "BGN", EnableDualDisplay: true})

	suite.Require().NoError(err)
	suite.Equal(5, result.Count)
	suite.Equal(domain.BGN, result.Currency)
	suite.True(result.DualDisplayEnabled)
}

func (suite *AdminServiceTestSuite) TestRunRestore_PartialFailureKeepsCount() {
	suite.mockBackup.On("Restore", mock.Anything, domain.EUR, false).Return(2, assert.AnError).Once()

	result, err := suite.service.RunRestore(suite.ctx, dto.RestoreRequest{Currency: "EUR"})

	suite.Require().Error(err)
	suite.Equal(2, result.Count)
	suite.NotEmpty(result.Error)
}

func (suite *AdminServiceTestSuite) TestRunRestore_InvalidCurrency() {
	result, err := suite.service.RunRestore(suite.ctx, dto.RestoreRequest{Currency: "USD"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotEmpty(result.Error)
	suite.mockBackup.AssertNotCalled(suite.T(), "Restore", mock.Anything, mock.Anything, mock.Anything)
}

// --- ToggleDualDisplay ---

func (suite *AdminServiceTestSuite) TestToggleDualDisplay() {
	disabled := false
	suite.mockSettings.On("SetDualDisplayEnabled", mock.Anything, false).Return(nil).Once()
	suite.mockSettings.On("GetSettings", mock.Anything).Return(settingsIn(domain.BGN), nil).Once()

	_, err := suite.service.ToggleDualDisplay(suite.ctx, dto.ToggleDualDisplayRequest{Enabled: &disabled})

	suite.Require().NoError(err)
	suite.mockSettings.AssertExpectations(suite.T())
}

func (suite *AdminServiceTestSuite) TestToggleDualDisplay_MissingFlag() {
	_, err := suite.service.ToggleDualDisplay(suite.ctx, dto.ToggleDualDisplayRequest{})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
