package dto

import (
	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateExchangeRateRequest is the updateRate input. The rate stays a string so the exact
// administrator input can be checked against the accepted format.
type UpdateExchangeRateRequest struct {
	Rate string `json:"rate" binding:"required,exchangerate"`
}

// RunMigrationRequest is the runMigration input. An empty Rate means the stored rate.
type RunMigrationRequest struct {
	Direction            string `json:"direction" binding:"required,oneof=BGN_TO_EUR EUR_TO_BGN"`
	Rate                 string `json:"rate"`
	BackupFirst          bool   `json:"backupFirst"`
	SwitchActiveCurrency bool   `json:"switchActiveCurrency"`
	DisableDualDisplay   bool   `json:"disableDualDisplay"`
}

// RestoreRequest is the runRestore input.
type RestoreRequest struct {
	Currency          string `json:"currency" binding:"required,oneof=BGN EUR"`
	EnableDualDisplay bool   `json:"enableDualDisplay"`
}

// ToggleDualDisplayRequest is the toggleDualDisplay input.
type ToggleDualDisplayRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SettingsResponse defines the structure for API responses containing the store settings.
type SettingsResponse struct {
	Rate               decimal.Decimal `json:"rate"`
	DualDisplayEnabled bool            `json:"dualDisplayEnabled"`
	ActiveCurrency     string          `json:"activeCurrency"`
	SecondaryCurrency  string          `json:"secondaryCurrency,omitempty"`
}

// ToSettingsResponse converts domain.StoreSettings to SettingsResponse DTO
func ToSettingsResponse(s *domain.StoreSettings) SettingsResponse {
	resp := SettingsResponse{
		Rate:               s.Rate,
		DualDisplayEnabled: s.DualDisplayEnabled,
		ActiveCurrency:     s.ActiveCurrency.String(),
	}
	if other, ok := s.ActiveCurrency.Counterpart(); ok {
		resp.SecondaryCurrency = other.String()
	}
	return resp
}

// AdminResultResponse is the envelope every administrative action answers with.
type AdminResultResponse struct {
	Count          int     `json:"count"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	Error          string  `json:"error,omitempty"`
	Message        string  `json:"message,omitempty"`
	Details        any     `json:"details,omitempty"`
}

// BackupCurrenciesResponse lists the currencies the backup log can be restored to.
type BackupCurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}
