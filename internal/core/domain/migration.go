package domain

import "github.com/shopspring/decimal"

// MigrationResult is what a bulk migration reports back to the administrator.
type MigrationResult struct {
	Count          int     `json:"count"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	Error          string  `json:"error,omitempty"`
	// OverwrittenOriginals counts ledger entries replaced by this run. A non-zero value means the catalog was
	// migrated in the same direction before and the earlier originals are gone.
	OverwrittenOriginals int `json:"overwrittenOriginals"`
}

// Failed reports whether the migration aborted or never started.
func (r MigrationResult) Failed() bool {
	return r.Error != ""
}

// MigrationOptions are the administrator's choices around a migration run.
type MigrationOptions struct {
	BackupFirst          bool
	SwitchActiveCurrency bool
	DisableDualDisplay   bool
}

// MigrationRequest is a fully validated runMigration call.
type MigrationRequest struct {
	Direction Direction
	Rate      decimal.Decimal
	Options   MigrationOptions
}

// BackupResult describes one backup run.
type BackupResult struct {
	BatchID  string   `json:"batchID"`
	Rows     int      `json:"rows"`
	Currency Currency `json:"currency"`
}

// RestoreResult is what a restore reports back to the administrator.
type RestoreResult struct {
	Count              int      `json:"count"`
	Currency           Currency `json:"currency"`
	DualDisplayEnabled bool     `json:"dualDisplayEnabled"`
	Error              string   `json:"error,omitempty"`
}

// AdminRunResult bundles the outcome of runMigration.
type AdminRunResult struct {
	Backup    *BackupResult   `json:"backup,omitempty"`
	Migration MigrationResult `json:"migration"`
	Settings  StoreSettings   `json:"settings"`
}
