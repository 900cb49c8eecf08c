package services

import (
	portsrepo "github.com/SscSPs/dual_currency_display/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings and display first; the rest build on them
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Display = NewDisplayService(repos.CatalogRepo, repos.LedgerRepo)
	container.Cart = NewCartService(container.Display)

	container.Migration = NewMigrationService(repos.CatalogRepo, repos.LedgerRepo)
	container.Backup = NewBackupService(repos.CatalogRepo, repos.LedgerRepo, repos.BackupRepo, repos.SettingsRepo)
	container.Admin = NewAdminService(container.Settings, container.Migration, container.Backup)

	container.Auth = NewAuthService(cfg)

	return container
}
