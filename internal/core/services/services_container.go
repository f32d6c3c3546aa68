package services

import (
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Job = NewJobService(repos.JobRepo)
	container.Shift = NewShiftService(repos.ShiftRepo, repos.JobRepo)
	container.Record = NewRecordService(repos.RecordRepo, repos.SettingsRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
