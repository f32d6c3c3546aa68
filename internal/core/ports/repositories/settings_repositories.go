package repositories

import (
	"context"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
)

// SettingsReader defines read operations for user settings
type SettingsReader interface {
	// FindSettingsByUser retrieves the settings row for a user.
	FindSettingsByUser(ctx context.Context, userID string) (*domain.UserSettings, error)
}

// SettingsWriter defines write operations for user settings
type SettingsWriter interface {
	// SaveSettings inserts or updates the settings row for a user.
	SaveSettings(ctx context.Context, settings domain.UserSettings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
