package services

import (
	"context"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/dto"
)

// SettingsSvcFacade manages per-user display preferences.
type SettingsSvcFacade interface {
	// GetSettings returns the user's settings, falling back to defaults when
	// no row exists yet.
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpdateSettings applies the given changes and returns the result.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)
}
