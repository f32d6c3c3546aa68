package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
)

// Defaults applied when a user has no settings row yet.
const (
	defaultLanguage     = "en"
	defaultWeekStartDay = 1 // Monday
)

// settingsService handles per-user display preferences.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// defaultSettings builds the implicit settings for a user without a row.
func defaultSettings(userID string) *domain.UserSettings {
	return &domain.UserSettings{
		UserID:       userID,
		CurrencyCode: currencyfmt.DefaultCurrencyCode,
		Language:     defaultLanguage,
		WeekStartDay: defaultWeekStartDay,
	}
}

// GetSettings returns the user's settings, falling back to defaults when no
// row exists yet.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.FindSettingsByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return defaultSettings(userID), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies the given changes, creating the settings row if it
// does not exist yet.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CurrencyCode != nil {
		if !currencyfmt.IsSupportedCurrency(*req.CurrencyCode) {
			return nil, fmt.Errorf("%w: unsupported currency code %s", apperrors.ErrValidation, *req.CurrencyCode)
		}
		settings.CurrencyCode = *req.CurrencyCode
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.WeekStartDay != nil {
		if *req.WeekStartDay < 0 || *req.WeekStartDay > 6 {
			return nil, fmt.Errorf("%w: week start day must be between 0 and 6", apperrors.ErrValidation)
		}
		settings.WeekStartDay = *req.WeekStartDay
	}

	now := time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = userID
	}
	settings.LastUpdatedAt = now
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return settings, nil
}
