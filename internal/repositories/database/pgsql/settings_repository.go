package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	"github.com/shifttally/shift_tally_app/internal/models"
	"github.com/shifttally/shift_tally_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for user settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettingsByUser(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, currency_code, language, week_start_day, created_at, created_by, last_updated_at, last_updated_by
		FROM user_settings
		WHERE user_id = $1;
	`
	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.CurrencyCode,
		&m.Language,
		&m.WeekStartDay,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}

	domainSettings := mapping.ToDomainUserSettings(m)
	return &domainSettings, nil
}

// SaveSettings inserts or updates the settings row for a user.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	m := mapping.ToModelUserSettings(settings)
	query := `
		INSERT INTO user_settings (user_id, currency_code, language, week_start_day, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			language = EXCLUDED.language,
			week_start_day = EXCLUDED.week_start_day,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.CurrencyCode,
		m.Language,
		m.WeekStartDay,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", settings.UserID, err)
	}
	return nil
}
