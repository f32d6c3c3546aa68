package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	"github.com/shifttally/shift_tally_app/internal/models"
	"github.com/shifttally/shift_tally_app/internal/utils/mapping"
	"github.com/shifttally/shift_tally_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shiftColumns = `shift_id, job_id, user_id, work_date, actual_hours, shift_type, custom_hourly_rate, is_holiday, holiday_multiplier, holiday_fixed_rate, notes, created_at, created_by, last_updated_at, last_updated_by`

// defaultShiftPageSize bounds shift listing when the caller passes no limit.
const defaultShiftPageSize = 50

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

func scanShift(row pgx.Row) (models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.JobID,
		&m.UserID,
		&m.WorkDate,
		&m.ActualHours,
		&m.ShiftType,
		&m.CustomHourlyRate,
		&m.IsHoliday,
		&m.HolidayMultiplier,
		&m.HolidayFixedRate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	modelShift := mapping.ToModelShift(shift)
	query := `
		INSERT INTO shifts (shift_id, job_id, user_id, work_date, actual_hours, shift_type, custom_hourly_rate, is_holiday, holiday_multiplier, holiday_fixed_rate, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelShift.ShiftID,
		modelShift.JobID,
		modelShift.UserID,
		modelShift.WorkDate,
		modelShift.ActualHours,
		modelShift.ShiftType,
		modelShift.CustomHourlyRate,
		modelShift.IsHoliday,
		modelShift.HolidayMultiplier,
		modelShift.HolidayFixedRate,
		modelShift.Notes,
		modelShift.CreatedAt,
		modelShift.CreatedBy,
		modelShift.LastUpdatedAt,
		modelShift.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE shift_id = $1;
	`
	modelShift, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift by ID %s: %w", shiftID, err)
	}

	domainShift := mapping.ToDomainShift(modelShift)
	return &domainShift, nil
}

// FindShiftsByJob retrieves shifts for a job within a date range, newest work
// date first, keyset-paginated on (work_date, created_at).
func (r *PgxShiftRepository) FindShiftsByJob(ctx context.Context, jobID string, from, to time.Time, limit int, nextToken string) ([]domain.Shift, string, error) {
	if limit <= 0 {
		limit = defaultShiftPageSize
	}

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE job_id = $1
	`
	args := []any{jobID}

	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND work_date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND work_date <= $%d", len(args))
	}

	if nextToken != "" {
		cursorWorkDate, cursorCreatedAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, cursorWorkDate, cursorCreatedAt)
		query += fmt.Sprintf(" AND (work_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to detect whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY work_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query shifts for job %s: %w", jobID, err)
	}
	defer rows.Close()

	modelShifts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Shift, error) {
		return scanShift(row)
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan shifts: %w", err)
	}

	newNextToken := ""
	if len(modelShifts) > limit {
		modelShifts = modelShifts[:limit]
		last := modelShifts[len(modelShifts)-1]
		newNextToken = pagination.EncodeToken(last.WorkDate, last.CreatedAt)
	}

	return mapping.ToDomainShiftSlice(modelShifts), newNextToken, nil
}

func (r *PgxShiftRepository) UpdateShift(ctx context.Context, shift domain.Shift) error {
	modelShift := mapping.ToModelShift(shift)
	query := `
		UPDATE shifts
		SET work_date = $2, actual_hours = $3, shift_type = $4, custom_hourly_rate = $5, is_holiday = $6, holiday_multiplier = $7, holiday_fixed_rate = $8, notes = $9, last_updated_at = $10, last_updated_by = $11
		WHERE shift_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelShift.ShiftID,
		modelShift.WorkDate,
		modelShift.ActualHours,
		modelShift.ShiftType,
		modelShift.CustomHourlyRate,
		modelShift.IsHoliday,
		modelShift.HolidayMultiplier,
		modelShift.HolidayFixedRate,
		modelShift.Notes,
		modelShift.LastUpdatedAt,
		modelShift.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift %s: %w", shift.ShiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShiftRepository) DeleteShift(ctx context.Context, shiftID string) error {
	query := `DELETE FROM shifts WHERE shift_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, shiftID)
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
