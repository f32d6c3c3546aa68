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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `job_id, user_id, name, pay_type, hourly_rate, daily_rate, monthly_rate, annual_salary, currency_code, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates a new repository for job data.
func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID,
		&m.UserID,
		&m.Name,
		&m.PayType,
		&m.HourlyRate,
		&m.DailyRate,
		&m.MonthlyRate,
		&m.AnnualSalary,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	modelJob := mapping.ToModelJob(job)
	query := `
		INSERT INTO jobs (job_id, user_id, name, pay_type, hourly_rate, daily_rate, monthly_rate, annual_salary, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelJob.JobID,
		modelJob.UserID,
		modelJob.Name,
		modelJob.PayType,
		modelJob.HourlyRate,
		modelJob.DailyRate,
		modelJob.MonthlyRate,
		modelJob.AnnualSalary,
		modelJob.CurrencyCode,
		modelJob.CreatedAt,
		modelJob.CreatedBy,
		modelJob.LastUpdatedAt,
		modelJob.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE job_id = $1 AND deleted_at IS NULL;
	`
	modelJob, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID %s: %w", jobID, err)
	}

	domainJob := mapping.ToDomainJob(modelJob)
	return &domainJob, nil
}

func (r *PgxJobRepository) FindJobsByUser(ctx context.Context, userID string) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelJobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Job, error) {
		return scanJob(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	return mapping.ToDomainJobSlice(modelJobs), nil
}

func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	modelJob := mapping.ToModelJob(job)
	query := `
		UPDATE jobs
		SET name = $2, pay_type = $3, hourly_rate = $4, daily_rate = $5, monthly_rate = $6, annual_salary = $7, currency_code = $8, last_updated_at = $9, last_updated_by = $10
		WHERE job_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelJob.JobID,
		modelJob.Name,
		modelJob.PayType,
		modelJob.HourlyRate,
		modelJob.DailyRate,
		modelJob.MonthlyRate,
		modelJob.AnnualSalary,
		modelJob.CurrencyCode,
		modelJob.LastUpdatedAt,
		modelJob.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", job.JobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) MarkJobDeleted(ctx context.Context, jobID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE jobs
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE job_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, jobID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark job %s deleted: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
