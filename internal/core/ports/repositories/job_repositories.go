package repositories

import (
	"context"
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
)

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a specific job by its ID.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// FindJobsByUser retrieves all non-deleted jobs owned by a user.
	FindJobsByUser(ctx context.Context, userID string) ([]domain.Job, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// SaveJob persists a new job.
	SaveJob(ctx context.Context, job domain.Job) error

	// UpdateJob updates an existing job.
	UpdateJob(ctx context.Context, job domain.Job) error
}

// JobLifecycleManager defines operations for managing job lifecycle
type JobLifecycleManager interface {
	// MarkJobDeleted marks a job as deleted (soft delete).
	MarkJobDeleted(ctx context.Context, jobID string, deletedAt time.Time, deletedBy string) error
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
	JobLifecycleManager
}
