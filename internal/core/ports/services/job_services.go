package services

import (
	"context"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/dto"
)

// JobReaderSvc defines read operations for job data
type JobReaderSvc interface {
	// GetJobByID retrieves a job, enforcing that the requester owns it.
	GetJobByID(ctx context.Context, jobID string, requestingUserID string) (*domain.Job, error)

	// ListJobs retrieves all jobs owned by the requesting user.
	ListJobs(ctx context.Context, requestingUserID string) ([]domain.Job, error)
}

// JobWriterSvc defines write operations for job data
type JobWriterSvc interface {
	// CreateJob creates a new job owned by the creator.
	CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error)

	// UpdateJob updates a job the requester owns.
	UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest, requestingUserID string) (*domain.Job, error)

	// DeleteJob soft-deletes a job the requester owns.
	DeleteJob(ctx context.Context, jobID string, requestingUserID string) error
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
