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
	"github.com/google/uuid"
)

// jobService handles business logic related to jobs and their pay configuration.
type jobService struct {
	BaseService
	jobRepo portsrepo.JobRepositoryFacade
}

// NewJobService creates a new jobService.
func NewJobService(jobRepo portsrepo.JobRepositoryFacade) portssvc.JobSvcFacade {
	return &jobService{jobRepo: jobRepo}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

// CreateJob creates a new job owned by the creator.
func (s *jobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error) {
	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = currencyfmt.DefaultCurrencyCode
	}
	if !currencyfmt.IsSupportedCurrency(currencyCode) {
		return nil, fmt.Errorf("%w: unsupported currency code %s", apperrors.ErrValidation, currencyCode)
	}

	now := time.Now()
	job := domain.Job{
		JobID:        uuid.NewString(),
		UserID:       creatorUserID,
		Name:         req.Name,
		PayType:      req.PayType,
		HourlyRate:   req.HourlyRate,
		DailyRate:    req.DailyRate,
		MonthlyRate:  req.MonthlyRate,
		AnnualSalary: req.AnnualSalary,
		CurrencyCode: currencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.jobRepo.SaveJob(ctx, job); err != nil {
		s.LogError(ctx, err, "Failed to save job", slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.LogInfo(ctx, "Job created", slog.String("job_id", job.JobID), slog.String("user_id", creatorUserID))
	return &job, nil
}

// GetJobByID retrieves a job the requester owns.
func (s *jobService) GetJobByID(ctx context.Context, jobID string, requestingUserID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	if job.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, requestingUserID string) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindJobsByUser(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if jobs == nil {
		return []domain.Job{}, nil
	}
	return jobs, nil
}

// UpdateJob applies the allowed changes to a job the requester owns.
func (s *jobService) UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest, requestingUserID string) (*domain.Job, error) {
	job, err := s.GetJobByID(ctx, jobID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		job.Name = *req.Name
	}
	if req.PayType != nil {
		job.PayType = *req.PayType
	}
	if req.HourlyRate != nil {
		job.HourlyRate = req.HourlyRate
	}
	if req.DailyRate != nil {
		job.DailyRate = req.DailyRate
	}
	if req.MonthlyRate != nil {
		job.MonthlyRate = req.MonthlyRate
	}
	if req.AnnualSalary != nil {
		job.AnnualSalary = req.AnnualSalary
	}
	if req.CurrencyCode != nil {
		if !currencyfmt.IsSupportedCurrency(*req.CurrencyCode) {
			return nil, fmt.Errorf("%w: unsupported currency code %s", apperrors.ErrValidation, *req.CurrencyCode)
		}
		job.CurrencyCode = *req.CurrencyCode
	}

	job.LastUpdatedAt = time.Now()
	job.LastUpdatedBy = requestingUserID

	if err := s.jobRepo.UpdateJob(ctx, *job); err != nil {
		s.LogError(ctx, err, "Failed to update job", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

// DeleteJob soft-deletes a job the requester owns.
func (s *jobService) DeleteJob(ctx context.Context, jobID string, requestingUserID string) error {
	if _, err := s.GetJobByID(ctx, jobID, requestingUserID); err != nil {
		return err
	}

	if err := s.jobRepo.MarkJobDeleted(ctx, jobID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to mark job deleted", slog.String("job_id", jobID))
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.LogInfo(ctx, "Job deleted", slog.String("job_id", jobID))
	return nil
}
