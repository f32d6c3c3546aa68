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
	"github.com/shifttally/shift_tally_app/internal/utils/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// summaryPageSize is the repository page size used when aggregating earnings
// over a date range.
const summaryPageSize = 200

// shiftService handles business logic related to shifts and their earnings.
type shiftService struct {
	BaseService
	shiftRepo portsrepo.ShiftRepositoryFacade
	jobRepo   portsrepo.JobRepositoryFacade
}

// NewShiftService creates a new shiftService.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, jobRepo portsrepo.JobRepositoryFacade) portssvc.ShiftSvcFacade {
	return &shiftService{shiftRepo: shiftRepo, jobRepo: jobRepo}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// CreateShift logs a new shift against a job the creator owns.
func (s *shiftService) CreateShift(ctx context.Context, req dto.CreateShiftRequest, creatorUserID string) (*domain.Shift, error) {
	job, err := s.jobRepo.FindJobByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: job %s not found", apperrors.ErrValidation, req.JobID)
		}
		return nil, fmt.Errorf("failed to validate job for shift: %w", err)
	}
	if job.UserID != creatorUserID {
		return nil, apperrors.ErrForbidden
	}

	if req.ActualHours.IsNegative() {
		return nil, fmt.Errorf("%w: actual hours must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	shift := domain.Shift{
		ShiftID:           uuid.NewString(),
		JobID:             req.JobID,
		UserID:            creatorUserID,
		WorkDate:          req.WorkDate,
		ActualHours:       req.ActualHours,
		ShiftType:         req.ShiftType,
		CustomHourlyRate:  req.CustomHourlyRate,
		IsHoliday:         req.IsHoliday,
		HolidayMultiplier: req.HolidayMultiplier,
		HolidayFixedRate:  req.HolidayFixedRate,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		s.LogError(ctx, err, "Failed to save shift", slog.String("job_id", req.JobID))
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	s.LogInfo(ctx, "Shift created", slog.String("shift_id", shift.ShiftID), slog.String("job_id", req.JobID))
	return &shift, nil
}

// GetShiftByID retrieves a shift the requester owns.
func (s *shiftService) GetShiftByID(ctx context.Context, shiftID string, requestingUserID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	if shift.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return shift, nil
}

// ListShifts retrieves a cursor-paginated page of shifts for a job the
// requester owns.
func (s *shiftService) ListShifts(ctx context.Context, jobID string, params dto.ListShiftsParams, requestingUserID string) ([]domain.Shift, string, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to validate job for shift listing: %w", err)
	}
	if job.UserID != requestingUserID {
		return nil, "", apperrors.ErrForbidden
	}

	shifts, nextToken, err := s.shiftRepo.FindShiftsByJob(ctx, jobID, params.From, params.To, params.Limit, params.NextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list shifts: %w", err)
	}
	if shifts == nil {
		shifts = []domain.Shift{}
	}
	return shifts, nextToken, nil
}

// UpdateShift applies the allowed changes to a shift the requester owns.
func (s *shiftService) UpdateShift(ctx context.Context, shiftID string, req dto.UpdateShiftRequest, requestingUserID string) (*domain.Shift, error) {
	shift, err := s.GetShiftByID(ctx, shiftID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.WorkDate != nil {
		shift.WorkDate = *req.WorkDate
	}
	if req.ActualHours != nil {
		if req.ActualHours.IsNegative() {
			return nil, fmt.Errorf("%w: actual hours must not be negative", apperrors.ErrValidation)
		}
		shift.ActualHours = *req.ActualHours
	}
	if req.ShiftType != nil {
		shift.ShiftType = *req.ShiftType
	}
	if req.CustomHourlyRate != nil {
		shift.CustomHourlyRate = req.CustomHourlyRate
	}
	if req.IsHoliday != nil {
		shift.IsHoliday = *req.IsHoliday
	}
	if req.HolidayMultiplier != nil {
		shift.HolidayMultiplier = req.HolidayMultiplier
	}
	if req.HolidayFixedRate != nil {
		shift.HolidayFixedRate = req.HolidayFixedRate
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	shift.LastUpdatedAt = time.Now()
	shift.LastUpdatedBy = requestingUserID

	if err := s.shiftRepo.UpdateShift(ctx, *shift); err != nil {
		s.LogError(ctx, err, "Failed to update shift", slog.String("shift_id", shiftID))
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return shift, nil
}

// DeleteShift removes a shift the requester owns.
func (s *shiftService) DeleteShift(ctx context.Context, shiftID string, requestingUserID string) error {
	if _, err := s.GetShiftByID(ctx, shiftID, requestingUserID); err != nil {
		return err
	}

	if err := s.shiftRepo.DeleteShift(ctx, shiftID); err != nil {
		s.LogError(ctx, err, "Failed to delete shift", slog.String("shift_id", shiftID))
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	s.LogInfo(ctx, "Shift deleted", slog.String("shift_id", shiftID))
	return nil
}

// GetShiftEarnings computes the earnings and effective rate for one shift.
// A job that has since been deleted yields zero earnings rather than an error.
func (s *shiftService) GetShiftEarnings(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftEarnings, error) {
	shift, err := s.GetShiftByID(ctx, shiftID, requestingUserID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindJobByID(ctx, shift.JobID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load job for earnings: %w", err)
	}

	result := &domain.ShiftEarnings{
		ShiftID:  shift.ShiftID,
		JobID:    shift.JobID,
		Earnings: payroll.CalculateShiftEarnings(*shift, job),
	}
	if job != nil {
		result.CurrencyCode = job.CurrencyCode
		jobRate := decimal.Zero
		if job.HourlyRate != nil {
			jobRate = *job.HourlyRate
		}
		result.EffectiveRate = payroll.CalculateEffectiveRate(*shift, jobRate)
	}
	return result, nil
}

// GetEarningsSummary aggregates earnings for a job over a date range, paging
// through the full range shift by shift.
func (s *shiftService) GetEarningsSummary(ctx context.Context, jobID string, from, to time.Time, requestingUserID string) (*domain.EarningsSummary, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job for earnings summary: %w", err)
	}
	if job.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	summary := &domain.EarningsSummary{
		JobID:         jobID,
		CurrencyCode:  job.CurrencyCode,
		From:          from,
		To:            to,
		TotalEarnings: decimal.Zero,
		TotalHours:    decimal.Zero,
	}

	nextToken := ""
	for {
		shifts, token, err := s.shiftRepo.FindShiftsByJob(ctx, jobID, from, to, summaryPageSize, nextToken)
		if err != nil {
			return nil, fmt.Errorf("failed to page shifts for earnings summary: %w", err)
		}
		for i := range shifts {
			summary.TotalEarnings = summary.TotalEarnings.Add(payroll.CalculateShiftEarnings(shifts[i], job))
			summary.TotalHours = summary.TotalHours.Add(shifts[i].ActualHours)
			summary.ShiftCount++
		}
		if token == "" {
			break
		}
		nextToken = token
	}

	return summary, nil
}
