package services

import (
	"context"
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/dto"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a shift, enforcing that the requester owns it.
	GetShiftByID(ctx context.Context, shiftID string, requestingUserID string) (*domain.Shift, error)

	// ListShifts retrieves a cursor-paginated page of shifts for a job the
	// requester owns. Returns the page and the next-page token.
	ListShifts(ctx context.Context, jobID string, params dto.ListShiftsParams, requestingUserID string) ([]domain.Shift, string, error)
}

// ShiftWriterSvc defines write operations for shift data
type ShiftWriterSvc interface {
	// CreateShift logs a new shift against a job the creator owns.
	CreateShift(ctx context.Context, req dto.CreateShiftRequest, creatorUserID string) (*domain.Shift, error)

	// UpdateShift updates a shift the requester owns.
	UpdateShift(ctx context.Context, shiftID string, req dto.UpdateShiftRequest, requestingUserID string) (*domain.Shift, error)

	// DeleteShift removes a shift the requester owns.
	DeleteShift(ctx context.Context, shiftID string, requestingUserID string) error
}

// ShiftEarningsSvc exposes the pay computation for persisted shifts.
type ShiftEarningsSvc interface {
	// GetShiftEarnings computes the earnings and effective rate for one shift.
	GetShiftEarnings(ctx context.Context, shiftID string, requestingUserID string) (*domain.ShiftEarnings, error)

	// GetEarningsSummary aggregates earnings for a job over a date range.
	GetEarningsSummary(ctx context.Context, jobID string, from, to time.Time, requestingUserID string) (*domain.EarningsSummary, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
	ShiftEarningsSvc
}
