package repositories

import (
	"context"
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its ID.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindShiftsByJob retrieves shifts for a job within a date range, newest
	// first, cursor-paginated. A zero from/to means unbounded on that side.
	// Returns the page and the next-page token ("" when exhausted).
	FindShiftsByJob(ctx context.Context, jobID string, from, to time.Time, limit int, nextToken string) ([]domain.Shift, string, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a new shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// UpdateShift updates an existing shift.
	UpdateShift(ctx context.Context, shift domain.Shift) error

	// DeleteShift removes a shift permanently.
	DeleteShift(ctx context.Context, shiftID string) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
