package dto

import (
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShiftRequest defines data for logging a new shift.
type CreateShiftRequest struct {
	JobID       string           `json:"jobID" binding:"required"`
	WorkDate    time.Time        `json:"workDate" binding:"required" time_format:"2006-01-02"`
	ActualHours decimal.Decimal  `json:"actualHours"`
	ShiftType   domain.ShiftType `json:"shiftType" binding:"omitempty,oneof=work pto sick personal bereavement maternity paternity jury_duty unpaid"`

	CustomHourlyRate  *decimal.Decimal `json:"customHourlyRate"`
	IsHoliday         bool             `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal `json:"holidayMultiplier"`
	HolidayFixedRate  *decimal.Decimal `json:"holidayFixedRate"`

	Notes string `json:"notes"`
}

// UpdateShiftRequest defines data allowed for updating a shift.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateShiftRequest struct {
	WorkDate    *time.Time        `json:"workDate"`
	ActualHours *decimal.Decimal  `json:"actualHours"`
	ShiftType   *domain.ShiftType `json:"shiftType" binding:"omitempty,oneof=work pto sick personal bereavement maternity paternity jury_duty unpaid"`

	CustomHourlyRate  *decimal.Decimal `json:"customHourlyRate"`
	IsHoliday         *bool            `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal `json:"holidayMultiplier"`
	HolidayFixedRate  *decimal.Decimal `json:"holidayFixedRate"`

	Notes *string `json:"notes"`
}

// ListShiftsParams defines query parameters for listing shifts of a job.
type ListShiftsParams struct {
	From      time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int       `form:"limit,default=50"`
	NextToken string    `form:"nextToken"`
}

// ShiftResponse defines data returned for a shift.
type ShiftResponse struct {
	ShiftID     string           `json:"shiftID"`
	JobID       string           `json:"jobID"`
	UserID      string           `json:"userID"`
	WorkDate    time.Time        `json:"workDate"`
	ActualHours decimal.Decimal  `json:"actualHours"`
	ShiftType   domain.ShiftType `json:"shiftType"`

	CustomHourlyRate  *decimal.Decimal `json:"customHourlyRate,omitempty"`
	IsHoliday         bool             `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal `json:"holidayMultiplier,omitempty"`
	HolidayFixedRate  *decimal.Decimal `json:"holidayFixedRate,omitempty"`

	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToShiftResponse converts domain.Shift to DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:           s.ShiftID,
		JobID:             s.JobID,
		UserID:            s.UserID,
		WorkDate:          s.WorkDate,
		ActualHours:       s.ActualHours,
		ShiftType:         s.ShiftType,
		CustomHourlyRate:  s.CustomHourlyRate,
		IsHoliday:         s.IsHoliday,
		HolidayMultiplier: s.HolidayMultiplier,
		HolidayFixedRate:  s.HolidayFixedRate,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

// ListShiftsResponse wraps a page of shifts plus the cursor for the next page.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToListShiftsResponse converts a page of domain.Shift to DTO.
func ToListShiftsResponse(shifts []domain.Shift, nextToken string) ListShiftsResponse {
	list := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		list[i] = ToShiftResponse(&s)
	}
	return ListShiftsResponse{Shifts: list, NextToken: nextToken}
}
