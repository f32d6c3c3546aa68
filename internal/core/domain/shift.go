package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftType categorises a shift as regular work or one of the leave categories.
type ShiftType string

const (
	ShiftTypeWork        ShiftType = "work"
	ShiftTypePTO         ShiftType = "pto"
	ShiftTypeSick        ShiftType = "sick"
	ShiftTypePersonal    ShiftType = "personal"
	ShiftTypeBereavement ShiftType = "bereavement"
	ShiftTypeMaternity   ShiftType = "maternity"
	ShiftTypePaternity   ShiftType = "paternity"
	ShiftTypeJuryDuty    ShiftType = "jury_duty"
	ShiftTypeUnpaid      ShiftType = "unpaid"
)

// IsWork reports whether the shift type is a normal work shift.
// An absent shift type counts as work.
func (s ShiftType) IsWork() bool {
	return s == "" || s == ShiftTypeWork
}

// IsPaidLeave reports whether the shift type is a leave category credited at
// the job's base rate despite no work being performed.
func (s ShiftType) IsPaidLeave() bool {
	switch s {
	case ShiftTypePTO, ShiftTypeSick, ShiftTypePersonal, ShiftTypeBereavement,
		ShiftTypeMaternity, ShiftTypePaternity, ShiftTypeJuryDuty:
		return true
	}
	return false
}

// IsValid reports whether the shift type is one of the known categories.
func (s ShiftType) IsValid() bool {
	return s.IsWork() || s.IsPaidLeave() || s == ShiftTypeUnpaid
}

// Shift represents a single logged shift (or leave day) against a job.
type Shift struct {
	ShiftID     string          `json:"shiftID"` // Primary Key (UUID)
	JobID       string          `json:"jobID"`
	UserID      string          `json:"userID"`
	WorkDate    time.Time       `json:"workDate"`
	ActualHours decimal.Decimal `json:"actualHours"` // Hours actually worked/credited

	ShiftType ShiftType `json:"shiftType"`

	// Per-shift pay overrides; nil means "not set".
	CustomHourlyRate  *decimal.Decimal `json:"customHourlyRate,omitempty"`
	IsHoliday         bool             `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal `json:"holidayMultiplier,omitempty"`
	HolidayFixedRate  *decimal.Decimal `json:"holidayFixedRate,omitempty"`

	Notes string `json:"notes,omitempty"`
	AuditFields
}
