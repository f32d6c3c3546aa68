package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift represents a logged shift row.
type Shift struct {
	ShiftID           string           `db:"shift_id"`
	JobID             string           `db:"job_id"`
	UserID            string           `db:"user_id"`
	WorkDate          time.Time        `db:"work_date"`
	ActualHours       decimal.Decimal  `db:"actual_hours"`
	ShiftType         string           `db:"shift_type"`
	CustomHourlyRate  *decimal.Decimal `db:"custom_hourly_rate"`
	IsHoliday         bool             `db:"is_holiday"`
	HolidayMultiplier *decimal.Decimal `db:"holiday_multiplier"`
	HolidayFixedRate  *decimal.Decimal `db:"holiday_fixed_rate"`
	Notes             string           `db:"notes"`
	AuditFields
}
