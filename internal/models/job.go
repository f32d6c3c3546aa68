package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job represents a job row with its pay configuration.
// Rate columns are nullable; only the one matching pay_type is expected set.
type Job struct {
	JobID        string           `db:"job_id"`
	UserID       string           `db:"user_id"`
	Name         string           `db:"name"`
	PayType      string           `db:"pay_type"`
	HourlyRate   *decimal.Decimal `db:"hourly_rate"`
	DailyRate    *decimal.Decimal `db:"daily_rate"`
	MonthlyRate  *decimal.Decimal `db:"monthly_rate"`
	AnnualSalary *decimal.Decimal `db:"annual_salary"`
	CurrencyCode string           `db:"currency_code"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
