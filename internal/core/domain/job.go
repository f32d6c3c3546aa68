package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayType defines the billing model of a job.
type PayType string

const (
	PayTypeHourly  PayType = "hourly"
	PayTypeDaily   PayType = "daily"
	PayTypeMonthly PayType = "monthly"
	PayTypeSalary  PayType = "salary"
)

// IsValid reports whether the pay type is one of the known billing models.
func (p PayType) IsValid() bool {
	switch p {
	case PayTypeHourly, PayTypeDaily, PayTypeMonthly, PayTypeSalary:
		return true
	}
	return false
}

// Job represents a job a user tracks shifts against, together with its pay
// configuration. Exactly the rate field matching PayType is expected to be
// populated; the others stay nil.
type Job struct {
	JobID        string           `json:"jobID"` // Primary Key (UUID)
	UserID       string           `json:"userID"`
	Name         string           `json:"name"`
	PayType      PayType          `json:"payType"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate,omitempty"`
	DailyRate    *decimal.Decimal `json:"dailyRate,omitempty"`
	MonthlyRate  *decimal.Decimal `json:"monthlyRate,omitempty"`
	AnnualSalary *decimal.Decimal `json:"annualSalary,omitempty"`
	CurrencyCode string           `json:"currencyCode"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
