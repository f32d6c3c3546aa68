package dto

import (
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJobRequest defines data for creating a new job.
// Only the rate matching payType needs to be set.
type CreateJobRequest struct {
	Name         string           `json:"name" binding:"required"`
	PayType      domain.PayType   `json:"payType" binding:"required,oneof=hourly daily monthly salary"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate"`
	DailyRate    *decimal.Decimal `json:"dailyRate"`
	MonthlyRate  *decimal.Decimal `json:"monthlyRate"`
	AnnualSalary *decimal.Decimal `json:"annualSalary"`
	CurrencyCode string           `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// UpdateJobRequest defines data allowed for updating a job.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateJobRequest struct {
	Name         *string          `json:"name"`
	PayType      *domain.PayType  `json:"payType" binding:"omitempty,oneof=hourly daily monthly salary"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate"`
	DailyRate    *decimal.Decimal `json:"dailyRate"`
	MonthlyRate  *decimal.Decimal `json:"monthlyRate"`
	AnnualSalary *decimal.Decimal `json:"annualSalary"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// JobResponse defines data returned for a job.
type JobResponse struct {
	JobID         string           `json:"jobID"`
	UserID        string           `json:"userID"`
	Name          string           `json:"name"`
	PayType       domain.PayType   `json:"payType"`
	HourlyRate    *decimal.Decimal `json:"hourlyRate,omitempty"`
	DailyRate     *decimal.Decimal `json:"dailyRate,omitempty"`
	MonthlyRate   *decimal.Decimal `json:"monthlyRate,omitempty"`
	AnnualSalary  *decimal.Decimal `json:"annualSalary,omitempty"`
	CurrencyCode  string           `json:"currencyCode"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToJobResponse converts domain.Job to DTO.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:         j.JobID,
		UserID:        j.UserID,
		Name:          j.Name,
		PayType:       j.PayType,
		HourlyRate:    j.HourlyRate,
		DailyRate:     j.DailyRate,
		MonthlyRate:   j.MonthlyRate,
		AnnualSalary:  j.AnnualSalary,
		CurrencyCode:  j.CurrencyCode,
		CreatedAt:     j.CreatedAt,
		LastUpdatedAt: j.LastUpdatedAt,
	}
}

// ListJobsResponse wraps a list of jobs.
type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// ToListJobsResponse converts a slice of domain.Job to DTO.
func ToListJobsResponse(jobs []domain.Job) ListJobsResponse {
	list := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		list[i] = ToJobResponse(&j)
	}
	return ListJobsResponse{Jobs: list}
}
