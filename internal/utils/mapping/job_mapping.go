package mapping

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/models"
)

// ToModelJob converts a domain Job to a model Job
func ToModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:        d.JobID,
		UserID:       d.UserID,
		Name:         d.Name,
		PayType:      string(d.PayType),
		HourlyRate:   d.HourlyRate,
		DailyRate:    d.DailyRate,
		MonthlyRate:  d.MonthlyRate,
		AnnualSalary: d.AnnualSalary,
		CurrencyCode: d.CurrencyCode,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:        m.JobID,
		UserID:       m.UserID,
		Name:         m.Name,
		PayType:      domain.PayType(m.PayType),
		HourlyRate:   m.HourlyRate,
		DailyRate:    m.DailyRate,
		MonthlyRate:  m.MonthlyRate,
		AnnualSalary: m.AnnualSalary,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainJobSlice converts a slice of model Jobs to a slice of domain Jobs
func ToDomainJobSlice(ms []models.Job) []domain.Job {
	ds := make([]domain.Job, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJob(m)
	}
	return ds
}
