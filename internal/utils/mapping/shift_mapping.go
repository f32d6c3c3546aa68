package mapping

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:           d.ShiftID,
		JobID:             d.JobID,
		UserID:            d.UserID,
		WorkDate:          d.WorkDate,
		ActualHours:       d.ActualHours,
		ShiftType:         string(d.ShiftType),
		CustomHourlyRate:  d.CustomHourlyRate,
		IsHoliday:         d.IsHoliday,
		HolidayMultiplier: d.HolidayMultiplier,
		HolidayFixedRate:  d.HolidayFixedRate,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:           m.ShiftID,
		JobID:             m.JobID,
		UserID:            m.UserID,
		WorkDate:          m.WorkDate,
		ActualHours:       m.ActualHours,
		ShiftType:         domain.ShiftType(m.ShiftType),
		CustomHourlyRate:  m.CustomHourlyRate,
		IsHoliday:         m.IsHoliday,
		HolidayMultiplier: m.HolidayMultiplier,
		HolidayFixedRate:  m.HolidayFixedRate,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
