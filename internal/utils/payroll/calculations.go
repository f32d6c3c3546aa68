// Package payroll computes money earned for a single shift from the owning
// job's pay configuration. All functions are pure: nil jobs and nil numeric
// fields degrade to zero instead of failing.
package payroll

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Day-count conventions. Paid leave is credited using calendar averages,
// regular monthly/salary work shifts using working-day averages.
var (
	avgDaysPerMonth  = decimal.NewFromFloat(30.44)
	daysPerYear      = decimal.NewFromInt(365)
	workDaysPerMonth = decimal.NewFromInt(22)
	workDaysPerYear  = decimal.NewFromInt(260)
)

// CalculateShiftEarnings returns the total earnings for one shift, rounded to
// two decimal places as the final step. A nil job always yields zero.
func CalculateShiftEarnings(shift domain.Shift, job *domain.Job) decimal.Decimal {
	if job == nil {
		return decimal.Zero
	}

	// Leave shifts are terminal: no holiday or custom-rate logic applies.
	if !shift.ShiftType.IsWork() {
		if !shift.ShiftType.IsPaidLeave() {
			return decimal.Zero
		}
		return leaveBasePay(shift, job).Round(2)
	}

	switch job.PayType {
	case domain.PayTypeDaily:
		// Flat day rate, hours are ignored.
		return orZero(job.DailyRate).Round(2)
	case domain.PayTypeMonthly:
		return orZero(job.MonthlyRate).Div(workDaysPerMonth).Round(2)
	case domain.PayTypeSalary:
		return orZero(job.AnnualSalary).Div(workDaysPerYear).Round(2)
	default:
		rate := CalculateEffectiveRate(shift, orZero(job.HourlyRate))
		return shift.ActualHours.Mul(rate).Round(2)
	}
}

// leaveBasePay is one day/period of base pay at the job's configured rate.
func leaveBasePay(shift domain.Shift, job *domain.Job) decimal.Decimal {
	switch job.PayType {
	case domain.PayTypeDaily:
		return orZero(job.DailyRate)
	case domain.PayTypeMonthly:
		return orZero(job.MonthlyRate).Div(avgDaysPerMonth)
	case domain.PayTypeSalary:
		return orZero(job.AnnualSalary).Div(daysPerYear)
	default:
		return shift.ActualHours.Mul(orZero(job.HourlyRate))
	}
}

// CalculateEffectiveRate resolves the per-hour rate applied to a shift.
// Rules are evaluated top to bottom, first match wins:
//  1. paid leave pays the plain job rate; unpaid leave pays zero
//  2. a holiday fixed rate overrides everything else
//  3. the custom per-shift rate replaces the job rate as the base
//  4. on holidays the base is scaled by the holiday multiplier
func CalculateEffectiveRate(shift domain.Shift, jobRate decimal.Decimal) decimal.Decimal {
	if !shift.ShiftType.IsWork() {
		if shift.ShiftType.IsPaidLeave() {
			return jobRate
		}
		return decimal.Zero
	}

	if shift.IsHoliday && shift.HolidayFixedRate != nil {
		return *shift.HolidayFixedRate
	}

	base := jobRate
	if shift.CustomHourlyRate != nil {
		base = *shift.CustomHourlyRate
	}

	if shift.IsHoliday && shift.HolidayMultiplier != nil {
		return base.Mul(*shift.HolidayMultiplier)
	}
	return base
}

// orZero treats an absent numeric field as zero.
func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
