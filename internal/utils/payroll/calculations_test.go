package payroll_test

import (
	"testing"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/utils/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func hourlyJob(rate float64) *domain.Job {
	return &domain.Job{
		PayType:    domain.PayTypeHourly,
		HourlyRate: decimalPtr(decimal.NewFromFloat(rate)),
	}
}

func TestCalculateShiftEarnings(t *testing.T) {
	tests := []struct {
		name  string
		shift domain.Shift
		job   *domain.Job
		want  string
	}{
		{
			name:  "nil job yields zero",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
			job:   nil,
			want:  "0",
		},
		{
			name:  "hourly work shift",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
			job:   hourlyJob(20),
			want:  "160",
		},
		{
			name:  "hourly work shift with absent shift type",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(8)},
			job:   hourlyJob(20),
			want:  "160",
		},
		{
			name: "holiday multiplier scales hourly rate",
			shift: domain.Shift{
				ActualHours:       decimal.NewFromInt(8),
				ShiftType:         domain.ShiftTypeWork,
				IsHoliday:         true,
				HolidayMultiplier: decimalPtr(decimal.NewFromFloat(1.5)),
			},
			job:  hourlyJob(20),
			want: "240",
		},
		{
			name: "holiday fixed rate wins over multiplier and custom rate",
			shift: domain.Shift{
				ActualHours:       decimal.NewFromInt(8),
				ShiftType:         domain.ShiftTypeWork,
				IsHoliday:         true,
				HolidayFixedRate:  decimalPtr(decimal.NewFromInt(50)),
				HolidayMultiplier: decimalPtr(decimal.NewFromInt(2)),
				CustomHourlyRate:  decimalPtr(decimal.NewFromInt(30)),
			},
			job:  hourlyJob(20),
			want: "400",
		},
		{
			name: "custom rate replaces job rate",
			shift: domain.Shift{
				ActualHours:      decimal.NewFromInt(8),
				ShiftType:        domain.ShiftTypeWork,
				CustomHourlyRate: decimalPtr(decimal.NewFromInt(30)),
			},
			job:  hourlyJob(20),
			want: "240",
		},
		{
			name: "custom rate is the multiplier base on holidays",
			shift: domain.Shift{
				ActualHours:       decimal.NewFromInt(8),
				ShiftType:         domain.ShiftTypeWork,
				IsHoliday:         true,
				CustomHourlyRate:  decimalPtr(decimal.NewFromInt(30)),
				HolidayMultiplier: decimalPtr(decimal.NewFromInt(2)),
			},
			job:  hourlyJob(20),
			want: "480",
		},
		{
			name: "holiday without multiplier pays base rate",
			shift: domain.Shift{
				ActualHours: decimal.NewFromInt(8),
				ShiftType:   domain.ShiftTypeWork,
				IsHoliday:   true,
			},
			job:  hourlyJob(20),
			want: "160",
		},
		{
			name:  "daily job pays flat day rate regardless of hours",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(3), ShiftType: domain.ShiftTypeWork},
			job: &domain.Job{
				PayType:   domain.PayTypeDaily,
				DailyRate: decimalPtr(decimal.NewFromInt(150)),
			},
			want: "150",
		},
		{
			name:  "monthly job divides by 22 working days",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
			job: &domain.Job{
				PayType:     domain.PayTypeMonthly,
				MonthlyRate: decimalPtr(decimal.NewFromInt(2200)),
			},
			want: "100",
		},
		{
			name:  "salary job divides by 260 working days",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
			job: &domain.Job{
				PayType:      domain.PayTypeSalary,
				AnnualSalary: decimalPtr(decimal.NewFromInt(52000)),
			},
			want: "200",
		},
		{
			name:  "unpaid leave pays nothing",
			shift: domain.Shift{ShiftType: domain.ShiftTypeUnpaid},
			job:   hourlyJob(20),
			want:  "0",
		},
		{
			name:  "pto on a daily job pays the day rate regardless of hours",
			shift: domain.Shift{ActualHours: decimal.Zero, ShiftType: domain.ShiftTypePTO},
			job: &domain.Job{
				PayType:   domain.PayTypeDaily,
				DailyRate: decimalPtr(decimal.NewFromInt(100)),
			},
			want: "100",
		},
		{
			name:  "sick leave on a monthly job uses the 30.44 average",
			shift: domain.Shift{ShiftType: domain.ShiftTypeSick},
			job: &domain.Job{
				PayType:     domain.PayTypeMonthly,
				MonthlyRate: decimalPtr(decimal.NewFromInt(3044)),
			},
			want: "100",
		},
		{
			name:  "jury duty on a salary job uses 365 calendar days",
			shift: domain.Shift{ShiftType: domain.ShiftTypeJuryDuty},
			job: &domain.Job{
				PayType:      domain.PayTypeSalary,
				AnnualSalary: decimalPtr(decimal.NewFromInt(36500)),
			},
			want: "100",
		},
		{
			name: "paid leave ignores holiday and custom-rate fields",
			shift: domain.Shift{
				ActualHours:       decimal.NewFromInt(8),
				ShiftType:         domain.ShiftTypePTO,
				IsHoliday:         true,
				HolidayMultiplier: decimalPtr(decimal.NewFromInt(3)),
				CustomHourlyRate:  decimalPtr(decimal.NewFromInt(99)),
			},
			job:  hourlyJob(20),
			want: "160",
		},
		{
			name:  "nil rate fields are treated as zero",
			shift: domain.Shift{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
			job:   &domain.Job{PayType: domain.PayTypeHourly},
			want:  "0",
		},
		{
			name:  "fractional hours round at the cent only",
			shift: domain.Shift{ActualHours: decimal.NewFromFloat(7.33), ShiftType: domain.ShiftTypeWork},
			job:   hourlyJob(20.555),
			want:  "150.67", // 7.33 * 20.555 = 150.66815
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payroll.CalculateShiftEarnings(tt.shift, tt.job)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestCalculateShiftEarnings_AlwaysTwoDecimalPlaces(t *testing.T) {
	// Divisions by 30.44, 22, 260 and 365 produce long fractions; the result
	// must still land exactly on a cent.
	jobs := []*domain.Job{
		{PayType: domain.PayTypeMonthly, MonthlyRate: decimalPtr(decimal.NewFromFloat(3333.33))},
		{PayType: domain.PayTypeSalary, AnnualSalary: decimalPtr(decimal.NewFromFloat(54321.99))},
		{PayType: domain.PayTypeDaily, DailyRate: decimalPtr(decimal.NewFromFloat(123.456))},
		{PayType: domain.PayTypeHourly, HourlyRate: decimalPtr(decimal.NewFromFloat(19.99))},
	}
	shifts := []domain.Shift{
		{ActualHours: decimal.NewFromFloat(7.77), ShiftType: domain.ShiftTypeWork},
		{ActualHours: decimal.NewFromFloat(8.25), ShiftType: domain.ShiftTypePTO},
		{ShiftType: domain.ShiftTypeSick},
		{ShiftType: domain.ShiftTypeUnpaid},
	}

	for _, job := range jobs {
		for _, shift := range shifts {
			earnings := payroll.CalculateShiftEarnings(shift, job)
			cents := earnings.Mul(decimal.NewFromInt(100))
			assert.True(t, cents.Equal(cents.Truncate(0)),
				"earnings %s for pay type %s not rounded to cents", earnings, job.PayType)
		}
	}
}

func TestCalculateEffectiveRate(t *testing.T) {
	jobRate := decimal.NewFromInt(20)

	tests := []struct {
		name  string
		shift domain.Shift
		want  string
	}{
		{name: "plain work shift", shift: domain.Shift{ShiftType: domain.ShiftTypeWork}, want: "20"},
		{name: "absent shift type counts as work", shift: domain.Shift{}, want: "20"},
		{name: "paid leave pays the plain job rate", shift: domain.Shift{ShiftType: domain.ShiftTypePTO}, want: "20"},
		{
			name: "paid leave ignores custom rate and multiplier",
			shift: domain.Shift{
				ShiftType:         domain.ShiftTypeSick,
				IsHoliday:         true,
				CustomHourlyRate:  decimalPtr(decimal.NewFromInt(35)),
				HolidayMultiplier: decimalPtr(decimal.NewFromInt(2)),
			},
			want: "20",
		},
		{name: "unpaid leave rate is zero", shift: domain.Shift{ShiftType: domain.ShiftTypeUnpaid}, want: "0"},
		{
			name: "holiday fixed rate short-circuits",
			shift: domain.Shift{
				ShiftType:         domain.ShiftTypeWork,
				IsHoliday:         true,
				HolidayFixedRate:  decimalPtr(decimal.NewFromInt(50)),
				HolidayMultiplier: decimalPtr(decimal.NewFromInt(2)),
				CustomHourlyRate:  decimalPtr(decimal.NewFromInt(30)),
			},
			want: "50",
		},
		{
			name: "fixed rate requires the holiday flag",
			shift: domain.Shift{
				ShiftType:        domain.ShiftTypeWork,
				HolidayFixedRate: decimalPtr(decimal.NewFromInt(50)),
			},
			want: "20",
		},
		{
			name: "custom rate replaces job rate",
			shift: domain.Shift{
				ShiftType:        domain.ShiftTypeWork,
				CustomHourlyRate: decimalPtr(decimal.NewFromFloat(27.5)),
			},
			want: "27.5",
		},
		{
			name: "multiplier applies to custom rate on holidays",
			shift: domain.Shift{
				ShiftType:         domain.ShiftTypeWork,
				IsHoliday:         true,
				CustomHourlyRate:  decimalPtr(decimal.NewFromInt(30)),
				HolidayMultiplier: decimalPtr(decimal.NewFromFloat(1.5)),
			},
			want: "45",
		},
		{
			name: "multiplier applies to job rate when no custom rate",
			shift: domain.Shift{
				ShiftType:         domain.ShiftTypeWork,
				IsHoliday:         true,
				HolidayMultiplier: decimalPtr(decimal.NewFromFloat(1.5)),
			},
			want: "30",
		},
		{
			name: "multiplier ignored off-holiday",
			shift: domain.Shift{
				ShiftType:         domain.ShiftTypeWork,
				HolidayMultiplier: decimalPtr(decimal.NewFromInt(2)),
			},
			want: "20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payroll.CalculateEffectiveRate(tt.shift, jobRate)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestEarningsAndEffectiveRateAgree(t *testing.T) {
	// The hourly earnings path must use exactly the rate the standalone
	// function resolves.
	shifts := []domain.Shift{
		{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
		{ActualHours: decimal.NewFromFloat(7.5), ShiftType: domain.ShiftTypeWork, IsHoliday: true, HolidayMultiplier: decimalPtr(decimal.NewFromFloat(1.5))},
		{ActualHours: decimal.NewFromFloat(6.25), ShiftType: domain.ShiftTypeWork, IsHoliday: true, HolidayFixedRate: decimalPtr(decimal.NewFromFloat(42.42))},
		{ActualHours: decimal.NewFromInt(4), ShiftType: domain.ShiftTypeWork, CustomHourlyRate: decimalPtr(decimal.NewFromFloat(31.31))},
		{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypePTO},
		{ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeUnpaid},
	}

	job := hourlyJob(20.2)
	for _, shift := range shifts {
		rate := payroll.CalculateEffectiveRate(shift, *job.HourlyRate)
		var want decimal.Decimal
		if shift.ShiftType.IsPaidLeave() {
			// Leave earnings use the base-pay path, not the effective rate.
			want = shift.ActualHours.Mul(*job.HourlyRate).Round(2)
		} else {
			want = shift.ActualHours.Mul(rate).Round(2)
		}
		got := payroll.CalculateShiftEarnings(shift, job)
		assert.True(t, got.Equal(want), "shift %+v: got %s, want %s", shift, got, want)
	}
}
