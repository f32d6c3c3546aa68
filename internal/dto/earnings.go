package dto

import (
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/shopspring/decimal"
)

// ShiftEarningsResponse defines the computed pay for a single shift.
// FormattedEarnings carries the amount rendered in the job's currency.
type ShiftEarningsResponse struct {
	ShiftID           string          `json:"shiftID"`
	JobID             string          `json:"jobID"`
	CurrencyCode      string          `json:"currencyCode"`
	EffectiveRate     decimal.Decimal `json:"effectiveRate"`
	Earnings          decimal.Decimal `json:"earnings"`
	FormattedEarnings string          `json:"formattedEarnings"`
}

// ToShiftEarningsResponse converts domain.ShiftEarnings to DTO, rendering the
// formatted amount from the currency's display rules.
func ToShiftEarningsResponse(e *domain.ShiftEarnings) ShiftEarningsResponse {
	return ShiftEarningsResponse{
		ShiftID:           e.ShiftID,
		JobID:             e.JobID,
		CurrencyCode:      e.CurrencyCode,
		EffectiveRate:     e.EffectiveRate,
		Earnings:          e.Earnings,
		FormattedEarnings: currencyfmt.FormatCurrencyAmount(e.Earnings, e.CurrencyCode),
	}
}

// EarningsSummaryResponse aggregates earnings for a job over a date range.
type EarningsSummaryResponse struct {
	JobID                  string          `json:"jobID"`
	CurrencyCode           string          `json:"currencyCode"`
	From                   time.Time       `json:"from"`
	To                     time.Time       `json:"to"`
	TotalEarnings          decimal.Decimal `json:"totalEarnings"`
	TotalHours             decimal.Decimal `json:"totalHours"`
	ShiftCount             int             `json:"shiftCount"`
	FormattedTotalEarnings string          `json:"formattedTotalEarnings"`
}

// ToEarningsSummaryResponse converts domain.EarningsSummary to DTO.
func ToEarningsSummaryResponse(s *domain.EarningsSummary) EarningsSummaryResponse {
	return EarningsSummaryResponse{
		JobID:                  s.JobID,
		CurrencyCode:           s.CurrencyCode,
		From:                   s.From,
		To:                     s.To,
		TotalEarnings:          s.TotalEarnings,
		TotalHours:             s.TotalHours,
		ShiftCount:             s.ShiftCount,
		FormattedTotalEarnings: currencyfmt.FormatCurrencyAmount(s.TotalEarnings, s.CurrencyCode),
	}
}
