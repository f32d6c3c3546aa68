package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftEarnings is the computed pay result for a single shift.
type ShiftEarnings struct {
	ShiftID       string          `json:"shiftID"`
	JobID         string          `json:"jobID"`
	CurrencyCode  string          `json:"currencyCode"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	Earnings      decimal.Decimal `json:"earnings"`
}

// EarningsSummary aggregates earnings for one job over a date range.
type EarningsSummary struct {
	JobID         string          `json:"jobID"`
	CurrencyCode  string          `json:"currencyCode"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	ShiftCount    int             `json:"shiftCount"`
}
