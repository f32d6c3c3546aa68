package dto

import (
	"time"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/shopspring/decimal"
)

// CreateMoneyRecordRequest defines data for logging an income or expense entry.
type CreateMoneyRecordRequest struct {
	RecordType   domain.RecordType `json:"recordType" binding:"required,oneof=income expense"`
	Amount       decimal.Decimal   `json:"amount" binding:"required"`
	CurrencyCode string            `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	Category     string            `json:"category" binding:"required"`
	Notes        string            `json:"notes"`
	OccurredOn   time.Time         `json:"occurredOn" binding:"required" time_format:"2006-01-02"`
}

// UpdateMoneyRecordRequest defines data allowed for updating a record.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateMoneyRecordRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	Category     *string          `json:"category"`
	Notes        *string          `json:"notes"`
	OccurredOn   *time.Time       `json:"occurredOn"`
}

// ListRecordsParams defines query parameters for listing money records.
type ListRecordsParams struct {
	RecordType string    `form:"recordType" binding:"omitempty,oneof=income expense"`
	From       time.Time `form:"from" time_format:"2006-01-02"`
	To         time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int       `form:"limit,default=50"`
	Offset     int       `form:"offset,default=0"`
}

// MoneyRecordResponse defines data returned for a money record.
type MoneyRecordResponse struct {
	RecordID        string            `json:"recordID"`
	UserID          string            `json:"userID"`
	RecordType      domain.RecordType `json:"recordType"`
	Amount          decimal.Decimal   `json:"amount"`
	CurrencyCode    string            `json:"currencyCode"`
	FormattedAmount string            `json:"formattedAmount"`
	Category        string            `json:"category"`
	Notes           string            `json:"notes,omitempty"`
	OccurredOn      time.Time         `json:"occurredOn"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastUpdatedAt   time.Time         `json:"lastUpdatedAt"`
}

// ToMoneyRecordResponse converts domain.MoneyRecord to DTO.
func ToMoneyRecordResponse(r *domain.MoneyRecord) MoneyRecordResponse {
	return MoneyRecordResponse{
		RecordID:        r.RecordID,
		UserID:          r.UserID,
		RecordType:      r.RecordType,
		Amount:          r.Amount,
		CurrencyCode:    r.CurrencyCode,
		FormattedAmount: currencyfmt.FormatCurrencyAmount(r.Amount, r.CurrencyCode),
		Category:        r.Category,
		Notes:           r.Notes,
		OccurredOn:      r.OccurredOn,
		CreatedAt:       r.CreatedAt,
		LastUpdatedAt:   r.LastUpdatedAt,
	}
}

// ListMoneyRecordsResponse wraps a list of money records.
type ListMoneyRecordsResponse struct {
	Records []MoneyRecordResponse `json:"records"`
}

// ToListMoneyRecordsResponse converts a slice of domain.MoneyRecord to DTO.
func ToListMoneyRecordsResponse(records []domain.MoneyRecord) ListMoneyRecordsResponse {
	list := make([]MoneyRecordResponse, len(records))
	for i, r := range records {
		list[i] = ToMoneyRecordResponse(&r)
	}
	return ListMoneyRecordsResponse{Records: list}
}

// CategoryTotalResponse aggregates one category's records in a query range.
type CategoryTotalResponse struct {
	Category       string          `json:"category"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
	Count          int             `json:"count"`
}

// ToCategoryTotalsResponse converts category aggregates to DTOs, formatting
// each total in the given currency.
func ToCategoryTotalsResponse(totals []domain.CategoryTotal, currencyCode string) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{
			Category:       t.Category,
			Total:          t.Total,
			FormattedTotal: currencyfmt.FormatCurrencyAmount(t.Total, currencyCode),
			Count:          t.Count,
		}
	}
	return res
}
