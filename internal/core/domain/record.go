package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType distinguishes money coming in from money going out.
type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

// IsValid reports whether the record type is known.
func (r RecordType) IsValid() bool {
	return r == RecordTypeIncome || r == RecordTypeExpense
}

// MoneyRecord represents a single income or expense entry logged by a user.
type MoneyRecord struct {
	RecordID     string          `json:"recordID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`
	RecordType   RecordType      `json:"recordType"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Category     string          `json:"category"`
	Notes        string          `json:"notes,omitempty"`
	OccurredOn   time.Time       `json:"occurredOn"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// CategoryTotal aggregates records of one category within a query range.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}
