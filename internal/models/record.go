package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyRecord represents an income or expense row.
type MoneyRecord struct {
	RecordID     string          `db:"record_id"`
	UserID       string          `db:"user_id"`
	RecordType   string          `db:"record_type"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Category     string          `db:"category"`
	Notes        string          `db:"notes"`
	OccurredOn   time.Time       `db:"occurred_on"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
