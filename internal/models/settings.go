package models

// UserSettings represents a per-user settings row.
type UserSettings struct {
	UserID       string `db:"user_id"`
	CurrencyCode string `db:"currency_code"`
	Language     string `db:"language"`
	WeekStartDay int    `db:"week_start_day"`
	AuditFields
}
