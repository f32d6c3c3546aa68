package domain

// UserSettings holds per-user display preferences.
type UserSettings struct {
	UserID       string `json:"userID"` // Primary Key, references users
	CurrencyCode string `json:"currencyCode"`
	Language     string `json:"language"`
	WeekStartDay int    `json:"weekStartDay"` // 0 = Sunday ... 6 = Saturday
	AuditFields
}
