package models

// Currency represents a supported currency row, mirroring the static
// reference table used for display formatting.
type Currency struct {
	CurrencyCode       string `db:"currency_code"` // Primary Key (e.g., "USD")
	Symbol             string `db:"symbol"`
	Name               string `db:"name"`
	SymbolPosition     string `db:"symbol_position"` // "before" or "after"
	DecimalPlaces      int    `db:"decimal_places"`
	ThousandsSeparator string `db:"thousands_separator"`
	DecimalSeparator   string `db:"decimal_separator"`
	AuditFields
}
