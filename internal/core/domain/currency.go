package domain

// Currency represents a supported currency in the domain.
// Rows in the currencies table mirror the static reference table used for
// display formatting; the table is seeded at startup and is not user-editable.
type Currency struct {
	CurrencyCode       string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol             string `json:"symbol"`       // e.g., "$"
	Name               string `json:"name"`         // e.g., "US Dollar"
	SymbolPosition     string `json:"symbolPosition"` // "before" or "after"
	DecimalPlaces      int    `json:"decimalPlaces"`
	ThousandsSeparator string `json:"thousandsSeparator"`
	DecimalSeparator   string `json:"decimalSeparator"`
	AuditFields
}
