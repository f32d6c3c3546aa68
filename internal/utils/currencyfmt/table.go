package currencyfmt

// Currency describes the display formatting rules for one currency.
type Currency struct {
	Code               string `json:"code"`   // 3-letter uppercase code (e.g., "USD")
	Symbol             string `json:"symbol"` // e.g., "$"
	Name               string `json:"name"`   // e.g., "US Dollar"
	SymbolPosition     SymbolPosition `json:"symbolPosition"`
	DecimalPlaces      int    `json:"decimalPlaces"`
	ThousandsSeparator string `json:"thousandsSeparator"`
	DecimalSeparator   string `json:"decimalSeparator"`
}

// SymbolPosition says on which side of the amount the symbol is rendered.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// DefaultCurrencyCode is the fallback for unknown or missing codes.
const DefaultCurrencyCode = "USD"

// currencies is the closed, hand-maintained reference table. It is built once
// at init and never mutated; there is no registration path.
var currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "EUR", Symbol: "€", Name: "Euro", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "GBP", Symbol: "£", Name: "British Pound", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", SymbolPosition: SymbolBefore, DecimalPlaces: 0, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "CAD", Symbol: "$", Name: "Canadian Dollar", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "AUD", Symbol: "$", Name: "Australian Dollar", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "NZD", Symbol: "$", Name: "New Zealand Dollar", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: "'", DecimalSeparator: "."},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "HKD", Symbol: "$", Name: "Hong Kong Dollar", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "SGD", Symbol: "$", Name: "Singapore Dollar", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won", SymbolPosition: SymbolBefore, DecimalPlaces: 0, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: ".", DecimalSeparator: ","},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint", SymbolPosition: SymbolAfter, DecimalPlaces: 0, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "RON", Symbol: "lei", Name: "Romanian Leu", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: ".", DecimalSeparator: ","},
	{Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: ","},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ".", DecimalSeparator: ","},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ".", DecimalSeparator: ","},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: " ", DecimalSeparator: "."},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal", SymbolPosition: SymbolAfter, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso", SymbolPosition: SymbolBefore, DecimalPlaces: 2, ThousandsSeparator: ",", DecimalSeparator: "."},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah", SymbolPosition: SymbolBefore, DecimalPlaces: 0, ThousandsSeparator: ".", DecimalSeparator: ","},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong", SymbolPosition: SymbolAfter, DecimalPlaces: 0, ThousandsSeparator: ".", DecimalSeparator: ","},
}

// currencyByCode is the lookup index over the reference table.
var currencyByCode = func() map[string]Currency {
	m := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		m[c.Code] = c
	}
	return m
}()

// Currencies returns a copy of the full reference table in declaration order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}
