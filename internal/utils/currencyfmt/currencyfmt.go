// Package currencyfmt renders monetary amounts as locale-correct display
// strings based on a static currency reference table. Lookups never fail:
// unknown, empty or lowercase codes all degrade to the USD entry.
package currencyfmt

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// GetCurrency resolves a currency code (case-insensitively) against the
// reference table. Empty or unknown codes return the USD entry.
func GetCurrency(code string) Currency {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if c, ok := currencyByCode[normalized]; ok {
		return c
	}
	return currencyByCode[DefaultCurrencyCode]
}

// GetCurrencySymbol returns the display symbol for a currency code.
func GetCurrencySymbol(code string) string {
	return GetCurrency(code).Symbol
}

// IsSupportedCurrency reports whether the code resolves to a table entry,
// case-insensitively.
func IsSupportedCurrency(code string) bool {
	_, ok := currencyByCode[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// FormatCurrencyAmount renders an amount in the display format of the given
// currency: rounded to the currency's decimal places (half away from zero),
// integer digits grouped in threes, and the symbol placed per the table.
// The sign always precedes both symbol and digits.
// Example: 1234.56 with EUR renders as "1 234,56 €".
func FormatCurrencyAmount(amount decimal.Decimal, code string) string {
	currency := GetCurrency(code)

	rounded := amount.Round(int32(currency.DecimalPlaces))
	negative := rounded.IsNegative()
	fixed := rounded.Abs().StringFixed(int32(currency.DecimalPlaces))

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart, fracPart = fixed[:idx], fixed[idx+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if currency.SymbolPosition == SymbolBefore {
		b.WriteString(currency.Symbol)
	}
	b.WriteString(groupThousands(intPart, currency.ThousandsSeparator))
	if currency.DecimalPlaces > 0 {
		b.WriteString(currency.DecimalSeparator)
		b.WriteString(fracPart)
	}
	if currency.SymbolPosition == SymbolAfter {
		b.WriteByte(' ')
		b.WriteString(currency.Symbol)
	}
	return b.String()
}

// groupThousands inserts the separator every three digits from the right.
func groupThousands(digits string, separator string) string {
	n := len(digits)
	if n <= 3 || separator == "" {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Option is a single dropdown entry for currency pickers.
type Option struct {
	Code       string `json:"code"`
	FullLabel  string `json:"fullLabel"`  // e.g., "US Dollar (USD)"
	ShortLabel string `json:"shortLabel"` // e.g., "USD ($)"
}

// GetCurrencyOptions derives UI options from the reference table, sorted by
// currency name. The slice is rebuilt on each call and is safe to mutate.
func GetCurrencyOptions() []Option {
	options := make([]Option, 0, len(currencies))
	for _, c := range currencies {
		options = append(options, Option{
			Code:       c.Code,
			FullLabel:  c.Name + " (" + c.Code + ")",
			ShortLabel: c.Code + " (" + c.Symbol + ")",
		})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].FullLabel < options[j].FullLabel
	})
	return options
}
