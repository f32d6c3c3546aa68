package currencyfmt_test

import (
	"sort"
	"testing"

	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrency(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantCode string
	}{
		{name: "known code", code: "EUR", wantCode: "EUR"},
		{name: "lowercase code", code: "usd", wantCode: "USD"},
		{name: "mixed case code", code: "jPy", wantCode: "JPY"},
		{name: "padded code", code: " GBP ", wantCode: "GBP"},
		{name: "empty code falls back to USD", code: "", wantCode: "USD"},
		{name: "unknown code falls back to USD", code: "XXX", wantCode: "USD"},
		{name: "garbage falls back to USD", code: "not-a-code", wantCode: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := currencyfmt.GetCurrency(tt.code)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestGetCurrency_CaseInsensitiveEquality(t *testing.T) {
	for _, c := range currencyfmt.Currencies() {
		lower := currencyfmt.GetCurrency(c.Code)
		upper := currencyfmt.GetCurrency(c.Code)
		assert.Equal(t, upper, lower)
		assert.Equal(t, c.Code, lower.Code)
	}
}

func TestGetCurrency_SeparatorsAlwaysDiffer(t *testing.T) {
	for _, c := range currencyfmt.Currencies() {
		assert.NotEqual(t, c.ThousandsSeparator, c.DecimalSeparator,
			"currency %s must use distinct separators", c.Code)
	}
}

func TestGetCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", currencyfmt.GetCurrencySymbol("USD"))
	assert.Equal(t, "€", currencyfmt.GetCurrencySymbol("eur"))
	assert.Equal(t, "$", currencyfmt.GetCurrencySymbol("unknown"))
}

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, currencyfmt.IsSupportedCurrency("USD"))
	assert.True(t, currencyfmt.IsSupportedCurrency("sek"))
	assert.False(t, currencyfmt.IsSupportedCurrency(""))
	assert.False(t, currencyfmt.IsSupportedCurrency("XBT"))
}

func TestFormatCurrencyAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		code   string
		want   string
	}{
		{name: "USD pads cents", amount: decimal.NewFromFloat(1234.5), code: "USD", want: "$1,234.50"},
		{name: "USD rounds half up at the cent", amount: decimal.NewFromFloat(1234.567), code: "USD", want: "$1,234.57"},
		{name: "EUR symbol after with space", amount: decimal.NewFromFloat(1234.56), code: "EUR", want: "1 234,56 €"},
		{name: "JPY has no decimals", amount: decimal.NewFromInt(1234), code: "JPY", want: "¥1,234"},
		{name: "JPY rounds to whole yen", amount: decimal.NewFromFloat(1234.6), code: "JPY", want: "¥1,235"},
		{name: "grouping over a million", amount: decimal.NewFromFloat(1234567.89), code: "USD", want: "$1,234,567.89"},
		{name: "no grouping under a thousand", amount: decimal.NewFromFloat(999.99), code: "USD", want: "$999.99"},
		{name: "zero", amount: decimal.Zero, code: "USD", want: "$0.00"},
		{name: "negative before-symbol", amount: decimal.NewFromFloat(-1234.5), code: "USD", want: "-$1,234.50"},
		{name: "negative after-symbol", amount: decimal.NewFromFloat(-1234.56), code: "EUR", want: "-1 234,56 €"},
		{name: "unknown code formats as USD", amount: decimal.NewFromFloat(12.3), code: "ZZZ", want: "$12.30"},
		{name: "empty code formats as USD", amount: decimal.NewFromFloat(12.3), code: "", want: "$12.30"},
		{name: "lowercase code", amount: decimal.NewFromFloat(1234.56), code: "eur", want: "1 234,56 €"},
		{name: "swiss apostrophe grouping", amount: decimal.NewFromFloat(9876543.21), code: "CHF", want: "CHF9'876'543.21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := currencyfmt.FormatCurrencyAmount(tt.amount, tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCurrencyAmount_Deterministic(t *testing.T) {
	amount := decimal.NewFromFloat(98765.432)
	first := currencyfmt.FormatCurrencyAmount(amount, "SEK")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, currencyfmt.FormatCurrencyAmount(amount, "SEK"))
	}
}

func TestGetCurrencyOptions(t *testing.T) {
	options := currencyfmt.GetCurrencyOptions()
	require.Len(t, options, len(currencyfmt.Currencies()))

	assert.True(t, sort.SliceIsSorted(options, func(i, j int) bool {
		return options[i].FullLabel < options[j].FullLabel
	}), "options must be sorted by name")

	byCode := make(map[string]currencyfmt.Option, len(options))
	for _, o := range options {
		byCode[o.Code] = o
	}
	usd, ok := byCode["USD"]
	require.True(t, ok)
	assert.Equal(t, "US Dollar (USD)", usd.FullLabel)
	assert.Equal(t, "USD ($)", usd.ShortLabel)

	// Recomputed per call but stable.
	assert.Equal(t, options, currencyfmt.GetCurrencyOptions())
}
