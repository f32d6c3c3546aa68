package dto

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
)

// CurrencyResponse defines the data returned for a currency, including the
// formatting rules a client needs to render amounts itself.
type CurrencyResponse struct {
	CurrencyCode       string `json:"currencyCode"`
	Symbol             string `json:"symbol"`
	Name               string `json:"name"`
	SymbolPosition     string `json:"symbolPosition"`
	DecimalPlaces      int    `json:"decimalPlaces"`
	ThousandsSeparator string `json:"thousandsSeparator"`
	DecimalSeparator   string `json:"decimalSeparator"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:       curr.CurrencyCode,
		Symbol:             curr.Symbol,
		Name:               curr.Name,
		SymbolPosition:     curr.SymbolPosition,
		DecimalPlaces:      curr.DecimalPlaces,
		ThousandsSeparator: curr.ThousandsSeparator,
		DecimalSeparator:   curr.DecimalSeparator,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr) // Reuse the single converter
	}
	return res
}

// CurrencyOptionResponse is a dropdown-ready currency entry.
type CurrencyOptionResponse struct {
	Code       string `json:"code"`
	FullLabel  string `json:"fullLabel"`  // e.g. "US Dollar (USD)"
	ShortLabel string `json:"shortLabel"` // e.g. "USD ($)"
}

// ToCurrencyOptionsResponse converts reference options to DTOs.
func ToCurrencyOptionsResponse(opts []currencyfmt.Option) []CurrencyOptionResponse {
	res := make([]CurrencyOptionResponse, len(opts))
	for i, o := range opts {
		res[i] = CurrencyOptionResponse{
			Code:       o.Code,
			FullLabel:  o.FullLabel,
			ShortLabel: o.ShortLabel,
		}
	}
	return res
}
