package mapping

import (
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/models"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode:       d.CurrencyCode,
		Symbol:             d.Symbol,
		Name:               d.Name,
		SymbolPosition:     d.SymbolPosition,
		DecimalPlaces:      d.DecimalPlaces,
		ThousandsSeparator: d.ThousandsSeparator,
		DecimalSeparator:   d.DecimalSeparator,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode:       m.CurrencyCode,
		Symbol:             m.Symbol,
		Name:               m.Name,
		SymbolPosition:     m.SymbolPosition,
		DecimalPlaces:      m.DecimalPlaces,
		ThousandsSeparator: m.ThousandsSeparator,
		DecimalSeparator:   m.DecimalSeparator,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// FromReferenceCurrency converts a static reference table entry to a domain
// Currency; used when seeding the currencies table at startup.
func FromReferenceCurrency(c currencyfmt.Currency, audit domain.AuditFields) domain.Currency {
	return domain.Currency{
		CurrencyCode:       c.Code,
		Symbol:             c.Symbol,
		Name:               c.Name,
		SymbolPosition:     string(c.SymbolPosition),
		DecimalPlaces:      c.DecimalPlaces,
		ThousandsSeparator: c.ThousandsSeparator,
		DecimalSeparator:   c.DecimalSeparator,
		AuditFields:        audit,
	}
}
