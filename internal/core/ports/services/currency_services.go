package services

import (
	"context"

	"github.com/shifttally/shift_tally_app/internal/core/domain"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
)

// CurrencyReaderSvc defines read operations for currency reference data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListCurrencyOptions returns name-sorted dropdown options for the UI.
	ListCurrencyOptions(ctx context.Context) []currencyfmt.Option
}

// CurrencySeederSvc seeds the currencies table from the static reference
// table. The table is hand-maintained; there is no user-facing write path.
type CurrencySeederSvc interface {
	// EnsureReferenceCurrencies upserts every reference currency at startup.
	EnsureReferenceCurrencies(ctx context.Context) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencySeederSvc
}
