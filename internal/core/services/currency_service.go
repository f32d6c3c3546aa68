package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portsrepo "github.com/shifttally/shift_tally_app/internal/core/ports/repositories"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/shifttally/shift_tally_app/internal/utils/mapping"
)

// seedActor is recorded as the creator of seeded reference rows.
const seedActor = "system"

// currencyService serves the read-only currency reference data and seeds the
// currencies table from the static table at startup.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ListCurrencyOptions serves dropdown options straight from the static table;
// no repository round trip needed.
func (s *currencyService) ListCurrencyOptions(ctx context.Context) []currencyfmt.Option {
	return currencyfmt.GetCurrencyOptions()
}

// EnsureReferenceCurrencies upserts every reference currency. Run at startup
// so the currencies table always mirrors the static table.
func (s *currencyService) EnsureReferenceCurrencies(ctx context.Context) error {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     seedActor,
		LastUpdatedAt: now,
		LastUpdatedBy: seedActor,
	}

	for _, ref := range currencyfmt.Currencies() {
		currency := mapping.FromReferenceCurrency(ref, audit)
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			s.LogError(ctx, err, "Failed to seed currency", slog.String("currency_code", ref.Code))
			return fmt.Errorf("failed to seed currency %s: %w", ref.Code, err)
		}
	}

	s.LogInfo(ctx, "Reference currencies seeded", slog.Int("count", len(currencyfmt.Currencies())))
	return nil
}
