package services_test

import (
	"context"
	"testing"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/core/services"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	var currency *domain.Currency
	if args.Get(0) != nil {
		currency = args.Get(0).(*domain.Currency)
	}
	return currency, args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	var currencies []domain.Currency
	if args.Get(0) != nil {
		currencies = args.Get(0).([]domain.Currency)
	}
	return currencies, args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "ZZZ")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencyOptions_CoversStaticTable() {
	options := suite.service.ListCurrencyOptions(context.Background())

	suite.Len(options, len(currencyfmt.Currencies()))
	codes := make(map[string]bool, len(options))
	for _, opt := range options {
		codes[opt.Code] = true
		suite.NotEmpty(opt.FullLabel)
		suite.NotEmpty(opt.ShortLabel)
	}
	suite.True(codes[currencyfmt.DefaultCurrencyCode])
}

func (suite *CurrencyServiceTestSuite) TestEnsureReferenceCurrencies_UpsertsEveryCurrency() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).
		Return(nil).
		Times(len(currencyfmt.Currencies()))

	err := suite.service.EnsureReferenceCurrencies(ctx)

	suite.Require().NoError(err)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
