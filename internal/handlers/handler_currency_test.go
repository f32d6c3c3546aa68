package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/core/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/handlers"
	"github.com/shifttally/shift_tally_app/internal/platform/config"
	"github.com/shifttally/shift_tally_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// --- Mock CurrencyRepository (drives the real currency service) ---
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
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockRepo     *MockCurrencyRepository
	testUserID   string
	bearerHeader string
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRepo = new(MockCurrencyRepository)
	suite.testUserID = uuid.NewString()

	token, err := utils.GenerateJWT(suite.testUserID, testJWTSecret, time.Hour, "shift-tally-app")
	suite.Require().NoError(err)
	suite.bearerHeader = "Bearer " + token

	// Swagger routes stay off under IsProduction, so only the API surface is
	// registered. Services other than Currency are never reached here.
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Currency: services.NewCurrencyService(suite.mockRepo),
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_Success() {
	currency := &domain.Currency{
		CurrencyCode:  "USD",
		Symbol:        "$",
		Name:          "US Dollar",
		DecimalPlaces: 2,
	}
	suite.mockRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(currency, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/usd", nil)
	req.Header.Set("Authorization", suite.bearerHeader)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal("$", resp.Symbol)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockRepo.On("FindCurrencyByCode", mock.Anything, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/ZZZ", nil)
	req.Header.Set("Authorization", suite.bearerHeader)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_RequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencyOptions_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/options", nil)
	req.Header.Set("Authorization", suite.bearerHeader)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyOptionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp)
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
