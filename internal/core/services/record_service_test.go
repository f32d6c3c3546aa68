package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/core/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MoneyRecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.MoneyRecord, error) {
	args := m.Called(ctx, recordID)
	var record *domain.MoneyRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.MoneyRecord)
	}
	return record, args.Error(1)
}

func (m *MockRecordRepository) FindRecordsByUser(ctx context.Context, userID string, from, to time.Time, limit int, offset int) ([]domain.MoneyRecord, error) {
	args := m.Called(ctx, userID, from, to, limit, offset)
	var records []domain.MoneyRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.MoneyRecord)
	}
	return records, args.Error(1)
}

func (m *MockRecordRepository) SumByCategory(ctx context.Context, userID string, recordType domain.RecordType, from, to time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, recordType, from, to)
	var totals []domain.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryTotal)
	}
	return totals, args.Error(1)
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record domain.MoneyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateRecord(ctx context.Context, record domain.MoneyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) MarkRecordDeleted(ctx context.Context, recordID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, recordID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type RecordServiceTestSuite struct {
	suite.Suite
	mockRecordRepo   *MockRecordRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.MoneyRecordSvcFacade
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewRecordService(suite.mockRecordRepo, suite.mockSettingsRepo)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_UsesSettingsCurrency() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateMoneyRecordRequest{
		RecordType: domain.RecordTypeExpense,
		Amount:     decimal.RequireFromString("12.40"),
		Category:   "groceries",
		OccurredOn: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockSettingsRepo.On("FindSettingsByUser", ctx, userID).Return(&domain.UserSettings{UserID: userID, CurrencyCode: "EUR"}, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.MoneyRecord) bool {
		return r.CurrencyCode == "EUR" && r.UserID == userID
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal("EUR", record.CurrencyCode)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_FallsBackToDefaultCurrency() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateMoneyRecordRequest{
		RecordType: domain.RecordTypeIncome,
		Amount:     decimal.NewFromInt(100),
		Category:   "tips",
		OccurredOn: time.Now(),
	}

	suite.mockSettingsRepo.On("FindSettingsByUser", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.MoneyRecord) bool {
		return r.CurrencyCode == currencyfmt.DefaultCurrencyCode
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal(currencyfmt.DefaultCurrencyCode, record.CurrencyCode)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_RejectsNegativeAmount() {
	ctx := context.Background()

	req := dto.CreateMoneyRecordRequest{
		RecordType: domain.RecordTypeExpense,
		Amount:     decimal.RequireFromString("-5"),
		Category:   "groceries",
		OccurredOn: time.Now(),
	}

	record, err := suite.service.CreateRecord(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestGetCategoryTotals_RejectsUnknownType() {
	ctx := context.Background()

	totals, err := suite.service.GetCategoryTotals(ctx, domain.RecordType("transfer"), time.Time{}, time.Time{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RecordServiceTestSuite) TestGetCategoryTotals_ReturnsAggregates() {
	ctx := context.Background()
	userID := uuid.NewString()

	expected := []domain.CategoryTotal{
		{Category: "groceries", Total: decimal.RequireFromString("120.50"), Count: 4},
		{Category: "transport", Total: decimal.RequireFromString("45.00"), Count: 2},
	}

	suite.mockRecordRepo.On("SumByCategory", ctx, userID, domain.RecordTypeExpense, time.Time{}, time.Time{}).Return(expected, nil).Once()

	totals, err := suite.service.GetCategoryTotals(ctx, domain.RecordTypeExpense, time.Time{}, time.Time{}, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, totals)
}

func (suite *RecordServiceTestSuite) TestGetRecordByID_ForbiddenForOtherUser() {
	ctx := context.Background()
	recordID := uuid.NewString()

	stored := &domain.MoneyRecord{RecordID: recordID, UserID: "owner"}
	suite.mockRecordRepo.On("FindRecordByID", ctx, recordID).Return(stored, nil).Once()

	record, err := suite.service.GetRecordByID(ctx, recordID, "intruder")

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
