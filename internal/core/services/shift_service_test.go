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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	var shift *domain.Shift
	if args.Get(0) != nil {
		shift = args.Get(0).(*domain.Shift)
	}
	return shift, args.Error(1)
}

func (m *MockShiftRepository) FindShiftsByJob(ctx context.Context, jobID string, from, to time.Time, limit int, nextToken string) ([]domain.Shift, string, error) {
	args := m.Called(ctx, jobID, from, to, limit, nextToken)
	var shifts []domain.Shift
	if args.Get(0) != nil {
		shifts = args.Get(0).([]domain.Shift)
	}
	return shifts, args.String(1), args.Error(2)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) DeleteShift(ctx context.Context, shiftID string) error {
	args := m.Called(ctx, shiftID)
	return args.Error(0)
}

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	var job *domain.Job
	if args.Get(0) != nil {
		job = args.Get(0).(*domain.Job)
	}
	return job, args.Error(1)
}

func (m *MockJobRepository) FindJobsByUser(ctx context.Context, userID string) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Error(1)
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) MarkJobDeleted(ctx context.Context, jobID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, jobID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type ShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo *MockShiftRepository
	mockJobRepo   *MockJobRepository
	service       portssvc.ShiftSvcFacade
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockJobRepo = new(MockJobRepository)
	suite.service = services.NewShiftService(suite.mockShiftRepo, suite.mockJobRepo)
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func hourlyJob(jobID, userID, rate string) *domain.Job {
	return &domain.Job{
		JobID:        jobID,
		UserID:       userID,
		Name:         "Cafe",
		PayType:      domain.PayTypeHourly,
		HourlyRate:   decPtr(rate),
		CurrencyCode: "USD",
	}
}

// --- CreateShift Tests ---

func (suite *ShiftServiceTestSuite) TestCreateShift_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()

	req := dto.CreateShiftRequest{
		JobID:       jobID,
		WorkDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ActualHours: decimal.RequireFromString("8"),
		ShiftType:   domain.ShiftTypeWork,
	}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.JobID == jobID && s.UserID == userID && s.ActualHours.Equal(req.ActualHours)
	})).Return(nil).Once()

	shift, err := suite.service.CreateShift(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.NotEmpty(shift.ShiftID)
	suite.Equal(jobID, shift.JobID)
	suite.mockShiftRepo.AssertExpectations(suite.T())
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCreateShift_JobOwnedByOtherUser() {
	ctx := context.Background()
	jobID := uuid.NewString()

	req := dto.CreateShiftRequest{JobID: jobID, WorkDate: time.Now(), ActualHours: decimal.NewFromInt(8)}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, "owner", "20"), nil).Once()

	shift, err := suite.service.CreateShift(ctx, req, "intruder")

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_UnknownJob() {
	ctx := context.Background()
	jobID := uuid.NewString()

	req := dto.CreateShiftRequest{JobID: jobID, WorkDate: time.Now(), ActualHours: decimal.NewFromInt(8)}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(nil, apperrors.ErrNotFound).Once()

	shift, err := suite.service.CreateShift(ctx, req, "user")

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_NegativeHours() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()

	req := dto.CreateShiftRequest{
		JobID:       jobID,
		WorkDate:    time.Now(),
		ActualHours: decimal.RequireFromString("-1"),
	}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()

	shift, err := suite.service.CreateShift(ctx, req, userID)

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

// --- GetShiftEarnings Tests ---

func (suite *ShiftServiceTestSuite) TestGetShiftEarnings_HolidayMultiplier() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()
	shiftID := uuid.NewString()

	shift := &domain.Shift{
		ShiftID:           shiftID,
		JobID:             jobID,
		UserID:            userID,
		ActualHours:       decimal.NewFromInt(8),
		ShiftType:         domain.ShiftTypeWork,
		IsHoliday:         true,
		HolidayMultiplier: decPtr("1.5"),
	}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()

	earnings, err := suite.service.GetShiftEarnings(ctx, shiftID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(earnings)
	suite.Equal("USD", earnings.CurrencyCode)
	suite.True(earnings.EffectiveRate.Equal(decimal.NewFromInt(30)), "effective rate was %s", earnings.EffectiveRate)
	suite.True(earnings.Earnings.Equal(decimal.NewFromInt(240)), "earnings were %s", earnings.Earnings)
}

func (suite *ShiftServiceTestSuite) TestGetShiftEarnings_DeletedJobYieldsZero() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()
	shiftID := uuid.NewString()

	shift := &domain.Shift{
		ShiftID:     shiftID,
		JobID:       jobID,
		UserID:      userID,
		ActualHours: decimal.NewFromInt(8),
		ShiftType:   domain.ShiftTypeWork,
	}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(nil, apperrors.ErrNotFound).Once()

	earnings, err := suite.service.GetShiftEarnings(ctx, shiftID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(earnings)
	suite.Empty(earnings.CurrencyCode)
	suite.True(earnings.Earnings.IsZero())
	suite.True(earnings.EffectiveRate.IsZero())
}

func (suite *ShiftServiceTestSuite) TestGetShiftEarnings_ForbiddenForOtherUser() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	shift := &domain.Shift{ShiftID: shiftID, JobID: uuid.NewString(), UserID: "owner"}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()

	earnings, err := suite.service.GetShiftEarnings(ctx, shiftID, "intruder")

	suite.Require().Error(err)
	suite.Nil(earnings)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- GetEarningsSummary Tests ---

func (suite *ShiftServiceTestSuite) TestGetEarningsSummary_PagesThroughAllShifts() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	pageOne := []domain.Shift{
		{ShiftID: uuid.NewString(), JobID: jobID, UserID: userID, ActualHours: decimal.NewFromInt(8), ShiftType: domain.ShiftTypeWork},
		{ShiftID: uuid.NewString(), JobID: jobID, UserID: userID, ActualHours: decimal.NewFromInt(6), ShiftType: domain.ShiftTypeWork},
	}
	pageTwo := []domain.Shift{
		{ShiftID: uuid.NewString(), JobID: jobID, UserID: userID, ActualHours: decimal.NewFromInt(4), ShiftType: domain.ShiftTypeUnpaid},
	}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()
	suite.mockShiftRepo.On("FindShiftsByJob", ctx, jobID, from, to, 200, "").Return(pageOne, "cursor-1", nil).Once()
	suite.mockShiftRepo.On("FindShiftsByJob", ctx, jobID, from, to, 200, "cursor-1").Return(pageTwo, "", nil).Once()

	summary, err := suite.service.GetEarningsSummary(ctx, jobID, from, to, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(3, summary.ShiftCount)
	// 8h + 6h at 20/h; the unpaid shift contributes hours but no pay.
	suite.True(summary.TotalEarnings.Equal(decimal.NewFromInt(280)), "total was %s", summary.TotalEarnings)
	suite.True(summary.TotalHours.Equal(decimal.NewFromInt(18)), "hours were %s", summary.TotalHours)
	suite.Equal("USD", summary.CurrencyCode)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGetEarningsSummary_ForbiddenForOtherUser() {
	ctx := context.Background()
	jobID := uuid.NewString()

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, "owner", "20"), nil).Once()

	summary, err := suite.service.GetEarningsSummary(ctx, jobID, time.Time{}, time.Time{}, "intruder")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- ListShifts Tests ---

func (suite *ShiftServiceTestSuite) TestListShifts_ReturnsPageAndToken() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()
	params := dto.ListShiftsParams{Limit: 50}

	page := []domain.Shift{{ShiftID: uuid.NewString(), JobID: jobID, UserID: userID}}

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()
	suite.mockShiftRepo.On("FindShiftsByJob", ctx, jobID, params.From, params.To, 50, "").Return(page, "next", nil).Once()

	shifts, nextToken, err := suite.service.ListShifts(ctx, jobID, params, userID)

	suite.Require().NoError(err)
	suite.Len(shifts, 1)
	suite.Equal("next", nextToken)
}

// --- UpdateShift Tests ---

func (suite *ShiftServiceTestSuite) TestUpdateShift_NegativeHoursRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	shiftID := uuid.NewString()

	shift := &domain.Shift{ShiftID: shiftID, JobID: uuid.NewString(), UserID: userID, ActualHours: decimal.NewFromInt(8)}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()

	updated, err := suite.service.UpdateShift(ctx, shiftID, dto.UpdateShiftRequest{ActualHours: decPtr("-2")}, userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "UpdateShift", mock.Anything, mock.Anything)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
