package services_test

import (
	"context"
	"testing"

	"github.com/shifttally/shift_tally_app/internal/apperrors"
	"github.com/shifttally/shift_tally_app/internal/core/domain"
	portssvc "github.com/shifttally/shift_tally_app/internal/core/ports/services"
	"github.com/shifttally/shift_tally_app/internal/core/services"
	"github.com/shifttally/shift_tally_app/internal/dto"
	"github.com/shifttally/shift_tally_app/internal/utils/currencyfmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type JobServiceTestSuite struct {
	suite.Suite
	mockJobRepo *MockJobRepository
	service     portssvc.JobSvcFacade
}

func (suite *JobServiceTestSuite) SetupTest() {
	suite.mockJobRepo = new(MockJobRepository)
	suite.service = services.NewJobService(suite.mockJobRepo)
}

// --- CreateJob Tests ---

func (suite *JobServiceTestSuite) TestCreateJob_DefaultsCurrency() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateJobRequest{
		Name:       "Cafe",
		PayType:    domain.PayTypeHourly,
		HourlyRate: decPtr("18.50"),
	}

	suite.mockJobRepo.On("SaveJob", ctx, mock.MatchedBy(func(j domain.Job) bool {
		return j.CurrencyCode == currencyfmt.DefaultCurrencyCode && j.UserID == userID
	})).Return(nil).Once()

	job, err := suite.service.CreateJob(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(job)
	suite.Equal(currencyfmt.DefaultCurrencyCode, job.CurrencyCode)
	suite.NotEmpty(job.JobID)
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestCreateJob_UnsupportedCurrency() {
	ctx := context.Background()

	req := dto.CreateJobRequest{
		Name:         "Cafe",
		PayType:      domain.PayTypeHourly,
		HourlyRate:   decPtr("18.50"),
		CurrencyCode: "XXX",
	}

	job, err := suite.service.CreateJob(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "SaveJob", mock.Anything, mock.Anything)
}

// --- GetJobByID Tests ---

func (suite *JobServiceTestSuite) TestGetJobByID_ForbiddenForOtherUser() {
	ctx := context.Background()
	jobID := uuid.NewString()

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, "owner", "20"), nil).Once()

	job, err := suite.service.GetJobByID(ctx, jobID, "intruder")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JobServiceTestSuite) TestGetJobByID_NotFound() {
	ctx := context.Background()
	jobID := uuid.NewString()

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(nil, apperrors.ErrNotFound).Once()

	job, err := suite.service.GetJobByID(ctx, jobID, "anyone")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateJob Tests ---

func (suite *JobServiceTestSuite) TestUpdateJob_RejectsUnsupportedCurrency() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()
	badCode := "ZZZ"

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()

	job, err := suite.service.UpdateJob(ctx, jobID, dto.UpdateJobRequest{CurrencyCode: &badCode}, userID)

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "UpdateJob", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestUpdateJob_AppliesPartialChanges() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()
	newName := "Bistro"

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()
	suite.mockJobRepo.On("UpdateJob", ctx, mock.MatchedBy(func(j domain.Job) bool {
		return j.Name == newName && j.HourlyRate != nil
	})).Return(nil).Once()

	job, err := suite.service.UpdateJob(ctx, jobID, dto.UpdateJobRequest{Name: &newName}, userID)

	suite.Require().NoError(err)
	suite.Equal(newName, job.Name)
	suite.mockJobRepo.AssertExpectations(suite.T())
}

// --- DeleteJob Tests ---

func (suite *JobServiceTestSuite) TestDeleteJob_SoftDeletes() {
	ctx := context.Background()
	userID := uuid.NewString()
	jobID := uuid.NewString()

	suite.mockJobRepo.On("FindJobByID", ctx, jobID).Return(hourlyJob(jobID, userID, "20"), nil).Once()
	suite.mockJobRepo.On("MarkJobDeleted", ctx, jobID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteJob(ctx, jobID, userID)

	suite.Require().NoError(err)
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}
