package service_test

import (
	"testing"

	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/mocks"
	"lead-pipeline-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StageServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockStageRepo *mocks.MockStageRepositoryInterface
	mockLeadRepo  *mocks.MockLeadRepositoryInterface
	stageService  *service.StageService
	validator     *validator.Validate

	admin    *models.User
	operator *models.User
}

func (suite *StageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.stageService = service.NewStageService(suite.mockStageRepo, suite.mockLeadRepo, suite.validator)

	suite.admin = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "admin@test.com", Role: models.RoleAdmin, IsActive: true}
	suite.operator = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "operator@test.com", Role: models.RoleOperator, IsActive: true}
}

func (suite *StageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StageServiceTestSuite) TestGetStages_OrderedByColumn() {
	stages := []models.PipelineStage{
		makeStage("Prospect", 1),
		makeStage("Qualified", 2),
	}
	suite.mockStageRepo.EXPECT().GetAllOrdered().Return(stages, nil)

	resp, err := suite.stageService.GetStages()

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Prospect", resp[0].Name)
	assert.Equal(suite.T(), 1, resp[0].Order)
	assert.Equal(suite.T(), "Qualified", resp[1].Name)
}

func (suite *StageServiceTestSuite) TestCreateStage_Success() {
	suite.mockStageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(stage *models.PipelineStage) error {
			assert.Equal(suite.T(), "Negotiation", stage.Name)
			assert.Equal(suite.T(), 4, stage.Order)
			return nil
		})

	resp, err := suite.stageService.CreateStage(suite.admin, &service.CreateStageRequest{
		Name:  "Negotiation",
		Order: 4,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Negotiation", resp.Name)
}

func (suite *StageServiceTestSuite) TestCreateStage_NonAdmin_Denied() {
	_, err := suite.stageService.CreateStage(suite.operator, &service.CreateStageRequest{
		Name:  "Negotiation",
		Order: 4,
	})
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *StageServiceTestSuite) TestCreateStage_InvalidOrder_ValidationError() {
	_, err := suite.stageService.CreateStage(suite.admin, &service.CreateStageRequest{
		Name:  "Negotiation",
		Order: 0,
	})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *StageServiceTestSuite) TestCreateStage_DuplicateOrder_Conflict() {
	suite.mockStageRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrStageOrderExists)

	_, err := suite.stageService.CreateStage(suite.admin, &service.CreateStageRequest{
		Name:  "Negotiation",
		Order: 2,
	})
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *StageServiceTestSuite) TestUpdateStage_Success() {
	stage := makeStage("Prospect", 1)

	suite.mockStageRepo.EXPECT().GetByID(stage.ID).Return(&stage, nil)
	suite.mockStageRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.PipelineStage) error {
			assert.Equal(suite.T(), "Discovery", updated.Name)
			assert.Equal(suite.T(), 2, updated.Order)
			return nil
		})

	resp, err := suite.stageService.UpdateStage(suite.admin, stage.ID, &service.UpdateStageRequest{
		Name:  "Discovery",
		Order: 2,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Discovery", resp.Name)
}

func (suite *StageServiceTestSuite) TestDeleteStage_EmptyStage_Success() {
	id := uuid.New()

	suite.mockLeadRepo.EXPECT().CountByStage(id).Return(int64(0), nil)
	suite.mockStageRepo.EXPECT().Delete(id).Return(nil)

	err := suite.stageService.DeleteStage(suite.admin, id)
	assert.NoError(suite.T(), err)
}

func (suite *StageServiceTestSuite) TestDeleteStage_StillHasLeads_Conflict() {
	id := uuid.New()

	suite.mockLeadRepo.EXPECT().CountByStage(id).Return(int64(3), nil)
	// No Delete expectation: an occupied stage is never removed

	err := suite.stageService.DeleteStage(suite.admin, id)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *StageServiceTestSuite) TestDeleteStage_NonAdmin_Denied() {
	err := suite.stageService.DeleteStage(suite.operator, uuid.New())
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func TestStageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StageServiceTestSuite))
}
