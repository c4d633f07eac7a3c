package service_test

import (
	"testing"

	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/mocks"
	"lead-pipeline-backend/internal/pipeline"
	"lead-pipeline-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BoardServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLeadRepo  *mocks.MockLeadRepositoryInterface
	mockStageRepo *mocks.MockStageRepositoryInterface
	boardService  *service.BoardService

	admin    *models.User
	manager  *models.User
	operator *models.User
}

func (suite *BoardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockStageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.boardService = service.NewBoardService(suite.mockLeadRepo, suite.mockStageRepo)

	suite.admin = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "admin@test.com", Role: models.RoleAdmin, IsActive: true}
	suite.manager = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "manager@test.com", Role: models.RoleManager, IsActive: true}
	suite.operator = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "operator@test.com", Role: models.RoleOperator, IsActive: true}
}

func (suite *BoardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func makeStage(name string, order int) models.PipelineStage {
	return models.PipelineStage{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Order:     order,
	}
}

func makeLeads(stageID uuid.UUID, n int) []models.Lead {
	leads := make([]models.Lead, n)
	for i := range leads {
		leads[i] = models.Lead{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Title:     "Lead",
			Status:    models.LeadStatusTodo,
			StageID:   stageID,
			Position:  i,
		}
	}
	return leads
}

func (suite *BoardServiceTestSuite) TestGetBoard_Success() {
	prospect := makeStage("Prospect", 1)
	qualified := makeStage("Qualified", 2)
	prospectLeads := makeLeads(prospect.ID, 2)

	suite.mockStageRepo.EXPECT().GetAllOrdered().Return([]models.PipelineStage{prospect, qualified}, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(prospect.ID).Return(prospectLeads, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(qualified.ID).Return([]models.Lead{}, nil)

	resp, err := suite.boardService.GetBoard()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Stages, 2)
	assert.Equal(suite.T(), "Prospect", resp.Stages[0].Name)
	assert.Len(suite.T(), resp.Stages[0].Leads, 2)
	assert.Equal(suite.T(), 0, resp.Stages[0].Leads[0].Position)
	assert.Equal(suite.T(), 1, resp.Stages[0].Leads[1].Position)
	assert.Empty(suite.T(), resp.Stages[1].Leads)
}

func (suite *BoardServiceTestSuite) TestMoveLead_SameStageReorder_Success() {
	stage := makeStage("Prospect", 1)
	leads := makeLeads(stage.ID, 3)
	active := leads[0]

	suite.mockLeadRepo.EXPECT().GetByID(active.ID).Return(&active, nil)
	suite.mockStageRepo.EXPECT().GetByID(stage.ID).Return(&stage, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(stage.ID).Return(leads, nil)
	suite.mockLeadRepo.EXPECT().
		ApplyPlacements(gomock.Any(), gomock.Any()).
		DoAndReturn(func(placements []pipeline.Placement, events []models.LeadEvent) error {
			// [0,1,2] -> [1,2,0]: all three shift, no stage change so no event
			assert.Len(suite.T(), placements, 3)
			assert.Empty(suite.T(), events)
			return nil
		})

	err := suite.boardService.MoveLead(suite.manager, service.MoveLeadInput{
		LeadID:        active.ID,
		TargetStageID: stage.ID,
		TargetIndex:   2,
	})

	assert.NoError(suite.T(), err)
}

func (suite *BoardServiceTestSuite) TestMoveLead_DropOnOwnSlot_NoWrites() {
	stage := makeStage("Prospect", 1)
	leads := makeLeads(stage.ID, 3)
	active := leads[1]

	suite.mockLeadRepo.EXPECT().GetByID(active.ID).Return(&active, nil)
	suite.mockStageRepo.EXPECT().GetByID(stage.ID).Return(&stage, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(stage.ID).Return(leads, nil)
	// No ApplyPlacements expectation: a no-op gesture must not write

	err := suite.boardService.MoveLead(suite.admin, service.MoveLeadInput{
		LeadID:        active.ID,
		TargetStageID: stage.ID,
		TargetIndex:   1,
	})

	assert.NoError(suite.T(), err)
}

func (suite *BoardServiceTestSuite) TestMoveLead_CrossStage_RecordsMovedEvent() {
	prospect := makeStage("Prospect", 1)
	qualified := makeStage("Qualified", 2)
	sourceLeads := makeLeads(prospect.ID, 2)
	targetLeads := makeLeads(qualified.ID, 1)
	active := sourceLeads[0]

	suite.mockLeadRepo.EXPECT().GetByID(active.ID).Return(&active, nil)
	suite.mockStageRepo.EXPECT().GetByID(qualified.ID).Return(&qualified, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(prospect.ID).Return(sourceLeads, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(qualified.ID).Return(targetLeads, nil)
	suite.mockStageRepo.EXPECT().GetByID(prospect.ID).Return(&prospect, nil)
	suite.mockLeadRepo.EXPECT().
		ApplyPlacements(gomock.Any(), gomock.Any()).
		DoAndReturn(func(placements []pipeline.Placement, events []models.LeadEvent) error {
			assert.NotEmpty(suite.T(), placements)
			assert.Len(suite.T(), events, 1)
			assert.Equal(suite.T(), `Moved from stage "Prospect" to "Qualified"`, events[0].Description)
			assert.Equal(suite.T(), active.ID, events[0].LeadID)
			assert.Equal(suite.T(), suite.manager.ID, *events[0].AuthorID)
			return nil
		})

	err := suite.boardService.MoveLead(suite.manager, service.MoveLeadInput{
		LeadID:        active.ID,
		TargetStageID: qualified.ID,
		TargetIndex:   1,
	})

	assert.NoError(suite.T(), err)
}

func (suite *BoardServiceTestSuite) TestMoveLead_OperatorNotAssignee_Denied() {
	stage := makeStage("Prospect", 1)
	leads := makeLeads(stage.ID, 1)
	active := leads[0]
	otherID := uuid.New()
	active.AssigneeID = &otherID

	suite.mockLeadRepo.EXPECT().GetByID(active.ID).Return(&active, nil)
	// Denied before any stage or ordering read

	err := suite.boardService.MoveLead(suite.operator, service.MoveLeadInput{
		LeadID:        active.ID,
		TargetStageID: stage.ID,
		TargetIndex:   0,
	})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAssigned)
}

func (suite *BoardServiceTestSuite) TestMoveLead_OperatorOwnLead_Allowed() {
	stage := makeStage("Prospect", 1)
	leads := makeLeads(stage.ID, 2)
	leads[0].AssigneeID = &suite.operator.ID
	active := leads[0]

	suite.mockLeadRepo.EXPECT().GetByID(active.ID).Return(&active, nil)
	suite.mockStageRepo.EXPECT().GetByID(stage.ID).Return(&stage, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(stage.ID).Return(leads, nil)
	suite.mockLeadRepo.EXPECT().ApplyPlacements(gomock.Any(), gomock.Any()).Return(nil)

	err := suite.boardService.MoveLead(suite.operator, service.MoveLeadInput{
		LeadID:        active.ID,
		TargetStageID: stage.ID,
		TargetIndex:   1,
	})

	assert.NoError(suite.T(), err)
}

func (suite *BoardServiceTestSuite) TestMoveLead_LeadNotFound() {
	id := uuid.New()
	suite.mockLeadRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrLeadNotFound)

	err := suite.boardService.MoveLead(suite.admin, service.MoveLeadInput{
		LeadID:        id,
		TargetStageID: uuid.New(),
	})

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *BoardServiceTestSuite) TestReorder_OperatorForeignLeadInBatch_NothingApplied() {
	stage := makeStage("Prospect", 1)
	leads := makeLeads(stage.ID, 2)
	leads[0].AssigneeID = &suite.operator.ID
	// leads[1] belongs to someone else

	suite.mockLeadRepo.EXPECT().GetByIDs(gomock.Any()).Return(leads, nil)
	// No ApplyPlacements expectation: the whole batch is rejected

	err := suite.boardService.Reorder(suite.operator, []service.PlacementInput{
		{LeadID: leads[0].ID, StageID: stage.ID, Position: 1},
		{LeadID: leads[1].ID, StageID: stage.ID, Position: 0},
	})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *BoardServiceTestSuite) TestReorder_MissingLead_NotFound() {
	stage := makeStage("Prospect", 1)

	suite.mockLeadRepo.EXPECT().GetByIDs(gomock.Any()).Return([]models.Lead{}, nil)

	err := suite.boardService.Reorder(suite.admin, []service.PlacementInput{
		{LeadID: uuid.New(), StageID: stage.ID, Position: 0},
	})

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *BoardServiceTestSuite) TestReorder_UnknownStage_NotFound() {
	stage := makeStage("Prospect", 1)
	leads := makeLeads(stage.ID, 1)

	suite.mockLeadRepo.EXPECT().GetByIDs(gomock.Any()).Return(leads, nil)
	suite.mockStageRepo.EXPECT().GetAllOrdered().Return([]models.PipelineStage{stage}, nil)

	err := suite.boardService.Reorder(suite.admin, []service.PlacementInput{
		{LeadID: leads[0].ID, StageID: uuid.New(), Position: 0},
	})

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *BoardServiceTestSuite) TestReorder_SkipsUnchangedRows() {
	prospect := makeStage("Prospect", 1)
	qualified := makeStage("Qualified", 2)
	leads := makeLeads(prospect.ID, 2)

	suite.mockLeadRepo.EXPECT().GetByIDs(gomock.Any()).Return(leads, nil)
	suite.mockStageRepo.EXPECT().GetAllOrdered().Return([]models.PipelineStage{prospect, qualified}, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(prospect.ID).Return(leads, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(qualified.ID).Return([]models.Lead{}, nil)
	suite.mockLeadRepo.EXPECT().
		ApplyPlacements(gomock.Any(), gomock.Any()).
		DoAndReturn(func(placements []pipeline.Placement, events []models.LeadEvent) error {
			// The unchanged first row is dropped; the moved second row carries an event
			assert.Len(suite.T(), placements, 1)
			assert.Equal(suite.T(), leads[1].ID, placements[0].LeadID)
			assert.Len(suite.T(), events, 1)
			assert.Equal(suite.T(), `Moved from stage "Prospect" to "Qualified"`, events[0].Description)
			return nil
		})

	err := suite.boardService.Reorder(suite.admin, []service.PlacementInput{
		{LeadID: leads[0].ID, StageID: prospect.ID, Position: 0},
		{LeadID: leads[1].ID, StageID: qualified.ID, Position: 0},
	})

	assert.NoError(suite.T(), err)
}

func (suite *BoardServiceTestSuite) TestReorder_DuplicatePositions_Rejected() {
	prospect := makeStage("Prospect", 1)
	leads := makeLeads(prospect.ID, 2)

	suite.mockLeadRepo.EXPECT().GetByIDs(gomock.Any()).Return(leads, nil)
	suite.mockStageRepo.EXPECT().GetAllOrdered().Return([]models.PipelineStage{prospect}, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(prospect.ID).Return(leads, nil)
	// No ApplyPlacements expectation: a colliding batch must not commit

	err := suite.boardService.Reorder(suite.admin, []service.PlacementInput{
		{LeadID: leads[0].ID, StageID: prospect.ID, Position: 0},
		{LeadID: leads[1].ID, StageID: prospect.ID, Position: 0},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *BoardServiceTestSuite) TestReorder_GapLeftBehind_Rejected() {
	prospect := makeStage("Prospect", 1)
	qualified := makeStage("Qualified", 2)
	leads := makeLeads(prospect.ID, 3)

	suite.mockLeadRepo.EXPECT().GetByIDs(gomock.Any()).Return(leads[:1], nil)
	suite.mockStageRepo.EXPECT().GetAllOrdered().Return([]models.PipelineStage{prospect, qualified}, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(prospect.ID).Return(leads, nil)
	suite.mockLeadRepo.EXPECT().GetByStageOrdered(qualified.ID).Return([]models.Lead{}, nil)

	// Moving the head lead out without renumbering the two it leaves behind
	// would leave prospect holding positions 1 and 2.
	err := suite.boardService.Reorder(suite.admin, []service.PlacementInput{
		{LeadID: leads[0].ID, StageID: qualified.ID, Position: 0},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *BoardServiceTestSuite) TestReorder_EmptyBatch_NoReads() {
	err := suite.boardService.Reorder(suite.admin, nil)
	assert.NoError(suite.T(), err)
}

func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}
