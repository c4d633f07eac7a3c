package service_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/mocks"
	"lead-pipeline-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ImportExportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLeadRepo  *mocks.MockLeadRepositoryInterface
	mockStageRepo *mocks.MockStageRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	svc           *service.ImportExportService

	admin    *models.User
	operator *models.User
}

func (suite *ImportExportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockStageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.svc = service.NewImportExportService(suite.mockLeadRepo, suite.mockStageRepo, suite.mockUserRepo)

	suite.admin = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "admin@test.com", Role: models.RoleAdmin, IsActive: true}
	suite.operator = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "operator@test.com", Role: models.RoleOperator, IsActive: true}
}

func (suite *ImportExportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ImportExportServiceTestSuite) TestImportLead_TolerantCoercion() {
	prospect := makeStage("Prospect", 1)

	// Unknown stage name falls back to the lowest-order stage
	suite.mockStageRepo.EXPECT().GetByName("Nonexistent Stage").Return(nil, apperrors.ErrStageNotFound)
	suite.mockStageRepo.EXPECT().GetFirst().Return(&prospect, nil)
	// Unknown assignee email means unassigned
	suite.mockUserRepo.EXPECT().GetByEmail("ghost@test.com").Return(nil, apperrors.ErrUserNotFound)
	suite.mockLeadRepo.EXPECT().NextPosition(prospect.ID).Return(0, nil)
	suite.mockLeadRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(lead *models.Lead, seed *models.LeadEvent) error {
			assert.Equal(suite.T(), models.LeadStatusTodo, lead.Status, "bogus status coerces to TODO")
			assert.Nil(suite.T(), lead.NextActionType, "bogus action type coerces to null")
			assert.Nil(suite.T(), lead.AssigneeID)
			assert.Equal(suite.T(), prospect.ID, lead.StageID)
			assert.Equal(suite.T(), "Lead imported via CSV", seed.Description)
			return nil
		})

	id, err := suite.svc.ImportLead(suite.admin, service.ImportRow{
		Title:          "Imported deal",
		Status:         "DEFINITELY_NOT_A_STATUS",
		NextActionType: "SMOKE_SIGNAL",
		StageName:      "Nonexistent Stage",
		AssigneeEmail:  "ghost@test.com",
	})

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, id)
}

func (suite *ImportExportServiceTestSuite) TestImportLead_KnownStageAndAssignee() {
	qualified := makeStage("Qualified", 2)
	assignee := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "rep@test.com", Role: models.RoleOperator, IsActive: true}

	suite.mockStageRepo.EXPECT().GetByName("Qualified").Return(&qualified, nil)
	suite.mockUserRepo.EXPECT().GetByEmail("rep@test.com").Return(assignee, nil)
	suite.mockLeadRepo.EXPECT().NextPosition(qualified.ID).Return(4, nil)
	suite.mockLeadRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(lead *models.Lead, seed *models.LeadEvent) error {
			assert.Equal(suite.T(), qualified.ID, lead.StageID)
			assert.Equal(suite.T(), 4, lead.Position)
			assert.Equal(suite.T(), models.LeadStatusWon, lead.Status)
			require.NotNil(suite.T(), lead.AssigneeID)
			assert.Equal(suite.T(), assignee.ID, *lead.AssigneeID)
			require.NotNil(suite.T(), lead.Value)
			assert.Equal(suite.T(), 1500.5, *lead.Value)
			return nil
		})

	_, err := suite.svc.ImportLead(suite.admin, service.ImportRow{
		Title:         "Imported deal",
		Value:         "1500.5",
		Status:        "won",
		StageName:     "Qualified",
		AssigneeEmail: "rep@test.com",
	})

	assert.NoError(suite.T(), err)
}

func (suite *ImportExportServiceTestSuite) TestImportLead_NonAdmin_Denied() {
	_, err := suite.svc.ImportLead(suite.operator, service.ImportRow{Title: "Imported deal"})
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ImportExportServiceTestSuite) TestImportLead_EmptyTitle_ValidationError() {
	_, err := suite.svc.ImportLead(suite.admin, service.ImportRow{Title: "   "})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ImportExportServiceTestSuite) TestImportCSV_SkipsTitlelessRows() {
	prospect := makeStage("Prospect", 1)

	csvData := strings.Join([]string{
		"Title,Status,Pipeline Stage",
		"First deal,TODO,Prospect",
		",WON,Prospect",
		"Second deal,bogus,Prospect",
	}, "\n")

	suite.mockStageRepo.EXPECT().GetByName("Prospect").Return(&prospect, nil).Times(2)
	suite.mockLeadRepo.EXPECT().NextPosition(prospect.ID).Return(0, nil).Times(2)
	suite.mockLeadRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := suite.svc.ImportCSV(suite.admin, strings.NewReader(csvData))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.Imported)
	assert.Equal(suite.T(), 1, result.Skipped)
}

func (suite *ImportExportServiceTestSuite) TestImportCSV_MissingTitleColumn() {
	csvData := "Status,Pipeline Stage\nTODO,Prospect\n"

	_, err := suite.svc.ImportCSV(suite.admin, strings.NewReader(csvData))
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ImportExportServiceTestSuite) TestImportCSV_NonAdmin_Denied() {
	_, err := suite.svc.ImportCSV(suite.operator, strings.NewReader("Title\nDeal\n"))
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ImportExportServiceTestSuite) TestExportCSV_WritesHeaderAndRows() {
	prospect := makeStage("Prospect", 1)
	contact := "Ada"
	value := 99.5
	leads := makeLeads(prospect.ID, 1)
	leads[0].Title = "Exported deal"
	leads[0].ContactName = &contact
	leads[0].Value = &value
	leads[0].Stage = &prospect

	suite.mockLeadRepo.EXPECT().GetAllForExport().Return(leads, nil)

	var buf bytes.Buffer
	err := suite.svc.ExportCSV(&buf)
	require.NoError(suite.T(), err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), "Title", records[0][0])
	assert.Equal(suite.T(), "Created At", records[0][10])
	assert.Equal(suite.T(), "Exported deal", records[1][0])
	assert.Equal(suite.T(), "Ada", records[1][1])
	assert.Equal(suite.T(), "99.5", records[1][2])
	assert.Equal(suite.T(), "TODO", records[1][4])
	assert.Equal(suite.T(), "Prospect", records[1][5])
}

func TestImportExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportExportServiceTestSuite))
}
