package repository

import (
	"testing"
	"time"

	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// LeadEventRepositoryTestSuite tests the LeadEventRepository
type LeadEventRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadEventRepository
	userFactory   *testutils.UserFactory
	stageFactory  *testutils.StageFactory
	leadFactory   *testutils.LeadFactory
	eventFactory  *testutils.LeadEventFactory

	lead *models.Lead
}

// SetupSuite runs before all tests in the suite
func (suite *LeadEventRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadEventRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewUserFactory()
	suite.stageFactory = testutils.NewStageFactory()
	suite.leadFactory = testutils.NewLeadFactory()
	suite.eventFactory = testutils.NewLeadEventFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadEventRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a lead for the events to hang off
func (suite *LeadEventRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	creator := suite.userFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(creator).Error)
	stage := suite.stageFactory.WithNameAndOrder("Prospect", 1)
	suite.NoError(suite.baseTestSuite.DB.Create(stage).Error)

	suite.lead = suite.leadFactory.InStage(stage.ID, 0)
	suite.lead.CreatorID = creator.ID
	suite.NoError(suite.baseTestSuite.DB.Create(suite.lead).Error)
}

// TearDownTest runs after each test
func (suite *LeadEventRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an event directly via gorm
func (suite *LeadEventRepositoryTestSuite) createEvent(description string, at time.Time) *models.LeadEvent {
	event := suite.eventFactory.ForLead(suite.lead.ID)
	event.Description = description
	event.CreatedAt = at
	suite.NoError(suite.baseTestSuite.DB.Create(event).Error)
	return event
}

func (suite *LeadEventRepositoryTestSuite) TestGetByID() {
	created := suite.createEvent("Lead created", time.Now())

	retrieved, err := suite.repo.GetByID(created.ID)
	suite.NoError(err)
	suite.Equal(created.ID, retrieved.ID)
	suite.Equal("Lead created", retrieved.Description)
	suite.Equal(suite.lead.ID, retrieved.LeadID)
}

func (suite *LeadEventRepositoryTestSuite) TestGetByIDNotFound() {
	event, err := suite.repo.GetByID(uuid.New())
	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(event)
}

func (suite *LeadEventRepositoryTestSuite) TestGetByLeadIDNewestFirst() {
	base := time.Now().Add(-time.Hour)
	suite.createEvent("Lead created", base)
	suite.createEvent(`Moved from stage "Prospect" to "Qualified"`, base.Add(5*time.Minute))
	suite.createEvent("Status changed from TODO to WON", base.Add(10*time.Minute))

	events, err := suite.repo.GetByLeadID(suite.lead.ID)
	suite.NoError(err)
	suite.Len(events, 3)
	suite.Equal("Status changed from TODO to WON", events[0].Description)
	suite.Equal(`Moved from stage "Prospect" to "Qualified"`, events[1].Description)
	suite.Equal("Lead created", events[2].Description)
}

func (suite *LeadEventRepositoryTestSuite) TestGetByLeadIDEmpty() {
	events, err := suite.repo.GetByLeadID(suite.lead.ID)
	suite.NoError(err)
	suite.Len(events, 0)
}

func (suite *LeadEventRepositoryTestSuite) TestDelete() {
	created := suite.createEvent("Lead created", time.Now())

	err := suite.repo.Delete(created.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(created.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *LeadEventRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())
	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
}

func TestLeadEventRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadEventRepositoryTestSuite))
}
