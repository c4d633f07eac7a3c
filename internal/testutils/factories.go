package testutils

import (
	"time"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	name := "Jane Doe"
	// Unique email per user to avoid collisions across cases
	email := "user-" + id.String()[:8] + "@test.com"

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     &name,
		Email:    email,
		Role:     models.RoleOperator,
		IsActive: true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// StageFactory provides methods to create test PipelineStage data
type StageFactory struct{}

// NewStageFactory creates a new StageFactory
func NewStageFactory() *StageFactory {
	return &StageFactory{}
}

// Create creates a test PipelineStage with default values
func (f *StageFactory) Create() *models.PipelineStage {
	id := uuid.New()

	return &models.PipelineStage{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Stage " + id.String()[:8],
		Order: 1,
	}
}

// WithName sets a custom name for the stage
func (f *StageFactory) WithName(name string) *models.PipelineStage {
	stage := f.Create()
	stage.Name = name
	return stage
}

// WithOrder sets a custom column order for the stage
func (f *StageFactory) WithOrder(order int) *models.PipelineStage {
	stage := f.Create()
	stage.Order = order
	return stage
}

// WithNameAndOrder sets both name and column order for the stage
func (f *StageFactory) WithNameAndOrder(name string, order int) *models.PipelineStage {
	stage := f.Create()
	stage.Name = name
	stage.Order = order
	return stage
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values. StageID and CreatorID
// must be overridden with persisted rows before saving.
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	contact := "Test Contact"

	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Lead " + id.String()[:8],
		ContactName: &contact,
		Status:      models.LeadStatusTodo,
		Position:    0,
	}
}

// InStage places the lead in a stage at a given position
func (f *LeadFactory) InStage(stageID uuid.UUID, position int) *models.Lead {
	lead := f.Create()
	lead.StageID = stageID
	lead.Position = position
	return lead
}

// WithCreator sets the creating user for the lead
func (f *LeadFactory) WithCreator(userID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.CreatorID = userID
	return lead
}

// WithAssignee sets the assigned user for the lead
func (f *LeadFactory) WithAssignee(userID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.AssigneeID = &userID
	return lead
}

// WithStatus sets a custom status for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// LeadEventFactory provides methods to create test LeadEvent data
type LeadEventFactory struct{}

// NewLeadEventFactory creates a new LeadEventFactory
func NewLeadEventFactory() *LeadEventFactory {
	return &LeadEventFactory{}
}

// Create creates a test LeadEvent with default values
func (f *LeadEventFactory) Create() *models.LeadEvent {
	return &models.LeadEvent{
		ID:          uuid.New(),
		Description: "Lead created",
		CreatedAt:   time.Now(),
	}
}

// ForLead sets the lead ID for the event
func (f *LeadEventFactory) ForLead(leadID uuid.UUID) *models.LeadEvent {
	event := f.Create()
	event.LeadID = leadID
	return event
}

// WithDescription sets a custom description for the event
func (f *LeadEventFactory) WithDescription(description string) *models.LeadEvent {
	event := f.Create()
	event.Description = description
	return event
}

// WithAuthor sets the authoring user for the event
func (f *LeadEventFactory) WithAuthor(userID uuid.UUID) *models.LeadEvent {
	event := f.Create()
	event.AuthorID = &userID
	return event
}
