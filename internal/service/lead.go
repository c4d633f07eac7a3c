package service

import (
	"fmt"
	"time"

	"lead-pipeline-backend/internal/audit"
	"lead-pipeline-backend/internal/authz"
	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/pipeline"
	"lead-pipeline-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LeadService provides lead-related business logic
type LeadService struct {
	leadRepo  repository.LeadRepositoryInterface
	stageRepo repository.StageRepositoryInterface
	eventRepo repository.LeadEventRepositoryInterface
	validator *validator.Validate
}

// Ensure LeadService implements LeadServiceInterface
var _ LeadServiceInterface = (*LeadService)(nil)

// NewLeadService creates a new LeadService
func NewLeadService(
	leadRepo repository.LeadRepositoryInterface,
	stageRepo repository.StageRepositoryInterface,
	eventRepo repository.LeadEventRepositoryInterface,
	validator *validator.Validate,
) *LeadService {
	return &LeadService{
		leadRepo:  leadRepo,
		stageRepo: stageRepo,
		eventRepo: eventRepo,
		validator: validator,
	}
}

// CreateLeadRequest carries the fields for a new lead. The lead always lands
// at the end of the lowest-order stage.
type CreateLeadRequest struct {
	Title          string            `json:"title" validate:"required,min=1,max=200"`
	ContactName    *string           `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	Value          *float64          `json:"value,omitempty"`
	Probability    *int              `json:"probability,omitempty" validate:"omitempty,min=0,max=100"`
	AssigneeID     *uuid.UUID        `json:"assignee_id,omitempty"`
	Status         models.LeadStatus `json:"status,omitempty"`
	NextActionNote *string           `json:"next_action_note,omitempty" validate:"omitempty,max=500"`
}

// UpdateLeadRequest carries a full lead edit, mirroring the detail form
type UpdateLeadRequest struct {
	Title          string                 `json:"title" validate:"required,min=1,max=200"`
	ContactName    *string                `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	Value          *float64               `json:"value,omitempty"`
	Probability    *int                   `json:"probability,omitempty" validate:"omitempty,min=0,max=100"`
	AssigneeID     *uuid.UUID             `json:"assignee_id,omitempty"`
	Status         models.LeadStatus      `json:"status" validate:"required"`
	StageID        uuid.UUID              `json:"stage_id" validate:"required"`
	NextActionDate *time.Time             `json:"next_action_date,omitempty"`
	NextActionType *models.NextActionType `json:"next_action_type,omitempty"`
	NextActionNote *string                `json:"next_action_note,omitempty" validate:"omitempty,max=500"`
	Color          *string                `json:"color,omitempty" validate:"omitempty,max=30"`
	BorderColor    *string                `json:"border_color,omitempty" validate:"omitempty,max=30"`
}

// LeadEventResponse is one audit entry in API responses
type LeadEventResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID             uuid.UUID              `json:"id"`
	Title          string                 `json:"title"`
	ContactName    *string                `json:"contact_name,omitempty"`
	Value          *float64               `json:"value,omitempty"`
	Probability    *int                   `json:"probability,omitempty"`
	Status         models.LeadStatus      `json:"status"`
	StageID        uuid.UUID              `json:"stage_id"`
	StageName      string                 `json:"stage_name,omitempty"`
	Position       int                    `json:"position"`
	CreatorID      uuid.UUID              `json:"creator_id"`
	AssigneeID     *uuid.UUID             `json:"assignee_id,omitempty"`
	NextActionDate *time.Time             `json:"next_action_date,omitempty"`
	NextActionType *models.NextActionType `json:"next_action_type,omitempty"`
	NextActionNote *string                `json:"next_action_note,omitempty"`
	Color          *string                `json:"color,omitempty"`
	BorderColor    *string                `json:"border_color,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Events         []LeadEventResponse    `json:"events,omitempty"`
}

// CreateLead creates a lead at the end of the lowest-order stage and appends
// its "Lead created" seed event in the same transaction.
func (s *LeadService) CreateLead(actor *models.User, req *CreateLeadRequest) (*LeadResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrNoActingUser
	}
	if req.Status == "" {
		req.Status = models.LeadStatusTodo
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	firstStage, err := s.stageRepo.GetFirst()
	if err != nil {
		return nil, err
	}
	position, err := s.leadRepo.NextPosition(firstStage.ID)
	if err != nil {
		return nil, err
	}

	assigneeID := req.AssigneeID
	if assigneeID == nil {
		assigneeID = &actor.ID
	}

	lead := &models.Lead{
		Title:          req.Title,
		ContactName:    req.ContactName,
		Value:          req.Value,
		Probability:    req.Probability,
		Status:         req.Status,
		StageID:        firstStage.ID,
		Position:       position,
		CreatorID:      actor.ID,
		AssigneeID:     assigneeID,
		NextActionNote: req.NextActionNote,
	}
	seed := &models.LeadEvent{
		Description: audit.EventLeadCreated,
		AuthorID:    &actor.ID,
	}
	if err := s.leadRepo.Create(lead, seed); err != nil {
		return nil, err
	}

	resp := s.toResponse(lead)
	resp.StageName = firstStage.Name
	return resp, nil
}

// ScheduleEntry is one upcoming follow-up on the schedule view
type ScheduleEntry struct {
	LeadID         uuid.UUID              `json:"lead_id"`
	Title          string                 `json:"title"`
	ContactName    *string                `json:"contact_name,omitempty"`
	Status         models.LeadStatus      `json:"status"`
	StageID        uuid.UUID              `json:"stage_id"`
	StageName      string                 `json:"stage_name,omitempty"`
	AssigneeID     *uuid.UUID             `json:"assignee_id,omitempty"`
	AssigneeEmail  string                 `json:"assignee_email,omitempty"`
	NextActionDate time.Time              `json:"next_action_date"`
	NextActionType *models.NextActionType `json:"next_action_type,omitempty"`
	NextActionNote *string                `json:"next_action_note,omitempty"`
}

// GetSchedule returns leads with a scheduled next action, soonest first,
// optionally narrowed to a single assignee. Readable by every role.
func (s *LeadService) GetSchedule(assigneeID *uuid.UUID) ([]ScheduleEntry, error) {
	leads, err := s.leadRepo.GetScheduled(assigneeID)
	if err != nil {
		return nil, err
	}

	entries := make([]ScheduleEntry, 0, len(leads))
	for _, lead := range leads {
		if lead.NextActionDate == nil {
			continue
		}
		entry := ScheduleEntry{
			LeadID:         lead.ID,
			Title:          lead.Title,
			ContactName:    lead.ContactName,
			Status:         lead.Status,
			StageID:        lead.StageID,
			AssigneeID:     lead.AssigneeID,
			NextActionDate: *lead.NextActionDate,
			NextActionType: lead.NextActionType,
			NextActionNote: lead.NextActionNote,
		}
		if lead.Stage != nil {
			entry.StageName = lead.Stage.Name
		}
		if lead.Assignee != nil {
			entry.AssigneeEmail = lead.Assignee.Email
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetLead returns a lead with its stage, assignee and event history
func (s *LeadService) GetLead(id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.leadRepo.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(lead)
	if lead.Stage != nil {
		resp.StageName = lead.Stage.Name
	}
	for _, e := range lead.Events {
		resp.Events = append(resp.Events, LeadEventResponse{
			ID:          e.ID,
			Description: e.Description,
			AuthorID:    e.AuthorID,
			CreatedAt:   e.CreatedAt,
		})
	}
	return resp, nil
}

// UpdateLead applies a field edit. Stage and status transitions are diffed
// against the old state and recorded as audit events in the same commit; a
// stage change re-places the lead at the end of its new stage and closes the
// gap it left behind. An OPERATOR's submitted assignee change is silently
// ignored, not treated as an error.
func (s *LeadService) UpdateLead(actor *models.User, id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error) {
	oldLead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if decision := authz.CanMutateLead(actor, oldLead); !decision.Allowed {
		return nil, denialError(decision)
	}

	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	if req.NextActionType != nil && !req.NextActionType.IsValid() {
		return nil, apperrors.NewValidationError("next_action_type", fmt.Sprintf("unknown next action type %q", *req.NextActionType))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	newStage, err := s.stageRepo.GetByID(req.StageID)
	if err != nil {
		return nil, err
	}

	updated := *oldLead
	updated.Title = req.Title
	updated.ContactName = req.ContactName
	updated.Value = req.Value
	updated.Probability = req.Probability
	updated.Status = req.Status
	updated.StageID = newStage.ID
	updated.NextActionDate = req.NextActionDate
	updated.NextActionType = req.NextActionType
	updated.NextActionNote = req.NextActionNote
	updated.Color = req.Color
	updated.BorderColor = req.BorderColor

	// Only ADMIN/MANAGER may change the assignee; everyone else keeps the old one
	if authz.CanChangeAssignee(actor) {
		updated.AssigneeID = req.AssigneeID
	} else {
		updated.AssigneeID = oldLead.AssigneeID
	}

	var placements []pipeline.Placement
	if oldLead.StageID != newStage.ID {
		position, err := s.leadRepo.NextPosition(newStage.ID)
		if err != nil {
			return nil, err
		}
		updated.Position = position

		// Close the gap the lead leaves in its old stage
		source, err := s.leadRepo.GetByStageOrdered(oldLead.StageID)
		if err != nil {
			return nil, err
		}
		for _, l := range source {
			if l.ID != oldLead.ID && l.Position > oldLead.Position {
				placements = append(placements, pipeline.Placement{
					LeadID:   l.ID,
					StageID:  oldLead.StageID,
					Position: l.Position - 1,
				})
			}
		}
	}

	descriptions := audit.Diff(oldLead, &updated, s.stageNameLookup())
	events := make([]models.LeadEvent, 0, len(descriptions))
	for _, d := range descriptions {
		events = append(events, models.LeadEvent{
			LeadID:      updated.ID,
			Description: d,
			AuthorID:    &actor.ID,
		})
	}

	if err := s.leadRepo.UpdateWithEvents(&updated, placements, events); err != nil {
		return nil, err
	}

	resp := s.toResponse(&updated)
	resp.StageName = newStage.Name
	return resp, nil
}

// DeleteLead removes a lead and its events after passing the gate
func (s *LeadService) DeleteLead(actor *models.User, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	if decision := authz.CanMutateLead(actor, lead); !decision.Allowed {
		return denialError(decision)
	}
	return s.leadRepo.DeleteAndReindex(id)
}

// DeleteEvent removes a single audit entry as an explicit administrative
// correction, gated by the owning lead's authorization.
func (s *LeadService) DeleteEvent(actor *models.User, eventID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	lead, err := s.leadRepo.GetByID(event.LeadID)
	if err != nil {
		return err
	}
	if decision := authz.CanMutateLead(actor, lead); !decision.Allowed {
		return denialError(decision)
	}
	return s.eventRepo.Delete(eventID)
}

// stageNameLookup adapts the stage repository to the audit package's lookup
func (s *LeadService) stageNameLookup() audit.StageNameLookup {
	return func(id uuid.UUID) (string, bool) {
		stage, err := s.stageRepo.GetByID(id)
		if err != nil {
			return "", false
		}
		return stage.Name, true
	}
}

// toResponse converts a Lead model to API response
func (s *LeadService) toResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:             lead.ID,
		Title:          lead.Title,
		ContactName:    lead.ContactName,
		Value:          lead.Value,
		Probability:    lead.Probability,
		Status:         lead.Status,
		StageID:        lead.StageID,
		Position:       lead.Position,
		CreatorID:      lead.CreatorID,
		AssigneeID:     lead.AssigneeID,
		NextActionDate: lead.NextActionDate,
		NextActionType: lead.NextActionType,
		NextActionNote: lead.NextActionNote,
		Color:          lead.Color,
		BorderColor:    lead.BorderColor,
		CreatedAt:      lead.CreatedAt,
		UpdatedAt:      lead.UpdatedAt,
	}
}
