package service

import (
	"fmt"

	"lead-pipeline-backend/internal/audit"
	"lead-pipeline-backend/internal/authz"
	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/pipeline"
	"lead-pipeline-backend/internal/repository"

	"github.com/google/uuid"
)

// BoardService applies drag gestures against the board: it plans the minimal
// position updates, gates them through authorization, derives audit events
// and commits everything atomically.
type BoardService struct {
	leadRepo  repository.LeadRepositoryInterface
	stageRepo repository.StageRepositoryInterface
}

// Ensure BoardService implements BoardServiceInterface
var _ BoardServiceInterface = (*BoardService)(nil)

// NewBoardService creates a new BoardService
func NewBoardService(leadRepo repository.LeadRepositoryInterface, stageRepo repository.StageRepositoryInterface) *BoardService {
	return &BoardService{
		leadRepo:  leadRepo,
		stageRepo: stageRepo,
	}
}

// MoveLeadInput describes one completed drag gesture from the client.
// TargetIndex is the insertion index within the target stage's current visual
// ordering; InsertAfter is true when the drop point was below the hovered
// card's vertical midpoint.
type MoveLeadInput struct {
	LeadID        uuid.UUID `json:"lead_id" validate:"required"`
	TargetStageID uuid.UUID `json:"target_stage_id" validate:"required"`
	TargetIndex   int       `json:"target_index" validate:"min=0"`
	InsertAfter   bool      `json:"insert_after"`
}

// PlacementInput is one row of a client-computed batch reorder
type PlacementInput struct {
	LeadID   uuid.UUID `json:"lead_id" validate:"required"`
	StageID  uuid.UUID `json:"stage_id" validate:"required"`
	Position int       `json:"position" validate:"min=0"`
}

// BoardLead is one lead as rendered on the board
type BoardLead struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	ContactName    *string           `json:"contact_name,omitempty"`
	Value          *float64          `json:"value,omitempty"`
	Probability    *int              `json:"probability,omitempty"`
	Status         models.LeadStatus `json:"status"`
	Position       int               `json:"position"`
	AssigneeID     *uuid.UUID        `json:"assignee_id,omitempty"`
	NextActionDate *string           `json:"next_action_date,omitempty"`
	Color          *string           `json:"color,omitempty"`
	BorderColor    *string           `json:"border_color,omitempty"`
}

// BoardColumn is one stage column with its leads in visual order
type BoardColumn struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Order int         `json:"order"`
	Leads []BoardLead `json:"leads"`
}

// BoardResponse is the full board projection
type BoardResponse struct {
	Stages []BoardColumn `json:"stages"`
}

// GetBoard returns all stages in column order with their leads in position
// order. Reads run outside any transaction and may be slightly stale, but
// commits are atomic so the snapshot is always internally consistent.
func (s *BoardService) GetBoard() (*BoardResponse, error) {
	stages, err := s.stageRepo.GetAllOrdered()
	if err != nil {
		return nil, err
	}

	resp := &BoardResponse{Stages: make([]BoardColumn, 0, len(stages))}
	for _, stage := range stages {
		leads, err := s.leadRepo.GetByStageOrdered(stage.ID)
		if err != nil {
			return nil, err
		}
		col := BoardColumn{
			ID:    stage.ID,
			Name:  stage.Name,
			Order: stage.Order,
			Leads: make([]BoardLead, 0, len(leads)),
		}
		for _, lead := range leads {
			col.Leads = append(col.Leads, toBoardLead(&lead))
		}
		resp.Stages = append(resp.Stages, col)
	}
	return resp, nil
}

// MoveLead applies one drag gesture: authorization gate, move planning,
// transition recording and the transactional commit. A gesture that drops
// the lead back onto its original slot produces zero writes and zero events.
func (s *BoardService) MoveLead(actor *models.User, input MoveLeadInput) error {
	lead, err := s.leadRepo.GetByID(input.LeadID)
	if err != nil {
		return err
	}

	if decision := authz.CanMutateLead(actor, lead); !decision.Allowed {
		return denialError(decision)
	}

	targetStage, err := s.stageRepo.GetByID(input.TargetStageID)
	if err != nil {
		return err
	}

	source, err := s.leadRepo.GetByStageOrdered(lead.StageID)
	if err != nil {
		return err
	}
	target := source
	if lead.StageID != targetStage.ID {
		if target, err = s.leadRepo.GetByStageOrdered(targetStage.ID); err != nil {
			return err
		}
	}

	plan, err := pipeline.PlanMove(pipeline.MoveRequest{
		ActiveLeadID:  input.LeadID,
		SourceStageID: lead.StageID,
		TargetStageID: targetStage.ID,
		TargetIndex:   input.TargetIndex,
		InsertAfter:   input.InsertAfter,
	}, source, target)
	if err != nil {
		return apperrors.NewConflictError(fmt.Sprintf("stale board state: %v", err))
	}
	if len(plan) == 0 {
		return nil
	}

	var events []models.LeadEvent
	if lead.StageID != targetStage.ID {
		oldName := ""
		if oldStage, err := s.stageRepo.GetByID(lead.StageID); err == nil {
			oldName = oldStage.Name
		}
		events = append(events, models.LeadEvent{
			LeadID:      lead.ID,
			Description: audit.MovedDescription(oldName, targetStage.Name),
			AuthorID:    &actor.ID,
		})
	}

	return s.leadRepo.ApplyPlacements(plan, events)
}

// Reorder applies a client-computed batch of placements from a multi-lead
// drag completion. Authorization is all-or-nothing: an OPERATOR is denied if
// any lead in the batch is not theirs, and nothing is applied. Only leads
// whose stage actually changed receive a "Moved" event.
func (s *BoardService) Reorder(actor *models.User, updates []PlacementInput) error {
	if len(updates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(updates))
	for _, u := range updates {
		ids = append(ids, u.LeadID)
	}
	leads, err := s.leadRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]models.Lead, len(leads))
	for _, l := range leads {
		byID[l.ID] = l
	}

	// Gate the whole batch before touching anything
	for _, u := range updates {
		lead, ok := byID[u.LeadID]
		if !ok {
			return apperrors.ErrLeadNotFound
		}
		if decision := authz.CanMutateLead(actor, &lead); !decision.Allowed {
			return denialError(decision)
		}
	}

	stages, err := s.stageRepo.GetAllOrdered()
	if err != nil {
		return err
	}
	stageNames := make(map[uuid.UUID]string, len(stages))
	for _, st := range stages {
		stageNames[st.ID] = st.Name
	}

	placements := make([]pipeline.Placement, 0, len(updates))
	var events []models.LeadEvent
	for _, u := range updates {
		lead := byID[u.LeadID]
		if lead.StageID == u.StageID && lead.Position == u.Position {
			continue
		}
		if _, ok := stageNames[u.StageID]; !ok {
			return apperrors.ErrStageNotFound
		}
		placements = append(placements, pipeline.Placement{
			LeadID:   u.LeadID,
			StageID:  u.StageID,
			Position: u.Position,
		})
		if lead.StageID != u.StageID {
			events = append(events, models.LeadEvent{
				LeadID:      u.LeadID,
				Description: audit.MovedDescription(stageNames[lead.StageID], stageNames[u.StageID]),
				AuthorID:    &actor.ID,
			})
		}
	}

	if len(placements) == 0 {
		return nil
	}
	if err := s.checkReorderOutcome(placements, byID); err != nil {
		return err
	}

	return s.leadRepo.ApplyPlacements(placements, events)
}

// checkReorderOutcome materializes the post-state of every stage the batch
// touches and rejects a batch that would leave duplicate positions or gaps.
// The client computes the placements, but the server owns the invariant.
func (s *BoardService) checkReorderOutcome(placements []pipeline.Placement, observed map[uuid.UUID]models.Lead) error {
	placed := make(map[uuid.UUID]pipeline.Placement, len(placements))
	affected := make(map[uuid.UUID]bool)
	for _, p := range placements {
		placed[p.LeadID] = p
		affected[p.StageID] = true
		affected[observed[p.LeadID].StageID] = true
	}

	for stageID := range affected {
		current, err := s.leadRepo.GetByStageOrdered(stageID)
		if err != nil {
			return err
		}

		post := make([]models.Lead, 0, len(current)+len(placements))
		inStage := make(map[uuid.UUID]bool, len(current))
		for _, lead := range current {
			inStage[lead.ID] = true
			p, ok := placed[lead.ID]
			if !ok {
				post = append(post, lead)
				continue
			}
			if p.StageID != stageID {
				continue // moved out of this stage
			}
			lead.Position = p.Position
			post = append(post, lead)
		}
		for _, p := range placements {
			if p.StageID != stageID || inStage[p.LeadID] {
				continue
			}
			moved := observed[p.LeadID]
			moved.StageID = p.StageID
			moved.Position = p.Position
			post = append(post, moved)
		}

		if !pipeline.ValidatePositions(post) {
			return apperrors.NewValidationError("placements", "batch would leave a stage with duplicate or non-contiguous positions")
		}
	}
	return nil
}

// denialError maps an authorization denial onto the error taxonomy. The
// not-assigned denial surfaces as its sentinel so callers can match it.
func denialError(decision authz.Decision) error {
	if decision.Reason == authz.ReasonNotAssigned {
		return apperrors.ErrNotAssigned
	}
	return apperrors.NewAuthorizationError("Unauthorized: " + decision.Reason)
}

func toBoardLead(lead *models.Lead) BoardLead {
	bl := BoardLead{
		ID:          lead.ID,
		Title:       lead.Title,
		ContactName: lead.ContactName,
		Value:       lead.Value,
		Probability: lead.Probability,
		Status:      lead.Status,
		Position:    lead.Position,
		AssigneeID:  lead.AssigneeID,
		Color:       lead.Color,
		BorderColor: lead.BorderColor,
	}
	if lead.NextActionDate != nil {
		d := lead.NextActionDate.Format("2006-01-02T15:04:05Z07:00")
		bl.NextActionDate = &d
	}
	return bl
}
