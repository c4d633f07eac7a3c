package pipeline

import (
	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
)

// Placement assigns a lead to a stage at a position. Plans are expressed as
// the minimal set of placements for leads whose stage or position changed.
type Placement struct {
	LeadID   uuid.UUID `json:"lead_id"`
	StageID  uuid.UUID `json:"stage_id"`
	Position int       `json:"position"`
}

// ValidatePositions reports whether the leads of one stage hold positions
// 0..n-1 with no gaps or duplicates.
func ValidatePositions(leads []models.Lead) bool {
	seen := make([]bool, len(leads))
	for _, lead := range leads {
		if lead.Position < 0 || lead.Position >= len(leads) {
			return false
		}
		if seen[lead.Position] {
			return false
		}
		seen[lead.Position] = true
	}
	return true
}

// Reindex assigns contiguous positions 0..n-1 to the given leads by their
// slice order. It returns the full mapping; callers diff against the current
// state to obtain a minimal write set. Deterministic and stable for equal
// input order.
func Reindex(stageID uuid.UUID, leads []models.Lead) []Placement {
	placements := make([]Placement, len(leads))
	for i, lead := range leads {
		placements[i] = Placement{LeadID: lead.ID, StageID: stageID, Position: i}
	}
	return placements
}

// diffPlacements keeps only placements that change a lead's stage or position
// relative to its observed state.
func diffPlacements(placements []Placement, current map[uuid.UUID]models.Lead) []Placement {
	changed := make([]Placement, 0, len(placements))
	for _, p := range placements {
		lead, ok := current[p.LeadID]
		if !ok || lead.StageID != p.StageID || lead.Position != p.Position {
			changed = append(changed, p)
		}
	}
	return changed
}
