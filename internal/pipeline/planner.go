package pipeline

import (
	"fmt"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
)

// MoveRequest describes one completed drag gesture.
//
// TargetIndex is the insertion index within the target stage's current visual
// ordering, observed before the active lead is removed from its source. When
// the drop landed on a lead card, InsertAfter resolves the ambiguous midpoint
// case: true when the drop coordinate was below the hovered card's vertical
// midpoint, which shifts the insertion one slot down. A drop onto the empty
// column area is expressed as TargetIndex == len(target leads).
type MoveRequest struct {
	ActiveLeadID  uuid.UUID
	SourceStageID uuid.UUID
	TargetStageID uuid.UUID
	TargetIndex   int
	InsertAfter   bool
}

// PlanMove translates a drag gesture into the minimal set of placements that
// restores contiguous positions in the affected stage(s). The source and
// target slices are the current ordered lead lists of both stages as observed
// by the caller; for a same-stage move they describe the same stage. An empty
// plan means the gesture was a no-op and must produce no write and no event.
func PlanMove(req MoveRequest, source, target []models.Lead) ([]Placement, error) {
	activeIndex := indexOf(source, req.ActiveLeadID)
	if activeIndex < 0 {
		return nil, fmt.Errorf("active lead %s not in source stage %s", req.ActiveLeadID, req.SourceStageID)
	}

	current := make(map[uuid.UUID]models.Lead, len(source)+len(target))
	for _, l := range source {
		current[l.ID] = l
	}

	if req.SourceStageID == req.TargetStageID {
		newIndex := clamp(req.TargetIndex, 0, len(source)-1)
		if newIndex == activeIndex {
			return nil, nil
		}
		reordered := arrayMove(source, activeIndex, newIndex)
		return diffPlacements(Reindex(req.SourceStageID, reordered), current), nil
	}

	for _, l := range target {
		current[l.ID] = l
	}

	active := source[activeIndex]

	remaining := make([]models.Lead, 0, len(source)-1)
	remaining = append(remaining, source[:activeIndex]...)
	remaining = append(remaining, source[activeIndex+1:]...)

	insertAt := req.TargetIndex
	if req.InsertAfter {
		insertAt++
	}
	insertAt = clamp(insertAt, 0, len(target))

	inserted := make([]models.Lead, 0, len(target)+1)
	inserted = append(inserted, target[:insertAt]...)
	inserted = append(inserted, active)
	inserted = append(inserted, target[insertAt:]...)

	plan := diffPlacements(Reindex(req.SourceStageID, remaining), current)
	plan = append(plan, diffPlacements(Reindex(req.TargetStageID, inserted), current)...)
	return plan, nil
}

// arrayMove returns a copy of leads with the element at from moved to to.
func arrayMove(leads []models.Lead, from, to int) []models.Lead {
	out := make([]models.Lead, 0, len(leads))
	out = append(out, leads...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.Lead{moved}, out[to:]...)...)
	return out
}

func indexOf(leads []models.Lead, id uuid.UUID) int {
	for i, l := range leads {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
