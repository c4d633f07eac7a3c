package pipeline

import (
	"testing"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyPlan replays a plan over the observed leads and returns the resulting
// ordered list for the given stage, used to check the contiguity invariant.
func applyPlan(plan []Placement, stages map[uuid.UUID][]models.Lead) map[uuid.UUID][]models.Lead {
	byID := make(map[uuid.UUID]models.Lead)
	for _, leads := range stages {
		for _, l := range leads {
			byID[l.ID] = l
		}
	}
	for _, p := range plan {
		l := byID[p.LeadID]
		l.StageID = p.StageID
		l.Position = p.Position
		byID[l.ID] = l
	}
	out := make(map[uuid.UUID][]models.Lead)
	for _, l := range byID {
		out[l.StageID] = append(out[l.StageID], l)
	}
	return out
}

func TestPlanMoveSameStage(t *testing.T) {
	stageID := uuid.New()

	tests := []struct {
		name        string
		count       int
		activeIndex int
		targetIndex int
		wantChanged int
	}{
		{"drag down", 4, 0, 2, 3},
		{"drag up", 4, 3, 1, 3},
		{"adjacent swap", 4, 1, 2, 2},
		{"to last slot", 5, 0, 4, 5},
		{"index clamped above", 3, 0, 99, 3},
		{"index clamped below", 3, 2, -5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leads := stageLeads(stageID, tt.count)
			active := leads[tt.activeIndex]

			plan, err := PlanMove(MoveRequest{
				ActiveLeadID:  active.ID,
				SourceStageID: stageID,
				TargetStageID: stageID,
				TargetIndex:   tt.targetIndex,
			}, leads, leads)

			require.NoError(t, err)
			assert.Len(t, plan, tt.wantChanged)

			after := applyPlan(plan, map[uuid.UUID][]models.Lead{stageID: leads})
			assert.True(t, ValidatePositions(after[stageID]))
		})
	}
}

func TestPlanMoveSameStageNoOp(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 3)

	plan, err := PlanMove(MoveRequest{
		ActiveLeadID:  leads[1].ID,
		SourceStageID: stageID,
		TargetStageID: stageID,
		TargetIndex:   1,
	}, leads, leads)

	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestPlanMoveSameStageClampToNoOp(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 3)

	// Last lead dragged past the end clamps back onto itself
	plan, err := PlanMove(MoveRequest{
		ActiveLeadID:  leads[2].ID,
		SourceStageID: stageID,
		TargetStageID: stageID,
		TargetIndex:   10,
	}, leads, leads)

	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestPlanMoveCrossStage(t *testing.T) {
	sourceID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name         string
		sourceCount  int
		targetCount  int
		activeIndex  int
		targetIndex  int
		insertAfter  bool
		wantPosition int
	}{
		{"insert at head", 3, 3, 1, 0, false, 0},
		{"insert in middle", 3, 3, 0, 1, false, 1},
		{"insert below midpoint", 3, 3, 0, 1, true, 2},
		{"append at tail", 3, 3, 2, 3, false, 3},
		{"empty target column", 2, 0, 0, 0, false, 0},
		{"index clamped to append", 2, 2, 0, 99, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := stageLeads(sourceID, tt.sourceCount)
			target := stageLeads(targetID, tt.targetCount)
			active := source[tt.activeIndex]

			plan, err := PlanMove(MoveRequest{
				ActiveLeadID:  active.ID,
				SourceStageID: sourceID,
				TargetStageID: targetID,
				TargetIndex:   tt.targetIndex,
				InsertAfter:   tt.insertAfter,
			}, source, target)

			require.NoError(t, err)
			require.NotEmpty(t, plan)

			var activePlacement *Placement
			for i := range plan {
				if plan[i].LeadID == active.ID {
					activePlacement = &plan[i]
				}
			}
			require.NotNil(t, activePlacement, "plan must place the active lead")
			assert.Equal(t, targetID, activePlacement.StageID)
			assert.Equal(t, tt.wantPosition, activePlacement.Position)

			after := applyPlan(plan, map[uuid.UUID][]models.Lead{
				sourceID: source,
				targetID: target,
			})
			assert.True(t, ValidatePositions(after[sourceID]), "source stage must stay contiguous")
			assert.True(t, ValidatePositions(after[targetID]), "target stage must stay contiguous")
		})
	}
}

func TestPlanMoveCrossStageMinimalWrites(t *testing.T) {
	sourceID := uuid.New()
	targetID := uuid.New()
	source := stageLeads(sourceID, 4)
	target := stageLeads(targetID, 3)

	// Moving the last source lead to the target tail touches nothing in source
	plan, err := PlanMove(MoveRequest{
		ActiveLeadID:  source[3].ID,
		SourceStageID: sourceID,
		TargetStageID: targetID,
		TargetIndex:   3,
	}, source, target)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, source[3].ID, plan[0].LeadID)
	assert.Equal(t, targetID, plan[0].StageID)
	assert.Equal(t, 3, plan[0].Position)
}

func TestPlanMoveCrossStageShiftsBothSides(t *testing.T) {
	sourceID := uuid.New()
	targetID := uuid.New()
	source := stageLeads(sourceID, 3)
	target := stageLeads(targetID, 2)

	// Head of source to head of target: source shifts down, target shifts up
	plan, err := PlanMove(MoveRequest{
		ActiveLeadID:  source[0].ID,
		SourceStageID: sourceID,
		TargetStageID: targetID,
		TargetIndex:   0,
	}, source, target)

	require.NoError(t, err)
	// 2 source leads close the gap, active moves, 2 target leads shift
	assert.Len(t, plan, 5)
}

func TestPlanMoveActiveNotInSource(t *testing.T) {
	sourceID := uuid.New()
	source := stageLeads(sourceID, 2)

	_, err := PlanMove(MoveRequest{
		ActiveLeadID:  uuid.New(),
		SourceStageID: sourceID,
		TargetStageID: sourceID,
		TargetIndex:   0,
	}, source, source)

	assert.Error(t, err)
}

func TestPlanMoveSingleLeadStage(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 1)

	plan, err := PlanMove(MoveRequest{
		ActiveLeadID:  leads[0].ID,
		SourceStageID: stageID,
		TargetStageID: stageID,
		TargetIndex:   0,
	}, leads, leads)

	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestArrayMoveDoesNotMutateInput(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 4)
	first := leads[0].ID

	_ = arrayMove(leads, 0, 3)

	assert.Equal(t, first, leads[0].ID)
}
