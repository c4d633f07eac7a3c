package pipeline

import (
	"testing"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func stageLeads(stageID uuid.UUID, n int) []models.Lead {
	leads := make([]models.Lead, n)
	for i := range leads {
		leads[i] = models.Lead{
			BaseModel: models.BaseModel{ID: uuid.New()},
			StageID:   stageID,
			Position:  i,
		}
	}
	return leads
}

func TestValidatePositions(t *testing.T) {
	stageID := uuid.New()

	tests := []struct {
		name      string
		positions []int
		want      bool
	}{
		{"empty stage", []int{}, true},
		{"single lead at zero", []int{0}, true},
		{"contiguous", []int{0, 1, 2, 3}, true},
		{"contiguous out of slice order", []int{2, 0, 3, 1}, true},
		{"gap", []int{0, 1, 3, 4}, false},
		{"duplicate", []int{0, 1, 1, 2}, false},
		{"negative", []int{-1, 0, 1}, false},
		{"beyond count", []int{0, 1, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leads := make([]models.Lead, len(tt.positions))
			for i, p := range tt.positions {
				leads[i] = models.Lead{
					BaseModel: models.BaseModel{ID: uuid.New()},
					StageID:   stageID,
					Position:  p,
				}
			}
			assert.Equal(t, tt.want, ValidatePositions(leads))
		})
	}
}

func TestReindex(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 3)
	// Scramble stored positions; Reindex follows slice order only
	leads[0].Position = 7
	leads[2].Position = -2

	placements := Reindex(stageID, leads)

	assert.Len(t, placements, 3)
	for i, p := range placements {
		assert.Equal(t, leads[i].ID, p.LeadID)
		assert.Equal(t, stageID, p.StageID)
		assert.Equal(t, i, p.Position)
	}
}

func TestReindexEmpty(t *testing.T) {
	placements := Reindex(uuid.New(), nil)
	assert.Empty(t, placements)
}

func TestDiffPlacementsKeepsOnlyChanges(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 4)

	current := make(map[uuid.UUID]models.Lead, len(leads))
	for _, l := range leads {
		current[l.ID] = l
	}

	// Swap the last two leads; the first two keep their slots
	reordered := []models.Lead{leads[0], leads[1], leads[3], leads[2]}
	changed := diffPlacements(Reindex(stageID, reordered), current)

	assert.Len(t, changed, 2)
	assert.Equal(t, leads[3].ID, changed[0].LeadID)
	assert.Equal(t, 2, changed[0].Position)
	assert.Equal(t, leads[2].ID, changed[1].LeadID)
	assert.Equal(t, 3, changed[1].Position)
}

func TestDiffPlacementsIdenticalOrderIsEmpty(t *testing.T) {
	stageID := uuid.New()
	leads := stageLeads(stageID, 3)

	current := make(map[uuid.UUID]models.Lead, len(leads))
	for _, l := range leads {
		current[l.ID] = l
	}

	changed := diffPlacements(Reindex(stageID, leads), current)
	assert.Empty(t, changed)
}
