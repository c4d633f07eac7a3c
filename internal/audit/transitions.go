// Package audit derives lead events from old/new state pairs. Derivation is a
// pure function so it can be tested independently of the store; events are
// appended by the transactional commit, never rewritten.
package audit

import (
	"fmt"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
)

// Seed event descriptions written at lead insertion time.
const (
	EventLeadCreated  = "Lead created"
	EventLeadImported = "Lead imported via CSV"
)

// StageNameLookup resolves a stage ID to its display name. Implementations
// return ok=false when the stage cannot be resolved.
type StageNameLookup func(id uuid.UUID) (string, bool)

// MovedDescription renders the audit line for a stage transition. The old
// name falls back to "Unknown" when unresolvable.
func MovedDescription(oldName, newName string) string {
	if oldName == "" {
		oldName = "Unknown"
	}
	return fmt.Sprintf("Moved from stage %q to %q", oldName, newName)
}

// StatusDescription renders the audit line for a status transition.
func StatusDescription(old, new models.LeadStatus) string {
	return fmt.Sprintf("Status changed from %s to %s", old, new)
}

// Diff produces the event descriptions implied by an edit or move of one
// lead. Multiple independent changes (stage and status in the same edit)
// produce multiple descriptions; a pure position change produces none.
func Diff(oldLead, newLead *models.Lead, stageName StageNameLookup) []string {
	var descriptions []string

	if oldLead.StageID != newLead.StageID {
		newName, ok := stageName(newLead.StageID)
		if ok {
			oldName, _ := stageName(oldLead.StageID)
			descriptions = append(descriptions, MovedDescription(oldName, newName))
		}
	}

	if oldLead.Status != newLead.Status {
		descriptions = append(descriptions, StatusDescription(oldLead.Status, newLead.Status))
	}

	return descriptions
}
