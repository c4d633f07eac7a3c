// Package authz is the single authorization gate consulted by every mutating
// operation. Decisions are pure: no side effects, evaluated before any write,
// and a denial aborts the whole operation with no partial effect.
package authz

import (
	"lead-pipeline-backend/internal/database/models"
)

// ReasonNotAssigned is the denial reason for an OPERATOR acting on a lead
// that is not assigned to them. Callers map it onto its error sentinel.
const ReasonNotAssigned = "not assigned to you"

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision
var Allow = Decision{Allowed: true}

// Deny creates a denial with the given reason
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanMutateLead decides whether the acting user may move, edit or delete the
// given lead (or delete its events). ADMIN and MANAGER may always; an
// OPERATOR only when the lead is assigned to them.
func CanMutateLead(actor *models.User, lead *models.Lead) Decision {
	if actor == nil {
		return Deny("no acting user")
	}
	switch actor.Role {
	case models.RoleAdmin, models.RoleManager:
		return Allow
	case models.RoleOperator:
		if lead.AssigneeID != nil && *lead.AssigneeID == actor.ID {
			return Allow
		}
		return Deny(ReasonNotAssigned)
	default:
		return Deny("unknown role")
	}
}

// CanChangeAssignee reports whether the acting user may change a lead's
// assignee. An OPERATOR's submitted assignee change is not an error: callers
// silently retain the existing assignee instead.
func CanChangeAssignee(actor *models.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleManager
}

// CanImport reports whether the acting user may bulk-import leads
func CanImport(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleAdmin
}

// CanManageUsers reports whether the acting user may create, delete or
// modify user accounts
func CanManageUsers(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleAdmin
}

// CanManageStages reports whether the acting user may alter the stage set
func CanManageStages(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleAdmin
}
