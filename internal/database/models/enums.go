package models

import "strings"

// LeadStatus is the lifecycle status of a lead
type LeadStatus string

const (
	LeadStatusTodo      LeadStatus = "TODO"
	LeadStatusWon       LeadStatus = "WON"
	LeadStatusLost      LeadStatus = "LOST"
	LeadStatusCancelled LeadStatus = "CANCELLED"
)

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusTodo, LeadStatusWon, LeadStatusLost, LeadStatusCancelled:
		return true
	}
	return false
}

// CoerceLeadStatus maps a raw string to a LeadStatus, falling back to TODO
// for anything unrecognized. Used by tolerant CSV import.
func CoerceLeadStatus(raw string) LeadStatus {
	s := LeadStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return LeadStatusTodo
	}
	return s
}

// NextActionType classifies the scheduled follow-up on a lead
type NextActionType string

const (
	NextActionCall    NextActionType = "CALL"
	NextActionEmail   NextActionType = "EMAIL"
	NextActionMeeting NextActionType = "MEETING"
	NextActionTask    NextActionType = "TASK"
)

// IsValid checks if the NextActionType is valid
func (t NextActionType) IsValid() bool {
	switch t {
	case NextActionCall, NextActionEmail, NextActionMeeting, NextActionTask:
		return true
	}
	return false
}

// CoerceNextActionType maps a raw string to a NextActionType, returning nil
// for anything unrecognized. Used by tolerant CSV import.
func CoerceNextActionType(raw string) *NextActionType {
	t := NextActionType(strings.ToUpper(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return nil
	}
	return &t
}

// UserRole defines what a user may do on the board
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleOperator UserRole = "OPERATOR"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}
