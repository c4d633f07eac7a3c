package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is one tracked sales opportunity. It belongs to exactly one
// PipelineStage at a time and holds a Position that is unique and
// contiguous (0-based) within that stage.
type Lead struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ContactName *string    `json:"contact_name,omitempty" gorm:"size:100"`
	Value       *float64   `json:"value,omitempty"`
	Probability *int       `json:"probability,omitempty" validate:"omitempty,min=0,max=100"`
	Status      LeadStatus `json:"status" gorm:"type:varchar(20);not null;default:'TODO'"`

	StageID  uuid.UUID `json:"stage_id" gorm:"type:uuid;not null;index"`
	Position int       `json:"position" gorm:"not null;default:0"`

	CreatorID  uuid.UUID  `json:"creator_id" gorm:"type:uuid;not null"`
	AssigneeID *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`

	NextActionDate *time.Time      `json:"next_action_date,omitempty"`
	NextActionType *NextActionType `json:"next_action_type,omitempty" gorm:"type:varchar(20)"`
	NextActionNote *string         `json:"next_action_note,omitempty" gorm:"size:500"`

	Color       *string `json:"color,omitempty" gorm:"size:30"`
	BorderColor *string `json:"border_color,omitempty" gorm:"size:30"`

	Stage    *PipelineStage `json:"stage,omitempty" gorm:"foreignKey:StageID"`
	Creator  *User          `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT"`
	Assignee *User          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:RESTRICT"`
	Events   []LeadEvent    `json:"events,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
