package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadEvent is one immutable audit entry on a lead. Events are append-only:
// there is no update path, and deletion exists only as an explicit
// administrative correction.
type LeadEvent struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeadID      uuid.UUID  `json:"lead_id" gorm:"type:uuid;not null;index"`
	Description string     `json:"description" gorm:"not null;size:500"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time  `json:"created_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for LeadEvent
func (LeadEvent) TableName() string {
	return "lead_events"
}

// BeforeCreate sets the UUID if not already set
func (e *LeadEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
