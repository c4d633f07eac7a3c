package repository

import (
	apperrors "lead-pipeline-backend/internal/errors"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadEventRepository handles database operations for lead audit events.
// Events are append-only; inserts happen inside the lead repository's
// transactions, so this repository only reads and (for explicit
// administrative corrections) deletes.
type LeadEventRepository struct {
	db *gorm.DB
}

// Ensure LeadEventRepository implements LeadEventRepositoryInterface
var _ LeadEventRepositoryInterface = (*LeadEventRepository)(nil)

// NewLeadEventRepository creates a new lead event repository
func NewLeadEventRepository(db *gorm.DB) *LeadEventRepository {
	return &LeadEventRepository{db: db}
}

// GetByID retrieves an event by its UUID
func (r *LeadEventRepository) GetByID(id uuid.UUID) (*models.LeadEvent, error) {
	var event models.LeadEvent
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, translateError("get event", err, apperrors.ErrEventNotFound)
	}
	return &event, nil
}

// GetByLeadID retrieves a lead's events, newest first
func (r *LeadEventRepository) GetByLeadID(leadID uuid.UUID) ([]models.LeadEvent, error) {
	var events []models.LeadEvent
	if err := r.db.Where("lead_id = ?", leadID).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, translateError("list events", err, apperrors.ErrEventNotFound)
	}
	return events, nil
}

// Delete removes an event as an explicit administrative correction
func (r *LeadEventRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.LeadEvent{}, "id = ?", id)
	if res.Error != nil {
		return translateError("delete event", res.Error, apperrors.ErrEventNotFound)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
