package repository

import (
	apperrors "lead-pipeline-backend/internal/errors"

	"lead-pipeline-backend/internal/database/models"
	"lead-pipeline-backend/internal/pipeline"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads, including the
// transactional commit that applies a move plan together with its derived
// audit events.
type LeadRepository struct {
	db *gorm.DB
}

// Ensure LeadRepository implements LeadRepositoryInterface
var _ LeadRepositoryInterface = (*LeadRepository)(nil)

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a lead together with its seed event in one transaction
func (r *LeadRepository) Create(lead *models.Lead, seedEvent *models.LeadEvent) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lead).Error; err != nil {
			return err
		}
		if seedEvent != nil {
			seedEvent.LeadID = lead.ID
			if err := tx.Create(seedEvent).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError("create lead", err, apperrors.ErrLeadNotFound)
}

// GetByID retrieves a lead by its UUID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, "id = ?", id).Error; err != nil {
		return nil, translateError("get lead", err, apperrors.ErrLeadNotFound)
	}
	return &lead, nil
}

// GetWithDetails retrieves a lead with its stage, assignee and events
func (r *LeadRepository) GetWithDetails(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.
		Preload("Stage").
		Preload("Assignee").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, translateError("get lead details", err, apperrors.ErrLeadNotFound)
	}
	return &lead, nil
}

// GetByIDs retrieves the leads matching the given IDs, in no particular order
func (r *LeadRepository) GetByIDs(ids []uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	if err := r.db.Where("id IN ?", ids).Find(&leads).Error; err != nil {
		return nil, translateError("get leads", err, apperrors.ErrLeadNotFound)
	}
	return leads, nil
}

// GetByStageOrdered retrieves the leads of one stage in visual order
func (r *LeadRepository) GetByStageOrdered(stageID uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	if err := r.db.Where("stage_id = ?", stageID).Order("position ASC").Find(&leads).Error; err != nil {
		return nil, translateError("get stage leads", err, apperrors.ErrLeadNotFound)
	}
	return leads, nil
}

// GetScheduled retrieves leads with a scheduled next action, soonest first,
// with stage and assignee loaded. A non-nil assigneeID narrows the result to
// that assignee's leads.
func (r *LeadRepository) GetScheduled(assigneeID *uuid.UUID) ([]models.Lead, error) {
	query := r.db.
		Preload("Stage").
		Preload("Assignee").
		Where("next_action_date IS NOT NULL")
	if assigneeID != nil {
		query = query.Where("assignee_id = ?", *assigneeID)
	}

	var leads []models.Lead
	if err := query.Order("next_action_date ASC").Find(&leads).Error; err != nil {
		return nil, translateError("get scheduled leads", err, apperrors.ErrLeadNotFound)
	}
	return leads, nil
}

// GetAllForExport retrieves every lead with stage and assignee, newest first
func (r *LeadRepository) GetAllForExport() ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.
		Preload("Stage").
		Preload("Assignee").
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, translateError("export leads", err, apperrors.ErrLeadNotFound)
	}
	return leads, nil
}

// NextPosition returns the append position for a new lead in the given stage
func (r *LeadRepository) NextPosition(stageID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.Model(&models.Lead{}).Where("stage_id = ?", stageID).Count(&count).Error; err != nil {
		return 0, translateError("next position", err, apperrors.ErrStageNotFound)
	}
	return int(count), nil
}

// CountReferencingUser counts leads that reference the user as creator or assignee
func (r *LeadRepository) CountReferencingUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).
		Where("creator_id = ? OR assignee_id = ?", userID, userID).
		Count(&count).Error
	if err != nil {
		return 0, translateError("count user leads", err, apperrors.ErrUserNotFound)
	}
	return count, nil
}

// CountByStage counts the leads currently placed in a stage
func (r *LeadRepository) CountByStage(stageID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Lead{}).Where("stage_id = ?", stageID).Count(&count).Error; err != nil {
		return 0, translateError("count stage leads", err, apperrors.ErrStageNotFound)
	}
	return count, nil
}

// UpdateWithEvents saves a lead's fields, applies any companion placements
// (repositioning other leads when an edit moved this one across stages) and
// appends the derived audit events in one transaction. All writes succeed
// together or none are applied.
func (r *LeadRepository) UpdateWithEvents(lead *models.Lead, placements []pipeline.Placement, events []models.LeadEvent) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(lead).Error; err != nil {
			return err
		}
		if err := applyPlacementsTx(tx, placements); err != nil {
			return err
		}
		for i := range events {
			events[i].LeadID = lead.ID
			if err := tx.Create(&events[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if apperrors.IsConflict(err) {
		return err
	}
	return translateError("update lead", err, apperrors.ErrLeadNotFound)
}

// ApplyPlacements commits a move plan and its audit events as one atomic
// unit: every stage/position write and every event insert for one gesture
// succeeds together, or the prior state remains fully intact. A lead that
// vanished mid-flight aborts the whole batch as a conflict.
func (r *LeadRepository) ApplyPlacements(placements []pipeline.Placement, events []models.LeadEvent) error {
	if len(placements) == 0 && len(events) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := applyPlacementsTx(tx, placements); err != nil {
			return err
		}
		for i := range events {
			if err := tx.Create(&events[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if apperrors.IsConflict(err) {
		return err
	}
	return translateError("apply placements", err, apperrors.ErrLeadNotFound)
}

// applyPlacementsTx writes stage/position assignments inside an open
// transaction, aborting when a targeted lead vanished mid-flight.
func applyPlacementsTx(tx *gorm.DB, placements []pipeline.Placement) error {
	for _, p := range placements {
		res := tx.Model(&models.Lead{}).
			Where("id = ?", p.LeadID).
			Updates(map[string]interface{}{
				"stage_id": p.StageID,
				"position": p.Position,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("lead " + p.LeadID.String() + " no longer exists")
		}
	}
	return nil
}

// DeleteAndReindex removes a lead (its events cascade with it) and closes the
// position gap it leaves in its stage, all in one transaction.
func (r *LeadRepository) DeleteAndReindex(id uuid.UUID) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var lead models.Lead
		if err := tx.First(&lead, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Lead{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Lead{}).
			Where("stage_id = ? AND position > ?", lead.StageID, lead.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
	return translateError("delete lead", err, apperrors.ErrLeadNotFound)
}
