package repository

import (
	"errors"

	apperrors "lead-pipeline-backend/internal/errors"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// StageRepository handles database operations for pipeline stages
type StageRepository struct {
	db *gorm.DB
}

// Ensure StageRepository implements StageRepositoryInterface
var _ StageRepositoryInterface = (*StageRepository)(nil)

// NewStageRepository creates a new stage repository
func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// Create inserts a new pipeline stage. The unique index on stage_order
// rejects a second stage at the same column position.
func (r *StageRepository) Create(stage *models.PipelineStage) error {
	if err := r.db.Create(stage).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrStageOrderExists
		}
		return translateError("create stage", err, apperrors.ErrStageNotFound)
	}
	return nil
}

// GetByID retrieves a stage by its UUID
func (r *StageRepository) GetByID(id uuid.UUID) (*models.PipelineStage, error) {
	var stage models.PipelineStage
	if err := r.db.First(&stage, "id = ?", id).Error; err != nil {
		return nil, translateError("get stage", err, apperrors.ErrStageNotFound)
	}
	return &stage, nil
}

// GetByName retrieves a stage by its display name, case-insensitively
func (r *StageRepository) GetByName(name string) (*models.PipelineStage, error) {
	var stage models.PipelineStage
	if err := r.db.First(&stage, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, translateError("get stage by name", err, apperrors.ErrStageNotFound)
	}
	return &stage, nil
}

// GetAllOrdered retrieves all stages in column order
func (r *StageRepository) GetAllOrdered() ([]models.PipelineStage, error) {
	var stages []models.PipelineStage
	if err := r.db.Order("stage_order ASC").Find(&stages).Error; err != nil {
		return nil, translateError("list stages", err, apperrors.ErrStageNotFound)
	}
	return stages, nil
}

// GetFirst retrieves the lowest-order stage, where new leads land
func (r *StageRepository) GetFirst() (*models.PipelineStage, error) {
	var stage models.PipelineStage
	if err := r.db.Order("stage_order ASC").First(&stage).Error; err != nil {
		return nil, translateError("get first stage", err, apperrors.ErrStageNotFound)
	}
	return &stage, nil
}

// Update saves stage fields
func (r *StageRepository) Update(stage *models.PipelineStage) error {
	return translateError("update stage", r.db.Save(stage).Error, apperrors.ErrStageNotFound)
}

// Delete removes a stage. Fails while leads still reference it.
func (r *StageRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.PipelineStage{}, "id = ?", id)
	if res.Error != nil {
		return translateError("delete stage", res.Error, apperrors.ErrStageNotFound)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStageNotFound
	}
	return nil
}
