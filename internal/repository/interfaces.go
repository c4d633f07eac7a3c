package repository

import (
	"lead-pipeline-backend/internal/database/models"
	"lead-pipeline-backend/internal/pipeline"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// StageRepositoryInterface defines the interface for pipeline stage repository operations
type StageRepositoryInterface interface {
	Create(stage *models.PipelineStage) error
	GetByID(id uuid.UUID) (*models.PipelineStage, error)
	GetByName(name string) (*models.PipelineStage, error)
	GetAllOrdered() ([]models.PipelineStage, error)
	GetFirst() (*models.PipelineStage, error)
	Update(stage *models.PipelineStage) error
	Delete(id uuid.UUID) error
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead, seedEvent *models.LeadEvent) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetWithDetails(id uuid.UUID) (*models.Lead, error)
	GetByIDs(ids []uuid.UUID) ([]models.Lead, error)
	GetByStageOrdered(stageID uuid.UUID) ([]models.Lead, error)
	GetScheduled(assigneeID *uuid.UUID) ([]models.Lead, error)
	GetAllForExport() ([]models.Lead, error)
	NextPosition(stageID uuid.UUID) (int, error)
	CountReferencingUser(userID uuid.UUID) (int64, error)
	CountByStage(stageID uuid.UUID) (int64, error)
	UpdateWithEvents(lead *models.Lead, placements []pipeline.Placement, events []models.LeadEvent) error
	ApplyPlacements(placements []pipeline.Placement, events []models.LeadEvent) error
	DeleteAndReindex(id uuid.UUID) error
}

// LeadEventRepositoryInterface defines the interface for lead event repository operations
type LeadEventRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.LeadEvent, error)
	GetByLeadID(leadID uuid.UUID) ([]models.LeadEvent, error)
	Delete(id uuid.UUID) error
}
