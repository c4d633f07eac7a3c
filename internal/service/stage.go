package service

import (
	"lead-pipeline-backend/internal/authz"
	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StageService provides pipeline stage management. Stage existence is a
// precondition for lead placement, so deletion fails while leads remain.
type StageService struct {
	stageRepo repository.StageRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	validator *validator.Validate
}

// Ensure StageService implements StageServiceInterface
var _ StageServiceInterface = (*StageService)(nil)

// NewStageService creates a new StageService
func NewStageService(
	stageRepo repository.StageRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	validator *validator.Validate,
) *StageService {
	return &StageService{
		stageRepo: stageRepo,
		leadRepo:  leadRepo,
		validator: validator,
	}
}

// CreateStageRequest carries the fields for a new stage column
type CreateStageRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Order int    `json:"order" validate:"required,min=1"`
}

// UpdateStageRequest renames or reorders a stage column
type UpdateStageRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Order int    `json:"order" validate:"required,min=1"`
}

// StageResponse represents a single stage in API responses
type StageResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Order int       `json:"order"`
}

// GetStages returns all stages in column order
func (s *StageService) GetStages() ([]StageResponse, error) {
	stages, err := s.stageRepo.GetAllOrdered()
	if err != nil {
		return nil, err
	}
	responses := make([]StageResponse, len(stages))
	for i, stage := range stages {
		responses[i] = toStageResponse(&stage)
	}
	return responses, nil
}

// CreateStage adds a new column to the board
func (s *StageService) CreateStage(actor *models.User, req *CreateStageRequest) (*StageResponse, error) {
	if !authz.CanManageStages(actor) {
		return nil, apperrors.ErrAdminOnly
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	stage := &models.PipelineStage{Name: req.Name, Order: req.Order}
	if err := s.stageRepo.Create(stage); err != nil {
		return nil, err
	}
	resp := toStageResponse(stage)
	return &resp, nil
}

// UpdateStage renames or reorders a column
func (s *StageService) UpdateStage(actor *models.User, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error) {
	if !authz.CanManageStages(actor) {
		return nil, apperrors.ErrAdminOnly
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	stage, err := s.stageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	stage.Name = req.Name
	stage.Order = req.Order
	if err := s.stageRepo.Update(stage); err != nil {
		return nil, err
	}
	resp := toStageResponse(stage)
	return &resp, nil
}

// DeleteStage removes an empty column. A stage that still contains leads is
// never deleted.
func (s *StageService) DeleteStage(actor *models.User, id uuid.UUID) error {
	if !authz.CanManageStages(actor) {
		return apperrors.ErrAdminOnly
	}
	count, err := s.leadRepo.CountByStage(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrStageReferenced
	}
	return s.stageRepo.Delete(id)
}

func toStageResponse(stage *models.PipelineStage) StageResponse {
	return StageResponse{
		ID:    stage.ID,
		Name:  stage.Name,
		Order: stage.Order,
	}
}
