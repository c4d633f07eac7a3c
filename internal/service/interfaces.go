package service

import (
	"io"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BoardServiceInterface defines the interface for board service
type BoardServiceInterface interface {
	GetBoard() (*BoardResponse, error)
	MoveLead(actor *models.User, input MoveLeadInput) error
	Reorder(actor *models.User, updates []PlacementInput) error
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	CreateLead(actor *models.User, req *CreateLeadRequest) (*LeadResponse, error)
	GetLead(id uuid.UUID) (*LeadResponse, error)
	GetSchedule(assigneeID *uuid.UUID) ([]ScheduleEntry, error)
	UpdateLead(actor *models.User, id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error)
	DeleteLead(actor *models.User, id uuid.UUID) error
	DeleteEvent(actor *models.User, eventID uuid.UUID) error
}

// ImportExportServiceInterface defines the interface for CSV import/export
type ImportExportServiceInterface interface {
	ImportLead(actor *models.User, row ImportRow) (uuid.UUID, error)
	ImportCSV(actor *models.User, r io.Reader) (*ImportResult, error)
	ExportCSV(w io.Writer) error
}

// StageServiceInterface defines the interface for stage service
type StageServiceInterface interface {
	GetStages() ([]StageResponse, error)
	CreateStage(actor *models.User, req *CreateStageRequest) (*StageResponse, error)
	UpdateStage(actor *models.User, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error)
	DeleteStage(actor *models.User, id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(actor *models.User, req *CreateUserRequest) (*UserResponse, error)
	GetUsers(actor *models.User, page, pageSize int) (*UserListResponse, error)
	ChangeRole(actor *models.User, id uuid.UUID, role models.UserRole) (*UserResponse, error)
	SetActive(actor *models.User, id uuid.UUID, active bool) (*UserResponse, error)
	DeleteUser(actor *models.User, id uuid.UUID) error
}
