package service

import (
	"fmt"
	"time"

	"lead-pipeline-backend/internal/authz"
	"lead-pipeline-backend/internal/database/models"
	apperrors "lead-pipeline-backend/internal/errors"
	"lead-pipeline-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService provides user management, restricted to ADMIN actors. A user
// referenced by any lead as creator or assignee cannot be deleted.
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		leadRepo:  leadRepo,
		validator: validator,
	}
}

// CreateUserRequest carries the fields for a new user account. Credentials
// are issued by the external identity collaborator, not here.
type CreateUserRequest struct {
	Name  *string         `json:"name,omitempty" validate:"omitempty,max=100"`
	Email string          `json:"email" validate:"required,email,max=255"`
	Role  models.UserRole `json:"role" validate:"required"`
}

// UserResponse represents a single user in API responses
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      *string         `json:"name,omitempty"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateUser creates a new active user account
func (s *UserService) CreateUser(actor *models.User, req *CreateUserRequest) (*UserResponse, error) {
	if !authz.CanManageUsers(actor) {
		return nil, apperrors.ErrAdminOnly
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// GetUsers lists users with pagination
func (s *UserService) GetUsers(actor *models.User, page, pageSize int) (*UserListResponse, error) {
	if !authz.CanManageUsers(actor) {
		return nil, apperrors.ErrAdminOnly
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = toUserResponse(&u)
	}
	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ChangeRole updates a user's role
func (s *UserService) ChangeRole(actor *models.User, id uuid.UUID, role models.UserRole) (*UserResponse, error) {
	if !authz.CanManageUsers(actor) {
		return nil, apperrors.ErrAdminOnly
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// SetActive toggles a user's active flag. Deactivated users keep their lead
// references; they just cannot act anymore.
func (s *UserService) SetActive(actor *models.User, id uuid.UUID, active bool) (*UserResponse, error) {
	if !authz.CanManageUsers(actor) {
		return nil, apperrors.ErrAdminOnly
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser removes a user account. Fails with a conflict while any lead
// still references the user as creator or assignee.
func (s *UserService) DeleteUser(actor *models.User, id uuid.UUID) error {
	if !authz.CanManageUsers(actor) {
		return apperrors.ErrAdminOnly
	}
	count, err := s.leadRepo.CountReferencingUser(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrUserReferenced
	}
	return s.userRepo.Delete(id)
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
