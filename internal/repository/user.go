package repository

import (
	"errors"

	apperrors "lead-pipeline-backend/internal/errors"

	"lead-pipeline-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrUserExists
		}
		return translateError("create user", err, apperrors.ErrUserNotFound)
	}
	return nil
}

// GetByID retrieves a user by its UUID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError("get user", err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, translateError("get user by email", err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, translateError("count users", err, apperrors.ErrUserNotFound)
	}
	if err := r.db.Limit(limit).Offset(offset).Order("email ASC").Find(&users).Error; err != nil {
		return nil, 0, translateError("list users", err, apperrors.ErrUserNotFound)
	}
	return users, total, nil
}

// Update saves user fields
func (r *UserRepository) Update(user *models.User) error {
	return translateError("update user", r.db.Save(user).Error, apperrors.ErrUserNotFound)
}

// Delete removes a user. The RESTRICT constraints on leads make this fail
// while the user is still referenced as creator or assignee.
func (r *UserRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(res.Error, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperrors.ErrUserReferenced
		}
		return translateError("delete user", res.Error, apperrors.ErrUserNotFound)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
