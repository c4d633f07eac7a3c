package models

// User represents an account that can own and move leads
type User struct {
	BaseModel
	Name     *string  `json:"name,omitempty" gorm:"size:100"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:'OPERATOR'" validate:"required"`
	IsActive bool     `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
