package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserTypeEmployee = "Employee"
	UserTypeManager  = "Manager"
	UserTypeHR       = "HR"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	FullName     string    `gorm:"column:fullname;type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	UserType     string    `gorm:"type:varchar(30);not null;default:'Employee'"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
