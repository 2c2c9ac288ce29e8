package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	FullName string `gorm:"column:fullname;type:varchar(255);not null"`
	Gender   string `gorm:"type:varchar(20)"`
	DOB      *time.Time `gorm:"column:dob;type:date"`
	Email    string `gorm:"type:varchar(150)"`
	Mobile   string `gorm:"type:varchar(30)"`

	JoiningDate *time.Time `gorm:"type:date"`
	EmpCode     string     `gorm:"type:varchar(30);uniqueIndex"`
	Department  string     `gorm:"type:varchar(100)"`
	Position    string     `gorm:"type:varchar(100)"`

	Address          string `gorm:"type:text"`
	BloodGroup       string `gorm:"type:varchar(10)"`
	MaritalStatus    string `gorm:"type:varchar(30)"`
	ReportingManager string `gorm:"type:varchar(100)"`
	CityFrom         string `gorm:"type:varchar(100)"`
	ProfilePhoto     string `gorm:"type:varchar(255)"`
	About            string `gorm:"type:text"`
	Hobbies          string `gorm:"type:text"`
	Linkedin         string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeManager links a manager's user id to a direct report's user id.
type EmployeeManager struct {
	ManagerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (EmployeeManager) TableName() string {
	return "employee_managers"
}
