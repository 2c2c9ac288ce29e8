package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "Active"
	StatusClosed = "Closed"
)

type JobPosting struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID uuid.UUID `gorm:"type:uuid;not null;index"`

	Title      string `gorm:"type:varchar(150);not null"`
	Location   string `gorm:"type:varchar(100)"`
	Department string `gorm:"type:varchar(100)"`
	WorkType   string `gorm:"type:varchar(50)"`
	JobMode    string `gorm:"type:varchar(50)"`

	SalaryMin int64 `gorm:"type:bigint"`
	SalaryMax int64 `gorm:"type:bigint"`

	JobSummary          string `gorm:"type:text"`
	AboutTeam           string `gorm:"type:text"`
	ReportingTo         string `gorm:"type:varchar(100)"`
	Responsibilities    string `gorm:"type:text"`
	Skills              string `gorm:"type:text"`
	EducationExperience string `gorm:"type:text"`
	AboutUs             string `gorm:"type:text"`

	Status       string    `gorm:"type:varchar(20);not null;default:'Active'"`
	Applications int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
