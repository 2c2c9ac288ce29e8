package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusReceived    = "Received"
	StatusShortlisted = "Shortlisted"
	StatusInterview   = "Interview"
	StatusOffered     = "Offered"
	StatusRejected    = "Rejected"
)

// validStatuses gates PUT /applications/:id/status.
var validStatuses = map[string]struct{}{
	StatusReceived:    {},
	StatusShortlisted: {},
	StatusInterview:   {},
	StatusOffered:     {},
	StatusRejected:    {},
}

type JobApplication struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrgID uuid.UUID `gorm:"type:uuid;not null;index"`

	FullName        string `gorm:"type:varchar(150);not null"`
	Email           string `gorm:"type:varchar(150);not null"`
	Phone           string `gorm:"type:varchar(30);not null"`
	CurrentLocation string `gorm:"type:varchar(100)"`
	CurrentCompany  string `gorm:"type:varchar(150)"`
	Linkedin        string `gorm:"type:varchar(255)"`
	Portfolio       string `gorm:"type:varchar(255)"`
	CoverLetter     string `gorm:"type:text"`
	AdditionalInfo  string `gorm:"type:text"`

	ResumeLink string `gorm:"type:varchar(255);not null"`

	Status    string    `gorm:"type:varchar(30);not null;default:'Received'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}

// ApplicationListItem is the org-listing row joined with the posting.
type ApplicationListItem struct {
	JobApplication
	JobTitle      string `gorm:"column:job_title"`
	JobDepartment string `gorm:"column:job_department"`
}
