package application

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, app *JobApplication) error
	IncrementApplications(ctx context.Context, jobID uuid.UUID) (bool, error)
	ResolvePostingOrg(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ApplicationListItem, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]ApplicationListItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

const createQuery = `
INSERT INTO job_applications (
    id, job_id, org_id, full_name, email, phone,
    current_location, current_company, linkedin, portfolio,
    cover_letter, additional_info, resume_link, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

func (r *repository) Create(ctx context.Context, app *JobApplication) error {
	conn, err := r.conn()
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, createQuery,
		app.ID, app.JobID, app.OrgID, app.FullName, app.Email, app.Phone,
		app.CurrentLocation, app.CurrentCompany, app.Linkedin, app.Portfolio,
		app.CoverLetter, app.AdditionalInfo, app.ResumeLink, app.Status, app.CreatedAt,
	)
	return err
}

const incrementApplicationsQuery = `
UPDATE job_postings
SET applications = applications + 1
WHERE id = $1
`

func (r *repository) IncrementApplications(ctx context.Context, jobID uuid.UUID) (bool, error) {
	conn, err := r.conn()
	if err != nil {
		return false, err
	}

	res, err := conn.ExecContext(ctx, incrementApplicationsQuery, jobID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ResolvePostingOrg reads the posting's org so an application is always filed
// under the org that owns the job, never one supplied by the applicant.
func (r *repository) ResolvePostingOrg(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	var orgID uuid.UUID
	err := r.db.WithContext(ctx).
		Raw("SELECT org_id FROM job_postings WHERE id = ?", jobID).
		Scan(&orgID).Error
	if err != nil {
		return uuid.Nil, err
	}
	if orgID == uuid.Nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return orgID, nil
}

const listItemSelect = `
job_applications.*,
job_postings.title AS job_title,
job_postings.department AS job_department
`

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ApplicationListItem, error) {
	var item ApplicationListItem
	err := r.db.WithContext(ctx).
		Model(&JobApplication{}).
		Select(listItemSelect).
		Joins("JOIN job_postings ON job_postings.id = job_applications.job_id").
		Where("job_applications.id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]ApplicationListItem, error) {
	var items []ApplicationListItem
	err := r.db.WithContext(ctx).
		Model(&JobApplication{}).
		Select(listItemSelect).
		Joins("JOIN job_postings ON job_postings.id = job_applications.job_id").
		Where("job_applications.org_id = ?", orgID).
		Order("job_applications.created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&JobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *repository) conn() (dbConn, error) {
	if r.tx != nil {
		return r.tx, nil
	}
	return r.db.DB()
}
