package job

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, posting *JobPosting) error
	FindByID(ctx context.Context, id uuid.UUID) (*JobPosting, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]JobPosting, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, posting *JobPosting) error {
	return r.db.WithContext(ctx).Create(posting).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	var posting JobPosting
	err := r.db.WithContext(ctx).First(&posting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]JobPosting, error) {
	var postings []JobPosting
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&postings).Error
	if err != nil {
		return nil, err
	}
	return postings, nil
}
