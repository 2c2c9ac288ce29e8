package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	ResolveUsername(ctx context.Context, username string) (userID, orgID string, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

// ResolveUsername is the directory lookup the other modules lean on: it
// answers "who is this username" without exposing the credential columns.
func (r *repository) ResolveUsername(ctx context.Context, username string) (string, string, error) {
	var user User
	err := r.db.WithContext(ctx).
		Select("id", "org_id").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return "", "", err
	}
	return user.ID.String(), user.OrgID.String(), nil
}
