package job_test

import (
	"context"
	"testing"

	"github.com/sayan-adhikary-2025/zerohr/internal/job"
	joberrors "github.com/sayan-adhikary-2025/zerohr/internal/job/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeJobRepository struct {
	createFn    func(ctx context.Context, posting *job.JobPosting) error
	findByIDFn  func(ctx context.Context, id uuid.UUID) (*job.JobPosting, error)
	listByOrgFn func(ctx context.Context, orgID uuid.UUID) ([]job.JobPosting, error)
}

func (f *fakeJobRepository) Create(ctx context.Context, posting *job.JobPosting) error {
	if f.createFn != nil {
		return f.createFn(ctx, posting)
	}
	return nil
}

func (f *fakeJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.JobPosting, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]job.JobPosting, error) {
	if f.listByOrgFn != nil {
		return f.listByOrgFn(ctx, orgID)
	}
	return nil, nil
}

type fakeJobDirectory struct {
	resolveFn func(ctx context.Context, username string) (string, string, error)
}

func (f *fakeJobDirectory) ResolveUsername(ctx context.Context, username string) (string, string, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, username)
	}
	return "", "", gorm.ErrRecordNotFound
}

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success stamps the creator's org", func(t *testing.T) {
		orgID := uuid.New()
		directory := &fakeJobDirectory{
			resolveFn: func(ctx context.Context, username string) (string, string, error) {
				assert.Equal(t, "hr_lead", username)
				return uuid.NewString(), orgID.String(), nil
			},
		}
		repo := &fakeJobRepository{
			createFn: func(ctx context.Context, posting *job.JobPosting) error {
				assert.Equal(t, orgID, posting.OrgID)
				assert.Equal(t, job.StatusActive, posting.Status)
				return nil
			},
		}
		svc := job.NewService(repo, directory, zap.NewNop())

		resp, err := svc.Create(ctx, job.CreateJobRequest{
			Username: "hr_lead",
			Title:    "Backend Engineer",
		})

		assert.NoError(t, err)
		assert.Equal(t, orgID.String(), resp.OrgID)
		assert.Equal(t, job.StatusActive, resp.Status)
	})

	t.Run("negative unknown creator", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeJobDirectory{}, zap.NewNop())

		_, err := svc.Create(ctx, job.CreateJobRequest{Username: "ghost", Title: "x"})

		assert.ErrorIs(t, err, joberrors.ErrUserNotFound)
	})
}

func TestJobService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative invalid id", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeJobDirectory{}, zap.NewNop())

		_, err := svc.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, joberrors.ErrInvalidJobID)
	})

	t.Run("negative missing posting", func(t *testing.T) {
		svc := job.NewService(&fakeJobRepository{}, &fakeJobDirectory{}, zap.NewNop())

		_, err := svc.GetByID(ctx, uuid.NewString())

		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})
}

func TestJobService_ListForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success lists the org's postings newest first", func(t *testing.T) {
		orgID := uuid.New()
		directory := &fakeJobDirectory{
			resolveFn: func(ctx context.Context, username string) (string, string, error) {
				return uuid.NewString(), orgID.String(), nil
			},
		}
		repo := &fakeJobRepository{
			listByOrgFn: func(ctx context.Context, oid uuid.UUID) ([]job.JobPosting, error) {
				assert.Equal(t, orgID, oid)
				return []job.JobPosting{
					{ID: uuid.New(), OrgID: oid, Title: "SRE"},
					{ID: uuid.New(), OrgID: oid, Title: "Backend Engineer"},
				}, nil
			},
		}
		svc := job.NewService(repo, directory, zap.NewNop())

		resp, err := svc.ListForUser(ctx, "hr_lead")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "SRE", resp[0].Title)
	})
}
