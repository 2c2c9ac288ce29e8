package job

import (
	"context"
	"errors"
	"time"

	joberrors "github.com/sayan-adhikary-2025/zerohr/internal/job/errors"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Directory resolves a username to its user and org ids; satisfied by the
// auth repository.
type Directory interface {
	ResolveUsername(ctx context.Context, username string) (userID, orgID string, err error)
}

type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error)
	ListForUser(ctx context.Context, username string) ([]JobResponse, error)
	GetByID(ctx context.Context, id string) (*JobResponse, error)
}

type service struct {
	repo      Repository
	directory Directory
	logger    *zap.Logger
}

func NewService(repo Repository, directory Directory, logger *zap.Logger) Service {
	return &service{repo: repo, directory: directory, logger: logger}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error) {
	_, orgIDStr, err := s.directory.ResolveUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrUserNotFound
		}
		return nil, err
	}
	orgID, err := uuid.Parse(orgIDStr)
	if err != nil {
		return nil, joberrors.ErrUserNotFound
	}

	posting := &JobPosting{
		ID:                  uuid.New(),
		OrgID:               orgID,
		Title:               req.Title,
		Location:            req.Location,
		Department:          req.Department,
		WorkType:            req.WorkType,
		JobMode:             req.JobMode,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		JobSummary:          req.JobSummary,
		AboutTeam:           req.AboutTeam,
		ReportingTo:         req.ReportingTo,
		Responsibilities:    req.Responsibilities,
		Skills:              req.Skills,
		EducationExperience: req.EducationExperience,
		AboutUs:             req.AboutUs,
		Status:              StatusActive,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, posting); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("job posting created",
		zap.String("job_id", posting.ID.String()),
		zap.String("title", posting.Title),
	)

	resp := mapToResponse(posting)
	return &resp, nil
}

func (s *service) ListForUser(ctx context.Context, username string) ([]JobResponse, error) {
	_, orgIDStr, err := s.directory.ResolveUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrUserNotFound
		}
		return nil, err
	}
	orgID, err := uuid.Parse(orgIDStr)
	if err != nil {
		return nil, joberrors.ErrUserNotFound
	}

	postings, err := s.repo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]JobResponse, 0, len(postings))
	for i := range postings {
		out = append(out, mapToResponse(&postings[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*JobResponse, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, joberrors.ErrInvalidJobID
	}

	posting, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}

	resp := mapToResponse(posting)
	return &resp, nil
}

func mapToResponse(p *JobPosting) JobResponse {
	return JobResponse{
		ID:                  p.ID.String(),
		OrgID:               p.OrgID.String(),
		Title:               p.Title,
		Location:            p.Location,
		Department:          p.Department,
		WorkType:            p.WorkType,
		JobMode:             p.JobMode,
		SalaryMin:           p.SalaryMin,
		SalaryMax:           p.SalaryMax,
		JobSummary:          p.JobSummary,
		AboutTeam:           p.AboutTeam,
		ReportingTo:         p.ReportingTo,
		Responsibilities:    p.Responsibilities,
		Skills:              p.Skills,
		EducationExperience: p.EducationExperience,
		AboutUs:             p.AboutUs,
		Status:              p.Status,
		Applications:        p.Applications,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
}
