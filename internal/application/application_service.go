package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	applicationerrors "github.com/sayan-adhikary-2025/zerohr/internal/application/errors"
	"github.com/sayan-adhikary-2025/zerohr/internal/events"
	"github.com/sayan-adhikary-2025/zerohr/internal/messaging/kafka"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, req SubmitApplicationRequest, resumeLink string) (*ApplicationResponse, error)
	ListByOrg(ctx context.Context, orgID string) ([]ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (*ApplicationResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (*ApplicationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger *zap.Logger) Service {
	return &service{db: db, repo: repo, outbox: outbox, logger: logger}
}

// Submit files the application: the insert, the posting's applications
// counter bump and the outbox event commit together.
func (s *service) Submit(ctx context.Context, req SubmitApplicationRequest, resumeLink string) (*ApplicationResponse, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, applicationerrors.ErrJobNotFound
	}

	orgID, err := s.repo.ResolvePostingOrg(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrJobNotFound
		}
		return nil, err
	}

	app := &JobApplication{
		ID:              uuid.New(),
		JobID:           jobID,
		OrgID:           orgID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		CurrentLocation: req.CurrentLocation,
		CurrentCompany:  req.CurrentCompany,
		Linkedin:        req.Linkedin,
		Portfolio:       req.Portfolio,
		CoverLetter:     req.CoverLetter,
		AdditionalInfo:  req.AdditionalInfo,
		ResumeLink:      resumeLink,
		Status:          StatusReceived,
		CreatedAt:       time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, app); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, applicationerrors.ErrDuplicateApplication
		}
		return nil, err
	}

	bumped, err := qtx.IncrementApplications(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !bumped {
		// Posting vanished between the org lookup and the insert.
		return nil, applicationerrors.ErrJobNotFound
	}

	if err := s.enqueueReceived(ctx, tx, app); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("application received",
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", app.JobID.String()),
	)

	resp := mapToResponse(&ApplicationListItem{JobApplication: *app})
	return &resp, nil
}

func (s *service) enqueueReceived(ctx context.Context, tx *sql.Tx, app *JobApplication) error {
	if s.outbox == nil {
		return nil
	}

	event := events.ApplicationReceivedEvent{
		EventType:     "job.application.received",
		RequestID:     contextutil.GetRequestID(ctx),
		ApplicationID: app.ID.String(),
		JobID:         app.JobID.String(),
		OrgID:         app.OrgID.String(),
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal application received event: %w", err)
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "job_application",
		AggregateID:   event.ApplicationID,
		EventType:     event.EventType,
		Topic:         events.ApplicationReceivedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) ListByOrg(ctx context.Context, orgID string) ([]ApplicationResponse, error) {
	id, err := uuid.Parse(orgID)
	if err != nil {
		return nil, applicationerrors.ErrInvalidOrgID
	}

	items, err := s.repo.ListByOrg(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]ApplicationResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToResponse(&items[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ApplicationResponse, error) {
	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, applicationerrors.ErrInvalidApplicationID
	}

	item, err := s.repo.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrApplicationNotFound
		}
		return nil, err
	}

	resp := mapToResponse(item)
	return &resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (*ApplicationResponse, error) {
	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, applicationerrors.ErrInvalidApplicationID
	}
	if _, ok := validStatuses[status]; !ok {
		return nil, applicationerrors.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, appID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, applicationerrors.ErrApplicationNotFound
	}

	return s.GetByID(ctx, id)
}

func mapToResponse(item *ApplicationListItem) ApplicationResponse {
	return ApplicationResponse{
		ID:              item.ID.String(),
		JobID:           item.JobID.String(),
		OrgID:           item.OrgID.String(),
		FullName:        item.FullName,
		Email:           item.Email,
		Phone:           item.Phone,
		CurrentLocation: item.CurrentLocation,
		CurrentCompany:  item.CurrentCompany,
		Linkedin:        item.Linkedin,
		Portfolio:       item.Portfolio,
		CoverLetter:     item.CoverLetter,
		AdditionalInfo:  item.AdditionalInfo,
		ResumeLink:      item.ResumeLink,
		Status:          item.Status,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		JobTitle:        item.JobTitle,
		JobDepartment:   item.JobDepartment,
	}
}
