package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sayan-adhikary-2025/zerohr/internal/events"
	leaveerrors "github.com/sayan-adhikary-2025/zerohr/internal/leave/errors"
	"github.com/sayan-adhikary-2025/zerohr/internal/messaging/kafka"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Directory resolves a username to its user and org ids. Satisfied by the
// auth repository; kept local so this package does not import auth.
type Directory interface {
	ResolveUsername(ctx context.Context, username string) (userID, orgID string, err error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock

type Service interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (*LeaveRequestResponse, error)
	Decide(ctx context.Context, leaveID, action string) (*DecisionResponse, error)
	Overview(ctx context.Context, userID string) (*OverviewResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory Directory
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory Directory, outbox kafka.OutboxRepository, logger *zap.Logger) Service {
	return &service{
		db:        db,
		repo:      repo,
		directory: directory,
		outbox:    outbox,
		logger:    logger,
	}
}

var (
	halfDay = decimal.RequireFromString("0.5")
	fullDay = decimal.NewFromInt(1)
)

func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) (*LeaveRequestResponse, error) {
	if req.Kind == KindLeave {
		if _, ok := BalanceColumnForType(req.LeaveType); !ok {
			return nil, leaveerrors.ErrInvalidLeaveType
		}
		if req.Duration != DurationFullDay && req.Duration != DurationHalfDay {
			return nil, leaveerrors.ErrInvalidDuration
		}
	} else {
		// WFH never touches balances; type and duration are meaningless.
		req.LeaveType = ""
		req.Duration = ""
	}

	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateFormat
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateFormat
	}
	if from.After(to) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	userIDStr, _, err := s.directory.ResolveUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrUserNotFound
		}
		return nil, err
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}

	entity := &LeaveRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  req.Username,
		Kind:      req.Kind,
		LeaveType: req.LeaveType,
		Duration:  req.Duration,
		FromDate:  from,
		ToDate:    to,
		Reason:    req.Reason,
		Status:    StatusPending,
		CreatedOn: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("leave request submitted",
		zap.String("leave_id", entity.ID.String()),
		zap.String("username", entity.Username),
		zap.String("kind", entity.Kind),
	)

	resp := mapRequestToResponse(entity)
	return &resp, nil
}

// Decide flips a pending request to Accepted or Rejected. The status flip,
// the balance decrement and the outbox insert commit or roll back together.
func (s *service) Decide(ctx context.Context, leaveID, action string) (*DecisionResponse, error) {
	if action != StatusAccepted && action != StatusRejected {
		return nil, leaveerrors.ErrInvalidAction
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	if l.Status != StatusPending {
		return nil, leaveerrors.ErrAlreadyProcessed
	}

	var message string
	switch {
	case action == StatusRejected:
		if err := s.flipStatus(ctx, qtx, leaveID, StatusRejected); err != nil {
			return nil, err
		}
		message = "Rejected successfully"

	case l.Kind == KindWFH:
		if err := s.flipStatus(ctx, qtx, leaveID, StatusAccepted); err != nil {
			return nil, err
		}
		message = "WFH accepted successfully"

	default:
		if err := s.acceptLeave(ctx, qtx, l); err != nil {
			return nil, err
		}
		message = "Leave accepted and balance updated"
	}

	if err := s.enqueueDecision(ctx, tx, l, action); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("leave decided",
		zap.String("leave_id", leaveID),
		zap.String("status", action),
		zap.String("kind", l.Kind),
	)

	return &DecisionResponse{
		LeaveID: leaveID,
		Status:  action,
		Message: message,
	}, nil
}

// acceptLeave handles the balance-bearing branch: check the pending count,
// flip the status, then apply the guarded decrement.
func (s *service) acceptLeave(ctx context.Context, qtx Repository, l *LeaveRequest) error {
	col, ok := BalanceColumnForType(l.LeaveType)
	if !ok {
		return leaveerrors.ErrUnknownLeaveType
	}

	var amount decimal.Decimal
	switch l.Duration {
	case DurationHalfDay:
		amount = halfDay
	case DurationFullDay:
		amount = fullDay
	default:
		return leaveerrors.ErrUnknownDuration
	}

	balance, err := qtx.BalanceByUser(ctx, l.UserID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leaveerrors.ErrBalanceNotFound
		}
		return err
	}
	if balance.PendingFor(col).LessThan(amount) {
		return leaveerrors.NoPendingLeave(l.LeaveType)
	}

	if err := s.flipStatus(ctx, qtx, l.ID.String(), StatusAccepted); err != nil {
		return err
	}

	decremented, err := qtx.DecrementPendingBalance(ctx, l.UserID.String(), col, amount)
	if err != nil {
		return err
	}
	if !decremented {
		// A racing decision drained the balance between the read and the
		// decrement; the guard refused and the whole tx rolls back.
		return leaveerrors.NoPendingLeave(l.LeaveType)
	}
	return nil
}

func (s *service) flipStatus(ctx context.Context, qtx Repository, leaveID, status string) error {
	flipped, err := qtx.UpdateStatusIfPending(ctx, leaveID, status)
	if err != nil {
		return err
	}
	if !flipped {
		return leaveerrors.ErrAlreadyProcessed
	}
	return nil
}

func (s *service) enqueueDecision(ctx context.Context, tx *sql.Tx, l *LeaveRequest, status string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveDecidedEvent{
		EventType:  "leave.decided",
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    l.ID.String(),
		UserID:     l.UserID.String(),
		Username:   l.Username,
		Kind:       l.Kind,
		LeaveType:  l.LeaveType,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal leave decided event: %w", err)
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "leave_request",
		AggregateID:   event.LeaveID,
		EventType:     event.EventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) Overview(ctx context.Context, userID string) (*OverviewResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}

	balance, err := s.repo.BalanceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, leaveerrors.ErrBalanceNotFound
		}
		return nil, err
	}

	history, err := s.repo.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &OverviewResponse{
		RemainingCL: balance.PendingCasual.InexactFloat64(),
		RemainingSL: balance.PendingSick.InexactFloat64(),
		RemainingEL: balance.PendingEarned.InexactFloat64(),
		FYCL:        balance.FYCasual.InexactFloat64(),
		FYSL:        balance.FYSick.InexactFloat64(),
		FYEL:        balance.FYEarned.InexactFloat64(),
		History:     make([]LeaveRequestResponse, 0, len(history)),
	}
	for i := range history {
		resp.History = append(resp.History, mapRequestToResponse(&history[i]))
	}
	return resp, nil
}

func mapRequestToResponse(l *LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		Username:  l.Username,
		Kind:      l.Kind,
		LeaveType: l.LeaveType,
		Duration:  l.Duration,
		FromDate:  l.FromDate.Format("2006-01-02"),
		ToDate:    l.ToDate.Format("2006-01-02"),
		Reason:    l.Reason,
		Status:    l.Status,
		CreatedOn: l.CreatedOn.Format(time.RFC3339),
	}
}
