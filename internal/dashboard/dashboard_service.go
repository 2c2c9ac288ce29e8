package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dashboarderrors "github.com/sayan-adhikary-2025/zerohr/internal/dashboard/errors"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryCacheTTL = 60 * time.Second

// SummaryCacheKey is shared with the leave-decision consumer, which deletes
// the key when a decision lands.
func SummaryCacheKey(username string) string {
	return "dashboard:summary:" + username
}

type Service interface {
	Summary(ctx context.Context, username string) (*SummaryResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{repo: repo, rdb: rdb, logger: logger}
}

func (s *service) Summary(ctx context.Context, username string) (*SummaryResponse, error) {
	if username == "" {
		return nil, dashboarderrors.ErrUsernameRequired
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SummaryCacheKey(username)).Result(); err == nil {
			var resp SummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	// singleflight collapses a thundering herd after expiry into one query
	// fan-out per username.
	v, err, _ := s.sf.Do(username, func() (any, error) {
		return s.buildSummary(ctx, username)
	})
	if err != nil {
		return nil, err
	}
	resp := v.(*SummaryResponse)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, SummaryCacheKey(username), payload, summaryCacheTTL).Err(); err != nil {
				contextutil.GetLogger(ctx, s.logger).Warn("dashboard cache write failed",
					zap.String("username", username),
					zap.Error(err),
				)
			}
		}
	}

	return resp, nil
}

func (s *service) buildSummary(ctx context.Context, username string) (*SummaryResponse, error) {
	card, err := s.repo.EmployeeCard(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dashboarderrors.ErrUserNotFound
		}
		return nil, err
	}

	balances, err := s.repo.Balances(ctx, card.UserID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.AddDate(0, 0, 1)

	onToday, err := s.repo.OnAcceptedLeave(ctx, card.OrgID, today)
	if err != nil {
		return nil, err
	}
	onTomorrow, err := s.repo.OnAcceptedLeave(ctx, card.OrgID, tomorrow)
	if err != nil {
		return nil, err
	}
	birthdays, err := s.repo.BirthdaysOn(ctx, card.OrgID, today)
	if err != nil {
		return nil, err
	}
	postings, err := s.repo.LatestActivePostings(ctx, card.OrgID, 5)
	if err != nil {
		return nil, err
	}

	resp := &SummaryResponse{
		Employee: EmployeeCard{
			UserID:       card.UserID,
			FullName:     card.FullName,
			EmpCode:      card.EmpCode,
			Department:   card.Department,
			Position:     card.Position,
			ProfilePhoto: card.ProfilePhoto,
		},
		Balances: Balances{
			RemainingCL: balances.PendingCasual,
			RemainingSL: balances.PendingSick,
			RemainingEL: balances.PendingEarned,
		},
		OnLeaveToday:    mapOnLeave(onToday),
		OnLeaveTomorrow: mapOnLeave(onTomorrow),
		BirthdaysToday:  mapBirthdays(birthdays),
		LatestPostings:  mapPostings(postings),
	}
	return resp, nil
}

func mapOnLeave(rows []onLeaveRow) []OnLeaveEntry {
	out := make([]OnLeaveEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, OnLeaveEntry{
			Username: r.Username,
			FullName: r.FullName,
			Kind:     r.Kind,
			FromDate: r.FromDate.Format("2006-01-02"),
			ToDate:   r.ToDate.Format("2006-01-02"),
		})
	}
	return out
}

func mapBirthdays(rows []birthdayRow) []BirthdayEntry {
	out := make([]BirthdayEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, BirthdayEntry{Username: r.Username, FullName: r.FullName})
	}
	return out
}

func mapPostings(rows []postingRow) []PostingEntry {
	out := make([]PostingEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, PostingEntry{
			ID:         r.ID,
			Title:      r.Title,
			Department: r.Department,
			Location:   r.Location,
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
