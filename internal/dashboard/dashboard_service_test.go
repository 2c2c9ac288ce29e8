package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	dashboarderrors "github.com/sayan-adhikary-2025/zerohr/internal/dashboard/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeDashboardRepository struct {
	cardCalls int

	employeeCardFn func(ctx context.Context, username string) (*employeeCardRow, error)
	balancesFn     func(ctx context.Context, userID string) (*balanceRow, error)
}

func (f *fakeDashboardRepository) EmployeeCard(ctx context.Context, username string) (*employeeCardRow, error) {
	f.cardCalls++
	if f.employeeCardFn != nil {
		return f.employeeCardFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDashboardRepository) Balances(ctx context.Context, userID string) (*balanceRow, error) {
	if f.balancesFn != nil {
		return f.balancesFn(ctx, userID)
	}
	return &balanceRow{}, nil
}

func (f *fakeDashboardRepository) OnAcceptedLeave(ctx context.Context, orgID string, day time.Time) ([]onLeaveRow, error) {
	return nil, nil
}

func (f *fakeDashboardRepository) BirthdaysOn(ctx context.Context, orgID string, day time.Time) ([]birthdayRow, error) {
	return nil, nil
}

func (f *fakeDashboardRepository) LatestActivePostings(ctx context.Context, orgID string, limit int) ([]postingRow, error) {
	return nil, nil
}

func cardFor(username string) *employeeCardRow {
	return &employeeCardRow{
		UserID:     uuid.NewString(),
		OrgID:      uuid.NewString(),
		FullName:   "Asha Rao",
		EmpCode:    "EMP-000042",
		Department: "Engineering",
	}
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss builds and stores summary", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{
			employeeCardFn: func(ctx context.Context, username string) (*employeeCardRow, error) {
				return cardFor(username), nil
			},
			balancesFn: func(ctx context.Context, userID string) (*balanceRow, error) {
				return &balanceRow{PendingCasual: 12, PendingSick: 1.5, PendingEarned: 15}, nil
			},
		}
		svc := NewService(repo, rdb, zap.NewNop())

		mock.ExpectGet(SummaryCacheKey("asha")).RedisNil()
		mock.Regexp().ExpectSet(SummaryCacheKey("asha"), `.*`, summaryCacheTTL).SetVal("OK")

		resp, err := svc.Summary(ctx, "asha")

		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", resp.Employee.FullName)
		assert.Equal(t, 1.5, resp.Balances.RemainingSL)
		assert.Equal(t, 1, repo.cardCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database entirely", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{}
		svc := NewService(repo, rdb, zap.NewNop())

		cached := SummaryResponse{
			Employee: EmployeeCard{FullName: "Asha Rao"},
			Balances: Balances{RemainingSL: 1.5},
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)
		mock.ExpectGet(SummaryCacheKey("asha")).SetVal(string(payload))

		resp, err := svc.Summary(ctx, "asha")

		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", resp.Employee.FullName)
		assert.Zero(t, repo.cardCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown username", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeDashboardRepository{}
		svc := NewService(repo, rdb, zap.NewNop())

		mock.ExpectGet(SummaryCacheKey("ghost")).RedisNil()

		_, err := svc.Summary(ctx, "ghost")

		assert.ErrorIs(t, err, dashboarderrors.ErrUserNotFound)
	})

	t.Run("negative empty username", func(t *testing.T) {
		svc := NewService(&fakeDashboardRepository{}, nil, zap.NewNop())

		_, err := svc.Summary(ctx, "")

		assert.ErrorIs(t, err, dashboarderrors.ErrUsernameRequired)
	})
}
