package leave

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	HistoryByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	BalanceByUser(ctx context.Context, userID string) (*LeaveBalance, error)
	UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error)
	DecrementPendingBalance(ctx context.Context, userID string, col BalanceColumn, amount decimal.Decimal) (bool, error)
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

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

const findByIDQuery = `
SELECT id, user_id, username, leave_wfh, type, duration, from_date, to_date, reason, status, created_on
FROM leave_requests
WHERE id = $1
`

// FindByID reads through the transaction when one is bound, so the decision
// path sees the row it is about to update.
func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	conn, err := r.conn()
	if err != nil {
		return nil, err
	}

	var l LeaveRequest
	err = conn.QueryRowContext(ctx, findByIDQuery, id).Scan(
		&l.ID, &l.UserID, &l.Username,
		&l.Kind, &l.LeaveType, &l.Duration,
		&l.FromDate, &l.ToDate, &l.Reason,
		&l.Status, &l.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) HistoryByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	var history []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_on DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

const balanceByUserQuery = `
SELECT user_id,
       fy_casual_leaves, fy_sick_leaves, fy_earned_leaves,
       pending_casual_leaves, pending_sick_leaves, pending_earned_leaves
FROM leave_master
WHERE user_id = $1
`

func (r *repository) BalanceByUser(ctx context.Context, userID string) (*LeaveBalance, error) {
	conn, err := r.conn()
	if err != nil {
		return nil, err
	}

	var b LeaveBalance
	err = conn.QueryRowContext(ctx, balanceByUserQuery, userID).Scan(
		&b.UserID,
		&b.FYCasual, &b.FYSick, &b.FYEarned,
		&b.PendingCasual, &b.PendingSick, &b.PendingEarned,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

const updateStatusIfPendingQuery = `
UPDATE leave_requests
SET status = $2
WHERE id = $1 AND status = 'Pending'
`

// UpdateStatusIfPending is the compare-and-set that serializes concurrent
// decisions: only one caller observes an affected row.
func (r *repository) UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error) {
	conn, err := r.conn()
	if err != nil {
		return false, err
	}

	res, err := conn.ExecContext(ctx, updateStatusIfPendingQuery, id, status)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// decrementQueries is the closed column-to-query map. Column names never
// enter a query string at runtime.
var decrementQueries = map[BalanceColumn]string{
	ColumnPendingCasual: `
UPDATE leave_master
SET pending_casual_leaves = pending_casual_leaves - $1
WHERE user_id = $2 AND pending_casual_leaves >= $1
`,
	ColumnPendingSick: `
UPDATE leave_master
SET pending_sick_leaves = pending_sick_leaves - $1
WHERE user_id = $2 AND pending_sick_leaves >= $1
`,
	ColumnPendingEarned: `
UPDATE leave_master
SET pending_earned_leaves = pending_earned_leaves - $1
WHERE user_id = $2 AND pending_earned_leaves >= $1
`,
}

// DecrementPendingBalance applies a guarded decrement. The balance guard in
// the WHERE clause keeps the count non-negative under concurrency; a false
// return means the balance could not cover the amount.
func (r *repository) DecrementPendingBalance(ctx context.Context, userID string, col BalanceColumn, amount decimal.Decimal) (bool, error) {
	query, ok := decrementQueries[col]
	if !ok {
		return false, fmt.Errorf("unknown balance column: %s", col)
	}

	conn, err := r.conn()
	if err != nil {
		return false, err
	}

	res, err := conn.ExecContext(ctx, query, amount, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *repository) conn() (dbConn, error) {
	if r.tx != nil {
		return r.tx, nil
	}
	return r.db.DB()
}
