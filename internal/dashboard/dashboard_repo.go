package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type employeeCardRow struct {
	UserID       string
	OrgID        string
	FullName     string `gorm:"column:fullname"`
	EmpCode      string
	Department   string
	Position     string
	ProfilePhoto string
}

type balanceRow struct {
	PendingCasual float64 `gorm:"column:pending_casual_leaves"`
	PendingSick   float64 `gorm:"column:pending_sick_leaves"`
	PendingEarned float64 `gorm:"column:pending_earned_leaves"`
}

type onLeaveRow struct {
	Username string
	FullName string `gorm:"column:fullname"`
	Kind     string `gorm:"column:leave_wfh"`
	FromDate time.Time
	ToDate   time.Time
}

type birthdayRow struct {
	Username string
	FullName string `gorm:"column:fullname"`
}

type postingRow struct {
	ID         string
	Title      string
	Department string
	Location   string
	CreatedAt  time.Time
}

type Repository interface {
	EmployeeCard(ctx context.Context, username string) (*employeeCardRow, error)
	Balances(ctx context.Context, userID string) (*balanceRow, error)
	OnAcceptedLeave(ctx context.Context, orgID string, day time.Time) ([]onLeaveRow, error)
	BirthdaysOn(ctx context.Context, orgID string, day time.Time) ([]birthdayRow, error)
	LatestActivePostings(ctx context.Context, orgID string, limit int) ([]postingRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EmployeeCard(ctx context.Context, username string) (*employeeCardRow, error) {
	var row employeeCardRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id::text AS user_id, u.org_id::text AS org_id,
		       e.fullname, e.emp_code, e.department, e.position, e.profile_photo
		FROM users u
		JOIN employees e ON e.user_id = u.id
		WHERE u.username = ?
	`, username).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.UserID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) Balances(ctx context.Context, userID string) (*balanceRow, error) {
	var row balanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pending_casual_leaves, pending_sick_leaves, pending_earned_leaves
		FROM leave_master
		WHERE user_id = ?
	`, userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) OnAcceptedLeave(ctx context.Context, orgID string, day time.Time) ([]onLeaveRow, error) {
	var rows []onLeaveRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT lr.username, u.fullname, lr.leave_wfh, lr.from_date, lr.to_date
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE u.org_id = ?
		  AND lr.status = 'Accepted'
		  AND ?::date BETWEEN lr.from_date AND lr.to_date
		ORDER BY u.fullname ASC
	`, orgID, day.Format("2006-01-02")).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) BirthdaysOn(ctx context.Context, orgID string, day time.Time) ([]birthdayRow, error) {
	var rows []birthdayRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.username, e.fullname
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.org_id = ?
		  AND e.dob IS NOT NULL
		  AND EXTRACT(MONTH FROM e.dob) = ?
		  AND EXTRACT(DAY FROM e.dob) = ?
		ORDER BY e.fullname ASC
	`, orgID, int(day.Month()), day.Day()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) LatestActivePostings(ctx context.Context, orgID string, limit int) ([]postingRow, error) {
	var rows []postingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id::text, title, department, location, created_at
		FROM job_postings
		WHERE org_id = ? AND status = 'Active'
		ORDER BY created_at DESC
		LIMIT ?
	`, orgID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
