package employee

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewUser carries the credentials row created alongside an employee.
type NewUser struct {
	ID           uuid.UUID
	OrgID        uuid.UUID
	Username     string
	FullName     string
	PasswordHash string
	UserType     string
}

// BalanceSeed is the leave_master row seeded for a new employee. Pending
// counts start equal to the fiscal-year allotments.
type BalanceSeed struct {
	UserID   uuid.UUID
	FYCasual decimal.Decimal
	FYSick   decimal.Decimal
	FYEarned decimal.Decimal
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateUser(ctx context.Context, u NewUser) error
	CreateEmployee(ctx context.Context, e *Employee) error
	SeedBalance(ctx context.Context, seed BalanceSeed) error

	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Employee, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	DirectReports(ctx context.Context, managerID uuid.UUID) ([]Employee, error)
	Update(ctx context.Context, userID uuid.UUID, fields map[string]any) (bool, error)
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

const createUserQuery = `
INSERT INTO users (id, org_id, username, fullname, password_hash, user_type, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
`

func (r *repository) CreateUser(ctx context.Context, u NewUser) error {
	conn, err := r.conn()
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, createUserQuery,
		u.ID, u.OrgID, u.Username, u.FullName, u.PasswordHash, u.UserType,
	)
	return err
}

const createEmployeeQuery = `
INSERT INTO employees (
    id, org_id, user_id, fullname, gender, dob, email, mobile,
    joining_date, emp_code, department, position,
    address, blood_group, marital_status, reporting_manager, city_from,
    profile_photo, about, hobbies, linkedin, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8,
    $9, $10, $11, $12,
    $13, $14, $15, $16, $17,
    $18, $19, $20, $21, NOW(), NOW()
)
`

func (r *repository) CreateEmployee(ctx context.Context, e *Employee) error {
	conn, err := r.conn()
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, createEmployeeQuery,
		e.ID, e.OrgID, e.UserID, e.FullName, e.Gender, e.DOB, e.Email, e.Mobile,
		e.JoiningDate, e.EmpCode, e.Department, e.Position,
		e.Address, e.BloodGroup, e.MaritalStatus, e.ReportingManager, e.CityFrom,
		e.ProfilePhoto, e.About, e.Hobbies, e.Linkedin,
	)
	return err
}

const seedBalanceQuery = `
INSERT INTO leave_master (
    user_id,
    fy_casual_leaves, fy_sick_leaves, fy_earned_leaves,
    pending_casual_leaves, pending_sick_leaves, pending_earned_leaves
) VALUES ($1, $2, $3, $4, $2, $3, $4)
`

func (r *repository) SeedBalance(ctx context.Context, seed BalanceSeed) error {
	conn, err := r.conn()
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, seedBalanceQuery,
		seed.UserID, seed.FYCasual, seed.FYSick, seed.FYEarned,
	)
	return err
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("fullname ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = employees.user_id").
		Where("users.username = ?", username).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) DirectReports(ctx context.Context, managerID uuid.UUID) ([]Employee, error) {
	var reports []Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN employee_managers ON employee_managers.employee_id = employees.user_id").
		Where("employee_managers.manager_id = ?", managerID).
		Order("employees.fullname ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *repository) Update(ctx context.Context, userID uuid.UUID, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *repository) conn() (dbConn, error) {
	if r.tx != nil {
		return r.tx, nil
	}
	return r.db.DB()
}
