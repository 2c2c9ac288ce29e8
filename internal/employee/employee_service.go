package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	employeeerrors "github.com/sayan-adhikary-2025/zerohr/internal/employee/errors"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/contextutil"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default fiscal-year allotments when the request leaves them unset.
var (
	defaultFYCasual = decimal.NewFromInt(12)
	defaultFYSick   = decimal.NewFromInt(12)
	defaultFYEarned = decimal.NewFromInt(15)
)

// Directory resolves a username to its user and org ids; satisfied by the
// auth repository.
type Directory interface {
	ResolveUsername(ctx context.Context, username string) (userID, orgID string, err error)
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error)
	ListByOrg(ctx context.Context, orgID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, userID string, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*EmployeeResponse, error)
	GetByUsername(ctx context.Context, username string) (*EmployeeResponse, error)
	DirectReports(ctx context.Context, managerUsername string) ([]EmployeeResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory Directory
	counters  counter.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory Directory, counters counter.Repository, logger *zap.Logger) Service {
	return &service{
		db:        db,
		repo:      repo,
		directory: directory,
		counters:  counters,
		logger:    logger,
	}
}

// Create provisions credentials, the employee record and the seeded leave
// balance as one transaction, so a new hire never exists half-onboarded.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	orgID, err := uuid.Parse(req.OrgID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidOrgID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, employeeerrors.ErrPasswordHashing
	}

	userType := req.UserType
	if userType == "" {
		userType = "Employee"
	}

	empCode := req.EmpCode
	if empCode == "" {
		next, err := s.counters.GetNextValue(ctx, req.OrgID, "emp_code")
		if err != nil {
			return nil, err
		}
		empCode = fmt.Sprintf("EMP-%06d", next)
	}

	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return nil, err
	}
	joiningDate, err := parseOptionalDate(req.JoiningDate)
	if err != nil {
		return nil, err
	}

	userID := uuid.New()
	entity := &Employee{
		ID:               uuid.New(),
		OrgID:            orgID,
		UserID:           userID,
		FullName:         req.FullName,
		Gender:           req.Gender,
		DOB:              dob,
		Email:            req.Email,
		Mobile:           req.Mobile,
		JoiningDate:      joiningDate,
		EmpCode:          empCode,
		Department:       req.Department,
		Position:         req.Position,
		Address:          req.Address,
		BloodGroup:       req.BloodGroup,
		MaritalStatus:    req.MaritalStatus,
		ReportingManager: req.ReportingManager,
		CityFrom:         req.CityFrom,
		About:            req.About,
		Hobbies:          req.Hobbies,
		Linkedin:         req.Linkedin,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	err = qtx.CreateUser(ctx, NewUser{
		ID:           userID,
		OrgID:        orgID,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		UserType:     userType,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, employeeerrors.ErrDuplicateUsername
		}
		return nil, err
	}

	if err := qtx.CreateEmployee(ctx, entity); err != nil {
		return nil, err
	}

	if err := qtx.SeedBalance(ctx, BalanceSeed{
		UserID:   userID,
		FYCasual: allotmentOrDefault(req.FYCasualLeaves, defaultFYCasual),
		FYSick:   allotmentOrDefault(req.FYSickLeaves, defaultFYSick),
		FYEarned: allotmentOrDefault(req.FYEarnedLeaves, defaultFYEarned),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("employee onboarded",
		zap.String("user_id", userID.String()),
		zap.String("emp_code", empCode),
	)

	resp := mapToResponse(entity)
	return &resp, nil
}

func (s *service) ListByOrg(ctx context.Context, orgID string) ([]EmployeeResponse, error) {
	id, err := uuid.Parse(orgID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidOrgID
	}

	employees, err := s.repo.ListByOrg(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, mapToResponse(&employees[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, userID string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidUserID
	}

	fields := map[string]any{}
	setIfPresent(fields, "fullname", req.FullName)
	setIfPresent(fields, "gender", req.Gender)
	setIfPresent(fields, "email", req.Email)
	setIfPresent(fields, "mobile", req.Mobile)
	setIfPresent(fields, "department", req.Department)
	setIfPresent(fields, "position", req.Position)
	setIfPresent(fields, "address", req.Address)
	setIfPresent(fields, "blood_group", req.BloodGroup)
	setIfPresent(fields, "marital_status", req.MaritalStatus)
	setIfPresent(fields, "reporting_manager", req.ReportingManager)
	setIfPresent(fields, "city_from", req.CityFrom)
	setIfPresent(fields, "profile_photo", req.ProfilePhoto)
	setIfPresent(fields, "about", req.About)
	setIfPresent(fields, "hobbies", req.Hobbies)
	setIfPresent(fields, "linkedin", req.Linkedin)

	if req.DOB != "" {
		dob, err := parseOptionalDate(req.DOB)
		if err != nil {
			return nil, err
		}
		fields["dob"] = dob
	}
	if req.JoiningDate != "" {
		jd, err := parseOptionalDate(req.JoiningDate)
		if err != nil {
			return nil, err
		}
		fields["joining_date"] = jd
	}

	return s.applyUpdate(ctx, id, fields)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*EmployeeResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidUserID
	}

	fields := map[string]any{}
	setIfPresent(fields, "mobile", req.Mobile)
	setIfPresent(fields, "address", req.Address)
	setIfPresent(fields, "city_from", req.CityFrom)
	setIfPresent(fields, "profile_photo", req.ProfilePhoto)
	setIfPresent(fields, "about", req.About)
	setIfPresent(fields, "hobbies", req.Hobbies)
	setIfPresent(fields, "linkedin", req.Linkedin)

	return s.applyUpdate(ctx, id, fields)
}

func (s *service) applyUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*EmployeeResponse, error) {
	if len(fields) > 0 {
		updated, err := s.repo.Update(ctx, userID, fields)
		if err != nil {
			return nil, err
		}
		if !updated {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
	}

	entity, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	resp := mapToResponse(entity)
	return &resp, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (*EmployeeResponse, error) {
	entity, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	resp := mapToResponse(entity)
	return &resp, nil
}

func (s *service) DirectReports(ctx context.Context, managerUsername string) ([]EmployeeResponse, error) {
	managerIDStr, _, err := s.directory.ResolveUsername(ctx, managerUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrManagerNotFound
		}
		return nil, err
	}
	managerID, err := uuid.Parse(managerIDStr)
	if err != nil {
		return nil, employeeerrors.ErrManagerNotFound
	}

	reports, err := s.repo.DirectReports(ctx, managerID)
	if err != nil {
		return nil, err
	}

	out := make([]EmployeeResponse, 0, len(reports))
	for i := range reports {
		out = append(out, mapToResponse(&reports[i]))
	}
	return out, nil
}

func allotmentOrDefault(v float64, def decimal.Decimal) decimal.Decimal {
	if v <= 0 {
		return def
	}
	return decimal.NewFromFloat(v)
}

func setIfPresent(fields map[string]any, column, value string) {
	if value != "" {
		fields[column] = value
	}
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &t, nil
}

func mapToResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID.String(),
		OrgID:            e.OrgID.String(),
		UserID:           e.UserID.String(),
		FullName:         e.FullName,
		Gender:           e.Gender,
		Email:            e.Email,
		Mobile:           e.Mobile,
		EmpCode:          e.EmpCode,
		Department:       e.Department,
		Position:         e.Position,
		Address:          e.Address,
		BloodGroup:       e.BloodGroup,
		MaritalStatus:    e.MaritalStatus,
		ReportingManager: e.ReportingManager,
		CityFrom:         e.CityFrom,
		ProfilePhoto:     e.ProfilePhoto,
		About:            e.About,
		Hobbies:          e.Hobbies,
		Linkedin:         e.Linkedin,
	}
	if e.DOB != nil {
		resp.DOB = e.DOB.Format("2006-01-02")
	}
	if e.JoiningDate != nil {
		resp.JoiningDate = e.JoiningDate.Format("2006-01-02")
	}
	return resp
}
