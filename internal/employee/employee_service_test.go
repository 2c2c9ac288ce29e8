package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sayan-adhikary-2025/zerohr/internal/employee"
	employeeerrors "github.com/sayan-adhikary-2025/zerohr/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createUserFn     func(ctx context.Context, u employee.NewUser) error
	createEmployeeFn func(ctx context.Context, e *employee.Employee) error
	seedBalanceFn    func(ctx context.Context, seed employee.BalanceSeed) error
	listByOrgFn      func(ctx context.Context, orgID uuid.UUID) ([]employee.Employee, error)
	findByUserIDFn   func(ctx context.Context, userID uuid.UUID) (*employee.Employee, error)
	findByUsernameFn func(ctx context.Context, username string) (*employee.Employee, error)
	directReportsFn  func(ctx context.Context, managerID uuid.UUID) ([]employee.Employee, error)
	updateFn         func(ctx context.Context, userID uuid.UUID, fields map[string]any) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) CreateUser(ctx context.Context, u employee.NewUser) error {
	if f.createUserFn != nil {
		return f.createUserFn(ctx, u)
	}
	return nil
}

func (f *fakeEmployeeRepository) CreateEmployee(ctx context.Context, e *employee.Employee) error {
	if f.createEmployeeFn != nil {
		return f.createEmployeeFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) SeedBalance(ctx context.Context, seed employee.BalanceSeed) error {
	if f.seedBalanceFn != nil {
		return f.seedBalanceFn(ctx, seed)
	}
	return nil
}

func (f *fakeEmployeeRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]employee.Employee, error) {
	if f.listByOrgFn != nil {
		return f.listByOrgFn(ctx, orgID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*employee.Employee, error) {
	if f.findByUserIDFn != nil {
		return f.findByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) DirectReports(ctx context.Context, managerID uuid.UUID) ([]employee.Employee, error) {
	if f.directReportsFn != nil {
		return f.directReportsFn(ctx, managerID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, userID uuid.UUID, fields map[string]any) (bool, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, userID, fields)
	}
	return true, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, orgID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeEmployeeDirectory struct {
	resolveFn func(ctx context.Context, username string) (string, string, error)
}

func (f *fakeEmployeeDirectory) ResolveUsername(ctx context.Context, username string) (string, string, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, username)
	}
	return "", "", gorm.ErrRecordNotFound
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	createReq := func(orgID string) employee.CreateEmployeeRequest {
		return employee.CreateEmployeeRequest{
			OrgID:    orgID,
			Username: "ravi",
			Password: "strong-pass-1",
			FullName: "Ravi Kumar",
		}
	}

	t.Run("success provisions user, employee and seeded balance atomically", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		orgID := uuid.New()
		repo := &fakeEmployeeRepository{}
		var createdUser employee.NewUser
		var seeded employee.BalanceSeed

		repo.createUserFn = func(ctx context.Context, u employee.NewUser) error {
			createdUser = u
			return nil
		}
		repo.createEmployeeFn = func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, createdUser.ID, e.UserID)
			assert.Equal(t, "EMP-000001", e.EmpCode)
			return nil
		}
		repo.seedBalanceFn = func(ctx context.Context, s employee.BalanceSeed) error {
			seeded = s
			return nil
		}

		svc := employee.NewService(db, repo, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := svc.Create(ctx, createReq(orgID.String()))

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000001", resp.EmpCode)

		// Passwords are stored hashed, never verbatim.
		assert.NotEqual(t, "strong-pass-1", createdUser.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("strong-pass-1")))

		// Pending counts start at the fiscal-year defaults.
		assert.True(t, seeded.FYCasual.Equal(decimal.NewFromInt(12)))
		assert.True(t, seeded.FYEarned.Equal(decimal.NewFromInt(15)))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit emp_code skips the counter", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeEmployeeRepository{
			createEmployeeFn: func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-CUSTOM", e.EmpCode)
				return nil
			},
		}
		svc := employee.NewService(db, repo, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		req := createReq(uuid.NewString())
		req.EmpCode = "EMP-CUSTOM"
		_, err = svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate username rolls back", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeEmployeeRepository{
			createUserFn: func(ctx context.Context, u employee.NewUser) error {
				return duplicateKeyError()
			},
		}
		svc := employee.NewService(db, repo, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err = svc.Create(ctx, createReq(uuid.NewString()))

		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateUsername)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid org id", func(t *testing.T) {
		svc := employee.NewService(nil, &fakeEmployeeRepository{}, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		req := createReq("not-a-uuid")
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidOrgID)
	})
}

func duplicateKeyError() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
}

func TestEmployeeService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success restricts columns to the self-service subset", func(t *testing.T) {
		userID := uuid.New()
		repo := &fakeEmployeeRepository{
			updateFn: func(ctx context.Context, uid uuid.UUID, fields map[string]any) (bool, error) {
				assert.Equal(t, userID, uid)
				assert.Contains(t, fields, "about")
				assert.NotContains(t, fields, "fullname")
				assert.NotContains(t, fields, "emp_code")
				return true, nil
			},
			findByUserIDFn: func(ctx context.Context, uid uuid.UUID) (*employee.Employee, error) {
				return &employee.Employee{ID: uuid.New(), UserID: uid, About: "hiker"}, nil
			},
		}
		svc := employee.NewService(nil, repo, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		resp, err := svc.UpdateProfile(ctx, userID.String(), employee.UpdateProfileRequest{About: "hiker"})

		assert.NoError(t, err)
		assert.Equal(t, "hiker", resp.About)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			updateFn: func(ctx context.Context, uid uuid.UUID, fields map[string]any) (bool, error) {
				return false, nil
			},
		}
		svc := employee.NewService(nil, repo, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		_, err := svc.UpdateProfile(ctx, uuid.NewString(), employee.UpdateProfileRequest{About: "x"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_DirectReports(t *testing.T) {
	ctx := context.Background()

	t.Run("success resolves manager and lists reports", func(t *testing.T) {
		managerID := uuid.New()
		directory := &fakeEmployeeDirectory{
			resolveFn: func(ctx context.Context, username string) (string, string, error) {
				assert.Equal(t, "boss", username)
				return managerID.String(), uuid.NewString(), nil
			},
		}
		repo := &fakeEmployeeRepository{
			directReportsFn: func(ctx context.Context, mid uuid.UUID) ([]employee.Employee, error) {
				assert.Equal(t, managerID, mid)
				return []employee.Employee{
					{ID: uuid.New(), UserID: uuid.New(), FullName: "Ravi Kumar"},
				}, nil
			},
		}
		svc := employee.NewService(nil, repo, directory, &fakeCounterRepository{}, zap.NewNop())

		reports, err := svc.DirectReports(ctx, "boss")

		assert.NoError(t, err)
		assert.Len(t, reports, 1)
		assert.Equal(t, "Ravi Kumar", reports[0].FullName)
	})

	t.Run("negative unknown manager", func(t *testing.T) {
		svc := employee.NewService(nil, &fakeEmployeeRepository{}, &fakeEmployeeDirectory{}, &fakeCounterRepository{}, zap.NewNop())

		_, err := svc.DirectReports(ctx, "ghost")

		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
	})
}
