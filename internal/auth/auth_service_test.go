package auth_test

import (
	"context"
	"testing"

	"github.com/sayan-adhikary-2025/zerohr/internal/auth"
	autherrors "github.com/sayan-adhikary-2025/zerohr/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	getByUsernameFn   func(ctx context.Context, username string) (*auth.User, error)
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	resolveUsernameFn func(ctx context.Context, username string) (string, string, error)
}

func (f *fakeAuthRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	if f.getByUsernameFn != nil {
		return f.getByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) ResolveUsername(ctx context.Context, username string) (string, string, error) {
	if f.resolveUsernameFn != nil {
		return f.resolveUsernameFn(ctx, username)
	}
	return "", "", gorm.ErrRecordNotFound
}

func hashedUser(t *testing.T, username, password string) *auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &auth.User{
		ID:           uuid.New(),
		OrgID:        uuid.New(),
		Username:     username,
		FullName:     "Asha Rao",
		PasswordHash: string(hash),
		UserType:     auth.UserTypeEmployee,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success issues signed tokens", func(t *testing.T) {
		user := hashedUser(t, "asha", "s3cret-pass")
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				assert.Equal(t, "asha", username)
				return user, nil
			},
		}
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(ctx, "asha", "s3cret-pass")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, auth.UserTypeEmployee, resp.UserType)

		token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "asha", claims["username"])
		assert.Equal(t, user.OrgID.String(), claims["org_id"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		user := hashedUser(t, "asha", "s3cret-pass")
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return user, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "asha", "wrong")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, _, _, err := svc.Login(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success rotates tokens", func(t *testing.T) {
		user := hashedUser(t, "asha", "s3cret-pass")
		repo := &fakeAuthRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
				return user, nil
			},
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				assert.Equal(t, user.ID, id)
				return user, nil
			},
		}
		svc := auth.NewService(repo)

		_, refresh, _, err := svc.Login(ctx, "asha", "s3cret-pass")
		assert.NoError(t, err)

		access, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, user.Username, resp.Username)
	})

	t.Run("negative garbage token", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("negative invalid user id", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, err := svc.GetMe(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, err := svc.GetMe(ctx, uuid.NewString())

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
