package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/ninoyerbas/JHRIS/internal/auth/errors"
	"github.com/ninoyerbas/JHRIS/internal/rbac"
)

type fakeRepo struct {
	createFn        func(ctx context.Context, user *User) error
	getByUsernameFn func(ctx context.Context, username string) (*User, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeRepo) Create(ctx context.Context, user *User) error {
	return f.createFn(ctx, user)
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegister_DefaultsToEmployeeRole(t *testing.T) {
	var created *User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error {
			created = user
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret!",
	})

	assert.NoError(t, err)
	assert.Equal(t, rbac.RoleEmployee, created.Role)
	assert.True(t, created.IsActive)
	assert.Equal(t, created.ID.String(), resp.UserID)
	// stored as a bcrypt hash, never the raw password
	assert.NotEqual(t, "s3cret!", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret!")))
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error {
			t.Fatal("must not persist an invalid role")
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret!",
		Role:     "superuser",
	})

	assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error {
			return errors.New("duplicate key value violates unique constraint")
		},
	}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret!",
	})

	assert.ErrorIs(t, err, autherrors.ErrUserAlreadyExists)
}

func TestLogin_IssuesTokenWithIdentityClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	repo := &fakeRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return &User{
				ID:       userID,
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: hashOf(t, "s3cret!"),
				Role:     rbac.RoleManager,
				IsActive: true,
			}, nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "jdoe", Password: "s3cret!"})

	assert.NoError(t, err)
	assert.Equal(t, rbac.RoleManager, resp.User.Role)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "jdoe", claims["username"])
	assert.Equal(t, rbac.RoleManager, claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return &User{
				ID:       uuid.New(),
				Password: hashOf(t, "s3cret!"),
				IsActive: true,
			}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "jdoe", Password: "wrong"})

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	repo := &fakeRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return nil, errors.New("record not found")
		},
	}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUserDenied(t *testing.T) {
	repo := &fakeRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return &User{
				ID:       uuid.New(),
				Password: hashOf(t, "s3cret!"),
				IsActive: false,
			}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "jdoe", Password: "s3cret!"})

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestGetMe(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) {
			assert.Equal(t, userID, id)
			return &User{ID: userID, Username: "jdoe", Email: "jdoe@example.com", Role: rbac.RoleEmployee}, nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.GetMe(context.Background(), userID.String())

	assert.NoError(t, err)
	assert.Equal(t, "jdoe", resp.Username)
}

func TestGetMe_BadID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetMe(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}
