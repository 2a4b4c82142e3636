package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	usererrors "github.com/ninoyerbas/JHRIS/internal/user/errors"
)

type fakeRepo struct {
	findAllFn      func(ctx context.Context, role string, isActive *bool) ([]Account, error)
	findByIDFn     func(ctx context.Context, id string) (*Account, error)
	toggleActiveFn func(ctx context.Context, id string) (*Account, error)
}

func (f *fakeRepo) FindAll(ctx context.Context, role string, isActive *bool) ([]Account, error) {
	return f.findAllFn(ctx, role, isActive)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Account, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) ToggleActive(ctx context.Context, id string) (*Account, error) {
	return f.toggleActiveFn(ctx, id)
}

func TestToggleStatus_ReportsNewState(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{
		toggleActiveFn: func(ctx context.Context, gotID string) (*Account, error) {
			assert.Equal(t, id.String(), gotID)
			return &Account{ID: id, Username: "jdoe", IsActive: false}, nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.ToggleStatus(context.Background(), id.String())

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, "User deactivated successfully", resp.Message)
}

func TestToggleStatus_UnknownUser(t *testing.T) {
	repo := &fakeRepo{
		toggleActiveFn: func(ctx context.Context, id string) (*Account, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo)

	_, err := svc.ToggleStatus(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestGetByID_BadID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}

func TestGetAll_PassesFilters(t *testing.T) {
	active := true
	var gotRole string
	var gotActive *bool
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, role string, isActive *bool) ([]Account, error) {
			gotRole, gotActive = role, isActive
			return []Account{}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.GetAll(context.Background(), GetAccountsFilterRequest{Role: "hr", IsActive: &active})

	assert.NoError(t, err)
	assert.Equal(t, "hr", gotRole)
	assert.True(t, *gotActive)
}
