package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, role string, isActive *bool) ([]Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	ToggleActive(ctx context.Context, id string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, role string, isActive *bool) ([]Account, error) {
	db := r.db.WithContext(ctx).Model(&Account{})
	if role != "" {
		db = db.Where("role = ?", role)
	}
	if isActive != nil {
		db = db.Where("is_active = ?", *isActive)
	}

	var accounts []Account
	err := db.Order("username").Find(&accounts).Error
	return accounts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ToggleActive flips the flag in one statement, then reloads the row so the
// caller sees the new state.
func (r *repository) ToggleActive(ctx context.Context, id string) (*Account, error) {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(ctx, id)
}
