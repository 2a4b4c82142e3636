package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	usererrors "github.com/ninoyerbas/JHRIS/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter GetAccountsFilterRequest) ([]AccountResponse, error)
	GetByID(ctx context.Context, id string) (AccountResponse, error)
	ToggleStatus(ctx context.Context, id string) (ToggleStatusResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter GetAccountsFilterRequest) ([]AccountResponse, error) {
	accounts, err := s.repo.FindAll(ctx, filter.Role, filter.IsActive)
	if err != nil {
		return nil, err
	}

	resp := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AccountResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AccountResponse{}, usererrors.ErrInvalidUserID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, usererrors.ErrUserNotFound
		}
		return AccountResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) ToggleStatus(ctx context.Context, id string) (ToggleStatusResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ToggleStatusResponse{}, usererrors.ErrInvalidUserID
	}

	a, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ToggleStatusResponse{}, usererrors.ErrUserNotFound
		}
		return ToggleStatusResponse{}, err
	}

	s.logger.Info("user status toggled",
		zap.String("user_id", id),
		zap.Bool("is_active", a.IsActive),
	)

	message := "User deactivated successfully"
	if a.IsActive {
		message = "User activated successfully"
	}
	return ToggleStatusResponse{Message: message, IsActive: a.IsActive}, nil
}

func mapToResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
