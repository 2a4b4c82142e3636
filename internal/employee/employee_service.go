package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	employeeerrors "github.com/ninoyerbas/JHRIS/internal/employee/errors"
	"github.com/ninoyerbas/JHRIS/internal/events"
	"github.com/ninoyerbas/JHRIS/internal/messaging/kafka"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employee{
		ID:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		EmployeeNumber: req.EmployeeNumber,
		Department:     req.Department,
		Position:       req.Position,
		Phone:          req.Phone,
		Address:        req.Address,
		Status:         StatusActive,
	}

	if req.UserID != nil && *req.UserID != "" {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		e.UserID = &userID
	}

	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		e.HireDate = &hireDate
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Warn("create employee persist failed",
			zap.String("employee_number", req.EmployeeNumber),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.writeCreatedEvent(ctx, tx, e); err != nil {
			s.logger.Error("write employee created event failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
	)

	return mapToResponse(*e), nil
}

func (s *service) writeCreatedEvent(ctx context.Context, tx *sql.Tx, e *Employee) error {
	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:      "employee.created",
		EmployeeID:     e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "employee",
		AggregateID:   e.ID.String(),
		EventType:     "employee.created",
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter.Status, filter.Department)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

// GetOptions serves the id+name select list through a Redis cache.
// singleflight collapses concurrent cache fills into one query.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var cached []EmployeeOption
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx, StatusActive, "")
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, len(rows))
		for i, e := range rows {
			options[i] = EmployeeOption{
				ID:       e.ID.String(),
				FullName: e.FirstName + " " + e.LastName,
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				_ = s.rdb.Set(ctx, EmployeeOptionsKey, payload, 5*time.Minute).Err()
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.Department = req.Department
	e.Position = req.Position
	e.Phone = req.Phone
	e.Address = req.Address
	e.Status = req.Status

	if err := s.repo.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("employee updated", zap.String("employee_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("employee deactivated", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		EmployeeNumber: e.EmployeeNumber,
		Department:     e.Department,
		Position:       e.Position,
		Phone:          e.Phone,
		Address:        e.Address,
		Status:         e.Status,
	}
	if e.UserID != nil {
		v := e.UserID.String()
		resp.UserID = &v
	}
	if e.HireDate != nil {
		v := e.HireDate.Format("2006-01-02")
		resp.HireDate = &v
	}
	return resp
}
