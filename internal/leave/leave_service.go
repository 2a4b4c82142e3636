package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ninoyerbas/JHRIS/internal/events"
	leaveerrors "github.com/ninoyerbas/JHRIS/internal/leave/errors"
	"github.com/ninoyerbas/JHRIS/internal/messaging/kafka"
)

// EmployeeDirectory is the slice of the employee module the debit needs.
type EmployeeDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	SeedDefaultTypes(ctx context.Context) error
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error)
	GetAllRequests(ctx context.Context, filter GetLeaveRequestsFilterRequest) ([]LeaveRequestResponse, error)
	GetRequestByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	Decide(ctx context.Context, id, deciderID string, req DecideLeaveRequest) error
	GetBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)
	InitializeBalance(ctx context.Context, req InitializeBalanceRequest) (LeaveBalanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func defaultLeaveTypes() []LeaveType {
	describe := func(s string) *string { return &s }
	return []LeaveType{
		{ID: uuid.New(), Name: "Annual Leave", Description: describe("Yearly vacation allowance"), MaxDays: 15},
		{ID: uuid.New(), Name: "Sick Leave", Description: describe("Medical leave"), MaxDays: 10},
		{ID: uuid.New(), Name: "Personal Leave", Description: describe("Personal time off"), MaxDays: 5},
		{ID: uuid.New(), Name: "Maternity Leave", Description: describe("Maternity leave"), MaxDays: 90},
		{ID: uuid.New(), Name: "Paternity Leave", Description: describe("Paternity leave"), MaxDays: 7},
	}
}

func (s *service) SeedDefaultTypes(ctx context.Context) error {
	if err := s.repo.SeedDefaultTypes(ctx, defaultLeaveTypes()); err != nil {
		return err
	}
	s.logger.Info("leave type catalog seeded")
	return nil
}

func (s *service) ListTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		resp[i] = LeaveTypeResponse{
			ID:          t.ID.String(),
			Name:        t.Name,
			Description: t.Description,
			MaxDays:     t.MaxDays,
		}
	}
	return resp, nil
}

// CreateRequest persists the request as submitted. Days are taken from the
// caller, never recomputed from the date range, and no balance is touched
// until an approval lands.
func (s *service) CreateRequest(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrLeaveRequestCreateFailed
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	lr := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        req.Days,
		Reason:      req.Reason,
		Status:      StatusPending,
	}

	if err := s.repo.CreateRequest(ctx, lr); err != nil {
		s.logger.Warn("create leave request persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return CreateLeaveResponse{}, mapRequestCreateError(err)
	}

	s.logger.Info("leave request created",
		zap.String("request_id", lr.ID.String()),
		zap.String("employee_id", lr.EmployeeID.String()),
		zap.Int("days", lr.Days),
	)

	return CreateLeaveResponse{
		Message:   "Leave request submitted successfully",
		RequestID: lr.ID.String(),
	}, nil
}

func (s *service) GetAllRequests(ctx context.Context, filter GetLeaveRequestsFilterRequest) ([]LeaveRequestResponse, error) {
	rows, err := s.repo.FindAllRequests(ctx, filter.Status, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveRequestResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapRequestToResponse(row)
	}
	return resp, nil
}

func (s *service) GetRequestByID(ctx context.Context, id string) (LeaveRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
	}

	row, err := s.repo.FindRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrLeaveRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	return mapRequestToResponse(*row), nil
}

// Decide moves a pending request to approved or rejected. The transition and
// the decision event commit together; the balance debit runs afterwards and
// is deliberately best-effort, so a missing balance row never blocks or
// reverses a decision.
func (s *service) Decide(ctx context.Context, id, deciderID string, req DecideLeaveRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrLeaveRequestNotDecidable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	target, err := qtx.FindRequestForDebit(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leaveerrors.ErrLeaveRequestNotDecidable
		}
		return err
	}

	affected, err := qtx.UpdateStatusIfPending(ctx, id, req.Status, deciderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return leaveerrors.ErrLeaveRequestNotDecidable
	}

	if s.outbox != nil {
		if err := s.writeDecidedEvent(ctx, tx, id, deciderID, req.Status, target); err != nil {
			s.logger.Error("write leave decided event failed", zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("leave request decided",
		zap.String("request_id", id),
		zap.String("status", req.Status),
		zap.String("decided_by", deciderID),
	)

	if req.Status == StatusApproved {
		s.applyBalanceDebit(ctx, id, target)
	}

	return nil
}

func (s *service) writeDecidedEvent(ctx context.Context, tx *sql.Tx, requestID, deciderID, status string, target *debitTarget) error {
	payload, err := json.Marshal(events.LeaveDecidedEvent{
		EventType:   "leave.decided",
		RequestID:   requestID,
		EmployeeID:  target.EmployeeID.String(),
		LeaveTypeID: target.LeaveTypeID.String(),
		Days:        target.Days,
		Status:      status,
		DecidedBy:   deciderID,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "leave_request",
		AggregateID:   requestID,
		EventType:     "leave.decided",
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// applyBalanceDebit charges the approved days against the current year's
// balance. Every failure path only logs: the approval has already committed
// and stands regardless.
func (s *service) applyBalanceDebit(ctx context.Context, requestID string, target *debitTarget) {
	exists, err := s.employees.Exists(ctx, target.EmployeeID.String())
	if err != nil {
		s.logger.Error("balance debit skipped, employee lookup failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}
	if !exists {
		s.logger.Warn("balance debit skipped, employee not found",
			zap.String("request_id", requestID),
			zap.String("employee_id", target.EmployeeID.String()),
		)
		return
	}

	year := time.Now().Year()
	affected, err := s.repo.DebitBalance(ctx, target.EmployeeID, target.LeaveTypeID, year, target.Days)
	if err != nil {
		s.logger.Error("balance debit failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}
	if affected == 0 {
		s.logger.Warn("balance debit skipped, no balance row for year",
			zap.String("request_id", requestID),
			zap.String("employee_id", target.EmployeeID.String()),
			zap.String("leave_type_id", target.LeaveTypeID.String()),
			zap.Int("year", year),
		)
		return
	}

	s.logger.Info("leave balance debited",
		zap.String("request_id", requestID),
		zap.String("employee_id", target.EmployeeID.String()),
		zap.Int("days", target.Days),
		zap.Int("year", year),
	)
}

func (s *service) GetBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = time.Now().Year()
	}

	rows, err := s.repo.FindBalances(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveBalanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = LeaveBalanceResponse{
			ID:            row.ID.String(),
			EmployeeID:    row.EmployeeID.String(),
			LeaveTypeID:   row.LeaveTypeID.String(),
			LeaveTypeName: row.LeaveTypeName,
			Description:   row.Description,
			Year:          row.Year,
			TotalDays:     row.TotalDays,
			UsedDays:      row.UsedDays,
			RemainingDays: row.RemainingDays,
		}
	}
	return resp, nil
}

// InitializeBalance opens a fresh allocation: nothing used, everything
// remaining.
func (s *service) InitializeBalance(ctx context.Context, req InitializeBalanceRequest) (LeaveBalanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	leaveTypeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrBalanceAlreadyExists
	}

	b := &LeaveBalance{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		Year:          req.Year,
		TotalDays:     req.TotalDays,
		UsedDays:      0,
		RemainingDays: req.TotalDays,
	}

	if err := s.repo.CreateBalance(ctx, b); err != nil {
		s.logger.Warn("initialize leave balance failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_type_id", req.LeaveTypeID),
			zap.Int("year", req.Year),
			zap.Error(err),
		)
		return LeaveBalanceResponse{}, mapBalanceCreateError(err)
	}

	s.logger.Info("leave balance initialized",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("year", req.Year),
		zap.Int("total_days", req.TotalDays),
	)

	return LeaveBalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays,
	}, nil
}

func mapRequestToResponse(row leaveRequestRow) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            row.ID.String(),
		EmployeeID:    row.EmployeeID.String(),
		EmployeeName:  row.EmployeeName,
		LeaveTypeID:   row.LeaveTypeID.String(),
		LeaveTypeName: row.LeaveTypeName,
		StartDate:     row.StartDate.Format("2006-01-02"),
		EndDate:       row.EndDate.Format("2006-01-02"),
		Days:          row.Days,
		Reason:        row.Reason,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt.Format(time.RFC3339),
	}
	if row.ApprovedBy != nil {
		v := row.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if row.ApprovedAt != nil {
		v := row.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
