package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	attendanceerrors "github.com/ninoyerbas/JHRIS/internal/attendance/errors"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (ClockInResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutResponse, error)
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string, filter GetByEmployeeFilterRequest) ([]AttendanceResponse, error)
	GetAll(ctx context.Context, filter GetAttendanceFilterRequest) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ClockIn(ctx context.Context, req ClockInRequest) (ClockInResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ClockInResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    &now,
		Status:     StatusPresent,
	}

	// The unique (employee, date) index turns a second clock-in into a
	// constraint violation, the same way an invalid employee id trips the
	// foreign key. Both collapse to one conflict error.
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("clock in rejected",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return ClockInResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	return ClockInResponse{
		Message:      "Clocked in successfully",
		AttendanceID: row.ID.String(),
		ClockIn:      now.Format(time.RFC3339),
	}, nil
}

func (s *service) ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutResponse, error) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	affected, err := s.repo.CloseOpenEntry(ctx, req.EmployeeID, today, now)
	if err != nil {
		return ClockOutResponse{}, err
	}
	if affected == 0 {
		return ClockOutResponse{}, attendanceerrors.ErrNoActiveClockIn
	}

	return ClockOutResponse{
		Message:  "Clocked out successfully",
		ClockOut: now.Format(time.RFC3339),
	}, nil
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("mark attendance rejected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string, filter GetByEmployeeFilterRequest) ([]AttendanceResponse, error) {
	var startDate, endDate *time.Time
	if filter.StartDate != "" && filter.EndDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDateFormat
		}
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDateFormat
		}
		startDate, endDate = &start, &end
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAll(ctx context.Context, filter GetAttendanceFilterRequest) ([]AttendanceResponse, error) {
	var date *time.Time
	if filter.Date != "" {
		d, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDateFormat
		}
		date = &d
	}

	rows, err := s.repo.FindAll(ctx, date, filter.Status)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) error {
	affected, err := s.repo.UpdateStatusNotes(ctx, id, req.Status, req.Notes)
	if err != nil {
		return err
	}
	if affected == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		Status:     a.Status,
		Notes:      a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FirstName + " " + a.Employee.LastName
	}
	if a.ClockIn != nil {
		v := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapToResponse(a)
	}
	return resp
}
