package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	attendanceerrors "github.com/ninoyerbas/JHRIS/internal/attendance/errors"
)

type fakeRepo struct {
	createFn            func(ctx context.Context, a *Attendance) error
	findByEmployeeFn    func(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]Attendance, error)
	findAllFn           func(ctx context.Context, date *time.Time, status string) ([]Attendance, error)
	closeOpenEntryFn    func(ctx context.Context, employeeID string, date, clockOut time.Time) (int64, error)
	updateStatusNotesFn func(ctx context.Context, id, status string, notes *string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }

func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]Attendance, error) {
	return f.findByEmployeeFn(ctx, employeeID, startDate, endDate)
}

func (f *fakeRepo) FindAll(ctx context.Context, date *time.Time, status string) ([]Attendance, error) {
	return f.findAllFn(ctx, date, status)
}

func (f *fakeRepo) CloseOpenEntry(ctx context.Context, employeeID string, date, clockOut time.Time) (int64, error) {
	return f.closeOpenEntryFn(ctx, employeeID, date, clockOut)
}

func (f *fakeRepo) UpdateStatusNotes(ctx context.Context, id, status string, notes *string) (int64, error) {
	return f.updateStatusNotesFn(ctx, id, status, notes)
}

func TestClockIn_OpensPresentEntryForToday(t *testing.T) {
	var created *Attendance
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			created = a
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: uuid.NewString()})

	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, created.Status)
	assert.NotNil(t, created.ClockIn)
	assert.Nil(t, created.ClockOut)
	assert.Equal(t, created.ID.String(), resp.AttendanceID)
}

func TestClockIn_SecondClockInConflicts(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			return errors.New(`duplicate key value violates unique constraint "uq_attendance_employee_date"`)
		},
	}
	svc := NewService(repo)

	_, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: uuid.NewString()})

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
}

func TestClockIn_MalformedEmployeeID(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			t.Fatal("must not persist")
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: "not-a-uuid"})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
}

func TestClockOut_ClosesOpenEntry(t *testing.T) {
	employeeID := uuid.NewString()

	var gotEmployee string
	repo := &fakeRepo{
		closeOpenEntryFn: func(ctx context.Context, e string, date, clockOut time.Time) (int64, error) {
			gotEmployee = e
			return 1, nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.ClockOut(context.Background(), ClockOutRequest{EmployeeID: employeeID})

	assert.NoError(t, err)
	assert.Equal(t, employeeID, gotEmployee)
	assert.NotEmpty(t, resp.ClockOut)
}

func TestClockOut_NothingOpen(t *testing.T) {
	repo := &fakeRepo{
		closeOpenEntryFn: func(ctx context.Context, e string, date, clockOut time.Time) (int64, error) {
			return 0, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.ClockOut(context.Background(), ClockOutRequest{EmployeeID: uuid.NewString()})

	assert.ErrorIs(t, err, attendanceerrors.ErrNoActiveClockIn)
}

func TestMark_StoresGivenDateAndStatus(t *testing.T) {
	var created *Attendance
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			created = a
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: uuid.NewString(),
		Date:       "2026-02-13",
		Status:     StatusAbsent,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusAbsent, created.Status)
	assert.Nil(t, created.ClockIn)
	assert.Equal(t, "2026-02-13", resp.Date)
}

func TestMark_BadDate(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: uuid.NewString(),
		Date:       "13/02/2026",
		Status:     StatusAbsent,
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
}

func TestMark_MalformedEmployeeID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: "not-a-uuid",
		Date:       "2026-02-13",
		Status:     StatusAbsent,
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
}

func TestGetByEmployee_ParsesDateRange(t *testing.T) {
	var gotStart, gotEnd *time.Time
	repo := &fakeRepo{
		findByEmployeeFn: func(ctx context.Context, e string, startDate, endDate *time.Time) ([]Attendance, error) {
			gotStart, gotEnd = startDate, endDate
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.GetByEmployee(context.Background(), uuid.NewString(), GetByEmployeeFilterRequest{
		StartDate: "2026-02-01",
		EndDate:   "2026-02-28",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2026-02-01", gotStart.Format("2006-01-02"))
	assert.Equal(t, "2026-02-28", gotEnd.Format("2006-01-02"))
}

func TestUpdate_MissingRecord(t *testing.T) {
	repo := &fakeRepo{
		updateStatusNotesFn: func(ctx context.Context, id, status string, notes *string) (int64, error) {
			return 0, nil
		},
	}
	svc := NewService(repo)

	err := svc.Update(context.Background(), uuid.NewString(), UpdateAttendanceRequest{Status: StatusLate})

	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}
