package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]Attendance, error)
	FindAll(ctx context.Context, date *time.Time, status string) ([]Attendance, error)
	CloseOpenEntry(ctx context.Context, employeeID string, date, clockOut time.Time) (int64, error)
	UpdateStatusNotes(ctx context.Context, id, status string, notes *string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]Attendance, error) {
	db := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID)

	if startDate != nil && endDate != nil {
		db = db.Where("date BETWEEN ? AND ?",
			startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}

	var rows []Attendance
	err := db.Order("date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context, date *time.Time, status string) ([]Attendance, error) {
	db := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Preload("Employee")

	if date != nil {
		db = db.Where("date = ?", date.Format("2006-01-02"))
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var rows []Attendance
	err := db.Order("date DESC").Find(&rows).Error
	return rows, err
}

// CloseOpenEntry stamps the clock-out on today's open entry. The conditional
// WHERE makes it a no-op when the employee never clocked in or already
// clocked out; callers inspect the affected-row count.
func (r *repository) CloseOpenEntry(ctx context.Context, employeeID string, date, clockOut time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		Where("clock_out IS NULL").
		Update("clock_out", clockOut)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateStatusNotes(ctx context.Context, id, status string, notes *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
			"notes":  notes,
		})
	return res.RowsAffected, res.Error
}
