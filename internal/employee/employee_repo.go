package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, status, department string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, e *Employee) error
	Deactivate(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create persists the employee. With a transaction attached the insert runs
// as plain SQL on that transaction, so it commits and rolls back together
// with the outbox event written alongside it.
func (r *repository) Create(ctx context.Context, e *Employee) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(e).Error
	}

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
        INSERT INTO employees (
            id, user_id, first_name, last_name, employee_number,
            department, position, hire_date, phone, address, status,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.tx.ExecContext(
		ctx, query,
		e.ID, e.UserID, e.FirstName, e.LastName, e.EmployeeNumber,
		e.Department, e.Position, e.HireDate, e.Phone, e.Address, e.Status,
		e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, status, department string) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if department != "" {
		db = db.Where("department = ?", department)
	}

	var employees []Employee
	err := db.Order("last_name, first_name").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Deactivate is the soft delete: employees are flipped to inactive, never
// removed, so attendance and leave history keep their references.
func (r *repository) Deactivate(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("status", StatusInactive)
	return res.RowsAffected, res.Error
}
