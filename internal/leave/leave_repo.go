package leave

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRequest(ctx context.Context, lr *LeaveRequest) error
	FindAllRequests(ctx context.Context, status, employeeID string) ([]leaveRequestRow, error)
	FindRequestByID(ctx context.Context, id string) (*leaveRequestRow, error)
	FindRequestForDebit(ctx context.Context, id string) (*debitTarget, error)
	UpdateStatusIfPending(ctx context.Context, id, status, decidedBy string) (int64, error)
	DebitBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (int64, error)
	FindBalances(ctx context.Context, employeeID string, year int) ([]leaveBalanceRow, error)
	CreateBalance(ctx context.Context, b *LeaveBalance) error
	ListTypes(ctx context.Context) ([]LeaveType, error)
	SeedDefaultTypes(ctx context.Context, types []LeaveType) error
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

func (r *repository) CreateRequest(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

const requestSelect = `
lr.id,
lr.employee_id,
e.first_name || ' ' || e.last_name AS employee_name,
lr.leave_type_id,
lt.name AS leave_type_name,
lr.start_date,
lr.end_date,
lr.days,
lr.reason,
lr.status,
lr.approved_by,
lr.approved_at,
lr.created_at
`

func (r *repository) requestQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leave_requests lr").
		Select(requestSelect).
		Joins("JOIN employees e ON e.id = lr.employee_id").
		Joins("JOIN leave_types lt ON lt.id = lr.leave_type_id")
}

func (r *repository) FindAllRequests(ctx context.Context, status, employeeID string) ([]leaveRequestRow, error) {
	db := r.requestQuery(ctx)
	if status != "" {
		db = db.Where("lr.status = ?", status)
	}
	if employeeID != "" {
		db = db.Where("lr.employee_id = ?", employeeID)
	}

	var rows []leaveRequestRow
	err := db.Order("lr.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FindRequestByID(ctx context.Context, id string) (*leaveRequestRow, error) {
	var row leaveRequestRow
	res := r.requestQuery(ctx).Where("lr.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// FindRequestForDebit reads the fields the approval debit needs. It runs
// through the open transaction when one is set so the decide flow sees its
// own snapshot.
func (r *repository) FindRequestForDebit(ctx context.Context, id string) (*debitTarget, error) {
	query := `SELECT employee_id, leave_type_id, days FROM leave_requests WHERE id = $1`

	var t debitTarget
	var row *sql.Row
	if r.tx != nil {
		row = r.tx.QueryRowContext(ctx, query, id)
	} else {
		sqlDB, err := r.db.DB()
		if err != nil {
			return nil, err
		}
		row = sqlDB.QueryRowContext(ctx, query, id)
	}

	if err := row.Scan(&t.EmployeeID, &t.LeaveTypeID, &t.Days); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatusIfPending is the single state transition a request ever makes.
// The status predicate keeps a second decision from overwriting the first;
// the caller inspects the affected count.
func (r *repository) UpdateStatusIfPending(ctx context.Context, id, status, decidedBy string) (int64, error) {
	query := `
UPDATE leave_requests
SET
	status = $2,
	approved_by = $3,
	approved_at = NOW(),
	updated_at = NOW()
WHERE id = $1 AND status = 'pending'
`

	var res sql.Result
	var err error
	if r.tx != nil {
		res, err = r.tx.ExecContext(ctx, query, id, status, decidedBy)
	} else {
		var sqlDB *sql.DB
		sqlDB, err = r.db.DB()
		if err != nil {
			return 0, err
		}
		res, err = sqlDB.ExecContext(ctx, query, id, status, decidedBy)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) DebitBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		Updates(map[string]interface{}{
			"used_days":      gorm.Expr("used_days + ?", days),
			"remaining_days": gorm.Expr("remaining_days - ?", days),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindBalances(ctx context.Context, employeeID string, year int) ([]leaveBalanceRow, error) {
	var rows []leaveBalanceRow
	err := r.db.WithContext(ctx).
		Table("leave_balances lb").
		Select(`
lb.id,
lb.employee_id,
lb.leave_type_id,
lt.name AS leave_type_name,
lt.description,
lb.year,
lb.total_days,
lb.used_days,
lb.remaining_days
`).
		Joins("JOIN leave_types lt ON lt.id = lb.leave_type_id").
		Where("lb.employee_id = ? AND lb.year = ?", employeeID, year).
		Order("lt.name").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CreateBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) ListTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).Order("name").Find(&types).Error
	return types, err
}

// SeedDefaultTypes inserts the catalog rows, skipping any name already
// present, so startup can run it every time.
func (r *repository) SeedDefaultTypes(ctx context.Context, types []LeaveType) error {
	if len(types) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&types).Error
}
