package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveType struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:name;type:varchar(100);uniqueIndex:uq_leave_type_name;not null"`
	Description *string   `gorm:"column:description;type:text"`
	MaxDays     int       `gorm:"column:max_days;type:int;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// LeaveBalance tracks one (employee, type, year) allocation. used_days and
// remaining_days always sum to total_days.
type LeaveBalance struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID `gorm:"column:employee_id;type:uuid;uniqueIndex:uq_leave_balance_employee_type_year;not null"`
	LeaveTypeID   uuid.UUID `gorm:"column:leave_type_id;type:uuid;uniqueIndex:uq_leave_balance_employee_type_year;not null"`
	Year          int       `gorm:"column:year;type:int;uniqueIndex:uq_leave_balance_employee_type_year;not null"`
	TotalDays     int       `gorm:"column:total_days;type:int;not null"`
	UsedDays      int       `gorm:"column:used_days;type:int;not null;default:0"`
	RemainingDays int       `gorm:"column:remaining_days;type:int;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

type LeaveRequest struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID  `gorm:"column:employee_id;type:uuid;index;not null"`
	LeaveTypeID uuid.UUID  `gorm:"column:leave_type_id;type:uuid;not null"`
	StartDate   time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time  `gorm:"column:end_date;type:date;not null"`
	Days        int        `gorm:"column:days;type:int;not null"`
	Reason      *string    `gorm:"column:reason;type:text"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'pending'"`
	ApprovedBy  *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// leaveRequestRow is the joined projection used by the list and detail reads.
type leaveRequestRow struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	EmployeeName  string
	LeaveTypeID   uuid.UUID
	LeaveTypeName string
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Reason        *string
	Status        string
	ApprovedBy    *uuid.UUID
	ApprovedAt    *time.Time
	CreatedAt     time.Time
}

// leaveBalanceRow joins the balance with its leave type.
type leaveBalanceRow struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	LeaveTypeID   uuid.UUID
	LeaveTypeName string
	Description   *string
	Year          int
	TotalDays     int
	UsedDays      int
	RemainingDays int
}

// debitTarget carries the fields the post-approval balance debit needs.
type debitTarget struct {
	EmployeeID  uuid.UUID
	LeaveTypeID uuid.UUID
	Days        int
}
