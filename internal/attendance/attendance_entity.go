package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"
)

type Attendance struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	ClockIn    *time.Time   `gorm:"column:clock_in;type:timestamptz"`
	ClockOut   *time.Time   `gorm:"column:clock_out;type:timestamptz"`
	Status     string       `gorm:"column:status;type:varchar(20);not null;default:'present'"`
	Notes      *string      `gorm:"column:notes;type:text"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;autoUpdateTime"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// EmployeeRef is the minimal joined projection of an employee row.
type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	EmployeeNumber string    `gorm:"column:employee_number"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
