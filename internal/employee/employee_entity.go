package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         *uuid.UUID     `gorm:"column:user_id;type:uuid;index"`
	FirstName      string         `gorm:"column:first_name;type:varchar(100);not null"`
	LastName       string         `gorm:"column:last_name;type:varchar(100);not null"`
	EmployeeNumber string         `gorm:"column:employee_number;type:varchar(50);uniqueIndex:uq_employee_number;not null"`
	Department     *string        `gorm:"column:department;type:varchar(100)"`
	Position       *string        `gorm:"column:position;type:varchar(100)"`
	HireDate       *time.Time     `gorm:"column:hire_date;type:date"`
	Phone          *string        `gorm:"column:phone;type:varchar(30)"`
	Address        *string        `gorm:"column:address;type:text"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;default:'active'"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
