package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"column:username;type:varchar(100);uniqueIndex;not null"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"column:password;type:text;not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'employee'"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
