package model

import "time"

// UserRole 用户角色
type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleProductor UserRole = "PRODUCTOR"
	RoleAdmin     UserRole = "ADMIN"
)

// User 用户
type User struct {
	ID       string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string   `json:"name" gorm:"type:varchar(128);not null"`
	Email    string   `json:"email" gorm:"type:varchar(128);uniqueIndex;not null"`
	Password string   `json:"-" gorm:"type:varchar(128);not null"`
	Phone    string   `json:"phone" gorm:"type:varchar(32)"`
	Role     UserRole `json:"role" gorm:"type:varchar(16);not null;default:USER"`
	IsActive bool     `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
