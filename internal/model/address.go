package model

import "time"

// Address 收货地址，归属于单个用户
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);index:idx_address_user;not null"`
	Street     string `json:"street" gorm:"type:varchar(255);not null"`
	City       string `json:"city" gorm:"type:varchar(128);not null"`
	State      string `json:"state" gorm:"type:varchar(64);not null"`
	Complement string `json:"complement" gorm:"type:varchar(255)"`
	PostalCode string `json:"postal_code" gorm:"type:varchar(16);not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Address) TableName() string { return "addresses" }
