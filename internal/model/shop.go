package model

import "time"

// Shop 店铺，一个 PRODUCTOR 用户至多一家
type Shop struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OwnerID     string `json:"owner_id" gorm:"type:varchar(36);uniqueIndex:ux_shop_owner;not null"`
	Name        string `json:"name" gorm:"type:varchar(128);not null"`
	Description string `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shop) TableName() string { return "shops" }
