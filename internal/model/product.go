package model

import "time"

// Product 商品
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShopID      string  `json:"shop_id" gorm:"type:varchar(36);index:idx_product_shop;not null"`
	Name        string  `json:"name" gorm:"type:varchar(128);not null"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"type:varchar(64);index"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int     `json:"stock" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
