package model

import "time"

// ProductImage 商品图片，文件落盘，库里只存路径
type ProductImage struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);index:idx_image_product;not null"`
	FileName  string `json:"file_name" gorm:"type:varchar(255);not null"`
	Path      string `json:"path" gorm:"type:varchar(255);not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (ProductImage) TableName() string { return "product_images" }
