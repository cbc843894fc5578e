package model

import (
	"fmt"
	"strings"
	"time"
)

// OrderDeliveryStatus 明细发货状态，与订单状态相互独立
type OrderDeliveryStatus string

const (
	DeliveryStatusCancelled OrderDeliveryStatus = "CANCELLED"
	DeliveryStatusPending   OrderDeliveryStatus = "PENDING"
	DeliveryStatusShipped   OrderDeliveryStatus = "SHIPPED"
	DeliveryStatusDelivered OrderDeliveryStatus = "DELIVERED"
)

var deliveryStatuses = map[string]OrderDeliveryStatus{
	"CANCELLED": DeliveryStatusCancelled,
	"PENDING":   DeliveryStatusPending,
	"SHIPPED":   DeliveryStatusShipped,
	"DELIVERED": DeliveryStatusDelivered,
}

// ParseDeliveryStatus 大小写不敏感解析，同样不校验跃迁
func ParseDeliveryStatus(s string) (OrderDeliveryStatus, error) {
	if st, ok := deliveryStatuses[strings.ToUpper(s)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("invalid delivery status: %q", s)
}

// OrderItem 订单明细。TotalPrice 在创建时按当时单价快照，后续改价不回填
type OrderItem struct {
	ID             string              `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID        string              `json:"order_id" gorm:"type:varchar(36);index:idx_item_order;not null"`
	ProductID      string              `json:"product_id" gorm:"type:varchar(36);index:idx_item_product;not null"`
	AddressID      string              `json:"address_id" gorm:"type:varchar(36);not null"`
	Quantity       int                 `json:"quantity" gorm:"not null"`
	TotalPrice     float64             `json:"total_price" gorm:"type:decimal(10,2);not null"`
	DeliveryStatus OrderDeliveryStatus `json:"delivery_status" gorm:"type:varchar(16);index;not null;default:PENDING"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (OrderItem) TableName() string { return "order_items" }
