package model

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderStatuses = map[string]OrderStatus{
	"PENDING":   OrderStatusPending,
	"PAID":      OrderStatusPaid,
	"SHIPPED":   OrderStatusShipped,
	"COMPLETED": OrderStatusCompleted,
	"CANCELLED": OrderStatusCancelled,
}

// ParseOrderStatus 大小写不敏感解析；任何已知状态都是合法目标，不校验跃迁
func ParseOrderStatus(s string) (OrderStatus, error) {
	if st, ok := orderStatuses[strings.ToUpper(s)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("invalid order status: %q", s)
}

// Order 订单，Items 按插入顺序排列
type Order struct {
	ID     string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string      `json:"user_id" gorm:"type:varchar(36);index:idx_order_user_created;not null"`
	Status OrderStatus `json:"status" gorm:"type:varchar(16);index;not null;default:PENDING"`
	Items  []OrderItem `json:"items" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_order_user_created"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// TotalPrice 各明细小计之和
func (o *Order) TotalPrice() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].TotalPrice
	}
	return total
}
