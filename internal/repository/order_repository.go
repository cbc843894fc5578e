package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/go-mall/internal/model"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// WithTx 返回绑定到事务的仓储副本
	WithTx(tx *gorm.DB) OrderRepository

	Create(ctx context.Context, order *model.Order) error
	Save(ctx context.Context, order *model.Order) error
	// GetByID 带明细（含商品快照）查询
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// ListByUser 按创建时间倒序分页
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Order, int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepository{db: db} }

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository { return &orderRepository{db: tx} }

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(order).Error
}

// Save 只回写订单本行，明细由明细仓储自己维护
func (r *orderRepository) Save(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}
