package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
)

// OrderItemRepository 订单明细仓储接口
type OrderItemRepository interface {
	WithTx(tx *gorm.DB) OrderItemRepository

	Create(ctx context.Context, item *model.OrderItem) error
	Save(ctx context.Context, item *model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID string) ([]*model.OrderItem, error)
	// ListSoldByShop 跨聚合查询：父订单处于给定状态且商品属于该店铺的明细，按创建时间倒序
	ListSoldByShop(ctx context.Context, status model.OrderStatus, shopID string) ([]*model.OrderItem, error)
	// GetByIDAndShopOwner 查找与卖家归属校验合并为一条查询，
	// 别家店铺的明细与不存在不可区分
	GetByIDAndShopOwner(ctx context.Context, itemID, ownerID string) (*model.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository { return &orderItemRepository{db: db} }

func (r *orderItemRepository) WithTx(tx *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: tx}
}

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepository) Save(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *orderItemRepository) ListByOrderID(ctx context.Context, orderID string) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *orderItemRepository) ListSoldByShop(ctx context.Context, status model.OrderStatus, shopID string) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status = ? AND products.shop_id = ?", status, shopID).
		Order("order_items.created_at DESC").
		Preload("Product").
		Find(&items).Error
	return items, err
}

func (r *orderItemRepository) GetByIDAndShopOwner(ctx context.Context, itemID, ownerID string) (*model.OrderItem, error) {
	var item model.OrderItem
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN shops ON shops.id = products.shop_id").
		Where("order_items.id = ? AND shops.owner_id = ?", itemID, ownerID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
