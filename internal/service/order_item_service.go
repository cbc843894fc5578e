package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/pkg/logger"
)

// OrderItemService 订单明细服务。
// 买家侧的创建只在订单事务内发生；卖家侧只能改发货状态，
// 且范围限定在自己店铺售出的明细。
type OrderItemService interface {
	// WithTx 返回绑定到事务的服务副本，供订单创建使用
	WithTx(tx *gorm.DB) OrderItemService

	// AddOrderItem 校验数量、解析商品与收货地址并落库，
	// 小计按当前单价快照
	AddOrderItem(ctx context.Context, order *model.Order, productID string, quantity int, addressID string, buyer *model.User) (*model.OrderItem, error)

	// GetOrderItemsByOrderID 不做归属校验，调用方负责收敛范围
	GetOrderItemsByOrderID(ctx context.Context, orderID string) ([]*model.OrderItem, error)

	// GetSoldItems 卖家视角：父订单已完成且商品属于其店铺的明细，按创建时间倒序
	GetSoldItems(ctx context.Context, seller *model.User) ([]*model.OrderItem, error)

	// UpdateDeliveryStatus 查找与卖家归属校验合并执行，
	// 别家的明细一律按不存在处理
	UpdateDeliveryStatus(ctx context.Context, itemID string, requester *model.User, status string) (*model.OrderItem, error)
}

type orderItemService struct {
	repo       repository.OrderItemRepository
	productSvc ProductService
	addressSvc AddressService
	shopSvc    ShopService
}

func NewOrderItemService(repo repository.OrderItemRepository, productSvc ProductService, addressSvc AddressService, shopSvc ShopService) OrderItemService {
	return &orderItemService{repo: repo, productSvc: productSvc, addressSvc: addressSvc, shopSvc: shopSvc}
}

func (s *orderItemService) WithTx(tx *gorm.DB) OrderItemService {
	return &orderItemService{
		repo:       s.repo.WithTx(tx),
		productSvc: s.productSvc,
		addressSvc: s.addressSvc,
		shopSvc:    s.shopSvc,
	}
}

func (s *orderItemService) AddOrderItem(ctx context.Context, order *model.Order, productID string, quantity int, addressID string, buyer *model.User) (*model.OrderItem, error) {
	if quantity <= 0 {
		return nil, invalidArgument("quantity must be greater than zero")
	}

	product, err := s.productSvc.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	address, err := s.addressSvc.GetAddressByID(ctx, addressID, buyer)
	if err != nil {
		return nil, err
	}

	item := &model.OrderItem{
		OrderID:        order.ID,
		ProductID:      product.ID,
		AddressID:      address.ID,
		Quantity:       quantity,
		TotalPrice:     float64(quantity) * product.Price,
		DeliveryStatus: model.DeliveryStatusPending,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *orderItemService) GetOrderItemsByOrderID(ctx context.Context, orderID string) ([]*model.OrderItem, error) {
	return s.repo.ListByOrderID(ctx, orderID)
}

func (s *orderItemService) GetSoldItems(ctx context.Context, seller *model.User) ([]*model.OrderItem, error) {
	shop, err := s.shopSvc.GetShopByOwner(ctx, seller)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSoldByShop(ctx, model.OrderStatusCompleted, shop.ID)
}

func (s *orderItemService) UpdateDeliveryStatus(ctx context.Context, itemID string, requester *model.User, status string) (*model.OrderItem, error) {
	item, err := s.repo.GetByIDAndShopOwner(ctx, itemID, requester.ID)
	if err != nil {
		return nil, orNotFound(err, "order item %s not found", itemID)
	}

	st, err := model.ParseDeliveryStatus(status)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}

	item.DeliveryStatus = st
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("delivery status updated",
		zap.String("item_id", item.ID), zap.String("status", string(st)))
	return item, nil
}
