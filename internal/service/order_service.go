package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/pkg/logger"
)

// CreateOrderItemInput 下单时的单行明细
type CreateOrderItemInput struct {
	ProductID string
	Quantity  int
}

// OrderService 订单服务。订单级操作都以买家归属为界：
// 只有下单人能改状态、查单、翻页看自己的订单。
type OrderService interface {
	// CreateOrder 整单原子创建：壳单、逐条明细、回写都在一个事务内，
	// 任一明细失败整单回滚
	CreateOrder(ctx context.Context, buyer *model.User, addressID string, items []CreateOrderItemInput) (*model.Order, error)

	// UpdateOrderStatus 任何已知状态名都是合法目标，不校验跃迁
	UpdateOrderStatus(ctx context.Context, orderID, status string, requester *model.User) (*model.Order, error)

	GetOrderByID(ctx context.Context, orderID string, requester *model.User) (*model.Order, error)

	// ListOrders 按创建时间倒序分页；结果为空时报"无订单"错误，
	// 保留自上游的历史行为
	ListOrders(ctx context.Context, requester *model.User, page, pageSize int) ([]*model.Order, int64, error)
}

type orderService struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
	itemSvc   OrderItemService
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, itemSvc OrderItemService) OrderService {
	return &orderService{db: db, orderRepo: orderRepo, itemSvc: itemSvc}
}

func (s *orderService) CreateOrder(ctx context.Context, buyer *model.User, addressID string, items []CreateOrderItemInput) (*model.Order, error) {
	if len(items) == 0 {
		return nil, invalidArgument("order must contain at least one item")
	}

	var order *model.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		itemSvc := s.itemSvc.WithTx(tx)

		order = &model.Order{UserID: buyer.ID, Status: model.OrderStatusPending}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		for _, in := range items {
			item, err := itemSvc.AddOrderItem(ctx, order, in.ProductID, in.Quantity, addressID, buyer)
			if err != nil {
				return err
			}
			order.Items = append(order.Items, *item)
		}

		return orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", buyer.ID),
		zap.Int("items", len(order.Items)))
	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, status string, requester *model.User) (*model.Order, error) {
	if status == "" {
		return nil, invalidArgument("status must not be empty")
	}

	var order *model.Order
	// 读改写放进一个事务，避免并发状态更新互相覆盖
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		o, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return orNotFound(err, "order %s not found", orderID)
		}
		if o.UserID != requester.ID {
			return forbidden("order %s does not belong to current user", orderID)
		}

		st, err := model.ParseOrderStatus(status)
		if err != nil {
			return invalidArgument("%v", err)
		}

		o.Status = st
		if err := orderRepo.Save(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("order status updated",
		zap.String("order_id", order.ID), zap.String("status", string(order.Status)))
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string, requester *model.User) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, orNotFound(err, "order %s not found", orderID)
	}
	if order.UserID != requester.ID {
		return nil, forbidden("order %s does not belong to current user", orderID)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, requester *model.User, page, pageSize int) ([]*model.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	orders, total, err := s.orderRepo.ListByUser(ctx, requester.ID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if len(orders) == 0 {
		return nil, 0, notFound("no orders found for user %s", requester.ID)
	}
	return orders, total, nil
}
