package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/go-mall/internal/model"
)

func TestGetSoldItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)
	otherSeller := env.seedUser(t, "dave", model.RoleProductor)
	otherShop := env.seedShop(t, otherSeller)
	otherProduct := env.seedProduct(t, otherShop, "y", 7.00)

	// 已完成订单：bob 的商品 + dave 的商品
	completed, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: otherProduct.ID, Quantity: 1},
	})
	require.NoError(t, err)
	_, err = env.orderSvc.UpdateOrderStatus(ctx, completed.ID, "COMPLETED", buyer)
	require.NoError(t, err)

	// 未完成订单里的同款商品不算已售
	_, err = env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 3},
	})
	require.NoError(t, err)

	sold, err := env.itemSvc.GetSoldItems(ctx, seller)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, product.ID, sold[0].ProductID)
	assert.Equal(t, 1, sold[0].Quantity)

	soldOther, err := env.itemSvc.GetSoldItems(ctx, otherSeller)
	require.NoError(t, err)
	require.Len(t, soldOther, 1)
	assert.Equal(t, otherProduct.ID, soldOther[0].ProductID)

	// 没有店铺的用户查已售报 NotFound
	nobody := env.seedUser(t, "carol", model.RoleUser)
	_, err = env.itemSvc.GetSoldItems(ctx, nobody)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSoldItems_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	old, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)
	recent, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 2},
	})
	require.NoError(t, err)
	for _, o := range []*model.Order{old, recent} {
		_, err = env.orderSvc.UpdateOrderStatus(ctx, o.ID, "COMPLETED", buyer)
		require.NoError(t, err)
	}
	require.NoError(t, env.db.Model(&model.OrderItem{}).Where("order_id = ?", old.ID).
		Update("created_at", time.Now().Add(-time.Minute)).Error)

	sold, err := env.itemSvc.GetSoldItems(ctx, seller)
	require.NoError(t, err)
	require.Len(t, sold, 2)
	assert.Equal(t, recent.ID, sold[0].OrderID)
	assert.Equal(t, old.ID, sold[1].OrderID)
}

func TestUpdateDeliveryStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	order, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)
	itemID := order.Items[0].ID

	// 大小写不敏感
	item, err := env.itemSvc.UpdateDeliveryStatus(ctx, itemID, seller, "shipped")
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusShipped, item.DeliveryStatus)

	// 非法状态名拒绝，原状态不动
	_, err = env.itemSvc.UpdateDeliveryStatus(ctx, itemID, seller, "bogus")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	items, err := env.itemSvc.GetOrderItemsByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.DeliveryStatusShipped, items[0].DeliveryStatus)

	// 发货状态不影响父订单状态
	got, err := env.orderSvc.GetOrderByID(ctx, order.ID, buyer)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestUpdateDeliveryStatus_NoExistenceLeak(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	order, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)
	itemID := order.Items[0].ID

	// 结构上存在但属于别家店铺的明细必须报 NotFound，而非 Forbidden
	rival := env.seedUser(t, "eve", model.RoleProductor)
	env.seedShop(t, rival)
	_, err = env.itemSvc.UpdateDeliveryStatus(ctx, itemID, rival, "SHIPPED")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)

	// 未被动过
	items, err := env.itemSvc.GetOrderItemsByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusPending, items[0].DeliveryStatus)
}
