package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/go-mall/internal/model"
)

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	productX := env.seedProduct(t, shop, "x", 10.50)
	productY := env.seedProduct(t, shop, "y", 3.00)

	order, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: productX.ID, Quantity: 2},
		{ProductID: productY.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	// 明细保持入参顺序，小计按下单时单价快照
	assert.Equal(t, productX.ID, order.Items[0].ProductID)
	assert.Equal(t, 21.00, order.Items[0].TotalPrice)
	assert.Equal(t, productY.ID, order.Items[1].ProductID)
	assert.Equal(t, 3.00, order.Items[1].TotalPrice)
	assert.Equal(t, 24.00, order.TotalPrice())
	assert.Equal(t, model.OrderStatusPending, order.Status)
	for _, it := range order.Items {
		assert.Equal(t, model.DeliveryStatusPending, it.DeliveryStatus)
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)

	_, err := env.orderSvc.CreateOrder(context.Background(), buyer, addr.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualValues(t, 0, env.countRows(t, &model.Order{}))
}

func TestCreateOrder_RollbackOnItemFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	// 第二条明细的商品不存在，整单必须回滚
	_, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: uuid.New().String(), Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, env.countRows(t, &model.Order{}))
	assert.EqualValues(t, 0, env.countRows(t, &model.OrderItem{}))

	// 非法数量同样整单回滚
	_, err = env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: product.ID, Quantity: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualValues(t, 0, env.countRows(t, &model.OrderItem{}))
}

func TestCreateOrder_AddressNotOwned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	other := env.seedUser(t, "carol", model.RoleUser)
	othersAddr := env.seedAddress(t, other)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	_, err := env.orderSvc.CreateOrder(ctx, buyer, othersAddr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.EqualValues(t, 0, env.countRows(t, &model.Order{}))
}

func TestUpdateOrderStatus(t *testing.T) {
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

	// 大小写不敏感
	for _, s := range []string{"completed", "COMPLETED", "Completed"} {
		updated, err := env.orderSvc.UpdateOrderStatus(ctx, order.ID, s, buyer)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCompleted, updated.Status)
	}

	// 未知状态名拒绝
	_, err = env.orderSvc.UpdateOrderStatus(ctx, order.ID, "bogus", buyer)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// 空状态拒绝
	_, err = env.orderSvc.UpdateOrderStatus(ctx, order.ID, "", buyer)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// 非下单人拒绝，状态校验与否无关
	stranger := env.seedUser(t, "mallory", model.RoleUser)
	_, err = env.orderSvc.UpdateOrderStatus(ctx, order.ID, "CANCELLED", stranger)
	assert.ErrorIs(t, err, ErrForbidden)

	// 失败的更新不改变原状态
	got, err := env.orderSvc.GetOrderByID(ctx, order.ID, buyer)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, got.Status)

	// 不存在的订单
	_, err = env.orderSvc.UpdateOrderStatus(ctx, uuid.New().String(), "COMPLETED", buyer)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderByID_Scope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	order, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 2},
	})
	require.NoError(t, err)

	got, err := env.orderSvc.GetOrderByID(ctx, order.ID, buyer)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 10.00, got.TotalPrice())

	stranger := env.seedUser(t, "mallory", model.RoleUser)
	_, err = env.orderSvc.GetOrderByID(ctx, order.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.orderSvc.GetOrderByID(ctx, uuid.New().String(), buyer)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	buyer := env.seedUser(t, "alice", model.RoleUser)
	addr := env.seedAddress(t, buyer)
	seller := env.seedUser(t, "bob", model.RoleProductor)
	shop := env.seedShop(t, seller)
	product := env.seedProduct(t, shop, "x", 5.00)

	first, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)
	second, err := env.orderSvc.CreateOrder(ctx, buyer, addr.ID, []CreateOrderItemInput{
		{ProductID: product.ID, Quantity: 2},
	})
	require.NoError(t, err)
	// 保证两单创建时间可区分
	require.NoError(t, env.db.Model(&model.Order{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Minute)).Error)

	orders, total, err := env.orderSvc.ListOrders(ctx, buyer, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestListOrders_EmptyIsError(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.seedUser(t, "alice", model.RoleUser)

	// 历史行为：空结果按"无订单"错误返回，而非空页
	_, _, err := env.orderSvc.ListOrders(context.Background(), buyer, 1, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}
