package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/pkg/database"
)

type testEnv struct {
	db         *gorm.DB
	addressSvc AddressService
	shopSvc    ShopService
	productSvc ProductService
	itemSvc    OrderItemService
	orderSvc   OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// 内存库按连接隔离，固定单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	addressRepo := repository.NewAddressRepository(db)
	shopRepo := repository.NewShopRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)

	addressSvc := NewAddressService(addressRepo)
	shopSvc := NewShopService(shopRepo)
	productSvc := NewProductService(productRepo, shopSvc, nil, 0)
	itemSvc := NewOrderItemService(itemRepo, productSvc, addressSvc, shopSvc)
	orderSvc := NewOrderService(db, orderRepo, itemSvc)

	return &testEnv{
		db:         db,
		addressSvc: addressSvc,
		shopSvc:    shopSvc,
		productSvc: productSvc,
		itemSvc:    itemSvc,
		orderSvc:   orderSvc,
	}
}

func (e *testEnv) seedUser(t *testing.T, name string, role model.UserRole) *model.User {
	t.Helper()
	u := &model.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    fmt.Sprintf("%s-%s@example.com", name, uuid.New().String()[:8]),
		Password: "p",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) seedAddress(t *testing.T, owner *model.User) *model.Address {
	t.Helper()
	a := &model.Address{
		ID:         uuid.New().String(),
		UserID:     owner.ID,
		Street:     "Main St 1",
		City:       "Springfield",
		State:      "SP",
		PostalCode: "12345",
	}
	require.NoError(t, e.db.Create(a).Error)
	return a
}

func (e *testEnv) seedShop(t *testing.T, owner *model.User) *model.Shop {
	t.Helper()
	s := &model.Shop{ID: uuid.New().String(), OwnerID: owner.ID, Name: owner.Name + "-shop"}
	require.NoError(t, e.db.Create(s).Error)
	return s
}

func (e *testEnv) seedProduct(t *testing.T, shop *model.Shop, name string, price float64) *model.Product {
	t.Helper()
	p := &model.Product{
		ID:     uuid.New().String(),
		ShopID: shop.ID,
		Name:   name,
		Price:  price,
		Stock:  100,
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) countRows(t *testing.T, m interface{}) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, e.db.Model(m).Count(&cnt).Error)
	return cnt
}
