package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
)

func setupOrderBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Shop{}, &model.Product{}, &model.Order{}, &model.OrderItem{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func BenchmarkSoldItemsQuery(b *testing.B) {
	db := setupOrderBenchDB(b)
	itemRepo := NewOrderItemRepository(db)
	ctx := context.Background()

	// 构造：一家店铺 N 个商品，N 个已完成订单各含一条明细
	const N = 2000
	owner := model.User{ID: "seller", Name: "seller", Email: "s@example.com", Password: "p", Role: model.RoleProductor, IsActive: true}
	_ = db.Create(&owner).Error
	shop := model.Shop{ID: "shop", OwnerID: owner.ID, Name: "shop"}
	_ = db.Create(&shop).Error
	for i := 0; i < N; i++ {
		pid := fmt.Sprintf("p%05d", i)
		_ = db.Create(&model.Product{ID: pid, ShopID: shop.ID, Name: pid, Price: 1.0, Stock: 10}).Error
		oid := fmt.Sprintf("o%05d", i)
		status := model.OrderStatusCompleted
		if i%2 == 0 {
			status = model.OrderStatusPending
		}
		_ = db.Create(&model.Order{ID: oid, UserID: "buyer", Status: status}).Error
		_ = db.Create(&model.OrderItem{ID: uuid.New().String(), OrderID: oid, ProductID: pid, AddressID: "a", Quantity: 1, TotalPrice: 1.0, DeliveryStatus: model.DeliveryStatusPending}).Error
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = itemRepo.ListSoldByShop(ctx, model.OrderStatusCompleted, shop.ID)
	}
}

func TestGetByIDAndShopOwner_Scoping(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Shop{}, &model.Product{}, &model.Order{}, &model.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	itemRepo := NewOrderItemRepository(db)
	ctx := context.Background()

	_ = db.Create(&model.Shop{ID: "shop1", OwnerID: "owner1", Name: "s1"}).Error
	_ = db.Create(&model.Shop{ID: "shop2", OwnerID: "owner2", Name: "s2"}).Error
	_ = db.Create(&model.Product{ID: "p1", ShopID: "shop1", Name: "p1", Price: 1, Stock: 1}).Error
	_ = db.Create(&model.Order{ID: "o1", UserID: "buyer", Status: model.OrderStatusPending}).Error
	_ = db.Create(&model.OrderItem{ID: "i1", OrderID: "o1", ProductID: "p1", AddressID: "a", Quantity: 1, TotalPrice: 1, DeliveryStatus: model.DeliveryStatusPending}).Error

	if _, err := itemRepo.GetByIDAndShopOwner(ctx, "i1", "owner1"); err != nil {
		t.Fatalf("expected hit for owning seller, got %v", err)
	}
	// 别家店主的查询等同于未命中
	if _, err := itemRepo.GetByIDAndShopOwner(ctx, "i1", "owner2"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign seller, got %v", err)
	}
}
