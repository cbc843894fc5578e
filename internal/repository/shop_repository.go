package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
)

// ShopRepository 店铺仓储接口
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	GetByID(ctx context.Context, id string) (*model.Shop, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*model.Shop, error)
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository { return &shopRepository{db: db} }

func (r *shopRepository) Create(ctx context.Context, shop *model.Shop) error {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) GetByOwnerID(ctx context.Context, ownerID string) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}
