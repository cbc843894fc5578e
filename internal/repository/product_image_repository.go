package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
)

// ProductImageRepository 商品图片仓储接口
type ProductImageRepository interface {
	Create(ctx context.Context, img *model.ProductImage) error
	ListByProduct(ctx context.Context, productID string) ([]*model.ProductImage, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepository {
	return &productImageRepository{db: db}
}

func (r *productImageRepository) Create(ctx context.Context, img *model.ProductImage) error {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *productImageRepository) ListByProduct(ctx context.Context, productID string) ([]*model.ProductImage, error) {
	var imgs []*model.ProductImage
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at ASC").Find(&imgs).Error
	return imgs, err
}

func (r *productImageRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.ProductImage{}).Where("product_id = ?", productID).Count(&cnt).Error
	return cnt, err
}
