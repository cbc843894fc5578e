package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/internal/model"
)

// AddressRepository 地址仓储接口
type AddressRepository interface {
	Create(ctx context.Context, addr *model.Address) error
	GetByID(ctx context.Context, id string) (*model.Address, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Address, error)
	Delete(ctx context.Context, id string) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository { return &addressRepository{db: db} }

func (r *addressRepository) Create(ctx context.Context, addr *model.Address) error {
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(addr).Error
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*model.Address, error) {
	var addr model.Address
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&addr).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID string) ([]*model.Address, error) {
	var addrs []*model.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&addrs).Error
	return addrs, err
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Address{}).Error
}
