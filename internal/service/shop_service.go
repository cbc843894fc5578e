package service

import (
	"context"

	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
)

// CreateShopInput 创建店铺参数
type CreateShopInput struct {
	Name        string
	Description string
}

// ShopService 店铺服务
type ShopService interface {
	CreateShop(ctx context.Context, in CreateShopInput, owner *model.User) (*model.Shop, error)
	GetShopByID(ctx context.Context, id string) (*model.Shop, error)
	// GetShopByOwner 卖家视角的入口，查不到即该用户没有店铺
	GetShopByOwner(ctx context.Context, owner *model.User) (*model.Shop, error)
}

type shopService struct {
	repo repository.ShopRepository
}

func NewShopService(repo repository.ShopRepository) ShopService {
	return &shopService{repo: repo}
}

func (s *shopService) CreateShop(ctx context.Context, in CreateShopInput, owner *model.User) (*model.Shop, error) {
	if owner.Role != model.RoleProductor && owner.Role != model.RoleAdmin {
		return nil, forbidden("only productor accounts can open a shop")
	}
	if in.Name == "" {
		return nil, invalidArgument("shop name is required")
	}
	shop := &model.Shop{
		OwnerID:     owner.ID,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *shopService) GetShopByID(ctx context.Context, id string) (*model.Shop, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "shop %s not found", id)
	}
	return shop, nil
}

func (s *shopService) GetShopByOwner(ctx context.Context, owner *model.User) (*model.Shop, error) {
	shop, err := s.repo.GetByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, orNotFound(err, "no shop found for user %s", owner.ID)
	}
	return shop, nil
}
