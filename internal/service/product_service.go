package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/pkg/logger"
)

// CreateProductInput 创建商品参数
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
}

// UpdateProductInput 更新商品参数，nil 字段不改动
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
}

// ProductService 商品服务，读路径走 redis 旁路缓存
type ProductService interface {
	CreateProduct(ctx context.Context, in CreateProductInput, shopID string, user *model.User) (*model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, category string, page, pageSize int) ([]*model.Product, int64, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput, user *model.User) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string, user *model.User) error
}

type productService struct {
	repo     repository.ProductRepository
	shopSvc  ShopService
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewProductService 创建商品服务，rdb 传 nil 时关闭缓存
func NewProductService(repo repository.ProductRepository, shopSvc ShopService, rdb *redis.Client, cacheTTL time.Duration) ProductService {
	return &productService{repo: repo, shopSvc: shopSvc, rdb: rdb, cacheTTL: cacheTTL}
}

func (s *productService) CreateProduct(ctx context.Context, in CreateProductInput, shopID string, user *model.User) (*model.Product, error) {
	if in.Price <= 0 {
		return nil, invalidArgument("price must be positive")
	}
	if in.Stock <= 0 {
		return nil, invalidArgument("stock must be positive")
	}

	shop, err := s.shopSvc.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != user.ID {
		return nil, forbidden("shop %s does not belong to current user", shopID)
	}

	p := &model.Product{
		ShopID:      shop.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	if p, ok := s.cacheGet(ctx, id); ok {
		return p, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "product %s not found", id)
	}
	s.cacheSet(ctx, p)
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, category string, page, pageSize int) ([]*model.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.repo.List(ctx, category, (page-1)*pageSize, pageSize)
}

func (s *productService) UpdateProduct(ctx context.Context, id string, in UpdateProductInput, user *model.User) (*model.Product, error) {
	p, err := s.getOwned(ctx, id, user)
	if err != nil {
		return nil, err
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, invalidArgument("price must be positive")
		}
		p.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, invalidArgument("stock must not be negative")
		}
		p.Stock = *in.Stock
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.cacheDel(ctx, id)
	return p, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string, user *model.User) error {
	p, err := s.getOwned(ctx, id, user)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	s.cacheDel(ctx, id)
	return nil
}

func (s *productService) getOwned(ctx context.Context, id string, user *model.User) (*model.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "product %s not found", id)
	}
	shop, err := s.shopSvc.GetShopByID(ctx, p.ShopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != user.ID {
		return nil, forbidden("product %s does not belong to current user's shop", id)
	}
	return p, nil
}

const productCachePrefix = "product:"

func (s *productService) cacheGet(ctx context.Context, id string) (*model.Product, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, productCachePrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("product cache get failed", zap.String("id", id), zap.Error(err))
		}
		return nil, false
	}
	var p model.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (s *productService) cacheSet(ctx context.Context, p *model.Product) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, productCachePrefix+p.ID, raw, s.cacheTTL).Err(); err != nil {
		logger.Warn("product cache set failed", zap.String("id", p.ID), zap.Error(err))
	}
}

func (s *productService) cacheDel(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productCachePrefix+id).Err(); err != nil {
		logger.Warn("product cache del failed", zap.String("id", id), zap.Error(err))
	}
}
