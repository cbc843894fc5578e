package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/go-mall/config"
	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/pkg/logger"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ProductImageService 商品图片服务，文件落盘 + 记录入库
type ProductImageService interface {
	SaveImages(ctx context.Context, productID string, files []*multipart.FileHeader, user *model.User) ([]*model.ProductImage, error)
	ListImages(ctx context.Context, productID string) ([]*model.ProductImage, error)
}

type productImageService struct {
	repo       repository.ProductImageRepository
	productSvc ProductService
	shopSvc    ShopService
	cfg        config.StorageConfig
}

func NewProductImageService(repo repository.ProductImageRepository, productSvc ProductService, shopSvc ShopService, cfg config.StorageConfig) ProductImageService {
	return &productImageService{repo: repo, productSvc: productSvc, shopSvc: shopSvc, cfg: cfg}
}

func (s *productImageService) SaveImages(ctx context.Context, productID string, files []*multipart.FileHeader, user *model.User) ([]*model.ProductImage, error) {
	if len(files) == 0 {
		return nil, invalidArgument("no files uploaded")
	}

	product, err := s.productSvc.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	shop, err := s.shopSvc.GetShopByID(ctx, product.ShopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != user.ID {
		return nil, forbidden("product %s does not belong to current user's shop", productID)
	}

	existing, err := s.repo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if int(existing)+len(files) > s.cfg.MaxImagesPerItem {
		return nil, invalidArgument("a product can have at most %d images", s.cfg.MaxImagesPerItem)
	}

	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		if !allowedImageExts[ext] {
			return nil, invalidArgument("unsupported image extension: %s", ext)
		}
	}

	if err := os.MkdirAll(s.cfg.ImageDir, 0o755); err != nil {
		return nil, err
	}

	saved := make([]*model.ProductImage, 0, len(files))
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		name := uuid.New().String() + ext
		dst := filepath.Join(s.cfg.ImageDir, name)
		if err := saveUploadedFile(f, dst); err != nil {
			return nil, err
		}
		img := &model.ProductImage{
			ProductID: productID,
			FileName:  f.Filename,
			Path:      dst,
		}
		if err := s.repo.Create(ctx, img); err != nil {
			// 入库失败时清掉已落盘文件
			_ = os.Remove(dst)
			return nil, err
		}
		saved = append(saved, img)
	}
	logger.Info("product images saved",
		zap.String("product_id", productID), zap.Int("count", len(saved)))
	return saved, nil
}

func (s *productImageService) ListImages(ctx context.Context, productID string) ([]*model.ProductImage, error) {
	if _, err := s.productSvc.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}

func saveUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
