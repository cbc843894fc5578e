package main

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/go-mall/config"
	"github.com/d60-Lab/go-mall/internal/api/handler"
	"github.com/d60-Lab/go-mall/internal/api/router"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/cache"
	"github.com/d60-Lab/go-mall/pkg/database"
	"github.com/d60-Lab/go-mall/pkg/logger"
	"github.com/d60-Lab/go-mall/pkg/tracing"
)

// @title go-mall API
// @version 1.0
// @description 电商订单后端
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := tracing.Init(context.Background(), cfg)
	if err != nil {
		logger.Warn("tracing init failed", zap.Error(err))
	} else {
		defer func() { _ = shutdownTracing(context.Background()) }()
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", zap.Error(err))
		panic(err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		panic(err)
	}

	// redis 不可用时降级为无缓存
	rdb, err := cache.InitRedis(cfg)
	if err != nil {
		logger.Warn("redis unavailable, product cache disabled", zap.Error(err))
		rdb = nil
	}

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	shopRepo := repository.NewShopRepository(db)
	productRepo := repository.NewProductRepository(db)
	imageRepo := repository.NewProductImageRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)

	userSvc := service.NewUserService(userRepo, cfg.JWT)
	addressSvc := service.NewAddressService(addressRepo)
	shopSvc := service.NewShopService(shopRepo)
	productSvc := service.NewProductService(productRepo, shopSvc, rdb,
		time.Duration(cfg.Redis.ProductTTL)*time.Second)
	imageSvc := service.NewProductImageService(imageRepo, productSvc, shopSvc, cfg.Storage)
	itemSvc := service.NewOrderItemService(itemRepo, productSvc, addressSvc, shopSvc)
	orderSvc := service.NewOrderService(db, orderRepo, itemSvc)

	h := handler.New(userSvc, addressSvc, shopSvc, productSvc, imageSvc, orderSvc, itemSvc)
	r := router.New(cfg, h, userSvc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", zap.Error(err))
	}
}
