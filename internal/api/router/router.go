package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/go-mall/config"
	_ "github.com/d60-Lab/go-mall/docs"
	"github.com/d60-Lab/go-mall/internal/api/handler"
	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/internal/service"
)

// New 组装路由与中间件
func New(cfg *config.Config, h *handler.Handler, userSvc service.UserService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	handler.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware(cfg.Trace.ServiceName))
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(middleware.RateLimit(rate.Limit(100), 200))

	// 商品图片静态托管
	r.Static("/static/images", cfg.Storage.ImageDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	api.POST("/users/register", h.Register)
	api.POST("/users/login", h.Login)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/products/:id/images", h.ListProductImages)
	api.GET("/shops/:id", h.GetShop)

	auth := api.Group("")
	auth.Use(middleware.JWTAuth(cfg.JWT, userSvc))
	{
		auth.GET("/users/me", h.Me)

		auth.POST("/addresses", h.CreateAddress)
		auth.GET("/addresses", h.ListAddresses)
		auth.GET("/addresses/:id", h.GetAddress)
		auth.DELETE("/addresses/:id", h.DeleteAddress)

		auth.POST("/shops", h.CreateShop)
		auth.GET("/shops/mine", h.GetMyShop)

		auth.POST("/products", h.CreateProduct)
		auth.PUT("/products/:id", h.UpdateProduct)
		auth.DELETE("/products/:id", h.DeleteProduct)
		auth.POST("/products/:id/images", h.UploadProductImages)

		auth.POST("/orders", h.CreateOrder)
		auth.GET("/orders", h.ListOrders)
		auth.GET("/orders/:id", h.GetOrder)
		auth.POST("/orders/:id/status", h.UpdateOrderStatus)

		auth.GET("/order-items/sold", h.GetSoldItems)
		auth.POST("/order-items/:id/delivery", h.UpdateDeliveryStatus)
	}

	return r
}
