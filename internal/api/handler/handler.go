package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/response"
)

// Handler 聚合各业务服务
type Handler struct {
	userSvc    service.UserService
	addressSvc service.AddressService
	shopSvc    service.ShopService
	productSvc service.ProductService
	imageSvc   service.ProductImageService
	orderSvc   service.OrderService
	itemSvc    service.OrderItemService
}

func New(
	userSvc service.UserService,
	addressSvc service.AddressService,
	shopSvc service.ShopService,
	productSvc service.ProductService,
	imageSvc service.ProductImageService,
	orderSvc service.OrderService,
	itemSvc service.OrderItemService,
) *Handler {
	return &Handler{
		userSvc:    userSvc,
		addressSvc: addressSvc,
		shopSvc:    shopSvc,
		productSvc: productSvc,
		imageSvc:   imageSvc,
		orderSvc:   orderSvc,
		itemSvc:    itemSvc,
	}
}

// writeError 服务层错误统一翻译为 HTTP 状态码
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
