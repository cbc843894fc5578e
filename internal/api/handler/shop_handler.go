package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/response"
)

type createShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateShop 开店（PRODUCTOR）
// @Summary 开店
// @Tags 店铺
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createShopRequest true "店铺信息"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/shops [post]
func (h *Handler) CreateShop(c *gin.Context) {
	var req createShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	shop, err := h.shopSvc.CreateShop(c.Request.Context(), service.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
	}, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, shop)
}

// GetShop 查看店铺
// @Summary 查看店铺
// @Tags 店铺
// @Produce json
// @Param id path string true "店铺ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/shops/{id} [get]
func (h *Handler) GetShop(c *gin.Context) {
	shop, err := h.shopSvc.GetShopByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, shop)
}

// GetMyShop 当前用户的店铺
// @Summary 我的店铺
// @Tags 店铺
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/shops/mine [get]
func (h *Handler) GetMyShop(c *gin.Context) {
	shop, err := h.shopSvc.GetShopByOwner(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, shop)
}
