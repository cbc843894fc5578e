package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/response"
)

type createAddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	Complement string `json:"complement"`
	PostalCode string `json:"postal_code" binding:"required,postalcode"`
}

// CreateAddress 新建收货地址
// @Summary 新建地址
// @Tags 地址
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createAddressRequest true "地址信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/addresses [post]
func (h *Handler) CreateAddress(c *gin.Context) {
	var req createAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	addr, err := h.addressSvc.CreateAddress(c.Request.Context(), service.CreateAddressInput{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		Complement: req.Complement,
		PostalCode: req.PostalCode,
	}, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, addr)
}

// GetAddress 查看单个地址（仅限本人）
// @Summary 查看地址
// @Tags 地址
// @Produce json
// @Security BearerAuth
// @Param id path string true "地址ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/addresses/{id} [get]
func (h *Handler) GetAddress(c *gin.Context) {
	addr, err := h.addressSvc.GetAddressByID(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, addr)
}

// ListAddresses 当前用户的地址列表
// @Summary 地址列表
// @Tags 地址
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/addresses [get]
func (h *Handler) ListAddresses(c *gin.Context) {
	addrs, err := h.addressSvc.ListAddresses(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, addrs)
}

// DeleteAddress 删除地址（仅限本人）
// @Summary 删除地址
// @Tags 地址
// @Produce json
// @Security BearerAuth
// @Param id path string true "地址ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/addresses/{id} [delete]
func (h *Handler) DeleteAddress(c *gin.Context) {
	if err := h.addressSvc.DeleteAddress(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c)); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, nil)
}
