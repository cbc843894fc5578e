package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/pkg/response"
)

// GetSoldItems 卖家视角：已完成订单中属于自己店铺的明细
// @Summary 已售明细
// @Tags 订单明细
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/order-items/sold [get]
func (h *Handler) GetSoldItems(c *gin.Context) {
	items, err := h.itemSvc.GetSoldItems(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, items)
}

type updateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDeliveryStatus 卖家改明细发货状态；别家的明细按不存在处理
// @Summary 更新发货状态
// @Tags 订单明细
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "明细ID"
// @Param request body updateDeliveryStatusRequest true "目标状态"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/order-items/{id}/delivery [post]
func (h *Handler) UpdateDeliveryStatus(c *gin.Context) {
	var req updateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.itemSvc.UpdateDeliveryStatus(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, item)
}
