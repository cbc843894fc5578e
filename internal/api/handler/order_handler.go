package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/response"
)

type createOrderItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	AddressID string            `json:"address_id" binding:"required"`
	Items     []createOrderItem `json:"items" binding:"required,min=1,dive"`
}

func orderView(o *model.Order) gin.H {
	return gin.H{
		"id":          o.ID,
		"user_id":     o.UserID,
		"status":      o.Status,
		"items":       o.Items,
		"total_price": o.TotalPrice(),
		"created_at":  o.CreatedAt,
		"updated_at":  o.UpdatedAt,
	}
}

// CreateOrder 下单，整单原子提交
// @Summary 下单
// @Tags 订单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createOrderRequest true "订单内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	items := make([]service.CreateOrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.CreateOrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	order, err := h.orderSvc.CreateOrder(c.Request.Context(), middleware.CurrentUser(c), req.AddressID, items)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, orderView(order))
}

// GetOrder 查单（仅限下单人）
// @Summary 查看订单
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param id path string true "订单ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orderSvc.GetOrderByID(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, orderView(order))
}

// ListOrders 当前用户的订单，按创建时间倒序分页
// @Summary 订单列表
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	orders, total, err := h.orderSvc.ListOrders(c.Request.Context(), middleware.CurrentUser(c), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	views := make([]gin.H, len(orders))
	for i, o := range orders {
		views[i] = orderView(o)
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "total": total, "list": views})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 改订单状态（仅限下单人）
// @Summary 更新订单状态
// @Tags 订单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "订单ID"
// @Param request body updateOrderStatusRequest true "目标状态"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id}/status [post]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	order, err := h.orderSvc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, orderView(order))
}
