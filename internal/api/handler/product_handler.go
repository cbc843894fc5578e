package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/response"
)

type createProductRequest struct {
	ShopID      string  `json:"shop_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock" binding:"required"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// CreateProduct 上架商品（店主）
// @Summary 上架商品
// @Tags 商品
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createProductRequest true "商品信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.productSvc.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}, req.ShopID, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, p)
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags 商品
// @Produce json
// @Param id path string true "商品ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.productSvc.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, p)
}

// ListProducts 商品分页列表，支持按分类过滤
// @Summary 商品列表
// @Tags 商品
// @Produce json
// @Param category query string false "分类"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	products, total, err := h.productSvc.ListProducts(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "total": total, "list": products})
}

// UpdateProduct 改商品（店主）
// @Summary 更新商品
// @Tags 商品
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Param request body updateProductRequest true "更新内容"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.productSvc.UpdateProduct(c.Request.Context(), c.Param("id"), service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, p)
}

// DeleteProduct 下架商品（店主）
// @Summary 删除商品
// @Tags 商品
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.productSvc.DeleteProduct(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c)); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, nil)
}

// UploadProductImages 上传商品图片（店主，单品最多 5 张）
// @Summary 上传商品图片
// @Tags 商品
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Param files formData file true "图片文件"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/products/{id}/images [post]
func (h *Handler) UploadProductImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	files := form.File["files"]
	imgs, err := h.imageSvc.SaveImages(c.Request.Context(), c.Param("id"), files, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, imgs)
}

// ListProductImages 商品图片列表
// @Summary 商品图片列表
// @Tags 商品
// @Produce json
// @Param id path string true "商品ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/products/{id}/images [get]
func (h *Handler) ListProductImages(c *gin.Context) {
	imgs, err := h.imageSvc.ListImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, imgs)
}
