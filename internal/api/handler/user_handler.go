package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/go-mall/internal/middleware"
	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/logger"
	"github.com/d60-Lab/go-mall/pkg/response"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=USER PRODUCTOR"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 注册用户
// @Summary 注册
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), service.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     model.UserRole(req.Role),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("user registered", zap.String("user_id", user.ID))
	response.Created(c, user)
}

// Login 登录换取令牌
// @Summary 登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Me 当前用户信息
// @Summary 当前用户
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/users/me [get]
func (h *Handler) Me(c *gin.Context) {
	response.Success(c, middleware.CurrentUser(c))
}
