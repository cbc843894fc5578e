package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/go-mall/config"
	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/response"
)

const currentUserKey = "currentUser"

// JWTAuth 解析 Bearer 令牌并把当前用户放进请求上下文。
// 核心服务只做归属比较，鉴别身份到此为止。
func JWTAuth(jwtCfg config.JWTConfig, userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtCfg.Secret), nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "invalid token")
			return
		}

		user, err := userSvc.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Unauthorized(c, "unknown user")
			return
		}
		if !user.IsActive {
			response.Unauthorized(c, "account disabled")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出鉴权中间件放入的用户
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
