package middleware

import (
	"strings"

	"ngo-admin-system/internal/global/jwt"
	"ngo-admin-system/internal/global/response"
	"ngo-admin-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 解析 Bearer 令牌并依次执行角色检查
// 检查作用于生效角色（预览角色优先），不传检查时仅要求已登录
// 涉及用户增删改的 handler 仍需对真实角色做二次判定
func Auth(checks ...func(model.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization 头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 检查 Bearer 前缀并提取 token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 解析 token
		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		for _, check := range checks {
			if !check(payload.EffectiveRole()) {
				response.Fail(c, response.ErrForbidden)
				c.Abort()
				return
			}
		}

		c.Set("payload", payload)
		c.Next()
	}
}
