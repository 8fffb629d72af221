package middleware

import (
	"strings"
	"time"

	"foodgram/internal/config"
	"foodgram/internal/logger"
	"foodgram/pkg/auth"
	"foodgram/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth JWT认证中间件
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c)
		if !ok {
			return
		}

		// 验证token类型
		if claims.Type != auth.AccessToken {
			logger.Warnf("使用了错误类型的令牌: %v", claims.Type)
			response.Unauthorized(c, "需要访问令牌", nil)
			c.Abort()
			return
		}

		// 检查令牌是否临近过期，提示客户端刷新
		bufferTime := time.Duration(config.GlobalConfig.JWT.BufferSeconds) * time.Second
		if time.Until(time.Unix(claims.ExpiresAt, 0)) < bufferTime {
			c.Header("X-Token-Expire-Soon", "true")
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("tokenID", claims.TokenID)
		c.Next()
	}
}

// RefreshAuth 用于刷新访问令牌的中间件
func RefreshAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c)
		if !ok {
			return
		}

		if claims.Type != auth.RefreshToken {
			logger.Warnf("使用了错误类型的令牌: %v", claims.Type)
			response.Unauthorized(c, "需要刷新令牌", nil)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("tokenID", claims.TokenID)
		c.Next()
	}
}

// AdminAuth 管理员认证中间件
// 角色校验必须发生在c.Next()之前，不能通过调用JWTAuth叠加实现
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c)
		if !ok {
			return
		}

		if claims.Type != auth.AccessToken {
			logger.Warnf("使用了错误类型的令牌: %v", claims.Type)
			response.Unauthorized(c, "需要访问令牌", nil)
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			response.Forbidden(c, "需要管理员权限", nil)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("tokenID", claims.TokenID)
		c.Next()
	}
}

// OptionalAuth 可选的JWT认证中间件
// 不会阻止未认证的用户访问，但如果提供了有效的token会设置用户信息到上下文
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			logger.Warnf("Authorization格式错误: %s", authHeader)
			c.Next()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil || claims.Type != auth.AccessToken {
			// token无效，继续执行，但不设置用户信息
			c.Next()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("tokenID", claims.TokenID)
		c.Next()
	}
}

// parseAuthHeader 解析Authorization头并验证令牌，失败时写入响应并中止
func parseAuthHeader(c *gin.Context) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "请先登录", nil)
		c.Abort()
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		response.Unauthorized(c, "Authorization格式错误", nil)
		c.Abort()
		return nil, false
	}

	claims, err := auth.ParseToken(parts[1])
	if err != nil {
		logger.Warnf("无效的令牌: %v", err)
		response.Unauthorized(c, "无效的令牌", err)
		c.Abort()
		return nil, false
	}

	return claims, true
}

// GetUserID 从上下文中获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUserRole 从上下文中获取用户角色
func GetUserRole(c *gin.Context) (string, bool) {
	userRole, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	return userRole.(string), true
}
