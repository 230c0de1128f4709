// internal/app/middleware/auth.go
package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	service_auth "github.com/anzhiyu-c/anheyu-flow/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("[JWTAuth] JWT token解析失败: %v", err)
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional 是一个可选的JWT认证中间件。
// 没有Token时放行（匿名读取已发布内容），携带了无效Token则返回401触发前端刷新。
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("[JWTAuthOptional] Token解析失败: %v, 返回401触发自动刷新", err)
			response.Fail(c, http.StatusUnauthorized, "Token已过期")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// PermissionRequired 校验当前用户的权限位，必须在 JWTAuth 之后使用。
func (m *Middleware) PermissionRequired(permission uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(auth.ClaimsKey)
		if !exists {
			response.Fail(c, http.StatusForbidden, "权限信息获取失败")
			c.Abort()
			return
		}

		claims, ok := claimsValue.(*auth.CustomClaims)
		if !ok {
			response.Fail(c, http.StatusForbidden, "权限信息格式不正确")
			c.Abort()
			return
		}

		if !model.Boolset(claims.Permissions).Enabled(permission) {
			log.Printf("[PermissionRequired] 用户 %s 缺少权限位 %d: %s %s",
				claims.UserID, permission, c.Request.Method, c.Request.URL.Path)
			response.Fail(c, http.StatusForbidden, "权限不足，无法执行此操作")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminAuth 是管理员权限验证中间件，等价于要求系统管理权限位。
func (m *Middleware) AdminAuth() gin.HandlerFunc {
	return m.PermissionRequired(model.PermissionAdmin)
}
