/*
 * @Description: 登录与令牌刷新接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 15:03:26
 */
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	service_auth "github.com/anzhiyu-c/anheyu-flow/pkg/service/auth"
)

// Handler 认证处理器
type Handler struct {
	tokenSvc service_auth.TokenService
}

// NewHandler 创建认证处理器
func NewHandler(tokenSvc service_auth.TokenService) *Handler {
	return &Handler{tokenSvc: tokenSvc}
}

// Login 处理登录请求
// @Summary      用户登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  object{username=string,password=string}  true  "登录凭证"
// @Success      200  {object}  response.Response{data=service_auth.LoginResult}  "登录成功"
// @Failure      401  {object}  response.Response  "用户名或密码错误"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	result, err := h.tokenSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, result, "登录成功")
}

// RefreshToken 使用刷新令牌换取新的访问令牌
// @Summary      刷新访问令牌
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  object{refresh_token=string}  true  "刷新令牌"
// @Success      200  {object}  response.Response  "刷新成功"
// @Failure      401  {object}  response.Response  "刷新令牌无效或过期"
// @Router       /token/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	accessToken, expiresAt, err := h.tokenSvc.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, gin.H{
		"access_token": accessToken,
		"expires_at":   expiresAt,
	}, "刷新成功")
}
