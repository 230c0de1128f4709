/*
 * @Description: 版本历史接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 15:48:02
 */
package version

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/version"
)

// Handler 版本历史处理器
type Handler struct {
	versionSvc version.Service
}

// NewHandler 创建版本历史处理器
func NewHandler(versionSvc version.Service) *Handler {
	return &Handler{versionSvc: versionSvc}
}

func currentUser(c *gin.Context) (*model.User, error) {
	claimsValue, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return nil, errors.New("无法获取用户信息，请确认是否已登录")
	}
	claims, ok := claimsValue.(*auth.CustomClaims)
	if !ok {
		return nil, errors.New("用户信息格式不正确")
	}
	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, errors.New("用户身份信息无效")
	}
	return &model.User{
		ID:       userID,
		Nickname: claims.Nickname,
		UserGroup: model.UserGroup{
			Roles:       claims.Roles,
			Permissions: model.Boolset(claims.Permissions),
		},
	}, nil
}

// versionParam 解析路径中的版本号
func versionParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 1 {
		response.Fail(c, http.StatusBadRequest, "版本号必须是正整数")
		return 0, false
	}
	return v, true
}

// History 分页获取内容的版本历史
// @Summary      版本历史
// @Tags         版本管理
// @Security     BearerAuth
// @Produce      json
// @Param        id        path   string  true   "内容ID"
// @Param        page      query  int     false  "页码"
// @Param        pageSize  query  int     false  "每页数量"
// @Success      200  {object}  response.Response{data=model.VersionHistoryResponse}  "获取成功"
// @Router       /contents/{id}/versions [get]
func (h *Handler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.versionSvc.History(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取版本历史成功")
}

// GetVersion 获取指定版本详情（含转换链）
// @Summary      版本详情
// @Tags         版本管理
// @Security     BearerAuth
// @Produce      json
// @Param        id       path  string  true  "内容ID"
// @Param        version  path  int     true  "版本号"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "获取成功"
// @Router       /contents/{id}/versions/{version} [get]
func (h *Handler) GetVersion(c *gin.Context) {
	v, ok := versionParam(c, "version")
	if !ok {
		return
	}

	result, err := h.versionSvc.GetVersion(c.Request.Context(), c.Param("id"), v)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取版本详情成功")
}

// Compare 对比两个版本
// @Summary      版本对比
// @Tags         版本管理
// @Security     BearerAuth
// @Produce      json
// @Param        id      path   string  true  "内容ID"
// @Param        base    query  int     true  "基准版本号"
// @Param        target  query  int     true  "目标版本号"
// @Success      200  {object}  response.Response{data=model.VersionDiff}  "对比成功"
// @Router       /contents/{id}/versions/compare [get]
func (h *Handler) Compare(c *gin.Context) {
	base, err1 := strconv.Atoi(c.Query("base"))
	target, err2 := strconv.Atoi(c.Query("target"))
	if err1 != nil || err2 != nil || base < 1 || target < 1 {
		response.Fail(c, http.StatusBadRequest, "base 和 target 必须是正整数版本号")
		return
	}

	diff, err := h.versionSvc.Compare(c.Request.Context(), c.Param("id"), base, target)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, diff, "版本对比成功")
}

// Revert 以历史版本派生新的草稿版本
// @Summary      回滚到历史版本
// @Tags         版本管理
// @Security     BearerAuth
// @Produce      json
// @Param        id       path  string  true  "内容ID"
// @Param        version  path  int     true  "版本号"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "回滚成功"
// @Failure      423  {object}  response.Response  "内容正被他人编辑"
// @Router       /contents/{id}/versions/{version}/revert [post]
func (h *Handler) Revert(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	v, ok := versionParam(c, "version")
	if !ok {
		return
	}

	newDraft, err := h.versionSvc.RevertTo(c.Request.Context(), c.Param("id"), v, actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, newDraft, "已从历史版本派生新草稿")
}
