/*
 * @Description: 内容实体接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 15:20:41
 */
package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/content"
)

// Handler 内容处理器
type Handler struct {
	contentSvc content.Service
}

// NewHandler 创建内容处理器
func NewHandler(contentSvc content.Service) *Handler {
	return &Handler{contentSvc: contentSvc}
}

// currentUser 从 gin.Context 中还原当前登录用户
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

// Create 创建内容及其首个草稿版本
// @Summary      创建内容
// @Tags         内容管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  object{type=string,title=string,content_md=string,summary=string,keywords=string}  true  "内容信息"
// @Success      200  {object}  response.Response  "创建成功"
// @Router       /contents [post]
func (h *Handler) Create(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		Type      string               `json:"type" binding:"required"`
		Title     string               `json:"title" binding:"required"`
		ContentMd string               `json:"content_md"`
		Blocks    []model.ContentBlock `json:"blocks"`
		Summary   string               `json:"summary"`
		Keywords  string               `json:"keywords"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	entity, version, err := h.contentSvc.Create(c.Request.Context(), &content.CreateParams{
		Type:      req.Type,
		Title:     req.Title,
		ContentMd: req.ContentMd,
		Blocks:    req.Blocks,
		Summary:   req.Summary,
		Keywords:  req.Keywords,
	}, actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, gin.H{
		"content": entity,
		"version": version,
	}, "创建内容成功")
}

// Get 获取内容实体
// @Summary      获取内容
// @Tags         内容管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=model.Content}  "获取成功"
// @Router       /contents/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	entity, err := h.contentSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, entity, "获取内容成功")
}

// GetPublished 获取内容当前的发布版本（匿名可访问）
// @Summary      获取发布版本
// @Tags         公开内容
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "获取成功"
// @Failure      404  {object}  response.Response  "内容未发布"
// @Router       /public/contents/{id} [get]
func (h *Handler) GetPublished(c *gin.Context) {
	id := c.Param("id")
	version, err := h.contentSvc.GetPublished(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, version, "获取发布版本成功")
}

// List 分页获取内容列表
// @Summary      内容列表
// @Tags         内容管理
// @Security     BearerAuth
// @Produce      json
// @Param        type      query  string  false  "内容类型过滤"
// @Param        page      query  int     false  "页码"
// @Param        pageSize  query  int     false  "每页数量"
// @Success      200  {object}  response.Response{data=model.ContentListResponse}  "获取成功"
// @Router       /contents [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.contentSvc.List(c.Request.Context(), c.Query("type"), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取列表成功")
}

// UpdateDraft 更新内容草稿，要求调用者持有有效的编辑锁
// @Summary      更新草稿
// @Tags         内容管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "内容ID"
// @Param        body  body  object{title=string,content_md=string,summary=string,keywords=string,change_note=string}  true  "草稿内容"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "更新成功"
// @Failure      403  {object}  response.Response  "未持有编辑锁"
// @Router       /contents/{id}/draft [put]
func (h *Handler) UpdateDraft(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		Title      string               `json:"title" binding:"required"`
		ContentMd  string               `json:"content_md"`
		Blocks     []model.ContentBlock `json:"blocks"`
		Summary    string               `json:"summary"`
		Keywords   string               `json:"keywords"`
		ChangeNote string               `json:"change_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	version, err := h.contentSvc.UpdateDraft(c.Request.Context(), c.Param("id"), &model.VersionSnapshot{
		Title:     req.Title,
		ContentMd: req.ContentMd,
		Blocks:    req.Blocks,
		Summary:   req.Summary,
		Keywords:  req.Keywords,
	}, req.ChangeNote, actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, version, "草稿已保存")
}

// Delete 删除内容及其全部关联数据
// @Summary      删除内容
// @Tags         内容管理
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response  "删除成功"
// @Router       /contents/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.contentSvc.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除内容成功")
}
