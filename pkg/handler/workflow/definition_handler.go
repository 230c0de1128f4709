/*
 * @Description: 工作流定义管理接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 16:32:18
 */
package workflow

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
)

// ListDefinitions 获取全部已配置的工作流定义
// @Summary      工作流定义列表
// @Tags         工作流管理
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.WorkflowDefinition}  "获取成功"
// @Router       /admin/workflows [get]
func (h *Handler) ListDefinitions(c *gin.Context) {
	defs, err := h.policySvc.ListDefinitions(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, defs, "获取工作流定义成功")
}

// GetDefinition 获取内容类型生效的工作流定义（含回退逻辑）
// @Summary      查询生效定义
// @Tags         工作流管理
// @Security     BearerAuth
// @Produce      json
// @Param        type  query  string  false  "内容类型，缺省为默认定义"
// @Success      200  {object}  response.Response{data=model.WorkflowDefinition}  "获取成功"
// @Router       /admin/workflows/effective [get]
func (h *Handler) GetDefinition(c *gin.Context) {
	def, err := h.policySvc.ResolveDefinition(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, def, "获取生效定义成功")
}

// SaveDefinition 创建或覆盖一个内容类型的工作流定义
// @Summary      保存工作流定义
// @Tags         工作流管理
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  object{content_type=string,name=string,states=[]string,initial_state=string,published_state=string}  true  "工作流定义"
// @Success      200  {object}  response.Response{data=model.WorkflowDefinition}  "保存成功"
// @Failure      422  {object}  response.Response  "定义不合法"
// @Router       /admin/workflows [put]
func (h *Handler) SaveDefinition(c *gin.Context) {
	var req struct {
		ContentType    string               `json:"content_type"`
		Name           string               `json:"name" binding:"required"`
		States         []string             `json:"states" binding:"required"`
		InitialState   string               `json:"initial_state" binding:"required"`
		PublishedState string               `json:"published_state" binding:"required"`
		Edges          []model.WorkflowEdge `json:"edges" binding:"required"`
		PublishRoles   []string             `json:"publish_roles"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	def, err := h.policySvc.SaveDefinition(c.Request.Context(), &model.SaveWorkflowDefinitionParams{
		ContentType:    req.ContentType,
		Name:           req.Name,
		States:         req.States,
		InitialState:   req.InitialState,
		PublishedState: req.PublishedState,
		Edges:          req.Edges,
		PublishRoles:   req.PublishRoles,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, def, "保存工作流定义成功")
}

// DeleteDefinition 删除一个内容类型的专属定义
// @Summary      删除工作流定义
// @Tags         工作流管理
// @Security     BearerAuth
// @Produce      json
// @Param        type  path  string  true  "内容类型"
// @Success      200  {object}  response.Response  "删除成功"
// @Router       /admin/workflows/{type} [delete]
func (h *Handler) DeleteDefinition(c *gin.Context) {
	if err := h.policySvc.DeleteDefinition(c.Request.Context(), c.Param("type")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除工作流定义成功")
}
