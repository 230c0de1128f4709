/*
 * @Description: 工作流转换接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 16:10:55
 */
package workflow

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/workflow"
)

// Handler 工作流处理器
type Handler struct {
	workflowSvc workflow.Service
	policySvc   workflow.PolicyService
}

// NewHandler 创建工作流处理器
func NewHandler(workflowSvc workflow.Service, policySvc workflow.PolicyService) *Handler {
	return &Handler{
		workflowSvc: workflowSvc,
		policySvc:   policySvc,
	}
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

// Transition 将版本推进到目标状态
// @Summary      执行工作流转换
// @Tags         工作流
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "版本ID"
// @Param        body  body  object{to_status=string,comment=string}  true  "目标状态与备注"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "转换成功"
// @Failure      422  {object}  response.Response  "不合法的状态转换"
// @Router       /versions/{id}/transition [post]
func (h *Handler) Transition(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		ToStatus string `json:"to_status" binding:"required"`
		Comment  string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	version, err := h.workflowSvc.Transition(c.Request.Context(), c.Param("id"), req.ToStatus, actor, req.Comment)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, version, "状态转换成功")
}

// AvailableTransitions 列出版本当前可用的转换
// @Summary      查询可用转换
// @Tags         工作流
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "版本ID"
// @Success      200  {object}  response.Response{data=model.AvailableTransitionsResponse}  "查询成功"
// @Router       /versions/{id}/transitions [get]
func (h *Handler) AvailableTransitions(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	result, err := h.workflowSvc.AvailableTransitions(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "查询可用转换成功")
}

// Publish 将版本直接推进到发布状态
// @Summary      发布版本
// @Tags         工作流
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "版本ID"
// @Param        body  body  object{comment=string}  false  "发布备注"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "发布成功"
// @Failure      422  {object}  response.Response  "版本不在可发布的前置状态"
// @Router       /versions/{id}/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	// 请求体可以为空，解析失败按无备注处理
	_ = c.ShouldBindJSON(&req)

	version, err := h.workflowSvc.PublishVersion(c.Request.Context(), c.Param("id"), actor, req.Comment)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, version, "版本发布成功")
}

// Unpublish 撤下内容的当前发布版本
// @Summary      撤下发布
// @Tags         工作流
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response  "撤下成功"
// @Router       /contents/{id}/unpublish [post]
func (h *Handler) Unpublish(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.workflowSvc.Unpublish(c.Request.Context(), c.Param("id"), actor); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "已撤下发布版本")
}

// MakeVersionLive 将历史发布版本重新设为当前发布版本
// @Summary      切换发布版本
// @Tags         工作流
// @Security     BearerAuth
// @Produce      json
// @Param        id       path  string  true  "内容ID"
// @Param        version  path  int     true  "版本号"
// @Success      200  {object}  response.Response{data=model.ContentVersion}  "切换成功"
// @Failure      422  {object}  response.Response  "目标版本不在发布状态"
// @Router       /contents/{id}/versions/{version}/make-live [post]
func (h *Handler) MakeVersionLive(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	v, err := strconv.Atoi(c.Param("version"))
	if err != nil || v < 1 {
		response.Fail(c, http.StatusBadRequest, "版本号必须是正整数")
		return
	}

	version, err := h.workflowSvc.MakeVersionLive(c.Request.Context(), c.Param("id"), v, actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, version, "已切换发布版本")
}
