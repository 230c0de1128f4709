/*
 * @Description: 编辑评论接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 16:50:33
 */
package comment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/comment"
)

// Handler 编辑评论处理器
type Handler struct {
	commentSvc comment.Service
}

// NewHandler 创建编辑评论处理器
func NewHandler(commentSvc comment.Service) *Handler {
	return &Handler{commentSvc: commentSvc}
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

// Create 在版本上创建编辑评论
// @Summary      创建编辑评论
// @Tags         编辑评论
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "版本ID"
// @Param        body  body  object{content=string,block_id=string,type=string}  true  "评论内容"
// @Success      200  {object}  response.Response{data=model.EditorialComment}  "创建成功"
// @Router       /versions/{id}/comments [post]
func (h *Handler) Create(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		Content string  `json:"content" binding:"required"`
		BlockID *string `json:"block_id"`
		Type    string  `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	created, err := h.commentSvc.Create(c.Request.Context(), c.Param("id"), actor, req.Content, req.BlockID, req.Type)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, created, "评论创建成功")
}

// List 获取版本的全部评论及未解决数量
// @Summary      评论列表
// @Tags         编辑评论
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "版本ID"
// @Success      200  {object}  response.Response{data=model.CommentListResponse}  "获取成功"
// @Router       /versions/{id}/comments [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.commentSvc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取评论列表成功")
}

// Resolve 将评论标记为已解决
// @Summary      解决评论
// @Tags         编辑评论
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "评论ID"
// @Success      200  {object}  response.Response{data=model.EditorialComment}  "操作成功"
// @Router       /comments/{id}/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	resolved, err := h.commentSvc.Resolve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, resolved, "评论已解决")
}

// Reopen 重新打开已解决的评论
// @Summary      重开评论
// @Tags         编辑评论
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "评论ID"
// @Success      200  {object}  response.Response{data=model.EditorialComment}  "操作成功"
// @Router       /comments/{id}/reopen [post]
func (h *Handler) Reopen(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	reopened, err := h.commentSvc.Reopen(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, reopened, "评论已重新打开")
}
