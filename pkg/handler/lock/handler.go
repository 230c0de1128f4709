/*
 * @Description: 编辑锁接口
 * @Author: 安知鱼
 * @Date: 2026-02-12 17:05:12
 */
package lock

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/internal/pkg/auth"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-flow/pkg/response"
	"github.com/anzhiyu-c/anheyu-flow/pkg/service/lock"
)

// Handler 编辑锁处理器
type Handler struct {
	lockSvc lock.Service
}

// NewHandler 创建编辑锁处理器
func NewHandler(lockSvc lock.Service) *Handler {
	return &Handler{lockSvc: lockSvc}
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

// Acquire 获取内容的编辑锁
// @Summary      获取编辑锁
// @Tags         编辑锁
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=model.LockInfo}  "获取成功"
// @Failure      423  {object}  response.Response  "锁被他人持有"
// @Router       /contents/{id}/lock [post]
func (h *Handler) Acquire(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	info, err := h.lockSvc.Acquire(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, info, "获取编辑锁成功")
}

// ForceAcquire 无视心跳强制抢占编辑锁
// @Summary      强制抢占编辑锁
// @Tags         编辑锁
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=model.LockInfo}  "抢占成功"
// @Failure      403  {object}  response.Response  "缺少抢占权限"
// @Router       /contents/{id}/lock/force [post]
func (h *Handler) ForceAcquire(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	info, err := h.lockSvc.ForceAcquire(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, info, "强制抢占编辑锁成功")
}

// Heartbeat 刷新编辑锁心跳
// @Summary      刷新锁心跳
// @Tags         编辑锁
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=object{alive=bool}}  "心跳已刷新"
// @Failure      403  {object}  response.Response  "锁已不在当前用户手上"
// @Router       /contents/{id}/lock/heartbeat [post]
func (h *Handler) Heartbeat(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.lockSvc.Heartbeat(c.Request.Context(), c.Param("id"), actor); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"alive": true}, "心跳已刷新")
}

// Release 释放编辑锁
// @Summary      释放编辑锁
// @Tags         编辑锁
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=object{released=bool}}  "释放结果"
// @Router       /contents/{id}/lock [delete]
func (h *Handler) Release(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	released, err := h.lockSvc.Release(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"released": released}, "释放编辑锁完成")
}

// GetInfo 查询内容的锁状态
// @Summary      查询锁状态
// @Tags         编辑锁
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "内容ID"
// @Success      200  {object}  response.Response{data=model.LockInfo}  "查询成功"
// @Router       /contents/{id}/lock [get]
func (h *Handler) GetInfo(c *gin.Context) {
	actor, err := currentUser(c)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	info, err := h.lockSvc.GetInfo(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, info, "查询锁状态成功")
}
