/*
 * @Description: 统一的API响应结构
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:35:51
 */
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 201 Created 或 423 Locked 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// FailWithError 根据业务标准错误选择合适的 HTTP 状态码返回。
func FailWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrIllegalTransition), errors.Is(err, constant.ErrWorkflowInvalid):
		Fail(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, constant.ErrVersionImmutable):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, constant.ErrLockConflict):
		Fail(c, http.StatusLocked, err.Error())
	case errors.Is(err, constant.ErrNotLockHolder), errors.Is(err, constant.ErrForbidden):
		Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, constant.ErrUnauthorized), errors.Is(err, constant.ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, constant.ErrConflict):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, constant.ErrBadRequest), errors.Is(err, constant.ErrInvalidPublicID):
		Fail(c, http.StatusBadRequest, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, err.Error())
	}
}
