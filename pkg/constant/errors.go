/*
 * @Description: 业务标准错误定义
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:20:15
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrIllegalTransition 表示请求的工作流状态转换不合法，可以由 Handler 转换为 422
	ErrIllegalTransition = errors.New("不合法的工作流状态转换")

	// ErrLockConflict 表示编辑锁已被其他用户持有，可以由 Handler 转换为 423
	ErrLockConflict = errors.New("编辑锁已被其他用户持有")

	// ErrNotLockHolder 表示当前用户不是编辑锁的持有者，可以由 Handler 转换为 403
	ErrNotLockHolder = errors.New("当前用户不是编辑锁的持有者")

	// ErrVersionImmutable 表示版本快照已脱离草稿状态，不可再修改
	ErrVersionImmutable = errors.New("版本快照已不可修改")

	// ErrWorkflowInvalid 表示工作流定义不合法（引用了未声明的状态等）
	ErrWorkflowInvalid = errors.New("工作流定义不合法")
)
