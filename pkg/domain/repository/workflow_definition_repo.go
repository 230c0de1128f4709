/*
 * @Description: 工作流定义仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:25:09
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// WorkflowDefinitionRepository 定义了工作流定义配置存储的接口。
// 定义按内容类型唯一；content_type 为空字符串的行是默认定义。
type WorkflowDefinitionRepository interface {
	// GetByContentType 获取指定内容类型的定义，没有时返回 (nil, nil)
	GetByContentType(ctx context.Context, contentType string) (*model.WorkflowDefinition, error)

	// FindAll 获取全部工作流定义
	FindAll(ctx context.Context) ([]*model.WorkflowDefinition, error)

	// Save 创建或按内容类型覆盖工作流定义
	Save(ctx context.Context, params *model.SaveWorkflowDefinitionParams) (*model.WorkflowDefinition, error)

	// Delete 删除指定内容类型的定义
	Delete(ctx context.Context, contentType string) error
}
