/*
 * @Description: 工作流转换记录仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:12:55
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// TransitionRepository 定义了工作流转换账本的接口。账本只追加：
// 没有任何更新或单条删除方法，删除仅发生在内容实体级联销毁时。
type TransitionRepository interface {
	// Create 追加一条转换记录
	Create(ctx context.Context, params *model.CreateTransitionParams) (*model.WorkflowTransition, error)

	// ListByVersion 获取版本的全部转换记录，按提交顺序升序
	ListByVersion(ctx context.Context, versionDBID uint) ([]model.WorkflowTransition, error)

	// ListByVersionIDs 批量获取多个版本的转换记录（版本历史的预加载）
	ListByVersionIDs(ctx context.Context, versionDBIDs []uint) (map[uint][]model.WorkflowTransition, error)

	// GetLastByVersion 获取版本最近一条转换记录，没有时返回 (nil, nil)
	GetLastByVersion(ctx context.Context, versionDBID uint) (*model.WorkflowTransition, error)

	// DeleteByVersionIDs 删除多个版本的转换记录（内容被删除时调用）
	DeleteByVersionIDs(ctx context.Context, versionDBIDs []uint) error
}
