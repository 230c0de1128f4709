/*
 * @Description: 编辑评论仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:16:31
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// CommentRepository 定义了编辑评论数据仓库的接口。
type CommentRepository interface {
	// Create 创建编辑评论
	Create(ctx context.Context, params *model.CreateCommentParams) (*model.EditorialComment, error)

	// GetByID 根据数据库ID获取评论
	GetByID(ctx context.Context, dbID uint) (*model.EditorialComment, error)

	// ListByVersion 获取版本的全部评论，按创建时间倒序（最新在前）
	ListByVersion(ctx context.Context, versionDBID uint) ([]*model.EditorialComment, int64, error)

	// CountUnresolvedByVersion 获取版本的未解决评论数量
	CountUnresolvedByVersion(ctx context.Context, versionDBID uint) (int, error)

	// UpdateResolution 更新评论的解决状态；resolvedBy/resolvedAt 传 nil 表示重新打开
	UpdateResolution(ctx context.Context, dbID uint, resolvedBy *uint, resolvedByName string, resolvedAt *time.Time) (*model.EditorialComment, error)

	// ListStaleUnresolved 获取创建时间早于 before 且仍未解决的评论（提醒任务用）
	ListStaleUnresolved(ctx context.Context, before time.Time) ([]*model.EditorialComment, error)

	// DeleteByVersionIDs 删除多个版本的评论（内容被删除时调用）
	DeleteByVersionIDs(ctx context.Context, versionDBIDs []uint) error
}
