/*
 * @Description: 内容实体仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:02:40
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// ContentRepository 定义了可版本化内容实体数据仓库的接口。
type ContentRepository interface {
	// Create 创建内容实体
	Create(ctx context.Context, params *model.CreateContentParams) (*model.Content, error)

	// GetByID 根据数据库ID获取内容实体
	GetByID(ctx context.Context, dbID uint) (*model.Content, error)

	// UpdateWorkflowStatus 更新冗余的工作流状态镜像
	UpdateWorkflowStatus(ctx context.Context, dbID uint, status string) error

	// UpdateTitle 更新冗余的标题镜像（草稿标题变化时同步）
	UpdateTitle(ctx context.Context, dbID uint, title string) error

	// SetActiveVersion 设置当前发布版本指针，versionDBID 为 nil 表示撤下发布
	SetActiveVersion(ctx context.Context, dbID uint, versionDBID *uint, publishedAt *time.Time) error

	// SetDraftVersion 设置当前草稿版本指针
	SetDraftVersion(ctx context.Context, dbID uint, versionDBID uint) error

	// List 分页获取内容实体列表
	List(ctx context.Context, contentType string, page, pageSize int) ([]*model.Content, int64, error)

	// Delete 删除内容实体（版本、转换、评论、锁由调用方在同一事务内级联清理）
	Delete(ctx context.Context, dbID uint) error
}
