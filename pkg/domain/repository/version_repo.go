/*
 * @Description: 内容版本仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:08:12
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// VersionRepository 定义了内容版本快照数据仓库的接口。
type VersionRepository interface {
	// Create 创建版本快照
	Create(ctx context.Context, params *model.CreateVersionParams) (*model.ContentVersion, error)

	// GetByID 根据数据库ID获取版本快照
	GetByID(ctx context.Context, dbID uint) (*model.ContentVersion, error)

	// GetByContentAndVersion 根据内容ID和版本号获取版本快照
	GetByContentAndVersion(ctx context.Context, contentDBID uint, version int) (*model.ContentVersion, error)

	// GetLatestVersionNo 获取内容的最新版本号，没有任何版本时返回0
	GetLatestVersionNo(ctx context.Context, contentDBID uint) (int, error)

	// ListByContent 分页获取内容的版本列表，按版本号倒序（最新在前）
	ListByContent(ctx context.Context, contentDBID uint, page, pageSize int) ([]model.VersionListItem, int64, error)

	// UpdateStatusFrom 条件更新版本状态：仅当当前状态仍等于 fromStatus 时生效。
	// 返回是否有行被更新，用于并发转换的乐观校验。
	UpdateStatusFrom(ctx context.Context, dbID uint, fromStatus, toStatus string) (bool, error)

	// UpdateSnapshot 条件更新草稿版本的内容快照：仅当版本状态仍等于
	// expectStatus 时生效，状态已变化时返回 ErrConflict。
	UpdateSnapshot(ctx context.Context, dbID uint, expectStatus string, params *model.UpdateSnapshotParams) (*model.ContentVersion, error)

	// SetActive 设置/清除单个版本的活动标记
	SetActive(ctx context.Context, dbID uint, active bool) error

	// ClearActiveByContent 清除内容下所有版本的活动标记，返回受影响的行数
	ClearActiveByContent(ctx context.Context, contentDBID uint) (int, error)

	// GetActiveByContent 获取内容当前的活动版本，没有时返回 (nil, nil)
	GetActiveByContent(ctx context.Context, contentDBID uint) (*model.ContentVersion, error)

	// CountByContent 获取内容的版本总数
	CountByContent(ctx context.Context, contentDBID uint) (int, error)

	// ListIDsByContent 获取内容下所有版本的数据库ID（级联删除用）
	ListIDsByContent(ctx context.Context, contentDBID uint) ([]uint, error)

	// DeleteByContent 删除内容的所有版本（内容被删除时调用）
	DeleteByContent(ctx context.Context, contentDBID uint) error
}
