/*
 * @Description: 内容版本仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:28:09
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

type versionRepo struct {
	db *ent.Client
}

// NewVersionRepo 是 versionRepo 的构造函数。
func NewVersionRepo(db *ent.Client) repository.VersionRepository {
	return &versionRepo{db: db}
}

// toModel 负责将 ent.ContentVersion 实体转换为 model.ContentVersion 领域模型。
func (r *versionRepo) toModel(v *ent.ContentVersion) *model.ContentVersion {
	if v == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(v.ID, idgen.EntityTypeContentVersion)
	if err != nil {
		log.Printf("[严重错误] 生成版本公共ID失败: dbID=%d, error=%v", v.ID, err)
		return nil
	}

	contentPublicID, err := idgen.GeneratePublicID(v.ContentID, idgen.EntityTypeContent)
	if err != nil {
		log.Printf("[严重错误] 生成内容公共ID失败: dbID=%d, error=%v", v.ContentID, err)
		return nil
	}

	return &model.ContentVersion{
		ID:             publicID,
		ContentID:      contentPublicID,
		Version:        v.Version,
		Title:          v.Title,
		ContentMd:      v.ContentMd,
		ContentHTML:    v.ContentHTML,
		Blocks:         v.Blocks,
		Summary:        v.Summary,
		Keywords:       v.Keywords,
		WordCount:      v.WordCount,
		Status:         v.Status,
		IsActive:       v.IsActive,
		EditorID:       v.EditorID,
		EditorNickname: v.EditorNickname,
		ChangeNote:     v.ChangeNote,
		CreatedAt:      v.CreatedAt,
	}
}

// toListItem 转换为版本历史列表项（不含完整内容）
func (r *versionRepo) toListItem(v *ent.ContentVersion) model.VersionListItem {
	publicID, _ := idgen.GeneratePublicID(v.ID, idgen.EntityTypeContentVersion)

	return model.VersionListItem{
		ID:             publicID,
		Version:        v.Version,
		Title:          v.Title,
		Status:         v.Status,
		IsActive:       v.IsActive,
		WordCount:      v.WordCount,
		EditorNickname: v.EditorNickname,
		ChangeNote:     v.ChangeNote,
		CreatedAt:      v.CreatedAt,
	}
}

// Create 创建版本快照
func (r *versionRepo) Create(ctx context.Context, params *model.CreateVersionParams) (*model.ContentVersion, error) {
	creator := r.db.ContentVersion.Create().
		SetContentID(params.ContentDBID).
		SetVersion(params.Version).
		SetTitle(params.Title).
		SetContentMd(params.ContentMd).
		SetContentHTML(params.ContentHTML).
		SetSummary(params.Summary).
		SetKeywords(params.Keywords).
		SetWordCount(params.WordCount).
		SetStatus(params.Status).
		SetEditorID(params.EditorID).
		SetEditorNickname(params.EditorNickname).
		SetChangeNote(params.ChangeNote)

	if params.Blocks != nil {
		creator.SetBlocks(params.Blocks)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// (content_id, version) 唯一约束冲突：并发创建了同号版本
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("创建内容版本失败: %w", err)
	}

	log.Printf("[VersionRepo] 创建版本成功: 内容ID=%d, 版本=%d, 状态=%s",
		params.ContentDBID, params.Version, params.Status)
	return r.toModel(entity), nil
}

// GetByID 根据数据库ID获取版本快照
func (r *versionRepo) GetByID(ctx context.Context, dbID uint) (*model.ContentVersion, error) {
	entity, err := r.db.ContentVersion.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询内容版本失败: %w", err)
	}
	return r.toModel(entity), nil
}

// GetByContentAndVersion 根据内容ID和版本号获取版本快照
func (r *versionRepo) GetByContentAndVersion(ctx context.Context, contentDBID uint, version int) (*model.ContentVersion, error) {
	entity, err := r.db.ContentVersion.Query().
		Where(
			contentversion.ContentIDEQ(contentDBID),
			contentversion.VersionEQ(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询内容版本失败: %w", err)
	}
	return r.toModel(entity), nil
}

// GetLatestVersionNo 获取内容的最新版本号，没有任何版本时返回0
func (r *versionRepo) GetLatestVersionNo(ctx context.Context, contentDBID uint) (int, error) {
	entity, err := r.db.ContentVersion.Query().
		Where(contentversion.ContentIDEQ(contentDBID)).
		Order(ent.Desc(contentversion.FieldVersion)).
		Select(contentversion.FieldVersion).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("查询最新版本号失败: %w", err)
	}
	return entity.Version, nil
}

// ListByContent 分页获取内容的版本列表，按版本号倒序排列（最新版本在前）
func (r *versionRepo) ListByContent(ctx context.Context, contentDBID uint, page, pageSize int) ([]model.VersionListItem, int64, error) {
	total, err := r.db.ContentVersion.Query().
		Where(contentversion.ContentIDEQ(contentDBID)).
		Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询版本总数失败: %w", err)
	}

	entities, err := r.db.ContentVersion.Query().
		Where(contentversion.ContentIDEQ(contentDBID)).
		Order(ent.Desc(contentversion.FieldVersion)).
		Offset((page-1)*pageSize).
		Limit(pageSize).
		Select(
			contentversion.FieldID,
			contentversion.FieldVersion,
			contentversion.FieldTitle,
			contentversion.FieldStatus,
			contentversion.FieldIsActive,
			contentversion.FieldWordCount,
			contentversion.FieldEditorNickname,
			contentversion.FieldChangeNote,
			contentversion.FieldCreatedAt,
		).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询版本列表失败: %w", err)
	}

	items := make([]model.VersionListItem, len(entities))
	for i, entity := range entities {
		items[i] = r.toListItem(entity)
	}

	return items, int64(total), nil
}

// UpdateStatusFrom 条件更新版本状态：仅当当前状态仍等于 fromStatus 时生效。
// 返回是否有行被更新，供并发转换做乐观校验。
func (r *versionRepo) UpdateStatusFrom(ctx context.Context, dbID uint, fromStatus, toStatus string) (bool, error) {
	affected, err := r.db.ContentVersion.Update().
		Where(
			contentversion.IDEQ(dbID),
			contentversion.StatusEQ(fromStatus),
		).
		SetStatus(toStatus).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("条件更新版本状态失败: %w", err)
	}
	return affected > 0, nil
}

// UpdateSnapshot 条件更新草稿版本的内容快照：仅当状态仍等于 expectStatus 时生效。
// 与 UpdateStatusFrom 同一套纪律，防止版本在读取后离开草稿状态被改写。
func (r *versionRepo) UpdateSnapshot(ctx context.Context, dbID uint, expectStatus string, params *model.UpdateSnapshotParams) (*model.ContentVersion, error) {
	updater := r.db.ContentVersion.Update().
		Where(
			contentversion.IDEQ(dbID),
			contentversion.StatusEQ(expectStatus),
		).
		SetTitle(params.Title).
		SetContentMd(params.ContentMd).
		SetContentHTML(params.ContentHTML).
		SetSummary(params.Summary).
		SetKeywords(params.Keywords).
		SetWordCount(params.WordCount).
		SetEditorID(params.EditorID).
		SetEditorNickname(params.EditorNickname).
		SetChangeNote(params.ChangeNote)

	if params.Blocks != nil {
		updater.SetBlocks(params.Blocks)
	}

	affected, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("更新版本快照失败: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 版本已离开状态'%s'，快照未更新", constant.ErrConflict, expectStatus)
	}
	return r.GetByID(ctx, dbID)
}

// SetActive 设置/清除单个版本的活动标记
func (r *versionRepo) SetActive(ctx context.Context, dbID uint, active bool) error {
	err := r.db.ContentVersion.UpdateOneID(dbID).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新版本活动标记失败: %w", err)
	}
	return nil
}

// ClearActiveByContent 清除内容下所有版本的活动标记，返回受影响的行数
func (r *versionRepo) ClearActiveByContent(ctx context.Context, contentDBID uint) (int, error) {
	affected, err := r.db.ContentVersion.Update().
		Where(
			contentversion.ContentIDEQ(contentDBID),
			contentversion.IsActiveEQ(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("清除活动版本标记失败: %w", err)
	}
	return affected, nil
}

// GetActiveByContent 获取内容当前的活动版本，没有时返回 (nil, nil)
func (r *versionRepo) GetActiveByContent(ctx context.Context, contentDBID uint) (*model.ContentVersion, error) {
	entity, err := r.db.ContentVersion.Query().
		Where(
			contentversion.ContentIDEQ(contentDBID),
			contentversion.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询活动版本失败: %w", err)
	}
	return r.toModel(entity), nil
}

// CountByContent 获取内容的版本总数
func (r *versionRepo) CountByContent(ctx context.Context, contentDBID uint) (int, error) {
	count, err := r.db.ContentVersion.Query().
		Where(contentversion.ContentIDEQ(contentDBID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("查询版本总数失败: %w", err)
	}
	return count, nil
}

// ListIDsByContent 获取内容下所有版本的数据库ID（级联删除用）
func (r *versionRepo) ListIDsByContent(ctx context.Context, contentDBID uint) ([]uint, error) {
	ids, err := r.db.ContentVersion.Query().
		Where(contentversion.ContentIDEQ(contentDBID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询版本ID列表失败: %w", err)
	}
	return ids, nil
}

// DeleteByContent 删除内容的所有版本（内容被删除时调用）
func (r *versionRepo) DeleteByContent(ctx context.Context, contentDBID uint) error {
	deleted, err := r.db.ContentVersion.Delete().
		Where(contentversion.ContentIDEQ(contentDBID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除内容版本失败: %w", err)
	}
	if deleted > 0 {
		log.Printf("[VersionRepo] 删除内容版本: 内容ID=%d, 删除了%d个版本", contentDBID, deleted)
	}
	return nil
}
