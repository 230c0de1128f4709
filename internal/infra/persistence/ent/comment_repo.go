/*
 * @Description: 编辑评论仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:42:17
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

type commentRepo struct {
	db *ent.Client
}

// NewCommentRepo 是 commentRepo 的构造函数。
func NewCommentRepo(db *ent.Client) repository.CommentRepository {
	return &commentRepo{db: db}
}

// toModel 负责将 ent.EditorialComment 实体转换为领域模型。
func (r *commentRepo) toModel(c *ent.EditorialComment) *model.EditorialComment {
	if c == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(c.ID, idgen.EntityTypeEditorialComment)
	if err != nil {
		log.Printf("[严重错误] 生成评论公共ID失败: dbID=%d, error=%v", c.ID, err)
		return nil
	}

	versionPublicID, err := idgen.GeneratePublicID(c.VersionID, idgen.EntityTypeContentVersion)
	if err != nil {
		log.Printf("[严重错误] 生成版本公共ID失败: dbID=%d, error=%v", c.VersionID, err)
		return nil
	}

	return &model.EditorialComment{
		ID:             publicID,
		VersionID:      versionPublicID,
		AuthorID:       c.AuthorID,
		AuthorNickname: c.AuthorNickname,
		Content:        c.Content,
		ContentHTML:    c.ContentHTML,
		BlockID:        c.BlockID,
		Type:           c.Type,
		ResolvedByID:   c.ResolvedByID,
		ResolvedByName: c.ResolvedByName,
		ResolvedAt:     c.ResolvedAt,
		CreatedAt:      c.CreatedAt,
	}
}

// Create 创建编辑评论
func (r *commentRepo) Create(ctx context.Context, params *model.CreateCommentParams) (*model.EditorialComment, error) {
	creator := r.db.EditorialComment.Create().
		SetVersionID(params.VersionDBID).
		SetAuthorID(params.AuthorID).
		SetAuthorNickname(params.AuthorNickname).
		SetContent(params.Content).
		SetContentHTML(params.ContentHTML).
		SetType(params.Type)

	if params.BlockID != nil {
		creator.SetBlockID(*params.BlockID)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建编辑评论失败: %w", err)
	}

	log.Printf("[CommentRepo] 创建评论成功: 版本ID=%d, 类型=%s", params.VersionDBID, params.Type)
	return r.toModel(entity), nil
}

// GetByID 根据数据库ID获取评论
func (r *commentRepo) GetByID(ctx context.Context, dbID uint) (*model.EditorialComment, error) {
	entity, err := r.db.EditorialComment.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	return r.toModel(entity), nil
}

// ListByVersion 获取版本的全部评论，按创建时间倒序（最新在前）
func (r *commentRepo) ListByVersion(ctx context.Context, versionDBID uint) ([]*model.EditorialComment, int64, error) {
	entities, err := r.db.EditorialComment.Query().
		Where(editorialcomment.VersionIDEQ(versionDBID)).
		Order(ent.Desc(editorialcomment.FieldCreatedAt), ent.Desc(editorialcomment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询评论列表失败: %w", err)
	}

	items := make([]*model.EditorialComment, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, m)
		}
	}
	return items, int64(len(items)), nil
}

// CountUnresolvedByVersion 获取版本的未解决评论数量
func (r *commentRepo) CountUnresolvedByVersion(ctx context.Context, versionDBID uint) (int, error) {
	count, err := r.db.EditorialComment.Query().
		Where(
			editorialcomment.VersionIDEQ(versionDBID),
			editorialcomment.ResolvedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("查询未解决评论数量失败: %w", err)
	}
	return count, nil
}

// UpdateResolution 更新评论的解决状态；resolvedBy/resolvedAt 传 nil 表示重新打开
func (r *commentRepo) UpdateResolution(ctx context.Context, dbID uint, resolvedBy *uint, resolvedByName string, resolvedAt *time.Time) (*model.EditorialComment, error) {
	updater := r.db.EditorialComment.UpdateOneID(dbID)
	if resolvedBy != nil {
		updater.SetResolvedByID(*resolvedBy).
			SetResolvedByName(resolvedByName)
	} else {
		updater.ClearResolvedByID().
			ClearResolvedByName()
	}
	if resolvedAt != nil {
		updater.SetResolvedAt(*resolvedAt)
	} else {
		updater.ClearResolvedAt()
	}

	entity, err := updater.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("更新评论解决状态失败: %w", err)
	}
	return r.toModel(entity), nil
}

// ListStaleUnresolved 获取创建时间早于 before 且仍未解决的评论（提醒任务用）
func (r *commentRepo) ListStaleUnresolved(ctx context.Context, before time.Time) ([]*model.EditorialComment, error) {
	entities, err := r.db.EditorialComment.Query().
		Where(
			editorialcomment.ResolvedAtIsNil(),
			editorialcomment.CreatedAtLT(before),
		).
		Order(ent.Asc(editorialcomment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询长期未解决评论失败: %w", err)
	}

	items := make([]*model.EditorialComment, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, m)
		}
	}
	return items, nil
}

// DeleteByVersionIDs 删除多个版本的评论（内容被删除时调用）
func (r *commentRepo) DeleteByVersionIDs(ctx context.Context, versionDBIDs []uint) error {
	if len(versionDBIDs) == 0 {
		return nil
	}

	deleted, err := r.db.EditorialComment.Delete().
		Where(editorialcomment.VersionIDIn(versionDBIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除编辑评论失败: %w", err)
	}
	if deleted > 0 {
		log.Printf("[CommentRepo] 删除编辑评论: %d条", deleted)
	}
	return nil
}
