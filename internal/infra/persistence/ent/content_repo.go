/*
 * @Description: 内容实体仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:20:41
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/content"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

type contentRepo struct {
	db *ent.Client
}

// NewContentRepo 是 contentRepo 的构造函数。
func NewContentRepo(db *ent.Client) repository.ContentRepository {
	return &contentRepo{db: db}
}

// toModel 负责将 ent.Content 实体转换为 model.Content 领域模型。
func (r *contentRepo) toModel(c *ent.Content) *model.Content {
	if c == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(c.ID, idgen.EntityTypeContent)
	if err != nil {
		log.Printf("[严重错误] 生成内容公共ID失败: dbID=%d, error=%v", c.ID, err)
		return nil
	}

	creatorPublicID, err := idgen.GeneratePublicID(c.CreatedBy, idgen.EntityTypeUser)
	if err != nil {
		log.Printf("[严重错误] 生成创建者公共ID失败: dbID=%d, error=%v", c.CreatedBy, err)
		return nil
	}

	m := &model.Content{
		ID:             publicID,
		Type:           c.Type,
		Title:          c.Title,
		WorkflowStatus: c.WorkflowStatus,
		CreatedBy:      creatorPublicID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		PublishedAt:    c.PublishedAt,
	}

	if c.ActiveVersionID != nil {
		vid, err := idgen.GeneratePublicID(*c.ActiveVersionID, idgen.EntityTypeContentVersion)
		if err == nil {
			m.ActiveVersionID = &vid
		}
	}
	if c.DraftVersionID != nil {
		vid, err := idgen.GeneratePublicID(*c.DraftVersionID, idgen.EntityTypeContentVersion)
		if err == nil {
			m.DraftVersionID = &vid
		}
	}

	return m
}

// Create 创建内容实体
func (r *contentRepo) Create(ctx context.Context, params *model.CreateContentParams) (*model.Content, error) {
	entity, err := r.db.Content.Create().
		SetType(params.Type).
		SetTitle(params.Title).
		SetWorkflowStatus("").
		SetCreatedBy(params.CreatorID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建内容实体失败: %w", err)
	}

	log.Printf("[ContentRepo] 创建内容实体成功: ID=%d, 类型=%s", entity.ID, entity.Type)
	return r.toModel(entity), nil
}

// GetByID 根据数据库ID获取内容实体
func (r *contentRepo) GetByID(ctx context.Context, dbID uint) (*model.Content, error) {
	entity, err := r.db.Content.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询内容实体失败: %w", err)
	}
	return r.toModel(entity), nil
}

// UpdateWorkflowStatus 更新冗余的工作流状态镜像
func (r *contentRepo) UpdateWorkflowStatus(ctx context.Context, dbID uint, status string) error {
	err := r.db.Content.UpdateOneID(dbID).
		SetWorkflowStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新内容工作流状态失败: %w", err)
	}
	return nil
}

// UpdateTitle 更新冗余的标题镜像
func (r *contentRepo) UpdateTitle(ctx context.Context, dbID uint, title string) error {
	err := r.db.Content.UpdateOneID(dbID).
		SetTitle(title).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新内容标题失败: %w", err)
	}
	return nil
}

// SetActiveVersion 设置当前发布版本指针，versionDBID 为 nil 表示撤下发布
func (r *contentRepo) SetActiveVersion(ctx context.Context, dbID uint, versionDBID *uint, publishedAt *time.Time) error {
	updater := r.db.Content.UpdateOneID(dbID)
	if versionDBID != nil {
		updater.SetActiveVersionID(*versionDBID)
	} else {
		updater.ClearActiveVersionID()
	}
	if publishedAt != nil {
		updater.SetPublishedAt(*publishedAt)
	}

	if err := updater.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新内容发布版本指针失败: %w", err)
	}
	return nil
}

// SetDraftVersion 设置当前草稿版本指针
func (r *contentRepo) SetDraftVersion(ctx context.Context, dbID uint, versionDBID uint) error {
	err := r.db.Content.UpdateOneID(dbID).
		SetDraftVersionID(versionDBID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新内容草稿版本指针失败: %w", err)
	}
	return nil
}

// List 分页获取内容实体列表，contentType 为空时不过滤类型
func (r *contentRepo) List(ctx context.Context, contentType string, page, pageSize int) ([]*model.Content, int64, error) {
	query := r.db.Content.Query()
	if contentType != "" {
		query = query.Where(content.TypeEQ(contentType))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询内容总数失败: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(content.FieldUpdatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("查询内容列表失败: %w", err)
	}

	items := make([]*model.Content, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, m)
		}
	}

	return items, int64(total), nil
}

// Delete 删除内容实体
func (r *contentRepo) Delete(ctx context.Context, dbID uint) error {
	if err := r.db.Content.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("删除内容实体失败: %w", err)
	}
	log.Printf("[ContentRepo] 删除内容实体: ID=%d", dbID)
	return nil
}
