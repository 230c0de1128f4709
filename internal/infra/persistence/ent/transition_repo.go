/*
 * @Description: 工作流转换记录仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:35:50
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

type transitionRepo struct {
	db *ent.Client
}

// NewTransitionRepo 是 transitionRepo 的构造函数。
func NewTransitionRepo(db *ent.Client) repository.TransitionRepository {
	return &transitionRepo{db: db}
}

// toModel 负责将 ent.WorkflowTransition 实体转换为领域模型。
func (r *transitionRepo) toModel(t *ent.WorkflowTransition) *model.WorkflowTransition {
	if t == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(t.ID, idgen.EntityTypeWorkflowTransition)
	if err != nil {
		log.Printf("[严重错误] 生成转换记录公共ID失败: dbID=%d, error=%v", t.ID, err)
		return nil
	}

	versionPublicID, err := idgen.GeneratePublicID(t.VersionID, idgen.EntityTypeContentVersion)
	if err != nil {
		log.Printf("[严重错误] 生成版本公共ID失败: dbID=%d, error=%v", t.VersionID, err)
		return nil
	}

	return &model.WorkflowTransition{
		ID:            publicID,
		VersionID:     versionPublicID,
		FromStatus:    t.FromStatus,
		ToStatus:      t.ToStatus,
		ActorID:       t.ActorID,
		ActorNickname: t.ActorNickname,
		Comment:       t.Comment,
		CreatedAt:     t.CreatedAt,
	}
}

// Create 追加一条转换记录
func (r *transitionRepo) Create(ctx context.Context, params *model.CreateTransitionParams) (*model.WorkflowTransition, error) {
	creator := r.db.WorkflowTransition.Create().
		SetVersionID(params.VersionDBID).
		SetToStatus(params.ToStatus).
		SetActorID(params.ActorID).
		SetActorNickname(params.ActorNickname).
		SetComment(params.Comment)

	if params.FromStatus != nil {
		creator.SetFromStatus(*params.FromStatus)
	}

	entity, err := creator.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("追加转换记录失败: %w", err)
	}

	return r.toModel(entity), nil
}

// ListByVersion 获取版本的全部转换记录，按提交顺序升序
func (r *transitionRepo) ListByVersion(ctx context.Context, versionDBID uint) ([]model.WorkflowTransition, error) {
	entities, err := r.db.WorkflowTransition.Query().
		Where(workflowtransition.VersionIDEQ(versionDBID)).
		Order(ent.Asc(workflowtransition.FieldCreatedAt), ent.Asc(workflowtransition.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询转换记录失败: %w", err)
	}

	items := make([]model.WorkflowTransition, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, *m)
		}
	}
	return items, nil
}

// ListByVersionIDs 批量获取多个版本的转换记录，按版本数据库ID分组返回
func (r *transitionRepo) ListByVersionIDs(ctx context.Context, versionDBIDs []uint) (map[uint][]model.WorkflowTransition, error) {
	result := make(map[uint][]model.WorkflowTransition, len(versionDBIDs))
	if len(versionDBIDs) == 0 {
		return result, nil
	}

	entities, err := r.db.WorkflowTransition.Query().
		Where(workflowtransition.VersionIDIn(versionDBIDs...)).
		Order(ent.Asc(workflowtransition.FieldCreatedAt), ent.Asc(workflowtransition.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("批量查询转换记录失败: %w", err)
	}

	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			result[entity.VersionID] = append(result[entity.VersionID], *m)
		}
	}
	return result, nil
}

// GetLastByVersion 获取版本最近一条转换记录，没有时返回 (nil, nil)
func (r *transitionRepo) GetLastByVersion(ctx context.Context, versionDBID uint) (*model.WorkflowTransition, error) {
	entity, err := r.db.WorkflowTransition.Query().
		Where(workflowtransition.VersionIDEQ(versionDBID)).
		Order(ent.Desc(workflowtransition.FieldCreatedAt), ent.Desc(workflowtransition.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询最近转换记录失败: %w", err)
	}
	return r.toModel(entity), nil
}

// DeleteByVersionIDs 删除多个版本的转换记录（内容被删除时调用）
func (r *transitionRepo) DeleteByVersionIDs(ctx context.Context, versionDBIDs []uint) error {
	if len(versionDBIDs) == 0 {
		return nil
	}

	deleted, err := r.db.WorkflowTransition.Delete().
		Where(workflowtransition.VersionIDIn(versionDBIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除转换记录失败: %w", err)
	}
	if deleted > 0 {
		log.Printf("[TransitionRepo] 删除转换记录: %d条", deleted)
	}
	return nil
}
