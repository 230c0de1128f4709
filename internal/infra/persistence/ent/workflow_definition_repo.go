/*
 * @Description: 工作流定义仓储实现
 * @Author: 安知鱼
 * @Date: 2026-02-10 16:57:45
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/anheyu-flow/ent"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/pkg/constant"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-flow/pkg/idgen"
)

type workflowDefinitionRepo struct {
	db *ent.Client
}

// NewWorkflowDefinitionRepo 是 workflowDefinitionRepo 的构造函数。
func NewWorkflowDefinitionRepo(db *ent.Client) repository.WorkflowDefinitionRepository {
	return &workflowDefinitionRepo{db: db}
}

// toModel 负责将 ent.WorkflowDefinition 实体转换为领域模型。
func (r *workflowDefinitionRepo) toModel(d *ent.WorkflowDefinition) *model.WorkflowDefinition {
	if d == nil {
		return nil
	}

	publicID, err := idgen.GeneratePublicID(d.ID, idgen.EntityTypeWorkflowDefinition)
	if err != nil {
		log.Printf("[严重错误] 生成工作流定义公共ID失败: dbID=%d, error=%v", d.ID, err)
		return nil
	}

	return &model.WorkflowDefinition{
		ID:             publicID,
		ContentType:    d.ContentType,
		Name:           d.Name,
		States:         d.States,
		InitialState:   d.InitialState,
		PublishedState: d.PublishedState,
		Edges:          d.Edges,
		PublishRoles:   d.PublishRoles,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// GetByContentType 获取指定内容类型的定义，没有时返回 (nil, nil)
func (r *workflowDefinitionRepo) GetByContentType(ctx context.Context, contentType string) (*model.WorkflowDefinition, error) {
	entity, err := r.db.WorkflowDefinition.Query().
		Where(workflowdefinition.ContentTypeEQ(contentType)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询工作流定义失败: %w", err)
	}
	return r.toModel(entity), nil
}

// FindAll 获取全部工作流定义
func (r *workflowDefinitionRepo) FindAll(ctx context.Context) ([]*model.WorkflowDefinition, error) {
	entities, err := r.db.WorkflowDefinition.Query().
		Order(ent.Asc(workflowdefinition.FieldContentType)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询工作流定义列表失败: %w", err)
	}

	items := make([]*model.WorkflowDefinition, 0, len(entities))
	for _, entity := range entities {
		if m := r.toModel(entity); m != nil {
			items = append(items, m)
		}
	}
	return items, nil
}

// Save 创建或按内容类型覆盖工作流定义
func (r *workflowDefinitionRepo) Save(ctx context.Context, params *model.SaveWorkflowDefinitionParams) (*model.WorkflowDefinition, error) {
	existing, err := r.db.WorkflowDefinition.Query().
		Where(workflowdefinition.ContentTypeEQ(params.ContentType)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("查询工作流定义失败: %w", err)
	}

	var entity *ent.WorkflowDefinition
	if existing != nil {
		entity, err = r.db.WorkflowDefinition.UpdateOneID(existing.ID).
			SetName(params.Name).
			SetStates(params.States).
			SetInitialState(params.InitialState).
			SetPublishedState(params.PublishedState).
			SetEdges(params.Edges).
			SetPublishRoles(params.PublishRoles).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("更新工作流定义失败: %w", err)
		}
		log.Printf("[WorkflowDefinitionRepo] 更新工作流定义: 内容类型=%q", params.ContentType)
	} else {
		entity, err = r.db.WorkflowDefinition.Create().
			SetContentType(params.ContentType).
			SetName(params.Name).
			SetStates(params.States).
			SetInitialState(params.InitialState).
			SetPublishedState(params.PublishedState).
			SetEdges(params.Edges).
			SetPublishRoles(params.PublishRoles).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("创建工作流定义失败: %w", err)
		}
		log.Printf("[WorkflowDefinitionRepo] 创建工作流定义: 内容类型=%q", params.ContentType)
	}

	return r.toModel(entity), nil
}

// Delete 删除指定内容类型的定义
func (r *workflowDefinitionRepo) Delete(ctx context.Context, contentType string) error {
	deleted, err := r.db.WorkflowDefinition.Delete().
		Where(workflowdefinition.ContentTypeEQ(contentType)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除工作流定义失败: %w", err)
	}
	if deleted == 0 {
		return constant.ErrNotFound
	}
	return nil
}
