/*
 * @Description: 工作流定义表
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:08:37
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// WorkflowDefinition holds the schema definition for the WorkflowDefinition entity.
// 状态机完全是数据：状态集合、转换边和角色要求以 JSON 存储，
// 按内容类型唯一，空内容类型的行作为默认定义。
type WorkflowDefinition struct {
	ent.Schema
}

// Annotations of the WorkflowDefinition.
func (WorkflowDefinition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("工作流定义表"),
	}
}

// Fields of the WorkflowDefinition.
func (WorkflowDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("content_type").
			MaxLen(20).
			Unique().
			Comment("内容类型，空字符串表示默认定义"),
		field.String("name").
			MaxLen(100).
			NotEmpty().
			Comment("工作流名称"),
		field.JSON("states", []string{}).
			Comment("状态集合"),
		field.String("initial_state").
			MaxLen(50).
			NotEmpty().
			Comment("初始状态"),
		field.String("published_state").
			MaxLen(50).
			NotEmpty().
			Comment("发布（终端）状态"),
		field.JSON("edges", []model.WorkflowEdge{}).
			Comment("合法转换边集合，含各边的角色要求"),
		field.JSON("publish_roles", []string{}).
			Comment("允许执行发布转换的角色集合"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),
	}
}

// Edges of the WorkflowDefinition.
func (WorkflowDefinition) Edges() []ent.Edge {
	return nil
}
