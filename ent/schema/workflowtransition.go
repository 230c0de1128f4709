/*
 * @Description: 工作流转换记录表（只追加账本）
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:52:40
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowTransition holds the schema definition for the WorkflowTransition entity.
type WorkflowTransition struct {
	ent.Schema
}

// Annotations of the WorkflowTransition.
func (WorkflowTransition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("工作流转换记录表，只追加，从不更新"),
	}
}

// Fields of the WorkflowTransition.
func (WorkflowTransition) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("version_id").
			Comment("关联的内容版本ID"),
		field.String("from_status").
			MaxLen(50).
			Optional().
			Nillable().
			Comment("源状态，NULL表示版本创建边"),
		field.String("to_status").
			MaxLen(50).
			NotEmpty().
			Comment("目标状态"),
		field.Uint("actor_id").
			Comment("执行者用户ID"),
		field.String("actor_nickname").
			Optional().
			Comment("执行者昵称（冗余存储）"),
		field.String("comment").
			Optional().
			MaxLen(500).
			Comment("转换附言"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
	}
}

// Edges of the WorkflowTransition.
func (WorkflowTransition) Edges() []ent.Edge {
	return nil
}

// Indexes of the WorkflowTransition.
func (WorkflowTransition) Indexes() []ent.Index {
	return []ent.Index{
		// 按版本回放转换链
		index.Fields("version_id", "created_at"),
		index.Fields("actor_id"),
	}
}
