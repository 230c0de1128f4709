/*
 * @Description: 可版本化内容实体表
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:40:18
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

// Content holds the schema definition for the Content entity.
type Content struct {
	ent.Schema
}

// Annotations of the Content.
func (Content) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("可版本化内容实体表"),
	}
}

// Fields of the Content.
func (Content) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("type").
			MaxLen(20).
			NotEmpty().
			Comment("内容类型 (post/page/recipe)"),
		field.String("title").
			MaxLen(255).
			Comment("标题镜像（来自当前草稿版本，冗余存储）"),
		field.String("workflow_status").
			MaxLen(50).
			Comment("工作流状态镜像（来自当前草稿版本，冗余存储，用于列表过滤）"),
		field.Uint("active_version_id").
			Optional().
			Nillable().
			Comment("当前发布版本ID，NULL表示从未发布"),
		field.Uint("draft_version_id").
			Optional().
			Nillable().
			Comment("当前草稿版本ID"),
		field.Uint("created_by").
			Comment("创建者用户ID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),
		field.Time("published_at").
			Optional().
			Nillable().
			Comment("最近一次发布时间"),
	}
}

// Edges of the Content.
func (Content) Edges() []ent.Edge {
	return nil
}

// Indexes of the Content.
func (Content) Indexes() []ent.Index {
	return []ent.Index{
		// 列表过滤索引
		index.Fields("type", "workflow_status"),
		index.Fields("created_by"),
	}
}
