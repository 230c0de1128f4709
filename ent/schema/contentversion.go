/*
 * @Description: 内容版本快照表
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:46:55
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// ContentVersion holds the schema definition for the ContentVersion entity.
type ContentVersion struct {
	ent.Schema
}

// Annotations of the ContentVersion.
func (ContentVersion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("内容版本快照表"),
	}
}

// Fields of the ContentVersion.
func (ContentVersion) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("content_id").
			Comment("关联的内容实体ID"),
		field.Int("version").
			Comment("版本号，从1开始稠密递增").
			Positive(),
		field.String("title").
			Comment("标题快照").
			NotEmpty(),
		field.Text("content_md").
			Comment("Markdown内容快照").
			Optional(),
		field.Text("content_html").
			Comment("渲染后的HTML内容快照").
			Optional(),
		field.JSON("blocks", []model.ContentBlock{}).
			Comment("结构化内容块快照").
			Optional(),
		field.String("summary").
			Comment("摘要快照").
			Optional().
			MaxLen(500),
		field.String("keywords").
			Comment("关键词快照").
			Optional(),
		field.Int("word_count").
			Comment("字数").
			Default(0).
			NonNegative(),
		field.String("status").
			MaxLen(50).
			Comment("工作流状态，取值由内容类型的工作流定义声明"),
		field.Bool("is_active").
			Default(false).
			Comment("是否为当前发布版本，同一内容至多一个为真"),
		field.Uint("editor_id").
			Comment("编辑者ID"),
		field.String("editor_nickname").
			Comment("编辑者昵称（冗余存储）").
			Optional(),
		field.String("change_note").
			Comment("变更说明").
			Optional().
			MaxLen(500),
		field.Time("created_at").
			Comment("创建时间").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContentVersion.
func (ContentVersion) Edges() []ent.Edge {
	return nil
}

// Indexes of the ContentVersion.
func (ContentVersion) Indexes() []ent.Index {
	return []ent.Index{
		// 联合唯一索引：同一内容的版本号唯一
		index.Fields("content_id", "version").Unique(),
		// 活动版本查询索引
		index.Fields("content_id", "is_active"),
		index.Fields("editor_id"),
	}
}
