/*
 * @Description: 编辑评论表
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:58:26
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

// EditorialComment holds the schema definition for the EditorialComment entity.
type EditorialComment struct {
	ent.Schema
}

// Annotations of the EditorialComment.
func (EditorialComment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("编辑评论表"),
	}
}

// Fields of the EditorialComment.
func (EditorialComment) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("version_id").
			Comment("评论附着的内容版本ID"),
		field.Uint("author_id").
			Comment("评论作者用户ID"),
		field.String("author_nickname").
			Optional().
			MaxLen(50).
			Comment("评论作者昵称（冗余存储）"),
		field.Text("content").
			NotEmpty().
			Comment("评论内容 (Markdown格式)"),
		field.Text("content_html").
			NotEmpty().
			Comment("经后端安全处理后的HTML格式评论内容"),
		field.String("block_id").
			Optional().
			Nillable().
			MaxLen(64).
			Comment("锚定的内容块ID，NULL表示针对整个版本"),
		field.String("type").
			MaxLen(30).
			Default("general").
			Comment("评论类型 general/revision_request/approval"),
		field.Uint("resolved_by_id").
			Optional().
			Nillable().
			Comment("解决者用户ID，NULL表示未解决"),
		field.String("resolved_by_name").
			Optional().
			MaxLen(50).
			Comment("解决者昵称（冗余存储）"),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("解决时间，NULL表示未解决"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),
	}
}

// Edges of the EditorialComment.
func (EditorialComment) Edges() []ent.Edge {
	return nil
}

// Indexes of the EditorialComment.
func (EditorialComment) Indexes() []ent.Index {
	return []ent.Index{
		// 按版本列出评论
		index.Fields("version_id", "created_at"),
		// 未解决评论统计
		index.Fields("version_id", "resolved_at"),
		index.Fields("author_id"),
	}
}
