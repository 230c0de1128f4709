/*
 * @Description: 用户组表
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:17:02
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/anzhiyu-c/anheyu-flow/ent/schema/mixin"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// UserGroup holds the schema definition for the UserGroup entity.
type UserGroup struct {
	ent.Schema
}

// Annotations of the UserGroup.
func (UserGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户组表"),
	}
}

// Mixin of the UserGroup.
func (UserGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the UserGroup.
func (UserGroup) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			MaxLen(50).
			NotEmpty().
			Comment("用户组名称"),
		field.String("description").
			MaxLen(255).
			Optional().
			Comment("用户组描述"),
		field.JSON("roles", []string{}).
			Optional().
			Comment("该用户组声明的编辑角色集合，供工作流策略授权判断"),
		field.Other("permissions", model.Boolset{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "text",
				dialect.Postgres: "text",
				dialect.SQLite:   "text",
			}).
			Comment("权限集, Base64编码的字节"),
	}
}

// Edges of the UserGroup.
func (UserGroup) Edges() []ent.Edge {
	return []ent.Edge{
		// 定义一对多关系：一个用户组可以有多个用户
		edge.To("users", User.Type).
			StorageKey(edge.Column("user_group_id")),
	}
}
