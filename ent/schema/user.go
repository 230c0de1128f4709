/*
 * @Description: 用户表
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:13:20
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/anzhiyu-c/anheyu-flow/ent/schema/mixin"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表"),
	}
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(50).
			Unique().
			NotEmpty().
			Comment("用户账号"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
		field.String("nickname").
			MaxLen(50).
			Optional().
			Comment("用户昵称"),
		field.String("email").
			MaxLen(100).
			Unique().
			Optional().
			Comment("用户邮箱"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Int("status").
			Default(2).
			Comment("用户状态 1:正常 2:未激活 3:已封禁"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user_group", UserGroup.Type).
			Ref("users").
			Unique().
			Required(),
	}
}
