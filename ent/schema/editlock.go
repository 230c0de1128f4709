/*
 * @Description: 编辑锁表
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:03:12
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

// EditLock holds the schema definition for the EditLock entity.
// 每个内容实体至多一行（content_id 唯一约束），获取锁依赖该约束实现
// 原子的 insert-if-absent，而不是先查询后插入。
type EditLock struct {
	ent.Schema
}

// Annotations of the EditLock.
func (EditLock) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("编辑锁表，心跳续期的会话级互斥记录"),
	}
}

// Fields of the EditLock.
func (EditLock) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("content_id").
			Unique().
			Comment("被锁定的内容实体ID"),
		field.Uint("holder_id").
			Comment("持有者用户ID"),
		field.String("holder_nickname").
			Optional().
			MaxLen(50).
			Comment("持有者昵称（冗余存储，供冲突提示展示）"),
		field.String("token").
			MaxLen(36).
			Comment("本次持锁会话的唯一标识(UUID)"),
		field.Time("acquired_at").
			Default(time.Now).
			Comment("获取时间"),
		field.Time("last_heartbeat_at").
			Default(time.Now).
			Comment("最近一次心跳时间，过期判定在读取时计算"),
	}
}

// Edges of the EditLock.
func (EditLock) Edges() []ent.Edge {
	return nil
}

// Indexes of the EditLock.
func (EditLock) Indexes() []ent.Index {
	return []ent.Index{
		// 后台清扫任务按心跳时间扫描
		index.Fields("last_heartbeat_at"),
		index.Fields("holder_id"),
	}
}
