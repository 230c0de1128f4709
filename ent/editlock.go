// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
)

// 编辑锁表，心跳续期的会话级互斥记录
type EditLock struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 被锁定的内容实体ID
	ContentID uint `json:"content_id,omitempty"`
	// 持有者用户ID
	HolderID uint `json:"holder_id,omitempty"`
	// 持有者昵称（冗余存储，供冲突提示展示）
	HolderNickname string `json:"holder_nickname,omitempty"`
	// 本次持锁会话的唯一标识(UUID)
	Token string `json:"token,omitempty"`
	// 获取时间
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// 最近一次心跳时间，过期判定在读取时计算
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EditLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case editlock.FieldID, editlock.FieldContentID, editlock.FieldHolderID:
			values[i] = new(sql.NullInt64)
		case editlock.FieldHolderNickname, editlock.FieldToken:
			values[i] = new(sql.NullString)
		case editlock.FieldAcquiredAt, editlock.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EditLock fields.
func (el *EditLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case editlock.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			el.ID = uint(value.Int64)
		case editlock.FieldContentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				el.ContentID = uint(value.Int64)
			}
		case editlock.FieldHolderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field holder_id", values[i])
			} else if value.Valid {
				el.HolderID = uint(value.Int64)
			}
		case editlock.FieldHolderNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field holder_nickname", values[i])
			} else if value.Valid {
				el.HolderNickname = value.String
			}
		case editlock.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				el.Token = value.String
			}
		case editlock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				el.AcquiredAt = value.Time
			}
		case editlock.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				el.LastHeartbeatAt = value.Time
			}
		default:
			el.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EditLock.
// This includes values selected through modifiers, order, etc.
func (el *EditLock) Value(name string) (ent.Value, error) {
	return el.selectValues.Get(name)
}

// Update returns a builder for updating this EditLock.
// Note that you need to call EditLock.Unwrap() before calling this method if this EditLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (el *EditLock) Update() *EditLockUpdateOne {
	return NewEditLockClient(el.config).UpdateOne(el)
}

// Unwrap unwraps the EditLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (el *EditLock) Unwrap() *EditLock {
	_tx, ok := el.config.driver.(*txDriver)
	if !ok {
		panic("ent: EditLock is not a transactional entity")
	}
	el.config.driver = _tx.drv
	return el
}

// String implements the fmt.Stringer.
func (el *EditLock) String() string {
	var builder strings.Builder
	builder.WriteString("EditLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", el.ID))
	builder.WriteString("content_id=")
	builder.WriteString(fmt.Sprintf("%v", el.ContentID))
	builder.WriteString(", ")
	builder.WriteString("holder_id=")
	builder.WriteString(fmt.Sprintf("%v", el.HolderID))
	builder.WriteString(", ")
	builder.WriteString("holder_nickname=")
	builder.WriteString(el.HolderNickname)
	builder.WriteString(", ")
	builder.WriteString("token=")
	builder.WriteString(el.Token)
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(el.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat_at=")
	builder.WriteString(el.LastHeartbeatAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EditLocks is a parsable slice of EditLock.
type EditLocks []*EditLock
