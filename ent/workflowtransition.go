// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// 工作流转换记录表，只追加，从不更新
type WorkflowTransition struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 关联的内容版本ID
	VersionID uint `json:"version_id,omitempty"`
	// 源状态，NULL表示版本创建边
	FromStatus *string `json:"from_status,omitempty"`
	// 目标状态
	ToStatus string `json:"to_status,omitempty"`
	// 执行者用户ID
	ActorID uint `json:"actor_id,omitempty"`
	// 执行者昵称（冗余存储）
	ActorNickname string `json:"actor_nickname,omitempty"`
	// 转换附言
	Comment string `json:"comment,omitempty"`
	// 创建时间
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowTransition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowtransition.FieldID, workflowtransition.FieldVersionID, workflowtransition.FieldActorID:
			values[i] = new(sql.NullInt64)
		case workflowtransition.FieldFromStatus, workflowtransition.FieldToStatus, workflowtransition.FieldActorNickname, workflowtransition.FieldComment:
			values[i] = new(sql.NullString)
		case workflowtransition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowTransition fields.
func (wt *WorkflowTransition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowtransition.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wt.ID = uint(value.Int64)
		case workflowtransition.FieldVersionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_id", values[i])
			} else if value.Valid {
				wt.VersionID = uint(value.Int64)
			}
		case workflowtransition.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				wt.FromStatus = new(string)
				*wt.FromStatus = value.String
			}
		case workflowtransition.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				wt.ToStatus = value.String
			}
		case workflowtransition.FieldActorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				wt.ActorID = uint(value.Int64)
			}
		case workflowtransition.FieldActorNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_nickname", values[i])
			} else if value.Valid {
				wt.ActorNickname = value.String
			}
		case workflowtransition.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				wt.Comment = value.String
			}
		case workflowtransition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wt.CreatedAt = value.Time
			}
		default:
			wt.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowTransition.
// This includes values selected through modifiers, order, etc.
func (wt *WorkflowTransition) Value(name string) (ent.Value, error) {
	return wt.selectValues.Get(name)
}

// Update returns a builder for updating this WorkflowTransition.
// Note that you need to call WorkflowTransition.Unwrap() before calling this method if this WorkflowTransition
// was returned from a transaction, and the transaction was committed or rolled back.
func (wt *WorkflowTransition) Update() *WorkflowTransitionUpdateOne {
	return NewWorkflowTransitionClient(wt.config).UpdateOne(wt)
}

// Unwrap unwraps the WorkflowTransition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wt *WorkflowTransition) Unwrap() *WorkflowTransition {
	_tx, ok := wt.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowTransition is not a transactional entity")
	}
	wt.config.driver = _tx.drv
	return wt
}

// String implements the fmt.Stringer.
func (wt *WorkflowTransition) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowTransition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wt.ID))
	builder.WriteString("version_id=")
	builder.WriteString(fmt.Sprintf("%v", wt.VersionID))
	builder.WriteString(", ")
	if v := wt.FromStatus; v != nil {
		builder.WriteString("from_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(wt.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(fmt.Sprintf("%v", wt.ActorID))
	builder.WriteString(", ")
	builder.WriteString("actor_nickname=")
	builder.WriteString(wt.ActorNickname)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(wt.Comment)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(wt.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowTransitions is a parsable slice of WorkflowTransition.
type WorkflowTransitions []*WorkflowTransition
