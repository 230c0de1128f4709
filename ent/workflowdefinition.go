// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// 工作流定义表
type WorkflowDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 内容类型，空字符串表示默认定义
	ContentType string `json:"content_type,omitempty"`
	// 工作流名称
	Name string `json:"name,omitempty"`
	// 状态集合
	States []string `json:"states,omitempty"`
	// 初始状态
	InitialState string `json:"initial_state,omitempty"`
	// 发布（终端）状态
	PublishedState string `json:"published_state,omitempty"`
	// 合法转换边集合，含各边的角色要求
	Edges []model.WorkflowEdge `json:"edges,omitempty"`
	// 允许执行发布转换的角色集合
	PublishRoles []string `json:"publish_roles,omitempty"`
	// 创建时间
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 更新时间
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowdefinition.FieldStates, workflowdefinition.FieldEdges, workflowdefinition.FieldPublishRoles:
			values[i] = new([]byte)
		case workflowdefinition.FieldID:
			values[i] = new(sql.NullInt64)
		case workflowdefinition.FieldContentType, workflowdefinition.FieldName, workflowdefinition.FieldInitialState, workflowdefinition.FieldPublishedState:
			values[i] = new(sql.NullString)
		case workflowdefinition.FieldCreatedAt, workflowdefinition.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowDefinition fields.
func (wd *WorkflowDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowdefinition.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wd.ID = uint(value.Int64)
		case workflowdefinition.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				wd.ContentType = value.String
			}
		case workflowdefinition.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				wd.Name = value.String
			}
		case workflowdefinition.FieldStates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field states", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &wd.States); err != nil {
					return fmt.Errorf("unmarshal field states: %w", err)
				}
			}
		case workflowdefinition.FieldInitialState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_state", values[i])
			} else if value.Valid {
				wd.InitialState = value.String
			}
		case workflowdefinition.FieldPublishedState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field published_state", values[i])
			} else if value.Valid {
				wd.PublishedState = value.String
			}
		case workflowdefinition.FieldEdges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field edges", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &wd.Edges); err != nil {
					return fmt.Errorf("unmarshal field edges: %w", err)
				}
			}
		case workflowdefinition.FieldPublishRoles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field publish_roles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &wd.PublishRoles); err != nil {
					return fmt.Errorf("unmarshal field publish_roles: %w", err)
				}
			}
		case workflowdefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wd.CreatedAt = value.Time
			}
		case workflowdefinition.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wd.UpdatedAt = value.Time
			}
		default:
			wd.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowDefinition.
// This includes values selected through modifiers, order, etc.
func (wd *WorkflowDefinition) Value(name string) (ent.Value, error) {
	return wd.selectValues.Get(name)
}

// Update returns a builder for updating this WorkflowDefinition.
// Note that you need to call WorkflowDefinition.Unwrap() before calling this method if this WorkflowDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (wd *WorkflowDefinition) Update() *WorkflowDefinitionUpdateOne {
	return NewWorkflowDefinitionClient(wd.config).UpdateOne(wd)
}

// Unwrap unwraps the WorkflowDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wd *WorkflowDefinition) Unwrap() *WorkflowDefinition {
	_tx, ok := wd.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowDefinition is not a transactional entity")
	}
	wd.config.driver = _tx.drv
	return wd
}

// String implements the fmt.Stringer.
func (wd *WorkflowDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wd.ID))
	builder.WriteString("content_type=")
	builder.WriteString(wd.ContentType)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(wd.Name)
	builder.WriteString(", ")
	builder.WriteString("states=")
	builder.WriteString(fmt.Sprintf("%v", wd.States))
	builder.WriteString(", ")
	builder.WriteString("initial_state=")
	builder.WriteString(wd.InitialState)
	builder.WriteString(", ")
	builder.WriteString("published_state=")
	builder.WriteString(wd.PublishedState)
	builder.WriteString(", ")
	builder.WriteString("edges=")
	builder.WriteString(fmt.Sprintf("%v", wd.Edges))
	builder.WriteString(", ")
	builder.WriteString("publish_roles=")
	builder.WriteString(fmt.Sprintf("%v", wd.PublishRoles))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(wd.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wd.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowDefinitions is a parsable slice of WorkflowDefinition.
type WorkflowDefinitions []*WorkflowDefinition
