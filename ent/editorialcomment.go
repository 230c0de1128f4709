// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
)

// 编辑评论表
type EditorialComment struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 评论附着的内容版本ID
	VersionID uint `json:"version_id,omitempty"`
	// 评论作者用户ID
	AuthorID uint `json:"author_id,omitempty"`
	// 评论作者昵称（冗余存储）
	AuthorNickname string `json:"author_nickname,omitempty"`
	// 评论内容 (Markdown格式)
	Content string `json:"content,omitempty"`
	// 经后端安全处理后的HTML格式评论内容
	ContentHTML string `json:"content_html,omitempty"`
	// 锚定的内容块ID，NULL表示针对整个版本
	BlockID *string `json:"block_id,omitempty"`
	// 评论类型 general/revision_request/approval
	Type string `json:"type,omitempty"`
	// 解决者用户ID，NULL表示未解决
	ResolvedByID *uint `json:"resolved_by_id,omitempty"`
	// 解决者昵称（冗余存储）
	ResolvedByName string `json:"resolved_by_name,omitempty"`
	// 解决时间，NULL表示未解决
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// 创建时间
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EditorialComment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case editorialcomment.FieldID, editorialcomment.FieldVersionID, editorialcomment.FieldAuthorID, editorialcomment.FieldResolvedByID:
			values[i] = new(sql.NullInt64)
		case editorialcomment.FieldAuthorNickname, editorialcomment.FieldContent, editorialcomment.FieldContentHTML, editorialcomment.FieldBlockID, editorialcomment.FieldType, editorialcomment.FieldResolvedByName:
			values[i] = new(sql.NullString)
		case editorialcomment.FieldResolvedAt, editorialcomment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EditorialComment fields.
func (ec *EditorialComment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case editorialcomment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ec.ID = uint(value.Int64)
		case editorialcomment.FieldVersionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_id", values[i])
			} else if value.Valid {
				ec.VersionID = uint(value.Int64)
			}
		case editorialcomment.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				ec.AuthorID = uint(value.Int64)
			}
		case editorialcomment.FieldAuthorNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_nickname", values[i])
			} else if value.Valid {
				ec.AuthorNickname = value.String
			}
		case editorialcomment.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				ec.Content = value.String
			}
		case editorialcomment.FieldContentHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_html", values[i])
			} else if value.Valid {
				ec.ContentHTML = value.String
			}
		case editorialcomment.FieldBlockID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_id", values[i])
			} else if value.Valid {
				ec.BlockID = new(string)
				*ec.BlockID = value.String
			}
		case editorialcomment.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				ec.Type = value.String
			}
		case editorialcomment.FieldResolvedByID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by_id", values[i])
			} else if value.Valid {
				ec.ResolvedByID = new(uint)
				*ec.ResolvedByID = uint(value.Int64)
			}
		case editorialcomment.FieldResolvedByName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by_name", values[i])
			} else if value.Valid {
				ec.ResolvedByName = value.String
			}
		case editorialcomment.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				ec.ResolvedAt = new(time.Time)
				*ec.ResolvedAt = value.Time
			}
		case editorialcomment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ec.CreatedAt = value.Time
			}
		default:
			ec.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EditorialComment.
// This includes values selected through modifiers, order, etc.
func (ec *EditorialComment) Value(name string) (ent.Value, error) {
	return ec.selectValues.Get(name)
}

// Update returns a builder for updating this EditorialComment.
// Note that you need to call EditorialComment.Unwrap() before calling this method if this EditorialComment
// was returned from a transaction, and the transaction was committed or rolled back.
func (ec *EditorialComment) Update() *EditorialCommentUpdateOne {
	return NewEditorialCommentClient(ec.config).UpdateOne(ec)
}

// Unwrap unwraps the EditorialComment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ec *EditorialComment) Unwrap() *EditorialComment {
	_tx, ok := ec.config.driver.(*txDriver)
	if !ok {
		panic("ent: EditorialComment is not a transactional entity")
	}
	ec.config.driver = _tx.drv
	return ec
}

// String implements the fmt.Stringer.
func (ec *EditorialComment) String() string {
	var builder strings.Builder
	builder.WriteString("EditorialComment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ec.ID))
	builder.WriteString("version_id=")
	builder.WriteString(fmt.Sprintf("%v", ec.VersionID))
	builder.WriteString(", ")
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", ec.AuthorID))
	builder.WriteString(", ")
	builder.WriteString("author_nickname=")
	builder.WriteString(ec.AuthorNickname)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(ec.Content)
	builder.WriteString(", ")
	builder.WriteString("content_html=")
	builder.WriteString(ec.ContentHTML)
	builder.WriteString(", ")
	if v := ec.BlockID; v != nil {
		builder.WriteString("block_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(ec.Type)
	builder.WriteString(", ")
	if v := ec.ResolvedByID; v != nil {
		builder.WriteString("resolved_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("resolved_by_name=")
	builder.WriteString(ec.ResolvedByName)
	builder.WriteString(", ")
	if v := ec.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ec.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EditorialComments is a parsable slice of EditorialComment.
type EditorialComments []*EditorialComment
