// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// 内容版本快照表
type ContentVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 关联的内容实体ID
	ContentID uint `json:"content_id,omitempty"`
	// 版本号，从1开始稠密递增
	Version int `json:"version,omitempty"`
	// 标题快照
	Title string `json:"title,omitempty"`
	// Markdown内容快照
	ContentMd string `json:"content_md,omitempty"`
	// 渲染后的HTML内容快照
	ContentHTML string `json:"content_html,omitempty"`
	// 结构化内容块快照
	Blocks []model.ContentBlock `json:"blocks,omitempty"`
	// 摘要快照
	Summary string `json:"summary,omitempty"`
	// 关键词快照
	Keywords string `json:"keywords,omitempty"`
	// 字数
	WordCount int `json:"word_count,omitempty"`
	// 工作流状态，取值由内容类型的工作流定义声明
	Status string `json:"status,omitempty"`
	// 是否为当前发布版本，同一内容至多一个为真
	IsActive bool `json:"is_active,omitempty"`
	// 编辑者ID
	EditorID uint `json:"editor_id,omitempty"`
	// 编辑者昵称（冗余存储）
	EditorNickname string `json:"editor_nickname,omitempty"`
	// 变更说明
	ChangeNote string `json:"change_note,omitempty"`
	// 创建时间
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentversion.FieldBlocks:
			values[i] = new([]byte)
		case contentversion.FieldIsActive:
			values[i] = new(sql.NullBool)
		case contentversion.FieldID, contentversion.FieldContentID, contentversion.FieldVersion, contentversion.FieldWordCount, contentversion.FieldEditorID:
			values[i] = new(sql.NullInt64)
		case contentversion.FieldTitle, contentversion.FieldContentMd, contentversion.FieldContentHTML, contentversion.FieldSummary, contentversion.FieldKeywords, contentversion.FieldStatus, contentversion.FieldEditorNickname, contentversion.FieldChangeNote:
			values[i] = new(sql.NullString)
		case contentversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentVersion fields.
func (cv *ContentVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cv.ID = uint(value.Int64)
		case contentversion.FieldContentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				cv.ContentID = uint(value.Int64)
			}
		case contentversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				cv.Version = int(value.Int64)
			}
		case contentversion.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				cv.Title = value.String
			}
		case contentversion.FieldContentMd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_md", values[i])
			} else if value.Valid {
				cv.ContentMd = value.String
			}
		case contentversion.FieldContentHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_html", values[i])
			} else if value.Valid {
				cv.ContentHTML = value.String
			}
		case contentversion.FieldBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cv.Blocks); err != nil {
					return fmt.Errorf("unmarshal field blocks: %w", err)
				}
			}
		case contentversion.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				cv.Summary = value.String
			}
		case contentversion.FieldKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value.Valid {
				cv.Keywords = value.String
			}
		case contentversion.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				cv.WordCount = int(value.Int64)
			}
		case contentversion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				cv.Status = value.String
			}
		case contentversion.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				cv.IsActive = value.Bool
			}
		case contentversion.FieldEditorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field editor_id", values[i])
			} else if value.Valid {
				cv.EditorID = uint(value.Int64)
			}
		case contentversion.FieldEditorNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field editor_nickname", values[i])
			} else if value.Valid {
				cv.EditorNickname = value.String
			}
		case contentversion.FieldChangeNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_note", values[i])
			} else if value.Valid {
				cv.ChangeNote = value.String
			}
		case contentversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cv.CreatedAt = value.Time
			}
		default:
			cv.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentVersion.
// This includes values selected through modifiers, order, etc.
func (cv *ContentVersion) Value(name string) (ent.Value, error) {
	return cv.selectValues.Get(name)
}

// Update returns a builder for updating this ContentVersion.
// Note that you need to call ContentVersion.Unwrap() before calling this method if this ContentVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (cv *ContentVersion) Update() *ContentVersionUpdateOne {
	return NewContentVersionClient(cv.config).UpdateOne(cv)
}

// Unwrap unwraps the ContentVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cv *ContentVersion) Unwrap() *ContentVersion {
	_tx, ok := cv.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentVersion is not a transactional entity")
	}
	cv.config.driver = _tx.drv
	return cv
}

// String implements the fmt.Stringer.
func (cv *ContentVersion) String() string {
	var builder strings.Builder
	builder.WriteString("ContentVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cv.ID))
	builder.WriteString("content_id=")
	builder.WriteString(fmt.Sprintf("%v", cv.ContentID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", cv.Version))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(cv.Title)
	builder.WriteString(", ")
	builder.WriteString("content_md=")
	builder.WriteString(cv.ContentMd)
	builder.WriteString(", ")
	builder.WriteString("content_html=")
	builder.WriteString(cv.ContentHTML)
	builder.WriteString(", ")
	builder.WriteString("blocks=")
	builder.WriteString(fmt.Sprintf("%v", cv.Blocks))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(cv.Summary)
	builder.WriteString(", ")
	builder.WriteString("keywords=")
	builder.WriteString(cv.Keywords)
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", cv.WordCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(cv.Status)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", cv.IsActive))
	builder.WriteString(", ")
	builder.WriteString("editor_id=")
	builder.WriteString(fmt.Sprintf("%v", cv.EditorID))
	builder.WriteString(", ")
	builder.WriteString("editor_nickname=")
	builder.WriteString(cv.EditorNickname)
	builder.WriteString(", ")
	builder.WriteString("change_note=")
	builder.WriteString(cv.ChangeNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cv.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContentVersions is a parsable slice of ContentVersion.
type ContentVersions []*ContentVersion
