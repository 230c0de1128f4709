// Code generated by ent, DO NOT EDIT.

package content

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the content type in the database.
	Label = "content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldWorkflowStatus holds the string denoting the workflow_status field in the database.
	FieldWorkflowStatus = "workflow_status"
	// FieldActiveVersionID holds the string denoting the active_version_id field in the database.
	FieldActiveVersionID = "active_version_id"
	// FieldDraftVersionID holds the string denoting the draft_version_id field in the database.
	FieldDraftVersionID = "draft_version_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// Table holds the table name of the content in the database.
	Table = "contents"
)

// Columns holds all SQL columns for content fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldTitle,
	FieldWorkflowStatus,
	FieldActiveVersionID,
	FieldDraftVersionID,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPublishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// WorkflowStatusValidator is a validator for the "workflow_status" field. It is called by the builders before save.
	WorkflowStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Content queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByWorkflowStatus orders the results by the workflow_status field.
func ByWorkflowStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowStatus, opts...).ToFunc()
}

// ByActiveVersionID orders the results by the active_version_id field.
func ByActiveVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveVersionID, opts...).ToFunc()
}

// ByDraftVersionID orders the results by the draft_version_id field.
func ByDraftVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraftVersionID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}
