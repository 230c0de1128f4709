// Code generated by ent, DO NOT EDIT.

package workflowdefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workflowdefinition type in the database.
	Label = "workflow_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStates holds the string denoting the states field in the database.
	FieldStates = "states"
	// FieldInitialState holds the string denoting the initial_state field in the database.
	FieldInitialState = "initial_state"
	// FieldPublishedState holds the string denoting the published_state field in the database.
	FieldPublishedState = "published_state"
	// FieldEdges holds the string denoting the edges field in the database.
	FieldEdges = "edges"
	// FieldPublishRoles holds the string denoting the publish_roles field in the database.
	FieldPublishRoles = "publish_roles"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the workflowdefinition in the database.
	Table = "workflow_definitions"
)

// Columns holds all SQL columns for workflowdefinition fields.
var Columns = []string{
	FieldID,
	FieldContentType,
	FieldName,
	FieldStates,
	FieldInitialState,
	FieldPublishedState,
	FieldEdges,
	FieldPublishRoles,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	ContentTypeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// InitialStateValidator is a validator for the "initial_state" field. It is called by the builders before save.
	InitialStateValidator func(string) error
	// PublishedStateValidator is a validator for the "published_state" field. It is called by the builders before save.
	PublishedStateValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the WorkflowDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByInitialState orders the results by the initial_state field.
func ByInitialState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialState, opts...).ToFunc()
}

// ByPublishedState orders the results by the published_state field.
func ByPublishedState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
