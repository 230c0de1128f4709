// Code generated by ent, DO NOT EDIT.

package editorialcomment

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the editorialcomment type in the database.
	Label = "editorial_comment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVersionID holds the string denoting the version_id field in the database.
	FieldVersionID = "version_id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldAuthorNickname holds the string denoting the author_nickname field in the database.
	FieldAuthorNickname = "author_nickname"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContentHTML holds the string denoting the content_html field in the database.
	FieldContentHTML = "content_html"
	// FieldBlockID holds the string denoting the block_id field in the database.
	FieldBlockID = "block_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldResolvedByID holds the string denoting the resolved_by_id field in the database.
	FieldResolvedByID = "resolved_by_id"
	// FieldResolvedByName holds the string denoting the resolved_by_name field in the database.
	FieldResolvedByName = "resolved_by_name"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the editorialcomment in the database.
	Table = "editorial_comments"
)

// Columns holds all SQL columns for editorialcomment fields.
var Columns = []string{
	FieldID,
	FieldVersionID,
	FieldAuthorID,
	FieldAuthorNickname,
	FieldContent,
	FieldContentHTML,
	FieldBlockID,
	FieldType,
	FieldResolvedByID,
	FieldResolvedByName,
	FieldResolvedAt,
	FieldCreatedAt,
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
	// AuthorNicknameValidator is a validator for the "author_nickname" field. It is called by the builders before save.
	AuthorNicknameValidator func(string) error
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// ContentHTMLValidator is a validator for the "content_html" field. It is called by the builders before save.
	ContentHTMLValidator func(string) error
	// BlockIDValidator is a validator for the "block_id" field. It is called by the builders before save.
	BlockIDValidator func(string) error
	// DefaultType holds the default value on creation for the "type" field.
	DefaultType string
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// ResolvedByNameValidator is a validator for the "resolved_by_name" field. It is called by the builders before save.
	ResolvedByNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EditorialComment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVersionID orders the results by the version_id field.
func ByVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByAuthorNickname orders the results by the author_nickname field.
func ByAuthorNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorNickname, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByContentHTML orders the results by the content_html field.
func ByContentHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHTML, opts...).ToFunc()
}

// ByBlockID orders the results by the block_id field.
func ByBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByResolvedByID orders the results by the resolved_by_id field.
func ByResolvedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedByID, opts...).ToFunc()
}

// ByResolvedByName orders the results by the resolved_by_name field.
func ByResolvedByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedByName, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
