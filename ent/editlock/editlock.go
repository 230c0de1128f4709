// Code generated by ent, DO NOT EDIT.

package editlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the editlock type in the database.
	Label = "edit_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldHolderID holds the string denoting the holder_id field in the database.
	FieldHolderID = "holder_id"
	// FieldHolderNickname holds the string denoting the holder_nickname field in the database.
	FieldHolderNickname = "holder_nickname"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// Table holds the table name of the editlock in the database.
	Table = "edit_locks"
)

// Columns holds all SQL columns for editlock fields.
var Columns = []string{
	FieldID,
	FieldContentID,
	FieldHolderID,
	FieldHolderNickname,
	FieldToken,
	FieldAcquiredAt,
	FieldLastHeartbeatAt,
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
	// HolderNicknameValidator is a validator for the "holder_nickname" field. It is called by the builders before save.
	HolderNicknameValidator func(string) error
	// TokenValidator is a validator for the "token" field. It is called by the builders before save.
	TokenValidator func(string) error
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
	// DefaultLastHeartbeatAt holds the default value on creation for the "last_heartbeat_at" field.
	DefaultLastHeartbeatAt func() time.Time
)

// OrderOption defines the ordering options for the EditLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByHolderID orders the results by the holder_id field.
func ByHolderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHolderID, opts...).ToFunc()
}

// ByHolderNickname orders the results by the holder_nickname field.
func ByHolderNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHolderNickname, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}
