// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Content is the predicate function for content builders.
type Content func(*sql.Selector)

// ContentVersion is the predicate function for contentversion builders.
type ContentVersion func(*sql.Selector)

// EditLock is the predicate function for editlock builders.
type EditLock func(*sql.Selector)

// EditorialComment is the predicate function for editorialcomment builders.
type EditorialComment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserGroup is the predicate function for usergroup builders.
type UserGroup func(*sql.Selector)

// WorkflowDefinition is the predicate function for workflowdefinition builders.
type WorkflowDefinition func(*sql.Selector)

// WorkflowTransition is the predicate function for workflowtransition builders.
type WorkflowTransition func(*sql.Selector)
