// Code generated by ent, DO NOT EDIT.

package workflowdefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldID, id))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldContentType, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldName, v))
}

// InitialState applies equality check predicate on the "initial_state" field. It's identical to InitialStateEQ.
func InitialState(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldInitialState, v))
}

// PublishedState applies equality check predicate on the "published_state" field. It's identical to PublishedStateEQ.
func PublishedState(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldPublishedState, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContainsFold(FieldContentType, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContainsFold(FieldName, v))
}

// InitialStateEQ applies the EQ predicate on the "initial_state" field.
func InitialStateEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldInitialState, v))
}

// InitialStateNEQ applies the NEQ predicate on the "initial_state" field.
func InitialStateNEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldInitialState, v))
}

// InitialStateIn applies the In predicate on the "initial_state" field.
func InitialStateIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldInitialState, vs...))
}

// InitialStateNotIn applies the NotIn predicate on the "initial_state" field.
func InitialStateNotIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldInitialState, vs...))
}

// InitialStateGT applies the GT predicate on the "initial_state" field.
func InitialStateGT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldInitialState, v))
}

// InitialStateGTE applies the GTE predicate on the "initial_state" field.
func InitialStateGTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldInitialState, v))
}

// InitialStateLT applies the LT predicate on the "initial_state" field.
func InitialStateLT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldInitialState, v))
}

// InitialStateLTE applies the LTE predicate on the "initial_state" field.
func InitialStateLTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldInitialState, v))
}

// InitialStateContains applies the Contains predicate on the "initial_state" field.
func InitialStateContains(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContains(FieldInitialState, v))
}

// InitialStateHasPrefix applies the HasPrefix predicate on the "initial_state" field.
func InitialStateHasPrefix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasPrefix(FieldInitialState, v))
}

// InitialStateHasSuffix applies the HasSuffix predicate on the "initial_state" field.
func InitialStateHasSuffix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasSuffix(FieldInitialState, v))
}

// InitialStateEqualFold applies the EqualFold predicate on the "initial_state" field.
func InitialStateEqualFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEqualFold(FieldInitialState, v))
}

// InitialStateContainsFold applies the ContainsFold predicate on the "initial_state" field.
func InitialStateContainsFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContainsFold(FieldInitialState, v))
}

// PublishedStateEQ applies the EQ predicate on the "published_state" field.
func PublishedStateEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldPublishedState, v))
}

// PublishedStateNEQ applies the NEQ predicate on the "published_state" field.
func PublishedStateNEQ(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldPublishedState, v))
}

// PublishedStateIn applies the In predicate on the "published_state" field.
func PublishedStateIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldPublishedState, vs...))
}

// PublishedStateNotIn applies the NotIn predicate on the "published_state" field.
func PublishedStateNotIn(vs ...string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldPublishedState, vs...))
}

// PublishedStateGT applies the GT predicate on the "published_state" field.
func PublishedStateGT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldPublishedState, v))
}

// PublishedStateGTE applies the GTE predicate on the "published_state" field.
func PublishedStateGTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldPublishedState, v))
}

// PublishedStateLT applies the LT predicate on the "published_state" field.
func PublishedStateLT(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldPublishedState, v))
}

// PublishedStateLTE applies the LTE predicate on the "published_state" field.
func PublishedStateLTE(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldPublishedState, v))
}

// PublishedStateContains applies the Contains predicate on the "published_state" field.
func PublishedStateContains(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContains(FieldPublishedState, v))
}

// PublishedStateHasPrefix applies the HasPrefix predicate on the "published_state" field.
func PublishedStateHasPrefix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasPrefix(FieldPublishedState, v))
}

// PublishedStateHasSuffix applies the HasSuffix predicate on the "published_state" field.
func PublishedStateHasSuffix(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldHasSuffix(FieldPublishedState, v))
}

// PublishedStateEqualFold applies the EqualFold predicate on the "published_state" field.
func PublishedStateEqualFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEqualFold(FieldPublishedState, v))
}

// PublishedStateContainsFold applies the ContainsFold predicate on the "published_state" field.
func PublishedStateContainsFold(v string) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldContainsFold(FieldPublishedState, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowDefinition) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowDefinition) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowDefinition) predicate.WorkflowDefinition {
	return predicate.WorkflowDefinition(sql.NotPredicates(p))
}
