// Code generated by ent, DO NOT EDIT.

package content

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldID, id))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldTitle, v))
}

// WorkflowStatus applies equality check predicate on the "workflow_status" field. It's identical to WorkflowStatusEQ.
func WorkflowStatus(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldWorkflowStatus, v))
}

// ActiveVersionID applies equality check predicate on the "active_version_id" field. It's identical to ActiveVersionIDEQ.
func ActiveVersionID(v uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldActiveVersionID, v))
}

// DraftVersionID applies equality check predicate on the "draft_version_id" field. It's identical to DraftVersionIDEQ.
func DraftVersionID(v uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldDraftVersionID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldUpdatedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldPublishedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldTitle, v))
}

// WorkflowStatusEQ applies the EQ predicate on the "workflow_status" field.
func WorkflowStatusEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldWorkflowStatus, v))
}

// WorkflowStatusNEQ applies the NEQ predicate on the "workflow_status" field.
func WorkflowStatusNEQ(v string) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldWorkflowStatus, v))
}

// WorkflowStatusIn applies the In predicate on the "workflow_status" field.
func WorkflowStatusIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldWorkflowStatus, vs...))
}

// WorkflowStatusNotIn applies the NotIn predicate on the "workflow_status" field.
func WorkflowStatusNotIn(vs ...string) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldWorkflowStatus, vs...))
}

// WorkflowStatusGT applies the GT predicate on the "workflow_status" field.
func WorkflowStatusGT(v string) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldWorkflowStatus, v))
}

// WorkflowStatusGTE applies the GTE predicate on the "workflow_status" field.
func WorkflowStatusGTE(v string) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldWorkflowStatus, v))
}

// WorkflowStatusLT applies the LT predicate on the "workflow_status" field.
func WorkflowStatusLT(v string) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldWorkflowStatus, v))
}

// WorkflowStatusLTE applies the LTE predicate on the "workflow_status" field.
func WorkflowStatusLTE(v string) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldWorkflowStatus, v))
}

// WorkflowStatusContains applies the Contains predicate on the "workflow_status" field.
func WorkflowStatusContains(v string) predicate.Content {
	return predicate.Content(sql.FieldContains(FieldWorkflowStatus, v))
}

// WorkflowStatusHasPrefix applies the HasPrefix predicate on the "workflow_status" field.
func WorkflowStatusHasPrefix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasPrefix(FieldWorkflowStatus, v))
}

// WorkflowStatusHasSuffix applies the HasSuffix predicate on the "workflow_status" field.
func WorkflowStatusHasSuffix(v string) predicate.Content {
	return predicate.Content(sql.FieldHasSuffix(FieldWorkflowStatus, v))
}

// WorkflowStatusEqualFold applies the EqualFold predicate on the "workflow_status" field.
func WorkflowStatusEqualFold(v string) predicate.Content {
	return predicate.Content(sql.FieldEqualFold(FieldWorkflowStatus, v))
}

// WorkflowStatusContainsFold applies the ContainsFold predicate on the "workflow_status" field.
func WorkflowStatusContainsFold(v string) predicate.Content {
	return predicate.Content(sql.FieldContainsFold(FieldWorkflowStatus, v))
}

// ActiveVersionIDEQ applies the EQ predicate on the "active_version_id" field.
func ActiveVersionIDEQ(v uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldActiveVersionID, v))
}

// ActiveVersionIDNEQ applies the NEQ predicate on the "active_version_id" field.
func ActiveVersionIDNEQ(v uint) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldActiveVersionID, v))
}

// ActiveVersionIDIn applies the In predicate on the "active_version_id" field.
func ActiveVersionIDIn(vs ...uint) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldActiveVersionID, vs...))
}

// ActiveVersionIDNotIn applies the NotIn predicate on the "active_version_id" field.
func ActiveVersionIDNotIn(vs ...uint) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldActiveVersionID, vs...))
}

// ActiveVersionIDGT applies the GT predicate on the "active_version_id" field.
func ActiveVersionIDGT(v uint) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldActiveVersionID, v))
}

// ActiveVersionIDGTE applies the GTE predicate on the "active_version_id" field.
func ActiveVersionIDGTE(v uint) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldActiveVersionID, v))
}

// ActiveVersionIDLT applies the LT predicate on the "active_version_id" field.
func ActiveVersionIDLT(v uint) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldActiveVersionID, v))
}

// ActiveVersionIDLTE applies the LTE predicate on the "active_version_id" field.
func ActiveVersionIDLTE(v uint) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldActiveVersionID, v))
}

// ActiveVersionIDIsNil applies the IsNil predicate on the "active_version_id" field.
func ActiveVersionIDIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldActiveVersionID))
}

// ActiveVersionIDNotNil applies the NotNil predicate on the "active_version_id" field.
func ActiveVersionIDNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldActiveVersionID))
}

// DraftVersionIDEQ applies the EQ predicate on the "draft_version_id" field.
func DraftVersionIDEQ(v uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldDraftVersionID, v))
}

// DraftVersionIDNEQ applies the NEQ predicate on the "draft_version_id" field.
func DraftVersionIDNEQ(v uint) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldDraftVersionID, v))
}

// DraftVersionIDIn applies the In predicate on the "draft_version_id" field.
func DraftVersionIDIn(vs ...uint) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldDraftVersionID, vs...))
}

// DraftVersionIDNotIn applies the NotIn predicate on the "draft_version_id" field.
func DraftVersionIDNotIn(vs ...uint) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldDraftVersionID, vs...))
}

// DraftVersionIDGT applies the GT predicate on the "draft_version_id" field.
func DraftVersionIDGT(v uint) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldDraftVersionID, v))
}

// DraftVersionIDGTE applies the GTE predicate on the "draft_version_id" field.
func DraftVersionIDGTE(v uint) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldDraftVersionID, v))
}

// DraftVersionIDLT applies the LT predicate on the "draft_version_id" field.
func DraftVersionIDLT(v uint) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldDraftVersionID, v))
}

// DraftVersionIDLTE applies the LTE predicate on the "draft_version_id" field.
func DraftVersionIDLTE(v uint) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldDraftVersionID, v))
}

// DraftVersionIDIsNil applies the IsNil predicate on the "draft_version_id" field.
func DraftVersionIDIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldDraftVersionID))
}

// DraftVersionIDNotNil applies the NotNil predicate on the "draft_version_id" field.
func DraftVersionIDNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldDraftVersionID))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uint) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uint) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uint) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uint) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uint) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uint) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uint) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uint) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldUpdatedAt, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Content {
	return predicate.Content(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Content {
	return predicate.Content(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Content {
	return predicate.Content(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Content {
	return predicate.Content(sql.FieldNotNull(FieldPublishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Content) predicate.Content {
	return predicate.Content(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Content) predicate.Content {
	return predicate.Content(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Content) predicate.Content {
	return predicate.Content(sql.NotPredicates(p))
}
