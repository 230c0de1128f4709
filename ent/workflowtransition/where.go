// Code generated by ent, DO NOT EDIT.

package workflowtransition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldID, id))
}

// VersionID applies equality check predicate on the "version_id" field. It's identical to VersionIDEQ.
func VersionID(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldVersionID, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldToStatus, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldActorID, v))
}

// ActorNickname applies equality check predicate on the "actor_nickname" field. It's identical to ActorNicknameEQ.
func ActorNickname(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldActorNickname, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// VersionIDEQ applies the EQ predicate on the "version_id" field.
func VersionIDEQ(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldVersionID, v))
}

// VersionIDNEQ applies the NEQ predicate on the "version_id" field.
func VersionIDNEQ(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldVersionID, v))
}

// VersionIDIn applies the In predicate on the "version_id" field.
func VersionIDIn(vs ...uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldVersionID, vs...))
}

// VersionIDNotIn applies the NotIn predicate on the "version_id" field.
func VersionIDNotIn(vs ...uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldVersionID, vs...))
}

// VersionIDGT applies the GT predicate on the "version_id" field.
func VersionIDGT(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldVersionID, v))
}

// VersionIDGTE applies the GTE predicate on the "version_id" field.
func VersionIDGTE(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldVersionID, v))
}

// VersionIDLT applies the LT predicate on the "version_id" field.
func VersionIDLT(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldVersionID, v))
}

// VersionIDLTE applies the LTE predicate on the "version_id" field.
func VersionIDLTE(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldVersionID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusIsNil applies the IsNil predicate on the "from_status" field.
func FromStatusIsNil() predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIsNull(FieldFromStatus))
}

// FromStatusNotNil applies the NotNil predicate on the "from_status" field.
func FromStatusNotNil() predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotNull(FieldFromStatus))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContainsFold(FieldToStatus, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v uint) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldActorID, v))
}

// ActorNicknameEQ applies the EQ predicate on the "actor_nickname" field.
func ActorNicknameEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldActorNickname, v))
}

// ActorNicknameNEQ applies the NEQ predicate on the "actor_nickname" field.
func ActorNicknameNEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldActorNickname, v))
}

// ActorNicknameIn applies the In predicate on the "actor_nickname" field.
func ActorNicknameIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldActorNickname, vs...))
}

// ActorNicknameNotIn applies the NotIn predicate on the "actor_nickname" field.
func ActorNicknameNotIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldActorNickname, vs...))
}

// ActorNicknameGT applies the GT predicate on the "actor_nickname" field.
func ActorNicknameGT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldActorNickname, v))
}

// ActorNicknameGTE applies the GTE predicate on the "actor_nickname" field.
func ActorNicknameGTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldActorNickname, v))
}

// ActorNicknameLT applies the LT predicate on the "actor_nickname" field.
func ActorNicknameLT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldActorNickname, v))
}

// ActorNicknameLTE applies the LTE predicate on the "actor_nickname" field.
func ActorNicknameLTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldActorNickname, v))
}

// ActorNicknameContains applies the Contains predicate on the "actor_nickname" field.
func ActorNicknameContains(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContains(FieldActorNickname, v))
}

// ActorNicknameHasPrefix applies the HasPrefix predicate on the "actor_nickname" field.
func ActorNicknameHasPrefix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasPrefix(FieldActorNickname, v))
}

// ActorNicknameHasSuffix applies the HasSuffix predicate on the "actor_nickname" field.
func ActorNicknameHasSuffix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasSuffix(FieldActorNickname, v))
}

// ActorNicknameIsNil applies the IsNil predicate on the "actor_nickname" field.
func ActorNicknameIsNil() predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIsNull(FieldActorNickname))
}

// ActorNicknameNotNil applies the NotNil predicate on the "actor_nickname" field.
func ActorNicknameNotNil() predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotNull(FieldActorNickname))
}

// ActorNicknameEqualFold applies the EqualFold predicate on the "actor_nickname" field.
func ActorNicknameEqualFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEqualFold(FieldActorNickname, v))
}

// ActorNicknameContainsFold applies the ContainsFold predicate on the "actor_nickname" field.
func ActorNicknameContainsFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContainsFold(FieldActorNickname, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldContainsFold(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowTransition) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowTransition) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowTransition) predicate.WorkflowTransition {
	return predicate.WorkflowTransition(sql.NotPredicates(p))
}
