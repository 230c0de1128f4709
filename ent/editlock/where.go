// Code generated by ent, DO NOT EDIT.

package editlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldID, id))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldContentID, v))
}

// HolderID applies equality check predicate on the "holder_id" field. It's identical to HolderIDEQ.
func HolderID(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHolderID, v))
}

// HolderNickname applies equality check predicate on the "holder_nickname" field. It's identical to HolderNicknameEQ.
func HolderNickname(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHolderNickname, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldToken, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldContentID, v))
}

// HolderIDEQ applies the EQ predicate on the "holder_id" field.
func HolderIDEQ(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHolderID, v))
}

// HolderIDNEQ applies the NEQ predicate on the "holder_id" field.
func HolderIDNEQ(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldHolderID, v))
}

// HolderIDIn applies the In predicate on the "holder_id" field.
func HolderIDIn(vs ...uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldHolderID, vs...))
}

// HolderIDNotIn applies the NotIn predicate on the "holder_id" field.
func HolderIDNotIn(vs ...uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldHolderID, vs...))
}

// HolderIDGT applies the GT predicate on the "holder_id" field.
func HolderIDGT(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldHolderID, v))
}

// HolderIDGTE applies the GTE predicate on the "holder_id" field.
func HolderIDGTE(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldHolderID, v))
}

// HolderIDLT applies the LT predicate on the "holder_id" field.
func HolderIDLT(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldHolderID, v))
}

// HolderIDLTE applies the LTE predicate on the "holder_id" field.
func HolderIDLTE(v uint) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldHolderID, v))
}

// HolderNicknameEQ applies the EQ predicate on the "holder_nickname" field.
func HolderNicknameEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldHolderNickname, v))
}

// HolderNicknameNEQ applies the NEQ predicate on the "holder_nickname" field.
func HolderNicknameNEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldHolderNickname, v))
}

// HolderNicknameIn applies the In predicate on the "holder_nickname" field.
func HolderNicknameIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldHolderNickname, vs...))
}

// HolderNicknameNotIn applies the NotIn predicate on the "holder_nickname" field.
func HolderNicknameNotIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldHolderNickname, vs...))
}

// HolderNicknameGT applies the GT predicate on the "holder_nickname" field.
func HolderNicknameGT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldHolderNickname, v))
}

// HolderNicknameGTE applies the GTE predicate on the "holder_nickname" field.
func HolderNicknameGTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldHolderNickname, v))
}

// HolderNicknameLT applies the LT predicate on the "holder_nickname" field.
func HolderNicknameLT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldHolderNickname, v))
}

// HolderNicknameLTE applies the LTE predicate on the "holder_nickname" field.
func HolderNicknameLTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldHolderNickname, v))
}

// HolderNicknameContains applies the Contains predicate on the "holder_nickname" field.
func HolderNicknameContains(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContains(FieldHolderNickname, v))
}

// HolderNicknameHasPrefix applies the HasPrefix predicate on the "holder_nickname" field.
func HolderNicknameHasPrefix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasPrefix(FieldHolderNickname, v))
}

// HolderNicknameHasSuffix applies the HasSuffix predicate on the "holder_nickname" field.
func HolderNicknameHasSuffix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasSuffix(FieldHolderNickname, v))
}

// HolderNicknameIsNil applies the IsNil predicate on the "holder_nickname" field.
func HolderNicknameIsNil() predicate.EditLock {
	return predicate.EditLock(sql.FieldIsNull(FieldHolderNickname))
}

// HolderNicknameNotNil applies the NotNil predicate on the "holder_nickname" field.
func HolderNicknameNotNil() predicate.EditLock {
	return predicate.EditLock(sql.FieldNotNull(FieldHolderNickname))
}

// HolderNicknameEqualFold applies the EqualFold predicate on the "holder_nickname" field.
func HolderNicknameEqualFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEqualFold(FieldHolderNickname, v))
}

// HolderNicknameContainsFold applies the ContainsFold predicate on the "holder_nickname" field.
func HolderNicknameContainsFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContainsFold(FieldHolderNickname, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.EditLock {
	return predicate.EditLock(sql.FieldContainsFold(FieldToken, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.EditLock {
	return predicate.EditLock(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EditLock) predicate.EditLock {
	return predicate.EditLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EditLock) predicate.EditLock {
	return predicate.EditLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EditLock) predicate.EditLock {
	return predicate.EditLock(sql.NotPredicates(p))
}
