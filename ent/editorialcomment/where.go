// Code generated by ent, DO NOT EDIT.

package editorialcomment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldID, id))
}

// VersionID applies equality check predicate on the "version_id" field. It's identical to VersionIDEQ.
func VersionID(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldVersionID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorNickname applies equality check predicate on the "author_nickname" field. It's identical to AuthorNicknameEQ.
func AuthorNickname(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldAuthorNickname, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldContent, v))
}

// ContentHTML applies equality check predicate on the "content_html" field. It's identical to ContentHTMLEQ.
func ContentHTML(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldContentHTML, v))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldBlockID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldType, v))
}

// ResolvedByID applies equality check predicate on the "resolved_by_id" field. It's identical to ResolvedByIDEQ.
func ResolvedByID(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldResolvedByID, v))
}

// ResolvedByName applies equality check predicate on the "resolved_by_name" field. It's identical to ResolvedByNameEQ.
func ResolvedByName(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldResolvedByName, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldCreatedAt, v))
}

// VersionIDEQ applies the EQ predicate on the "version_id" field.
func VersionIDEQ(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldVersionID, v))
}

// VersionIDNEQ applies the NEQ predicate on the "version_id" field.
func VersionIDNEQ(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldVersionID, v))
}

// VersionIDIn applies the In predicate on the "version_id" field.
func VersionIDIn(vs ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldVersionID, vs...))
}

// VersionIDNotIn applies the NotIn predicate on the "version_id" field.
func VersionIDNotIn(vs ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldVersionID, vs...))
}

// VersionIDGT applies the GT predicate on the "version_id" field.
func VersionIDGT(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldVersionID, v))
}

// VersionIDGTE applies the GTE predicate on the "version_id" field.
func VersionIDGTE(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldVersionID, v))
}

// VersionIDLT applies the LT predicate on the "version_id" field.
func VersionIDLT(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldVersionID, v))
}

// VersionIDLTE applies the LTE predicate on the "version_id" field.
func VersionIDLTE(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldVersionID, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldAuthorID, v))
}

// AuthorNicknameEQ applies the EQ predicate on the "author_nickname" field.
func AuthorNicknameEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldAuthorNickname, v))
}

// AuthorNicknameNEQ applies the NEQ predicate on the "author_nickname" field.
func AuthorNicknameNEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldAuthorNickname, v))
}

// AuthorNicknameIn applies the In predicate on the "author_nickname" field.
func AuthorNicknameIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldAuthorNickname, vs...))
}

// AuthorNicknameNotIn applies the NotIn predicate on the "author_nickname" field.
func AuthorNicknameNotIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldAuthorNickname, vs...))
}

// AuthorNicknameGT applies the GT predicate on the "author_nickname" field.
func AuthorNicknameGT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldAuthorNickname, v))
}

// AuthorNicknameGTE applies the GTE predicate on the "author_nickname" field.
func AuthorNicknameGTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldAuthorNickname, v))
}

// AuthorNicknameLT applies the LT predicate on the "author_nickname" field.
func AuthorNicknameLT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldAuthorNickname, v))
}

// AuthorNicknameLTE applies the LTE predicate on the "author_nickname" field.
func AuthorNicknameLTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldAuthorNickname, v))
}

// AuthorNicknameContains applies the Contains predicate on the "author_nickname" field.
func AuthorNicknameContains(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContains(FieldAuthorNickname, v))
}

// AuthorNicknameHasPrefix applies the HasPrefix predicate on the "author_nickname" field.
func AuthorNicknameHasPrefix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasPrefix(FieldAuthorNickname, v))
}

// AuthorNicknameHasSuffix applies the HasSuffix predicate on the "author_nickname" field.
func AuthorNicknameHasSuffix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasSuffix(FieldAuthorNickname, v))
}

// AuthorNicknameIsNil applies the IsNil predicate on the "author_nickname" field.
func AuthorNicknameIsNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIsNull(FieldAuthorNickname))
}

// AuthorNicknameNotNil applies the NotNil predicate on the "author_nickname" field.
func AuthorNicknameNotNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotNull(FieldAuthorNickname))
}

// AuthorNicknameEqualFold applies the EqualFold predicate on the "author_nickname" field.
func AuthorNicknameEqualFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEqualFold(FieldAuthorNickname, v))
}

// AuthorNicknameContainsFold applies the ContainsFold predicate on the "author_nickname" field.
func AuthorNicknameContainsFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContainsFold(FieldAuthorNickname, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContainsFold(FieldContent, v))
}

// ContentHTMLEQ applies the EQ predicate on the "content_html" field.
func ContentHTMLEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldContentHTML, v))
}

// ContentHTMLNEQ applies the NEQ predicate on the "content_html" field.
func ContentHTMLNEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldContentHTML, v))
}

// ContentHTMLIn applies the In predicate on the "content_html" field.
func ContentHTMLIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldContentHTML, vs...))
}

// ContentHTMLNotIn applies the NotIn predicate on the "content_html" field.
func ContentHTMLNotIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldContentHTML, vs...))
}

// ContentHTMLGT applies the GT predicate on the "content_html" field.
func ContentHTMLGT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldContentHTML, v))
}

// ContentHTMLGTE applies the GTE predicate on the "content_html" field.
func ContentHTMLGTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldContentHTML, v))
}

// ContentHTMLLT applies the LT predicate on the "content_html" field.
func ContentHTMLLT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldContentHTML, v))
}

// ContentHTMLLTE applies the LTE predicate on the "content_html" field.
func ContentHTMLLTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldContentHTML, v))
}

// ContentHTMLContains applies the Contains predicate on the "content_html" field.
func ContentHTMLContains(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContains(FieldContentHTML, v))
}

// ContentHTMLHasPrefix applies the HasPrefix predicate on the "content_html" field.
func ContentHTMLHasPrefix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasPrefix(FieldContentHTML, v))
}

// ContentHTMLHasSuffix applies the HasSuffix predicate on the "content_html" field.
func ContentHTMLHasSuffix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasSuffix(FieldContentHTML, v))
}

// ContentHTMLEqualFold applies the EqualFold predicate on the "content_html" field.
func ContentHTMLEqualFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEqualFold(FieldContentHTML, v))
}

// ContentHTMLContainsFold applies the ContainsFold predicate on the "content_html" field.
func ContentHTMLContainsFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContainsFold(FieldContentHTML, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldBlockID, vs...))
}

// BlockIDGT applies the GT predicate on the "block_id" field.
func BlockIDGT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldBlockID, v))
}

// BlockIDGTE applies the GTE predicate on the "block_id" field.
func BlockIDGTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldBlockID, v))
}

// BlockIDLT applies the LT predicate on the "block_id" field.
func BlockIDLT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldBlockID, v))
}

// BlockIDLTE applies the LTE predicate on the "block_id" field.
func BlockIDLTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldBlockID, v))
}

// BlockIDContains applies the Contains predicate on the "block_id" field.
func BlockIDContains(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContains(FieldBlockID, v))
}

// BlockIDHasPrefix applies the HasPrefix predicate on the "block_id" field.
func BlockIDHasPrefix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasPrefix(FieldBlockID, v))
}

// BlockIDHasSuffix applies the HasSuffix predicate on the "block_id" field.
func BlockIDHasSuffix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasSuffix(FieldBlockID, v))
}

// BlockIDIsNil applies the IsNil predicate on the "block_id" field.
func BlockIDIsNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIsNull(FieldBlockID))
}

// BlockIDNotNil applies the NotNil predicate on the "block_id" field.
func BlockIDNotNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotNull(FieldBlockID))
}

// BlockIDEqualFold applies the EqualFold predicate on the "block_id" field.
func BlockIDEqualFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEqualFold(FieldBlockID, v))
}

// BlockIDContainsFold applies the ContainsFold predicate on the "block_id" field.
func BlockIDContainsFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContainsFold(FieldBlockID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContainsFold(FieldType, v))
}

// ResolvedByIDEQ applies the EQ predicate on the "resolved_by_id" field.
func ResolvedByIDEQ(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldResolvedByID, v))
}

// ResolvedByIDNEQ applies the NEQ predicate on the "resolved_by_id" field.
func ResolvedByIDNEQ(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldResolvedByID, v))
}

// ResolvedByIDIn applies the In predicate on the "resolved_by_id" field.
func ResolvedByIDIn(vs ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldResolvedByID, vs...))
}

// ResolvedByIDNotIn applies the NotIn predicate on the "resolved_by_id" field.
func ResolvedByIDNotIn(vs ...uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldResolvedByID, vs...))
}

// ResolvedByIDGT applies the GT predicate on the "resolved_by_id" field.
func ResolvedByIDGT(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldResolvedByID, v))
}

// ResolvedByIDGTE applies the GTE predicate on the "resolved_by_id" field.
func ResolvedByIDGTE(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldResolvedByID, v))
}

// ResolvedByIDLT applies the LT predicate on the "resolved_by_id" field.
func ResolvedByIDLT(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldResolvedByID, v))
}

// ResolvedByIDLTE applies the LTE predicate on the "resolved_by_id" field.
func ResolvedByIDLTE(v uint) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldResolvedByID, v))
}

// ResolvedByIDIsNil applies the IsNil predicate on the "resolved_by_id" field.
func ResolvedByIDIsNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIsNull(FieldResolvedByID))
}

// ResolvedByIDNotNil applies the NotNil predicate on the "resolved_by_id" field.
func ResolvedByIDNotNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotNull(FieldResolvedByID))
}

// ResolvedByNameEQ applies the EQ predicate on the "resolved_by_name" field.
func ResolvedByNameEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldResolvedByName, v))
}

// ResolvedByNameNEQ applies the NEQ predicate on the "resolved_by_name" field.
func ResolvedByNameNEQ(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldResolvedByName, v))
}

// ResolvedByNameIn applies the In predicate on the "resolved_by_name" field.
func ResolvedByNameIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldResolvedByName, vs...))
}

// ResolvedByNameNotIn applies the NotIn predicate on the "resolved_by_name" field.
func ResolvedByNameNotIn(vs ...string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldResolvedByName, vs...))
}

// ResolvedByNameGT applies the GT predicate on the "resolved_by_name" field.
func ResolvedByNameGT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldResolvedByName, v))
}

// ResolvedByNameGTE applies the GTE predicate on the "resolved_by_name" field.
func ResolvedByNameGTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldResolvedByName, v))
}

// ResolvedByNameLT applies the LT predicate on the "resolved_by_name" field.
func ResolvedByNameLT(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldResolvedByName, v))
}

// ResolvedByNameLTE applies the LTE predicate on the "resolved_by_name" field.
func ResolvedByNameLTE(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldResolvedByName, v))
}

// ResolvedByNameContains applies the Contains predicate on the "resolved_by_name" field.
func ResolvedByNameContains(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContains(FieldResolvedByName, v))
}

// ResolvedByNameHasPrefix applies the HasPrefix predicate on the "resolved_by_name" field.
func ResolvedByNameHasPrefix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasPrefix(FieldResolvedByName, v))
}

// ResolvedByNameHasSuffix applies the HasSuffix predicate on the "resolved_by_name" field.
func ResolvedByNameHasSuffix(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldHasSuffix(FieldResolvedByName, v))
}

// ResolvedByNameIsNil applies the IsNil predicate on the "resolved_by_name" field.
func ResolvedByNameIsNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIsNull(FieldResolvedByName))
}

// ResolvedByNameNotNil applies the NotNil predicate on the "resolved_by_name" field.
func ResolvedByNameNotNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotNull(FieldResolvedByName))
}

// ResolvedByNameEqualFold applies the EqualFold predicate on the "resolved_by_name" field.
func ResolvedByNameEqualFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEqualFold(FieldResolvedByName, v))
}

// ResolvedByNameContainsFold applies the ContainsFold predicate on the "resolved_by_name" field.
func ResolvedByNameContainsFold(v string) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldContainsFold(FieldResolvedByName, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotNull(FieldResolvedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EditorialComment {
	return predicate.EditorialComment(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EditorialComment) predicate.EditorialComment {
	return predicate.EditorialComment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EditorialComment) predicate.EditorialComment {
	return predicate.EditorialComment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EditorialComment) predicate.EditorialComment {
	return predicate.EditorialComment(sql.NotPredicates(p))
}
