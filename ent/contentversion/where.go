// Code generated by ent, DO NOT EDIT.

package contentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldID, id))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldContentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldVersion, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldTitle, v))
}

// ContentMd applies equality check predicate on the "content_md" field. It's identical to ContentMdEQ.
func ContentMd(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldContentMd, v))
}

// ContentHTML applies equality check predicate on the "content_html" field. It's identical to ContentHTMLEQ.
func ContentHTML(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldContentHTML, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldSummary, v))
}

// Keywords applies equality check predicate on the "keywords" field. It's identical to KeywordsEQ.
func Keywords(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldKeywords, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldWordCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldStatus, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldIsActive, v))
}

// EditorID applies equality check predicate on the "editor_id" field. It's identical to EditorIDEQ.
func EditorID(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldEditorID, v))
}

// EditorNickname applies equality check predicate on the "editor_nickname" field. It's identical to EditorNicknameEQ.
func EditorNickname(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldEditorNickname, v))
}

// ChangeNote applies equality check predicate on the "change_note" field. It's identical to ChangeNoteEQ.
func ChangeNote(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldChangeNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldContentID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldVersion, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldTitle, v))
}

// ContentMdEQ applies the EQ predicate on the "content_md" field.
func ContentMdEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldContentMd, v))
}

// ContentMdNEQ applies the NEQ predicate on the "content_md" field.
func ContentMdNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldContentMd, v))
}

// ContentMdIn applies the In predicate on the "content_md" field.
func ContentMdIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldContentMd, vs...))
}

// ContentMdNotIn applies the NotIn predicate on the "content_md" field.
func ContentMdNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldContentMd, vs...))
}

// ContentMdGT applies the GT predicate on the "content_md" field.
func ContentMdGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldContentMd, v))
}

// ContentMdGTE applies the GTE predicate on the "content_md" field.
func ContentMdGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldContentMd, v))
}

// ContentMdLT applies the LT predicate on the "content_md" field.
func ContentMdLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldContentMd, v))
}

// ContentMdLTE applies the LTE predicate on the "content_md" field.
func ContentMdLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldContentMd, v))
}

// ContentMdContains applies the Contains predicate on the "content_md" field.
func ContentMdContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldContentMd, v))
}

// ContentMdHasPrefix applies the HasPrefix predicate on the "content_md" field.
func ContentMdHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldContentMd, v))
}

// ContentMdHasSuffix applies the HasSuffix predicate on the "content_md" field.
func ContentMdHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldContentMd, v))
}

// ContentMdIsNil applies the IsNil predicate on the "content_md" field.
func ContentMdIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldContentMd))
}

// ContentMdNotNil applies the NotNil predicate on the "content_md" field.
func ContentMdNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldContentMd))
}

// ContentMdEqualFold applies the EqualFold predicate on the "content_md" field.
func ContentMdEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldContentMd, v))
}

// ContentMdContainsFold applies the ContainsFold predicate on the "content_md" field.
func ContentMdContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldContentMd, v))
}

// ContentHTMLEQ applies the EQ predicate on the "content_html" field.
func ContentHTMLEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldContentHTML, v))
}

// ContentHTMLNEQ applies the NEQ predicate on the "content_html" field.
func ContentHTMLNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldContentHTML, v))
}

// ContentHTMLIn applies the In predicate on the "content_html" field.
func ContentHTMLIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldContentHTML, vs...))
}

// ContentHTMLNotIn applies the NotIn predicate on the "content_html" field.
func ContentHTMLNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldContentHTML, vs...))
}

// ContentHTMLGT applies the GT predicate on the "content_html" field.
func ContentHTMLGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldContentHTML, v))
}

// ContentHTMLGTE applies the GTE predicate on the "content_html" field.
func ContentHTMLGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldContentHTML, v))
}

// ContentHTMLLT applies the LT predicate on the "content_html" field.
func ContentHTMLLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldContentHTML, v))
}

// ContentHTMLLTE applies the LTE predicate on the "content_html" field.
func ContentHTMLLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldContentHTML, v))
}

// ContentHTMLContains applies the Contains predicate on the "content_html" field.
func ContentHTMLContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldContentHTML, v))
}

// ContentHTMLHasPrefix applies the HasPrefix predicate on the "content_html" field.
func ContentHTMLHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldContentHTML, v))
}

// ContentHTMLHasSuffix applies the HasSuffix predicate on the "content_html" field.
func ContentHTMLHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldContentHTML, v))
}

// ContentHTMLIsNil applies the IsNil predicate on the "content_html" field.
func ContentHTMLIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldContentHTML))
}

// ContentHTMLNotNil applies the NotNil predicate on the "content_html" field.
func ContentHTMLNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldContentHTML))
}

// ContentHTMLEqualFold applies the EqualFold predicate on the "content_html" field.
func ContentHTMLEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldContentHTML, v))
}

// ContentHTMLContainsFold applies the ContainsFold predicate on the "content_html" field.
func ContentHTMLContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldContentHTML, v))
}

// BlocksIsNil applies the IsNil predicate on the "blocks" field.
func BlocksIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldBlocks))
}

// BlocksNotNil applies the NotNil predicate on the "blocks" field.
func BlocksNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldBlocks))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldSummary, v))
}

// KeywordsEQ applies the EQ predicate on the "keywords" field.
func KeywordsEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldKeywords, v))
}

// KeywordsNEQ applies the NEQ predicate on the "keywords" field.
func KeywordsNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldKeywords, v))
}

// KeywordsIn applies the In predicate on the "keywords" field.
func KeywordsIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldKeywords, vs...))
}

// KeywordsNotIn applies the NotIn predicate on the "keywords" field.
func KeywordsNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldKeywords, vs...))
}

// KeywordsGT applies the GT predicate on the "keywords" field.
func KeywordsGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldKeywords, v))
}

// KeywordsGTE applies the GTE predicate on the "keywords" field.
func KeywordsGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldKeywords, v))
}

// KeywordsLT applies the LT predicate on the "keywords" field.
func KeywordsLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldKeywords, v))
}

// KeywordsLTE applies the LTE predicate on the "keywords" field.
func KeywordsLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldKeywords, v))
}

// KeywordsContains applies the Contains predicate on the "keywords" field.
func KeywordsContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldKeywords, v))
}

// KeywordsHasPrefix applies the HasPrefix predicate on the "keywords" field.
func KeywordsHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldKeywords, v))
}

// KeywordsHasSuffix applies the HasSuffix predicate on the "keywords" field.
func KeywordsHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldKeywords, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldKeywords))
}

// KeywordsEqualFold applies the EqualFold predicate on the "keywords" field.
func KeywordsEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldKeywords, v))
}

// KeywordsContainsFold applies the ContainsFold predicate on the "keywords" field.
func KeywordsContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldKeywords, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldWordCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldStatus, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldIsActive, v))
}

// EditorIDEQ applies the EQ predicate on the "editor_id" field.
func EditorIDEQ(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldEditorID, v))
}

// EditorIDNEQ applies the NEQ predicate on the "editor_id" field.
func EditorIDNEQ(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldEditorID, v))
}

// EditorIDIn applies the In predicate on the "editor_id" field.
func EditorIDIn(vs ...uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldEditorID, vs...))
}

// EditorIDNotIn applies the NotIn predicate on the "editor_id" field.
func EditorIDNotIn(vs ...uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldEditorID, vs...))
}

// EditorIDGT applies the GT predicate on the "editor_id" field.
func EditorIDGT(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldEditorID, v))
}

// EditorIDGTE applies the GTE predicate on the "editor_id" field.
func EditorIDGTE(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldEditorID, v))
}

// EditorIDLT applies the LT predicate on the "editor_id" field.
func EditorIDLT(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldEditorID, v))
}

// EditorIDLTE applies the LTE predicate on the "editor_id" field.
func EditorIDLTE(v uint) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldEditorID, v))
}

// EditorNicknameEQ applies the EQ predicate on the "editor_nickname" field.
func EditorNicknameEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldEditorNickname, v))
}

// EditorNicknameNEQ applies the NEQ predicate on the "editor_nickname" field.
func EditorNicknameNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldEditorNickname, v))
}

// EditorNicknameIn applies the In predicate on the "editor_nickname" field.
func EditorNicknameIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldEditorNickname, vs...))
}

// EditorNicknameNotIn applies the NotIn predicate on the "editor_nickname" field.
func EditorNicknameNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldEditorNickname, vs...))
}

// EditorNicknameGT applies the GT predicate on the "editor_nickname" field.
func EditorNicknameGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldEditorNickname, v))
}

// EditorNicknameGTE applies the GTE predicate on the "editor_nickname" field.
func EditorNicknameGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldEditorNickname, v))
}

// EditorNicknameLT applies the LT predicate on the "editor_nickname" field.
func EditorNicknameLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldEditorNickname, v))
}

// EditorNicknameLTE applies the LTE predicate on the "editor_nickname" field.
func EditorNicknameLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldEditorNickname, v))
}

// EditorNicknameContains applies the Contains predicate on the "editor_nickname" field.
func EditorNicknameContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldEditorNickname, v))
}

// EditorNicknameHasPrefix applies the HasPrefix predicate on the "editor_nickname" field.
func EditorNicknameHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldEditorNickname, v))
}

// EditorNicknameHasSuffix applies the HasSuffix predicate on the "editor_nickname" field.
func EditorNicknameHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldEditorNickname, v))
}

// EditorNicknameIsNil applies the IsNil predicate on the "editor_nickname" field.
func EditorNicknameIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldEditorNickname))
}

// EditorNicknameNotNil applies the NotNil predicate on the "editor_nickname" field.
func EditorNicknameNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldEditorNickname))
}

// EditorNicknameEqualFold applies the EqualFold predicate on the "editor_nickname" field.
func EditorNicknameEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldEditorNickname, v))
}

// EditorNicknameContainsFold applies the ContainsFold predicate on the "editor_nickname" field.
func EditorNicknameContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldEditorNickname, v))
}

// ChangeNoteEQ applies the EQ predicate on the "change_note" field.
func ChangeNoteEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldChangeNote, v))
}

// ChangeNoteNEQ applies the NEQ predicate on the "change_note" field.
func ChangeNoteNEQ(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldChangeNote, v))
}

// ChangeNoteIn applies the In predicate on the "change_note" field.
func ChangeNoteIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldChangeNote, vs...))
}

// ChangeNoteNotIn applies the NotIn predicate on the "change_note" field.
func ChangeNoteNotIn(vs ...string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldChangeNote, vs...))
}

// ChangeNoteGT applies the GT predicate on the "change_note" field.
func ChangeNoteGT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldChangeNote, v))
}

// ChangeNoteGTE applies the GTE predicate on the "change_note" field.
func ChangeNoteGTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldChangeNote, v))
}

// ChangeNoteLT applies the LT predicate on the "change_note" field.
func ChangeNoteLT(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldChangeNote, v))
}

// ChangeNoteLTE applies the LTE predicate on the "change_note" field.
func ChangeNoteLTE(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldChangeNote, v))
}

// ChangeNoteContains applies the Contains predicate on the "change_note" field.
func ChangeNoteContains(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContains(FieldChangeNote, v))
}

// ChangeNoteHasPrefix applies the HasPrefix predicate on the "change_note" field.
func ChangeNoteHasPrefix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasPrefix(FieldChangeNote, v))
}

// ChangeNoteHasSuffix applies the HasSuffix predicate on the "change_note" field.
func ChangeNoteHasSuffix(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldHasSuffix(FieldChangeNote, v))
}

// ChangeNoteIsNil applies the IsNil predicate on the "change_note" field.
func ChangeNoteIsNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIsNull(FieldChangeNote))
}

// ChangeNoteNotNil applies the NotNil predicate on the "change_note" field.
func ChangeNoteNotNil() predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotNull(FieldChangeNote))
}

// ChangeNoteEqualFold applies the EqualFold predicate on the "change_note" field.
func ChangeNoteEqualFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEqualFold(FieldChangeNote, v))
}

// ChangeNoteContainsFold applies the ContainsFold predicate on the "change_note" field.
func ChangeNoteContainsFold(v string) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldContainsFold(FieldChangeNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContentVersion {
	return predicate.ContentVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentVersion) predicate.ContentVersion {
	return predicate.ContentVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentVersion) predicate.ContentVersion {
	return predicate.ContentVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentVersion) predicate.ContentVersion {
	return predicate.ContentVersion(sql.NotPredicates(p))
}
