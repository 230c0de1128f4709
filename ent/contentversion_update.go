// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// ContentVersionUpdate is the builder for updating ContentVersion entities.
type ContentVersionUpdate struct {
	config
	hooks    []Hook
	mutation *ContentVersionMutation
}

// Where appends a list predicates to the ContentVersionUpdate builder.
func (cvu *ContentVersionUpdate) Where(ps ...predicate.ContentVersion) *ContentVersionUpdate {
	cvu.mutation.Where(ps...)
	return cvu
}

// SetContentID sets the "content_id" field.
func (cvu *ContentVersionUpdate) SetContentID(u uint) *ContentVersionUpdate {
	cvu.mutation.ResetContentID()
	cvu.mutation.SetContentID(u)
	return cvu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableContentID(u *uint) *ContentVersionUpdate {
	if u != nil {
		cvu.SetContentID(*u)
	}
	return cvu
}

// AddContentID adds u to the "content_id" field.
func (cvu *ContentVersionUpdate) AddContentID(u int) *ContentVersionUpdate {
	cvu.mutation.AddContentID(u)
	return cvu
}

// SetVersion sets the "version" field.
func (cvu *ContentVersionUpdate) SetVersion(i int) *ContentVersionUpdate {
	cvu.mutation.ResetVersion()
	cvu.mutation.SetVersion(i)
	return cvu
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableVersion(i *int) *ContentVersionUpdate {
	if i != nil {
		cvu.SetVersion(*i)
	}
	return cvu
}

// AddVersion adds i to the "version" field.
func (cvu *ContentVersionUpdate) AddVersion(i int) *ContentVersionUpdate {
	cvu.mutation.AddVersion(i)
	return cvu
}

// SetTitle sets the "title" field.
func (cvu *ContentVersionUpdate) SetTitle(s string) *ContentVersionUpdate {
	cvu.mutation.SetTitle(s)
	return cvu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableTitle(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetTitle(*s)
	}
	return cvu
}

// SetContentMd sets the "content_md" field.
func (cvu *ContentVersionUpdate) SetContentMd(s string) *ContentVersionUpdate {
	cvu.mutation.SetContentMd(s)
	return cvu
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableContentMd(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetContentMd(*s)
	}
	return cvu
}

// ClearContentMd clears the value of the "content_md" field.
func (cvu *ContentVersionUpdate) ClearContentMd() *ContentVersionUpdate {
	cvu.mutation.ClearContentMd()
	return cvu
}

// SetContentHTML sets the "content_html" field.
func (cvu *ContentVersionUpdate) SetContentHTML(s string) *ContentVersionUpdate {
	cvu.mutation.SetContentHTML(s)
	return cvu
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableContentHTML(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetContentHTML(*s)
	}
	return cvu
}

// ClearContentHTML clears the value of the "content_html" field.
func (cvu *ContentVersionUpdate) ClearContentHTML() *ContentVersionUpdate {
	cvu.mutation.ClearContentHTML()
	return cvu
}

// SetBlocks sets the "blocks" field.
func (cvu *ContentVersionUpdate) SetBlocks(mb []model.ContentBlock) *ContentVersionUpdate {
	cvu.mutation.SetBlocks(mb)
	return cvu
}

// AppendBlocks appends mb to the "blocks" field.
func (cvu *ContentVersionUpdate) AppendBlocks(mb []model.ContentBlock) *ContentVersionUpdate {
	cvu.mutation.AppendBlocks(mb)
	return cvu
}

// ClearBlocks clears the value of the "blocks" field.
func (cvu *ContentVersionUpdate) ClearBlocks() *ContentVersionUpdate {
	cvu.mutation.ClearBlocks()
	return cvu
}

// SetSummary sets the "summary" field.
func (cvu *ContentVersionUpdate) SetSummary(s string) *ContentVersionUpdate {
	cvu.mutation.SetSummary(s)
	return cvu
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableSummary(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetSummary(*s)
	}
	return cvu
}

// ClearSummary clears the value of the "summary" field.
func (cvu *ContentVersionUpdate) ClearSummary() *ContentVersionUpdate {
	cvu.mutation.ClearSummary()
	return cvu
}

// SetKeywords sets the "keywords" field.
func (cvu *ContentVersionUpdate) SetKeywords(s string) *ContentVersionUpdate {
	cvu.mutation.SetKeywords(s)
	return cvu
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableKeywords(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetKeywords(*s)
	}
	return cvu
}

// ClearKeywords clears the value of the "keywords" field.
func (cvu *ContentVersionUpdate) ClearKeywords() *ContentVersionUpdate {
	cvu.mutation.ClearKeywords()
	return cvu
}

// SetWordCount sets the "word_count" field.
func (cvu *ContentVersionUpdate) SetWordCount(i int) *ContentVersionUpdate {
	cvu.mutation.ResetWordCount()
	cvu.mutation.SetWordCount(i)
	return cvu
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableWordCount(i *int) *ContentVersionUpdate {
	if i != nil {
		cvu.SetWordCount(*i)
	}
	return cvu
}

// AddWordCount adds i to the "word_count" field.
func (cvu *ContentVersionUpdate) AddWordCount(i int) *ContentVersionUpdate {
	cvu.mutation.AddWordCount(i)
	return cvu
}

// SetStatus sets the "status" field.
func (cvu *ContentVersionUpdate) SetStatus(s string) *ContentVersionUpdate {
	cvu.mutation.SetStatus(s)
	return cvu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableStatus(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetStatus(*s)
	}
	return cvu
}

// SetIsActive sets the "is_active" field.
func (cvu *ContentVersionUpdate) SetIsActive(b bool) *ContentVersionUpdate {
	cvu.mutation.SetIsActive(b)
	return cvu
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableIsActive(b *bool) *ContentVersionUpdate {
	if b != nil {
		cvu.SetIsActive(*b)
	}
	return cvu
}

// SetEditorID sets the "editor_id" field.
func (cvu *ContentVersionUpdate) SetEditorID(u uint) *ContentVersionUpdate {
	cvu.mutation.ResetEditorID()
	cvu.mutation.SetEditorID(u)
	return cvu
}

// SetNillableEditorID sets the "editor_id" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableEditorID(u *uint) *ContentVersionUpdate {
	if u != nil {
		cvu.SetEditorID(*u)
	}
	return cvu
}

// AddEditorID adds u to the "editor_id" field.
func (cvu *ContentVersionUpdate) AddEditorID(u int) *ContentVersionUpdate {
	cvu.mutation.AddEditorID(u)
	return cvu
}

// SetEditorNickname sets the "editor_nickname" field.
func (cvu *ContentVersionUpdate) SetEditorNickname(s string) *ContentVersionUpdate {
	cvu.mutation.SetEditorNickname(s)
	return cvu
}

// SetNillableEditorNickname sets the "editor_nickname" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableEditorNickname(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetEditorNickname(*s)
	}
	return cvu
}

// ClearEditorNickname clears the value of the "editor_nickname" field.
func (cvu *ContentVersionUpdate) ClearEditorNickname() *ContentVersionUpdate {
	cvu.mutation.ClearEditorNickname()
	return cvu
}

// SetChangeNote sets the "change_note" field.
func (cvu *ContentVersionUpdate) SetChangeNote(s string) *ContentVersionUpdate {
	cvu.mutation.SetChangeNote(s)
	return cvu
}

// SetNillableChangeNote sets the "change_note" field if the given value is not nil.
func (cvu *ContentVersionUpdate) SetNillableChangeNote(s *string) *ContentVersionUpdate {
	if s != nil {
		cvu.SetChangeNote(*s)
	}
	return cvu
}

// ClearChangeNote clears the value of the "change_note" field.
func (cvu *ContentVersionUpdate) ClearChangeNote() *ContentVersionUpdate {
	cvu.mutation.ClearChangeNote()
	return cvu
}

// Mutation returns the ContentVersionMutation object of the builder.
func (cvu *ContentVersionUpdate) Mutation() *ContentVersionMutation {
	return cvu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cvu *ContentVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cvu.sqlSave, cvu.mutation, cvu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cvu *ContentVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := cvu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cvu *ContentVersionUpdate) Exec(ctx context.Context) error {
	_, err := cvu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cvu *ContentVersionUpdate) ExecX(ctx context.Context) {
	if err := cvu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cvu *ContentVersionUpdate) check() error {
	if v, ok := cvu.mutation.Version(); ok {
		if err := contentversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.version": %w`, err)}
		}
	}
	if v, ok := cvu.mutation.Title(); ok {
		if err := contentversion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.title": %w`, err)}
		}
	}
	if v, ok := cvu.mutation.Summary(); ok {
		if err := contentversion.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.summary": %w`, err)}
		}
	}
	if v, ok := cvu.mutation.WordCount(); ok {
		if err := contentversion.WordCountValidator(v); err != nil {
			return &ValidationError{Name: "word_count", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.word_count": %w`, err)}
		}
	}
	if v, ok := cvu.mutation.Status(); ok {
		if err := contentversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.status": %w`, err)}
		}
	}
	if v, ok := cvu.mutation.ChangeNote(); ok {
		if err := contentversion.ChangeNoteValidator(v); err != nil {
			return &ValidationError{Name: "change_note", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.change_note": %w`, err)}
		}
	}
	return nil
}

func (cvu *ContentVersionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cvu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentversion.Table, contentversion.Columns, sqlgraph.NewFieldSpec(contentversion.FieldID, field.TypeUint))
	if ps := cvu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cvu.mutation.ContentID(); ok {
		_spec.SetField(contentversion.FieldContentID, field.TypeUint, value)
	}
	if value, ok := cvu.mutation.AddedContentID(); ok {
		_spec.AddField(contentversion.FieldContentID, field.TypeUint, value)
	}
	if value, ok := cvu.mutation.Version(); ok {
		_spec.SetField(contentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := cvu.mutation.AddedVersion(); ok {
		_spec.AddField(contentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := cvu.mutation.Title(); ok {
		_spec.SetField(contentversion.FieldTitle, field.TypeString, value)
	}
	if value, ok := cvu.mutation.ContentMd(); ok {
		_spec.SetField(contentversion.FieldContentMd, field.TypeString, value)
	}
	if cvu.mutation.ContentMdCleared() {
		_spec.ClearField(contentversion.FieldContentMd, field.TypeString)
	}
	if value, ok := cvu.mutation.ContentHTML(); ok {
		_spec.SetField(contentversion.FieldContentHTML, field.TypeString, value)
	}
	if cvu.mutation.ContentHTMLCleared() {
		_spec.ClearField(contentversion.FieldContentHTML, field.TypeString)
	}
	if value, ok := cvu.mutation.Blocks(); ok {
		_spec.SetField(contentversion.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := cvu.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentversion.FieldBlocks, value)
		})
	}
	if cvu.mutation.BlocksCleared() {
		_spec.ClearField(contentversion.FieldBlocks, field.TypeJSON)
	}
	if value, ok := cvu.mutation.Summary(); ok {
		_spec.SetField(contentversion.FieldSummary, field.TypeString, value)
	}
	if cvu.mutation.SummaryCleared() {
		_spec.ClearField(contentversion.FieldSummary, field.TypeString)
	}
	if value, ok := cvu.mutation.Keywords(); ok {
		_spec.SetField(contentversion.FieldKeywords, field.TypeString, value)
	}
	if cvu.mutation.KeywordsCleared() {
		_spec.ClearField(contentversion.FieldKeywords, field.TypeString)
	}
	if value, ok := cvu.mutation.WordCount(); ok {
		_spec.SetField(contentversion.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := cvu.mutation.AddedWordCount(); ok {
		_spec.AddField(contentversion.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := cvu.mutation.Status(); ok {
		_spec.SetField(contentversion.FieldStatus, field.TypeString, value)
	}
	if value, ok := cvu.mutation.IsActive(); ok {
		_spec.SetField(contentversion.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := cvu.mutation.EditorID(); ok {
		_spec.SetField(contentversion.FieldEditorID, field.TypeUint, value)
	}
	if value, ok := cvu.mutation.AddedEditorID(); ok {
		_spec.AddField(contentversion.FieldEditorID, field.TypeUint, value)
	}
	if value, ok := cvu.mutation.EditorNickname(); ok {
		_spec.SetField(contentversion.FieldEditorNickname, field.TypeString, value)
	}
	if cvu.mutation.EditorNicknameCleared() {
		_spec.ClearField(contentversion.FieldEditorNickname, field.TypeString)
	}
	if value, ok := cvu.mutation.ChangeNote(); ok {
		_spec.SetField(contentversion.FieldChangeNote, field.TypeString, value)
	}
	if cvu.mutation.ChangeNoteCleared() {
		_spec.ClearField(contentversion.FieldChangeNote, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cvu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cvu.mutation.done = true
	return n, nil
}

// ContentVersionUpdateOne is the builder for updating a single ContentVersion entity.
type ContentVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentVersionMutation
}

// SetContentID sets the "content_id" field.
func (cvuo *ContentVersionUpdateOne) SetContentID(u uint) *ContentVersionUpdateOne {
	cvuo.mutation.ResetContentID()
	cvuo.mutation.SetContentID(u)
	return cvuo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableContentID(u *uint) *ContentVersionUpdateOne {
	if u != nil {
		cvuo.SetContentID(*u)
	}
	return cvuo
}

// AddContentID adds u to the "content_id" field.
func (cvuo *ContentVersionUpdateOne) AddContentID(u int) *ContentVersionUpdateOne {
	cvuo.mutation.AddContentID(u)
	return cvuo
}

// SetVersion sets the "version" field.
func (cvuo *ContentVersionUpdateOne) SetVersion(i int) *ContentVersionUpdateOne {
	cvuo.mutation.ResetVersion()
	cvuo.mutation.SetVersion(i)
	return cvuo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableVersion(i *int) *ContentVersionUpdateOne {
	if i != nil {
		cvuo.SetVersion(*i)
	}
	return cvuo
}

// AddVersion adds i to the "version" field.
func (cvuo *ContentVersionUpdateOne) AddVersion(i int) *ContentVersionUpdateOne {
	cvuo.mutation.AddVersion(i)
	return cvuo
}

// SetTitle sets the "title" field.
func (cvuo *ContentVersionUpdateOne) SetTitle(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetTitle(s)
	return cvuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableTitle(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetTitle(*s)
	}
	return cvuo
}

// SetContentMd sets the "content_md" field.
func (cvuo *ContentVersionUpdateOne) SetContentMd(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetContentMd(s)
	return cvuo
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableContentMd(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetContentMd(*s)
	}
	return cvuo
}

// ClearContentMd clears the value of the "content_md" field.
func (cvuo *ContentVersionUpdateOne) ClearContentMd() *ContentVersionUpdateOne {
	cvuo.mutation.ClearContentMd()
	return cvuo
}

// SetContentHTML sets the "content_html" field.
func (cvuo *ContentVersionUpdateOne) SetContentHTML(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetContentHTML(s)
	return cvuo
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableContentHTML(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetContentHTML(*s)
	}
	return cvuo
}

// ClearContentHTML clears the value of the "content_html" field.
func (cvuo *ContentVersionUpdateOne) ClearContentHTML() *ContentVersionUpdateOne {
	cvuo.mutation.ClearContentHTML()
	return cvuo
}

// SetBlocks sets the "blocks" field.
func (cvuo *ContentVersionUpdateOne) SetBlocks(mb []model.ContentBlock) *ContentVersionUpdateOne {
	cvuo.mutation.SetBlocks(mb)
	return cvuo
}

// AppendBlocks appends mb to the "blocks" field.
func (cvuo *ContentVersionUpdateOne) AppendBlocks(mb []model.ContentBlock) *ContentVersionUpdateOne {
	cvuo.mutation.AppendBlocks(mb)
	return cvuo
}

// ClearBlocks clears the value of the "blocks" field.
func (cvuo *ContentVersionUpdateOne) ClearBlocks() *ContentVersionUpdateOne {
	cvuo.mutation.ClearBlocks()
	return cvuo
}

// SetSummary sets the "summary" field.
func (cvuo *ContentVersionUpdateOne) SetSummary(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetSummary(s)
	return cvuo
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableSummary(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetSummary(*s)
	}
	return cvuo
}

// ClearSummary clears the value of the "summary" field.
func (cvuo *ContentVersionUpdateOne) ClearSummary() *ContentVersionUpdateOne {
	cvuo.mutation.ClearSummary()
	return cvuo
}

// SetKeywords sets the "keywords" field.
func (cvuo *ContentVersionUpdateOne) SetKeywords(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetKeywords(s)
	return cvuo
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableKeywords(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetKeywords(*s)
	}
	return cvuo
}

// ClearKeywords clears the value of the "keywords" field.
func (cvuo *ContentVersionUpdateOne) ClearKeywords() *ContentVersionUpdateOne {
	cvuo.mutation.ClearKeywords()
	return cvuo
}

// SetWordCount sets the "word_count" field.
func (cvuo *ContentVersionUpdateOne) SetWordCount(i int) *ContentVersionUpdateOne {
	cvuo.mutation.ResetWordCount()
	cvuo.mutation.SetWordCount(i)
	return cvuo
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableWordCount(i *int) *ContentVersionUpdateOne {
	if i != nil {
		cvuo.SetWordCount(*i)
	}
	return cvuo
}

// AddWordCount adds i to the "word_count" field.
func (cvuo *ContentVersionUpdateOne) AddWordCount(i int) *ContentVersionUpdateOne {
	cvuo.mutation.AddWordCount(i)
	return cvuo
}

// SetStatus sets the "status" field.
func (cvuo *ContentVersionUpdateOne) SetStatus(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetStatus(s)
	return cvuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableStatus(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetStatus(*s)
	}
	return cvuo
}

// SetIsActive sets the "is_active" field.
func (cvuo *ContentVersionUpdateOne) SetIsActive(b bool) *ContentVersionUpdateOne {
	cvuo.mutation.SetIsActive(b)
	return cvuo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableIsActive(b *bool) *ContentVersionUpdateOne {
	if b != nil {
		cvuo.SetIsActive(*b)
	}
	return cvuo
}

// SetEditorID sets the "editor_id" field.
func (cvuo *ContentVersionUpdateOne) SetEditorID(u uint) *ContentVersionUpdateOne {
	cvuo.mutation.ResetEditorID()
	cvuo.mutation.SetEditorID(u)
	return cvuo
}

// SetNillableEditorID sets the "editor_id" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableEditorID(u *uint) *ContentVersionUpdateOne {
	if u != nil {
		cvuo.SetEditorID(*u)
	}
	return cvuo
}

// AddEditorID adds u to the "editor_id" field.
func (cvuo *ContentVersionUpdateOne) AddEditorID(u int) *ContentVersionUpdateOne {
	cvuo.mutation.AddEditorID(u)
	return cvuo
}

// SetEditorNickname sets the "editor_nickname" field.
func (cvuo *ContentVersionUpdateOne) SetEditorNickname(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetEditorNickname(s)
	return cvuo
}

// SetNillableEditorNickname sets the "editor_nickname" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableEditorNickname(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetEditorNickname(*s)
	}
	return cvuo
}

// ClearEditorNickname clears the value of the "editor_nickname" field.
func (cvuo *ContentVersionUpdateOne) ClearEditorNickname() *ContentVersionUpdateOne {
	cvuo.mutation.ClearEditorNickname()
	return cvuo
}

// SetChangeNote sets the "change_note" field.
func (cvuo *ContentVersionUpdateOne) SetChangeNote(s string) *ContentVersionUpdateOne {
	cvuo.mutation.SetChangeNote(s)
	return cvuo
}

// SetNillableChangeNote sets the "change_note" field if the given value is not nil.
func (cvuo *ContentVersionUpdateOne) SetNillableChangeNote(s *string) *ContentVersionUpdateOne {
	if s != nil {
		cvuo.SetChangeNote(*s)
	}
	return cvuo
}

// ClearChangeNote clears the value of the "change_note" field.
func (cvuo *ContentVersionUpdateOne) ClearChangeNote() *ContentVersionUpdateOne {
	cvuo.mutation.ClearChangeNote()
	return cvuo
}

// Mutation returns the ContentVersionMutation object of the builder.
func (cvuo *ContentVersionUpdateOne) Mutation() *ContentVersionMutation {
	return cvuo.mutation
}

// Where appends a list predicates to the ContentVersionUpdate builder.
func (cvuo *ContentVersionUpdateOne) Where(ps ...predicate.ContentVersion) *ContentVersionUpdateOne {
	cvuo.mutation.Where(ps...)
	return cvuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cvuo *ContentVersionUpdateOne) Select(field string, fields ...string) *ContentVersionUpdateOne {
	cvuo.fields = append([]string{field}, fields...)
	return cvuo
}

// Save executes the query and returns the updated ContentVersion entity.
func (cvuo *ContentVersionUpdateOne) Save(ctx context.Context) (*ContentVersion, error) {
	return withHooks(ctx, cvuo.sqlSave, cvuo.mutation, cvuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cvuo *ContentVersionUpdateOne) SaveX(ctx context.Context) *ContentVersion {
	node, err := cvuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cvuo *ContentVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := cvuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cvuo *ContentVersionUpdateOne) ExecX(ctx context.Context) {
	if err := cvuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cvuo *ContentVersionUpdateOne) check() error {
	if v, ok := cvuo.mutation.Version(); ok {
		if err := contentversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.version": %w`, err)}
		}
	}
	if v, ok := cvuo.mutation.Title(); ok {
		if err := contentversion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.title": %w`, err)}
		}
	}
	if v, ok := cvuo.mutation.Summary(); ok {
		if err := contentversion.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.summary": %w`, err)}
		}
	}
	if v, ok := cvuo.mutation.WordCount(); ok {
		if err := contentversion.WordCountValidator(v); err != nil {
			return &ValidationError{Name: "word_count", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.word_count": %w`, err)}
		}
	}
	if v, ok := cvuo.mutation.Status(); ok {
		if err := contentversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.status": %w`, err)}
		}
	}
	if v, ok := cvuo.mutation.ChangeNote(); ok {
		if err := contentversion.ChangeNoteValidator(v); err != nil {
			return &ValidationError{Name: "change_note", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.change_note": %w`, err)}
		}
	}
	return nil
}

func (cvuo *ContentVersionUpdateOne) sqlSave(ctx context.Context) (_node *ContentVersion, err error) {
	if err := cvuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentversion.Table, contentversion.Columns, sqlgraph.NewFieldSpec(contentversion.FieldID, field.TypeUint))
	id, ok := cvuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cvuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentversion.FieldID)
		for _, f := range fields {
			if !contentversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cvuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cvuo.mutation.ContentID(); ok {
		_spec.SetField(contentversion.FieldContentID, field.TypeUint, value)
	}
	if value, ok := cvuo.mutation.AddedContentID(); ok {
		_spec.AddField(contentversion.FieldContentID, field.TypeUint, value)
	}
	if value, ok := cvuo.mutation.Version(); ok {
		_spec.SetField(contentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := cvuo.mutation.AddedVersion(); ok {
		_spec.AddField(contentversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := cvuo.mutation.Title(); ok {
		_spec.SetField(contentversion.FieldTitle, field.TypeString, value)
	}
	if value, ok := cvuo.mutation.ContentMd(); ok {
		_spec.SetField(contentversion.FieldContentMd, field.TypeString, value)
	}
	if cvuo.mutation.ContentMdCleared() {
		_spec.ClearField(contentversion.FieldContentMd, field.TypeString)
	}
	if value, ok := cvuo.mutation.ContentHTML(); ok {
		_spec.SetField(contentversion.FieldContentHTML, field.TypeString, value)
	}
	if cvuo.mutation.ContentHTMLCleared() {
		_spec.ClearField(contentversion.FieldContentHTML, field.TypeString)
	}
	if value, ok := cvuo.mutation.Blocks(); ok {
		_spec.SetField(contentversion.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := cvuo.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentversion.FieldBlocks, value)
		})
	}
	if cvuo.mutation.BlocksCleared() {
		_spec.ClearField(contentversion.FieldBlocks, field.TypeJSON)
	}
	if value, ok := cvuo.mutation.Summary(); ok {
		_spec.SetField(contentversion.FieldSummary, field.TypeString, value)
	}
	if cvuo.mutation.SummaryCleared() {
		_spec.ClearField(contentversion.FieldSummary, field.TypeString)
	}
	if value, ok := cvuo.mutation.Keywords(); ok {
		_spec.SetField(contentversion.FieldKeywords, field.TypeString, value)
	}
	if cvuo.mutation.KeywordsCleared() {
		_spec.ClearField(contentversion.FieldKeywords, field.TypeString)
	}
	if value, ok := cvuo.mutation.WordCount(); ok {
		_spec.SetField(contentversion.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := cvuo.mutation.AddedWordCount(); ok {
		_spec.AddField(contentversion.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := cvuo.mutation.Status(); ok {
		_spec.SetField(contentversion.FieldStatus, field.TypeString, value)
	}
	if value, ok := cvuo.mutation.IsActive(); ok {
		_spec.SetField(contentversion.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := cvuo.mutation.EditorID(); ok {
		_spec.SetField(contentversion.FieldEditorID, field.TypeUint, value)
	}
	if value, ok := cvuo.mutation.AddedEditorID(); ok {
		_spec.AddField(contentversion.FieldEditorID, field.TypeUint, value)
	}
	if value, ok := cvuo.mutation.EditorNickname(); ok {
		_spec.SetField(contentversion.FieldEditorNickname, field.TypeString, value)
	}
	if cvuo.mutation.EditorNicknameCleared() {
		_spec.ClearField(contentversion.FieldEditorNickname, field.TypeString)
	}
	if value, ok := cvuo.mutation.ChangeNote(); ok {
		_spec.SetField(contentversion.FieldChangeNote, field.TypeString, value)
	}
	if cvuo.mutation.ChangeNoteCleared() {
		_spec.ClearField(contentversion.FieldChangeNote, field.TypeString)
	}
	_node = &ContentVersion{config: cvuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cvuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cvuo.mutation.done = true
	return _node, nil
}
