// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// EditorialCommentUpdate is the builder for updating EditorialComment entities.
type EditorialCommentUpdate struct {
	config
	hooks    []Hook
	mutation *EditorialCommentMutation
}

// Where appends a list predicates to the EditorialCommentUpdate builder.
func (ecu *EditorialCommentUpdate) Where(ps ...predicate.EditorialComment) *EditorialCommentUpdate {
	ecu.mutation.Where(ps...)
	return ecu
}

// SetVersionID sets the "version_id" field.
func (ecu *EditorialCommentUpdate) SetVersionID(u uint) *EditorialCommentUpdate {
	ecu.mutation.ResetVersionID()
	ecu.mutation.SetVersionID(u)
	return ecu
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableVersionID(u *uint) *EditorialCommentUpdate {
	if u != nil {
		ecu.SetVersionID(*u)
	}
	return ecu
}

// AddVersionID adds u to the "version_id" field.
func (ecu *EditorialCommentUpdate) AddVersionID(u int) *EditorialCommentUpdate {
	ecu.mutation.AddVersionID(u)
	return ecu
}

// SetAuthorID sets the "author_id" field.
func (ecu *EditorialCommentUpdate) SetAuthorID(u uint) *EditorialCommentUpdate {
	ecu.mutation.ResetAuthorID()
	ecu.mutation.SetAuthorID(u)
	return ecu
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableAuthorID(u *uint) *EditorialCommentUpdate {
	if u != nil {
		ecu.SetAuthorID(*u)
	}
	return ecu
}

// AddAuthorID adds u to the "author_id" field.
func (ecu *EditorialCommentUpdate) AddAuthorID(u int) *EditorialCommentUpdate {
	ecu.mutation.AddAuthorID(u)
	return ecu
}

// SetAuthorNickname sets the "author_nickname" field.
func (ecu *EditorialCommentUpdate) SetAuthorNickname(s string) *EditorialCommentUpdate {
	ecu.mutation.SetAuthorNickname(s)
	return ecu
}

// SetNillableAuthorNickname sets the "author_nickname" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableAuthorNickname(s *string) *EditorialCommentUpdate {
	if s != nil {
		ecu.SetAuthorNickname(*s)
	}
	return ecu
}

// ClearAuthorNickname clears the value of the "author_nickname" field.
func (ecu *EditorialCommentUpdate) ClearAuthorNickname() *EditorialCommentUpdate {
	ecu.mutation.ClearAuthorNickname()
	return ecu
}

// SetContent sets the "content" field.
func (ecu *EditorialCommentUpdate) SetContent(s string) *EditorialCommentUpdate {
	ecu.mutation.SetContent(s)
	return ecu
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableContent(s *string) *EditorialCommentUpdate {
	if s != nil {
		ecu.SetContent(*s)
	}
	return ecu
}

// SetContentHTML sets the "content_html" field.
func (ecu *EditorialCommentUpdate) SetContentHTML(s string) *EditorialCommentUpdate {
	ecu.mutation.SetContentHTML(s)
	return ecu
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableContentHTML(s *string) *EditorialCommentUpdate {
	if s != nil {
		ecu.SetContentHTML(*s)
	}
	return ecu
}

// SetBlockID sets the "block_id" field.
func (ecu *EditorialCommentUpdate) SetBlockID(s string) *EditorialCommentUpdate {
	ecu.mutation.SetBlockID(s)
	return ecu
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableBlockID(s *string) *EditorialCommentUpdate {
	if s != nil {
		ecu.SetBlockID(*s)
	}
	return ecu
}

// ClearBlockID clears the value of the "block_id" field.
func (ecu *EditorialCommentUpdate) ClearBlockID() *EditorialCommentUpdate {
	ecu.mutation.ClearBlockID()
	return ecu
}

// SetType sets the "type" field.
func (ecu *EditorialCommentUpdate) SetType(s string) *EditorialCommentUpdate {
	ecu.mutation.SetType(s)
	return ecu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableType(s *string) *EditorialCommentUpdate {
	if s != nil {
		ecu.SetType(*s)
	}
	return ecu
}

// SetResolvedByID sets the "resolved_by_id" field.
func (ecu *EditorialCommentUpdate) SetResolvedByID(u uint) *EditorialCommentUpdate {
	ecu.mutation.ResetResolvedByID()
	ecu.mutation.SetResolvedByID(u)
	return ecu
}

// SetNillableResolvedByID sets the "resolved_by_id" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableResolvedByID(u *uint) *EditorialCommentUpdate {
	if u != nil {
		ecu.SetResolvedByID(*u)
	}
	return ecu
}

// AddResolvedByID adds u to the "resolved_by_id" field.
func (ecu *EditorialCommentUpdate) AddResolvedByID(u int) *EditorialCommentUpdate {
	ecu.mutation.AddResolvedByID(u)
	return ecu
}

// ClearResolvedByID clears the value of the "resolved_by_id" field.
func (ecu *EditorialCommentUpdate) ClearResolvedByID() *EditorialCommentUpdate {
	ecu.mutation.ClearResolvedByID()
	return ecu
}

// SetResolvedByName sets the "resolved_by_name" field.
func (ecu *EditorialCommentUpdate) SetResolvedByName(s string) *EditorialCommentUpdate {
	ecu.mutation.SetResolvedByName(s)
	return ecu
}

// SetNillableResolvedByName sets the "resolved_by_name" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableResolvedByName(s *string) *EditorialCommentUpdate {
	if s != nil {
		ecu.SetResolvedByName(*s)
	}
	return ecu
}

// ClearResolvedByName clears the value of the "resolved_by_name" field.
func (ecu *EditorialCommentUpdate) ClearResolvedByName() *EditorialCommentUpdate {
	ecu.mutation.ClearResolvedByName()
	return ecu
}

// SetResolvedAt sets the "resolved_at" field.
func (ecu *EditorialCommentUpdate) SetResolvedAt(t time.Time) *EditorialCommentUpdate {
	ecu.mutation.SetResolvedAt(t)
	return ecu
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (ecu *EditorialCommentUpdate) SetNillableResolvedAt(t *time.Time) *EditorialCommentUpdate {
	if t != nil {
		ecu.SetResolvedAt(*t)
	}
	return ecu
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (ecu *EditorialCommentUpdate) ClearResolvedAt() *EditorialCommentUpdate {
	ecu.mutation.ClearResolvedAt()
	return ecu
}

// Mutation returns the EditorialCommentMutation object of the builder.
func (ecu *EditorialCommentUpdate) Mutation() *EditorialCommentMutation {
	return ecu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ecu *EditorialCommentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ecu.sqlSave, ecu.mutation, ecu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ecu *EditorialCommentUpdate) SaveX(ctx context.Context) int {
	affected, err := ecu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ecu *EditorialCommentUpdate) Exec(ctx context.Context) error {
	_, err := ecu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecu *EditorialCommentUpdate) ExecX(ctx context.Context) {
	if err := ecu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ecu *EditorialCommentUpdate) check() error {
	if v, ok := ecu.mutation.AuthorNickname(); ok {
		if err := editorialcomment.AuthorNicknameValidator(v); err != nil {
			return &ValidationError{Name: "author_nickname", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.author_nickname": %w`, err)}
		}
	}
	if v, ok := ecu.mutation.Content(); ok {
		if err := editorialcomment.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.content": %w`, err)}
		}
	}
	if v, ok := ecu.mutation.ContentHTML(); ok {
		if err := editorialcomment.ContentHTMLValidator(v); err != nil {
			return &ValidationError{Name: "content_html", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.content_html": %w`, err)}
		}
	}
	if v, ok := ecu.mutation.BlockID(); ok {
		if err := editorialcomment.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.block_id": %w`, err)}
		}
	}
	if v, ok := ecu.mutation.GetType(); ok {
		if err := editorialcomment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.type": %w`, err)}
		}
	}
	if v, ok := ecu.mutation.ResolvedByName(); ok {
		if err := editorialcomment.ResolvedByNameValidator(v); err != nil {
			return &ValidationError{Name: "resolved_by_name", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.resolved_by_name": %w`, err)}
		}
	}
	return nil
}

func (ecu *EditorialCommentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ecu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(editorialcomment.Table, editorialcomment.Columns, sqlgraph.NewFieldSpec(editorialcomment.FieldID, field.TypeUint))
	if ps := ecu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ecu.mutation.VersionID(); ok {
		_spec.SetField(editorialcomment.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := ecu.mutation.AddedVersionID(); ok {
		_spec.AddField(editorialcomment.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := ecu.mutation.AuthorID(); ok {
		_spec.SetField(editorialcomment.FieldAuthorID, field.TypeUint, value)
	}
	if value, ok := ecu.mutation.AddedAuthorID(); ok {
		_spec.AddField(editorialcomment.FieldAuthorID, field.TypeUint, value)
	}
	if value, ok := ecu.mutation.AuthorNickname(); ok {
		_spec.SetField(editorialcomment.FieldAuthorNickname, field.TypeString, value)
	}
	if ecu.mutation.AuthorNicknameCleared() {
		_spec.ClearField(editorialcomment.FieldAuthorNickname, field.TypeString)
	}
	if value, ok := ecu.mutation.Content(); ok {
		_spec.SetField(editorialcomment.FieldContent, field.TypeString, value)
	}
	if value, ok := ecu.mutation.ContentHTML(); ok {
		_spec.SetField(editorialcomment.FieldContentHTML, field.TypeString, value)
	}
	if value, ok := ecu.mutation.BlockID(); ok {
		_spec.SetField(editorialcomment.FieldBlockID, field.TypeString, value)
	}
	if ecu.mutation.BlockIDCleared() {
		_spec.ClearField(editorialcomment.FieldBlockID, field.TypeString)
	}
	if value, ok := ecu.mutation.GetType(); ok {
		_spec.SetField(editorialcomment.FieldType, field.TypeString, value)
	}
	if value, ok := ecu.mutation.ResolvedByID(); ok {
		_spec.SetField(editorialcomment.FieldResolvedByID, field.TypeUint, value)
	}
	if value, ok := ecu.mutation.AddedResolvedByID(); ok {
		_spec.AddField(editorialcomment.FieldResolvedByID, field.TypeUint, value)
	}
	if ecu.mutation.ResolvedByIDCleared() {
		_spec.ClearField(editorialcomment.FieldResolvedByID, field.TypeUint)
	}
	if value, ok := ecu.mutation.ResolvedByName(); ok {
		_spec.SetField(editorialcomment.FieldResolvedByName, field.TypeString, value)
	}
	if ecu.mutation.ResolvedByNameCleared() {
		_spec.ClearField(editorialcomment.FieldResolvedByName, field.TypeString)
	}
	if value, ok := ecu.mutation.ResolvedAt(); ok {
		_spec.SetField(editorialcomment.FieldResolvedAt, field.TypeTime, value)
	}
	if ecu.mutation.ResolvedAtCleared() {
		_spec.ClearField(editorialcomment.FieldResolvedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ecu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editorialcomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ecu.mutation.done = true
	return n, nil
}

// EditorialCommentUpdateOne is the builder for updating a single EditorialComment entity.
type EditorialCommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditorialCommentMutation
}

// SetVersionID sets the "version_id" field.
func (ecuo *EditorialCommentUpdateOne) SetVersionID(u uint) *EditorialCommentUpdateOne {
	ecuo.mutation.ResetVersionID()
	ecuo.mutation.SetVersionID(u)
	return ecuo
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableVersionID(u *uint) *EditorialCommentUpdateOne {
	if u != nil {
		ecuo.SetVersionID(*u)
	}
	return ecuo
}

// AddVersionID adds u to the "version_id" field.
func (ecuo *EditorialCommentUpdateOne) AddVersionID(u int) *EditorialCommentUpdateOne {
	ecuo.mutation.AddVersionID(u)
	return ecuo
}

// SetAuthorID sets the "author_id" field.
func (ecuo *EditorialCommentUpdateOne) SetAuthorID(u uint) *EditorialCommentUpdateOne {
	ecuo.mutation.ResetAuthorID()
	ecuo.mutation.SetAuthorID(u)
	return ecuo
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableAuthorID(u *uint) *EditorialCommentUpdateOne {
	if u != nil {
		ecuo.SetAuthorID(*u)
	}
	return ecuo
}

// AddAuthorID adds u to the "author_id" field.
func (ecuo *EditorialCommentUpdateOne) AddAuthorID(u int) *EditorialCommentUpdateOne {
	ecuo.mutation.AddAuthorID(u)
	return ecuo
}

// SetAuthorNickname sets the "author_nickname" field.
func (ecuo *EditorialCommentUpdateOne) SetAuthorNickname(s string) *EditorialCommentUpdateOne {
	ecuo.mutation.SetAuthorNickname(s)
	return ecuo
}

// SetNillableAuthorNickname sets the "author_nickname" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableAuthorNickname(s *string) *EditorialCommentUpdateOne {
	if s != nil {
		ecuo.SetAuthorNickname(*s)
	}
	return ecuo
}

// ClearAuthorNickname clears the value of the "author_nickname" field.
func (ecuo *EditorialCommentUpdateOne) ClearAuthorNickname() *EditorialCommentUpdateOne {
	ecuo.mutation.ClearAuthorNickname()
	return ecuo
}

// SetContent sets the "content" field.
func (ecuo *EditorialCommentUpdateOne) SetContent(s string) *EditorialCommentUpdateOne {
	ecuo.mutation.SetContent(s)
	return ecuo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableContent(s *string) *EditorialCommentUpdateOne {
	if s != nil {
		ecuo.SetContent(*s)
	}
	return ecuo
}

// SetContentHTML sets the "content_html" field.
func (ecuo *EditorialCommentUpdateOne) SetContentHTML(s string) *EditorialCommentUpdateOne {
	ecuo.mutation.SetContentHTML(s)
	return ecuo
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableContentHTML(s *string) *EditorialCommentUpdateOne {
	if s != nil {
		ecuo.SetContentHTML(*s)
	}
	return ecuo
}

// SetBlockID sets the "block_id" field.
func (ecuo *EditorialCommentUpdateOne) SetBlockID(s string) *EditorialCommentUpdateOne {
	ecuo.mutation.SetBlockID(s)
	return ecuo
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableBlockID(s *string) *EditorialCommentUpdateOne {
	if s != nil {
		ecuo.SetBlockID(*s)
	}
	return ecuo
}

// ClearBlockID clears the value of the "block_id" field.
func (ecuo *EditorialCommentUpdateOne) ClearBlockID() *EditorialCommentUpdateOne {
	ecuo.mutation.ClearBlockID()
	return ecuo
}

// SetType sets the "type" field.
func (ecuo *EditorialCommentUpdateOne) SetType(s string) *EditorialCommentUpdateOne {
	ecuo.mutation.SetType(s)
	return ecuo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableType(s *string) *EditorialCommentUpdateOne {
	if s != nil {
		ecuo.SetType(*s)
	}
	return ecuo
}

// SetResolvedByID sets the "resolved_by_id" field.
func (ecuo *EditorialCommentUpdateOne) SetResolvedByID(u uint) *EditorialCommentUpdateOne {
	ecuo.mutation.ResetResolvedByID()
	ecuo.mutation.SetResolvedByID(u)
	return ecuo
}

// SetNillableResolvedByID sets the "resolved_by_id" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableResolvedByID(u *uint) *EditorialCommentUpdateOne {
	if u != nil {
		ecuo.SetResolvedByID(*u)
	}
	return ecuo
}

// AddResolvedByID adds u to the "resolved_by_id" field.
func (ecuo *EditorialCommentUpdateOne) AddResolvedByID(u int) *EditorialCommentUpdateOne {
	ecuo.mutation.AddResolvedByID(u)
	return ecuo
}

// ClearResolvedByID clears the value of the "resolved_by_id" field.
func (ecuo *EditorialCommentUpdateOne) ClearResolvedByID() *EditorialCommentUpdateOne {
	ecuo.mutation.ClearResolvedByID()
	return ecuo
}

// SetResolvedByName sets the "resolved_by_name" field.
func (ecuo *EditorialCommentUpdateOne) SetResolvedByName(s string) *EditorialCommentUpdateOne {
	ecuo.mutation.SetResolvedByName(s)
	return ecuo
}

// SetNillableResolvedByName sets the "resolved_by_name" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableResolvedByName(s *string) *EditorialCommentUpdateOne {
	if s != nil {
		ecuo.SetResolvedByName(*s)
	}
	return ecuo
}

// ClearResolvedByName clears the value of the "resolved_by_name" field.
func (ecuo *EditorialCommentUpdateOne) ClearResolvedByName() *EditorialCommentUpdateOne {
	ecuo.mutation.ClearResolvedByName()
	return ecuo
}

// SetResolvedAt sets the "resolved_at" field.
func (ecuo *EditorialCommentUpdateOne) SetResolvedAt(t time.Time) *EditorialCommentUpdateOne {
	ecuo.mutation.SetResolvedAt(t)
	return ecuo
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (ecuo *EditorialCommentUpdateOne) SetNillableResolvedAt(t *time.Time) *EditorialCommentUpdateOne {
	if t != nil {
		ecuo.SetResolvedAt(*t)
	}
	return ecuo
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (ecuo *EditorialCommentUpdateOne) ClearResolvedAt() *EditorialCommentUpdateOne {
	ecuo.mutation.ClearResolvedAt()
	return ecuo
}

// Mutation returns the EditorialCommentMutation object of the builder.
func (ecuo *EditorialCommentUpdateOne) Mutation() *EditorialCommentMutation {
	return ecuo.mutation
}

// Where appends a list predicates to the EditorialCommentUpdate builder.
func (ecuo *EditorialCommentUpdateOne) Where(ps ...predicate.EditorialComment) *EditorialCommentUpdateOne {
	ecuo.mutation.Where(ps...)
	return ecuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ecuo *EditorialCommentUpdateOne) Select(field string, fields ...string) *EditorialCommentUpdateOne {
	ecuo.fields = append([]string{field}, fields...)
	return ecuo
}

// Save executes the query and returns the updated EditorialComment entity.
func (ecuo *EditorialCommentUpdateOne) Save(ctx context.Context) (*EditorialComment, error) {
	return withHooks(ctx, ecuo.sqlSave, ecuo.mutation, ecuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ecuo *EditorialCommentUpdateOne) SaveX(ctx context.Context) *EditorialComment {
	node, err := ecuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ecuo *EditorialCommentUpdateOne) Exec(ctx context.Context) error {
	_, err := ecuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecuo *EditorialCommentUpdateOne) ExecX(ctx context.Context) {
	if err := ecuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ecuo *EditorialCommentUpdateOne) check() error {
	if v, ok := ecuo.mutation.AuthorNickname(); ok {
		if err := editorialcomment.AuthorNicknameValidator(v); err != nil {
			return &ValidationError{Name: "author_nickname", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.author_nickname": %w`, err)}
		}
	}
	if v, ok := ecuo.mutation.Content(); ok {
		if err := editorialcomment.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.content": %w`, err)}
		}
	}
	if v, ok := ecuo.mutation.ContentHTML(); ok {
		if err := editorialcomment.ContentHTMLValidator(v); err != nil {
			return &ValidationError{Name: "content_html", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.content_html": %w`, err)}
		}
	}
	if v, ok := ecuo.mutation.BlockID(); ok {
		if err := editorialcomment.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.block_id": %w`, err)}
		}
	}
	if v, ok := ecuo.mutation.GetType(); ok {
		if err := editorialcomment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.type": %w`, err)}
		}
	}
	if v, ok := ecuo.mutation.ResolvedByName(); ok {
		if err := editorialcomment.ResolvedByNameValidator(v); err != nil {
			return &ValidationError{Name: "resolved_by_name", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.resolved_by_name": %w`, err)}
		}
	}
	return nil
}

func (ecuo *EditorialCommentUpdateOne) sqlSave(ctx context.Context) (_node *EditorialComment, err error) {
	if err := ecuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editorialcomment.Table, editorialcomment.Columns, sqlgraph.NewFieldSpec(editorialcomment.FieldID, field.TypeUint))
	id, ok := ecuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EditorialComment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ecuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editorialcomment.FieldID)
		for _, f := range fields {
			if !editorialcomment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != editorialcomment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ecuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ecuo.mutation.VersionID(); ok {
		_spec.SetField(editorialcomment.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := ecuo.mutation.AddedVersionID(); ok {
		_spec.AddField(editorialcomment.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := ecuo.mutation.AuthorID(); ok {
		_spec.SetField(editorialcomment.FieldAuthorID, field.TypeUint, value)
	}
	if value, ok := ecuo.mutation.AddedAuthorID(); ok {
		_spec.AddField(editorialcomment.FieldAuthorID, field.TypeUint, value)
	}
	if value, ok := ecuo.mutation.AuthorNickname(); ok {
		_spec.SetField(editorialcomment.FieldAuthorNickname, field.TypeString, value)
	}
	if ecuo.mutation.AuthorNicknameCleared() {
		_spec.ClearField(editorialcomment.FieldAuthorNickname, field.TypeString)
	}
	if value, ok := ecuo.mutation.Content(); ok {
		_spec.SetField(editorialcomment.FieldContent, field.TypeString, value)
	}
	if value, ok := ecuo.mutation.ContentHTML(); ok {
		_spec.SetField(editorialcomment.FieldContentHTML, field.TypeString, value)
	}
	if value, ok := ecuo.mutation.BlockID(); ok {
		_spec.SetField(editorialcomment.FieldBlockID, field.TypeString, value)
	}
	if ecuo.mutation.BlockIDCleared() {
		_spec.ClearField(editorialcomment.FieldBlockID, field.TypeString)
	}
	if value, ok := ecuo.mutation.GetType(); ok {
		_spec.SetField(editorialcomment.FieldType, field.TypeString, value)
	}
	if value, ok := ecuo.mutation.ResolvedByID(); ok {
		_spec.SetField(editorialcomment.FieldResolvedByID, field.TypeUint, value)
	}
	if value, ok := ecuo.mutation.AddedResolvedByID(); ok {
		_spec.AddField(editorialcomment.FieldResolvedByID, field.TypeUint, value)
	}
	if ecuo.mutation.ResolvedByIDCleared() {
		_spec.ClearField(editorialcomment.FieldResolvedByID, field.TypeUint)
	}
	if value, ok := ecuo.mutation.ResolvedByName(); ok {
		_spec.SetField(editorialcomment.FieldResolvedByName, field.TypeString, value)
	}
	if ecuo.mutation.ResolvedByNameCleared() {
		_spec.ClearField(editorialcomment.FieldResolvedByName, field.TypeString)
	}
	if value, ok := ecuo.mutation.ResolvedAt(); ok {
		_spec.SetField(editorialcomment.FieldResolvedAt, field.TypeTime, value)
	}
	if ecuo.mutation.ResolvedAtCleared() {
		_spec.ClearField(editorialcomment.FieldResolvedAt, field.TypeTime)
	}
	_node = &EditorialComment{config: ecuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ecuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editorialcomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ecuo.mutation.done = true
	return _node, nil
}
