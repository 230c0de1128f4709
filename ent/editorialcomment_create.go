// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
)

// EditorialCommentCreate is the builder for creating a EditorialComment entity.
type EditorialCommentCreate struct {
	config
	mutation *EditorialCommentMutation
	hooks    []Hook
}

// SetVersionID sets the "version_id" field.
func (ecc *EditorialCommentCreate) SetVersionID(u uint) *EditorialCommentCreate {
	ecc.mutation.SetVersionID(u)
	return ecc
}

// SetAuthorID sets the "author_id" field.
func (ecc *EditorialCommentCreate) SetAuthorID(u uint) *EditorialCommentCreate {
	ecc.mutation.SetAuthorID(u)
	return ecc
}

// SetAuthorNickname sets the "author_nickname" field.
func (ecc *EditorialCommentCreate) SetAuthorNickname(s string) *EditorialCommentCreate {
	ecc.mutation.SetAuthorNickname(s)
	return ecc
}

// SetNillableAuthorNickname sets the "author_nickname" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableAuthorNickname(s *string) *EditorialCommentCreate {
	if s != nil {
		ecc.SetAuthorNickname(*s)
	}
	return ecc
}

// SetContent sets the "content" field.
func (ecc *EditorialCommentCreate) SetContent(s string) *EditorialCommentCreate {
	ecc.mutation.SetContent(s)
	return ecc
}

// SetContentHTML sets the "content_html" field.
func (ecc *EditorialCommentCreate) SetContentHTML(s string) *EditorialCommentCreate {
	ecc.mutation.SetContentHTML(s)
	return ecc
}

// SetBlockID sets the "block_id" field.
func (ecc *EditorialCommentCreate) SetBlockID(s string) *EditorialCommentCreate {
	ecc.mutation.SetBlockID(s)
	return ecc
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableBlockID(s *string) *EditorialCommentCreate {
	if s != nil {
		ecc.SetBlockID(*s)
	}
	return ecc
}

// SetType sets the "type" field.
func (ecc *EditorialCommentCreate) SetType(s string) *EditorialCommentCreate {
	ecc.mutation.SetType(s)
	return ecc
}

// SetNillableType sets the "type" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableType(s *string) *EditorialCommentCreate {
	if s != nil {
		ecc.SetType(*s)
	}
	return ecc
}

// SetResolvedByID sets the "resolved_by_id" field.
func (ecc *EditorialCommentCreate) SetResolvedByID(u uint) *EditorialCommentCreate {
	ecc.mutation.SetResolvedByID(u)
	return ecc
}

// SetNillableResolvedByID sets the "resolved_by_id" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableResolvedByID(u *uint) *EditorialCommentCreate {
	if u != nil {
		ecc.SetResolvedByID(*u)
	}
	return ecc
}

// SetResolvedByName sets the "resolved_by_name" field.
func (ecc *EditorialCommentCreate) SetResolvedByName(s string) *EditorialCommentCreate {
	ecc.mutation.SetResolvedByName(s)
	return ecc
}

// SetNillableResolvedByName sets the "resolved_by_name" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableResolvedByName(s *string) *EditorialCommentCreate {
	if s != nil {
		ecc.SetResolvedByName(*s)
	}
	return ecc
}

// SetResolvedAt sets the "resolved_at" field.
func (ecc *EditorialCommentCreate) SetResolvedAt(t time.Time) *EditorialCommentCreate {
	ecc.mutation.SetResolvedAt(t)
	return ecc
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableResolvedAt(t *time.Time) *EditorialCommentCreate {
	if t != nil {
		ecc.SetResolvedAt(*t)
	}
	return ecc
}

// SetCreatedAt sets the "created_at" field.
func (ecc *EditorialCommentCreate) SetCreatedAt(t time.Time) *EditorialCommentCreate {
	ecc.mutation.SetCreatedAt(t)
	return ecc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ecc *EditorialCommentCreate) SetNillableCreatedAt(t *time.Time) *EditorialCommentCreate {
	if t != nil {
		ecc.SetCreatedAt(*t)
	}
	return ecc
}

// SetID sets the "id" field.
func (ecc *EditorialCommentCreate) SetID(u uint) *EditorialCommentCreate {
	ecc.mutation.SetID(u)
	return ecc
}

// Mutation returns the EditorialCommentMutation object of the builder.
func (ecc *EditorialCommentCreate) Mutation() *EditorialCommentMutation {
	return ecc.mutation
}

// Save creates the EditorialComment in the database.
func (ecc *EditorialCommentCreate) Save(ctx context.Context) (*EditorialComment, error) {
	ecc.defaults()
	return withHooks(ctx, ecc.sqlSave, ecc.mutation, ecc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ecc *EditorialCommentCreate) SaveX(ctx context.Context) *EditorialComment {
	v, err := ecc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecc *EditorialCommentCreate) Exec(ctx context.Context) error {
	_, err := ecc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecc *EditorialCommentCreate) ExecX(ctx context.Context) {
	if err := ecc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ecc *EditorialCommentCreate) defaults() {
	if _, ok := ecc.mutation.GetType(); !ok {
		v := editorialcomment.DefaultType
		ecc.mutation.SetType(v)
	}
	if _, ok := ecc.mutation.CreatedAt(); !ok {
		v := editorialcomment.DefaultCreatedAt()
		ecc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ecc *EditorialCommentCreate) check() error {
	if _, ok := ecc.mutation.VersionID(); !ok {
		return &ValidationError{Name: "version_id", err: errors.New(`ent: missing required field "EditorialComment.version_id"`)}
	}
	if _, ok := ecc.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "EditorialComment.author_id"`)}
	}
	if v, ok := ecc.mutation.AuthorNickname(); ok {
		if err := editorialcomment.AuthorNicknameValidator(v); err != nil {
			return &ValidationError{Name: "author_nickname", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.author_nickname": %w`, err)}
		}
	}
	if _, ok := ecc.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "EditorialComment.content"`)}
	}
	if v, ok := ecc.mutation.Content(); ok {
		if err := editorialcomment.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.content": %w`, err)}
		}
	}
	if _, ok := ecc.mutation.ContentHTML(); !ok {
		return &ValidationError{Name: "content_html", err: errors.New(`ent: missing required field "EditorialComment.content_html"`)}
	}
	if v, ok := ecc.mutation.ContentHTML(); ok {
		if err := editorialcomment.ContentHTMLValidator(v); err != nil {
			return &ValidationError{Name: "content_html", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.content_html": %w`, err)}
		}
	}
	if v, ok := ecc.mutation.BlockID(); ok {
		if err := editorialcomment.BlockIDValidator(v); err != nil {
			return &ValidationError{Name: "block_id", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.block_id": %w`, err)}
		}
	}
	if _, ok := ecc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "EditorialComment.type"`)}
	}
	if v, ok := ecc.mutation.GetType(); ok {
		if err := editorialcomment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.type": %w`, err)}
		}
	}
	if v, ok := ecc.mutation.ResolvedByName(); ok {
		if err := editorialcomment.ResolvedByNameValidator(v); err != nil {
			return &ValidationError{Name: "resolved_by_name", err: fmt.Errorf(`ent: validator failed for field "EditorialComment.resolved_by_name": %w`, err)}
		}
	}
	if _, ok := ecc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EditorialComment.created_at"`)}
	}
	return nil
}

func (ecc *EditorialCommentCreate) sqlSave(ctx context.Context) (*EditorialComment, error) {
	if err := ecc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ecc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ecc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	ecc.mutation.id = &_node.ID
	ecc.mutation.done = true
	return _node, nil
}

func (ecc *EditorialCommentCreate) createSpec() (*EditorialComment, *sqlgraph.CreateSpec) {
	var (
		_node = &EditorialComment{config: ecc.config}
		_spec = sqlgraph.NewCreateSpec(editorialcomment.Table, sqlgraph.NewFieldSpec(editorialcomment.FieldID, field.TypeUint))
	)
	if id, ok := ecc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ecc.mutation.VersionID(); ok {
		_spec.SetField(editorialcomment.FieldVersionID, field.TypeUint, value)
		_node.VersionID = value
	}
	if value, ok := ecc.mutation.AuthorID(); ok {
		_spec.SetField(editorialcomment.FieldAuthorID, field.TypeUint, value)
		_node.AuthorID = value
	}
	if value, ok := ecc.mutation.AuthorNickname(); ok {
		_spec.SetField(editorialcomment.FieldAuthorNickname, field.TypeString, value)
		_node.AuthorNickname = value
	}
	if value, ok := ecc.mutation.Content(); ok {
		_spec.SetField(editorialcomment.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := ecc.mutation.ContentHTML(); ok {
		_spec.SetField(editorialcomment.FieldContentHTML, field.TypeString, value)
		_node.ContentHTML = value
	}
	if value, ok := ecc.mutation.BlockID(); ok {
		_spec.SetField(editorialcomment.FieldBlockID, field.TypeString, value)
		_node.BlockID = &value
	}
	if value, ok := ecc.mutation.GetType(); ok {
		_spec.SetField(editorialcomment.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := ecc.mutation.ResolvedByID(); ok {
		_spec.SetField(editorialcomment.FieldResolvedByID, field.TypeUint, value)
		_node.ResolvedByID = &value
	}
	if value, ok := ecc.mutation.ResolvedByName(); ok {
		_spec.SetField(editorialcomment.FieldResolvedByName, field.TypeString, value)
		_node.ResolvedByName = value
	}
	if value, ok := ecc.mutation.ResolvedAt(); ok {
		_spec.SetField(editorialcomment.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := ecc.mutation.CreatedAt(); ok {
		_spec.SetField(editorialcomment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EditorialCommentCreateBulk is the builder for creating many EditorialComment entities in bulk.
type EditorialCommentCreateBulk struct {
	config
	err      error
	builders []*EditorialCommentCreate
}

// Save creates the EditorialComment entities in the database.
func (eccb *EditorialCommentCreateBulk) Save(ctx context.Context) ([]*EditorialComment, error) {
	if eccb.err != nil {
		return nil, eccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(eccb.builders))
	nodes := make([]*EditorialComment, len(eccb.builders))
	mutators := make([]Mutator, len(eccb.builders))
	for i := range eccb.builders {
		func(i int, root context.Context) {
			builder := eccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EditorialCommentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, eccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, eccb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, eccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (eccb *EditorialCommentCreateBulk) SaveX(ctx context.Context) []*EditorialComment {
	v, err := eccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (eccb *EditorialCommentCreateBulk) Exec(ctx context.Context) error {
	_, err := eccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eccb *EditorialCommentCreateBulk) ExecX(ctx context.Context) {
	if err := eccb.Exec(ctx); err != nil {
		panic(err)
	}
}
