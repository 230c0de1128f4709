// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// ContentVersionCreate is the builder for creating a ContentVersion entity.
type ContentVersionCreate struct {
	config
	mutation *ContentVersionMutation
	hooks    []Hook
}

// SetContentID sets the "content_id" field.
func (cvc *ContentVersionCreate) SetContentID(u uint) *ContentVersionCreate {
	cvc.mutation.SetContentID(u)
	return cvc
}

// SetVersion sets the "version" field.
func (cvc *ContentVersionCreate) SetVersion(i int) *ContentVersionCreate {
	cvc.mutation.SetVersion(i)
	return cvc
}

// SetTitle sets the "title" field.
func (cvc *ContentVersionCreate) SetTitle(s string) *ContentVersionCreate {
	cvc.mutation.SetTitle(s)
	return cvc
}

// SetContentMd sets the "content_md" field.
func (cvc *ContentVersionCreate) SetContentMd(s string) *ContentVersionCreate {
	cvc.mutation.SetContentMd(s)
	return cvc
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableContentMd(s *string) *ContentVersionCreate {
	if s != nil {
		cvc.SetContentMd(*s)
	}
	return cvc
}

// SetContentHTML sets the "content_html" field.
func (cvc *ContentVersionCreate) SetContentHTML(s string) *ContentVersionCreate {
	cvc.mutation.SetContentHTML(s)
	return cvc
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableContentHTML(s *string) *ContentVersionCreate {
	if s != nil {
		cvc.SetContentHTML(*s)
	}
	return cvc
}

// SetBlocks sets the "blocks" field.
func (cvc *ContentVersionCreate) SetBlocks(mb []model.ContentBlock) *ContentVersionCreate {
	cvc.mutation.SetBlocks(mb)
	return cvc
}

// SetSummary sets the "summary" field.
func (cvc *ContentVersionCreate) SetSummary(s string) *ContentVersionCreate {
	cvc.mutation.SetSummary(s)
	return cvc
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableSummary(s *string) *ContentVersionCreate {
	if s != nil {
		cvc.SetSummary(*s)
	}
	return cvc
}

// SetKeywords sets the "keywords" field.
func (cvc *ContentVersionCreate) SetKeywords(s string) *ContentVersionCreate {
	cvc.mutation.SetKeywords(s)
	return cvc
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableKeywords(s *string) *ContentVersionCreate {
	if s != nil {
		cvc.SetKeywords(*s)
	}
	return cvc
}

// SetWordCount sets the "word_count" field.
func (cvc *ContentVersionCreate) SetWordCount(i int) *ContentVersionCreate {
	cvc.mutation.SetWordCount(i)
	return cvc
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableWordCount(i *int) *ContentVersionCreate {
	if i != nil {
		cvc.SetWordCount(*i)
	}
	return cvc
}

// SetStatus sets the "status" field.
func (cvc *ContentVersionCreate) SetStatus(s string) *ContentVersionCreate {
	cvc.mutation.SetStatus(s)
	return cvc
}

// SetIsActive sets the "is_active" field.
func (cvc *ContentVersionCreate) SetIsActive(b bool) *ContentVersionCreate {
	cvc.mutation.SetIsActive(b)
	return cvc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableIsActive(b *bool) *ContentVersionCreate {
	if b != nil {
		cvc.SetIsActive(*b)
	}
	return cvc
}

// SetEditorID sets the "editor_id" field.
func (cvc *ContentVersionCreate) SetEditorID(u uint) *ContentVersionCreate {
	cvc.mutation.SetEditorID(u)
	return cvc
}

// SetEditorNickname sets the "editor_nickname" field.
func (cvc *ContentVersionCreate) SetEditorNickname(s string) *ContentVersionCreate {
	cvc.mutation.SetEditorNickname(s)
	return cvc
}

// SetNillableEditorNickname sets the "editor_nickname" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableEditorNickname(s *string) *ContentVersionCreate {
	if s != nil {
		cvc.SetEditorNickname(*s)
	}
	return cvc
}

// SetChangeNote sets the "change_note" field.
func (cvc *ContentVersionCreate) SetChangeNote(s string) *ContentVersionCreate {
	cvc.mutation.SetChangeNote(s)
	return cvc
}

// SetNillableChangeNote sets the "change_note" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableChangeNote(s *string) *ContentVersionCreate {
	if s != nil {
		cvc.SetChangeNote(*s)
	}
	return cvc
}

// SetCreatedAt sets the "created_at" field.
func (cvc *ContentVersionCreate) SetCreatedAt(t time.Time) *ContentVersionCreate {
	cvc.mutation.SetCreatedAt(t)
	return cvc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cvc *ContentVersionCreate) SetNillableCreatedAt(t *time.Time) *ContentVersionCreate {
	if t != nil {
		cvc.SetCreatedAt(*t)
	}
	return cvc
}

// SetID sets the "id" field.
func (cvc *ContentVersionCreate) SetID(u uint) *ContentVersionCreate {
	cvc.mutation.SetID(u)
	return cvc
}

// Mutation returns the ContentVersionMutation object of the builder.
func (cvc *ContentVersionCreate) Mutation() *ContentVersionMutation {
	return cvc.mutation
}

// Save creates the ContentVersion in the database.
func (cvc *ContentVersionCreate) Save(ctx context.Context) (*ContentVersion, error) {
	cvc.defaults()
	return withHooks(ctx, cvc.sqlSave, cvc.mutation, cvc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cvc *ContentVersionCreate) SaveX(ctx context.Context) *ContentVersion {
	v, err := cvc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cvc *ContentVersionCreate) Exec(ctx context.Context) error {
	_, err := cvc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cvc *ContentVersionCreate) ExecX(ctx context.Context) {
	if err := cvc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cvc *ContentVersionCreate) defaults() {
	if _, ok := cvc.mutation.WordCount(); !ok {
		v := contentversion.DefaultWordCount
		cvc.mutation.SetWordCount(v)
	}
	if _, ok := cvc.mutation.IsActive(); !ok {
		v := contentversion.DefaultIsActive
		cvc.mutation.SetIsActive(v)
	}
	if _, ok := cvc.mutation.CreatedAt(); !ok {
		v := contentversion.DefaultCreatedAt()
		cvc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cvc *ContentVersionCreate) check() error {
	if _, ok := cvc.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "ContentVersion.content_id"`)}
	}
	if _, ok := cvc.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ContentVersion.version"`)}
	}
	if v, ok := cvc.mutation.Version(); ok {
		if err := contentversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.version": %w`, err)}
		}
	}
	if _, ok := cvc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ContentVersion.title"`)}
	}
	if v, ok := cvc.mutation.Title(); ok {
		if err := contentversion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.title": %w`, err)}
		}
	}
	if v, ok := cvc.mutation.Summary(); ok {
		if err := contentversion.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.summary": %w`, err)}
		}
	}
	if _, ok := cvc.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "ContentVersion.word_count"`)}
	}
	if v, ok := cvc.mutation.WordCount(); ok {
		if err := contentversion.WordCountValidator(v); err != nil {
			return &ValidationError{Name: "word_count", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.word_count": %w`, err)}
		}
	}
	if _, ok := cvc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ContentVersion.status"`)}
	}
	if v, ok := cvc.mutation.Status(); ok {
		if err := contentversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.status": %w`, err)}
		}
	}
	if _, ok := cvc.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ContentVersion.is_active"`)}
	}
	if _, ok := cvc.mutation.EditorID(); !ok {
		return &ValidationError{Name: "editor_id", err: errors.New(`ent: missing required field "ContentVersion.editor_id"`)}
	}
	if v, ok := cvc.mutation.ChangeNote(); ok {
		if err := contentversion.ChangeNoteValidator(v); err != nil {
			return &ValidationError{Name: "change_note", err: fmt.Errorf(`ent: validator failed for field "ContentVersion.change_note": %w`, err)}
		}
	}
	if _, ok := cvc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentVersion.created_at"`)}
	}
	return nil
}

func (cvc *ContentVersionCreate) sqlSave(ctx context.Context) (*ContentVersion, error) {
	if err := cvc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cvc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cvc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	cvc.mutation.id = &_node.ID
	cvc.mutation.done = true
	return _node, nil
}

func (cvc *ContentVersionCreate) createSpec() (*ContentVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentVersion{config: cvc.config}
		_spec = sqlgraph.NewCreateSpec(contentversion.Table, sqlgraph.NewFieldSpec(contentversion.FieldID, field.TypeUint))
	)
	if id, ok := cvc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cvc.mutation.ContentID(); ok {
		_spec.SetField(contentversion.FieldContentID, field.TypeUint, value)
		_node.ContentID = value
	}
	if value, ok := cvc.mutation.Version(); ok {
		_spec.SetField(contentversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := cvc.mutation.Title(); ok {
		_spec.SetField(contentversion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := cvc.mutation.ContentMd(); ok {
		_spec.SetField(contentversion.FieldContentMd, field.TypeString, value)
		_node.ContentMd = value
	}
	if value, ok := cvc.mutation.ContentHTML(); ok {
		_spec.SetField(contentversion.FieldContentHTML, field.TypeString, value)
		_node.ContentHTML = value
	}
	if value, ok := cvc.mutation.Blocks(); ok {
		_spec.SetField(contentversion.FieldBlocks, field.TypeJSON, value)
		_node.Blocks = value
	}
	if value, ok := cvc.mutation.Summary(); ok {
		_spec.SetField(contentversion.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := cvc.mutation.Keywords(); ok {
		_spec.SetField(contentversion.FieldKeywords, field.TypeString, value)
		_node.Keywords = value
	}
	if value, ok := cvc.mutation.WordCount(); ok {
		_spec.SetField(contentversion.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := cvc.mutation.Status(); ok {
		_spec.SetField(contentversion.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := cvc.mutation.IsActive(); ok {
		_spec.SetField(contentversion.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := cvc.mutation.EditorID(); ok {
		_spec.SetField(contentversion.FieldEditorID, field.TypeUint, value)
		_node.EditorID = value
	}
	if value, ok := cvc.mutation.EditorNickname(); ok {
		_spec.SetField(contentversion.FieldEditorNickname, field.TypeString, value)
		_node.EditorNickname = value
	}
	if value, ok := cvc.mutation.ChangeNote(); ok {
		_spec.SetField(contentversion.FieldChangeNote, field.TypeString, value)
		_node.ChangeNote = value
	}
	if value, ok := cvc.mutation.CreatedAt(); ok {
		_spec.SetField(contentversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContentVersionCreateBulk is the builder for creating many ContentVersion entities in bulk.
type ContentVersionCreateBulk struct {
	config
	err      error
	builders []*ContentVersionCreate
}

// Save creates the ContentVersion entities in the database.
func (cvcb *ContentVersionCreateBulk) Save(ctx context.Context) ([]*ContentVersion, error) {
	if cvcb.err != nil {
		return nil, cvcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cvcb.builders))
	nodes := make([]*ContentVersion, len(cvcb.builders))
	mutators := make([]Mutator, len(cvcb.builders))
	for i := range cvcb.builders {
		func(i int, root context.Context) {
			builder := cvcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentVersionMutation)
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
					_, err = mutators[i+1].Mutate(root, cvcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cvcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cvcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cvcb *ContentVersionCreateBulk) SaveX(ctx context.Context) []*ContentVersion {
	v, err := cvcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cvcb *ContentVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := cvcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cvcb *ContentVersionCreateBulk) ExecX(ctx context.Context) {
	if err := cvcb.Exec(ctx); err != nil {
		panic(err)
	}
}
