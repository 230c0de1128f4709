// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// WorkflowDefinitionUpdate is the builder for updating WorkflowDefinition entities.
type WorkflowDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowDefinitionMutation
}

// Where appends a list predicates to the WorkflowDefinitionUpdate builder.
func (wdu *WorkflowDefinitionUpdate) Where(ps ...predicate.WorkflowDefinition) *WorkflowDefinitionUpdate {
	wdu.mutation.Where(ps...)
	return wdu
}

// SetContentType sets the "content_type" field.
func (wdu *WorkflowDefinitionUpdate) SetContentType(s string) *WorkflowDefinitionUpdate {
	wdu.mutation.SetContentType(s)
	return wdu
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (wdu *WorkflowDefinitionUpdate) SetNillableContentType(s *string) *WorkflowDefinitionUpdate {
	if s != nil {
		wdu.SetContentType(*s)
	}
	return wdu
}

// SetName sets the "name" field.
func (wdu *WorkflowDefinitionUpdate) SetName(s string) *WorkflowDefinitionUpdate {
	wdu.mutation.SetName(s)
	return wdu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (wdu *WorkflowDefinitionUpdate) SetNillableName(s *string) *WorkflowDefinitionUpdate {
	if s != nil {
		wdu.SetName(*s)
	}
	return wdu
}

// SetStates sets the "states" field.
func (wdu *WorkflowDefinitionUpdate) SetStates(s []string) *WorkflowDefinitionUpdate {
	wdu.mutation.SetStates(s)
	return wdu
}

// AppendStates appends s to the "states" field.
func (wdu *WorkflowDefinitionUpdate) AppendStates(s []string) *WorkflowDefinitionUpdate {
	wdu.mutation.AppendStates(s)
	return wdu
}

// SetInitialState sets the "initial_state" field.
func (wdu *WorkflowDefinitionUpdate) SetInitialState(s string) *WorkflowDefinitionUpdate {
	wdu.mutation.SetInitialState(s)
	return wdu
}

// SetNillableInitialState sets the "initial_state" field if the given value is not nil.
func (wdu *WorkflowDefinitionUpdate) SetNillableInitialState(s *string) *WorkflowDefinitionUpdate {
	if s != nil {
		wdu.SetInitialState(*s)
	}
	return wdu
}

// SetPublishedState sets the "published_state" field.
func (wdu *WorkflowDefinitionUpdate) SetPublishedState(s string) *WorkflowDefinitionUpdate {
	wdu.mutation.SetPublishedState(s)
	return wdu
}

// SetNillablePublishedState sets the "published_state" field if the given value is not nil.
func (wdu *WorkflowDefinitionUpdate) SetNillablePublishedState(s *string) *WorkflowDefinitionUpdate {
	if s != nil {
		wdu.SetPublishedState(*s)
	}
	return wdu
}

// SetEdges sets the "edges" field.
func (wdu *WorkflowDefinitionUpdate) SetEdges(me []model.WorkflowEdge) *WorkflowDefinitionUpdate {
	wdu.mutation.SetEdges(me)
	return wdu
}

// AppendEdges appends me to the "edges" field.
func (wdu *WorkflowDefinitionUpdate) AppendEdges(me []model.WorkflowEdge) *WorkflowDefinitionUpdate {
	wdu.mutation.AppendEdges(me)
	return wdu
}

// SetPublishRoles sets the "publish_roles" field.
func (wdu *WorkflowDefinitionUpdate) SetPublishRoles(s []string) *WorkflowDefinitionUpdate {
	wdu.mutation.SetPublishRoles(s)
	return wdu
}

// AppendPublishRoles appends s to the "publish_roles" field.
func (wdu *WorkflowDefinitionUpdate) AppendPublishRoles(s []string) *WorkflowDefinitionUpdate {
	wdu.mutation.AppendPublishRoles(s)
	return wdu
}

// SetUpdatedAt sets the "updated_at" field.
func (wdu *WorkflowDefinitionUpdate) SetUpdatedAt(t time.Time) *WorkflowDefinitionUpdate {
	wdu.mutation.SetUpdatedAt(t)
	return wdu
}

// Mutation returns the WorkflowDefinitionMutation object of the builder.
func (wdu *WorkflowDefinitionUpdate) Mutation() *WorkflowDefinitionMutation {
	return wdu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wdu *WorkflowDefinitionUpdate) Save(ctx context.Context) (int, error) {
	wdu.defaults()
	return withHooks(ctx, wdu.sqlSave, wdu.mutation, wdu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wdu *WorkflowDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := wdu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wdu *WorkflowDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := wdu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wdu *WorkflowDefinitionUpdate) ExecX(ctx context.Context) {
	if err := wdu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wdu *WorkflowDefinitionUpdate) defaults() {
	if _, ok := wdu.mutation.UpdatedAt(); !ok {
		v := workflowdefinition.UpdateDefaultUpdatedAt()
		wdu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wdu *WorkflowDefinitionUpdate) check() error {
	if v, ok := wdu.mutation.ContentType(); ok {
		if err := workflowdefinition.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.content_type": %w`, err)}
		}
	}
	if v, ok := wdu.mutation.Name(); ok {
		if err := workflowdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.name": %w`, err)}
		}
	}
	if v, ok := wdu.mutation.InitialState(); ok {
		if err := workflowdefinition.InitialStateValidator(v); err != nil {
			return &ValidationError{Name: "initial_state", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.initial_state": %w`, err)}
		}
	}
	if v, ok := wdu.mutation.PublishedState(); ok {
		if err := workflowdefinition.PublishedStateValidator(v); err != nil {
			return &ValidationError{Name: "published_state", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.published_state": %w`, err)}
		}
	}
	return nil
}

func (wdu *WorkflowDefinitionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wdu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowdefinition.Table, workflowdefinition.Columns, sqlgraph.NewFieldSpec(workflowdefinition.FieldID, field.TypeUint))
	if ps := wdu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wdu.mutation.ContentType(); ok {
		_spec.SetField(workflowdefinition.FieldContentType, field.TypeString, value)
	}
	if value, ok := wdu.mutation.Name(); ok {
		_spec.SetField(workflowdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := wdu.mutation.States(); ok {
		_spec.SetField(workflowdefinition.FieldStates, field.TypeJSON, value)
	}
	if value, ok := wdu.mutation.AppendedStates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowdefinition.FieldStates, value)
		})
	}
	if value, ok := wdu.mutation.InitialState(); ok {
		_spec.SetField(workflowdefinition.FieldInitialState, field.TypeString, value)
	}
	if value, ok := wdu.mutation.PublishedState(); ok {
		_spec.SetField(workflowdefinition.FieldPublishedState, field.TypeString, value)
	}
	if value, ok := wdu.mutation.Edges(); ok {
		_spec.SetField(workflowdefinition.FieldEdges, field.TypeJSON, value)
	}
	if value, ok := wdu.mutation.AppendedEdges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowdefinition.FieldEdges, value)
		})
	}
	if value, ok := wdu.mutation.PublishRoles(); ok {
		_spec.SetField(workflowdefinition.FieldPublishRoles, field.TypeJSON, value)
	}
	if value, ok := wdu.mutation.AppendedPublishRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowdefinition.FieldPublishRoles, value)
		})
	}
	if value, ok := wdu.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wdu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wdu.mutation.done = true
	return n, nil
}

// WorkflowDefinitionUpdateOne is the builder for updating a single WorkflowDefinition entity.
type WorkflowDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowDefinitionMutation
}

// SetContentType sets the "content_type" field.
func (wduo *WorkflowDefinitionUpdateOne) SetContentType(s string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetContentType(s)
	return wduo
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (wduo *WorkflowDefinitionUpdateOne) SetNillableContentType(s *string) *WorkflowDefinitionUpdateOne {
	if s != nil {
		wduo.SetContentType(*s)
	}
	return wduo
}

// SetName sets the "name" field.
func (wduo *WorkflowDefinitionUpdateOne) SetName(s string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetName(s)
	return wduo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (wduo *WorkflowDefinitionUpdateOne) SetNillableName(s *string) *WorkflowDefinitionUpdateOne {
	if s != nil {
		wduo.SetName(*s)
	}
	return wduo
}

// SetStates sets the "states" field.
func (wduo *WorkflowDefinitionUpdateOne) SetStates(s []string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetStates(s)
	return wduo
}

// AppendStates appends s to the "states" field.
func (wduo *WorkflowDefinitionUpdateOne) AppendStates(s []string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.AppendStates(s)
	return wduo
}

// SetInitialState sets the "initial_state" field.
func (wduo *WorkflowDefinitionUpdateOne) SetInitialState(s string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetInitialState(s)
	return wduo
}

// SetNillableInitialState sets the "initial_state" field if the given value is not nil.
func (wduo *WorkflowDefinitionUpdateOne) SetNillableInitialState(s *string) *WorkflowDefinitionUpdateOne {
	if s != nil {
		wduo.SetInitialState(*s)
	}
	return wduo
}

// SetPublishedState sets the "published_state" field.
func (wduo *WorkflowDefinitionUpdateOne) SetPublishedState(s string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetPublishedState(s)
	return wduo
}

// SetNillablePublishedState sets the "published_state" field if the given value is not nil.
func (wduo *WorkflowDefinitionUpdateOne) SetNillablePublishedState(s *string) *WorkflowDefinitionUpdateOne {
	if s != nil {
		wduo.SetPublishedState(*s)
	}
	return wduo
}

// SetEdges sets the "edges" field.
func (wduo *WorkflowDefinitionUpdateOne) SetEdges(me []model.WorkflowEdge) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetEdges(me)
	return wduo
}

// AppendEdges appends me to the "edges" field.
func (wduo *WorkflowDefinitionUpdateOne) AppendEdges(me []model.WorkflowEdge) *WorkflowDefinitionUpdateOne {
	wduo.mutation.AppendEdges(me)
	return wduo
}

// SetPublishRoles sets the "publish_roles" field.
func (wduo *WorkflowDefinitionUpdateOne) SetPublishRoles(s []string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetPublishRoles(s)
	return wduo
}

// AppendPublishRoles appends s to the "publish_roles" field.
func (wduo *WorkflowDefinitionUpdateOne) AppendPublishRoles(s []string) *WorkflowDefinitionUpdateOne {
	wduo.mutation.AppendPublishRoles(s)
	return wduo
}

// SetUpdatedAt sets the "updated_at" field.
func (wduo *WorkflowDefinitionUpdateOne) SetUpdatedAt(t time.Time) *WorkflowDefinitionUpdateOne {
	wduo.mutation.SetUpdatedAt(t)
	return wduo
}

// Mutation returns the WorkflowDefinitionMutation object of the builder.
func (wduo *WorkflowDefinitionUpdateOne) Mutation() *WorkflowDefinitionMutation {
	return wduo.mutation
}

// Where appends a list predicates to the WorkflowDefinitionUpdate builder.
func (wduo *WorkflowDefinitionUpdateOne) Where(ps ...predicate.WorkflowDefinition) *WorkflowDefinitionUpdateOne {
	wduo.mutation.Where(ps...)
	return wduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wduo *WorkflowDefinitionUpdateOne) Select(field string, fields ...string) *WorkflowDefinitionUpdateOne {
	wduo.fields = append([]string{field}, fields...)
	return wduo
}

// Save executes the query and returns the updated WorkflowDefinition entity.
func (wduo *WorkflowDefinitionUpdateOne) Save(ctx context.Context) (*WorkflowDefinition, error) {
	wduo.defaults()
	return withHooks(ctx, wduo.sqlSave, wduo.mutation, wduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wduo *WorkflowDefinitionUpdateOne) SaveX(ctx context.Context) *WorkflowDefinition {
	node, err := wduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wduo *WorkflowDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := wduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wduo *WorkflowDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := wduo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wduo *WorkflowDefinitionUpdateOne) defaults() {
	if _, ok := wduo.mutation.UpdatedAt(); !ok {
		v := workflowdefinition.UpdateDefaultUpdatedAt()
		wduo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wduo *WorkflowDefinitionUpdateOne) check() error {
	if v, ok := wduo.mutation.ContentType(); ok {
		if err := workflowdefinition.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.content_type": %w`, err)}
		}
	}
	if v, ok := wduo.mutation.Name(); ok {
		if err := workflowdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.name": %w`, err)}
		}
	}
	if v, ok := wduo.mutation.InitialState(); ok {
		if err := workflowdefinition.InitialStateValidator(v); err != nil {
			return &ValidationError{Name: "initial_state", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.initial_state": %w`, err)}
		}
	}
	if v, ok := wduo.mutation.PublishedState(); ok {
		if err := workflowdefinition.PublishedStateValidator(v); err != nil {
			return &ValidationError{Name: "published_state", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.published_state": %w`, err)}
		}
	}
	return nil
}

func (wduo *WorkflowDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowDefinition, err error) {
	if err := wduo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowdefinition.Table, workflowdefinition.Columns, sqlgraph.NewFieldSpec(workflowdefinition.FieldID, field.TypeUint))
	id, ok := wduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowdefinition.FieldID)
		for _, f := range fields {
			if !workflowdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowdefinition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wduo.mutation.ContentType(); ok {
		_spec.SetField(workflowdefinition.FieldContentType, field.TypeString, value)
	}
	if value, ok := wduo.mutation.Name(); ok {
		_spec.SetField(workflowdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := wduo.mutation.States(); ok {
		_spec.SetField(workflowdefinition.FieldStates, field.TypeJSON, value)
	}
	if value, ok := wduo.mutation.AppendedStates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowdefinition.FieldStates, value)
		})
	}
	if value, ok := wduo.mutation.InitialState(); ok {
		_spec.SetField(workflowdefinition.FieldInitialState, field.TypeString, value)
	}
	if value, ok := wduo.mutation.PublishedState(); ok {
		_spec.SetField(workflowdefinition.FieldPublishedState, field.TypeString, value)
	}
	if value, ok := wduo.mutation.Edges(); ok {
		_spec.SetField(workflowdefinition.FieldEdges, field.TypeJSON, value)
	}
	if value, ok := wduo.mutation.AppendedEdges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowdefinition.FieldEdges, value)
		})
	}
	if value, ok := wduo.mutation.PublishRoles(); ok {
		_spec.SetField(workflowdefinition.FieldPublishRoles, field.TypeJSON, value)
	}
	if value, ok := wduo.mutation.AppendedPublishRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowdefinition.FieldPublishRoles, value)
		})
	}
	if value, ok := wduo.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkflowDefinition{config: wduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wduo.mutation.done = true
	return _node, nil
}
