// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

// WorkflowDefinitionCreate is the builder for creating a WorkflowDefinition entity.
type WorkflowDefinitionCreate struct {
	config
	mutation *WorkflowDefinitionMutation
	hooks    []Hook
}

// SetContentType sets the "content_type" field.
func (wdc *WorkflowDefinitionCreate) SetContentType(s string) *WorkflowDefinitionCreate {
	wdc.mutation.SetContentType(s)
	return wdc
}

// SetName sets the "name" field.
func (wdc *WorkflowDefinitionCreate) SetName(s string) *WorkflowDefinitionCreate {
	wdc.mutation.SetName(s)
	return wdc
}

// SetStates sets the "states" field.
func (wdc *WorkflowDefinitionCreate) SetStates(s []string) *WorkflowDefinitionCreate {
	wdc.mutation.SetStates(s)
	return wdc
}

// SetInitialState sets the "initial_state" field.
func (wdc *WorkflowDefinitionCreate) SetInitialState(s string) *WorkflowDefinitionCreate {
	wdc.mutation.SetInitialState(s)
	return wdc
}

// SetPublishedState sets the "published_state" field.
func (wdc *WorkflowDefinitionCreate) SetPublishedState(s string) *WorkflowDefinitionCreate {
	wdc.mutation.SetPublishedState(s)
	return wdc
}

// SetEdges sets the "edges" field.
func (wdc *WorkflowDefinitionCreate) SetEdges(me []model.WorkflowEdge) *WorkflowDefinitionCreate {
	wdc.mutation.SetEdges(me)
	return wdc
}

// SetPublishRoles sets the "publish_roles" field.
func (wdc *WorkflowDefinitionCreate) SetPublishRoles(s []string) *WorkflowDefinitionCreate {
	wdc.mutation.SetPublishRoles(s)
	return wdc
}

// SetCreatedAt sets the "created_at" field.
func (wdc *WorkflowDefinitionCreate) SetCreatedAt(t time.Time) *WorkflowDefinitionCreate {
	wdc.mutation.SetCreatedAt(t)
	return wdc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wdc *WorkflowDefinitionCreate) SetNillableCreatedAt(t *time.Time) *WorkflowDefinitionCreate {
	if t != nil {
		wdc.SetCreatedAt(*t)
	}
	return wdc
}

// SetUpdatedAt sets the "updated_at" field.
func (wdc *WorkflowDefinitionCreate) SetUpdatedAt(t time.Time) *WorkflowDefinitionCreate {
	wdc.mutation.SetUpdatedAt(t)
	return wdc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wdc *WorkflowDefinitionCreate) SetNillableUpdatedAt(t *time.Time) *WorkflowDefinitionCreate {
	if t != nil {
		wdc.SetUpdatedAt(*t)
	}
	return wdc
}

// SetID sets the "id" field.
func (wdc *WorkflowDefinitionCreate) SetID(u uint) *WorkflowDefinitionCreate {
	wdc.mutation.SetID(u)
	return wdc
}

// Mutation returns the WorkflowDefinitionMutation object of the builder.
func (wdc *WorkflowDefinitionCreate) Mutation() *WorkflowDefinitionMutation {
	return wdc.mutation
}

// Save creates the WorkflowDefinition in the database.
func (wdc *WorkflowDefinitionCreate) Save(ctx context.Context) (*WorkflowDefinition, error) {
	wdc.defaults()
	return withHooks(ctx, wdc.sqlSave, wdc.mutation, wdc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wdc *WorkflowDefinitionCreate) SaveX(ctx context.Context) *WorkflowDefinition {
	v, err := wdc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wdc *WorkflowDefinitionCreate) Exec(ctx context.Context) error {
	_, err := wdc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wdc *WorkflowDefinitionCreate) ExecX(ctx context.Context) {
	if err := wdc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wdc *WorkflowDefinitionCreate) defaults() {
	if _, ok := wdc.mutation.CreatedAt(); !ok {
		v := workflowdefinition.DefaultCreatedAt()
		wdc.mutation.SetCreatedAt(v)
	}
	if _, ok := wdc.mutation.UpdatedAt(); !ok {
		v := workflowdefinition.DefaultUpdatedAt()
		wdc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wdc *WorkflowDefinitionCreate) check() error {
	if _, ok := wdc.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "WorkflowDefinition.content_type"`)}
	}
	if v, ok := wdc.mutation.ContentType(); ok {
		if err := workflowdefinition.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.content_type": %w`, err)}
		}
	}
	if _, ok := wdc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowDefinition.name"`)}
	}
	if v, ok := wdc.mutation.Name(); ok {
		if err := workflowdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.name": %w`, err)}
		}
	}
	if _, ok := wdc.mutation.States(); !ok {
		return &ValidationError{Name: "states", err: errors.New(`ent: missing required field "WorkflowDefinition.states"`)}
	}
	if _, ok := wdc.mutation.InitialState(); !ok {
		return &ValidationError{Name: "initial_state", err: errors.New(`ent: missing required field "WorkflowDefinition.initial_state"`)}
	}
	if v, ok := wdc.mutation.InitialState(); ok {
		if err := workflowdefinition.InitialStateValidator(v); err != nil {
			return &ValidationError{Name: "initial_state", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.initial_state": %w`, err)}
		}
	}
	if _, ok := wdc.mutation.PublishedState(); !ok {
		return &ValidationError{Name: "published_state", err: errors.New(`ent: missing required field "WorkflowDefinition.published_state"`)}
	}
	if v, ok := wdc.mutation.PublishedState(); ok {
		if err := workflowdefinition.PublishedStateValidator(v); err != nil {
			return &ValidationError{Name: "published_state", err: fmt.Errorf(`ent: validator failed for field "WorkflowDefinition.published_state": %w`, err)}
		}
	}
	if _, ok := wdc.mutation.Edges(); !ok {
		return &ValidationError{Name: "edges", err: errors.New(`ent: missing required field "WorkflowDefinition.edges"`)}
	}
	if _, ok := wdc.mutation.PublishRoles(); !ok {
		return &ValidationError{Name: "publish_roles", err: errors.New(`ent: missing required field "WorkflowDefinition.publish_roles"`)}
	}
	if _, ok := wdc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowDefinition.created_at"`)}
	}
	if _, ok := wdc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowDefinition.updated_at"`)}
	}
	return nil
}

func (wdc *WorkflowDefinitionCreate) sqlSave(ctx context.Context) (*WorkflowDefinition, error) {
	if err := wdc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wdc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wdc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wdc.mutation.id = &_node.ID
	wdc.mutation.done = true
	return _node, nil
}

func (wdc *WorkflowDefinitionCreate) createSpec() (*WorkflowDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowDefinition{config: wdc.config}
		_spec = sqlgraph.NewCreateSpec(workflowdefinition.Table, sqlgraph.NewFieldSpec(workflowdefinition.FieldID, field.TypeUint))
	)
	if id, ok := wdc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wdc.mutation.ContentType(); ok {
		_spec.SetField(workflowdefinition.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := wdc.mutation.Name(); ok {
		_spec.SetField(workflowdefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := wdc.mutation.States(); ok {
		_spec.SetField(workflowdefinition.FieldStates, field.TypeJSON, value)
		_node.States = value
	}
	if value, ok := wdc.mutation.InitialState(); ok {
		_spec.SetField(workflowdefinition.FieldInitialState, field.TypeString, value)
		_node.InitialState = value
	}
	if value, ok := wdc.mutation.PublishedState(); ok {
		_spec.SetField(workflowdefinition.FieldPublishedState, field.TypeString, value)
		_node.PublishedState = value
	}
	if value, ok := wdc.mutation.Edges(); ok {
		_spec.SetField(workflowdefinition.FieldEdges, field.TypeJSON, value)
		_node.Edges = value
	}
	if value, ok := wdc.mutation.PublishRoles(); ok {
		_spec.SetField(workflowdefinition.FieldPublishRoles, field.TypeJSON, value)
		_node.PublishRoles = value
	}
	if value, ok := wdc.mutation.CreatedAt(); ok {
		_spec.SetField(workflowdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wdc.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowdefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkflowDefinitionCreateBulk is the builder for creating many WorkflowDefinition entities in bulk.
type WorkflowDefinitionCreateBulk struct {
	config
	err      error
	builders []*WorkflowDefinitionCreate
}

// Save creates the WorkflowDefinition entities in the database.
func (wdcb *WorkflowDefinitionCreateBulk) Save(ctx context.Context) ([]*WorkflowDefinition, error) {
	if wdcb.err != nil {
		return nil, wdcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wdcb.builders))
	nodes := make([]*WorkflowDefinition, len(wdcb.builders))
	mutators := make([]Mutator, len(wdcb.builders))
	for i := range wdcb.builders {
		func(i int, root context.Context) {
			builder := wdcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowDefinitionMutation)
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
					_, err = mutators[i+1].Mutate(root, wdcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wdcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wdcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wdcb *WorkflowDefinitionCreateBulk) SaveX(ctx context.Context) []*WorkflowDefinition {
	v, err := wdcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wdcb *WorkflowDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := wdcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wdcb *WorkflowDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := wdcb.Exec(ctx); err != nil {
		panic(err)
	}
}
