// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// WorkflowTransitionCreate is the builder for creating a WorkflowTransition entity.
type WorkflowTransitionCreate struct {
	config
	mutation *WorkflowTransitionMutation
	hooks    []Hook
}

// SetVersionID sets the "version_id" field.
func (wtc *WorkflowTransitionCreate) SetVersionID(u uint) *WorkflowTransitionCreate {
	wtc.mutation.SetVersionID(u)
	return wtc
}

// SetFromStatus sets the "from_status" field.
func (wtc *WorkflowTransitionCreate) SetFromStatus(s string) *WorkflowTransitionCreate {
	wtc.mutation.SetFromStatus(s)
	return wtc
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (wtc *WorkflowTransitionCreate) SetNillableFromStatus(s *string) *WorkflowTransitionCreate {
	if s != nil {
		wtc.SetFromStatus(*s)
	}
	return wtc
}

// SetToStatus sets the "to_status" field.
func (wtc *WorkflowTransitionCreate) SetToStatus(s string) *WorkflowTransitionCreate {
	wtc.mutation.SetToStatus(s)
	return wtc
}

// SetActorID sets the "actor_id" field.
func (wtc *WorkflowTransitionCreate) SetActorID(u uint) *WorkflowTransitionCreate {
	wtc.mutation.SetActorID(u)
	return wtc
}

// SetActorNickname sets the "actor_nickname" field.
func (wtc *WorkflowTransitionCreate) SetActorNickname(s string) *WorkflowTransitionCreate {
	wtc.mutation.SetActorNickname(s)
	return wtc
}

// SetNillableActorNickname sets the "actor_nickname" field if the given value is not nil.
func (wtc *WorkflowTransitionCreate) SetNillableActorNickname(s *string) *WorkflowTransitionCreate {
	if s != nil {
		wtc.SetActorNickname(*s)
	}
	return wtc
}

// SetComment sets the "comment" field.
func (wtc *WorkflowTransitionCreate) SetComment(s string) *WorkflowTransitionCreate {
	wtc.mutation.SetComment(s)
	return wtc
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (wtc *WorkflowTransitionCreate) SetNillableComment(s *string) *WorkflowTransitionCreate {
	if s != nil {
		wtc.SetComment(*s)
	}
	return wtc
}

// SetCreatedAt sets the "created_at" field.
func (wtc *WorkflowTransitionCreate) SetCreatedAt(t time.Time) *WorkflowTransitionCreate {
	wtc.mutation.SetCreatedAt(t)
	return wtc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wtc *WorkflowTransitionCreate) SetNillableCreatedAt(t *time.Time) *WorkflowTransitionCreate {
	if t != nil {
		wtc.SetCreatedAt(*t)
	}
	return wtc
}

// SetID sets the "id" field.
func (wtc *WorkflowTransitionCreate) SetID(u uint) *WorkflowTransitionCreate {
	wtc.mutation.SetID(u)
	return wtc
}

// Mutation returns the WorkflowTransitionMutation object of the builder.
func (wtc *WorkflowTransitionCreate) Mutation() *WorkflowTransitionMutation {
	return wtc.mutation
}

// Save creates the WorkflowTransition in the database.
func (wtc *WorkflowTransitionCreate) Save(ctx context.Context) (*WorkflowTransition, error) {
	wtc.defaults()
	return withHooks(ctx, wtc.sqlSave, wtc.mutation, wtc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wtc *WorkflowTransitionCreate) SaveX(ctx context.Context) *WorkflowTransition {
	v, err := wtc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wtc *WorkflowTransitionCreate) Exec(ctx context.Context) error {
	_, err := wtc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtc *WorkflowTransitionCreate) ExecX(ctx context.Context) {
	if err := wtc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wtc *WorkflowTransitionCreate) defaults() {
	if _, ok := wtc.mutation.CreatedAt(); !ok {
		v := workflowtransition.DefaultCreatedAt()
		wtc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wtc *WorkflowTransitionCreate) check() error {
	if _, ok := wtc.mutation.VersionID(); !ok {
		return &ValidationError{Name: "version_id", err: errors.New(`ent: missing required field "WorkflowTransition.version_id"`)}
	}
	if v, ok := wtc.mutation.FromStatus(); ok {
		if err := workflowtransition.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.from_status": %w`, err)}
		}
	}
	if _, ok := wtc.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "WorkflowTransition.to_status"`)}
	}
	if v, ok := wtc.mutation.ToStatus(); ok {
		if err := workflowtransition.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.to_status": %w`, err)}
		}
	}
	if _, ok := wtc.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "WorkflowTransition.actor_id"`)}
	}
	if v, ok := wtc.mutation.Comment(); ok {
		if err := workflowtransition.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.comment": %w`, err)}
		}
	}
	if _, ok := wtc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowTransition.created_at"`)}
	}
	return nil
}

func (wtc *WorkflowTransitionCreate) sqlSave(ctx context.Context) (*WorkflowTransition, error) {
	if err := wtc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wtc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wtc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wtc.mutation.id = &_node.ID
	wtc.mutation.done = true
	return _node, nil
}

func (wtc *WorkflowTransitionCreate) createSpec() (*WorkflowTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowTransition{config: wtc.config}
		_spec = sqlgraph.NewCreateSpec(workflowtransition.Table, sqlgraph.NewFieldSpec(workflowtransition.FieldID, field.TypeUint))
	)
	if id, ok := wtc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wtc.mutation.VersionID(); ok {
		_spec.SetField(workflowtransition.FieldVersionID, field.TypeUint, value)
		_node.VersionID = value
	}
	if value, ok := wtc.mutation.FromStatus(); ok {
		_spec.SetField(workflowtransition.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = &value
	}
	if value, ok := wtc.mutation.ToStatus(); ok {
		_spec.SetField(workflowtransition.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := wtc.mutation.ActorID(); ok {
		_spec.SetField(workflowtransition.FieldActorID, field.TypeUint, value)
		_node.ActorID = value
	}
	if value, ok := wtc.mutation.ActorNickname(); ok {
		_spec.SetField(workflowtransition.FieldActorNickname, field.TypeString, value)
		_node.ActorNickname = value
	}
	if value, ok := wtc.mutation.Comment(); ok {
		_spec.SetField(workflowtransition.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := wtc.mutation.CreatedAt(); ok {
		_spec.SetField(workflowtransition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorkflowTransitionCreateBulk is the builder for creating many WorkflowTransition entities in bulk.
type WorkflowTransitionCreateBulk struct {
	config
	err      error
	builders []*WorkflowTransitionCreate
}

// Save creates the WorkflowTransition entities in the database.
func (wtcb *WorkflowTransitionCreateBulk) Save(ctx context.Context) ([]*WorkflowTransition, error) {
	if wtcb.err != nil {
		return nil, wtcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wtcb.builders))
	nodes := make([]*WorkflowTransition, len(wtcb.builders))
	mutators := make([]Mutator, len(wtcb.builders))
	for i := range wtcb.builders {
		func(i int, root context.Context) {
			builder := wtcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowTransitionMutation)
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
					_, err = mutators[i+1].Mutate(root, wtcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wtcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wtcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wtcb *WorkflowTransitionCreateBulk) SaveX(ctx context.Context) []*WorkflowTransition {
	v, err := wtcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wtcb *WorkflowTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := wtcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtcb *WorkflowTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := wtcb.Exec(ctx); err != nil {
		panic(err)
	}
}
