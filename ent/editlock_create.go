// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
)

// EditLockCreate is the builder for creating a EditLock entity.
type EditLockCreate struct {
	config
	mutation *EditLockMutation
	hooks    []Hook
}

// SetContentID sets the "content_id" field.
func (elc *EditLockCreate) SetContentID(u uint) *EditLockCreate {
	elc.mutation.SetContentID(u)
	return elc
}

// SetHolderID sets the "holder_id" field.
func (elc *EditLockCreate) SetHolderID(u uint) *EditLockCreate {
	elc.mutation.SetHolderID(u)
	return elc
}

// SetHolderNickname sets the "holder_nickname" field.
func (elc *EditLockCreate) SetHolderNickname(s string) *EditLockCreate {
	elc.mutation.SetHolderNickname(s)
	return elc
}

// SetNillableHolderNickname sets the "holder_nickname" field if the given value is not nil.
func (elc *EditLockCreate) SetNillableHolderNickname(s *string) *EditLockCreate {
	if s != nil {
		elc.SetHolderNickname(*s)
	}
	return elc
}

// SetToken sets the "token" field.
func (elc *EditLockCreate) SetToken(s string) *EditLockCreate {
	elc.mutation.SetToken(s)
	return elc
}

// SetAcquiredAt sets the "acquired_at" field.
func (elc *EditLockCreate) SetAcquiredAt(t time.Time) *EditLockCreate {
	elc.mutation.SetAcquiredAt(t)
	return elc
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (elc *EditLockCreate) SetNillableAcquiredAt(t *time.Time) *EditLockCreate {
	if t != nil {
		elc.SetAcquiredAt(*t)
	}
	return elc
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (elc *EditLockCreate) SetLastHeartbeatAt(t time.Time) *EditLockCreate {
	elc.mutation.SetLastHeartbeatAt(t)
	return elc
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (elc *EditLockCreate) SetNillableLastHeartbeatAt(t *time.Time) *EditLockCreate {
	if t != nil {
		elc.SetLastHeartbeatAt(*t)
	}
	return elc
}

// SetID sets the "id" field.
func (elc *EditLockCreate) SetID(u uint) *EditLockCreate {
	elc.mutation.SetID(u)
	return elc
}

// Mutation returns the EditLockMutation object of the builder.
func (elc *EditLockCreate) Mutation() *EditLockMutation {
	return elc.mutation
}

// Save creates the EditLock in the database.
func (elc *EditLockCreate) Save(ctx context.Context) (*EditLock, error) {
	elc.defaults()
	return withHooks(ctx, elc.sqlSave, elc.mutation, elc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (elc *EditLockCreate) SaveX(ctx context.Context) *EditLock {
	v, err := elc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (elc *EditLockCreate) Exec(ctx context.Context) error {
	_, err := elc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (elc *EditLockCreate) ExecX(ctx context.Context) {
	if err := elc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (elc *EditLockCreate) defaults() {
	if _, ok := elc.mutation.AcquiredAt(); !ok {
		v := editlock.DefaultAcquiredAt()
		elc.mutation.SetAcquiredAt(v)
	}
	if _, ok := elc.mutation.LastHeartbeatAt(); !ok {
		v := editlock.DefaultLastHeartbeatAt()
		elc.mutation.SetLastHeartbeatAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (elc *EditLockCreate) check() error {
	if _, ok := elc.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "EditLock.content_id"`)}
	}
	if _, ok := elc.mutation.HolderID(); !ok {
		return &ValidationError{Name: "holder_id", err: errors.New(`ent: missing required field "EditLock.holder_id"`)}
	}
	if v, ok := elc.mutation.HolderNickname(); ok {
		if err := editlock.HolderNicknameValidator(v); err != nil {
			return &ValidationError{Name: "holder_nickname", err: fmt.Errorf(`ent: validator failed for field "EditLock.holder_nickname": %w`, err)}
		}
	}
	if _, ok := elc.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "EditLock.token"`)}
	}
	if v, ok := elc.mutation.Token(); ok {
		if err := editlock.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "EditLock.token": %w`, err)}
		}
	}
	if _, ok := elc.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "EditLock.acquired_at"`)}
	}
	if _, ok := elc.mutation.LastHeartbeatAt(); !ok {
		return &ValidationError{Name: "last_heartbeat_at", err: errors.New(`ent: missing required field "EditLock.last_heartbeat_at"`)}
	}
	return nil
}

func (elc *EditLockCreate) sqlSave(ctx context.Context) (*EditLock, error) {
	if err := elc.check(); err != nil {
		return nil, err
	}
	_node, _spec := elc.createSpec()
	if err := sqlgraph.CreateNode(ctx, elc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	elc.mutation.id = &_node.ID
	elc.mutation.done = true
	return _node, nil
}

func (elc *EditLockCreate) createSpec() (*EditLock, *sqlgraph.CreateSpec) {
	var (
		_node = &EditLock{config: elc.config}
		_spec = sqlgraph.NewCreateSpec(editlock.Table, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUint))
	)
	if id, ok := elc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := elc.mutation.ContentID(); ok {
		_spec.SetField(editlock.FieldContentID, field.TypeUint, value)
		_node.ContentID = value
	}
	if value, ok := elc.mutation.HolderID(); ok {
		_spec.SetField(editlock.FieldHolderID, field.TypeUint, value)
		_node.HolderID = value
	}
	if value, ok := elc.mutation.HolderNickname(); ok {
		_spec.SetField(editlock.FieldHolderNickname, field.TypeString, value)
		_node.HolderNickname = value
	}
	if value, ok := elc.mutation.Token(); ok {
		_spec.SetField(editlock.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := elc.mutation.AcquiredAt(); ok {
		_spec.SetField(editlock.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := elc.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(editlock.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	return _node, _spec
}

// EditLockCreateBulk is the builder for creating many EditLock entities in bulk.
type EditLockCreateBulk struct {
	config
	err      error
	builders []*EditLockCreate
}

// Save creates the EditLock entities in the database.
func (elcb *EditLockCreateBulk) Save(ctx context.Context) ([]*EditLock, error) {
	if elcb.err != nil {
		return nil, elcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(elcb.builders))
	nodes := make([]*EditLock, len(elcb.builders))
	mutators := make([]Mutator, len(elcb.builders))
	for i := range elcb.builders {
		func(i int, root context.Context) {
			builder := elcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EditLockMutation)
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
					_, err = mutators[i+1].Mutate(root, elcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, elcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, elcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (elcb *EditLockCreateBulk) SaveX(ctx context.Context) []*EditLock {
	v, err := elcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (elcb *EditLockCreateBulk) Exec(ctx context.Context) error {
	_, err := elcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (elcb *EditLockCreateBulk) ExecX(ctx context.Context) {
	if err := elcb.Exec(ctx); err != nil {
		panic(err)
	}
}
