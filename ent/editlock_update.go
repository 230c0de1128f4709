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
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// EditLockUpdate is the builder for updating EditLock entities.
type EditLockUpdate struct {
	config
	hooks    []Hook
	mutation *EditLockMutation
}

// Where appends a list predicates to the EditLockUpdate builder.
func (elu *EditLockUpdate) Where(ps ...predicate.EditLock) *EditLockUpdate {
	elu.mutation.Where(ps...)
	return elu
}

// SetContentID sets the "content_id" field.
func (elu *EditLockUpdate) SetContentID(u uint) *EditLockUpdate {
	elu.mutation.ResetContentID()
	elu.mutation.SetContentID(u)
	return elu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (elu *EditLockUpdate) SetNillableContentID(u *uint) *EditLockUpdate {
	if u != nil {
		elu.SetContentID(*u)
	}
	return elu
}

// AddContentID adds u to the "content_id" field.
func (elu *EditLockUpdate) AddContentID(u int) *EditLockUpdate {
	elu.mutation.AddContentID(u)
	return elu
}

// SetHolderID sets the "holder_id" field.
func (elu *EditLockUpdate) SetHolderID(u uint) *EditLockUpdate {
	elu.mutation.ResetHolderID()
	elu.mutation.SetHolderID(u)
	return elu
}

// SetNillableHolderID sets the "holder_id" field if the given value is not nil.
func (elu *EditLockUpdate) SetNillableHolderID(u *uint) *EditLockUpdate {
	if u != nil {
		elu.SetHolderID(*u)
	}
	return elu
}

// AddHolderID adds u to the "holder_id" field.
func (elu *EditLockUpdate) AddHolderID(u int) *EditLockUpdate {
	elu.mutation.AddHolderID(u)
	return elu
}

// SetHolderNickname sets the "holder_nickname" field.
func (elu *EditLockUpdate) SetHolderNickname(s string) *EditLockUpdate {
	elu.mutation.SetHolderNickname(s)
	return elu
}

// SetNillableHolderNickname sets the "holder_nickname" field if the given value is not nil.
func (elu *EditLockUpdate) SetNillableHolderNickname(s *string) *EditLockUpdate {
	if s != nil {
		elu.SetHolderNickname(*s)
	}
	return elu
}

// ClearHolderNickname clears the value of the "holder_nickname" field.
func (elu *EditLockUpdate) ClearHolderNickname() *EditLockUpdate {
	elu.mutation.ClearHolderNickname()
	return elu
}

// SetToken sets the "token" field.
func (elu *EditLockUpdate) SetToken(s string) *EditLockUpdate {
	elu.mutation.SetToken(s)
	return elu
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (elu *EditLockUpdate) SetNillableToken(s *string) *EditLockUpdate {
	if s != nil {
		elu.SetToken(*s)
	}
	return elu
}

// SetAcquiredAt sets the "acquired_at" field.
func (elu *EditLockUpdate) SetAcquiredAt(t time.Time) *EditLockUpdate {
	elu.mutation.SetAcquiredAt(t)
	return elu
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (elu *EditLockUpdate) SetNillableAcquiredAt(t *time.Time) *EditLockUpdate {
	if t != nil {
		elu.SetAcquiredAt(*t)
	}
	return elu
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (elu *EditLockUpdate) SetLastHeartbeatAt(t time.Time) *EditLockUpdate {
	elu.mutation.SetLastHeartbeatAt(t)
	return elu
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (elu *EditLockUpdate) SetNillableLastHeartbeatAt(t *time.Time) *EditLockUpdate {
	if t != nil {
		elu.SetLastHeartbeatAt(*t)
	}
	return elu
}

// Mutation returns the EditLockMutation object of the builder.
func (elu *EditLockUpdate) Mutation() *EditLockMutation {
	return elu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (elu *EditLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, elu.sqlSave, elu.mutation, elu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (elu *EditLockUpdate) SaveX(ctx context.Context) int {
	affected, err := elu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (elu *EditLockUpdate) Exec(ctx context.Context) error {
	_, err := elu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (elu *EditLockUpdate) ExecX(ctx context.Context) {
	if err := elu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (elu *EditLockUpdate) check() error {
	if v, ok := elu.mutation.HolderNickname(); ok {
		if err := editlock.HolderNicknameValidator(v); err != nil {
			return &ValidationError{Name: "holder_nickname", err: fmt.Errorf(`ent: validator failed for field "EditLock.holder_nickname": %w`, err)}
		}
	}
	if v, ok := elu.mutation.Token(); ok {
		if err := editlock.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "EditLock.token": %w`, err)}
		}
	}
	return nil
}

func (elu *EditLockUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := elu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(editlock.Table, editlock.Columns, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUint))
	if ps := elu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := elu.mutation.ContentID(); ok {
		_spec.SetField(editlock.FieldContentID, field.TypeUint, value)
	}
	if value, ok := elu.mutation.AddedContentID(); ok {
		_spec.AddField(editlock.FieldContentID, field.TypeUint, value)
	}
	if value, ok := elu.mutation.HolderID(); ok {
		_spec.SetField(editlock.FieldHolderID, field.TypeUint, value)
	}
	if value, ok := elu.mutation.AddedHolderID(); ok {
		_spec.AddField(editlock.FieldHolderID, field.TypeUint, value)
	}
	if value, ok := elu.mutation.HolderNickname(); ok {
		_spec.SetField(editlock.FieldHolderNickname, field.TypeString, value)
	}
	if elu.mutation.HolderNicknameCleared() {
		_spec.ClearField(editlock.FieldHolderNickname, field.TypeString)
	}
	if value, ok := elu.mutation.Token(); ok {
		_spec.SetField(editlock.FieldToken, field.TypeString, value)
	}
	if value, ok := elu.mutation.AcquiredAt(); ok {
		_spec.SetField(editlock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := elu.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(editlock.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, elu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	elu.mutation.done = true
	return n, nil
}

// EditLockUpdateOne is the builder for updating a single EditLock entity.
type EditLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditLockMutation
}

// SetContentID sets the "content_id" field.
func (eluo *EditLockUpdateOne) SetContentID(u uint) *EditLockUpdateOne {
	eluo.mutation.ResetContentID()
	eluo.mutation.SetContentID(u)
	return eluo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (eluo *EditLockUpdateOne) SetNillableContentID(u *uint) *EditLockUpdateOne {
	if u != nil {
		eluo.SetContentID(*u)
	}
	return eluo
}

// AddContentID adds u to the "content_id" field.
func (eluo *EditLockUpdateOne) AddContentID(u int) *EditLockUpdateOne {
	eluo.mutation.AddContentID(u)
	return eluo
}

// SetHolderID sets the "holder_id" field.
func (eluo *EditLockUpdateOne) SetHolderID(u uint) *EditLockUpdateOne {
	eluo.mutation.ResetHolderID()
	eluo.mutation.SetHolderID(u)
	return eluo
}

// SetNillableHolderID sets the "holder_id" field if the given value is not nil.
func (eluo *EditLockUpdateOne) SetNillableHolderID(u *uint) *EditLockUpdateOne {
	if u != nil {
		eluo.SetHolderID(*u)
	}
	return eluo
}

// AddHolderID adds u to the "holder_id" field.
func (eluo *EditLockUpdateOne) AddHolderID(u int) *EditLockUpdateOne {
	eluo.mutation.AddHolderID(u)
	return eluo
}

// SetHolderNickname sets the "holder_nickname" field.
func (eluo *EditLockUpdateOne) SetHolderNickname(s string) *EditLockUpdateOne {
	eluo.mutation.SetHolderNickname(s)
	return eluo
}

// SetNillableHolderNickname sets the "holder_nickname" field if the given value is not nil.
func (eluo *EditLockUpdateOne) SetNillableHolderNickname(s *string) *EditLockUpdateOne {
	if s != nil {
		eluo.SetHolderNickname(*s)
	}
	return eluo
}

// ClearHolderNickname clears the value of the "holder_nickname" field.
func (eluo *EditLockUpdateOne) ClearHolderNickname() *EditLockUpdateOne {
	eluo.mutation.ClearHolderNickname()
	return eluo
}

// SetToken sets the "token" field.
func (eluo *EditLockUpdateOne) SetToken(s string) *EditLockUpdateOne {
	eluo.mutation.SetToken(s)
	return eluo
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (eluo *EditLockUpdateOne) SetNillableToken(s *string) *EditLockUpdateOne {
	if s != nil {
		eluo.SetToken(*s)
	}
	return eluo
}

// SetAcquiredAt sets the "acquired_at" field.
func (eluo *EditLockUpdateOne) SetAcquiredAt(t time.Time) *EditLockUpdateOne {
	eluo.mutation.SetAcquiredAt(t)
	return eluo
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (eluo *EditLockUpdateOne) SetNillableAcquiredAt(t *time.Time) *EditLockUpdateOne {
	if t != nil {
		eluo.SetAcquiredAt(*t)
	}
	return eluo
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (eluo *EditLockUpdateOne) SetLastHeartbeatAt(t time.Time) *EditLockUpdateOne {
	eluo.mutation.SetLastHeartbeatAt(t)
	return eluo
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (eluo *EditLockUpdateOne) SetNillableLastHeartbeatAt(t *time.Time) *EditLockUpdateOne {
	if t != nil {
		eluo.SetLastHeartbeatAt(*t)
	}
	return eluo
}

// Mutation returns the EditLockMutation object of the builder.
func (eluo *EditLockUpdateOne) Mutation() *EditLockMutation {
	return eluo.mutation
}

// Where appends a list predicates to the EditLockUpdate builder.
func (eluo *EditLockUpdateOne) Where(ps ...predicate.EditLock) *EditLockUpdateOne {
	eluo.mutation.Where(ps...)
	return eluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (eluo *EditLockUpdateOne) Select(field string, fields ...string) *EditLockUpdateOne {
	eluo.fields = append([]string{field}, fields...)
	return eluo
}

// Save executes the query and returns the updated EditLock entity.
func (eluo *EditLockUpdateOne) Save(ctx context.Context) (*EditLock, error) {
	return withHooks(ctx, eluo.sqlSave, eluo.mutation, eluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eluo *EditLockUpdateOne) SaveX(ctx context.Context) *EditLock {
	node, err := eluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (eluo *EditLockUpdateOne) Exec(ctx context.Context) error {
	_, err := eluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eluo *EditLockUpdateOne) ExecX(ctx context.Context) {
	if err := eluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eluo *EditLockUpdateOne) check() error {
	if v, ok := eluo.mutation.HolderNickname(); ok {
		if err := editlock.HolderNicknameValidator(v); err != nil {
			return &ValidationError{Name: "holder_nickname", err: fmt.Errorf(`ent: validator failed for field "EditLock.holder_nickname": %w`, err)}
		}
	}
	if v, ok := eluo.mutation.Token(); ok {
		if err := editlock.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "EditLock.token": %w`, err)}
		}
	}
	return nil
}

func (eluo *EditLockUpdateOne) sqlSave(ctx context.Context) (_node *EditLock, err error) {
	if err := eluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editlock.Table, editlock.Columns, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUint))
	id, ok := eluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EditLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := eluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editlock.FieldID)
		for _, f := range fields {
			if !editlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != editlock.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := eluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eluo.mutation.ContentID(); ok {
		_spec.SetField(editlock.FieldContentID, field.TypeUint, value)
	}
	if value, ok := eluo.mutation.AddedContentID(); ok {
		_spec.AddField(editlock.FieldContentID, field.TypeUint, value)
	}
	if value, ok := eluo.mutation.HolderID(); ok {
		_spec.SetField(editlock.FieldHolderID, field.TypeUint, value)
	}
	if value, ok := eluo.mutation.AddedHolderID(); ok {
		_spec.AddField(editlock.FieldHolderID, field.TypeUint, value)
	}
	if value, ok := eluo.mutation.HolderNickname(); ok {
		_spec.SetField(editlock.FieldHolderNickname, field.TypeString, value)
	}
	if eluo.mutation.HolderNicknameCleared() {
		_spec.ClearField(editlock.FieldHolderNickname, field.TypeString)
	}
	if value, ok := eluo.mutation.Token(); ok {
		_spec.SetField(editlock.FieldToken, field.TypeString, value)
	}
	if value, ok := eluo.mutation.AcquiredAt(); ok {
		_spec.SetField(editlock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := eluo.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(editlock.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	_node = &EditLock{config: eluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, eluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	eluo.mutation.done = true
	return _node, nil
}
