// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// WorkflowTransitionUpdate is the builder for updating WorkflowTransition entities.
type WorkflowTransitionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowTransitionMutation
}

// Where appends a list predicates to the WorkflowTransitionUpdate builder.
func (wtu *WorkflowTransitionUpdate) Where(ps ...predicate.WorkflowTransition) *WorkflowTransitionUpdate {
	wtu.mutation.Where(ps...)
	return wtu
}

// SetVersionID sets the "version_id" field.
func (wtu *WorkflowTransitionUpdate) SetVersionID(u uint) *WorkflowTransitionUpdate {
	wtu.mutation.ResetVersionID()
	wtu.mutation.SetVersionID(u)
	return wtu
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (wtu *WorkflowTransitionUpdate) SetNillableVersionID(u *uint) *WorkflowTransitionUpdate {
	if u != nil {
		wtu.SetVersionID(*u)
	}
	return wtu
}

// AddVersionID adds u to the "version_id" field.
func (wtu *WorkflowTransitionUpdate) AddVersionID(u int) *WorkflowTransitionUpdate {
	wtu.mutation.AddVersionID(u)
	return wtu
}

// SetFromStatus sets the "from_status" field.
func (wtu *WorkflowTransitionUpdate) SetFromStatus(s string) *WorkflowTransitionUpdate {
	wtu.mutation.SetFromStatus(s)
	return wtu
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (wtu *WorkflowTransitionUpdate) SetNillableFromStatus(s *string) *WorkflowTransitionUpdate {
	if s != nil {
		wtu.SetFromStatus(*s)
	}
	return wtu
}

// ClearFromStatus clears the value of the "from_status" field.
func (wtu *WorkflowTransitionUpdate) ClearFromStatus() *WorkflowTransitionUpdate {
	wtu.mutation.ClearFromStatus()
	return wtu
}

// SetToStatus sets the "to_status" field.
func (wtu *WorkflowTransitionUpdate) SetToStatus(s string) *WorkflowTransitionUpdate {
	wtu.mutation.SetToStatus(s)
	return wtu
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (wtu *WorkflowTransitionUpdate) SetNillableToStatus(s *string) *WorkflowTransitionUpdate {
	if s != nil {
		wtu.SetToStatus(*s)
	}
	return wtu
}

// SetActorID sets the "actor_id" field.
func (wtu *WorkflowTransitionUpdate) SetActorID(u uint) *WorkflowTransitionUpdate {
	wtu.mutation.ResetActorID()
	wtu.mutation.SetActorID(u)
	return wtu
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (wtu *WorkflowTransitionUpdate) SetNillableActorID(u *uint) *WorkflowTransitionUpdate {
	if u != nil {
		wtu.SetActorID(*u)
	}
	return wtu
}

// AddActorID adds u to the "actor_id" field.
func (wtu *WorkflowTransitionUpdate) AddActorID(u int) *WorkflowTransitionUpdate {
	wtu.mutation.AddActorID(u)
	return wtu
}

// SetActorNickname sets the "actor_nickname" field.
func (wtu *WorkflowTransitionUpdate) SetActorNickname(s string) *WorkflowTransitionUpdate {
	wtu.mutation.SetActorNickname(s)
	return wtu
}

// SetNillableActorNickname sets the "actor_nickname" field if the given value is not nil.
func (wtu *WorkflowTransitionUpdate) SetNillableActorNickname(s *string) *WorkflowTransitionUpdate {
	if s != nil {
		wtu.SetActorNickname(*s)
	}
	return wtu
}

// ClearActorNickname clears the value of the "actor_nickname" field.
func (wtu *WorkflowTransitionUpdate) ClearActorNickname() *WorkflowTransitionUpdate {
	wtu.mutation.ClearActorNickname()
	return wtu
}

// SetComment sets the "comment" field.
func (wtu *WorkflowTransitionUpdate) SetComment(s string) *WorkflowTransitionUpdate {
	wtu.mutation.SetComment(s)
	return wtu
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (wtu *WorkflowTransitionUpdate) SetNillableComment(s *string) *WorkflowTransitionUpdate {
	if s != nil {
		wtu.SetComment(*s)
	}
	return wtu
}

// ClearComment clears the value of the "comment" field.
func (wtu *WorkflowTransitionUpdate) ClearComment() *WorkflowTransitionUpdate {
	wtu.mutation.ClearComment()
	return wtu
}

// Mutation returns the WorkflowTransitionMutation object of the builder.
func (wtu *WorkflowTransitionUpdate) Mutation() *WorkflowTransitionMutation {
	return wtu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wtu *WorkflowTransitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wtu.sqlSave, wtu.mutation, wtu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wtu *WorkflowTransitionUpdate) SaveX(ctx context.Context) int {
	affected, err := wtu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wtu *WorkflowTransitionUpdate) Exec(ctx context.Context) error {
	_, err := wtu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtu *WorkflowTransitionUpdate) ExecX(ctx context.Context) {
	if err := wtu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wtu *WorkflowTransitionUpdate) check() error {
	if v, ok := wtu.mutation.FromStatus(); ok {
		if err := workflowtransition.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.from_status": %w`, err)}
		}
	}
	if v, ok := wtu.mutation.ToStatus(); ok {
		if err := workflowtransition.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.to_status": %w`, err)}
		}
	}
	if v, ok := wtu.mutation.Comment(); ok {
		if err := workflowtransition.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.comment": %w`, err)}
		}
	}
	return nil
}

func (wtu *WorkflowTransitionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wtu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowtransition.Table, workflowtransition.Columns, sqlgraph.NewFieldSpec(workflowtransition.FieldID, field.TypeUint))
	if ps := wtu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wtu.mutation.VersionID(); ok {
		_spec.SetField(workflowtransition.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := wtu.mutation.AddedVersionID(); ok {
		_spec.AddField(workflowtransition.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := wtu.mutation.FromStatus(); ok {
		_spec.SetField(workflowtransition.FieldFromStatus, field.TypeString, value)
	}
	if wtu.mutation.FromStatusCleared() {
		_spec.ClearField(workflowtransition.FieldFromStatus, field.TypeString)
	}
	if value, ok := wtu.mutation.ToStatus(); ok {
		_spec.SetField(workflowtransition.FieldToStatus, field.TypeString, value)
	}
	if value, ok := wtu.mutation.ActorID(); ok {
		_spec.SetField(workflowtransition.FieldActorID, field.TypeUint, value)
	}
	if value, ok := wtu.mutation.AddedActorID(); ok {
		_spec.AddField(workflowtransition.FieldActorID, field.TypeUint, value)
	}
	if value, ok := wtu.mutation.ActorNickname(); ok {
		_spec.SetField(workflowtransition.FieldActorNickname, field.TypeString, value)
	}
	if wtu.mutation.ActorNicknameCleared() {
		_spec.ClearField(workflowtransition.FieldActorNickname, field.TypeString)
	}
	if value, ok := wtu.mutation.Comment(); ok {
		_spec.SetField(workflowtransition.FieldComment, field.TypeString, value)
	}
	if wtu.mutation.CommentCleared() {
		_spec.ClearField(workflowtransition.FieldComment, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wtu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowtransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wtu.mutation.done = true
	return n, nil
}

// WorkflowTransitionUpdateOne is the builder for updating a single WorkflowTransition entity.
type WorkflowTransitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowTransitionMutation
}

// SetVersionID sets the "version_id" field.
func (wtuo *WorkflowTransitionUpdateOne) SetVersionID(u uint) *WorkflowTransitionUpdateOne {
	wtuo.mutation.ResetVersionID()
	wtuo.mutation.SetVersionID(u)
	return wtuo
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (wtuo *WorkflowTransitionUpdateOne) SetNillableVersionID(u *uint) *WorkflowTransitionUpdateOne {
	if u != nil {
		wtuo.SetVersionID(*u)
	}
	return wtuo
}

// AddVersionID adds u to the "version_id" field.
func (wtuo *WorkflowTransitionUpdateOne) AddVersionID(u int) *WorkflowTransitionUpdateOne {
	wtuo.mutation.AddVersionID(u)
	return wtuo
}

// SetFromStatus sets the "from_status" field.
func (wtuo *WorkflowTransitionUpdateOne) SetFromStatus(s string) *WorkflowTransitionUpdateOne {
	wtuo.mutation.SetFromStatus(s)
	return wtuo
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (wtuo *WorkflowTransitionUpdateOne) SetNillableFromStatus(s *string) *WorkflowTransitionUpdateOne {
	if s != nil {
		wtuo.SetFromStatus(*s)
	}
	return wtuo
}

// ClearFromStatus clears the value of the "from_status" field.
func (wtuo *WorkflowTransitionUpdateOne) ClearFromStatus() *WorkflowTransitionUpdateOne {
	wtuo.mutation.ClearFromStatus()
	return wtuo
}

// SetToStatus sets the "to_status" field.
func (wtuo *WorkflowTransitionUpdateOne) SetToStatus(s string) *WorkflowTransitionUpdateOne {
	wtuo.mutation.SetToStatus(s)
	return wtuo
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (wtuo *WorkflowTransitionUpdateOne) SetNillableToStatus(s *string) *WorkflowTransitionUpdateOne {
	if s != nil {
		wtuo.SetToStatus(*s)
	}
	return wtuo
}

// SetActorID sets the "actor_id" field.
func (wtuo *WorkflowTransitionUpdateOne) SetActorID(u uint) *WorkflowTransitionUpdateOne {
	wtuo.mutation.ResetActorID()
	wtuo.mutation.SetActorID(u)
	return wtuo
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (wtuo *WorkflowTransitionUpdateOne) SetNillableActorID(u *uint) *WorkflowTransitionUpdateOne {
	if u != nil {
		wtuo.SetActorID(*u)
	}
	return wtuo
}

// AddActorID adds u to the "actor_id" field.
func (wtuo *WorkflowTransitionUpdateOne) AddActorID(u int) *WorkflowTransitionUpdateOne {
	wtuo.mutation.AddActorID(u)
	return wtuo
}

// SetActorNickname sets the "actor_nickname" field.
func (wtuo *WorkflowTransitionUpdateOne) SetActorNickname(s string) *WorkflowTransitionUpdateOne {
	wtuo.mutation.SetActorNickname(s)
	return wtuo
}

// SetNillableActorNickname sets the "actor_nickname" field if the given value is not nil.
func (wtuo *WorkflowTransitionUpdateOne) SetNillableActorNickname(s *string) *WorkflowTransitionUpdateOne {
	if s != nil {
		wtuo.SetActorNickname(*s)
	}
	return wtuo
}

// ClearActorNickname clears the value of the "actor_nickname" field.
func (wtuo *WorkflowTransitionUpdateOne) ClearActorNickname() *WorkflowTransitionUpdateOne {
	wtuo.mutation.ClearActorNickname()
	return wtuo
}

// SetComment sets the "comment" field.
func (wtuo *WorkflowTransitionUpdateOne) SetComment(s string) *WorkflowTransitionUpdateOne {
	wtuo.mutation.SetComment(s)
	return wtuo
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (wtuo *WorkflowTransitionUpdateOne) SetNillableComment(s *string) *WorkflowTransitionUpdateOne {
	if s != nil {
		wtuo.SetComment(*s)
	}
	return wtuo
}

// ClearComment clears the value of the "comment" field.
func (wtuo *WorkflowTransitionUpdateOne) ClearComment() *WorkflowTransitionUpdateOne {
	wtuo.mutation.ClearComment()
	return wtuo
}

// Mutation returns the WorkflowTransitionMutation object of the builder.
func (wtuo *WorkflowTransitionUpdateOne) Mutation() *WorkflowTransitionMutation {
	return wtuo.mutation
}

// Where appends a list predicates to the WorkflowTransitionUpdate builder.
func (wtuo *WorkflowTransitionUpdateOne) Where(ps ...predicate.WorkflowTransition) *WorkflowTransitionUpdateOne {
	wtuo.mutation.Where(ps...)
	return wtuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wtuo *WorkflowTransitionUpdateOne) Select(field string, fields ...string) *WorkflowTransitionUpdateOne {
	wtuo.fields = append([]string{field}, fields...)
	return wtuo
}

// Save executes the query and returns the updated WorkflowTransition entity.
func (wtuo *WorkflowTransitionUpdateOne) Save(ctx context.Context) (*WorkflowTransition, error) {
	return withHooks(ctx, wtuo.sqlSave, wtuo.mutation, wtuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wtuo *WorkflowTransitionUpdateOne) SaveX(ctx context.Context) *WorkflowTransition {
	node, err := wtuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wtuo *WorkflowTransitionUpdateOne) Exec(ctx context.Context) error {
	_, err := wtuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtuo *WorkflowTransitionUpdateOne) ExecX(ctx context.Context) {
	if err := wtuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wtuo *WorkflowTransitionUpdateOne) check() error {
	if v, ok := wtuo.mutation.FromStatus(); ok {
		if err := workflowtransition.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.from_status": %w`, err)}
		}
	}
	if v, ok := wtuo.mutation.ToStatus(); ok {
		if err := workflowtransition.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.to_status": %w`, err)}
		}
	}
	if v, ok := wtuo.mutation.Comment(); ok {
		if err := workflowtransition.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "WorkflowTransition.comment": %w`, err)}
		}
	}
	return nil
}

func (wtuo *WorkflowTransitionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowTransition, err error) {
	if err := wtuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowtransition.Table, workflowtransition.Columns, sqlgraph.NewFieldSpec(workflowtransition.FieldID, field.TypeUint))
	id, ok := wtuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowTransition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wtuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowtransition.FieldID)
		for _, f := range fields {
			if !workflowtransition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowtransition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wtuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wtuo.mutation.VersionID(); ok {
		_spec.SetField(workflowtransition.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := wtuo.mutation.AddedVersionID(); ok {
		_spec.AddField(workflowtransition.FieldVersionID, field.TypeUint, value)
	}
	if value, ok := wtuo.mutation.FromStatus(); ok {
		_spec.SetField(workflowtransition.FieldFromStatus, field.TypeString, value)
	}
	if wtuo.mutation.FromStatusCleared() {
		_spec.ClearField(workflowtransition.FieldFromStatus, field.TypeString)
	}
	if value, ok := wtuo.mutation.ToStatus(); ok {
		_spec.SetField(workflowtransition.FieldToStatus, field.TypeString, value)
	}
	if value, ok := wtuo.mutation.ActorID(); ok {
		_spec.SetField(workflowtransition.FieldActorID, field.TypeUint, value)
	}
	if value, ok := wtuo.mutation.AddedActorID(); ok {
		_spec.AddField(workflowtransition.FieldActorID, field.TypeUint, value)
	}
	if value, ok := wtuo.mutation.ActorNickname(); ok {
		_spec.SetField(workflowtransition.FieldActorNickname, field.TypeString, value)
	}
	if wtuo.mutation.ActorNicknameCleared() {
		_spec.ClearField(workflowtransition.FieldActorNickname, field.TypeString)
	}
	if value, ok := wtuo.mutation.Comment(); ok {
		_spec.SetField(workflowtransition.FieldComment, field.TypeString, value)
	}
	if wtuo.mutation.CommentCleared() {
		_spec.ClearField(workflowtransition.FieldComment, field.TypeString)
	}
	_node = &WorkflowTransition{config: wtuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wtuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowtransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wtuo.mutation.done = true
	return _node, nil
}
