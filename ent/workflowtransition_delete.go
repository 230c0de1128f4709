// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// WorkflowTransitionDelete is the builder for deleting a WorkflowTransition entity.
type WorkflowTransitionDelete struct {
	config
	hooks    []Hook
	mutation *WorkflowTransitionMutation
}

// Where appends a list predicates to the WorkflowTransitionDelete builder.
func (wtd *WorkflowTransitionDelete) Where(ps ...predicate.WorkflowTransition) *WorkflowTransitionDelete {
	wtd.mutation.Where(ps...)
	return wtd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wtd *WorkflowTransitionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wtd.sqlExec, wtd.mutation, wtd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wtd *WorkflowTransitionDelete) ExecX(ctx context.Context) int {
	n, err := wtd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wtd *WorkflowTransitionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workflowtransition.Table, sqlgraph.NewFieldSpec(workflowtransition.FieldID, field.TypeUint))
	if ps := wtd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wtd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wtd.mutation.done = true
	return affected, err
}

// WorkflowTransitionDeleteOne is the builder for deleting a single WorkflowTransition entity.
type WorkflowTransitionDeleteOne struct {
	wtd *WorkflowTransitionDelete
}

// Where appends a list predicates to the WorkflowTransitionDelete builder.
func (wtdo *WorkflowTransitionDeleteOne) Where(ps ...predicate.WorkflowTransition) *WorkflowTransitionDeleteOne {
	wtdo.wtd.mutation.Where(ps...)
	return wtdo
}

// Exec executes the deletion query.
func (wtdo *WorkflowTransitionDeleteOne) Exec(ctx context.Context) error {
	n, err := wtdo.wtd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workflowtransition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wtdo *WorkflowTransitionDeleteOne) ExecX(ctx context.Context) {
	if err := wtdo.Exec(ctx); err != nil {
		panic(err)
	}
}
