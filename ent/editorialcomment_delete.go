// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// EditorialCommentDelete is the builder for deleting a EditorialComment entity.
type EditorialCommentDelete struct {
	config
	hooks    []Hook
	mutation *EditorialCommentMutation
}

// Where appends a list predicates to the EditorialCommentDelete builder.
func (ecd *EditorialCommentDelete) Where(ps ...predicate.EditorialComment) *EditorialCommentDelete {
	ecd.mutation.Where(ps...)
	return ecd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ecd *EditorialCommentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ecd.sqlExec, ecd.mutation, ecd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ecd *EditorialCommentDelete) ExecX(ctx context.Context) int {
	n, err := ecd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ecd *EditorialCommentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(editorialcomment.Table, sqlgraph.NewFieldSpec(editorialcomment.FieldID, field.TypeUint))
	if ps := ecd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ecd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ecd.mutation.done = true
	return affected, err
}

// EditorialCommentDeleteOne is the builder for deleting a single EditorialComment entity.
type EditorialCommentDeleteOne struct {
	ecd *EditorialCommentDelete
}

// Where appends a list predicates to the EditorialCommentDelete builder.
func (ecdo *EditorialCommentDeleteOne) Where(ps ...predicate.EditorialComment) *EditorialCommentDeleteOne {
	ecdo.ecd.mutation.Where(ps...)
	return ecdo
}

// Exec executes the deletion query.
func (ecdo *EditorialCommentDeleteOne) Exec(ctx context.Context) error {
	n, err := ecdo.ecd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{editorialcomment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ecdo *EditorialCommentDeleteOne) ExecX(ctx context.Context) {
	if err := ecdo.Exec(ctx); err != nil {
		panic(err)
	}
}
