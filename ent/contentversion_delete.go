// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ContentVersionDelete is the builder for deleting a ContentVersion entity.
type ContentVersionDelete struct {
	config
	hooks    []Hook
	mutation *ContentVersionMutation
}

// Where appends a list predicates to the ContentVersionDelete builder.
func (cvd *ContentVersionDelete) Where(ps ...predicate.ContentVersion) *ContentVersionDelete {
	cvd.mutation.Where(ps...)
	return cvd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cvd *ContentVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cvd.sqlExec, cvd.mutation, cvd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cvd *ContentVersionDelete) ExecX(ctx context.Context) int {
	n, err := cvd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cvd *ContentVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contentversion.Table, sqlgraph.NewFieldSpec(contentversion.FieldID, field.TypeUint))
	if ps := cvd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cvd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cvd.mutation.done = true
	return affected, err
}

// ContentVersionDeleteOne is the builder for deleting a single ContentVersion entity.
type ContentVersionDeleteOne struct {
	cvd *ContentVersionDelete
}

// Where appends a list predicates to the ContentVersionDelete builder.
func (cvdo *ContentVersionDeleteOne) Where(ps ...predicate.ContentVersion) *ContentVersionDeleteOne {
	cvdo.cvd.mutation.Where(ps...)
	return cvdo
}

// Exec executes the deletion query.
func (cvdo *ContentVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := cvdo.cvd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contentversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cvdo *ContentVersionDeleteOne) ExecX(ctx context.Context) {
	if err := cvdo.Exec(ctx); err != nil {
		panic(err)
	}
}
