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
	"github.com/anzhiyu-c/anheyu-flow/ent/content"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ContentUpdate is the builder for updating Content entities.
type ContentUpdate struct {
	config
	hooks    []Hook
	mutation *ContentMutation
}

// Where appends a list predicates to the ContentUpdate builder.
func (cu *ContentUpdate) Where(ps ...predicate.Content) *ContentUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetType sets the "type" field.
func (cu *ContentUpdate) SetType(s string) *ContentUpdate {
	cu.mutation.SetType(s)
	return cu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableType(s *string) *ContentUpdate {
	if s != nil {
		cu.SetType(*s)
	}
	return cu
}

// SetTitle sets the "title" field.
func (cu *ContentUpdate) SetTitle(s string) *ContentUpdate {
	cu.mutation.SetTitle(s)
	return cu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableTitle(s *string) *ContentUpdate {
	if s != nil {
		cu.SetTitle(*s)
	}
	return cu
}

// SetWorkflowStatus sets the "workflow_status" field.
func (cu *ContentUpdate) SetWorkflowStatus(s string) *ContentUpdate {
	cu.mutation.SetWorkflowStatus(s)
	return cu
}

// SetNillableWorkflowStatus sets the "workflow_status" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableWorkflowStatus(s *string) *ContentUpdate {
	if s != nil {
		cu.SetWorkflowStatus(*s)
	}
	return cu
}

// SetActiveVersionID sets the "active_version_id" field.
func (cu *ContentUpdate) SetActiveVersionID(u uint) *ContentUpdate {
	cu.mutation.ResetActiveVersionID()
	cu.mutation.SetActiveVersionID(u)
	return cu
}

// SetNillableActiveVersionID sets the "active_version_id" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableActiveVersionID(u *uint) *ContentUpdate {
	if u != nil {
		cu.SetActiveVersionID(*u)
	}
	return cu
}

// AddActiveVersionID adds u to the "active_version_id" field.
func (cu *ContentUpdate) AddActiveVersionID(u int) *ContentUpdate {
	cu.mutation.AddActiveVersionID(u)
	return cu
}

// ClearActiveVersionID clears the value of the "active_version_id" field.
func (cu *ContentUpdate) ClearActiveVersionID() *ContentUpdate {
	cu.mutation.ClearActiveVersionID()
	return cu
}

// SetDraftVersionID sets the "draft_version_id" field.
func (cu *ContentUpdate) SetDraftVersionID(u uint) *ContentUpdate {
	cu.mutation.ResetDraftVersionID()
	cu.mutation.SetDraftVersionID(u)
	return cu
}

// SetNillableDraftVersionID sets the "draft_version_id" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableDraftVersionID(u *uint) *ContentUpdate {
	if u != nil {
		cu.SetDraftVersionID(*u)
	}
	return cu
}

// AddDraftVersionID adds u to the "draft_version_id" field.
func (cu *ContentUpdate) AddDraftVersionID(u int) *ContentUpdate {
	cu.mutation.AddDraftVersionID(u)
	return cu
}

// ClearDraftVersionID clears the value of the "draft_version_id" field.
func (cu *ContentUpdate) ClearDraftVersionID() *ContentUpdate {
	cu.mutation.ClearDraftVersionID()
	return cu
}

// SetCreatedBy sets the "created_by" field.
func (cu *ContentUpdate) SetCreatedBy(u uint) *ContentUpdate {
	cu.mutation.ResetCreatedBy()
	cu.mutation.SetCreatedBy(u)
	return cu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableCreatedBy(u *uint) *ContentUpdate {
	if u != nil {
		cu.SetCreatedBy(*u)
	}
	return cu
}

// AddCreatedBy adds u to the "created_by" field.
func (cu *ContentUpdate) AddCreatedBy(u int) *ContentUpdate {
	cu.mutation.AddCreatedBy(u)
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *ContentUpdate) SetUpdatedAt(t time.Time) *ContentUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetPublishedAt sets the "published_at" field.
func (cu *ContentUpdate) SetPublishedAt(t time.Time) *ContentUpdate {
	cu.mutation.SetPublishedAt(t)
	return cu
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (cu *ContentUpdate) SetNillablePublishedAt(t *time.Time) *ContentUpdate {
	if t != nil {
		cu.SetPublishedAt(*t)
	}
	return cu
}

// ClearPublishedAt clears the value of the "published_at" field.
func (cu *ContentUpdate) ClearPublishedAt() *ContentUpdate {
	cu.mutation.ClearPublishedAt()
	return cu
}

// Mutation returns the ContentMutation object of the builder.
func (cu *ContentUpdate) Mutation() *ContentMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ContentUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ContentUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ContentUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ContentUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *ContentUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *ContentUpdate) check() error {
	if v, ok := cu.mutation.GetType(); ok {
		if err := content.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Content.type": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Content.title": %w`, err)}
		}
	}
	if v, ok := cu.mutation.WorkflowStatus(); ok {
		if err := content.WorkflowStatusValidator(v); err != nil {
			return &ValidationError{Name: "workflow_status", err: fmt.Errorf(`ent: validator failed for field "Content.workflow_status": %w`, err)}
		}
	}
	return nil
}

func (cu *ContentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUint))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.GetType(); ok {
		_spec.SetField(content.FieldType, field.TypeString, value)
	}
	if value, ok := cu.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := cu.mutation.WorkflowStatus(); ok {
		_spec.SetField(content.FieldWorkflowStatus, field.TypeString, value)
	}
	if value, ok := cu.mutation.ActiveVersionID(); ok {
		_spec.SetField(content.FieldActiveVersionID, field.TypeUint, value)
	}
	if value, ok := cu.mutation.AddedActiveVersionID(); ok {
		_spec.AddField(content.FieldActiveVersionID, field.TypeUint, value)
	}
	if cu.mutation.ActiveVersionIDCleared() {
		_spec.ClearField(content.FieldActiveVersionID, field.TypeUint)
	}
	if value, ok := cu.mutation.DraftVersionID(); ok {
		_spec.SetField(content.FieldDraftVersionID, field.TypeUint, value)
	}
	if value, ok := cu.mutation.AddedDraftVersionID(); ok {
		_spec.AddField(content.FieldDraftVersionID, field.TypeUint, value)
	}
	if cu.mutation.DraftVersionIDCleared() {
		_spec.ClearField(content.FieldDraftVersionID, field.TypeUint)
	}
	if value, ok := cu.mutation.CreatedBy(); ok {
		_spec.SetField(content.FieldCreatedBy, field.TypeUint, value)
	}
	if value, ok := cu.mutation.AddedCreatedBy(); ok {
		_spec.AddField(content.FieldCreatedBy, field.TypeUint, value)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
	}
	if cu.mutation.PublishedAtCleared() {
		_spec.ClearField(content.FieldPublishedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ContentUpdateOne is the builder for updating a single Content entity.
type ContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentMutation
}

// SetType sets the "type" field.
func (cuo *ContentUpdateOne) SetType(s string) *ContentUpdateOne {
	cuo.mutation.SetType(s)
	return cuo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableType(s *string) *ContentUpdateOne {
	if s != nil {
		cuo.SetType(*s)
	}
	return cuo
}

// SetTitle sets the "title" field.
func (cuo *ContentUpdateOne) SetTitle(s string) *ContentUpdateOne {
	cuo.mutation.SetTitle(s)
	return cuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableTitle(s *string) *ContentUpdateOne {
	if s != nil {
		cuo.SetTitle(*s)
	}
	return cuo
}

// SetWorkflowStatus sets the "workflow_status" field.
func (cuo *ContentUpdateOne) SetWorkflowStatus(s string) *ContentUpdateOne {
	cuo.mutation.SetWorkflowStatus(s)
	return cuo
}

// SetNillableWorkflowStatus sets the "workflow_status" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableWorkflowStatus(s *string) *ContentUpdateOne {
	if s != nil {
		cuo.SetWorkflowStatus(*s)
	}
	return cuo
}

// SetActiveVersionID sets the "active_version_id" field.
func (cuo *ContentUpdateOne) SetActiveVersionID(u uint) *ContentUpdateOne {
	cuo.mutation.ResetActiveVersionID()
	cuo.mutation.SetActiveVersionID(u)
	return cuo
}

// SetNillableActiveVersionID sets the "active_version_id" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableActiveVersionID(u *uint) *ContentUpdateOne {
	if u != nil {
		cuo.SetActiveVersionID(*u)
	}
	return cuo
}

// AddActiveVersionID adds u to the "active_version_id" field.
func (cuo *ContentUpdateOne) AddActiveVersionID(u int) *ContentUpdateOne {
	cuo.mutation.AddActiveVersionID(u)
	return cuo
}

// ClearActiveVersionID clears the value of the "active_version_id" field.
func (cuo *ContentUpdateOne) ClearActiveVersionID() *ContentUpdateOne {
	cuo.mutation.ClearActiveVersionID()
	return cuo
}

// SetDraftVersionID sets the "draft_version_id" field.
func (cuo *ContentUpdateOne) SetDraftVersionID(u uint) *ContentUpdateOne {
	cuo.mutation.ResetDraftVersionID()
	cuo.mutation.SetDraftVersionID(u)
	return cuo
}

// SetNillableDraftVersionID sets the "draft_version_id" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableDraftVersionID(u *uint) *ContentUpdateOne {
	if u != nil {
		cuo.SetDraftVersionID(*u)
	}
	return cuo
}

// AddDraftVersionID adds u to the "draft_version_id" field.
func (cuo *ContentUpdateOne) AddDraftVersionID(u int) *ContentUpdateOne {
	cuo.mutation.AddDraftVersionID(u)
	return cuo
}

// ClearDraftVersionID clears the value of the "draft_version_id" field.
func (cuo *ContentUpdateOne) ClearDraftVersionID() *ContentUpdateOne {
	cuo.mutation.ClearDraftVersionID()
	return cuo
}

// SetCreatedBy sets the "created_by" field.
func (cuo *ContentUpdateOne) SetCreatedBy(u uint) *ContentUpdateOne {
	cuo.mutation.ResetCreatedBy()
	cuo.mutation.SetCreatedBy(u)
	return cuo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableCreatedBy(u *uint) *ContentUpdateOne {
	if u != nil {
		cuo.SetCreatedBy(*u)
	}
	return cuo
}

// AddCreatedBy adds u to the "created_by" field.
func (cuo *ContentUpdateOne) AddCreatedBy(u int) *ContentUpdateOne {
	cuo.mutation.AddCreatedBy(u)
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *ContentUpdateOne) SetUpdatedAt(t time.Time) *ContentUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetPublishedAt sets the "published_at" field.
func (cuo *ContentUpdateOne) SetPublishedAt(t time.Time) *ContentUpdateOne {
	cuo.mutation.SetPublishedAt(t)
	return cuo
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillablePublishedAt(t *time.Time) *ContentUpdateOne {
	if t != nil {
		cuo.SetPublishedAt(*t)
	}
	return cuo
}

// ClearPublishedAt clears the value of the "published_at" field.
func (cuo *ContentUpdateOne) ClearPublishedAt() *ContentUpdateOne {
	cuo.mutation.ClearPublishedAt()
	return cuo
}

// Mutation returns the ContentMutation object of the builder.
func (cuo *ContentUpdateOne) Mutation() *ContentMutation {
	return cuo.mutation
}

// Where appends a list predicates to the ContentUpdate builder.
func (cuo *ContentUpdateOne) Where(ps ...predicate.Content) *ContentUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ContentUpdateOne) Select(field string, fields ...string) *ContentUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Content entity.
func (cuo *ContentUpdateOne) Save(ctx context.Context) (*Content, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ContentUpdateOne) SaveX(ctx context.Context) *Content {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ContentUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ContentUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *ContentUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *ContentUpdateOne) check() error {
	if v, ok := cuo.mutation.GetType(); ok {
		if err := content.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Content.type": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Content.title": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.WorkflowStatus(); ok {
		if err := content.WorkflowStatusValidator(v); err != nil {
			return &ValidationError{Name: "workflow_status", err: fmt.Errorf(`ent: validator failed for field "Content.workflow_status": %w`, err)}
		}
	}
	return nil
}

func (cuo *ContentUpdateOne) sqlSave(ctx context.Context) (_node *Content, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUint))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Content.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, content.FieldID)
		for _, f := range fields {
			if !content.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != content.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.GetType(); ok {
		_spec.SetField(content.FieldType, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := cuo.mutation.WorkflowStatus(); ok {
		_spec.SetField(content.FieldWorkflowStatus, field.TypeString, value)
	}
	if value, ok := cuo.mutation.ActiveVersionID(); ok {
		_spec.SetField(content.FieldActiveVersionID, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.AddedActiveVersionID(); ok {
		_spec.AddField(content.FieldActiveVersionID, field.TypeUint, value)
	}
	if cuo.mutation.ActiveVersionIDCleared() {
		_spec.ClearField(content.FieldActiveVersionID, field.TypeUint)
	}
	if value, ok := cuo.mutation.DraftVersionID(); ok {
		_spec.SetField(content.FieldDraftVersionID, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.AddedDraftVersionID(); ok {
		_spec.AddField(content.FieldDraftVersionID, field.TypeUint, value)
	}
	if cuo.mutation.DraftVersionIDCleared() {
		_spec.ClearField(content.FieldDraftVersionID, field.TypeUint)
	}
	if value, ok := cuo.mutation.CreatedBy(); ok {
		_spec.SetField(content.FieldCreatedBy, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.AddedCreatedBy(); ok {
		_spec.AddField(content.FieldCreatedBy, field.TypeUint, value)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
	}
	if cuo.mutation.PublishedAtCleared() {
		_spec.ClearField(content.FieldPublishedAt, field.TypeTime)
	}
	_node = &Content{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
