// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// WorkflowTransitionQuery is the builder for querying WorkflowTransition entities.
type WorkflowTransitionQuery struct {
	config
	ctx        *QueryContext
	order      []workflowtransition.OrderOption
	inters     []Interceptor
	predicates []predicate.WorkflowTransition
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkflowTransitionQuery builder.
func (wtq *WorkflowTransitionQuery) Where(ps ...predicate.WorkflowTransition) *WorkflowTransitionQuery {
	wtq.predicates = append(wtq.predicates, ps...)
	return wtq
}

// Limit the number of records to be returned by this query.
func (wtq *WorkflowTransitionQuery) Limit(limit int) *WorkflowTransitionQuery {
	wtq.ctx.Limit = &limit
	return wtq
}

// Offset to start from.
func (wtq *WorkflowTransitionQuery) Offset(offset int) *WorkflowTransitionQuery {
	wtq.ctx.Offset = &offset
	return wtq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wtq *WorkflowTransitionQuery) Unique(unique bool) *WorkflowTransitionQuery {
	wtq.ctx.Unique = &unique
	return wtq
}

// Order specifies how the records should be ordered.
func (wtq *WorkflowTransitionQuery) Order(o ...workflowtransition.OrderOption) *WorkflowTransitionQuery {
	wtq.order = append(wtq.order, o...)
	return wtq
}

// First returns the first WorkflowTransition entity from the query.
// Returns a *NotFoundError when no WorkflowTransition was found.
func (wtq *WorkflowTransitionQuery) First(ctx context.Context) (*WorkflowTransition, error) {
	nodes, err := wtq.Limit(1).All(setContextOp(ctx, wtq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workflowtransition.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) FirstX(ctx context.Context) *WorkflowTransition {
	node, err := wtq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkflowTransition ID from the query.
// Returns a *NotFoundError when no WorkflowTransition ID was found.
func (wtq *WorkflowTransitionQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wtq.Limit(1).IDs(setContextOp(ctx, wtq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workflowtransition.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) FirstIDX(ctx context.Context) uint {
	id, err := wtq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkflowTransition entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkflowTransition entity is found.
// Returns a *NotFoundError when no WorkflowTransition entities are found.
func (wtq *WorkflowTransitionQuery) Only(ctx context.Context) (*WorkflowTransition, error) {
	nodes, err := wtq.Limit(2).All(setContextOp(ctx, wtq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workflowtransition.Label}
	default:
		return nil, &NotSingularError{workflowtransition.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) OnlyX(ctx context.Context) *WorkflowTransition {
	node, err := wtq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkflowTransition ID in the query.
// Returns a *NotSingularError when more than one WorkflowTransition ID is found.
// Returns a *NotFoundError when no entities are found.
func (wtq *WorkflowTransitionQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wtq.Limit(2).IDs(setContextOp(ctx, wtq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workflowtransition.Label}
	default:
		err = &NotSingularError{workflowtransition.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wtq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkflowTransitions.
func (wtq *WorkflowTransitionQuery) All(ctx context.Context) ([]*WorkflowTransition, error) {
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryAll)
	if err := wtq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkflowTransition, *WorkflowTransitionQuery]()
	return withInterceptors[[]*WorkflowTransition](ctx, wtq, qr, wtq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) AllX(ctx context.Context) []*WorkflowTransition {
	nodes, err := wtq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkflowTransition IDs.
func (wtq *WorkflowTransitionQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wtq.ctx.Unique == nil && wtq.path != nil {
		wtq.Unique(true)
	}
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryIDs)
	if err = wtq.Select(workflowtransition.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) IDsX(ctx context.Context) []uint {
	ids, err := wtq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wtq *WorkflowTransitionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryCount)
	if err := wtq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wtq, querierCount[*WorkflowTransitionQuery](), wtq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) CountX(ctx context.Context) int {
	count, err := wtq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wtq *WorkflowTransitionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryExist)
	switch _, err := wtq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wtq *WorkflowTransitionQuery) ExistX(ctx context.Context) bool {
	exist, err := wtq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkflowTransitionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wtq *WorkflowTransitionQuery) Clone() *WorkflowTransitionQuery {
	if wtq == nil {
		return nil
	}
	return &WorkflowTransitionQuery{
		config:     wtq.config,
		ctx:        wtq.ctx.Clone(),
		order:      append([]workflowtransition.OrderOption{}, wtq.order...),
		inters:     append([]Interceptor{}, wtq.inters...),
		predicates: append([]predicate.WorkflowTransition{}, wtq.predicates...),
		// clone intermediate query.
		sql:  wtq.sql.Clone(),
		path: wtq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		VersionID uint `json:"version_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WorkflowTransition.Query().
//		GroupBy(workflowtransition.FieldVersionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wtq *WorkflowTransitionQuery) GroupBy(field string, fields ...string) *WorkflowTransitionGroupBy {
	wtq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkflowTransitionGroupBy{build: wtq}
	grbuild.flds = &wtq.ctx.Fields
	grbuild.label = workflowtransition.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		VersionID uint `json:"version_id,omitempty"`
//	}
//
//	client.WorkflowTransition.Query().
//		Select(workflowtransition.FieldVersionID).
//		Scan(ctx, &v)
func (wtq *WorkflowTransitionQuery) Select(fields ...string) *WorkflowTransitionSelect {
	wtq.ctx.Fields = append(wtq.ctx.Fields, fields...)
	sbuild := &WorkflowTransitionSelect{WorkflowTransitionQuery: wtq}
	sbuild.label = workflowtransition.Label
	sbuild.flds, sbuild.scan = &wtq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkflowTransitionSelect configured with the given aggregations.
func (wtq *WorkflowTransitionQuery) Aggregate(fns ...AggregateFunc) *WorkflowTransitionSelect {
	return wtq.Select().Aggregate(fns...)
}

func (wtq *WorkflowTransitionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wtq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wtq); err != nil {
				return err
			}
		}
	}
	for _, f := range wtq.ctx.Fields {
		if !workflowtransition.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wtq.path != nil {
		prev, err := wtq.path(ctx)
		if err != nil {
			return err
		}
		wtq.sql = prev
	}
	return nil
}

func (wtq *WorkflowTransitionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkflowTransition, error) {
	var (
		nodes = []*WorkflowTransition{}
		_spec = wtq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkflowTransition).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkflowTransition{config: wtq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wtq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (wtq *WorkflowTransitionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wtq.querySpec()
	_spec.Node.Columns = wtq.ctx.Fields
	if len(wtq.ctx.Fields) > 0 {
		_spec.Unique = wtq.ctx.Unique != nil && *wtq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wtq.driver, _spec)
}

func (wtq *WorkflowTransitionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workflowtransition.Table, workflowtransition.Columns, sqlgraph.NewFieldSpec(workflowtransition.FieldID, field.TypeUint))
	_spec.From = wtq.sql
	if unique := wtq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wtq.path != nil {
		_spec.Unique = true
	}
	if fields := wtq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowtransition.FieldID)
		for i := range fields {
			if fields[i] != workflowtransition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wtq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wtq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wtq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wtq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wtq *WorkflowTransitionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wtq.driver.Dialect())
	t1 := builder.Table(workflowtransition.Table)
	columns := wtq.ctx.Fields
	if len(columns) == 0 {
		columns = workflowtransition.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wtq.sql != nil {
		selector = wtq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wtq.ctx.Unique != nil && *wtq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wtq.predicates {
		p(selector)
	}
	for _, p := range wtq.order {
		p(selector)
	}
	if offset := wtq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wtq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkflowTransitionGroupBy is the group-by builder for WorkflowTransition entities.
type WorkflowTransitionGroupBy struct {
	selector
	build *WorkflowTransitionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wtgb *WorkflowTransitionGroupBy) Aggregate(fns ...AggregateFunc) *WorkflowTransitionGroupBy {
	wtgb.fns = append(wtgb.fns, fns...)
	return wtgb
}

// Scan applies the selector query and scans the result into the given value.
func (wtgb *WorkflowTransitionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wtgb.build.ctx, ent.OpQueryGroupBy)
	if err := wtgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowTransitionQuery, *WorkflowTransitionGroupBy](ctx, wtgb.build, wtgb, wtgb.build.inters, v)
}

func (wtgb *WorkflowTransitionGroupBy) sqlScan(ctx context.Context, root *WorkflowTransitionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wtgb.fns))
	for _, fn := range wtgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wtgb.flds)+len(wtgb.fns))
		for _, f := range *wtgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wtgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wtgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkflowTransitionSelect is the builder for selecting fields of WorkflowTransition entities.
type WorkflowTransitionSelect struct {
	*WorkflowTransitionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wts *WorkflowTransitionSelect) Aggregate(fns ...AggregateFunc) *WorkflowTransitionSelect {
	wts.fns = append(wts.fns, fns...)
	return wts
}

// Scan applies the selector query and scans the result into the given value.
func (wts *WorkflowTransitionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wts.ctx, ent.OpQuerySelect)
	if err := wts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowTransitionQuery, *WorkflowTransitionSelect](ctx, wts.WorkflowTransitionQuery, wts, wts.inters, v)
}

func (wts *WorkflowTransitionSelect) sqlScan(ctx context.Context, root *WorkflowTransitionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wts.fns))
	for _, fn := range wts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
