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
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// EditLockQuery is the builder for querying EditLock entities.
type EditLockQuery struct {
	config
	ctx        *QueryContext
	order      []editlock.OrderOption
	inters     []Interceptor
	predicates []predicate.EditLock
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EditLockQuery builder.
func (elq *EditLockQuery) Where(ps ...predicate.EditLock) *EditLockQuery {
	elq.predicates = append(elq.predicates, ps...)
	return elq
}

// Limit the number of records to be returned by this query.
func (elq *EditLockQuery) Limit(limit int) *EditLockQuery {
	elq.ctx.Limit = &limit
	return elq
}

// Offset to start from.
func (elq *EditLockQuery) Offset(offset int) *EditLockQuery {
	elq.ctx.Offset = &offset
	return elq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (elq *EditLockQuery) Unique(unique bool) *EditLockQuery {
	elq.ctx.Unique = &unique
	return elq
}

// Order specifies how the records should be ordered.
func (elq *EditLockQuery) Order(o ...editlock.OrderOption) *EditLockQuery {
	elq.order = append(elq.order, o...)
	return elq
}

// First returns the first EditLock entity from the query.
// Returns a *NotFoundError when no EditLock was found.
func (elq *EditLockQuery) First(ctx context.Context) (*EditLock, error) {
	nodes, err := elq.Limit(1).All(setContextOp(ctx, elq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{editlock.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (elq *EditLockQuery) FirstX(ctx context.Context) *EditLock {
	node, err := elq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EditLock ID from the query.
// Returns a *NotFoundError when no EditLock ID was found.
func (elq *EditLockQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = elq.Limit(1).IDs(setContextOp(ctx, elq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{editlock.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (elq *EditLockQuery) FirstIDX(ctx context.Context) uint {
	id, err := elq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EditLock entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EditLock entity is found.
// Returns a *NotFoundError when no EditLock entities are found.
func (elq *EditLockQuery) Only(ctx context.Context) (*EditLock, error) {
	nodes, err := elq.Limit(2).All(setContextOp(ctx, elq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{editlock.Label}
	default:
		return nil, &NotSingularError{editlock.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (elq *EditLockQuery) OnlyX(ctx context.Context) *EditLock {
	node, err := elq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EditLock ID in the query.
// Returns a *NotSingularError when more than one EditLock ID is found.
// Returns a *NotFoundError when no entities are found.
func (elq *EditLockQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = elq.Limit(2).IDs(setContextOp(ctx, elq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{editlock.Label}
	default:
		err = &NotSingularError{editlock.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (elq *EditLockQuery) OnlyIDX(ctx context.Context) uint {
	id, err := elq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EditLocks.
func (elq *EditLockQuery) All(ctx context.Context) ([]*EditLock, error) {
	ctx = setContextOp(ctx, elq.ctx, ent.OpQueryAll)
	if err := elq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EditLock, *EditLockQuery]()
	return withInterceptors[[]*EditLock](ctx, elq, qr, elq.inters)
}

// AllX is like All, but panics if an error occurs.
func (elq *EditLockQuery) AllX(ctx context.Context) []*EditLock {
	nodes, err := elq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EditLock IDs.
func (elq *EditLockQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if elq.ctx.Unique == nil && elq.path != nil {
		elq.Unique(true)
	}
	ctx = setContextOp(ctx, elq.ctx, ent.OpQueryIDs)
	if err = elq.Select(editlock.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (elq *EditLockQuery) IDsX(ctx context.Context) []uint {
	ids, err := elq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (elq *EditLockQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, elq.ctx, ent.OpQueryCount)
	if err := elq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, elq, querierCount[*EditLockQuery](), elq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (elq *EditLockQuery) CountX(ctx context.Context) int {
	count, err := elq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (elq *EditLockQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, elq.ctx, ent.OpQueryExist)
	switch _, err := elq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (elq *EditLockQuery) ExistX(ctx context.Context) bool {
	exist, err := elq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EditLockQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (elq *EditLockQuery) Clone() *EditLockQuery {
	if elq == nil {
		return nil
	}
	return &EditLockQuery{
		config:     elq.config,
		ctx:        elq.ctx.Clone(),
		order:      append([]editlock.OrderOption{}, elq.order...),
		inters:     append([]Interceptor{}, elq.inters...),
		predicates: append([]predicate.EditLock{}, elq.predicates...),
		// clone intermediate query.
		sql:  elq.sql.Clone(),
		path: elq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ContentID uint `json:"content_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EditLock.Query().
//		GroupBy(editlock.FieldContentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (elq *EditLockQuery) GroupBy(field string, fields ...string) *EditLockGroupBy {
	elq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EditLockGroupBy{build: elq}
	grbuild.flds = &elq.ctx.Fields
	grbuild.label = editlock.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ContentID uint `json:"content_id,omitempty"`
//	}
//
//	client.EditLock.Query().
//		Select(editlock.FieldContentID).
//		Scan(ctx, &v)
func (elq *EditLockQuery) Select(fields ...string) *EditLockSelect {
	elq.ctx.Fields = append(elq.ctx.Fields, fields...)
	sbuild := &EditLockSelect{EditLockQuery: elq}
	sbuild.label = editlock.Label
	sbuild.flds, sbuild.scan = &elq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EditLockSelect configured with the given aggregations.
func (elq *EditLockQuery) Aggregate(fns ...AggregateFunc) *EditLockSelect {
	return elq.Select().Aggregate(fns...)
}

func (elq *EditLockQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range elq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, elq); err != nil {
				return err
			}
		}
	}
	for _, f := range elq.ctx.Fields {
		if !editlock.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if elq.path != nil {
		prev, err := elq.path(ctx)
		if err != nil {
			return err
		}
		elq.sql = prev
	}
	return nil
}

func (elq *EditLockQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EditLock, error) {
	var (
		nodes = []*EditLock{}
		_spec = elq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EditLock).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EditLock{config: elq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, elq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (elq *EditLockQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := elq.querySpec()
	_spec.Node.Columns = elq.ctx.Fields
	if len(elq.ctx.Fields) > 0 {
		_spec.Unique = elq.ctx.Unique != nil && *elq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, elq.driver, _spec)
}

func (elq *EditLockQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(editlock.Table, editlock.Columns, sqlgraph.NewFieldSpec(editlock.FieldID, field.TypeUint))
	_spec.From = elq.sql
	if unique := elq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if elq.path != nil {
		_spec.Unique = true
	}
	if fields := elq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editlock.FieldID)
		for i := range fields {
			if fields[i] != editlock.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := elq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := elq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := elq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := elq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (elq *EditLockQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(elq.driver.Dialect())
	t1 := builder.Table(editlock.Table)
	columns := elq.ctx.Fields
	if len(columns) == 0 {
		columns = editlock.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if elq.sql != nil {
		selector = elq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if elq.ctx.Unique != nil && *elq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range elq.predicates {
		p(selector)
	}
	for _, p := range elq.order {
		p(selector)
	}
	if offset := elq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := elq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// EditLockGroupBy is the group-by builder for EditLock entities.
type EditLockGroupBy struct {
	selector
	build *EditLockQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (elgb *EditLockGroupBy) Aggregate(fns ...AggregateFunc) *EditLockGroupBy {
	elgb.fns = append(elgb.fns, fns...)
	return elgb
}

// Scan applies the selector query and scans the result into the given value.
func (elgb *EditLockGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, elgb.build.ctx, ent.OpQueryGroupBy)
	if err := elgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EditLockQuery, *EditLockGroupBy](ctx, elgb.build, elgb, elgb.build.inters, v)
}

func (elgb *EditLockGroupBy) sqlScan(ctx context.Context, root *EditLockQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(elgb.fns))
	for _, fn := range elgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*elgb.flds)+len(elgb.fns))
		for _, f := range *elgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*elgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := elgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EditLockSelect is the builder for selecting fields of EditLock entities.
type EditLockSelect struct {
	*EditLockQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (els *EditLockSelect) Aggregate(fns ...AggregateFunc) *EditLockSelect {
	els.fns = append(els.fns, fns...)
	return els
}

// Scan applies the selector query and scans the result into the given value.
func (els *EditLockSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, els.ctx, ent.OpQuerySelect)
	if err := els.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EditLockQuery, *EditLockSelect](ctx, els.EditLockQuery, els, els.inters, v)
}

func (els *EditLockSelect) sqlScan(ctx context.Context, root *EditLockQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(els.fns))
	for _, fn := range els.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*els.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := els.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
