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
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// EditorialCommentQuery is the builder for querying EditorialComment entities.
type EditorialCommentQuery struct {
	config
	ctx        *QueryContext
	order      []editorialcomment.OrderOption
	inters     []Interceptor
	predicates []predicate.EditorialComment
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EditorialCommentQuery builder.
func (ecq *EditorialCommentQuery) Where(ps ...predicate.EditorialComment) *EditorialCommentQuery {
	ecq.predicates = append(ecq.predicates, ps...)
	return ecq
}

// Limit the number of records to be returned by this query.
func (ecq *EditorialCommentQuery) Limit(limit int) *EditorialCommentQuery {
	ecq.ctx.Limit = &limit
	return ecq
}

// Offset to start from.
func (ecq *EditorialCommentQuery) Offset(offset int) *EditorialCommentQuery {
	ecq.ctx.Offset = &offset
	return ecq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ecq *EditorialCommentQuery) Unique(unique bool) *EditorialCommentQuery {
	ecq.ctx.Unique = &unique
	return ecq
}

// Order specifies how the records should be ordered.
func (ecq *EditorialCommentQuery) Order(o ...editorialcomment.OrderOption) *EditorialCommentQuery {
	ecq.order = append(ecq.order, o...)
	return ecq
}

// First returns the first EditorialComment entity from the query.
// Returns a *NotFoundError when no EditorialComment was found.
func (ecq *EditorialCommentQuery) First(ctx context.Context) (*EditorialComment, error) {
	nodes, err := ecq.Limit(1).All(setContextOp(ctx, ecq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{editorialcomment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ecq *EditorialCommentQuery) FirstX(ctx context.Context) *EditorialComment {
	node, err := ecq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EditorialComment ID from the query.
// Returns a *NotFoundError when no EditorialComment ID was found.
func (ecq *EditorialCommentQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = ecq.Limit(1).IDs(setContextOp(ctx, ecq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{editorialcomment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ecq *EditorialCommentQuery) FirstIDX(ctx context.Context) uint {
	id, err := ecq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EditorialComment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EditorialComment entity is found.
// Returns a *NotFoundError when no EditorialComment entities are found.
func (ecq *EditorialCommentQuery) Only(ctx context.Context) (*EditorialComment, error) {
	nodes, err := ecq.Limit(2).All(setContextOp(ctx, ecq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{editorialcomment.Label}
	default:
		return nil, &NotSingularError{editorialcomment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ecq *EditorialCommentQuery) OnlyX(ctx context.Context) *EditorialComment {
	node, err := ecq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EditorialComment ID in the query.
// Returns a *NotSingularError when more than one EditorialComment ID is found.
// Returns a *NotFoundError when no entities are found.
func (ecq *EditorialCommentQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = ecq.Limit(2).IDs(setContextOp(ctx, ecq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{editorialcomment.Label}
	default:
		err = &NotSingularError{editorialcomment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ecq *EditorialCommentQuery) OnlyIDX(ctx context.Context) uint {
	id, err := ecq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EditorialComments.
func (ecq *EditorialCommentQuery) All(ctx context.Context) ([]*EditorialComment, error) {
	ctx = setContextOp(ctx, ecq.ctx, ent.OpQueryAll)
	if err := ecq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EditorialComment, *EditorialCommentQuery]()
	return withInterceptors[[]*EditorialComment](ctx, ecq, qr, ecq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ecq *EditorialCommentQuery) AllX(ctx context.Context) []*EditorialComment {
	nodes, err := ecq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EditorialComment IDs.
func (ecq *EditorialCommentQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if ecq.ctx.Unique == nil && ecq.path != nil {
		ecq.Unique(true)
	}
	ctx = setContextOp(ctx, ecq.ctx, ent.OpQueryIDs)
	if err = ecq.Select(editorialcomment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ecq *EditorialCommentQuery) IDsX(ctx context.Context) []uint {
	ids, err := ecq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ecq *EditorialCommentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ecq.ctx, ent.OpQueryCount)
	if err := ecq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ecq, querierCount[*EditorialCommentQuery](), ecq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ecq *EditorialCommentQuery) CountX(ctx context.Context) int {
	count, err := ecq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ecq *EditorialCommentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ecq.ctx, ent.OpQueryExist)
	switch _, err := ecq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ecq *EditorialCommentQuery) ExistX(ctx context.Context) bool {
	exist, err := ecq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EditorialCommentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ecq *EditorialCommentQuery) Clone() *EditorialCommentQuery {
	if ecq == nil {
		return nil
	}
	return &EditorialCommentQuery{
		config:     ecq.config,
		ctx:        ecq.ctx.Clone(),
		order:      append([]editorialcomment.OrderOption{}, ecq.order...),
		inters:     append([]Interceptor{}, ecq.inters...),
		predicates: append([]predicate.EditorialComment{}, ecq.predicates...),
		// clone intermediate query.
		sql:  ecq.sql.Clone(),
		path: ecq.path,
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
//	client.EditorialComment.Query().
//		GroupBy(editorialcomment.FieldVersionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ecq *EditorialCommentQuery) GroupBy(field string, fields ...string) *EditorialCommentGroupBy {
	ecq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EditorialCommentGroupBy{build: ecq}
	grbuild.flds = &ecq.ctx.Fields
	grbuild.label = editorialcomment.Label
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
//	client.EditorialComment.Query().
//		Select(editorialcomment.FieldVersionID).
//		Scan(ctx, &v)
func (ecq *EditorialCommentQuery) Select(fields ...string) *EditorialCommentSelect {
	ecq.ctx.Fields = append(ecq.ctx.Fields, fields...)
	sbuild := &EditorialCommentSelect{EditorialCommentQuery: ecq}
	sbuild.label = editorialcomment.Label
	sbuild.flds, sbuild.scan = &ecq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EditorialCommentSelect configured with the given aggregations.
func (ecq *EditorialCommentQuery) Aggregate(fns ...AggregateFunc) *EditorialCommentSelect {
	return ecq.Select().Aggregate(fns...)
}

func (ecq *EditorialCommentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ecq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ecq); err != nil {
				return err
			}
		}
	}
	for _, f := range ecq.ctx.Fields {
		if !editorialcomment.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ecq.path != nil {
		prev, err := ecq.path(ctx)
		if err != nil {
			return err
		}
		ecq.sql = prev
	}
	return nil
}

func (ecq *EditorialCommentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EditorialComment, error) {
	var (
		nodes = []*EditorialComment{}
		_spec = ecq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EditorialComment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EditorialComment{config: ecq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ecq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ecq *EditorialCommentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ecq.querySpec()
	_spec.Node.Columns = ecq.ctx.Fields
	if len(ecq.ctx.Fields) > 0 {
		_spec.Unique = ecq.ctx.Unique != nil && *ecq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ecq.driver, _spec)
}

func (ecq *EditorialCommentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(editorialcomment.Table, editorialcomment.Columns, sqlgraph.NewFieldSpec(editorialcomment.FieldID, field.TypeUint))
	_spec.From = ecq.sql
	if unique := ecq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ecq.path != nil {
		_spec.Unique = true
	}
	if fields := ecq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editorialcomment.FieldID)
		for i := range fields {
			if fields[i] != editorialcomment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ecq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ecq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ecq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ecq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ecq *EditorialCommentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ecq.driver.Dialect())
	t1 := builder.Table(editorialcomment.Table)
	columns := ecq.ctx.Fields
	if len(columns) == 0 {
		columns = editorialcomment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ecq.sql != nil {
		selector = ecq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ecq.ctx.Unique != nil && *ecq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ecq.predicates {
		p(selector)
	}
	for _, p := range ecq.order {
		p(selector)
	}
	if offset := ecq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ecq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// EditorialCommentGroupBy is the group-by builder for EditorialComment entities.
type EditorialCommentGroupBy struct {
	selector
	build *EditorialCommentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ecgb *EditorialCommentGroupBy) Aggregate(fns ...AggregateFunc) *EditorialCommentGroupBy {
	ecgb.fns = append(ecgb.fns, fns...)
	return ecgb
}

// Scan applies the selector query and scans the result into the given value.
func (ecgb *EditorialCommentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ecgb.build.ctx, ent.OpQueryGroupBy)
	if err := ecgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EditorialCommentQuery, *EditorialCommentGroupBy](ctx, ecgb.build, ecgb, ecgb.build.inters, v)
}

func (ecgb *EditorialCommentGroupBy) sqlScan(ctx context.Context, root *EditorialCommentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ecgb.fns))
	for _, fn := range ecgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ecgb.flds)+len(ecgb.fns))
		for _, f := range *ecgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ecgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ecgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EditorialCommentSelect is the builder for selecting fields of EditorialComment entities.
type EditorialCommentSelect struct {
	*EditorialCommentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ecs *EditorialCommentSelect) Aggregate(fns ...AggregateFunc) *EditorialCommentSelect {
	ecs.fns = append(ecs.fns, fns...)
	return ecs
}

// Scan applies the selector query and scans the result into the given value.
func (ecs *EditorialCommentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ecs.ctx, ent.OpQuerySelect)
	if err := ecs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EditorialCommentQuery, *EditorialCommentSelect](ctx, ecs.EditorialCommentQuery, ecs, ecs.inters, v)
}

func (ecs *EditorialCommentSelect) sqlScan(ctx context.Context, root *EditorialCommentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ecs.fns))
	for _, fn := range ecs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ecs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ecs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
