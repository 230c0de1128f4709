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
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
)

// ContentVersionQuery is the builder for querying ContentVersion entities.
type ContentVersionQuery struct {
	config
	ctx        *QueryContext
	order      []contentversion.OrderOption
	inters     []Interceptor
	predicates []predicate.ContentVersion
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContentVersionQuery builder.
func (cvq *ContentVersionQuery) Where(ps ...predicate.ContentVersion) *ContentVersionQuery {
	cvq.predicates = append(cvq.predicates, ps...)
	return cvq
}

// Limit the number of records to be returned by this query.
func (cvq *ContentVersionQuery) Limit(limit int) *ContentVersionQuery {
	cvq.ctx.Limit = &limit
	return cvq
}

// Offset to start from.
func (cvq *ContentVersionQuery) Offset(offset int) *ContentVersionQuery {
	cvq.ctx.Offset = &offset
	return cvq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cvq *ContentVersionQuery) Unique(unique bool) *ContentVersionQuery {
	cvq.ctx.Unique = &unique
	return cvq
}

// Order specifies how the records should be ordered.
func (cvq *ContentVersionQuery) Order(o ...contentversion.OrderOption) *ContentVersionQuery {
	cvq.order = append(cvq.order, o...)
	return cvq
}

// First returns the first ContentVersion entity from the query.
// Returns a *NotFoundError when no ContentVersion was found.
func (cvq *ContentVersionQuery) First(ctx context.Context) (*ContentVersion, error) {
	nodes, err := cvq.Limit(1).All(setContextOp(ctx, cvq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contentversion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cvq *ContentVersionQuery) FirstX(ctx context.Context) *ContentVersion {
	node, err := cvq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContentVersion ID from the query.
// Returns a *NotFoundError when no ContentVersion ID was found.
func (cvq *ContentVersionQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = cvq.Limit(1).IDs(setContextOp(ctx, cvq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contentversion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cvq *ContentVersionQuery) FirstIDX(ctx context.Context) uint {
	id, err := cvq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContentVersion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContentVersion entity is found.
// Returns a *NotFoundError when no ContentVersion entities are found.
func (cvq *ContentVersionQuery) Only(ctx context.Context) (*ContentVersion, error) {
	nodes, err := cvq.Limit(2).All(setContextOp(ctx, cvq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contentversion.Label}
	default:
		return nil, &NotSingularError{contentversion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cvq *ContentVersionQuery) OnlyX(ctx context.Context) *ContentVersion {
	node, err := cvq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContentVersion ID in the query.
// Returns a *NotSingularError when more than one ContentVersion ID is found.
// Returns a *NotFoundError when no entities are found.
func (cvq *ContentVersionQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = cvq.Limit(2).IDs(setContextOp(ctx, cvq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contentversion.Label}
	default:
		err = &NotSingularError{contentversion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cvq *ContentVersionQuery) OnlyIDX(ctx context.Context) uint {
	id, err := cvq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContentVersions.
func (cvq *ContentVersionQuery) All(ctx context.Context) ([]*ContentVersion, error) {
	ctx = setContextOp(ctx, cvq.ctx, ent.OpQueryAll)
	if err := cvq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContentVersion, *ContentVersionQuery]()
	return withInterceptors[[]*ContentVersion](ctx, cvq, qr, cvq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cvq *ContentVersionQuery) AllX(ctx context.Context) []*ContentVersion {
	nodes, err := cvq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContentVersion IDs.
func (cvq *ContentVersionQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if cvq.ctx.Unique == nil && cvq.path != nil {
		cvq.Unique(true)
	}
	ctx = setContextOp(ctx, cvq.ctx, ent.OpQueryIDs)
	if err = cvq.Select(contentversion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cvq *ContentVersionQuery) IDsX(ctx context.Context) []uint {
	ids, err := cvq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cvq *ContentVersionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cvq.ctx, ent.OpQueryCount)
	if err := cvq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cvq, querierCount[*ContentVersionQuery](), cvq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cvq *ContentVersionQuery) CountX(ctx context.Context) int {
	count, err := cvq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cvq *ContentVersionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cvq.ctx, ent.OpQueryExist)
	switch _, err := cvq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cvq *ContentVersionQuery) ExistX(ctx context.Context) bool {
	exist, err := cvq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContentVersionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cvq *ContentVersionQuery) Clone() *ContentVersionQuery {
	if cvq == nil {
		return nil
	}
	return &ContentVersionQuery{
		config:     cvq.config,
		ctx:        cvq.ctx.Clone(),
		order:      append([]contentversion.OrderOption{}, cvq.order...),
		inters:     append([]Interceptor{}, cvq.inters...),
		predicates: append([]predicate.ContentVersion{}, cvq.predicates...),
		// clone intermediate query.
		sql:  cvq.sql.Clone(),
		path: cvq.path,
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
//	client.ContentVersion.Query().
//		GroupBy(contentversion.FieldContentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (cvq *ContentVersionQuery) GroupBy(field string, fields ...string) *ContentVersionGroupBy {
	cvq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContentVersionGroupBy{build: cvq}
	grbuild.flds = &cvq.ctx.Fields
	grbuild.label = contentversion.Label
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
//	client.ContentVersion.Query().
//		Select(contentversion.FieldContentID).
//		Scan(ctx, &v)
func (cvq *ContentVersionQuery) Select(fields ...string) *ContentVersionSelect {
	cvq.ctx.Fields = append(cvq.ctx.Fields, fields...)
	sbuild := &ContentVersionSelect{ContentVersionQuery: cvq}
	sbuild.label = contentversion.Label
	sbuild.flds, sbuild.scan = &cvq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContentVersionSelect configured with the given aggregations.
func (cvq *ContentVersionQuery) Aggregate(fns ...AggregateFunc) *ContentVersionSelect {
	return cvq.Select().Aggregate(fns...)
}

func (cvq *ContentVersionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cvq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cvq); err != nil {
				return err
			}
		}
	}
	for _, f := range cvq.ctx.Fields {
		if !contentversion.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if cvq.path != nil {
		prev, err := cvq.path(ctx)
		if err != nil {
			return err
		}
		cvq.sql = prev
	}
	return nil
}

func (cvq *ContentVersionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContentVersion, error) {
	var (
		nodes = []*ContentVersion{}
		_spec = cvq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContentVersion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContentVersion{config: cvq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cvq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (cvq *ContentVersionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cvq.querySpec()
	_spec.Node.Columns = cvq.ctx.Fields
	if len(cvq.ctx.Fields) > 0 {
		_spec.Unique = cvq.ctx.Unique != nil && *cvq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cvq.driver, _spec)
}

func (cvq *ContentVersionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contentversion.Table, contentversion.Columns, sqlgraph.NewFieldSpec(contentversion.FieldID, field.TypeUint))
	_spec.From = cvq.sql
	if unique := cvq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cvq.path != nil {
		_spec.Unique = true
	}
	if fields := cvq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentversion.FieldID)
		for i := range fields {
			if fields[i] != contentversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := cvq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cvq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cvq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cvq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cvq *ContentVersionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cvq.driver.Dialect())
	t1 := builder.Table(contentversion.Table)
	columns := cvq.ctx.Fields
	if len(columns) == 0 {
		columns = contentversion.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cvq.sql != nil {
		selector = cvq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cvq.ctx.Unique != nil && *cvq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cvq.predicates {
		p(selector)
	}
	for _, p := range cvq.order {
		p(selector)
	}
	if offset := cvq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cvq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ContentVersionGroupBy is the group-by builder for ContentVersion entities.
type ContentVersionGroupBy struct {
	selector
	build *ContentVersionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cvgb *ContentVersionGroupBy) Aggregate(fns ...AggregateFunc) *ContentVersionGroupBy {
	cvgb.fns = append(cvgb.fns, fns...)
	return cvgb
}

// Scan applies the selector query and scans the result into the given value.
func (cvgb *ContentVersionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cvgb.build.ctx, ent.OpQueryGroupBy)
	if err := cvgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContentVersionQuery, *ContentVersionGroupBy](ctx, cvgb.build, cvgb, cvgb.build.inters, v)
}

func (cvgb *ContentVersionGroupBy) sqlScan(ctx context.Context, root *ContentVersionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cvgb.fns))
	for _, fn := range cvgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cvgb.flds)+len(cvgb.fns))
		for _, f := range *cvgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cvgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cvgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ContentVersionSelect is the builder for selecting fields of ContentVersion entities.
type ContentVersionSelect struct {
	*ContentVersionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cvs *ContentVersionSelect) Aggregate(fns ...AggregateFunc) *ContentVersionSelect {
	cvs.fns = append(cvs.fns, fns...)
	return cvs
}

// Scan applies the selector query and scans the result into the given value.
func (cvs *ContentVersionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cvs.ctx, ent.OpQuerySelect)
	if err := cvs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContentVersionQuery, *ContentVersionSelect](ctx, cvs.ContentVersionQuery, cvs, cvs.inters, v)
}

func (cvs *ContentVersionSelect) sqlScan(ctx context.Context, root *ContentVersionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cvs.fns))
	for _, fn := range cvs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cvs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cvs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
