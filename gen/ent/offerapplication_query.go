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
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/gen/ent/predicate"
)

// OfferApplicationQuery is the builder for querying OfferApplication entities.
type OfferApplicationQuery struct {
	config
	ctx          *QueryContext
	order        []offerapplication.OrderOption
	inters       []Interceptor
	predicates   []predicate.OfferApplication
	withCvRecord *CVRecordQuery
	withOffer    *OfferQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OfferApplicationQuery builder.
func (_q *OfferApplicationQuery) Where(ps ...predicate.OfferApplication) *OfferApplicationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *OfferApplicationQuery) Limit(limit int) *OfferApplicationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *OfferApplicationQuery) Offset(offset int) *OfferApplicationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *OfferApplicationQuery) Unique(unique bool) *OfferApplicationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *OfferApplicationQuery) Order(o ...offerapplication.OrderOption) *OfferApplicationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCvRecord chains the current query on the "cv_record" edge.
func (_q *OfferApplicationQuery) QueryCvRecord() *CVRecordQuery {
	query := (&CVRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(offerapplication.Table, offerapplication.FieldID, selector),
			sqlgraph.To(cvrecord.Table, cvrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, offerapplication.CvRecordTable, offerapplication.CvRecordColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOffer chains the current query on the "offer" edge.
func (_q *OfferApplicationQuery) QueryOffer() *OfferQuery {
	query := (&OfferClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(offerapplication.Table, offerapplication.FieldID, selector),
			sqlgraph.To(offer.Table, offer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, offerapplication.OfferTable, offerapplication.OfferColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first OfferApplication entity from the query.
// Returns a *NotFoundError when no OfferApplication was found.
func (_q *OfferApplicationQuery) First(ctx context.Context) (*OfferApplication, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{offerapplication.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *OfferApplicationQuery) FirstX(ctx context.Context) *OfferApplication {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OfferApplication ID from the query.
// Returns a *NotFoundError when no OfferApplication ID was found.
func (_q *OfferApplicationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{offerapplication.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *OfferApplicationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OfferApplication entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OfferApplication entity is found.
// Returns a *NotFoundError when no OfferApplication entities are found.
func (_q *OfferApplicationQuery) Only(ctx context.Context) (*OfferApplication, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{offerapplication.Label}
	default:
		return nil, &NotSingularError{offerapplication.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *OfferApplicationQuery) OnlyX(ctx context.Context) *OfferApplication {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OfferApplication ID in the query.
// Returns a *NotSingularError when more than one OfferApplication ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *OfferApplicationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{offerapplication.Label}
	default:
		err = &NotSingularError{offerapplication.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *OfferApplicationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OfferApplications.
func (_q *OfferApplicationQuery) All(ctx context.Context) ([]*OfferApplication, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OfferApplication, *OfferApplicationQuery]()
	return withInterceptors[[]*OfferApplication](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *OfferApplicationQuery) AllX(ctx context.Context) []*OfferApplication {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OfferApplication IDs.
func (_q *OfferApplicationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(offerapplication.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *OfferApplicationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *OfferApplicationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*OfferApplicationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *OfferApplicationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *OfferApplicationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *OfferApplicationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OfferApplicationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *OfferApplicationQuery) Clone() *OfferApplicationQuery {
	if _q == nil {
		return nil
	}
	return &OfferApplicationQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]offerapplication.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.OfferApplication{}, _q.predicates...),
		withCvRecord: _q.withCvRecord.Clone(),
		withOffer:    _q.withOffer.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCvRecord tells the query-builder to eager-load the nodes that are connected to
// the "cv_record" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OfferApplicationQuery) WithCvRecord(opts ...func(*CVRecordQuery)) *OfferApplicationQuery {
	query := (&CVRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCvRecord = query
	return _q
}

// WithOffer tells the query-builder to eager-load the nodes that are connected to
// the "offer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OfferApplicationQuery) WithOffer(opts ...func(*OfferQuery)) *OfferApplicationQuery {
	query := (&OfferClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOffer = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CvRecordID int `json:"cv_record_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.OfferApplication.Query().
//		GroupBy(offerapplication.FieldCvRecordID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *OfferApplicationQuery) GroupBy(field string, fields ...string) *OfferApplicationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OfferApplicationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = offerapplication.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CvRecordID int `json:"cv_record_id,omitempty"`
//	}
//
//	client.OfferApplication.Query().
//		Select(offerapplication.FieldCvRecordID).
//		Scan(ctx, &v)
func (_q *OfferApplicationQuery) Select(fields ...string) *OfferApplicationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &OfferApplicationSelect{OfferApplicationQuery: _q}
	sbuild.label = offerapplication.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OfferApplicationSelect configured with the given aggregations.
func (_q *OfferApplicationQuery) Aggregate(fns ...AggregateFunc) *OfferApplicationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *OfferApplicationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !offerapplication.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *OfferApplicationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OfferApplication, error) {
	var (
		nodes       = []*OfferApplication{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCvRecord != nil,
			_q.withOffer != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OfferApplication).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OfferApplication{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCvRecord; query != nil {
		if err := _q.loadCvRecord(ctx, query, nodes, nil,
			func(n *OfferApplication, e *CVRecord) { n.Edges.CvRecord = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOffer; query != nil {
		if err := _q.loadOffer(ctx, query, nodes, nil,
			func(n *OfferApplication, e *Offer) { n.Edges.Offer = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *OfferApplicationQuery) loadCvRecord(ctx context.Context, query *CVRecordQuery, nodes []*OfferApplication, init func(*OfferApplication), assign func(*OfferApplication, *CVRecord)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*OfferApplication)
	for i := range nodes {
		fk := nodes[i].CvRecordID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(cvrecord.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "cv_record_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *OfferApplicationQuery) loadOffer(ctx context.Context, query *OfferQuery, nodes []*OfferApplication, init func(*OfferApplication), assign func(*OfferApplication, *Offer)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*OfferApplication)
	for i := range nodes {
		fk := nodes[i].OfferID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(offer.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "offer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *OfferApplicationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *OfferApplicationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(offerapplication.Table, offerapplication.Columns, sqlgraph.NewFieldSpec(offerapplication.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offerapplication.FieldID)
		for i := range fields {
			if fields[i] != offerapplication.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCvRecord != nil {
			_spec.Node.AddColumnOnce(offerapplication.FieldCvRecordID)
		}
		if _q.withOffer != nil {
			_spec.Node.AddColumnOnce(offerapplication.FieldOfferID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *OfferApplicationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(offerapplication.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = offerapplication.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// OfferApplicationGroupBy is the group-by builder for OfferApplication entities.
type OfferApplicationGroupBy struct {
	selector
	build *OfferApplicationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *OfferApplicationGroupBy) Aggregate(fns ...AggregateFunc) *OfferApplicationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *OfferApplicationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OfferApplicationQuery, *OfferApplicationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *OfferApplicationGroupBy) sqlScan(ctx context.Context, root *OfferApplicationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// OfferApplicationSelect is the builder for selecting fields of OfferApplication entities.
type OfferApplicationSelect struct {
	*OfferApplicationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *OfferApplicationSelect) Aggregate(fns ...AggregateFunc) *OfferApplicationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *OfferApplicationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OfferApplicationQuery, *OfferApplicationSelect](ctx, _s.OfferApplicationQuery, _s, _s.inters, v)
}

func (_s *OfferApplicationSelect) sqlScan(ctx context.Context, root *OfferApplicationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
