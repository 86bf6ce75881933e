// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/google/uuid"
)

// SettlementItemQuery is the builder for querying SettlementItem entities.
type SettlementItemQuery struct {
	config
	ctx            *QueryContext
	order          []settlementitem.OrderOption
	inters         []Interceptor
	predicates     []predicate.SettlementItem
	withSettlement *SettlementQuery
	withEntry      *CommissionEntryQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SettlementItemQuery builder.
func (_q *SettlementItemQuery) Where(ps ...predicate.SettlementItem) *SettlementItemQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SettlementItemQuery) Limit(limit int) *SettlementItemQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SettlementItemQuery) Offset(offset int) *SettlementItemQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SettlementItemQuery) Unique(unique bool) *SettlementItemQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SettlementItemQuery) Order(o ...settlementitem.OrderOption) *SettlementItemQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySettlement chains the current query on the "settlement" edge.
func (_q *SettlementItemQuery) QuerySettlement() *SettlementQuery {
	query := (&SettlementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(settlementitem.Table, settlementitem.FieldID, selector),
			sqlgraph.To(settlement.Table, settlement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, settlementitem.SettlementTable, settlementitem.SettlementColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntry chains the current query on the "entry" edge.
func (_q *SettlementItemQuery) QueryEntry() *CommissionEntryQuery {
	query := (&CommissionEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(settlementitem.Table, settlementitem.FieldID, selector),
			sqlgraph.To(commissionentry.Table, commissionentry.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, settlementitem.EntryTable, settlementitem.EntryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SettlementItem entity from the query.
// Returns a *NotFoundError when no SettlementItem was found.
func (_q *SettlementItemQuery) First(ctx context.Context) (*SettlementItem, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{settlementitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SettlementItemQuery) FirstX(ctx context.Context) *SettlementItem {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SettlementItem ID from the query.
// Returns a *NotFoundError when no SettlementItem ID was found.
func (_q *SettlementItemQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{settlementitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SettlementItemQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SettlementItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SettlementItem entity is found.
// Returns a *NotFoundError when no SettlementItem entities are found.
func (_q *SettlementItemQuery) Only(ctx context.Context) (*SettlementItem, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{settlementitem.Label}
	default:
		return nil, &NotSingularError{settlementitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SettlementItemQuery) OnlyX(ctx context.Context) *SettlementItem {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SettlementItem ID in the query.
// Returns a *NotSingularError when more than one SettlementItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SettlementItemQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{settlementitem.Label}
	default:
		err = &NotSingularError{settlementitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SettlementItemQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SettlementItems.
func (_q *SettlementItemQuery) All(ctx context.Context) ([]*SettlementItem, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SettlementItem, *SettlementItemQuery]()
	return withInterceptors[[]*SettlementItem](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SettlementItemQuery) AllX(ctx context.Context) []*SettlementItem {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SettlementItem IDs.
func (_q *SettlementItemQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(settlementitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SettlementItemQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SettlementItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SettlementItemQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SettlementItemQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SettlementItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SettlementItemQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SettlementItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SettlementItemQuery) Clone() *SettlementItemQuery {
	if _q == nil {
		return nil
	}
	return &SettlementItemQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]settlementitem.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.SettlementItem{}, _q.predicates...),
		withSettlement: _q.withSettlement.Clone(),
		withEntry:      _q.withEntry.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSettlement tells the query-builder to eager-load the nodes that are connected to
// the "settlement" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SettlementItemQuery) WithSettlement(opts ...func(*SettlementQuery)) *SettlementItemQuery {
	query := (&SettlementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSettlement = query
	return _q
}

// WithEntry tells the query-builder to eager-load the nodes that are connected to
// the "entry" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SettlementItemQuery) WithEntry(opts ...func(*CommissionEntryQuery)) *SettlementItemQuery {
	query := (&CommissionEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntry = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SettlementItem.Query().
//		GroupBy(settlementitem.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *SettlementItemQuery) GroupBy(field string, fields ...string) *SettlementItemGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SettlementItemGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = settlementitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.SettlementItem.Query().
//		Select(settlementitem.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *SettlementItemQuery) Select(fields ...string) *SettlementItemSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SettlementItemSelect{SettlementItemQuery: _q}
	sbuild.label = settlementitem.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SettlementItemSelect configured with the given aggregations.
func (_q *SettlementItemQuery) Aggregate(fns ...AggregateFunc) *SettlementItemSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SettlementItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !settlementitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *SettlementItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SettlementItem, error) {
	var (
		nodes       = []*SettlementItem{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSettlement != nil,
			_q.withEntry != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SettlementItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SettlementItem{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withSettlement; query != nil {
		if err := _q.loadSettlement(ctx, query, nodes, nil,
			func(n *SettlementItem, e *Settlement) { n.Edges.Settlement = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEntry; query != nil {
		if err := _q.loadEntry(ctx, query, nodes, nil,
			func(n *SettlementItem, e *CommissionEntry) { n.Edges.Entry = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SettlementItemQuery) loadSettlement(ctx context.Context, query *SettlementQuery, nodes []*SettlementItem, init func(*SettlementItem), assign func(*SettlementItem, *Settlement)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SettlementItem)
	for i := range nodes {
		fk := nodes[i].SettlementID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(settlement.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "settlement_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SettlementItemQuery) loadEntry(ctx context.Context, query *CommissionEntryQuery, nodes []*SettlementItem, init func(*SettlementItem), assign func(*SettlementItem, *CommissionEntry)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SettlementItem)
	for i := range nodes {
		fk := nodes[i].EntryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(commissionentry.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "entry_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SettlementItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SettlementItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(settlementitem.Table, settlementitem.Columns, sqlgraph.NewFieldSpec(settlementitem.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, settlementitem.FieldID)
		for i := range fields {
			if fields[i] != settlementitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSettlement != nil {
			_spec.Node.AddColumnOnce(settlementitem.FieldSettlementID)
		}
		if _q.withEntry != nil {
			_spec.Node.AddColumnOnce(settlementitem.FieldEntryID)
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

func (_q *SettlementItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(settlementitem.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = settlementitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SettlementItemQuery) ForUpdate(opts ...sql.LockOption) *SettlementItemQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SettlementItemQuery) ForShare(opts ...sql.LockOption) *SettlementItemQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SettlementItemGroupBy is the group-by builder for SettlementItem entities.
type SettlementItemGroupBy struct {
	selector
	build *SettlementItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SettlementItemGroupBy) Aggregate(fns ...AggregateFunc) *SettlementItemGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SettlementItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SettlementItemQuery, *SettlementItemGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SettlementItemGroupBy) sqlScan(ctx context.Context, root *SettlementItemQuery, v any) error {
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

// SettlementItemSelect is the builder for selecting fields of SettlementItem entities.
type SettlementItemSelect struct {
	*SettlementItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SettlementItemSelect) Aggregate(fns ...AggregateFunc) *SettlementItemSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SettlementItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SettlementItemQuery, *SettlementItemSelect](ctx, _s.SettlementItemQuery, _s, _s.inters, v)
}

func (_s *SettlementItemSelect) sqlScan(ctx context.Context, root *SettlementItemQuery, v any) error {
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
