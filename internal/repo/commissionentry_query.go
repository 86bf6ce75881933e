// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// CommissionEntryQuery is the builder for querying CommissionEntry entities.
type CommissionEntryQuery struct {
	config
	ctx             *QueryContext
	order           []commissionentry.OrderOption
	inters          []Interceptor
	predicates      []predicate.CommissionEntry
	withFacility    *FacilityQuery
	withTransaction *TransactionQuery
	withItems       *SettlementItemQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CommissionEntryQuery builder.
func (_q *CommissionEntryQuery) Where(ps ...predicate.CommissionEntry) *CommissionEntryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CommissionEntryQuery) Limit(limit int) *CommissionEntryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CommissionEntryQuery) Offset(offset int) *CommissionEntryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CommissionEntryQuery) Unique(unique bool) *CommissionEntryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CommissionEntryQuery) Order(o ...commissionentry.OrderOption) *CommissionEntryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFacility chains the current query on the "facility" edge.
func (_q *CommissionEntryQuery) QueryFacility() *FacilityQuery {
	query := (&FacilityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionentry.Table, commissionentry.FieldID, selector),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionentry.FacilityTable, commissionentry.FacilityColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTransaction chains the current query on the "transaction" edge.
func (_q *CommissionEntryQuery) QueryTransaction() *TransactionQuery {
	query := (&TransactionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionentry.Table, commissionentry.FieldID, selector),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionentry.TransactionTable, commissionentry.TransactionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItems chains the current query on the "items" edge.
func (_q *CommissionEntryQuery) QueryItems() *SettlementItemQuery {
	query := (&SettlementItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionentry.Table, commissionentry.FieldID, selector),
			sqlgraph.To(settlementitem.Table, settlementitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, commissionentry.ItemsTable, commissionentry.ItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CommissionEntry entity from the query.
// Returns a *NotFoundError when no CommissionEntry was found.
func (_q *CommissionEntryQuery) First(ctx context.Context) (*CommissionEntry, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{commissionentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CommissionEntryQuery) FirstX(ctx context.Context) *CommissionEntry {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CommissionEntry ID from the query.
// Returns a *NotFoundError when no CommissionEntry ID was found.
func (_q *CommissionEntryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{commissionentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CommissionEntryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CommissionEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CommissionEntry entity is found.
// Returns a *NotFoundError when no CommissionEntry entities are found.
func (_q *CommissionEntryQuery) Only(ctx context.Context) (*CommissionEntry, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{commissionentry.Label}
	default:
		return nil, &NotSingularError{commissionentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CommissionEntryQuery) OnlyX(ctx context.Context) *CommissionEntry {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CommissionEntry ID in the query.
// Returns a *NotSingularError when more than one CommissionEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CommissionEntryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{commissionentry.Label}
	default:
		err = &NotSingularError{commissionentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CommissionEntryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CommissionEntries.
func (_q *CommissionEntryQuery) All(ctx context.Context) ([]*CommissionEntry, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CommissionEntry, *CommissionEntryQuery]()
	return withInterceptors[[]*CommissionEntry](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CommissionEntryQuery) AllX(ctx context.Context) []*CommissionEntry {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CommissionEntry IDs.
func (_q *CommissionEntryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(commissionentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CommissionEntryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CommissionEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CommissionEntryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CommissionEntryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CommissionEntryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CommissionEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CommissionEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CommissionEntryQuery) Clone() *CommissionEntryQuery {
	if _q == nil {
		return nil
	}
	return &CommissionEntryQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]commissionentry.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.CommissionEntry{}, _q.predicates...),
		withFacility:    _q.withFacility.Clone(),
		withTransaction: _q.withTransaction.Clone(),
		withItems:       _q.withItems.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFacility tells the query-builder to eager-load the nodes that are connected to
// the "facility" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommissionEntryQuery) WithFacility(opts ...func(*FacilityQuery)) *CommissionEntryQuery {
	query := (&FacilityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFacility = query
	return _q
}

// WithTransaction tells the query-builder to eager-load the nodes that are connected to
// the "transaction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommissionEntryQuery) WithTransaction(opts ...func(*TransactionQuery)) *CommissionEntryQuery {
	query := (&TransactionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTransaction = query
	return _q
}

// WithItems tells the query-builder to eager-load the nodes that are connected to
// the "items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommissionEntryQuery) WithItems(opts ...func(*SettlementItemQuery)) *CommissionEntryQuery {
	query := (&SettlementItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItems = query
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
//	client.CommissionEntry.Query().
//		GroupBy(commissionentry.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *CommissionEntryQuery) GroupBy(field string, fields ...string) *CommissionEntryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CommissionEntryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = commissionentry.Label
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
//	client.CommissionEntry.Query().
//		Select(commissionentry.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *CommissionEntryQuery) Select(fields ...string) *CommissionEntrySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CommissionEntrySelect{CommissionEntryQuery: _q}
	sbuild.label = commissionentry.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CommissionEntrySelect configured with the given aggregations.
func (_q *CommissionEntryQuery) Aggregate(fns ...AggregateFunc) *CommissionEntrySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CommissionEntryQuery) prepareQuery(ctx context.Context) error {
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
		if !commissionentry.ValidColumn(f) {
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

func (_q *CommissionEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CommissionEntry, error) {
	var (
		nodes       = []*CommissionEntry{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withFacility != nil,
			_q.withTransaction != nil,
			_q.withItems != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CommissionEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CommissionEntry{config: _q.config}
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
	if query := _q.withFacility; query != nil {
		if err := _q.loadFacility(ctx, query, nodes, nil,
			func(n *CommissionEntry, e *Facility) { n.Edges.Facility = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTransaction; query != nil {
		if err := _q.loadTransaction(ctx, query, nodes, nil,
			func(n *CommissionEntry, e *Transaction) { n.Edges.Transaction = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withItems; query != nil {
		if err := _q.loadItems(ctx, query, nodes,
			func(n *CommissionEntry) { n.Edges.Items = []*SettlementItem{} },
			func(n *CommissionEntry, e *SettlementItem) { n.Edges.Items = append(n.Edges.Items, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CommissionEntryQuery) loadFacility(ctx context.Context, query *FacilityQuery, nodes []*CommissionEntry, init func(*CommissionEntry), assign func(*CommissionEntry, *Facility)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CommissionEntry)
	for i := range nodes {
		fk := nodes[i].FacilityID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(facility.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "facility_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CommissionEntryQuery) loadTransaction(ctx context.Context, query *TransactionQuery, nodes []*CommissionEntry, init func(*CommissionEntry), assign func(*CommissionEntry, *Transaction)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CommissionEntry)
	for i := range nodes {
		fk := nodes[i].TransactionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(transaction.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "transaction_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CommissionEntryQuery) loadItems(ctx context.Context, query *SettlementItemQuery, nodes []*CommissionEntry, init func(*CommissionEntry), assign func(*CommissionEntry, *SettlementItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*CommissionEntry)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(settlementitem.FieldEntryID)
	}
	query.Where(predicate.SettlementItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(commissionentry.ItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EntryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "entry_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CommissionEntryQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CommissionEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(commissionentry.Table, commissionentry.Columns, sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commissionentry.FieldID)
		for i := range fields {
			if fields[i] != commissionentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFacility != nil {
			_spec.Node.AddColumnOnce(commissionentry.FieldFacilityID)
		}
		if _q.withTransaction != nil {
			_spec.Node.AddColumnOnce(commissionentry.FieldTransactionID)
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

func (_q *CommissionEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(commissionentry.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = commissionentry.Columns
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
func (_q *CommissionEntryQuery) ForUpdate(opts ...sql.LockOption) *CommissionEntryQuery {
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
func (_q *CommissionEntryQuery) ForShare(opts ...sql.LockOption) *CommissionEntryQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CommissionEntryGroupBy is the group-by builder for CommissionEntry entities.
type CommissionEntryGroupBy struct {
	selector
	build *CommissionEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CommissionEntryGroupBy) Aggregate(fns ...AggregateFunc) *CommissionEntryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CommissionEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CommissionEntryQuery, *CommissionEntryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CommissionEntryGroupBy) sqlScan(ctx context.Context, root *CommissionEntryQuery, v any) error {
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

// CommissionEntrySelect is the builder for selecting fields of CommissionEntry entities.
type CommissionEntrySelect struct {
	*CommissionEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CommissionEntrySelect) Aggregate(fns ...AggregateFunc) *CommissionEntrySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CommissionEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CommissionEntryQuery, *CommissionEntrySelect](ctx, _s.CommissionEntryQuery, _s, _s.inters, v)
}

func (_s *CommissionEntrySelect) sqlScan(ctx context.Context, root *CommissionEntryQuery, v any) error {
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
