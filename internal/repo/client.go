// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/arogyahq/arogya_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/idempotencykey"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CommissionEntry is the client for interacting with the CommissionEntry builders.
	CommissionEntry *CommissionEntryClient
	// CommissionPolicy is the client for interacting with the CommissionPolicy builders.
	CommissionPolicy *CommissionPolicyClient
	// Facility is the client for interacting with the Facility builders.
	Facility *FacilityClient
	// IdempotencyKey is the client for interacting with the IdempotencyKey builders.
	IdempotencyKey *IdempotencyKeyClient
	// Settlement is the client for interacting with the Settlement builders.
	Settlement *SettlementClient
	// SettlementItem is the client for interacting with the SettlementItem builders.
	SettlementItem *SettlementItemClient
	// Transaction is the client for interacting with the Transaction builders.
	Transaction *TransactionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CommissionEntry = NewCommissionEntryClient(c.config)
	c.CommissionPolicy = NewCommissionPolicyClient(c.config)
	c.Facility = NewFacilityClient(c.config)
	c.IdempotencyKey = NewIdempotencyKeyClient(c.config)
	c.Settlement = NewSettlementClient(c.config)
	c.SettlementItem = NewSettlementItemClient(c.config)
	c.Transaction = NewTransactionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CommissionEntry:  NewCommissionEntryClient(cfg),
		CommissionPolicy: NewCommissionPolicyClient(cfg),
		Facility:         NewFacilityClient(cfg),
		IdempotencyKey:   NewIdempotencyKeyClient(cfg),
		Settlement:       NewSettlementClient(cfg),
		SettlementItem:   NewSettlementItemClient(cfg),
		Transaction:      NewTransactionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CommissionEntry:  NewCommissionEntryClient(cfg),
		CommissionPolicy: NewCommissionPolicyClient(cfg),
		Facility:         NewFacilityClient(cfg),
		IdempotencyKey:   NewIdempotencyKeyClient(cfg),
		Settlement:       NewSettlementClient(cfg),
		SettlementItem:   NewSettlementItemClient(cfg),
		Transaction:      NewTransactionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CommissionEntry.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CommissionEntry, c.CommissionPolicy, c.Facility, c.IdempotencyKey,
		c.Settlement, c.SettlementItem, c.Transaction,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CommissionEntry, c.CommissionPolicy, c.Facility, c.IdempotencyKey,
		c.Settlement, c.SettlementItem, c.Transaction,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CommissionEntryMutation:
		return c.CommissionEntry.mutate(ctx, m)
	case *CommissionPolicyMutation:
		return c.CommissionPolicy.mutate(ctx, m)
	case *FacilityMutation:
		return c.Facility.mutate(ctx, m)
	case *IdempotencyKeyMutation:
		return c.IdempotencyKey.mutate(ctx, m)
	case *SettlementMutation:
		return c.Settlement.mutate(ctx, m)
	case *SettlementItemMutation:
		return c.SettlementItem.mutate(ctx, m)
	case *TransactionMutation:
		return c.Transaction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// CommissionEntryClient is a client for the CommissionEntry schema.
type CommissionEntryClient struct {
	config
}

// NewCommissionEntryClient returns a client for the CommissionEntry from the given config.
func NewCommissionEntryClient(c config) *CommissionEntryClient {
	return &CommissionEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commissionentry.Hooks(f(g(h())))`.
func (c *CommissionEntryClient) Use(hooks ...Hook) {
	c.hooks.CommissionEntry = append(c.hooks.CommissionEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commissionentry.Intercept(f(g(h())))`.
func (c *CommissionEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommissionEntry = append(c.inters.CommissionEntry, interceptors...)
}

// Create returns a builder for creating a CommissionEntry entity.
func (c *CommissionEntryClient) Create() *CommissionEntryCreate {
	mutation := newCommissionEntryMutation(c.config, OpCreate)
	return &CommissionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommissionEntry entities.
func (c *CommissionEntryClient) CreateBulk(builders ...*CommissionEntryCreate) *CommissionEntryCreateBulk {
	return &CommissionEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommissionEntryClient) MapCreateBulk(slice any, setFunc func(*CommissionEntryCreate, int)) *CommissionEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommissionEntryCreateBulk{err: fmt.Errorf("calling to CommissionEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommissionEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommissionEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommissionEntry.
func (c *CommissionEntryClient) Update() *CommissionEntryUpdate {
	mutation := newCommissionEntryMutation(c.config, OpUpdate)
	return &CommissionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommissionEntryClient) UpdateOne(_m *CommissionEntry) *CommissionEntryUpdateOne {
	mutation := newCommissionEntryMutation(c.config, OpUpdateOne, withCommissionEntry(_m))
	return &CommissionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommissionEntryClient) UpdateOneID(id uuid.UUID) *CommissionEntryUpdateOne {
	mutation := newCommissionEntryMutation(c.config, OpUpdateOne, withCommissionEntryID(id))
	return &CommissionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommissionEntry.
func (c *CommissionEntryClient) Delete() *CommissionEntryDelete {
	mutation := newCommissionEntryMutation(c.config, OpDelete)
	return &CommissionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommissionEntryClient) DeleteOne(_m *CommissionEntry) *CommissionEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommissionEntryClient) DeleteOneID(id uuid.UUID) *CommissionEntryDeleteOne {
	builder := c.Delete().Where(commissionentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommissionEntryDeleteOne{builder}
}

// Query returns a query builder for CommissionEntry.
func (c *CommissionEntryClient) Query() *CommissionEntryQuery {
	return &CommissionEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommissionEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CommissionEntry entity by its id.
func (c *CommissionEntryClient) Get(ctx context.Context, id uuid.UUID) (*CommissionEntry, error) {
	return c.Query().Where(commissionentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommissionEntryClient) GetX(ctx context.Context, id uuid.UUID) *CommissionEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFacility queries the facility edge of a CommissionEntry.
func (c *CommissionEntryClient) QueryFacility(_m *CommissionEntry) *FacilityQuery {
	query := (&FacilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionentry.Table, commissionentry.FieldID, id),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionentry.FacilityTable, commissionentry.FacilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransaction queries the transaction edge of a CommissionEntry.
func (c *CommissionEntryClient) QueryTransaction(_m *CommissionEntry) *TransactionQuery {
	query := (&TransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionentry.Table, commissionentry.FieldID, id),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionentry.TransactionTable, commissionentry.TransactionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a CommissionEntry.
func (c *CommissionEntryClient) QueryItems(_m *CommissionEntry) *SettlementItemQuery {
	query := (&SettlementItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionentry.Table, commissionentry.FieldID, id),
			sqlgraph.To(settlementitem.Table, settlementitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, commissionentry.ItemsTable, commissionentry.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommissionEntryClient) Hooks() []Hook {
	return c.hooks.CommissionEntry
}

// Interceptors returns the client interceptors.
func (c *CommissionEntryClient) Interceptors() []Interceptor {
	return c.inters.CommissionEntry
}

func (c *CommissionEntryClient) mutate(ctx context.Context, m *CommissionEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommissionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommissionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommissionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommissionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CommissionEntry mutation op: %q", m.Op())
	}
}

// CommissionPolicyClient is a client for the CommissionPolicy schema.
type CommissionPolicyClient struct {
	config
}

// NewCommissionPolicyClient returns a client for the CommissionPolicy from the given config.
func NewCommissionPolicyClient(c config) *CommissionPolicyClient {
	return &CommissionPolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commissionpolicy.Hooks(f(g(h())))`.
func (c *CommissionPolicyClient) Use(hooks ...Hook) {
	c.hooks.CommissionPolicy = append(c.hooks.CommissionPolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commissionpolicy.Intercept(f(g(h())))`.
func (c *CommissionPolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommissionPolicy = append(c.inters.CommissionPolicy, interceptors...)
}

// Create returns a builder for creating a CommissionPolicy entity.
func (c *CommissionPolicyClient) Create() *CommissionPolicyCreate {
	mutation := newCommissionPolicyMutation(c.config, OpCreate)
	return &CommissionPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommissionPolicy entities.
func (c *CommissionPolicyClient) CreateBulk(builders ...*CommissionPolicyCreate) *CommissionPolicyCreateBulk {
	return &CommissionPolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommissionPolicyClient) MapCreateBulk(slice any, setFunc func(*CommissionPolicyCreate, int)) *CommissionPolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommissionPolicyCreateBulk{err: fmt.Errorf("calling to CommissionPolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommissionPolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommissionPolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommissionPolicy.
func (c *CommissionPolicyClient) Update() *CommissionPolicyUpdate {
	mutation := newCommissionPolicyMutation(c.config, OpUpdate)
	return &CommissionPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommissionPolicyClient) UpdateOne(_m *CommissionPolicy) *CommissionPolicyUpdateOne {
	mutation := newCommissionPolicyMutation(c.config, OpUpdateOne, withCommissionPolicy(_m))
	return &CommissionPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommissionPolicyClient) UpdateOneID(id uuid.UUID) *CommissionPolicyUpdateOne {
	mutation := newCommissionPolicyMutation(c.config, OpUpdateOne, withCommissionPolicyID(id))
	return &CommissionPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommissionPolicy.
func (c *CommissionPolicyClient) Delete() *CommissionPolicyDelete {
	mutation := newCommissionPolicyMutation(c.config, OpDelete)
	return &CommissionPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommissionPolicyClient) DeleteOne(_m *CommissionPolicy) *CommissionPolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommissionPolicyClient) DeleteOneID(id uuid.UUID) *CommissionPolicyDeleteOne {
	builder := c.Delete().Where(commissionpolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommissionPolicyDeleteOne{builder}
}

// Query returns a query builder for CommissionPolicy.
func (c *CommissionPolicyClient) Query() *CommissionPolicyQuery {
	return &CommissionPolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommissionPolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a CommissionPolicy entity by its id.
func (c *CommissionPolicyClient) Get(ctx context.Context, id uuid.UUID) (*CommissionPolicy, error) {
	return c.Query().Where(commissionpolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommissionPolicyClient) GetX(ctx context.Context, id uuid.UUID) *CommissionPolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFacility queries the facility edge of a CommissionPolicy.
func (c *CommissionPolicyClient) QueryFacility(_m *CommissionPolicy) *FacilityQuery {
	query := (&FacilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionpolicy.Table, commissionpolicy.FieldID, id),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, commissionpolicy.FacilityTable, commissionpolicy.FacilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommissionPolicyClient) Hooks() []Hook {
	return c.hooks.CommissionPolicy
}

// Interceptors returns the client interceptors.
func (c *CommissionPolicyClient) Interceptors() []Interceptor {
	return c.inters.CommissionPolicy
}

func (c *CommissionPolicyClient) mutate(ctx context.Context, m *CommissionPolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommissionPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommissionPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommissionPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommissionPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CommissionPolicy mutation op: %q", m.Op())
	}
}

// FacilityClient is a client for the Facility schema.
type FacilityClient struct {
	config
}

// NewFacilityClient returns a client for the Facility from the given config.
func NewFacilityClient(c config) *FacilityClient {
	return &FacilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `facility.Hooks(f(g(h())))`.
func (c *FacilityClient) Use(hooks ...Hook) {
	c.hooks.Facility = append(c.hooks.Facility, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `facility.Intercept(f(g(h())))`.
func (c *FacilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Facility = append(c.inters.Facility, interceptors...)
}

// Create returns a builder for creating a Facility entity.
func (c *FacilityClient) Create() *FacilityCreate {
	mutation := newFacilityMutation(c.config, OpCreate)
	return &FacilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Facility entities.
func (c *FacilityClient) CreateBulk(builders ...*FacilityCreate) *FacilityCreateBulk {
	return &FacilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FacilityClient) MapCreateBulk(slice any, setFunc func(*FacilityCreate, int)) *FacilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FacilityCreateBulk{err: fmt.Errorf("calling to FacilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FacilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FacilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Facility.
func (c *FacilityClient) Update() *FacilityUpdate {
	mutation := newFacilityMutation(c.config, OpUpdate)
	return &FacilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FacilityClient) UpdateOne(_m *Facility) *FacilityUpdateOne {
	mutation := newFacilityMutation(c.config, OpUpdateOne, withFacility(_m))
	return &FacilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FacilityClient) UpdateOneID(id uuid.UUID) *FacilityUpdateOne {
	mutation := newFacilityMutation(c.config, OpUpdateOne, withFacilityID(id))
	return &FacilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Facility.
func (c *FacilityClient) Delete() *FacilityDelete {
	mutation := newFacilityMutation(c.config, OpDelete)
	return &FacilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FacilityClient) DeleteOne(_m *Facility) *FacilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FacilityClient) DeleteOneID(id uuid.UUID) *FacilityDeleteOne {
	builder := c.Delete().Where(facility.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FacilityDeleteOne{builder}
}

// Query returns a query builder for Facility.
func (c *FacilityClient) Query() *FacilityQuery {
	return &FacilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFacility},
		inters: c.Interceptors(),
	}
}

// Get returns a Facility entity by its id.
func (c *FacilityClient) Get(ctx context.Context, id uuid.UUID) (*Facility, error) {
	return c.Query().Where(facility.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FacilityClient) GetX(ctx context.Context, id uuid.UUID) *Facility {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPolicy queries the policy edge of a Facility.
func (c *FacilityClient) QueryPolicy(_m *Facility) *CommissionPolicyQuery {
	query := (&CommissionPolicyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facility.Table, facility.FieldID, id),
			sqlgraph.To(commissionpolicy.Table, commissionpolicy.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, facility.PolicyTable, facility.PolicyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransactions queries the transactions edge of a Facility.
func (c *FacilityClient) QueryTransactions(_m *Facility) *TransactionQuery {
	query := (&TransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facility.Table, facility.FieldID, id),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, facility.TransactionsTable, facility.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a Facility.
func (c *FacilityClient) QueryEntries(_m *Facility) *CommissionEntryQuery {
	query := (&CommissionEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facility.Table, facility.FieldID, id),
			sqlgraph.To(commissionentry.Table, commissionentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, facility.EntriesTable, facility.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySettlements queries the settlements edge of a Facility.
func (c *FacilityClient) QuerySettlements(_m *Facility) *SettlementQuery {
	query := (&SettlementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facility.Table, facility.FieldID, id),
			sqlgraph.To(settlement.Table, settlement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, facility.SettlementsTable, facility.SettlementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FacilityClient) Hooks() []Hook {
	return c.hooks.Facility
}

// Interceptors returns the client interceptors.
func (c *FacilityClient) Interceptors() []Interceptor {
	return c.inters.Facility
}

func (c *FacilityClient) mutate(ctx context.Context, m *FacilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FacilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FacilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FacilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FacilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Facility mutation op: %q", m.Op())
	}
}

// IdempotencyKeyClient is a client for the IdempotencyKey schema.
type IdempotencyKeyClient struct {
	config
}

// NewIdempotencyKeyClient returns a client for the IdempotencyKey from the given config.
func NewIdempotencyKeyClient(c config) *IdempotencyKeyClient {
	return &IdempotencyKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `idempotencykey.Hooks(f(g(h())))`.
func (c *IdempotencyKeyClient) Use(hooks ...Hook) {
	c.hooks.IdempotencyKey = append(c.hooks.IdempotencyKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `idempotencykey.Intercept(f(g(h())))`.
func (c *IdempotencyKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdempotencyKey = append(c.inters.IdempotencyKey, interceptors...)
}

// Create returns a builder for creating a IdempotencyKey entity.
func (c *IdempotencyKeyClient) Create() *IdempotencyKeyCreate {
	mutation := newIdempotencyKeyMutation(c.config, OpCreate)
	return &IdempotencyKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdempotencyKey entities.
func (c *IdempotencyKeyClient) CreateBulk(builders ...*IdempotencyKeyCreate) *IdempotencyKeyCreateBulk {
	return &IdempotencyKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdempotencyKeyClient) MapCreateBulk(slice any, setFunc func(*IdempotencyKeyCreate, int)) *IdempotencyKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdempotencyKeyCreateBulk{err: fmt.Errorf("calling to IdempotencyKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdempotencyKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdempotencyKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Update() *IdempotencyKeyUpdate {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdate)
	return &IdempotencyKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdempotencyKeyClient) UpdateOne(_m *IdempotencyKey) *IdempotencyKeyUpdateOne {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdateOne, withIdempotencyKey(_m))
	return &IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdempotencyKeyClient) UpdateOneID(id uuid.UUID) *IdempotencyKeyUpdateOne {
	mutation := newIdempotencyKeyMutation(c.config, OpUpdateOne, withIdempotencyKeyID(id))
	return &IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Delete() *IdempotencyKeyDelete {
	mutation := newIdempotencyKeyMutation(c.config, OpDelete)
	return &IdempotencyKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdempotencyKeyClient) DeleteOne(_m *IdempotencyKey) *IdempotencyKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdempotencyKeyClient) DeleteOneID(id uuid.UUID) *IdempotencyKeyDeleteOne {
	builder := c.Delete().Where(idempotencykey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdempotencyKeyDeleteOne{builder}
}

// Query returns a query builder for IdempotencyKey.
func (c *IdempotencyKeyClient) Query() *IdempotencyKeyQuery {
	return &IdempotencyKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdempotencyKey},
		inters: c.Interceptors(),
	}
}

// Get returns a IdempotencyKey entity by its id.
func (c *IdempotencyKeyClient) Get(ctx context.Context, id uuid.UUID) (*IdempotencyKey, error) {
	return c.Query().Where(idempotencykey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdempotencyKeyClient) GetX(ctx context.Context, id uuid.UUID) *IdempotencyKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IdempotencyKeyClient) Hooks() []Hook {
	return c.hooks.IdempotencyKey
}

// Interceptors returns the client interceptors.
func (c *IdempotencyKeyClient) Interceptors() []Interceptor {
	return c.inters.IdempotencyKey
}

func (c *IdempotencyKeyClient) mutate(ctx context.Context, m *IdempotencyKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdempotencyKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdempotencyKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdempotencyKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdempotencyKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown IdempotencyKey mutation op: %q", m.Op())
	}
}

// SettlementClient is a client for the Settlement schema.
type SettlementClient struct {
	config
}

// NewSettlementClient returns a client for the Settlement from the given config.
func NewSettlementClient(c config) *SettlementClient {
	return &SettlementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `settlement.Hooks(f(g(h())))`.
func (c *SettlementClient) Use(hooks ...Hook) {
	c.hooks.Settlement = append(c.hooks.Settlement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `settlement.Intercept(f(g(h())))`.
func (c *SettlementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Settlement = append(c.inters.Settlement, interceptors...)
}

// Create returns a builder for creating a Settlement entity.
func (c *SettlementClient) Create() *SettlementCreate {
	mutation := newSettlementMutation(c.config, OpCreate)
	return &SettlementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Settlement entities.
func (c *SettlementClient) CreateBulk(builders ...*SettlementCreate) *SettlementCreateBulk {
	return &SettlementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettlementClient) MapCreateBulk(slice any, setFunc func(*SettlementCreate, int)) *SettlementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettlementCreateBulk{err: fmt.Errorf("calling to SettlementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettlementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettlementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Settlement.
func (c *SettlementClient) Update() *SettlementUpdate {
	mutation := newSettlementMutation(c.config, OpUpdate)
	return &SettlementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettlementClient) UpdateOne(_m *Settlement) *SettlementUpdateOne {
	mutation := newSettlementMutation(c.config, OpUpdateOne, withSettlement(_m))
	return &SettlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettlementClient) UpdateOneID(id uuid.UUID) *SettlementUpdateOne {
	mutation := newSettlementMutation(c.config, OpUpdateOne, withSettlementID(id))
	return &SettlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Settlement.
func (c *SettlementClient) Delete() *SettlementDelete {
	mutation := newSettlementMutation(c.config, OpDelete)
	return &SettlementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettlementClient) DeleteOne(_m *Settlement) *SettlementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettlementClient) DeleteOneID(id uuid.UUID) *SettlementDeleteOne {
	builder := c.Delete().Where(settlement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettlementDeleteOne{builder}
}

// Query returns a query builder for Settlement.
func (c *SettlementClient) Query() *SettlementQuery {
	return &SettlementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSettlement},
		inters: c.Interceptors(),
	}
}

// Get returns a Settlement entity by its id.
func (c *SettlementClient) Get(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	return c.Query().Where(settlement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettlementClient) GetX(ctx context.Context, id uuid.UUID) *Settlement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFacility queries the facility edge of a Settlement.
func (c *SettlementClient) QueryFacility(_m *Settlement) *FacilityQuery {
	query := (&FacilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(settlement.Table, settlement.FieldID, id),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, settlement.FacilityTable, settlement.FacilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Settlement.
func (c *SettlementClient) QueryItems(_m *Settlement) *SettlementItemQuery {
	query := (&SettlementItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(settlement.Table, settlement.FieldID, id),
			sqlgraph.To(settlementitem.Table, settlementitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, settlement.ItemsTable, settlement.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SettlementClient) Hooks() []Hook {
	return c.hooks.Settlement
}

// Interceptors returns the client interceptors.
func (c *SettlementClient) Interceptors() []Interceptor {
	return c.inters.Settlement
}

func (c *SettlementClient) mutate(ctx context.Context, m *SettlementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettlementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettlementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettlementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Settlement mutation op: %q", m.Op())
	}
}

// SettlementItemClient is a client for the SettlementItem schema.
type SettlementItemClient struct {
	config
}

// NewSettlementItemClient returns a client for the SettlementItem from the given config.
func NewSettlementItemClient(c config) *SettlementItemClient {
	return &SettlementItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `settlementitem.Hooks(f(g(h())))`.
func (c *SettlementItemClient) Use(hooks ...Hook) {
	c.hooks.SettlementItem = append(c.hooks.SettlementItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `settlementitem.Intercept(f(g(h())))`.
func (c *SettlementItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.SettlementItem = append(c.inters.SettlementItem, interceptors...)
}

// Create returns a builder for creating a SettlementItem entity.
func (c *SettlementItemClient) Create() *SettlementItemCreate {
	mutation := newSettlementItemMutation(c.config, OpCreate)
	return &SettlementItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SettlementItem entities.
func (c *SettlementItemClient) CreateBulk(builders ...*SettlementItemCreate) *SettlementItemCreateBulk {
	return &SettlementItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettlementItemClient) MapCreateBulk(slice any, setFunc func(*SettlementItemCreate, int)) *SettlementItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettlementItemCreateBulk{err: fmt.Errorf("calling to SettlementItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettlementItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettlementItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SettlementItem.
func (c *SettlementItemClient) Update() *SettlementItemUpdate {
	mutation := newSettlementItemMutation(c.config, OpUpdate)
	return &SettlementItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettlementItemClient) UpdateOne(_m *SettlementItem) *SettlementItemUpdateOne {
	mutation := newSettlementItemMutation(c.config, OpUpdateOne, withSettlementItem(_m))
	return &SettlementItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettlementItemClient) UpdateOneID(id uuid.UUID) *SettlementItemUpdateOne {
	mutation := newSettlementItemMutation(c.config, OpUpdateOne, withSettlementItemID(id))
	return &SettlementItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SettlementItem.
func (c *SettlementItemClient) Delete() *SettlementItemDelete {
	mutation := newSettlementItemMutation(c.config, OpDelete)
	return &SettlementItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettlementItemClient) DeleteOne(_m *SettlementItem) *SettlementItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettlementItemClient) DeleteOneID(id uuid.UUID) *SettlementItemDeleteOne {
	builder := c.Delete().Where(settlementitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettlementItemDeleteOne{builder}
}

// Query returns a query builder for SettlementItem.
func (c *SettlementItemClient) Query() *SettlementItemQuery {
	return &SettlementItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSettlementItem},
		inters: c.Interceptors(),
	}
}

// Get returns a SettlementItem entity by its id.
func (c *SettlementItemClient) Get(ctx context.Context, id uuid.UUID) (*SettlementItem, error) {
	return c.Query().Where(settlementitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettlementItemClient) GetX(ctx context.Context, id uuid.UUID) *SettlementItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySettlement queries the settlement edge of a SettlementItem.
func (c *SettlementItemClient) QuerySettlement(_m *SettlementItem) *SettlementQuery {
	query := (&SettlementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(settlementitem.Table, settlementitem.FieldID, id),
			sqlgraph.To(settlement.Table, settlement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, settlementitem.SettlementTable, settlementitem.SettlementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntry queries the entry edge of a SettlementItem.
func (c *SettlementItemClient) QueryEntry(_m *SettlementItem) *CommissionEntryQuery {
	query := (&CommissionEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(settlementitem.Table, settlementitem.FieldID, id),
			sqlgraph.To(commissionentry.Table, commissionentry.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, settlementitem.EntryTable, settlementitem.EntryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SettlementItemClient) Hooks() []Hook {
	return c.hooks.SettlementItem
}

// Interceptors returns the client interceptors.
func (c *SettlementItemClient) Interceptors() []Interceptor {
	return c.inters.SettlementItem
}

func (c *SettlementItemClient) mutate(ctx context.Context, m *SettlementItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettlementItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettlementItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettlementItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettlementItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SettlementItem mutation op: %q", m.Op())
	}
}

// TransactionClient is a client for the Transaction schema.
type TransactionClient struct {
	config
}

// NewTransactionClient returns a client for the Transaction from the given config.
func NewTransactionClient(c config) *TransactionClient {
	return &TransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transaction.Hooks(f(g(h())))`.
func (c *TransactionClient) Use(hooks ...Hook) {
	c.hooks.Transaction = append(c.hooks.Transaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transaction.Intercept(f(g(h())))`.
func (c *TransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transaction = append(c.inters.Transaction, interceptors...)
}

// Create returns a builder for creating a Transaction entity.
func (c *TransactionClient) Create() *TransactionCreate {
	mutation := newTransactionMutation(c.config, OpCreate)
	return &TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transaction entities.
func (c *TransactionClient) CreateBulk(builders ...*TransactionCreate) *TransactionCreateBulk {
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransactionClient) MapCreateBulk(slice any, setFunc func(*TransactionCreate, int)) *TransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransactionCreateBulk{err: fmt.Errorf("calling to TransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transaction.
func (c *TransactionClient) Update() *TransactionUpdate {
	mutation := newTransactionMutation(c.config, OpUpdate)
	return &TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransactionClient) UpdateOne(_m *Transaction) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransaction(_m))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransactionClient) UpdateOneID(id uuid.UUID) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransactionID(id))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transaction.
func (c *TransactionClient) Delete() *TransactionDelete {
	mutation := newTransactionMutation(c.config, OpDelete)
	return &TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransactionClient) DeleteOne(_m *Transaction) *TransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransactionClient) DeleteOneID(id uuid.UUID) *TransactionDeleteOne {
	builder := c.Delete().Where(transaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransactionDeleteOne{builder}
}

// Query returns a query builder for Transaction.
func (c *TransactionClient) Query() *TransactionQuery {
	return &TransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a Transaction entity by its id.
func (c *TransactionClient) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return c.Query().Where(transaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransactionClient) GetX(ctx context.Context, id uuid.UUID) *Transaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFacility queries the facility edge of a Transaction.
func (c *TransactionClient) QueryFacility(_m *Transaction) *FacilityQuery {
	query := (&FacilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, id),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transaction.FacilityTable, transaction.FacilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a Transaction.
func (c *TransactionClient) QueryEntries(_m *Transaction) *CommissionEntryQuery {
	query := (&CommissionEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, id),
			sqlgraph.To(commissionentry.Table, commissionentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transaction.EntriesTable, transaction.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TransactionClient) Hooks() []Hook {
	return c.hooks.Transaction
}

// Interceptors returns the client interceptors.
func (c *TransactionClient) Interceptors() []Interceptor {
	return c.inters.Transaction
}

func (c *TransactionClient) mutate(ctx context.Context, m *TransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Transaction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CommissionEntry, CommissionPolicy, Facility, IdempotencyKey, Settlement,
		SettlementItem, Transaction []ent.Hook
	}
	inters struct {
		CommissionEntry, CommissionPolicy, Facility, IdempotencyKey, Settlement,
		SettlementItem, Transaction []ent.Interceptor
	}
)
