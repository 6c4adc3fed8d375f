// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"querylens/internal/gateway/ent/migrate"

	"querylens/internal/gateway/ent/auditlog"
	"querylens/internal/gateway/ent/groupitem"
	"querylens/internal/gateway/ent/querygroup"
	"querylens/internal/gateway/ent/searchquery"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// GroupItem is the client for interacting with the GroupItem builders.
	GroupItem *GroupItemClient
	// QueryGroup is the client for interacting with the QueryGroup builders.
	QueryGroup *QueryGroupClient
	// SearchQuery is the client for interacting with the SearchQuery builders.
	SearchQuery *SearchQueryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.GroupItem = NewGroupItemClient(c.config)
	c.QueryGroup = NewQueryGroupClient(c.config)
	c.SearchQuery = NewSearchQueryClient(c.config)
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
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		AuditLog:    NewAuditLogClient(cfg),
		GroupItem:   NewGroupItemClient(cfg),
		QueryGroup:  NewQueryGroupClient(cfg),
		SearchQuery: NewSearchQueryClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		AuditLog:    NewAuditLogClient(cfg),
		GroupItem:   NewGroupItemClient(cfg),
		QueryGroup:  NewQueryGroupClient(cfg),
		SearchQuery: NewSearchQueryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
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
	c.AuditLog.Use(hooks...)
	c.GroupItem.Use(hooks...)
	c.QueryGroup.Use(hooks...)
	c.SearchQuery.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AuditLog.Intercept(interceptors...)
	c.GroupItem.Intercept(interceptors...)
	c.QueryGroup.Intercept(interceptors...)
	c.SearchQuery.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *GroupItemMutation:
		return c.GroupItem.mutate(ctx, m)
	case *QueryGroupMutation:
		return c.QueryGroup.mutate(ctx, m)
	case *SearchQueryMutation:
		return c.SearchQuery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// GroupItemClient is a client for the GroupItem schema.
type GroupItemClient struct {
	config
}

// NewGroupItemClient returns a client for the GroupItem from the given config.
func NewGroupItemClient(c config) *GroupItemClient {
	return &GroupItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupitem.Hooks(f(g(h())))`.
func (c *GroupItemClient) Use(hooks ...Hook) {
	c.hooks.GroupItem = append(c.hooks.GroupItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupitem.Intercept(f(g(h())))`.
func (c *GroupItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupItem = append(c.inters.GroupItem, interceptors...)
}

// Create returns a builder for creating a GroupItem entity.
func (c *GroupItemClient) Create() *GroupItemCreate {
	mutation := newGroupItemMutation(c.config, OpCreate)
	return &GroupItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupItem entities.
func (c *GroupItemClient) CreateBulk(builders ...*GroupItemCreate) *GroupItemCreateBulk {
	return &GroupItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupItemClient) MapCreateBulk(slice any, setFunc func(*GroupItemCreate, int)) *GroupItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupItemCreateBulk{err: fmt.Errorf("calling to GroupItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupItem.
func (c *GroupItemClient) Update() *GroupItemUpdate {
	mutation := newGroupItemMutation(c.config, OpUpdate)
	return &GroupItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupItemClient) UpdateOne(_m *GroupItem) *GroupItemUpdateOne {
	mutation := newGroupItemMutation(c.config, OpUpdateOne, withGroupItem(_m))
	return &GroupItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupItemClient) UpdateOneID(id int) *GroupItemUpdateOne {
	mutation := newGroupItemMutation(c.config, OpUpdateOne, withGroupItemID(id))
	return &GroupItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupItem.
func (c *GroupItemClient) Delete() *GroupItemDelete {
	mutation := newGroupItemMutation(c.config, OpDelete)
	return &GroupItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupItemClient) DeleteOne(_m *GroupItem) *GroupItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupItemClient) DeleteOneID(id int) *GroupItemDeleteOne {
	builder := c.Delete().Where(groupitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupItemDeleteOne{builder}
}

// Query returns a query builder for GroupItem.
func (c *GroupItemClient) Query() *GroupItemQuery {
	return &GroupItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupItem},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupItem entity by its id.
func (c *GroupItemClient) Get(ctx context.Context, id int) (*GroupItem, error) {
	return c.Query().Where(groupitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupItemClient) GetX(ctx context.Context, id int) *GroupItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GroupItemClient) Hooks() []Hook {
	return c.hooks.GroupItem
}

// Interceptors returns the client interceptors.
func (c *GroupItemClient) Interceptors() []Interceptor {
	return c.inters.GroupItem
}

func (c *GroupItemClient) mutate(ctx context.Context, m *GroupItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupItem mutation op: %q", m.Op())
	}
}

// QueryGroupClient is a client for the QueryGroup schema.
type QueryGroupClient struct {
	config
}

// NewQueryGroupClient returns a client for the QueryGroup from the given config.
func NewQueryGroupClient(c config) *QueryGroupClient {
	return &QueryGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `querygroup.Hooks(f(g(h())))`.
func (c *QueryGroupClient) Use(hooks ...Hook) {
	c.hooks.QueryGroup = append(c.hooks.QueryGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `querygroup.Intercept(f(g(h())))`.
func (c *QueryGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueryGroup = append(c.inters.QueryGroup, interceptors...)
}

// Create returns a builder for creating a QueryGroup entity.
func (c *QueryGroupClient) Create() *QueryGroupCreate {
	mutation := newQueryGroupMutation(c.config, OpCreate)
	return &QueryGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueryGroup entities.
func (c *QueryGroupClient) CreateBulk(builders ...*QueryGroupCreate) *QueryGroupCreateBulk {
	return &QueryGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueryGroupClient) MapCreateBulk(slice any, setFunc func(*QueryGroupCreate, int)) *QueryGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueryGroupCreateBulk{err: fmt.Errorf("calling to QueryGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueryGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueryGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueryGroup.
func (c *QueryGroupClient) Update() *QueryGroupUpdate {
	mutation := newQueryGroupMutation(c.config, OpUpdate)
	return &QueryGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueryGroupClient) UpdateOne(_m *QueryGroup) *QueryGroupUpdateOne {
	mutation := newQueryGroupMutation(c.config, OpUpdateOne, withQueryGroup(_m))
	return &QueryGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueryGroupClient) UpdateOneID(id string) *QueryGroupUpdateOne {
	mutation := newQueryGroupMutation(c.config, OpUpdateOne, withQueryGroupID(id))
	return &QueryGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueryGroup.
func (c *QueryGroupClient) Delete() *QueryGroupDelete {
	mutation := newQueryGroupMutation(c.config, OpDelete)
	return &QueryGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueryGroupClient) DeleteOne(_m *QueryGroup) *QueryGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueryGroupClient) DeleteOneID(id string) *QueryGroupDeleteOne {
	builder := c.Delete().Where(querygroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueryGroupDeleteOne{builder}
}

// Query returns a query builder for QueryGroup.
func (c *QueryGroupClient) Query() *QueryGroupQuery {
	return &QueryGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueryGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a QueryGroup entity by its id.
func (c *QueryGroupClient) Get(ctx context.Context, id string) (*QueryGroup, error) {
	return c.Query().Where(querygroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueryGroupClient) GetX(ctx context.Context, id string) *QueryGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueryGroupClient) Hooks() []Hook {
	return c.hooks.QueryGroup
}

// Interceptors returns the client interceptors.
func (c *QueryGroupClient) Interceptors() []Interceptor {
	return c.inters.QueryGroup
}

func (c *QueryGroupClient) mutate(ctx context.Context, m *QueryGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueryGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueryGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueryGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueryGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueryGroup mutation op: %q", m.Op())
	}
}

// SearchQueryClient is a client for the SearchQuery schema.
type SearchQueryClient struct {
	config
}

// NewSearchQueryClient returns a client for the SearchQuery from the given config.
func NewSearchQueryClient(c config) *SearchQueryClient {
	return &SearchQueryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchquery.Hooks(f(g(h())))`.
func (c *SearchQueryClient) Use(hooks ...Hook) {
	c.hooks.SearchQuery = append(c.hooks.SearchQuery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchquery.Intercept(f(g(h())))`.
func (c *SearchQueryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchQuery = append(c.inters.SearchQuery, interceptors...)
}

// Create returns a builder for creating a SearchQuery entity.
func (c *SearchQueryClient) Create() *SearchQueryCreate {
	mutation := newSearchQueryMutation(c.config, OpCreate)
	return &SearchQueryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchQuery entities.
func (c *SearchQueryClient) CreateBulk(builders ...*SearchQueryCreate) *SearchQueryCreateBulk {
	return &SearchQueryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchQueryClient) MapCreateBulk(slice any, setFunc func(*SearchQueryCreate, int)) *SearchQueryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchQueryCreateBulk{err: fmt.Errorf("calling to SearchQueryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchQueryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchQueryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchQuery.
func (c *SearchQueryClient) Update() *SearchQueryUpdate {
	mutation := newSearchQueryMutation(c.config, OpUpdate)
	return &SearchQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchQueryClient) UpdateOne(_m *SearchQuery) *SearchQueryUpdateOne {
	mutation := newSearchQueryMutation(c.config, OpUpdateOne, withSearchQuery(_m))
	return &SearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchQueryClient) UpdateOneID(id string) *SearchQueryUpdateOne {
	mutation := newSearchQueryMutation(c.config, OpUpdateOne, withSearchQueryID(id))
	return &SearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchQuery.
func (c *SearchQueryClient) Delete() *SearchQueryDelete {
	mutation := newSearchQueryMutation(c.config, OpDelete)
	return &SearchQueryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchQueryClient) DeleteOne(_m *SearchQuery) *SearchQueryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchQueryClient) DeleteOneID(id string) *SearchQueryDeleteOne {
	builder := c.Delete().Where(searchquery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchQueryDeleteOne{builder}
}

// Query returns a query builder for SearchQuery.
func (c *SearchQueryClient) Query() *SearchQueryQuery {
	return &SearchQueryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchQuery},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchQuery entity by its id.
func (c *SearchQueryClient) Get(ctx context.Context, id string) (*SearchQuery, error) {
	return c.Query().Where(searchquery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchQueryClient) GetX(ctx context.Context, id string) *SearchQuery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SearchQueryClient) Hooks() []Hook {
	return c.hooks.SearchQuery
}

// Interceptors returns the client interceptors.
func (c *SearchQueryClient) Interceptors() []Interceptor {
	return c.inters.SearchQuery
}

func (c *SearchQueryClient) mutate(ctx context.Context, m *SearchQueryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchQueryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchQueryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchQuery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, GroupItem, QueryGroup, SearchQuery []ent.Hook
	}
	inters struct {
		AuditLog, GroupItem, QueryGroup, SearchQuery []ent.Interceptor
	}
)
