// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/techniq-app/techniq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent/coinevent"
	"github.com/techniq-app/techniq/ent/drillevent"
	"github.com/techniq-app/techniq/ent/feedpost"
	"github.com/techniq-app/techniq/ent/llmrequestevent"
	"github.com/techniq-app/techniq/ent/playerstate"
	"github.com/techniq-app/techniq/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CoinEvent is the client for interacting with the CoinEvent builders.
	CoinEvent *CoinEventClient
	// DrillEvent is the client for interacting with the DrillEvent builders.
	DrillEvent *DrillEventClient
	// FeedPost is the client for interacting with the FeedPost builders.
	FeedPost *FeedPostClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PlayerState is the client for interacting with the PlayerState builders.
	PlayerState *PlayerStateClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CoinEvent = NewCoinEventClient(c.config)
	c.DrillEvent = NewDrillEventClient(c.config)
	c.FeedPost = NewFeedPostClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PlayerState = NewPlayerStateClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		CoinEvent:       NewCoinEventClient(cfg),
		DrillEvent:      NewDrillEventClient(cfg),
		FeedPost:        NewFeedPostClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlayerState:     NewPlayerStateClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		CoinEvent:       NewCoinEventClient(cfg),
		DrillEvent:      NewDrillEventClient(cfg),
		FeedPost:        NewFeedPostClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlayerState:     NewPlayerStateClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CoinEvent.
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
		c.CoinEvent, c.DrillEvent, c.FeedPost, c.LLMRequestEvent, c.PlayerState,
		c.SessionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CoinEvent, c.DrillEvent, c.FeedPost, c.LLMRequestEvent, c.PlayerState,
		c.SessionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CoinEventMutation:
		return c.CoinEvent.mutate(ctx, m)
	case *DrillEventMutation:
		return c.DrillEvent.mutate(ctx, m)
	case *FeedPostMutation:
		return c.FeedPost.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PlayerStateMutation:
		return c.PlayerState.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CoinEventClient is a client for the CoinEvent schema.
type CoinEventClient struct {
	config
}

// NewCoinEventClient returns a client for the CoinEvent from the given config.
func NewCoinEventClient(c config) *CoinEventClient {
	return &CoinEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coinevent.Hooks(f(g(h())))`.
func (c *CoinEventClient) Use(hooks ...Hook) {
	c.hooks.CoinEvent = append(c.hooks.CoinEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coinevent.Intercept(f(g(h())))`.
func (c *CoinEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoinEvent = append(c.inters.CoinEvent, interceptors...)
}

// Create returns a builder for creating a CoinEvent entity.
func (c *CoinEventClient) Create() *CoinEventCreate {
	mutation := newCoinEventMutation(c.config, OpCreate)
	return &CoinEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoinEvent entities.
func (c *CoinEventClient) CreateBulk(builders ...*CoinEventCreate) *CoinEventCreateBulk {
	return &CoinEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoinEventClient) MapCreateBulk(slice any, setFunc func(*CoinEventCreate, int)) *CoinEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoinEventCreateBulk{err: fmt.Errorf("calling to CoinEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoinEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoinEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoinEvent.
func (c *CoinEventClient) Update() *CoinEventUpdate {
	mutation := newCoinEventMutation(c.config, OpUpdate)
	return &CoinEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoinEventClient) UpdateOne(_m *CoinEvent) *CoinEventUpdateOne {
	mutation := newCoinEventMutation(c.config, OpUpdateOne, withCoinEvent(_m))
	return &CoinEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoinEventClient) UpdateOneID(id int) *CoinEventUpdateOne {
	mutation := newCoinEventMutation(c.config, OpUpdateOne, withCoinEventID(id))
	return &CoinEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoinEvent.
func (c *CoinEventClient) Delete() *CoinEventDelete {
	mutation := newCoinEventMutation(c.config, OpDelete)
	return &CoinEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoinEventClient) DeleteOne(_m *CoinEvent) *CoinEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoinEventClient) DeleteOneID(id int) *CoinEventDeleteOne {
	builder := c.Delete().Where(coinevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoinEventDeleteOne{builder}
}

// Query returns a query builder for CoinEvent.
func (c *CoinEventClient) Query() *CoinEventQuery {
	return &CoinEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoinEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CoinEvent entity by its id.
func (c *CoinEventClient) Get(ctx context.Context, id int) (*CoinEvent, error) {
	return c.Query().Where(coinevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoinEventClient) GetX(ctx context.Context, id int) *CoinEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoinEventClient) Hooks() []Hook {
	return c.hooks.CoinEvent
}

// Interceptors returns the client interceptors.
func (c *CoinEventClient) Interceptors() []Interceptor {
	return c.inters.CoinEvent
}

func (c *CoinEventClient) mutate(ctx context.Context, m *CoinEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoinEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoinEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoinEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoinEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoinEvent mutation op: %q", m.Op())
	}
}

// DrillEventClient is a client for the DrillEvent schema.
type DrillEventClient struct {
	config
}

// NewDrillEventClient returns a client for the DrillEvent from the given config.
func NewDrillEventClient(c config) *DrillEventClient {
	return &DrillEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `drillevent.Hooks(f(g(h())))`.
func (c *DrillEventClient) Use(hooks ...Hook) {
	c.hooks.DrillEvent = append(c.hooks.DrillEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `drillevent.Intercept(f(g(h())))`.
func (c *DrillEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DrillEvent = append(c.inters.DrillEvent, interceptors...)
}

// Create returns a builder for creating a DrillEvent entity.
func (c *DrillEventClient) Create() *DrillEventCreate {
	mutation := newDrillEventMutation(c.config, OpCreate)
	return &DrillEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DrillEvent entities.
func (c *DrillEventClient) CreateBulk(builders ...*DrillEventCreate) *DrillEventCreateBulk {
	return &DrillEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DrillEventClient) MapCreateBulk(slice any, setFunc func(*DrillEventCreate, int)) *DrillEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DrillEventCreateBulk{err: fmt.Errorf("calling to DrillEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DrillEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DrillEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DrillEvent.
func (c *DrillEventClient) Update() *DrillEventUpdate {
	mutation := newDrillEventMutation(c.config, OpUpdate)
	return &DrillEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DrillEventClient) UpdateOne(_m *DrillEvent) *DrillEventUpdateOne {
	mutation := newDrillEventMutation(c.config, OpUpdateOne, withDrillEvent(_m))
	return &DrillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DrillEventClient) UpdateOneID(id int) *DrillEventUpdateOne {
	mutation := newDrillEventMutation(c.config, OpUpdateOne, withDrillEventID(id))
	return &DrillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DrillEvent.
func (c *DrillEventClient) Delete() *DrillEventDelete {
	mutation := newDrillEventMutation(c.config, OpDelete)
	return &DrillEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DrillEventClient) DeleteOne(_m *DrillEvent) *DrillEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DrillEventClient) DeleteOneID(id int) *DrillEventDeleteOne {
	builder := c.Delete().Where(drillevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DrillEventDeleteOne{builder}
}

// Query returns a query builder for DrillEvent.
func (c *DrillEventClient) Query() *DrillEventQuery {
	return &DrillEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDrillEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DrillEvent entity by its id.
func (c *DrillEventClient) Get(ctx context.Context, id int) (*DrillEvent, error) {
	return c.Query().Where(drillevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DrillEventClient) GetX(ctx context.Context, id int) *DrillEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DrillEventClient) Hooks() []Hook {
	return c.hooks.DrillEvent
}

// Interceptors returns the client interceptors.
func (c *DrillEventClient) Interceptors() []Interceptor {
	return c.inters.DrillEvent
}

func (c *DrillEventClient) mutate(ctx context.Context, m *DrillEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DrillEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DrillEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DrillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DrillEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DrillEvent mutation op: %q", m.Op())
	}
}

// FeedPostClient is a client for the FeedPost schema.
type FeedPostClient struct {
	config
}

// NewFeedPostClient returns a client for the FeedPost from the given config.
func NewFeedPostClient(c config) *FeedPostClient {
	return &FeedPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedpost.Hooks(f(g(h())))`.
func (c *FeedPostClient) Use(hooks ...Hook) {
	c.hooks.FeedPost = append(c.hooks.FeedPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedpost.Intercept(f(g(h())))`.
func (c *FeedPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedPost = append(c.inters.FeedPost, interceptors...)
}

// Create returns a builder for creating a FeedPost entity.
func (c *FeedPostClient) Create() *FeedPostCreate {
	mutation := newFeedPostMutation(c.config, OpCreate)
	return &FeedPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedPost entities.
func (c *FeedPostClient) CreateBulk(builders ...*FeedPostCreate) *FeedPostCreateBulk {
	return &FeedPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedPostClient) MapCreateBulk(slice any, setFunc func(*FeedPostCreate, int)) *FeedPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedPostCreateBulk{err: fmt.Errorf("calling to FeedPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedPost.
func (c *FeedPostClient) Update() *FeedPostUpdate {
	mutation := newFeedPostMutation(c.config, OpUpdate)
	return &FeedPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedPostClient) UpdateOne(_m *FeedPost) *FeedPostUpdateOne {
	mutation := newFeedPostMutation(c.config, OpUpdateOne, withFeedPost(_m))
	return &FeedPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedPostClient) UpdateOneID(id int) *FeedPostUpdateOne {
	mutation := newFeedPostMutation(c.config, OpUpdateOne, withFeedPostID(id))
	return &FeedPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedPost.
func (c *FeedPostClient) Delete() *FeedPostDelete {
	mutation := newFeedPostMutation(c.config, OpDelete)
	return &FeedPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedPostClient) DeleteOne(_m *FeedPost) *FeedPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedPostClient) DeleteOneID(id int) *FeedPostDeleteOne {
	builder := c.Delete().Where(feedpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedPostDeleteOne{builder}
}

// Query returns a query builder for FeedPost.
func (c *FeedPostClient) Query() *FeedPostQuery {
	return &FeedPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedPost},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedPost entity by its id.
func (c *FeedPostClient) Get(ctx context.Context, id int) (*FeedPost, error) {
	return c.Query().Where(feedpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedPostClient) GetX(ctx context.Context, id int) *FeedPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedPostClient) Hooks() []Hook {
	return c.hooks.FeedPost
}

// Interceptors returns the client interceptors.
func (c *FeedPostClient) Interceptors() []Interceptor {
	return c.inters.FeedPost
}

func (c *FeedPostClient) mutate(ctx context.Context, m *FeedPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedPost mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PlayerStateClient is a client for the PlayerState schema.
type PlayerStateClient struct {
	config
}

// NewPlayerStateClient returns a client for the PlayerState from the given config.
func NewPlayerStateClient(c config) *PlayerStateClient {
	return &PlayerStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `playerstate.Hooks(f(g(h())))`.
func (c *PlayerStateClient) Use(hooks ...Hook) {
	c.hooks.PlayerState = append(c.hooks.PlayerState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `playerstate.Intercept(f(g(h())))`.
func (c *PlayerStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlayerState = append(c.inters.PlayerState, interceptors...)
}

// Create returns a builder for creating a PlayerState entity.
func (c *PlayerStateClient) Create() *PlayerStateCreate {
	mutation := newPlayerStateMutation(c.config, OpCreate)
	return &PlayerStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlayerState entities.
func (c *PlayerStateClient) CreateBulk(builders ...*PlayerStateCreate) *PlayerStateCreateBulk {
	return &PlayerStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlayerStateClient) MapCreateBulk(slice any, setFunc func(*PlayerStateCreate, int)) *PlayerStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlayerStateCreateBulk{err: fmt.Errorf("calling to PlayerStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlayerStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlayerStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlayerState.
func (c *PlayerStateClient) Update() *PlayerStateUpdate {
	mutation := newPlayerStateMutation(c.config, OpUpdate)
	return &PlayerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlayerStateClient) UpdateOne(_m *PlayerState) *PlayerStateUpdateOne {
	mutation := newPlayerStateMutation(c.config, OpUpdateOne, withPlayerState(_m))
	return &PlayerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlayerStateClient) UpdateOneID(id int) *PlayerStateUpdateOne {
	mutation := newPlayerStateMutation(c.config, OpUpdateOne, withPlayerStateID(id))
	return &PlayerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlayerState.
func (c *PlayerStateClient) Delete() *PlayerStateDelete {
	mutation := newPlayerStateMutation(c.config, OpDelete)
	return &PlayerStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlayerStateClient) DeleteOne(_m *PlayerState) *PlayerStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlayerStateClient) DeleteOneID(id int) *PlayerStateDeleteOne {
	builder := c.Delete().Where(playerstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlayerStateDeleteOne{builder}
}

// Query returns a query builder for PlayerState.
func (c *PlayerStateClient) Query() *PlayerStateQuery {
	return &PlayerStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlayerState},
		inters: c.Interceptors(),
	}
}

// Get returns a PlayerState entity by its id.
func (c *PlayerStateClient) Get(ctx context.Context, id int) (*PlayerState, error) {
	return c.Query().Where(playerstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlayerStateClient) GetX(ctx context.Context, id int) *PlayerState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlayerStateClient) Hooks() []Hook {
	return c.hooks.PlayerState
}

// Interceptors returns the client interceptors.
func (c *PlayerStateClient) Interceptors() []Interceptor {
	return c.inters.PlayerState
}

func (c *PlayerStateClient) mutate(ctx context.Context, m *PlayerStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlayerStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlayerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlayerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlayerStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlayerState mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CoinEvent, DrillEvent, FeedPost, LLMRequestEvent, PlayerState,
		SessionEvent []ent.Hook
	}
	inters struct {
		CoinEvent, DrillEvent, FeedPost, LLMRequestEvent, PlayerState,
		SessionEvent []ent.Interceptor
	}
)
