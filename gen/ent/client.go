// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jmonzon-gt/distribuidores/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributordocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/distributorreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
	"github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
	"github.com/jmonzon-gt/distribuidores/gen/ent/trackingentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Distributor is the client for interacting with the Distributor builders.
	Distributor *DistributorClient
	// DistributorBranch is the client for interacting with the DistributorBranch builders.
	DistributorBranch *DistributorBranchClient
	// DistributorDocument is the client for interacting with the DistributorDocument builders.
	DistributorDocument *DistributorDocumentClient
	// DistributorReference is the client for interacting with the DistributorReference builders.
	DistributorReference *DistributorReferenceClient
	// Request is the client for interacting with the Request builders.
	Request *RequestClient
	// RequestBranch is the client for interacting with the RequestBranch builders.
	RequestBranch *RequestBranchClient
	// RequestDocument is the client for interacting with the RequestDocument builders.
	RequestDocument *RequestDocumentClient
	// RequestReference is the client for interacting with the RequestReference builders.
	RequestReference *RequestReferenceClient
	// RequestRevision is the client for interacting with the RequestRevision builders.
	RequestRevision *RequestRevisionClient
	// TrackingEntry is the client for interacting with the TrackingEntry builders.
	TrackingEntry *TrackingEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Distributor = NewDistributorClient(c.config)
	c.DistributorBranch = NewDistributorBranchClient(c.config)
	c.DistributorDocument = NewDistributorDocumentClient(c.config)
	c.DistributorReference = NewDistributorReferenceClient(c.config)
	c.Request = NewRequestClient(c.config)
	c.RequestBranch = NewRequestBranchClient(c.config)
	c.RequestDocument = NewRequestDocumentClient(c.config)
	c.RequestReference = NewRequestReferenceClient(c.config)
	c.RequestRevision = NewRequestRevisionClient(c.config)
	c.TrackingEntry = NewTrackingEntryClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Distributor:          NewDistributorClient(cfg),
		DistributorBranch:    NewDistributorBranchClient(cfg),
		DistributorDocument:  NewDistributorDocumentClient(cfg),
		DistributorReference: NewDistributorReferenceClient(cfg),
		Request:              NewRequestClient(cfg),
		RequestBranch:        NewRequestBranchClient(cfg),
		RequestDocument:      NewRequestDocumentClient(cfg),
		RequestReference:     NewRequestReferenceClient(cfg),
		RequestRevision:      NewRequestRevisionClient(cfg),
		TrackingEntry:        NewTrackingEntryClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Distributor:          NewDistributorClient(cfg),
		DistributorBranch:    NewDistributorBranchClient(cfg),
		DistributorDocument:  NewDistributorDocumentClient(cfg),
		DistributorReference: NewDistributorReferenceClient(cfg),
		Request:              NewRequestClient(cfg),
		RequestBranch:        NewRequestBranchClient(cfg),
		RequestDocument:      NewRequestDocumentClient(cfg),
		RequestReference:     NewRequestReferenceClient(cfg),
		RequestRevision:      NewRequestRevisionClient(cfg),
		TrackingEntry:        NewTrackingEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Distributor.
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
		c.Distributor, c.DistributorBranch, c.DistributorDocument,
		c.DistributorReference, c.Request, c.RequestBranch, c.RequestDocument,
		c.RequestReference, c.RequestRevision, c.TrackingEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Distributor, c.DistributorBranch, c.DistributorDocument,
		c.DistributorReference, c.Request, c.RequestBranch, c.RequestDocument,
		c.RequestReference, c.RequestRevision, c.TrackingEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DistributorMutation:
		return c.Distributor.mutate(ctx, m)
	case *DistributorBranchMutation:
		return c.DistributorBranch.mutate(ctx, m)
	case *DistributorDocumentMutation:
		return c.DistributorDocument.mutate(ctx, m)
	case *DistributorReferenceMutation:
		return c.DistributorReference.mutate(ctx, m)
	case *RequestMutation:
		return c.Request.mutate(ctx, m)
	case *RequestBranchMutation:
		return c.RequestBranch.mutate(ctx, m)
	case *RequestDocumentMutation:
		return c.RequestDocument.mutate(ctx, m)
	case *RequestReferenceMutation:
		return c.RequestReference.mutate(ctx, m)
	case *RequestRevisionMutation:
		return c.RequestRevision.mutate(ctx, m)
	case *TrackingEntryMutation:
		return c.TrackingEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DistributorClient is a client for the Distributor schema.
type DistributorClient struct {
	config
}

// NewDistributorClient returns a client for the Distributor from the given config.
func NewDistributorClient(c config) *DistributorClient {
	return &DistributorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `distributor.Hooks(f(g(h())))`.
func (c *DistributorClient) Use(hooks ...Hook) {
	c.hooks.Distributor = append(c.hooks.Distributor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `distributor.Intercept(f(g(h())))`.
func (c *DistributorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Distributor = append(c.inters.Distributor, interceptors...)
}

// Create returns a builder for creating a Distributor entity.
func (c *DistributorClient) Create() *DistributorCreate {
	mutation := newDistributorMutation(c.config, OpCreate)
	return &DistributorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Distributor entities.
func (c *DistributorClient) CreateBulk(builders ...*DistributorCreate) *DistributorCreateBulk {
	return &DistributorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DistributorClient) MapCreateBulk(slice any, setFunc func(*DistributorCreate, int)) *DistributorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DistributorCreateBulk{err: fmt.Errorf("calling to DistributorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DistributorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DistributorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Distributor.
func (c *DistributorClient) Update() *DistributorUpdate {
	mutation := newDistributorMutation(c.config, OpUpdate)
	return &DistributorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DistributorClient) UpdateOne(_m *Distributor) *DistributorUpdateOne {
	mutation := newDistributorMutation(c.config, OpUpdateOne, withDistributor(_m))
	return &DistributorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DistributorClient) UpdateOneID(id uuid.UUID) *DistributorUpdateOne {
	mutation := newDistributorMutation(c.config, OpUpdateOne, withDistributorID(id))
	return &DistributorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Distributor.
func (c *DistributorClient) Delete() *DistributorDelete {
	mutation := newDistributorMutation(c.config, OpDelete)
	return &DistributorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DistributorClient) DeleteOne(_m *Distributor) *DistributorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DistributorClient) DeleteOneID(id uuid.UUID) *DistributorDeleteOne {
	builder := c.Delete().Where(distributor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DistributorDeleteOne{builder}
}

// Query returns a query builder for Distributor.
func (c *DistributorClient) Query() *DistributorQuery {
	return &DistributorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDistributor},
		inters: c.Interceptors(),
	}
}

// Get returns a Distributor entity by its id.
func (c *DistributorClient) Get(ctx context.Context, id uuid.UUID) (*Distributor, error) {
	return c.Query().Where(distributor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DistributorClient) GetX(ctx context.Context, id uuid.UUID) *Distributor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a Distributor.
func (c *DistributorClient) QueryRequest(_m *Distributor) *RequestQuery {
	query := (&RequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, id),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, distributor.RequestTable, distributor.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Distributor.
func (c *DistributorClient) QueryDocuments(_m *Distributor) *DistributorDocumentQuery {
	query := (&DistributorDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, id),
			sqlgraph.To(distributordocument.Table, distributordocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, distributor.DocumentsTable, distributor.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBranches queries the branches edge of a Distributor.
func (c *DistributorClient) QueryBranches(_m *Distributor) *DistributorBranchQuery {
	query := (&DistributorBranchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, id),
			sqlgraph.To(distributorbranch.Table, distributorbranch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, distributor.BranchesTable, distributor.BranchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferences queries the references edge of a Distributor.
func (c *DistributorClient) QueryReferences(_m *Distributor) *DistributorReferenceQuery {
	query := (&DistributorReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributor.Table, distributor.FieldID, id),
			sqlgraph.To(distributorreference.Table, distributorreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, distributor.ReferencesTable, distributor.ReferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DistributorClient) Hooks() []Hook {
	return c.hooks.Distributor
}

// Interceptors returns the client interceptors.
func (c *DistributorClient) Interceptors() []Interceptor {
	return c.inters.Distributor
}

func (c *DistributorClient) mutate(ctx context.Context, m *DistributorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DistributorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DistributorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DistributorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DistributorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Distributor mutation op: %q", m.Op())
	}
}

// DistributorBranchClient is a client for the DistributorBranch schema.
type DistributorBranchClient struct {
	config
}

// NewDistributorBranchClient returns a client for the DistributorBranch from the given config.
func NewDistributorBranchClient(c config) *DistributorBranchClient {
	return &DistributorBranchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `distributorbranch.Hooks(f(g(h())))`.
func (c *DistributorBranchClient) Use(hooks ...Hook) {
	c.hooks.DistributorBranch = append(c.hooks.DistributorBranch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `distributorbranch.Intercept(f(g(h())))`.
func (c *DistributorBranchClient) Intercept(interceptors ...Interceptor) {
	c.inters.DistributorBranch = append(c.inters.DistributorBranch, interceptors...)
}

// Create returns a builder for creating a DistributorBranch entity.
func (c *DistributorBranchClient) Create() *DistributorBranchCreate {
	mutation := newDistributorBranchMutation(c.config, OpCreate)
	return &DistributorBranchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DistributorBranch entities.
func (c *DistributorBranchClient) CreateBulk(builders ...*DistributorBranchCreate) *DistributorBranchCreateBulk {
	return &DistributorBranchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DistributorBranchClient) MapCreateBulk(slice any, setFunc func(*DistributorBranchCreate, int)) *DistributorBranchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DistributorBranchCreateBulk{err: fmt.Errorf("calling to DistributorBranchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DistributorBranchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DistributorBranchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DistributorBranch.
func (c *DistributorBranchClient) Update() *DistributorBranchUpdate {
	mutation := newDistributorBranchMutation(c.config, OpUpdate)
	return &DistributorBranchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DistributorBranchClient) UpdateOne(_m *DistributorBranch) *DistributorBranchUpdateOne {
	mutation := newDistributorBranchMutation(c.config, OpUpdateOne, withDistributorBranch(_m))
	return &DistributorBranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DistributorBranchClient) UpdateOneID(id uuid.UUID) *DistributorBranchUpdateOne {
	mutation := newDistributorBranchMutation(c.config, OpUpdateOne, withDistributorBranchID(id))
	return &DistributorBranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DistributorBranch.
func (c *DistributorBranchClient) Delete() *DistributorBranchDelete {
	mutation := newDistributorBranchMutation(c.config, OpDelete)
	return &DistributorBranchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DistributorBranchClient) DeleteOne(_m *DistributorBranch) *DistributorBranchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DistributorBranchClient) DeleteOneID(id uuid.UUID) *DistributorBranchDeleteOne {
	builder := c.Delete().Where(distributorbranch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DistributorBranchDeleteOne{builder}
}

// Query returns a query builder for DistributorBranch.
func (c *DistributorBranchClient) Query() *DistributorBranchQuery {
	return &DistributorBranchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDistributorBranch},
		inters: c.Interceptors(),
	}
}

// Get returns a DistributorBranch entity by its id.
func (c *DistributorBranchClient) Get(ctx context.Context, id uuid.UUID) (*DistributorBranch, error) {
	return c.Query().Where(distributorbranch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DistributorBranchClient) GetX(ctx context.Context, id uuid.UUID) *DistributorBranch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDistributor queries the distributor edge of a DistributorBranch.
func (c *DistributorBranchClient) QueryDistributor(_m *DistributorBranch) *DistributorQuery {
	query := (&DistributorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributorbranch.Table, distributorbranch.FieldID, id),
			sqlgraph.To(distributor.Table, distributor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, distributorbranch.DistributorTable, distributorbranch.DistributorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DistributorBranchClient) Hooks() []Hook {
	return c.hooks.DistributorBranch
}

// Interceptors returns the client interceptors.
func (c *DistributorBranchClient) Interceptors() []Interceptor {
	return c.inters.DistributorBranch
}

func (c *DistributorBranchClient) mutate(ctx context.Context, m *DistributorBranchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DistributorBranchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DistributorBranchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DistributorBranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DistributorBranchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DistributorBranch mutation op: %q", m.Op())
	}
}

// DistributorDocumentClient is a client for the DistributorDocument schema.
type DistributorDocumentClient struct {
	config
}

// NewDistributorDocumentClient returns a client for the DistributorDocument from the given config.
func NewDistributorDocumentClient(c config) *DistributorDocumentClient {
	return &DistributorDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `distributordocument.Hooks(f(g(h())))`.
func (c *DistributorDocumentClient) Use(hooks ...Hook) {
	c.hooks.DistributorDocument = append(c.hooks.DistributorDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `distributordocument.Intercept(f(g(h())))`.
func (c *DistributorDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.DistributorDocument = append(c.inters.DistributorDocument, interceptors...)
}

// Create returns a builder for creating a DistributorDocument entity.
func (c *DistributorDocumentClient) Create() *DistributorDocumentCreate {
	mutation := newDistributorDocumentMutation(c.config, OpCreate)
	return &DistributorDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DistributorDocument entities.
func (c *DistributorDocumentClient) CreateBulk(builders ...*DistributorDocumentCreate) *DistributorDocumentCreateBulk {
	return &DistributorDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DistributorDocumentClient) MapCreateBulk(slice any, setFunc func(*DistributorDocumentCreate, int)) *DistributorDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DistributorDocumentCreateBulk{err: fmt.Errorf("calling to DistributorDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DistributorDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DistributorDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DistributorDocument.
func (c *DistributorDocumentClient) Update() *DistributorDocumentUpdate {
	mutation := newDistributorDocumentMutation(c.config, OpUpdate)
	return &DistributorDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DistributorDocumentClient) UpdateOne(_m *DistributorDocument) *DistributorDocumentUpdateOne {
	mutation := newDistributorDocumentMutation(c.config, OpUpdateOne, withDistributorDocument(_m))
	return &DistributorDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DistributorDocumentClient) UpdateOneID(id uuid.UUID) *DistributorDocumentUpdateOne {
	mutation := newDistributorDocumentMutation(c.config, OpUpdateOne, withDistributorDocumentID(id))
	return &DistributorDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DistributorDocument.
func (c *DistributorDocumentClient) Delete() *DistributorDocumentDelete {
	mutation := newDistributorDocumentMutation(c.config, OpDelete)
	return &DistributorDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DistributorDocumentClient) DeleteOne(_m *DistributorDocument) *DistributorDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DistributorDocumentClient) DeleteOneID(id uuid.UUID) *DistributorDocumentDeleteOne {
	builder := c.Delete().Where(distributordocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DistributorDocumentDeleteOne{builder}
}

// Query returns a query builder for DistributorDocument.
func (c *DistributorDocumentClient) Query() *DistributorDocumentQuery {
	return &DistributorDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDistributorDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a DistributorDocument entity by its id.
func (c *DistributorDocumentClient) Get(ctx context.Context, id uuid.UUID) (*DistributorDocument, error) {
	return c.Query().Where(distributordocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DistributorDocumentClient) GetX(ctx context.Context, id uuid.UUID) *DistributorDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDistributor queries the distributor edge of a DistributorDocument.
func (c *DistributorDocumentClient) QueryDistributor(_m *DistributorDocument) *DistributorQuery {
	query := (&DistributorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributordocument.Table, distributordocument.FieldID, id),
			sqlgraph.To(distributor.Table, distributor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, distributordocument.DistributorTable, distributordocument.DistributorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DistributorDocumentClient) Hooks() []Hook {
	return c.hooks.DistributorDocument
}

// Interceptors returns the client interceptors.
func (c *DistributorDocumentClient) Interceptors() []Interceptor {
	return c.inters.DistributorDocument
}

func (c *DistributorDocumentClient) mutate(ctx context.Context, m *DistributorDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DistributorDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DistributorDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DistributorDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DistributorDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DistributorDocument mutation op: %q", m.Op())
	}
}

// DistributorReferenceClient is a client for the DistributorReference schema.
type DistributorReferenceClient struct {
	config
}

// NewDistributorReferenceClient returns a client for the DistributorReference from the given config.
func NewDistributorReferenceClient(c config) *DistributorReferenceClient {
	return &DistributorReferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `distributorreference.Hooks(f(g(h())))`.
func (c *DistributorReferenceClient) Use(hooks ...Hook) {
	c.hooks.DistributorReference = append(c.hooks.DistributorReference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `distributorreference.Intercept(f(g(h())))`.
func (c *DistributorReferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.DistributorReference = append(c.inters.DistributorReference, interceptors...)
}

// Create returns a builder for creating a DistributorReference entity.
func (c *DistributorReferenceClient) Create() *DistributorReferenceCreate {
	mutation := newDistributorReferenceMutation(c.config, OpCreate)
	return &DistributorReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DistributorReference entities.
func (c *DistributorReferenceClient) CreateBulk(builders ...*DistributorReferenceCreate) *DistributorReferenceCreateBulk {
	return &DistributorReferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DistributorReferenceClient) MapCreateBulk(slice any, setFunc func(*DistributorReferenceCreate, int)) *DistributorReferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DistributorReferenceCreateBulk{err: fmt.Errorf("calling to DistributorReferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DistributorReferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DistributorReferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DistributorReference.
func (c *DistributorReferenceClient) Update() *DistributorReferenceUpdate {
	mutation := newDistributorReferenceMutation(c.config, OpUpdate)
	return &DistributorReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DistributorReferenceClient) UpdateOne(_m *DistributorReference) *DistributorReferenceUpdateOne {
	mutation := newDistributorReferenceMutation(c.config, OpUpdateOne, withDistributorReference(_m))
	return &DistributorReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DistributorReferenceClient) UpdateOneID(id uuid.UUID) *DistributorReferenceUpdateOne {
	mutation := newDistributorReferenceMutation(c.config, OpUpdateOne, withDistributorReferenceID(id))
	return &DistributorReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DistributorReference.
func (c *DistributorReferenceClient) Delete() *DistributorReferenceDelete {
	mutation := newDistributorReferenceMutation(c.config, OpDelete)
	return &DistributorReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DistributorReferenceClient) DeleteOne(_m *DistributorReference) *DistributorReferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DistributorReferenceClient) DeleteOneID(id uuid.UUID) *DistributorReferenceDeleteOne {
	builder := c.Delete().Where(distributorreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DistributorReferenceDeleteOne{builder}
}

// Query returns a query builder for DistributorReference.
func (c *DistributorReferenceClient) Query() *DistributorReferenceQuery {
	return &DistributorReferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDistributorReference},
		inters: c.Interceptors(),
	}
}

// Get returns a DistributorReference entity by its id.
func (c *DistributorReferenceClient) Get(ctx context.Context, id uuid.UUID) (*DistributorReference, error) {
	return c.Query().Where(distributorreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DistributorReferenceClient) GetX(ctx context.Context, id uuid.UUID) *DistributorReference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDistributor queries the distributor edge of a DistributorReference.
func (c *DistributorReferenceClient) QueryDistributor(_m *DistributorReference) *DistributorQuery {
	query := (&DistributorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(distributorreference.Table, distributorreference.FieldID, id),
			sqlgraph.To(distributor.Table, distributor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, distributorreference.DistributorTable, distributorreference.DistributorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DistributorReferenceClient) Hooks() []Hook {
	return c.hooks.DistributorReference
}

// Interceptors returns the client interceptors.
func (c *DistributorReferenceClient) Interceptors() []Interceptor {
	return c.inters.DistributorReference
}

func (c *DistributorReferenceClient) mutate(ctx context.Context, m *DistributorReferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DistributorReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DistributorReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DistributorReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DistributorReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DistributorReference mutation op: %q", m.Op())
	}
}

// RequestClient is a client for the Request schema.
type RequestClient struct {
	config
}

// NewRequestClient returns a client for the Request from the given config.
func NewRequestClient(c config) *RequestClient {
	return &RequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `request.Hooks(f(g(h())))`.
func (c *RequestClient) Use(hooks ...Hook) {
	c.hooks.Request = append(c.hooks.Request, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `request.Intercept(f(g(h())))`.
func (c *RequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.Request = append(c.inters.Request, interceptors...)
}

// Create returns a builder for creating a Request entity.
func (c *RequestClient) Create() *RequestCreate {
	mutation := newRequestMutation(c.config, OpCreate)
	return &RequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Request entities.
func (c *RequestClient) CreateBulk(builders ...*RequestCreate) *RequestCreateBulk {
	return &RequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestClient) MapCreateBulk(slice any, setFunc func(*RequestCreate, int)) *RequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestCreateBulk{err: fmt.Errorf("calling to RequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Request.
func (c *RequestClient) Update() *RequestUpdate {
	mutation := newRequestMutation(c.config, OpUpdate)
	return &RequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestClient) UpdateOne(_m *Request) *RequestUpdateOne {
	mutation := newRequestMutation(c.config, OpUpdateOne, withRequest(_m))
	return &RequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestClient) UpdateOneID(id uuid.UUID) *RequestUpdateOne {
	mutation := newRequestMutation(c.config, OpUpdateOne, withRequestID(id))
	return &RequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Request.
func (c *RequestClient) Delete() *RequestDelete {
	mutation := newRequestMutation(c.config, OpDelete)
	return &RequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestClient) DeleteOne(_m *Request) *RequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestClient) DeleteOneID(id uuid.UUID) *RequestDeleteOne {
	builder := c.Delete().Where(request.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestDeleteOne{builder}
}

// Query returns a query builder for Request.
func (c *RequestClient) Query() *RequestQuery {
	return &RequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a Request entity by its id.
func (c *RequestClient) Get(ctx context.Context, id uuid.UUID) (*Request, error) {
	return c.Query().Where(request.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestClient) GetX(ctx context.Context, id uuid.UUID) *Request {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Request.
func (c *RequestClient) QueryDocuments(_m *Request) *RequestDocumentQuery {
	query := (&RequestDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(request.Table, request.FieldID, id),
			sqlgraph.To(requestdocument.Table, requestdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, request.DocumentsTable, request.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBranches queries the branches edge of a Request.
func (c *RequestClient) QueryBranches(_m *Request) *RequestBranchQuery {
	query := (&RequestBranchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(request.Table, request.FieldID, id),
			sqlgraph.To(requestbranch.Table, requestbranch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, request.BranchesTable, request.BranchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferences queries the references edge of a Request.
func (c *RequestClient) QueryReferences(_m *Request) *RequestReferenceQuery {
	query := (&RequestReferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(request.Table, request.FieldID, id),
			sqlgraph.To(requestreference.Table, requestreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, request.ReferencesTable, request.ReferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRevisions queries the revisions edge of a Request.
func (c *RequestClient) QueryRevisions(_m *Request) *RequestRevisionQuery {
	query := (&RequestRevisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(request.Table, request.FieldID, id),
			sqlgraph.To(requestrevision.Table, requestrevision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, request.RevisionsTable, request.RevisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTracking queries the tracking edge of a Request.
func (c *RequestClient) QueryTracking(_m *Request) *TrackingEntryQuery {
	query := (&TrackingEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(request.Table, request.FieldID, id),
			sqlgraph.To(trackingentry.Table, trackingentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, request.TrackingTable, request.TrackingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDistributor queries the distributor edge of a Request.
func (c *RequestClient) QueryDistributor(_m *Request) *DistributorQuery {
	query := (&DistributorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(request.Table, request.FieldID, id),
			sqlgraph.To(distributor.Table, distributor.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, request.DistributorTable, request.DistributorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestClient) Hooks() []Hook {
	return c.hooks.Request
}

// Interceptors returns the client interceptors.
func (c *RequestClient) Interceptors() []Interceptor {
	return c.inters.Request
}

func (c *RequestClient) mutate(ctx context.Context, m *RequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Request mutation op: %q", m.Op())
	}
}

// RequestBranchClient is a client for the RequestBranch schema.
type RequestBranchClient struct {
	config
}

// NewRequestBranchClient returns a client for the RequestBranch from the given config.
func NewRequestBranchClient(c config) *RequestBranchClient {
	return &RequestBranchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestbranch.Hooks(f(g(h())))`.
func (c *RequestBranchClient) Use(hooks ...Hook) {
	c.hooks.RequestBranch = append(c.hooks.RequestBranch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestbranch.Intercept(f(g(h())))`.
func (c *RequestBranchClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestBranch = append(c.inters.RequestBranch, interceptors...)
}

// Create returns a builder for creating a RequestBranch entity.
func (c *RequestBranchClient) Create() *RequestBranchCreate {
	mutation := newRequestBranchMutation(c.config, OpCreate)
	return &RequestBranchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestBranch entities.
func (c *RequestBranchClient) CreateBulk(builders ...*RequestBranchCreate) *RequestBranchCreateBulk {
	return &RequestBranchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestBranchClient) MapCreateBulk(slice any, setFunc func(*RequestBranchCreate, int)) *RequestBranchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestBranchCreateBulk{err: fmt.Errorf("calling to RequestBranchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestBranchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestBranchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestBranch.
func (c *RequestBranchClient) Update() *RequestBranchUpdate {
	mutation := newRequestBranchMutation(c.config, OpUpdate)
	return &RequestBranchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestBranchClient) UpdateOne(_m *RequestBranch) *RequestBranchUpdateOne {
	mutation := newRequestBranchMutation(c.config, OpUpdateOne, withRequestBranch(_m))
	return &RequestBranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestBranchClient) UpdateOneID(id uuid.UUID) *RequestBranchUpdateOne {
	mutation := newRequestBranchMutation(c.config, OpUpdateOne, withRequestBranchID(id))
	return &RequestBranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestBranch.
func (c *RequestBranchClient) Delete() *RequestBranchDelete {
	mutation := newRequestBranchMutation(c.config, OpDelete)
	return &RequestBranchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestBranchClient) DeleteOne(_m *RequestBranch) *RequestBranchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestBranchClient) DeleteOneID(id uuid.UUID) *RequestBranchDeleteOne {
	builder := c.Delete().Where(requestbranch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestBranchDeleteOne{builder}
}

// Query returns a query builder for RequestBranch.
func (c *RequestBranchClient) Query() *RequestBranchQuery {
	return &RequestBranchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestBranch},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestBranch entity by its id.
func (c *RequestBranchClient) Get(ctx context.Context, id uuid.UUID) (*RequestBranch, error) {
	return c.Query().Where(requestbranch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestBranchClient) GetX(ctx context.Context, id uuid.UUID) *RequestBranch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a RequestBranch.
func (c *RequestBranchClient) QueryRequest(_m *RequestBranch) *RequestQuery {
	query := (&RequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requestbranch.Table, requestbranch.FieldID, id),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requestbranch.RequestTable, requestbranch.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestBranchClient) Hooks() []Hook {
	return c.hooks.RequestBranch
}

// Interceptors returns the client interceptors.
func (c *RequestBranchClient) Interceptors() []Interceptor {
	return c.inters.RequestBranch
}

func (c *RequestBranchClient) mutate(ctx context.Context, m *RequestBranchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestBranchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestBranchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestBranchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestBranchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestBranch mutation op: %q", m.Op())
	}
}

// RequestDocumentClient is a client for the RequestDocument schema.
type RequestDocumentClient struct {
	config
}

// NewRequestDocumentClient returns a client for the RequestDocument from the given config.
func NewRequestDocumentClient(c config) *RequestDocumentClient {
	return &RequestDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestdocument.Hooks(f(g(h())))`.
func (c *RequestDocumentClient) Use(hooks ...Hook) {
	c.hooks.RequestDocument = append(c.hooks.RequestDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestdocument.Intercept(f(g(h())))`.
func (c *RequestDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestDocument = append(c.inters.RequestDocument, interceptors...)
}

// Create returns a builder for creating a RequestDocument entity.
func (c *RequestDocumentClient) Create() *RequestDocumentCreate {
	mutation := newRequestDocumentMutation(c.config, OpCreate)
	return &RequestDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestDocument entities.
func (c *RequestDocumentClient) CreateBulk(builders ...*RequestDocumentCreate) *RequestDocumentCreateBulk {
	return &RequestDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestDocumentClient) MapCreateBulk(slice any, setFunc func(*RequestDocumentCreate, int)) *RequestDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestDocumentCreateBulk{err: fmt.Errorf("calling to RequestDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestDocument.
func (c *RequestDocumentClient) Update() *RequestDocumentUpdate {
	mutation := newRequestDocumentMutation(c.config, OpUpdate)
	return &RequestDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestDocumentClient) UpdateOne(_m *RequestDocument) *RequestDocumentUpdateOne {
	mutation := newRequestDocumentMutation(c.config, OpUpdateOne, withRequestDocument(_m))
	return &RequestDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestDocumentClient) UpdateOneID(id uuid.UUID) *RequestDocumentUpdateOne {
	mutation := newRequestDocumentMutation(c.config, OpUpdateOne, withRequestDocumentID(id))
	return &RequestDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestDocument.
func (c *RequestDocumentClient) Delete() *RequestDocumentDelete {
	mutation := newRequestDocumentMutation(c.config, OpDelete)
	return &RequestDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestDocumentClient) DeleteOne(_m *RequestDocument) *RequestDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestDocumentClient) DeleteOneID(id uuid.UUID) *RequestDocumentDeleteOne {
	builder := c.Delete().Where(requestdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestDocumentDeleteOne{builder}
}

// Query returns a query builder for RequestDocument.
func (c *RequestDocumentClient) Query() *RequestDocumentQuery {
	return &RequestDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestDocument entity by its id.
func (c *RequestDocumentClient) Get(ctx context.Context, id uuid.UUID) (*RequestDocument, error) {
	return c.Query().Where(requestdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestDocumentClient) GetX(ctx context.Context, id uuid.UUID) *RequestDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a RequestDocument.
func (c *RequestDocumentClient) QueryRequest(_m *RequestDocument) *RequestQuery {
	query := (&RequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requestdocument.Table, requestdocument.FieldID, id),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requestdocument.RequestTable, requestdocument.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestDocumentClient) Hooks() []Hook {
	return c.hooks.RequestDocument
}

// Interceptors returns the client interceptors.
func (c *RequestDocumentClient) Interceptors() []Interceptor {
	return c.inters.RequestDocument
}

func (c *RequestDocumentClient) mutate(ctx context.Context, m *RequestDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestDocument mutation op: %q", m.Op())
	}
}

// RequestReferenceClient is a client for the RequestReference schema.
type RequestReferenceClient struct {
	config
}

// NewRequestReferenceClient returns a client for the RequestReference from the given config.
func NewRequestReferenceClient(c config) *RequestReferenceClient {
	return &RequestReferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestreference.Hooks(f(g(h())))`.
func (c *RequestReferenceClient) Use(hooks ...Hook) {
	c.hooks.RequestReference = append(c.hooks.RequestReference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestreference.Intercept(f(g(h())))`.
func (c *RequestReferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestReference = append(c.inters.RequestReference, interceptors...)
}

// Create returns a builder for creating a RequestReference entity.
func (c *RequestReferenceClient) Create() *RequestReferenceCreate {
	mutation := newRequestReferenceMutation(c.config, OpCreate)
	return &RequestReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestReference entities.
func (c *RequestReferenceClient) CreateBulk(builders ...*RequestReferenceCreate) *RequestReferenceCreateBulk {
	return &RequestReferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestReferenceClient) MapCreateBulk(slice any, setFunc func(*RequestReferenceCreate, int)) *RequestReferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestReferenceCreateBulk{err: fmt.Errorf("calling to RequestReferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestReferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestReferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestReference.
func (c *RequestReferenceClient) Update() *RequestReferenceUpdate {
	mutation := newRequestReferenceMutation(c.config, OpUpdate)
	return &RequestReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestReferenceClient) UpdateOne(_m *RequestReference) *RequestReferenceUpdateOne {
	mutation := newRequestReferenceMutation(c.config, OpUpdateOne, withRequestReference(_m))
	return &RequestReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestReferenceClient) UpdateOneID(id uuid.UUID) *RequestReferenceUpdateOne {
	mutation := newRequestReferenceMutation(c.config, OpUpdateOne, withRequestReferenceID(id))
	return &RequestReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestReference.
func (c *RequestReferenceClient) Delete() *RequestReferenceDelete {
	mutation := newRequestReferenceMutation(c.config, OpDelete)
	return &RequestReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestReferenceClient) DeleteOne(_m *RequestReference) *RequestReferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestReferenceClient) DeleteOneID(id uuid.UUID) *RequestReferenceDeleteOne {
	builder := c.Delete().Where(requestreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestReferenceDeleteOne{builder}
}

// Query returns a query builder for RequestReference.
func (c *RequestReferenceClient) Query() *RequestReferenceQuery {
	return &RequestReferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestReference},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestReference entity by its id.
func (c *RequestReferenceClient) Get(ctx context.Context, id uuid.UUID) (*RequestReference, error) {
	return c.Query().Where(requestreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestReferenceClient) GetX(ctx context.Context, id uuid.UUID) *RequestReference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a RequestReference.
func (c *RequestReferenceClient) QueryRequest(_m *RequestReference) *RequestQuery {
	query := (&RequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requestreference.Table, requestreference.FieldID, id),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requestreference.RequestTable, requestreference.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestReferenceClient) Hooks() []Hook {
	return c.hooks.RequestReference
}

// Interceptors returns the client interceptors.
func (c *RequestReferenceClient) Interceptors() []Interceptor {
	return c.inters.RequestReference
}

func (c *RequestReferenceClient) mutate(ctx context.Context, m *RequestReferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestReferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestReferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestReferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestReferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestReference mutation op: %q", m.Op())
	}
}

// RequestRevisionClient is a client for the RequestRevision schema.
type RequestRevisionClient struct {
	config
}

// NewRequestRevisionClient returns a client for the RequestRevision from the given config.
func NewRequestRevisionClient(c config) *RequestRevisionClient {
	return &RequestRevisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestrevision.Hooks(f(g(h())))`.
func (c *RequestRevisionClient) Use(hooks ...Hook) {
	c.hooks.RequestRevision = append(c.hooks.RequestRevision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestrevision.Intercept(f(g(h())))`.
func (c *RequestRevisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestRevision = append(c.inters.RequestRevision, interceptors...)
}

// Create returns a builder for creating a RequestRevision entity.
func (c *RequestRevisionClient) Create() *RequestRevisionCreate {
	mutation := newRequestRevisionMutation(c.config, OpCreate)
	return &RequestRevisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestRevision entities.
func (c *RequestRevisionClient) CreateBulk(builders ...*RequestRevisionCreate) *RequestRevisionCreateBulk {
	return &RequestRevisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestRevisionClient) MapCreateBulk(slice any, setFunc func(*RequestRevisionCreate, int)) *RequestRevisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestRevisionCreateBulk{err: fmt.Errorf("calling to RequestRevisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestRevisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestRevisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestRevision.
func (c *RequestRevisionClient) Update() *RequestRevisionUpdate {
	mutation := newRequestRevisionMutation(c.config, OpUpdate)
	return &RequestRevisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestRevisionClient) UpdateOne(_m *RequestRevision) *RequestRevisionUpdateOne {
	mutation := newRequestRevisionMutation(c.config, OpUpdateOne, withRequestRevision(_m))
	return &RequestRevisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestRevisionClient) UpdateOneID(id uuid.UUID) *RequestRevisionUpdateOne {
	mutation := newRequestRevisionMutation(c.config, OpUpdateOne, withRequestRevisionID(id))
	return &RequestRevisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestRevision.
func (c *RequestRevisionClient) Delete() *RequestRevisionDelete {
	mutation := newRequestRevisionMutation(c.config, OpDelete)
	return &RequestRevisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestRevisionClient) DeleteOne(_m *RequestRevision) *RequestRevisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestRevisionClient) DeleteOneID(id uuid.UUID) *RequestRevisionDeleteOne {
	builder := c.Delete().Where(requestrevision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestRevisionDeleteOne{builder}
}

// Query returns a query builder for RequestRevision.
func (c *RequestRevisionClient) Query() *RequestRevisionQuery {
	return &RequestRevisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestRevision},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestRevision entity by its id.
func (c *RequestRevisionClient) Get(ctx context.Context, id uuid.UUID) (*RequestRevision, error) {
	return c.Query().Where(requestrevision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestRevisionClient) GetX(ctx context.Context, id uuid.UUID) *RequestRevision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a RequestRevision.
func (c *RequestRevisionClient) QueryRequest(_m *RequestRevision) *RequestQuery {
	query := (&RequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requestrevision.Table, requestrevision.FieldID, id),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requestrevision.RequestTable, requestrevision.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestRevisionClient) Hooks() []Hook {
	return c.hooks.RequestRevision
}

// Interceptors returns the client interceptors.
func (c *RequestRevisionClient) Interceptors() []Interceptor {
	return c.inters.RequestRevision
}

func (c *RequestRevisionClient) mutate(ctx context.Context, m *RequestRevisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestRevisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestRevisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestRevisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestRevisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestRevision mutation op: %q", m.Op())
	}
}

// TrackingEntryClient is a client for the TrackingEntry schema.
type TrackingEntryClient struct {
	config
}

// NewTrackingEntryClient returns a client for the TrackingEntry from the given config.
func NewTrackingEntryClient(c config) *TrackingEntryClient {
	return &TrackingEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trackingentry.Hooks(f(g(h())))`.
func (c *TrackingEntryClient) Use(hooks ...Hook) {
	c.hooks.TrackingEntry = append(c.hooks.TrackingEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trackingentry.Intercept(f(g(h())))`.
func (c *TrackingEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrackingEntry = append(c.inters.TrackingEntry, interceptors...)
}

// Create returns a builder for creating a TrackingEntry entity.
func (c *TrackingEntryClient) Create() *TrackingEntryCreate {
	mutation := newTrackingEntryMutation(c.config, OpCreate)
	return &TrackingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrackingEntry entities.
func (c *TrackingEntryClient) CreateBulk(builders ...*TrackingEntryCreate) *TrackingEntryCreateBulk {
	return &TrackingEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackingEntryClient) MapCreateBulk(slice any, setFunc func(*TrackingEntryCreate, int)) *TrackingEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackingEntryCreateBulk{err: fmt.Errorf("calling to TrackingEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackingEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackingEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrackingEntry.
func (c *TrackingEntryClient) Update() *TrackingEntryUpdate {
	mutation := newTrackingEntryMutation(c.config, OpUpdate)
	return &TrackingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackingEntryClient) UpdateOne(_m *TrackingEntry) *TrackingEntryUpdateOne {
	mutation := newTrackingEntryMutation(c.config, OpUpdateOne, withTrackingEntry(_m))
	return &TrackingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackingEntryClient) UpdateOneID(id uuid.UUID) *TrackingEntryUpdateOne {
	mutation := newTrackingEntryMutation(c.config, OpUpdateOne, withTrackingEntryID(id))
	return &TrackingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrackingEntry.
func (c *TrackingEntryClient) Delete() *TrackingEntryDelete {
	mutation := newTrackingEntryMutation(c.config, OpDelete)
	return &TrackingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackingEntryClient) DeleteOne(_m *TrackingEntry) *TrackingEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackingEntryClient) DeleteOneID(id uuid.UUID) *TrackingEntryDeleteOne {
	builder := c.Delete().Where(trackingentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackingEntryDeleteOne{builder}
}

// Query returns a query builder for TrackingEntry.
func (c *TrackingEntryClient) Query() *TrackingEntryQuery {
	return &TrackingEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrackingEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TrackingEntry entity by its id.
func (c *TrackingEntryClient) Get(ctx context.Context, id uuid.UUID) (*TrackingEntry, error) {
	return c.Query().Where(trackingentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackingEntryClient) GetX(ctx context.Context, id uuid.UUID) *TrackingEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a TrackingEntry.
func (c *TrackingEntryClient) QueryRequest(_m *TrackingEntry) *RequestQuery {
	query := (&RequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trackingentry.Table, trackingentry.FieldID, id),
			sqlgraph.To(request.Table, request.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackingentry.RequestTable, trackingentry.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackingEntryClient) Hooks() []Hook {
	return c.hooks.TrackingEntry
}

// Interceptors returns the client interceptors.
func (c *TrackingEntryClient) Interceptors() []Interceptor {
	return c.inters.TrackingEntry
}

func (c *TrackingEntryClient) mutate(ctx context.Context, m *TrackingEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrackingEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Distributor, DistributorBranch, DistributorDocument, DistributorReference,
		Request, RequestBranch, RequestDocument, RequestReference, RequestRevision,
		TrackingEntry []ent.Hook
	}
	inters struct {
		Distributor, DistributorBranch, DistributorDocument, DistributorReference,
		Request, RequestBranch, RequestDocument, RequestReference, RequestRevision,
		TrackingEntry []ent.Interceptor
	}
)
