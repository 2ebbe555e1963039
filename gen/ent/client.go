// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/recluta/recluta-backend/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CVRecord is the client for interacting with the CVRecord builders.
	CVRecord *CVRecordClient
	// Offer is the client for interacting with the Offer builders.
	Offer *OfferClient
	// OfferApplication is the client for interacting with the OfferApplication builders.
	OfferApplication *OfferApplicationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CVRecord = NewCVRecordClient(c.config)
	c.Offer = NewOfferClient(c.config)
	c.OfferApplication = NewOfferApplicationClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		CVRecord:         NewCVRecordClient(cfg),
		Offer:            NewOfferClient(cfg),
		OfferApplication: NewOfferApplicationClient(cfg),
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
		CVRecord:         NewCVRecordClient(cfg),
		Offer:            NewOfferClient(cfg),
		OfferApplication: NewOfferApplicationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CVRecord.
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
	c.CVRecord.Use(hooks...)
	c.Offer.Use(hooks...)
	c.OfferApplication.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CVRecord.Intercept(interceptors...)
	c.Offer.Intercept(interceptors...)
	c.OfferApplication.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CVRecordMutation:
		return c.CVRecord.mutate(ctx, m)
	case *OfferMutation:
		return c.Offer.mutate(ctx, m)
	case *OfferApplicationMutation:
		return c.OfferApplication.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CVRecordClient is a client for the CVRecord schema.
type CVRecordClient struct {
	config
}

// NewCVRecordClient returns a client for the CVRecord from the given config.
func NewCVRecordClient(c config) *CVRecordClient {
	return &CVRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cvrecord.Hooks(f(g(h())))`.
func (c *CVRecordClient) Use(hooks ...Hook) {
	c.hooks.CVRecord = append(c.hooks.CVRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cvrecord.Intercept(f(g(h())))`.
func (c *CVRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CVRecord = append(c.inters.CVRecord, interceptors...)
}

// Create returns a builder for creating a CVRecord entity.
func (c *CVRecordClient) Create() *CVRecordCreate {
	mutation := newCVRecordMutation(c.config, OpCreate)
	return &CVRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CVRecord entities.
func (c *CVRecordClient) CreateBulk(builders ...*CVRecordCreate) *CVRecordCreateBulk {
	return &CVRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CVRecordClient) MapCreateBulk(slice any, setFunc func(*CVRecordCreate, int)) *CVRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CVRecordCreateBulk{err: fmt.Errorf("calling to CVRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CVRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CVRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CVRecord.
func (c *CVRecordClient) Update() *CVRecordUpdate {
	mutation := newCVRecordMutation(c.config, OpUpdate)
	return &CVRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CVRecordClient) UpdateOne(_m *CVRecord) *CVRecordUpdateOne {
	mutation := newCVRecordMutation(c.config, OpUpdateOne, withCVRecord(_m))
	return &CVRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CVRecordClient) UpdateOneID(id int) *CVRecordUpdateOne {
	mutation := newCVRecordMutation(c.config, OpUpdateOne, withCVRecordID(id))
	return &CVRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CVRecord.
func (c *CVRecordClient) Delete() *CVRecordDelete {
	mutation := newCVRecordMutation(c.config, OpDelete)
	return &CVRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CVRecordClient) DeleteOne(_m *CVRecord) *CVRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CVRecordClient) DeleteOneID(id int) *CVRecordDeleteOne {
	builder := c.Delete().Where(cvrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CVRecordDeleteOne{builder}
}

// Query returns a query builder for CVRecord.
func (c *CVRecordClient) Query() *CVRecordQuery {
	return &CVRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCVRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CVRecord entity by its id.
func (c *CVRecordClient) Get(ctx context.Context, id int) (*CVRecord, error) {
	return c.Query().Where(cvrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CVRecordClient) GetX(ctx context.Context, id int) *CVRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a CVRecord.
func (c *CVRecordClient) QueryApplications(_m *CVRecord) *OfferApplicationQuery {
	query := (&OfferApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cvrecord.Table, cvrecord.FieldID, id),
			sqlgraph.To(offerapplication.Table, offerapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cvrecord.ApplicationsTable, cvrecord.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CVRecordClient) Hooks() []Hook {
	return c.hooks.CVRecord
}

// Interceptors returns the client interceptors.
func (c *CVRecordClient) Interceptors() []Interceptor {
	return c.inters.CVRecord
}

func (c *CVRecordClient) mutate(ctx context.Context, m *CVRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CVRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CVRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CVRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CVRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CVRecord mutation op: %q", m.Op())
	}
}

// OfferClient is a client for the Offer schema.
type OfferClient struct {
	config
}

// NewOfferClient returns a client for the Offer from the given config.
func NewOfferClient(c config) *OfferClient {
	return &OfferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `offer.Hooks(f(g(h())))`.
func (c *OfferClient) Use(hooks ...Hook) {
	c.hooks.Offer = append(c.hooks.Offer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `offer.Intercept(f(g(h())))`.
func (c *OfferClient) Intercept(interceptors ...Interceptor) {
	c.inters.Offer = append(c.inters.Offer, interceptors...)
}

// Create returns a builder for creating a Offer entity.
func (c *OfferClient) Create() *OfferCreate {
	mutation := newOfferMutation(c.config, OpCreate)
	return &OfferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Offer entities.
func (c *OfferClient) CreateBulk(builders ...*OfferCreate) *OfferCreateBulk {
	return &OfferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OfferClient) MapCreateBulk(slice any, setFunc func(*OfferCreate, int)) *OfferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OfferCreateBulk{err: fmt.Errorf("calling to OfferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OfferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OfferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Offer.
func (c *OfferClient) Update() *OfferUpdate {
	mutation := newOfferMutation(c.config, OpUpdate)
	return &OfferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OfferClient) UpdateOne(_m *Offer) *OfferUpdateOne {
	mutation := newOfferMutation(c.config, OpUpdateOne, withOffer(_m))
	return &OfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OfferClient) UpdateOneID(id int) *OfferUpdateOne {
	mutation := newOfferMutation(c.config, OpUpdateOne, withOfferID(id))
	return &OfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Offer.
func (c *OfferClient) Delete() *OfferDelete {
	mutation := newOfferMutation(c.config, OpDelete)
	return &OfferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OfferClient) DeleteOne(_m *Offer) *OfferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OfferClient) DeleteOneID(id int) *OfferDeleteOne {
	builder := c.Delete().Where(offer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OfferDeleteOne{builder}
}

// Query returns a query builder for Offer.
func (c *OfferClient) Query() *OfferQuery {
	return &OfferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOffer},
		inters: c.Interceptors(),
	}
}

// Get returns a Offer entity by its id.
func (c *OfferClient) Get(ctx context.Context, id int) (*Offer, error) {
	return c.Query().Where(offer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OfferClient) GetX(ctx context.Context, id int) *Offer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a Offer.
func (c *OfferClient) QueryApplications(_m *Offer) *OfferApplicationQuery {
	query := (&OfferApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(offer.Table, offer.FieldID, id),
			sqlgraph.To(offerapplication.Table, offerapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, offer.ApplicationsTable, offer.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OfferClient) Hooks() []Hook {
	return c.hooks.Offer
}

// Interceptors returns the client interceptors.
func (c *OfferClient) Interceptors() []Interceptor {
	return c.inters.Offer
}

func (c *OfferClient) mutate(ctx context.Context, m *OfferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OfferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OfferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OfferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Offer mutation op: %q", m.Op())
	}
}

// OfferApplicationClient is a client for the OfferApplication schema.
type OfferApplicationClient struct {
	config
}

// NewOfferApplicationClient returns a client for the OfferApplication from the given config.
func NewOfferApplicationClient(c config) *OfferApplicationClient {
	return &OfferApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `offerapplication.Hooks(f(g(h())))`.
func (c *OfferApplicationClient) Use(hooks ...Hook) {
	c.hooks.OfferApplication = append(c.hooks.OfferApplication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `offerapplication.Intercept(f(g(h())))`.
func (c *OfferApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.OfferApplication = append(c.inters.OfferApplication, interceptors...)
}

// Create returns a builder for creating a OfferApplication entity.
func (c *OfferApplicationClient) Create() *OfferApplicationCreate {
	mutation := newOfferApplicationMutation(c.config, OpCreate)
	return &OfferApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OfferApplication entities.
func (c *OfferApplicationClient) CreateBulk(builders ...*OfferApplicationCreate) *OfferApplicationCreateBulk {
	return &OfferApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OfferApplicationClient) MapCreateBulk(slice any, setFunc func(*OfferApplicationCreate, int)) *OfferApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OfferApplicationCreateBulk{err: fmt.Errorf("calling to OfferApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OfferApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OfferApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OfferApplication.
func (c *OfferApplicationClient) Update() *OfferApplicationUpdate {
	mutation := newOfferApplicationMutation(c.config, OpUpdate)
	return &OfferApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OfferApplicationClient) UpdateOne(_m *OfferApplication) *OfferApplicationUpdateOne {
	mutation := newOfferApplicationMutation(c.config, OpUpdateOne, withOfferApplication(_m))
	return &OfferApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OfferApplicationClient) UpdateOneID(id int) *OfferApplicationUpdateOne {
	mutation := newOfferApplicationMutation(c.config, OpUpdateOne, withOfferApplicationID(id))
	return &OfferApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OfferApplication.
func (c *OfferApplicationClient) Delete() *OfferApplicationDelete {
	mutation := newOfferApplicationMutation(c.config, OpDelete)
	return &OfferApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OfferApplicationClient) DeleteOne(_m *OfferApplication) *OfferApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OfferApplicationClient) DeleteOneID(id int) *OfferApplicationDeleteOne {
	builder := c.Delete().Where(offerapplication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OfferApplicationDeleteOne{builder}
}

// Query returns a query builder for OfferApplication.
func (c *OfferApplicationClient) Query() *OfferApplicationQuery {
	return &OfferApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOfferApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a OfferApplication entity by its id.
func (c *OfferApplicationClient) Get(ctx context.Context, id int) (*OfferApplication, error) {
	return c.Query().Where(offerapplication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OfferApplicationClient) GetX(ctx context.Context, id int) *OfferApplication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCvRecord queries the cv_record edge of a OfferApplication.
func (c *OfferApplicationClient) QueryCvRecord(_m *OfferApplication) *CVRecordQuery {
	query := (&CVRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(offerapplication.Table, offerapplication.FieldID, id),
			sqlgraph.To(cvrecord.Table, cvrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, offerapplication.CvRecordTable, offerapplication.CvRecordColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOffer queries the offer edge of a OfferApplication.
func (c *OfferApplicationClient) QueryOffer(_m *OfferApplication) *OfferQuery {
	query := (&OfferClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(offerapplication.Table, offerapplication.FieldID, id),
			sqlgraph.To(offer.Table, offer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, offerapplication.OfferTable, offerapplication.OfferColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OfferApplicationClient) Hooks() []Hook {
	return c.hooks.OfferApplication
}

// Interceptors returns the client interceptors.
func (c *OfferApplicationClient) Interceptors() []Interceptor {
	return c.inters.OfferApplication
}

func (c *OfferApplicationClient) mutate(ctx context.Context, m *OfferApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OfferApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OfferApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OfferApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OfferApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OfferApplication mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CVRecord, Offer, OfferApplication []ent.Hook
	}
	inters struct {
		CVRecord, Offer, OfferApplication []ent.Interceptor
	}
)
