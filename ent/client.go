// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/anzhiyu-c/anheyu-flow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/anheyu-flow/ent/content"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/ent/user"
	"github.com/anzhiyu-c/anheyu-flow/ent/usergroup"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Content is the client for interacting with the Content builders.
	Content *ContentClient
	// ContentVersion is the client for interacting with the ContentVersion builders.
	ContentVersion *ContentVersionClient
	// EditLock is the client for interacting with the EditLock builders.
	EditLock *EditLockClient
	// EditorialComment is the client for interacting with the EditorialComment builders.
	EditorialComment *EditorialCommentClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserGroup is the client for interacting with the UserGroup builders.
	UserGroup *UserGroupClient
	// WorkflowDefinition is the client for interacting with the WorkflowDefinition builders.
	WorkflowDefinition *WorkflowDefinitionClient
	// WorkflowTransition is the client for interacting with the WorkflowTransition builders.
	WorkflowTransition *WorkflowTransitionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Content = NewContentClient(c.config)
	c.ContentVersion = NewContentVersionClient(c.config)
	c.EditLock = NewEditLockClient(c.config)
	c.EditorialComment = NewEditorialCommentClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserGroup = NewUserGroupClient(c.config)
	c.WorkflowDefinition = NewWorkflowDefinitionClient(c.config)
	c.WorkflowTransition = NewWorkflowTransitionClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Content:            NewContentClient(cfg),
		ContentVersion:     NewContentVersionClient(cfg),
		EditLock:           NewEditLockClient(cfg),
		EditorialComment:   NewEditorialCommentClient(cfg),
		User:               NewUserClient(cfg),
		UserGroup:          NewUserGroupClient(cfg),
		WorkflowDefinition: NewWorkflowDefinitionClient(cfg),
		WorkflowTransition: NewWorkflowTransitionClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Content:            NewContentClient(cfg),
		ContentVersion:     NewContentVersionClient(cfg),
		EditLock:           NewEditLockClient(cfg),
		EditorialComment:   NewEditorialCommentClient(cfg),
		User:               NewUserClient(cfg),
		UserGroup:          NewUserGroupClient(cfg),
		WorkflowDefinition: NewWorkflowDefinitionClient(cfg),
		WorkflowTransition: NewWorkflowTransitionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Content.
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
		c.Content, c.ContentVersion, c.EditLock, c.EditorialComment, c.User,
		c.UserGroup, c.WorkflowDefinition, c.WorkflowTransition,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Content, c.ContentVersion, c.EditLock, c.EditorialComment, c.User,
		c.UserGroup, c.WorkflowDefinition, c.WorkflowTransition,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContentMutation:
		return c.Content.mutate(ctx, m)
	case *ContentVersionMutation:
		return c.ContentVersion.mutate(ctx, m)
	case *EditLockMutation:
		return c.EditLock.mutate(ctx, m)
	case *EditorialCommentMutation:
		return c.EditorialComment.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserGroupMutation:
		return c.UserGroup.mutate(ctx, m)
	case *WorkflowDefinitionMutation:
		return c.WorkflowDefinition.mutate(ctx, m)
	case *WorkflowTransitionMutation:
		return c.WorkflowTransition.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContentClient is a client for the Content schema.
type ContentClient struct {
	config
}

// NewContentClient returns a client for the Content from the given config.
func NewContentClient(c config) *ContentClient {
	return &ContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `content.Hooks(f(g(h())))`.
func (c *ContentClient) Use(hooks ...Hook) {
	c.hooks.Content = append(c.hooks.Content, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `content.Intercept(f(g(h())))`.
func (c *ContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Content = append(c.inters.Content, interceptors...)
}

// Create returns a builder for creating a Content entity.
func (c *ContentClient) Create() *ContentCreate {
	mutation := newContentMutation(c.config, OpCreate)
	return &ContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Content entities.
func (c *ContentClient) CreateBulk(builders ...*ContentCreate) *ContentCreateBulk {
	return &ContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentClient) MapCreateBulk(slice any, setFunc func(*ContentCreate, int)) *ContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentCreateBulk{err: fmt.Errorf("calling to ContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Content.
func (c *ContentClient) Update() *ContentUpdate {
	mutation := newContentMutation(c.config, OpUpdate)
	return &ContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentClient) UpdateOne(co *Content) *ContentUpdateOne {
	mutation := newContentMutation(c.config, OpUpdateOne, withContent(co))
	return &ContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentClient) UpdateOneID(id uint) *ContentUpdateOne {
	mutation := newContentMutation(c.config, OpUpdateOne, withContentID(id))
	return &ContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Content.
func (c *ContentClient) Delete() *ContentDelete {
	mutation := newContentMutation(c.config, OpDelete)
	return &ContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentClient) DeleteOne(co *Content) *ContentDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentClient) DeleteOneID(id uint) *ContentDeleteOne {
	builder := c.Delete().Where(content.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentDeleteOne{builder}
}

// Query returns a query builder for Content.
func (c *ContentClient) Query() *ContentQuery {
	return &ContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContent},
		inters: c.Interceptors(),
	}
}

// Get returns a Content entity by its id.
func (c *ContentClient) Get(ctx context.Context, id uint) (*Content, error) {
	return c.Query().Where(content.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentClient) GetX(ctx context.Context, id uint) *Content {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentClient) Hooks() []Hook {
	return c.hooks.Content
}

// Interceptors returns the client interceptors.
func (c *ContentClient) Interceptors() []Interceptor {
	return c.inters.Content
}

func (c *ContentClient) mutate(ctx context.Context, m *ContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Content mutation op: %q", m.Op())
	}
}

// ContentVersionClient is a client for the ContentVersion schema.
type ContentVersionClient struct {
	config
}

// NewContentVersionClient returns a client for the ContentVersion from the given config.
func NewContentVersionClient(c config) *ContentVersionClient {
	return &ContentVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentversion.Hooks(f(g(h())))`.
func (c *ContentVersionClient) Use(hooks ...Hook) {
	c.hooks.ContentVersion = append(c.hooks.ContentVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentversion.Intercept(f(g(h())))`.
func (c *ContentVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentVersion = append(c.inters.ContentVersion, interceptors...)
}

// Create returns a builder for creating a ContentVersion entity.
func (c *ContentVersionClient) Create() *ContentVersionCreate {
	mutation := newContentVersionMutation(c.config, OpCreate)
	return &ContentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentVersion entities.
func (c *ContentVersionClient) CreateBulk(builders ...*ContentVersionCreate) *ContentVersionCreateBulk {
	return &ContentVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentVersionClient) MapCreateBulk(slice any, setFunc func(*ContentVersionCreate, int)) *ContentVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentVersionCreateBulk{err: fmt.Errorf("calling to ContentVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentVersion.
func (c *ContentVersionClient) Update() *ContentVersionUpdate {
	mutation := newContentVersionMutation(c.config, OpUpdate)
	return &ContentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentVersionClient) UpdateOne(cv *ContentVersion) *ContentVersionUpdateOne {
	mutation := newContentVersionMutation(c.config, OpUpdateOne, withContentVersion(cv))
	return &ContentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentVersionClient) UpdateOneID(id uint) *ContentVersionUpdateOne {
	mutation := newContentVersionMutation(c.config, OpUpdateOne, withContentVersionID(id))
	return &ContentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentVersion.
func (c *ContentVersionClient) Delete() *ContentVersionDelete {
	mutation := newContentVersionMutation(c.config, OpDelete)
	return &ContentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentVersionClient) DeleteOne(cv *ContentVersion) *ContentVersionDeleteOne {
	return c.DeleteOneID(cv.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentVersionClient) DeleteOneID(id uint) *ContentVersionDeleteOne {
	builder := c.Delete().Where(contentversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentVersionDeleteOne{builder}
}

// Query returns a query builder for ContentVersion.
func (c *ContentVersionClient) Query() *ContentVersionQuery {
	return &ContentVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentVersion entity by its id.
func (c *ContentVersionClient) Get(ctx context.Context, id uint) (*ContentVersion, error) {
	return c.Query().Where(contentversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentVersionClient) GetX(ctx context.Context, id uint) *ContentVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentVersionClient) Hooks() []Hook {
	return c.hooks.ContentVersion
}

// Interceptors returns the client interceptors.
func (c *ContentVersionClient) Interceptors() []Interceptor {
	return c.inters.ContentVersion
}

func (c *ContentVersionClient) mutate(ctx context.Context, m *ContentVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentVersion mutation op: %q", m.Op())
	}
}

// EditLockClient is a client for the EditLock schema.
type EditLockClient struct {
	config
}

// NewEditLockClient returns a client for the EditLock from the given config.
func NewEditLockClient(c config) *EditLockClient {
	return &EditLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `editlock.Hooks(f(g(h())))`.
func (c *EditLockClient) Use(hooks ...Hook) {
	c.hooks.EditLock = append(c.hooks.EditLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `editlock.Intercept(f(g(h())))`.
func (c *EditLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.EditLock = append(c.inters.EditLock, interceptors...)
}

// Create returns a builder for creating a EditLock entity.
func (c *EditLockClient) Create() *EditLockCreate {
	mutation := newEditLockMutation(c.config, OpCreate)
	return &EditLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EditLock entities.
func (c *EditLockClient) CreateBulk(builders ...*EditLockCreate) *EditLockCreateBulk {
	return &EditLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EditLockClient) MapCreateBulk(slice any, setFunc func(*EditLockCreate, int)) *EditLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EditLockCreateBulk{err: fmt.Errorf("calling to EditLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EditLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EditLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EditLock.
func (c *EditLockClient) Update() *EditLockUpdate {
	mutation := newEditLockMutation(c.config, OpUpdate)
	return &EditLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EditLockClient) UpdateOne(el *EditLock) *EditLockUpdateOne {
	mutation := newEditLockMutation(c.config, OpUpdateOne, withEditLock(el))
	return &EditLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EditLockClient) UpdateOneID(id uint) *EditLockUpdateOne {
	mutation := newEditLockMutation(c.config, OpUpdateOne, withEditLockID(id))
	return &EditLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EditLock.
func (c *EditLockClient) Delete() *EditLockDelete {
	mutation := newEditLockMutation(c.config, OpDelete)
	return &EditLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EditLockClient) DeleteOne(el *EditLock) *EditLockDeleteOne {
	return c.DeleteOneID(el.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EditLockClient) DeleteOneID(id uint) *EditLockDeleteOne {
	builder := c.Delete().Where(editlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EditLockDeleteOne{builder}
}

// Query returns a query builder for EditLock.
func (c *EditLockClient) Query() *EditLockQuery {
	return &EditLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEditLock},
		inters: c.Interceptors(),
	}
}

// Get returns a EditLock entity by its id.
func (c *EditLockClient) Get(ctx context.Context, id uint) (*EditLock, error) {
	return c.Query().Where(editlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EditLockClient) GetX(ctx context.Context, id uint) *EditLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EditLockClient) Hooks() []Hook {
	return c.hooks.EditLock
}

// Interceptors returns the client interceptors.
func (c *EditLockClient) Interceptors() []Interceptor {
	return c.inters.EditLock
}

func (c *EditLockClient) mutate(ctx context.Context, m *EditLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EditLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EditLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EditLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EditLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EditLock mutation op: %q", m.Op())
	}
}

// EditorialCommentClient is a client for the EditorialComment schema.
type EditorialCommentClient struct {
	config
}

// NewEditorialCommentClient returns a client for the EditorialComment from the given config.
func NewEditorialCommentClient(c config) *EditorialCommentClient {
	return &EditorialCommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `editorialcomment.Hooks(f(g(h())))`.
func (c *EditorialCommentClient) Use(hooks ...Hook) {
	c.hooks.EditorialComment = append(c.hooks.EditorialComment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `editorialcomment.Intercept(f(g(h())))`.
func (c *EditorialCommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.EditorialComment = append(c.inters.EditorialComment, interceptors...)
}

// Create returns a builder for creating a EditorialComment entity.
func (c *EditorialCommentClient) Create() *EditorialCommentCreate {
	mutation := newEditorialCommentMutation(c.config, OpCreate)
	return &EditorialCommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EditorialComment entities.
func (c *EditorialCommentClient) CreateBulk(builders ...*EditorialCommentCreate) *EditorialCommentCreateBulk {
	return &EditorialCommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EditorialCommentClient) MapCreateBulk(slice any, setFunc func(*EditorialCommentCreate, int)) *EditorialCommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EditorialCommentCreateBulk{err: fmt.Errorf("calling to EditorialCommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EditorialCommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EditorialCommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EditorialComment.
func (c *EditorialCommentClient) Update() *EditorialCommentUpdate {
	mutation := newEditorialCommentMutation(c.config, OpUpdate)
	return &EditorialCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EditorialCommentClient) UpdateOne(ec *EditorialComment) *EditorialCommentUpdateOne {
	mutation := newEditorialCommentMutation(c.config, OpUpdateOne, withEditorialComment(ec))
	return &EditorialCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EditorialCommentClient) UpdateOneID(id uint) *EditorialCommentUpdateOne {
	mutation := newEditorialCommentMutation(c.config, OpUpdateOne, withEditorialCommentID(id))
	return &EditorialCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EditorialComment.
func (c *EditorialCommentClient) Delete() *EditorialCommentDelete {
	mutation := newEditorialCommentMutation(c.config, OpDelete)
	return &EditorialCommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EditorialCommentClient) DeleteOne(ec *EditorialComment) *EditorialCommentDeleteOne {
	return c.DeleteOneID(ec.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EditorialCommentClient) DeleteOneID(id uint) *EditorialCommentDeleteOne {
	builder := c.Delete().Where(editorialcomment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EditorialCommentDeleteOne{builder}
}

// Query returns a query builder for EditorialComment.
func (c *EditorialCommentClient) Query() *EditorialCommentQuery {
	return &EditorialCommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEditorialComment},
		inters: c.Interceptors(),
	}
}

// Get returns a EditorialComment entity by its id.
func (c *EditorialCommentClient) Get(ctx context.Context, id uint) (*EditorialComment, error) {
	return c.Query().Where(editorialcomment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EditorialCommentClient) GetX(ctx context.Context, id uint) *EditorialComment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EditorialCommentClient) Hooks() []Hook {
	return c.hooks.EditorialComment
}

// Interceptors returns the client interceptors.
func (c *EditorialCommentClient) Interceptors() []Interceptor {
	return c.inters.EditorialComment
}

func (c *EditorialCommentClient) mutate(ctx context.Context, m *EditorialCommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EditorialCommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EditorialCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EditorialCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EditorialCommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EditorialComment mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uint) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uint) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uint) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uint) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUserGroup queries the user_group edge of a User.
func (c *UserClient) QueryUserGroup(u *User) *UserGroupQuery {
	query := (&UserGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(usergroup.Table, usergroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, user.UserGroupTable, user.UserGroupColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	hooks := c.hooks.User
	return append(hooks[:len(hooks):len(hooks)], user.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserGroupClient is a client for the UserGroup schema.
type UserGroupClient struct {
	config
}

// NewUserGroupClient returns a client for the UserGroup from the given config.
func NewUserGroupClient(c config) *UserGroupClient {
	return &UserGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usergroup.Hooks(f(g(h())))`.
func (c *UserGroupClient) Use(hooks ...Hook) {
	c.hooks.UserGroup = append(c.hooks.UserGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usergroup.Intercept(f(g(h())))`.
func (c *UserGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserGroup = append(c.inters.UserGroup, interceptors...)
}

// Create returns a builder for creating a UserGroup entity.
func (c *UserGroupClient) Create() *UserGroupCreate {
	mutation := newUserGroupMutation(c.config, OpCreate)
	return &UserGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserGroup entities.
func (c *UserGroupClient) CreateBulk(builders ...*UserGroupCreate) *UserGroupCreateBulk {
	return &UserGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserGroupClient) MapCreateBulk(slice any, setFunc func(*UserGroupCreate, int)) *UserGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserGroupCreateBulk{err: fmt.Errorf("calling to UserGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserGroup.
func (c *UserGroupClient) Update() *UserGroupUpdate {
	mutation := newUserGroupMutation(c.config, OpUpdate)
	return &UserGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserGroupClient) UpdateOne(ug *UserGroup) *UserGroupUpdateOne {
	mutation := newUserGroupMutation(c.config, OpUpdateOne, withUserGroup(ug))
	return &UserGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserGroupClient) UpdateOneID(id uint) *UserGroupUpdateOne {
	mutation := newUserGroupMutation(c.config, OpUpdateOne, withUserGroupID(id))
	return &UserGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserGroup.
func (c *UserGroupClient) Delete() *UserGroupDelete {
	mutation := newUserGroupMutation(c.config, OpDelete)
	return &UserGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserGroupClient) DeleteOne(ug *UserGroup) *UserGroupDeleteOne {
	return c.DeleteOneID(ug.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserGroupClient) DeleteOneID(id uint) *UserGroupDeleteOne {
	builder := c.Delete().Where(usergroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserGroupDeleteOne{builder}
}

// Query returns a query builder for UserGroup.
func (c *UserGroupClient) Query() *UserGroupQuery {
	return &UserGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a UserGroup entity by its id.
func (c *UserGroupClient) Get(ctx context.Context, id uint) (*UserGroup, error) {
	return c.Query().Where(usergroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserGroupClient) GetX(ctx context.Context, id uint) *UserGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsers queries the users edge of a UserGroup.
func (c *UserGroupClient) QueryUsers(ug *UserGroup) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ug.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usergroup.Table, usergroup.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usergroup.UsersTable, usergroup.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(ug.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserGroupClient) Hooks() []Hook {
	hooks := c.hooks.UserGroup
	return append(hooks[:len(hooks):len(hooks)], usergroup.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserGroupClient) Interceptors() []Interceptor {
	return c.inters.UserGroup
}

func (c *UserGroupClient) mutate(ctx context.Context, m *UserGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserGroup mutation op: %q", m.Op())
	}
}

// WorkflowDefinitionClient is a client for the WorkflowDefinition schema.
type WorkflowDefinitionClient struct {
	config
}

// NewWorkflowDefinitionClient returns a client for the WorkflowDefinition from the given config.
func NewWorkflowDefinitionClient(c config) *WorkflowDefinitionClient {
	return &WorkflowDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowdefinition.Hooks(f(g(h())))`.
func (c *WorkflowDefinitionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowDefinition = append(c.hooks.WorkflowDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowdefinition.Intercept(f(g(h())))`.
func (c *WorkflowDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowDefinition = append(c.inters.WorkflowDefinition, interceptors...)
}

// Create returns a builder for creating a WorkflowDefinition entity.
func (c *WorkflowDefinitionClient) Create() *WorkflowDefinitionCreate {
	mutation := newWorkflowDefinitionMutation(c.config, OpCreate)
	return &WorkflowDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowDefinition entities.
func (c *WorkflowDefinitionClient) CreateBulk(builders ...*WorkflowDefinitionCreate) *WorkflowDefinitionCreateBulk {
	return &WorkflowDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowDefinitionClient) MapCreateBulk(slice any, setFunc func(*WorkflowDefinitionCreate, int)) *WorkflowDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowDefinitionCreateBulk{err: fmt.Errorf("calling to WorkflowDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowDefinition.
func (c *WorkflowDefinitionClient) Update() *WorkflowDefinitionUpdate {
	mutation := newWorkflowDefinitionMutation(c.config, OpUpdate)
	return &WorkflowDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowDefinitionClient) UpdateOne(wd *WorkflowDefinition) *WorkflowDefinitionUpdateOne {
	mutation := newWorkflowDefinitionMutation(c.config, OpUpdateOne, withWorkflowDefinition(wd))
	return &WorkflowDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowDefinitionClient) UpdateOneID(id uint) *WorkflowDefinitionUpdateOne {
	mutation := newWorkflowDefinitionMutation(c.config, OpUpdateOne, withWorkflowDefinitionID(id))
	return &WorkflowDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowDefinition.
func (c *WorkflowDefinitionClient) Delete() *WorkflowDefinitionDelete {
	mutation := newWorkflowDefinitionMutation(c.config, OpDelete)
	return &WorkflowDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowDefinitionClient) DeleteOne(wd *WorkflowDefinition) *WorkflowDefinitionDeleteOne {
	return c.DeleteOneID(wd.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowDefinitionClient) DeleteOneID(id uint) *WorkflowDefinitionDeleteOne {
	builder := c.Delete().Where(workflowdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDefinitionDeleteOne{builder}
}

// Query returns a query builder for WorkflowDefinition.
func (c *WorkflowDefinitionClient) Query() *WorkflowDefinitionQuery {
	return &WorkflowDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowDefinition entity by its id.
func (c *WorkflowDefinitionClient) Get(ctx context.Context, id uint) (*WorkflowDefinition, error) {
	return c.Query().Where(workflowdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowDefinitionClient) GetX(ctx context.Context, id uint) *WorkflowDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowDefinitionClient) Hooks() []Hook {
	return c.hooks.WorkflowDefinition
}

// Interceptors returns the client interceptors.
func (c *WorkflowDefinitionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowDefinition
}

func (c *WorkflowDefinitionClient) mutate(ctx context.Context, m *WorkflowDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowDefinition mutation op: %q", m.Op())
	}
}

// WorkflowTransitionClient is a client for the WorkflowTransition schema.
type WorkflowTransitionClient struct {
	config
}

// NewWorkflowTransitionClient returns a client for the WorkflowTransition from the given config.
func NewWorkflowTransitionClient(c config) *WorkflowTransitionClient {
	return &WorkflowTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowtransition.Hooks(f(g(h())))`.
func (c *WorkflowTransitionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowTransition = append(c.hooks.WorkflowTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowtransition.Intercept(f(g(h())))`.
func (c *WorkflowTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowTransition = append(c.inters.WorkflowTransition, interceptors...)
}

// Create returns a builder for creating a WorkflowTransition entity.
func (c *WorkflowTransitionClient) Create() *WorkflowTransitionCreate {
	mutation := newWorkflowTransitionMutation(c.config, OpCreate)
	return &WorkflowTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowTransition entities.
func (c *WorkflowTransitionClient) CreateBulk(builders ...*WorkflowTransitionCreate) *WorkflowTransitionCreateBulk {
	return &WorkflowTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowTransitionClient) MapCreateBulk(slice any, setFunc func(*WorkflowTransitionCreate, int)) *WorkflowTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowTransitionCreateBulk{err: fmt.Errorf("calling to WorkflowTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowTransition.
func (c *WorkflowTransitionClient) Update() *WorkflowTransitionUpdate {
	mutation := newWorkflowTransitionMutation(c.config, OpUpdate)
	return &WorkflowTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowTransitionClient) UpdateOne(wt *WorkflowTransition) *WorkflowTransitionUpdateOne {
	mutation := newWorkflowTransitionMutation(c.config, OpUpdateOne, withWorkflowTransition(wt))
	return &WorkflowTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowTransitionClient) UpdateOneID(id uint) *WorkflowTransitionUpdateOne {
	mutation := newWorkflowTransitionMutation(c.config, OpUpdateOne, withWorkflowTransitionID(id))
	return &WorkflowTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowTransition.
func (c *WorkflowTransitionClient) Delete() *WorkflowTransitionDelete {
	mutation := newWorkflowTransitionMutation(c.config, OpDelete)
	return &WorkflowTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowTransitionClient) DeleteOne(wt *WorkflowTransition) *WorkflowTransitionDeleteOne {
	return c.DeleteOneID(wt.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowTransitionClient) DeleteOneID(id uint) *WorkflowTransitionDeleteOne {
	builder := c.Delete().Where(workflowtransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowTransitionDeleteOne{builder}
}

// Query returns a query builder for WorkflowTransition.
func (c *WorkflowTransitionClient) Query() *WorkflowTransitionQuery {
	return &WorkflowTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowTransition entity by its id.
func (c *WorkflowTransitionClient) Get(ctx context.Context, id uint) (*WorkflowTransition, error) {
	return c.Query().Where(workflowtransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowTransitionClient) GetX(ctx context.Context, id uint) *WorkflowTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowTransitionClient) Hooks() []Hook {
	return c.hooks.WorkflowTransition
}

// Interceptors returns the client interceptors.
func (c *WorkflowTransitionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowTransition
}

func (c *WorkflowTransitionClient) mutate(ctx context.Context, m *WorkflowTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowTransition mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Content, ContentVersion, EditLock, EditorialComment, User, UserGroup,
		WorkflowDefinition, WorkflowTransition []ent.Hook
	}
	inters struct {
		Content, ContentVersion, EditLock, EditorialComment, User, UserGroup,
		WorkflowDefinition, WorkflowTransition []ent.Interceptor
	}
)
