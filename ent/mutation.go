// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/anheyu-flow/ent/content"
	"github.com/anzhiyu-c/anheyu-flow/ent/contentversion"
	"github.com/anzhiyu-c/anheyu-flow/ent/editlock"
	"github.com/anzhiyu-c/anheyu-flow/ent/editorialcomment"
	"github.com/anzhiyu-c/anheyu-flow/ent/predicate"
	"github.com/anzhiyu-c/anheyu-flow/ent/user"
	"github.com/anzhiyu-c/anheyu-flow/ent/usergroup"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowdefinition"
	"github.com/anzhiyu-c/anheyu-flow/ent/workflowtransition"
	"github.com/anzhiyu-c/anheyu-flow/pkg/domain/model"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContent            = "Content"
	TypeContentVersion     = "ContentVersion"
	TypeEditLock           = "EditLock"
	TypeEditorialComment   = "EditorialComment"
	TypeUser               = "User"
	TypeUserGroup          = "UserGroup"
	TypeWorkflowDefinition = "WorkflowDefinition"
	TypeWorkflowTransition = "WorkflowTransition"
)

// ContentMutation represents an operation that mutates the Content nodes in the graph.
type ContentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uint
	_type                *string
	title                *string
	workflow_status      *string
	active_version_id    *uint
	addactive_version_id *int
	draft_version_id     *uint
	adddraft_version_id  *int
	created_by           *uint
	addcreated_by        *int
	created_at           *time.Time
	updated_at           *time.Time
	published_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Content, error)
	predicates           []predicate.Content
}

var _ ent.Mutation = (*ContentMutation)(nil)

// contentOption allows management of the mutation configuration using functional options.
type contentOption func(*ContentMutation)

// newContentMutation creates new mutation for the Content entity.
func newContentMutation(c config, op Op, opts ...contentOption) *ContentMutation {
	m := &ContentMutation{
		config:        c,
		op:            op,
		typ:           TypeContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentID sets the ID field of the mutation.
func withContentID(id uint) contentOption {
	return func(m *ContentMutation) {
		var (
			err   error
			once  sync.Once
			value *Content
		)
		m.oldValue = func(ctx context.Context) (*Content, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Content.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContent sets the old Content of the mutation.
func withContent(node *Content) contentOption {
	return func(m *ContentMutation) {
		m.oldValue = func(context.Context) (*Content, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Content entities.
func (m *ContentMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Content.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *ContentMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ContentMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ContentMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *ContentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ContentMutation) ResetTitle() {
	m.title = nil
}

// SetWorkflowStatus sets the "workflow_status" field.
func (m *ContentMutation) SetWorkflowStatus(s string) {
	m.workflow_status = &s
}

// WorkflowStatus returns the value of the "workflow_status" field in the mutation.
func (m *ContentMutation) WorkflowStatus() (r string, exists bool) {
	v := m.workflow_status
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowStatus returns the old "workflow_status" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldWorkflowStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowStatus: %w", err)
	}
	return oldValue.WorkflowStatus, nil
}

// ResetWorkflowStatus resets all changes to the "workflow_status" field.
func (m *ContentMutation) ResetWorkflowStatus() {
	m.workflow_status = nil
}

// SetActiveVersionID sets the "active_version_id" field.
func (m *ContentMutation) SetActiveVersionID(u uint) {
	m.active_version_id = &u
	m.addactive_version_id = nil
}

// ActiveVersionID returns the value of the "active_version_id" field in the mutation.
func (m *ContentMutation) ActiveVersionID() (r uint, exists bool) {
	v := m.active_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveVersionID returns the old "active_version_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldActiveVersionID(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveVersionID: %w", err)
	}
	return oldValue.ActiveVersionID, nil
}

// AddActiveVersionID adds u to the "active_version_id" field.
func (m *ContentMutation) AddActiveVersionID(u int) {
	if m.addactive_version_id != nil {
		*m.addactive_version_id += u
	} else {
		m.addactive_version_id = &u
	}
}

// AddedActiveVersionID returns the value that was added to the "active_version_id" field in this mutation.
func (m *ContentMutation) AddedActiveVersionID() (r int, exists bool) {
	v := m.addactive_version_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearActiveVersionID clears the value of the "active_version_id" field.
func (m *ContentMutation) ClearActiveVersionID() {
	m.active_version_id = nil
	m.addactive_version_id = nil
	m.clearedFields[content.FieldActiveVersionID] = struct{}{}
}

// ActiveVersionIDCleared returns if the "active_version_id" field was cleared in this mutation.
func (m *ContentMutation) ActiveVersionIDCleared() bool {
	_, ok := m.clearedFields[content.FieldActiveVersionID]
	return ok
}

// ResetActiveVersionID resets all changes to the "active_version_id" field.
func (m *ContentMutation) ResetActiveVersionID() {
	m.active_version_id = nil
	m.addactive_version_id = nil
	delete(m.clearedFields, content.FieldActiveVersionID)
}

// SetDraftVersionID sets the "draft_version_id" field.
func (m *ContentMutation) SetDraftVersionID(u uint) {
	m.draft_version_id = &u
	m.adddraft_version_id = nil
}

// DraftVersionID returns the value of the "draft_version_id" field in the mutation.
func (m *ContentMutation) DraftVersionID() (r uint, exists bool) {
	v := m.draft_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftVersionID returns the old "draft_version_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldDraftVersionID(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftVersionID: %w", err)
	}
	return oldValue.DraftVersionID, nil
}

// AddDraftVersionID adds u to the "draft_version_id" field.
func (m *ContentMutation) AddDraftVersionID(u int) {
	if m.adddraft_version_id != nil {
		*m.adddraft_version_id += u
	} else {
		m.adddraft_version_id = &u
	}
}

// AddedDraftVersionID returns the value that was added to the "draft_version_id" field in this mutation.
func (m *ContentMutation) AddedDraftVersionID() (r int, exists bool) {
	v := m.adddraft_version_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDraftVersionID clears the value of the "draft_version_id" field.
func (m *ContentMutation) ClearDraftVersionID() {
	m.draft_version_id = nil
	m.adddraft_version_id = nil
	m.clearedFields[content.FieldDraftVersionID] = struct{}{}
}

// DraftVersionIDCleared returns if the "draft_version_id" field was cleared in this mutation.
func (m *ContentMutation) DraftVersionIDCleared() bool {
	_, ok := m.clearedFields[content.FieldDraftVersionID]
	return ok
}

// ResetDraftVersionID resets all changes to the "draft_version_id" field.
func (m *ContentMutation) ResetDraftVersionID() {
	m.draft_version_id = nil
	m.adddraft_version_id = nil
	delete(m.clearedFields, content.FieldDraftVersionID)
}

// SetCreatedBy sets the "created_by" field.
func (m *ContentMutation) SetCreatedBy(u uint) {
	m.created_by = &u
	m.addcreated_by = nil
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ContentMutation) CreatedBy() (r uint, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCreatedBy(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// AddCreatedBy adds u to the "created_by" field.
func (m *ContentMutation) AddCreatedBy(u int) {
	if m.addcreated_by != nil {
		*m.addcreated_by += u
	} else {
		m.addcreated_by = &u
	}
}

// AddedCreatedBy returns the value that was added to the "created_by" field in this mutation.
func (m *ContentMutation) AddedCreatedBy() (r int, exists bool) {
	v := m.addcreated_by
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ContentMutation) ResetCreatedBy() {
	m.created_by = nil
	m.addcreated_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *ContentMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *ContentMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *ContentMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[content.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *ContentMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[content.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *ContentMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, content.FieldPublishedAt)
}

// Where appends a list predicates to the ContentMutation builder.
func (m *ContentMutation) Where(ps ...predicate.Content) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Content, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Content).
func (m *ContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m._type != nil {
		fields = append(fields, content.FieldType)
	}
	if m.title != nil {
		fields = append(fields, content.FieldTitle)
	}
	if m.workflow_status != nil {
		fields = append(fields, content.FieldWorkflowStatus)
	}
	if m.active_version_id != nil {
		fields = append(fields, content.FieldActiveVersionID)
	}
	if m.draft_version_id != nil {
		fields = append(fields, content.FieldDraftVersionID)
	}
	if m.created_by != nil {
		fields = append(fields, content.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, content.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, content.FieldUpdatedAt)
	}
	if m.published_at != nil {
		fields = append(fields, content.FieldPublishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case content.FieldType:
		return m.GetType()
	case content.FieldTitle:
		return m.Title()
	case content.FieldWorkflowStatus:
		return m.WorkflowStatus()
	case content.FieldActiveVersionID:
		return m.ActiveVersionID()
	case content.FieldDraftVersionID:
		return m.DraftVersionID()
	case content.FieldCreatedBy:
		return m.CreatedBy()
	case content.FieldCreatedAt:
		return m.CreatedAt()
	case content.FieldUpdatedAt:
		return m.UpdatedAt()
	case content.FieldPublishedAt:
		return m.PublishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case content.FieldType:
		return m.OldType(ctx)
	case content.FieldTitle:
		return m.OldTitle(ctx)
	case content.FieldWorkflowStatus:
		return m.OldWorkflowStatus(ctx)
	case content.FieldActiveVersionID:
		return m.OldActiveVersionID(ctx)
	case content.FieldDraftVersionID:
		return m.OldDraftVersionID(ctx)
	case content.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case content.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case content.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case content.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Content field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case content.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case content.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case content.FieldWorkflowStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowStatus(v)
		return nil
	case content.FieldActiveVersionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveVersionID(v)
		return nil
	case content.FieldDraftVersionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftVersionID(v)
		return nil
	case content.FieldCreatedBy:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case content.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case content.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case content.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Content field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentMutation) AddedFields() []string {
	var fields []string
	if m.addactive_version_id != nil {
		fields = append(fields, content.FieldActiveVersionID)
	}
	if m.adddraft_version_id != nil {
		fields = append(fields, content.FieldDraftVersionID)
	}
	if m.addcreated_by != nil {
		fields = append(fields, content.FieldCreatedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case content.FieldActiveVersionID:
		return m.AddedActiveVersionID()
	case content.FieldDraftVersionID:
		return m.AddedDraftVersionID()
	case content.FieldCreatedBy:
		return m.AddedCreatedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case content.FieldActiveVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveVersionID(v)
		return nil
	case content.FieldDraftVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDraftVersionID(v)
		return nil
	case content.FieldCreatedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Content numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(content.FieldActiveVersionID) {
		fields = append(fields, content.FieldActiveVersionID)
	}
	if m.FieldCleared(content.FieldDraftVersionID) {
		fields = append(fields, content.FieldDraftVersionID)
	}
	if m.FieldCleared(content.FieldPublishedAt) {
		fields = append(fields, content.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentMutation) ClearField(name string) error {
	switch name {
	case content.FieldActiveVersionID:
		m.ClearActiveVersionID()
		return nil
	case content.FieldDraftVersionID:
		m.ClearDraftVersionID()
		return nil
	case content.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Content nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentMutation) ResetField(name string) error {
	switch name {
	case content.FieldType:
		m.ResetType()
		return nil
	case content.FieldTitle:
		m.ResetTitle()
		return nil
	case content.FieldWorkflowStatus:
		m.ResetWorkflowStatus()
		return nil
	case content.FieldActiveVersionID:
		m.ResetActiveVersionID()
		return nil
	case content.FieldDraftVersionID:
		m.ResetDraftVersionID()
		return nil
	case content.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case content.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case content.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case content.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Content field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Content unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Content edge %s", name)
}

// ContentVersionMutation represents an operation that mutates the ContentVersion nodes in the graph.
type ContentVersionMutation struct {
	config
	op              Op
	typ             string
	id              *uint
	content_id      *uint
	addcontent_id   *int
	version         *int
	addversion      *int
	title           *string
	content_md      *string
	content_html    *string
	blocks          *[]model.ContentBlock
	appendblocks    []model.ContentBlock
	summary         *string
	keywords        *string
	word_count      *int
	addword_count   *int
	status          *string
	is_active       *bool
	editor_id       *uint
	addeditor_id    *int
	editor_nickname *string
	change_note     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ContentVersion, error)
	predicates      []predicate.ContentVersion
}

var _ ent.Mutation = (*ContentVersionMutation)(nil)

// contentversionOption allows management of the mutation configuration using functional options.
type contentversionOption func(*ContentVersionMutation)

// newContentVersionMutation creates new mutation for the ContentVersion entity.
func newContentVersionMutation(c config, op Op, opts ...contentversionOption) *ContentVersionMutation {
	m := &ContentVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeContentVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentVersionID sets the ID field of the mutation.
func withContentVersionID(id uint) contentversionOption {
	return func(m *ContentVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentVersion
		)
		m.oldValue = func(ctx context.Context) (*ContentVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentVersion sets the old ContentVersion of the mutation.
func withContentVersion(node *ContentVersion) contentversionOption {
	return func(m *ContentVersionMutation) {
		m.oldValue = func(context.Context) (*ContentVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentVersion entities.
func (m *ContentVersionMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentVersionMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentVersionMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentID sets the "content_id" field.
func (m *ContentVersionMutation) SetContentID(u uint) {
	m.content_id = &u
	m.addcontent_id = nil
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *ContentVersionMutation) ContentID() (r uint, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldContentID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// AddContentID adds u to the "content_id" field.
func (m *ContentVersionMutation) AddContentID(u int) {
	if m.addcontent_id != nil {
		*m.addcontent_id += u
	} else {
		m.addcontent_id = &u
	}
}

// AddedContentID returns the value that was added to the "content_id" field in this mutation.
func (m *ContentVersionMutation) AddedContentID() (r int, exists bool) {
	v := m.addcontent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetContentID resets all changes to the "content_id" field.
func (m *ContentVersionMutation) ResetContentID() {
	m.content_id = nil
	m.addcontent_id = nil
}

// SetVersion sets the "version" field.
func (m *ContentVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ContentVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ContentVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ContentVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ContentVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetTitle sets the "title" field.
func (m *ContentVersionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContentVersionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ContentVersionMutation) ResetTitle() {
	m.title = nil
}

// SetContentMd sets the "content_md" field.
func (m *ContentVersionMutation) SetContentMd(s string) {
	m.content_md = &s
}

// ContentMd returns the value of the "content_md" field in the mutation.
func (m *ContentVersionMutation) ContentMd() (r string, exists bool) {
	v := m.content_md
	if v == nil {
		return
	}
	return *v, true
}

// OldContentMd returns the old "content_md" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldContentMd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentMd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentMd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentMd: %w", err)
	}
	return oldValue.ContentMd, nil
}

// ClearContentMd clears the value of the "content_md" field.
func (m *ContentVersionMutation) ClearContentMd() {
	m.content_md = nil
	m.clearedFields[contentversion.FieldContentMd] = struct{}{}
}

// ContentMdCleared returns if the "content_md" field was cleared in this mutation.
func (m *ContentVersionMutation) ContentMdCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldContentMd]
	return ok
}

// ResetContentMd resets all changes to the "content_md" field.
func (m *ContentVersionMutation) ResetContentMd() {
	m.content_md = nil
	delete(m.clearedFields, contentversion.FieldContentMd)
}

// SetContentHTML sets the "content_html" field.
func (m *ContentVersionMutation) SetContentHTML(s string) {
	m.content_html = &s
}

// ContentHTML returns the value of the "content_html" field in the mutation.
func (m *ContentVersionMutation) ContentHTML() (r string, exists bool) {
	v := m.content_html
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHTML returns the old "content_html" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldContentHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHTML: %w", err)
	}
	return oldValue.ContentHTML, nil
}

// ClearContentHTML clears the value of the "content_html" field.
func (m *ContentVersionMutation) ClearContentHTML() {
	m.content_html = nil
	m.clearedFields[contentversion.FieldContentHTML] = struct{}{}
}

// ContentHTMLCleared returns if the "content_html" field was cleared in this mutation.
func (m *ContentVersionMutation) ContentHTMLCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldContentHTML]
	return ok
}

// ResetContentHTML resets all changes to the "content_html" field.
func (m *ContentVersionMutation) ResetContentHTML() {
	m.content_html = nil
	delete(m.clearedFields, contentversion.FieldContentHTML)
}

// SetBlocks sets the "blocks" field.
func (m *ContentVersionMutation) SetBlocks(mb []model.ContentBlock) {
	m.blocks = &mb
	m.appendblocks = nil
}

// Blocks returns the value of the "blocks" field in the mutation.
func (m *ContentVersionMutation) Blocks() (r []model.ContentBlock, exists bool) {
	v := m.blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocks returns the old "blocks" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldBlocks(ctx context.Context) (v []model.ContentBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocks: %w", err)
	}
	return oldValue.Blocks, nil
}

// AppendBlocks adds mb to the "blocks" field.
func (m *ContentVersionMutation) AppendBlocks(mb []model.ContentBlock) {
	m.appendblocks = append(m.appendblocks, mb...)
}

// AppendedBlocks returns the list of values that were appended to the "blocks" field in this mutation.
func (m *ContentVersionMutation) AppendedBlocks() ([]model.ContentBlock, bool) {
	if len(m.appendblocks) == 0 {
		return nil, false
	}
	return m.appendblocks, true
}

// ClearBlocks clears the value of the "blocks" field.
func (m *ContentVersionMutation) ClearBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	m.clearedFields[contentversion.FieldBlocks] = struct{}{}
}

// BlocksCleared returns if the "blocks" field was cleared in this mutation.
func (m *ContentVersionMutation) BlocksCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldBlocks]
	return ok
}

// ResetBlocks resets all changes to the "blocks" field.
func (m *ContentVersionMutation) ResetBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	delete(m.clearedFields, contentversion.FieldBlocks)
}

// SetSummary sets the "summary" field.
func (m *ContentVersionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ContentVersionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ContentVersionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[contentversion.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ContentVersionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ContentVersionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, contentversion.FieldSummary)
}

// SetKeywords sets the "keywords" field.
func (m *ContentVersionMutation) SetKeywords(s string) {
	m.keywords = &s
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *ContentVersionMutation) Keywords() (r string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ClearKeywords clears the value of the "keywords" field.
func (m *ContentVersionMutation) ClearKeywords() {
	m.keywords = nil
	m.clearedFields[contentversion.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *ContentVersionMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *ContentVersionMutation) ResetKeywords() {
	m.keywords = nil
	delete(m.clearedFields, contentversion.FieldKeywords)
}

// SetWordCount sets the "word_count" field.
func (m *ContentVersionMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ContentVersionMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ContentVersionMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ContentVersionMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ContentVersionMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetStatus sets the "status" field.
func (m *ContentVersionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ContentVersionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContentVersionMutation) ResetStatus() {
	m.status = nil
}

// SetIsActive sets the "is_active" field.
func (m *ContentVersionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ContentVersionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ContentVersionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetEditorID sets the "editor_id" field.
func (m *ContentVersionMutation) SetEditorID(u uint) {
	m.editor_id = &u
	m.addeditor_id = nil
}

// EditorID returns the value of the "editor_id" field in the mutation.
func (m *ContentVersionMutation) EditorID() (r uint, exists bool) {
	v := m.editor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEditorID returns the old "editor_id" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldEditorID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditorID: %w", err)
	}
	return oldValue.EditorID, nil
}

// AddEditorID adds u to the "editor_id" field.
func (m *ContentVersionMutation) AddEditorID(u int) {
	if m.addeditor_id != nil {
		*m.addeditor_id += u
	} else {
		m.addeditor_id = &u
	}
}

// AddedEditorID returns the value that was added to the "editor_id" field in this mutation.
func (m *ContentVersionMutation) AddedEditorID() (r int, exists bool) {
	v := m.addeditor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEditorID resets all changes to the "editor_id" field.
func (m *ContentVersionMutation) ResetEditorID() {
	m.editor_id = nil
	m.addeditor_id = nil
}

// SetEditorNickname sets the "editor_nickname" field.
func (m *ContentVersionMutation) SetEditorNickname(s string) {
	m.editor_nickname = &s
}

// EditorNickname returns the value of the "editor_nickname" field in the mutation.
func (m *ContentVersionMutation) EditorNickname() (r string, exists bool) {
	v := m.editor_nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldEditorNickname returns the old "editor_nickname" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldEditorNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditorNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditorNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditorNickname: %w", err)
	}
	return oldValue.EditorNickname, nil
}

// ClearEditorNickname clears the value of the "editor_nickname" field.
func (m *ContentVersionMutation) ClearEditorNickname() {
	m.editor_nickname = nil
	m.clearedFields[contentversion.FieldEditorNickname] = struct{}{}
}

// EditorNicknameCleared returns if the "editor_nickname" field was cleared in this mutation.
func (m *ContentVersionMutation) EditorNicknameCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldEditorNickname]
	return ok
}

// ResetEditorNickname resets all changes to the "editor_nickname" field.
func (m *ContentVersionMutation) ResetEditorNickname() {
	m.editor_nickname = nil
	delete(m.clearedFields, contentversion.FieldEditorNickname)
}

// SetChangeNote sets the "change_note" field.
func (m *ContentVersionMutation) SetChangeNote(s string) {
	m.change_note = &s
}

// ChangeNote returns the value of the "change_note" field in the mutation.
func (m *ContentVersionMutation) ChangeNote() (r string, exists bool) {
	v := m.change_note
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeNote returns the old "change_note" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldChangeNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeNote: %w", err)
	}
	return oldValue.ChangeNote, nil
}

// ClearChangeNote clears the value of the "change_note" field.
func (m *ContentVersionMutation) ClearChangeNote() {
	m.change_note = nil
	m.clearedFields[contentversion.FieldChangeNote] = struct{}{}
}

// ChangeNoteCleared returns if the "change_note" field was cleared in this mutation.
func (m *ContentVersionMutation) ChangeNoteCleared() bool {
	_, ok := m.clearedFields[contentversion.FieldChangeNote]
	return ok
}

// ResetChangeNote resets all changes to the "change_note" field.
func (m *ContentVersionMutation) ResetChangeNote() {
	m.change_note = nil
	delete(m.clearedFields, contentversion.FieldChangeNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContentVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContentVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContentVersion entity.
// If the ContentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContentVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContentVersionMutation builder.
func (m *ContentVersionMutation) Where(ps ...predicate.ContentVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentVersion).
func (m *ContentVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentVersionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.content_id != nil {
		fields = append(fields, contentversion.FieldContentID)
	}
	if m.version != nil {
		fields = append(fields, contentversion.FieldVersion)
	}
	if m.title != nil {
		fields = append(fields, contentversion.FieldTitle)
	}
	if m.content_md != nil {
		fields = append(fields, contentversion.FieldContentMd)
	}
	if m.content_html != nil {
		fields = append(fields, contentversion.FieldContentHTML)
	}
	if m.blocks != nil {
		fields = append(fields, contentversion.FieldBlocks)
	}
	if m.summary != nil {
		fields = append(fields, contentversion.FieldSummary)
	}
	if m.keywords != nil {
		fields = append(fields, contentversion.FieldKeywords)
	}
	if m.word_count != nil {
		fields = append(fields, contentversion.FieldWordCount)
	}
	if m.status != nil {
		fields = append(fields, contentversion.FieldStatus)
	}
	if m.is_active != nil {
		fields = append(fields, contentversion.FieldIsActive)
	}
	if m.editor_id != nil {
		fields = append(fields, contentversion.FieldEditorID)
	}
	if m.editor_nickname != nil {
		fields = append(fields, contentversion.FieldEditorNickname)
	}
	if m.change_note != nil {
		fields = append(fields, contentversion.FieldChangeNote)
	}
	if m.created_at != nil {
		fields = append(fields, contentversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentversion.FieldContentID:
		return m.ContentID()
	case contentversion.FieldVersion:
		return m.Version()
	case contentversion.FieldTitle:
		return m.Title()
	case contentversion.FieldContentMd:
		return m.ContentMd()
	case contentversion.FieldContentHTML:
		return m.ContentHTML()
	case contentversion.FieldBlocks:
		return m.Blocks()
	case contentversion.FieldSummary:
		return m.Summary()
	case contentversion.FieldKeywords:
		return m.Keywords()
	case contentversion.FieldWordCount:
		return m.WordCount()
	case contentversion.FieldStatus:
		return m.Status()
	case contentversion.FieldIsActive:
		return m.IsActive()
	case contentversion.FieldEditorID:
		return m.EditorID()
	case contentversion.FieldEditorNickname:
		return m.EditorNickname()
	case contentversion.FieldChangeNote:
		return m.ChangeNote()
	case contentversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentversion.FieldContentID:
		return m.OldContentID(ctx)
	case contentversion.FieldVersion:
		return m.OldVersion(ctx)
	case contentversion.FieldTitle:
		return m.OldTitle(ctx)
	case contentversion.FieldContentMd:
		return m.OldContentMd(ctx)
	case contentversion.FieldContentHTML:
		return m.OldContentHTML(ctx)
	case contentversion.FieldBlocks:
		return m.OldBlocks(ctx)
	case contentversion.FieldSummary:
		return m.OldSummary(ctx)
	case contentversion.FieldKeywords:
		return m.OldKeywords(ctx)
	case contentversion.FieldWordCount:
		return m.OldWordCount(ctx)
	case contentversion.FieldStatus:
		return m.OldStatus(ctx)
	case contentversion.FieldIsActive:
		return m.OldIsActive(ctx)
	case contentversion.FieldEditorID:
		return m.OldEditorID(ctx)
	case contentversion.FieldEditorNickname:
		return m.OldEditorNickname(ctx)
	case contentversion.FieldChangeNote:
		return m.OldChangeNote(ctx)
	case contentversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContentVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentversion.FieldContentID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case contentversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case contentversion.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case contentversion.FieldContentMd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentMd(v)
		return nil
	case contentversion.FieldContentHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHTML(v)
		return nil
	case contentversion.FieldBlocks:
		v, ok := value.([]model.ContentBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocks(v)
		return nil
	case contentversion.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case contentversion.FieldKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case contentversion.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case contentversion.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contentversion.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case contentversion.FieldEditorID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditorID(v)
		return nil
	case contentversion.FieldEditorNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditorNickname(v)
		return nil
	case contentversion.FieldChangeNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeNote(v)
		return nil
	case contentversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContentVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentVersionMutation) AddedFields() []string {
	var fields []string
	if m.addcontent_id != nil {
		fields = append(fields, contentversion.FieldContentID)
	}
	if m.addversion != nil {
		fields = append(fields, contentversion.FieldVersion)
	}
	if m.addword_count != nil {
		fields = append(fields, contentversion.FieldWordCount)
	}
	if m.addeditor_id != nil {
		fields = append(fields, contentversion.FieldEditorID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contentversion.FieldContentID:
		return m.AddedContentID()
	case contentversion.FieldVersion:
		return m.AddedVersion()
	case contentversion.FieldWordCount:
		return m.AddedWordCount()
	case contentversion.FieldEditorID:
		return m.AddedEditorID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contentversion.FieldContentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentID(v)
		return nil
	case contentversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case contentversion.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case contentversion.FieldEditorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEditorID(v)
		return nil
	}
	return fmt.Errorf("unknown ContentVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentversion.FieldContentMd) {
		fields = append(fields, contentversion.FieldContentMd)
	}
	if m.FieldCleared(contentversion.FieldContentHTML) {
		fields = append(fields, contentversion.FieldContentHTML)
	}
	if m.FieldCleared(contentversion.FieldBlocks) {
		fields = append(fields, contentversion.FieldBlocks)
	}
	if m.FieldCleared(contentversion.FieldSummary) {
		fields = append(fields, contentversion.FieldSummary)
	}
	if m.FieldCleared(contentversion.FieldKeywords) {
		fields = append(fields, contentversion.FieldKeywords)
	}
	if m.FieldCleared(contentversion.FieldEditorNickname) {
		fields = append(fields, contentversion.FieldEditorNickname)
	}
	if m.FieldCleared(contentversion.FieldChangeNote) {
		fields = append(fields, contentversion.FieldChangeNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentVersionMutation) ClearField(name string) error {
	switch name {
	case contentversion.FieldContentMd:
		m.ClearContentMd()
		return nil
	case contentversion.FieldContentHTML:
		m.ClearContentHTML()
		return nil
	case contentversion.FieldBlocks:
		m.ClearBlocks()
		return nil
	case contentversion.FieldSummary:
		m.ClearSummary()
		return nil
	case contentversion.FieldKeywords:
		m.ClearKeywords()
		return nil
	case contentversion.FieldEditorNickname:
		m.ClearEditorNickname()
		return nil
	case contentversion.FieldChangeNote:
		m.ClearChangeNote()
		return nil
	}
	return fmt.Errorf("unknown ContentVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentVersionMutation) ResetField(name string) error {
	switch name {
	case contentversion.FieldContentID:
		m.ResetContentID()
		return nil
	case contentversion.FieldVersion:
		m.ResetVersion()
		return nil
	case contentversion.FieldTitle:
		m.ResetTitle()
		return nil
	case contentversion.FieldContentMd:
		m.ResetContentMd()
		return nil
	case contentversion.FieldContentHTML:
		m.ResetContentHTML()
		return nil
	case contentversion.FieldBlocks:
		m.ResetBlocks()
		return nil
	case contentversion.FieldSummary:
		m.ResetSummary()
		return nil
	case contentversion.FieldKeywords:
		m.ResetKeywords()
		return nil
	case contentversion.FieldWordCount:
		m.ResetWordCount()
		return nil
	case contentversion.FieldStatus:
		m.ResetStatus()
		return nil
	case contentversion.FieldIsActive:
		m.ResetIsActive()
		return nil
	case contentversion.FieldEditorID:
		m.ResetEditorID()
		return nil
	case contentversion.FieldEditorNickname:
		m.ResetEditorNickname()
		return nil
	case contentversion.FieldChangeNote:
		m.ResetChangeNote()
		return nil
	case contentversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContentVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentVersionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentVersionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentVersionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContentVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentVersionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContentVersion edge %s", name)
}

// EditLockMutation represents an operation that mutates the EditLock nodes in the graph.
type EditLockMutation struct {
	config
	op                Op
	typ               string
	id                *uint
	content_id        *uint
	addcontent_id     *int
	holder_id         *uint
	addholder_id      *int
	holder_nickname   *string
	token             *string
	acquired_at       *time.Time
	last_heartbeat_at *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EditLock, error)
	predicates        []predicate.EditLock
}

var _ ent.Mutation = (*EditLockMutation)(nil)

// editlockOption allows management of the mutation configuration using functional options.
type editlockOption func(*EditLockMutation)

// newEditLockMutation creates new mutation for the EditLock entity.
func newEditLockMutation(c config, op Op, opts ...editlockOption) *EditLockMutation {
	m := &EditLockMutation{
		config:        c,
		op:            op,
		typ:           TypeEditLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEditLockID sets the ID field of the mutation.
func withEditLockID(id uint) editlockOption {
	return func(m *EditLockMutation) {
		var (
			err   error
			once  sync.Once
			value *EditLock
		)
		m.oldValue = func(ctx context.Context) (*EditLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EditLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEditLock sets the old EditLock of the mutation.
func withEditLock(node *EditLock) editlockOption {
	return func(m *EditLockMutation) {
		m.oldValue = func(context.Context) (*EditLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EditLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EditLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EditLock entities.
func (m *EditLockMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EditLockMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EditLockMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EditLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentID sets the "content_id" field.
func (m *EditLockMutation) SetContentID(u uint) {
	m.content_id = &u
	m.addcontent_id = nil
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *EditLockMutation) ContentID() (r uint, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldContentID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// AddContentID adds u to the "content_id" field.
func (m *EditLockMutation) AddContentID(u int) {
	if m.addcontent_id != nil {
		*m.addcontent_id += u
	} else {
		m.addcontent_id = &u
	}
}

// AddedContentID returns the value that was added to the "content_id" field in this mutation.
func (m *EditLockMutation) AddedContentID() (r int, exists bool) {
	v := m.addcontent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetContentID resets all changes to the "content_id" field.
func (m *EditLockMutation) ResetContentID() {
	m.content_id = nil
	m.addcontent_id = nil
}

// SetHolderID sets the "holder_id" field.
func (m *EditLockMutation) SetHolderID(u uint) {
	m.holder_id = &u
	m.addholder_id = nil
}

// HolderID returns the value of the "holder_id" field in the mutation.
func (m *EditLockMutation) HolderID() (r uint, exists bool) {
	v := m.holder_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHolderID returns the old "holder_id" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldHolderID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolderID: %w", err)
	}
	return oldValue.HolderID, nil
}

// AddHolderID adds u to the "holder_id" field.
func (m *EditLockMutation) AddHolderID(u int) {
	if m.addholder_id != nil {
		*m.addholder_id += u
	} else {
		m.addholder_id = &u
	}
}

// AddedHolderID returns the value that was added to the "holder_id" field in this mutation.
func (m *EditLockMutation) AddedHolderID() (r int, exists bool) {
	v := m.addholder_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetHolderID resets all changes to the "holder_id" field.
func (m *EditLockMutation) ResetHolderID() {
	m.holder_id = nil
	m.addholder_id = nil
}

// SetHolderNickname sets the "holder_nickname" field.
func (m *EditLockMutation) SetHolderNickname(s string) {
	m.holder_nickname = &s
}

// HolderNickname returns the value of the "holder_nickname" field in the mutation.
func (m *EditLockMutation) HolderNickname() (r string, exists bool) {
	v := m.holder_nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldHolderNickname returns the old "holder_nickname" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldHolderNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolderNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolderNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolderNickname: %w", err)
	}
	return oldValue.HolderNickname, nil
}

// ClearHolderNickname clears the value of the "holder_nickname" field.
func (m *EditLockMutation) ClearHolderNickname() {
	m.holder_nickname = nil
	m.clearedFields[editlock.FieldHolderNickname] = struct{}{}
}

// HolderNicknameCleared returns if the "holder_nickname" field was cleared in this mutation.
func (m *EditLockMutation) HolderNicknameCleared() bool {
	_, ok := m.clearedFields[editlock.FieldHolderNickname]
	return ok
}

// ResetHolderNickname resets all changes to the "holder_nickname" field.
func (m *EditLockMutation) ResetHolderNickname() {
	m.holder_nickname = nil
	delete(m.clearedFields, editlock.FieldHolderNickname)
}

// SetToken sets the "token" field.
func (m *EditLockMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *EditLockMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *EditLockMutation) ResetToken() {
	m.token = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *EditLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *EditLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *EditLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *EditLockMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *EditLockMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *EditLockMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
}

// Where appends a list predicates to the EditLockMutation builder.
func (m *EditLockMutation) Where(ps ...predicate.EditLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EditLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EditLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EditLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EditLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EditLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EditLock).
func (m *EditLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EditLockMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.content_id != nil {
		fields = append(fields, editlock.FieldContentID)
	}
	if m.holder_id != nil {
		fields = append(fields, editlock.FieldHolderID)
	}
	if m.holder_nickname != nil {
		fields = append(fields, editlock.FieldHolderNickname)
	}
	if m.token != nil {
		fields = append(fields, editlock.FieldToken)
	}
	if m.acquired_at != nil {
		fields = append(fields, editlock.FieldAcquiredAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, editlock.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EditLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case editlock.FieldContentID:
		return m.ContentID()
	case editlock.FieldHolderID:
		return m.HolderID()
	case editlock.FieldHolderNickname:
		return m.HolderNickname()
	case editlock.FieldToken:
		return m.Token()
	case editlock.FieldAcquiredAt:
		return m.AcquiredAt()
	case editlock.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EditLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case editlock.FieldContentID:
		return m.OldContentID(ctx)
	case editlock.FieldHolderID:
		return m.OldHolderID(ctx)
	case editlock.FieldHolderNickname:
		return m.OldHolderNickname(ctx)
	case editlock.FieldToken:
		return m.OldToken(ctx)
	case editlock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case editlock.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown EditLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case editlock.FieldContentID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case editlock.FieldHolderID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolderID(v)
		return nil
	case editlock.FieldHolderNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolderNickname(v)
		return nil
	case editlock.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case editlock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case editlock.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown EditLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EditLockMutation) AddedFields() []string {
	var fields []string
	if m.addcontent_id != nil {
		fields = append(fields, editlock.FieldContentID)
	}
	if m.addholder_id != nil {
		fields = append(fields, editlock.FieldHolderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EditLockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case editlock.FieldContentID:
		return m.AddedContentID()
	case editlock.FieldHolderID:
		return m.AddedHolderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case editlock.FieldContentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentID(v)
		return nil
	case editlock.FieldHolderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHolderID(v)
		return nil
	}
	return fmt.Errorf("unknown EditLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EditLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(editlock.FieldHolderNickname) {
		fields = append(fields, editlock.FieldHolderNickname)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EditLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EditLockMutation) ClearField(name string) error {
	switch name {
	case editlock.FieldHolderNickname:
		m.ClearHolderNickname()
		return nil
	}
	return fmt.Errorf("unknown EditLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EditLockMutation) ResetField(name string) error {
	switch name {
	case editlock.FieldContentID:
		m.ResetContentID()
		return nil
	case editlock.FieldHolderID:
		m.ResetHolderID()
		return nil
	case editlock.FieldHolderNickname:
		m.ResetHolderNickname()
		return nil
	case editlock.FieldToken:
		m.ResetToken()
		return nil
	case editlock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case editlock.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown EditLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EditLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EditLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EditLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EditLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EditLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EditLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EditLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EditLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EditLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EditLock edge %s", name)
}

// EditorialCommentMutation represents an operation that mutates the EditorialComment nodes in the graph.
type EditorialCommentMutation struct {
	config
	op                Op
	typ               string
	id                *uint
	version_id        *uint
	addversion_id     *int
	author_id         *uint
	addauthor_id      *int
	author_nickname   *string
	content           *string
	content_html      *string
	block_id          *string
	_type             *string
	resolved_by_id    *uint
	addresolved_by_id *int
	resolved_by_name  *string
	resolved_at       *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EditorialComment, error)
	predicates        []predicate.EditorialComment
}

var _ ent.Mutation = (*EditorialCommentMutation)(nil)

// editorialcommentOption allows management of the mutation configuration using functional options.
type editorialcommentOption func(*EditorialCommentMutation)

// newEditorialCommentMutation creates new mutation for the EditorialComment entity.
func newEditorialCommentMutation(c config, op Op, opts ...editorialcommentOption) *EditorialCommentMutation {
	m := &EditorialCommentMutation{
		config:        c,
		op:            op,
		typ:           TypeEditorialComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEditorialCommentID sets the ID field of the mutation.
func withEditorialCommentID(id uint) editorialcommentOption {
	return func(m *EditorialCommentMutation) {
		var (
			err   error
			once  sync.Once
			value *EditorialComment
		)
		m.oldValue = func(ctx context.Context) (*EditorialComment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EditorialComment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEditorialComment sets the old EditorialComment of the mutation.
func withEditorialComment(node *EditorialComment) editorialcommentOption {
	return func(m *EditorialCommentMutation) {
		m.oldValue = func(context.Context) (*EditorialComment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EditorialCommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EditorialCommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EditorialComment entities.
func (m *EditorialCommentMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EditorialCommentMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EditorialCommentMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EditorialComment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersionID sets the "version_id" field.
func (m *EditorialCommentMutation) SetVersionID(u uint) {
	m.version_id = &u
	m.addversion_id = nil
}

// VersionID returns the value of the "version_id" field in the mutation.
func (m *EditorialCommentMutation) VersionID() (r uint, exists bool) {
	v := m.version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionID returns the old "version_id" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldVersionID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionID: %w", err)
	}
	return oldValue.VersionID, nil
}

// AddVersionID adds u to the "version_id" field.
func (m *EditorialCommentMutation) AddVersionID(u int) {
	if m.addversion_id != nil {
		*m.addversion_id += u
	} else {
		m.addversion_id = &u
	}
}

// AddedVersionID returns the value that was added to the "version_id" field in this mutation.
func (m *EditorialCommentMutation) AddedVersionID() (r int, exists bool) {
	v := m.addversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionID resets all changes to the "version_id" field.
func (m *EditorialCommentMutation) ResetVersionID() {
	m.version_id = nil
	m.addversion_id = nil
}

// SetAuthorID sets the "author_id" field.
func (m *EditorialCommentMutation) SetAuthorID(u uint) {
	m.author_id = &u
	m.addauthor_id = nil
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *EditorialCommentMutation) AuthorID() (r uint, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldAuthorID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// AddAuthorID adds u to the "author_id" field.
func (m *EditorialCommentMutation) AddAuthorID(u int) {
	if m.addauthor_id != nil {
		*m.addauthor_id += u
	} else {
		m.addauthor_id = &u
	}
}

// AddedAuthorID returns the value that was added to the "author_id" field in this mutation.
func (m *EditorialCommentMutation) AddedAuthorID() (r int, exists bool) {
	v := m.addauthor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *EditorialCommentMutation) ResetAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
}

// SetAuthorNickname sets the "author_nickname" field.
func (m *EditorialCommentMutation) SetAuthorNickname(s string) {
	m.author_nickname = &s
}

// AuthorNickname returns the value of the "author_nickname" field in the mutation.
func (m *EditorialCommentMutation) AuthorNickname() (r string, exists bool) {
	v := m.author_nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorNickname returns the old "author_nickname" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldAuthorNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorNickname: %w", err)
	}
	return oldValue.AuthorNickname, nil
}

// ClearAuthorNickname clears the value of the "author_nickname" field.
func (m *EditorialCommentMutation) ClearAuthorNickname() {
	m.author_nickname = nil
	m.clearedFields[editorialcomment.FieldAuthorNickname] = struct{}{}
}

// AuthorNicknameCleared returns if the "author_nickname" field was cleared in this mutation.
func (m *EditorialCommentMutation) AuthorNicknameCleared() bool {
	_, ok := m.clearedFields[editorialcomment.FieldAuthorNickname]
	return ok
}

// ResetAuthorNickname resets all changes to the "author_nickname" field.
func (m *EditorialCommentMutation) ResetAuthorNickname() {
	m.author_nickname = nil
	delete(m.clearedFields, editorialcomment.FieldAuthorNickname)
}

// SetContent sets the "content" field.
func (m *EditorialCommentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EditorialCommentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *EditorialCommentMutation) ResetContent() {
	m.content = nil
}

// SetContentHTML sets the "content_html" field.
func (m *EditorialCommentMutation) SetContentHTML(s string) {
	m.content_html = &s
}

// ContentHTML returns the value of the "content_html" field in the mutation.
func (m *EditorialCommentMutation) ContentHTML() (r string, exists bool) {
	v := m.content_html
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHTML returns the old "content_html" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldContentHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHTML: %w", err)
	}
	return oldValue.ContentHTML, nil
}

// ResetContentHTML resets all changes to the "content_html" field.
func (m *EditorialCommentMutation) ResetContentHTML() {
	m.content_html = nil
}

// SetBlockID sets the "block_id" field.
func (m *EditorialCommentMutation) SetBlockID(s string) {
	m.block_id = &s
}

// BlockID returns the value of the "block_id" field in the mutation.
func (m *EditorialCommentMutation) BlockID() (r string, exists bool) {
	v := m.block_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockID returns the old "block_id" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldBlockID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockID: %w", err)
	}
	return oldValue.BlockID, nil
}

// ClearBlockID clears the value of the "block_id" field.
func (m *EditorialCommentMutation) ClearBlockID() {
	m.block_id = nil
	m.clearedFields[editorialcomment.FieldBlockID] = struct{}{}
}

// BlockIDCleared returns if the "block_id" field was cleared in this mutation.
func (m *EditorialCommentMutation) BlockIDCleared() bool {
	_, ok := m.clearedFields[editorialcomment.FieldBlockID]
	return ok
}

// ResetBlockID resets all changes to the "block_id" field.
func (m *EditorialCommentMutation) ResetBlockID() {
	m.block_id = nil
	delete(m.clearedFields, editorialcomment.FieldBlockID)
}

// SetType sets the "type" field.
func (m *EditorialCommentMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EditorialCommentMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EditorialCommentMutation) ResetType() {
	m._type = nil
}

// SetResolvedByID sets the "resolved_by_id" field.
func (m *EditorialCommentMutation) SetResolvedByID(u uint) {
	m.resolved_by_id = &u
	m.addresolved_by_id = nil
}

// ResolvedByID returns the value of the "resolved_by_id" field in the mutation.
func (m *EditorialCommentMutation) ResolvedByID() (r uint, exists bool) {
	v := m.resolved_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedByID returns the old "resolved_by_id" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldResolvedByID(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedByID: %w", err)
	}
	return oldValue.ResolvedByID, nil
}

// AddResolvedByID adds u to the "resolved_by_id" field.
func (m *EditorialCommentMutation) AddResolvedByID(u int) {
	if m.addresolved_by_id != nil {
		*m.addresolved_by_id += u
	} else {
		m.addresolved_by_id = &u
	}
}

// AddedResolvedByID returns the value that was added to the "resolved_by_id" field in this mutation.
func (m *EditorialCommentMutation) AddedResolvedByID() (r int, exists bool) {
	v := m.addresolved_by_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearResolvedByID clears the value of the "resolved_by_id" field.
func (m *EditorialCommentMutation) ClearResolvedByID() {
	m.resolved_by_id = nil
	m.addresolved_by_id = nil
	m.clearedFields[editorialcomment.FieldResolvedByID] = struct{}{}
}

// ResolvedByIDCleared returns if the "resolved_by_id" field was cleared in this mutation.
func (m *EditorialCommentMutation) ResolvedByIDCleared() bool {
	_, ok := m.clearedFields[editorialcomment.FieldResolvedByID]
	return ok
}

// ResetResolvedByID resets all changes to the "resolved_by_id" field.
func (m *EditorialCommentMutation) ResetResolvedByID() {
	m.resolved_by_id = nil
	m.addresolved_by_id = nil
	delete(m.clearedFields, editorialcomment.FieldResolvedByID)
}

// SetResolvedByName sets the "resolved_by_name" field.
func (m *EditorialCommentMutation) SetResolvedByName(s string) {
	m.resolved_by_name = &s
}

// ResolvedByName returns the value of the "resolved_by_name" field in the mutation.
func (m *EditorialCommentMutation) ResolvedByName() (r string, exists bool) {
	v := m.resolved_by_name
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedByName returns the old "resolved_by_name" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldResolvedByName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedByName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedByName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedByName: %w", err)
	}
	return oldValue.ResolvedByName, nil
}

// ClearResolvedByName clears the value of the "resolved_by_name" field.
func (m *EditorialCommentMutation) ClearResolvedByName() {
	m.resolved_by_name = nil
	m.clearedFields[editorialcomment.FieldResolvedByName] = struct{}{}
}

// ResolvedByNameCleared returns if the "resolved_by_name" field was cleared in this mutation.
func (m *EditorialCommentMutation) ResolvedByNameCleared() bool {
	_, ok := m.clearedFields[editorialcomment.FieldResolvedByName]
	return ok
}

// ResetResolvedByName resets all changes to the "resolved_by_name" field.
func (m *EditorialCommentMutation) ResetResolvedByName() {
	m.resolved_by_name = nil
	delete(m.clearedFields, editorialcomment.FieldResolvedByName)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *EditorialCommentMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *EditorialCommentMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *EditorialCommentMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[editorialcomment.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *EditorialCommentMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[editorialcomment.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *EditorialCommentMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, editorialcomment.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EditorialCommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EditorialCommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EditorialComment entity.
// If the EditorialComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialCommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EditorialCommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EditorialCommentMutation builder.
func (m *EditorialCommentMutation) Where(ps ...predicate.EditorialComment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EditorialCommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EditorialCommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EditorialComment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EditorialCommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EditorialCommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EditorialComment).
func (m *EditorialCommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EditorialCommentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.version_id != nil {
		fields = append(fields, editorialcomment.FieldVersionID)
	}
	if m.author_id != nil {
		fields = append(fields, editorialcomment.FieldAuthorID)
	}
	if m.author_nickname != nil {
		fields = append(fields, editorialcomment.FieldAuthorNickname)
	}
	if m.content != nil {
		fields = append(fields, editorialcomment.FieldContent)
	}
	if m.content_html != nil {
		fields = append(fields, editorialcomment.FieldContentHTML)
	}
	if m.block_id != nil {
		fields = append(fields, editorialcomment.FieldBlockID)
	}
	if m._type != nil {
		fields = append(fields, editorialcomment.FieldType)
	}
	if m.resolved_by_id != nil {
		fields = append(fields, editorialcomment.FieldResolvedByID)
	}
	if m.resolved_by_name != nil {
		fields = append(fields, editorialcomment.FieldResolvedByName)
	}
	if m.resolved_at != nil {
		fields = append(fields, editorialcomment.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, editorialcomment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EditorialCommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case editorialcomment.FieldVersionID:
		return m.VersionID()
	case editorialcomment.FieldAuthorID:
		return m.AuthorID()
	case editorialcomment.FieldAuthorNickname:
		return m.AuthorNickname()
	case editorialcomment.FieldContent:
		return m.Content()
	case editorialcomment.FieldContentHTML:
		return m.ContentHTML()
	case editorialcomment.FieldBlockID:
		return m.BlockID()
	case editorialcomment.FieldType:
		return m.GetType()
	case editorialcomment.FieldResolvedByID:
		return m.ResolvedByID()
	case editorialcomment.FieldResolvedByName:
		return m.ResolvedByName()
	case editorialcomment.FieldResolvedAt:
		return m.ResolvedAt()
	case editorialcomment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EditorialCommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case editorialcomment.FieldVersionID:
		return m.OldVersionID(ctx)
	case editorialcomment.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case editorialcomment.FieldAuthorNickname:
		return m.OldAuthorNickname(ctx)
	case editorialcomment.FieldContent:
		return m.OldContent(ctx)
	case editorialcomment.FieldContentHTML:
		return m.OldContentHTML(ctx)
	case editorialcomment.FieldBlockID:
		return m.OldBlockID(ctx)
	case editorialcomment.FieldType:
		return m.OldType(ctx)
	case editorialcomment.FieldResolvedByID:
		return m.OldResolvedByID(ctx)
	case editorialcomment.FieldResolvedByName:
		return m.OldResolvedByName(ctx)
	case editorialcomment.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case editorialcomment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EditorialComment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditorialCommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case editorialcomment.FieldVersionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionID(v)
		return nil
	case editorialcomment.FieldAuthorID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case editorialcomment.FieldAuthorNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorNickname(v)
		return nil
	case editorialcomment.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case editorialcomment.FieldContentHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHTML(v)
		return nil
	case editorialcomment.FieldBlockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockID(v)
		return nil
	case editorialcomment.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case editorialcomment.FieldResolvedByID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedByID(v)
		return nil
	case editorialcomment.FieldResolvedByName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedByName(v)
		return nil
	case editorialcomment.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case editorialcomment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EditorialComment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EditorialCommentMutation) AddedFields() []string {
	var fields []string
	if m.addversion_id != nil {
		fields = append(fields, editorialcomment.FieldVersionID)
	}
	if m.addauthor_id != nil {
		fields = append(fields, editorialcomment.FieldAuthorID)
	}
	if m.addresolved_by_id != nil {
		fields = append(fields, editorialcomment.FieldResolvedByID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EditorialCommentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case editorialcomment.FieldVersionID:
		return m.AddedVersionID()
	case editorialcomment.FieldAuthorID:
		return m.AddedAuthorID()
	case editorialcomment.FieldResolvedByID:
		return m.AddedResolvedByID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditorialCommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case editorialcomment.FieldVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionID(v)
		return nil
	case editorialcomment.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorID(v)
		return nil
	case editorialcomment.FieldResolvedByID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResolvedByID(v)
		return nil
	}
	return fmt.Errorf("unknown EditorialComment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EditorialCommentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(editorialcomment.FieldAuthorNickname) {
		fields = append(fields, editorialcomment.FieldAuthorNickname)
	}
	if m.FieldCleared(editorialcomment.FieldBlockID) {
		fields = append(fields, editorialcomment.FieldBlockID)
	}
	if m.FieldCleared(editorialcomment.FieldResolvedByID) {
		fields = append(fields, editorialcomment.FieldResolvedByID)
	}
	if m.FieldCleared(editorialcomment.FieldResolvedByName) {
		fields = append(fields, editorialcomment.FieldResolvedByName)
	}
	if m.FieldCleared(editorialcomment.FieldResolvedAt) {
		fields = append(fields, editorialcomment.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EditorialCommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EditorialCommentMutation) ClearField(name string) error {
	switch name {
	case editorialcomment.FieldAuthorNickname:
		m.ClearAuthorNickname()
		return nil
	case editorialcomment.FieldBlockID:
		m.ClearBlockID()
		return nil
	case editorialcomment.FieldResolvedByID:
		m.ClearResolvedByID()
		return nil
	case editorialcomment.FieldResolvedByName:
		m.ClearResolvedByName()
		return nil
	case editorialcomment.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown EditorialComment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EditorialCommentMutation) ResetField(name string) error {
	switch name {
	case editorialcomment.FieldVersionID:
		m.ResetVersionID()
		return nil
	case editorialcomment.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case editorialcomment.FieldAuthorNickname:
		m.ResetAuthorNickname()
		return nil
	case editorialcomment.FieldContent:
		m.ResetContent()
		return nil
	case editorialcomment.FieldContentHTML:
		m.ResetContentHTML()
		return nil
	case editorialcomment.FieldBlockID:
		m.ResetBlockID()
		return nil
	case editorialcomment.FieldType:
		m.ResetType()
		return nil
	case editorialcomment.FieldResolvedByID:
		m.ResetResolvedByID()
		return nil
	case editorialcomment.FieldResolvedByName:
		m.ResetResolvedByName()
		return nil
	case editorialcomment.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case editorialcomment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EditorialComment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EditorialCommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EditorialCommentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EditorialCommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EditorialCommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EditorialCommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EditorialCommentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EditorialCommentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EditorialComment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EditorialCommentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EditorialComment edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                Op
	typ               string
	id                *uint
	deleted_at        *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	username          *string
	password_hash     *string
	nickname          *string
	email             *string
	last_login_at     *time.Time
	status            *int
	addstatus         *int
	clearedFields     map[string]struct{}
	user_group        *uint
	cleareduser_group bool
	done              bool
	oldValue          func(context.Context) (*User, error)
	predicates        []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uint) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetNickname sets the "nickname" field.
func (m *UserMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *UserMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ClearNickname clears the value of the "nickname" field.
func (m *UserMutation) ClearNickname() {
	m.nickname = nil
	m.clearedFields[user.FieldNickname] = struct{}{}
}

// NicknameCleared returns if the "nickname" field was cleared in this mutation.
func (m *UserMutation) NicknameCleared() bool {
	_, ok := m.clearedFields[user.FieldNickname]
	return ok
}

// ResetNickname resets all changes to the "nickname" field.
func (m *UserMutation) ResetNickname() {
	m.nickname = nil
	delete(m.clearedFields, user.FieldNickname)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *UserMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *UserMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetUserGroupID sets the "user_group" edge to the UserGroup entity by id.
func (m *UserMutation) SetUserGroupID(id uint) {
	m.user_group = &id
}

// ClearUserGroup clears the "user_group" edge to the UserGroup entity.
func (m *UserMutation) ClearUserGroup() {
	m.cleareduser_group = true
}

// UserGroupCleared reports if the "user_group" edge to the UserGroup entity was cleared.
func (m *UserMutation) UserGroupCleared() bool {
	return m.cleareduser_group
}

// UserGroupID returns the "user_group" edge ID in the mutation.
func (m *UserMutation) UserGroupID() (id uint, exists bool) {
	if m.user_group != nil {
		return *m.user_group, true
	}
	return
}

// UserGroupIDs returns the "user_group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserGroupID instead. It exists only for internal usage by the builders.
func (m *UserMutation) UserGroupIDs() (ids []uint) {
	if id := m.user_group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUserGroup resets all changes to the "user_group" edge.
func (m *UserMutation) ResetUserGroup() {
	m.user_group = nil
	m.cleareduser_group = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.nickname != nil {
		fields = append(fields, user.FieldNickname)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldNickname:
		return m.Nickname()
	case user.FieldEmail:
		return m.Email()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldNickname:
		return m.OldNickname(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addstatus != nil {
		fields = append(fields, user.FieldStatus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldStatus:
		return m.AddedStatus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldNickname) {
		fields = append(fields, user.FieldNickname)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldNickname:
		m.ClearNickname()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldNickname:
		m.ResetNickname()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user_group != nil {
		edges = append(edges, user.EdgeUserGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeUserGroup:
		if id := m.user_group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser_group {
		edges = append(edges, user.EdgeUserGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeUserGroup:
		return m.cleareduser_group
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeUserGroup:
		m.ClearUserGroup()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeUserGroup:
		m.ResetUserGroup()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserGroupMutation represents an operation that mutates the UserGroup nodes in the graph.
type UserGroupMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	deleted_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	description   *string
	roles         *[]string
	appendroles   []string
	permissions   *model.Boolset
	clearedFields map[string]struct{}
	users         map[uint]struct{}
	removedusers  map[uint]struct{}
	clearedusers  bool
	done          bool
	oldValue      func(context.Context) (*UserGroup, error)
	predicates    []predicate.UserGroup
}

var _ ent.Mutation = (*UserGroupMutation)(nil)

// usergroupOption allows management of the mutation configuration using functional options.
type usergroupOption func(*UserGroupMutation)

// newUserGroupMutation creates new mutation for the UserGroup entity.
func newUserGroupMutation(c config, op Op, opts ...usergroupOption) *UserGroupMutation {
	m := &UserGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeUserGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserGroupID sets the ID field of the mutation.
func withUserGroupID(id uint) usergroupOption {
	return func(m *UserGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *UserGroup
		)
		m.oldValue = func(ctx context.Context) (*UserGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserGroup sets the old UserGroup of the mutation.
func withUserGroup(node *UserGroup) usergroupOption {
	return func(m *UserGroupMutation) {
		m.oldValue = func(context.Context) (*UserGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserGroup entities.
func (m *UserGroupMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserGroupMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserGroupMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserGroupMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserGroupMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserGroupMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[usergroup.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserGroupMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[usergroup.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserGroupMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, usergroup.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *UserGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserGroupMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *UserGroupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *UserGroupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *UserGroupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[usergroup.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *UserGroupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[usergroup.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *UserGroupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, usergroup.FieldDescription)
}

// SetRoles sets the "roles" field.
func (m *UserGroupMutation) SetRoles(s []string) {
	m.roles = &s
	m.appendroles = nil
}

// Roles returns the value of the "roles" field in the mutation.
func (m *UserGroupMutation) Roles() (r []string, exists bool) {
	v := m.roles
	if v == nil {
		return
	}
	return *v, true
}

// OldRoles returns the old "roles" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldRoles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoles: %w", err)
	}
	return oldValue.Roles, nil
}

// AppendRoles adds s to the "roles" field.
func (m *UserGroupMutation) AppendRoles(s []string) {
	m.appendroles = append(m.appendroles, s...)
}

// AppendedRoles returns the list of values that were appended to the "roles" field in this mutation.
func (m *UserGroupMutation) AppendedRoles() ([]string, bool) {
	if len(m.appendroles) == 0 {
		return nil, false
	}
	return m.appendroles, true
}

// ClearRoles clears the value of the "roles" field.
func (m *UserGroupMutation) ClearRoles() {
	m.roles = nil
	m.appendroles = nil
	m.clearedFields[usergroup.FieldRoles] = struct{}{}
}

// RolesCleared returns if the "roles" field was cleared in this mutation.
func (m *UserGroupMutation) RolesCleared() bool {
	_, ok := m.clearedFields[usergroup.FieldRoles]
	return ok
}

// ResetRoles resets all changes to the "roles" field.
func (m *UserGroupMutation) ResetRoles() {
	m.roles = nil
	m.appendroles = nil
	delete(m.clearedFields, usergroup.FieldRoles)
}

// SetPermissions sets the "permissions" field.
func (m *UserGroupMutation) SetPermissions(value model.Boolset) {
	m.permissions = &value
}

// Permissions returns the value of the "permissions" field in the mutation.
func (m *UserGroupMutation) Permissions() (r model.Boolset, exists bool) {
	v := m.permissions
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissions returns the old "permissions" field's value of the UserGroup entity.
// If the UserGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserGroupMutation) OldPermissions(ctx context.Context) (v model.Boolset, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissions: %w", err)
	}
	return oldValue.Permissions, nil
}

// ResetPermissions resets all changes to the "permissions" field.
func (m *UserGroupMutation) ResetPermissions() {
	m.permissions = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *UserGroupMutation) AddUserIDs(ids ...uint) {
	if m.users == nil {
		m.users = make(map[uint]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *UserGroupMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *UserGroupMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *UserGroupMutation) RemoveUserIDs(ids ...uint) {
	if m.removedusers == nil {
		m.removedusers = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *UserGroupMutation) RemovedUsersIDs() (ids []uint) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *UserGroupMutation) UsersIDs() (ids []uint) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *UserGroupMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// Where appends a list predicates to the UserGroupMutation builder.
func (m *UserGroupMutation) Where(ps ...predicate.UserGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserGroup).
func (m *UserGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserGroupMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.deleted_at != nil {
		fields = append(fields, usergroup.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, usergroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usergroup.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, usergroup.FieldName)
	}
	if m.description != nil {
		fields = append(fields, usergroup.FieldDescription)
	}
	if m.roles != nil {
		fields = append(fields, usergroup.FieldRoles)
	}
	if m.permissions != nil {
		fields = append(fields, usergroup.FieldPermissions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usergroup.FieldDeletedAt:
		return m.DeletedAt()
	case usergroup.FieldCreatedAt:
		return m.CreatedAt()
	case usergroup.FieldUpdatedAt:
		return m.UpdatedAt()
	case usergroup.FieldName:
		return m.Name()
	case usergroup.FieldDescription:
		return m.Description()
	case usergroup.FieldRoles:
		return m.Roles()
	case usergroup.FieldPermissions:
		return m.Permissions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usergroup.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case usergroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usergroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usergroup.FieldName:
		return m.OldName(ctx)
	case usergroup.FieldDescription:
		return m.OldDescription(ctx)
	case usergroup.FieldRoles:
		return m.OldRoles(ctx)
	case usergroup.FieldPermissions:
		return m.OldPermissions(ctx)
	}
	return nil, fmt.Errorf("unknown UserGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usergroup.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case usergroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usergroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usergroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case usergroup.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case usergroup.FieldRoles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoles(v)
		return nil
	case usergroup.FieldPermissions:
		v, ok := value.(model.Boolset)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissions(v)
		return nil
	}
	return fmt.Errorf("unknown UserGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usergroup.FieldDeletedAt) {
		fields = append(fields, usergroup.FieldDeletedAt)
	}
	if m.FieldCleared(usergroup.FieldDescription) {
		fields = append(fields, usergroup.FieldDescription)
	}
	if m.FieldCleared(usergroup.FieldRoles) {
		fields = append(fields, usergroup.FieldRoles)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserGroupMutation) ClearField(name string) error {
	switch name {
	case usergroup.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case usergroup.FieldDescription:
		m.ClearDescription()
		return nil
	case usergroup.FieldRoles:
		m.ClearRoles()
		return nil
	}
	return fmt.Errorf("unknown UserGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserGroupMutation) ResetField(name string) error {
	switch name {
	case usergroup.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case usergroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usergroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usergroup.FieldName:
		m.ResetName()
		return nil
	case usergroup.FieldDescription:
		m.ResetDescription()
		return nil
	case usergroup.FieldRoles:
		m.ResetRoles()
		return nil
	case usergroup.FieldPermissions:
		m.ResetPermissions()
		return nil
	}
	return fmt.Errorf("unknown UserGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.users != nil {
		edges = append(edges, usergroup.EdgeUsers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usergroup.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusers != nil {
		edges = append(edges, usergroup.EdgeUsers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case usergroup.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusers {
		edges = append(edges, usergroup.EdgeUsers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case usergroup.EdgeUsers:
		return m.clearedusers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UserGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserGroupMutation) ResetEdge(name string) error {
	switch name {
	case usergroup.EdgeUsers:
		m.ResetUsers()
		return nil
	}
	return fmt.Errorf("unknown UserGroup edge %s", name)
}

// WorkflowDefinitionMutation represents an operation that mutates the WorkflowDefinition nodes in the graph.
type WorkflowDefinitionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uint
	content_type        *string
	name                *string
	states              *[]string
	appendstates        []string
	initial_state       *string
	published_state     *string
	edges               *[]model.WorkflowEdge
	appendedges         []model.WorkflowEdge
	publish_roles       *[]string
	appendpublish_roles []string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*WorkflowDefinition, error)
	predicates          []predicate.WorkflowDefinition
}

var _ ent.Mutation = (*WorkflowDefinitionMutation)(nil)

// workflowdefinitionOption allows management of the mutation configuration using functional options.
type workflowdefinitionOption func(*WorkflowDefinitionMutation)

// newWorkflowDefinitionMutation creates new mutation for the WorkflowDefinition entity.
func newWorkflowDefinitionMutation(c config, op Op, opts ...workflowdefinitionOption) *WorkflowDefinitionMutation {
	m := &WorkflowDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowDefinitionID sets the ID field of the mutation.
func withWorkflowDefinitionID(id uint) workflowdefinitionOption {
	return func(m *WorkflowDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowDefinition
		)
		m.oldValue = func(ctx context.Context) (*WorkflowDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowDefinition sets the old WorkflowDefinition of the mutation.
func withWorkflowDefinition(node *WorkflowDefinition) workflowdefinitionOption {
	return func(m *WorkflowDefinitionMutation) {
		m.oldValue = func(context.Context) (*WorkflowDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowDefinition entities.
func (m *WorkflowDefinitionMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowDefinitionMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowDefinitionMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentType sets the "content_type" field.
func (m *WorkflowDefinitionMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *WorkflowDefinitionMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *WorkflowDefinitionMutation) ResetContentType() {
	m.content_type = nil
}

// SetName sets the "name" field.
func (m *WorkflowDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowDefinitionMutation) ResetName() {
	m.name = nil
}

// SetStates sets the "states" field.
func (m *WorkflowDefinitionMutation) SetStates(s []string) {
	m.states = &s
	m.appendstates = nil
}

// States returns the value of the "states" field in the mutation.
func (m *WorkflowDefinitionMutation) States() (r []string, exists bool) {
	v := m.states
	if v == nil {
		return
	}
	return *v, true
}

// OldStates returns the old "states" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldStates(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStates: %w", err)
	}
	return oldValue.States, nil
}

// AppendStates adds s to the "states" field.
func (m *WorkflowDefinitionMutation) AppendStates(s []string) {
	m.appendstates = append(m.appendstates, s...)
}

// AppendedStates returns the list of values that were appended to the "states" field in this mutation.
func (m *WorkflowDefinitionMutation) AppendedStates() ([]string, bool) {
	if len(m.appendstates) == 0 {
		return nil, false
	}
	return m.appendstates, true
}

// ResetStates resets all changes to the "states" field.
func (m *WorkflowDefinitionMutation) ResetStates() {
	m.states = nil
	m.appendstates = nil
}

// SetInitialState sets the "initial_state" field.
func (m *WorkflowDefinitionMutation) SetInitialState(s string) {
	m.initial_state = &s
}

// InitialState returns the value of the "initial_state" field in the mutation.
func (m *WorkflowDefinitionMutation) InitialState() (r string, exists bool) {
	v := m.initial_state
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialState returns the old "initial_state" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldInitialState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialState: %w", err)
	}
	return oldValue.InitialState, nil
}

// ResetInitialState resets all changes to the "initial_state" field.
func (m *WorkflowDefinitionMutation) ResetInitialState() {
	m.initial_state = nil
}

// SetPublishedState sets the "published_state" field.
func (m *WorkflowDefinitionMutation) SetPublishedState(s string) {
	m.published_state = &s
}

// PublishedState returns the value of the "published_state" field in the mutation.
func (m *WorkflowDefinitionMutation) PublishedState() (r string, exists bool) {
	v := m.published_state
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedState returns the old "published_state" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldPublishedState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedState: %w", err)
	}
	return oldValue.PublishedState, nil
}

// ResetPublishedState resets all changes to the "published_state" field.
func (m *WorkflowDefinitionMutation) ResetPublishedState() {
	m.published_state = nil
}

// SetEdges sets the "edges" field.
func (m *WorkflowDefinitionMutation) SetEdges(me []model.WorkflowEdge) {
	m.edges = &me
	m.appendedges = nil
}

// Edges returns the value of the "edges" field in the mutation.
func (m *WorkflowDefinitionMutation) Edges() (r []model.WorkflowEdge, exists bool) {
	v := m.edges
	if v == nil {
		return
	}
	return *v, true
}

// OldEdges returns the old "edges" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldEdges(ctx context.Context) (v []model.WorkflowEdge, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdges: %w", err)
	}
	return oldValue.Edges, nil
}

// AppendEdges adds me to the "edges" field.
func (m *WorkflowDefinitionMutation) AppendEdges(me []model.WorkflowEdge) {
	m.appendedges = append(m.appendedges, me...)
}

// AppendedEdges returns the list of values that were appended to the "edges" field in this mutation.
func (m *WorkflowDefinitionMutation) AppendedEdges() ([]model.WorkflowEdge, bool) {
	if len(m.appendedges) == 0 {
		return nil, false
	}
	return m.appendedges, true
}

// ResetEdges resets all changes to the "edges" field.
func (m *WorkflowDefinitionMutation) ResetEdges() {
	m.edges = nil
	m.appendedges = nil
}

// SetPublishRoles sets the "publish_roles" field.
func (m *WorkflowDefinitionMutation) SetPublishRoles(s []string) {
	m.publish_roles = &s
	m.appendpublish_roles = nil
}

// PublishRoles returns the value of the "publish_roles" field in the mutation.
func (m *WorkflowDefinitionMutation) PublishRoles() (r []string, exists bool) {
	v := m.publish_roles
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishRoles returns the old "publish_roles" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldPublishRoles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishRoles: %w", err)
	}
	return oldValue.PublishRoles, nil
}

// AppendPublishRoles adds s to the "publish_roles" field.
func (m *WorkflowDefinitionMutation) AppendPublishRoles(s []string) {
	m.appendpublish_roles = append(m.appendpublish_roles, s...)
}

// AppendedPublishRoles returns the list of values that were appended to the "publish_roles" field in this mutation.
func (m *WorkflowDefinitionMutation) AppendedPublishRoles() ([]string, bool) {
	if len(m.appendpublish_roles) == 0 {
		return nil, false
	}
	return m.appendpublish_roles, true
}

// ResetPublishRoles resets all changes to the "publish_roles" field.
func (m *WorkflowDefinitionMutation) ResetPublishRoles() {
	m.publish_roles = nil
	m.appendpublish_roles = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowDefinition entity.
// If the WorkflowDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkflowDefinitionMutation builder.
func (m *WorkflowDefinitionMutation) Where(ps ...predicate.WorkflowDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowDefinition).
func (m *WorkflowDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.content_type != nil {
		fields = append(fields, workflowdefinition.FieldContentType)
	}
	if m.name != nil {
		fields = append(fields, workflowdefinition.FieldName)
	}
	if m.states != nil {
		fields = append(fields, workflowdefinition.FieldStates)
	}
	if m.initial_state != nil {
		fields = append(fields, workflowdefinition.FieldInitialState)
	}
	if m.published_state != nil {
		fields = append(fields, workflowdefinition.FieldPublishedState)
	}
	if m.edges != nil {
		fields = append(fields, workflowdefinition.FieldEdges)
	}
	if m.publish_roles != nil {
		fields = append(fields, workflowdefinition.FieldPublishRoles)
	}
	if m.created_at != nil {
		fields = append(fields, workflowdefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowdefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowdefinition.FieldContentType:
		return m.ContentType()
	case workflowdefinition.FieldName:
		return m.Name()
	case workflowdefinition.FieldStates:
		return m.States()
	case workflowdefinition.FieldInitialState:
		return m.InitialState()
	case workflowdefinition.FieldPublishedState:
		return m.PublishedState()
	case workflowdefinition.FieldEdges:
		return m.Edges()
	case workflowdefinition.FieldPublishRoles:
		return m.PublishRoles()
	case workflowdefinition.FieldCreatedAt:
		return m.CreatedAt()
	case workflowdefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowdefinition.FieldContentType:
		return m.OldContentType(ctx)
	case workflowdefinition.FieldName:
		return m.OldName(ctx)
	case workflowdefinition.FieldStates:
		return m.OldStates(ctx)
	case workflowdefinition.FieldInitialState:
		return m.OldInitialState(ctx)
	case workflowdefinition.FieldPublishedState:
		return m.OldPublishedState(ctx)
	case workflowdefinition.FieldEdges:
		return m.OldEdges(ctx)
	case workflowdefinition.FieldPublishRoles:
		return m.OldPublishRoles(ctx)
	case workflowdefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowdefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowdefinition.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case workflowdefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflowdefinition.FieldStates:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStates(v)
		return nil
	case workflowdefinition.FieldInitialState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialState(v)
		return nil
	case workflowdefinition.FieldPublishedState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedState(v)
		return nil
	case workflowdefinition.FieldEdges:
		v, ok := value.([]model.WorkflowEdge)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdges(v)
		return nil
	case workflowdefinition.FieldPublishRoles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishRoles(v)
		return nil
	case workflowdefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowdefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowDefinitionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowDefinitionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkflowDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowDefinitionMutation) ResetField(name string) error {
	switch name {
	case workflowdefinition.FieldContentType:
		m.ResetContentType()
		return nil
	case workflowdefinition.FieldName:
		m.ResetName()
		return nil
	case workflowdefinition.FieldStates:
		m.ResetStates()
		return nil
	case workflowdefinition.FieldInitialState:
		m.ResetInitialState()
		return nil
	case workflowdefinition.FieldPublishedState:
		m.ResetPublishedState()
		return nil
	case workflowdefinition.FieldEdges:
		m.ResetEdges()
		return nil
	case workflowdefinition.FieldPublishRoles:
		m.ResetPublishRoles()
		return nil
	case workflowdefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowdefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowDefinitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowDefinitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowDefinitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowDefinitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowDefinition edge %s", name)
}

// WorkflowTransitionMutation represents an operation that mutates the WorkflowTransition nodes in the graph.
type WorkflowTransitionMutation struct {
	config
	op             Op
	typ            string
	id             *uint
	version_id     *uint
	addversion_id  *int
	from_status    *string
	to_status      *string
	actor_id       *uint
	addactor_id    *int
	actor_nickname *string
	comment        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*WorkflowTransition, error)
	predicates     []predicate.WorkflowTransition
}

var _ ent.Mutation = (*WorkflowTransitionMutation)(nil)

// workflowtransitionOption allows management of the mutation configuration using functional options.
type workflowtransitionOption func(*WorkflowTransitionMutation)

// newWorkflowTransitionMutation creates new mutation for the WorkflowTransition entity.
func newWorkflowTransitionMutation(c config, op Op, opts ...workflowtransitionOption) *WorkflowTransitionMutation {
	m := &WorkflowTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowTransitionID sets the ID field of the mutation.
func withWorkflowTransitionID(id uint) workflowtransitionOption {
	return func(m *WorkflowTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowTransition
		)
		m.oldValue = func(ctx context.Context) (*WorkflowTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowTransition sets the old WorkflowTransition of the mutation.
func withWorkflowTransition(node *WorkflowTransition) workflowtransitionOption {
	return func(m *WorkflowTransitionMutation) {
		m.oldValue = func(context.Context) (*WorkflowTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowTransition entities.
func (m *WorkflowTransitionMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowTransitionMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowTransitionMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersionID sets the "version_id" field.
func (m *WorkflowTransitionMutation) SetVersionID(u uint) {
	m.version_id = &u
	m.addversion_id = nil
}

// VersionID returns the value of the "version_id" field in the mutation.
func (m *WorkflowTransitionMutation) VersionID() (r uint, exists bool) {
	v := m.version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionID returns the old "version_id" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldVersionID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionID: %w", err)
	}
	return oldValue.VersionID, nil
}

// AddVersionID adds u to the "version_id" field.
func (m *WorkflowTransitionMutation) AddVersionID(u int) {
	if m.addversion_id != nil {
		*m.addversion_id += u
	} else {
		m.addversion_id = &u
	}
}

// AddedVersionID returns the value that was added to the "version_id" field in this mutation.
func (m *WorkflowTransitionMutation) AddedVersionID() (r int, exists bool) {
	v := m.addversion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionID resets all changes to the "version_id" field.
func (m *WorkflowTransitionMutation) ResetVersionID() {
	m.version_id = nil
	m.addversion_id = nil
}

// SetFromStatus sets the "from_status" field.
func (m *WorkflowTransitionMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *WorkflowTransitionMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldFromStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ClearFromStatus clears the value of the "from_status" field.
func (m *WorkflowTransitionMutation) ClearFromStatus() {
	m.from_status = nil
	m.clearedFields[workflowtransition.FieldFromStatus] = struct{}{}
}

// FromStatusCleared returns if the "from_status" field was cleared in this mutation.
func (m *WorkflowTransitionMutation) FromStatusCleared() bool {
	_, ok := m.clearedFields[workflowtransition.FieldFromStatus]
	return ok
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *WorkflowTransitionMutation) ResetFromStatus() {
	m.from_status = nil
	delete(m.clearedFields, workflowtransition.FieldFromStatus)
}

// SetToStatus sets the "to_status" field.
func (m *WorkflowTransitionMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *WorkflowTransitionMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *WorkflowTransitionMutation) ResetToStatus() {
	m.to_status = nil
}

// SetActorID sets the "actor_id" field.
func (m *WorkflowTransitionMutation) SetActorID(u uint) {
	m.actor_id = &u
	m.addactor_id = nil
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *WorkflowTransitionMutation) ActorID() (r uint, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldActorID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// AddActorID adds u to the "actor_id" field.
func (m *WorkflowTransitionMutation) AddActorID(u int) {
	if m.addactor_id != nil {
		*m.addactor_id += u
	} else {
		m.addactor_id = &u
	}
}

// AddedActorID returns the value that was added to the "actor_id" field in this mutation.
func (m *WorkflowTransitionMutation) AddedActorID() (r int, exists bool) {
	v := m.addactor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *WorkflowTransitionMutation) ResetActorID() {
	m.actor_id = nil
	m.addactor_id = nil
}

// SetActorNickname sets the "actor_nickname" field.
func (m *WorkflowTransitionMutation) SetActorNickname(s string) {
	m.actor_nickname = &s
}

// ActorNickname returns the value of the "actor_nickname" field in the mutation.
func (m *WorkflowTransitionMutation) ActorNickname() (r string, exists bool) {
	v := m.actor_nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldActorNickname returns the old "actor_nickname" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldActorNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorNickname: %w", err)
	}
	return oldValue.ActorNickname, nil
}

// ClearActorNickname clears the value of the "actor_nickname" field.
func (m *WorkflowTransitionMutation) ClearActorNickname() {
	m.actor_nickname = nil
	m.clearedFields[workflowtransition.FieldActorNickname] = struct{}{}
}

// ActorNicknameCleared returns if the "actor_nickname" field was cleared in this mutation.
func (m *WorkflowTransitionMutation) ActorNicknameCleared() bool {
	_, ok := m.clearedFields[workflowtransition.FieldActorNickname]
	return ok
}

// ResetActorNickname resets all changes to the "actor_nickname" field.
func (m *WorkflowTransitionMutation) ResetActorNickname() {
	m.actor_nickname = nil
	delete(m.clearedFields, workflowtransition.FieldActorNickname)
}

// SetComment sets the "comment" field.
func (m *WorkflowTransitionMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *WorkflowTransitionMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *WorkflowTransitionMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[workflowtransition.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *WorkflowTransitionMutation) CommentCleared() bool {
	_, ok := m.clearedFields[workflowtransition.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *WorkflowTransitionMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, workflowtransition.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowTransitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowTransitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowTransition entity.
// If the WorkflowTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTransitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowTransitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorkflowTransitionMutation builder.
func (m *WorkflowTransitionMutation) Where(ps ...predicate.WorkflowTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowTransition).
func (m *WorkflowTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowTransitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.version_id != nil {
		fields = append(fields, workflowtransition.FieldVersionID)
	}
	if m.from_status != nil {
		fields = append(fields, workflowtransition.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, workflowtransition.FieldToStatus)
	}
	if m.actor_id != nil {
		fields = append(fields, workflowtransition.FieldActorID)
	}
	if m.actor_nickname != nil {
		fields = append(fields, workflowtransition.FieldActorNickname)
	}
	if m.comment != nil {
		fields = append(fields, workflowtransition.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, workflowtransition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowtransition.FieldVersionID:
		return m.VersionID()
	case workflowtransition.FieldFromStatus:
		return m.FromStatus()
	case workflowtransition.FieldToStatus:
		return m.ToStatus()
	case workflowtransition.FieldActorID:
		return m.ActorID()
	case workflowtransition.FieldActorNickname:
		return m.ActorNickname()
	case workflowtransition.FieldComment:
		return m.Comment()
	case workflowtransition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowtransition.FieldVersionID:
		return m.OldVersionID(ctx)
	case workflowtransition.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case workflowtransition.FieldToStatus:
		return m.OldToStatus(ctx)
	case workflowtransition.FieldActorID:
		return m.OldActorID(ctx)
	case workflowtransition.FieldActorNickname:
		return m.OldActorNickname(ctx)
	case workflowtransition.FieldComment:
		return m.OldComment(ctx)
	case workflowtransition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowtransition.FieldVersionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionID(v)
		return nil
	case workflowtransition.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case workflowtransition.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case workflowtransition.FieldActorID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case workflowtransition.FieldActorNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorNickname(v)
		return nil
	case workflowtransition.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case workflowtransition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowTransitionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_id != nil {
		fields = append(fields, workflowtransition.FieldVersionID)
	}
	if m.addactor_id != nil {
		fields = append(fields, workflowtransition.FieldActorID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowTransitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowtransition.FieldVersionID:
		return m.AddedVersionID()
	case workflowtransition.FieldActorID:
		return m.AddedActorID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowtransition.FieldVersionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionID(v)
		return nil
	case workflowtransition.FieldActorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorID(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowTransitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowtransition.FieldFromStatus) {
		fields = append(fields, workflowtransition.FieldFromStatus)
	}
	if m.FieldCleared(workflowtransition.FieldActorNickname) {
		fields = append(fields, workflowtransition.FieldActorNickname)
	}
	if m.FieldCleared(workflowtransition.FieldComment) {
		fields = append(fields, workflowtransition.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowTransitionMutation) ClearField(name string) error {
	switch name {
	case workflowtransition.FieldFromStatus:
		m.ClearFromStatus()
		return nil
	case workflowtransition.FieldActorNickname:
		m.ClearActorNickname()
		return nil
	case workflowtransition.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown WorkflowTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowTransitionMutation) ResetField(name string) error {
	switch name {
	case workflowtransition.FieldVersionID:
		m.ResetVersionID()
		return nil
	case workflowtransition.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case workflowtransition.FieldToStatus:
		m.ResetToStatus()
		return nil
	case workflowtransition.FieldActorID:
		m.ResetActorID()
		return nil
	case workflowtransition.FieldActorNickname:
		m.ResetActorNickname()
		return nil
	case workflowtransition.FieldComment:
		m.ResetComment()
		return nil
	case workflowtransition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowTransitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowTransitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowTransitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowTransitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowTransition edge %s", name)
}
