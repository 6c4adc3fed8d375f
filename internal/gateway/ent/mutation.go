// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/auditlog"
	"querylens/internal/gateway/ent/groupitem"
	"querylens/internal/gateway/ent/predicate"
	"querylens/internal/gateway/ent/querygroup"
	"querylens/internal/gateway/ent/searchquery"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog    = "AuditLog"
	TypeGroupItem   = "GroupItem"
	TypeQueryGroup  = "QueryGroup"
	TypeSearchQuery = "SearchQuery"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	action        *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// GroupItemMutation represents an operation that mutates the GroupItem nodes in the graph.
type GroupItemMutation struct {
	config
	op            Op
	typ           string
	id            *int
	group_id      *string
	query_id      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GroupItem, error)
	predicates    []predicate.GroupItem
}

var _ ent.Mutation = (*GroupItemMutation)(nil)

// groupitemOption allows management of the mutation configuration using functional options.
type groupitemOption func(*GroupItemMutation)

// newGroupItemMutation creates new mutation for the GroupItem entity.
func newGroupItemMutation(c config, op Op, opts ...groupitemOption) *GroupItemMutation {
	m := &GroupItemMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupItemID sets the ID field of the mutation.
func withGroupItemID(id int) groupitemOption {
	return func(m *GroupItemMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupItem
		)
		m.oldValue = func(ctx context.Context) (*GroupItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupItem sets the old GroupItem of the mutation.
func withGroupItem(node *GroupItem) groupitemOption {
	return func(m *GroupItemMutation) {
		m.oldValue = func(context.Context) (*GroupItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *GroupItemMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupItemMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupItem entity.
// If the GroupItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupItemMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupItemMutation) ResetGroupID() {
	m.group_id = nil
}

// SetQueryID sets the "query_id" field.
func (m *GroupItemMutation) SetQueryID(s string) {
	m.query_id = &s
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *GroupItemMutation) QueryID() (r string, exists bool) {
	v := m.query_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the GroupItem entity.
// If the GroupItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupItemMutation) OldQueryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *GroupItemMutation) ResetQueryID() {
	m.query_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GroupItem entity.
// If the GroupItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *GroupItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GroupItemMutation builder.
func (m *GroupItemMutation) Where(ps ...predicate.GroupItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupItem).
func (m *GroupItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupItemMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.group_id != nil {
		fields = append(fields, groupitem.FieldGroupID)
	}
	if m.query_id != nil {
		fields = append(fields, groupitem.FieldQueryID)
	}
	if m.created_at != nil {
		fields = append(fields, groupitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupitem.FieldGroupID:
		return m.GroupID()
	case groupitem.FieldQueryID:
		return m.QueryID()
	case groupitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupitem.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupitem.FieldQueryID:
		return m.OldQueryID(ctx)
	case groupitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GroupItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupitem.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupitem.FieldQueryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case groupitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GroupItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupItemMutation) ResetField(name string) error {
	switch name {
	case groupitem.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupitem.FieldQueryID:
		m.ResetQueryID()
		return nil
	case groupitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GroupItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GroupItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GroupItem edge %s", name)
}

// QueryGroupMutation represents an operation that mutates the QueryGroup nodes in the graph.
type QueryGroupMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	user_id         *string
	ai_generated    *bool
	impressions     *int
	addimpressions  *int
	clicks          *int
	addclicks       *int
	ctr             *float64
	addctr          *float64
	avg_position    *float64
	addavg_position *float64
	query_count     *int
	addquery_count  *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*QueryGroup, error)
	predicates      []predicate.QueryGroup
}

var _ ent.Mutation = (*QueryGroupMutation)(nil)

// querygroupOption allows management of the mutation configuration using functional options.
type querygroupOption func(*QueryGroupMutation)

// newQueryGroupMutation creates new mutation for the QueryGroup entity.
func newQueryGroupMutation(c config, op Op, opts ...querygroupOption) *QueryGroupMutation {
	m := &QueryGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeQueryGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueryGroupID sets the ID field of the mutation.
func withQueryGroupID(id string) querygroupOption {
	return func(m *QueryGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *QueryGroup
		)
		m.oldValue = func(ctx context.Context) (*QueryGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueryGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueryGroup sets the old QueryGroup of the mutation.
func withQueryGroup(node *QueryGroup) querygroupOption {
	return func(m *QueryGroupMutation) {
		m.oldValue = func(context.Context) (*QueryGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueryGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueryGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueryGroup entities.
func (m *QueryGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueryGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueryGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueryGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *QueryGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *QueryGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *QueryGroupMutation) ResetName() {
	m.name = nil
}

// SetUserID sets the "user_id" field.
func (m *QueryGroupMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QueryGroupMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QueryGroupMutation) ResetUserID() {
	m.user_id = nil
}

// SetAiGenerated sets the "ai_generated" field.
func (m *QueryGroupMutation) SetAiGenerated(b bool) {
	m.ai_generated = &b
}

// AiGenerated returns the value of the "ai_generated" field in the mutation.
func (m *QueryGroupMutation) AiGenerated() (r bool, exists bool) {
	v := m.ai_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldAiGenerated returns the old "ai_generated" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldAiGenerated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiGenerated: %w", err)
	}
	return oldValue.AiGenerated, nil
}

// ResetAiGenerated resets all changes to the "ai_generated" field.
func (m *QueryGroupMutation) ResetAiGenerated() {
	m.ai_generated = nil
}

// SetImpressions sets the "impressions" field.
func (m *QueryGroupMutation) SetImpressions(i int) {
	m.impressions = &i
	m.addimpressions = nil
}

// Impressions returns the value of the "impressions" field in the mutation.
func (m *QueryGroupMutation) Impressions() (r int, exists bool) {
	v := m.impressions
	if v == nil {
		return
	}
	return *v, true
}

// OldImpressions returns the old "impressions" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldImpressions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpressions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpressions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpressions: %w", err)
	}
	return oldValue.Impressions, nil
}

// AddImpressions adds i to the "impressions" field.
func (m *QueryGroupMutation) AddImpressions(i int) {
	if m.addimpressions != nil {
		*m.addimpressions += i
	} else {
		m.addimpressions = &i
	}
}

// AddedImpressions returns the value that was added to the "impressions" field in this mutation.
func (m *QueryGroupMutation) AddedImpressions() (r int, exists bool) {
	v := m.addimpressions
	if v == nil {
		return
	}
	return *v, true
}

// ResetImpressions resets all changes to the "impressions" field.
func (m *QueryGroupMutation) ResetImpressions() {
	m.impressions = nil
	m.addimpressions = nil
}

// SetClicks sets the "clicks" field.
func (m *QueryGroupMutation) SetClicks(i int) {
	m.clicks = &i
	m.addclicks = nil
}

// Clicks returns the value of the "clicks" field in the mutation.
func (m *QueryGroupMutation) Clicks() (r int, exists bool) {
	v := m.clicks
	if v == nil {
		return
	}
	return *v, true
}

// OldClicks returns the old "clicks" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldClicks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClicks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClicks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClicks: %w", err)
	}
	return oldValue.Clicks, nil
}

// AddClicks adds i to the "clicks" field.
func (m *QueryGroupMutation) AddClicks(i int) {
	if m.addclicks != nil {
		*m.addclicks += i
	} else {
		m.addclicks = &i
	}
}

// AddedClicks returns the value that was added to the "clicks" field in this mutation.
func (m *QueryGroupMutation) AddedClicks() (r int, exists bool) {
	v := m.addclicks
	if v == nil {
		return
	}
	return *v, true
}

// ResetClicks resets all changes to the "clicks" field.
func (m *QueryGroupMutation) ResetClicks() {
	m.clicks = nil
	m.addclicks = nil
}

// SetCtr sets the "ctr" field.
func (m *QueryGroupMutation) SetCtr(f float64) {
	m.ctr = &f
	m.addctr = nil
}

// Ctr returns the value of the "ctr" field in the mutation.
func (m *QueryGroupMutation) Ctr() (r float64, exists bool) {
	v := m.ctr
	if v == nil {
		return
	}
	return *v, true
}

// OldCtr returns the old "ctr" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldCtr(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtr: %w", err)
	}
	return oldValue.Ctr, nil
}

// AddCtr adds f to the "ctr" field.
func (m *QueryGroupMutation) AddCtr(f float64) {
	if m.addctr != nil {
		*m.addctr += f
	} else {
		m.addctr = &f
	}
}

// AddedCtr returns the value that was added to the "ctr" field in this mutation.
func (m *QueryGroupMutation) AddedCtr() (r float64, exists bool) {
	v := m.addctr
	if v == nil {
		return
	}
	return *v, true
}

// ResetCtr resets all changes to the "ctr" field.
func (m *QueryGroupMutation) ResetCtr() {
	m.ctr = nil
	m.addctr = nil
}

// SetAvgPosition sets the "avg_position" field.
func (m *QueryGroupMutation) SetAvgPosition(f float64) {
	m.avg_position = &f
	m.addavg_position = nil
}

// AvgPosition returns the value of the "avg_position" field in the mutation.
func (m *QueryGroupMutation) AvgPosition() (r float64, exists bool) {
	v := m.avg_position
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgPosition returns the old "avg_position" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldAvgPosition(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgPosition: %w", err)
	}
	return oldValue.AvgPosition, nil
}

// AddAvgPosition adds f to the "avg_position" field.
func (m *QueryGroupMutation) AddAvgPosition(f float64) {
	if m.addavg_position != nil {
		*m.addavg_position += f
	} else {
		m.addavg_position = &f
	}
}

// AddedAvgPosition returns the value that was added to the "avg_position" field in this mutation.
func (m *QueryGroupMutation) AddedAvgPosition() (r float64, exists bool) {
	v := m.addavg_position
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgPosition clears the value of the "avg_position" field.
func (m *QueryGroupMutation) ClearAvgPosition() {
	m.avg_position = nil
	m.addavg_position = nil
	m.clearedFields[querygroup.FieldAvgPosition] = struct{}{}
}

// AvgPositionCleared returns if the "avg_position" field was cleared in this mutation.
func (m *QueryGroupMutation) AvgPositionCleared() bool {
	_, ok := m.clearedFields[querygroup.FieldAvgPosition]
	return ok
}

// ResetAvgPosition resets all changes to the "avg_position" field.
func (m *QueryGroupMutation) ResetAvgPosition() {
	m.avg_position = nil
	m.addavg_position = nil
	delete(m.clearedFields, querygroup.FieldAvgPosition)
}

// SetQueryCount sets the "query_count" field.
func (m *QueryGroupMutation) SetQueryCount(i int) {
	m.query_count = &i
	m.addquery_count = nil
}

// QueryCount returns the value of the "query_count" field in the mutation.
func (m *QueryGroupMutation) QueryCount() (r int, exists bool) {
	v := m.query_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryCount returns the old "query_count" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldQueryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryCount: %w", err)
	}
	return oldValue.QueryCount, nil
}

// AddQueryCount adds i to the "query_count" field.
func (m *QueryGroupMutation) AddQueryCount(i int) {
	if m.addquery_count != nil {
		*m.addquery_count += i
	} else {
		m.addquery_count = &i
	}
}

// AddedQueryCount returns the value that was added to the "query_count" field in this mutation.
func (m *QueryGroupMutation) AddedQueryCount() (r int, exists bool) {
	v := m.addquery_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQueryCount resets all changes to the "query_count" field.
func (m *QueryGroupMutation) ResetQueryCount() {
	m.query_count = nil
	m.addquery_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QueryGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueryGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueryGroup entity.
// If the QueryGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueryGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *QueryGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QueryGroupMutation builder.
func (m *QueryGroupMutation) Where(ps ...predicate.QueryGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueryGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueryGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueryGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueryGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueryGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueryGroup).
func (m *QueryGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueryGroupMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, querygroup.FieldName)
	}
	if m.user_id != nil {
		fields = append(fields, querygroup.FieldUserID)
	}
	if m.ai_generated != nil {
		fields = append(fields, querygroup.FieldAiGenerated)
	}
	if m.impressions != nil {
		fields = append(fields, querygroup.FieldImpressions)
	}
	if m.clicks != nil {
		fields = append(fields, querygroup.FieldClicks)
	}
	if m.ctr != nil {
		fields = append(fields, querygroup.FieldCtr)
	}
	if m.avg_position != nil {
		fields = append(fields, querygroup.FieldAvgPosition)
	}
	if m.query_count != nil {
		fields = append(fields, querygroup.FieldQueryCount)
	}
	if m.created_at != nil {
		fields = append(fields, querygroup.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueryGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case querygroup.FieldName:
		return m.Name()
	case querygroup.FieldUserID:
		return m.UserID()
	case querygroup.FieldAiGenerated:
		return m.AiGenerated()
	case querygroup.FieldImpressions:
		return m.Impressions()
	case querygroup.FieldClicks:
		return m.Clicks()
	case querygroup.FieldCtr:
		return m.Ctr()
	case querygroup.FieldAvgPosition:
		return m.AvgPosition()
	case querygroup.FieldQueryCount:
		return m.QueryCount()
	case querygroup.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueryGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case querygroup.FieldName:
		return m.OldName(ctx)
	case querygroup.FieldUserID:
		return m.OldUserID(ctx)
	case querygroup.FieldAiGenerated:
		return m.OldAiGenerated(ctx)
	case querygroup.FieldImpressions:
		return m.OldImpressions(ctx)
	case querygroup.FieldClicks:
		return m.OldClicks(ctx)
	case querygroup.FieldCtr:
		return m.OldCtr(ctx)
	case querygroup.FieldAvgPosition:
		return m.OldAvgPosition(ctx)
	case querygroup.FieldQueryCount:
		return m.OldQueryCount(ctx)
	case querygroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueryGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case querygroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case querygroup.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case querygroup.FieldAiGenerated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiGenerated(v)
		return nil
	case querygroup.FieldImpressions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpressions(v)
		return nil
	case querygroup.FieldClicks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClicks(v)
		return nil
	case querygroup.FieldCtr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtr(v)
		return nil
	case querygroup.FieldAvgPosition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgPosition(v)
		return nil
	case querygroup.FieldQueryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryCount(v)
		return nil
	case querygroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueryGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueryGroupMutation) AddedFields() []string {
	var fields []string
	if m.addimpressions != nil {
		fields = append(fields, querygroup.FieldImpressions)
	}
	if m.addclicks != nil {
		fields = append(fields, querygroup.FieldClicks)
	}
	if m.addctr != nil {
		fields = append(fields, querygroup.FieldCtr)
	}
	if m.addavg_position != nil {
		fields = append(fields, querygroup.FieldAvgPosition)
	}
	if m.addquery_count != nil {
		fields = append(fields, querygroup.FieldQueryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueryGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case querygroup.FieldImpressions:
		return m.AddedImpressions()
	case querygroup.FieldClicks:
		return m.AddedClicks()
	case querygroup.FieldCtr:
		return m.AddedCtr()
	case querygroup.FieldAvgPosition:
		return m.AddedAvgPosition()
	case querygroup.FieldQueryCount:
		return m.AddedQueryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueryGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case querygroup.FieldImpressions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpressions(v)
		return nil
	case querygroup.FieldClicks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClicks(v)
		return nil
	case querygroup.FieldCtr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCtr(v)
		return nil
	case querygroup.FieldAvgPosition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgPosition(v)
		return nil
	case querygroup.FieldQueryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueryCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueryGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueryGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(querygroup.FieldAvgPosition) {
		fields = append(fields, querygroup.FieldAvgPosition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueryGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueryGroupMutation) ClearField(name string) error {
	switch name {
	case querygroup.FieldAvgPosition:
		m.ClearAvgPosition()
		return nil
	}
	return fmt.Errorf("unknown QueryGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueryGroupMutation) ResetField(name string) error {
	switch name {
	case querygroup.FieldName:
		m.ResetName()
		return nil
	case querygroup.FieldUserID:
		m.ResetUserID()
		return nil
	case querygroup.FieldAiGenerated:
		m.ResetAiGenerated()
		return nil
	case querygroup.FieldImpressions:
		m.ResetImpressions()
		return nil
	case querygroup.FieldClicks:
		m.ResetClicks()
		return nil
	case querygroup.FieldCtr:
		m.ResetCtr()
		return nil
	case querygroup.FieldAvgPosition:
		m.ResetAvgPosition()
		return nil
	case querygroup.FieldQueryCount:
		m.ResetQueryCount()
		return nil
	case querygroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueryGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueryGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueryGroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueryGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueryGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueryGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueryGroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueryGroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueryGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueryGroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueryGroup edge %s", name)
}

// SearchQueryMutation represents an operation that mutates the SearchQuery nodes in the graph.
type SearchQueryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	text           *string
	impressions    *int
	addimpressions *int
	clicks         *int
	addclicks      *int
	ctr            *float64
	addctr         *float64
	position       *float64
	addposition    *float64
	opportunity    *bool
	user_id        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SearchQuery, error)
	predicates     []predicate.SearchQuery
}

var _ ent.Mutation = (*SearchQueryMutation)(nil)

// searchqueryOption allows management of the mutation configuration using functional options.
type searchqueryOption func(*SearchQueryMutation)

// newSearchQueryMutation creates new mutation for the SearchQuery entity.
func newSearchQueryMutation(c config, op Op, opts ...searchqueryOption) *SearchQueryMutation {
	m := &SearchQueryMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchQuery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchQueryID sets the ID field of the mutation.
func withSearchQueryID(id string) searchqueryOption {
	return func(m *SearchQueryMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchQuery
		)
		m.oldValue = func(ctx context.Context) (*SearchQuery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchQuery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchQuery sets the old SearchQuery of the mutation.
func withSearchQuery(node *SearchQuery) searchqueryOption {
	return func(m *SearchQueryMutation) {
		m.oldValue = func(context.Context) (*SearchQuery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchQueryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchQueryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SearchQuery entities.
func (m *SearchQueryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchQueryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchQueryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchQuery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *SearchQueryMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SearchQueryMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SearchQueryMutation) ResetText() {
	m.text = nil
}

// SetImpressions sets the "impressions" field.
func (m *SearchQueryMutation) SetImpressions(i int) {
	m.impressions = &i
	m.addimpressions = nil
}

// Impressions returns the value of the "impressions" field in the mutation.
func (m *SearchQueryMutation) Impressions() (r int, exists bool) {
	v := m.impressions
	if v == nil {
		return
	}
	return *v, true
}

// OldImpressions returns the old "impressions" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldImpressions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpressions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpressions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpressions: %w", err)
	}
	return oldValue.Impressions, nil
}

// AddImpressions adds i to the "impressions" field.
func (m *SearchQueryMutation) AddImpressions(i int) {
	if m.addimpressions != nil {
		*m.addimpressions += i
	} else {
		m.addimpressions = &i
	}
}

// AddedImpressions returns the value that was added to the "impressions" field in this mutation.
func (m *SearchQueryMutation) AddedImpressions() (r int, exists bool) {
	v := m.addimpressions
	if v == nil {
		return
	}
	return *v, true
}

// ResetImpressions resets all changes to the "impressions" field.
func (m *SearchQueryMutation) ResetImpressions() {
	m.impressions = nil
	m.addimpressions = nil
}

// SetClicks sets the "clicks" field.
func (m *SearchQueryMutation) SetClicks(i int) {
	m.clicks = &i
	m.addclicks = nil
}

// Clicks returns the value of the "clicks" field in the mutation.
func (m *SearchQueryMutation) Clicks() (r int, exists bool) {
	v := m.clicks
	if v == nil {
		return
	}
	return *v, true
}

// OldClicks returns the old "clicks" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldClicks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClicks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClicks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClicks: %w", err)
	}
	return oldValue.Clicks, nil
}

// AddClicks adds i to the "clicks" field.
func (m *SearchQueryMutation) AddClicks(i int) {
	if m.addclicks != nil {
		*m.addclicks += i
	} else {
		m.addclicks = &i
	}
}

// AddedClicks returns the value that was added to the "clicks" field in this mutation.
func (m *SearchQueryMutation) AddedClicks() (r int, exists bool) {
	v := m.addclicks
	if v == nil {
		return
	}
	return *v, true
}

// ResetClicks resets all changes to the "clicks" field.
func (m *SearchQueryMutation) ResetClicks() {
	m.clicks = nil
	m.addclicks = nil
}

// SetCtr sets the "ctr" field.
func (m *SearchQueryMutation) SetCtr(f float64) {
	m.ctr = &f
	m.addctr = nil
}

// Ctr returns the value of the "ctr" field in the mutation.
func (m *SearchQueryMutation) Ctr() (r float64, exists bool) {
	v := m.ctr
	if v == nil {
		return
	}
	return *v, true
}

// OldCtr returns the old "ctr" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldCtr(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtr: %w", err)
	}
	return oldValue.Ctr, nil
}

// AddCtr adds f to the "ctr" field.
func (m *SearchQueryMutation) AddCtr(f float64) {
	if m.addctr != nil {
		*m.addctr += f
	} else {
		m.addctr = &f
	}
}

// AddedCtr returns the value that was added to the "ctr" field in this mutation.
func (m *SearchQueryMutation) AddedCtr() (r float64, exists bool) {
	v := m.addctr
	if v == nil {
		return
	}
	return *v, true
}

// ClearCtr clears the value of the "ctr" field.
func (m *SearchQueryMutation) ClearCtr() {
	m.ctr = nil
	m.addctr = nil
	m.clearedFields[searchquery.FieldCtr] = struct{}{}
}

// CtrCleared returns if the "ctr" field was cleared in this mutation.
func (m *SearchQueryMutation) CtrCleared() bool {
	_, ok := m.clearedFields[searchquery.FieldCtr]
	return ok
}

// ResetCtr resets all changes to the "ctr" field.
func (m *SearchQueryMutation) ResetCtr() {
	m.ctr = nil
	m.addctr = nil
	delete(m.clearedFields, searchquery.FieldCtr)
}

// SetPosition sets the "position" field.
func (m *SearchQueryMutation) SetPosition(f float64) {
	m.position = &f
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SearchQueryMutation) Position() (r float64, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldPosition(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds f to the "position" field.
func (m *SearchQueryMutation) AddPosition(f float64) {
	if m.addposition != nil {
		*m.addposition += f
	} else {
		m.addposition = &f
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SearchQueryMutation) AddedPosition() (r float64, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ClearPosition clears the value of the "position" field.
func (m *SearchQueryMutation) ClearPosition() {
	m.position = nil
	m.addposition = nil
	m.clearedFields[searchquery.FieldPosition] = struct{}{}
}

// PositionCleared returns if the "position" field was cleared in this mutation.
func (m *SearchQueryMutation) PositionCleared() bool {
	_, ok := m.clearedFields[searchquery.FieldPosition]
	return ok
}

// ResetPosition resets all changes to the "position" field.
func (m *SearchQueryMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
	delete(m.clearedFields, searchquery.FieldPosition)
}

// SetOpportunity sets the "opportunity" field.
func (m *SearchQueryMutation) SetOpportunity(b bool) {
	m.opportunity = &b
}

// Opportunity returns the value of the "opportunity" field in the mutation.
func (m *SearchQueryMutation) Opportunity() (r bool, exists bool) {
	v := m.opportunity
	if v == nil {
		return
	}
	return *v, true
}

// OldOpportunity returns the old "opportunity" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldOpportunity(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpportunity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpportunity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpportunity: %w", err)
	}
	return oldValue.Opportunity, nil
}

// ResetOpportunity resets all changes to the "opportunity" field.
func (m *SearchQueryMutation) ResetOpportunity() {
	m.opportunity = nil
}

// SetUserID sets the "user_id" field.
func (m *SearchQueryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SearchQueryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SearchQueryMutation) ResetUserID() {
	m.user_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SearchQueryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SearchQueryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SearchQuery entity.
// If the SearchQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchQueryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SearchQueryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SearchQueryMutation builder.
func (m *SearchQueryMutation) Where(ps ...predicate.SearchQuery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchQueryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchQueryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchQuery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchQueryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchQueryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchQuery).
func (m *SearchQueryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchQueryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.text != nil {
		fields = append(fields, searchquery.FieldText)
	}
	if m.impressions != nil {
		fields = append(fields, searchquery.FieldImpressions)
	}
	if m.clicks != nil {
		fields = append(fields, searchquery.FieldClicks)
	}
	if m.ctr != nil {
		fields = append(fields, searchquery.FieldCtr)
	}
	if m.position != nil {
		fields = append(fields, searchquery.FieldPosition)
	}
	if m.opportunity != nil {
		fields = append(fields, searchquery.FieldOpportunity)
	}
	if m.user_id != nil {
		fields = append(fields, searchquery.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, searchquery.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchQueryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchquery.FieldText:
		return m.Text()
	case searchquery.FieldImpressions:
		return m.Impressions()
	case searchquery.FieldClicks:
		return m.Clicks()
	case searchquery.FieldCtr:
		return m.Ctr()
	case searchquery.FieldPosition:
		return m.Position()
	case searchquery.FieldOpportunity:
		return m.Opportunity()
	case searchquery.FieldUserID:
		return m.UserID()
	case searchquery.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchQueryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchquery.FieldText:
		return m.OldText(ctx)
	case searchquery.FieldImpressions:
		return m.OldImpressions(ctx)
	case searchquery.FieldClicks:
		return m.OldClicks(ctx)
	case searchquery.FieldCtr:
		return m.OldCtr(ctx)
	case searchquery.FieldPosition:
		return m.OldPosition(ctx)
	case searchquery.FieldOpportunity:
		return m.OldOpportunity(ctx)
	case searchquery.FieldUserID:
		return m.OldUserID(ctx)
	case searchquery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchQuery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchQueryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchquery.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case searchquery.FieldImpressions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpressions(v)
		return nil
	case searchquery.FieldClicks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClicks(v)
		return nil
	case searchquery.FieldCtr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtr(v)
		return nil
	case searchquery.FieldPosition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case searchquery.FieldOpportunity:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpportunity(v)
		return nil
	case searchquery.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case searchquery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchQuery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchQueryMutation) AddedFields() []string {
	var fields []string
	if m.addimpressions != nil {
		fields = append(fields, searchquery.FieldImpressions)
	}
	if m.addclicks != nil {
		fields = append(fields, searchquery.FieldClicks)
	}
	if m.addctr != nil {
		fields = append(fields, searchquery.FieldCtr)
	}
	if m.addposition != nil {
		fields = append(fields, searchquery.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchQueryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchquery.FieldImpressions:
		return m.AddedImpressions()
	case searchquery.FieldClicks:
		return m.AddedClicks()
	case searchquery.FieldCtr:
		return m.AddedCtr()
	case searchquery.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchQueryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchquery.FieldImpressions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpressions(v)
		return nil
	case searchquery.FieldClicks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClicks(v)
		return nil
	case searchquery.FieldCtr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCtr(v)
		return nil
	case searchquery.FieldPosition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown SearchQuery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchQueryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(searchquery.FieldCtr) {
		fields = append(fields, searchquery.FieldCtr)
	}
	if m.FieldCleared(searchquery.FieldPosition) {
		fields = append(fields, searchquery.FieldPosition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchQueryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchQueryMutation) ClearField(name string) error {
	switch name {
	case searchquery.FieldCtr:
		m.ClearCtr()
		return nil
	case searchquery.FieldPosition:
		m.ClearPosition()
		return nil
	}
	return fmt.Errorf("unknown SearchQuery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchQueryMutation) ResetField(name string) error {
	switch name {
	case searchquery.FieldText:
		m.ResetText()
		return nil
	case searchquery.FieldImpressions:
		m.ResetImpressions()
		return nil
	case searchquery.FieldClicks:
		m.ResetClicks()
		return nil
	case searchquery.FieldCtr:
		m.ResetCtr()
		return nil
	case searchquery.FieldPosition:
		m.ResetPosition()
		return nil
	case searchquery.FieldOpportunity:
		m.ResetOpportunity()
		return nil
	case searchquery.FieldUserID:
		m.ResetUserID()
		return nil
	case searchquery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchQuery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchQueryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchQueryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchQueryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchQueryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchQueryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchQueryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchQueryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SearchQuery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchQueryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SearchQuery edge %s", name)
}
