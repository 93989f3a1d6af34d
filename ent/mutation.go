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
	"github.com/patchwork-dev/patchwork/ent/agentsession"
	"github.com/patchwork-dev/patchwork/ent/configentry"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/predicate"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
	"github.com/patchwork-dev/patchwork/ent/request"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession = "AgentSession"
	TypeConfigEntry  = "ConfigEntry"
	TypeMessage      = "Message"
	TypeQueueMessage = "QueueMessage"
	TypeRequest      = "Request"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	session_id           *string
	agent_kind           *string
	blob                 *[]byte
	uncompressed_size    *int
	adduncompressed_size *int
	created_at           *time.Time
	expires_at           *time.Time
	clearedFields        map[string]struct{}
	request              *string
	clearedrequest       bool
	done                 bool
	oldValue             func(context.Context) (*AgentSession, error)
	predicates           []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *AgentSessionMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AgentSessionMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AgentSessionMutation) ResetRequestID() {
	m.request = nil
}

// SetSessionID sets the "session_id" field.
func (m *AgentSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAgentKind sets the "agent_kind" field.
func (m *AgentSessionMutation) SetAgentKind(s string) {
	m.agent_kind = &s
}

// AgentKind returns the value of the "agent_kind" field in the mutation.
func (m *AgentSessionMutation) AgentKind() (r string, exists bool) {
	v := m.agent_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKind returns the old "agent_kind" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldAgentKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKind: %w", err)
	}
	return oldValue.AgentKind, nil
}

// ResetAgentKind resets all changes to the "agent_kind" field.
func (m *AgentSessionMutation) ResetAgentKind() {
	m.agent_kind = nil
}

// SetBlob sets the "blob" field.
func (m *AgentSessionMutation) SetBlob(b []byte) {
	m.blob = &b
}

// Blob returns the value of the "blob" field in the mutation.
func (m *AgentSessionMutation) Blob() (r []byte, exists bool) {
	v := m.blob
	if v == nil {
		return
	}
	return *v, true
}

// OldBlob returns the old "blob" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldBlob(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlob: %w", err)
	}
	return oldValue.Blob, nil
}

// ResetBlob resets all changes to the "blob" field.
func (m *AgentSessionMutation) ResetBlob() {
	m.blob = nil
}

// SetUncompressedSize sets the "uncompressed_size" field.
func (m *AgentSessionMutation) SetUncompressedSize(i int) {
	m.uncompressed_size = &i
	m.adduncompressed_size = nil
}

// UncompressedSize returns the value of the "uncompressed_size" field in the mutation.
func (m *AgentSessionMutation) UncompressedSize() (r int, exists bool) {
	v := m.uncompressed_size
	if v == nil {
		return
	}
	return *v, true
}

// OldUncompressedSize returns the old "uncompressed_size" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUncompressedSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUncompressedSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUncompressedSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUncompressedSize: %w", err)
	}
	return oldValue.UncompressedSize, nil
}

// AddUncompressedSize adds i to the "uncompressed_size" field.
func (m *AgentSessionMutation) AddUncompressedSize(i int) {
	if m.adduncompressed_size != nil {
		*m.adduncompressed_size += i
	} else {
		m.adduncompressed_size = &i
	}
}

// AddedUncompressedSize returns the value that was added to the "uncompressed_size" field in this mutation.
func (m *AgentSessionMutation) AddedUncompressedSize() (r int, exists bool) {
	v := m.adduncompressed_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetUncompressedSize resets all changes to the "uncompressed_size" field.
func (m *AgentSessionMutation) ResetUncompressedSize() {
	m.uncompressed_size = nil
	m.adduncompressed_size = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AgentSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AgentSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AgentSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *AgentSessionMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[agentsession.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *AgentSessionMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *AgentSessionMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.request != nil {
		fields = append(fields, agentsession.FieldRequestID)
	}
	if m.session_id != nil {
		fields = append(fields, agentsession.FieldSessionID)
	}
	if m.agent_kind != nil {
		fields = append(fields, agentsession.FieldAgentKind)
	}
	if m.blob != nil {
		fields = append(fields, agentsession.FieldBlob)
	}
	if m.uncompressed_size != nil {
		fields = append(fields, agentsession.FieldUncompressedSize)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, agentsession.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldRequestID:
		return m.RequestID()
	case agentsession.FieldSessionID:
		return m.SessionID()
	case agentsession.FieldAgentKind:
		return m.AgentKind()
	case agentsession.FieldBlob:
		return m.Blob()
	case agentsession.FieldUncompressedSize:
		return m.UncompressedSize()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldRequestID:
		return m.OldRequestID(ctx)
	case agentsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentsession.FieldAgentKind:
		return m.OldAgentKind(ctx)
	case agentsession.FieldBlob:
		return m.OldBlob(ctx)
	case agentsession.FieldUncompressedSize:
		return m.OldUncompressedSize(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case agentsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentsession.FieldAgentKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKind(v)
		return nil
	case agentsession.FieldBlob:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlob(v)
		return nil
	case agentsession.FieldUncompressedSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUncompressedSize(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduncompressed_size != nil {
		fields = append(fields, agentsession.FieldUncompressedSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldUncompressedSize:
		return m.AddedUncompressedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldUncompressedSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUncompressedSize(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldRequestID:
		m.ResetRequestID()
		return nil
	case agentsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentsession.FieldAgentKind:
		m.ResetAgentKind()
		return nil
	case agentsession.FieldBlob:
		m.ResetBlob()
		return nil
	case agentsession.FieldUncompressedSize:
		m.ResetUncompressedSize()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, agentsession.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, agentsession.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	case agentsession.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// ConfigEntryMutation represents an operation that mutates the ConfigEntry nodes in the graph.
type ConfigEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *configentry.Kind
	payload       *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ConfigEntry, error)
	predicates    []predicate.ConfigEntry
}

var _ ent.Mutation = (*ConfigEntryMutation)(nil)

// configentryOption allows management of the mutation configuration using functional options.
type configentryOption func(*ConfigEntryMutation)

// newConfigEntryMutation creates new mutation for the ConfigEntry entity.
func newConfigEntryMutation(c config, op Op, opts ...configentryOption) *ConfigEntryMutation {
	m := &ConfigEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigEntryID sets the ID field of the mutation.
func withConfigEntryID(id string) configentryOption {
	return func(m *ConfigEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigEntry
		)
		m.oldValue = func(ctx context.Context) (*ConfigEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigEntry sets the old ConfigEntry of the mutation.
func withConfigEntry(node *ConfigEntry) configentryOption {
	return func(m *ConfigEntryMutation) {
		m.oldValue = func(context.Context) (*ConfigEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConfigEntry entities.
func (m *ConfigEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *ConfigEntryMutation) SetKind(c configentry.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ConfigEntryMutation) Kind() (r configentry.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ConfigEntry entity.
// If the ConfigEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigEntryMutation) OldKind(ctx context.Context) (v configentry.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ConfigEntryMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *ConfigEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ConfigEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ConfigEntry entity.
// If the ConfigEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ConfigEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConfigEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConfigEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConfigEntry entity.
// If the ConfigEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ConfigEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConfigEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConfigEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConfigEntry entity.
// If the ConfigEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ConfigEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConfigEntryMutation builder.
func (m *ConfigEntryMutation) Where(ps ...predicate.ConfigEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigEntry).
func (m *ConfigEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigEntryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.kind != nil {
		fields = append(fields, configentry.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, configentry.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, configentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, configentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configentry.FieldKind:
		return m.Kind()
	case configentry.FieldPayload:
		return m.Payload()
	case configentry.FieldCreatedAt:
		return m.CreatedAt()
	case configentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configentry.FieldKind:
		return m.OldKind(ctx)
	case configentry.FieldPayload:
		return m.OldPayload(ctx)
	case configentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case configentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configentry.FieldKind:
		v, ok := value.(configentry.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case configentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case configentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case configentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConfigEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConfigEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigEntryMutation) ResetField(name string) error {
	switch name {
	case configentry.FieldKind:
		m.ResetKind()
		return nil
	case configentry.FieldPayload:
		m.ResetPayload()
		return nil
	case configentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case configentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConfigEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConfigEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConfigEntry edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	_type          *message.Type
	source         *message.Source
	content        *string
	actor_id       *string
	actor_name     *string
	metadata       *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*Message, error)
	predicates     []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *MessageMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *MessageMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *MessageMutation) ResetRequestID() {
	m.request = nil
}

// SetType sets the "type" field.
func (m *MessageMutation) SetType(value message.Type) {
	m._type = &value
}

// GetType returns the value of the "type" field in the mutation.
func (m *MessageMutation) GetType() (r message.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldType(ctx context.Context) (v message.Type, err error) {
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
func (m *MessageMutation) ResetType() {
	m._type = nil
}

// SetSource sets the "source" field.
func (m *MessageMutation) SetSource(value message.Source) {
	m.source = &value
}

// Source returns the value of the "source" field in the mutation.
func (m *MessageMutation) Source() (r message.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSource(ctx context.Context) (v message.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MessageMutation) ResetSource() {
	m.source = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetActorID sets the "actor_id" field.
func (m *MessageMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *MessageMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldActorID(ctx context.Context) (v *string, err error) {
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

// ClearActorID clears the value of the "actor_id" field.
func (m *MessageMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[message.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *MessageMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[message.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *MessageMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, message.FieldActorID)
}

// SetActorName sets the "actor_name" field.
func (m *MessageMutation) SetActorName(s string) {
	m.actor_name = &s
}

// ActorName returns the value of the "actor_name" field in the mutation.
func (m *MessageMutation) ActorName() (r string, exists bool) {
	v := m.actor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldActorName returns the old "actor_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldActorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorName: %w", err)
	}
	return oldValue.ActorName, nil
}

// ClearActorName clears the value of the "actor_name" field.
func (m *MessageMutation) ClearActorName() {
	m.actor_name = nil
	m.clearedFields[message.FieldActorName] = struct{}{}
}

// ActorNameCleared returns if the "actor_name" field was cleared in this mutation.
func (m *MessageMutation) ActorNameCleared() bool {
	_, ok := m.clearedFields[message.FieldActorName]
	return ok
}

// ResetActorName resets all changes to the "actor_name" field.
func (m *MessageMutation) ResetActorName() {
	m.actor_name = nil
	delete(m.clearedFields, message.FieldActorName)
}

// SetMetadata sets the "metadata" field.
func (m *MessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[message.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[message.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, message.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *MessageMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[message.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *MessageMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *MessageMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.request != nil {
		fields = append(fields, message.FieldRequestID)
	}
	if m._type != nil {
		fields = append(fields, message.FieldType)
	}
	if m.source != nil {
		fields = append(fields, message.FieldSource)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.actor_id != nil {
		fields = append(fields, message.FieldActorID)
	}
	if m.actor_name != nil {
		fields = append(fields, message.FieldActorName)
	}
	if m.metadata != nil {
		fields = append(fields, message.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldRequestID:
		return m.RequestID()
	case message.FieldType:
		return m.GetType()
	case message.FieldSource:
		return m.Source()
	case message.FieldContent:
		return m.Content()
	case message.FieldActorID:
		return m.ActorID()
	case message.FieldActorName:
		return m.ActorName()
	case message.FieldMetadata:
		return m.Metadata()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldRequestID:
		return m.OldRequestID(ctx)
	case message.FieldType:
		return m.OldType(ctx)
	case message.FieldSource:
		return m.OldSource(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldActorID:
		return m.OldActorID(ctx)
	case message.FieldActorName:
		return m.OldActorName(ctx)
	case message.FieldMetadata:
		return m.OldMetadata(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case message.FieldType:
		v, ok := value.(message.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case message.FieldSource:
		v, ok := value.(message.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case message.FieldActorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorName(v)
		return nil
	case message.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldActorID) {
		fields = append(fields, message.FieldActorID)
	}
	if m.FieldCleared(message.FieldActorName) {
		fields = append(fields, message.FieldActorName)
	}
	if m.FieldCleared(message.FieldMetadata) {
		fields = append(fields, message.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldActorID:
		m.ClearActorID()
		return nil
	case message.FieldActorName:
		m.ClearActorName()
		return nil
	case message.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldRequestID:
		m.ResetRequestID()
		return nil
	case message.FieldType:
		m.ResetType()
		return nil
	case message.FieldSource:
		m.ResetSource()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldActorID:
		m.ResetActorID()
		return nil
	case message.FieldActorName:
		m.ResetActorName()
		return nil
	case message.FieldMetadata:
		m.ResetMetadata()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, message.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, message.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// QueueMessageMutation represents an operation that mutates the QueueMessage nodes in the graph.
type QueueMessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	variant           *queuemessage.Variant
	request_id        *string
	correlation_key   *string
	payload           *map[string]interface{}
	seq               *int64
	addseq            *int64
	status            *queuemessage.Status
	attempts          *int
	addattempts       *int
	available_at      *time.Time
	locked_by         *string
	locked_at         *time.Time
	last_heartbeat_at *time.Time
	last_error        *string
	enqueued_at       *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QueueMessage, error)
	predicates        []predicate.QueueMessage
}

var _ ent.Mutation = (*QueueMessageMutation)(nil)

// queuemessageOption allows management of the mutation configuration using functional options.
type queuemessageOption func(*QueueMessageMutation)

// newQueueMessageMutation creates new mutation for the QueueMessage entity.
func newQueueMessageMutation(c config, op Op, opts ...queuemessageOption) *QueueMessageMutation {
	m := &QueueMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueMessageID sets the ID field of the mutation.
func withQueueMessageID(id string) queuemessageOption {
	return func(m *QueueMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueMessage
		)
		m.oldValue = func(ctx context.Context) (*QueueMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueMessage sets the old QueueMessage of the mutation.
func withQueueMessage(node *QueueMessage) queuemessageOption {
	return func(m *QueueMessageMutation) {
		m.oldValue = func(context.Context) (*QueueMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueMessage entities.
func (m *QueueMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVariant sets the "variant" field.
func (m *QueueMessageMutation) SetVariant(q queuemessage.Variant) {
	m.variant = &q
}

// Variant returns the value of the "variant" field in the mutation.
func (m *QueueMessageMutation) Variant() (r queuemessage.Variant, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldVariant(ctx context.Context) (v queuemessage.Variant, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ResetVariant resets all changes to the "variant" field.
func (m *QueueMessageMutation) ResetVariant() {
	m.variant = nil
}

// SetRequestID sets the "request_id" field.
func (m *QueueMessageMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *QueueMessageMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *QueueMessageMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[queuemessage.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *QueueMessageMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *QueueMessageMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, queuemessage.FieldRequestID)
}

// SetCorrelationKey sets the "correlation_key" field.
func (m *QueueMessageMutation) SetCorrelationKey(s string) {
	m.correlation_key = &s
}

// CorrelationKey returns the value of the "correlation_key" field in the mutation.
func (m *QueueMessageMutation) CorrelationKey() (r string, exists bool) {
	v := m.correlation_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationKey returns the old "correlation_key" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldCorrelationKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationKey: %w", err)
	}
	return oldValue.CorrelationKey, nil
}

// ResetCorrelationKey resets all changes to the "correlation_key" field.
func (m *QueueMessageMutation) ResetCorrelationKey() {
	m.correlation_key = nil
}

// SetPayload sets the "payload" field.
func (m *QueueMessageMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueMessageMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *QueueMessageMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[queuemessage.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *QueueMessageMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueMessageMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, queuemessage.FieldPayload)
}

// SetSeq sets the "seq" field.
func (m *QueueMessageMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *QueueMessageMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *QueueMessageMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *QueueMessageMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *QueueMessageMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetStatus sets the "status" field.
func (m *QueueMessageMutation) SetStatus(q queuemessage.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueMessageMutation) Status() (r queuemessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldStatus(ctx context.Context) (v queuemessage.Status, err error) {
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
func (m *QueueMessageMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *QueueMessageMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *QueueMessageMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *QueueMessageMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *QueueMessageMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *QueueMessageMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetAvailableAt sets the "available_at" field.
func (m *QueueMessageMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *QueueMessageMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldAvailableAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *QueueMessageMutation) ResetAvailableAt() {
	m.available_at = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *QueueMessageMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *QueueMessageMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *QueueMessageMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[queuemessage.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *QueueMessageMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *QueueMessageMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, queuemessage.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *QueueMessageMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *QueueMessageMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *QueueMessageMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[queuemessage.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *QueueMessageMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *QueueMessageMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, queuemessage.FieldLockedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *QueueMessageMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *QueueMessageMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
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

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *QueueMessageMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[queuemessage.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *QueueMessageMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *QueueMessageMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, queuemessage.FieldLastHeartbeatAt)
}

// SetLastError sets the "last_error" field.
func (m *QueueMessageMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *QueueMessageMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *QueueMessageMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[queuemessage.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *QueueMessageMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *QueueMessageMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, queuemessage.FieldLastError)
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *QueueMessageMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *QueueMessageMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *QueueMessageMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *QueueMessageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QueueMessageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *QueueMessageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[queuemessage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *QueueMessageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[queuemessage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QueueMessageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, queuemessage.FieldCompletedAt)
}

// Where appends a list predicates to the QueueMessageMutation builder.
func (m *QueueMessageMutation) Where(ps ...predicate.QueueMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueMessage).
func (m *QueueMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMessageMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.variant != nil {
		fields = append(fields, queuemessage.FieldVariant)
	}
	if m.request_id != nil {
		fields = append(fields, queuemessage.FieldRequestID)
	}
	if m.correlation_key != nil {
		fields = append(fields, queuemessage.FieldCorrelationKey)
	}
	if m.payload != nil {
		fields = append(fields, queuemessage.FieldPayload)
	}
	if m.seq != nil {
		fields = append(fields, queuemessage.FieldSeq)
	}
	if m.status != nil {
		fields = append(fields, queuemessage.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, queuemessage.FieldAttempts)
	}
	if m.available_at != nil {
		fields = append(fields, queuemessage.FieldAvailableAt)
	}
	if m.locked_by != nil {
		fields = append(fields, queuemessage.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, queuemessage.FieldLockedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, queuemessage.FieldLastHeartbeatAt)
	}
	if m.last_error != nil {
		fields = append(fields, queuemessage.FieldLastError)
	}
	if m.enqueued_at != nil {
		fields = append(fields, queuemessage.FieldEnqueuedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, queuemessage.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldVariant:
		return m.Variant()
	case queuemessage.FieldRequestID:
		return m.RequestID()
	case queuemessage.FieldCorrelationKey:
		return m.CorrelationKey()
	case queuemessage.FieldPayload:
		return m.Payload()
	case queuemessage.FieldSeq:
		return m.Seq()
	case queuemessage.FieldStatus:
		return m.Status()
	case queuemessage.FieldAttempts:
		return m.Attempts()
	case queuemessage.FieldAvailableAt:
		return m.AvailableAt()
	case queuemessage.FieldLockedBy:
		return m.LockedBy()
	case queuemessage.FieldLockedAt:
		return m.LockedAt()
	case queuemessage.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case queuemessage.FieldLastError:
		return m.LastError()
	case queuemessage.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case queuemessage.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuemessage.FieldVariant:
		return m.OldVariant(ctx)
	case queuemessage.FieldRequestID:
		return m.OldRequestID(ctx)
	case queuemessage.FieldCorrelationKey:
		return m.OldCorrelationKey(ctx)
	case queuemessage.FieldPayload:
		return m.OldPayload(ctx)
	case queuemessage.FieldSeq:
		return m.OldSeq(ctx)
	case queuemessage.FieldStatus:
		return m.OldStatus(ctx)
	case queuemessage.FieldAttempts:
		return m.OldAttempts(ctx)
	case queuemessage.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case queuemessage.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case queuemessage.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case queuemessage.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case queuemessage.FieldLastError:
		return m.OldLastError(ctx)
	case queuemessage.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case queuemessage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldVariant:
		v, ok := value.(queuemessage.Variant)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case queuemessage.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case queuemessage.FieldCorrelationKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationKey(v)
		return nil
	case queuemessage.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuemessage.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case queuemessage.FieldStatus:
		v, ok := value.(queuemessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuemessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case queuemessage.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case queuemessage.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case queuemessage.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case queuemessage.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case queuemessage.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case queuemessage.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case queuemessage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMessageMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, queuemessage.FieldSeq)
	}
	if m.addattempts != nil {
		fields = append(fields, queuemessage.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldSeq:
		return m.AddedSeq()
	case queuemessage.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case queuemessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuemessage.FieldRequestID) {
		fields = append(fields, queuemessage.FieldRequestID)
	}
	if m.FieldCleared(queuemessage.FieldPayload) {
		fields = append(fields, queuemessage.FieldPayload)
	}
	if m.FieldCleared(queuemessage.FieldLockedBy) {
		fields = append(fields, queuemessage.FieldLockedBy)
	}
	if m.FieldCleared(queuemessage.FieldLockedAt) {
		fields = append(fields, queuemessage.FieldLockedAt)
	}
	if m.FieldCleared(queuemessage.FieldLastHeartbeatAt) {
		fields = append(fields, queuemessage.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(queuemessage.FieldLastError) {
		fields = append(fields, queuemessage.FieldLastError)
	}
	if m.FieldCleared(queuemessage.FieldCompletedAt) {
		fields = append(fields, queuemessage.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMessageMutation) ClearField(name string) error {
	switch name {
	case queuemessage.FieldRequestID:
		m.ClearRequestID()
		return nil
	case queuemessage.FieldPayload:
		m.ClearPayload()
		return nil
	case queuemessage.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case queuemessage.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	case queuemessage.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case queuemessage.FieldLastError:
		m.ClearLastError()
		return nil
	case queuemessage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMessageMutation) ResetField(name string) error {
	switch name {
	case queuemessage.FieldVariant:
		m.ResetVariant()
		return nil
	case queuemessage.FieldRequestID:
		m.ResetRequestID()
		return nil
	case queuemessage.FieldCorrelationKey:
		m.ResetCorrelationKey()
		return nil
	case queuemessage.FieldPayload:
		m.ResetPayload()
		return nil
	case queuemessage.FieldSeq:
		m.ResetSeq()
		return nil
	case queuemessage.FieldStatus:
		m.ResetStatus()
		return nil
	case queuemessage.FieldAttempts:
		m.ResetAttempts()
		return nil
	case queuemessage.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case queuemessage.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case queuemessage.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case queuemessage.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case queuemessage.FieldLastError:
		m.ResetLastError()
		return nil
	case queuemessage.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case queuemessage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	origin                *request.Origin
	repository            *string
	title                 *string
	description           *string
	request_type          *request.RequestType
	status                *request.Status
	agent_kind            *string
	provider              *string
	model                 *string
	chat_user_id          *string
	chat_channel          *string
	chat_thread_key       *string
	issue_id              *string
	issue_number          *int
	addissue_number       *int
	issue_url             *string
	pr_url                *string
	pr_number             *int
	addpr_number          *int
	pr_branch_name        *string
	retry_count           *int
	addretry_count        *int
	cost_cents            *int
	addcost_cents         *int
	duration_ms           *int
	addduration_ms        *int
	latest_session_id     *string
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	processed_at          *time.Time
	clearedFields         map[string]struct{}
	messages              map[string]struct{}
	removedmessages       map[string]struct{}
	clearedmessages       bool
	agent_sessions        map[string]struct{}
	removedagent_sessions map[string]struct{}
	clearedagent_sessions bool
	done                  bool
	oldValue              func(context.Context) (*Request, error)
	predicates            []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id string) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Request entities.
func (m *RequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrigin sets the "origin" field.
func (m *RequestMutation) SetOrigin(r request.Origin) {
	m.origin = &r
}

// Origin returns the value of the "origin" field in the mutation.
func (m *RequestMutation) Origin() (r request.Origin, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldOrigin(ctx context.Context) (v request.Origin, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *RequestMutation) ResetOrigin() {
	m.origin = nil
}

// SetRepository sets the "repository" field.
func (m *RequestMutation) SetRepository(s string) {
	m.repository = &s
}

// Repository returns the value of the "repository" field in the mutation.
func (m *RequestMutation) Repository() (r string, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepository returns the old "repository" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRepository(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepository is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepository requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepository: %w", err)
	}
	return oldValue.Repository, nil
}

// ResetRepository resets all changes to the "repository" field.
func (m *RequestMutation) ResetRepository() {
	m.repository = nil
}

// SetTitle sets the "title" field.
func (m *RequestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RequestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *RequestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RequestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RequestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDescription(ctx context.Context) (v string, err error) {
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

// ResetDescription resets all changes to the "description" field.
func (m *RequestMutation) ResetDescription() {
	m.description = nil
}

// SetRequestType sets the "request_type" field.
func (m *RequestMutation) SetRequestType(rt request.RequestType) {
	m.request_type = &rt
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *RequestMutation) RequestType() (r request.RequestType, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequestType(ctx context.Context) (v request.RequestType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *RequestMutation) ResetRequestType() {
	m.request_type = nil
}

// SetStatus sets the "status" field.
func (m *RequestMutation) SetStatus(r request.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestMutation) Status() (r request.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStatus(ctx context.Context) (v request.Status, err error) {
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
func (m *RequestMutation) ResetStatus() {
	m.status = nil
}

// SetAgentKind sets the "agent_kind" field.
func (m *RequestMutation) SetAgentKind(s string) {
	m.agent_kind = &s
}

// AgentKind returns the value of the "agent_kind" field in the mutation.
func (m *RequestMutation) AgentKind() (r string, exists bool) {
	v := m.agent_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKind returns the old "agent_kind" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldAgentKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKind: %w", err)
	}
	return oldValue.AgentKind, nil
}

// ResetAgentKind resets all changes to the "agent_kind" field.
func (m *RequestMutation) ResetAgentKind() {
	m.agent_kind = nil
}

// SetProvider sets the "provider" field.
func (m *RequestMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *RequestMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *RequestMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[request.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *RequestMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[request.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *RequestMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, request.FieldProvider)
}

// SetModel sets the "model" field.
func (m *RequestMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *RequestMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *RequestMutation) ClearModel() {
	m.model = nil
	m.clearedFields[request.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *RequestMutation) ModelCleared() bool {
	_, ok := m.clearedFields[request.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *RequestMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, request.FieldModel)
}

// SetChatUserID sets the "chat_user_id" field.
func (m *RequestMutation) SetChatUserID(s string) {
	m.chat_user_id = &s
}

// ChatUserID returns the value of the "chat_user_id" field in the mutation.
func (m *RequestMutation) ChatUserID() (r string, exists bool) {
	v := m.chat_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatUserID returns the old "chat_user_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldChatUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatUserID: %w", err)
	}
	return oldValue.ChatUserID, nil
}

// ClearChatUserID clears the value of the "chat_user_id" field.
func (m *RequestMutation) ClearChatUserID() {
	m.chat_user_id = nil
	m.clearedFields[request.FieldChatUserID] = struct{}{}
}

// ChatUserIDCleared returns if the "chat_user_id" field was cleared in this mutation.
func (m *RequestMutation) ChatUserIDCleared() bool {
	_, ok := m.clearedFields[request.FieldChatUserID]
	return ok
}

// ResetChatUserID resets all changes to the "chat_user_id" field.
func (m *RequestMutation) ResetChatUserID() {
	m.chat_user_id = nil
	delete(m.clearedFields, request.FieldChatUserID)
}

// SetChatChannel sets the "chat_channel" field.
func (m *RequestMutation) SetChatChannel(s string) {
	m.chat_channel = &s
}

// ChatChannel returns the value of the "chat_channel" field in the mutation.
func (m *RequestMutation) ChatChannel() (r string, exists bool) {
	v := m.chat_channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChatChannel returns the old "chat_channel" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldChatChannel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatChannel: %w", err)
	}
	return oldValue.ChatChannel, nil
}

// ClearChatChannel clears the value of the "chat_channel" field.
func (m *RequestMutation) ClearChatChannel() {
	m.chat_channel = nil
	m.clearedFields[request.FieldChatChannel] = struct{}{}
}

// ChatChannelCleared returns if the "chat_channel" field was cleared in this mutation.
func (m *RequestMutation) ChatChannelCleared() bool {
	_, ok := m.clearedFields[request.FieldChatChannel]
	return ok
}

// ResetChatChannel resets all changes to the "chat_channel" field.
func (m *RequestMutation) ResetChatChannel() {
	m.chat_channel = nil
	delete(m.clearedFields, request.FieldChatChannel)
}

// SetChatThreadKey sets the "chat_thread_key" field.
func (m *RequestMutation) SetChatThreadKey(s string) {
	m.chat_thread_key = &s
}

// ChatThreadKey returns the value of the "chat_thread_key" field in the mutation.
func (m *RequestMutation) ChatThreadKey() (r string, exists bool) {
	v := m.chat_thread_key
	if v == nil {
		return
	}
	return *v, true
}

// OldChatThreadKey returns the old "chat_thread_key" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldChatThreadKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatThreadKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatThreadKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatThreadKey: %w", err)
	}
	return oldValue.ChatThreadKey, nil
}

// ClearChatThreadKey clears the value of the "chat_thread_key" field.
func (m *RequestMutation) ClearChatThreadKey() {
	m.chat_thread_key = nil
	m.clearedFields[request.FieldChatThreadKey] = struct{}{}
}

// ChatThreadKeyCleared returns if the "chat_thread_key" field was cleared in this mutation.
func (m *RequestMutation) ChatThreadKeyCleared() bool {
	_, ok := m.clearedFields[request.FieldChatThreadKey]
	return ok
}

// ResetChatThreadKey resets all changes to the "chat_thread_key" field.
func (m *RequestMutation) ResetChatThreadKey() {
	m.chat_thread_key = nil
	delete(m.clearedFields, request.FieldChatThreadKey)
}

// SetIssueID sets the "issue_id" field.
func (m *RequestMutation) SetIssueID(s string) {
	m.issue_id = &s
}

// IssueID returns the value of the "issue_id" field in the mutation.
func (m *RequestMutation) IssueID() (r string, exists bool) {
	v := m.issue_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueID returns the old "issue_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIssueID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueID: %w", err)
	}
	return oldValue.IssueID, nil
}

// ClearIssueID clears the value of the "issue_id" field.
func (m *RequestMutation) ClearIssueID() {
	m.issue_id = nil
	m.clearedFields[request.FieldIssueID] = struct{}{}
}

// IssueIDCleared returns if the "issue_id" field was cleared in this mutation.
func (m *RequestMutation) IssueIDCleared() bool {
	_, ok := m.clearedFields[request.FieldIssueID]
	return ok
}

// ResetIssueID resets all changes to the "issue_id" field.
func (m *RequestMutation) ResetIssueID() {
	m.issue_id = nil
	delete(m.clearedFields, request.FieldIssueID)
}

// SetIssueNumber sets the "issue_number" field.
func (m *RequestMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *RequestMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIssueNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *RequestMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *RequestMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (m *RequestMutation) ClearIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	m.clearedFields[request.FieldIssueNumber] = struct{}{}
}

// IssueNumberCleared returns if the "issue_number" field was cleared in this mutation.
func (m *RequestMutation) IssueNumberCleared() bool {
	_, ok := m.clearedFields[request.FieldIssueNumber]
	return ok
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *RequestMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	delete(m.clearedFields, request.FieldIssueNumber)
}

// SetIssueURL sets the "issue_url" field.
func (m *RequestMutation) SetIssueURL(s string) {
	m.issue_url = &s
}

// IssueURL returns the value of the "issue_url" field in the mutation.
func (m *RequestMutation) IssueURL() (r string, exists bool) {
	v := m.issue_url
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueURL returns the old "issue_url" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIssueURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueURL: %w", err)
	}
	return oldValue.IssueURL, nil
}

// ClearIssueURL clears the value of the "issue_url" field.
func (m *RequestMutation) ClearIssueURL() {
	m.issue_url = nil
	m.clearedFields[request.FieldIssueURL] = struct{}{}
}

// IssueURLCleared returns if the "issue_url" field was cleared in this mutation.
func (m *RequestMutation) IssueURLCleared() bool {
	_, ok := m.clearedFields[request.FieldIssueURL]
	return ok
}

// ResetIssueURL resets all changes to the "issue_url" field.
func (m *RequestMutation) ResetIssueURL() {
	m.issue_url = nil
	delete(m.clearedFields, request.FieldIssueURL)
}

// SetPrURL sets the "pr_url" field.
func (m *RequestMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *RequestMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *RequestMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[request.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *RequestMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[request.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *RequestMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, request.FieldPrURL)
}

// SetPrNumber sets the "pr_number" field.
func (m *RequestMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *RequestMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *RequestMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *RequestMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *RequestMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[request.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *RequestMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[request.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *RequestMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, request.FieldPrNumber)
}

// SetPrBranchName sets the "pr_branch_name" field.
func (m *RequestMutation) SetPrBranchName(s string) {
	m.pr_branch_name = &s
}

// PrBranchName returns the value of the "pr_branch_name" field in the mutation.
func (m *RequestMutation) PrBranchName() (r string, exists bool) {
	v := m.pr_branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPrBranchName returns the old "pr_branch_name" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPrBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrBranchName: %w", err)
	}
	return oldValue.PrBranchName, nil
}

// ClearPrBranchName clears the value of the "pr_branch_name" field.
func (m *RequestMutation) ClearPrBranchName() {
	m.pr_branch_name = nil
	m.clearedFields[request.FieldPrBranchName] = struct{}{}
}

// PrBranchNameCleared returns if the "pr_branch_name" field was cleared in this mutation.
func (m *RequestMutation) PrBranchNameCleared() bool {
	_, ok := m.clearedFields[request.FieldPrBranchName]
	return ok
}

// ResetPrBranchName resets all changes to the "pr_branch_name" field.
func (m *RequestMutation) ResetPrBranchName() {
	m.pr_branch_name = nil
	delete(m.clearedFields, request.FieldPrBranchName)
}

// SetRetryCount sets the "retry_count" field.
func (m *RequestMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *RequestMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *RequestMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *RequestMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *RequestMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCostCents sets the "cost_cents" field.
func (m *RequestMutation) SetCostCents(i int) {
	m.cost_cents = &i
	m.addcost_cents = nil
}

// CostCents returns the value of the "cost_cents" field in the mutation.
func (m *RequestMutation) CostCents() (r int, exists bool) {
	v := m.cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCents returns the old "cost_cents" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCents: %w", err)
	}
	return oldValue.CostCents, nil
}

// AddCostCents adds i to the "cost_cents" field.
func (m *RequestMutation) AddCostCents(i int) {
	if m.addcost_cents != nil {
		*m.addcost_cents += i
	} else {
		m.addcost_cents = &i
	}
}

// AddedCostCents returns the value that was added to the "cost_cents" field in this mutation.
func (m *RequestMutation) AddedCostCents() (r int, exists bool) {
	v := m.addcost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostCents resets all changes to the "cost_cents" field.
func (m *RequestMutation) ResetCostCents() {
	m.cost_cents = nil
	m.addcost_cents = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *RequestMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *RequestMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *RequestMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *RequestMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *RequestMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetLatestSessionID sets the "latest_session_id" field.
func (m *RequestMutation) SetLatestSessionID(s string) {
	m.latest_session_id = &s
}

// LatestSessionID returns the value of the "latest_session_id" field in the mutation.
func (m *RequestMutation) LatestSessionID() (r string, exists bool) {
	v := m.latest_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestSessionID returns the old "latest_session_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldLatestSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestSessionID: %w", err)
	}
	return oldValue.LatestSessionID, nil
}

// ClearLatestSessionID clears the value of the "latest_session_id" field.
func (m *RequestMutation) ClearLatestSessionID() {
	m.latest_session_id = nil
	m.clearedFields[request.FieldLatestSessionID] = struct{}{}
}

// LatestSessionIDCleared returns if the "latest_session_id" field was cleared in this mutation.
func (m *RequestMutation) LatestSessionIDCleared() bool {
	_, ok := m.clearedFields[request.FieldLatestSessionID]
	return ok
}

// ResetLatestSessionID resets all changes to the "latest_session_id" field.
func (m *RequestMutation) ResetLatestSessionID() {
	m.latest_session_id = nil
	delete(m.clearedFields, request.FieldLatestSessionID)
}

// SetErrorMessage sets the "error_message" field.
func (m *RequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RequestMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[request.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RequestMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[request.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RequestMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, request.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *RequestMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *RequestMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *RequestMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[request.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *RequestMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *RequestMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, request.FieldProcessedAt)
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *RequestMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *RequestMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *RequestMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *RequestMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *RequestMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *RequestMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *RequestMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddAgentSessionIDs adds the "agent_sessions" edge to the AgentSession entity by ids.
func (m *RequestMutation) AddAgentSessionIDs(ids ...string) {
	if m.agent_sessions == nil {
		m.agent_sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_sessions[ids[i]] = struct{}{}
	}
}

// ClearAgentSessions clears the "agent_sessions" edge to the AgentSession entity.
func (m *RequestMutation) ClearAgentSessions() {
	m.clearedagent_sessions = true
}

// AgentSessionsCleared reports if the "agent_sessions" edge to the AgentSession entity was cleared.
func (m *RequestMutation) AgentSessionsCleared() bool {
	return m.clearedagent_sessions
}

// RemoveAgentSessionIDs removes the "agent_sessions" edge to the AgentSession entity by IDs.
func (m *RequestMutation) RemoveAgentSessionIDs(ids ...string) {
	if m.removedagent_sessions == nil {
		m.removedagent_sessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_sessions, ids[i])
		m.removedagent_sessions[ids[i]] = struct{}{}
	}
}

// RemovedAgentSessions returns the removed IDs of the "agent_sessions" edge to the AgentSession entity.
func (m *RequestMutation) RemovedAgentSessionsIDs() (ids []string) {
	for id := range m.removedagent_sessions {
		ids = append(ids, id)
	}
	return
}

// AgentSessionsIDs returns the "agent_sessions" edge IDs in the mutation.
func (m *RequestMutation) AgentSessionsIDs() (ids []string) {
	for id := range m.agent_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentSessions resets all changes to the "agent_sessions" edge.
func (m *RequestMutation) ResetAgentSessions() {
	m.agent_sessions = nil
	m.clearedagent_sessions = false
	m.removedagent_sessions = nil
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.origin != nil {
		fields = append(fields, request.FieldOrigin)
	}
	if m.repository != nil {
		fields = append(fields, request.FieldRepository)
	}
	if m.title != nil {
		fields = append(fields, request.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, request.FieldDescription)
	}
	if m.request_type != nil {
		fields = append(fields, request.FieldRequestType)
	}
	if m.status != nil {
		fields = append(fields, request.FieldStatus)
	}
	if m.agent_kind != nil {
		fields = append(fields, request.FieldAgentKind)
	}
	if m.provider != nil {
		fields = append(fields, request.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, request.FieldModel)
	}
	if m.chat_user_id != nil {
		fields = append(fields, request.FieldChatUserID)
	}
	if m.chat_channel != nil {
		fields = append(fields, request.FieldChatChannel)
	}
	if m.chat_thread_key != nil {
		fields = append(fields, request.FieldChatThreadKey)
	}
	if m.issue_id != nil {
		fields = append(fields, request.FieldIssueID)
	}
	if m.issue_number != nil {
		fields = append(fields, request.FieldIssueNumber)
	}
	if m.issue_url != nil {
		fields = append(fields, request.FieldIssueURL)
	}
	if m.pr_url != nil {
		fields = append(fields, request.FieldPrURL)
	}
	if m.pr_number != nil {
		fields = append(fields, request.FieldPrNumber)
	}
	if m.pr_branch_name != nil {
		fields = append(fields, request.FieldPrBranchName)
	}
	if m.retry_count != nil {
		fields = append(fields, request.FieldRetryCount)
	}
	if m.cost_cents != nil {
		fields = append(fields, request.FieldCostCents)
	}
	if m.duration_ms != nil {
		fields = append(fields, request.FieldDurationMs)
	}
	if m.latest_session_id != nil {
		fields = append(fields, request.FieldLatestSessionID)
	}
	if m.error_message != nil {
		fields = append(fields, request.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, request.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, request.FieldUpdatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, request.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldOrigin:
		return m.Origin()
	case request.FieldRepository:
		return m.Repository()
	case request.FieldTitle:
		return m.Title()
	case request.FieldDescription:
		return m.Description()
	case request.FieldRequestType:
		return m.RequestType()
	case request.FieldStatus:
		return m.Status()
	case request.FieldAgentKind:
		return m.AgentKind()
	case request.FieldProvider:
		return m.Provider()
	case request.FieldModel:
		return m.Model()
	case request.FieldChatUserID:
		return m.ChatUserID()
	case request.FieldChatChannel:
		return m.ChatChannel()
	case request.FieldChatThreadKey:
		return m.ChatThreadKey()
	case request.FieldIssueID:
		return m.IssueID()
	case request.FieldIssueNumber:
		return m.IssueNumber()
	case request.FieldIssueURL:
		return m.IssueURL()
	case request.FieldPrURL:
		return m.PrURL()
	case request.FieldPrNumber:
		return m.PrNumber()
	case request.FieldPrBranchName:
		return m.PrBranchName()
	case request.FieldRetryCount:
		return m.RetryCount()
	case request.FieldCostCents:
		return m.CostCents()
	case request.FieldDurationMs:
		return m.DurationMs()
	case request.FieldLatestSessionID:
		return m.LatestSessionID()
	case request.FieldErrorMessage:
		return m.ErrorMessage()
	case request.FieldCreatedAt:
		return m.CreatedAt()
	case request.FieldUpdatedAt:
		return m.UpdatedAt()
	case request.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldOrigin:
		return m.OldOrigin(ctx)
	case request.FieldRepository:
		return m.OldRepository(ctx)
	case request.FieldTitle:
		return m.OldTitle(ctx)
	case request.FieldDescription:
		return m.OldDescription(ctx)
	case request.FieldRequestType:
		return m.OldRequestType(ctx)
	case request.FieldStatus:
		return m.OldStatus(ctx)
	case request.FieldAgentKind:
		return m.OldAgentKind(ctx)
	case request.FieldProvider:
		return m.OldProvider(ctx)
	case request.FieldModel:
		return m.OldModel(ctx)
	case request.FieldChatUserID:
		return m.OldChatUserID(ctx)
	case request.FieldChatChannel:
		return m.OldChatChannel(ctx)
	case request.FieldChatThreadKey:
		return m.OldChatThreadKey(ctx)
	case request.FieldIssueID:
		return m.OldIssueID(ctx)
	case request.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case request.FieldIssueURL:
		return m.OldIssueURL(ctx)
	case request.FieldPrURL:
		return m.OldPrURL(ctx)
	case request.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case request.FieldPrBranchName:
		return m.OldPrBranchName(ctx)
	case request.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case request.FieldCostCents:
		return m.OldCostCents(ctx)
	case request.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case request.FieldLatestSessionID:
		return m.OldLatestSessionID(ctx)
	case request.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case request.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case request.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case request.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldOrigin:
		v, ok := value.(request.Origin)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case request.FieldRepository:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepository(v)
		return nil
	case request.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case request.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case request.FieldRequestType:
		v, ok := value.(request.RequestType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case request.FieldStatus:
		v, ok := value.(request.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case request.FieldAgentKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKind(v)
		return nil
	case request.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case request.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case request.FieldChatUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatUserID(v)
		return nil
	case request.FieldChatChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatChannel(v)
		return nil
	case request.FieldChatThreadKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatThreadKey(v)
		return nil
	case request.FieldIssueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueID(v)
		return nil
	case request.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case request.FieldIssueURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueURL(v)
		return nil
	case request.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case request.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case request.FieldPrBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrBranchName(v)
		return nil
	case request.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case request.FieldCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCents(v)
		return nil
	case request.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case request.FieldLatestSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestSessionID(v)
		return nil
	case request.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case request.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case request.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case request.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addissue_number != nil {
		fields = append(fields, request.FieldIssueNumber)
	}
	if m.addpr_number != nil {
		fields = append(fields, request.FieldPrNumber)
	}
	if m.addretry_count != nil {
		fields = append(fields, request.FieldRetryCount)
	}
	if m.addcost_cents != nil {
		fields = append(fields, request.FieldCostCents)
	}
	if m.addduration_ms != nil {
		fields = append(fields, request.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldIssueNumber:
		return m.AddedIssueNumber()
	case request.FieldPrNumber:
		return m.AddedPrNumber()
	case request.FieldRetryCount:
		return m.AddedRetryCount()
	case request.FieldCostCents:
		return m.AddedCostCents()
	case request.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	case request.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	case request.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case request.FieldCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostCents(v)
		return nil
	case request.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldProvider) {
		fields = append(fields, request.FieldProvider)
	}
	if m.FieldCleared(request.FieldModel) {
		fields = append(fields, request.FieldModel)
	}
	if m.FieldCleared(request.FieldChatUserID) {
		fields = append(fields, request.FieldChatUserID)
	}
	if m.FieldCleared(request.FieldChatChannel) {
		fields = append(fields, request.FieldChatChannel)
	}
	if m.FieldCleared(request.FieldChatThreadKey) {
		fields = append(fields, request.FieldChatThreadKey)
	}
	if m.FieldCleared(request.FieldIssueID) {
		fields = append(fields, request.FieldIssueID)
	}
	if m.FieldCleared(request.FieldIssueNumber) {
		fields = append(fields, request.FieldIssueNumber)
	}
	if m.FieldCleared(request.FieldIssueURL) {
		fields = append(fields, request.FieldIssueURL)
	}
	if m.FieldCleared(request.FieldPrURL) {
		fields = append(fields, request.FieldPrURL)
	}
	if m.FieldCleared(request.FieldPrNumber) {
		fields = append(fields, request.FieldPrNumber)
	}
	if m.FieldCleared(request.FieldPrBranchName) {
		fields = append(fields, request.FieldPrBranchName)
	}
	if m.FieldCleared(request.FieldLatestSessionID) {
		fields = append(fields, request.FieldLatestSessionID)
	}
	if m.FieldCleared(request.FieldErrorMessage) {
		fields = append(fields, request.FieldErrorMessage)
	}
	if m.FieldCleared(request.FieldProcessedAt) {
		fields = append(fields, request.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldProvider:
		m.ClearProvider()
		return nil
	case request.FieldModel:
		m.ClearModel()
		return nil
	case request.FieldChatUserID:
		m.ClearChatUserID()
		return nil
	case request.FieldChatChannel:
		m.ClearChatChannel()
		return nil
	case request.FieldChatThreadKey:
		m.ClearChatThreadKey()
		return nil
	case request.FieldIssueID:
		m.ClearIssueID()
		return nil
	case request.FieldIssueNumber:
		m.ClearIssueNumber()
		return nil
	case request.FieldIssueURL:
		m.ClearIssueURL()
		return nil
	case request.FieldPrURL:
		m.ClearPrURL()
		return nil
	case request.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case request.FieldPrBranchName:
		m.ClearPrBranchName()
		return nil
	case request.FieldLatestSessionID:
		m.ClearLatestSessionID()
		return nil
	case request.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case request.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldOrigin:
		m.ResetOrigin()
		return nil
	case request.FieldRepository:
		m.ResetRepository()
		return nil
	case request.FieldTitle:
		m.ResetTitle()
		return nil
	case request.FieldDescription:
		m.ResetDescription()
		return nil
	case request.FieldRequestType:
		m.ResetRequestType()
		return nil
	case request.FieldStatus:
		m.ResetStatus()
		return nil
	case request.FieldAgentKind:
		m.ResetAgentKind()
		return nil
	case request.FieldProvider:
		m.ResetProvider()
		return nil
	case request.FieldModel:
		m.ResetModel()
		return nil
	case request.FieldChatUserID:
		m.ResetChatUserID()
		return nil
	case request.FieldChatChannel:
		m.ResetChatChannel()
		return nil
	case request.FieldChatThreadKey:
		m.ResetChatThreadKey()
		return nil
	case request.FieldIssueID:
		m.ResetIssueID()
		return nil
	case request.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case request.FieldIssueURL:
		m.ResetIssueURL()
		return nil
	case request.FieldPrURL:
		m.ResetPrURL()
		return nil
	case request.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case request.FieldPrBranchName:
		m.ResetPrBranchName()
		return nil
	case request.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case request.FieldCostCents:
		m.ResetCostCents()
		return nil
	case request.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case request.FieldLatestSessionID:
		m.ResetLatestSessionID()
		return nil
	case request.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case request.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case request.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case request.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.messages != nil {
		edges = append(edges, request.EdgeMessages)
	}
	if m.agent_sessions != nil {
		edges = append(edges, request.EdgeAgentSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeAgentSessions:
		ids := make([]ent.Value, 0, len(m.agent_sessions))
		for id := range m.agent_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, request.EdgeMessages)
	}
	if m.removedagent_sessions != nil {
		edges = append(edges, request.EdgeAgentSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeAgentSessions:
		ids := make([]ent.Value, 0, len(m.removedagent_sessions))
		for id := range m.removedagent_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessages {
		edges = append(edges, request.EdgeMessages)
	}
	if m.clearedagent_sessions {
		edges = append(edges, request.EdgeAgentSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	switch name {
	case request.EdgeMessages:
		return m.clearedmessages
	case request.EdgeAgentSessions:
		return m.clearedagent_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	switch name {
	case request.EdgeMessages:
		m.ResetMessages()
		return nil
	case request.EdgeAgentSessions:
		m.ResetAgentSessions()
		return nil
	}
	return fmt.Errorf("unknown Request edge %s", name)
}
