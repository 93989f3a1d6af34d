// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
)

// QueueMessageCreate is the builder for creating a QueueMessage entity.
type QueueMessageCreate struct {
	config
	mutation *QueueMessageMutation
	hooks    []Hook
}

// SetVariant sets the "variant" field.
func (_c *QueueMessageCreate) SetVariant(v queuemessage.Variant) *QueueMessageCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *QueueMessageCreate) SetRequestID(v string) *QueueMessageCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableRequestID(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetCorrelationKey sets the "correlation_key" field.
func (_c *QueueMessageCreate) SetCorrelationKey(v string) *QueueMessageCreate {
	_c.mutation.SetCorrelationKey(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueMessageCreate) SetPayload(v map[string]interface{}) *QueueMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *QueueMessageCreate) SetSeq(v int64) *QueueMessageCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueMessageCreate) SetStatus(v queuemessage.Status) *QueueMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableStatus(v *queuemessage.Status) *QueueMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueueMessageCreate) SetAttempts(v int) *QueueMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableAttempts(v *int) *QueueMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetAvailableAt sets the "available_at" field.
func (_c *QueueMessageCreate) SetAvailableAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetAvailableAt(v)
	return _c
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableAvailableAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetAvailableAt(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *QueueMessageCreate) SetLockedBy(v string) *QueueMessageCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLockedBy(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *QueueMessageCreate) SetLockedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLockedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *QueueMessageCreate) SetLastHeartbeatAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLastHeartbeatAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *QueueMessageCreate) SetLastError(v string) *QueueMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableLastError(v *string) *QueueMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *QueueMessageCreate) SetEnqueuedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableEnqueuedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetEnqueuedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QueueMessageCreate) SetCompletedAt(v time.Time) *QueueMessageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QueueMessageCreate) SetNillableCompletedAt(v *time.Time) *QueueMessageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueMessageCreate) SetID(v string) *QueueMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_c *QueueMessageCreate) Mutation() *QueueMessageMutation {
	return _c.mutation
}

// Save creates the QueueMessage in the database.
func (_c *QueueMessageCreate) Save(ctx context.Context) (*QueueMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueMessageCreate) SaveX(ctx context.Context) *QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queuemessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queuemessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		v := queuemessage.DefaultAvailableAt()
		_c.mutation.SetAvailableAt(v)
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		v := queuemessage.DefaultEnqueuedAt()
		_c.mutation.SetEnqueuedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueMessageCreate) check() error {
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "QueueMessage.variant"`)}
	}
	if v, ok := _c.mutation.Variant(); ok {
		if err := queuemessage.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.variant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationKey(); !ok {
		return &ValidationError{Name: "correlation_key", err: errors.New(`ent: missing required field "QueueMessage.correlation_key"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "QueueMessage.seq"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueueMessage.attempts"`)}
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		return &ValidationError{Name: "available_at", err: errors.New(`ent: missing required field "QueueMessage.available_at"`)}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "QueueMessage.enqueued_at"`)}
	}
	return nil
}

func (_c *QueueMessageCreate) sqlSave(ctx context.Context) (*QueueMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QueueMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueMessageCreate) createSpec() (*QueueMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuemessage.Table, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(queuemessage.FieldVariant, field.TypeEnum, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(queuemessage.FieldRequestID, field.TypeString, value)
		_node.RequestID = &value
	}
	if value, ok := _c.mutation.CorrelationKey(); ok {
		_spec.SetField(queuemessage.FieldCorrelationKey, field.TypeString, value)
		_node.CorrelationKey = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(queuemessage.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queuemessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.AvailableAt(); ok {
		_spec.SetField(queuemessage.FieldAvailableAt, field.TypeTime, value)
		_node.AvailableAt = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(queuemessage.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(queuemessage.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(queuemessage.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(queuemessage.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(queuemessage.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(queuemessage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// QueueMessageCreateBulk is the builder for creating many QueueMessage entities in bulk.
type QueueMessageCreateBulk struct {
	config
	err      error
	builders []*QueueMessageCreate
}

// Save creates the QueueMessage entities in the database.
func (_c *QueueMessageCreateBulk) Save(ctx context.Context) ([]*QueueMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) SaveX(ctx context.Context) []*QueueMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
