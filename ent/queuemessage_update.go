// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patchwork-dev/patchwork/ent/predicate"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
)

// QueueMessageUpdate is the builder for updating QueueMessage entities.
type QueueMessageUpdate struct {
	config
	hooks    []Hook
	mutation *QueueMessageMutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdate) Where(ps ...predicate.QueueMessage) *QueueMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVariant sets the "variant" field.
func (_u *QueueMessageUpdate) SetVariant(v queuemessage.Variant) *QueueMessageUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableVariant(v *queuemessage.Variant) *QueueMessageUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *QueueMessageUpdate) SetRequestID(v string) *QueueMessageUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableRequestID(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *QueueMessageUpdate) ClearRequestID() *QueueMessageUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetCorrelationKey sets the "correlation_key" field.
func (_u *QueueMessageUpdate) SetCorrelationKey(v string) *QueueMessageUpdate {
	_u.mutation.SetCorrelationKey(v)
	return _u
}

// SetNillableCorrelationKey sets the "correlation_key" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableCorrelationKey(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetCorrelationKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueMessageUpdate) SetPayload(v map[string]interface{}) *QueueMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QueueMessageUpdate) ClearPayload() *QueueMessageUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdate) SetStatus(v queuemessage.Status) *QueueMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueMessageUpdate) SetAttempts(v int) *QueueMessageUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableAttempts(v *int) *QueueMessageUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueMessageUpdate) AddAttempts(v int) *QueueMessageUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *QueueMessageUpdate) SetAvailableAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableAvailableAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *QueueMessageUpdate) SetLockedBy(v string) *QueueMessageUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLockedBy(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *QueueMessageUpdate) ClearLockedBy() *QueueMessageUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *QueueMessageUpdate) SetLockedAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLockedAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *QueueMessageUpdate) ClearLockedAt() *QueueMessageUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *QueueMessageUpdate) SetLastHeartbeatAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLastHeartbeatAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *QueueMessageUpdate) ClearLastHeartbeatAt() *QueueMessageUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueMessageUpdate) SetLastError(v string) *QueueMessageUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableLastError(v *string) *QueueMessageUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueMessageUpdate) ClearLastError() *QueueMessageUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueMessageUpdate) SetCompletedAt(v time.Time) *QueueMessageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueMessageUpdate) SetNillableCompletedAt(v *time.Time) *QueueMessageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueMessageUpdate) ClearCompletedAt() *QueueMessageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdate) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdate) check() error {
	if v, ok := _u.mutation.Variant(); ok {
		if err := queuemessage.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(queuemessage.FieldVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(queuemessage.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(queuemessage.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationKey(); ok {
		_spec.SetField(queuemessage.FieldCorrelationKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(queuemessage.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuemessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuemessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(queuemessage.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(queuemessage.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(queuemessage.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(queuemessage.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(queuemessage.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(queuemessage.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(queuemessage.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queuemessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queuemessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queuemessage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queuemessage.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueMessageUpdateOne is the builder for updating a single QueueMessage entity.
type QueueMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueMessageMutation
}

// SetVariant sets the "variant" field.
func (_u *QueueMessageUpdateOne) SetVariant(v queuemessage.Variant) *QueueMessageUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableVariant(v *queuemessage.Variant) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *QueueMessageUpdateOne) SetRequestID(v string) *QueueMessageUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableRequestID(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *QueueMessageUpdateOne) ClearRequestID() *QueueMessageUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetCorrelationKey sets the "correlation_key" field.
func (_u *QueueMessageUpdateOne) SetCorrelationKey(v string) *QueueMessageUpdateOne {
	_u.mutation.SetCorrelationKey(v)
	return _u
}

// SetNillableCorrelationKey sets the "correlation_key" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableCorrelationKey(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetCorrelationKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueMessageUpdateOne) SetPayload(v map[string]interface{}) *QueueMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QueueMessageUpdateOne) ClearPayload() *QueueMessageUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueMessageUpdateOne) SetStatus(v queuemessage.Status) *QueueMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableStatus(v *queuemessage.Status) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueMessageUpdateOne) SetAttempts(v int) *QueueMessageUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableAttempts(v *int) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueMessageUpdateOne) AddAttempts(v int) *QueueMessageUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *QueueMessageUpdateOne) SetAvailableAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableAvailableAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *QueueMessageUpdateOne) SetLockedBy(v string) *QueueMessageUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLockedBy(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *QueueMessageUpdateOne) ClearLockedBy() *QueueMessageUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *QueueMessageUpdateOne) SetLockedAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLockedAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *QueueMessageUpdateOne) ClearLockedAt() *QueueMessageUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *QueueMessageUpdateOne) SetLastHeartbeatAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *QueueMessageUpdateOne) ClearLastHeartbeatAt() *QueueMessageUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueMessageUpdateOne) SetLastError(v string) *QueueMessageUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableLastError(v *string) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueMessageUpdateOne) ClearLastError() *QueueMessageUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueMessageUpdateOne) SetCompletedAt(v time.Time) *QueueMessageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueMessageUpdateOne) SetNillableCompletedAt(v *time.Time) *QueueMessageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueMessageUpdateOne) ClearCompletedAt() *QueueMessageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the QueueMessageMutation object of the builder.
func (_u *QueueMessageUpdateOne) Mutation() *QueueMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueMessageUpdate builder.
func (_u *QueueMessageUpdateOne) Where(ps ...predicate.QueueMessage) *QueueMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueMessageUpdateOne) Select(field string, fields ...string) *QueueMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueMessage entity.
func (_u *QueueMessageUpdateOne) Save(ctx context.Context) (*QueueMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) SaveX(ctx context.Context) *QueueMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Variant(); ok {
		if err := queuemessage.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := queuemessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueMessageUpdateOne) sqlSave(ctx context.Context) (_node *QueueMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuemessage.Table, queuemessage.Columns, sqlgraph.NewFieldSpec(queuemessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuemessage.FieldID)
		for _, f := range fields {
			if !queuemessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuemessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(queuemessage.FieldVariant, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(queuemessage.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(queuemessage.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationKey(); ok {
		_spec.SetField(queuemessage.FieldCorrelationKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuemessage.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(queuemessage.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuemessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuemessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuemessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(queuemessage.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(queuemessage.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(queuemessage.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(queuemessage.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(queuemessage.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(queuemessage.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(queuemessage.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queuemessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queuemessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queuemessage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queuemessage.FieldCompletedAt, field.TypeTime)
	}
	_node = &QueueMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuemessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
