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
	"github.com/patchwork-dev/patchwork/ent/agentsession"
	"github.com/patchwork-dev/patchwork/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlob sets the "blob" field.
func (_u *AgentSessionUpdate) SetBlob(v []byte) *AgentSessionUpdate {
	_u.mutation.SetBlob(v)
	return _u
}

// SetUncompressedSize sets the "uncompressed_size" field.
func (_u *AgentSessionUpdate) SetUncompressedSize(v int) *AgentSessionUpdate {
	_u.mutation.ResetUncompressedSize()
	_u.mutation.SetUncompressedSize(v)
	return _u
}

// SetNillableUncompressedSize sets the "uncompressed_size" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableUncompressedSize(v *int) *AgentSessionUpdate {
	if v != nil {
		_u.SetUncompressedSize(*v)
	}
	return _u
}

// AddUncompressedSize adds value to the "uncompressed_size" field.
func (_u *AgentSessionUpdate) AddUncompressedSize(v int) *AgentSessionUpdate {
	_u.mutation.AddUncompressedSize(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AgentSessionUpdate) SetExpiresAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableExpiresAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.request"`)
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Blob(); ok {
		_spec.SetField(agentsession.FieldBlob, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UncompressedSize(); ok {
		_spec.SetField(agentsession.FieldUncompressedSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUncompressedSize(); ok {
		_spec.AddField(agentsession.FieldUncompressedSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(agentsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetBlob sets the "blob" field.
func (_u *AgentSessionUpdateOne) SetBlob(v []byte) *AgentSessionUpdateOne {
	_u.mutation.SetBlob(v)
	return _u
}

// SetUncompressedSize sets the "uncompressed_size" field.
func (_u *AgentSessionUpdateOne) SetUncompressedSize(v int) *AgentSessionUpdateOne {
	_u.mutation.ResetUncompressedSize()
	_u.mutation.SetUncompressedSize(v)
	return _u
}

// SetNillableUncompressedSize sets the "uncompressed_size" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableUncompressedSize(v *int) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetUncompressedSize(*v)
	}
	return _u
}

// AddUncompressedSize adds value to the "uncompressed_size" field.
func (_u *AgentSessionUpdateOne) AddUncompressedSize(v int) *AgentSessionUpdateOne {
	_u.mutation.AddUncompressedSize(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AgentSessionUpdateOne) SetExpiresAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.request"`)
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.Blob(); ok {
		_spec.SetField(agentsession.FieldBlob, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UncompressedSize(); ok {
		_spec.SetField(agentsession.FieldUncompressedSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUncompressedSize(); ok {
		_spec.AddField(agentsession.FieldUncompressedSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(agentsession.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
