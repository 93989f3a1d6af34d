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
	"github.com/patchwork-dev/patchwork/ent/configentry"
	"github.com/patchwork-dev/patchwork/ent/predicate"
)

// ConfigEntryUpdate is the builder for updating ConfigEntry entities.
type ConfigEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigEntryMutation
}

// Where appends a list predicates to the ConfigEntryUpdate builder.
func (_u *ConfigEntryUpdate) Where(ps ...predicate.ConfigEntry) *ConfigEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConfigEntryUpdate) SetKind(v configentry.Kind) *ConfigEntryUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConfigEntryUpdate) SetNillableKind(v *configentry.Kind) *ConfigEntryUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ConfigEntryUpdate) SetPayload(v map[string]interface{}) *ConfigEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigEntryUpdate) SetUpdatedAt(v time.Time) *ConfigEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ConfigEntryUpdate) SetNillableUpdatedAt(v *time.Time) *ConfigEntryUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ConfigEntryMutation object of the builder.
func (_u *ConfigEntryUpdate) Mutation() *ConfigEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigEntryUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := configentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConfigEntry.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfigEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configentry.Table, configentry.Columns, sqlgraph.NewFieldSpec(configentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(configentry.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(configentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigEntryUpdateOne is the builder for updating a single ConfigEntry entity.
type ConfigEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigEntryMutation
}

// SetKind sets the "kind" field.
func (_u *ConfigEntryUpdateOne) SetKind(v configentry.Kind) *ConfigEntryUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConfigEntryUpdateOne) SetNillableKind(v *configentry.Kind) *ConfigEntryUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ConfigEntryUpdateOne) SetPayload(v map[string]interface{}) *ConfigEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigEntryUpdateOne) SetUpdatedAt(v time.Time) *ConfigEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ConfigEntryUpdateOne) SetNillableUpdatedAt(v *time.Time) *ConfigEntryUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ConfigEntryMutation object of the builder.
func (_u *ConfigEntryUpdateOne) Mutation() *ConfigEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfigEntryUpdate builder.
func (_u *ConfigEntryUpdateOne) Where(ps ...predicate.ConfigEntry) *ConfigEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigEntryUpdateOne) Select(field string, fields ...string) *ConfigEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigEntry entity.
func (_u *ConfigEntryUpdateOne) Save(ctx context.Context) (*ConfigEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigEntryUpdateOne) SaveX(ctx context.Context) *ConfigEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := configentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConfigEntry.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfigEntryUpdateOne) sqlSave(ctx context.Context) (_node *ConfigEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configentry.Table, configentry.Columns, sqlgraph.NewFieldSpec(configentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configentry.FieldID)
		for _, f := range fields {
			if !configentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configentry.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(configentry.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(configentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConfigEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
