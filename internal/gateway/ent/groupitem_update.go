// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/groupitem"
	"querylens/internal/gateway/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// GroupItemUpdate is the builder for updating GroupItem entities.
type GroupItemUpdate struct {
	config
	hooks    []Hook
	mutation *GroupItemMutation
}

// Where appends a list predicates to the GroupItemUpdate builder.
func (_u *GroupItemUpdate) Where(ps ...predicate.GroupItem) *GroupItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *GroupItemUpdate) SetGroupID(v string) *GroupItemUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupItemUpdate) SetNillableGroupID(v *string) *GroupItemUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetQueryID sets the "query_id" field.
func (_u *GroupItemUpdate) SetQueryID(v string) *GroupItemUpdate {
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *GroupItemUpdate) SetNillableQueryID(v *string) *GroupItemUpdate {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// Mutation returns the GroupItemMutation object of the builder.
func (_u *GroupItemUpdate) Mutation() *GroupItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GroupItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(groupitem.Table, groupitem.Columns, sqlgraph.NewFieldSpec(groupitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(groupitem.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(groupitem.FieldQueryID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupItemUpdateOne is the builder for updating a single GroupItem entity.
type GroupItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupItemMutation
}

// SetGroupID sets the "group_id" field.
func (_u *GroupItemUpdateOne) SetGroupID(v string) *GroupItemUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupItemUpdateOne) SetNillableGroupID(v *string) *GroupItemUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetQueryID sets the "query_id" field.
func (_u *GroupItemUpdateOne) SetQueryID(v string) *GroupItemUpdateOne {
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *GroupItemUpdateOne) SetNillableQueryID(v *string) *GroupItemUpdateOne {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// Mutation returns the GroupItemMutation object of the builder.
func (_u *GroupItemUpdateOne) Mutation() *GroupItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the GroupItemUpdate builder.
func (_u *GroupItemUpdateOne) Where(ps ...predicate.GroupItem) *GroupItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupItemUpdateOne) Select(field string, fields ...string) *GroupItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupItem entity.
func (_u *GroupItemUpdateOne) Save(ctx context.Context) (*GroupItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupItemUpdateOne) SaveX(ctx context.Context) *GroupItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GroupItemUpdateOne) sqlSave(ctx context.Context) (_node *GroupItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(groupitem.Table, groupitem.Columns, sqlgraph.NewFieldSpec(groupitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupitem.FieldID)
		for _, f := range fields {
			if !groupitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupitem.FieldID {
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
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(groupitem.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(groupitem.FieldQueryID, field.TypeString, value)
	}
	_node = &GroupItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
