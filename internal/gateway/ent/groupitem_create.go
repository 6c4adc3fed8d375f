// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/groupitem"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// GroupItemCreate is the builder for creating a GroupItem entity.
type GroupItemCreate struct {
	config
	mutation *GroupItemMutation
	hooks    []Hook
}

// SetGroupID sets the "group_id" field.
func (_c *GroupItemCreate) SetGroupID(v string) *GroupItemCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetQueryID sets the "query_id" field.
func (_c *GroupItemCreate) SetQueryID(v string) *GroupItemCreate {
	_c.mutation.SetQueryID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GroupItemCreate) SetCreatedAt(v time.Time) *GroupItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GroupItemCreate) SetNillableCreatedAt(v *time.Time) *GroupItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the GroupItemMutation object of the builder.
func (_c *GroupItemCreate) Mutation() *GroupItemMutation {
	return _c.mutation
}

// Save creates the GroupItem in the database.
func (_c *GroupItemCreate) Save(ctx context.Context) (*GroupItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupItemCreate) SaveX(ctx context.Context) *GroupItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := groupitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupItemCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "GroupItem.group_id"`)}
	}
	if _, ok := _c.mutation.QueryID(); !ok {
		return &ValidationError{Name: "query_id", err: errors.New(`ent: missing required field "GroupItem.query_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GroupItem.created_at"`)}
	}
	return nil
}

func (_c *GroupItemCreate) sqlSave(ctx context.Context) (*GroupItem, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupItemCreate) createSpec() (*GroupItem, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(groupitem.Table, sqlgraph.NewFieldSpec(groupitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(groupitem.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.QueryID(); ok {
		_spec.SetField(groupitem.FieldQueryID, field.TypeString, value)
		_node.QueryID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(groupitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GroupItemCreateBulk is the builder for creating many GroupItem entities in bulk.
type GroupItemCreateBulk struct {
	config
	err      error
	builders []*GroupItemCreate
}

// Save creates the GroupItem entities in the database.
func (_c *GroupItemCreateBulk) Save(ctx context.Context) ([]*GroupItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GroupItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupItemMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *GroupItemCreateBulk) SaveX(ctx context.Context) []*GroupItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
