// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/querygroup"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QueryGroupCreate is the builder for creating a QueryGroup entity.
type QueryGroupCreate struct {
	config
	mutation *QueryGroupMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *QueryGroupCreate) SetName(v string) *QueryGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QueryGroupCreate) SetUserID(v string) *QueryGroupCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableUserID(v *string) *QueryGroupCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetAiGenerated sets the "ai_generated" field.
func (_c *QueryGroupCreate) SetAiGenerated(v bool) *QueryGroupCreate {
	_c.mutation.SetAiGenerated(v)
	return _c
}

// SetNillableAiGenerated sets the "ai_generated" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableAiGenerated(v *bool) *QueryGroupCreate {
	if v != nil {
		_c.SetAiGenerated(*v)
	}
	return _c
}

// SetImpressions sets the "impressions" field.
func (_c *QueryGroupCreate) SetImpressions(v int) *QueryGroupCreate {
	_c.mutation.SetImpressions(v)
	return _c
}

// SetNillableImpressions sets the "impressions" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableImpressions(v *int) *QueryGroupCreate {
	if v != nil {
		_c.SetImpressions(*v)
	}
	return _c
}

// SetClicks sets the "clicks" field.
func (_c *QueryGroupCreate) SetClicks(v int) *QueryGroupCreate {
	_c.mutation.SetClicks(v)
	return _c
}

// SetNillableClicks sets the "clicks" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableClicks(v *int) *QueryGroupCreate {
	if v != nil {
		_c.SetClicks(*v)
	}
	return _c
}

// SetCtr sets the "ctr" field.
func (_c *QueryGroupCreate) SetCtr(v float64) *QueryGroupCreate {
	_c.mutation.SetCtr(v)
	return _c
}

// SetNillableCtr sets the "ctr" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableCtr(v *float64) *QueryGroupCreate {
	if v != nil {
		_c.SetCtr(*v)
	}
	return _c
}

// SetAvgPosition sets the "avg_position" field.
func (_c *QueryGroupCreate) SetAvgPosition(v float64) *QueryGroupCreate {
	_c.mutation.SetAvgPosition(v)
	return _c
}

// SetNillableAvgPosition sets the "avg_position" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableAvgPosition(v *float64) *QueryGroupCreate {
	if v != nil {
		_c.SetAvgPosition(*v)
	}
	return _c
}

// SetQueryCount sets the "query_count" field.
func (_c *QueryGroupCreate) SetQueryCount(v int) *QueryGroupCreate {
	_c.mutation.SetQueryCount(v)
	return _c
}

// SetNillableQueryCount sets the "query_count" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableQueryCount(v *int) *QueryGroupCreate {
	if v != nil {
		_c.SetQueryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryGroupCreate) SetCreatedAt(v time.Time) *QueryGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryGroupCreate) SetNillableCreatedAt(v *time.Time) *QueryGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueryGroupCreate) SetID(v string) *QueryGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueryGroupMutation object of the builder.
func (_c *QueryGroupCreate) Mutation() *QueryGroupMutation {
	return _c.mutation
}

// Save creates the QueryGroup in the database.
func (_c *QueryGroupCreate) Save(ctx context.Context) (*QueryGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryGroupCreate) SaveX(ctx context.Context) *QueryGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryGroupCreate) defaults() {
	if _, ok := _c.mutation.UserID(); !ok {
		v := querygroup.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.AiGenerated(); !ok {
		v := querygroup.DefaultAiGenerated
		_c.mutation.SetAiGenerated(v)
	}
	if _, ok := _c.mutation.Impressions(); !ok {
		v := querygroup.DefaultImpressions
		_c.mutation.SetImpressions(v)
	}
	if _, ok := _c.mutation.Clicks(); !ok {
		v := querygroup.DefaultClicks
		_c.mutation.SetClicks(v)
	}
	if _, ok := _c.mutation.Ctr(); !ok {
		v := querygroup.DefaultCtr
		_c.mutation.SetCtr(v)
	}
	if _, ok := _c.mutation.QueryCount(); !ok {
		v := querygroup.DefaultQueryCount
		_c.mutation.SetQueryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := querygroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryGroupCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "QueryGroup.name"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QueryGroup.user_id"`)}
	}
	if _, ok := _c.mutation.AiGenerated(); !ok {
		return &ValidationError{Name: "ai_generated", err: errors.New(`ent: missing required field "QueryGroup.ai_generated"`)}
	}
	if _, ok := _c.mutation.Impressions(); !ok {
		return &ValidationError{Name: "impressions", err: errors.New(`ent: missing required field "QueryGroup.impressions"`)}
	}
	if _, ok := _c.mutation.Clicks(); !ok {
		return &ValidationError{Name: "clicks", err: errors.New(`ent: missing required field "QueryGroup.clicks"`)}
	}
	if _, ok := _c.mutation.Ctr(); !ok {
		return &ValidationError{Name: "ctr", err: errors.New(`ent: missing required field "QueryGroup.ctr"`)}
	}
	if _, ok := _c.mutation.QueryCount(); !ok {
		return &ValidationError{Name: "query_count", err: errors.New(`ent: missing required field "QueryGroup.query_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryGroup.created_at"`)}
	}
	return nil
}

func (_c *QueryGroupCreate) sqlSave(ctx context.Context) (*QueryGroup, error) {
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
			return nil, fmt.Errorf("unexpected QueryGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryGroupCreate) createSpec() (*QueryGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(querygroup.Table, sqlgraph.NewFieldSpec(querygroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(querygroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(querygroup.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AiGenerated(); ok {
		_spec.SetField(querygroup.FieldAiGenerated, field.TypeBool, value)
		_node.AiGenerated = value
	}
	if value, ok := _c.mutation.Impressions(); ok {
		_spec.SetField(querygroup.FieldImpressions, field.TypeInt, value)
		_node.Impressions = value
	}
	if value, ok := _c.mutation.Clicks(); ok {
		_spec.SetField(querygroup.FieldClicks, field.TypeInt, value)
		_node.Clicks = value
	}
	if value, ok := _c.mutation.Ctr(); ok {
		_spec.SetField(querygroup.FieldCtr, field.TypeFloat64, value)
		_node.Ctr = value
	}
	if value, ok := _c.mutation.AvgPosition(); ok {
		_spec.SetField(querygroup.FieldAvgPosition, field.TypeFloat64, value)
		_node.AvgPosition = &value
	}
	if value, ok := _c.mutation.QueryCount(); ok {
		_spec.SetField(querygroup.FieldQueryCount, field.TypeInt, value)
		_node.QueryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(querygroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QueryGroupCreateBulk is the builder for creating many QueryGroup entities in bulk.
type QueryGroupCreateBulk struct {
	config
	err      error
	builders []*QueryGroupCreate
}

// Save creates the QueryGroup entities in the database.
func (_c *QueryGroupCreateBulk) Save(ctx context.Context) ([]*QueryGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryGroupMutation)
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
func (_c *QueryGroupCreateBulk) SaveX(ctx context.Context) []*QueryGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
