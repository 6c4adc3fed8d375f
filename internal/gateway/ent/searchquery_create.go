// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/searchquery"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SearchQueryCreate is the builder for creating a SearchQuery entity.
type SearchQueryCreate struct {
	config
	mutation *SearchQueryMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *SearchQueryCreate) SetText(v string) *SearchQueryCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetImpressions sets the "impressions" field.
func (_c *SearchQueryCreate) SetImpressions(v int) *SearchQueryCreate {
	_c.mutation.SetImpressions(v)
	return _c
}

// SetNillableImpressions sets the "impressions" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableImpressions(v *int) *SearchQueryCreate {
	if v != nil {
		_c.SetImpressions(*v)
	}
	return _c
}

// SetClicks sets the "clicks" field.
func (_c *SearchQueryCreate) SetClicks(v int) *SearchQueryCreate {
	_c.mutation.SetClicks(v)
	return _c
}

// SetNillableClicks sets the "clicks" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableClicks(v *int) *SearchQueryCreate {
	if v != nil {
		_c.SetClicks(*v)
	}
	return _c
}

// SetCtr sets the "ctr" field.
func (_c *SearchQueryCreate) SetCtr(v float64) *SearchQueryCreate {
	_c.mutation.SetCtr(v)
	return _c
}

// SetNillableCtr sets the "ctr" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableCtr(v *float64) *SearchQueryCreate {
	if v != nil {
		_c.SetCtr(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *SearchQueryCreate) SetPosition(v float64) *SearchQueryCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillablePosition(v *float64) *SearchQueryCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetOpportunity sets the "opportunity" field.
func (_c *SearchQueryCreate) SetOpportunity(v bool) *SearchQueryCreate {
	_c.mutation.SetOpportunity(v)
	return _c
}

// SetNillableOpportunity sets the "opportunity" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableOpportunity(v *bool) *SearchQueryCreate {
	if v != nil {
		_c.SetOpportunity(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SearchQueryCreate) SetUserID(v string) *SearchQueryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableUserID(v *string) *SearchQueryCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchQueryCreate) SetCreatedAt(v time.Time) *SearchQueryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchQueryCreate) SetNillableCreatedAt(v *time.Time) *SearchQueryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SearchQueryCreate) SetID(v string) *SearchQueryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SearchQueryMutation object of the builder.
func (_c *SearchQueryCreate) Mutation() *SearchQueryMutation {
	return _c.mutation
}

// Save creates the SearchQuery in the database.
func (_c *SearchQueryCreate) Save(ctx context.Context) (*SearchQuery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchQueryCreate) SaveX(ctx context.Context) *SearchQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchQueryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchQueryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchQueryCreate) defaults() {
	if _, ok := _c.mutation.Impressions(); !ok {
		v := searchquery.DefaultImpressions
		_c.mutation.SetImpressions(v)
	}
	if _, ok := _c.mutation.Clicks(); !ok {
		v := searchquery.DefaultClicks
		_c.mutation.SetClicks(v)
	}
	if _, ok := _c.mutation.Opportunity(); !ok {
		v := searchquery.DefaultOpportunity
		_c.mutation.SetOpportunity(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := searchquery.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchquery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchQueryCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "SearchQuery.text"`)}
	}
	if _, ok := _c.mutation.Impressions(); !ok {
		return &ValidationError{Name: "impressions", err: errors.New(`ent: missing required field "SearchQuery.impressions"`)}
	}
	if _, ok := _c.mutation.Clicks(); !ok {
		return &ValidationError{Name: "clicks", err: errors.New(`ent: missing required field "SearchQuery.clicks"`)}
	}
	if _, ok := _c.mutation.Opportunity(); !ok {
		return &ValidationError{Name: "opportunity", err: errors.New(`ent: missing required field "SearchQuery.opportunity"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SearchQuery.user_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchQuery.created_at"`)}
	}
	return nil
}

func (_c *SearchQueryCreate) sqlSave(ctx context.Context) (*SearchQuery, error) {
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
			return nil, fmt.Errorf("unexpected SearchQuery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SearchQueryCreate) createSpec() (*SearchQuery, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchQuery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchquery.Table, sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(searchquery.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Impressions(); ok {
		_spec.SetField(searchquery.FieldImpressions, field.TypeInt, value)
		_node.Impressions = value
	}
	if value, ok := _c.mutation.Clicks(); ok {
		_spec.SetField(searchquery.FieldClicks, field.TypeInt, value)
		_node.Clicks = value
	}
	if value, ok := _c.mutation.Ctr(); ok {
		_spec.SetField(searchquery.FieldCtr, field.TypeFloat64, value)
		_node.Ctr = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(searchquery.FieldPosition, field.TypeFloat64, value)
		_node.Position = &value
	}
	if value, ok := _c.mutation.Opportunity(); ok {
		_spec.SetField(searchquery.FieldOpportunity, field.TypeBool, value)
		_node.Opportunity = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(searchquery.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchquery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SearchQueryCreateBulk is the builder for creating many SearchQuery entities in bulk.
type SearchQueryCreateBulk struct {
	config
	err      error
	builders []*SearchQueryCreate
}

// Save creates the SearchQuery entities in the database.
func (_c *SearchQueryCreateBulk) Save(ctx context.Context) ([]*SearchQuery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchQuery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchQueryMutation)
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
func (_c *SearchQueryCreateBulk) SaveX(ctx context.Context) []*SearchQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchQueryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchQueryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
