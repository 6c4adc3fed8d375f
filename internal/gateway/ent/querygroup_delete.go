// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"querylens/internal/gateway/ent/predicate"
	"querylens/internal/gateway/ent/querygroup"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QueryGroupDelete is the builder for deleting a QueryGroup entity.
type QueryGroupDelete struct {
	config
	hooks    []Hook
	mutation *QueryGroupMutation
}

// Where appends a list predicates to the QueryGroupDelete builder.
func (_d *QueryGroupDelete) Where(ps ...predicate.QueryGroup) *QueryGroupDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QueryGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QueryGroupDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QueryGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(querygroup.Table, sqlgraph.NewFieldSpec(querygroup.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QueryGroupDeleteOne is the builder for deleting a single QueryGroup entity.
type QueryGroupDeleteOne struct {
	_d *QueryGroupDelete
}

// Where appends a list predicates to the QueryGroupDelete builder.
func (_d *QueryGroupDeleteOne) Where(ps ...predicate.QueryGroup) *QueryGroupDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QueryGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{querygroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QueryGroupDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
