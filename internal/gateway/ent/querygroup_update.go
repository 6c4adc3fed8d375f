// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/predicate"
	"querylens/internal/gateway/ent/querygroup"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QueryGroupUpdate is the builder for updating QueryGroup entities.
type QueryGroupUpdate struct {
	config
	hooks    []Hook
	mutation *QueryGroupMutation
}

// Where appends a list predicates to the QueryGroupUpdate builder.
func (_u *QueryGroupUpdate) Where(ps ...predicate.QueryGroup) *QueryGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *QueryGroupUpdate) SetName(v string) *QueryGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableName(v *string) *QueryGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QueryGroupUpdate) SetUserID(v string) *QueryGroupUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableUserID(v *string) *QueryGroupUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAiGenerated sets the "ai_generated" field.
func (_u *QueryGroupUpdate) SetAiGenerated(v bool) *QueryGroupUpdate {
	_u.mutation.SetAiGenerated(v)
	return _u
}

// SetNillableAiGenerated sets the "ai_generated" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableAiGenerated(v *bool) *QueryGroupUpdate {
	if v != nil {
		_u.SetAiGenerated(*v)
	}
	return _u
}

// SetImpressions sets the "impressions" field.
func (_u *QueryGroupUpdate) SetImpressions(v int) *QueryGroupUpdate {
	_u.mutation.ResetImpressions()
	_u.mutation.SetImpressions(v)
	return _u
}

// SetNillableImpressions sets the "impressions" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableImpressions(v *int) *QueryGroupUpdate {
	if v != nil {
		_u.SetImpressions(*v)
	}
	return _u
}

// AddImpressions adds value to the "impressions" field.
func (_u *QueryGroupUpdate) AddImpressions(v int) *QueryGroupUpdate {
	_u.mutation.AddImpressions(v)
	return _u
}

// SetClicks sets the "clicks" field.
func (_u *QueryGroupUpdate) SetClicks(v int) *QueryGroupUpdate {
	_u.mutation.ResetClicks()
	_u.mutation.SetClicks(v)
	return _u
}

// SetNillableClicks sets the "clicks" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableClicks(v *int) *QueryGroupUpdate {
	if v != nil {
		_u.SetClicks(*v)
	}
	return _u
}

// AddClicks adds value to the "clicks" field.
func (_u *QueryGroupUpdate) AddClicks(v int) *QueryGroupUpdate {
	_u.mutation.AddClicks(v)
	return _u
}

// SetCtr sets the "ctr" field.
func (_u *QueryGroupUpdate) SetCtr(v float64) *QueryGroupUpdate {
	_u.mutation.ResetCtr()
	_u.mutation.SetCtr(v)
	return _u
}

// SetNillableCtr sets the "ctr" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableCtr(v *float64) *QueryGroupUpdate {
	if v != nil {
		_u.SetCtr(*v)
	}
	return _u
}

// AddCtr adds value to the "ctr" field.
func (_u *QueryGroupUpdate) AddCtr(v float64) *QueryGroupUpdate {
	_u.mutation.AddCtr(v)
	return _u
}

// SetAvgPosition sets the "avg_position" field.
func (_u *QueryGroupUpdate) SetAvgPosition(v float64) *QueryGroupUpdate {
	_u.mutation.ResetAvgPosition()
	_u.mutation.SetAvgPosition(v)
	return _u
}

// SetNillableAvgPosition sets the "avg_position" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableAvgPosition(v *float64) *QueryGroupUpdate {
	if v != nil {
		_u.SetAvgPosition(*v)
	}
	return _u
}

// AddAvgPosition adds value to the "avg_position" field.
func (_u *QueryGroupUpdate) AddAvgPosition(v float64) *QueryGroupUpdate {
	_u.mutation.AddAvgPosition(v)
	return _u
}

// ClearAvgPosition clears the value of the "avg_position" field.
func (_u *QueryGroupUpdate) ClearAvgPosition() *QueryGroupUpdate {
	_u.mutation.ClearAvgPosition()
	return _u
}

// SetQueryCount sets the "query_count" field.
func (_u *QueryGroupUpdate) SetQueryCount(v int) *QueryGroupUpdate {
	_u.mutation.ResetQueryCount()
	_u.mutation.SetQueryCount(v)
	return _u
}

// SetNillableQueryCount sets the "query_count" field if the given value is not nil.
func (_u *QueryGroupUpdate) SetNillableQueryCount(v *int) *QueryGroupUpdate {
	if v != nil {
		_u.SetQueryCount(*v)
	}
	return _u
}

// AddQueryCount adds value to the "query_count" field.
func (_u *QueryGroupUpdate) AddQueryCount(v int) *QueryGroupUpdate {
	_u.mutation.AddQueryCount(v)
	return _u
}

// Mutation returns the QueryGroupMutation object of the builder.
func (_u *QueryGroupUpdate) Mutation() *QueryGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(querygroup.Table, querygroup.Columns, sqlgraph.NewFieldSpec(querygroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(querygroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(querygroup.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiGenerated(); ok {
		_spec.SetField(querygroup.FieldAiGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Impressions(); ok {
		_spec.SetField(querygroup.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpressions(); ok {
		_spec.AddField(querygroup.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Clicks(); ok {
		_spec.SetField(querygroup.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClicks(); ok {
		_spec.AddField(querygroup.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ctr(); ok {
		_spec.SetField(querygroup.FieldCtr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCtr(); ok {
		_spec.AddField(querygroup.FieldCtr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgPosition(); ok {
		_spec.SetField(querygroup.FieldAvgPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgPosition(); ok {
		_spec.AddField(querygroup.FieldAvgPosition, field.TypeFloat64, value)
	}
	if _u.mutation.AvgPositionCleared() {
		_spec.ClearField(querygroup.FieldAvgPosition, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QueryCount(); ok {
		_spec.SetField(querygroup.FieldQueryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueryCount(); ok {
		_spec.AddField(querygroup.FieldQueryCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querygroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryGroupUpdateOne is the builder for updating a single QueryGroup entity.
type QueryGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryGroupMutation
}

// SetName sets the "name" field.
func (_u *QueryGroupUpdateOne) SetName(v string) *QueryGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableName(v *string) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QueryGroupUpdateOne) SetUserID(v string) *QueryGroupUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableUserID(v *string) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAiGenerated sets the "ai_generated" field.
func (_u *QueryGroupUpdateOne) SetAiGenerated(v bool) *QueryGroupUpdateOne {
	_u.mutation.SetAiGenerated(v)
	return _u
}

// SetNillableAiGenerated sets the "ai_generated" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableAiGenerated(v *bool) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetAiGenerated(*v)
	}
	return _u
}

// SetImpressions sets the "impressions" field.
func (_u *QueryGroupUpdateOne) SetImpressions(v int) *QueryGroupUpdateOne {
	_u.mutation.ResetImpressions()
	_u.mutation.SetImpressions(v)
	return _u
}

// SetNillableImpressions sets the "impressions" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableImpressions(v *int) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetImpressions(*v)
	}
	return _u
}

// AddImpressions adds value to the "impressions" field.
func (_u *QueryGroupUpdateOne) AddImpressions(v int) *QueryGroupUpdateOne {
	_u.mutation.AddImpressions(v)
	return _u
}

// SetClicks sets the "clicks" field.
func (_u *QueryGroupUpdateOne) SetClicks(v int) *QueryGroupUpdateOne {
	_u.mutation.ResetClicks()
	_u.mutation.SetClicks(v)
	return _u
}

// SetNillableClicks sets the "clicks" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableClicks(v *int) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetClicks(*v)
	}
	return _u
}

// AddClicks adds value to the "clicks" field.
func (_u *QueryGroupUpdateOne) AddClicks(v int) *QueryGroupUpdateOne {
	_u.mutation.AddClicks(v)
	return _u
}

// SetCtr sets the "ctr" field.
func (_u *QueryGroupUpdateOne) SetCtr(v float64) *QueryGroupUpdateOne {
	_u.mutation.ResetCtr()
	_u.mutation.SetCtr(v)
	return _u
}

// SetNillableCtr sets the "ctr" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableCtr(v *float64) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetCtr(*v)
	}
	return _u
}

// AddCtr adds value to the "ctr" field.
func (_u *QueryGroupUpdateOne) AddCtr(v float64) *QueryGroupUpdateOne {
	_u.mutation.AddCtr(v)
	return _u
}

// SetAvgPosition sets the "avg_position" field.
func (_u *QueryGroupUpdateOne) SetAvgPosition(v float64) *QueryGroupUpdateOne {
	_u.mutation.ResetAvgPosition()
	_u.mutation.SetAvgPosition(v)
	return _u
}

// SetNillableAvgPosition sets the "avg_position" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableAvgPosition(v *float64) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetAvgPosition(*v)
	}
	return _u
}

// AddAvgPosition adds value to the "avg_position" field.
func (_u *QueryGroupUpdateOne) AddAvgPosition(v float64) *QueryGroupUpdateOne {
	_u.mutation.AddAvgPosition(v)
	return _u
}

// ClearAvgPosition clears the value of the "avg_position" field.
func (_u *QueryGroupUpdateOne) ClearAvgPosition() *QueryGroupUpdateOne {
	_u.mutation.ClearAvgPosition()
	return _u
}

// SetQueryCount sets the "query_count" field.
func (_u *QueryGroupUpdateOne) SetQueryCount(v int) *QueryGroupUpdateOne {
	_u.mutation.ResetQueryCount()
	_u.mutation.SetQueryCount(v)
	return _u
}

// SetNillableQueryCount sets the "query_count" field if the given value is not nil.
func (_u *QueryGroupUpdateOne) SetNillableQueryCount(v *int) *QueryGroupUpdateOne {
	if v != nil {
		_u.SetQueryCount(*v)
	}
	return _u
}

// AddQueryCount adds value to the "query_count" field.
func (_u *QueryGroupUpdateOne) AddQueryCount(v int) *QueryGroupUpdateOne {
	_u.mutation.AddQueryCount(v)
	return _u
}

// Mutation returns the QueryGroupMutation object of the builder.
func (_u *QueryGroupUpdateOne) Mutation() *QueryGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryGroupUpdate builder.
func (_u *QueryGroupUpdateOne) Where(ps ...predicate.QueryGroup) *QueryGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryGroupUpdateOne) Select(field string, fields ...string) *QueryGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryGroup entity.
func (_u *QueryGroupUpdateOne) Save(ctx context.Context) (*QueryGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryGroupUpdateOne) SaveX(ctx context.Context) *QueryGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryGroupUpdateOne) sqlSave(ctx context.Context) (_node *QueryGroup, err error) {
	_spec := sqlgraph.NewUpdateSpec(querygroup.Table, querygroup.Columns, sqlgraph.NewFieldSpec(querygroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, querygroup.FieldID)
		for _, f := range fields {
			if !querygroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != querygroup.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(querygroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(querygroup.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiGenerated(); ok {
		_spec.SetField(querygroup.FieldAiGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Impressions(); ok {
		_spec.SetField(querygroup.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpressions(); ok {
		_spec.AddField(querygroup.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Clicks(); ok {
		_spec.SetField(querygroup.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClicks(); ok {
		_spec.AddField(querygroup.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ctr(); ok {
		_spec.SetField(querygroup.FieldCtr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCtr(); ok {
		_spec.AddField(querygroup.FieldCtr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgPosition(); ok {
		_spec.SetField(querygroup.FieldAvgPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgPosition(); ok {
		_spec.AddField(querygroup.FieldAvgPosition, field.TypeFloat64, value)
	}
	if _u.mutation.AvgPositionCleared() {
		_spec.ClearField(querygroup.FieldAvgPosition, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QueryCount(); ok {
		_spec.SetField(querygroup.FieldQueryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueryCount(); ok {
		_spec.AddField(querygroup.FieldQueryCount, field.TypeInt, value)
	}
	_node = &QueryGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querygroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
