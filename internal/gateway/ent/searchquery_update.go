// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"querylens/internal/gateway/ent/predicate"
	"querylens/internal/gateway/ent/searchquery"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SearchQueryUpdate is the builder for updating SearchQuery entities.
type SearchQueryUpdate struct {
	config
	hooks    []Hook
	mutation *SearchQueryMutation
}

// Where appends a list predicates to the SearchQueryUpdate builder.
func (_u *SearchQueryUpdate) Where(ps ...predicate.SearchQuery) *SearchQueryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *SearchQueryUpdate) SetText(v string) *SearchQueryUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableText(v *string) *SearchQueryUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetImpressions sets the "impressions" field.
func (_u *SearchQueryUpdate) SetImpressions(v int) *SearchQueryUpdate {
	_u.mutation.ResetImpressions()
	_u.mutation.SetImpressions(v)
	return _u
}

// SetNillableImpressions sets the "impressions" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableImpressions(v *int) *SearchQueryUpdate {
	if v != nil {
		_u.SetImpressions(*v)
	}
	return _u
}

// AddImpressions adds value to the "impressions" field.
func (_u *SearchQueryUpdate) AddImpressions(v int) *SearchQueryUpdate {
	_u.mutation.AddImpressions(v)
	return _u
}

// SetClicks sets the "clicks" field.
func (_u *SearchQueryUpdate) SetClicks(v int) *SearchQueryUpdate {
	_u.mutation.ResetClicks()
	_u.mutation.SetClicks(v)
	return _u
}

// SetNillableClicks sets the "clicks" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableClicks(v *int) *SearchQueryUpdate {
	if v != nil {
		_u.SetClicks(*v)
	}
	return _u
}

// AddClicks adds value to the "clicks" field.
func (_u *SearchQueryUpdate) AddClicks(v int) *SearchQueryUpdate {
	_u.mutation.AddClicks(v)
	return _u
}

// SetCtr sets the "ctr" field.
func (_u *SearchQueryUpdate) SetCtr(v float64) *SearchQueryUpdate {
	_u.mutation.ResetCtr()
	_u.mutation.SetCtr(v)
	return _u
}

// SetNillableCtr sets the "ctr" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableCtr(v *float64) *SearchQueryUpdate {
	if v != nil {
		_u.SetCtr(*v)
	}
	return _u
}

// AddCtr adds value to the "ctr" field.
func (_u *SearchQueryUpdate) AddCtr(v float64) *SearchQueryUpdate {
	_u.mutation.AddCtr(v)
	return _u
}

// ClearCtr clears the value of the "ctr" field.
func (_u *SearchQueryUpdate) ClearCtr() *SearchQueryUpdate {
	_u.mutation.ClearCtr()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SearchQueryUpdate) SetPosition(v float64) *SearchQueryUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillablePosition(v *float64) *SearchQueryUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SearchQueryUpdate) AddPosition(v float64) *SearchQueryUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *SearchQueryUpdate) ClearPosition() *SearchQueryUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// SetOpportunity sets the "opportunity" field.
func (_u *SearchQueryUpdate) SetOpportunity(v bool) *SearchQueryUpdate {
	_u.mutation.SetOpportunity(v)
	return _u
}

// SetNillableOpportunity sets the "opportunity" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableOpportunity(v *bool) *SearchQueryUpdate {
	if v != nil {
		_u.SetOpportunity(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SearchQueryUpdate) SetUserID(v string) *SearchQueryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SearchQueryUpdate) SetNillableUserID(v *string) *SearchQueryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// Mutation returns the SearchQueryMutation object of the builder.
func (_u *SearchQueryUpdate) Mutation() *SearchQueryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchQueryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchQueryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchQueryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchQueryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SearchQueryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(searchquery.Table, searchquery.Columns, sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(searchquery.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Impressions(); ok {
		_spec.SetField(searchquery.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpressions(); ok {
		_spec.AddField(searchquery.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Clicks(); ok {
		_spec.SetField(searchquery.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClicks(); ok {
		_spec.AddField(searchquery.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ctr(); ok {
		_spec.SetField(searchquery.FieldCtr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCtr(); ok {
		_spec.AddField(searchquery.FieldCtr, field.TypeFloat64, value)
	}
	if _u.mutation.CtrCleared() {
		_spec.ClearField(searchquery.FieldCtr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(searchquery.FieldPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(searchquery.FieldPosition, field.TypeFloat64, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(searchquery.FieldPosition, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Opportunity(); ok {
		_spec.SetField(searchquery.FieldOpportunity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(searchquery.FieldUserID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchQueryUpdateOne is the builder for updating a single SearchQuery entity.
type SearchQueryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchQueryMutation
}

// SetText sets the "text" field.
func (_u *SearchQueryUpdateOne) SetText(v string) *SearchQueryUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableText(v *string) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetImpressions sets the "impressions" field.
func (_u *SearchQueryUpdateOne) SetImpressions(v int) *SearchQueryUpdateOne {
	_u.mutation.ResetImpressions()
	_u.mutation.SetImpressions(v)
	return _u
}

// SetNillableImpressions sets the "impressions" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableImpressions(v *int) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetImpressions(*v)
	}
	return _u
}

// AddImpressions adds value to the "impressions" field.
func (_u *SearchQueryUpdateOne) AddImpressions(v int) *SearchQueryUpdateOne {
	_u.mutation.AddImpressions(v)
	return _u
}

// SetClicks sets the "clicks" field.
func (_u *SearchQueryUpdateOne) SetClicks(v int) *SearchQueryUpdateOne {
	_u.mutation.ResetClicks()
	_u.mutation.SetClicks(v)
	return _u
}

// SetNillableClicks sets the "clicks" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableClicks(v *int) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetClicks(*v)
	}
	return _u
}

// AddClicks adds value to the "clicks" field.
func (_u *SearchQueryUpdateOne) AddClicks(v int) *SearchQueryUpdateOne {
	_u.mutation.AddClicks(v)
	return _u
}

// SetCtr sets the "ctr" field.
func (_u *SearchQueryUpdateOne) SetCtr(v float64) *SearchQueryUpdateOne {
	_u.mutation.ResetCtr()
	_u.mutation.SetCtr(v)
	return _u
}

// SetNillableCtr sets the "ctr" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableCtr(v *float64) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetCtr(*v)
	}
	return _u
}

// AddCtr adds value to the "ctr" field.
func (_u *SearchQueryUpdateOne) AddCtr(v float64) *SearchQueryUpdateOne {
	_u.mutation.AddCtr(v)
	return _u
}

// ClearCtr clears the value of the "ctr" field.
func (_u *SearchQueryUpdateOne) ClearCtr() *SearchQueryUpdateOne {
	_u.mutation.ClearCtr()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SearchQueryUpdateOne) SetPosition(v float64) *SearchQueryUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillablePosition(v *float64) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SearchQueryUpdateOne) AddPosition(v float64) *SearchQueryUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *SearchQueryUpdateOne) ClearPosition() *SearchQueryUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// SetOpportunity sets the "opportunity" field.
func (_u *SearchQueryUpdateOne) SetOpportunity(v bool) *SearchQueryUpdateOne {
	_u.mutation.SetOpportunity(v)
	return _u
}

// SetNillableOpportunity sets the "opportunity" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableOpportunity(v *bool) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetOpportunity(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SearchQueryUpdateOne) SetUserID(v string) *SearchQueryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SearchQueryUpdateOne) SetNillableUserID(v *string) *SearchQueryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// Mutation returns the SearchQueryMutation object of the builder.
func (_u *SearchQueryUpdateOne) Mutation() *SearchQueryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SearchQueryUpdate builder.
func (_u *SearchQueryUpdateOne) Where(ps ...predicate.SearchQuery) *SearchQueryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchQueryUpdateOne) Select(field string, fields ...string) *SearchQueryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchQuery entity.
func (_u *SearchQueryUpdateOne) Save(ctx context.Context) (*SearchQuery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchQueryUpdateOne) SaveX(ctx context.Context) *SearchQuery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchQueryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchQueryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SearchQueryUpdateOne) sqlSave(ctx context.Context) (_node *SearchQuery, err error) {
	_spec := sqlgraph.NewUpdateSpec(searchquery.Table, searchquery.Columns, sqlgraph.NewFieldSpec(searchquery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchQuery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchquery.FieldID)
		for _, f := range fields {
			if !searchquery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchquery.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(searchquery.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Impressions(); ok {
		_spec.SetField(searchquery.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpressions(); ok {
		_spec.AddField(searchquery.FieldImpressions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Clicks(); ok {
		_spec.SetField(searchquery.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClicks(); ok {
		_spec.AddField(searchquery.FieldClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ctr(); ok {
		_spec.SetField(searchquery.FieldCtr, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCtr(); ok {
		_spec.AddField(searchquery.FieldCtr, field.TypeFloat64, value)
	}
	if _u.mutation.CtrCleared() {
		_spec.ClearField(searchquery.FieldCtr, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(searchquery.FieldPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(searchquery.FieldPosition, field.TypeFloat64, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(searchquery.FieldPosition, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Opportunity(); ok {
		_spec.SetField(searchquery.FieldOpportunity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(searchquery.FieldUserID, field.TypeString, value)
	}
	_node = &SearchQuery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
