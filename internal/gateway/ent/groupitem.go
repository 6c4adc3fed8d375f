// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"querylens/internal/gateway/ent/groupitem"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// GroupItem is the model entity for the GroupItem schema.
type GroupItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// QueryID holds the value of the "query_id" field.
	QueryID string `json:"query_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupitem.FieldID:
			values[i] = new(sql.NullInt64)
		case groupitem.FieldGroupID, groupitem.FieldQueryID:
			values[i] = new(sql.NullString)
		case groupitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupItem fields.
func (_m *GroupItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case groupitem.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case groupitem.FieldQueryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_id", values[i])
			} else if value.Valid {
				_m.QueryID = value.String
			}
		case groupitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GroupItem.
// This includes values selected through modifiers, order, etc.
func (_m *GroupItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GroupItem.
// Note that you need to call GroupItem.Unwrap() before calling this method if this GroupItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GroupItem) Update() *GroupItemUpdateOne {
	return NewGroupItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GroupItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GroupItem) Unwrap() *GroupItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GroupItem) String() string {
	var builder strings.Builder
	builder.WriteString("GroupItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("query_id=")
	builder.WriteString(_m.QueryID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GroupItems is a parsable slice of GroupItem.
type GroupItems []*GroupItem
