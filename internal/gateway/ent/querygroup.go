// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"querylens/internal/gateway/ent/querygroup"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// QueryGroup is the model entity for the QueryGroup schema.
type QueryGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// AiGenerated holds the value of the "ai_generated" field.
	AiGenerated bool `json:"ai_generated,omitempty"`
	// Impressions holds the value of the "impressions" field.
	Impressions int `json:"impressions,omitempty"`
	// Clicks holds the value of the "clicks" field.
	Clicks int `json:"clicks,omitempty"`
	// Ctr holds the value of the "ctr" field.
	Ctr float64 `json:"ctr,omitempty"`
	// AvgPosition holds the value of the "avg_position" field.
	AvgPosition *float64 `json:"avg_position,omitempty"`
	// QueryCount holds the value of the "query_count" field.
	QueryCount int `json:"query_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueryGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case querygroup.FieldAiGenerated:
			values[i] = new(sql.NullBool)
		case querygroup.FieldCtr, querygroup.FieldAvgPosition:
			values[i] = new(sql.NullFloat64)
		case querygroup.FieldImpressions, querygroup.FieldClicks, querygroup.FieldQueryCount:
			values[i] = new(sql.NullInt64)
		case querygroup.FieldID, querygroup.FieldName, querygroup.FieldUserID:
			values[i] = new(sql.NullString)
		case querygroup.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueryGroup fields.
func (_m *QueryGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case querygroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case querygroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case querygroup.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case querygroup.FieldAiGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ai_generated", values[i])
			} else if value.Valid {
				_m.AiGenerated = value.Bool
			}
		case querygroup.FieldImpressions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field impressions", values[i])
			} else if value.Valid {
				_m.Impressions = int(value.Int64)
			}
		case querygroup.FieldClicks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clicks", values[i])
			} else if value.Valid {
				_m.Clicks = int(value.Int64)
			}
		case querygroup.FieldCtr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ctr", values[i])
			} else if value.Valid {
				_m.Ctr = value.Float64
			}
		case querygroup.FieldAvgPosition:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_position", values[i])
			} else if value.Valid {
				_m.AvgPosition = new(float64)
				*_m.AvgPosition = value.Float64
			}
		case querygroup.FieldQueryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field query_count", values[i])
			} else if value.Valid {
				_m.QueryCount = int(value.Int64)
			}
		case querygroup.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QueryGroup.
// This includes values selected through modifiers, order, etc.
func (_m *QueryGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueryGroup.
// Note that you need to call QueryGroup.Unwrap() before calling this method if this QueryGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueryGroup) Update() *QueryGroupUpdateOne {
	return NewQueryGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueryGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueryGroup) Unwrap() *QueryGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueryGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueryGroup) String() string {
	var builder strings.Builder
	builder.WriteString("QueryGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("ai_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiGenerated))
	builder.WriteString(", ")
	builder.WriteString("impressions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Impressions))
	builder.WriteString(", ")
	builder.WriteString("clicks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clicks))
	builder.WriteString(", ")
	builder.WriteString("ctr=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ctr))
	builder.WriteString(", ")
	if v := _m.AvgPosition; v != nil {
		builder.WriteString("avg_position=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("query_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueryGroups is a parsable slice of QueryGroup.
type QueryGroups []*QueryGroup
