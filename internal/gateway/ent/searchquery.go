// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"querylens/internal/gateway/ent/searchquery"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// SearchQuery is the model entity for the SearchQuery schema.
type SearchQuery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Impressions holds the value of the "impressions" field.
	Impressions int `json:"impressions,omitempty"`
	// Clicks holds the value of the "clicks" field.
	Clicks int `json:"clicks,omitempty"`
	// Ctr holds the value of the "ctr" field.
	Ctr *float64 `json:"ctr,omitempty"`
	// Position holds the value of the "position" field.
	Position *float64 `json:"position,omitempty"`
	// Opportunity holds the value of the "opportunity" field.
	Opportunity bool `json:"opportunity,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchQuery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchquery.FieldOpportunity:
			values[i] = new(sql.NullBool)
		case searchquery.FieldCtr, searchquery.FieldPosition:
			values[i] = new(sql.NullFloat64)
		case searchquery.FieldImpressions, searchquery.FieldClicks:
			values[i] = new(sql.NullInt64)
		case searchquery.FieldID, searchquery.FieldText, searchquery.FieldUserID:
			values[i] = new(sql.NullString)
		case searchquery.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchQuery fields.
func (_m *SearchQuery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchquery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case searchquery.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case searchquery.FieldImpressions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field impressions", values[i])
			} else if value.Valid {
				_m.Impressions = int(value.Int64)
			}
		case searchquery.FieldClicks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clicks", values[i])
			} else if value.Valid {
				_m.Clicks = int(value.Int64)
			}
		case searchquery.FieldCtr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ctr", values[i])
			} else if value.Valid {
				_m.Ctr = new(float64)
				*_m.Ctr = value.Float64
			}
		case searchquery.FieldPosition:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = new(float64)
				*_m.Position = value.Float64
			}
		case searchquery.FieldOpportunity:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field opportunity", values[i])
			} else if value.Valid {
				_m.Opportunity = value.Bool
			}
		case searchquery.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case searchquery.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SearchQuery.
// This includes values selected through modifiers, order, etc.
func (_m *SearchQuery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SearchQuery.
// Note that you need to call SearchQuery.Unwrap() before calling this method if this SearchQuery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchQuery) Update() *SearchQueryUpdateOne {
	return NewSearchQueryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchQuery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchQuery) Unwrap() *SearchQuery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchQuery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchQuery) String() string {
	var builder strings.Builder
	builder.WriteString("SearchQuery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("impressions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Impressions))
	builder.WriteString(", ")
	builder.WriteString("clicks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clicks))
	builder.WriteString(", ")
	if v := _m.Ctr; v != nil {
		builder.WriteString("ctr=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Position; v != nil {
		builder.WriteString("position=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("opportunity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Opportunity))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchQueries is a parsable slice of SearchQuery.
type SearchQueries []*SearchQuery
