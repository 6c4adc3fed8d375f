// Code generated by ent, DO NOT EDIT.

package searchquery

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the searchquery type in the database.
	Label = "search_query"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "query_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldImpressions holds the string denoting the impressions field in the database.
	FieldImpressions = "impressions"
	// FieldClicks holds the string denoting the clicks field in the database.
	FieldClicks = "clicks"
	// FieldCtr holds the string denoting the ctr field in the database.
	FieldCtr = "ctr"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldOpportunity holds the string denoting the opportunity field in the database.
	FieldOpportunity = "opportunity"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the searchquery in the database.
	Table = "search_queries"
)

// Columns holds all SQL columns for searchquery fields.
var Columns = []string{
	FieldID,
	FieldText,
	FieldImpressions,
	FieldClicks,
	FieldCtr,
	FieldPosition,
	FieldOpportunity,
	FieldUserID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultImpressions holds the default value on creation for the "impressions" field.
	DefaultImpressions int
	// DefaultClicks holds the default value on creation for the "clicks" field.
	DefaultClicks int
	// DefaultOpportunity holds the default value on creation for the "opportunity" field.
	DefaultOpportunity bool
	// DefaultUserID holds the default value on creation for the "user_id" field.
	DefaultUserID string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SearchQuery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByImpressions orders the results by the impressions field.
func ByImpressions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpressions, opts...).ToFunc()
}

// ByClicks orders the results by the clicks field.
func ByClicks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClicks, opts...).ToFunc()
}

// ByCtr orders the results by the ctr field.
func ByCtr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCtr, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByOpportunity orders the results by the opportunity field.
func ByOpportunity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpportunity, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
