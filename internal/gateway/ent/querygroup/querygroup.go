// Code generated by ent, DO NOT EDIT.

package querygroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the querygroup type in the database.
	Label = "query_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAiGenerated holds the string denoting the ai_generated field in the database.
	FieldAiGenerated = "ai_generated"
	// FieldImpressions holds the string denoting the impressions field in the database.
	FieldImpressions = "impressions"
	// FieldClicks holds the string denoting the clicks field in the database.
	FieldClicks = "clicks"
	// FieldCtr holds the string denoting the ctr field in the database.
	FieldCtr = "ctr"
	// FieldAvgPosition holds the string denoting the avg_position field in the database.
	FieldAvgPosition = "avg_position"
	// FieldQueryCount holds the string denoting the query_count field in the database.
	FieldQueryCount = "query_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the querygroup in the database.
	Table = "query_groups"
)

// Columns holds all SQL columns for querygroup fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldUserID,
	FieldAiGenerated,
	FieldImpressions,
	FieldClicks,
	FieldCtr,
	FieldAvgPosition,
	FieldQueryCount,
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
	// DefaultUserID holds the default value on creation for the "user_id" field.
	DefaultUserID string
	// DefaultAiGenerated holds the default value on creation for the "ai_generated" field.
	DefaultAiGenerated bool
	// DefaultImpressions holds the default value on creation for the "impressions" field.
	DefaultImpressions int
	// DefaultClicks holds the default value on creation for the "clicks" field.
	DefaultClicks int
	// DefaultCtr holds the default value on creation for the "ctr" field.
	DefaultCtr float64
	// DefaultQueryCount holds the default value on creation for the "query_count" field.
	DefaultQueryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QueryGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAiGenerated orders the results by the ai_generated field.
func ByAiGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiGenerated, opts...).ToFunc()
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

// ByAvgPosition orders the results by the avg_position field.
func ByAvgPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgPosition, opts...).ToFunc()
}

// ByQueryCount orders the results by the query_count field.
func ByQueryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
