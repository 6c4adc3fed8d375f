package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SearchQuery holds the schema definition for one search-performance record.
type SearchQuery struct {
	ent.Schema
}

// Fields of the SearchQuery.
func (SearchQuery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("query_id").
			Unique().
			Immutable(),
		field.String("text"),
		field.Int("impressions").
			Default(0),
		field.Int("clicks").
			Default(0),
		field.Float("ctr").
			Optional().
			Nillable(),
		field.Float("position").
			Optional().
			Nillable(),
		field.Bool("opportunity").
			Default(false),
		field.String("user_id").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SearchQuery.
func (SearchQuery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "impressions"),
	}
}
