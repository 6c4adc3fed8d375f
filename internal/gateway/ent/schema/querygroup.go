package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryGroup holds the schema definition for a persisted query group.
type QueryGroup struct {
	ent.Schema
}

// Fields of the QueryGroup.
func (QueryGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("user_id").
			Default(""),
		field.Bool("ai_generated").
			Default(false),
		field.Int("impressions").
			Default(0),
		field.Int("clicks").
			Default(0),
		field.Float("ctr").
			Default(0),
		field.Float("avg_position").
			Optional().
			Nillable(),
		field.Int("query_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the QueryGroup.
func (QueryGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
