package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GroupItem holds the schema definition for the group/query relation.
type GroupItem struct {
	ent.Schema
}

// Fields of the GroupItem.
func (GroupItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("group_id"),
		field.String("query_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the GroupItem.
func (GroupItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
	}
}
