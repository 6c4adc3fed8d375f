// Code generated by ent, DO NOT EDIT.

package groupitem

import (
	"querylens/internal/gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldGroupID, v))
}

// QueryID applies equality check predicate on the "query_id" field. It's identical to QueryIDEQ.
func QueryID(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldQueryID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldContainsFold(FieldGroupID, v))
}

// QueryIDEQ applies the EQ predicate on the "query_id" field.
func QueryIDEQ(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldQueryID, v))
}

// QueryIDNEQ applies the NEQ predicate on the "query_id" field.
func QueryIDNEQ(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNEQ(FieldQueryID, v))
}

// QueryIDIn applies the In predicate on the "query_id" field.
func QueryIDIn(vs ...string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldIn(FieldQueryID, vs...))
}

// QueryIDNotIn applies the NotIn predicate on the "query_id" field.
func QueryIDNotIn(vs ...string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNotIn(FieldQueryID, vs...))
}

// QueryIDGT applies the GT predicate on the "query_id" field.
func QueryIDGT(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGT(FieldQueryID, v))
}

// QueryIDGTE applies the GTE predicate on the "query_id" field.
func QueryIDGTE(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGTE(FieldQueryID, v))
}

// QueryIDLT applies the LT predicate on the "query_id" field.
func QueryIDLT(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLT(FieldQueryID, v))
}

// QueryIDLTE applies the LTE predicate on the "query_id" field.
func QueryIDLTE(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLTE(FieldQueryID, v))
}

// QueryIDContains applies the Contains predicate on the "query_id" field.
func QueryIDContains(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldContains(FieldQueryID, v))
}

// QueryIDHasPrefix applies the HasPrefix predicate on the "query_id" field.
func QueryIDHasPrefix(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldHasPrefix(FieldQueryID, v))
}

// QueryIDHasSuffix applies the HasSuffix predicate on the "query_id" field.
func QueryIDHasSuffix(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldHasSuffix(FieldQueryID, v))
}

// QueryIDEqualFold applies the EqualFold predicate on the "query_id" field.
func QueryIDEqualFold(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEqualFold(FieldQueryID, v))
}

// QueryIDContainsFold applies the ContainsFold predicate on the "query_id" field.
func QueryIDContainsFold(v string) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldContainsFold(FieldQueryID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GroupItem {
	return predicate.GroupItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupItem) predicate.GroupItem {
	return predicate.GroupItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupItem) predicate.GroupItem {
	return predicate.GroupItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupItem) predicate.GroupItem {
	return predicate.GroupItem(sql.NotPredicates(p))
}
