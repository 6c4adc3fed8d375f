// Code generated by ent, DO NOT EDIT.

package querygroup

import (
	"querylens/internal/gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldName, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldUserID, v))
}

// AiGenerated applies equality check predicate on the "ai_generated" field. It's identical to AiGeneratedEQ.
func AiGenerated(v bool) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldAiGenerated, v))
}

// Impressions applies equality check predicate on the "impressions" field. It's identical to ImpressionsEQ.
func Impressions(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldImpressions, v))
}

// Clicks applies equality check predicate on the "clicks" field. It's identical to ClicksEQ.
func Clicks(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldClicks, v))
}

// Ctr applies equality check predicate on the "ctr" field. It's identical to CtrEQ.
func Ctr(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldCtr, v))
}

// AvgPosition applies equality check predicate on the "avg_position" field. It's identical to AvgPositionEQ.
func AvgPosition(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldAvgPosition, v))
}

// QueryCount applies equality check predicate on the "query_count" field. It's identical to QueryCountEQ.
func QueryCount(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldQueryCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldContainsFold(FieldName, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldContainsFold(FieldUserID, v))
}

// AiGeneratedEQ applies the EQ predicate on the "ai_generated" field.
func AiGeneratedEQ(v bool) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldAiGenerated, v))
}

// AiGeneratedNEQ applies the NEQ predicate on the "ai_generated" field.
func AiGeneratedNEQ(v bool) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldAiGenerated, v))
}

// ImpressionsEQ applies the EQ predicate on the "impressions" field.
func ImpressionsEQ(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldImpressions, v))
}

// ImpressionsNEQ applies the NEQ predicate on the "impressions" field.
func ImpressionsNEQ(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldImpressions, v))
}

// ImpressionsIn applies the In predicate on the "impressions" field.
func ImpressionsIn(vs ...int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldImpressions, vs...))
}

// ImpressionsNotIn applies the NotIn predicate on the "impressions" field.
func ImpressionsNotIn(vs ...int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldImpressions, vs...))
}

// ImpressionsGT applies the GT predicate on the "impressions" field.
func ImpressionsGT(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldImpressions, v))
}

// ImpressionsGTE applies the GTE predicate on the "impressions" field.
func ImpressionsGTE(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldImpressions, v))
}

// ImpressionsLT applies the LT predicate on the "impressions" field.
func ImpressionsLT(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldImpressions, v))
}

// ImpressionsLTE applies the LTE predicate on the "impressions" field.
func ImpressionsLTE(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldImpressions, v))
}

// ClicksEQ applies the EQ predicate on the "clicks" field.
func ClicksEQ(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldClicks, v))
}

// ClicksNEQ applies the NEQ predicate on the "clicks" field.
func ClicksNEQ(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldClicks, v))
}

// ClicksIn applies the In predicate on the "clicks" field.
func ClicksIn(vs ...int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldClicks, vs...))
}

// ClicksNotIn applies the NotIn predicate on the "clicks" field.
func ClicksNotIn(vs ...int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldClicks, vs...))
}

// ClicksGT applies the GT predicate on the "clicks" field.
func ClicksGT(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldClicks, v))
}

// ClicksGTE applies the GTE predicate on the "clicks" field.
func ClicksGTE(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldClicks, v))
}

// ClicksLT applies the LT predicate on the "clicks" field.
func ClicksLT(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldClicks, v))
}

// ClicksLTE applies the LTE predicate on the "clicks" field.
func ClicksLTE(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldClicks, v))
}

// CtrEQ applies the EQ predicate on the "ctr" field.
func CtrEQ(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldCtr, v))
}

// CtrNEQ applies the NEQ predicate on the "ctr" field.
func CtrNEQ(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldCtr, v))
}

// CtrIn applies the In predicate on the "ctr" field.
func CtrIn(vs ...float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldCtr, vs...))
}

// CtrNotIn applies the NotIn predicate on the "ctr" field.
func CtrNotIn(vs ...float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldCtr, vs...))
}

// CtrGT applies the GT predicate on the "ctr" field.
func CtrGT(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldCtr, v))
}

// CtrGTE applies the GTE predicate on the "ctr" field.
func CtrGTE(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldCtr, v))
}

// CtrLT applies the LT predicate on the "ctr" field.
func CtrLT(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldCtr, v))
}

// CtrLTE applies the LTE predicate on the "ctr" field.
func CtrLTE(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldCtr, v))
}

// AvgPositionEQ applies the EQ predicate on the "avg_position" field.
func AvgPositionEQ(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldAvgPosition, v))
}

// AvgPositionNEQ applies the NEQ predicate on the "avg_position" field.
func AvgPositionNEQ(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldAvgPosition, v))
}

// AvgPositionIn applies the In predicate on the "avg_position" field.
func AvgPositionIn(vs ...float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldAvgPosition, vs...))
}

// AvgPositionNotIn applies the NotIn predicate on the "avg_position" field.
func AvgPositionNotIn(vs ...float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldAvgPosition, vs...))
}

// AvgPositionGT applies the GT predicate on the "avg_position" field.
func AvgPositionGT(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldAvgPosition, v))
}

// AvgPositionGTE applies the GTE predicate on the "avg_position" field.
func AvgPositionGTE(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldAvgPosition, v))
}

// AvgPositionLT applies the LT predicate on the "avg_position" field.
func AvgPositionLT(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldAvgPosition, v))
}

// AvgPositionLTE applies the LTE predicate on the "avg_position" field.
func AvgPositionLTE(v float64) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldAvgPosition, v))
}

// AvgPositionIsNil applies the IsNil predicate on the "avg_position" field.
func AvgPositionIsNil() predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIsNull(FieldAvgPosition))
}

// AvgPositionNotNil applies the NotNil predicate on the "avg_position" field.
func AvgPositionNotNil() predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotNull(FieldAvgPosition))
}

// QueryCountEQ applies the EQ predicate on the "query_count" field.
func QueryCountEQ(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldQueryCount, v))
}

// QueryCountNEQ applies the NEQ predicate on the "query_count" field.
func QueryCountNEQ(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldQueryCount, v))
}

// QueryCountIn applies the In predicate on the "query_count" field.
func QueryCountIn(vs ...int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldQueryCount, vs...))
}

// QueryCountNotIn applies the NotIn predicate on the "query_count" field.
func QueryCountNotIn(vs ...int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldQueryCount, vs...))
}

// QueryCountGT applies the GT predicate on the "query_count" field.
func QueryCountGT(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldQueryCount, v))
}

// QueryCountGTE applies the GTE predicate on the "query_count" field.
func QueryCountGTE(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldQueryCount, v))
}

// QueryCountLT applies the LT predicate on the "query_count" field.
func QueryCountLT(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldQueryCount, v))
}

// QueryCountLTE applies the LTE predicate on the "query_count" field.
func QueryCountLTE(v int) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldQueryCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueryGroup {
	return predicate.QueryGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryGroup) predicate.QueryGroup {
	return predicate.QueryGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryGroup) predicate.QueryGroup {
	return predicate.QueryGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryGroup) predicate.QueryGroup {
	return predicate.QueryGroup(sql.NotPredicates(p))
}
