// Code generated by ent, DO NOT EDIT.

package searchquery

import (
	"querylens/internal/gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldID, id))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldText, v))
}

// Impressions applies equality check predicate on the "impressions" field. It's identical to ImpressionsEQ.
func Impressions(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldImpressions, v))
}

// Clicks applies equality check predicate on the "clicks" field. It's identical to ClicksEQ.
func Clicks(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldClicks, v))
}

// Ctr applies equality check predicate on the "ctr" field. It's identical to CtrEQ.
func Ctr(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldCtr, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldPosition, v))
}

// Opportunity applies equality check predicate on the "opportunity" field. It's identical to OpportunityEQ.
func Opportunity(v bool) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldOpportunity, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldText, v))
}

// ImpressionsEQ applies the EQ predicate on the "impressions" field.
func ImpressionsEQ(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldImpressions, v))
}

// ImpressionsNEQ applies the NEQ predicate on the "impressions" field.
func ImpressionsNEQ(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldImpressions, v))
}

// ImpressionsIn applies the In predicate on the "impressions" field.
func ImpressionsIn(vs ...int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldImpressions, vs...))
}

// ImpressionsNotIn applies the NotIn predicate on the "impressions" field.
func ImpressionsNotIn(vs ...int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldImpressions, vs...))
}

// ImpressionsGT applies the GT predicate on the "impressions" field.
func ImpressionsGT(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldImpressions, v))
}

// ImpressionsGTE applies the GTE predicate on the "impressions" field.
func ImpressionsGTE(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldImpressions, v))
}

// ImpressionsLT applies the LT predicate on the "impressions" field.
func ImpressionsLT(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldImpressions, v))
}

// ImpressionsLTE applies the LTE predicate on the "impressions" field.
func ImpressionsLTE(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldImpressions, v))
}

// ClicksEQ applies the EQ predicate on the "clicks" field.
func ClicksEQ(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldClicks, v))
}

// ClicksNEQ applies the NEQ predicate on the "clicks" field.
func ClicksNEQ(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldClicks, v))
}

// ClicksIn applies the In predicate on the "clicks" field.
func ClicksIn(vs ...int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldClicks, vs...))
}

// ClicksNotIn applies the NotIn predicate on the "clicks" field.
func ClicksNotIn(vs ...int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldClicks, vs...))
}

// ClicksGT applies the GT predicate on the "clicks" field.
func ClicksGT(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldClicks, v))
}

// ClicksGTE applies the GTE predicate on the "clicks" field.
func ClicksGTE(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldClicks, v))
}

// ClicksLT applies the LT predicate on the "clicks" field.
func ClicksLT(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldClicks, v))
}

// ClicksLTE applies the LTE predicate on the "clicks" field.
func ClicksLTE(v int) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldClicks, v))
}

// CtrEQ applies the EQ predicate on the "ctr" field.
func CtrEQ(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldCtr, v))
}

// CtrNEQ applies the NEQ predicate on the "ctr" field.
func CtrNEQ(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldCtr, v))
}

// CtrIn applies the In predicate on the "ctr" field.
func CtrIn(vs ...float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldCtr, vs...))
}

// CtrNotIn applies the NotIn predicate on the "ctr" field.
func CtrNotIn(vs ...float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldCtr, vs...))
}

// CtrGT applies the GT predicate on the "ctr" field.
func CtrGT(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldCtr, v))
}

// CtrGTE applies the GTE predicate on the "ctr" field.
func CtrGTE(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldCtr, v))
}

// CtrLT applies the LT predicate on the "ctr" field.
func CtrLT(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldCtr, v))
}

// CtrLTE applies the LTE predicate on the "ctr" field.
func CtrLTE(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldCtr, v))
}

// CtrIsNil applies the IsNil predicate on the "ctr" field.
func CtrIsNil() predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIsNull(FieldCtr))
}

// CtrNotNil applies the NotNil predicate on the "ctr" field.
func CtrNotNil() predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotNull(FieldCtr))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v float64) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldPosition, v))
}

// PositionIsNil applies the IsNil predicate on the "position" field.
func PositionIsNil() predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIsNull(FieldPosition))
}

// PositionNotNil applies the NotNil predicate on the "position" field.
func PositionNotNil() predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotNull(FieldPosition))
}

// OpportunityEQ applies the EQ predicate on the "opportunity" field.
func OpportunityEQ(v bool) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldOpportunity, v))
}

// OpportunityNEQ applies the NEQ predicate on the "opportunity" field.
func OpportunityNEQ(v bool) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldOpportunity, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SearchQuery {
	return predicate.SearchQuery(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchQuery) predicate.SearchQuery {
	return predicate.SearchQuery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchQuery) predicate.SearchQuery {
	return predicate.SearchQuery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchQuery) predicate.SearchQuery {
	return predicate.SearchQuery(sql.NotPredicates(p))
}
