// Code generated by ent, DO NOT EDIT.

package ent

import (
	"querylens/internal/gateway/ent/auditlog"
	"querylens/internal/gateway/ent/groupitem"
	"querylens/internal/gateway/ent/querygroup"
	"querylens/internal/gateway/ent/schema"
	"querylens/internal/gateway/ent/searchquery"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[3].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	groupitemFields := schema.GroupItem{}.Fields()
	_ = groupitemFields
	// groupitemDescCreatedAt is the schema descriptor for created_at field.
	groupitemDescCreatedAt := groupitemFields[2].Descriptor()
	// groupitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	groupitem.DefaultCreatedAt = groupitemDescCreatedAt.Default.(func() time.Time)
	querygroupFields := schema.QueryGroup{}.Fields()
	_ = querygroupFields
	// querygroupDescUserID is the schema descriptor for user_id field.
	querygroupDescUserID := querygroupFields[2].Descriptor()
	// querygroup.DefaultUserID holds the default value on creation for the user_id field.
	querygroup.DefaultUserID = querygroupDescUserID.Default.(string)
	// querygroupDescAiGenerated is the schema descriptor for ai_generated field.
	querygroupDescAiGenerated := querygroupFields[3].Descriptor()
	// querygroup.DefaultAiGenerated holds the default value on creation for the ai_generated field.
	querygroup.DefaultAiGenerated = querygroupDescAiGenerated.Default.(bool)
	// querygroupDescImpressions is the schema descriptor for impressions field.
	querygroupDescImpressions := querygroupFields[4].Descriptor()
	// querygroup.DefaultImpressions holds the default value on creation for the impressions field.
	querygroup.DefaultImpressions = querygroupDescImpressions.Default.(int)
	// querygroupDescClicks is the schema descriptor for clicks field.
	querygroupDescClicks := querygroupFields[5].Descriptor()
	// querygroup.DefaultClicks holds the default value on creation for the clicks field.
	querygroup.DefaultClicks = querygroupDescClicks.Default.(int)
	// querygroupDescCtr is the schema descriptor for ctr field.
	querygroupDescCtr := querygroupFields[6].Descriptor()
	// querygroup.DefaultCtr holds the default value on creation for the ctr field.
	querygroup.DefaultCtr = querygroupDescCtr.Default.(float64)
	// querygroupDescQueryCount is the schema descriptor for query_count field.
	querygroupDescQueryCount := querygroupFields[8].Descriptor()
	// querygroup.DefaultQueryCount holds the default value on creation for the query_count field.
	querygroup.DefaultQueryCount = querygroupDescQueryCount.Default.(int)
	// querygroupDescCreatedAt is the schema descriptor for created_at field.
	querygroupDescCreatedAt := querygroupFields[9].Descriptor()
	// querygroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	querygroup.DefaultCreatedAt = querygroupDescCreatedAt.Default.(func() time.Time)
	searchqueryFields := schema.SearchQuery{}.Fields()
	_ = searchqueryFields
	// searchqueryDescImpressions is the schema descriptor for impressions field.
	searchqueryDescImpressions := searchqueryFields[2].Descriptor()
	// searchquery.DefaultImpressions holds the default value on creation for the impressions field.
	searchquery.DefaultImpressions = searchqueryDescImpressions.Default.(int)
	// searchqueryDescClicks is the schema descriptor for clicks field.
	searchqueryDescClicks := searchqueryFields[3].Descriptor()
	// searchquery.DefaultClicks holds the default value on creation for the clicks field.
	searchquery.DefaultClicks = searchqueryDescClicks.Default.(int)
	// searchqueryDescOpportunity is the schema descriptor for opportunity field.
	searchqueryDescOpportunity := searchqueryFields[6].Descriptor()
	// searchquery.DefaultOpportunity holds the default value on creation for the opportunity field.
	searchquery.DefaultOpportunity = searchqueryDescOpportunity.Default.(bool)
	// searchqueryDescUserID is the schema descriptor for user_id field.
	searchqueryDescUserID := searchqueryFields[7].Descriptor()
	// searchquery.DefaultUserID holds the default value on creation for the user_id field.
	searchquery.DefaultUserID = searchqueryDescUserID.Default.(string)
	// searchqueryDescCreatedAt is the schema descriptor for created_at field.
	searchqueryDescCreatedAt := searchqueryFields[8].Descriptor()
	// searchquery.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchquery.DefaultCreatedAt = searchqueryDescCreatedAt.Default.(func() time.Time)
}
