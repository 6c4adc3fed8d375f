// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[2]},
			},
		},
	}
	// GroupItemsColumns holds the columns for the "group_items" table.
	GroupItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "query_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GroupItemsTable holds the schema information for the "group_items" table.
	GroupItemsTable = &schema.Table{
		Name:       "group_items",
		Columns:    GroupItemsColumns,
		PrimaryKey: []*schema.Column{GroupItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "groupitem_group_id",
				Unique:  false,
				Columns: []*schema.Column{GroupItemsColumns[1]},
			},
		},
	}
	// QueryGroupsColumns holds the columns for the "query_groups" table.
	QueryGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "ai_generated", Type: field.TypeBool, Default: false},
		{Name: "impressions", Type: field.TypeInt, Default: 0},
		{Name: "clicks", Type: field.TypeInt, Default: 0},
		{Name: "ctr", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_position", Type: field.TypeFloat64, Nullable: true},
		{Name: "query_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueryGroupsTable holds the schema information for the "query_groups" table.
	QueryGroupsTable = &schema.Table{
		Name:       "query_groups",
		Columns:    QueryGroupsColumns,
		PrimaryKey: []*schema.Column{QueryGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "querygroup_user_id",
				Unique:  false,
				Columns: []*schema.Column{QueryGroupsColumns[2]},
			},
		},
	}
	// SearchQueriesColumns holds the columns for the "search_queries" table.
	SearchQueriesColumns = []*schema.Column{
		{Name: "query_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString},
		{Name: "impressions", Type: field.TypeInt, Default: 0},
		{Name: "clicks", Type: field.TypeInt, Default: 0},
		{Name: "ctr", Type: field.TypeFloat64, Nullable: true},
		{Name: "position", Type: field.TypeFloat64, Nullable: true},
		{Name: "opportunity", Type: field.TypeBool, Default: false},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SearchQueriesTable holds the schema information for the "search_queries" table.
	SearchQueriesTable = &schema.Table{
		Name:       "search_queries",
		Columns:    SearchQueriesColumns,
		PrimaryKey: []*schema.Column{SearchQueriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "searchquery_user_id_impressions",
				Unique:  false,
				Columns: []*schema.Column{SearchQueriesColumns[7], SearchQueriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		GroupItemsTable,
		QueryGroupsTable,
		SearchQueriesTable,
	}
)

func init() {
}
