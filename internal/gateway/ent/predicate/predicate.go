// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// GroupItem is the predicate function for groupitem builders.
type GroupItem func(*sql.Selector)

// QueryGroup is the predicate function for querygroup builders.
type QueryGroup func(*sql.Selector)

// SearchQuery is the predicate function for searchquery builders.
type SearchQuery func(*sql.Selector)
