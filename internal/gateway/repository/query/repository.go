// Package query provides the read-side store for search-performance
// records consumed by clustering runs.
package query

import (
	"context"

	"querylens/internal/gateway/entity"
)

// Store reads bounded, ordered slices of a user's queries, ordered by
// impressions descending then recency descending.
type Store interface {
	List(ctx context.Context, userID entity.UserID, offset, limit int) ([]entity.Query, error)
}
