// Package group provides the persistence store for query groups and
// their items.
package group

import (
	"context"
	"errors"

	"querylens/internal/gateway/entity"
)

// Store persists groups, their items, and the derived metrics snapshot.
type Store interface {
	Create(ctx context.Context, group entity.Group) (entity.Group, error)
	AddItems(ctx context.Context, groupID string, queryIDs []string) error
	// RecomputeMetrics derives and persists the group's metrics snapshot
	// from its current items.
	RecomputeMetrics(ctx context.Context, groupID string) error
	GetWithMetrics(ctx context.Context, groupID string) (entity.GroupWithMetrics, error)
}

var ErrNotFound = errors.New("group not found")
