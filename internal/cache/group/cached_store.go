// Package group caches group reads in front of the persistent group
// store.
package group

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"querylens/internal/gateway/entity"
	grouprepo "querylens/internal/gateway/repository/group"
)

type Store = grouprepo.Store

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:        2 * time.Minute,
		MaxEntries: 2048,
	}
}

// CachedStore serves GetWithMetrics from an in-memory LRU and keeps the
// cache coherent across writes. Create and AddItems leave the metrics
// snapshot stale until RecomputeMetrics runs, so both drop the entry
// instead of populating it.
type CachedStore struct {
	origin Store
	groups *expirable.LRU[string, entity.GroupWithMetrics]
}

func NewCachedStore(origin Store, cfg CacheConfig) *CachedStore {
	if cfg.TTL <= 0 || cfg.MaxEntries <= 0 {
		def := DefaultCacheConfig()
		if cfg.TTL <= 0 {
			cfg.TTL = def.TTL
		}
		if cfg.MaxEntries <= 0 {
			cfg.MaxEntries = def.MaxEntries
		}
	}
	return &CachedStore{
		origin: origin,
		groups: expirable.NewLRU[string, entity.GroupWithMetrics](cfg.MaxEntries, nil, cfg.TTL),
	}
}

func (s *CachedStore) Create(ctx context.Context, g entity.Group) (entity.Group, error) {
	created, err := s.origin.Create(ctx, g)
	if err != nil {
		return entity.Group{}, err
	}
	s.groups.Remove(created.ID)
	return created, nil
}

func (s *CachedStore) AddItems(ctx context.Context, groupID string, queryIDs []string) error {
	if err := s.origin.AddItems(ctx, groupID, queryIDs); err != nil {
		return err
	}
	s.groups.Remove(groupID)
	return nil
}

func (s *CachedStore) RecomputeMetrics(ctx context.Context, groupID string) error {
	if err := s.origin.RecomputeMetrics(ctx, groupID); err != nil {
		return err
	}
	s.groups.Remove(groupID)
	return nil
}

func (s *CachedStore) GetWithMetrics(ctx context.Context, groupID string) (entity.GroupWithMetrics, error) {
	if g, ok := s.groups.Get(groupID); ok {
		return g, nil
	}
	g, err := s.origin.GetWithMetrics(ctx, groupID)
	if err != nil {
		return entity.GroupWithMetrics{}, err
	}
	s.groups.Add(groupID, g)
	return g, nil
}
