package group

import (
	"context"
	"testing"
	"time"

	"querylens/internal/gateway/entity"
)

type fakeGroupOrigin struct {
	getCalls  int
	recompute int
	groups    map[string]entity.GroupWithMetrics
}

func newFakeGroupOrigin() *fakeGroupOrigin {
	return &fakeGroupOrigin{groups: make(map[string]entity.GroupWithMetrics)}
}

func (f *fakeGroupOrigin) Create(_ context.Context, g entity.Group) (entity.Group, error) {
	f.groups[g.ID] = entity.GroupWithMetrics{Group: g}
	return g, nil
}

func (f *fakeGroupOrigin) AddItems(_ context.Context, groupID string, queryIDs []string) error {
	g := f.groups[groupID]
	g.Metrics.QueryCount += len(queryIDs)
	f.groups[groupID] = g
	return nil
}

func (f *fakeGroupOrigin) RecomputeMetrics(_ context.Context, groupID string) error {
	f.recompute++
	g := f.groups[groupID]
	g.Metrics.Impressions = 100 * f.recompute
	f.groups[groupID] = g
	return nil
}

func (f *fakeGroupOrigin) GetWithMetrics(_ context.Context, groupID string) (entity.GroupWithMetrics, error) {
	f.getCalls++
	return f.groups[groupID], nil
}

func TestCachedStore_ReadThrough(t *testing.T) {
	origin := newFakeGroupOrigin()
	store := NewCachedStore(origin, CacheConfig{TTL: time.Minute, MaxEntries: 8})
	ctx := context.Background()

	if _, err := store.Create(ctx, entity.Group{ID: "g1", Name: "brand"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	g1, err := store.GetWithMetrics(ctx, "g1")
	if err != nil {
		t.Fatalf("get1 failed: %v", err)
	}
	g2, err := store.GetWithMetrics(ctx, "g1")
	if err != nil {
		t.Fatalf("get2 failed: %v", err)
	}
	if g1.Name != "brand" || g2.Name != "brand" {
		t.Fatalf("unexpected groups: %+v %+v", g1, g2)
	}
	if origin.getCalls != 1 {
		t.Fatalf("expected one origin get, got %d", origin.getCalls)
	}
}

func TestCachedStore_WriteInvalidates(t *testing.T) {
	origin := newFakeGroupOrigin()
	store := NewCachedStore(origin, CacheConfig{TTL: time.Minute, MaxEntries: 8})
	ctx := context.Background()

	if _, err := store.Create(ctx, entity.Group{ID: "g1", Name: "brand"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.GetWithMetrics(ctx, "g1"); err != nil {
		t.Fatalf("warm get failed: %v", err)
	}

	if err := store.RecomputeMetrics(ctx, "g1"); err != nil {
		t.Fatalf("recompute failed: %v", err)
	}
	g, err := store.GetWithMetrics(ctx, "g1")
	if err != nil {
		t.Fatalf("get after recompute failed: %v", err)
	}
	if g.Metrics.Impressions != 100 {
		t.Fatalf("expected fresh metrics after recompute, got %d", g.Metrics.Impressions)
	}
	if origin.getCalls != 2 {
		t.Fatalf("expected cache invalidation to hit origin, got %d gets", origin.getCalls)
	}

	if err := store.AddItems(ctx, "g1", []string{"q1"}); err != nil {
		t.Fatalf("add items failed: %v", err)
	}
	g, err = store.GetWithMetrics(ctx, "g1")
	if err != nil {
		t.Fatalf("get after add failed: %v", err)
	}
	if g.Metrics.QueryCount != 1 {
		t.Fatalf("expected item count to be visible after add, got %d", g.Metrics.QueryCount)
	}
}
