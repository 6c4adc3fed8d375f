package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querylens/internal/gateway/entity"
)

func TestMemoryStore_CreateAddRecomputeRead(t *testing.T) {
	pos1, pos2 := 2.0, 4.0
	queries := map[string]entity.Query{
		"q1": {ID: "q1", Impressions: 100, Clicks: 10, Position: &pos1},
		"q2": {ID: "q2", Impressions: 300, Clicks: 30, Position: &pos2},
	}
	store := NewMemoryStore()
	store.Resolve = func(id string) (entity.Query, bool) {
		q, ok := queries[id]
		return q, ok
	}
	ctx := context.Background()

	created, err := store.Create(ctx, entity.Group{ID: "g1", Name: "brand", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "g1", created.ID)

	require.NoError(t, store.AddItems(ctx, "g1", []string{"q1", "q2"}))
	require.NoError(t, store.RecomputeMetrics(ctx, "g1"))

	got, err := store.GetWithMetrics(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 400, got.Metrics.Impressions)
	assert.Equal(t, 40, got.Metrics.Clicks)
	assert.InDelta(t, 0.1, got.Metrics.CTR, 1e-9)
	require.NotNil(t, got.Metrics.AvgPosition)
	assert.InDelta(t, 3.0, *got.Metrics.AvgPosition, 1e-9)
	assert.Equal(t, 2, got.Metrics.QueryCount)
}

func TestMemoryStore_UnresolvableItemsCountTowardSize(t *testing.T) {
	store := NewMemoryStore()
	store.Resolve = func(string) (entity.Query, bool) { return entity.Query{}, false }
	ctx := context.Background()

	_, err := store.Create(ctx, entity.Group{ID: "g1", Name: "brand"})
	require.NoError(t, err)
	require.NoError(t, store.AddItems(ctx, "g1", []string{"q1", "q2"}))
	require.NoError(t, store.RecomputeMetrics(ctx, "g1"))

	got, err := store.GetWithMetrics(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Metrics.Impressions)
	assert.Equal(t, 2, got.Metrics.QueryCount)
}

func TestMemoryStore_DuplicateCreateFails(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, entity.Group{ID: "g1", Name: "brand"})
	require.NoError(t, err)
	_, err = store.Create(ctx, entity.Group{ID: "g1", Name: "brand"})
	assert.Error(t, err)
}

func TestMemoryStore_UnknownGroup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.AddItems(ctx, "missing", []string{"q1"}), ErrNotFound)
	assert.ErrorIs(t, store.RecomputeMetrics(ctx, "missing"), ErrNotFound)
	_, err := store.GetWithMetrics(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
