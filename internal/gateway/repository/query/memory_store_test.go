package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querylens/internal/gateway/entity"
)

func TestMemoryStore_ListOrdersByImpressionsThenRecency(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.Put(
		entity.Query{ID: "a", UserID: "u1", Impressions: 10, CreatedAt: now.Add(-time.Hour)},
		entity.Query{ID: "b", UserID: "u1", Impressions: 50, CreatedAt: now.Add(-2 * time.Hour)},
		entity.Query{ID: "c", UserID: "u1", Impressions: 50, CreatedAt: now},
		entity.Query{ID: "d", UserID: "u2", Impressions: 99, CreatedAt: now},
	)

	got, err := store.List(context.Background(), "u1", 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestMemoryStore_ListPagination(t *testing.T) {
	store := NewMemoryStore()
	store.Put(
		entity.Query{ID: "a", UserID: "u1", Impressions: 3},
		entity.Query{ID: "b", UserID: "u1", Impressions: 2},
		entity.Query{ID: "c", UserID: "u1", Impressions: 1},
	)

	got, err := store.List(context.Background(), "u1", 1, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got, err = store.List(context.Background(), "u1", 5, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_PutReplacesByID(t *testing.T) {
	store := NewMemoryStore()
	store.Put(entity.Query{ID: "a", UserID: "u1", Impressions: 1})
	store.Put(entity.Query{ID: "a", UserID: "u1", Impressions: 7})

	q, ok := store.Find("a")
	require.True(t, ok)
	assert.Equal(t, 7, q.Impressions)

	got, err := store.List(context.Background(), "u1", 0, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
