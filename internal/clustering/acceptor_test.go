package clustering

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querylens/internal/gateway/entity"
)

type stubGroupStore struct {
	groups    []entity.Group
	items     map[string][]string
	metrics   map[string]entity.GroupMetrics
	failAfter int // fail Create once this many groups exist; 0 disables
	queryData map[string]entity.Query
}

func newStubGroupStore() *stubGroupStore {
	return &stubGroupStore{
		items:     map[string][]string{},
		metrics:   map[string]entity.GroupMetrics{},
		queryData: map[string]entity.Query{},
	}
}

func (s *stubGroupStore) Create(_ context.Context, g entity.Group) (entity.Group, error) {
	if s.failAfter > 0 && len(s.groups) >= s.failAfter {
		return entity.Group{}, errors.New("store unavailable")
	}
	s.groups = append(s.groups, g)
	return g, nil
}

func (s *stubGroupStore) AddItems(_ context.Context, groupID string, queryIDs []string) error {
	s.items[groupID] = append(s.items[groupID], queryIDs...)
	return nil
}

func (s *stubGroupStore) RecomputeMetrics(_ context.Context, groupID string) error {
	var resolved []entity.Query
	for _, id := range s.items[groupID] {
		if q, ok := s.queryData[id]; ok {
			resolved = append(resolved, q)
		}
	}
	m := entity.AggregateQueryMetrics(resolved)
	m.QueryCount = len(s.items[groupID])
	s.metrics[groupID] = m
	return nil
}

func (s *stubGroupStore) GetWithMetrics(_ context.Context, groupID string) (entity.GroupWithMetrics, error) {
	for _, g := range s.groups {
		if g.ID == groupID {
			return entity.GroupWithMetrics{Group: g, Metrics: s.metrics[groupID]}, nil
		}
	}
	return entity.GroupWithMetrics{}, errors.New("group not found")
}

func TestAcceptRejectsMalformedBatchesBeforeWrites(t *testing.T) {
	store := newStubGroupStore()
	acc := NewAcceptor(store, nil, nil)

	tests := []struct {
		name     string
		clusters []AcceptedCluster
	}{
		{"empty batch", nil},
		{"blank name", []AcceptedCluster{{Name: "  ", QueryIDs: []string{uuid.NewString()}}}},
		{"no query ids", []AcceptedCluster{{Name: "ok", QueryIDs: nil}}},
		{"second cluster malformed", []AcceptedCluster{
			{Name: "ok", QueryIDs: []string{uuid.NewString()}},
			{Name: "", QueryIDs: []string{uuid.NewString()}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := acc.Accept(context.Background(), "user-1", tt.clusters)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAcceptInput)
			assert.Empty(t, store.groups, "no group may be written for a malformed batch")
		})
	}
}

func TestAcceptCreatesOneGroupPerCluster(t *testing.T) {
	store := newStubGroupStore()
	q1, q2, q3 := uuid.NewString(), uuid.NewString(), uuid.NewString()
	store.queryData[q1] = entity.Query{ID: q1, Impressions: 100, Clicks: 10}
	store.queryData[q2] = entity.Query{ID: q2, Impressions: 50, Clicks: 5}
	store.queryData[q3] = entity.Query{ID: q3, Impressions: 30, Clicks: 3}

	audit := &stubAudit{}
	acc := NewAcceptor(store, audit, nil)

	got, err := acc.Accept(context.Background(), "user-1", []AcceptedCluster{
		{Name: " shoes ", QueryIDs: []string{q1, q2}},
		{Name: "bags", QueryIDs: []string{q3}},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "shoes", got[0].Name)
	assert.True(t, got[0].AIGenerated)
	assert.Equal(t, entity.UserID("user-1"), got[0].UserID)
	assert.Equal(t, 150, got[0].Metrics.Impressions)
	assert.Equal(t, 15, got[0].Metrics.Clicks)
	assert.InDelta(t, 0.1, got[0].Metrics.CTR, 1e-9)
	assert.Equal(t, 2, got[0].Metrics.QueryCount)

	assert.Equal(t, "bags", got[1].Name)
	assert.Equal(t, 1, got[1].Metrics.QueryCount)

	require.Len(t, audit.actions, 1)
	assert.Equal(t, "clusters_accepted", audit.actions[0])
	ids, ok := audit.details[0]["groupIds"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, ids, []string{got[0].ID, got[1].ID})
}

func TestAcceptIsNotIdempotent(t *testing.T) {
	store := newStubGroupStore()
	acc := NewAcceptor(store, nil, nil)
	batch := []AcceptedCluster{{Name: "repeat", QueryIDs: []string{uuid.NewString()}}}

	first, err := acc.Accept(context.Background(), "user-1", batch)
	require.NoError(t, err)
	second, err := acc.Accept(context.Background(), "user-1", batch)
	require.NoError(t, err)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Len(t, store.groups, 2)
}

func TestAcceptAbortsOnFirstPersistenceFailure(t *testing.T) {
	store := newStubGroupStore()
	store.failAfter = 1
	audit := &stubAudit{}
	acc := NewAcceptor(store, audit, nil)

	_, err := acc.Accept(context.Background(), "user-1", []AcceptedCluster{
		{Name: "first", QueryIDs: []string{uuid.NewString()}},
		{Name: "second", QueryIDs: []string{uuid.NewString()}},
		{Name: "third", QueryIDs: []string{uuid.NewString()}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster 2")
	assert.NotErrorIs(t, err, ErrInvalidAcceptInput)

	// the sequential write already persisted the first group
	assert.Len(t, store.groups, 1)
	assert.Empty(t, audit.actions)
}
