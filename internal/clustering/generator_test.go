package clustering

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querylens/internal/gateway/entity"
	"querylens/internal/llmclient"
)

type stubQuerySource struct {
	queries []entity.Query
	lists   []int // offsets seen
	err     error
}

func (s *stubQuerySource) List(_ context.Context, _ entity.UserID, offset, limit int) ([]entity.Query, error) {
	s.lists = append(s.lists, offset)
	if s.err != nil {
		return nil, s.err
	}
	if offset >= len(s.queries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.queries) {
		end = len(s.queries)
	}
	return s.queries[offset:end], nil
}

type stubAudit struct {
	actions []string
	details []map[string]any
	err     error
}

func (s *stubAudit) Record(_ context.Context, _ entity.UserID, action string, details map[string]any) error {
	if s.err != nil {
		return s.err
	}
	s.actions = append(s.actions, action)
	s.details = append(s.details, details)
	return nil
}

type stubReports struct {
	puts map[string][]byte
	err  error
}

func (s *stubReports) Put(_ context.Context, runID string, content []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.puts == nil {
		s.puts = map[string][]byte{}
	}
	s.puts[runID] = content
	return nil
}

func proposalsJSON(t *testing.T, proposals ...Proposal) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{"clusters": proposals})
	require.NoError(t, err)
	return string(b)
}

func TestGenerateEmptySourceReturnsEmptyWithoutClientCall(t *testing.T) {
	fake := llmclient.NewFakeClient()
	gen := NewGenerator(&stubQuerySource{}, fake, nil, nil, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, fake.Calls())
}

func TestGenerateResolvesAndAggregates(t *testing.T) {
	pos1, pos2 := 3.0, 5.0
	queries := []entity.Query{
		{ID: uuid.NewString(), Text: "buy shoes", Impressions: 100, Clicks: 10, Position: &pos1},
		{ID: uuid.NewString(), Text: "cheap shoes", Impressions: 50, Clicks: 5, Position: &pos2},
		{ID: uuid.NewString(), Text: "shoes online", Impressions: 50, Clicks: 0},
	}
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{
		Content: proposalsJSON(t, Proposal{
			Name:     "shoes",
			QueryIDs: []string{queries[0].ID, queries[1].ID, queries[2].ID},
		}),
	})
	audit := &stubAudit{}
	reports := &stubReports{}
	gen := NewGenerator(&stubQuerySource{queries: queries}, fake, audit, reports, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "shoes", s.Name)
	assert.Equal(t, 3, s.QueryCount)
	assert.Equal(t, 200, s.Metrics.Impressions)
	assert.Equal(t, 15, s.Metrics.Clicks)
	assert.InDelta(t, 0.075, s.Metrics.CTR, 1e-9)
	require.NotNil(t, s.Metrics.AvgPosition)
	assert.InDelta(t, 4.0, *s.Metrics.AvgPosition, 1e-9)

	require.Len(t, audit.actions, 1)
	assert.Equal(t, "clusters_generated", audit.actions[0])
	assert.Equal(t, 1, audit.details[0]["clusterCount"])
	assert.Len(t, reports.puts, 1)
}

func TestGenerateExcludesUnknownAndMalformedIDs(t *testing.T) {
	queries := []entity.Query{
		{ID: uuid.NewString(), Text: "a", Impressions: 1},
		{ID: uuid.NewString(), Text: "b", Impressions: 1},
		{ID: uuid.NewString(), Text: "c", Impressions: 1},
	}
	hallucinated := uuid.NewString() // valid shape, unknown query
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{
		Content: proposalsJSON(t, Proposal{
			Name:     "mixed",
			QueryIDs: []string{queries[0].ID, "garbage-id", hallucinated, queries[1].ID, queries[2].ID},
		}),
	})
	gen := NewGenerator(&stubQuerySource{queries: queries}, fake, nil, nil, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].QueryCount)
	for _, q := range got[0].Queries {
		assert.NotEqual(t, hallucinated, q.ID)
	}
}

func TestGenerateDropsUndersizedClusters(t *testing.T) {
	queries := []entity.Query{
		{ID: uuid.NewString(), Text: "a", Impressions: 1},
		{ID: uuid.NewString(), Text: "b", Impressions: 1},
		{ID: uuid.NewString(), Text: "c", Impressions: 1},
	}
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{
		Content: proposalsJSON(t,
			Proposal{Name: "too small", QueryIDs: []string{queries[0].ID, queries[1].ID}},
			Proposal{Name: "big enough", QueryIDs: []string{queries[0].ID, queries[1].ID, queries[2].ID}},
		),
	})
	gen := NewGenerator(&stubQuerySource{queries: queries}, fake, nil, nil, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "big enough", got[0].Name)
}

func TestGenerateSkipsClustersWithInvalidNames(t *testing.T) {
	queries := []entity.Query{
		{ID: uuid.NewString(), Text: "a", Impressions: 1},
		{ID: uuid.NewString(), Text: "b", Impressions: 1},
		{ID: uuid.NewString(), Text: "c", Impressions: 1},
	}
	all := []string{queries[0].ID, queries[1].ID, queries[2].ID}
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{
		Content: proposalsJSON(t,
			Proposal{Name: "   ", QueryIDs: all},
			Proposal{Name: "kept", QueryIDs: all},
		),
	})
	gen := NewGenerator(&stubQuerySource{queries: queries}, fake, nil, nil, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Name)
}

func TestGenerateClientFailureAbortsRun(t *testing.T) {
	queries := makeQueries(3)
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{
		Err: &llmclient.Error{Kind: llmclient.KindServer, Retryable: true, Message: "boom"},
	})
	audit := &stubAudit{}
	gen := NewGenerator(&stubQuerySource{queries: queries}, fake, audit, nil, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.Error(t, err)
	assert.Nil(t, got)
	cerr, ok := llmclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llmclient.KindServer, cerr.Kind)
	assert.Empty(t, audit.actions)
}

func TestGenerateAuditFailureDoesNotFailRun(t *testing.T) {
	queries := makeQueries(3)
	ids := []string{queries[0].ID, queries[1].ID, queries[2].ID}
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{
		Content: proposalsJSON(t, Proposal{Name: "ok", QueryIDs: ids}),
	})
	audit := &stubAudit{err: errors.New("audit store down")}
	reports := &stubReports{err: errors.New("bucket down")}
	gen := NewGenerator(&stubQuerySource{queries: queries}, fake, audit, reports, nil)

	got, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGenerateCapsWorkingSet(t *testing.T) {
	queries := makeQueries(FetchCap + 100)
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{Content: `{"clusters":[]}`})
	src := &stubQuerySource{queries: queries}
	gen := NewGenerator(src, fake, nil, nil, nil)

	_, err := gen.Generate(context.Background(), "user-1")
	require.NoError(t, err)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	prompt := calls[0].UserPrompt
	assert.Contains(t, prompt, queries[0].ID)
	assert.Contains(t, prompt, queries[FetchCap-1].ID)
	assert.NotContains(t, prompt, queries[FetchCap].ID)
	assert.Equal(t, []int{0}, src.lists, "a short first chunk must stop pagination")
}

func TestGenerateSourceErrorPropagates(t *testing.T) {
	fake := llmclient.NewFakeClient()
	gen := NewGenerator(&stubQuerySource{err: fmt.Errorf("db down")}, fake, nil, nil, nil)
	_, err := gen.Generate(context.Background(), "user-1")
	require.Error(t, err)
	assert.Empty(t, fake.Calls())
}
