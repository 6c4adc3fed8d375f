package clustering

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querylens/internal/gateway/entity"
	"querylens/internal/llmclient"
)

func makeQueries(n int) []entity.Query {
	out := make([]entity.Query, n)
	for i := range out {
		out[i] = entity.Query{
			ID:          uuid.NewString(),
			Text:        fmt.Sprintf("query %d", i),
			Impressions: (n - i) * 10,
			Clicks:      n - i,
		}
	}
	return out
}

func TestCreateBatchesPartitionsInOrder(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		batchSize int
		wantSizes []int
	}{
		{"empty input", 0, 10, nil},
		{"single short batch", 3, 10, []int{3}},
		{"exact multiple", 20, 10, []int{10, 10}},
		{"trailing remainder", 25, 10, []int{10, 10, 5}},
		{"batch of one", 3, 1, []int{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := makeQueries(tt.total)
			batches := CreateBatches(queries, tt.batchSize)
			require.Len(t, batches, len(tt.wantSizes))

			flat := []entity.Query{}
			for i, b := range batches {
				assert.Equal(t, tt.wantSizes[i], len(b))
				assert.LessOrEqual(t, len(b), tt.batchSize)
				flat = append(flat, b...)
			}
			assert.Equal(t, queries, flat)
		})
	}
}

func TestProcessBatchesMergesProposalsAcrossBatches(t *testing.T) {
	queries := makeQueries(4)
	batches := CreateBatches(queries, 2)
	require.Len(t, batches, 2)

	fake := llmclient.NewFakeClient(
		llmclient.FakeOutcome{Content: `{"clusters":[{"name":"a","queryIds":["1"]}]}`},
		llmclient.FakeOutcome{Content: `{"clusters":[{"name":"b","queryIds":["2"]},{"name":"c","queryIds":[]}]}`},
	)
	proposals, err := ProcessBatches(context.Background(), batches, fake)
	require.NoError(t, err)
	require.Len(t, proposals, 3)
	assert.Equal(t, "a", proposals[0].Name)
	assert.Equal(t, "b", proposals[1].Name)

	calls := fake.Calls()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.NotEmpty(t, call.SystemPrompt)
		require.NotNil(t, call.ResponseFormat)
		assert.Equal(t, "json_schema", call.ResponseFormat.Type)
		require.NotNil(t, call.Temperature)
		assert.InDelta(t, 0.7, *call.Temperature, 1e-9)
	}
}

func TestProcessBatchesFailureCarriesBatchIndexAndClassification(t *testing.T) {
	queries := makeQueries(6)
	batches := CreateBatches(queries, 2)
	require.Len(t, batches, 3)

	rateLimited := &llmclient.Error{
		Kind:       llmclient.KindRateLimit,
		Retryable:  true,
		StatusCode: 429,
		Message:    "unexpected status 429",
	}
	fake := llmclient.NewFakeClient(
		llmclient.FakeOutcome{Content: `{"clusters":[]}`},
		llmclient.FakeOutcome{Err: rateLimited},
		llmclient.FakeOutcome{Content: `{"clusters":[]}`},
	)
	proposals, err := ProcessBatches(context.Background(), batches, fake)
	require.Error(t, err)
	assert.Nil(t, proposals)
	assert.Contains(t, err.Error(), "batch 2")

	cerr, ok := llmclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llmclient.KindRateLimit, cerr.Kind)
	assert.True(t, cerr.Retryable)

	// batch 3 is never attempted
	assert.Len(t, fake.Calls(), 2)
}

func TestProcessBatchesParseFailureIsFatal(t *testing.T) {
	batches := CreateBatches(makeQueries(2), 10)
	fake := llmclient.NewFakeClient(llmclient.FakeOutcome{Content: "not json"})
	_, err := ProcessBatches(context.Background(), batches, fake)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 1")
	assert.True(t, strings.Contains(err.Error(), "decode cluster proposals"))
	assert.Len(t, fake.Calls(), 1)
}
