package clustering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPromptSections(t *testing.T) {
	batch := makeQueries(2)
	prompt, err := BuildUserPrompt(batch)
	require.NoError(t, err)

	assert.Contains(t, prompt, "[TASK]")
	assert.Contains(t, prompt, "[INPUT]")
	assert.Contains(t, prompt, "[RULES]")
	assert.Contains(t, prompt, "[OUTPUT_FORMAT]")
	for _, q := range batch {
		assert.Contains(t, prompt, q.ID)
		assert.Contains(t, prompt, q.Text)
	}
}

func TestBuildUserPromptRejectsEmptyBatch(t *testing.T) {
	_, err := BuildUserPrompt(nil)
	require.Error(t, err)
}

func TestClusterResponseFormatIsStrict(t *testing.T) {
	rf := clusterResponseFormat()
	assert.Equal(t, "json_schema", rf.Type)
	require.NotNil(t, rf.JSONSchema)
	assert.True(t, rf.JSONSchema.Strict)
	assert.Equal(t, "query_clusters", rf.JSONSchema.Name)
}

func TestAggregateMetricsZeroImpressions(t *testing.T) {
	m := AggregateMetrics(makeQueries(0))
	assert.Zero(t, m.Impressions)
	assert.Zero(t, m.CTR)
	assert.Nil(t, m.AvgPosition)
}
