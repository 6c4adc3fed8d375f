package clustering

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"querylens/internal/gateway/entity"
	"querylens/internal/llmclient"
)

// systemPrompt is the fixed instruction sent with every batch.
const systemPrompt = `You are an SEO analyst. You group search queries into semantic clusters.
Queries in one cluster share a common search intent or topic. Use short,
descriptive cluster names in the language of the queries. Every cluster must
reference queries strictly by the ids given in the input; never invent ids.
Only cluster queries that genuinely belong together; leave outliers out.`

type promptQuery struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
}

type promptConstraints struct {
	MinClusterSize int `json:"minClusterSize"`
}

// BuildUserPrompt renders the per-batch user payload: a sectioned text
// document carrying the queries and clustering constraints as JSON.
func BuildUserPrompt(batch []entity.Query) (string, error) {
	if len(batch) == 0 {
		return "", fmt.Errorf("clustering: batch is empty")
	}
	queries := make([]promptQuery, 0, len(batch))
	for _, q := range batch {
		queries = append(queries, promptQuery{
			ID:          q.ID,
			Text:        q.Text,
			Impressions: q.Impressions,
			Clicks:      q.Clicks,
		})
	}
	input, err := json.MarshalIndent(struct {
		Queries     []promptQuery     `json:"queries"`
		Constraints promptConstraints `json:"constraints"`
	}{queries, promptConstraints{MinClusterSize: MinClusterSize}}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("clustering: encode prompt input: %w", err)
	}

	var buf bytes.Buffer
	writeSection(&buf, "TASK", "Group the search queries below into semantic clusters.")
	writeSection(&buf, "INPUT", string(input))
	writeSection(&buf, "RULES", strings.Join([]string{
		"- Reference queries only by their ids from INPUT.",
		fmt.Sprintf("- A cluster needs at least %d queries.", MinClusterSize),
		"- A query may appear in at most one cluster.",
	}, "\n"))
	writeSection(&buf, "OUTPUT_FORMAT", `JSON object: {"clusters": [{"name": string, "queryIds": [string]}]}`)
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}

// clusterResponseFormat is the strict JSON-schema contract for the model
// output of one batch.
func clusterResponseFormat() *llmclient.ResponseFormat {
	return &llmclient.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &llmclient.JSONSchemaSpec{
			Name:   "query_clusters",
			Strict: true,
			Schema: map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"clusters"},
				"properties": map[string]any{
					"clusters": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"additionalProperties": false,
							"required":             []string{"name", "queryIds"},
							"properties": map[string]any{
								"name": map[string]any{"type": "string"},
								"queryIds": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	}
}
