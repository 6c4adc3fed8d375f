package clustering

import (
	"context"
	"encoding/json"
	"fmt"

	"querylens/internal/gateway/entity"
	"querylens/internal/llmclient"
)

const (
	// DefaultBatchSize bounds how many queries go into one model request.
	DefaultBatchSize = 1000

	batchTemperature = 0.7
)

// CreateBatches splits queries into contiguous, order-preserving slices of
// at most batchSize. The final batch may be shorter; empty input yields no
// batches. batchSize must be positive.
func CreateBatches(queries []entity.Query, batchSize int) [][]entity.Query {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	var batches [][]entity.Query
	for start := 0; start < len(queries); start += batchSize {
		end := start + batchSize
		if end > len(queries) {
			end = len(queries)
		}
		batches = append(batches, queries[start:end])
	}
	return batches
}

// ProcessBatches drives one chat call per batch, strictly sequentially.
// The first failing batch aborts the rest; its error carries the 1-based
// batch index while the client's classification stays reachable through
// the wrap chain.
func ProcessBatches(ctx context.Context, batches [][]entity.Query, client llmclient.Client) ([]Proposal, error) {
	var proposals []Proposal
	temp := batchTemperature
	for i, batch := range batches {
		userPrompt, err := BuildUserPrompt(batch)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", i+1, err)
		}
		resp, err := client.Chat(ctx, llmclient.ChatRequest{
			SystemPrompt:   systemPrompt,
			UserPrompt:     userPrompt,
			ResponseFormat: clusterResponseFormat(),
			Temperature:    &temp,
		})
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", i+1, err)
		}
		var set proposalSet
		if err := json.Unmarshal([]byte(resp.Message.Content), &set); err != nil {
			return nil, fmt.Errorf("batch %d: decode cluster proposals: %w", i+1, err)
		}
		proposals = append(proposals, set.Clusters...)
	}
	return proposals, nil
}
