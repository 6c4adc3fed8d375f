// Package clustering implements the AI cluster-generation pipeline: it
// fetches a bounded working set of queries, batches them against a
// chat-completion client under a strict JSON-schema contract, reconciles
// the model output against the known query set, and turns user-confirmed
// suggestions into persisted groups.
package clustering

import "querylens/internal/gateway/entity"

// Proposal is a raw cluster as returned by the model for one batch.
// Query identifiers are unvalidated at this point.
type Proposal struct {
	Name     string   `json:"name"`
	QueryIDs []string `json:"queryIds"`
}

type proposalSet struct {
	Clusters []Proposal `json:"clusters"`
}

// Metrics aggregates the search performance of a set of queries.
type Metrics struct {
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	CTR         float64  `json:"ctr"`
	AvgPosition *float64 `json:"avgPosition"`
}

// Suggestion is an ephemeral cluster proposal with its queries resolved
// against the fetched set. It is never persisted; it lives only in the
// HTTP response until the user acts on it.
type Suggestion struct {
	Name       string         `json:"name"`
	Queries    []entity.Query `json:"queries"`
	QueryCount int            `json:"queryCount"`
	Metrics    Metrics        `json:"metrics"`
}

// AcceptedCluster is a user-confirmed (possibly edited) suggestion
// submitted for persistence.
type AcceptedCluster struct {
	Name     string   `json:"name"`
	QueryIDs []string `json:"queryIds"`
}
