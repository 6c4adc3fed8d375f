package clustering

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"querylens/internal/gateway/entity"
	"querylens/internal/llmclient"
)

const (
	// FetchCap bounds the working set of one clustering run.
	FetchCap = 500
	// MinClusterSize is the smallest cluster worth suggesting.
	MinClusterSize = 3

	fetchChunkSize = 1000
)

// QuerySource reads a bounded, ordered slice of search-performance records.
// Results are ordered by impressions descending, then recency descending.
type QuerySource interface {
	List(ctx context.Context, userID entity.UserID, offset, limit int) ([]entity.Query, error)
}

// AuditRecorder records best-effort audit actions. Failures never fail the
// operation being audited.
type AuditRecorder interface {
	Record(ctx context.Context, userID entity.UserID, action string, details map[string]any) error
}

// RunReportStore persists a per-run summary object, best effort.
type RunReportStore interface {
	Put(ctx context.Context, runID string, content []byte) error
}

// Generator orchestrates one clustering run for one user.
type Generator struct {
	queries QuerySource
	client  llmclient.Client
	audit   AuditRecorder
	reports RunReportStore
	log     *zap.Logger
}

// NewGenerator wires a generator. audit and reports may be nil; a nil
// logger falls back to a no-op.
func NewGenerator(queries QuerySource, client llmclient.Client, audit AuditRecorder, reports RunReportStore, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{queries: queries, client: client, audit: audit, reports: reports, log: log}
}

// Generate runs the full pipeline: fetch, batch, reconcile, aggregate.
// Client failures abort the run with no partial suggestions; locally
// recoverable validation problems are skipped and logged.
func (g *Generator) Generate(ctx context.Context, userID entity.UserID) ([]Suggestion, error) {
	queries, err := g.fetchWorkingSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(queries) == 0 {
		return []Suggestion{}, nil
	}

	batches := CreateBatches(queries, DefaultBatchSize)
	proposals, err := ProcessBatches(ctx, batches, g.client)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entity.Query, len(queries))
	for _, q := range queries {
		byID[q.ID] = q
	}

	suggestions := make([]Suggestion, 0, len(proposals))
	for _, p := range proposals {
		if !ValidClusterName(p.Name) {
			g.log.Warn("skipping cluster with invalid name",
				zap.String("user_id", userID.String()))
			continue
		}
		validIDs, invalid := ValidateQueryIDs(p.QueryIDs)
		if invalid > 0 {
			g.log.Warn("cluster references malformed query ids",
				zap.String("cluster", p.Name),
				zap.Int("invalid", invalid))
		}
		resolved := make([]entity.Query, 0, len(validIDs))
		unknown := 0
		for _, id := range validIDs {
			q, ok := byID[id]
			if !ok {
				unknown++
				continue
			}
			resolved = append(resolved, q)
		}
		if unknown > 0 {
			g.log.Warn("cluster references unknown query ids",
				zap.String("cluster", p.Name),
				zap.Int("unknown", unknown))
		}
		if len(resolved) < MinClusterSize {
			g.log.Info("dropping undersized cluster",
				zap.String("cluster", p.Name),
				zap.Int("resolved", len(resolved)))
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Name:       p.Name,
			Queries:    resolved,
			QueryCount: len(resolved),
			Metrics:    AggregateMetrics(resolved),
		})
	}

	g.recordRun(ctx, userID, len(suggestions), len(queries), len(batches))
	return suggestions, nil
}

// fetchWorkingSet pages through the query source in fixed chunks until the
// cap is reached or a short chunk signals exhaustion.
func (g *Generator) fetchWorkingSet(ctx context.Context, userID entity.UserID) ([]entity.Query, error) {
	var out []entity.Query
	offset := 0
	for len(out) < FetchCap {
		chunk, err := g.queries.List(ctx, userID, offset, fetchChunkSize)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		offset += len(chunk)
		if len(chunk) < fetchChunkSize {
			break
		}
	}
	if len(out) > FetchCap {
		out = out[:FetchCap]
	}
	return out, nil
}

// recordRun writes the audit entry and run report. Both are best effort.
func (g *Generator) recordRun(ctx context.Context, userID entity.UserID, clusters, queries, batches int) {
	details := map[string]any{
		"clusterCount": clusters,
		"queryCount":   queries,
		"batchCount":   batches,
	}
	if g.audit != nil {
		if err := g.audit.Record(ctx, userID, "clusters_generated", details); err != nil {
			g.log.Warn("audit record failed", zap.Error(err))
		}
	}
	if g.reports != nil {
		report, err := json.Marshal(map[string]any{
			"userId":      userID.String(),
			"generatedAt": time.Now().UTC().Format(time.RFC3339),
			"summary":     details,
			"client":      g.client.Name(),
		})
		if err == nil {
			runID := "clusterrun-" + uuid.NewString()
			if err := g.reports.Put(ctx, runID, report); err != nil {
				g.log.Warn("run report write failed", zap.Error(err))
			}
		}
	}
}
