package clustering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"querylens/internal/gateway/entity"
)

// ErrInvalidAcceptInput marks request-shape problems in an acceptance
// batch. Handlers map it to a client error.
var ErrInvalidAcceptInput = errors.New("invalid accept input")

// GroupStore persists groups and their items and owns the metrics routine.
type GroupStore interface {
	Create(ctx context.Context, group entity.Group) (entity.Group, error)
	AddItems(ctx context.Context, groupID string, queryIDs []string) error
	RecomputeMetrics(ctx context.Context, groupID string) error
	GetWithMetrics(ctx context.Context, groupID string) (entity.GroupWithMetrics, error)
}

// Acceptor converts user-confirmed clusters into persisted groups.
type Acceptor struct {
	groups GroupStore
	audit  AuditRecorder
	log    *zap.Logger
}

func NewAcceptor(groups GroupStore, audit AuditRecorder, log *zap.Logger) *Acceptor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Acceptor{groups: groups, audit: audit, log: log}
}

// Accept validates the whole batch up front, then persists one group per
// cluster sequentially. A failure aborts the call; earlier groups may
// already be persisted. Acceptance is deliberately not idempotent: the
// same batch twice yields independent groups.
func (a *Acceptor) Accept(ctx context.Context, userID entity.UserID, clusters []AcceptedCluster) ([]entity.GroupWithMetrics, error) {
	if len(clusters) == 0 {
		return nil, fmt.Errorf("%w: at least one cluster is required", ErrInvalidAcceptInput)
	}
	for i, c := range clusters {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: cluster %d: name is required", ErrInvalidAcceptInput, i+1)
		}
		if len(c.QueryIDs) == 0 {
			return nil, fmt.Errorf("%w: cluster %d: at least one query id is required", ErrInvalidAcceptInput, i+1)
		}
	}

	out := make([]entity.GroupWithMetrics, 0, len(clusters))
	for i, c := range clusters {
		created, err := a.groups.Create(ctx, entity.Group{
			ID:          uuid.NewString(),
			Name:        strings.TrimSpace(c.Name),
			UserID:      userID,
			AIGenerated: true,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("accept cluster %d: create group: %w", i+1, err)
		}
		if err := a.groups.AddItems(ctx, created.ID, c.QueryIDs); err != nil {
			return nil, fmt.Errorf("accept cluster %d: attach queries: %w", i+1, err)
		}
		if err := a.groups.RecomputeMetrics(ctx, created.ID); err != nil {
			return nil, fmt.Errorf("accept cluster %d: recompute metrics: %w", i+1, err)
		}
		withMetrics, err := a.groups.GetWithMetrics(ctx, created.ID)
		if err != nil {
			return nil, fmt.Errorf("accept cluster %d: read back group: %w", i+1, err)
		}
		out = append(out, withMetrics)
	}

	if a.audit != nil {
		ids := make([]string, 0, len(out))
		for _, g := range out {
			ids = append(ids, g.ID)
		}
		if err := a.audit.Record(ctx, userID, "clusters_accepted", map[string]any{
			"groupCount": len(ids),
			"groupIds":   ids,
		}); err != nil {
			a.log.Warn("audit record failed", zap.Error(err))
		}
	}
	return out, nil
}
