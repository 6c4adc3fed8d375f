// Package handler exposes the clustering operations over plain JSON
// HTTP endpoints.
package handler

import (
	"context"

	"go.uber.org/zap"

	"querylens/internal/clustering"
	"querylens/internal/gateway/entity"
)

// ClusterGenerator produces ephemeral cluster suggestions for a user.
type ClusterGenerator interface {
	Generate(ctx context.Context, userID entity.UserID) ([]clustering.Suggestion, error)
}

// ClusterAcceptor persists user-confirmed clusters as groups.
type ClusterAcceptor interface {
	Accept(ctx context.Context, userID entity.UserID, clusters []clustering.AcceptedCluster) ([]entity.GroupWithMetrics, error)
}

// Service holds the handler dependencies.
type Service struct {
	generator ClusterGenerator
	acceptor  ClusterAcceptor
	log       *zap.Logger
}

func NewService(generator ClusterGenerator, acceptor ClusterAcceptor, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{generator: generator, acceptor: acceptor, log: log}
}
