package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"querylens/internal/clustering"
	"querylens/internal/gateway/middleware"
	"querylens/internal/llmclient"
)

// HandleGenerateClusters runs one clustering pass over the caller's
// queries and returns the suggestions. Nothing is persisted.
func (s *Service) HandleGenerateClusters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	suggestions, err := s.generator.Generate(r.Context(), userID)
	if err != nil {
		s.log.Error("cluster generation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		s.writeClusterError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []clustering.Suggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// HandleAcceptClusters persists the submitted clusters as groups.
func (s *Service) HandleAcceptClusters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var in struct {
		Clusters []clustering.AcceptedCluster `json:"clusters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	groups, err := s.acceptor.Accept(r.Context(), userID, in.Clusters)
	if err != nil {
		if errors.Is(err, clustering.ErrInvalidAcceptInput) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("cluster acceptance failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		s.writeClusterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"groups": groups,
	})
}

// writeClusterError maps pipeline failures to HTTP statuses. Client
// errors carry their user-facing message; everything else gets a
// generic one.
func (s *Service) writeClusterError(w http.ResponseWriter, err error) {
	if cerr, ok := llmclient.AsError(err); ok {
		status := statusForKind(cerr.Kind)
		msg := cerr.UserMessage
		if msg == "" {
			msg = "cluster generation failed"
		}
		writeJSONError(w, status, msg)
		return
	}
	writeJSONError(w, http.StatusInternalServerError, "internal error")
}

func statusForKind(kind llmclient.ErrorKind) int {
	switch kind {
	case llmclient.KindRateLimit:
		return http.StatusTooManyRequests
	case llmclient.KindAuthentication:
		return http.StatusUnauthorized
	case llmclient.KindTimeout:
		return http.StatusGatewayTimeout
	case llmclient.KindNetwork, llmclient.KindServer:
		return http.StatusServiceUnavailable
	case llmclient.KindValidation, llmclient.KindConfiguration:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
