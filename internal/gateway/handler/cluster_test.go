package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querylens/internal/clustering"
	"querylens/internal/gateway/entity"
	"querylens/internal/gateway/middleware"
	"querylens/internal/llmclient"
)

type fakeGenerator struct {
	suggestions []clustering.Suggestion
	err         error
	userID      entity.UserID
}

func (f *fakeGenerator) Generate(_ context.Context, userID entity.UserID) ([]clustering.Suggestion, error) {
	f.userID = userID
	return f.suggestions, f.err
}

type fakeAcceptor struct {
	groups   []entity.GroupWithMetrics
	err      error
	clusters []clustering.AcceptedCluster
}

func (f *fakeAcceptor) Accept(_ context.Context, _ entity.UserID, clusters []clustering.AcceptedCluster) ([]entity.GroupWithMetrics, error) {
	f.clusters = clusters
	return f.groups, f.err
}

func serve(t *testing.T, svc *Service, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	api := http.NewServeMux()
	api.HandleFunc("/api/clusters/generate", svc.HandleGenerateClusters)
	api.HandleFunc("/api/clusters/accept", svc.HandleAcceptClusters)
	h := middleware.RequireUser(api)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerateClusters_Success(t *testing.T) {
	gen := &fakeGenerator{
		suggestions: []clustering.Suggestion{
			{Name: "brand", QueryCount: 3, Metrics: clustering.Metrics{Impressions: 42}},
		},
	}
	svc := NewService(gen, &fakeAcceptor{}, nil)

	rec := serve(t, svc, http.MethodPost, "/api/clusters/generate", "user-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.UserID("user-1"), gen.userID)

	var out []clustering.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "brand", out[0].Name)
	assert.Equal(t, 42, out[0].Metrics.Impressions)
}

func TestHandleGenerateClusters_EmptyResult(t *testing.T) {
	svc := NewService(&fakeGenerator{}, &fakeAcceptor{}, nil)

	rec := serve(t, svc, http.MethodPost, "/api/clusters/generate", "user-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleGenerateClusters_MissingUser(t *testing.T) {
	svc := NewService(&fakeGenerator{}, &fakeAcceptor{}, nil)

	rec := serve(t, svc, http.MethodPost, "/api/clusters/generate", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleGenerateClusters_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limit", &llmclient.Error{Kind: llmclient.KindRateLimit, UserMessage: "too many requests"}, http.StatusTooManyRequests},
		{"authentication", &llmclient.Error{Kind: llmclient.KindAuthentication}, http.StatusUnauthorized},
		{"timeout", &llmclient.Error{Kind: llmclient.KindTimeout}, http.StatusGatewayTimeout},
		{"server", &llmclient.Error{Kind: llmclient.KindServer}, http.StatusServiceUnavailable},
		{"network", &llmclient.Error{Kind: llmclient.KindNetwork}, http.StatusServiceUnavailable},
		{"validation", &llmclient.Error{Kind: llmclient.KindValidation}, http.StatusBadRequest},
		{"parse", &llmclient.Error{Kind: llmclient.KindParse}, http.StatusInternalServerError},
		{"plain", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&fakeGenerator{err: tc.err}, &fakeAcceptor{}, nil)
			rec := serve(t, svc, http.MethodPost, "/api/clusters/generate", "user-1", "")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestHandleGenerateClusters_WrappedClientError(t *testing.T) {
	wrapped := &llmclient.Error{Kind: llmclient.KindRateLimit, UserMessage: "please retry later"}
	svc := NewService(&fakeGenerator{err: wrapErr(wrapped)}, &fakeAcceptor{}, nil)

	rec := serve(t, svc, http.MethodPost, "/api/clusters/generate", "user-1", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "please retry later", out["error"])
}

func wrapErr(err error) error {
	return &wrappedError{err: err}
}

type wrappedError struct{ err error }

func (w *wrappedError) Error() string { return "batch 2: " + w.err.Error() }
func (w *wrappedError) Unwrap() error { return w.err }

func TestHandleAcceptClusters_Success(t *testing.T) {
	acc := &fakeAcceptor{
		groups: []entity.GroupWithMetrics{
			{Group: entity.Group{ID: "g1", Name: "brand"}, Metrics: entity.GroupMetrics{QueryCount: 3}},
		},
	}
	svc := NewService(&fakeGenerator{}, acc, nil)

	body := `{"clusters":[{"name":"brand","queryIds":["a","b","c"]}]}`
	rec := serve(t, svc, http.MethodPost, "/api/clusters/accept", "user-1", body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, acc.clusters, 1)
	assert.Equal(t, "brand", acc.clusters[0].Name)

	var out struct {
		Groups []entity.GroupWithMetrics `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "g1", out.Groups[0].ID)
}

func TestHandleAcceptClusters_BadJSON(t *testing.T) {
	svc := NewService(&fakeGenerator{}, &fakeAcceptor{}, nil)

	rec := serve(t, svc, http.MethodPost, "/api/clusters/accept", "user-1", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAcceptClusters_InvalidInput(t *testing.T) {
	acc := &fakeAcceptor{err: clustering.ErrInvalidAcceptInput}
	svc := NewService(&fakeGenerator{}, acc, nil)

	rec := serve(t, svc, http.MethodPost, "/api/clusters/accept", "user-1", `{"clusters":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAcceptClusters_MethodNotAllowed(t *testing.T) {
	svc := NewService(&fakeGenerator{}, &fakeAcceptor{}, nil)

	rec := serve(t, svc, http.MethodGet, "/api/clusters/accept", "user-1", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
