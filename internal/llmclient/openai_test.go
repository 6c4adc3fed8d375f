package llmclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, maxRetries int) *OpenAIClient {
	t.Helper()
	c, err := NewOpenAIClient(Config{
		APIKey:     "test-key",
		BaseURL:    url,
		Model:      "test-model",
		MaxRetries: maxRetries,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func okBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"model":   "test-model",
		"created": 1700000000,
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
	return string(b)
}

func TestNewOpenAIClientRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(Config{})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConfiguration, cerr.Kind)
	assert.False(t, cerr.Retryable)
}

func TestChatSuccess(t *testing.T) {
	var gotAuth string
	var gotReq chatWireRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody(`{"clusters":[]}`)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	temp := 0.7
	resp, err := c.Chat(context.Background(), ChatRequest{
		SystemPrompt: "cluster the queries",
		UserPrompt:   "queries here",
		Temperature:  &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "chatcmpl-1", resp.ID)
	assert.Equal(t, "assistant", resp.Message.Role)
	assert.Equal(t, `{"clusters":[]}`, resp.Message.Content)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestChatFallsBackToDefaultSystemPrompt(t *testing.T) {
	var gotReq chatWireRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_, _ = w.Write([]byte(okBody("ok")))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, DefaultSystemPrompt, gotReq.Messages[0].Content)
}

func TestChatEmptyUserPromptRejected(t *testing.T) {
	c := newTestClient(t, "http://unused.invalid", 0)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "   "})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, cerr.Kind)
}

func TestChatRetriesRateLimitThenSucceeds(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(okBody("ok")))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	resp, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message.Content)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestChatAuthFailureNotRetried(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindAuthentication, cerr.Kind)
	assert.False(t, cerr.Retryable)
	assert.Equal(t, http.StatusUnauthorized, cerr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestChatOther4xxIsValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, cerr.Kind)
	assert.False(t, cerr.Retryable)
}

func TestChatServerErrorExhaustsRetries(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindServer, cerr.Kind)
	assert.True(t, cerr.Retryable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestChatParseFailureNotRetried(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		_, _ = w.Write([]byte(`{"id":"x"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindParse, cerr.Kind)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestChatCancellationAbortsWithoutRetry(t *testing.T) {
	var attempts int32
	started := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		_, _ = io.Copy(io.Discard, r.Body)
		started <- struct{}{}
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	_, err := c.Chat(ctx, ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindAborted, cerr.Kind)
	assert.False(t, cerr.Retryable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestChatCancelledBeforeStartIsAborted(t *testing.T) {
	c := newTestClient(t, "http://unused.invalid", 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Chat(ctx, ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindAborted, cerr.Kind)
}

func TestChatPerAttemptTimeoutIsRetryable(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		select {
		case <-time.After(200 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(Config{
		APIKey:     "k",
		BaseURL:    srv.URL,
		Timeout:    10 * time.Millisecond,
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	_, err = c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTimeout, cerr.Kind)
	assert.True(t, cerr.Retryable)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestChatNetworkFailureIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, 1)
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	cerr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, cerr.Kind)
	assert.True(t, cerr.Retryable)
}

func TestSetModelSwapsActiveModel(t *testing.T) {
	c := newTestClient(t, "http://unused.invalid", 0)
	c.SetModel("other-model")
	assert.Equal(t, "OpenAI:other-model", c.Name())
}
