package llmclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWrapAppliesLeftToRight(t *testing.T) {
	inner := NewFakeClient(FakeOutcome{Content: "ok"})
	var order []string
	tag := func(name string) Middleware {
		return func(next Client) Client {
			return chatFunc(func(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
				order = append(order, name)
				return next.Chat(ctx, req)
			})
		}
	}
	c := Wrap(inner, tag("outer"), tag("inner"))
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	inner := NewFakeClient(FakeOutcome{Content: "ok"})
	c := Wrap(inner, RateLimit(0, 0), WithLogging(zap.NewNop()))
	resp, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message.Content)
	assert.Len(t, inner.Calls(), 1)
}

// chatFunc adapts a function to the Client interface for middleware tests.
type chatFunc func(ctx context.Context, req ChatRequest) (*ChatResponse, error)

func (f chatFunc) Name() string    { return "func" }
func (f chatFunc) SetModel(string) {}
func (f chatFunc) Close() error    { return nil }
func (f chatFunc) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return f(ctx, req)
}
