package llmclient

import (
	"context"
	"sync"
)

// FakeClient returns scripted responses for offline use and tests.
// Responses are consumed in order; when the script runs out the last
// entry repeats.
type FakeClient struct {
	mu    sync.Mutex
	model string
	calls []ChatRequest
	next  int

	// Script holds the canned outcomes, one per call.
	Script []FakeOutcome
}

// FakeOutcome is one scripted reply: either Content or Err is used.
type FakeOutcome struct {
	Content string
	Err     error
}

func NewFakeClient(script ...FakeOutcome) *FakeClient {
	return &FakeClient{model: "fake", Script: script}
}

func (f *FakeClient) Name() string      { return "Fake:" + f.model }
func (f *FakeClient) SetModel(m string) { f.model = m }
func (f *FakeClient) Close() error      { return nil }

// Calls returns a copy of every request seen so far.
func (f *FakeClient) Calls() []ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ChatRequest, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, abortedError(err)
	}
	f.mu.Lock()
	f.calls = append(f.calls, req)
	idx := f.next
	if idx >= len(f.Script) {
		idx = len(f.Script) - 1
	}
	f.next++
	f.mu.Unlock()

	if idx < 0 {
		return nil, parseError("fake client has no scripted outcomes", nil)
	}
	out := f.Script[idx]
	if out.Err != nil {
		return nil, out.Err
	}
	return &ChatResponse{
		ID:      "fake-response",
		Model:   f.model,
		Created: 1,
		Message: Message{Role: "assistant", Content: out.Content},
	}, nil
}
