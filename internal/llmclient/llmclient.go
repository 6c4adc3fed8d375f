package llmclient

import (
	"context"
	"encoding/json"
)

// DefaultSystemPrompt is used when a request carries no system prompt override.
const DefaultSystemPrompt = "You are a helpful assistant."

// Message is one chat message on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage reports token accounting as returned by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// JSONSchemaSpec names a strict schema the model output must conform to.
type JSONSchemaSpec struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// ResponseFormat constrains the shape of the model output.
type ResponseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *JSONSchemaSpec `json:"json_schema,omitempty"`
}

// ChatRequest describes one logical chat completion call.
// UserPrompt is required; everything else is optional.
type ChatRequest struct {
	SystemPrompt   string
	UserPrompt     string
	ResponseFormat *ResponseFormat
	Temperature    *float64
	TopP           *float64
	MaxTokens      *int
}

// ChatResponse is the normalized result of a successful chat call.
type ChatResponse struct {
	ID      string
	Model   string
	Created int64
	Message Message
	Usage   *Usage
	Raw     json.RawMessage
}

// Client is the single point of contact with an external completion endpoint.
// Implementations own their retry, timeout and abort semantics.
type Client interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// SetModel swaps the active model between calls. It is an administrative
	// operation and must not race with in-flight Chat calls.
	SetModel(model string)
	Close() error
}
