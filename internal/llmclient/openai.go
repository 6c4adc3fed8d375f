package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the standard chat-completions endpoint.
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"
	// DefaultModel is used when the config names no model.
	DefaultModel = "gpt-4o-mini"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond

	maxErrorBody = 2048
)

// Config configures an OpenAIClient. APIKey is required; everything else
// has a default.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	HTTPClient *http.Client
}

// OpenAIClient calls an OpenAI-compatible Chat Completions API.
// Configuration is immutable after construction except for the active model.
type OpenAIClient struct {
	http       *http.Client
	apiKey     string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration

	// model may be swapped between calls via SetModel; it is not guarded
	// against concurrent mutation.
	model string
}

// NewOpenAIClient validates the config and builds a client.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, newError(KindConfiguration, false, 0,
			"api key is required",
			"The AI provider is not configured.", nil)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OpenAIClient{
		http:       httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		model:      cfg.Model,
	}, nil
}

func (c *OpenAIClient) Name() string      { return "OpenAI:" + c.model }
func (c *OpenAIClient) SetModel(m string) { c.model = m }
func (c *OpenAIClient) Close() error      { return nil }
func (c *OpenAIClient) Model() string     { return c.model }

type chatWireRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	TopP           *float64        `json:"top_p,omitempty"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
	Stream         bool            `json:"stream,omitempty"`
}

type chatWireResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Created int64  `json:"created"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// Chat performs one logical chat request with up to maxRetries+1 attempts.
// Caller cancellation short-circuits retries and is checked both before an
// attempt starts and on every failure path during an attempt.
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.UserPrompt) == "" {
		return nil, newError(KindValidation, false, 0,
			"user prompt is required",
			"The AI request was rejected as invalid.", nil)
	}
	system := req.SystemPrompt
	if strings.TrimSpace(system) == "" {
		system = DefaultSystemPrompt
	}
	payload, err := json.Marshal(chatWireRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: req.UserPrompt},
		},
		ResponseFormat: req.ResponseFormat,
		Temperature:    req.Temperature,
		TopP:           req.TopP,
		MaxTokens:      req.MaxTokens,
	})
	if err != nil {
		return nil, newError(KindValidation, false, 0,
			fmt.Sprintf("encode request: %v", err),
			"The AI request was rejected as invalid.", err)
	}

	var last *Error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, abortedError(err)
		}
		resp, aerr := c.attempt(ctx, payload)
		if aerr == nil {
			return resp, nil
		}
		if !aerr.Retryable {
			return nil, aerr
		}
		last = aerr
		if attempt == c.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, abortedError(ctx.Err())
		case <-time.After(c.retryDelay):
		}
	}
	return nil, last
}

// attempt issues one HTTP exchange under its own timeout.
func (c *OpenAIClient) attempt(ctx context.Context, payload []byte) (*ChatResponse, *Error) {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, newError(KindUnknown, false, 0,
			fmt.Sprintf("build request: %v", err),
			"An unexpected error occurred while contacting the AI provider.", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, abortedError(ctx.Err())
		}
		if errors.Is(actx.Err(), context.DeadlineExceeded) {
			return nil, newError(KindTimeout, true, 0,
				fmt.Sprintf("request timed out after %s", c.timeout),
				"The AI provider took too long to respond.", err)
		}
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, newError(KindNetwork, true, 0,
				fmt.Sprintf("transport failure: %v", err),
				"Could not reach the AI provider.", err)
		}
		return nil, newError(KindUnknown, false, 0,
			fmt.Sprintf("request failed: %v", err),
			"An unexpected error occurred while contacting the AI provider.", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, abortedError(ctx.Err())
		}
		return nil, newError(KindNetwork, true, 0,
			fmt.Sprintf("read response: %v", err),
			"Could not reach the AI provider.", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, classifyStatus(resp.StatusCode, snippet)
	}

	var out chatWireResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, parseError(fmt.Sprintf("decode response: %v", err), err)
	}
	if out.ID == "" || out.Created == 0 || out.Model == "" || len(out.Choices) == 0 {
		return nil, parseError("response missing id/created/model/choices", nil)
	}
	for _, choice := range out.Choices {
		if choice.Message.Content == "" {
			continue
		}
		msg := choice.Message
		if msg.Role == "" {
			msg.Role = "assistant"
		}
		return &ChatResponse{
			ID:      out.ID,
			Model:   out.Model,
			Created: out.Created,
			Message: msg,
			Usage:   out.Usage,
			Raw:     json.RawMessage(body),
		}, nil
	}
	return nil, parseError("no choice carries message content", nil)
}

func parseError(msg string, cause error) *Error {
	return newError(KindParse, false, 0, msg,
		"The AI provider returned an unreadable response.", cause)
}

func abortedError(cause error) *Error {
	return newError(KindAborted, false, 0, "request aborted by caller",
		"The AI request was cancelled.", cause)
}
