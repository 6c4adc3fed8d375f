package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "google.golang.org/genai"
)

// GeminiClient adapts the official genai client to the Client interface for
// deployments that run against Gemini instead of an OpenAI-compatible
// endpoint. Retry and abort semantics match OpenAIClient; status-code
// classification is unavailable here, so provider failures surface as
// retryable server errors.
type GeminiClient struct {
	cli        *genai.Client
	model      string
	maxRetries int
	retryDelay time.Duration
}

func NewGeminiClient(ctx context.Context, model string, maxRetries int, retryDelay time.Duration) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, newError(KindConfiguration, false, 0,
			fmt.Sprintf("init genai client: %v", err),
			"The AI provider is not configured.", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	return &GeminiClient{cli: cli, model: model, maxRetries: maxRetries, retryDelay: retryDelay}, nil
}

func (g *GeminiClient) Name() string      { return "Gemini:" + g.model }
func (g *GeminiClient) SetModel(m string) { g.model = m }
func (g *GeminiClient) Close() error      { return nil }

func (g *GeminiClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.UserPrompt) == "" {
		return nil, newError(KindValidation, false, 0,
			"user prompt is required",
			"The AI request was rejected as invalid.", nil)
	}
	system := req.SystemPrompt
	if strings.TrimSpace(system) == "" {
		system = DefaultSystemPrompt
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		cfg.Temperature = &t
	}
	if req.TopP != nil {
		p := float32(*req.TopP)
		cfg.TopP = &p
	}
	if req.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*req.MaxTokens)
	}

	var last *Error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, abortedError(err)
		}
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: req.UserPrompt}}}}, cfg)
		if err != nil {
			if ctx.Err() != nil {
				return nil, abortedError(ctx.Err())
			}
			last = newError(KindServer, true, 0,
				fmt.Sprintf("generate content: %v", err),
				"The AI provider is currently unavailable.", err)
			if attempt == g.maxRetries {
				break
			}
			select {
			case <-ctx.Done():
				return nil, abortedError(ctx.Err())
			case <-time.After(g.retryDelay):
			}
			continue
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
			len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, parseError("response carries no candidates", nil)
		}
		text := resp.Candidates[0].Content.Parts[0].Text
		raw, _ := json.Marshal(resp)
		return &ChatResponse{
			ID:      resp.ResponseID,
			Model:   g.model,
			Created: time.Now().Unix(),
			Message: Message{Role: "assistant", Content: text},
			Raw:     raw,
		}, nil
	}
	return nil, last
}
