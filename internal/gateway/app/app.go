// Package app wires configuration, stores, the LLM client, and the
// HTTP server into a runnable gateway.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"querylens/internal/clustering"
	"querylens/internal/gateway/config"
	"querylens/internal/gateway/handler"
	"querylens/internal/gateway/server"
	"querylens/internal/llmclient"
)

type App struct {
	server *server.Server
	client llmclient.Client
	log    *zap.Logger
}

func New(log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	stores, err := initStores(cfg, log)
	if err != nil {
		return nil, err
	}

	client, err := newLLMClient(cfg, log)
	if err != nil {
		return nil, err
	}

	generator := clustering.NewGenerator(stores.queries, client, stores.audit, stores.reports, log)
	acceptor := clustering.NewAcceptor(stores.groups, stores.audit, log)

	clusterHandler := handler.NewService(generator, acceptor, log)
	mux := server.NewMux(clusterHandler)
	srv := server.New(cfg.Port, mux, log)

	return &App{
		server: srv,
		client: client,
		log:    log,
	}, nil
}

func newLLMClient(cfg *config.Config, log *zap.Logger) (llmclient.Client, error) {
	var (
		inner llmclient.Client
		err   error
	)
	switch cfg.LLM.Provider {
	case "openai":
		inner, err = llmclient.NewOpenAIClient(llmclient.Config{
			APIKey:     cfg.LLM.APIKey,
			BaseURL:    cfg.LLM.BaseURL,
			Model:      cfg.LLM.Model,
			Timeout:    cfg.LLM.Timeout,
			MaxRetries: cfg.LLM.MaxRetries,
		})
	case "gemini":
		inner, err = llmclient.NewGeminiClient(context.Background(), cfg.LLM.Model, cfg.LLM.MaxRetries, 0)
	case "fake":
		inner = llmclient.NewFakeClient()
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init llm client: %w", err)
	}

	mws := []llmclient.Middleware{llmclient.WithLogging(log)}
	if cfg.LLM.RPS > 0 {
		mws = append([]llmclient.Middleware{llmclient.RateLimit(cfg.LLM.RPS, cfg.LLM.Burst)}, mws...)
	}
	return llmclient.Wrap(inner, mws...), nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.client != nil {
		_ = a.client.Close()
	}
	return a.server.Shutdown(ctx)
}
