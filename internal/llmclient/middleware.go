package llmclient

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Middleware decorates a Client to inject cross-cutting concerns.
type Middleware func(Client) Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Client, mws ...Middleware) Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// RateLimit limits request rate. If rps <= 0, the limiter is disabled.
func RateLimit(rps float64, burst int) Middleware {
	return func(next Client) Client {
		var lim *rate.Limiter
		if rps > 0 {
			if burst < 1 {
				burst = 1
			}
			lim = rate.NewLimiter(rate.Limit(rps), burst)
		}
		return &rateLimited{next: next, lim: lim}
	}
}

type rateLimited struct {
	next Client
	lim  *rate.Limiter
}

func (c *rateLimited) Name() string      { return c.next.Name() }
func (c *rateLimited) SetModel(m string) { c.next.SetModel(m) }
func (c *rateLimited) Close() error      { return c.next.Close() }

func (c *rateLimited) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if c.lim != nil {
		if err := c.lim.Wait(ctx); err != nil {
			return nil, abortedError(err)
		}
	}
	return c.next.Chat(ctx, req)
}

// WithLogging logs request size and failures. A nil logger is a no-op.
func WithLogging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *zap.Logger
}

func (l *logging) Name() string      { return l.next.Name() }
func (l *logging) SetModel(m string) { l.next.SetModel(m) }
func (l *logging) Close() error      { return l.next.Close() }

func (l *logging) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	l.log.Debug("llm request",
		zap.String("client", l.next.Name()),
		zap.Int("prompt_bytes", len(req.SystemPrompt)+len(req.UserPrompt)),
	)
	resp, err := l.next.Chat(ctx, req)
	if err != nil {
		fields := []zap.Field{zap.String("client", l.next.Name()), zap.Error(err)}
		if cerr, ok := AsError(err); ok {
			fields = append(fields,
				zap.String("kind", string(cerr.Kind)),
				zap.Bool("retryable", cerr.Retryable),
			)
		}
		l.log.Warn("llm request failed", fields...)
	}
	return resp, err
}
