// Package resilient guards an LLM provider with a circuit breaker and an
// outbound rate limit.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/pkg/llm"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrUnavailable is returned when the breaker is open or the rate limiter
// cannot admit the call before the context expires.
var ErrUnavailable = errors.New("language model unavailable")

type Config struct {
	Name              string
	RatePerSecond     float64
	Burst             int
	MinRequests       uint32
	FailureRatio      float64
	OpenTimeout       time.Duration
	HalfOpenRequests  uint32
	MeasurementWindow time.Duration
}

func DefaultConfig() Config {
	return Config{
		Name:              "llm",
		RatePerSecond:     5,
		Burst:             5,
		MinRequests:       5,
		FailureRatio:      0.6,
		OpenTimeout:       30 * time.Second,
		HalfOpenRequests:  1,
		MeasurementWindow: time.Minute,
	}
}

type Provider struct {
	next    llm.LLMProvider
	cb      *gobreaker.CircuitBreaker[string]
	limiter *rate.Limiter
}

var _ llm.LLMProvider = &Provider{}

func New(next llm.LLMProvider, cfg Config, log logger.ILogger) *Provider {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.MeasurementWindow,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("LLM", "Circuit breaker state change", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return &Provider{
		next:    next,
		cb:      cb,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out, err := p.cb.Execute(func() (string, error) {
		return p.next.Chat(ctx, history, options...)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, err
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

// State exposes the breaker state for health reporting.
func (p *Provider) State() string {
	return p.cb.State().String()
}
