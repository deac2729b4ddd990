package resilient

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	calls int
	err   error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "ok", nil
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, options...)
}

func TestProvider_PassesThrough(t *testing.T) {
	stub := &stubProvider{}
	p := New(stub, DefaultConfig(), logger.NewNopLogger())

	out, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, stub.calls)
}

func TestProvider_OpensAfterFailures(t *testing.T) {
	stub := &stubProvider{err: errors.New("boom")}
	cfg := DefaultConfig()
	cfg.RatePerSecond = 0
	cfg.MinRequests = 3
	cfg.OpenTimeout = time.Hour
	p := New(stub, cfg, logger.NewNopLogger())

	for i := 0; i < 3; i++ {
		_, err := p.Chat(context.Background(), nil)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnavailable))
	}

	_, err := p.Chat(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, stub.calls)
	assert.Equal(t, "open", p.State())
}

func TestProvider_RateLimitHonoursContext(t *testing.T) {
	stub := &stubProvider{}
	cfg := DefaultConfig()
	cfg.RatePerSecond = 0.001
	cfg.Burst = 1
	p := New(stub, cfg, logger.NewNopLogger())

	_, err := p.Chat(context.Background(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = p.Chat(ctx, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, stub.calls)
}
