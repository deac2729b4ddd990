package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-portal-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroqProvider_Chat(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"The ceremony starts at 5 PM."}}]}`))
	}))
	defer srv.Close()

	p := NewGroqProvider("secret", srv.URL, "llama")
	out, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "system", Content: "ctx"}, {Role: "user", Content: "When?"}},
		llm.WithTemperature(0.7), llm.WithMaxTokens(1024))

	require.NoError(t, err)
	assert.Equal(t, "The ceremony starts at 5 PM.", out)
	assert.Equal(t, "llama", got.Model)
	assert.Equal(t, 1024, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	assert.Len(t, got.Messages, 2)
}

func TestGroqProvider_ChatErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := NewGroqProvider("", srv.URL, "llama").Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
