package store

import (
	"testing"

	"wedding-portal-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestChatSession_AppendCapsHistory(t *testing.T) {
	s := &ChatSession{ID: "s1"}
	for i := 0; i < 12; i++ {
		s.Append(20,
			llm.Message{Role: "user", Content: "q"},
			llm.Message{Role: "assistant", Content: "a"},
		)
	}

	assert.Len(t, s.History, 20)
	assert.Equal(t, "user", s.History[0].Role)
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestChatSession_TailCopies(t *testing.T) {
	s := &ChatSession{History: []llm.Message{{Content: "1"}, {Content: "2"}, {Content: "3"}}}

	tail := s.Tail(2)
	assert.Equal(t, []llm.Message{{Content: "2"}, {Content: "3"}}, tail)

	tail[0].Content = "changed"
	assert.Equal(t, "2", s.History[1].Content)
}
