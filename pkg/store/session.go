package store

import (
	"time"

	"wedding-portal-be/pkg/llm"
)

// ChatSession is the rolling transcript of one assistant conversation.
type ChatSession struct {
	ID        string
	WeddingID string
	GuestID   string // empty for anonymous sessions
	History   []llm.Message
	UpdatedAt time.Time
}

// Append adds one exchange and keeps at most limit messages.
func (s *ChatSession) Append(limit int, messages ...llm.Message) {
	s.History = append(s.History, messages...)
	if limit > 0 && len(s.History) > limit {
		s.History = append([]llm.Message(nil), s.History[len(s.History)-limit:]...)
	}
	s.UpdatedAt = time.Now()
}

// Tail returns a copy of the last n messages.
func (s *ChatSession) Tail(n int) []llm.Message {
	h := s.History
	if n > 0 && len(h) > n {
		h = h[len(h)-n:]
	}
	return append([]llm.Message(nil), h...)
}

// Clone returns a deep copy that shares no backing array with s.
func (s *ChatSession) Clone() *ChatSession {
	c := *s
	c.History = append([]llm.Message(nil), s.History...)
	return &c
}
