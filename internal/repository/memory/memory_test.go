package memory

import (
	"testing"
	"time"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/pkg/llm"
	"wedding-portal-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_ScopedByWeddingAndGuest(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)
	repo.Save(&store.ChatSession{ID: "s1", WeddingID: "w1", GuestID: "g1", History: []llm.Message{{Role: "user", Content: "hi"}}})

	got, ok := repo.Get("w1", "g1", "s1")
	require.True(t, ok)
	assert.Len(t, got.History, 1)

	_, ok = repo.Get("w2", "g1", "s1")
	assert.False(t, ok)

	_, ok = repo.Get("w1", "g2", "s1")
	assert.False(t, ok)

	_, ok = repo.Get("w1", "", "s1")
	assert.False(t, ok)

	repo.Delete("w1", "g1", "s1")
	_, ok = repo.Get("w1", "g1", "s1")
	assert.False(t, ok)
}

func TestSessionRepository_ReturnsCopies(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)
	session := &store.ChatSession{ID: "s1", WeddingID: "w1", GuestID: "g1"}
	repo.Save(session)
	session.Append(10, llm.Message{Role: "user", Content: "after save"})

	got, ok := repo.Get("w1", "g1", "s1")
	require.True(t, ok)
	assert.Empty(t, got.History)

	got.Append(10, llm.Message{Role: "user", Content: "local"})
	again, _ := repo.Get("w1", "g1", "s1")
	assert.Empty(t, again.History)
}

func TestSettingsCache_ReturnsCopies(t *testing.T) {
	c := NewSettingsCache(time.Minute, time.Minute)
	weddingId := uuid.New()
	c.Set(&entity.ChatbotSettings{WeddingId: weddingId, ChatbotName: "Rada"})

	got, ok := c.Get(weddingId)
	require.True(t, ok)
	got.ChatbotName = "Changed"

	again, _ := c.Get(weddingId)
	assert.Equal(t, "Rada", again.ChatbotName)

	c.Invalidate(weddingId)
	_, ok = c.Get(weddingId)
	assert.False(t, ok)
}
