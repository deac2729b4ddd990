package memory

import (
	"time"

	"wedding-portal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SettingsCache memoizes chatbot settings per wedding. Writers must call
// Invalidate after updating the row.
type SettingsCache struct {
	cache *cache.Cache
}

func NewSettingsCache(ttl, cleanupInterval time.Duration) *SettingsCache {
	return &SettingsCache{cache: cache.New(ttl, cleanupInterval)}
}

func (c *SettingsCache) Get(weddingId uuid.UUID) (*entity.ChatbotSettings, bool) {
	if x, found := c.cache.Get(weddingId.String()); found {
		s := *x.(*entity.ChatbotSettings)
		return &s, true
	}
	return nil, false
}

func (c *SettingsCache) Set(settings *entity.ChatbotSettings) {
	s := *settings
	c.cache.Set(settings.WeddingId.String(), &s, cache.DefaultExpiration)
}

func (c *SettingsCache) Invalidate(weddingId uuid.UUID) {
	c.cache.Delete(weddingId.String())
}
