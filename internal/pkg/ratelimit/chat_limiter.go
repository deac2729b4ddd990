// Package ratelimit caps assistant traffic per guest across instances.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"wedding-portal-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ChatLimiter is a fixed-window counter in Redis keyed by guest (or session
// for anonymous chats). When Redis is unreachable it lets traffic through.
type ChatLimiter struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	logger logger.ILogger
	now    func() time.Time
}

func NewChatLimiter(rdb redis.Cmdable, perMinute int, log logger.ILogger) *ChatLimiter {
	return &ChatLimiter{
		rdb:    rdb,
		limit:  perMinute,
		window: time.Minute,
		logger: log,
		now:    time.Now,
	}
}

func (l *ChatLimiter) key(subject string) string {
	bucket := l.now().Unix() / int64(l.window/time.Second)
	return fmt.Sprintf("chat_rl:%s:%d", subject, bucket)
}

// Allow reports whether subject may send one more message in the current window.
func (l *ChatLimiter) Allow(ctx context.Context, subject string) bool {
	if l == nil || l.rdb == nil || l.limit <= 0 {
		return true
	}

	key := l.key(subject)
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("RATE_LIMIT", "Redis unavailable, allowing chat message", map[string]interface{}{
			"subject": subject,
			"error":   err.Error(),
		})
		return true
	}

	return incr.Val() <= int64(l.limit)
}
