package memory

import (
	"time"

	"wedding-portal-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps assistant transcripts in process memory. Sessions
// expire after ttl without activity. A session belongs to one guest; the same
// session id sent by another guest resolves to a different transcript.
// Callers always receive and hand over copies.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func sessionKey(weddingID, guestID, sessionID string) string {
	return weddingID + ":" + guestID + ":" + sessionID
}

func (r *SessionRepository) Save(session *store.ChatSession) {
	r.cache.Set(sessionKey(session.WeddingID, session.GuestID, session.ID), session.Clone(), cache.DefaultExpiration)
}

// Get looks up a session. guestID is empty for anonymous sessions.
func (r *SessionRepository) Get(weddingID, guestID, sessionID string) (*store.ChatSession, bool) {
	if x, found := r.cache.Get(sessionKey(weddingID, guestID, sessionID)); found {
		return x.(*store.ChatSession).Clone(), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(weddingID, guestID, sessionID string) {
	r.cache.Delete(sessionKey(weddingID, guestID, sessionID))
}
