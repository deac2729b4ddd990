package service

import (
	"context"
	"testing"
	"time"

	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessTokenIsURLSafeAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := NewAccessToken()
		require.NoError(t, err)
		assert.Len(t, token, 43)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestPortalLink(t *testing.T) {
	assert.Equal(t, "https://rsvp.example.com/guest/abc", PortalLink("https://rsvp.example.com/", "abc"))
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	svc := NewGuestAccessService(f.factory, nil, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	gotWedding, gotGuest, err := svc.Resolve(f.ctx, g.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, w.Id, gotWedding.Id)
	assert.Equal(t, g.Id, gotGuest.Id)

	for _, token := range []string{"", "   ", "not-a-token"} {
		_, _, err := svc.Resolve(f.ctx, token)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "token %q", token)
	}
}

func TestResolveInactiveWedding(t *testing.T) {
	f := newFixture(t)
	svc := NewGuestAccessService(f.factory, nil, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	w.IsActive = false
	require.NoError(t, f.uow().WeddingRepository().Update(f.ctx, w))

	_, _, err := svc.Resolve(f.ctx, g.AccessToken)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRotateTokenInvalidatesOldToken(t *testing.T) {
	f := newFixture(t)
	svc := NewGuestAccessService(f.factory, nil, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	old := g.AccessToken

	token, err := svc.RotateToken(f.ctx, w.Id, g.Id)
	require.NoError(t, err)
	assert.NotEqual(t, old, token)

	_, _, err = svc.Resolve(f.ctx, old)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, resolved, err := svc.Resolve(f.ctx, token)
	require.NoError(t, err)
	assert.Equal(t, g.Id, resolved.Id)
}

func TestRotateTokenIsTenantScoped(t *testing.T) {
	f := newFixture(t)
	svc := NewGuestAccessService(f.factory, nil, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")

	_, err := svc.RotateToken(f.ctx, f.wedding().Id, g.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = svc.RotateToken(f.ctx, g.WeddingId, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, _, err = NewGuestAccessService(f.factory, nil, nil, f.log).Resolve(f.ctx, g.AccessToken)
	assert.NoError(t, err)
}

func TestResolveForPortalRecordsVisit(t *testing.T) {
	f := newFixture(t)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(f.ctx)
	defer cancel()
	require.NoError(t, NewConsumerService(pubSub, TopicGuestAccessed, f.factory, f.log).Consume(ctx))

	svc := NewGuestAccessService(f.factory, NewPublisherService(TopicGuestAccessed, pubSub), nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")
	require.Nil(t, g.LastAccessedAt)

	_, _, err := svc.ResolveForPortal(f.ctx, g.AccessToken)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current, err := f.uow().GuestRepository().FindOne(f.ctx, specification.ByID{ID: g.Id})
		return err == nil && current != nil && current.LastAccessedAt != nil
	}, 2*time.Second, 20*time.Millisecond)
}
