package service

import (
	"sync"
	"testing"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaultsToOneParticipant(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityRegistrationService(f.factory, events.NoopPublisher{}, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	a := f.activity(w, "Desert Safari", intPtr(10))

	res, err := svc.Register(f.ctx, g, a.Id, &dto.RegisterActivityRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumberOfParticipants)
	assert.Equal(t, a.Id, res.ActivityId)
}

func TestRegisterTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityRegistrationService(f.factory, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	a := f.activity(w, "Desert Safari", nil)

	_, err := svc.Register(f.ctx, g, a.Id, &dto.RegisterActivityRequest{})
	require.NoError(t, err)
	_, err = svc.Register(f.ctx, g, a.Id, &dto.RegisterActivityRequest{})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestRegisterRespectsCapacity(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityRegistrationService(f.factory, nil, f.log)
	w := f.wedding()
	a := f.activity(w, "Boat Tour", intPtr(4))

	_, err := svc.Register(f.ctx, f.guest(w, "A"), a.Id, &dto.RegisterActivityRequest{NumberOfParticipants: 3})
	require.NoError(t, err)

	_, err = svc.Register(f.ctx, f.guest(w, "B"), a.Id, &dto.RegisterActivityRequest{NumberOfParticipants: 2})
	assert.True(t, apperror.IsKind(err, apperror.KindCapacityExceeded))

	_, err = svc.Register(f.ctx, f.guest(w, "C"), a.Id, &dto.RegisterActivityRequest{NumberOfParticipants: 1})
	require.NoError(t, err)

	total, err := f.uow().GuestActivityRepository().SumParticipants(f.ctx, a.Id)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestRegisterUnknownOrForeignActivity(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityRegistrationService(f.factory, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")
	foreign := f.activity(f.wedding(), "Boat Tour", nil)

	_, err := svc.Register(f.ctx, g, foreign.Id, &dto.RegisterActivityRequest{})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRegisterLastSeatRace(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityRegistrationService(f.factory, nil, f.log)
	w := f.wedding()
	a := f.activity(w, "Cooking Class", intPtr(1))
	guests := []*entity.Guest{f.guest(w, "A"), f.guest(w, "B")}

	errs := make([]error, len(guests))
	var wg sync.WaitGroup
	for i, g := range guests {
		wg.Add(1)
		go func(i int, g *entity.Guest) {
			defer wg.Done()
			_, errs[i] = svc.Register(f.ctx, g, a.Id, &dto.RegisterActivityRequest{})
		}(i, g)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperror.IsKind(err, apperror.KindCapacityExceeded):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, full)

	count, err := f.uow().GuestActivityRepository().Count(f.ctx, specification.ByActivity{ActivityID: a.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUnregister(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityRegistrationService(f.factory, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	a := f.activity(w, "Boat Tour", intPtr(1))

	err := svc.Unregister(f.ctx, g, a.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = svc.Register(f.ctx, g, a.Id, &dto.RegisterActivityRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.Unregister(f.ctx, g, a.Id))

	// the seat is free again
	_, err = svc.Register(f.ctx, f.guest(w, "B"), a.Id, &dto.RegisterActivityRequest{})
	require.NoError(t, err)
}
