package service

import (
	"testing"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRSVP(t *testing.T) {
	f := newFixture(t)
	svc := NewRSVPService(f.factory, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")

	res, err := svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{
		RSVPStatus:        "confirmed",
		NumberOfAttendees: dto.Some(3),
		Email:             dto.Some("sara@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.RSVPStatus)
	assert.Equal(t, 3, res.NumberOfAttendees)
	assert.NotNil(t, res.RSVPSubmittedAt)

	// omitted fields stay, nulled attendees fall back to one
	res, err = svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{
		RSVPStatus:        "maybe",
		NumberOfAttendees: dto.Null[int](),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumberOfAttendees)
	require.NotNil(t, res.Email)
	assert.Equal(t, "sara@example.com", *res.Email)
	assert.Equal(t, "maybe", string(g.RSVPStatus))
}

func TestSubmitRSVPRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	svc := NewRSVPService(f.factory, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")

	_, err := svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{RSVPStatus: "attending"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))

	_, err = svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{RSVPStatus: "confirmed", NumberOfAttendees: dto.Some(0)})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
}

func TestSubmitRSVPReplacesRegistrations(t *testing.T) {
	f := newFixture(t)
	svc := NewRSVPService(f.factory, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	safari := f.activity(w, "Desert Safari", intPtr(10))
	boat := f.activity(w, "Boat Tour", nil)

	_, err := svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{
		RSVPStatus:        "confirmed",
		NumberOfAttendees: dto.Some(2),
		ActivityIds:       dto.Some([]string{safari.Id.String(), uuid.NewString(), "not-a-uuid"}),
	})
	require.NoError(t, err)

	seats, err := f.uow().GuestActivityRepository().SumParticipants(f.ctx, safari.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, seats)

	_, err = svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{
		RSVPStatus:  "confirmed",
		ActivityIds: dto.Some([]string{boat.Id.String()}),
	})
	require.NoError(t, err)

	regs, err := f.uow().GuestActivityRepository().FindAll(f.ctx, specification.ByGuest{GuestID: g.Id})
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, boat.Id, regs[0].ActivityId)
}

func TestSubmitRSVPFullActivityRollsBack(t *testing.T) {
	f := newFixture(t)
	svc := NewRSVPService(f.factory, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	class := f.activity(w, "Cooking Class", intPtr(1))

	_, err := svc.Submit(f.ctx, g, &dto.UpdateRSVPRequest{
		RSVPStatus:        "confirmed",
		NumberOfAttendees: dto.Some(2),
		ActivityIds:       dto.Some([]string{class.Id.String()}),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindCapacityExceeded))

	current, err := f.uow().GuestRepository().FindOne(f.ctx, specification.ByID{ID: g.Id})
	require.NoError(t, err)
	assert.Equal(t, "pending", string(current.RSVPStatus))
}

func TestActivityLockOrder(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	c := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	forward, malformed := activityLockOrder([]string{a.String(), c.String(), b.String()})
	assert.Empty(t, malformed)
	backward, _ := activityLockOrder([]string{b.String(), " " + c.String(), a.String(), c.String()})

	assert.Equal(t, []uuid.UUID{a, b, c}, forward)
	assert.Equal(t, forward, backward)

	ids, malformed := activityLockOrder([]string{"", "42", b.String()})
	assert.Equal(t, []uuid.UUID{b}, ids)
	assert.Equal(t, []string{"", "42"}, malformed)
}
