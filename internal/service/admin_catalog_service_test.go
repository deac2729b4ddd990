package service

import (
	"testing"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCreateDefaultsAndCounts(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.factory, f.log)
	w := f.wedding()

	created, err := svc.Create(f.ctx, w.Id, &dto.ActivityRequest{ActivityName: "Boat Tour", MaxParticipants: intPtr(6)})
	require.NoError(t, err)
	assert.True(t, created.IsOptional)
	assert.True(t, created.RequiresSignup)
	assert.Equal(t, "Boat Tour", created.Title)
	assert.Equal(t, 6, *created.Capacity)

	g := f.guest(w, "Sara Haddad")
	_, err = NewActivityRegistrationService(f.factory, nil, f.log).Register(f.ctx, g, created.Id, &dto.RegisterActivityRequest{NumberOfParticipants: 2})
	require.NoError(t, err)

	list, err := svc.List(f.ctx, w.Id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].CurrentParticipants)
	assert.Equal(t, 4, *list[0].SpotsLeft)

	regs, err := svc.Registrations(f.ctx, w.Id, created.Id)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Sara Haddad", regs[0].GuestName)

	require.NoError(t, svc.Delete(f.ctx, w.Id, created.Id))
	n, err := f.uow().GuestActivityRepository().Count(f.ctx, specification.ByGuest{GuestID: g.Id})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestActivityIsTenantScoped(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.factory, f.log)
	a := f.activity(f.wedding(), "Boat Tour", nil)

	_, err := svc.Show(f.ctx, f.wedding().Id, a.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestReorderHotels(t *testing.T) {
	f := newFixture(t)
	svc := NewCatalogService(f.factory, f.log)
	w := f.wedding()

	first, err := svc.CreateHotel(f.ctx, w.Id, &dto.SuggestedHotelRequest{HotelName: "Riad Yasmine"})
	require.NoError(t, err)
	second, err := svc.CreateHotel(f.ctx, w.Id, &dto.SuggestedHotelRequest{HotelName: "Palais Namaskar"})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	list, err := svc.ReorderHotels(f.ctx, w.Id, &dto.ReorderRequest{Items: []dto.ReorderItem{
		{Id: first.Id, DisplayOrder: 2},
		{Id: second.Id, DisplayOrder: 1},
	}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Id, list[0].Id)
	assert.Equal(t, first.Id, list[1].Id)
}

func TestDeleteDressCodeRemovesPreferences(t *testing.T) {
	f := newFixture(t)
	svc := NewCatalogService(f.factory, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	code, err := svc.CreateDressCode(f.ctx, w.Id, &dto.DressCodeRequest{EventName: "Henna Night", EventDate: strPtr("2026-11-19")})
	require.NoError(t, err)
	_, err = NewPreferenceService(f.factory, f.log).UpsertDress(f.ctx, g, &dto.DressPreferenceRequest{DressCodeId: code.Id})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDressCode(f.ctx, w.Id, code.Id))
	n, err := f.uow().GuestDressPreferenceRepository().Count(f.ctx, specification.ByGuest{GuestID: g.Id})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.CreateDressCode(f.ctx, w.Id, &dto.DressCodeRequest{EventName: "Ceremony", EventDate: strPtr("tomorrow")})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	svc := NewWeddingService(f.factory, f.log)
	rsvp := NewRSVPService(f.factory, nil, f.log)
	w := f.wedding()
	a := f.guest(w, "A")
	b := f.guest(w, "B")
	f.guest(w, "C")
	f.guest(f.wedding(), "Elsewhere")

	_, err := rsvp.Submit(f.ctx, a, &dto.UpdateRSVPRequest{RSVPStatus: "confirmed", NumberOfAttendees: dto.Some(3)})
	require.NoError(t, err)
	_, err = rsvp.Submit(f.ctx, b, &dto.UpdateRSVPRequest{RSVPStatus: "declined"})
	require.NoError(t, err)
	_, err = NewPreferenceService(f.factory, f.log).UpsertTravel(f.ctx, a, &dto.TravelInfoRequest{NeedsPickup: dto.Some(true)})
	require.NoError(t, err)
	require.NoError(t, f.uow().MediaUploadRepository().Create(f.ctx, &entity.MediaUpload{
		WeddingId: w.Id, GuestId: a.Id, FileType: entity.FileTypeImage, FileName: "a.jpg", ObjectKey: "k", FileUrl: "u", FileSize: 1,
	}))

	stats, err := svc.DashboardStats(f.ctx, w.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalGuests)
	assert.EqualValues(t, 1, stats.RSVPCounts["confirmed"])
	assert.EqualValues(t, 1, stats.RSVPCounts["declined"])
	assert.EqualValues(t, 1, stats.RSVPCounts["pending"])
	assert.EqualValues(t, 3, stats.ConfirmedAttendees)
	assert.EqualValues(t, 1, stats.TravelSubmitted)
	assert.EqualValues(t, 0, stats.HotelSubmitted)
	assert.EqualValues(t, 1, stats.MediaPending)
	assert.EqualValues(t, 1, stats.MediaTotal)
}
