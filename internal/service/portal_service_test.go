package service

import (
	"testing"

	"wedding-portal-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotTravelAppearsAfterUpsert(t *testing.T) {
	f := newFixture(t)
	portal := NewPortalService(f.factory, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	snap, err := portal.Snapshot(f.ctx, w, g)
	require.NoError(t, err)
	assert.Nil(t, snap.TravelInfo)
	assert.Nil(t, snap.HotelInfo)
	assert.Nil(t, snap.FoodPreference)
	assert.Equal(t, "Sara Haddad", snap.Guest.FullName)

	_, err = NewPreferenceService(f.factory, f.log).UpsertTravel(f.ctx, g, &dto.TravelInfoRequest{
		ArrivalDate:         dto.Some("2026-11-18"),
		ArrivalFlightNumber: dto.Some("EK203"),
	})
	require.NoError(t, err)

	snap, err = portal.Snapshot(f.ctx, w, g)
	require.NoError(t, err)
	require.NotNil(t, snap.TravelInfo)
	require.NotNil(t, snap.TravelInfo.ArrivalDate)
	assert.Equal(t, "2026-11-18", *snap.TravelInfo.ArrivalDate)
}

func TestSnapshotActivitiesCarryCountsAndRegistration(t *testing.T) {
	f := newFixture(t)
	portal := NewPortalService(f.factory, f.log)
	register := NewActivityRegistrationService(f.factory, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	other := f.guest(w, "Omar Khalil")
	a := f.activity(w, "Boat Tour", intPtr(5))
	f.activity(w, "Desert Safari", nil)

	_, err := register.Register(f.ctx, other, a.Id, &dto.RegisterActivityRequest{NumberOfParticipants: 2})
	require.NoError(t, err)
	_, err = register.Register(f.ctx, g, a.Id, &dto.RegisterActivityRequest{})
	require.NoError(t, err)

	activities, err := portal.Activities(f.ctx, w, g)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	for _, item := range activities {
		if item.Id != a.Id {
			assert.False(t, item.IsRegistered)
			assert.Nil(t, item.SpotsLeft)
			continue
		}
		assert.True(t, item.IsRegistered)
		require.NotNil(t, item.Registration)
		assert.Equal(t, 3, item.CurrentParticipants)
		require.NotNil(t, item.SpotsLeft)
		assert.Equal(t, 2, *item.SpotsLeft)
	}
}

func TestSnapshotDressCodesCarryOwnPreference(t *testing.T) {
	f := newFixture(t)
	portal := NewPortalService(f.factory, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	henna := f.dressCode(w, "Henna Night")
	f.dressCode(w, "Ceremony")

	_, err := NewPreferenceService(f.factory, f.log).UpsertDress(f.ctx, f.guest(w, "Omar"), &dto.DressPreferenceRequest{
		DressCodeId: henna.Id, ColorChoice: dto.Some("gold"),
	})
	require.NoError(t, err)

	codes, err := portal.DressCodes(f.ctx, w, g)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	for _, c := range codes {
		assert.Nil(t, c.GuestPreference)
	}
}
