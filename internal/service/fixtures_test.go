package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/dbtest"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t       *testing.T
	ctx     context.Context
	factory unitofwork.RepositoryFactory
	log     logger.ILogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		t:       t,
		ctx:     context.Background(),
		factory: unitofwork.NewRepositoryFactory(dbtest.Open(t)),
		log:     logger.NewNopLogger(),
	}
}

func (f *fixture) uow() unitofwork.UnitOfWork {
	return f.factory.NewUnitOfWork(f.ctx)
}

func (f *fixture) wedding() *entity.Wedding {
	f.t.Helper()
	w := &entity.Wedding{
		CoupleNames:       "Layla & Omar",
		WeddingDate:       time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		AdminEmail:        fmt.Sprintf("%s@example.com", uuid.NewString()),
		AdminPasswordHash: "x",
		IsActive:          true,
	}
	require.NoError(f.t, f.uow().WeddingRepository().Create(f.ctx, w))
	return w
}

func (f *fixture) guest(w *entity.Wedding, name string) *entity.Guest {
	f.t.Helper()
	token, err := NewAccessToken()
	require.NoError(f.t, err)
	g := &entity.Guest{
		WeddingId:         w.Id,
		AccessToken:       token,
		FullName:          name,
		RSVPStatus:        entity.RSVPPending,
		NumberOfAttendees: 1,
	}
	require.NoError(f.t, f.uow().GuestRepository().Create(f.ctx, g))
	return g
}

func (f *fixture) activity(w *entity.Wedding, name string, max *int) *entity.Activity {
	f.t.Helper()
	a := &entity.Activity{
		WeddingId:       w.Id,
		ActivityName:    name,
		MaxParticipants: max,
		IsOptional:      true,
		RequiresSignup:  true,
	}
	require.NoError(f.t, f.uow().ActivityRepository().Create(f.ctx, a))
	return a
}

func (f *fixture) dressCode(w *entity.Wedding, name string) *entity.DressCode {
	f.t.Helper()
	d := &entity.DressCode{WeddingId: w.Id, EventName: name}
	require.NoError(f.t, f.uow().DressCodeRepository().Create(f.ctx, d))
	return d
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
