package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"
	"wedding-portal-be/internal/service"
	"wedding-portal-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the row lock on a real Postgres: many guests race for few seats.
func TestActivityCapacityUnderContention(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	svc := service.NewActivityRegistrationService(factory, nil, logger.NewNopLogger())

	wedding := &entity.Wedding{
		CoupleNames:       "Integration Couple",
		WeddingDate:       time.Now().AddDate(0, 1, 0),
		AdminEmail:        fmt.Sprintf("race-%s@example.com", uuid.NewString()),
		AdminPasswordHash: "x",
		IsActive:          true,
	}
	require.NoError(t, factory.NewUnitOfWork(ctx).WeddingRepository().Create(ctx, wedding))
	t.Cleanup(func() {
		db.Delete(&model.Wedding{}, "id = ?", wedding.Id)
	})

	const seats = 3
	max := seats
	activity := &entity.Activity{
		WeddingId:       wedding.Id,
		ActivityName:    "Hot Air Balloon",
		MaxParticipants: &max,
		IsOptional:      true,
		RequiresSignup:  true,
	}
	require.NoError(t, factory.NewUnitOfWork(ctx).ActivityRepository().Create(ctx, activity))

	guests := make([]*entity.Guest, 10)
	for i := range guests {
		token, err := service.NewAccessToken()
		require.NoError(t, err)
		guests[i] = &entity.Guest{
			WeddingId:         wedding.Id,
			AccessToken:       token,
			FullName:          fmt.Sprintf("Guest %d", i),
			RSVPStatus:        entity.RSVPPending,
			NumberOfAttendees: 1,
		}
		require.NoError(t, factory.NewUnitOfWork(ctx).GuestRepository().Create(ctx, guests[i]))
	}

	errs := make([]error, len(guests))
	var wg sync.WaitGroup
	for i, g := range guests {
		wg.Add(1)
		go func(i int, g *entity.Guest) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, g, activity.Id, &dto.RegisterActivityRequest{})
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
	assert.Equal(t, seats, ok)
	assert.Equal(t, len(guests)-seats, full)

	count, err := factory.NewUnitOfWork(ctx).GuestActivityRepository().Count(ctx, specification.ByActivity{ActivityID: activity.Id})
	require.NoError(t, err)
	assert.EqualValues(t, seats, count)
}
