package service

import (
	"testing"
	"time"

	"wedding-portal-be/internal/config"
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = config.AuthConfig{JWTSecret: "test-secret", JWTTTL: time.Hour}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.factory, testAuthConfig, f.log)

	registered, err := svc.Register(f.ctx, &dto.RegisterWeddingRequest{
		Email:       "Couple@Example.com",
		Password:    "correct horse",
		CoupleNames: "Layla & Omar",
		WeddingDate: "2026-11-20",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "couple@example.com", registered.Wedding.AdminEmail)

	weddingId, err := serverutils.ParseToken(testAuthConfig.JWTSecret, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.Wedding.Id, weddingId)

	loggedIn, err := svc.Login(f.ctx, &dto.LoginRequest{Email: "couple@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, registered.Wedding.Id, loggedIn.Wedding.Id)

	_, err = svc.Login(f.ctx, &dto.LoginRequest{Email: "couple@example.com", Password: "wrong"})
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.factory, testAuthConfig, f.log)
	req := &dto.RegisterWeddingRequest{
		Email: "couple@example.com", Password: "correct horse", CoupleNames: "A & B", WeddingDate: "2026-11-20",
	}

	_, err := svc.Register(f.ctx, req)
	require.NoError(t, err)
	_, err = svc.Register(f.ctx, req)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.factory, testAuthConfig, f.log)
	res, err := svc.Register(f.ctx, &dto.RegisterWeddingRequest{
		Email: "couple@example.com", Password: "correct horse", CoupleNames: "A & B", WeddingDate: "2026-11-20",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(f.ctx, res.Wedding.Id, &dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "battery staple"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))

	require.NoError(t, svc.ChangePassword(f.ctx, res.Wedding.Id, &dto.ChangePasswordRequest{CurrentPassword: "correct horse", NewPassword: "battery staple"}))
	_, err = svc.Login(f.ctx, &dto.LoginRequest{Email: "couple@example.com", Password: "battery staple"})
	assert.NoError(t, err)
}
