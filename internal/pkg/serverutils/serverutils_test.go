package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperror.NotFound("guest not found"), 404, "not_found"},
		{"conflict", apperror.Conflict("dup"), 409, "conflict"},
		{"capacity", apperror.CapacityExceeded("full"), 409, "capacity_exceeded"},
		{"invalid", apperror.InvalidArgument("bad"), 400, "invalid_argument"},
		{"unavailable", apperror.Unavailable("down", errors.New("x")), 503, "service_unavailable"},
		{"unauthorized", apperror.Unauthorized("no"), 401, "unauthorized"},
		{"fiber", fiber.NewError(fiber.StatusTooManyRequests, "slow down"), 429, ""},
		{"plain", errors.New("boom"), 500, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Error)
			assert.False(t, body.Success)
		})
	}
}

func TestErrorHandlerMiddlewareHidesInternalErrors(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection reset")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "connection reset")
}

func TestJwtRoundTrip(t *testing.T) {
	id := uuid.New()
	token, err := IssueToken("secret", id, time.Hour)
	require.NoError(t, err)

	got, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)

	expired, err := IssueToken("secret", id, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken("secret", expired)
	assert.Error(t, err)
}

func TestJwtMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewJwtMiddleware("secret"))
	app.Get("/me", func(ctx *fiber.Ctx) error {
		id, err := WeddingId(ctx)
		if err != nil {
			return err
		}
		return ctx.SendString(id.String())
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	id := uuid.New()
	token, err := IssueToken("secret", id, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id.String(), string(raw))
}

func TestValidateRequestUsesJsonNames(t *testing.T) {
	type payload struct {
		FullName string `json:"full_name" validate:"required"`
		Email    string `json:"email" validate:"omitempty,email"`
	}

	err := ValidateRequest(&payload{Email: "nope"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	assert.Contains(t, err.Error(), "full_name is required")
	assert.Contains(t, err.Error(), "email must be a valid email")

	body, _ := json.Marshal(SuccessResponse("ok", 1))
	assert.JSONEq(t, `{"success":true,"code":200,"message":"ok","data":1}`, string(body))
}
