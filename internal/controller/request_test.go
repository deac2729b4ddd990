package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding-portal-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyUsesAppDecoder(t *testing.T) {
	calls := 0
	app := fiber.New(fiber.Config{
		JSONDecoder: func(data []byte, v interface{}) error {
			calls++
			return json.Unmarshal(data, v)
		},
	})

	var got dto.ChatFeedbackRequest
	app.Post("/feedback", func(ctx *fiber.Ctx) error {
		if err := parseBody(ctx, &got); err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("POST", "/feedback",
		strings.NewReader(`{"log_id":"6f1c2a52-8c1e-4f7e-9d55-0a4c9a1b2c3d","was_helpful":false}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1, calls)
	require.NotNil(t, got.Helpful)
	assert.False(t, *got.Helpful)

	req = httptest.NewRequest("POST", "/feedback", strings.NewReader(`{"log_id":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
