package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"wedding-portal-be/internal/bootstrap"
	"wedding-portal-be/internal/config"
	"wedding-portal-be/internal/pkg/dbtest"
	"wedding-portal-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newApp boots the full container against SQLite with every optional
// backend pointed at an unreachable address.
func newApp(t *testing.T) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("JWT_SECRET", "integration-secret")
	t.Setenv("LOG_FILE_PATH", filepath.Join(dir, "app.log"))
	t.Setenv("CHAT_LOG_FILE_PATH", filepath.Join(dir, "chat.log"))
	t.Setenv("NATS_URL", "nats://127.0.0.1:1")
	t.Setenv("REDIS_URL", "redis://127.0.0.1:1")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("LLM_PROVIDER", "none")
	t.Setenv("CLIENT_URL", "https://portal.example.com")

	cfg := config.Load()
	container := bootstrap.NewContainer(dbtest.Open(t), cfg)
	t.Cleanup(container.Close)

	return server.New(cfg, container).GetApp()
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestGuestPortalFlow(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, http.MethodPost, "/api/admin/auth/register", "", map[string]string{
		"email":        "Couple@Example.com",
		"password":     "supersecret",
		"couple_names": "Layla & Omar",
		"wedding_date": "2026-11-20",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)

	t.Run("admin routes need a token", func(t *testing.T) {
		status, _ := call(t, app, http.MethodGet, "/api/admin/guests", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	status, env = call(t, app, http.MethodPost, "/api/admin/guests", auth.Token, map[string]interface{}{
		"full_name": "Amira Haddad",
		"country":   "Jordan",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var guest struct {
		Id              string  `json:"id"`
		AccessToken     string  `json:"access_token"`
		PortalLink      string  `json:"portal_link"`
		CountryOfOrigin *string `json:"country_of_origin"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &guest))
	require.Len(t, guest.AccessToken, 43)
	assert.Equal(t, "https://portal.example.com/guest/"+guest.AccessToken, guest.PortalLink)
	require.NotNil(t, guest.CountryOfOrigin)
	assert.Equal(t, "Jordan", *guest.CountryOfOrigin)

	portal := "/api/guest/" + guest.AccessToken

	t.Run("snapshot", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, portal, "", nil)
		require.Equal(t, http.StatusOK, status, env.Message)

		var snap struct {
			Guest struct {
				FullName string `json:"full_name"`
			} `json:"guest"`
			Wedding struct {
				CoupleNames string `json:"couple_names"`
			} `json:"wedding"`
			TravelInfo *json.RawMessage `json:"travel_info"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &snap))
		assert.Equal(t, "Amira Haddad", snap.Guest.FullName)
		assert.Equal(t, "Layla & Omar", snap.Wedding.CoupleNames)
		assert.Nil(t, snap.TravelInfo)
	})

	t.Run("unknown token", func(t *testing.T) {
		status, env := call(t, app, http.MethodGet, "/api/guest/not-a-real-token", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.False(t, env.Success)
	})

	t.Run("travel upsert", func(t *testing.T) {
		status, env := call(t, app, http.MethodPut, portal+"/travel", "", map[string]interface{}{
			"arrival_date": "2026-11-18",
			"needs_pickup": true,
		})
		require.Equal(t, http.StatusOK, status, env.Message)

		var travel struct {
			ArrivalDate *string `json:"arrival_date"`
			NeedsPickup bool    `json:"needs_pickup"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &travel))
		require.NotNil(t, travel.ArrivalDate)
		assert.Equal(t, "2026-11-18", *travel.ArrivalDate)
		assert.True(t, travel.NeedsPickup)
	})

	t.Run("bad travel date", func(t *testing.T) {
		status, _ := call(t, app, http.MethodPut, portal+"/travel", "", map[string]interface{}{
			"arrival_date": "18/11/2026",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rsvp", func(t *testing.T) {
		status, env := call(t, app, http.MethodPut, portal+"/rsvp", "", map[string]interface{}{
			"rsvp_status":      "confirmed",
			"number_of_guests": 2,
		})
		require.Equal(t, http.StatusOK, status, env.Message)

		var res struct {
			RSVPStatus        string `json:"rsvp_status"`
			NumberOfAttendees int    `json:"number_of_attendees"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "confirmed", res.RSVPStatus)
		assert.Equal(t, 2, res.NumberOfAttendees)
	})

	t.Run("chat falls back without a model", func(t *testing.T) {
		status, env := call(t, app, http.MethodPost, "/api/chatbot/chat/"+guest.AccessToken, "", map[string]string{
			"message":    "Which hotel should I book?",
			"session_id": "s-1",
		})
		require.Equal(t, http.StatusOK, status, env.Message)

		var chat struct {
			Response string  `json:"response"`
			Topic    *string `json:"topic"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &chat))
		assert.NotEmpty(t, chat.Response)
		require.NotNil(t, chat.Topic)
		assert.Equal(t, "hotel", *chat.Topic)
	})

	t.Run("rotated token invalidates the old link", func(t *testing.T) {
		status, env := call(t, app, http.MethodPost, "/api/admin/guests/"+guest.Id+"/regenerate-link", auth.Token, nil)
		require.Equal(t, http.StatusOK, status, env.Message)

		status, _ = call(t, app, http.MethodGet, portal, "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
