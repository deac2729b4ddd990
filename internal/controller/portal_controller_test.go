package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAccess struct{ mock.Mock }

func (m *mockAccess) Resolve(ctx context.Context, token string) (*entity.Wedding, *entity.Guest, error) {
	args := m.Called(ctx, token)
	w, _ := args.Get(0).(*entity.Wedding)
	g, _ := args.Get(1).(*entity.Guest)
	return w, g, args.Error(2)
}

func (m *mockAccess) ResolveForPortal(ctx context.Context, token string) (*entity.Wedding, *entity.Guest, error) {
	args := m.Called(ctx, token)
	w, _ := args.Get(0).(*entity.Wedding)
	g, _ := args.Get(1).(*entity.Guest)
	return w, g, args.Error(2)
}

func (m *mockAccess) RotateToken(ctx context.Context, weddingId, guestId uuid.UUID) (string, error) {
	args := m.Called(ctx, weddingId, guestId)
	return args.String(0), args.Error(1)
}

type mockMedia struct{ mock.Mock }

func (m *mockMedia) Upload(ctx context.Context, guest *entity.Guest, req *dto.UploadMediaRequest) (*dto.MediaResponse, error) {
	args := m.Called(ctx, guest, req)
	res, _ := args.Get(0).(*dto.MediaResponse)
	return res, args.Error(1)
}

func (m *mockMedia) DeleteOwn(ctx context.Context, guest *entity.Guest, mediaId uuid.UUID) error {
	return m.Called(ctx, guest, mediaId).Error(0)
}

func (m *mockMedia) List(ctx context.Context, weddingId uuid.UUID, req *dto.ListMediaRequest) (*dto.PaginatedResponse[dto.MediaResponse], error) {
	args := m.Called(ctx, weddingId, req)
	res, _ := args.Get(0).(*dto.PaginatedResponse[dto.MediaResponse])
	return res, args.Error(1)
}

func (m *mockMedia) Approve(ctx context.Context, weddingId, mediaId uuid.UUID) (*dto.MediaResponse, error) {
	args := m.Called(ctx, weddingId, mediaId)
	res, _ := args.Get(0).(*dto.MediaResponse)
	return res, args.Error(1)
}

func (m *mockMedia) Reject(ctx context.Context, weddingId, mediaId uuid.UUID) error {
	return m.Called(ctx, weddingId, mediaId).Error(0)
}

type mockRegistrations struct{ mock.Mock }

func (m *mockRegistrations) Register(ctx context.Context, guest *entity.Guest, activityId uuid.UUID, req *dto.RegisterActivityRequest) (*dto.RegistrationResponse, error) {
	args := m.Called(ctx, guest, activityId, req)
	res, _ := args.Get(0).(*dto.RegistrationResponse)
	return res, args.Error(1)
}

func (m *mockRegistrations) Unregister(ctx context.Context, guest *entity.Guest, activityId uuid.UUID) error {
	return m.Called(ctx, guest, activityId).Error(0)
}

type portalHarness struct {
	app           *fiber.App
	access        *mockAccess
	media         *mockMedia
	registrations *mockRegistrations
	wedding       *entity.Wedding
	guest         *entity.Guest
}

func newPortalHarness(t *testing.T) *portalHarness {
	t.Helper()
	h := &portalHarness{
		access:        &mockAccess{},
		media:         &mockMedia{},
		registrations: &mockRegistrations{},
		wedding:       &entity.Wedding{Id: uuid.New(), IsActive: true},
	}
	h.guest = &entity.Guest{Id: uuid.New(), WeddingId: h.wedding.Id, FullName: "Amira Haddad"}

	h.app = fiber.New()
	h.app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	NewPortalController(h.access, nil, nil, h.registrations, nil, h.media).RegisterRoutes(h.app.Group("/api"))

	t.Cleanup(func() {
		h.access.AssertExpectations(t)
		h.media.AssertExpectations(t)
		h.registrations.AssertExpectations(t)
	})
	return h
}

func (h *portalHarness) known(token string) {
	h.access.On("Resolve", mock.Anything, token).Return(h.wedding, h.guest, nil)
}

func multipartBody(t *testing.T, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if content != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="clip.mp4"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestUploadMediaBuildsRequestFromForm(t *testing.T) {
	h := newPortalHarness(t)
	h.known("tok")

	content := []byte("fake video bytes")
	h.media.On("Upload", mock.Anything, h.guest, mock.MatchedBy(func(req *dto.UploadMediaRequest) bool {
		return req.FileName == "clip.mp4" &&
			req.ContentType == "video/mp4" &&
			req.Size == int64(len(content)) &&
			req.Caption != nil && *req.Caption == "First dance" &&
			req.EventTag == nil
	})).Return(&dto.MediaResponse{Id: uuid.New(), FileType: "video", UploadedAt: time.Now()}, nil)

	body, ct := multipartBody(t, "video/mp4", content, map[string]string{"caption": " First dance ", "event_tag": " "})
	req := httptest.NewRequest(http.MethodPost, "/api/guest/tok/media/upload", body)
	req.Header.Set("Content-Type", ct)

	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUploadMediaWithoutFile(t *testing.T) {
	h := newPortalHarness(t)
	h.known("tok")

	body, ct := multipartBody(t, "", nil, map[string]string{"caption": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/guest/tok/media/upload", body)
	req.Header.Set("Content-Type", ct)

	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownTokenIsNotFound(t *testing.T) {
	h := newPortalHarness(t)
	h.access.On("Resolve", mock.Anything, "nope").Return(nil, nil, apperror.NotFound("guest not found"))

	resp, err := h.app.Test(httptest.NewRequest(http.MethodGet, "/api/guest/nope/media", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var env serverutils.Response[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
}

func TestRegisterActivity(t *testing.T) {
	t.Run("empty body uses defaults", func(t *testing.T) {
		h := newPortalHarness(t)
		h.known("tok")
		activityId := uuid.New()
		h.registrations.On("Register", mock.Anything, h.guest, activityId, &dto.RegisterActivityRequest{}).
			Return(&dto.RegistrationResponse{Id: uuid.New(), ActivityId: activityId, NumberOfParticipants: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/guest/tok/activities/"+activityId.String()+"/register", nil)
		resp, err := h.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("bad activity id", func(t *testing.T) {
		h := newPortalHarness(t)
		h.known("tok")

		req := httptest.NewRequest(http.MethodPost, "/api/guest/tok/activities/not-a-uuid/register", nil)
		resp, err := h.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("capacity maps to conflict", func(t *testing.T) {
		h := newPortalHarness(t)
		h.known("tok")
		activityId := uuid.New()
		h.registrations.On("Register", mock.Anything, h.guest, activityId, mock.Anything).
			Return(nil, apperror.CapacityExceeded("activity is full"))

		req := httptest.NewRequest(http.MethodPost, "/api/guest/tok/activities/"+activityId.String()+"/register",
			strings.NewReader(`{"number_of_participants":2}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := h.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}
