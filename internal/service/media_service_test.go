package service

import (
	"errors"
	"strings"
	"testing"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaKind(t *testing.T) {
	tests := []struct {
		contentType string
		kind        entity.FileType
		limit       int64
		wantErr     bool
	}{
		{"image/jpeg", entity.FileTypeImage, MaxImageBytes, false},
		{"Image/PNG", entity.FileTypeImage, MaxImageBytes, false},
		{"video/mp4", entity.FileTypeVideo, MaxVideoBytes, false},
		{"application/pdf", "", 0, true},
		{"", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			kind, limit, err := MediaKind(tt.contentType)
			if tt.wantErr {
				assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	f := newFixture(t)
	storage := &mockStorage{}
	svc := NewMediaService(f.factory, storage, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")

	_, err := svc.Upload(f.ctx, g, &dto.UploadMediaRequest{
		FileName: "big.jpg", ContentType: "image/jpeg", Size: MaxImageBytes + 1, Reader: strings.NewReader(""),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadStoresAndRecords(t *testing.T) {
	f := newFixture(t)
	storage := &mockStorage{}
	svc := NewMediaService(f.factory, storage, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	storage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "weddings/"+w.Id.String()+"/guests/"+g.Id.String()+"/") && strings.HasSuffix(key, ".mp4")
	}), mock.Anything, int64(2048), "video/mp4").Return("http://cdn/clip.mp4", int64(2048), nil)

	res, err := svc.Upload(f.ctx, g, &dto.UploadMediaRequest{
		FileName: "Clip.MP4", ContentType: "video/mp4", Size: 2048, Reader: strings.NewReader("x"),
		Caption: strPtr("first dance"),
	})
	require.NoError(t, err)
	storage.AssertExpectations(t)

	assert.Equal(t, "video", res.FileType)
	assert.Equal(t, "http://cdn/clip.mp4", res.FileUrl)
	assert.False(t, res.IsApproved)

	pending := false
	page, err := svc.List(f.ctx, w.Id, &dto.ListMediaRequest{Approved: &pending})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sara Haddad", page.Items[0].GuestName)
}

func TestUploadStorageFailureIsUnavailable(t *testing.T) {
	f := newFixture(t)
	storage := &mockStorage{}
	svc := NewMediaService(f.factory, storage, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")

	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", int64(0), errors.New("connection refused"))

	_, err := svc.Upload(f.ctx, g, &dto.UploadMediaRequest{
		FileName: "a.png", ContentType: "image/png", Size: 10, Reader: strings.NewReader("x"),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindExternalServiceUnavailable))
}

func TestUploadWithoutStorage(t *testing.T) {
	f := newFixture(t)
	svc := NewMediaService(f.factory, nil, nil, f.log)
	g := f.guest(f.wedding(), "Sara Haddad")

	_, err := svc.Upload(f.ctx, g, &dto.UploadMediaRequest{
		FileName: "a.png", ContentType: "image/png", Size: 10, Reader: strings.NewReader("x"),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindExternalServiceUnavailable))
}

func TestApproveAndReject(t *testing.T) {
	f := newFixture(t)
	storage := &mockStorage{}
	svc := NewMediaService(f.factory, storage, nil, f.log)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("http://cdn/a.png", int64(10), nil)
	first, err := svc.Upload(f.ctx, g, &dto.UploadMediaRequest{FileName: "a.png", ContentType: "image/png", Size: 10, Reader: strings.NewReader("x")})
	require.NoError(t, err)
	second, err := svc.Upload(f.ctx, g, &dto.UploadMediaRequest{FileName: "b.png", ContentType: "image/png", Size: 10, Reader: strings.NewReader("x")})
	require.NoError(t, err)

	approved, err := svc.Approve(f.ctx, w.Id, first.Id)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.NotNil(t, approved.ApprovedAt)

	_, err = svc.Approve(f.ctx, f.wedding().Id, first.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	storage.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, svc.Reject(f.ctx, w.Id, second.Id))

	page, err := svc.List(f.ctx, w.Id, &dto.ListMediaRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.Id, page.Items[0].Id)
}

func TestDeleteOwnMediaOnly(t *testing.T) {
	f := newFixture(t)
	storage := &mockStorage{}
	svc := NewMediaService(f.factory, storage, nil, f.log)
	w := f.wedding()
	owner := f.guest(w, "Sara Haddad")
	other := f.guest(w, "Omar Khalil")

	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("http://cdn/a.png", int64(10), nil)
	media, err := svc.Upload(f.ctx, owner, &dto.UploadMediaRequest{FileName: "a.png", ContentType: "image/png", Size: 10, Reader: strings.NewReader("x")})
	require.NoError(t, err)

	err = svc.DeleteOwn(f.ctx, other, media.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	storage.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, svc.DeleteOwn(f.ctx, owner, media.Id))
}
