package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-media-keeper/internal/mock"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(ctrl *gomock.Controller, maxSize int64) (MediaService, *mock.MockMediaService) {
	inner := mock.NewMockMediaService(ctrl)
	return NewMediaValidationService(maxSize).Wrap(inner), inner
}

func TestMediaValidationService_Upload_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		file    models.UploadedFile
		wantErr error
	}{
		{
			name:    "no content",
			file:    models.UploadedFile{Name: "a.png", ContentType: "image/png", Size: 10},
			wantErr: ErrMediaFileMissing,
		},
		{
			name:    "empty file",
			file:    models.UploadedFile{Name: "a.png", ContentType: "image/png", Content: strings.NewReader("")},
			wantErr: ErrMediaFileMissing,
		},
		{
			name:    "too large",
			file:    models.UploadedFile{Name: "a.png", ContentType: "image/png", Size: 101, Content: strings.NewReader("x")},
			wantErr: ErrMediaTooLarge,
		},
		{
			name:    "pdf",
			file:    models.UploadedFile{Name: "a.pdf", ContentType: "application/pdf", Size: 10, Content: strings.NewReader("x")},
			wantErr: ErrUnsupportedMediaType,
		},
		{
			name:    "missing content type",
			file:    models.UploadedFile{Name: "a", Size: 10, Content: strings.NewReader("x")},
			wantErr: ErrUnsupportedMediaType,
		},
		{
			name:    "svg is not allowed",
			file:    models.UploadedFile{Name: "a.svg", ContentType: "image/svg+xml", Size: 10, Content: strings.NewReader("x")},
			wantErr: ErrUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestValidationSvc(ctrl, 100)

			_, err := svc.Upload(context.Background(), 1, tt.file)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMediaValidationService_Upload_NormalizesContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(ctrl, 100)

	inner.EXPECT().Upload(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, f models.UploadedFile) (models.Media, error) {
			assert.Equal(t, "video/mp4", f.ContentType)
			return models.Media{ID: 3}, nil
		},
	)

	media, err := svc.Upload(context.Background(), 1, models.UploadedFile{
		Name:        "clip.mp4",
		ContentType: "Video/MP4; codecs=avc1",
		Size:        100,
		Content:     strings.NewReader("x"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), media.ID)
}

func TestMediaValidationService_NoLimitWhenZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(ctrl, 0)

	inner.EXPECT().Upload(gomock.Any(), int64(1), gomock.Any()).Return(models.Media{ID: 1}, nil)

	_, err := svc.Upload(context.Background(), 1, models.UploadedFile{ContentType: "image/gif", Size: 1 << 40, Content: strings.NewReader("x")})

	require.NoError(t, err)
}

func TestMediaValidationService_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newTestValidationSvc(ctrl, 100)
	ctx := context.Background()

	inner.EXPECT().List(ctx, int64(1)).Return([]models.Media{{ID: 1}}, nil)
	inner.EXPECT().Get(ctx, int64(1), int64(2)).Return(models.Media{ID: 2}, nil)
	inner.EXPECT().Delete(ctx, int64(1), int64(2)).Return(nil)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	media, err := svc.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), media.ID)

	require.NoError(t, svc.Delete(ctx, 1, 2))
}
