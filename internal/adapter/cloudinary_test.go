// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCloudinary points a cloudinaryHost at the test server with a fixed clock.
func newTestCloudinary(t *testing.T, serverURL string) *cloudinaryHost {
	t.Helper()
	cfg := config.Adapter{
		MediaProvider:  config.MediaProviderCloudinary,
		RequestTimeout: 5 * time.Second,
		Cloudinary: config.Cloudinary{
			CloudName: "demo",
			APIKey:    "key",
			APISecret: "secret",
			BaseURL:   serverURL,
		},
	}

	h, err := NewCloudinaryHost(cfg, logger.Nop())
	require.NoError(t, err)

	host := h.(*cloudinaryHost)
	host.now = func() time.Time { return time.Unix(1700000000, 0) }
	return host
}

func testFile(content string) models.UploadedFile {
	return models.UploadedFile{
		Name:        "cat.png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestSignParams_DocumentedExample(t *testing.T) {
	got := signParams(map[string]string{
		"eager":     "w_400,h_300,c_pad|w_260,h_200,c_crop",
		"public_id": "sample_image",
		"timestamp": "1315060510",
		"empty":     "",
	}, "abcd")

	assert.Equal(t, "bfd09f95f331f558cbd1320e67aa8d488770583e", got)
}

func TestCloudinaryUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_1/demo/auto/upload", r.URL.Path)

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, "user_4", r.FormValue("folder"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, "916165badcd3e452ae38925b75a872bc4a496e7f", r.FormValue("signature"))

		f, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "png-bytes", string(body))
		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"public_id":"user_4/abc","secure_url":"https://res.cloudinary.com/demo/image/upload/user_4/abc.png",
			"format":"png","resource_type":"image","bytes":9,"width":640,"height":480,"asset_folder":"user_4"}`))
	}))
	defer srv.Close()

	got, err := newTestCloudinary(t, srv.URL).Upload(context.Background(), "user_4", testFile("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "user_4/abc", got.PublicID)
	assert.Equal(t, "image", got.ResourceType)
	assert.Equal(t, int64(9), got.Bytes)
	require.NotNil(t, got.Width)
	assert.Equal(t, 640, *got.Width)
	require.NotNil(t, got.Folder)
	assert.Equal(t, "user_4", *got.Folder)
}

func TestCloudinaryUpload_RawHasNoDimensions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"public_id":"user_4/doc","secure_url":"https://x/doc","resource_type":"raw","bytes":3}`))
	}))
	defer srv.Close()

	got, err := newTestCloudinary(t, srv.URL).Upload(context.Background(), "user_4", testFile("abc"))

	require.NoError(t, err)
	assert.Nil(t, got.Width)
	assert.Nil(t, got.Height)
	require.NotNil(t, got.Folder, "requested folder is used when the host reports none")
	assert.Equal(t, "user_4", *got.Folder)
}

func TestCloudinaryUpload_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "bad credentials", status: http.StatusUnauthorized, body: `{"error":{"message":"Invalid Signature"}}`, want: ErrMediaHostRejected},
		{name: "server error", status: http.StatusBadGateway, body: "", want: ErrMediaHostRequest},
		{name: "garbage body", status: http.StatusOK, body: "not json", want: ErrMediaHostRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestCloudinary(t, srv.URL).Upload(context.Background(), "user_4", testFile("x"))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCloudinaryUpload_RejectedMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	}))
	defer srv.Close()

	_, err := newTestCloudinary(t, srv.URL).Upload(context.Background(), "user_4", testFile("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
}

func TestCloudinaryDelete(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		wantPath     string
		result       string
		want         error
	}{
		{name: "image deleted", resourceType: "image", wantPath: "/v1_1/demo/image/destroy", result: "ok"},
		{name: "video deleted", resourceType: "video", wantPath: "/v1_1/demo/video/destroy", result: "ok"},
		{name: "default resource type", resourceType: "", wantPath: "/v1_1/demo/image/destroy", result: "ok"},
		{name: "not found", resourceType: "image", wantPath: "/v1_1/demo/image/destroy", result: "not found", want: ErrHostedObjectNotFound},
		{name: "unexpected result", resourceType: "image", wantPath: "/v1_1/demo/image/destroy", result: "error", want: ErrMediaHostRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "user_4/cat", r.PostForm.Get("public_id"))
				assert.Equal(t, "0d2f77ec6067795c75c4e27742859e1275c0cb3b", r.PostForm.Get("signature"))

				_, _ = w.Write([]byte(`{"result":"` + tt.result + `"}`))
			}))
			defer srv.Close()

			err := newTestCloudinary(t, srv.URL).Delete(context.Background(), "user_4/cat", tt.resourceType)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCloudinaryDelete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestCloudinary(t, url).Delete(context.Background(), "p", "image")

	assert.ErrorIs(t, err, ErrMediaHostRequest)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://api.cloudinary.com/", want: "https://api.cloudinary.com"},
		{raw: "api.cloudinary.com", want: "https://api.cloudinary.com"},
		{raw: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
		{raw: "  ", wantErr: true},
		{raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}
