package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/morvin2701/pixelwalls/internal/client/client"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestStore_InlineWhenOffline(t *testing.T) {
	svc := NewImageService(&fakeClient{}, nil)

	url, err := svc.Store(context.Background(), pngHeader)
	require.NoError(t, err)
	require.Equal(t, EncodeDataURI("image/png", pngHeader), url)

	ct, data, err := DecodeDataURI(url)
	require.NoError(t, err)
	require.Equal(t, "image/png", ct)
	require.Equal(t, pngHeader, data)
}

func TestStore_NilClient(t *testing.T) {
	svc := NewImageService(nil, nil)
	url, err := svc.Store(context.Background(), pngHeader)
	require.NoError(t, err)
	require.Contains(t, url, "data:image/png;base64,")
}

func TestStore_RejectsNonImages(t *testing.T) {
	svc := NewImageService(nil, nil)
	_, err := svc.Store(context.Background(), []byte("just some text"))
	require.ErrorIs(t, err, ErrNotAnImage)
}

func TestStore_UploadsWhenOnline(t *testing.T) {
	var (
		got           []byte
		method, gotCT string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, gotCT = r.Method, r.Header.Get("Content-Type")
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fc := &fakeClient{Authed: true, UploadTarget: client.UploadTarget{
		Key:       "wallpapers/u/k",
		UploadURL: srv.URL + "/put",
		PublicURL: "https://cdn.example/wallpapers/u/k",
	}}
	svc := NewImageService(fc, nil)

	url, err := svc.Store(context.Background(), pngHeader)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/wallpapers/u/k", url)
	require.Equal(t, pngHeader, got)
	require.Equal(t, http.MethodPut, method)
	require.Equal(t, "image/png", gotCT)
	require.Equal(t, "image/png", fc.LastContentType)
}

func TestStore_FallsBackToInlineOnUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	for name, fc := range map[string]*fakeClient{
		"presign error": {Authed: true, UploadErr: errors.New("boom")},
		"put rejected":  {Authed: true, UploadTarget: client.UploadTarget{UploadURL: srv.URL}},
	} {
		t.Run(name, func(t *testing.T) {
			url, err := NewImageService(fc, nil).Store(context.Background(), pngHeader)
			require.NoError(t, err)
			require.Equal(t, EncodeDataURI("image/png", pngHeader), url)
		})
	}
}

func TestStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	svc := NewImageService(nil, nil)
	url, err := svc.StoreFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, EncodeDataURI("image/png", pngHeader), url)

	_, err = svc.StoreFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	svc := NewImageService(nil, nil)

	data, err := svc.Download(context.Background(), EncodeDataURI("image/png", pngHeader))
	require.NoError(t, err)
	require.Equal(t, pngHeader, data)

	data, err = svc.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, pngHeader, data)

	_, err = svc.Download(context.Background(), "data:image/png,raw")
	require.ErrorIs(t, err, ErrBadDataURI)
}

func TestDecodeDataURI_Errors(t *testing.T) {
	_, _, err := DecodeDataURI("https://x")
	require.ErrorIs(t, err, ErrBadDataURI)

	_, _, err = DecodeDataURI("data:image/png;base64,!!!")
	require.ErrorIs(t, err, ErrBadDataURI)
}
