package services

import (
	"context"

	"github.com/morvin2701/pixelwalls/internal/client/client"
	"github.com/morvin2701/pixelwalls/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	CloseErr    error
	RegisterErr error

	GetSaltRet []byte
	GetSaltErr error

	LoginUserID string
	LoginErr    error

	PingErr error

	Authed       bool
	LoggedOut    bool
	UploadTarget client.UploadTarget
	UploadErr    error

	LastRegisterUser     string
	LastRegisterSalt     []byte
	LastRegisterVerifier []byte

	LastGetSaltUser string

	LastLoginUser     string
	LastLoginVerifier []byte

	LastContentType string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, verifier []byte) error {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterVerifier = append([]byte(nil), verifier...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	f.LastGetSaltUser = username
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, verifier []byte) (string, error) {
	f.LastLoginUser = username
	f.LastLoginVerifier = append([]byte(nil), verifier...)
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.Authed = true
	return f.LoginUserID, nil
}

func (f *fakeClient) Logout() {
	f.Authed = false
	f.LoggedOut = true
}

func (f *fakeClient) Authenticated() bool { return f.Authed }

func (f *fakeClient) ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error) {
	return nil, nil
}

func (f *fakeClient) Insert(ctx context.Context, userID string, w models.Wallpaper) error {
	return nil
}

func (f *fakeClient) Update(ctx context.Context, userID string, w models.Wallpaper) error {
	return nil
}

func (f *fakeClient) Delete(ctx context.Context, userID string, id string) error {
	return nil
}

func (f *fakeClient) GetUploadURL(ctx context.Context, contentType string) (client.UploadTarget, error) {
	f.LastContentType = contentType
	return f.UploadTarget, f.UploadErr
}
