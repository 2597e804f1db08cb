package client

import (
	"context"

	"github.com/morvin2701/pixelwalls/internal/client/models"
)

// UploadTarget is a presigned object-storage slot for one image.
type UploadTarget struct {
	Key       string
	UploadURL string
	PublicURL string
}

// Client is the PixelWalls server API as seen by the CLI.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	// Login returns the server-assigned user id.
	Login(ctx context.Context, username string, verifier []byte) (string, error)
	Logout()
	Authenticated() bool

	ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error)
	Insert(ctx context.Context, userID string, w models.Wallpaper) error
	Update(ctx context.Context, userID string, w models.Wallpaper) error
	Delete(ctx context.Context, userID string, id string) error

	GetUploadURL(ctx context.Context, contentType string) (UploadTarget, error)
}
