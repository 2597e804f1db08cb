package reconcile

import (
	"context"

	"github.com/morvin2701/pixelwalls/internal/client/models"
)

// RemoteStore is the server-side collection. An unauthenticated store is an
// unavailable tier, not a failure.
type RemoteStore interface {
	Authenticated() bool
	ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error)
	Insert(ctx context.Context, userID string, w models.Wallpaper) error
	Update(ctx context.Context, userID string, w models.Wallpaper) error
	Delete(ctx context.Context, userID string, id string) error
}

// StructuredStore is the on-device transactional store.
type StructuredStore interface {
	IsSupported() bool
	ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error)
	ReplaceAll(ctx context.Context, userID string, items []models.Wallpaper) error
}

// FlatStore is the synchronous string key/value store.
type FlatStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
