package wallpapers

import (
	"context"

	"github.com/morvin2701/pixelwalls/internal/server/models"
)

// Repository is the per-user wallpaper store. Every method is scoped by
// userID; rows of other users are invisible.
type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Wallpaper, error)
	// Upsert inserts w, replacing the row with the same (user, id).
	Upsert(ctx context.Context, w *models.Wallpaper) error
	// Update and Delete return common.ErrorNotFound when no row matches.
	Update(ctx context.Context, w *models.Wallpaper) error
	Delete(ctx context.Context, userID, id string) error
}
