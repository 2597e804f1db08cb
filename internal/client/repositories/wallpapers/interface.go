package wallpapers

import (
	"context"

	"github.com/morvin2701/pixelwalls/internal/client/models"
)

type Repository interface {
	IsSupported() bool
	ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error)
	ReplaceAll(ctx context.Context, userID string, items []models.Wallpaper) error
}
