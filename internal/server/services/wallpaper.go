package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/morvin2701/pixelwalls/internal/server/models"
	"github.com/morvin2701/pixelwalls/internal/server/repositories/repomanager"
)

// WallpaperService serves one user's collection. The caller supplies the
// user id taken from the access token; nothing here trusts an id from the
// request body.
type WallpaperService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWallpaperService(db *sql.DB, m repomanager.RepositoryManager) *WallpaperService {
	return &WallpaperService{db: db, repomanager: m}
}

func (s *WallpaperService) List(ctx context.Context, userID string) ([]*models.Wallpaper, error) {
	items, err := s.repomanager.Wallpapers(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing wallpapers: %w", err)
	}
	return items, nil
}

// Insert stores w for userID. An existing id is overwritten.
func (s *WallpaperService) Insert(ctx context.Context, userID string, w *models.Wallpaper) error {
	if err := validate(w); err != nil {
		return err
	}
	w.UserID = userID
	if err := s.repomanager.Wallpapers(s.db).Upsert(ctx, w); err != nil {
		return fmt.Errorf("error inserting wallpaper: %w", err)
	}
	return nil
}

// Update replaces w. A missing id wraps common.ErrorNotFound.
func (s *WallpaperService) Update(ctx context.Context, userID string, w *models.Wallpaper) error {
	if err := validate(w); err != nil {
		return err
	}
	w.UserID = userID
	if err := s.repomanager.Wallpapers(s.db).Update(ctx, w); err != nil {
		return fmt.Errorf("error updating wallpaper: %w", err)
	}
	return nil
}

// Delete removes id. A missing id wraps common.ErrorNotFound.
func (s *WallpaperService) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty wallpaper id", ErrInvalidArgument)
	}
	if err := s.repomanager.Wallpapers(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting wallpaper: %w", err)
	}
	return nil
}

func validate(w *models.Wallpaper) error {
	switch {
	case w == nil:
		return fmt.Errorf("%w: missing wallpaper", ErrInvalidArgument)
	case strings.TrimSpace(w.ID) == "":
		return fmt.Errorf("%w: empty wallpaper id", ErrInvalidArgument)
	case strings.TrimSpace(w.URL) == "":
		return fmt.Errorf("%w: empty wallpaper url", ErrInvalidArgument)
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return nil
}
