package wallpapers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/common"
	"github.com/morvin2701/pixelwalls/internal/dbx"
)

// SQLiteRepository implements Repository over an *sql.DB.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// NewUnsupported returns a repository for a runtime without local storage.
func NewUnsupported() *SQLiteRepository {
	return &SQLiteRepository{}
}

func (r *SQLiteRepository) IsSupported() bool {
	return r.db != nil
}

// ReadAll returns every wallpaper stored for userID in write order.
func (r *SQLiteRepository) ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error) {
	if !r.IsSupported() {
		return nil, common.ErrNotSupported
	}

	query := `SELECT id, url, prompt, resolution, aspect_ratio, created_at, favorite, category, tags
		FROM wallpapers WHERE user_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select wallpapers: %w", err)
	}
	defer rows.Close()

	result := []models.Wallpaper{}
	for rows.Next() {
		var (
			w    models.Wallpaper
			tags string
		)
		if err := rows.Scan(&w.ID, &w.URL, &w.Prompt, &w.Resolution, &w.AspectRatio,
			&w.CreatedAt, &w.Favorite, &w.Category, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan wallpaper row: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &w.Tags); err != nil {
			return nil, fmt.Errorf("wallpaper %s tags: %w: %v", w.ID, common.ErrCorruptData, err)
		}
		if w.Tags == nil {
			w.Tags = []string{}
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallpaper rows: %w", err)
	}
	return result, nil
}

// ReplaceAll makes the stored collection for userID equal to items.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, userID string, items []models.Wallpaper) error {
	if !r.IsSupported() {
		return common.ErrNotSupported
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM wallpapers WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("failed to clear wallpapers: %w", err)
		}

		query := `INSERT INTO wallpapers
			(user_id, id, position, url, prompt, resolution, aspect_ratio, created_at, favorite, category, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, w := range items {
			tags := w.Tags
			if tags == nil {
				tags = []string{}
			}
			b, err := json.Marshal(tags)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, userID, w.ID, i, w.URL, w.Prompt,
				string(w.Resolution), string(w.AspectRatio), w.CreatedAt, w.Favorite, w.Category, string(b)); err != nil {
				return fmt.Errorf("failed to insert wallpaper %s: %w", w.ID, err)
			}
		}
		return nil
	})
}
