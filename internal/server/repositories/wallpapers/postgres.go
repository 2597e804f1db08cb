// Package wallpapers is the PostgreSQL store behind the server's collection
// endpoints. Tags are kept in a JSONB column.
package wallpapers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/common"
	"github.com/morvin2701/pixelwalls/internal/dbx"
	"github.com/morvin2701/pixelwalls/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func decodeTags(raw []byte) ([]string, error) {
	tags := []string{}
	if len(raw) == 0 {
		return tags, nil
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("%w: tags: %v", common.ErrCorruptData, err)
	}
	return tags, nil
}

// List returns the user's wallpapers, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Wallpaper, error) {
	query := `
		SELECT id, url, prompt, resolution, aspect_ratio, created_at, favorite, category, tags, updated_at
		FROM wallpapers
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Wallpaper, 0)
	for rows.Next() {
		w := &models.Wallpaper{UserID: userID}
		var tags []byte
		if err := rows.Scan(&w.ID, &w.URL, &w.Prompt, &w.Resolution, &w.AspectRatio,
			&w.CreatedAt, &w.Favorite, &w.Category, &tags, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if w.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, w *models.Wallpaper) error {
	tags, err := encodeTags(w.Tags)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO wallpapers (user_id, id, url, prompt, resolution, aspect_ratio, created_at, favorite, category, tags, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, NOW())
		ON CONFLICT (user_id, id) DO UPDATE SET
			url = EXCLUDED.url,
			prompt = EXCLUDED.prompt,
			resolution = EXCLUDED.resolution,
			aspect_ratio = EXCLUDED.aspect_ratio,
			created_at = EXCLUDED.created_at,
			favorite = EXCLUDED.favorite,
			category = EXCLUDED.category,
			tags = EXCLUDED.tags,
			updated_at = NOW()
	`
	_, err = r.db.ExecContext(ctx, query, w.UserID, w.ID, w.URL, w.Prompt, w.Resolution,
		w.AspectRatio, w.CreatedAt, w.Favorite, w.Category, tags)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, w *models.Wallpaper) error {
	tags, err := encodeTags(w.Tags)
	if err != nil {
		return err
	}
	query := `
		UPDATE wallpapers SET
			url = $3, prompt = $4, resolution = $5, aspect_ratio = $6,
			created_at = $7, favorite = $8, category = $9, tags = $10::jsonb,
			updated_at = NOW()
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, w.UserID, w.ID, w.URL, w.Prompt, w.Resolution,
		w.AspectRatio, w.CreatedAt, w.Favorite, w.Category, tags)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM wallpapers
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
