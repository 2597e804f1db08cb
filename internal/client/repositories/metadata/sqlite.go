package metadata

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM metadata`)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metadata rows: %w", err)
	}

	return result, nil
}

// Session is the cached login needed for offline authentication.
type Session struct {
	Username string
	UserID   string
	Salt     []byte
	Verifier []byte
}

// SaveSession replaces the cached session atomically.
func SaveSession(ctx context.Context, db dbx.TxBeginner, s Session) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for key, value := range map[string][]byte{
			KeyUsername: []byte(s.Username),
			KeyUserID:   []byte(s.UserID),
			KeySalt:     s.Salt,
			KeyVerifier: s.Verifier,
		} {
			if err := repo.Set(ctx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadSession returns the cached session, or ok=false when any part of it
// is missing.
func LoadSession(ctx context.Context, repo Repository) (s Session, ok bool, err error) {
	m, err := repo.List(ctx)
	if err != nil {
		return Session{}, false, err
	}
	s = Session{
		Username: string(m[KeyUsername]),
		UserID:   string(m[KeyUserID]),
		Salt:     m[KeySalt],
		Verifier: m[KeyVerifier],
	}
	if s.Username == "" || s.UserID == "" || len(s.Salt) == 0 || len(s.Verifier) == 0 {
		return Session{}, false, nil
	}
	return s, true, nil
}
