package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/client/migrations"
	"github.com/morvin2701/pixelwalls/internal/client/repositories/metadata"
	"github.com/morvin2701/pixelwalls/internal/client/repositories/wallpapers"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories groups the local SQLite repositories.
type Repositories struct {
	DB         *sql.DB
	Metadata   metadata.Repository
	Wallpapers *wallpapers.SQLiteRepository
}

// RunMigrations applies the embedded client schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite file at dsn and brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// in-memory DSNs are private to a connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewRepositories wires the repositories over db. A nil db yields an
// unsupported structured tier and no metadata cache.
func NewRepositories(db *sql.DB) *Repositories {
	if db == nil {
		return &Repositories{Wallpapers: wallpapers.NewUnsupported()}
	}
	return &Repositories{
		DB:         db,
		Metadata:   metadata.NewSQLiteRepository(db),
		Wallpapers: wallpapers.NewSQLiteRepository(db),
	}
}
