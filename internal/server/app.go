// Package server wires configuration, PostgreSQL, object storage and the
// gRPC endpoint into a runnable PixelWalls server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/morvin2701/pixelwalls/internal/logging"
	"github.com/morvin2701/pixelwalls/internal/server/config"
	gs "github.com/morvin2701/pixelwalls/internal/server/grpc"
	"github.com/morvin2701/pixelwalls/internal/server/repositories/repomanager"
	"github.com/morvin2701/pixelwalls/internal/server/services"
)

// openDB is a seam for tests; the pgx driver is registered by repomanager.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
}

// NewApp opens the database, applies migrations and builds the services.
// Log output goes to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.NewJSONLogger(w, c.LogLevel)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return newApp(c, logger, db, rm), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	us := services.NewUserService(db, rm, c)
	ws := services.NewWallpaperService(db, rm)
	is := services.NewImageService(c)

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ws, is, c.SecretKey)

	return &App{config: c, logger: logger, db: db, server: srv}
}

// Run serves until ctx is cancelled, then closes the database.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")
	defer app.db.Close()

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server stopped", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
