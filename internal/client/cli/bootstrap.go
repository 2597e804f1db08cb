package cli

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/morvin2701/pixelwalls/internal/client/client"
	"github.com/morvin2701/pixelwalls/internal/client/collection"
	"github.com/morvin2701/pixelwalls/internal/client/config"
	"github.com/morvin2701/pixelwalls/internal/client/flatstore"
	"github.com/morvin2701/pixelwalls/internal/client/reconcile"
	"github.com/morvin2701/pixelwalls/internal/client/services"
	"github.com/morvin2701/pixelwalls/internal/filex"
	"github.com/morvin2701/pixelwalls/internal/logging"
)

// Bootstrap wires the three storage tiers, the API client and the services
// into an App. A SQLite database that cannot be opened is logged and the
// structured tier runs as unsupported. The returned func releases the
// database; App.Run closes the API client.
func Bootstrap(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, func(), error) {
	if logger == nil {
		logger = logging.Nop()
	}

	var db *sql.DB
	if !cfg.DisableStructuredStore {
		var err error
		db, err = client.InitDatabase(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Warn(ctx, "structured store unavailable", "dsn", cfg.DatabaseDSN, "error", err)
			db = nil
		}
	}
	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
	}
	repos := client.NewRepositories(db)

	if cfg.FlatStorePath != "" {
		if _, err := filex.EnsureDir(filepath.Dir(cfg.FlatStorePath)); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("flat store dir: %w", err)
		}
	}
	flat := flatstore.NewFileStore(cfg.FlatStorePath, cfg.FlatStoreQuota)

	api, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var opts []reconcile.Option
	if cfg.RemoteTimeout > 0 {
		opts = append(opts, reconcile.WithRemoteTimeout(cfg.RemoteTimeout))
	}
	engine := reconcile.New(api, repos.Wallpapers, flat, logger, opts...)

	app := NewApp(Deps{
		Config:     cfg,
		Auth:       services.NewAuthService(api, db),
		Images:     services.NewImageService(api, logger),
		Collection: collection.New(engine, logger),
		Counters:   flatstore.NewCounters(flat),
		Logger:     logger,
		Waiters:    []interface{ Wait() }{engine},
	})
	return app, cleanup, nil
}
