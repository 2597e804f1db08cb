package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/morvin2701/pixelwalls/internal/client/collection"
	"github.com/morvin2701/pixelwalls/internal/client/config"
	"github.com/morvin2701/pixelwalls/internal/client/flatstore"
	"github.com/morvin2701/pixelwalls/internal/client/services"
	"github.com/morvin2701/pixelwalls/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// Counter names kept per user in the flat store.
const (
	CounterDownloads = "downloads"
	CounterSaves     = "saves"
)

// Deps are the collaborators App is built from.
type Deps struct {
	Config     *config.Config
	Auth       services.AuthService
	Images     *services.ImageService
	Collection *collection.Controller
	Counters   *flatstore.Counters
	Logger     logging.Logger
	// Waiters are drained before the app exits so queued writes land.
	Waiters []interface{ Wait() }
	In      io.Reader
	Out     io.Writer
}

type App struct {
	config      *config.Config
	authService services.AuthService
	images      *services.ImageService
	collection  *collection.Controller
	counters    *flatstore.Counters
	logger      logging.Logger
	waiters     []interface{ Wait() }

	reader *bufio.Reader
	out    io.Writer

	mu       sync.RWMutex
	mode     Mode
	userName string
}

func NewApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Config == nil {
		d.Config = &config.Config{}
		d.Config.LoadDefaults()
	}
	return &App{
		config:      d.Config,
		authService: d.Auth,
		images:      d.Images,
		collection:  d.Collection,
		counters:    d.Counters,
		logger:      d.Logger.With("component", "cli"),
		waiters:     d.Waiters,
		reader:      bufio.NewReader(d.In),
		out:         d.Out,
	}
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "mode switched", "mode", mode)
	}
}

func (a *App) userLabel() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userName
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

func (a *App) isLoggedIn() bool {
	return a.collection.Authenticated()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.userLabel(); u != "" {
		s = u + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the connectivity watcher and blocks in the REPL until the user
// exits or input ends. Pending writes are drained before it returns.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.shutdown(ctx)

	fmt.Fprintln(a.out, "Welcome to PixelWalls CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) shutdown(ctx context.Context) {
	a.collection.Wait()
	for _, w := range a.waiters {
		w.Wait()
	}
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "close failed", "error", err)
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
