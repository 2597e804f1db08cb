package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/morvin2701/pixelwalls/internal/client/collection"
	"github.com/morvin2701/pixelwalls/internal/client/flatstore"
	"github.com/morvin2701/pixelwalls/internal/client/reconcile"
	"github.com/morvin2701/pixelwalls/internal/client/repositories/wallpapers"
	"github.com/morvin2701/pixelwalls/internal/client/services"
)

type fakeAuth struct {
	mu sync.Mutex

	// Register
	regUser string
	regPass []byte
	regErr  error

	// OnlineLogin
	onlineUser string
	onlineID   string
	onlineErr  error

	// OfflineLogin
	offlineCalled bool
	offlineID     string
	offlineErr    error

	// Logout
	logoutCalled bool
	logoutErr    error

	pingErr     error
	pings       int
	closeCalled bool
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, _ []byte) (string, error) {
	f.onlineUser = user
	return f.onlineID, f.onlineErr
}
func (f *fakeAuth) OfflineLogin(_ context.Context, _ string, _ []byte) (string, error) {
	f.offlineCalled = true
	return f.offlineID, f.offlineErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Close(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalled = true
	return nil
}
func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}
func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

type testEnv struct {
	app      *App
	out      *bytes.Buffer
	auth     *fakeAuth
	ctrl     *collection.Controller
	engine   *reconcile.Engine
	counters *flatstore.Counters
}

// newTestApp builds an App over an in-memory flat tier with no remote or
// SQLite tier. input feeds the interactive prompts.
func newTestApp(t *testing.T, auth *fakeAuth, input ...string) *testEnv {
	t.Helper()
	if auth == nil {
		auth = &fakeAuth{}
	}
	engine := reconcile.New(nil, wallpapers.NewUnsupported(), flatstore.NewFileStore("", 0), nil)
	ctrl := collection.New(engine, nil)
	counters := flatstore.NewCounters(flatstore.NewFileStore("", 0))
	out := &bytes.Buffer{}

	in := strings.Join(input, "\n")
	if len(input) > 0 {
		in += "\n"
	}
	app := NewApp(Deps{
		Auth:       auth,
		Images:     services.NewImageService(nil, nil),
		Collection: ctrl,
		Counters:   counters,
		Waiters:    []interface{ Wait() }{engine},
		In:         strings.NewReader(in),
		Out:        out,
	})
	t.Cleanup(func() {
		ctrl.Wait()
		engine.Wait()
	})
	return &testEnv{app: app, out: out, auth: auth, ctrl: ctrl, engine: engine, counters: counters}
}

// login authenticates env as user "u-1" without consuming prompts.
func (e *testEnv) login(t *testing.T) {
	t.Helper()
	if err := e.ctrl.Authenticate(context.Background(), "u-1"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
}
