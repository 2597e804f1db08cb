package reconcile

import (
	"context"
	"errors"
	"sync"

	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/common"
)

type remoteCall struct {
	op     string
	userID string
	id     string
}

type fakeRemote struct {
	mu      sync.Mutex
	authed  bool
	data    map[string][]models.Wallpaper
	readErr error
	opErr   error
	// block makes every call wait for ctx cancellation.
	block bool
	calls []remoteCall
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{authed: true, data: map[string][]models.Wallpaper{}}
}

func (f *fakeRemote) Authenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authed
}

func (f *fakeRemote) record(ctx context.Context, op, userID, id string) error {
	f.mu.Lock()
	f.calls = append(f.calls, remoteCall{op: op, userID: userID, id: id})
	block := f.block
	f.mu.Unlock()
	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeRemote) ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error) {
	if err := f.record(ctx, "read", userID, ""); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return models.CloneAll(f.data[userID]), nil
}

func (f *fakeRemote) Insert(ctx context.Context, userID string, w models.Wallpaper) error {
	if err := f.record(ctx, "insert", userID, w.ID); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.opErr != nil {
		return f.opErr
	}
	f.data[userID] = append(f.data[userID], w)
	return nil
}

func (f *fakeRemote) Update(ctx context.Context, userID string, w models.Wallpaper) error {
	if err := f.record(ctx, "update", userID, w.ID); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.opErr != nil {
		return f.opErr
	}
	for i, cur := range f.data[userID] {
		if cur.ID == w.ID {
			f.data[userID][i] = w
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeRemote) Delete(ctx context.Context, userID string, id string) error {
	if err := f.record(ctx, "delete", userID, id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.opErr != nil {
		return f.opErr
	}
	items := f.data[userID]
	for i, cur := range items {
		if cur.ID == id {
			f.data[userID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeRemote) Calls() []remoteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remoteCall(nil), f.calls...)
}

func (f *fakeRemote) writeCalls() []remoteCall {
	var out []remoteCall
	for _, c := range f.Calls() {
		if c.op != "read" {
			out = append(out, c)
		}
	}
	return out
}

type fakeStructured struct {
	mu        sync.Mutex
	supported bool
	data      map[string][]models.Wallpaper
	readErr   error
	writeErr  error
	writes    int
	ctxErrs   []error
}

func newFakeStructured() *fakeStructured {
	return &fakeStructured{supported: true, data: map[string][]models.Wallpaper{}}
}

func (f *fakeStructured) IsSupported() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.supported
}

func (f *fakeStructured) ReadAll(_ context.Context, userID string) ([]models.Wallpaper, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return models.CloneAll(f.data[userID]), nil
}

func (f *fakeStructured) ReplaceAll(ctx context.Context, userID string, items []models.Wallpaper) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	f.data[userID] = models.CloneAll(items)
	return nil
}

func (f *fakeStructured) Stored(userID string) ([]models.Wallpaper, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.data[userID]
	return models.CloneAll(items), ok
}

type failingFlat struct{}

func (failingFlat) Get(string) (string, bool, error) { return "", false, errors.New("disk error") }
func (failingFlat) Set(string, string) error         { return errors.New("disk error") }
