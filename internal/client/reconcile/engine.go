package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/morvin2701/pixelwalls/internal/client/flatstore"
	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/common"
	"github.com/morvin2701/pixelwalls/internal/logging"
)

// Engine is safe for concurrent use. It never mutates the slices it is
// given.
type Engine struct {
	remote     RemoteStore
	structured StructuredStore
	flat       FlatStore
	logger     logging.Logger

	remoteTimeout time.Duration

	wg sync.WaitGroup
}

type Option func(*Engine)

// WithRemoteTimeout bounds every remote call. Zero means no deadline.
func WithRemoteTimeout(d time.Duration) Option {
	return func(e *Engine) { e.remoteTimeout = d }
}

// New builds an engine. remote and structured may be nil when the tier does
// not exist in this runtime; flat is required.
func New(remote RemoteStore, structured StructuredStore, flat FlatStore, logger logging.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	e := &Engine{
		remote:     remote,
		structured: structured,
		flat:       flat,
		logger:     logger.With("component", "reconcile"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadCollection returns the authoritative collection for userID.
func (e *Engine) LoadCollection(ctx context.Context, userID string) []models.Wallpaper {
	return e.Load(ctx, userID).Wallpapers
}

// Load runs the read cascade and reports which tier was adopted.
func (e *Engine) Load(ctx context.Context, userID string) LoadResult {
	res := LoadResult{Source: TierNone, Wallpapers: []models.Wallpaper{}}

	if items, out := e.readRemote(ctx, userID); e.note(ctx, &res, out) && len(items) > 0 {
		res.adopt(TierRemote, items)
		snapshot := models.CloneAll(res.Wallpapers)
		e.background(ctx, func(ctx context.Context) {
			e.writeLocal(ctx, userID, snapshot)
		})
		return res
	}

	if items, out := e.readStructured(ctx, userID); e.note(ctx, &res, out) && len(items) > 0 {
		res.adopt(TierStructured, items)
		return res
	}

	items, found, out := e.readFlat(ctx, userID)
	if e.note(ctx, &res, out) && found {
		res.adopt(TierFlat, items)
		if e.structuredSupported() {
			snapshot := models.CloneAll(res.Wallpapers)
			e.background(ctx, func(ctx context.Context) {
				e.log(ctx, e.writeStructured(ctx, userID, snapshot))
			})
		}
		return res
	}

	e.logger.Info(ctx, "no stored collection", "user", userID)
	return res
}

// PersistCollection writes snapshot to the local tiers and forwards change
// to the remote tier in the background.
func (e *Engine) PersistCollection(ctx context.Context, userID string, snapshot []models.Wallpaper, change Change) PersistResult {
	items := models.CloneAll(snapshot)
	res := PersistResult{Outcomes: e.writeLocal(ctx, userID, items)}

	if change.Kind == ChangeNone {
		return res
	}
	if !e.remoteReady() {
		e.logger.Debug(ctx, "remote tier unavailable, change kept locally", "change", change.Kind.String(), "id", change.ID)
		return res
	}
	change.Wallpaper = change.Wallpaper.Clone()
	e.background(ctx, func(ctx context.Context) {
		e.log(ctx, e.applyRemote(ctx, userID, change))
	})
	return res
}

// Wait blocks until every background write started so far has finished.
func (e *Engine) Wait() {
	e.wg.Wait()
}

func (e *Engine) remoteReady() bool {
	return e.remote != nil && e.remote.Authenticated()
}

func (e *Engine) structuredSupported() bool {
	return e.structured != nil && e.structured.IsSupported()
}

// background detaches fn from ctx cancellation so best-effort writes finish
// even after the caller returns.
func (e *Engine) background(ctx context.Context, fn func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		fn(ctx)
	}()
}

func (e *Engine) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.remoteTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, e.remoteTimeout)
}

func (e *Engine) readRemote(ctx context.Context, userID string) ([]models.Wallpaper, Outcome) {
	if e.remote == nil {
		return nil, newOutcome(TierRemote, "read", 0, common.ErrUnavailable)
	}
	if !e.remote.Authenticated() {
		return nil, newOutcome(TierRemote, "read", 0, common.ErrorUnauthorized)
	}

	rctx, cancel := e.remoteContext(ctx)
	defer cancel()

	items, err := e.remote.ReadAll(rctx, userID)
	return items, newOutcome(TierRemote, "read", len(items), err)
}

func (e *Engine) readStructured(ctx context.Context, userID string) ([]models.Wallpaper, Outcome) {
	if !e.structuredSupported() {
		return nil, newOutcome(TierStructured, "read", 0, common.ErrNotSupported)
	}
	items, err := e.structured.ReadAll(ctx, userID)
	return items, newOutcome(TierStructured, "read", len(items), err)
}

func (e *Engine) readFlat(ctx context.Context, userID string) ([]models.Wallpaper, bool, Outcome) {
	raw, ok, err := e.flat.Get(flatstore.CollectionKey(userID))
	if err != nil {
		return nil, false, newOutcome(TierFlat, "read", 0, err)
	}
	if !ok {
		return nil, false, newOutcome(TierFlat, "read", 0, nil)
	}

	var items []models.Wallpaper
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, newOutcome(TierFlat, "read", 0, fmt.Errorf("%w: %v", common.ErrCorruptData, err))
	}
	return items, true, newOutcome(TierFlat, "read", len(items), nil)
}

// writeLocal mirrors items into the structured tier and then the flat tier.
// The flat backup is attempted even if the structured write failed.
func (e *Engine) writeLocal(ctx context.Context, userID string, items []models.Wallpaper) []Outcome {
	var outcomes []Outcome
	if e.structuredSupported() {
		outcomes = append(outcomes, e.writeStructured(ctx, userID, items))
	}
	outcomes = append(outcomes, e.writeFlat(userID, items))

	for _, out := range outcomes {
		e.log(ctx, out)
	}
	return outcomes
}

func (e *Engine) writeStructured(ctx context.Context, userID string, items []models.Wallpaper) Outcome {
	err := e.structured.ReplaceAll(ctx, userID, items)
	return newOutcome(TierStructured, "replace", len(items), err)
}

func (e *Engine) writeFlat(userID string, items []models.Wallpaper) Outcome {
	if items == nil {
		items = []models.Wallpaper{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return newOutcome(TierFlat, "set", 0, fmt.Errorf("%w: %v", common.ErrCorruptData, err))
	}
	err = e.flat.Set(flatstore.CollectionKey(userID), string(b))
	return newOutcome(TierFlat, "set", len(items), err)
}

func (e *Engine) applyRemote(ctx context.Context, userID string, change Change) Outcome {
	rctx, cancel := e.remoteContext(ctx)
	defer cancel()

	var err error
	switch change.Kind {
	case ChangeCreate:
		err = e.remote.Insert(rctx, userID, change.Wallpaper)
	case ChangeUpdate:
		err = e.remote.Update(rctx, userID, change.Wallpaper)
	case ChangeDelete:
		err = e.remote.Delete(rctx, userID, change.ID)
	}
	return newOutcome(TierRemote, change.Kind.String(), 1, err)
}

// note records out on res, logs failures and reports success.
func (e *Engine) note(ctx context.Context, res *LoadResult, out Outcome) bool {
	res.Outcomes = append(res.Outcomes, out)
	e.log(ctx, out)
	return out.OK()
}

func (e *Engine) log(ctx context.Context, out Outcome) {
	if out.OK() {
		e.logger.Debug(ctx, "tier operation", "tier", string(out.Tier), "op", out.Op, "records", out.Records)
		return
	}
	if out.Kind == Unavailable {
		e.logger.Debug(ctx, "tier unavailable", "tier", string(out.Tier), "op", out.Op, "error", out.Err)
		return
	}
	e.logger.Warn(ctx, "tier operation failed",
		"tier", string(out.Tier), "op", out.Op, "kind", out.Kind.String(), "error", out.Err)
}

func (r *LoadResult) adopt(tier Tier, items []models.Wallpaper) {
	r.Source = tier
	r.Wallpapers = models.CloneAll(models.Dedupe(items))
}
