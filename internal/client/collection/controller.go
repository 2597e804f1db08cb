// Package collection owns the in-memory wallpaper collection shown to the
// user and drives persistence through the reconcile engine.
//
// Mutations apply to memory synchronously and return; the resulting
// snapshot is persisted on a goroutine. Before Authenticate the controller
// serves a placeholder set and persists nothing.
package collection

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/client/reconcile"
	"github.com/morvin2701/pixelwalls/internal/common"
	"github.com/morvin2701/pixelwalls/internal/logging"
)

var ErrEmptyUserID = errors.New("empty user id")

// Persister is implemented by *reconcile.Engine.
type Persister interface {
	LoadCollection(ctx context.Context, userID string) []models.Wallpaper
	PersistCollection(ctx context.Context, userID string, snapshot []models.Wallpaper, change reconcile.Change) reconcile.PersistResult
}

type Controller struct {
	store  Persister
	logger logging.Logger

	mu     sync.RWMutex
	items  map[string]models.Wallpaper
	userID string

	wg sync.WaitGroup
}

// New returns an unauthenticated controller holding Placeholders().
func New(store Persister, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &Controller{store: store, logger: logger.With("component", "collection")}
	c.items = index(Placeholders())
	return c
}

// Authenticate switches to userID and adopts whatever the store loads, even
// an empty collection.
func (c *Controller) Authenticate(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	// pending writes must land before the tiers are read back
	c.wg.Wait()
	loaded := c.store.LoadCollection(ctx, userID)

	c.mu.Lock()
	c.userID = userID
	c.items = index(loaded)
	c.mu.Unlock()

	c.logger.Info(ctx, "collection loaded", "user", userID, "count", len(loaded))
	return nil
}

// Logout forgets the session but keeps the collection in memory.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.userID = ""
	c.mu.Unlock()
}

func (c *Controller) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID != ""
}

func (c *Controller) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// Create adds w. The id must not be present yet.
func (c *Controller) Create(ctx context.Context, w models.Wallpaper) error {
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if w.Category == "" {
		w.Category = models.Categorize(w.Prompt)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[w.ID]; ok {
		return common.ErrorAlreadyExists
	}
	c.items[w.ID] = w.Clone()
	c.persistLocked(ctx, reconcile.Created(w.Clone()))
	return nil
}

// ToggleFavorite flips the favorite flag and returns the updated record.
func (c *Controller) ToggleFavorite(ctx context.Context, id string) (models.Wallpaper, error) {
	return c.update(ctx, id, func(w *models.Wallpaper) {
		w.Favorite = !w.Favorite
	})
}

// SetTags replaces the tag list; order and duplicates are kept.
func (c *Controller) SetTags(ctx context.Context, id string, tags []string) (models.Wallpaper, error) {
	tags = slices.Clone(tags)
	if tags == nil {
		tags = []string{}
	}
	return c.update(ctx, id, func(w *models.Wallpaper) {
		w.Tags = tags
	})
}

// Replace swaps in a full record with the same id, re-classifying it when
// the prompt changed.
func (c *Controller) Replace(ctx context.Context, w models.Wallpaper) (models.Wallpaper, error) {
	next := w.Clone()
	return c.update(ctx, w.ID, func(cur *models.Wallpaper) {
		if next.Prompt != cur.Prompt || next.Category == "" {
			next.Category = models.Categorize(next.Prompt)
		}
		*cur = next
	})
}

// Delete removes id.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(c.items, id)
	c.persistLocked(ctx, reconcile.Deleted(id))
	return nil
}

func (c *Controller) update(ctx context.Context, id string, fn func(w *models.Wallpaper)) (models.Wallpaper, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.items[id]
	if !ok {
		return models.Wallpaper{}, common.ErrorNotFound
	}
	fn(&w)
	c.items[id] = w
	c.persistLocked(ctx, reconcile.Updated(w.Clone()))
	return w.Clone(), nil
}

// persistLocked snapshots the collection and hands it to the store on a
// goroutine. Callers hold c.mu.
func (c *Controller) persistLocked(ctx context.Context, change reconcile.Change) {
	if c.userID == "" {
		return
	}
	userID := c.userID
	snapshot := c.sortedLocked()
	ctx = context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		res := c.store.PersistCollection(ctx, userID, snapshot, change)
		for _, out := range res.Outcomes {
			if !out.OK() {
				c.logger.Warn(ctx, "persist incomplete", "tier", string(out.Tier), "kind", out.Kind.String(), "error", out.Err)
			}
		}
	}()
}

// Wait blocks until pending persistence calls return.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Get returns a copy of the record.
func (c *Controller) Get(id string) (models.Wallpaper, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	w, ok := c.items[id]
	if !ok {
		return models.Wallpaper{}, common.ErrorNotFound
	}
	return w.Clone(), nil
}

// All returns the collection newest first.
func (c *Controller) All() []models.Wallpaper {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortedLocked()
}

func (c *Controller) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Controller) Favorites() []models.Wallpaper {
	return c.filter(func(w models.Wallpaper) bool { return w.Favorite })
}

func (c *Controller) ByCategory(category string) []models.Wallpaper {
	category = strings.ToLower(strings.TrimSpace(category))
	return c.filter(func(w models.Wallpaper) bool { return w.Category == category })
}

// Categories lists the categories present, in classifier order.
func (c *Controller) Categories() []string {
	c.mu.RLock()
	present := make(map[string]struct{})
	for _, w := range c.items {
		present[w.Category] = struct{}{}
	}
	c.mu.RUnlock()

	var out []string
	for _, cat := range models.Categories() {
		if _, ok := present[cat]; ok {
			out = append(out, cat)
			delete(present, cat)
		}
	}
	rest := make([]string, 0, len(present))
	for cat := range present {
		rest = append(rest, cat)
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// FilterByQuery matches text case-insensitively against the prompt and each
// tag. An empty query matches everything.
func (c *Controller) FilterByQuery(text string) []models.Wallpaper {
	if text == "" {
		return c.All()
	}
	q := strings.ToLower(text)
	return c.filter(func(w models.Wallpaper) bool {
		if strings.Contains(strings.ToLower(w.Prompt), q) {
			return true
		}
		return slices.ContainsFunc(w.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), q)
		})
	})
}

// FilterByTags keeps records carrying every given tag, compared
// case-insensitively. No tags matches everything.
func (c *Controller) FilterByTags(tags []string) []models.Wallpaper {
	want := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			want = append(want, t)
		}
	}
	if len(want) == 0 {
		return c.All()
	}
	return c.filter(func(w models.Wallpaper) bool {
		for _, t := range want {
			if !slices.ContainsFunc(w.Tags, func(have string) bool { return strings.EqualFold(have, t) }) {
				return false
			}
		}
		return true
	})
}

func (c *Controller) filter(keep func(models.Wallpaper) bool) []models.Wallpaper {
	all := c.All()
	out := all[:0]
	for _, w := range all {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func (c *Controller) sortedLocked() []models.Wallpaper {
	out := make([]models.Wallpaper, 0, len(c.items))
	for _, w := range c.items {
		out = append(out, w.Clone())
	}
	models.SortNewestFirst(out)
	return out
}

func index(items []models.Wallpaper) map[string]models.Wallpaper {
	m := make(map[string]models.Wallpaper, len(items))
	for _, w := range models.Dedupe(items) {
		m[w.ID] = w.Clone()
	}
	return m
}
