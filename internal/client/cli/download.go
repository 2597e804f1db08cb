package cli

import (
	"context"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/filex"
)

// Download saves the image of id to path.
func (a *App) Download(ctx context.Context, id, path string) error {
	w, err := a.collection.Get(id)
	if err != nil {
		return err
	}
	data, err := a.images.Download(ctx, w.URL)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(path, data, 0o644); err != nil {
		return err
	}
	a.bumpCounter(ctx, CounterDownloads)

	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), path)
	return nil
}

// Stats prints collection totals and, when logged in, the user's counters.
func (a *App) Stats(ctx context.Context) error {
	all := a.collection.All()
	favorites := 0
	perCategory := make(map[string]int)
	for _, w := range all {
		if w.Favorite {
			favorites++
		}
		perCategory[w.Category]++
	}

	fmt.Fprintf(a.out, "Wallpapers: %d\n", len(all))
	fmt.Fprintf(a.out, "Favorites:  %d\n", favorites)
	for _, c := range models.Categories() {
		if n := perCategory[c]; n > 0 {
			fmt.Fprintf(a.out, "  %-10s %d\n", c, n)
		}
	}

	if userID := a.collection.UserID(); userID != "" && a.counters != nil {
		fmt.Fprintf(a.out, "Downloads:  %d\n", a.counters.Get(userID, CounterDownloads))
		fmt.Fprintf(a.out, "Saves:      %d\n", a.counters.Get(userID, CounterSaves))
	}
	return nil
}

func (a *App) bumpCounter(ctx context.Context, name string) {
	userID := a.collection.UserID()
	if userID == "" || a.counters == nil {
		return
	}
	if _, err := a.counters.Increment(userID, name); err != nil {
		a.logger.Warn(ctx, "counter update failed", "counter", name, "error", err)
	}
}
