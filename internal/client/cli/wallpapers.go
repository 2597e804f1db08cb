package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/morvin2701/pixelwalls/internal/client/models"
)

// Add prompts for an image and its generation settings and adds the result
// to the collection. The image may be an http(s) or data url, or a local
// file that is uploaded (or inlined when offline) by the image service.
func (a *App) Add(ctx context.Context) error {
	source, err := getSimpleText(a.reader, "Enter image file path or URL", a.out)
	if err != nil {
		return err
	}
	if source == "" {
		return fmt.Errorf("image is required")
	}
	url, err := a.resolveImage(ctx, source)
	if err != nil {
		return err
	}

	prompt, err := getSimpleText(a.reader, "Enter prompt", a.out)
	if err != nil {
		return err
	}
	res, ratio, err := a.askFormat(models.Resolution4K, models.AspectRatio16x9)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Enter tags (comma or space separated)", a.out)
	if err != nil {
		return err
	}

	w := models.NewWallpaper(url, prompt, res, ratio, ParseTags(tags))
	if err := a.collection.Create(ctx, w); err != nil {
		return err
	}
	a.bumpCounter(ctx, CounterSaves)

	fmt.Fprintf(a.out, "Added %s (%s)\n", w.ID, w.Category)
	return nil
}

func (a *App) resolveImage(ctx context.Context, source string) (string, error) {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return source, nil
	}
	return a.images.StoreFile(ctx, source)
}

func (a *App) askFormat(defRes models.Resolution, defRatio models.AspectRatio) (models.Resolution, models.AspectRatio, error) {
	resText, err := GetTextWithDefault(a.reader, "Resolution (HD, 2K, 4K)", string(defRes), a.out)
	if err != nil {
		return "", "", err
	}
	res, err := models.ParseResolution(resText)
	if err != nil {
		return "", "", err
	}
	ratioText, err := GetTextWithDefault(a.reader, "Aspect ratio (16:9, 9:16, 1:1, 4:3, 21:9)", string(defRatio), a.out)
	if err != nil {
		return "", "", err
	}
	ratio, err := models.ParseAspectRatio(ratioText)
	if err != nil {
		return "", "", err
	}
	return res, ratio, nil
}

func (a *App) List(ctx context.Context) error {
	printList(a.out, a.collection.All())
	return nil
}

func (a *App) Favorites(ctx context.Context) error {
	printList(a.out, a.collection.Favorites())
	return nil
}

// Category lists one category; "all" lists the category names in use.
func (a *App) Category(ctx context.Context, name string) error {
	if name == "all" {
		fmt.Fprintln(a.out, strings.Join(a.collection.Categories(), ", "))
		return nil
	}
	printList(a.out, a.collection.ByCategory(strings.ToLower(name)))
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	w, err := a.collection.Get(id)
	if err != nil {
		return err
	}
	printDetails(a.out, w)
	return nil
}

func (a *App) ToggleFavorite(ctx context.Context, id string) error {
	w, err := a.collection.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	if w.Favorite {
		fmt.Fprintf(a.out, "%s added to favorites\n", id)
	} else {
		fmt.Fprintf(a.out, "%s removed from favorites\n", id)
	}
	return nil
}

// Tag replaces the tags of id; no tags clears them.
func (a *App) Tag(ctx context.Context, id string, tags []string) error {
	w, err := a.collection.SetTags(ctx, id, ParseTags(tags...))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Tags of %s: %s\n", id, strings.Join(w.Tags, ", "))
	return nil
}

// Edit prompts for new prompt and format values, keeping the current ones
// on empty input.
func (a *App) Edit(ctx context.Context, id string) error {
	w, err := a.collection.Get(id)
	if err != nil {
		return err
	}

	prompt, err := GetTextWithDefault(a.reader, "Prompt", w.Prompt, a.out)
	if err != nil {
		return err
	}
	res, ratio, err := a.askFormat(w.Resolution, w.AspectRatio)
	if err != nil {
		return err
	}

	w.Prompt, w.Resolution, w.AspectRatio = prompt, res, ratio
	updated, err := a.collection.Replace(ctx, w)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s (%s)\n", updated.ID, updated.Category)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.collection.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

func (a *App) Search(ctx context.Context, text string) error {
	printList(a.out, a.collection.FilterByQuery(text))
	return nil
}

// Filter lists wallpapers carrying every one of tags.
func (a *App) Filter(ctx context.Context, tags []string) error {
	printList(a.out, a.collection.FilterByTags(ParseTags(tags...)))
	return nil
}
