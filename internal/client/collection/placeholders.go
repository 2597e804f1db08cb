package collection

import "github.com/morvin2701/pixelwalls/internal/client/models"

// Placeholders is the demo set shown before anyone logs in.
func Placeholders() []models.Wallpaper {
	demo := []struct {
		id, prompt string
		res        models.Resolution
		ratio      models.AspectRatio
		tags       []string
	}{
		{"demo-aurora", "Aurora over a frozen lake, long exposure", models.Resolution4K, models.AspectRatio16x9, []string{"demo", "night"}},
		{"demo-nebula", "Violet nebula with distant galaxy", models.Resolution4K, models.AspectRatio21x9, []string{"demo"}},
		{"demo-tokyo", "Rainy neon street in Tokyo at midnight", models.Resolution2K, models.AspectRatio9x16, []string{"demo", "rain"}},
		{"demo-fox", "Red fox curled up in the snow", models.Resolution2K, models.AspectRatio4x3, []string{"demo"}},
		{"demo-gradient", "Minimal peach to teal gradient", models.ResolutionHD, models.AspectRatio1x1, []string{"demo"}},
	}

	out := make([]models.Wallpaper, len(demo))
	// fixed timestamps keep the demo order stable
	base := int64(1704067200000)
	for i, d := range demo {
		out[i] = models.Wallpaper{
			ID:          d.id,
			URL:         "https://images.pixelwalls.app/demo/" + d.id + ".jpg",
			Prompt:      d.prompt,
			Resolution:  d.res,
			AspectRatio: d.ratio,
			CreatedAt:   base - int64(i)*60_000,
			Category:    models.Categorize(d.prompt),
			Tags:        d.tags,
		}
	}
	return out
}
