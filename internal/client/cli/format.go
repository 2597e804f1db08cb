package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/morvin2701/pixelwalls/internal/client/models"
)

const promptWidth = 48

func favMark(w models.Wallpaper) string {
	if w.Favorite {
		return "*"
	}
	return " "
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// shortURL hides the payload of inline data uris.
func shortURL(url string) string {
	if mediaType, payload, ok := strings.Cut(url, ";base64,"); ok && strings.HasPrefix(mediaType, "data:") {
		return fmt.Sprintf("%s;base64,... (%d chars)", mediaType, len(payload))
	}
	return url
}

func printRow(w io.Writer, wp models.Wallpaper) {
	fmt.Fprintf(w, "%s %-36s  %-10s %-3s %-5s %s\n",
		favMark(wp), wp.ID, wp.Category, wp.Resolution, wp.AspectRatio, truncate(wp.Prompt, promptWidth))
}

func printList(w io.Writer, items []models.Wallpaper) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No wallpapers")
		return
	}
	for _, wp := range items {
		printRow(w, wp)
	}
	fmt.Fprintf(w, "%d wallpaper(s)\n", len(items))
}

func printDetails(w io.Writer, wp models.Wallpaper) {
	fmt.Fprintf(w, "ID:           %s\n", wp.ID)
	fmt.Fprintf(w, "Prompt:       %s\n", wp.Prompt)
	fmt.Fprintf(w, "Category:     %s\n", wp.Category)
	fmt.Fprintf(w, "Resolution:   %s\n", wp.Resolution)
	fmt.Fprintf(w, "Aspect ratio: %s\n", wp.AspectRatio)
	fmt.Fprintf(w, "Created:      %s\n", wp.Created().Local().Format(time.DateTime))
	fmt.Fprintf(w, "Favorite:     %t\n", wp.Favorite)
	fmt.Fprintf(w, "Tags:         %s\n", strings.Join(wp.Tags, ", "))
	fmt.Fprintf(w, "URL:          %s\n", shortURL(wp.URL))
}
