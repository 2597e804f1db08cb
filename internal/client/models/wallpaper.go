// Package models defines the client-side wallpaper record and its
// enumerations.
package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidValue is returned by the Parse helpers for values outside the
// closed sets.
var ErrInvalidValue = errors.New("invalid value")

type Resolution string

const (
	ResolutionHD Resolution = "HD"
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

// Resolutions lists accepted resolutions in display order.
var Resolutions = []Resolution{ResolutionHD, Resolution2K, Resolution4K}

type AspectRatio string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio21x9 AspectRatio = "21:9"
)

// AspectRatios lists accepted aspect ratios in display order.
var AspectRatios = []AspectRatio{AspectRatio16x9, AspectRatio9x16, AspectRatio1x1, AspectRatio4x3, AspectRatio21x9}

// ParseResolution accepts a resolution case-insensitively.
func ParseResolution(s string) (Resolution, error) {
	r := Resolution(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(Resolutions, r) {
		return "", fmt.Errorf("resolution %q: %w", s, ErrInvalidValue)
	}
	return r, nil
}

// ParseAspectRatio accepts "16:9" as well as "16x9".
func ParseAspectRatio(s string) (AspectRatio, error) {
	a := AspectRatio(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "x", ":"))
	if !slices.Contains(AspectRatios, a) {
		return "", fmt.Errorf("aspect ratio %q: %w", s, ErrInvalidValue)
	}
	return a, nil
}

// Wallpaper is one generated image in a user's collection.
type Wallpaper struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	Prompt      string      `json:"prompt"`
	Resolution  Resolution  `json:"resolution"`
	AspectRatio AspectRatio `json:"aspectRatio"`
	// CreatedAt is milliseconds since the Unix epoch.
	CreatedAt int64    `json:"createdAt"`
	Favorite  bool     `json:"favorite"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
}

// NewWallpaper builds a record with a fresh id, the current time and a
// category derived from the prompt.
func NewWallpaper(url, prompt string, res Resolution, ratio AspectRatio, tags []string) Wallpaper {
	if tags == nil {
		tags = []string{}
	}
	return Wallpaper{
		ID:          uuid.NewString(),
		URL:         url,
		Prompt:      prompt,
		Resolution:  res,
		AspectRatio: ratio,
		CreatedAt:   time.Now().UnixMilli(),
		Category:    Categorize(prompt),
		Tags:        tags,
	}
}

// Clone returns a deep copy.
func (w Wallpaper) Clone() Wallpaper {
	w.Tags = slices.Clone(w.Tags)
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return w
}

// Created returns CreatedAt as a time.
func (w Wallpaper) Created() time.Time {
	return time.UnixMilli(w.CreatedAt)
}

// CloneAll deep-copies a list.
func CloneAll(ws []Wallpaper) []Wallpaper {
	out := make([]Wallpaper, len(ws))
	for i, w := range ws {
		out[i] = w.Clone()
	}
	return out
}

// Dedupe drops records whose id was already seen; the first one wins.
func Dedupe(ws []Wallpaper) []Wallpaper {
	seen := make(map[string]struct{}, len(ws))
	out := make([]Wallpaper, 0, len(ws))
	for _, w := range ws {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		out = append(out, w)
	}
	return out
}

// SortNewestFirst orders by CreatedAt descending, ties by id.
func SortNewestFirst(ws []Wallpaper) {
	slices.SortStableFunc(ws, func(a, b Wallpaper) int {
		if a.CreatedAt != b.CreatedAt {
			if a.CreatedAt > b.CreatedAt {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
}
