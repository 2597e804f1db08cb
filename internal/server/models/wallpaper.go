package models

import "time"

// Wallpaper is one row of a user's collection. CreatedAt is the client's
// creation time in Unix milliseconds and is stored as given.
type Wallpaper struct {
	ID          string
	UserID      string
	URL         string
	Prompt      string
	Resolution  string
	AspectRatio string
	CreatedAt   int64
	Favorite    bool
	Category    string
	Tags        []string
	UpdatedAt   time.Time
}
