// Package cli provides the interactive PixelWalls command-line client.
//
// It wires configuration, the tiered wallpaper store, API services and an
// interactive REPL that supports online/offline operation. Typical flow:
// start a background connectivity watcher, log in (online, or offline against
// the cached session) and browse or edit the collection.
//
// Key features:
//   - Register / Login / Logout (online with offline fallback)
//   - Add wallpapers from local files or URLs
//   - List, filter, search and show wallpapers
//   - Favorite, tag, edit, delete and download
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
