// Package reconcile keeps one user's wallpaper collection consistent across
// three storage tiers: the remote server, the local SQLite store and the
// local flat file store.
//
// Reads cascade remote > structured > flat and adopt the first tier that
// yields at least one record; an empty result falls through exactly like an
// unreachable tier. Whatever the remote returns is mirrored into the local
// tiers in the background, and a flat-tier hit is mirrored into the
// structured tier.
//
// Writes replace the whole collection in the structured store, then write
// the same snapshot to the flat store as a backup, then send the single
// record change to the remote on a goroutine. Nothing is retried or rolled
// back; every tier failure is logged and reported as an Outcome, never
// returned as an error.
package reconcile
