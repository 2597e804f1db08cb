// Package wallpapers is the local structured tier: a SQLite table of
// wallpapers keyed by (user_id, id).
//
// Writes are whole-collection: ReplaceAll deletes the user's rows and
// inserts the new set in one transaction, so readers see either the old or
// the new collection, never a mix. ReadAll returns rows in the order they
// were written.
//
// A repository built with NewUnsupported models a runtime without a local
// database; IsSupported reports false and every call fails with
// common.ErrNotSupported.
//
//	repo := wallpapers.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, userID, items)
//	items, _ := repo.ReadAll(ctx, userID)
package wallpapers
