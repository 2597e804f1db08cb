package repomanager

import (
	"context"
	"database/sql"

	"github.com/morvin2701/pixelwalls/internal/dbx"
	"github.com/morvin2701/pixelwalls/internal/server/repositories/refreshtokens"
	"github.com/morvin2701/pixelwalls/internal/server/repositories/users"
	"github.com/morvin2701/pixelwalls/internal/server/repositories/wallpapers"
)

// RepositoryManager hands out repositories bound to a DBTX so services can
// run them on the pool or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Wallpapers(db dbx.DBTX) wallpapers.Repository
}
