// Package client talks to the PixelWalls server and bootstraps the local
// SQLite database.
//
// GRPCClient is the remote tier of the wallpaper collection. It keeps the
// JWT access/refresh pair obtained at login, attaches the access token to
// every call through a unary interceptor and refreshes it once when the
// server answers "token expired". gRPC status codes are mapped to the
// sentinel errors in errors.go so callers can use errors.Is.
//
// A client that has not logged in reports Authenticated() == false; the
// collection operations then fail with ErrUnauthorized without touching the
// network.
//
// InitDatabase and RunMigrations open the client SQLite file and apply the
// embedded goose migrations; NewRepositories wires the repositories on top.
package client
