// Package metadata stores small key/value facts about the local session in
// the SQLite metadata table: who logged in last and the salt/verifier pair
// needed to log in again without the server.
package metadata

import (
	"context"
)

const (
	KeyUsername = "username"
	KeyUserID   = "user_id"
	KeySalt     = "salt"
	KeyVerifier = "verifier"
)

// Repository is the metadata table contract. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
