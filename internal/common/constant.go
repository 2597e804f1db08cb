// Package common contains shared constants and sentinel errors used across
// PixelWalls components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// CollectionKeyPrefix prefixes the flat-store key holding a user's
// serialized wallpaper collection.
const CollectionKeyPrefix = "pixelwalls_wallpapers"

// CounterKeyPrefix prefixes flat-store keys of per-user counters.
const CounterKeyPrefix = "pixelwalls_counter"
