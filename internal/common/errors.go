// Package common defines shared constants and sentinel errors used across
// client and server layers of PixelWalls. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Storage tier errors.
	ErrUnavailable   = errors.New("server unavailable")
	ErrNotSupported  = errors.New("store not supported")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrCorruptData   = errors.New("stored data is corrupt")
)
