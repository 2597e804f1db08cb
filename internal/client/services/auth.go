// Package services contains application services for the PixelWalls client.
// This file defines the authentication service: online/offline login, register,
// liveness probe, and housekeeping of the cached session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/client/client"
	"github.com/morvin2701/pixelwalls/internal/client/repositories/metadata"
	"github.com/morvin2701/pixelwalls/internal/cryptox"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server and cache the session.
//   - OfflineLogin: verify credentials against the cached session.
//   - Register: create a new user on the server.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//   - Logout: drop tokens and wipe the cached session.
//
// Both logins return the user id the collection is scoped by.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) (string, error)
	OnlineLogin(ctx context.Context, username string, password []byte) (string, error)
	Register(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and
// DB. A nil db disables the session cache, and with it offline login.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

// OfflineLogin checks password against the cached verifier. Returns
// client.ErrLocalDataNotAvailable when nothing is cached and
// client.ErrUnauthorized on mismatch.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) (string, error) {
	if a.db == nil {
		return "", client.ErrLocalDataNotAvailable
	}

	s, ok, err := metadata.LoadSession(ctx, metadata.NewSQLiteRepository(a.db))
	if err != nil {
		return "", fmt.Errorf("load session error: %w", err)
	}
	if !ok {
		return "", client.ErrLocalDataNotAvailable
	}
	if s.Username != username {
		return "", client.ErrUnauthorized
	}

	if !cryptox.EqualVerifiers(s.Verifier, cryptox.VerifierFor(password, s.Salt)) {
		return "", client.ErrUnauthorized
	}
	return s.UserID, nil
}

// OnlineLogin authenticates against the server and caches username, user id,
// salt and verifier for later offline logins.
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) (string, error) {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get salt error: %w", err)
	}

	verifier := cryptox.VerifierFor(password, salt)

	userID, err := a.client.Login(ctx, username, verifier)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if a.db != nil {
		s := metadata.Session{Username: username, UserID: userID, Salt: salt, Verifier: verifier}
		if err := metadata.SaveSession(ctx, a.db, s); err != nil {
			return "", fmt.Errorf("offline data saving error: %w", err)
		}
	}
	return userID, nil
}

// Register creates a new account with a fresh salt and the derived verifier.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if username == "" {
		return errors.New("username is required")
	}
	salt := cryptox.NewSalt()
	return a.client.Register(ctx, username, salt, cryptox.VerifierFor(password, salt))
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()
	if a.db == nil {
		return nil
	}
	return metadata.NewSQLiteRepository(a.db).Clear(ctx)
}
