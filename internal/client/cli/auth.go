package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/morvin2701/pixelwalls/internal/client/client"
	"github.com/morvin2701/pixelwalls/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// The method first attempts an online login. If the server is unavailable
// (errors.Is(err, client.ErrUnavailable)), it falls back to offline login
// against the cached session. On success the collection controller is
// switched to the returned user id, which loads that user's wallpapers, and
// Mode becomes:
//   - ModeOnline if online login succeeds,
//   - ModeOffline if offline login succeeds,
//   - ModeDisabled if both fail.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	mode := ModeOnline
	userID, err := a.authService.OnlineLogin(ctx, userName, password)
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			a.logger.Warn(ctx, "login failed", "user", userName, "error", err)
			return err
		}

		a.logger.Info(ctx, "server unavailable, trying offline login")
		fmt.Fprintln(a.out, "Server unavailable, trying offline login...")
		userID, err = a.authService.OfflineLogin(ctx, userName, password)
		if err != nil {
			a.logger.Warn(ctx, "offline login failed", "user", userName, "error", err)
			a.setMode(ModeDisabled)
			return err
		}
		mode = ModeOffline
	}

	if err := a.collection.Authenticate(ctx, userID); err != nil {
		return err
	}
	a.setUser(userName)
	a.setMode(mode)
	a.logger.Info(ctx, "login successful", "user", userName, "mode", mode)
	fmt.Fprintf(a.out, "Logged in as %s (%s), %d wallpapers\n", userName, mode, a.collection.Len())
	return nil
}

// Logout drops the server session and cached credentials. The collection
// stays on screen until the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.collection.Logout()
	a.setUser("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
