package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and starts a session. The username of the
// previous login is offered as the default. The password byte slice is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	last, err := a.store.LastUsername(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading last username", "error", err)
	}

	prompt := "Username"
	if last != "" {
		prompt += " [" + last + "]"
	}
	username, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}
	if username == "" {
		a.println(MsgSignIn)
		return common.ErrorEmptyInput
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Login(ctx, username, password)
	if err != nil {
		a.println(loginMessage(err))
		a.log.Info(ctx, "login unsuccessful", "user", username, "error", err)
		return err
	}

	a.setIdentity(&s.Identity)
	a.printf("Selamat datang, %s (%s)\n", s.Identity.Username, s.Identity.Role)
	a.log.Info(ctx, "login successful", "user", username)
	return nil
}

// Logout closes the open screen and removes the stored token.
func (a *App) Logout(ctx context.Context) error {
	a.closeScreen()
	if err := a.auth.Logout(ctx); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.setIdentity(nil)
	a.println("Anda telah logout")
	return nil
}

// WhoAmI prints the identity decoded from the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	s, cancel, ok := a.protect(ctx)
	if !ok {
		return errNoSession
	}
	defer cancel()

	const layout = "2006-01-02 15:04:05"
	a.printf("%s\nid: %s\nberlaku sampai: %s\n", s.Identity, s.Identity.ID,
		s.Identity.ExpiresAt.Local().Format(layout))

	since, err := a.store.SignedInAt(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading sign-in time", "error", err)
	} else if !since.IsZero() {
		a.printf("masuk sejak: %s\n", since.Local().Format(layout))
	}
	return nil
}

// Forget logs out and wipes every locally stored value, including the
// remembered username.
func (a *App) Forget(ctx context.Context) error {
	a.closeScreen()
	if err := a.store.Forget(ctx); err != nil {
		a.fail(ctx, err)
		return err
	}
	a.setIdentity(nil)
	a.println("Data lokal telah dihapus")
	return nil
}

// MsgBadCredentials replaces the session message for a rejected login.
const MsgBadCredentials = "Username atau password salah"

func loginMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		if apiErr.ServerMessage != "" {
			return apiErr.ServerMessage
		}
		return MsgBadCredentials
	}
	return client.UserMessage(err)
}
