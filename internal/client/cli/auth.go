package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronkov/wellfinder/internal/common"
)

// Register prompts for a new identity and signs the user up.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter display name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.SignUp(ctx, email, string(password), name)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			fmt.Fprintln(a.out, "An account with this email already exists.")
			return err
		}
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(&session.Account))
	return nil
}

// Login prompts for credentials and signs the user in.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return err
		}
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", displayName(&session.Account))
	return nil
}

// Logout drops the current session. Safe to call when already signed out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Whoami prints the current session's identity.
func (a *App) Whoami(ctx context.Context) error {
	session, err := a.auth.GetSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s (%s), session expires %s\n",
		displayName(&session.Account),
		session.Account.Email,
		session.ExpiresAt.Format("2006-01-02 15:04"),
	)
	return nil
}
