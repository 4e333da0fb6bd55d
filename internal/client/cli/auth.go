package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/roadcase/roadcase-cli/internal/client/api"
	"github.com/roadcase/roadcase-cli/internal/client/services"
)

// getSimpleText, getPassword, and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Login prompts for credentials and signs in.
//
// On success the session service has persisted the token and fetched the
// profile; the guard will move the shell to the show list. Failures are
// reported to the user and returned unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.SignIn(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Server unavailable, try again later.")
		case errors.Is(err, services.ErrInvalidCredentials):
			fmt.Println("Invalid email or password.")
		default:
			fmt.Println("Login failed:", err.Error())
		}
		return err
	}

	if s := a.sessions.Session(); s != nil {
		fmt.Printf("Signed in as %s\n", s.User.Email)
	}
	return nil
}

// Register prompts for account details and signs up. On success it runs the
// onboarding step: the user may name their first band, which is created on
// the new account before the shell moves on to the show list.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.SignUp(ctx, name, email, password); err != nil {
		switch {
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Server unavailable, try again later.")
		case errors.Is(err, services.ErrRegistrationFailed):
			fmt.Println("Registration failed, check the details and try again.")
		default:
			fmt.Println("Registration failed:", err.Error())
		}
		return err
	}

	fmt.Println("Account created.")

	// Onboarding: offer to create a first band right away.
	band, err := getSimpleText(a.reader, "Name your first band (leave blank to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if band != "" {
		if err := a.sessions.CreateTeam(ctx, band); err != nil {
			fmt.Println("Could not create band:", err.Error())
			return err
		}
		if err := a.events.FetchTeams(ctx); err != nil {
			a.log.Warn(ctx, "team fetch after onboarding failed", "error", err)
		}
		fmt.Printf("Band %q created.\n", band)
	}
	return nil
}

// Logout signs out and returns the shell to the login route via the guard.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// WhoAmI prints the signed-in profile.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Session()
	if s == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", s.User.Name, s.User.Email)
	return nil
}

// Deactivate schedules account deletion after a double confirmation. The
// server keeps the account for 30 days; signing back in within that window
// cancels the deletion.
func (a *App) Deactivate(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Deactivate your account?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	ok, err = getConfirmation(a.reader, "Your account will be deleted in 30 days unless you sign back in. Continue?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if err := a.sessions.Deactivate(ctx); err != nil {
		fmt.Println("Deactivation failed:", err.Error())
		return err
	}

	fmt.Println("Account scheduled for deletion. Sign in within 30 days to cancel.")
	return nil
}
