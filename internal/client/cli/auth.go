package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) credentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// SignUp prompts for an email and password and creates an account. No
// session is started.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	confirmationRequired, err := a.sessions.SignUp(ctx, email, password)
	if err != nil {
		return err
	}

	if confirmationRequired {
		fmt.Fprintln(a.out, "Check your email for confirmation link!")
	} else {
		fmt.Fprintln(a.out, "Account created. You can sign in now.")
	}
	return nil
}

// Confirm finishes sign-up with the token from the confirmation email.
func (a *App) Confirm(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		var err error
		if token, err = getSimpleText(a.reader, "Enter confirmation token", a.out); err != nil {
			return err
		}
	}

	if err := a.sessions.Confirm(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Email confirmed. You can sign in now.")
	return nil
}

// SignIn prompts for credentials, starts a session and loads the user's
// data. Failure messages from the store are printed as they are.
func (a *App) SignIn(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	a.composer.Reset()
	if err := a.sessions.SignIn(ctx, email, password); err != nil {
		if !a.isSignedIn() {
			return err
		}
		fmt.Fprintln(a.out, describe(err))
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.state.Identity().Email)
	a.render()
	return nil
}

// SignOut ends the session. Local data is dropped even when the store
// cannot be reached.
func (a *App) SignOut(ctx context.Context) error {
	err := a.sessions.SignOut(ctx)
	a.composer.Reset()
	a.contacts.Close()
	a.occasions.Close()
	_ = a.router.Switch(string(PanelGenerate))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
