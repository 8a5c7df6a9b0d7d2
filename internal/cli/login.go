package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// LoginScreen prompts for credentials and attempts to authenticate. On
// success the session state transitions to authenticated and the prompt
// reflects the signed-in user. On failure the server's message is shown and
// the user stays on the screen; resubmission is up to the user, never
// automatic.
func (a *App) LoginScreen(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := validateRequired("username", username); err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	p, err := a.session.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Login failed"))
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", p.Username)
	return nil
}
