package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/api"
)

// defaultSignupRoles is what the registration form submits; role promotion
// is an admin operation after approval.
var defaultSignupRoles = []string{"user"}

// RegisterScreen collects the registration form. Validation failures
// (missing fields, short password, mismatched confirmation) block the
// submission locally: no network call is made. Success does not sign the
// user in; the account awaits admin approval.
func (a *App) RegisterScreen(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	for _, check := range []error{
		validateRequired("username", username),
		validateRequired("email", email),
		validatePassword(password, confirm),
	} {
		if check != nil {
			fmt.Fprintln(a.out, check)
			return nil
		}
	}

	msg, err := a.session.Register(ctx, username, email, password, defaultSignupRoles)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Registration failed"))
		return nil
	}

	fmt.Fprintln(a.out, msg)
	return nil
}
