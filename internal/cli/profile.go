package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/api"
)

// ProfileScreen fetches and renders the account profile from the server.
func (a *App) ProfileScreen(ctx context.Context) error {
	u, err := a.accounts.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not load profile"))
		return nil
	}

	fmt.Fprintf(a.out, "ID:       %d\n", u.ID)
	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "Roles:    %s\n", strings.Join(u.Roles, ", "))
	return nil
}

// EditProfileScreen updates username and email. On success the stored
// session and the in-memory Principal are refreshed in place; roles and
// token stay as issued at login.
func (a *App) EditProfileScreen(ctx context.Context) error {
	current := a.session.User()

	username, err := getSimpleText(a.reader, fmt.Sprintf("New username [%s]", current.Username), a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = current.Username
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("New email [%s]", current.Email), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}

	msg, err := a.accounts.UpdateProfile(ctx, username, email)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Profile update failed"))
		return nil
	}

	a.session.SetProfile(username, email)
	fmt.Fprintln(a.out, msg)
	return nil
}

// ChangePasswordScreen collects old and new passwords. The new password is
// validated locally before any network call.
func (a *App) ChangePasswordScreen(ctx context.Context) error {
	oldPassword, err := getPassword("Enter current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	if err := validatePassword(newPassword, confirm); err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	msg, err := a.accounts.ChangePassword(ctx, oldPassword, newPassword)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Password change failed"))
		return nil
	}

	fmt.Fprintln(a.out, msg)
	return nil
}
