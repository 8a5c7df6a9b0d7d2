package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/api"
)

// ForgotPasswordScreen walks the OTP reset flow: request a code for an
// email, verify it, then set a new password. A rejected or expired code
// shows the server's message and leaves the user on the verification step;
// no navigation happens until the server confirms.
func (a *App) ForgotPasswordScreen(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", a.out)
	if err != nil {
		return err
	}
	if err := validateRequired("email", email); err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	msg, err := a.authsvc.ForgotPassword(ctx, email)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not send the verification code"))
		return nil
	}
	fmt.Fprintln(a.out, msg)

	code, err := getSimpleText(a.reader, "Enter the 6-digit code", a.out)
	if err != nil {
		return err
	}
	msg, err = a.authsvc.VerifyOtp(ctx, email, code)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Invalid or expired code"))
		return nil
	}
	fmt.Fprintln(a.out, msg)

	password, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	if err := validatePassword(password, confirm); err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	msg, err = a.authsvc.ResetPassword(ctx, email, code, password)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Password reset failed"))
		return nil
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
