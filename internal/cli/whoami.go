package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WhoamiScreen shows the current Principal: the profile issued at login and,
// when the token is a readable JWT, its expiry time.
func (a *App) WhoamiScreen(ctx context.Context) error {
	u := a.session.User()

	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "Roles:    %s\n", strings.Join(u.Roles, ", "))
	if exp := tokenExpiry(u.AccessToken); !exp.IsZero() {
		fmt.Fprintf(a.out, "Token expires: %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature. Display
// only: the server is the sole validator of the credential.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
