// Package services contains the application services of the UserHub client:
// thin orchestration between the REST adapter and local session storage.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/models"
	"github.com/dmitrijs2005/userhub/internal/session"
)

// AuthService defines authentication operations and the derived read-only
// queries over the session store.
//
// Contract:
//   - Login: authenticate, persist the session, return the full profile.
//     Failures propagate the server's message; there is no retry.
//   - Register: forward to the registration endpoint; no auto-login.
//   - Logout: clear the local session; no network call, cannot fail.
//   - ForgotPassword / VerifyOtp / ResetPassword: the OTP reset flow.
//   - UpdateStoredProfile: rewrite username/email of the stored Principal,
//     roles and token untouched.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Principal, error)
	Register(ctx context.Context, username, email, password string, roles []string) (string, error)
	Logout()

	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyOtp(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)

	CurrentUser() *models.Principal
	IsAuthenticated() bool
	UserRoles() []string
	HasRole(role string) bool
	UpdateStoredProfile(username, email string) error
}

type authService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

// Login authenticates against the server. On success the issued token and
// profile are persisted together before the Principal is returned, keeping
// the in-memory/durable invariant intact.
func (a *authService) Login(ctx context.Context, username, password string) (*models.Principal, error) {
	p, err := a.client.SignIn(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.store.Save(p); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	a.log.Info(ctx, "signed in", "username", p.Username, "roles", p.Roles)
	return p, nil
}

func (a *authService) Register(ctx context.Context, username, email, password string, roles []string) (string, error) {
	return a.client.SignUp(ctx, username, email, password, roles)
}

// Logout clears the session store. Purely local: no network call is made and
// the operation is idempotent. A storage error is logged and swallowed so
// logout can never fail from the caller's point of view.
func (a *authService) Logout() {
	if err := a.store.Clear(); err != nil {
		a.log.Error(context.Background(), "clearing session", "error", err)
	}
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return a.client.ForgotPassword(ctx, email)
}

func (a *authService) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	return a.client.VerifyOtp(ctx, email, code)
}

func (a *authService) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	return a.client.ResetPassword(ctx, email, code, newPassword)
}

func (a *authService) CurrentUser() *models.Principal {
	return a.store.Load()
}

func (a *authService) IsAuthenticated() bool {
	return a.store.HasToken()
}

func (a *authService) UserRoles() []string {
	if p := a.store.Load(); p != nil {
		return p.Roles
	}
	return nil
}

func (a *authService) HasRole(role string) bool {
	return a.store.Load().HasRole(role)
}

// UpdateStoredProfile rewrites the persisted profile after a successful
// profile edit. Only username and email change; roles and token stay as
// issued at login.
func (a *authService) UpdateStoredProfile(username, email string) error {
	p := a.store.Load()
	if p == nil {
		return common.ErrNoSession
	}
	p.Username = username
	p.Email = email
	return a.store.Save(p)
}
