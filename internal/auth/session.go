// Package auth holds the client-wide session state and the route guard.
//
// The web client kept this state in an ambient context; here it is an
// explicit, injectable object with a defined lifecycle: constructed at client
// startup, initialized exactly once from the session store, and passed to
// every consumer that needs it.
package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/models"
	"github.com/dmitrijs2005/userhub/internal/services"
)

// Status is the session state machine.
//
//	StatusInitializing → {StatusAuthenticated | StatusUnauthenticated}  (Init, once)
//	StatusUnauthenticated → StatusAuthenticated                         (Login)
//	StatusAuthenticated → StatusUnauthenticated                         (Logout, Invalidate)
type Status int

const (
	StatusInitializing Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the single session-state instance of a running client. Every
// screen and the route guard consume the same instance. Persistence is
// entirely delegated to the auth service and its store; Session only mirrors
// the current Principal in memory.
//
// The REPL runs on one goroutine, but the API adapter's auth-reject hook may
// fire from a request in flight, so access is mutex-guarded.
type Session struct {
	mu     sync.RWMutex
	status Status
	user   *models.Principal

	initOnce sync.Once
	svc      services.AuthService
	log      logging.Logger
}

func NewSession(svc services.AuthService, log logging.Logger) *Session {
	return &Session{status: StatusInitializing, svc: svc, log: log.With("component", "session")}
}

// Init consults the session store and leaves the initializing state. It runs
// its body exactly once; later calls are no-ops.
func (s *Session) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		user := s.svc.CurrentUser()

		s.mu.Lock()
		defer s.mu.Unlock()
		if user != nil {
			s.status = StatusAuthenticated
			s.user = user
			s.log.Info(ctx, "session restored", "username", user.Username)
		} else {
			s.status = StatusUnauthenticated
		}
	})
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Loading reports whether the store has not been consulted yet.
func (s *Session) Loading() bool {
	return s.Status() == StatusInitializing
}

// User returns the current Principal, or nil when unauthenticated. Callers
// must treat the result as read-only.
func (s *Session) User() *models.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// HasRole checks exact role membership on the current Principal. Display
// concerns (the admin entry in help output) use this; the guard is the actual
// security boundary.
func (s *Session) HasRole(role string) bool {
	return s.User().HasRole(role)
}

// Login authenticates and, on success, transitions to authenticated with the
// returned Principal. Failures leave the state untouched.
func (s *Session) Login(ctx context.Context, username, password string) (*models.Principal, error) {
	p, err := s.svc.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.status = StatusAuthenticated
	s.user = p
	s.mu.Unlock()
	return p, nil
}

// Register forwards to the registration endpoint. It never changes the
// session state: a new account waits for approval and a separate login.
func (s *Session) Register(ctx context.Context, username, email, password string, roles []string) (string, error) {
	return s.svc.Register(ctx, username, email, password, roles)
}

// Logout clears the stored session and transitions to unauthenticated.
// Idempotent and local-only.
func (s *Session) Logout() {
	s.svc.Logout()

	s.mu.Lock()
	s.status = StatusUnauthenticated
	s.user = nil
	s.mu.Unlock()
}

// Invalidate destroys the session after the server rejected the held
// credential. Wired into the API adapter's auth-reject hook.
func (s *Session) Invalidate() {
	s.log.Warn(context.Background(), "credential rejected by server, destroying session")
	s.Logout()
}

// SetProfile refreshes username and email of the in-memory Principal after a
// successful profile edit. A value update, not a state change: roles, token,
// and status stay as they are.
func (s *Session) SetProfile(username, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.Username = username
	s.user.Email = email
}
