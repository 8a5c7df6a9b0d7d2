// Package cli is the interactive terminal UI of the UserHub client: a REPL
// whose commands correspond to the screens of the web application. Screens
// are pure presentation; every decision about whether a screen may render is
// taken by the route guard in the auth package.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/auth"
	"github.com/dmitrijs2005/userhub/internal/config"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/services"
	"github.com/dmitrijs2005/userhub/internal/session"
)

type App struct {
	config  *config.Config
	session *auth.Session

	authsvc  services.AuthService
	accounts services.AccountService
	docs     services.DocumentService
	admin    services.AdminService

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the client together: file-backed session store, REST adapter
// reading the bearer token from the store, services on top, and the single
// session-state instance every screen consumes.
func NewApp(cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	store, err := session.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewRESTClient(cfg.ServerAddr, cfg.RequestTimeout, store.Token, log)

	authSvc := services.NewAuthService(apiClient, store, log)
	sess := auth.NewSession(authSvc, log)
	// A 401 from any call destroys the session.
	apiClient.OnAuthReject(sess.Invalidate)

	return &App{
		config:   cfg,
		session:  sess,
		authsvc:  authSvc,
		accounts: services.NewAccountService(apiClient, authSvc),
		docs:     services.NewDocumentService(apiClient),
		admin:    services.NewAdminService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}, nil
}

// Run initializes the session state from the store (the one synchronous
// initializing transition) and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Status() == auth.StatusAuthenticated
}
