package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/auth"
	"github.com/dmitrijs2005/userhub/internal/common"
)

func TestLoginScreen_Success(t *testing.T) {
	deps := defaultDeps()
	deps.auth.loginUser = testPrincipal(common.RoleUser)
	a, out := newTestApp(t, deps)
	a.session.Init(context.Background())

	stubInput(t, []string{"alice"}, []string{"secret1"})
	require.NoError(t, a.LoginScreen(context.Background()))

	assert.Contains(t, out.String(), "Welcome, alice!")
	assert.Equal(t, auth.StatusAuthenticated, a.session.Status())
	assert.Equal(t, 1, deps.auth.loginCalls)
}

func TestLoginScreen_FailureShowsServerMessage(t *testing.T) {
	deps := defaultDeps()
	deps.auth.loginErr = &api.APIError{Status: 401, Message: "Error: Invalid credentials"}
	a, out := newTestApp(t, deps)
	a.session.Init(context.Background())

	stubInput(t, []string{"alice"}, []string{"wrong"})
	require.NoError(t, a.LoginScreen(context.Background()))

	assert.Contains(t, out.String(), "Error: Invalid credentials")
	assert.Equal(t, auth.StatusUnauthenticated, a.session.Status())
	// one submission, one request; resubmission is up to the user
	assert.Equal(t, 1, deps.auth.loginCalls)
}

func TestLoginScreen_EmptyUsernameBlocksLocally(t *testing.T) {
	deps := defaultDeps()
	a, out := newTestApp(t, deps)
	a.session.Init(context.Background())

	stubInput(t, []string{"   "}, []string{"secret1"})
	require.NoError(t, a.LoginScreen(context.Background()))

	assert.Contains(t, out.String(), "username is required")
	assert.Zero(t, deps.auth.loginCalls)
}
