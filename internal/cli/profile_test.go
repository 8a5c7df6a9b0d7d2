package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/models"
)

func TestProfileScreen(t *testing.T) {
	deps := defaultDeps()
	deps.accounts.profile = &models.User{
		ID: 1, Username: "alice", Email: "alice@example.com",
		Roles: []string{common.RoleUser, common.RoleModerator},
	}
	a, out := newTestApp(t, deps)

	require.NoError(t, a.ProfileScreen(context.Background()))

	s := out.String()
	assert.Contains(t, s, "alice")
	assert.Contains(t, s, "alice@example.com")
	assert.Contains(t, s, "ROLE_USER, ROLE_MODERATOR")
}

func TestEditProfileScreen_EmptyInputKeepsCurrentValues(t *testing.T) {
	deps := defaultDeps()
	deps.auth.stored = testPrincipal(common.RoleUser)
	deps.accounts.updateMsg = "Profile updated successfully!"
	a, out := newTestApp(t, deps)
	a.session.Init(context.Background())

	stubInput(t, []string{"", "alice@new.example.com"}, nil)
	require.NoError(t, a.EditProfileScreen(context.Background()))

	assert.Equal(t, "alice", deps.accounts.lastUsername)
	assert.Equal(t, "alice@new.example.com", deps.accounts.lastEmail)
	assert.Contains(t, out.String(), "Profile updated successfully!")

	// the in-memory Principal follows the edit, token and roles untouched
	u := a.session.User()
	assert.Equal(t, "alice@new.example.com", u.Email)
	assert.Equal(t, "tok123", u.AccessToken)
	assert.Equal(t, []string{common.RoleUser}, u.Roles)
}

func TestEditProfileScreen_RejectionLeavesSessionUntouched(t *testing.T) {
	deps := defaultDeps()
	deps.auth.stored = testPrincipal(common.RoleUser)
	deps.accounts.updateErr = &api.APIError{Status: 400, Message: "Error: Email is already in use!"}
	a, out := newTestApp(t, deps)
	a.session.Init(context.Background())

	stubInput(t, []string{"alice", "taken@example.com"}, nil)
	require.NoError(t, a.EditProfileScreen(context.Background()))

	assert.Contains(t, out.String(), "Error: Email is already in use!")
	assert.Equal(t, "alice@example.com", a.session.User().Email)
}

func TestChangePasswordScreen_ValidatesBeforeNetwork(t *testing.T) {
	deps := defaultDeps()
	a, out := newTestApp(t, deps)

	stubInput(t, nil, []string{"oldpw1", "ab", "ab"})
	require.NoError(t, a.ChangePasswordScreen(context.Background()))

	assert.Contains(t, out.String(), "at least 6 characters")
	assert.Zero(t, deps.accounts.passwdCalls)
}

func TestChangePasswordScreen_Success(t *testing.T) {
	deps := defaultDeps()
	deps.accounts.passwdMsg = "Password changed successfully!"
	a, out := newTestApp(t, deps)

	stubInput(t, nil, []string{"oldpw1", "newpw1", "newpw1"})
	require.NoError(t, a.ChangePasswordScreen(context.Background()))

	assert.Contains(t, out.String(), "Password changed successfully!")
	assert.Equal(t, 1, deps.accounts.passwdCalls)
}
