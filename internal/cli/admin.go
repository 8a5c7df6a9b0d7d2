package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/models"
)

func (a *App) renderUsers(header string, users []models.User) {
	fmt.Fprintln(a.out, header)
	if len(users) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "  %4d  %-20s %-30s %s\n", u.ID, u.Username, u.Email, strings.Join(u.Roles, ", "))
	}
}

// AdminDashboardScreen loads users, statistics, and pending registrations in
// one shot. The load is all-or-nothing: a single failing fetch shows an
// error and renders no partial data.
func (a *App) AdminDashboardScreen(ctx context.Context) error {
	dash, err := a.admin.Dashboard(ctx)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not load the admin dashboard"))
		return nil
	}

	s := dash.Stats
	fmt.Fprintf(a.out, "Users: %d total, %d admins, %d moderators, %d regular\n",
		s.TotalUsers, s.AdminCount, s.ModeratorCount, s.UserCount)
	a.renderUsers("Accounts:", dash.Users)
	a.renderUsers("Pending approval:", dash.PendingUsers)
	return nil
}

// UpdateRolesScreen replaces a user's role set with the comma-separated tags
// entered, then reloads the dashboard.
func (a *App) UpdateRolesScreen(ctx context.Context) error {
	id, err := GetID(a.reader, "User id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}
	rolesLine, err := getSimpleText(a.reader, "Roles (comma-separated, e.g. ROLE_USER,ROLE_MODERATOR)", a.out)
	if err != nil {
		return err
	}

	var roles []string
	for _, r := range strings.Split(rolesLine, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		fmt.Fprintln(a.out, "At least one role is required.")
		return nil
	}

	msg, err := a.admin.UpdateRoles(ctx, id, roles)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not update roles"))
		return nil
	}
	fmt.Fprintln(a.out, msg)
	return a.AdminDashboardScreen(ctx)
}

// UserDetailScreen looks up a single account by id.
func (a *App) UserDetailScreen(ctx context.Context) error {
	id, err := GetID(a.reader, "User id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	u, err := a.admin.User(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, "Could not load the user"))
		return nil
	}
	fmt.Fprintf(a.out, "ID:       %d\n", u.ID)
	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "Roles:    %s\n", strings.Join(u.Roles, ", "))
	return nil
}

func (a *App) DeleteUserScreen(ctx context.Context) error {
	return a.adminDecision(ctx, "User id to delete", a.admin.DeleteUser, "Could not delete the user")
}

func (a *App) ApproveUserScreen(ctx context.Context) error {
	return a.adminDecision(ctx, "Pending user id to approve", a.admin.ApproveUser, "Could not approve the user")
}

func (a *App) RejectUserScreen(ctx context.Context) error {
	return a.adminDecision(ctx, "Pending user id to reject", a.admin.RejectUser, "Could not reject the user")
}

// adminDecision runs a single-id admin mutation and reloads the dashboard,
// the same reload-after-write policy the document screens follow.
func (a *App) adminDecision(ctx context.Context, prompt string, op func(context.Context, int64) (string, error), fallback string) error {
	id, err := GetID(a.reader, prompt, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	msg, err := op(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, api.ServerMessage(err, fallback))
		return nil
	}
	fmt.Fprintln(a.out, msg)
	return a.AdminDashboardScreen(ctx)
}
