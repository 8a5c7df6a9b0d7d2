package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/auth"
	"github.com/dmitrijs2005/userhub/internal/common"
)

// getStatus renders the prompt suffix: the signed-in username plus an
// "admin" marker when the admin console is available. Pure display; the
// guard remains the security boundary.
func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	s := u.Username
	if a.session.HasRole(common.RoleAdmin) {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// enter routes a navigation attempt through the guard and renders the
// decision: a waiting indicator while initializing, a redirect to the login
// screen when unauthenticated (the attempted destination is discarded), a
// terminal access-denied view when the role check fails, or the screen
// itself.
func (a *App) enter(ctx context.Context, required []string, screen func(context.Context) error) error {
	switch auth.Evaluate(a.session, required) {
	case auth.DecisionWait:
		fmt.Fprintln(a.out, "Loading...")
		return nil
	case auth.DecisionLogin:
		fmt.Fprintln(a.out, "Please sign in first.")
		return a.LoginScreen(ctx)
	case auth.DecisionDeny:
		fmt.Fprintln(a.out, "Access denied. You don't have permission to access this screen.")
		return nil
	}
	return screen(ctx)
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, profile, editprofile, passwd, docs, addnote, upload, editdoc, deldoc, download, logout, exit")
		if a.session.HasRole(common.RoleAdmin) {
			fmt.Fprintln(a.out, "Admin commands: admin, user, roles, deluser, approve, reject")
		}
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, forgot, exit")
	}
}

// Root starts the read-eval-print loop. Unknown commands are reported back;
// errors from screens are rendered by the screens themselves, keeping the
// loop resilient and focused on I/O. The loop exits on scanner EOF or when
// the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to UserHub (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	adminOnly := []string{common.RoleAdmin}

	for {
		fmt.Fprintf(a.out, "userhub %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			_ = a.RegisterScreen(ctx)
		case "login":
			_ = a.LoginScreen(ctx)
		case "forgot":
			_ = a.ForgotPasswordScreen(ctx)

		case "whoami":
			_ = a.enter(ctx, nil, a.WhoamiScreen)
		case "profile":
			_ = a.enter(ctx, nil, a.ProfileScreen)
		case "editprofile":
			_ = a.enter(ctx, nil, a.EditProfileScreen)
		case "passwd":
			_ = a.enter(ctx, nil, a.ChangePasswordScreen)

		case "docs":
			_ = a.enter(ctx, nil, a.DocumentsScreen)
		case "addnote":
			_ = a.enter(ctx, nil, a.AddNoteScreen)
		case "upload":
			_ = a.enter(ctx, nil, a.UploadScreen)
		case "editdoc":
			_ = a.enter(ctx, nil, a.EditDocumentScreen)
		case "deldoc":
			_ = a.enter(ctx, nil, a.DeleteDocumentScreen)
		case "download":
			_ = a.enter(ctx, nil, a.DownloadScreen)

		case "admin":
			_ = a.enter(ctx, adminOnly, a.AdminDashboardScreen)
		case "user":
			_ = a.enter(ctx, adminOnly, a.UserDetailScreen)
		case "roles":
			_ = a.enter(ctx, adminOnly, a.UpdateRolesScreen)
		case "deluser":
			_ = a.enter(ctx, adminOnly, a.DeleteUserScreen)
		case "approve":
			_ = a.enter(ctx, adminOnly, a.ApproveUserScreen)
		case "reject":
			_ = a.enter(ctx, adminOnly, a.RejectUserScreen)

		case "logout":
			a.session.Logout()
			fmt.Fprintln(a.out, "Signed out.")

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
