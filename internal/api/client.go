// Package api is the HTTP adapter for the UserHub REST API. It owns the wire
// contract: JSON request/response bodies, the bearer credential header, and
// the mapping of transport and server failures onto client errors.
package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/userhub/internal/models"
)

// Client is the outbound API surface consumed by the service layer. One
// method per REST endpoint; operations whose response is only a confirmation
// return the server's message verbatim.
//
// All methods honor context cancellation. None of them retries.
type Client interface {
	// Auth endpoints.
	SignIn(ctx context.Context, username, password string) (*models.Principal, error)
	SignUp(ctx context.Context, username, email, password string, roles []string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyOtp(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)

	// Account endpoints.
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, username, email string) (string, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error)

	// Document endpoints.
	Documents(ctx context.Context) ([]models.Document, error)
	CreateNote(ctx context.Context, title, content string) (*models.Document, error)
	UploadFile(ctx context.Context, title, fileName string, r io.Reader) (*models.Document, error)
	UpdateDocument(ctx context.Context, id int64, title, content string) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) (string, error)
	DocumentCount(ctx context.Context) (int64, error)
	DownloadFile(ctx context.Context, fileName string, w io.Writer) error

	// Admin endpoints.
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id int64) (*models.User, error)
	UpdateUserRoles(ctx context.Context, id int64, roles []string) (string, error)
	DeleteUser(ctx context.Context, id int64) (string, error)
	Statistics(ctx context.Context) (*models.AdminStats, error)
	PendingUsers(ctx context.Context) ([]models.User, error)
	ApproveUser(ctx context.Context, id int64) (string, error)
	RejectUser(ctx context.Context, id int64) (string, error)
}

// TokenSource supplies the bearer credential attached to authenticated
// requests. An empty return means no credential is held.
type TokenSource func() string
