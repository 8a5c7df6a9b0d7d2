package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userhub/internal/auth"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// fakeAuthSvc is an in-memory stand-in for services.AuthService. The stored
// Principal plays the role of the session store.
type fakeAuthSvc struct {
	stored *models.Principal

	loginUser  *models.Principal
	loginErr   error
	loginCalls int

	registerMsg   string
	registerErr   error
	registerCalls int
	lastRoles     []string

	forgotMsg, verifyMsg, resetMsg string
	forgotErr, verifyErr, resetErr error

	logoutCalls int
}

func (f *fakeAuthSvc) Login(ctx context.Context, username, password string) (*models.Principal, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.stored = f.loginUser
	return f.loginUser, nil
}

func (f *fakeAuthSvc) Register(ctx context.Context, username, email, password string, roles []string) (string, error) {
	f.registerCalls++
	f.lastRoles = roles
	return f.registerMsg, f.registerErr
}

func (f *fakeAuthSvc) Logout() {
	f.logoutCalls++
	f.stored = nil
}

func (f *fakeAuthSvc) ForgotPassword(ctx context.Context, email string) (string, error) {
	return f.forgotMsg, f.forgotErr
}

func (f *fakeAuthSvc) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	return f.verifyMsg, f.verifyErr
}

func (f *fakeAuthSvc) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	return f.resetMsg, f.resetErr
}

func (f *fakeAuthSvc) CurrentUser() *models.Principal { return f.stored }
func (f *fakeAuthSvc) IsAuthenticated() bool          { return f.stored != nil }

func (f *fakeAuthSvc) UserRoles() []string {
	if f.stored == nil {
		return nil
	}
	return f.stored.Roles
}

func (f *fakeAuthSvc) HasRole(role string) bool { return f.stored.HasRole(role) }

func (f *fakeAuthSvc) UpdateStoredProfile(username, email string) error {
	if f.stored == nil {
		return common.ErrNoSession
	}
	f.stored.Username = username
	f.stored.Email = email
	return nil
}

type fakeAccounts struct {
	profile    *models.User
	profileErr error

	updateMsg    string
	updateErr    error
	lastUsername string
	lastEmail    string

	passwdMsg   string
	passwdErr   error
	passwdCalls int
}

func (f *fakeAccounts) Profile(ctx context.Context) (*models.User, error) {
	return f.profile, f.profileErr
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, username, email string) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	f.lastUsername, f.lastEmail = username, email
	return f.updateMsg, nil
}

func (f *fakeAccounts) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	f.passwdCalls++
	return f.passwdMsg, f.passwdErr
}

type fakeDocs struct {
	docs      []models.Document
	listErr   error
	listCalls int
	count     int64

	createdTitle   string
	createdContent string

	deleteMsg string
	deletedID int64
}

func (f *fakeDocs) List(ctx context.Context) ([]models.Document, error) {
	f.listCalls++
	return f.docs, f.listErr
}

func (f *fakeDocs) CreateNote(ctx context.Context, title, content string) (*models.Document, error) {
	f.createdTitle, f.createdContent = title, content
	return &models.Document{ID: 1, Title: title, DocumentType: models.DocumentNote}, nil
}

func (f *fakeDocs) Upload(ctx context.Context, title, path string) (*models.Document, error) {
	return &models.Document{ID: 2, Title: title, DocumentType: models.DocumentFile}, nil
}

func (f *fakeDocs) Update(ctx context.Context, id int64, title, content string) (*models.Document, error) {
	return &models.Document{ID: id, Title: title, DocumentType: models.DocumentNote}, nil
}

func (f *fakeDocs) Delete(ctx context.Context, id int64) (string, error) {
	f.deletedID = id
	return f.deleteMsg, nil
}

func (f *fakeDocs) Count(ctx context.Context) (int64, error) { return f.count, nil }

func (f *fakeDocs) Download(ctx context.Context, fileName, destPath string) error { return nil }

type fakeAdmin struct {
	dash      *models.AdminDashboard
	dashErr   error
	dashCalls int

	msg         string
	opErr       error
	userRet     *models.User
	lastID      int64
	lastRoles   []string
	updateCalls int
}

func (f *fakeAdmin) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	f.dashCalls++
	return f.dash, f.dashErr
}

func (f *fakeAdmin) Users(ctx context.Context) ([]models.User, error) {
	if f.dash == nil {
		return nil, f.dashErr
	}
	return f.dash.Users, nil
}

func (f *fakeAdmin) User(ctx context.Context, id int64) (*models.User, error) {
	f.lastID = id
	if f.userRet != nil {
		return f.userRet, nil
	}
	return &models.User{ID: id}, f.opErr
}

func (f *fakeAdmin) UpdateRoles(ctx context.Context, id int64, roles []string) (string, error) {
	f.updateCalls++
	f.lastID, f.lastRoles = id, roles
	return f.msg, f.opErr
}

func (f *fakeAdmin) DeleteUser(ctx context.Context, id int64) (string, error) {
	f.lastID = id
	return f.msg, f.opErr
}

func (f *fakeAdmin) ApproveUser(ctx context.Context, id int64) (string, error) {
	f.lastID = id
	return f.msg, f.opErr
}

func (f *fakeAdmin) RejectUser(ctx context.Context, id int64) (string, error) {
	f.lastID = id
	return f.msg, f.opErr
}

type testDeps struct {
	auth     *fakeAuthSvc
	accounts *fakeAccounts
	docs     *fakeDocs
	admin    *fakeAdmin
}

func defaultDeps() *testDeps {
	return &testDeps{
		auth:     &fakeAuthSvc{},
		accounts: &fakeAccounts{},
		docs:     &fakeDocs{},
		admin:    &fakeAdmin{},
	}
}

// newTestApp builds an App over fake services with a captured output buffer.
// The reader starts empty; tests that use reader-driven prompts replace it.
func newTestApp(t *testing.T, deps *testDeps) (*App, *bytes.Buffer) {
	t.Helper()
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	out := &bytes.Buffer{}
	return &App{
		session:  auth.NewSession(deps.auth, log),
		authsvc:  deps.auth,
		accounts: deps.accounts,
		docs:     deps.docs,
		admin:    deps.admin,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
		log:      log,
	}, out
}

// stubInput replaces the interactive input seams with queues of canned
// answers. The original helpers are restored when the test finishes.
func stubInput(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPass
	})

	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			return "", io.EOF
		}
		s := texts[ti]
		ti++
		return s, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if pi >= len(passwords) {
			return "", io.EOF
		}
		s := passwords[pi]
		pi++
		return s, nil
	}
}

func testPrincipal(roles ...string) *models.Principal {
	return &models.Principal{
		ID:          1,
		Username:    "alice",
		Email:       "alice@example.com",
		Roles:       roles,
		AccessToken: "tok123",
		TokenType:   "Bearer",
	}
}
