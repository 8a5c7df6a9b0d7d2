package services

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/dmitrijs2005/userhub/internal/models"
)

// fakeClient implements api.Client for service unit tests. Each operation
// has configurable returns and records its last arguments.
type fakeClient struct {
	SignInRet *models.Principal
	SignInErr error

	SignUpMsg   string
	SignUpErr   error
	ForgotMsg   string
	ForgotErr   error
	VerifyMsg   string
	VerifyErr   error
	ResetMsg    string
	ResetErr    error
	ProfileRet  *models.User
	ProfileErr  error
	UpdProfMsg  string
	UpdProfErr  error
	ChangePwMsg string
	ChangePwErr error

	DocumentsRet []models.Document
	DocumentsErr error
	NoteRet      *models.Document
	NoteErr      error
	UploadRet    *models.Document
	UploadErr    error
	UpdateDocRet *models.Document
	UpdateDocErr error
	DeleteDocMsg string
	DeleteDocErr error
	CountRet     int64
	CountErr     error
	DownloadErr  error
	DownloadData string

	UsersRet    []models.User
	UsersErr    error
	UserRet     *models.User
	UserErr     error
	RolesMsg    string
	RolesErr    error
	DelUserMsg  string
	DelUserErr  error
	StatsRet    *models.AdminStats
	StatsErr    error
	PendingRet  []models.User
	PendingErr  error
	ApproveMsg  string
	ApproveErr  error
	RejectMsg   string
	RejectErr   error
	AdminCalls  atomic.Int32
	SignInCalls int

	LastSignInUser  string
	LastSignInPass  string
	LastSignUpRoles []string
	LastUploadName  string
	LastUploadBody  string
	LastRolesID     int64
	LastRoles       []string
	LastDecisionID  int64
}

func (f *fakeClient) SignIn(_ context.Context, username, password string) (*models.Principal, error) {
	f.SignInCalls++
	f.LastSignInUser, f.LastSignInPass = username, password
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) SignUp(_ context.Context, username, email, password string, roles []string) (string, error) {
	f.LastSignUpRoles = append([]string(nil), roles...)
	return f.SignUpMsg, f.SignUpErr
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) (string, error) {
	return f.ForgotMsg, f.ForgotErr
}

func (f *fakeClient) VerifyOtp(_ context.Context, email, code string) (string, error) {
	return f.VerifyMsg, f.VerifyErr
}

func (f *fakeClient) ResetPassword(_ context.Context, email, code, newPassword string) (string, error) {
	return f.ResetMsg, f.ResetErr
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, username, email string) (string, error) {
	return f.UpdProfMsg, f.UpdProfErr
}

func (f *fakeClient) ChangePassword(_ context.Context, oldPassword, newPassword string) (string, error) {
	return f.ChangePwMsg, f.ChangePwErr
}

func (f *fakeClient) Documents(context.Context) ([]models.Document, error) {
	return f.DocumentsRet, f.DocumentsErr
}

func (f *fakeClient) CreateNote(_ context.Context, title, content string) (*models.Document, error) {
	return f.NoteRet, f.NoteErr
}

func (f *fakeClient) UploadFile(_ context.Context, title, fileName string, r io.Reader) (*models.Document, error) {
	f.LastUploadName = fileName
	data, _ := io.ReadAll(r)
	f.LastUploadBody = string(data)
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) UpdateDocument(_ context.Context, id int64, title, content string) (*models.Document, error) {
	return f.UpdateDocRet, f.UpdateDocErr
}

func (f *fakeClient) DeleteDocument(_ context.Context, id int64) (string, error) {
	return f.DeleteDocMsg, f.DeleteDocErr
}

func (f *fakeClient) DocumentCount(context.Context) (int64, error) {
	return f.CountRet, f.CountErr
}

func (f *fakeClient) DownloadFile(_ context.Context, fileName string, w io.Writer) error {
	if f.DownloadErr != nil {
		return f.DownloadErr
	}
	_, err := io.WriteString(w, f.DownloadData)
	return err
}

func (f *fakeClient) Users(context.Context) ([]models.User, error) {
	f.AdminCalls.Add(1)
	return f.UsersRet, f.UsersErr
}

func (f *fakeClient) User(_ context.Context, id int64) (*models.User, error) {
	return f.UserRet, f.UserErr
}

func (f *fakeClient) UpdateUserRoles(_ context.Context, id int64, roles []string) (string, error) {
	f.LastRolesID = id
	f.LastRoles = append([]string(nil), roles...)
	return f.RolesMsg, f.RolesErr
}

func (f *fakeClient) DeleteUser(_ context.Context, id int64) (string, error) {
	f.LastDecisionID = id
	return f.DelUserMsg, f.DelUserErr
}

func (f *fakeClient) Statistics(context.Context) (*models.AdminStats, error) {
	f.AdminCalls.Add(1)
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) PendingUsers(context.Context) ([]models.User, error) {
	f.AdminCalls.Add(1)
	return f.PendingRet, f.PendingErr
}

func (f *fakeClient) ApproveUser(_ context.Context, id int64) (string, error) {
	f.LastDecisionID = id
	return f.ApproveMsg, f.ApproveErr
}

func (f *fakeClient) RejectUser(_ context.Context, id int64) (string, error) {
	f.LastDecisionID = id
	return f.RejectMsg, f.RejectErr
}
