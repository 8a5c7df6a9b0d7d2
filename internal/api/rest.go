package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// RESTClient implements Client over net/http. Every authenticated request
// carries the token from the injected TokenSource as a bearer credential and
// an X-Request-Id for server-side correlation.
type RESTClient struct {
	baseURL      string
	httpClient   *http.Client
	tokenSource  TokenSource
	onAuthReject func()
	log          logging.Logger
}

// NewRESTClient builds a client for the API rooted at baseURL. The token
// source may return "" while no session is held.
func NewRESTClient(baseURL string, timeout time.Duration, ts TokenSource, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		tokenSource: ts,
		log:         log.With("component", "api"),
	}
}

// OnAuthReject registers a hook fired whenever the server answers 401.
// The session state uses it to destroy the Principal on authentication
// rejection from any call.
func (c *RESTClient) OnAuthReject(fn func()) {
	c.onAuthReject = fn
}

type messageResponse struct {
	Message string `json:"message"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

func (c *RESTClient) SignIn(ctx context.Context, username, password string) (*models.Principal, error) {
	payload := map[string]string{"username": username, "password": password}
	var p models.Principal
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signin", payload, &p); err != nil {
		return nil, err
	}
	if p.AccessToken == "" {
		return nil, &APIError{Status: http.StatusOK, Message: "sign-in response carried no access token"}
	}
	return &p, nil
}

func (c *RESTClient) SignUp(ctx context.Context, username, email, password string, roles []string) (string, error) {
	payload := map[string]any{
		"username": username,
		"email":    email,
		"password": password,
		"role":     roles,
	}
	return c.doMessage(ctx, http.MethodPost, "/auth/signup", payload)
}

func (c *RESTClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	return c.doMessage(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email})
}

func (c *RESTClient) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	payload := map[string]string{"email": email, "otpCode": code}
	return c.doMessage(ctx, http.MethodPost, "/auth/verify-otp", payload)
}

func (c *RESTClient) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	payload := map[string]string{"email": email, "otpCode": code, "newPassword": newPassword}
	return c.doMessage(ctx, http.MethodPost, "/auth/reset-password", payload)
}

func (c *RESTClient) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/user/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, username, email string) (string, error) {
	payload := map[string]string{"username": username, "email": email}
	return c.doMessage(ctx, http.MethodPut, "/user/profile", payload)
}

func (c *RESTClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	payload := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.doMessage(ctx, http.MethodPost, "/user/change-password", payload)
}

func (c *RESTClient) Documents(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := c.doJSON(ctx, http.MethodGet, "/user/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *RESTClient) CreateNote(ctx context.Context, title, content string) (*models.Document, error) {
	payload := map[string]string{
		"title":        title,
		"content":      content,
		"documentType": string(models.DocumentNote),
	}
	var doc models.Document
	if err := c.doJSON(ctx, http.MethodPost, "/user/documents/note", payload, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *RESTClient) UploadFile(ctx context.Context, title, fileName string, r io.Reader) (*models.Document, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.WriteField("title", title); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/user/documents/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc models.Document
	if err := c.do(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *RESTClient) UpdateDocument(ctx context.Context, id int64, title, content string) (*models.Document, error) {
	payload := map[string]string{
		"title":        title,
		"content":      content,
		"documentType": string(models.DocumentNote),
	}
	var doc models.Document
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/user/documents/%d", id), payload, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *RESTClient) DeleteDocument(ctx context.Context, id int64) (string, error) {
	return c.doMessage(ctx, http.MethodDelete, fmt.Sprintf("/user/documents/%d", id), nil)
}

func (c *RESTClient) DocumentCount(ctx context.Context) (int64, error) {
	var resp countResponse
	if err := c.doJSON(ctx, http.MethodGet, "/user/documents/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// DownloadFile streams a stored file or image into w.
func (c *RESTClient) DownloadFile(ctx context.Context, fileName string, w io.Writer) error {
	path := "/user/documents/files/" + url.PathEscape(fileName)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func (c *RESTClient) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) User(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) UpdateUserRoles(ctx context.Context, id int64, roles []string) (string, error) {
	payload := map[string]any{"roles": roles}
	return c.doMessage(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/roles", id), payload)
}

func (c *RESTClient) DeleteUser(ctx context.Context, id int64) (string, error) {
	return c.doMessage(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil)
}

func (c *RESTClient) Statistics(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RESTClient) PendingUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/admin/pending-users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) ApproveUser(ctx context.Context, id int64) (string, error) {
	return c.doMessage(ctx, http.MethodPost, fmt.Sprintf("/admin/approve-user/%d", id), nil)
}

func (c *RESTClient) RejectUser(ctx context.Context, id int64) (string, error) {
	return c.doMessage(ctx, http.MethodDelete, fmt.Sprintf("/admin/reject-user/%d", id), nil)
}

// ---- transport plumbing ----

func (c *RESTClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *RESTClient) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *RESTClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *RESTClient) doMessage(ctx context.Context, method, path string, payload any) (string, error) {
	var resp messageResponse
	if err := c.doJSON(ctx, method, path, payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// checkStatus maps a non-2xx response onto the client error taxonomy. A 401
// additionally fires the auth-reject hook: the held credential is no longer
// accepted and the session must be destroyed.
func (c *RESTClient) checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var body messageResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onAuthReject != nil {
			c.onAuthReject()
		}
		// Both matchable as ErrUnauthorized and carrying the server message.
		return fmt.Errorf("%w: %w", common.ErrUnauthorized, &APIError{Status: resp.StatusCode, Message: msg})
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}
