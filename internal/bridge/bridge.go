// Package bridge is the request/response client for the desktop runtime.
// Every persistence, search, and cloud-sync operation crosses this boundary;
// the front-end never touches storage directly.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/notaterm/nota/internal/models"
)

// Client is the bridge surface exposed by the desktop host. Calls either
// succeed fully or return an error; there are no partial results.
type Client interface {
	ListNotes(ctx context.Context, workspaceID string) ([]models.Note, error)
	CreateNote(ctx context.Context, workspaceID, title, content, parentID string) (*models.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) error
	DeleteNote(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, query string) ([]models.SearchResult, error)

	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)
	CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error)

	IsAuthenticated(ctx context.Context) (bool, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	GoogleSignIn(ctx context.Context) error
	Logout(ctx context.Context) error

	StartDriveAuth(ctx context.Context) (string, error)
	IsDriveAuthenticated(ctx context.Context) (bool, error)
	SignOutDrive(ctx context.Context) error
	GetDriveAccountInfo(ctx context.Context) (*models.DriveAccount, error)
	GetSyncStatus(ctx context.Context) (*models.SyncStatus, error)
	TriggerSync(ctx context.Context) error

	WindowController
}

// HTTPClient talks JSON to the host's loopback API.
type HTTPClient struct {
	base   string
	token  string
	client *http.Client
}

// NewHTTPClient returns a bridge client rooted at base. An empty token is
// allowed; authenticated endpoints will reject until one is set.
func NewHTTPClient(base, token string) *HTTPClient {
	return &HTTPClient{
		base:   base,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken swaps the session token used for subsequent calls.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Error != "" {
			return fmt.Errorf("host rejected %s %s: %s", method, path, eb.Error)
		}
		return fmt.Errorf("host rejected %s %s: status code %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) ListNotes(ctx context.Context, workspaceID string) ([]models.Note, error) {
	var notes []models.Note
	path := fmt.Sprintf("/v1/api/workspaces/%s/notes", url.PathEscape(workspaceID))
	if err := c.do(ctx, http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *HTTPClient) CreateNote(
	ctx context.Context,
	workspaceID, title, content, parentID string,
) (*models.Note, error) {
	body := map[string]string{
		"workspaceId": workspaceID,
		"title":       title,
		"content":     content,
	}
	if parentID != "" {
		body["parentId"] = parentID
	}

	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/v1/api/notes", body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id, title, content string) error {
	body := map[string]string{"title": title, "content": content}
	path := fmt.Sprintf("/v1/api/notes/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	path := fmt.Sprintf("/v1/api/notes/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, id string) error {
	path := fmt.Sprintf("/v1/api/notes/%s/favorite", url.PathEscape(id))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *HTTPClient) SearchNotes(ctx context.Context, query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	path := "/v1/api/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *HTTPClient) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := c.do(ctx, http.MethodGet, "/v1/api/workspaces", nil, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (c *HTTPClient) CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error) {
	var ws models.Workspace
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/v1/api/workspaces", body, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func (c *HTTPClient) IsAuthenticated(ctx context.Context) (bool, error) {
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/auth/status", nil, &out); err != nil {
		return false, err
	}
	return out.Authenticated, nil
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/v1/auth/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GoogleSignIn asks the host to run its OAuth flow in the system browser.
func (c *HTTPClient) GoogleSignIn(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/google", nil, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil)
}

// StartDriveAuth returns the URL the user must visit to authorize Drive
// access. Completion is observed by polling IsDriveAuthenticated.
func (c *HTTPClient) StartDriveAuth(ctx context.Context) (string, error) {
	var out struct {
		AuthURL string `json:"authUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/drive/auth", nil, &out); err != nil {
		return "", err
	}
	return out.AuthURL, nil
}

func (c *HTTPClient) IsDriveAuthenticated(ctx context.Context) (bool, error) {
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/drive/status", nil, &out); err != nil {
		return false, err
	}
	return out.Authenticated, nil
}

func (c *HTTPClient) SignOutDrive(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/drive/signout", nil, nil)
}

func (c *HTTPClient) GetDriveAccountInfo(ctx context.Context) (*models.DriveAccount, error) {
	var info models.DriveAccount
	if err := c.do(ctx, http.MethodGet, "/v1/drive/account", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *HTTPClient) GetSyncStatus(ctx context.Context) (*models.SyncStatus, error) {
	var status models.SyncStatus
	if err := c.do(ctx, http.MethodGet, "/v1/api/sync/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *HTTPClient) TriggerSync(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/api/sync/trigger", nil, nil)
}
