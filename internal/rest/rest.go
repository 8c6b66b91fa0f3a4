// Package rest is the client's minimal REST collaborator, covering the
// handful of request/response operations carved out of the WebSocket
// protocol: file upload, public profile lookup, and server emoji
// listing. Every failure is returned to the caller and never touches
// the store directly, so a failed upload or lookup can never corrupt
// unrelated state.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"concord/internal/wire"
)

// Client issues the engine's REST calls against the same origin the
// WebSocket dials, authenticated by whatever session cookie the browser
// or embedding host already attached to http.Client's cookie jar.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// UploadFile posts a file to /uploads as multipart form data and returns
// the resulting attachment metadata.
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (wire.Attachment, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return wire.Attachment{}, fmt.Errorf("rest: build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return wire.Attachment{}, fmt.Errorf("rest: copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return wire.Attachment{}, fmt.Errorf("rest: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads", &buf)
	if err != nil {
		return wire.Attachment{}, fmt.Errorf("rest: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var attachment wire.Attachment
	if err := c.doJSON(req, &attachment); err != nil {
		return wire.Attachment{}, err
	}
	return attachment, nil
}

// PublicUserProfile is the reduced profile shape returned by looking up a
// user by nickname, distinct from wire.UserProfile's full-detail shape
// fetched over the WebSocket via get_user_profile.
type PublicUserProfile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
	Pronouns  string `json:"pronouns,omitempty"`
}

func (c *Client) GetUserProfile(ctx context.Context, nickname string) (PublicUserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+nickname, nil)
	if err != nil {
		return PublicUserProfile{}, fmt.Errorf("rest: build profile request: %w", err)
	}

	var profile PublicUserProfile
	if err := c.doJSON(req, &profile); err != nil {
		return PublicUserProfile{}, err
	}
	return profile, nil
}

// Emoji is one server custom-emoji entry.
type Emoji struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func (c *Client) ListServerEmoji(ctx context.Context, serverID string) ([]Emoji, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/servers/"+serverID+"/emoji", nil)
	if err != nil {
		return nil, fmt.Errorf("rest: build emoji request: %w", err)
	}

	var emoji []Emoji
	if err := c.doJSON(req, &emoji); err != nil {
		return nil, err
	}
	return emoji, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("rest: %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
