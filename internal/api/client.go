// Package api implements the HTTP client for the remote recipe service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/starford/cookbook/internal/apperr"
	"github.com/starford/cookbook/internal/session"
)

// Client talks to the recipe service. All durable state lives server-side;
// the client only carries the endpoint and the persisted session credential.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
}

// New creates a Client for the given base URL. A zero timeout leaves the
// underlying http.Client defaults in place.
func New(baseURL string, timeout time.Duration, sessions *session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
	}
}

// authMode controls how a request treats the stored credential.
type authMode int

const (
	// authNone sends no credential.
	authNone authMode = iota
	// authOptional attaches the credential when one is stored.
	authOptional
	// authRequired fails locally, before any request is dispatched, when no
	// valid credential is stored.
	authRequired
)

// token resolves the credential for the given mode.
func (c *Client) token(mode authMode) (string, error) {
	if mode == authNone {
		return "", nil
	}
	tok, ok := c.sessions.Load()
	if !ok && mode == authRequired {
		return "", fmt.Errorf("api: not logged in: %w", apperr.ErrUnauthorized)
	}
	return tok, nil
}

// LoggedIn reports whether a valid credential is currently stored.
func (c *Client) LoggedIn() bool {
	_, ok := c.sessions.Load()
	return ok
}

func (c *Client) do(ctx context.Context, mode authMode, method, path string, query url.Values, contentType string, body []byte, out any) error {
	tok, err := c.token(mode)
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			// The server no longer honors this credential; drop it so the
			// next command starts from the logged-out state.
			_ = c.sessions.Clear()
		}
		return normalizeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, mode authMode, path string, query url.Values, out any) error {
	return c.do(ctx, mode, http.MethodGet, path, query, "", nil, out)
}

// postJSON issues a request with a JSON body and decodes the response.
func (c *Client) postJSON(ctx context.Context, mode authMode, method, path string, body any, out any) error {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
	}
	return c.do(ctx, mode, method, path, nil, "application/json", data, out)
}

// postForm issues a request with urlencoded form fields.
func (c *Client) postForm(ctx context.Context, mode authMode, method, path string, form url.Values, out any) error {
	return c.do(ctx, mode, method, path, nil, "application/x-www-form-urlencoded", []byte(form.Encode()), out)
}
