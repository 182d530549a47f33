// Package api is the HTTP client for the DeadlineHub REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CredentialProvider supplies the bearer token for authenticated requests.
// It is consulted once per request so a token change is picked up by the
// next call without restarting the client.
type CredentialProvider interface {
	Token() string
}

// TokenFunc adapts a plain function to a CredentialProvider.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client calls the remote API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialProvider
}

// Error represents a structured API error response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewClient constructs an API client. creds may be nil when only
// unauthenticated reads are needed.
func NewClient(baseURL string, creds CredentialProvider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		creds:      creds,
	}
}

// Page is the envelope the API wraps every paginated listing in.
type Page[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"currentPage"`
}

type recordResponse[T any] struct {
	Data T `json:"data"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, authed bool, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if authed {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Message
		if msg == "" {
			msg = resp.Status
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

func pageQuery(page, limit int, key, value string) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	if value != "" {
		q.Set(key, value)
	}
	return q
}
