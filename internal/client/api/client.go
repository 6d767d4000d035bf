// Package api implements the REST transport for the tidechat backend and
// the response-envelope decoding protocol shared by every route.
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

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/tidechat/internal/logging"
)

const sessionTokenHeader = "x-session-token"

// Doer is the minimal http client surface used by Client. *http.Client
// satisfies it; tests can substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues authenticated requests against the backend REST API and
// returns raw response bodies for envelope decoding.
type Client struct {
	baseURL string
	token   string
	http    Doer
	log     logging.Logger
}

// NewClient constructs a Client for the given API base URL and session
// token. If the token is JWT-formatted and already expired, a warning is
// logged; the token is still sent as-is (the server has the final word).
func NewClient(baseURL, token string, httpClient Doer, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		log:     log,
	}
	c.warnIfTokenExpired(context.Background())
	return c
}

// warnIfTokenExpired does an unverified claims parse of the session token.
// Opaque (non-JWT) tokens are accepted silently.
func (c *Client) warnIfTokenExpired(ctx context.Context) {
	if c.log == nil || c.token == "" {
		return
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, &claims); err != nil {
		return
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		c.log.Warn(ctx, "session token is expired", "expired_at", claims.ExpiresAt.Time)
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if c.token != "" {
		req.Header.Set(sessionTokenHeader, c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return b, nil
}

// Get issues a GET and returns the raw body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

// Patch issues a PATCH with a JSON body and returns the raw response body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, http.MethodPatch, path, nil, bytes.NewReader(b), "application/json")
}

// Put issues a bodyless PUT. The response body is read and discarded;
// callers that care about it use Get/Patch instead.
func (c *Client) Put(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, nil, "")
	return err
}

// Delete issues a DELETE with optional query parameters.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	_, err := c.do(ctx, http.MethodDelete, path, query, nil, "")
	return err
}
