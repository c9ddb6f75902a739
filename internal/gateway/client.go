package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Client is the inventory API client. All requests made through it carry
// the session's access token; an expired token is renewed transparently.
type Client struct {
	baseURL    string
	store      *sessionStore
	httpClient *http.Client

	// plain client for the refresh call itself, outside the interceptor.
	refreshClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the underlying transport (the interceptor wraps it).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport.(*authTransport).base = rt
	}
}

// WithSessionExpiredHandler registers a callback invoked when the silent
// refresh fails and the session is cleared. Concurrent expired requests may
// each attempt their own refresh, so the callback must be idempotent.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) {
		c.httpClient.Transport.(*authTransport).onExpired = fn
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	store := &sessionStore{}
	refreshClient := &http.Client{}

	client := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		store:         store,
		refreshClient: refreshClient,
	}

	transport := &authTransport{
		base:  http.DefaultTransport,
		store: store,
	}
	transport.refresher = func() (string, error) {
		return refreshAccessToken(refreshClient, client.baseURL, store.get().RefreshToken)
	}

	client.httpClient = &http.Client{Transport: transport}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Session returns a copy of the current session.
func (c *Client) Session() Session {
	return c.store.get()
}

// SetSession installs a previously obtained session.
func (c *Client) SetSession(session Session) {
	c.store.set(session)
}

// ClearSession drops the stored tokens.
func (c *Client) ClearSession() {
	c.store.clear()
}

// Login authenticates and stores the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		Username     string `json:"username"`
	}

	err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": password}, http.StatusOK, &body)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		Username:     body.Username,
	}
	c.store.set(session)

	return session, nil
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"username": username, "email": email, "password": password},
		http.StatusCreated, nil)
}

// Do sends the request through the authenticated transport.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// Get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, out)
}

// APIError is returned for non-2xx responses, carrying the server's
// message or validation errors.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}

	return http.StatusText(e.StatusCode)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, wantStatus int, out any) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode response body")
		}
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	}

	return apiErr
}
