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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production service.
const DefaultBaseURL = "https://api.maturapolski.pl"

const maxErrorBody = 64 << 10

// Credentials is the token storage the client reads and refreshes.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	UpdateToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Client talks to the learning service over JSON/HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	userAgent  string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on a copy of the current HTTP
// client, so a client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithCredentials attaches a bearer token source.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.creds = creds }
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  "matura",
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous requests skip the bearer header and the refresh retry.
	anonymous bool
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body}, out)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	resp, err := c.send(ctx, r)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && !r.anonymous && c.creds != nil {
		origErr := readError(resp)
		if rerr := c.refresh(ctx); rerr != nil {
			c.log.Debug().Err(rerr).Str("path", r.path).Msg("token refresh failed")
			return origErr
		}
		resp, err = c.send(ctx, r)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, r request) (*http.Response, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", r.path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	if !r.anonymous && c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	c.log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api request")
	return resp, nil
}

// refresh trades the refresh token for a new access token. Credentials are
// cleared when no refresh token exists or the exchange fails.
func (c *Client) refresh(ctx context.Context) error {
	rt, err := c.creds.RefreshToken(ctx)
	if err != nil || rt == "" {
		_ = c.creds.Clear(ctx)
		if err != nil {
			return err
		}
		return ErrUnauthorized
	}

	var out struct {
		Token string `json:"token"`
	}
	err = c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/api/auth/refresh",
		body:      map[string]string{"refreshToken": rt},
		anonymous: true,
	}, &out)
	if err == nil && out.Token == "" {
		err = fmt.Errorf("refresh returned no token")
	}
	if err != nil {
		_ = c.creds.Clear(ctx)
		return err
	}
	return c.creds.UpdateToken(ctx, out.Token)
}

func readError(resp *http.Response) error {
	defer resp.Body.Close()

	apiErr := &APIError{Status: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if json.Unmarshal(data, &body) == nil {
		apiErr.Code = body.Code
		if apiErr.Code == "" {
			apiErr.Code = body.Error
		}
		apiErr.Message = body.Message
	} else if s := strings.TrimSpace(string(data)); s != "" {
		apiErr.Message = s
	}
	return apiErr
}
