// Package api implements the HTTP client every platform service talks through.
// It adds the base URL, bearer authentication, the optional team scope, a
// fixed timeout, and translates failed responses into *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skyport-cloud/skyport-mcp/internal/logger"
)

const (
	// DefaultTimeout bounds every request, including reading the response.
	DefaultTimeout = 30 * time.Second

	// TeamQueryParam scopes requests to a team when one is configured.
	TeamQueryParam = "teamID"
)

// ErrMissingToken is returned by New when no API token is configured.
var ErrMissingToken = errors.New("an API token is required: set SKYPORT_API_TOKEN")

// Options configures a Client.
type Options struct {
	BaseURL   string
	Token     string
	TeamID    string
	UserAgent string

	// Transport is the round tripper requests go through. It defaults to
	// http.DefaultTransport.
	Transport http.RoundTripper

	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration

	Logger *logger.Logger
}

// Client is safe for concurrent use; its configuration is fixed at
// construction.
type Client struct {
	baseURL    string
	token      string
	teamID     string
	userAgent  string
	httpClient *http.Client
	logger     *logger.Logger
}

// New returns a Client for opts. It fails when the token is missing or the
// base URL cannot be parsed.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Token) == "" {
		return nil, ErrMissingToken
	}

	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", opts.BaseURL)
	}

	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		token:     opts.Token,
		teamID:    opts.TeamID,
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &LoggingTransport{
				innerTransport: opts.Transport,
				logger:         opts.Logger,
			},
		},
	}, nil
}

// BaseURL returns the URL every request path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TeamID returns the configured team scope, if any.
func (c *Client) TeamID() string {
	return c.teamID
}

// Get decodes the JSON body of GET path into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends in as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, in, out)
}

// Put sends in as JSON and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, in, out)
}

// Patch sends in as JSON and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, in, out)
}

// Delete issues DELETE path and decodes any response body into out.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodDelete, path, query, nil, out)
}

// Do sends a JSON request. in may be nil for requests without a body and out
// may be nil when the response body is not needed.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return requestError(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.NewRequest(ctx, method, path, query, body, "application/json")
	if err != nil {
		return requestError(err)
	}

	return c.send(req, out)
}

// NewRequest builds an authenticated request for path relative to the base
// URL. The team scope, when configured, is added to the query.
func (c *Client) NewRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, err
	}

	q := target.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if c.teamID != "" {
		q.Set(TeamQueryParam, c.teamID)
	}
	target.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugf("request to %s failed: %v", req.URL.Path, err)
		return &Error{
			Code:          CodeNetworkError,
			Message:       MessageNetwork,
			OriginalError: err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Code:          CodeNetworkError,
			Message:       MessageNetwork,
			StatusCode:    resp.StatusCode,
			OriginalError: err,
		}
	}

	if resp.StatusCode > 299 {
		apiErr := errorFromResponse(resp.StatusCode, body)
		c.logger.Debugf("%s %s failed with %d: %s", req.Method, req.URL.Path, resp.StatusCode, apiErr.ResponseBodyString())
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return &Error{
			Code:          CodeAPIError,
			Message:       "The API returned a response that is not valid JSON.",
			StatusCode:    resp.StatusCode,
			ResponseBody:  body,
			OriginalError: err,
		}
	}

	return nil
}

// requestError reports a request that could not be constructed with the
// underlying error's own message.
func requestError(err error) *Error {
	return &Error{
		Code:          CodeRequestError,
		Message:       err.Error(),
		OriginalError: err,
	}
}
