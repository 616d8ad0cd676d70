package gateway

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

	"github.com/charmbracelet/log"

	"github.com/ghops/ghops/pkg/buildinfo"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"

	// apiVersion pins the REST API revision for every request.
	apiVersion = "2022-11-28"

	// acceptHeader is the GitHub JSON media type.
	acceptHeader = "application/vnd.github+json"

	requestTimeout = 30 * time.Second
)

// Credential holds the token and account login captured at startup.
// It is immutable for the lifetime of the process.
type Credential struct {
	Login string
	Token string
}

// Redacted returns a display-safe form of the token, keeping only the
// last four characters. Use this anywhere a credential could end up in
// logs or on screen.
func (c Credential) Redacted() string {
	if len(c.Token) <= 4 {
		return "****"
	}
	return "****" + c.Token[len(c.Token)-4:]
}

// Client executes authenticated requests against the GitHub REST API.
// The zero value is not usable; construct one with NewClient.
type Client struct {
	cred      Credential
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *log.Logger
}

// NewClient creates a client that authenticates every request with cred.
func NewClient(cred Credential) *Client {
	return &Client{
		cred:      cred,
		baseURL:   DefaultBaseURL,
		userAgent: "ghops/" + buildinfo.Version,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

// SetBaseURL overrides the API endpoint, for GitHub Enterprise
// installations and tests. Trailing slashes are stripped.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// SetLogger attaches a logger used for per-request debug output.
// The token is never written to the log.
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

// Login returns the account login the client authenticates as.
func (c *Client) Login() string {
	return c.cred.Login
}

// Get performs a GET request. Query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, result)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, result)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, result)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do sends a single authenticated request and decodes the JSON response
// into result when result is non-nil. A 2xx response with an empty body
// returns nil and leaves result untouched. Any other status is returned
// as an [*APIError]; transport failures are returned as wrapped errors.
//
// Exactly one HTTP round trip happens per call.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return fmt.Errorf("unsupported method %q", method)
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cred.Token)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("github request failed", "method", method, "path", path, "err", err)
		}
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("github request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	// 204/205 and bodyless 200s succeed without touching result.
	if result == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
