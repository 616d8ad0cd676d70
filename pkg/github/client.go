package github

import (
	"time"

	"github.com/ghops/ghops/pkg/gateway"
)

const (
	// DefaultBranch is used when an operation does not name a branch.
	DefaultBranch = "main"

	// defaultPerPage is the page size for listings.
	defaultPerPage = 100

	readmePath          = "README.md"
	readmeCommitMessage = "Update README.md"
)

// Client performs GitHub operations for the authenticated account.
type Client struct {
	api   *gateway.Client
	login string

	// Readiness polling for freshly created repositories. Repository
	// initialization is asynchronous on GitHub's side, so the first
	// content write after auto_init waits for the generated README to
	// appear, bounded by pollDeadline.
	pollInterval time.Duration
	pollDeadline time.Duration
}

// NewClient creates a client on top of an authenticated gateway.
func NewClient(api *gateway.Client) *Client {
	return &Client{
		api:          api,
		login:        api.Login(),
		pollInterval: time.Second,
		pollDeadline: 15 * time.Second,
	}
}

// Login returns the account login operations are performed as.
func (c *Client) Login() string {
	return c.login
}

// repoPath builds /repos/{login}/{repo} plus optional trailing segments.
func (c *Client) repoPath(repo string, rest ...string) string {
	p := "/repos/" + c.login + "/" + repo
	for _, seg := range rest {
		p += "/" + seg
	}
	return p
}
