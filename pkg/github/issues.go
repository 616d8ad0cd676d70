package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Issue states accepted by ListIssues.
const (
	IssueStateOpen   = "open"
	IssueStateClosed = "closed"
	IssueStateAll    = "all"
)

// CreateIssueOptions controls issue creation.
type CreateIssueOptions struct {
	Title string
	Body  string
}

// CreateIssue opens an issue on a repository owned by the authenticated
// account.
func (c *Client) CreateIssue(ctx context.Context, repo string, opts CreateIssueOptions) (*Issue, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	if opts.Title == "" {
		return nil, errors.New("issue title is required")
	}

	var issue Issue
	body := createIssueRequest{Title: opts.Title, Body: opts.Body}
	if err := c.api.Post(ctx, c.repoPath(repo, "issues"), body, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListIssues returns a repository's issues filtered by state. An empty
// state defaults to open; anything other than open, closed, or all is
// rejected before any request is sent. A repository with no matching
// issues yields an empty slice, not an error.
func (c *Client) ListIssues(ctx context.Context, repo, state string) ([]Issue, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	if state == "" {
		state = IssueStateOpen
	}
	switch state {
	case IssueStateOpen, IssueStateClosed, IssueStateAll:
	default:
		return nil, fmt.Errorf("invalid issue state %q: must be open, closed, or all", state)
	}

	q := url.Values{}
	q.Set("state", state)

	var issues []Issue
	if err := c.api.Get(ctx, c.repoPath(repo, "issues"), q, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
