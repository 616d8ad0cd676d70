package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// CreateRepositoryOptions controls repository creation.
type CreateRepositoryOptions struct {
	Name        string
	Description string
	Private     bool

	// AutoInit asks GitHub to create the repository with a generated
	// README. ReadmeContent, when non-empty alongside AutoInit,
	// overwrites that generated README with the given markdown.
	AutoInit      bool
	ReadmeContent string
}

// ListRepositories returns the authenticated user's repositories.
// perPage bounds the single page fetched; values <= 0 fall back to 100.
func (c *Client) ListRepositories(ctx context.Context, perPage int) ([]Repository, error) {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))

	var repos []Repository
	if err := c.api.Get(ctx, "/user/repos", q, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// CreateRepository creates a repository under the authenticated account.
//
// With AutoInit and a custom ReadmeContent, the generated README is then
// replaced via a conditional contents write. Repository initialization is
// asynchronous, so the client polls for the generated file before writing,
// bounded by the poll deadline; if it never appears the write proceeds as
// a plain create. When the repository was created but the README write
// failed, the repository is returned together with the error.
func (c *Client) CreateRepository(ctx context.Context, opts CreateRepositoryOptions) (*Repository, error) {
	if err := ValidateRepo(opts.Name); err != nil {
		return nil, err
	}

	body := createRepoRequest{
		Name:        opts.Name,
		Description: opts.Description,
		Private:     opts.Private,
		AutoInit:    opts.AutoInit,
	}
	var repo Repository
	if err := c.api.Post(ctx, "/user/repos", body, &repo); err != nil {
		return nil, err
	}

	if opts.AutoInit && opts.ReadmeContent != "" {
		if err := c.replaceInitialReadme(ctx, opts.Name, opts.ReadmeContent); err != nil {
			return &repo, fmt.Errorf("repository created, but README update failed: %w", err)
		}
	}
	return &repo, nil
}

// DeleteRepository permanently deletes a repository owned by the
// authenticated account. Confirmation is the caller's responsibility.
func (c *Client) DeleteRepository(ctx context.Context, repo string) error {
	if err := ValidateRepo(repo); err != nil {
		return err
	}
	return c.api.Delete(ctx, c.repoPath(repo))
}

// replaceInitialReadme overwrites the README that auto_init generated.
func (c *Client) replaceInitialReadme(ctx context.Context, repo, content string) error {
	sha := c.waitForContent(ctx, repo, readmePath)

	body := putContentsRequest{
		Message: readmeCommitMessage,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  DefaultBranch,
		SHA:     sha,
	}
	return c.api.Put(ctx, c.repoPath(repo, "contents", readmePath), body, nil)
}

// waitForContent polls a content path until it exists, returning its
// revision SHA. It gives up at the poll deadline (or on context
// cancellation) and returns an empty SHA, which makes the subsequent
// write a create rather than an update.
func (c *Client) waitForContent(ctx context.Context, repo, path string) string {
	deadline := time.Now().Add(c.pollDeadline)
	for {
		var fc FileContent
		if err := c.api.Get(ctx, c.repoPath(repo, "contents", path), nil, &fc); err == nil {
			return fc.SHA
		}
		if time.Now().After(deadline) {
			return ""
		}
		select {
		case <-ctx.Done():
			return ""
		case <-time.After(c.pollInterval):
		}
	}
}
