package github

import (
	"context"
	"errors"
)

// ListWorkflows returns the GitHub Actions workflows defined in a
// repository owned by the authenticated account.
func (c *Client) ListWorkflows(ctx context.Context, repo string) ([]Workflow, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	var resp workflowListResponse
	if err := c.api.Get(ctx, c.repoPath(repo, "actions", "workflows"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Workflows, nil
}

// TriggerWorkflow dispatches a workflow run on the given ref. The
// workflow may be addressed by numeric ID or by its file name (e.g.
// "ci.yml"). An empty ref defaults to DefaultBranch. GitHub answers a
// successful dispatch with 204 and no body.
func (c *Client) TriggerWorkflow(ctx context.Context, repo, workflow, ref string) error {
	if err := ValidateRepo(repo); err != nil {
		return err
	}
	if workflow == "" {
		return errors.New("workflow ID or file name is required")
	}
	if ref == "" {
		ref = DefaultBranch
	}
	path := c.repoPath(repo, "actions", "workflows", workflow, "dispatches")
	return c.api.Post(ctx, path, dispatchRequest{Ref: ref}, nil)
}
