package github

import (
	"context"
	"errors"
)

// CreateGistOptions controls gist creation. A gist holds one file here;
// the API supports more, but a single snippet is the shape this client
// uploads.
type CreateGistOptions struct {
	Description string
	Public      bool
	Filename    string
	Content     string
}

// CreateGist creates a gist with a single file.
func (c *Client) CreateGist(ctx context.Context, opts CreateGistOptions) (*Gist, error) {
	if opts.Filename == "" {
		return nil, errors.New("gist filename is required")
	}

	body := createGistRequest{
		Description: opts.Description,
		Public:      opts.Public,
		Files: map[string]gistFilePayload{
			opts.Filename: {Content: opts.Content},
		},
	}
	var gist Gist
	if err := c.api.Post(ctx, "/gists", body, &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// ListGists returns the authenticated user's gists.
func (c *Client) ListGists(ctx context.Context) ([]Gist, error) {
	var gists []Gist
	if err := c.api.Get(ctx, "/gists", nil, &gists); err != nil {
		return nil, err
	}
	return gists, nil
}
