package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
)

// UploadFileOptions controls a contents write.
type UploadFileOptions struct {
	Repo    string
	Path    string // destination path within the repository
	Content []byte

	Message string // commit message; defaults to "Upload <basename>"
	Branch  string // defaults to DefaultBranch
}

// UploadResult summarizes a successful contents write.
type UploadResult struct {
	Path      string
	CommitSHA string
	HTMLURL   string
	Created   bool // true when the write created the file rather than updating it
}

// UploadFile writes a file into a repository, creating or updating it.
//
// A read probe first fetches the file's current revision SHA. When the
// probe succeeds the write carries that SHA and updates the existing
// file; when it fails, for any reason, the write omits the SHA and
// creates the file. The presence of the SHA is the only thing that
// distinguishes the two paths.
func (c *Client) UploadFile(ctx context.Context, opts UploadFileOptions) (*UploadResult, error) {
	if err := ValidateRepo(opts.Repo); err != nil {
		return nil, err
	}
	if opts.Path == "" {
		return nil, errors.New("destination path is required")
	}

	message := opts.Message
	if message == "" {
		message = "Upload " + path.Base(opts.Path)
	}
	branch := opts.Branch
	if branch == "" {
		branch = DefaultBranch
	}

	sha := c.probeFileSHA(ctx, opts.Repo, opts.Path)

	body := putContentsRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(opts.Content),
		Branch:  branch,
		SHA:     sha,
	}
	var resp contentWriteResponse
	if err := c.api.Put(ctx, c.repoPath(opts.Repo, "contents", opts.Path), body, &resp); err != nil {
		return nil, err
	}

	return &UploadResult{
		Path:      resp.Content.Path,
		CommitSHA: resp.Commit.SHA,
		HTMLURL:   resp.Content.HTMLURL,
		Created:   sha == "",
	}, nil
}

// DownloadFile fetches a file from a repository and returns its decoded
// bytes. The contents API delivers base64 with embedded newlines.
func (c *Client) DownloadFile(ctx context.Context, repo, filePath string) ([]byte, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	if filePath == "" {
		return nil, errors.New("file path is required")
	}

	var fc FileContent
	if err := c.api.Get(ctx, c.repoPath(repo, "contents", filePath), nil, &fc); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(fc.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return data, nil
}

// probeFileSHA reads the current revision SHA of a file. Any failure
// reads as "not present": the caller's write then creates instead of
// updating, and a wrong guess is rejected by the service.
func (c *Client) probeFileSHA(ctx context.Context, repo, filePath string) string {
	var fc FileContent
	if err := c.api.Get(ctx, c.repoPath(repo, "contents", filePath), nil, &fc); err != nil {
		return ""
	}
	return fc.SHA
}
