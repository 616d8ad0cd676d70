package cli

import (
	"context"

	"github.com/ghops/ghops/pkg/github"
)

// service is the API surface the CLI drives. It mirrors the exported
// methods of github.Client so handlers can be tested against a fake.
type service interface {
	Login() string
	FetchUser(ctx context.Context) (*github.User, error)

	ListRepositories(ctx context.Context, perPage int) ([]github.Repository, error)
	CreateRepository(ctx context.Context, opts github.CreateRepositoryOptions) (*github.Repository, error)
	DeleteRepository(ctx context.Context, repo string) error

	UploadFile(ctx context.Context, opts github.UploadFileOptions) (*github.UploadResult, error)
	DownloadFile(ctx context.Context, repo, path string) ([]byte, error)

	ListWorkflows(ctx context.Context, repo string) ([]github.Workflow, error)
	TriggerWorkflow(ctx context.Context, repo, workflow, ref string) error

	CreateGist(ctx context.Context, opts github.CreateGistOptions) (*github.Gist, error)
	ListGists(ctx context.Context) ([]github.Gist, error)

	ListNotifications(ctx context.Context) ([]github.Notification, error)
	MarkNotificationsRead(ctx context.Context) error

	CreateIssue(ctx context.Context, repo string, opts github.CreateIssueOptions) (*github.Issue, error)
	ListIssues(ctx context.Context, repo, state string) ([]github.Issue, error)
}

var _ service = (*github.Client)(nil)
