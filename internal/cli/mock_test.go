package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ghops/ghops/pkg/github"
)

var errTest = errors.New("boom")

// =============================================================================
// fakeService
// =============================================================================

// fakeService implements service with scripted responses and records
// what handlers asked for.
type fakeService struct {
	login string

	// Scripted responses.
	user          *github.User
	repos         []github.Repository
	createdRepo   *github.Repository
	uploadResult  *github.UploadResult
	downloadData  []byte
	workflows     []github.Workflow
	gist          *github.Gist
	gists         []github.Gist
	notifications []github.Notification
	issue         *github.Issue
	issues        []github.Issue

	// Errors returned by the matching method when set.
	userErr      error
	reposErr     error
	createErr    error
	deleteErr    error
	uploadErr    error
	downloadErr  error
	workflowsErr error
	triggerErr   error
	gistErr      error
	gistsErr     error
	notifErr     error
	markErr      error
	issueErr     error
	issuesErr    error

	// Call tracking.
	fetchUserCalls int
	reposCalls     int
	createCalls    int
	deleteCalls    int
	uploadCalls    int
	downloadCalls  int
	workflowsCalls int
	triggerCalls   int
	gistCalls      int
	gistsCalls     int
	notifCalls     int
	markReadCalls  int
	issueCalls     int
	issuesCalls    int

	// Last arguments seen.
	lastPerPage      int
	lastCreateOpts   github.CreateRepositoryOptions
	lastDeleted      string
	lastUpload       github.UploadFileOptions
	lastDownloadRepo string
	lastDownloadPath string
	lastWorkflowRepo string
	lastTrigger      [3]string // repo, workflow, ref
	lastGistOpts     github.CreateGistOptions
	lastIssueRepo    string
	lastIssueOpts    github.CreateIssueOptions
	lastIssuesRepo   string
	lastIssuesState  string
}

func (f *fakeService) Login() string {
	return f.login
}

func (f *fakeService) FetchUser(ctx context.Context) (*github.User, error) {
	f.fetchUserCalls++
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user == nil {
		return &github.User{Login: f.login}, nil
	}
	return f.user, nil
}

func (f *fakeService) ListRepositories(ctx context.Context, perPage int) ([]github.Repository, error) {
	f.reposCalls++
	f.lastPerPage = perPage
	return f.repos, f.reposErr
}

func (f *fakeService) CreateRepository(ctx context.Context, opts github.CreateRepositoryOptions) (*github.Repository, error) {
	f.createCalls++
	f.lastCreateOpts = opts
	if f.createErr != nil {
		return f.createdRepo, f.createErr
	}
	if f.createdRepo == nil {
		return &github.Repository{Name: opts.Name, FullName: f.login + "/" + opts.Name}, nil
	}
	return f.createdRepo, nil
}

func (f *fakeService) DeleteRepository(ctx context.Context, repo string) error {
	f.deleteCalls++
	f.lastDeleted = repo
	return f.deleteErr
}

func (f *fakeService) UploadFile(ctx context.Context, opts github.UploadFileOptions) (*github.UploadResult, error) {
	f.uploadCalls++
	f.lastUpload = opts
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if f.uploadResult == nil {
		return &github.UploadResult{Path: opts.Path, CommitSHA: "0000000", Created: true}, nil
	}
	return f.uploadResult, nil
}

func (f *fakeService) DownloadFile(ctx context.Context, repo, path string) ([]byte, error) {
	f.downloadCalls++
	f.lastDownloadRepo = repo
	f.lastDownloadPath = path
	return f.downloadData, f.downloadErr
}

func (f *fakeService) ListWorkflows(ctx context.Context, repo string) ([]github.Workflow, error) {
	f.workflowsCalls++
	f.lastWorkflowRepo = repo
	return f.workflows, f.workflowsErr
}

func (f *fakeService) TriggerWorkflow(ctx context.Context, repo, workflow, ref string) error {
	f.triggerCalls++
	f.lastTrigger = [3]string{repo, workflow, ref}
	return f.triggerErr
}

func (f *fakeService) CreateGist(ctx context.Context, opts github.CreateGistOptions) (*github.Gist, error) {
	f.gistCalls++
	f.lastGistOpts = opts
	if f.gistErr != nil {
		return nil, f.gistErr
	}
	if f.gist == nil {
		return &github.Gist{ID: "g1", Public: opts.Public}, nil
	}
	return f.gist, nil
}

func (f *fakeService) ListGists(ctx context.Context) ([]github.Gist, error) {
	f.gistsCalls++
	return f.gists, f.gistsErr
}

func (f *fakeService) ListNotifications(ctx context.Context) ([]github.Notification, error) {
	f.notifCalls++
	return f.notifications, f.notifErr
}

func (f *fakeService) MarkNotificationsRead(ctx context.Context) error {
	f.markReadCalls++
	return f.markErr
}

func (f *fakeService) CreateIssue(ctx context.Context, repo string, opts github.CreateIssueOptions) (*github.Issue, error) {
	f.issueCalls++
	f.lastIssueRepo = repo
	f.lastIssueOpts = opts
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	if f.issue == nil {
		return &github.Issue{Number: 1, Title: opts.Title}, nil
	}
	return f.issue, nil
}

func (f *fakeService) ListIssues(ctx context.Context, repo, state string) ([]github.Issue, error) {
	f.issuesCalls++
	f.lastIssuesRepo = repo
	f.lastIssuesState = state
	return f.issues, f.issuesErr
}

var _ service = (*fakeService)(nil)

// =============================================================================
// scriptPrompter
// =============================================================================

// scriptPrompter implements Prompter from pre-recorded answers. Each
// prompt kind pops its own queue; an empty Input answer falls back to
// the prompt's default, like pressing enter on a prefilled value.
type scriptPrompter struct {
	t         *testing.T
	inputs    []string
	secrets   []string
	confirms  []bool
	selects   []int
	multiline []string

	labels []string
}

func (p *scriptPrompter) Input(label, defaultValue string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input prompt %q", label)
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (p *scriptPrompter) Secret(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.secrets) == 0 {
		p.t.Fatalf("unexpected Secret prompt %q", label)
	}
	answer := p.secrets[0]
	p.secrets = p.secrets[1:]
	return answer, nil
}

func (p *scriptPrompter) Confirm(label string) (bool, error) {
	p.labels = append(p.labels, label)
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm prompt %q", label)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptPrompter) Select(label string, items []string) (int, error) {
	p.labels = append(p.labels, label)
	if len(p.selects) == 0 {
		p.t.Fatalf("unexpected Select prompt %q", label)
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	if answer < 0 || answer >= len(items) {
		p.t.Fatalf("scripted Select answer %d out of range for %d items", answer, len(items))
	}
	return answer, nil
}

func (p *scriptPrompter) Multiline(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.multiline) == 0 {
		p.t.Fatalf("unexpected Multiline prompt %q", label)
	}
	answer := p.multiline[0]
	p.multiline = p.multiline[1:]
	return answer, nil
}

// =============================================================================
// Helpers
// =============================================================================

// testCLI builds a CLI with a scripted prompter and a discarded logger.
func testCLI(p Prompter) *CLI {
	c := New(io.Discard, LogInfo)
	if p != nil {
		c.prompter = p
	}
	return c
}
