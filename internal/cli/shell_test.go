package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/manifoldco/promptui"

	"github.com/ghops/ghops/pkg/gateway"
	"github.com/ghops/ghops/pkg/github"
)

// shellCLI builds a CLI whose service factory hands back fake and whose
// menu plays the scripted operations in order.
func shellCLI(t *testing.T, fake *fakeService, ops []operation) *CLI {
	t.Helper()
	t.Setenv("GHOPS_TOKEN", "ghp_test")

	c := testCLI(nil)
	c.user = "octocat"
	c.newService = func(cred gateway.Credential) service { return fake }

	queue := ops
	c.chooseOperation = func() (operation, error) {
		if len(queue) == 0 {
			t.Fatal("menu shown more times than scripted")
		}
		op := queue[0]
		queue = queue[1:]
		return op, nil
	}
	return c
}

func TestRunShellLoop(t *testing.T) {
	fake := &fakeService{login: "octocat"}
	c := shellCLI(t, fake, []operation{opListRepos, opListGists, opExit})

	if err := c.runShell(context.Background()); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}
	if fake.fetchUserCalls != 1 {
		t.Errorf("fetchUserCalls = %d, want 1", fake.fetchUserCalls)
	}
	if fake.reposCalls != 1 || fake.gistsCalls != 1 {
		t.Errorf("reposCalls = %d, gistsCalls = %d, want 1 each", fake.reposCalls, fake.gistsCalls)
	}
}

func TestRunShellContinuesAfterOperationError(t *testing.T) {
	fake := &fakeService{login: "octocat", reposErr: errTest}
	c := shellCLI(t, fake, []operation{opListRepos, opListGists, opExit})

	if err := c.runShell(context.Background()); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}
	if fake.reposCalls != 1 {
		t.Errorf("reposCalls = %d, want 1", fake.reposCalls)
	}
	// The loop kept going after the failure.
	if fake.gistsCalls != 1 {
		t.Errorf("gistsCalls = %d, want 1", fake.gistsCalls)
	}
}

func TestRunShellAuthFailure(t *testing.T) {
	fake := &fakeService{
		login:   "octocat",
		userErr: &gateway.APIError{StatusCode: 401, Message: "Bad credentials"},
	}
	c := shellCLI(t, fake, nil)

	err := c.runShell(context.Background())
	if err == nil {
		t.Fatal("expected auth failure")
	}
	if !strings.Contains(err.Error(), "verify credentials") {
		t.Errorf("err = %v, want verify credentials wrap", err)
	}
	if !gateway.IsUnauthorized(err) {
		t.Errorf("IsUnauthorized = false, want true through the wrap")
	}
}

func TestRunShellMenuInterrupt(t *testing.T) {
	fake := &fakeService{login: "octocat"}
	c := shellCLI(t, fake, nil)
	c.chooseOperation = func() (operation, error) {
		return opNone, promptui.ErrInterrupt
	}

	if err := c.runShell(context.Background()); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}
	if fake.reposCalls != 0 {
		t.Errorf("reposCalls = %d, want 0", fake.reposCalls)
	}
}

func TestRunShellPromptInterruptDuringOperation(t *testing.T) {
	fake := &fakeService{login: "octocat"}
	c := shellCLI(t, fake, []operation{opListWorkflows})
	c.prompter = &interruptPrompter{}

	if err := c.runShell(context.Background()); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}
	if fake.workflowsCalls != 0 {
		t.Errorf("workflowsCalls = %d, want 0", fake.workflowsCalls)
	}
}

func TestRunOperationDispatch(t *testing.T) {
	tests := []struct {
		name  string
		op    operation
		calls func(f *fakeService) int
	}{
		{"list repos", opListRepos, func(f *fakeService) int { return f.reposCalls }},
		{"list gists", opListGists, func(f *fakeService) int { return f.gistsCalls }},
		{"user info", opUserInfo, func(f *fakeService) int { return f.fetchUserCalls }},
		{"list notifications", opListNotifications, func(f *fakeService) int { return f.notifCalls }},
		{"mark read", opMarkNotificationsRead, func(f *fakeService) int { return f.markReadCalls }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeService{login: "octocat"}
			c := testCLI(nil)
			sess := &session{svc: fake, user: &github.User{Login: "octocat"}}

			if err := c.runOperation(context.Background(), sess, tt.op); err != nil {
				t.Fatalf("runOperation(%v) failed: %v", tt.op, err)
			}
			if got := tt.calls(fake); got != 1 {
				t.Errorf("calls = %d, want 1", got)
			}
		})
	}
}

func TestListReposUsesDefaultPageSize(t *testing.T) {
	fake := &fakeService{login: "octocat"}
	c := testCLI(nil)
	sess := &session{svc: fake}

	if err := c.runOperation(context.Background(), sess, opListRepos); err != nil {
		t.Fatalf("runOperation failed: %v", err)
	}
	if fake.lastPerPage != defaultListPageSize {
		t.Errorf("perPage = %d, want %d", fake.lastPerPage, defaultListPageSize)
	}
}

func TestInterrupted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"interrupt", promptui.ErrInterrupt, true},
		{"eof", promptui.ErrEOF, true},
		{"cancelled", context.Canceled, true},
		{"nil", nil, false},
		{"other", errTest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interrupted(tt.err); got != tt.want {
				t.Errorf("interrupted(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// interruptPrompter fails every prompt with ctrl+c.
type interruptPrompter struct{}

func (interruptPrompter) Input(string, string) (string, error) { return "", promptui.ErrInterrupt }
func (interruptPrompter) Secret(string) (string, error)        { return "", promptui.ErrInterrupt }
func (interruptPrompter) Confirm(string) (bool, error)         { return false, promptui.ErrInterrupt }
func (interruptPrompter) Select(string, []string) (int, error) { return 0, promptui.ErrInterrupt }
func (interruptPrompter) Multiline(string) (string, error)     { return "", promptui.ErrInterrupt }
