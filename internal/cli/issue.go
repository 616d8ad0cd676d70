package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghops/ghops/pkg/github"
)

// issueStates are the filter choices for listing issues.
var issueStates = []string{github.IssueStateOpen, github.IssueStateClosed, github.IssueStateAll}

// =============================================================================
// Commands
// =============================================================================

// issueCommand creates the issue command with subcommands.
func (c *CLI) issueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Create and list issues",
	}

	cmd.AddCommand(c.issueCreateCommand())
	cmd.AddCommand(c.issueListCommand())

	return cmd
}

func (c *CLI) issueCreateCommand() *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "create REPO TITLE",
		Short: "Create an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.createIssue(cmd.Context(), sess.svc, args[0], github.CreateIssueOptions{
				Title: args[1],
				Body:  body,
			})
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "issue body")

	return cmd
}

func (c *CLI) issueListCommand() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "list REPO",
		Short: "List issues of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.listIssues(cmd.Context(), sess.svc, args[0], state)
		},
	}

	cmd.Flags().StringVar(&state, "state", github.IssueStateOpen, "filter by state: open, closed, or all")

	return cmd
}

// =============================================================================
// Interactive Handlers
// =============================================================================

func (c *CLI) runCreateIssue(ctx context.Context, svc service) error {
	repo, err := c.promptRepoName()
	if err != nil {
		return err
	}
	title, err := c.prompter.Input("Issue title", "")
	if err != nil {
		return err
	}
	body, err := c.prompter.Input("Issue body (optional)", "")
	if err != nil {
		return err
	}

	return c.createIssue(ctx, svc, repo, github.CreateIssueOptions{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	})
}

func (c *CLI) runListIssues(ctx context.Context, svc service) error {
	repo, err := c.promptRepoName()
	if err != nil {
		return err
	}
	choice, err := c.prompter.Select("Issue state", issueStates)
	if err != nil {
		return err
	}
	return c.listIssues(ctx, svc, repo, issueStates[choice])
}

// =============================================================================
// Shared Operations
// =============================================================================

func (c *CLI) createIssue(ctx context.Context, svc service, repo string, opts github.CreateIssueOptions) error {
	spinner := newSpinnerWithContext(ctx, "Creating issue...")
	spinner.Start()
	issue, err := svc.CreateIssue(ctx, repo, opts)
	if err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Created issue #%d", issue.Number))

	if issue.HTMLURL != "" {
		printKeyValue("URL", StyleLink.Render(issue.HTMLURL))
	}
	return nil
}

func (c *CLI) listIssues(ctx context.Context, svc service, repo, state string) error {
	spinner := newSpinnerWithContext(ctx, "Fetching issues...")
	spinner.Start()
	issues, err := svc.ListIssues(ctx, repo, state)
	spinner.Stop()
	if err != nil {
		return err
	}

	if state == "" {
		state = github.IssueStateOpen
	}
	printInfo("Issues of %s/%s (%s)", svc.Login(), repo, state)
	printNewline()
	renderIssues(issues)
	return nil
}
