package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghops/ghops/pkg/github"
)

// =============================================================================
// Commands
// =============================================================================

// workflowCommand creates the workflow command with subcommands.
func (c *CLI) workflowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "List and trigger GitHub Actions workflows",
	}

	cmd.AddCommand(c.workflowListCommand())
	cmd.AddCommand(c.workflowTriggerCommand())

	return cmd
}

func (c *CLI) workflowListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list REPO",
		Short: "List workflows of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.listWorkflows(cmd.Context(), sess.svc, args[0])
		},
	}
}

func (c *CLI) workflowTriggerCommand() *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "trigger REPO WORKFLOW",
		Short: "Trigger a workflow run",
		Long: `Trigger a workflow_dispatch event.

WORKFLOW is a numeric workflow ID or a workflow file name such as
ci.yml. The workflow must declare the workflow_dispatch trigger.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.triggerWorkflow(cmd.Context(), sess.svc, args[0], args[1], ref)
		},
	}

	cmd.Flags().StringVar(&ref, "ref", github.DefaultBranch, "branch or tag to run the workflow on")

	return cmd
}

// =============================================================================
// Interactive Handlers
// =============================================================================

func (c *CLI) runListWorkflows(ctx context.Context, svc service) error {
	repo, err := c.promptRepoName()
	if err != nil {
		return err
	}
	return c.listWorkflows(ctx, svc, repo)
}

func (c *CLI) runTriggerWorkflow(ctx context.Context, svc service) error {
	repo, err := c.promptRepoName()
	if err != nil {
		return err
	}
	workflow, err := c.prompter.Input("Workflow ID or file name", "")
	if err != nil {
		return err
	}
	ref, err := c.prompter.Input("Branch or ref", github.DefaultBranch)
	if err != nil {
		return err
	}
	return c.triggerWorkflow(ctx, svc, repo, strings.TrimSpace(workflow), strings.TrimSpace(ref))
}

// =============================================================================
// Shared Operations
// =============================================================================

func (c *CLI) listWorkflows(ctx context.Context, svc service, repo string) error {
	spinner := newSpinnerWithContext(ctx, "Fetching workflows...")
	spinner.Start()
	workflows, err := svc.ListWorkflows(ctx, repo)
	spinner.Stop()
	if err != nil {
		return err
	}

	printInfo("Workflows of %s/%s", svc.Login(), repo)
	printNewline()
	renderWorkflows(workflows)
	return nil
}

func (c *CLI) triggerWorkflow(ctx context.Context, svc service, repo, workflow, ref string) error {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Triggering %s...", workflow))
	spinner.Start()
	if err := svc.TriggerWorkflow(ctx, repo, workflow, ref); err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Triggered %s", workflow))
	printDetail("The run shows up in the repository's Actions tab shortly")
	return nil
}
