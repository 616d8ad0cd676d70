package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghops/ghops/pkg/github"
)

// =============================================================================
// Commands
// =============================================================================

// gistCommand creates the gist command with subcommands.
func (c *CLI) gistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gist",
		Short: "Create and list gists",
	}

	cmd.AddCommand(c.gistCreateCommand())
	cmd.AddCommand(c.gistListCommand())

	return cmd
}

func (c *CLI) gistCreateCommand() *cobra.Command {
	var (
		description string
		public      bool
	)

	cmd := &cobra.Command{
		Use:   "create FILE",
		Short: "Create a gist from a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.createGistFromFile(cmd.Context(), sess.svc, args[0], description, public)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "gist description")
	cmd.Flags().BoolVar(&public, "public", false, "make the gist public (default is secret)")

	return cmd
}

func (c *CLI) gistListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List gists of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.listGists(cmd.Context(), sess.svc)
		},
	}
}

// =============================================================================
// Interactive Handlers
// =============================================================================

func (c *CLI) runCreateGist(ctx context.Context, svc service) error {
	description, err := c.prompter.Input("Gist description (optional)", "")
	if err != nil {
		return err
	}
	path, err := c.prompter.Input("File to create the gist from", "")
	if err != nil {
		return err
	}
	public, err := c.prompter.Confirm("Make it public")
	if err != nil {
		return err
	}

	return c.createGistFromFile(ctx, svc, strings.TrimSpace(path), strings.TrimSpace(description), public)
}

func (c *CLI) runListGists(ctx context.Context, svc service) error {
	return c.listGists(ctx, svc)
}

// =============================================================================
// Shared Operations
// =============================================================================

func (c *CLI) createGistFromFile(ctx context.Context, svc service, path, description string, public bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	spinner := newSpinnerWithContext(ctx, "Creating gist...")
	spinner.Start()
	gist, err := svc.CreateGist(ctx, github.CreateGistOptions{
		Description: description,
		Public:      public,
		Filename:    filepath.Base(path),
		Content:     string(data),
	})
	if err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess("Created gist")

	if gist.HTMLURL != "" {
		printKeyValue("URL", StyleLink.Render(gist.HTMLURL))
	}
	return nil
}

func (c *CLI) listGists(ctx context.Context, svc service) error {
	spinner := newSpinnerWithContext(ctx, "Fetching gists...")
	spinner.Start()
	gists, err := svc.ListGists(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}

	printInfo("Gists of @%s", svc.Login())
	printNewline()
	renderGists(gists)
	return nil
}
