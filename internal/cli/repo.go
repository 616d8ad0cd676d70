package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghops/ghops/pkg/github"
)

// =============================================================================
// Commands
// =============================================================================

// repoCommand creates the repo command with subcommands.
func (c *CLI) repoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories",
	}

	cmd.AddCommand(c.repoListCommand())
	cmd.AddCommand(c.repoCreateCommand())
	cmd.AddCommand(c.repoDeleteCommand())

	return cmd
}

func (c *CLI) repoListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.listRepositories(cmd.Context(), sess.svc, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListPageSize, "maximum number of repositories to list")

	return cmd
}

func (c *CLI) repoCreateCommand() *cobra.Command {
	var (
		private     bool
		description string
		noReadme    bool
		readmeFile  string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a repository",
		Long: `Create a repository under the authenticated account.

By default the repository starts with a generated README on the main
branch. Pass --readme-file to replace it with your own content, or
--no-readme to create the repository empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := github.CreateRepositoryOptions{
				Name:        args[0],
				Description: description,
				Private:     private,
				AutoInit:    !noReadme,
			}
			if readmeFile != "" {
				data, err := os.ReadFile(readmeFile)
				if err != nil {
					return fmt.Errorf("read README file: %w", err)
				}
				opts.AutoInit = true
				opts.ReadmeContent = string(data)
			}

			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.createRepository(cmd.Context(), sess.svc, opts)
		},
	}

	cmd.Flags().BoolVar(&private, "private", false, "create a private repository")
	cmd.Flags().StringVar(&description, "description", "", "repository description")
	cmd.Flags().BoolVar(&noReadme, "no-readme", false, "skip README initialization")
	cmd.Flags().StringVar(&readmeFile, "readme-file", "", "file with content for the initial README")

	return cmd
}

func (c *CLI) repoDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			if !yes {
				ok, err := c.confirmDeletion(sess.svc.Login(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					printInfo("Deletion cancelled")
					return nil
				}
			}
			return c.deleteRepository(cmd.Context(), sess.svc, args[0])
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

// =============================================================================
// Interactive Handlers
// =============================================================================

func (c *CLI) runCreateRepository(ctx context.Context, svc service) error {
	name, err := c.promptRepoName()
	if err != nil {
		return err
	}
	private, err := c.prompter.Confirm("Make it private")
	if err != nil {
		return err
	}
	description, err := c.prompter.Input("Description (optional)", "")
	if err != nil {
		return err
	}

	addReadme, err := c.prompter.Confirm("Add a README")
	if err != nil {
		return err
	}
	var readmeContent string
	if addReadme {
		customize, err := c.prompter.Confirm("Customize the README content")
		if err != nil {
			return err
		}
		if customize {
			readmeContent, err = c.promptReadmeContent()
			if err != nil {
				return err
			}
		}
	}

	return c.createRepository(ctx, svc, github.CreateRepositoryOptions{
		Name:          name,
		Description:   strings.TrimSpace(description),
		Private:       private,
		AutoInit:      addReadme,
		ReadmeContent: readmeContent,
	})
}

// promptReadmeContent asks whether the README comes from the keyboard or
// a file. A file that cannot be read falls back to the generated README.
func (c *CLI) promptReadmeContent() (string, error) {
	choice, err := c.prompter.Select("README content", []string{"Type content directly", "Load from a file"})
	if err != nil {
		return "", err
	}

	if choice == 1 {
		path, err := c.prompter.Input("Path to README file", "")
		if err != nil {
			return "", err
		}
		path = strings.TrimSpace(path)
		data, err := os.ReadFile(path)
		if err != nil {
			printError("Could not read %s; keeping the generated README", path)
			return "", nil
		}
		printSuccess("README content loaded from %s", path)
		return string(data), nil
	}

	return c.prompter.Multiline("README content")
}

func (c *CLI) runDeleteRepository(ctx context.Context, svc service) error {
	name, err := c.promptRepoName()
	if err != nil {
		return err
	}
	ok, err := c.confirmDeletion(svc.Login(), name)
	if err != nil {
		return err
	}
	if !ok {
		printInfo("Deletion cancelled")
		return nil
	}
	return c.deleteRepository(ctx, svc, name)
}

// confirmDeletion requires the full word yes; a lone y is not enough to
// drop a repository.
func (c *CLI) confirmDeletion(owner, name string) (bool, error) {
	printWarning("This permanently deletes %s/%s", owner, name)
	answer, err := c.prompter.Input(`Type "yes" to confirm`, "")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(answer) == "yes", nil
}

// promptRepoName asks for a repository name and validates it before any
// request goes out.
func (c *CLI) promptRepoName() (string, error) {
	answer, err := c.prompter.Input("Repository name", "")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(answer)
	if err := github.ValidateRepo(name); err != nil {
		return "", err
	}
	return name, nil
}

// =============================================================================
// Shared Operations
// =============================================================================

func (c *CLI) listRepositories(ctx context.Context, svc service, limit int) error {
	spinner := newSpinnerWithContext(ctx, "Fetching repositories...")
	spinner.Start()
	repos, err := svc.ListRepositories(ctx, limit)
	spinner.Stop()
	if err != nil {
		return err
	}

	printInfo("Repositories of @%s", svc.Login())
	printNewline()
	renderRepositories(repos)
	return nil
}

func (c *CLI) createRepository(ctx context.Context, svc service, opts github.CreateRepositoryOptions) error {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Creating %s...", opts.Name))
	spinner.Start()
	repo, err := svc.CreateRepository(ctx, opts)
	switch {
	case err != nil && repo == nil:
		spinner.Stop()
		return err
	case err != nil:
		// The repository exists; only the README write failed.
		spinner.Stop()
		printWarning("%v", err)
	default:
		spinner.StopWithSuccess(fmt.Sprintf("Created %s", repo.FullName))
	}

	if repo.HTMLURL != "" {
		printKeyValue("URL", StyleLink.Render(repo.HTMLURL))
	}
	printNextStep("Upload a file", fmt.Sprintf("%s file upload %s <path>", appName, repo.Name))
	return nil
}

func (c *CLI) deleteRepository(ctx context.Context, svc service, name string) error {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Deleting %s...", name))
	spinner.Start()
	if err := svc.DeleteRepository(ctx, name); err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Deleted %s/%s", svc.Login(), name))
	return nil
}
