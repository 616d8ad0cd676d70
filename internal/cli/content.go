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

// fileCommand creates the file command with subcommands.
func (c *CLI) fileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Upload and download repository files",
	}

	cmd.AddCommand(c.fileUploadCommand())
	cmd.AddCommand(c.fileDownloadCommand())

	return cmd
}

func (c *CLI) fileUploadCommand() *cobra.Command {
	var (
		dest    string
		message string
		branch  string
	)

	cmd := &cobra.Command{
		Use:   "upload REPO PATH",
		Short: "Upload a local file to a repository",
		Long: `Upload a local file to a repository.

An existing file at the destination is updated in place; otherwise the
file is created. The destination defaults to the file's base name at the
repository root.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination := dest
			if destination == "" {
				destination = filepath.Base(args[1])
			}

			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.uploadFile(cmd.Context(), sess.svc, github.UploadFileOptions{
				Repo:    args[0],
				Path:    destination,
				Message: message,
				Branch:  branch,
			}, args[1])
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "destination path in the repository")
	cmd.Flags().StringVar(&message, "message", "", "commit message")
	cmd.Flags().StringVar(&branch, "branch", "", "target branch (defaults to main)")

	return cmd
}

func (c *CLI) fileDownloadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download REPO PATH",
		Short: "Download a file from a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.downloadFile(cmd.Context(), sess.svc, args[0], args[1], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "where to save the file (defaults to the base name)")

	return cmd
}

// =============================================================================
// Interactive Handlers
// =============================================================================

func (c *CLI) runUploadFile(ctx context.Context, svc service) error {
	repo, err := c.promptRepoName()
	if err != nil {
		return err
	}
	branch, err := c.prompter.Input("Branch", github.DefaultBranch)
	if err != nil {
		return err
	}
	localPath, err := c.prompter.Input("Local file to upload", "")
	if err != nil {
		return err
	}
	localPath = strings.TrimSpace(localPath)
	if _, err := os.Stat(localPath); err != nil {
		return fmt.Errorf("file not found: %s", localPath)
	}
	dest, err := c.prompter.Input("Destination path in the repository", filepath.Base(localPath))
	if err != nil {
		return err
	}
	message, err := c.prompter.Input("Commit message (optional)", "")
	if err != nil {
		return err
	}

	return c.uploadFile(ctx, svc, github.UploadFileOptions{
		Repo:    repo,
		Path:    strings.TrimSpace(dest),
		Message: strings.TrimSpace(message),
		Branch:  strings.TrimSpace(branch),
	}, localPath)
}

func (c *CLI) runDownloadFile(ctx context.Context, svc service) error {
	repo, err := c.promptRepoName()
	if err != nil {
		return err
	}
	remotePath, err := c.prompter.Input("File path in the repository", "")
	if err != nil {
		return err
	}
	remotePath = strings.TrimSpace(remotePath)
	savePath, err := c.prompter.Input("Save to", filepath.Base(remotePath))
	if err != nil {
		return err
	}

	return c.downloadFile(ctx, svc, repo, remotePath, strings.TrimSpace(savePath))
}

// =============================================================================
// Shared Operations
// =============================================================================

func (c *CLI) uploadFile(ctx context.Context, svc service, opts github.UploadFileOptions, localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", localPath, err)
	}
	opts.Content = data

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Uploading %s...", opts.Path))
	spinner.Start()
	result, err := svc.UploadFile(ctx, opts)
	if err != nil {
		spinner.Stop()
		return err
	}
	if result.Created {
		spinner.StopWithSuccess(fmt.Sprintf("Created %s", result.Path))
	} else {
		spinner.StopWithSuccess(fmt.Sprintf("Updated %s", result.Path))
	}

	printKeyValue("Commit", shortSHA(result.CommitSHA))
	if result.HTMLURL != "" {
		printKeyValue("URL", StyleLink.Render(result.HTMLURL))
	}
	return nil
}

func (c *CLI) downloadFile(ctx context.Context, svc service, repo, remotePath, savePath string) error {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Downloading %s...", remotePath))
	spinner.Start()
	data, err := svc.DownloadFile(ctx, repo, remotePath)
	spinner.Stop()
	if err != nil {
		return err
	}

	if savePath == "" {
		savePath = filepath.Base(remotePath)
	}
	if err := os.WriteFile(savePath, data, 0644); err != nil {
		return fmt.Errorf("save file: %w", err)
	}

	printSuccess("Downloaded %s", remotePath)
	printFile(savePath)
	return nil
}
