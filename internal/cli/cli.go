// Package cli implements the ghops command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ghops/ghops/pkg/buildinfo"
	"github.com/ghops/ghops/pkg/gateway"
	"github.com/ghops/ghops/pkg/github"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "ghops"

	// defaultListPageSize is how many entries list operations request.
	defaultListPageSize = 100
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags shared by every command.
	user   string
	apiURL string

	// Seams for tests: prompts, menu selection, and the API client
	// factory can all be swapped for scripted fakes.
	prompter        Prompter
	chooseOperation func() (operation, error)
	newService      func(cred gateway.Credential) service
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger:          newLogger(w, level),
		prompter:        terminalPrompter{},
		chooseOperation: runMenu,
	}
	c.newService = c.defaultService
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// defaultService builds the production API client for a credential.
func (c *CLI) defaultService(cred gateway.Credential) service {
	api := gateway.NewClient(cred)
	api.SetLogger(c.Logger)
	if c.apiURL != "" {
		api.SetBaseURL(c.apiURL)
	}
	return github.NewClient(api)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself starts the interactive shell.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ghops",
		Short: "ghops automates everyday GitHub chores from the terminal",
		Long: `ghops is an interactive client for the GitHub REST API.

Run it without arguments to get a menu of repository, workflow, gist,
notification, and issue operations for the authenticated account. Every
menu entry is also available as a plain subcommand for scripting.

Credentials are read from --user and the GHOPS_TOKEN (or GITHUB_TOKEN)
environment variable, and requested interactively when missing.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return errNotATerminal
			}
			return c.runShell(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.user, "user", "u", "", "GitHub username (defaults to $GHOPS_USER or $GITHUB_USER)")
	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "GitHub API base URL, for GitHub Enterprise")

	// Register all subcommands
	root.AddCommand(c.repoCommand())
	root.AddCommand(c.fileCommand())
	root.AddCommand(c.workflowCommand())
	root.AddCommand(c.gistCommand())
	root.AddCommand(c.issueCommand())
	root.AddCommand(c.notificationCommand())
	root.AddCommand(c.userCommand())
	root.AddCommand(c.completionCommand())

	return root
}
