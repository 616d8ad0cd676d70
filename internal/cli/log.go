// Package cli implements the ghops command-line interface.
//
// This package wires the interactive shell and the scriptable subcommands
// to the GitHub resource operations in pkg/github. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// Running ghops without arguments opens a menu covering every operation.
// The same operations are exposed as subcommands:
//   - repo: list, create, and delete repositories
//   - file: upload and download repository files
//   - workflow: list and trigger GitHub Actions workflows
//   - gist: create and list gists
//   - issue: create and list issues
//   - notification: list and mark notifications as read
//   - user: show the authenticated user
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per API round trip. Tokens never appear in log
// output.
//
// # Example
//
//	import "github.com/ghops/ghops/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
