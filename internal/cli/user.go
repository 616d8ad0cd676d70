package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// userCommand creates the user command with subcommands.
func (c *CLI) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show profile details of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Session verification already fetched the profile.
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			printNewline()
			renderUser(sess.user)
			return nil
		},
	})

	return cmd
}

// runUserInfo refetches the profile so a long-lived shell session shows
// current numbers.
func (c *CLI) runUserInfo(ctx context.Context, svc service) error {
	spinner := newSpinnerWithContext(ctx, "Fetching user info...")
	spinner.Start()
	user, err := svc.FetchUser(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}

	renderUser(user)
	return nil
}
