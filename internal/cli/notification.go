package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// =============================================================================
// Commands
// =============================================================================

// notificationCommand creates the notification command with subcommands.
func (c *CLI) notificationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "Manage the notification inbox",
	}

	cmd.AddCommand(c.notificationListCommand())
	cmd.AddCommand(c.notificationReadCommand())

	return cmd
}

func (c *CLI) notificationListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.runListNotifications(cmd.Context(), sess.svc)
		},
	}
}

func (c *CLI) notificationReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Mark all notifications as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			return c.runMarkNotificationsRead(cmd.Context(), sess.svc)
		},
	}
}

// =============================================================================
// Handlers
// =============================================================================

func (c *CLI) runListNotifications(ctx context.Context, svc service) error {
	spinner := newSpinnerWithContext(ctx, "Fetching notifications...")
	spinner.Start()
	notifications, err := svc.ListNotifications(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}

	printInfo("Notifications")
	printNewline()
	renderNotifications(notifications)
	return nil
}

func (c *CLI) runMarkNotificationsRead(ctx context.Context, svc service) error {
	spinner := newSpinnerWithContext(ctx, "Marking notifications as read...")
	spinner.Start()
	if err := svc.MarkNotificationsRead(ctx); err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess("All notifications marked as read")
	return nil
}
