package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// errNotATerminal is returned when the shell is started without a TTY.
var errNotATerminal = fmt.Errorf("interactive mode needs a terminal; use the subcommands instead (see 'ghops --help')")

// runShell drives the interactive session: authenticate once, then loop
// over menu selections until the user leaves. Operation failures are
// reported and the menu comes back; they never end the session.
func (c *CLI) runShell(ctx context.Context) error {
	printNewline()
	fmt.Println(StyleTitle.Render("GitHub Automation Tool"))
	printNewline()

	sess, err := c.ensureSession(ctx)
	if err != nil {
		if interrupted(err) {
			return nil
		}
		return err
	}

	for {
		printNewline()
		op, err := c.chooseOperation()
		if err != nil {
			if interrupted(err) {
				break
			}
			return err
		}
		if op == opExit {
			break
		}

		if err := c.runOperation(ctx, sess, op); err != nil {
			if interrupted(err) {
				break
			}
			describeError(err)
		}
	}

	printNewline()
	printInfo("Goodbye!")
	return nil
}

func (c *CLI) runOperation(ctx context.Context, sess *session, op operation) error {
	switch op {
	case opListRepos:
		return c.listRepositories(ctx, sess.svc, defaultListPageSize)
	case opCreateRepo:
		return c.runCreateRepository(ctx, sess.svc)
	case opDeleteRepo:
		return c.runDeleteRepository(ctx, sess.svc)
	case opUploadFile:
		return c.runUploadFile(ctx, sess.svc)
	case opDownloadFile:
		return c.runDownloadFile(ctx, sess.svc)
	case opListWorkflows:
		return c.runListWorkflows(ctx, sess.svc)
	case opTriggerWorkflow:
		return c.runTriggerWorkflow(ctx, sess.svc)
	case opCreateGist:
		return c.runCreateGist(ctx, sess.svc)
	case opListGists:
		return c.runListGists(ctx, sess.svc)
	case opUserInfo:
		return c.runUserInfo(ctx, sess.svc)
	case opListNotifications:
		return c.runListNotifications(ctx, sess.svc)
	case opMarkNotificationsRead:
		return c.runMarkNotificationsRead(ctx, sess.svc)
	case opCreateIssue:
		return c.runCreateIssue(ctx, sess.svc)
	case opListIssues:
		return c.runListIssues(ctx, sess.svc)
	}
	return nil
}

// interrupted reports whether err means the user bailed out (ctrl+c or
// ctrl+d) rather than something going wrong.
func interrupted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, context.Canceled)
}
