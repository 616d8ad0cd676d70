package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/ghops/ghops/pkg/github"
)

// =============================================================================
// Text Helpers
// =============================================================================

// padRight pads s with spaces to the given display width, counting wide
// runes properly.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// truncate shortens s to at most width display cells, ending with "…".
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// shortSHA trims a commit SHA to the usual 7 characters.
func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// formatRelativeTime renders an RFC3339 timestamp as "5m ago" style
// text, falling back to a date for anything older than a week.
func formatRelativeTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// =============================================================================
// Resource Lists
// =============================================================================

// renderRepositories prints one line per repository with visibility,
// name, and language.
func renderRepositories(repos []github.Repository) {
	if len(repos) == 0 {
		printDetail("No repositories")
		return
	}

	private := 0
	for _, r := range repos {
		marker := StyleSuccess.Render("public ")
		if r.Private {
			marker = StyleWarning.Render("private")
			private++
		}
		lang := r.Language
		if lang == "" {
			lang = "—"
		}
		fmt.Println("  " + marker + " " + StyleValue.Render(padRight(truncate(r.FullName, 45), 45)) + " " + StyleDim.Render(lang))
	}
	printNewline()
	printDetail("%d repositories · %d private", len(repos), private)
}

// renderWorkflows prints one line per workflow; inactive ones are dimmed.
func renderWorkflows(workflows []github.Workflow) {
	if len(workflows) == 0 {
		printDetail("No workflows")
		return
	}

	for _, wf := range workflows {
		marker := StyleSuccess.Render(iconSuccess)
		if wf.State != "active" {
			marker = StyleDim.Render(iconError)
		}
		meta := fmt.Sprintf("ID %d · %s", wf.ID, wf.Path)
		fmt.Println("  " + marker + " " + StyleValue.Render(padRight(truncate(wf.Name, 30), 30)) + " " + StyleDim.Render(meta))
	}
}

// renderGists prints one line per gist.
func renderGists(gists []github.Gist) {
	if len(gists) == 0 {
		printDetail("No gists")
		return
	}

	for _, g := range gists {
		marker := StyleSuccess.Render("public")
		if !g.Public {
			marker = StyleWarning.Render("secret")
		}
		desc := g.Description
		if desc == "" {
			desc = "(no description)"
		}
		line := "  " + marker + " " + StyleValue.Render(padRight(truncate(desc, 40), 40)) + " " + StyleDim.Render(formatRelativeTime(g.CreatedAt))
		if g.HTMLURL != "" {
			line += "  " + StyleLink.Render(g.HTMLURL)
		}
		fmt.Println(line)
	}
}

// renderIssues prints one line per issue.
func renderIssues(issues []github.Issue) {
	if len(issues) == 0 {
		printDetail("No issues")
		return
	}

	for _, is := range issues {
		state := StyleSuccess.Render(padRight(is.State, 6))
		if is.State != github.IssueStateOpen {
			state = StyleDim.Render(padRight(is.State, 6))
		}
		num := StyleNumber.Render(fmt.Sprintf("#%-5d", is.Number))
		fmt.Println("  " + num + " " + state + " " + StyleValue.Render(padRight(truncate(is.Title, 50), 50)) + " " + StyleDim.Render("by "+is.User.Login))
	}
}

// renderNotifications prints one line per inbox entry.
func renderNotifications(notifications []github.Notification) {
	if len(notifications) == 0 {
		printDetail("No notifications")
		return
	}

	for _, n := range notifications {
		marker := styleRead.Render("read  ")
		if n.Unread {
			marker = styleUnread.Render("unread")
		}
		meta := n.Reason + " · " + n.Repository.FullName
		fmt.Println("  " + marker + " " + StyleValue.Render(padRight(truncate(n.Subject.Title, 45), 45)) + " " + StyleDim.Render(meta))
	}
}

// =============================================================================
// User Details
// =============================================================================

// renderUser prints the account as a key-value block, skipping empty
// profile fields.
func renderUser(u *github.User) {
	printKeyValue("Username", "@"+u.Login)
	if u.Name != "" {
		printKeyValue("Name", u.Name)
	}
	if u.Email != "" {
		printKeyValue("Email", u.Email)
	}
	if u.Bio != "" {
		printKeyValue("Bio", u.Bio)
	}
	if u.Company != "" {
		printKeyValue("Company", u.Company)
	}
	if u.Location != "" {
		printKeyValue("Location", u.Location)
	}
	printKeyValue("Repos", fmt.Sprintf("%d public", u.PublicRepos))
	printKeyValue("Followers", fmt.Sprintf("%d", u.Followers))
	printKeyValue("Following", fmt.Sprintf("%d", u.Following))
	if u.HTMLURL != "" {
		printKeyValue("Profile", StyleLink.Render(u.HTMLURL))
	}
}
