package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ghops/ghops/pkg/gateway"
	"github.com/ghops/ghops/pkg/github"
)

// session is an authenticated API connection plus the verified identity
// behind it.
type session struct {
	svc  service
	user *github.User
}

// ensureSession resolves credentials, builds the API client, and proves
// the token works with a /user call before any operation runs.
func (c *CLI) ensureSession(ctx context.Context) (*session, error) {
	username, err := c.resolveUsername()
	if err != nil {
		return nil, err
	}
	token, err := c.resolveToken()
	if err != nil {
		return nil, err
	}

	cred := gateway.Credential{Login: username, Token: token}
	c.Logger.Debug("Starting session", "user", username, "token", cred.Redacted())
	svc := c.newService(cred)

	spinner := newSpinnerWithContext(ctx, "Verifying credentials...")
	spinner.Start()
	user, err := svc.FetchUser(ctx)
	if err != nil {
		spinner.StopWithError("Authentication failed")
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	spinner.Stop()

	printSuccess("Authenticated as @%s", user.Login)
	if !strings.EqualFold(user.Login, username) {
		printWarning("Token belongs to @%s; operations still target %s/*", user.Login, username)
	}

	return &session{svc: svc, user: user}, nil
}

// resolveUsername picks the username from the --user flag, then the
// environment, then an interactive prompt.
func (c *CLI) resolveUsername() (string, error) {
	username := c.user
	if username == "" {
		username = firstEnv("GHOPS_USER", "GITHUB_USER")
	}
	if username == "" {
		answer, err := c.prompter.Input("GitHub username", "")
		if err != nil {
			return "", err
		}
		username = strings.TrimSpace(answer)
	}
	if err := github.ValidateOwner(username); err != nil {
		return "", err
	}
	return username, nil
}

// resolveToken picks the token from the environment or a masked prompt.
// Tokens are never accepted as flags and never echoed.
func (c *CLI) resolveToken() (string, error) {
	token := firstEnv("GHOPS_TOKEN", "GITHUB_TOKEN")
	if token == "" {
		answer, err := c.prompter.Secret("GitHub token")
		if err != nil {
			return "", err
		}
		token = strings.TrimSpace(answer)
	}
	if token == "" {
		return "", fmt.Errorf("a token is required (set GHOPS_TOKEN or GITHUB_TOKEN)")
	}
	return token, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
