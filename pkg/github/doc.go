// Package github implements typed operations against the GitHub REST API.
//
// # Overview
//
// Each method on [Client] is a thin composition of calls through
// [gateway.Client]: repository management, file upload and download,
// workflow dispatch, gists, issues, notifications, and the authenticated
// user's profile. There is no state between calls; every operation is a
// fresh request/response exchange.
//
// # Usage
//
//	api := gateway.NewClient(gateway.Credential{Login: "octocat", Token: token})
//	client := github.NewClient(api)
//
//	repos, err := client.ListRepositories(ctx, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Ownership
//
// Operations that address a repository always target the authenticated
// account: the owner segment of every /repos/... path is the credential's
// login. Repository names are validated locally before any request is sent.
//
// # Conditional writes
//
// UploadFile implements GitHub's create-or-update contract for repository
// contents: a read probe fetches the file's current revision SHA, and the
// subsequent write carries that SHA when the probe found one. A probe
// failure of any kind selects the create path (no SHA); a stale guess is
// rejected by the service and surfaced unchanged.
//
// # Failures
//
// Errors from the gateway are propagated as-is, so callers can inspect
// status codes with [gateway.IsNotFound] and friends. Operations never
// branch on failure class themselves.
//
// [gateway.Client]: github.com/ghops/ghops/pkg/gateway.Client
// [gateway.IsNotFound]: github.com/ghops/ghops/pkg/gateway.IsNotFound
package github
