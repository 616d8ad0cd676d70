// Package pkg provides the core libraries for the ghops GitHub client.
//
// # Overview
//
// ghops automates everyday GitHub chores (repositories, file contents,
// workflows, gists, notifications, issues) over the GitHub REST API. The
// pkg directory is organized into three areas:
//
//  1. [gateway] - Authenticated HTTP access to the REST API
//  2. [github] - Typed resource operations on top of the gateway
//  3. [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// Every operation flows through the same layers:
//
//	CLI command / interactive menu
//	         ↓
//	    [github] package (typed operations, payload shapes)
//	         ↓
//	    [gateway] package (auth headers, error normalization)
//	         ↓
//	    api.github.com
//
// The gateway is the only place that touches credentials and raw HTTP.
// Resource operations never build requests themselves; they describe a
// path, an optional payload, and the shape of the expected response.
//
// # Quick Start
//
// Authenticate and create a repository with a README:
//
//	import (
//	    "context"
//	    "github.com/ghops/ghops/pkg/gateway"
//	    "github.com/ghops/ghops/pkg/github"
//	)
//
//	api := gateway.NewClient(gateway.Credential{Login: "octocat", Token: token})
//	client := github.NewClient(api)
//
//	repo, err := client.CreateRepository(context.Background(), github.CreateRepositoryOptions{
//	    Name:        "demo",
//	    Description: "A demo repository",
//	    AutoInit:    true,
//	})
//
// # Main Packages
//
// [gateway] - The authenticated request gateway. Attaches the bearer
// token, accept header, and API version to every request, and turns
// non-2xx responses into [gateway.APIError] values that carry the HTTP
// status and the message GitHub returned. Predicates such as
// [gateway.IsNotFound] classify failures without string matching.
//
// [github] - One file per resource (repos, contents, workflows, gists,
// issues, notifications, users). Each operation composes one or two
// gateway calls; the contents operations handle the read-before-write
// dance that updating an existing file requires.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/github/...   # Specific package
//
// All HTTP behavior is tested against httptest servers; no test talks
// to the real API.
//
// [gateway]: https://pkg.go.dev/github.com/ghops/ghops/pkg/gateway
// [github]: https://pkg.go.dev/github.com/ghops/ghops/pkg/github
// [buildinfo]: https://pkg.go.dev/github.com/ghops/ghops/pkg/buildinfo
// [gateway.APIError]: https://pkg.go.dev/github.com/ghops/ghops/pkg/gateway#APIError
// [gateway.IsNotFound]: https://pkg.go.dev/github.com/ghops/ghops/pkg/gateway#IsNotFound
package pkg
